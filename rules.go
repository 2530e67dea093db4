package tuesday

import (
	"slices"

	"github.com/satlib/tuesday/lit"
)

// HasUnitClause reports whether cs contains a unit clause, i.e. whether the
// one-literal rule applies.
func HasUnitClause(cs ClauseSet) bool {
	for _, c := range cs {
		if len(c) == 1 {
			return true
		}
	}
	return false
}

// OneLiteralRule applies unit propagation for the first unit clause {p} in
// input order: clauses containing p are satisfied and dropped, and the
// falsified complement of p is deleted from the rest. ok is false when no
// unit clause exists.
func OneLiteralRule(cs ClauseSet) (ClauseSet, bool) {
	u := lit.None
	for _, c := range cs {
		if len(c) == 1 {
			u = c[0]
			break
		}
	}
	if u == lit.None {
		return nil, false
	}
	neg := u.Not()
	out := make(ClauseSet, 0, len(cs))
	for _, c := range cs {
		if c.Contains(u) {
			continue
		}
		out = append(out, c.Remove(neg))
	}
	return out, true
}

// PureLiterals returns the sorted literals whose complement occurs in no
// clause of cs.
func PureLiterals(cs ClauseSet) []lit.Lit {
	present := make(map[lit.Lit]struct{})
	for _, c := range cs {
		for _, l := range c {
			present[l] = struct{}{}
		}
	}
	var pure []lit.Lit
	for l := range present {
		if _, ok := present[l.Not()]; !ok {
			pure = append(pure, l)
		}
	}
	slices.Sort(pure)
	return pure
}

// HasPureLiteral reports whether the affirmative-negative rule applies.
func HasPureLiteral(cs ClauseSet) bool {
	return len(PureLiterals(cs)) > 0
}

// AffirmativeNegativeRule drops every clause containing a pure literal.
// Such clauses can always be satisfied by the pure literal without
// affecting the rest of the set. ok is false when no literal is pure.
func AffirmativeNegativeRule(cs ClauseSet) (ClauseSet, bool) {
	pure := PureLiterals(cs)
	if len(pure) == 0 {
		return nil, false
	}
	out := make(ClauseSet, 0, len(cs))
clauseLoop:
	for _, c := range cs {
		for _, l := range c {
			if _, ok := slices.BinarySearch(pure, l); ok {
				continue clauseLoop
			}
		}
		out = append(out, c)
	}
	return out, true
}
