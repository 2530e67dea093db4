package tuesday

import (
	"slices"

	"github.com/satlib/tuesday/lit"
)

// ResolveOn eliminates p from cs by resolution: every clause containing p
// is resolved against every clause containing its complement, and the
// resolvents replace both groups. Tautological clauses, whether input or
// resolvent, are discarded, so the result never mentions p in either
// polarity and never contains a tautology.
func ResolveOn(p lit.Lit, cs ClauseSet) ClauseSet {
	neg := p.Not()
	var pos, negs, rest ClauseSet
	for _, c := range cs {
		switch {
		case c.Trivial():
			// Vacuous, and one mentioning p would smuggle its
			// complement into every resolvent.
		case c.Contains(p):
			pos = append(pos, c)
		case c.Contains(neg):
			negs = append(negs, c)
		default:
			rest = append(rest, c)
		}
	}
	out := slices.Clone(rest)
	for _, c := range pos {
		cp := c.Remove(p)
		for _, d := range negs {
			r := NewClause(append(slices.Clone(cp), d.Remove(neg)...)...)
			if r.Trivial() || containsClause(out, r) {
				continue
			}
			out = append(out, r)
		}
	}
	return out
}

func containsClause(cs ClauseSet, c Clause) bool {
	return slices.ContainsFunc(cs, func(d Clause) bool {
		return slices.Equal(c, d)
	})
}

// ResolutionBlowup estimates the net change in clause count from resolving
// on l: with m clauses containing l and n containing its complement, the
// m+n originals are replaced by at most m*n resolvents.
func ResolutionBlowup(cs ClauseSet, l lit.Lit) int {
	neg := l.Not()
	m, n := 0, 0
	for _, c := range cs {
		switch {
		case c.Contains(l):
			m++
		case c.Contains(neg):
			n++
		}
	}
	return m*n - m - n
}

// ResolutionRule resolves on the positive literal with the smallest
// blow-up estimate, keeping growth of the clause set in check. ok is false
// when no positive literal occurs in cs.
func ResolutionRule(cs ClauseSet) (ClauseSet, bool) {
	best := lit.None
	bestScore := 0
	for _, l := range cs.Literals() {
		if l.Sign() {
			continue
		}
		score := ResolutionBlowup(cs, l)
		if best == lit.None || score < bestScore {
			best, bestScore = l, score
		}
	}
	if best == lit.None {
		return nil, false
	}
	return ResolveOn(best, cs), true
}

// DP decides satisfiability of cs with the original Davis-Putnam
// procedure: exhaust the one-literal and affirmative-negative rules, then
// eliminate a variable by resolution and repeat. Each resolution step
// removes a variable entirely, which bounds the number of iterations.
func DP(cs ClauseSet) bool {
	for {
		if len(cs) == 0 {
			return true
		}
		if cs.HasEmptyClause() {
			return false
		}
		if next, ok := OneLiteralRule(cs); ok {
			cs = next
			continue
		}
		if next, ok := AffirmativeNegativeRule(cs); ok {
			cs = next
			continue
		}
		next, ok := ResolutionRule(cs)
		if !ok {
			// Unreachable: with no pure literals every variable
			// occurs positively somewhere.
			panic("tuesday: no resolvable literal")
		}
		cs = next
	}
}
