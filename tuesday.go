// Package tuesday implements the classical Davis-Putnam family of
// propositional decision procedures: the original DP variable-elimination
// loop, recursive DPLL, an iterative trail-based variant (DPLI), and a
// backjumping variant with single-clause learning (DPLB).
//
// The package decides satisfiability of clause sets in conjunctive normal
// form and nothing more: there is no watched-literal scheme, no restarts,
// and no model extraction. Input clause sets come from an external CNF
// front end (see the formula subpackage for a minimal one) or from DIMACS
// via ParseDIMACS.
package tuesday

import (
	"fmt"
	"slices"

	"github.com/satlib/tuesday/lit"
)

// Clause is a disjunction of literals. Clauses are kept sorted and
// deduplicated; the literal encoding makes a literal and its complement
// adjacent, so tautology checks are a single scan. The empty clause denotes
// a contradiction.
type Clause []lit.Lit

// NewClause builds a canonical clause from ls.
func NewClause(ls ...lit.Lit) Clause {
	c := Clause(slices.Clone(ls))
	slices.Sort(c)
	return slices.Compact(c)
}

// Contains reports whether c contains l.
func (c Clause) Contains(l lit.Lit) bool {
	_, ok := slices.BinarySearch(c, l)
	return ok
}

// Remove returns c without l. If l is absent, c is returned unchanged.
func (c Clause) Remove(l lit.Lit) Clause {
	i, ok := slices.BinarySearch(c, l)
	if !ok {
		return c
	}
	return slices.Delete(slices.Clone(c), i, i+1)
}

// Unit returns c's literal when c is a unit clause.
func (c Clause) Unit() (lit.Lit, bool) {
	if len(c) == 1 {
		return c[0], true
	}
	return lit.None, false
}

// Trivial reports whether c contains both a literal and its complement.
func (c Clause) Trivial() bool {
	for i := 0; i+1 < len(c); i++ {
		if !c[i].Sign() && c[i+1] == c[i].Not() {
			return true
		}
	}
	return false
}

func (c Clause) String() string {
	out := make([]string, len(c))
	for i, l := range c {
		out[i] = l.String()
	}
	return fmt.Sprintf("%v", out)
}

// ClauseSet is a conjunction of clauses. Input order is preserved: the
// one-literal rule eliminates the first unit clause in input order, so
// callers get deterministic behavior for a given ordering. The empty set
// denotes the trivially satisfiable formula.
type ClauseSet []Clause

// NewClauseSet builds a clause set from DIMACS-style integer clauses
// (negative means negated). A zero literal is invalid input.
func NewClauseSet(problem [][]int) (ClauseSet, error) {
	cs := make(ClauseSet, len(problem))
	for i, cls := range problem {
		ls := make([]lit.Lit, len(cls))
		for j, v := range cls {
			if v == 0 {
				return nil, fmt.Errorf("clause %d: zero literal", i)
			}
			ls[j] = lit.FromDimacs(v)
		}
		cs[i] = NewClause(ls...)
	}
	return cs, nil
}

// Dimacs converts cs back to DIMACS-style integer clauses.
func (cs ClauseSet) Dimacs() [][]int {
	out := make([][]int, len(cs))
	for i, c := range cs {
		out[i] = make([]int, len(c))
		for j, l := range c {
			out[i][j] = l.Dimacs()
		}
	}
	return out
}

// HasEmptyClause reports whether cs contains the empty clause.
func (cs ClauseSet) HasEmptyClause() bool {
	for _, c := range cs {
		if len(c) == 0 {
			return true
		}
	}
	return false
}

// Literals returns the sorted set of literals occurring in cs.
func (cs ClauseSet) Literals() []lit.Lit {
	var out []lit.Lit
	for _, c := range cs {
		out = append(out, c...)
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// withClause prepends c, leaving cs intact for older references.
func (cs ClauseSet) withClause(c Clause) ClauseSet {
	out := make(ClauseSet, 0, len(cs)+1)
	out = append(out, c)
	return append(out, cs...)
}

func (cs ClauseSet) withUnit(p lit.Lit) ClauseSet {
	return cs.withClause(NewClause(p))
}

// Stats carries informational counters from the trail-based engines.
type Stats struct {
	Decisions    int64
	Propagations int64
	Conflicts    int64
	Learned      int64
}
