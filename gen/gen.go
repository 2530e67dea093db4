// Package gen contains generators for common kinds of CNF formulas, used
// by the tests, benchmarks and the command line tool.
package gen

import (
	"math/rand"

	"github.com/satlib/tuesday"
	"github.com/satlib/tuesday/lit"
)

// PartVar returns the variable stating that element i is in partition k,
// for a set of n elements.
func PartVar(i, k, n int) lit.Lit {
	return lit.New(k*n+i, false)
}

// Php generates the pigeonhole principle: can pigeons many pigeons be
// placed into holes many holes, one pigeon per hole? Unsatisfiable exactly
// when pigeons > holes, with exponentially long resolution refutations, so
// it serves as the standard stress instance.
func Php(pigeons, holes int) tuesday.ClauseSet {
	var cs tuesday.ClauseSet
	for i := 0; i < pigeons; i++ {
		ls := make([]lit.Lit, holes)
		for j := 0; j < holes; j++ {
			ls[j] = PartVar(i, j, pigeons)
		}
		cs = append(cs, tuesday.NewClause(ls...))
	}
	for i := 0; i < pigeons; i++ {
		for j := 0; j < i; j++ {
			for h := 0; h < holes; h++ {
				cs = append(cs, tuesday.NewClause(
					PartVar(i, h, pigeons).Not(),
					PartVar(j, h, pigeons).Not()))
			}
		}
	}
	return cs
}

// Rand3CNF generates a random 3-CNF with n variables and m clauses, each
// clause over three distinct variables with random polarity. It panics if
// n < 3.
func Rand3CNF(rng *rand.Rand, n, m int) tuesday.ClauseSet {
	if n < 3 {
		panic("gen: Rand3CNF needs at least 3 variables")
	}
	cs := make(tuesday.ClauseSet, 0, m)
	for i := 0; i < m; i++ {
		vs := rng.Perm(n)[:3]
		ls := make([]lit.Lit, 3)
		for j, v := range vs {
			ls[j] = lit.New(v, rng.Intn(2) == 1)
		}
		cs = append(cs, tuesday.NewClause(ls...))
	}
	return cs
}

// BinCycle generates the implication cycle
// (1,-2) (2,-3) ... (n-1,-n) (n,-1), satisfiable by any constant
// assignment.
func BinCycle(n int) tuesday.ClauseSet {
	cs := make(tuesday.ClauseSet, 0, n)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		cs = append(cs, tuesday.NewClause(lit.New(i, false), lit.New(j, true)))
	}
	return cs
}
