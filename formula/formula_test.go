package formula

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satlib/tuesday"
)

func TestCNFConstants(t *testing.T) {
	assert.Empty(t, CNF(True))
	cs := CNF(False)
	require.Len(t, cs, 1)
	assert.Empty(t, cs[0])
	assert.Empty(t, CNF(Or{Atom(1), Not{Atom(1)}}))
}

func TestCNFDistribution(t *testing.T) {
	// p \/ (q /\ r) gives {p,q} and {p,r}.
	cs := CNF(Or{Atom(1), And{Atom(2), Atom(3)}})
	want, err := tuesday.NewClauseSet([][]int{{1, 2}, {1, 3}})
	require.NoError(t, err)
	assert.ElementsMatch(t, want, cs)
}

func TestCNFSubsumption(t *testing.T) {
	// (p /\ (p \/ q)): the wider clause is subsumed.
	cs := CNF(And{Atom(1), Or{Atom(1), Atom(2)}})
	want, err := tuesday.NewClauseSet([][]int{{1}})
	require.NoError(t, err)
	assert.Equal(t, want, cs)
}

func TestTautologies(t *testing.T) {
	p, q := Atom(1), Atom(2)
	tauts := map[string]Form{
		"excluded middle": Or{p, Not{p}},
		"peirce":          Imp{Imp{Imp{p, q}, p}, p},
		"contraposition":  Iff{Imp{p, q}, Imp{Not{q}, Not{p}}},
		"de morgan":       Iff{Not{And{p, q}}, Or{Not{p}, Not{q}}},
	}
	for name, f := range tauts {
		assert.True(t, DPTaut(f), "dp: %s", name)
		assert.True(t, DPLLTaut(f), "dpll: %s", name)
		assert.True(t, DPLITaut(f), "dpli: %s", name)
		assert.True(t, DPLBTaut(f), "dplb: %s", name)
	}
}

func TestNonTautologies(t *testing.T) {
	p, q := Atom(1), Atom(2)
	for name, f := range map[string]Form{
		"atom":               p,
		"implication":        Imp{p, q},
		"affirm consequent":  Imp{And{Imp{p, q}, q}, p},
		"contradiction taut": And{p, Not{p}},
	} {
		assert.False(t, DPLLTaut(f), "dpll: %s", name)
		assert.False(t, DPLBTaut(f), "dplb: %s", name)
	}
}

func TestSatisfiability(t *testing.T) {
	p, q := Atom(1), Atom(2)
	assert.True(t, DPSat(And{p, q}))
	assert.True(t, DPLISat(Imp{p, q}))
	assert.False(t, DPLLSat(And{p, Not{p}}))
	assert.False(t, DPLBSat(And{Iff{p, q}, And{p, Not{q}}}))
}

func TestString(t *testing.T) {
	f := Imp{And{Atom(1), Not{Atom(2)}}, False}
	assert.Equal(t, "((p1 /\\ ~p2) ==> false)", f.String())
}

func TestInvalidAtomPanics(t *testing.T) {
	assert.Panics(t, func() { CNF(Atom(0)) })
	assert.Panics(t, func() { CNF(Not{Atom(-3)}) })
}
