package gen

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satlib/tuesday"
)

func TestPhpShape(t *testing.T) {
	pigeons, holes := 4, 3
	cs := Php(pigeons, holes)
	// One placement clause per pigeon plus one exclusion clause per
	// unordered pigeon pair per hole.
	want := pigeons + holes*pigeons*(pigeons-1)/2
	require.Len(t, cs, want)
	for i, c := range cs {
		if i < pigeons {
			assert.Len(t, c, holes)
		} else {
			assert.Len(t, c, 2)
		}
	}
}

func TestPhpDecisions(t *testing.T) {
	assert.False(t, tuesday.DPLL(Php(3, 2)))
	assert.True(t, tuesday.DPLL(Php(2, 2)))
}

func TestRand3CNF(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	cs := Rand3CNF(rng, 10, 40)
	require.Len(t, cs, 40)
	for _, c := range cs {
		// Three distinct variables, so canonicalization drops nothing.
		assert.Len(t, c, 3)
		assert.False(t, c.Trivial())
	}
	assert.Panics(t, func() { Rand3CNF(rng, 2, 1) })
}

func TestBinCycleShape(t *testing.T) {
	cs := BinCycle(5)
	require.Len(t, cs, 5)
	for _, c := range cs {
		assert.Len(t, c, 2)
	}
	assert.True(t, tuesday.DPLI(cs))
}
