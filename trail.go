package tuesday

import (
	"slices"

	"github.com/satlib/tuesday/lit"
	"github.com/satlib/tuesday/pmap"
)

// Provenance records how a literal got onto the trail.
type Provenance uint8

const (
	// Guessed marks a decision literal.
	Guessed Provenance = iota
	// Deduced marks a literal forced by unit propagation.
	Deduced
)

func (p Provenance) String() string {
	if p == Guessed {
		return "guessed"
	}
	return "deduced"
}

// Entry is a single trail assignment.
type Entry struct {
	Lit  lit.Lit
	Kind Provenance
}

// Trail is the ordered record of literal assignments made during search,
// most recent last. Invariants: no literal appears alongside its
// complement, and every Deduced entry follows from unit propagation over
// the clause set and the entries before it.
//
// Trails are persistent: Push never clobbers an older snapshot, so
// rewinding is just holding on to an earlier value.
type Trail []Entry

// Push returns t extended with e. The receiver is unchanged.
func (t Trail) Push(e Entry) Trail {
	return append(t[:len(t):len(t)], e)
}

// Head returns the most recent entry.
func (t Trail) Head() (Entry, bool) {
	if len(t) == 0 {
		return Entry{}, false
	}
	return t[len(t)-1], true
}

// Pop returns t without its most recent entry.
func (t Trail) Pop() Trail {
	return t[:len(t)-1]
}

// Backtrack discards Deduced entries until the trail is empty or its most
// recent entry is a guess.
func (t Trail) Backtrack() Trail {
	for len(t) > 0 && t[len(t)-1].Kind == Deduced {
		t = t[:len(t)-1]
	}
	return t
}

// Guesses returns the decision literals on t, oldest first.
func (t Trail) Guesses() []lit.Lit {
	var out []lit.Lit
	for _, e := range t {
		if e.Kind == Guessed {
			out = append(out, e.Lit)
		}
	}
	return out
}

// assignIndex is the persistent-map view of a trail used for fast
// membership queries during propagation. It is a cache derived from the
// trail, never authoritative.
type assignIndex = pmap.Map[lit.Lit, struct{}]

// index rebuilds the assignment index from t.
func (t Trail) index() assignIndex {
	ix := pmap.New[lit.Lit, struct{}]()
	for _, e := range t {
		ix = ix.Set(e.Lit, struct{}{})
	}
	return ix
}

// unassigned returns, as positive literals in sorted order, the variables
// occurring in cs that are not yet assigned on t in either polarity.
func unassigned(cs ClauseSet, t Trail) []lit.Lit {
	assigned := make(map[lit.Lit]struct{}, len(t))
	for _, e := range t {
		assigned[e.Lit.Pos()] = struct{}{}
	}
	var out []lit.Lit
	seen := make(map[lit.Lit]struct{})
	for _, c := range cs {
		for _, l := range c {
			p := l.Pos()
			if _, ok := assigned[p]; ok {
				continue
			}
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			out = append(out, p)
		}
	}
	slices.Sort(out)
	return out
}
