package tuesday

import (
	"fmt"

	"github.com/kr/pretty"

	"github.com/satlib/tuesday/lit"
)

// backjump shortens trail after a conflict on the flipped literal p. It
// repeatedly strips the most recent surviving guess and re-propagates; as
// long as the complement of p is still forced into a conflict, the
// stripped guess was irrelevant and the scan continues. The first guess
// whose removal breaks the forcing is kept. The surviving guesses are a
// minimal-effort culprit set under this exact scan order, not necessarily
// a globally minimal one.
func backjump(cs ClauseSet, p lit.Lit, trail Trail) Trail {
	bt := trail.Backtrack()
	if e, ok := bt.Head(); ok && e.Kind == Guessed {
		tt := bt.Pop()
		probe, _ := unitPropagate(cs, tt.Push(Entry{Lit: p, Kind: Guessed}), nil)
		if probe.HasEmptyClause() {
			return backjump(cs, p, tt)
		}
	}
	return trail
}

// DPLB decides satisfiability of cs with DPLI plus backjumping and
// single-clause learning: on conflict the culprit guesses are identified,
// their negation is learned as a new clause, and search resumes past the
// irrelevant decisions.
func DPLB(cs ClauseSet) bool {
	sat, _ := DPLBStats(cs)
	return sat
}

// DPLBStats is DPLB with informational counters.
func DPLBStats(cs ClauseSet) (bool, Stats) {
	var st Stats
	var trail Trail
	for {
		simplified, trail2 := unitPropagate(cs, trail, &st)
		if verbose {
			fmt.Printf("dplb: %s\n", pretty.Sprint(trail2))
		}
		if simplified.HasEmptyClause() {
			st.Conflicts++
			bt := trail.Backtrack()
			e, ok := bt.Head()
			if !ok || e.Kind != Guessed {
				return false, st
			}
			p := e.Lit
			trail3 := backjump(cs, p, bt.Pop())
			ls := []lit.Lit{p.Not()}
			for _, g := range trail3.Guesses() {
				ls = append(ls, g.Not())
			}
			cs = cs.withClause(NewClause(ls...))
			st.Learned++
			trail = trail3.Push(Entry{Lit: p.Not(), Kind: Deduced})
			continue
		}
		if len(simplified) == 0 {
			return true, st
		}
		ps := unassigned(cs, trail2)
		if len(ps) == 0 {
			return true, st
		}
		st.Decisions++
		trail = trail2.Push(Entry{Lit: decide(occurrenceView(cs, trail2), ps), Kind: Guessed})
	}
}
