package tuesday

import (
	"fmt"

	"github.com/kr/pretty"

	"github.com/satlib/tuesday/lit"
)

const verbose = false

// unitSubpropagate simplifies cs against the assignment index to a
// fixpoint: clauses containing an indexed literal are satisfied and
// dropped, literals whose complement is indexed are falsified and deleted,
// and every clause thereby reduced to a fresh unit is pushed as Deduced
// onto the trail and into the index. A unit is only consumed when neither
// it nor its complement is already indexed; a contradictory unit pair is
// left in place so it surfaces as an empty clause on the next pass.
func unitSubpropagate(cs ClauseSet, ix assignIndex, trail Trail, st *Stats) (ClauseSet, assignIndex, Trail) {
	for {
		out := make(ClauseSet, 0, len(cs))
	clauseLoop:
		for _, c := range cs {
			for _, l := range c {
				if ix.Has(l) {
					continue clauseLoop
				}
			}
			reduced := c
			for _, l := range c {
				if ix.Has(l.Not()) {
					reduced = reduced.Remove(l)
				}
			}
			out = append(out, reduced)
		}
		var units []lit.Lit
		for _, c := range out {
			u, ok := c.Unit()
			if !ok || ix.Has(u) || ix.Has(u.Not()) {
				continue
			}
			dup := false
			for _, seen := range units {
				if seen == u || seen == u.Not() {
					dup = true
					break
				}
			}
			if !dup {
				units = append(units, u)
			}
		}
		if len(units) == 0 {
			return out, ix, trail
		}
		for _, u := range units {
			trail = trail.Push(Entry{Lit: u, Kind: Deduced})
			ix = ix.Set(u, struct{}{})
			if st != nil {
				st.Propagations++
			}
		}
		cs = out
	}
}

// unitPropagate rebuilds the assignment index from the trail, runs
// subpropagation, and drops the index on return; the trail stays the
// source of truth.
func unitPropagate(cs ClauseSet, trail Trail, st *Stats) (ClauseSet, Trail) {
	simplified, _, trail2 := unitSubpropagate(cs, trail.index(), trail, st)
	return simplified, trail2
}

// occurrenceView deletes falsified literals from every clause of cs but
// keeps satisfied clauses. Conflict detection runs on the smaller
// simplification; decisions count occurrences in this view, where satisfied
// clauses still vote, so the flip-based and backjumping engines rank
// variables identically.
func occurrenceView(cs ClauseSet, trail Trail) ClauseSet {
	ix := trail.index()
	out := make(ClauseSet, 0, len(cs))
	for _, c := range cs {
		reduced := c
		for _, l := range c {
			if ix.Has(l.Not()) {
				reduced = reduced.Remove(l)
			}
		}
		out = append(out, reduced)
	}
	return out
}

// posnegCount is the number of clauses of cs mentioning p in either
// polarity.
func posnegCount(cs ClauseSet, p lit.Lit) int {
	neg := p.Not()
	n := 0
	for _, c := range cs {
		if c.Contains(p) || c.Contains(neg) {
			n++
		}
	}
	return n
}

// decide picks the candidate with the most occurrences in cs; the first
// maximum wins, keeping decisions deterministic.
func decide(cs ClauseSet, ps []lit.Lit) lit.Lit {
	best := ps[0]
	bestN := posnegCount(cs, best)
	for _, p := range ps[1:] {
		if n := posnegCount(cs, p); n > bestN {
			best, bestN = p, n
		}
	}
	return best
}

// DPLI decides satisfiability of cs with the iterative trail-based DPLL
// procedure: propagate, decide, and on conflict flip the most recent guess
// (chronological backtracking).
func DPLI(cs ClauseSet) bool {
	sat, _ := DPLIStats(cs)
	return sat
}

// DPLIStats is DPLI with informational counters.
func DPLIStats(cs ClauseSet) (bool, Stats) {
	var st Stats
	var trail Trail
	for {
		simplified, trail2 := unitPropagate(cs, trail, &st)
		if verbose {
			fmt.Printf("dpli: %s\n", pretty.Sprint(trail2))
		}
		if simplified.HasEmptyClause() {
			st.Conflicts++
			bt := trail.Backtrack()
			if e, ok := bt.Head(); ok && e.Kind == Guessed {
				// Flip the most recent decision; it is now forced.
				trail = bt.Pop().Push(Entry{Lit: e.Lit.Not(), Kind: Deduced})
				continue
			}
			return false, st
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
