package tuesday

// DPLL decides satisfiability of cs by backtracking search: exhaust the
// one-literal and affirmative-negative rules, then split on the first
// literal of the first remaining clause, trying both polarities.
func DPLL(cs ClauseSet) bool {
	if len(cs) == 0 {
		return true
	}
	if cs.HasEmptyClause() {
		return false
	}
	if next, ok := OneLiteralRule(cs); ok {
		return DPLL(next)
	}
	if next, ok := AffirmativeNegativeRule(cs); ok {
		return DPLL(next)
	}
	p := cs[0][0]
	return DPLL(cs.withUnit(p)) || DPLL(cs.withUnit(p.Not()))
}
