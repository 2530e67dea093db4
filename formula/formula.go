// Package formula provides a minimal propositional formula representation
// and a simple (non-definitional) CNF conversion, enough to feed arbitrary
// formulas to the decision procedures in the parent package. Atoms are
// positive integers, matching the DIMACS variable numbering.
package formula

import (
	"slices"
	"strconv"

	"github.com/satlib/tuesday"
	"github.com/satlib/tuesday/lit"
)

// Form is a propositional formula.
type Form interface {
	String() string
	isForm()
}

// Const is a propositional constant; use True and False.
type Const bool

const (
	True  Const = true
	False Const = false
)

// Atom is a propositional variable, numbered from 1.
type Atom int

// Not negates a formula.
type Not struct{ F Form }

// And conjoins two formulas.
type And struct{ L, R Form }

// Or disjoins two formulas.
type Or struct{ L, R Form }

// Imp is material implication.
type Imp struct{ L, R Form }

// Iff is logical equivalence.
type Iff struct{ L, R Form }

func (Const) isForm() {}
func (Atom) isForm()  {}
func (Not) isForm()   {}
func (And) isForm()   {}
func (Or) isForm()    {}
func (Imp) isForm()   {}
func (Iff) isForm()   {}

func (c Const) String() string {
	if bool(c) {
		return "true"
	}
	return "false"
}
func (a Atom) String() string { return "p" + strconv.Itoa(int(a)) }
func (n Not) String() string  { return "~" + n.F.String() }
func (f And) String() string  { return "(" + f.L.String() + " /\\ " + f.R.String() + ")" }
func (f Or) String() string   { return "(" + f.L.String() + " \\/ " + f.R.String() + ")" }
func (f Imp) String() string  { return "(" + f.L.String() + " ==> " + f.R.String() + ")" }
func (f Iff) String() string  { return "(" + f.L.String() + " <=> " + f.R.String() + ")" }

// simplify performs bottom-up constant elimination.
func simplify(f Form) Form {
	switch f := f.(type) {
	case Not:
		switch sub := simplify(f.F).(type) {
		case Const:
			return Const(!bool(sub))
		case Not:
			return sub.F
		default:
			return Not{sub}
		}
	case And:
		l, r := simplify(f.L), simplify(f.R)
		switch {
		case l == False || r == False:
			return False
		case l == True:
			return r
		case r == True:
			return l
		}
		return And{l, r}
	case Or:
		l, r := simplify(f.L), simplify(f.R)
		switch {
		case l == True || r == True:
			return True
		case l == False:
			return r
		case r == False:
			return l
		}
		return Or{l, r}
	case Imp:
		return simplify(Or{Not{f.L}, f.R})
	case Iff:
		l, r := simplify(f.L), simplify(f.R)
		switch {
		case l == True:
			return r
		case r == True:
			return l
		case l == False:
			return simplify(Not{r})
		case r == False:
			return simplify(Not{l})
		}
		return Iff{l, r}
	default:
		return f
	}
}

// nnf pushes negations down to atoms, expanding Iff. The input must be
// constant-free (run simplify first).
func nnf(f Form) Form {
	switch f := f.(type) {
	case Not:
		switch sub := f.F.(type) {
		case Not:
			return nnf(sub.F)
		case And:
			return Or{nnf(Not{sub.L}), nnf(Not{sub.R})}
		case Or:
			return And{nnf(Not{sub.L}), nnf(Not{sub.R})}
		case Imp:
			return And{nnf(sub.L), nnf(Not{sub.R})}
		case Iff:
			return Or{And{nnf(sub.L), nnf(Not{sub.R})}, And{nnf(Not{sub.L}), nnf(sub.R)}}
		default:
			return f
		}
	case And:
		return And{nnf(f.L), nnf(f.R)}
	case Or:
		return Or{nnf(f.L), nnf(f.R)}
	case Imp:
		return Or{nnf(Not{f.L}), nnf(f.R)}
	case Iff:
		return Or{And{nnf(f.L), nnf(f.R)}, And{nnf(Not{f.L}), nnf(Not{f.R})}}
	default:
		return f
	}
}

// CNF converts f to clause form by simplification, NNF and distribution,
// discarding tautological clauses and clauses subsumed by smaller ones.
// This is plain textbook CNF, exponential in the worst case; a
// Tseitin-style definitional transform is out of scope here.
//
// CNF panics on a non-positive atom, which is invalid input.
func CNF(f Form) tuesday.ClauseSet {
	switch simplified := simplify(f); simplified {
	case Const(true):
		return nil
	case Const(false):
		return tuesday.ClauseSet{tuesday.NewClause()}
	default:
		cjs := clausal(nnf(simplified))
		out := make(tuesday.ClauseSet, 0, len(cjs))
		for _, c := range cjs {
			if c.Trivial() || subsumed(cjs, c) || containsClause(out, c) {
				continue
			}
			out = append(out, c)
		}
		return out
	}
}

// clausal distributes an NNF formula into a set of clauses.
func clausal(f Form) []tuesday.Clause {
	switch f := f.(type) {
	case Atom:
		return []tuesday.Clause{tuesday.NewClause(atomLit(f, false))}
	case Not:
		a, ok := f.F.(Atom)
		if !ok {
			panic("formula: negation of non-atom after nnf")
		}
		return []tuesday.Clause{tuesday.NewClause(atomLit(a, true))}
	case And:
		return append(clausal(f.L), clausal(f.R)...)
	case Or:
		ls, rs := clausal(f.L), clausal(f.R)
		out := make([]tuesday.Clause, 0, len(ls)*len(rs))
		for _, c := range ls {
			for _, d := range rs {
				merged := tuesday.NewClause(append(slices.Clone([]lit.Lit(c)), d...)...)
				if !containsClause(out, merged) {
					out = append(out, merged)
				}
			}
		}
		return out
	default:
		panic("formula: unexpected connective after nnf")
	}
}

func atomLit(a Atom, neg bool) lit.Lit {
	if a < 1 {
		panic("formula: atom index must be positive")
	}
	return lit.New(int(a)-1, neg)
}

func containsClause(cs []tuesday.Clause, c tuesday.Clause) bool {
	return slices.ContainsFunc(cs, func(d tuesday.Clause) bool {
		return slices.Equal(c, d)
	})
}

// subsumed reports whether some clause of cs is a strict subset of c.
func subsumed(cs []tuesday.Clause, c tuesday.Clause) bool {
	for _, d := range cs {
		if len(d) >= len(c) {
			continue
		}
		strict := true
		for _, l := range d {
			if !c.Contains(l) {
				strict = false
				break
			}
		}
		if strict {
			return true
		}
	}
	return false
}

// DPSat reports whether f is satisfiable, deciding with DP.
func DPSat(f Form) bool { return tuesday.DP(CNF(f)) }

// DPTaut reports whether f is a tautology, deciding with DP.
func DPTaut(f Form) bool { return !DPSat(Not{f}) }

// DPLLSat reports whether f is satisfiable, deciding with DPLL.
func DPLLSat(f Form) bool { return tuesday.DPLL(CNF(f)) }

// DPLLTaut reports whether f is a tautology, deciding with DPLL.
func DPLLTaut(f Form) bool { return !DPLLSat(Not{f}) }

// DPLISat reports whether f is satisfiable, deciding with DPLI.
func DPLISat(f Form) bool { return tuesday.DPLI(CNF(f)) }

// DPLITaut reports whether f is a tautology, deciding with DPLI.
func DPLITaut(f Form) bool { return !DPLISat(Not{f}) }

// DPLBSat reports whether f is satisfiable, deciding with DPLB.
func DPLBSat(f Form) bool { return tuesday.DPLB(CNF(f)) }

// DPLBTaut reports whether f is a tautology, deciding with DPLB.
func DPLBTaut(f Form) bool { return !DPLBSat(Not{f}) }
