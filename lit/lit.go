// Package lit defines the literal type shared by the decision procedures.
//
// A literal is an atomic proposition or its negation, packed into an int:
// variable v (1-based) becomes 2(v-1) when positive and 2(v-1)+1 when
// negated. The sign lives in the least significant bit, so a literal and its
// complement are adjacent under the natural integer order and complementation
// is a single XOR.
package lit

import "strconv"

// None denotes the absence of a literal.
const None = Lit(-1)

// Lit is a packed literal. The zero value is the positive literal of
// variable 1.
type Lit int

// New returns the literal for the 0-indexed variable v, negated if neg.
func New(v int, neg bool) Lit {
	if neg {
		return Lit(2*v + 1)
	}
	return Lit(2 * v)
}

// FromDimacs converts a nonzero DIMACS-style integer (negative means
// negated) to a literal. The caller is responsible for rejecting zero.
func FromDimacs(i int) Lit {
	if i < 0 {
		return New(-i-1, true)
	}
	return New(i-1, false)
}

// Not returns the complement of l. Not is an involution.
func (l Lit) Not() Lit { return l ^ 1 }

// Sign reports whether l is negated.
func (l Lit) Sign() bool { return l&1 == 1 }

// Pos returns the positive literal of l's variable.
func (l Lit) Pos() Lit { return l &^ 1 }

// Index returns the 0-based variable index of l.
func (l Lit) Index() int { return int(l >> 1) }

// Var returns the 1-based variable of l.
func (l Lit) Var() int { return int(l>>1) + 1 }

// Dimacs returns l as a DIMACS-style integer.
func (l Lit) Dimacs() int {
	if l.Sign() {
		return -l.Var()
	}
	return l.Var()
}

func (l Lit) String() string {
	if l == None {
		return "<none>"
	}
	if l.Sign() {
		return "~" + strconv.Itoa(l.Var())
	}
	return strconv.Itoa(l.Var())
}
