package lit

import "testing"

func TestFromDimacs(t *testing.T) {
	if l := FromDimacs(12); l.Var() != 12 || l.Sign() {
		t.Fatalf("FromDimacs(12) = %v", l)
	}
	if l := FromDimacs(-12); l.Var() != 12 || !l.Sign() {
		t.Fatalf("FromDimacs(-12) = %v", l)
	}
	for _, i := range []int{1, -1, 7, -7, 100} {
		if got := FromDimacs(i).Dimacs(); got != i {
			t.Fatalf("round trip of %d gave %d", i, got)
		}
	}
}

func TestNot(t *testing.T) {
	l := New(5, false)
	if l.Not() != New(5, true) {
		t.Fatalf("Not() = %v", l.Not())
	}
	if l.Not().Not() != l {
		t.Fatal("complement is not an involution")
	}
}

func TestAdjacency(t *testing.T) {
	// A literal and its complement must be adjacent under the integer
	// order, with the positive one first.
	for v := 0; v < 8; v++ {
		pos, neg := New(v, false), New(v, true)
		if neg != pos+1 {
			t.Fatalf("encoding broken for var %d: %d %d", v, pos, neg)
		}
		if neg.Pos() != pos || pos.Pos() != pos {
			t.Fatalf("Pos() broken for var %d", v)
		}
	}
}

func TestString(t *testing.T) {
	if got := New(2, true).String(); got != "~3" {
		t.Fatalf("got %q", got)
	}
	if got := New(2, false).String(); got != "3" {
		t.Fatalf("got %q", got)
	}
}
