package tuesday_test

import (
	"fmt"

	"github.com/satlib/tuesday"
)

func ExampleDPLL() {
	// Problem: (¬x ∨ ¬y) ∧ (¬y ∨ z) ∧ (x ∨ ¬z ∨ y) ∧ y

	// Encode it using integers, negative for negation.
	cs, err := tuesday.NewClauseSet([][]int{
		{-1, -2},
		{-2, 3},
		{1, -3, 2},
		{2},
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(tuesday.DPLL(cs))
	// Output: true
}

func ExampleDPLBStats() {
	// x ∧ ¬x is unsatisfiable.
	cs, _ := tuesday.NewClauseSet([][]int{{1}, {-1}})
	sat, _ := tuesday.DPLBStats(cs)
	fmt.Println(sat)
	// Output: false
}
