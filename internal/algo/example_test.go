package algo_test

import (
	"fmt"

	"github.com/mabhi256/dsaviz/internal/algo"
)

// ExampleGenerate runs bubble sort over a small array and reads the results
// panel figures off the finished trace.
func ExampleGenerate() {
	tr, err := algo.Generate("bubble", []int{5, 3, 8, 1})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	s := tr.Summary()
	fmt.Println(tr.Last().Array)
	fmt.Printf("comparisons=%d swaps=%d steps=%d early=%v\n", s.Comparisons, s.Swaps, s.Steps, s.EarlyTermination)
	// Output:
	// [1 3 5 8]
	// comparisons=6 swaps=4 steps=15 early=false
}

// ExampleLookup lists the operations of a stack simulation.
func ExampleLookup() {
	a, err := algo.Lookup("stack")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	tr, _ := a.Generate([]int{1, 2, 3})
	for _, s := range tr.Steps()[1 : tr.Len()-1] {
		fmt.Println(s.Description)
	}
	// Output:
	// PUSH 1 onto stack
	// PUSH 2 onto stack
	// PUSH 3 onto stack
	// POP 3 from stack
	// POP 2 from stack
	// POP 1 from stack
}
