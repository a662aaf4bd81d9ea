// Package algo generates step traces for the supported array algorithms.
//
// Each algorithm is a variant of Kind and carries its own generator in the
// registry; callers look an algorithm up once and run it:
//
//	a, err := algo.Lookup("bubble")
//	if err != nil {
//		return err // algo.ErrUnsupportedAlgorithm
//	}
//	tr, err := a.Generate([]int{5, 3, 8, 1})
//
// Generators are deterministic simulations. They never mutate the caller's
// slice, always record an initial and a final step, and publish either a
// complete validated trace or an error.
package algo

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mabhi256/dsaviz/internal/trace"
)

// ErrUnsupportedAlgorithm is returned for an id that names no algorithm.
var ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")

type Kind int

const (
	Bubble Kind = iota
	Quick
	Merge
	BinarySearch
	Stack
	Queue
)

// LastKind is the highest Kind, used when cycling through algorithms.
const LastKind = Queue

type Category string

const (
	Sorting        Category = "sorting"
	Searching      Category = "searching"
	DataStructures Category = "datastructures"
)

// Categories lists the categories in display order.
func Categories() []Category {
	return []Category{Sorting, Searching, DataStructures}
}

type Complexity struct {
	Best    string `json:"best" yaml:"best"`
	Average string `json:"average" yaml:"average"`
	Worst   string `json:"worst" yaml:"worst"`
	Space   string `json:"space" yaml:"space"`
}

type Algorithm struct {
	Kind       Kind
	ID         string
	Name       string
	Category   Category
	Complexity Complexity
	Stable     bool
	InPlace    bool
	Recursive  bool
	Adaptive   bool

	generate func(Algorithm, []int) (*trace.Trace, error)
}

// Generate runs the algorithm over a private copy of input.
func (a Algorithm) Generate(input []int) (*trace.Trace, error) {
	if a.generate == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, a.ID)
	}
	tr, err := a.generate(a, input)
	if err != nil {
		return nil, fmt.Errorf("generate %s: %w", a.ID, err)
	}
	return tr, nil
}

var registry = [...]Algorithm{
	Bubble: {
		Kind:       Bubble,
		ID:         "bubble",
		Name:       "Bubble Sort",
		Category:   Sorting,
		Complexity: Complexity{Best: "O(n)", Average: "O(n²)", Worst: "O(n²)", Space: "O(1)"},
		Stable:     true,
		InPlace:    true,
		Adaptive:   true,
		generate:   bubbleSort,
	},
	Quick: {
		Kind:       Quick,
		ID:         "quick",
		Name:       "Quick Sort",
		Category:   Sorting,
		Complexity: Complexity{Best: "O(n log n)", Average: "O(n log n)", Worst: "O(n²)", Space: "O(log n)"},
		InPlace:    true,
		Recursive:  true,
		generate:   quickSort,
	},
	Merge: {
		Kind:       Merge,
		ID:         "merge",
		Name:       "Merge Sort",
		Category:   Sorting,
		Complexity: Complexity{Best: "O(n log n)", Average: "O(n log n)", Worst: "O(n log n)", Space: "O(n)"},
		Stable:     true,
		Recursive:  true,
		generate:   mergeSort,
	},
	BinarySearch: {
		Kind:       BinarySearch,
		ID:         "binarySearch",
		Name:       "Binary Search",
		Category:   Searching,
		Complexity: Complexity{Best: "O(1)", Average: "O(log n)", Worst: "O(log n)", Space: "O(1)"},
		generate:   binarySearch,
	},
	Stack: {
		Kind:       Stack,
		ID:         "stack",
		Name:       "Stack Operations",
		Category:   DataStructures,
		Complexity: Complexity{Best: "O(1)", Average: "O(1)", Worst: "O(1)", Space: "O(n)"},
		generate:   stackOps,
	},
	Queue: {
		Kind:       Queue,
		ID:         "queue",
		Name:       "Queue Operations",
		Category:   DataStructures,
		Complexity: Complexity{Best: "O(1)", Average: "O(1)", Worst: "O(1)", Space: "O(n)"},
		generate:   queueOps,
	},
}

var aliases = map[string]Kind{
	"bubble": Bubble, "bubblesort": Bubble, "bubble-sort": Bubble,
	"quick": Quick, "quicksort": Quick, "quick-sort": Quick,
	"merge": Merge, "mergesort": Merge, "merge-sort": Merge,
	"binarysearch": BinarySearch, "binary-search": BinarySearch, "binary": BinarySearch,
	"stack": Stack,
	"queue": Queue,
}

func (k Kind) String() string {
	if a, ok := k.Algorithm(); ok {
		return a.ID
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Algorithm returns the registry entry of k.
func (k Kind) Algorithm() (Algorithm, bool) {
	if k < 0 || int(k) >= len(registry) {
		return Algorithm{}, false
	}
	return registry[k], true
}

// Lookup resolves an id or alias, ignoring case.
func Lookup(id string) (Algorithm, error) {
	kind, ok := aliases[strings.ToLower(strings.TrimSpace(id))]
	if !ok {
		return Algorithm{}, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, id)
	}
	return registry[kind], nil
}

// Generate looks id up and runs it over input.
func Generate(id string, input []int) (*trace.Trace, error) {
	a, err := Lookup(id)
	if err != nil {
		return nil, err
	}
	return a.Generate(input)
}

// All returns every algorithm in Kind order.
func All() []Algorithm {
	out := make([]Algorithm, len(registry))
	copy(out, registry[:])
	return out
}

// IDs returns the canonical ids in Kind order.
func IDs() []string {
	ids := make([]string, 0, len(registry))
	for _, a := range registry {
		ids = append(ids, a.ID)
	}
	return ids
}

// ByCategory returns the algorithms of c in Kind order.
func ByCategory(c Category) []Algorithm {
	var out []Algorithm
	for _, a := range registry {
		if a.Category == c {
			out = append(out, a)
		}
	}
	return out
}
