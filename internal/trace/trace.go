// Package trace holds the step/trace data model shared by every generator.
//
// A Trace is built once through a Recorder and is read-only afterwards: all
// accessors hand out copies, so neither the playback controller nor the
// presentation layer can alter a published step.
package trace

import (
	"fmt"
	"slices"
)

// SearchResult is the resolution of a search trace.
type SearchResult struct {
	Target int  `json:"target" yaml:"target"`
	Index  int  `json:"index" yaml:"index"`
	Found  bool `json:"found" yaml:"found"`
}

// Summary is what a results panel shows. It is read off the last step.
type Summary struct {
	Comparisons      int  `json:"comparisons" yaml:"comparisons"`
	Swaps            int  `json:"swaps" yaml:"swaps"`
	Steps            int  `json:"steps" yaml:"steps"`
	EarlyTermination bool `json:"earlyTermination" yaml:"earlyTermination"`
}

type Trace struct {
	algorithm string
	input     []int
	steps     []Step
	search    *SearchResult
}

func (t *Trace) Algorithm() string {
	if t == nil {
		return ""
	}
	return t.algorithm
}

// Input returns a copy of the array the trace was generated from.
func (t *Trace) Input() []int {
	if t == nil {
		return nil
	}
	return slices.Clone(t.input)
}

// Len is nil-safe so callers can treat "no trace" as an empty one.
func (t *Trace) Len() int {
	if t == nil {
		return 0
	}
	return len(t.steps)
}

func (t *Trace) At(i int) (Step, bool) {
	if t == nil || i < 0 || i >= len(t.steps) {
		return Step{}, false
	}
	return t.steps[i].Clone(), true
}

func (t *Trace) First() Step {
	s, _ := t.At(0)
	return s
}

func (t *Trace) Last() Step {
	s, _ := t.At(t.Len() - 1)
	return s
}

// Steps returns a deep copy of every step.
func (t *Trace) Steps() []Step {
	if t == nil {
		return nil
	}
	out := make([]Step, len(t.steps))
	for i, s := range t.steps {
		out[i] = s.Clone()
	}
	return out
}

func (t *Trace) Search() (SearchResult, bool) {
	if t == nil || t.search == nil {
		return SearchResult{}, false
	}
	return *t.search, true
}

func (t *Trace) Summary() Summary {
	if t.Len() == 0 {
		return Summary{}
	}
	last := t.steps[len(t.steps)-1]
	return Summary{
		Comparisons:      last.Comparisons,
		Swaps:            last.Swaps,
		Steps:            len(t.steps),
		EarlyTermination: last.EarlyTermination,
	}
}

// Validate checks the invariants every published trace must hold.
func (t *Trace) Validate() error {
	if t.Len() < 2 {
		return ErrEmptyTrace
	}

	if !isPaddedInput(t.steps[0].Array, t.input) {
		return &InvariantError{Step: 0, Reason: fmt.Sprintf("initial array %v is not the input %v", t.steps[0].Array, t.input)}
	}

	for i, s := range t.steps {
		if s.Comparisons < 0 || s.Swaps < 0 {
			return &InvariantError{Step: i, Reason: "negative counter"}
		}
		for _, h := range s.Highlighted {
			if h < 0 || h >= len(s.Array) {
				return &InvariantError{Step: i, Reason: fmt.Sprintf("highlighted index %d out of range [0,%d)", h, len(s.Array))}
			}
		}
		if i == 0 {
			continue
		}
		prev := t.steps[i-1]
		if s.Comparisons < prev.Comparisons {
			return &InvariantError{Step: i, Reason: fmt.Sprintf("comparisons went from %d to %d", prev.Comparisons, s.Comparisons)}
		}
		if s.Swaps < prev.Swaps {
			return &InvariantError{Step: i, Reason: fmt.Sprintf("swaps went from %d to %d", prev.Swaps, s.Swaps)}
		}
	}

	if t.search != nil && t.search.Found {
		final := t.steps[len(t.steps)-1].Array
		if t.search.Index < 0 || t.search.Index >= len(final) || final[t.search.Index] != t.search.Target {
			return &InvariantError{Step: len(t.steps) - 1, Reason: "reported search index does not hold the target"}
		}
	}

	return nil
}

// isPaddedInput reports whether arr is input, optionally followed by zeros.
func isPaddedInput(arr, input []int) bool {
	if len(arr) < len(input) || !slices.Equal(arr[:len(input)], input) {
		return false
	}
	for _, v := range arr[len(input):] {
		if v != 0 {
			return false
		}
	}
	return true
}

// Document is the serializable form of a trace used by exporters.
type Document struct {
	Algorithm string        `json:"algorithm" yaml:"algorithm"`
	Input     []int         `json:"input" yaml:"input"`
	Summary   Summary       `json:"summary" yaml:"summary"`
	Search    *SearchResult `json:"search,omitempty" yaml:"search,omitempty"`
	Steps     []Step        `json:"steps" yaml:"steps"`
}

func (t *Trace) Document() Document {
	doc := Document{
		Algorithm: t.Algorithm(),
		Input:     t.Input(),
		Summary:   t.Summary(),
		Steps:     t.Steps(),
	}
	if doc.Input == nil {
		doc.Input = []int{}
	}
	if r, ok := t.Search(); ok {
		doc.Search = &r
	}
	return doc
}
