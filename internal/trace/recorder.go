package trace

import "slices"

// Recorder accumulates steps for one algorithm run. It owns the comparison
// and swap counters, so generators can only move them forward.
type Recorder struct {
	algorithm string
	input     []int
	steps     []Step
	search    *SearchResult

	comparisons int
	swaps       int
	sealed      bool
}

func NewRecorder(algorithm string, input []int) *Recorder {
	return &Recorder{
		algorithm: algorithm,
		input:     slices.Clone(input),
	}
}

// Compare counts one comparison.
func (r *Recorder) Compare() {
	r.comparisons++
}

// Swap counts one exchange.
func (r *Recorder) Swap() {
	r.swaps++
}

func (r *Recorder) Comparisons() int { return r.comparisons }
func (r *Recorder) Swaps() int       { return r.swaps }

// Record appends a snapshot of s. Array and Highlighted are copied and the
// counters are stamped from the recorder.
func (r *Recorder) Record(s Step) {
	if r.sealed {
		return
	}
	s = s.Clone()
	s.Comparisons = r.comparisons
	s.Swaps = r.swaps
	r.steps = append(r.steps, s)
}

// Resolve attaches the outcome of a search run.
func (r *Recorder) Resolve(res SearchResult) {
	r.search = &res
}

// Len is the number of steps recorded so far.
func (r *Recorder) Len() int { return len(r.steps) }

// Finish records the final step and publishes the trace. Either a complete,
// valid trace comes back or an error and no trace.
func (r *Recorder) Finish(final Step) (*Trace, error) {
	if r.sealed {
		return nil, ErrSealed
	}
	r.Record(final)
	r.sealed = true

	t := &Trace{
		algorithm: r.algorithm,
		input:     r.input,
		steps:     r.steps,
		search:    r.search,
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}
