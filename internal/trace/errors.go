package trace

import (
	"errors"
	"fmt"
)

var (
	// ErrInvariant is wrapped by every InvariantError.
	ErrInvariant = errors.New("trace: invariant violated")
	// ErrEmptyTrace is returned when a trace would be published with fewer
	// than an initial and a final step.
	ErrEmptyTrace = errors.New("trace: a trace needs at least an initial and a final step")
	// ErrSealed is returned when a Recorder is used after Finish.
	ErrSealed = errors.New("trace: recorder already finished")
)

// InvariantError pinpoints the step that broke a trace invariant.
type InvariantError struct {
	Step   int
	Reason string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("trace: step %d: %s", e.Step, e.Reason)
}

func (e *InvariantError) Unwrap() error {
	return ErrInvariant
}
