package trace

import (
	"fmt"
	"slices"
	"strings"
)

// OpType identifies the primitive operation a Step records.
type OpType int

const (
	Compare OpType = iota
	Swap
	Partition
	Merge
	Push
	Pop
	Enqueue
	Dequeue
	Search
)

var opNames = [...]string{
	Compare:   "COMPARE",
	Swap:      "SWAP",
	Partition: "PARTITION",
	Merge:     "MERGE",
	Push:      "PUSH",
	Pop:       "POP",
	Enqueue:   "ENQUEUE",
	Dequeue:   "DEQUEUE",
	Search:    "SEARCH",
}

func (o OpType) String() string {
	if o < 0 || int(o) >= len(opNames) {
		return fmt.Sprintf("OpType(%d)", int(o))
	}
	return opNames[o]
}

func (o OpType) MarshalText() ([]byte, error) {
	if o < 0 || int(o) >= len(opNames) {
		return nil, fmt.Errorf("unknown operation type %d", int(o))
	}
	return []byte(opNames[o]), nil
}

func (o *OpType) UnmarshalText(text []byte) error {
	op, err := ParseOpType(string(text))
	if err != nil {
		return err
	}
	*o = op
	return nil
}

// ParseOpType accepts the upper- or lower-case operation name.
func ParseOpType(s string) (OpType, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for i, n := range opNames {
		if n == name {
			return OpType(i), nil
		}
	}
	return 0, fmt.Errorf("unknown operation type %q", s)
}

// Step is one instant of an algorithm run. Array is a full snapshot, never a
// diff, and every Step owns its own copy of it.
type Step struct {
	Array       []int  `json:"array" yaml:"array"`
	Description string `json:"description" yaml:"description"`
	Comparisons int    `json:"comparisons" yaml:"comparisons"`
	Swaps       int    `json:"swaps" yaml:"swaps"`
	Highlighted []int  `json:"highlighted" yaml:"highlighted"`
	Op          OpType `json:"operationType" yaml:"operationType"`
	Rationale   string `json:"rationale" yaml:"rationale"`
	Invariant   string `json:"invariant" yaml:"invariant"`

	EdgeCaseHandled  bool `json:"edgeCaseHandled" yaml:"edgeCaseHandled"`
	EarlyTermination bool `json:"earlyTermination" yaml:"earlyTermination"`
}

// Clone returns a deep copy of the step.
func (s Step) Clone() Step {
	c := s
	c.Array = slices.Clone(s.Array)
	c.Highlighted = slices.Clone(s.Highlighted)
	if c.Array == nil {
		c.Array = []int{}
	}
	if c.Highlighted == nil {
		c.Highlighted = []int{}
	}
	return c
}

// IsHighlighted reports whether index i is part of this step's focus.
func (s Step) IsHighlighted(i int) bool {
	return slices.Contains(s.Highlighted, i)
}

// Range returns the indices lo..hi inclusive, or nil when hi < lo.
func Range(lo, hi int) []int {
	if hi < lo {
		return nil
	}
	out := make([]int, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		out = append(out, i)
	}
	return out
}
