package trace

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorderStampsCountersAndCopiesArrays(t *testing.T) {
	arr := []int{3, 1, 2}
	r := NewRecorder("demo", arr)
	r.Record(Step{Array: arr, Description: "start"})

	r.Compare()
	arr[0], arr[1] = arr[1], arr[0]
	r.Swap()
	r.Record(Step{Array: arr, Highlighted: []int{0, 1}, Op: Swap})

	arr[1], arr[2] = arr[2], arr[1]
	r.Swap()
	tr, err := r.Finish(Step{Array: arr, Description: "done"})
	require.NoError(t, err)

	require.Equal(t, 3, tr.Len())
	assert.Equal(t, []int{3, 1, 2}, tr.First().Array, "earlier snapshots must not see later mutation")

	second, ok := tr.At(1)
	require.True(t, ok)
	assert.Equal(t, []int{1, 3, 2}, second.Array)
	assert.Equal(t, 1, second.Comparisons)
	assert.Equal(t, 1, second.Swaps)

	assert.Equal(t, Summary{Comparisons: 1, Swaps: 2, Steps: 3}, tr.Summary())
}

func TestTraceAccessorsReturnCopies(t *testing.T) {
	r := NewRecorder("demo", []int{1, 2})
	r.Record(Step{Array: []int{1, 2}, Highlighted: []int{0}})
	tr, err := r.Finish(Step{Array: []int{1, 2}})
	require.NoError(t, err)

	s, _ := tr.At(0)
	s.Array[0] = 99
	s.Highlighted[0] = 1

	again, _ := tr.At(0)
	if diff := cmp.Diff([]int{1, 2}, again.Array); diff != "" {
		t.Errorf("trace mutated through At (-want +got):\n%s", diff)
	}
	assert.Equal(t, []int{0}, again.Highlighted)

	steps := tr.Steps()
	steps[1].Array[1] = 42
	assert.Equal(t, []int{1, 2}, tr.Last().Array)
}

func TestFinishRejectsSingleStep(t *testing.T) {
	r := NewRecorder("demo", nil)
	_, err := r.Finish(Step{})
	require.ErrorIs(t, err, ErrEmptyTrace)

	_, err = r.Finish(Step{})
	require.ErrorIs(t, err, ErrSealed)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		trace *Trace
		step  int
	}{
		{
			name: "initial differs from input",
			trace: &Trace{input: []int{1, 2}, steps: []Step{
				{Array: []int{2, 1}}, {Array: []int{1, 2}},
			}},
			step: 0,
		},
		{
			name: "comparisons decrease",
			trace: &Trace{input: []int{1}, steps: []Step{
				{Array: []int{1}, Comparisons: 2}, {Array: []int{1}, Comparisons: 1},
			}},
			step: 1,
		},
		{
			name: "swaps decrease",
			trace: &Trace{input: []int{1}, steps: []Step{
				{Array: []int{1}, Swaps: 1}, {Array: []int{1}},
			}},
			step: 1,
		},
		{
			name: "highlight out of range",
			trace: &Trace{input: []int{1}, steps: []Step{
				{Array: []int{1}}, {Array: []int{1}, Highlighted: []int{1}},
			}},
			step: 1,
		},
		{
			name: "search index does not hold target",
			trace: &Trace{input: []int{1, 2}, search: &SearchResult{Target: 2, Index: 0, Found: true}, steps: []Step{
				{Array: []int{1, 2}}, {Array: []int{1, 2}},
			}},
			step: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.trace.Validate()
			require.ErrorIs(t, err, ErrInvariant)

			var ie *InvariantError
			require.True(t, errors.As(err, &ie))
			assert.Equal(t, tt.step, ie.Step)
		})
	}
}

func TestValidateAcceptsPaddedInitial(t *testing.T) {
	tr := &Trace{input: []int{4, 5}, steps: []Step{
		{Array: []int{4, 5, 0, 0}}, {Array: []int{0, 0, 0, 0}},
	}}
	require.NoError(t, tr.Validate())
}

func TestNilTraceIsEmpty(t *testing.T) {
	var tr *Trace
	assert.Equal(t, 0, tr.Len())
	_, ok := tr.At(0)
	assert.False(t, ok)
	assert.Equal(t, Summary{}, tr.Summary())
	assert.ErrorIs(t, tr.Validate(), ErrEmptyTrace)
}

func TestOpTypeText(t *testing.T) {
	for op := Compare; op <= Search; op++ {
		text, err := op.MarshalText()
		require.NoError(t, err)

		var back OpType
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, op, back)
	}

	_, err := ParseOpType("shuffle")
	assert.Error(t, err)
	assert.Equal(t, "OpType(42)", OpType(42).String())
}

func TestDocumentJSON(t *testing.T) {
	r := NewRecorder("binarySearch", []int{2, 1})
	r.Record(Step{Array: []int{2, 1}})
	r.Resolve(SearchResult{Target: 2, Index: 1, Found: true})
	tr, err := r.Finish(Step{Array: []int{1, 2}, Op: Search})
	require.NoError(t, err)

	data, err := json.Marshal(tr.Document())
	require.NoError(t, err)
	assert.Contains(t, string(data), `"operationType":"SEARCH"`)
	assert.Contains(t, string(data), `"search":{"target":2,"index":1,"found":true}`)
	assert.Contains(t, string(data), `"highlighted":[]`)
}
