package algo_test

import (
	"math/rand"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mabhi256/dsaviz/internal/algo"
	"github.com/mabhi256/dsaviz/internal/trace"
)

var sorts = []string{"bubble", "quick", "merge"}

func randomArrays(seed int64, count int) [][]int {
	rng := rand.New(rand.NewSource(seed))
	out := make([][]int, 0, count)
	for range count {
		arr := make([]int, rng.Intn(12))
		for i := range arr {
			arr[i] = rng.Intn(21) - 10
		}
		out = append(out, arr)
	}
	return out
}

func ops(tr *trace.Trace) []trace.OpType {
	steps := tr.Steps()
	out := make([]trace.OpType, 0, len(steps))
	for _, s := range steps[1 : len(steps)-1] {
		out = append(out, s.Op)
	}
	return out
}

func TestSortsEndSorted(t *testing.T) {
	for _, id := range sorts {
		for _, arr := range randomArrays(42, 200) {
			tr, err := algo.Generate(id, arr)
			require.NoError(t, err)

			want := slices.Sorted(slices.Values(arr))
			if want == nil {
				want = []int{}
			}
			if diff := cmp.Diff(want, tr.Last().Array); diff != "" {
				t.Fatalf("%s(%v) final array mismatch (-want +got):\n%s", id, arr, diff)
			}
		}
	}
}

func TestCountersNeverDecrease(t *testing.T) {
	for _, id := range algo.IDs() {
		for _, arr := range randomArrays(7, 50) {
			tr, err := algo.Generate(id, arr)
			require.NoError(t, err)

			steps := tr.Steps()
			for i := 1; i < len(steps); i++ {
				require.GreaterOrEqual(t, steps[i].Comparisons, steps[i-1].Comparisons, "%s step %d", id, i)
				require.GreaterOrEqual(t, steps[i].Swaps, steps[i-1].Swaps, "%s step %d", id, i)
			}
			for i, s := range steps {
				for _, h := range s.Highlighted {
					require.True(t, h >= 0 && h < len(s.Array), "%s step %d highlights %d", id, i, h)
				}
			}
		}
	}
}

func TestGeneratorsDoNotMutateInput(t *testing.T) {
	for _, id := range algo.IDs() {
		arr := []int{5, 3, 8, 1, 3}
		tr, err := algo.Generate(id, arr)
		require.NoError(t, err)
		assert.Equal(t, []int{5, 3, 8, 1, 3}, arr, id)
		assert.Equal(t, arr, tr.First().Array, "%s must start from the input", id)
		assert.Equal(t, arr, tr.Input())
	}
}

func TestBubbleSortExample(t *testing.T) {
	tr, err := algo.Generate("bubble", []int{5, 3, 8, 1})
	require.NoError(t, err)

	last := tr.Last()
	assert.Equal(t, []int{1, 3, 5, 8}, last.Array)
	assert.Equal(t, 4, last.Swaps)
	assert.Equal(t, 6, last.Comparisons)
	assert.False(t, last.EarlyTermination)
	assert.Equal(t, trace.Summary{Comparisons: 6, Swaps: 4, Steps: 15}, tr.Summary())
}

func TestBubbleSortEarlyTermination(t *testing.T) {
	tr, err := algo.Generate("bubble", []int{1, 2, 3})
	require.NoError(t, err)

	require.Equal(t, 5, tr.Len())
	last := tr.Last()
	assert.True(t, last.EarlyTermination)
	assert.True(t, last.EdgeCaseHandled)
	assert.Equal(t, 0, last.Swaps)
	assert.Equal(t, 2, last.Comparisons)
	assert.Contains(t, last.Description, "Early Termination")

	marker, _ := tr.At(3)
	assert.True(t, marker.EarlyTermination)
	assert.Contains(t, marker.Description, "EARLY TERMINATION")
}

func TestBubbleSortSortedInputsTerminateEarly(t *testing.T) {
	for n := 2; n < 10; n++ {
		arr := make([]int, n)
		for i := range arr {
			arr[i] = i / 2
		}
		tr, err := algo.Generate("bubble", arr)
		require.NoError(t, err)

		s := tr.Summary()
		assert.True(t, s.EarlyTermination, "n=%d", n)
		assert.Zero(t, s.Swaps, "n=%d", n)
		assert.Equal(t, n-1, s.Comparisons, "n=%d", n)
	}
}

func TestBubbleSortLaterCleanPassDoesNotTerminate(t *testing.T) {
	// pass 1 swaps once, pass 2 is clean but the run continues to pass 3
	tr, err := algo.Generate("bubble", []int{2, 1, 3, 4})
	require.NoError(t, err)

	passes := 0
	for _, s := range tr.Steps() {
		if strings.HasPrefix(s.Description, "Pass ") {
			passes++
		}
	}
	assert.Equal(t, 3, passes)
	assert.False(t, tr.Summary().EarlyTermination)
	assert.Equal(t, 6, tr.Summary().Comparisons)
}

func TestSingleElementTraces(t *testing.T) {
	for _, id := range sorts {
		tr, err := algo.Generate(id, []int{7})
		require.NoError(t, err)
		require.Equal(t, 2, tr.Len(), id)
		assert.Equal(t, []int{7}, tr.First().Array)
		assert.Equal(t, []int{7}, tr.Last().Array)
	}
}

func TestEmptyInputYieldsMinimalTrace(t *testing.T) {
	for _, id := range algo.IDs() {
		tr, err := algo.Generate(id, nil)
		require.NoError(t, err, id)
		assert.Equal(t, 2, tr.Len(), id)
		assert.Empty(t, tr.Last().Array, id)
	}
}

func TestQuickSortLomuto(t *testing.T) {
	tr, err := algo.Generate("quick", []int{3, 1, 2})
	require.NoError(t, err)

	assert.Equal(t, []trace.OpType{
		trace.Partition, trace.Compare, trace.Compare, trace.Swap, trace.Swap,
	}, ops(tr))

	pivot, _ := tr.At(1)
	assert.Equal(t, []int{2}, pivot.Highlighted, "pivot is the last element")
	assert.Equal(t, trace.Summary{Comparisons: 2, Swaps: 2, Steps: 7}, tr.Summary())
}

func TestMergeSortOperations(t *testing.T) {
	tr, err := algo.Generate("merge", []int{2, 1})
	require.NoError(t, err)

	// split, compare, place 1, copy leftover 2
	assert.Equal(t, []trace.OpType{trace.Merge, trace.Compare, trace.Swap, trace.Swap}, ops(tr))
	split, _ := tr.At(1)
	assert.Equal(t, []int{0, 1}, split.Highlighted)
	assert.Equal(t, 1, tr.Summary().Comparisons)
	assert.Zero(t, tr.Summary().Swaps)
}

func TestBinarySearch(t *testing.T) {
	for _, arr := range randomArrays(3, 100) {
		tr, err := algo.Generate("binarySearch", arr)
		require.NoError(t, err)

		sorted := slices.Sorted(slices.Values(arr))
		res, ok := tr.Search()
		if len(arr) == 0 {
			assert.False(t, ok)
			assert.Equal(t, 2, tr.Len())
			continue
		}

		require.True(t, ok)
		assert.Contains(t, sorted, res.Target)
		require.True(t, res.Found)
		assert.Equal(t, res.Target, sorted[res.Index])
		assert.Equal(t, sorted, tr.Last().Array)

		penultimate, _ := tr.At(tr.Len() - 2)
		assert.Contains(t, penultimate.Description, "FOUND")
		assert.Equal(t, []int{res.Index}, penultimate.Highlighted)
	}
}

func TestBinarySearchTargetIsMiddleOfSortedCopy(t *testing.T) {
	tr, err := algo.Generate("binary-search", []int{9, 1, 5, 3, 7})
	require.NoError(t, err)

	res, ok := tr.Search()
	require.True(t, ok)
	assert.Equal(t, trace.SearchResult{Target: 5, Index: 2, Found: true}, res)

	intro, _ := tr.At(1)
	assert.Equal(t, []int{1, 3, 5, 7, 9}, intro.Array)
	assert.Equal(t, trace.Search, intro.Op)
}

func TestStackSimulation(t *testing.T) {
	tr, err := algo.Generate("stack", []int{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, 8, tr.Len())

	assert.Equal(t, []trace.OpType{
		trace.Push, trace.Push, trace.Push, trace.Pop, trace.Pop, trace.Pop,
	}, ops(tr))

	var descs []string
	for _, s := range tr.Steps()[1:7] {
		descs = append(descs, s.Description)
	}
	assert.Equal(t, []string{
		"PUSH 1 onto stack", "PUSH 2 onto stack", "PUSH 3 onto stack",
		"POP 3 from stack", "POP 2 from stack", "POP 1 from stack",
	}, descs)

	afterTwoPushes, _ := tr.At(2)
	assert.Equal(t, []int{1, 2, 0}, afterTwoPushes.Array)
	assert.Equal(t, []int{0, 0, 0}, tr.Last().Array)
}

func TestQueueSimulation(t *testing.T) {
	tr, err := algo.Generate("queue", []int{1, 2, 3})
	require.NoError(t, err)

	assert.Equal(t, []trace.OpType{
		trace.Enqueue, trace.Enqueue, trace.Enqueue, trace.Dequeue, trace.Dequeue, trace.Dequeue,
	}, ops(tr))

	firstOut, _ := tr.At(4)
	assert.Equal(t, "DEQUEUE 1 from queue", firstOut.Description)
	assert.Equal(t, []int{2, 3, 0}, firstOut.Array)
	assert.Equal(t, []int{0, 0, 0}, tr.Last().Array)
}

func TestUnsupportedAlgorithm(t *testing.T) {
	tr, err := algo.Generate("bogo", []int{1, 2})
	require.ErrorIs(t, err, algo.ErrUnsupportedAlgorithm)
	assert.Nil(t, tr)

	_, err = algo.Algorithm{ID: "empty"}.Generate([]int{1})
	assert.ErrorIs(t, err, algo.ErrUnsupportedAlgorithm)
}

func TestLookup(t *testing.T) {
	for alias, want := range map[string]algo.Kind{
		"Bubble":       algo.Bubble,
		" quicksort ":  algo.Quick,
		"MERGE-SORT":   algo.Merge,
		"binarySearch": algo.BinarySearch,
		"stack":        algo.Stack,
		"queue":        algo.Queue,
	} {
		a, err := algo.Lookup(alias)
		require.NoError(t, err, alias)
		assert.Equal(t, want, a.Kind)
	}

	assert.Equal(t, "binarySearch", algo.BinarySearch.String())
	assert.Equal(t, "Kind(99)", algo.Kind(99).String())
	assert.Len(t, algo.ByCategory(algo.Sorting), 3)
	assert.Len(t, algo.All(), int(algo.LastKind)+1)
}
