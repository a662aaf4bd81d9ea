package algo

import (
	"fmt"
	"slices"

	"github.com/mabhi256/dsaviz/internal/trace"
)

// begin records the untouched input as the first step.
func begin(a Algorithm, arr []int) *trace.Recorder {
	r := trace.NewRecorder(a.ID, arr)
	r.Record(trace.Step{
		Array:       arr,
		Description: fmt.Sprintf("Starting %s...", a.Name),
		Op:          trace.Compare,
		Rationale:   "Initializing algorithm",
		Invariant:   "Array maintains original state",
	})
	return r
}

// finish records the terminal state and seals the trace.
func finish(r *trace.Recorder, a Algorithm, arr []int, early bool) (*trace.Trace, error) {
	desc := fmt.Sprintf("%s Complete!", a.Name)
	if early {
		desc += " ✨ (Early Termination Applied)"
	}
	return r.Finish(trace.Step{
		Array:            arr,
		Description:      desc,
		Op:               trace.Compare,
		Rationale:        "Algorithm execution finished",
		Invariant:        "Final sorted/processed array",
		EdgeCaseHandled:  early,
		EarlyTermination: early,
	})
}

// bubbleSort runs adjacent-exchange passes. Only a clean *first* pass ends
// the run early; a later pass without swaps still lets the remaining passes
// run, which keeps trace lengths identical to the reference visualizer.
func bubbleSort(a Algorithm, input []int) (*trace.Trace, error) {
	arr := slices.Clone(input)
	r := begin(a, arr)
	n := len(arr)
	early := false

	for i := 0; i < n-1; i++ {
		swapped := false

		for j := 0; j < n-i-1; j++ {
			r.Compare()
			r.Record(trace.Step{
				Array:       arr,
				Description: fmt.Sprintf("Comparing arr[%d](%d) and arr[%d](%d)", j, arr[j], j+1, arr[j+1]),
				Highlighted: []int{j, j + 1},
				Op:          trace.Compare,
				Rationale:   "Checking if adjacent elements are in correct order",
				Invariant:   "Elements after n-i-1 are already sorted",
			})

			if arr[j] > arr[j+1] {
				arr[j], arr[j+1] = arr[j+1], arr[j]
				r.Swap()
				r.Record(trace.Step{
					Array:       arr,
					Description: fmt.Sprintf("Swapped arr[%d] and arr[%d]", j, j+1),
					Highlighted: []int{j, j + 1},
					Op:          trace.Swap,
					Rationale:   "Elements were out of order - moving larger element right",
					Invariant:   "After swap, arr[j] ≤ arr[j+1]",
				})
				swapped = true
			}
		}

		if !swapped && i == 0 {
			early = true
			r.Record(trace.Step{
				Array:            arr,
				Description:      "✨ EARLY TERMINATION: No swaps needed - array already sorted!",
				Op:               trace.Compare,
				Rationale:        "Best case detected - algorithm can terminate early",
				Invariant:        "Array is already sorted",
				EdgeCaseHandled:  true,
				EarlyTermination: true,
			})
			break
		}

		settled := make([]int, 0, i+1)
		for k := 0; k <= i; k++ {
			settled = append(settled, n-1-k)
		}
		r.Record(trace.Step{
			Array:       arr,
			Description: fmt.Sprintf("Pass %d complete - %d swaps made", i+1, r.Swaps()),
			Highlighted: settled,
			Op:          trace.Compare,
			Rationale:   fmt.Sprintf("Completed outer loop iteration %d", i+1),
			Invariant:   fmt.Sprintf("Last %d elements are in final positions", i+1),
		})
	}

	return finish(r, a, arr, early)
}

// quickSort uses Lomuto partitioning with the last element of each range as
// the pivot, recursing into the left partition before the right one.
func quickSort(a Algorithm, input []int) (*trace.Trace, error) {
	arr := slices.Clone(input)
	r := begin(a, arr)

	partition := func(lo, hi int) int {
		pivot := arr[hi]
		i := lo - 1

		r.Record(trace.Step{
			Array:       arr,
			Description: fmt.Sprintf("Selecting pivot: arr[%d] = %d", hi, pivot),
			Highlighted: []int{hi},
			Op:          trace.Partition,
			Rationale:   "Choosing pivot element for partition",
			Invariant:   "Pivot element will be in correct position after partition",
		})

		for j := lo; j < hi; j++ {
			r.Compare()
			r.Record(trace.Step{
				Array:       arr,
				Description: fmt.Sprintf("Comparing arr[%d](%d) with pivot(%d)", j, arr[j], pivot),
				Highlighted: []int{j, hi},
				Op:          trace.Compare,
				Rationale:   "Checking if element should be on left of pivot",
				Invariant:   "Maintaining partition boundary",
			})

			if arr[j] < pivot {
				i++
				// i == j still counts as an exchange
				arr[i], arr[j] = arr[j], arr[i]
				r.Swap()
				r.Record(trace.Step{
					Array:       arr,
					Description: fmt.Sprintf("Swapped arr[%d] and arr[%d]", i, j),
					Highlighted: []int{i, j},
					Op:          trace.Swap,
					Rationale:   "Moving smaller element to left partition",
					Invariant:   "All elements left of i are < pivot",
				})
			}
		}

		arr[i+1], arr[hi] = arr[hi], arr[i+1]
		r.Swap()
		r.Record(trace.Step{
			Array:       arr,
			Description: fmt.Sprintf("Placed pivot at correct position %d", i+1),
			Highlighted: []int{i + 1},
			Op:          trace.Swap,
			Rationale:   "Moving pivot to its final sorted position",
			Invariant:   "Pivot is now in correct sorted position",
		})

		return i + 1
	}

	var sortRange func(lo, hi int)
	sortRange = func(lo, hi int) {
		if lo >= hi {
			return
		}
		p := partition(lo, hi)
		sortRange(lo, p-1)
		sortRange(p+1, hi)
	}
	sortRange(0, len(arr)-1)

	return finish(r, a, arr, false)
}

// mergeSort splits top-down and merges back. Placements are tagged SWAP so
// the presentation animates them, but only comparisons are counted.
func mergeSort(a Algorithm, input []int) (*trace.Trace, error) {
	arr := slices.Clone(input)
	r := begin(a, arr)

	place := func(k, v int, desc, why string) {
		arr[k] = v
		r.Record(trace.Step{
			Array:       arr,
			Description: desc,
			Highlighted: []int{k},
			Op:          trace.Swap,
			Rationale:   why,
			Invariant:   "Merging remaining elements",
		})
	}

	merge := func(left, mid, right int) {
		l := slices.Clone(arr[left : mid+1])
		rr := slices.Clone(arr[mid+1 : right+1])
		i, j, k := 0, 0, left

		for i < len(l) && j < len(rr) {
			r.Compare()
			r.Record(trace.Step{
				Array:       arr,
				Description: fmt.Sprintf("Comparing %d from left and %d from right sub-array", l[i], rr[j]),
				Highlighted: []int{left + i, mid + 1 + j},
				Op:          trace.Compare,
				Rationale:   "Comparing values to merge in sorted order",
				Invariant:   "L and R sub-arrays are individually sorted",
			})

			// <= keeps equal keys in their original order
			var v int
			if l[i] <= rr[j] {
				v = l[i]
				i++
			} else {
				v = rr[j]
				j++
			}
			arr[k] = v
			r.Record(trace.Step{
				Array:       arr,
				Description: fmt.Sprintf("Placed %d at index %d", v, k),
				Highlighted: []int{k},
				Op:          trace.Swap,
				Rationale:   "Moving the smaller element into the merged array",
				Invariant:   fmt.Sprintf("Elements %d to %d are now sorted relative to each other", left, k),
			})
			k++
		}

		for ; i < len(l); i, k = i+1, k+1 {
			place(k, l[i], fmt.Sprintf("Copying remaining element %d from left sub-array", l[i]),
				"Left sub-array has remaining elements")
		}
		for ; j < len(rr); j, k = j+1, k+1 {
			place(k, rr[j], fmt.Sprintf("Copying remaining element %d from right sub-array", rr[j]),
				"Right sub-array has remaining elements")
		}
	}

	var sortRange func(left, right int)
	sortRange = func(left, right int) {
		if left >= right {
			return
		}
		mid := left + (right-left)/2

		r.Record(trace.Step{
			Array:       arr,
			Description: fmt.Sprintf("Splitting array: [%d...%d] and [%d...%d]", left, mid, mid+1, right),
			Highlighted: trace.Range(left, right),
			Op:          trace.Merge,
			Rationale:   "Divide phase: Recursively splitting the problem",
			Invariant:   "Divide and Conquer approach",
		})

		sortRange(left, mid)
		sortRange(mid+1, right)
		merge(left, mid, right)
	}
	sortRange(0, len(arr)-1)

	return finish(r, a, arr, false)
}
