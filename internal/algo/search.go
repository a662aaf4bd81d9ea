package algo

import (
	"fmt"
	"slices"

	"github.com/mabhi256/dsaviz/internal/trace"
)

// binarySearch sorts a copy of the input and searches it for its own middle
// element, sorted[len/2]. The target is therefore always present; it is not
// user supplied.
func binarySearch(a Algorithm, input []int) (*trace.Trace, error) {
	arr := slices.Clone(input)
	r := begin(a, arr)

	sorted := slices.Clone(arr)
	slices.Sort(sorted)
	if len(sorted) == 0 {
		return finish(r, a, sorted, false)
	}

	target := sorted[len(sorted)/2]
	r.Record(trace.Step{
		Array:       sorted,
		Description: fmt.Sprintf("Binary Search: Looking for value %d in sorted array", target),
		Op:          trace.Search,
		Rationale:   "Initializing search with sorted array",
		Invariant:   fmt.Sprintf("Search space: [0, %d]", len(sorted)-1),
	})

	left, right := 0, len(sorted)-1
	found := false

	for left <= right {
		mid := left + (right-left)/2
		r.Compare()
		r.Record(trace.Step{
			Array:       sorted,
			Description: fmt.Sprintf("Checking middle element arr[%d] = %d", mid, sorted[mid]),
			Highlighted: []int{mid},
			Op:          trace.Search,
			Rationale:   "Examining midpoint of current search space",
			Invariant:   "Maintaining search space boundaries",
		})

		switch {
		case sorted[mid] == target:
			found = true
			r.Resolve(trace.SearchResult{Target: target, Index: mid, Found: true})
			r.Record(trace.Step{
				Array:       sorted,
				Description: fmt.Sprintf("🎯 FOUND: Target %d at index %d", target, mid),
				Highlighted: []int{mid},
				Op:          trace.Search,
				Rationale:   "Element matches search target",
				Invariant:   "Target found, search complete",
			})
		case sorted[mid] < target:
			r.Record(trace.Step{
				Array:       sorted,
				Description: fmt.Sprintf("Target > arr[%d], searching RIGHT half [%d, %d]", mid, mid+1, right),
				Highlighted: trace.Range(mid+1, right),
				Op:          trace.Search,
				Rationale:   "Target is larger than middle element",
				Invariant:   fmt.Sprintf("Target must be in right half [%d, %d]", mid+1, right),
			})
			left = mid + 1
		default:
			r.Record(trace.Step{
				Array:       sorted,
				Description: fmt.Sprintf("Target < arr[%d], searching LEFT half [%d, %d]", mid, left, mid-1),
				Highlighted: trace.Range(left, mid-1),
				Op:          trace.Search,
				Rationale:   "Target is smaller than middle element",
				Invariant:   fmt.Sprintf("Target must be in left half [%d, %d]", left, mid-1),
			})
			right = mid - 1
		}

		if found {
			break
		}
	}

	if !found {
		r.Resolve(trace.SearchResult{Target: target, Index: -1})
		r.Record(trace.Step{
			Array:       sorted,
			Description: fmt.Sprintf("Target %d not found in array", target),
			Op:          trace.Search,
			Rationale:   "Exhausted search space without finding target",
			Invariant:   "Target does not exist in array",
		})
	}

	return finish(r, a, sorted, false)
}
