// Package edgecase labels an input array with the first matching edge case.
// The label is advisory: nothing in trace generation reads it.
package edgecase

import "fmt"

type Class int

const (
	None Class = iota
	Empty
	Singleton
	Sorted
	Reverse
	DuplicateHeavy
)

func (c Class) String() string {
	switch c {
	case None:
		return "none"
	case Empty:
		return "empty"
	case Singleton:
		return "singleton"
	case Sorted:
		return "sorted"
	case Reverse:
		return "reverse-sorted"
	case DuplicateHeavy:
		return "duplicate-heavy"
	default:
		return fmt.Sprintf("Class(%d)", int(c))
	}
}

// Advice is the sentence shown next to the input.
func (c Class) Advice() string {
	switch c {
	case Empty:
		return "⚠️ Empty array detected"
	case Singleton:
		return "✅ Single element - Already sorted"
	case Sorted:
		return "✅ Array already sorted - Best case scenario"
	case Reverse:
		return "⚠️ Reverse sorted array - Worst case for many algorithms"
	case DuplicateHeavy:
		return "⚠️ Many duplicate values - May affect algorithm behavior"
	default:
		return ""
	}
}

// Warning reports whether the class deserves a warning style.
func (c Class) Warning() bool {
	return c == Empty || c == Reverse || c == DuplicateHeavy
}

// Classify checks, in order: empty, single element, non-decreasing,
// non-increasing, fewer distinct values than half the length.
func Classify(arr []int) Class {
	switch len(arr) {
	case 0:
		return Empty
	case 1:
		return Singleton
	}

	if isSorted(arr) {
		return Sorted
	}
	if isReverseSorted(arr) {
		return Reverse
	}

	distinct := make(map[int]struct{}, len(arr))
	for _, v := range arr {
		distinct[v] = struct{}{}
	}
	// distinct < len/2, kept in integers
	if 2*len(distinct) < len(arr) {
		return DuplicateHeavy
	}

	return None
}

func isSorted(arr []int) bool {
	for i := 1; i < len(arr); i++ {
		if arr[i] < arr[i-1] {
			return false
		}
	}
	return true
}

func isReverseSorted(arr []int) bool {
	for i := 1; i < len(arr); i++ {
		if arr[i] > arr[i-1] {
			return false
		}
	}
	return true
}
