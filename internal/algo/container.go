package algo

import (
	"fmt"
	"slices"

	"github.com/mabhi256/dsaviz/internal/trace"
)

// padded lays the container out in a fixed-width row, filling the tail with
// zeros so every snapshot of a run has the same length.
func padded(container []int, width int) []int {
	out := make([]int, width)
	copy(out, container)
	return out
}

// stackOps pushes every element, then pops until the stack is empty.
func stackOps(a Algorithm, input []int) (*trace.Trace, error) {
	arr := slices.Clone(input)
	width := len(arr)
	r := begin(a, arr)

	stack := make([]int, 0, width)
	for _, v := range arr {
		stack = append(stack, v)
		r.Record(trace.Step{
			Array:       padded(stack, width),
			Description: fmt.Sprintf("PUSH %d onto stack", v),
			Highlighted: []int{len(stack) - 1},
			Op:          trace.Push,
			Rationale:   "Adding element to top of stack",
			Invariant:   "Last-in, First-out (LIFO) principle maintained",
		})
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		r.Record(trace.Step{
			Array:       padded(stack, width),
			Description: fmt.Sprintf("POP %d from stack", top),
			Highlighted: []int{len(stack)},
			Op:          trace.Pop,
			Rationale:   "Removing top element from stack",
			Invariant:   "LIFO - Last element pushed is first popped",
		})
	}

	return finish(r, a, padded(nil, width), false)
}

// queueOps enqueues every element at the back, then dequeues from the front
// until the queue is empty. Snapshots list the queue front first.
func queueOps(a Algorithm, input []int) (*trace.Trace, error) {
	arr := slices.Clone(input)
	width := len(arr)
	r := begin(a, arr)

	queue := make([]int, 0, width)
	for _, v := range arr {
		queue = append(queue, v)
		r.Record(trace.Step{
			Array:       padded(queue, width),
			Description: fmt.Sprintf("ENQUEUE %d to queue", v),
			Highlighted: []int{len(queue) - 1},
			Op:          trace.Enqueue,
			Rationale:   "Adding element to back of queue",
			Invariant:   "First-in, First-out (FIFO) principle maintained",
		})
	}

	for len(queue) > 0 {
		front := queue[0]
		queue = queue[1:]
		r.Record(trace.Step{
			Array:       padded(queue, width),
			Description: fmt.Sprintf("DEQUEUE %d from queue", front),
			Highlighted: []int{0},
			Op:          trace.Dequeue,
			Rationale:   "Removing front element from queue",
			Invariant:   "FIFO - First element enqueued is first dequeued",
		})
	}

	return finish(r, a, padded(nil, width), false)
}
