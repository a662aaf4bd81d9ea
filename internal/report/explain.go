package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/mabhi256/dsaviz/internal/algo"
)

const explainWidth = 80

var howItWorks = map[algo.Kind]string{
	algo.Bubble: "Walks the unsorted prefix comparing neighbours and swapping any pair that is out of order. " +
		"Each pass settles the largest remaining value at the end. A pass without swaps ends the sort early.",
	algo.Quick: "Picks the last element of a range as the pivot and moves every smaller value to its left " +
		"(Lomuto partition). The pivot lands in its final slot, then both sides are sorted recursively.",
	algo.Merge: "Splits the array in halves down to single elements, then merges neighbouring runs by " +
		"repeatedly taking the smaller head. Equal values keep their order.",
	algo.BinarySearch: "Sorts the input, then halves the search window around the middle element until the " +
		"target is found or the window is empty. The target is the middle element of the sorted array.",
	algo.Stack: "Pushes every input value onto the top of a fixed-size container, then pops them all off " +
		"again. The last value pushed is the first one out (LIFO).",
	algo.Queue: "Enqueues every input value at the back of a fixed-size container, then dequeues them from " +
		"the front. The first value in is the first one out (FIFO).",
}

// Markdown describes a as a markdown document.
func Markdown(a algo.Algorithm) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", a.Name)
	fmt.Fprintf(&b, "*%s* · id `%s`\n\n", a.Category, a.ID)

	if text, ok := howItWorks[a.Kind]; ok {
		b.WriteString("## How it works\n\n")
		b.WriteString(text)
		b.WriteString("\n\n")
	}

	b.WriteString("## Complexity\n\n")
	b.WriteString("| Best | Average | Worst | Space |\n")
	b.WriteString("|------|---------|-------|-------|\n")
	c := a.Complexity
	fmt.Fprintf(&b, "| %s | %s | %s | %s |\n\n", c.Best, c.Average, c.Worst, c.Space)

	var traits []string
	for _, t := range []struct {
		on   bool
		name string
	}{
		{a.Stable, "stable"},
		{a.InPlace, "in-place"},
		{a.Recursive, "recursive"},
		{a.Adaptive, "adaptive"},
	} {
		if t.on {
			traits = append(traits, "- "+t.name)
		}
	}
	if len(traits) > 0 {
		b.WriteString("## Traits\n\n")
		b.WriteString(strings.Join(traits, "\n"))
		b.WriteString("\n\n")
	}

	b.WriteString("## Try it\n\n")
	fmt.Fprintf(&b, "```sh\ndsaviz play %s --input \"64, 34, 25, 12, 22, 11, 90\"\n```\n", a.ID)
	return b.String()
}

// WriteExplanation renders Markdown(a) for the terminal.
func WriteExplanation(w io.Writer, a algo.Algorithm) error {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(explainWidth),
	)
	if err != nil {
		return fmt.Errorf("failed to create markdown renderer: %w", err)
	}

	out, err := renderer.Render(Markdown(a))
	if err != nil {
		return fmt.Errorf("failed to render explanation: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}
