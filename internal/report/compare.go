package report

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/sync/errgroup"

	"github.com/mabhi256/dsaviz/internal/algo"
	"github.com/mabhi256/dsaviz/internal/trace"
	"github.com/mabhi256/dsaviz/utils"
)

// Comparison is one algorithm's totals over a shared input.
type Comparison struct {
	ID       string
	Name     string
	Category algo.Category
	Summary  trace.Summary
}

// Compare runs every algorithm over its own copy of input, concurrently, and
// returns the totals in the order the algorithms were given.
func Compare(ctx context.Context, algorithms []algo.Algorithm, input []int) ([]Comparison, error) {
	out := make([]Comparison, len(algorithms))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, a := range algorithms {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			t, err := a.Generate(input)
			if err != nil {
				return err
			}
			out[i] = Comparison{ID: a.ID, Name: a.Name, Category: a.Category, Summary: t.Summary()}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// WriteComparison prints the totals as a table, lowest comparison count
// marked.
func WriteComparison(w io.Writer, rows []Comparison) error {
	best := -1
	for i, r := range rows {
		if r.Category != algo.Sorting {
			continue
		}
		if best < 0 || r.Summary.Comparisons < rows[best].Summary.Comparisons {
			best = i
		}
	}

	data := make([][]string, 0, len(rows))
	for i, r := range rows {
		name := r.Name
		if i == best {
			name += " 🏆"
		}
		early := ""
		if r.Summary.EarlyTermination {
			early = "✨"
		}
		data = append(data, []string{
			name,
			strconv.Itoa(r.Summary.Steps),
			strconv.Itoa(r.Summary.Comparisons),
			strconv.Itoa(r.Summary.Swaps),
			early,
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(utils.BorderColor)).
		Headers("ALGORITHM", "STEPS", "CMP", "SWP", "EARLY").
		Rows(data...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return utils.TitleStyle
			}
			if row == best {
				return utils.GoodStyle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})

	if _, err := fmt.Fprintln(w, t.Render()); err != nil {
		return fmt.Errorf("failed to write comparison: %w", err)
	}
	return nil
}
