package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/mabhi256/dsaviz/utils"
)

const descriptionWidth = 60

// WriteCLI prints a header, one table row per step and the results summary.
func (r *Report) WriteCLI(w io.Writer) error {
	var b strings.Builder

	b.WriteString(r.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(r.renderSteps())
	b.WriteString("\n")
	b.WriteString(r.renderSummary())
	b.WriteString("\n")

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to write listing: %w", err)
	}
	return nil
}

func (r *Report) renderHeader() string {
	a := r.Algorithm
	lines := []string{
		utils.TabActiveStyle.Render(a.Name) + " " +
			utils.MutedStyle.Render(fmt.Sprintf("%s · best %s · avg %s · worst %s · space %s",
				a.Category, a.Complexity.Best, a.Complexity.Average, a.Complexity.Worst, a.Complexity.Space)),
		utils.CreateMetricDisplay("Input", utils.RenderArray(r.Trace.Input(), nil), utils.TextColor),
	}
	if advice := r.EdgeCase.Advice(); advice != "" {
		lines = append(lines, utils.GetClassStyle(r.EdgeCase).Render(advice))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (r *Report) renderSteps() string {
	steps := r.Trace.Steps()
	rows := make([][]string, 0, len(steps))
	for i, s := range steps {
		rows = append(rows, []string{
			strconv.Itoa(i),
			utils.GetOpStyle(s.Op).Render(utils.GetOpIcon(s.Op) + " " + s.Op.String()),
			utils.RenderArray(s.Array, s.Highlighted),
			strconv.Itoa(s.Comparisons),
			strconv.Itoa(s.Swaps),
			utils.Truncate(s.Description, descriptionWidth),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(utils.BorderColor)).
		Headers("#", "OP", "ARRAY", "CMP", "SWP", "DESCRIPTION").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return utils.TitleStyle
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
	return t.Render()
}

func (r *Report) renderSummary() string {
	s := r.Trace.Summary()
	parts := []string{
		utils.CreateMetricDisplay("Comparisons", strconv.Itoa(s.Comparisons), utils.InfoColor),
		utils.CreateMetricDisplay("Swaps", strconv.Itoa(s.Swaps), utils.WarningColor),
		utils.CreateMetricDisplay("Steps", strconv.Itoa(s.Steps), utils.TextColor),
	}
	if res, ok := r.Trace.Search(); ok {
		found := fmt.Sprintf("%d at index %d", res.Target, res.Index)
		if !res.Found {
			found = fmt.Sprintf("%d not found", res.Target)
		}
		parts = append(parts, utils.CreateMetricDisplay("Target", found, utils.CriticalColor))
	}
	if s.EarlyTermination {
		parts = append(parts, utils.GoodStyle.Render("✨ early termination"))
	}
	return strings.Join(parts, "  ")
}
