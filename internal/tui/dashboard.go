package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mabhi256/dsaviz/internal/algo"
	"github.com/mabhi256/dsaviz/internal/input"
	"github.com/mabhi256/dsaviz/utils"
)

func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	if m.width < MinWidth {
		return "Terminal too narrow"
	}

	sections := []string{
		m.renderHeader(),
		m.renderInputLine(),
	}

	mainWidth := m.width
	if m.width >= 2*SidePanelWidth+MinWidth {
		mainWidth = m.width - SidePanelWidth - 1
	}

	left := lipgloss.JoinVertical(lipgloss.Left,
		RenderBars(m.step, m.state.AtEnd(), max(10, mainWidth-2), ChartHeight),
		narrationStyle.Render(utils.Truncate(m.state.Narration, mainWidth-2)),
		m.renderProgress(),
	)

	if mainWidth < m.width {
		right := lipgloss.JoinVertical(lipgloss.Left,
			m.renderResults(SidePanelWidth),
			m.renderComplexity(SidePanelWidth),
		)
		sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right))
	} else {
		sections = append(sections, left, m.renderResults(m.width))
	}

	if m.showExplanation {
		sections = append(sections, m.renderExplanation(m.width))
	}
	if m.editing {
		sections = append(sections, m.renderEditor())
	}
	if m.genErr != nil {
		sections = append(sections, utils.ErrorStyle.Render("✗ "+m.genErr.Error()))
	}

	sections = append(sections, utils.HelpBarStyle.Render(m.help.View(m.keys)))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) renderHeader() string {
	var tabs []string
	for _, a := range algo.All() {
		style := utils.TabInactiveStyle
		indicator := " "
		if a.Kind == m.kind {
			style = utils.TabActiveStyle
			indicator = "●"
		}
		tabs = append(tabs, style.Render(indicator+" "+a.Name))
	}

	tabLine := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	border := utils.MutedStyle.Render(strings.Repeat("─", m.width))
	return lipgloss.JoinVertical(lipgloss.Left, tabLine, border)
}

func (m *Model) renderInputLine() string {
	line := utils.CreateMetricDisplay("Input", input.Format(m.input), utils.TextColor)
	if advice := m.class.Advice(); advice != "" {
		line += "  " + utils.GetClassStyle(m.class).Render(advice)
	}
	return line
}

func (m *Model) renderProgress() string {
	pct := 0.0
	if m.state.Len > 1 {
		pct = float64(m.state.Cursor) / float64(m.state.Len-1)
	}

	badge := pausedBadge
	if m.state.Running {
		badge = playingBadge
	}
	position := utils.MutedStyle.Render(fmt.Sprintf(" %d/%d", m.state.Cursor+1, m.state.Len))
	return badge + " " + m.progress.ViewAs(pct) + position
}

func (m *Model) renderResults(width int) string {
	speed := utils.FormatSpeed(m.state.Speed, m.ctrl.Interval())
	lines := []string{
		utils.CreateMetricDisplay("Comparisons", fmt.Sprint(m.step.Comparisons), utils.InfoColor),
		utils.CreateMetricDisplay("Swaps", fmt.Sprint(m.step.Swaps), utils.WarningColor),
		utils.CreateMetricDisplay("Step", fmt.Sprintf("%d of %d", m.state.Cursor+1, m.state.Len), utils.TextColor),
		utils.CreateMetricDisplay("Operation", utils.GetOpIcon(m.step.Op)+" "+m.step.Op.String(), utils.AccentColor),
		utils.CreateMetricDisplay("Speed", speed, utils.TextColor),
	}

	if tr := m.ctrl.Trace(); tr != nil {
		if spark := RenderSparkline(ComparisonSeries(tr, m.state.Cursor), max(10, width-6), SparkHeight); spark != "" {
			lines = append(lines, utils.MutedStyle.Render("comparisons so far"), spark)
		}
		if m.state.AtEnd() {
			if res, ok := tr.Search(); ok {
				lines = append(lines, utils.GoodStyle.Render(fmt.Sprintf("🎯 %d at index %d", res.Target, res.Index)))
			}
		}
	}
	if m.state.AtEnd() && m.step.EarlyTermination {
		lines = append(lines, utils.GoodStyle.Render("✨ Early termination applied"))
	}

	return panel("Results", strings.Join(lines, "\n"), width)
}

func (m *Model) renderComplexity(width int) string {
	a, _ := m.kind.Algorithm()
	c := a.Complexity
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
			traits = append(traits, t.name)
		}
	}

	lines := []string{
		utils.CreateMetricDisplay("Best", c.Best, utils.GoodColor),
		utils.CreateMetricDisplay("Average", c.Average, utils.InfoColor),
		utils.CreateMetricDisplay("Worst", c.Worst, utils.CriticalColor),
		utils.CreateMetricDisplay("Space", c.Space, utils.TextColor),
	}
	if len(traits) > 0 {
		lines = append(lines, utils.MutedStyle.Render(strings.Join(traits, " · ")))
	}
	return panel(string(a.Category), strings.Join(lines, "\n"), width)
}

func (m *Model) renderExplanation(width int) string {
	rationale := m.step.Rationale
	if rationale == "" {
		rationale = "-"
	}
	invariant := m.step.Invariant
	if invariant == "" {
		invariant = "-"
	}
	body := utils.CreateMetricDisplay("Why", rationale, utils.TextColor) + "\n" +
		utils.CreateMetricDisplay("Invariant", invariant, utils.TextColor)
	return panel("Explanation", body, width)
}

func (m *Model) renderEditor() string {
	lines := []string{m.editor.View()}
	if m.inputErr != nil {
		lines = append(lines, utils.ErrorStyle.Render(m.inputErr.Error()))
	} else {
		lines = append(lines, utils.MutedStyle.Render("enter to apply · esc to cancel"))
	}
	return panel("Edit input", strings.Join(lines, "\n"), m.width)
}
