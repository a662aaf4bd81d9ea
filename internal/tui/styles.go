package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/mabhi256/dsaviz/utils"
)

const (
	MinWidth       = 40
	ChartHeight    = 12
	SparkHeight    = 3
	SidePanelWidth = 34
)

var (
	panelStyle = utils.BoxStyle

	panelTitleStyle = lipgloss.NewStyle().
			Foreground(utils.InfoLightColor).
			Bold(true)

	narrationStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true).
			Padding(0, 1)

	playingBadge = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(utils.GoodColor).
			Padding(0, 1).
			Render("▶ PLAYING")

	pausedBadge = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(utils.MutedColor).
			Padding(0, 1).
			Render("❚❚ PAUSED")
)

// panel draws a titled rounded box of the given outer width.
func panel(title, body string, width int) string {
	inner := max(10, width-panelStyle.GetHorizontalFrameSize())
	content := lipgloss.JoinVertical(lipgloss.Left,
		panelTitleStyle.Render(title),
		lipgloss.NewStyle().Width(inner).Render(body),
	)
	return panelStyle.Width(inner + panelStyle.GetHorizontalPadding()).Render(content)
}
