package utils

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mabhi256/dsaviz/internal/edgecase"
	"github.com/mabhi256/dsaviz/internal/trace"
)

var (
	CriticalColor = lipgloss.Color("#CC3333") // Dark red
	WarningColor  = lipgloss.Color("#FF8800") // Orange
	GoodColor     = lipgloss.Color("#228B22") // Forest green
	InfoColor     = lipgloss.Color("#4682B4") // Steel blue
	AccentColor   = lipgloss.Color("#9370DB") // Medium purple
	TextColor     = lipgloss.Color("#CCCCCC") // Light gray
	MutedColor    = lipgloss.Color("#888888") // Medium gray
	BorderColor   = lipgloss.Color("#666666") // Dark gray

	GoodLightColor = lipgloss.Color("#66BB66") // Lighter green
	InfoLightColor = lipgloss.Color("#88AACC") // Lighter blue
)

var (
	CriticalStyle = lipgloss.NewStyle().Foreground(CriticalColor).Bold(true)
	WarningStyle  = lipgloss.NewStyle().Foreground(WarningColor).Bold(true)
	GoodStyle     = lipgloss.NewStyle().Foreground(GoodColor).Bold(true)
	InfoStyle     = lipgloss.NewStyle().Foreground(InfoColor)
	AccentStyle   = lipgloss.NewStyle().Foreground(AccentColor).Bold(true)
	MutedStyle    = lipgloss.NewStyle().Foreground(MutedColor)
	TextStyle     = lipgloss.NewStyle().Foreground(TextColor)
)

// Bar fills for the array chart.
var (
	BarStyle          = lipgloss.NewStyle().Foreground(InfoLightColor)
	HighlightBarStyle = lipgloss.NewStyle().Foreground(WarningColor)
	DoneBarStyle      = lipgloss.NewStyle().Foreground(GoodLightColor)
	EmptyBarStyle     = lipgloss.NewStyle().Foreground(BorderColor)
)

var (
	TabActiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(InfoColor).
			Padding(0, 1).
			Bold(true)

	TabInactiveStyle = lipgloss.NewStyle().
				Foreground(MutedColor).
				Padding(0, 1)
)

var (
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true).
			Padding(0, 1)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(CriticalColor).
			Bold(true)

	HelpBarStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Padding(0, 1)
)

// GetOpStyle colors an operation tag by what it does to the array.
func GetOpStyle(op trace.OpType) lipgloss.Style {
	switch op {
	case trace.Compare:
		return InfoStyle
	case trace.Swap, trace.Pop, trace.Dequeue:
		return WarningStyle
	case trace.Partition, trace.Merge:
		return AccentStyle
	case trace.Push, trace.Enqueue:
		return GoodStyle
	case trace.Search:
		return CriticalStyle
	default:
		return MutedStyle
	}
}

func GetOpIcon(op trace.OpType) string {
	switch op {
	case trace.Compare:
		return "⚖"
	case trace.Swap:
		return "⇄"
	case trace.Partition:
		return "✂"
	case trace.Merge:
		return "⋈"
	case trace.Push, trace.Enqueue:
		return "↓"
	case trace.Pop, trace.Dequeue:
		return "↑"
	case trace.Search:
		return "🔍"
	default:
		return "•"
	}
}

// GetClassStyle renders advisories as warnings and the rest as plain info.
func GetClassStyle(c edgecase.Class) lipgloss.Style {
	if c.Warning() {
		return WarningStyle
	}
	return InfoStyle
}

// CreateMetricDisplay renders "name: value" with the value emphasized.
func CreateMetricDisplay(name, value string, color lipgloss.Color) string {
	valueStyle := lipgloss.NewStyle().Foreground(color).Bold(true)
	return fmt.Sprintf("%s: %s", MutedStyle.Render(name), valueStyle.Render(value))
}

// RenderArray prints values inline, highlighting the focused indices.
func RenderArray(values []int, highlighted []int) string {
	if len(values) == 0 {
		return MutedStyle.Render("[]")
	}

	focus := make(map[int]bool, len(highlighted))
	for _, h := range highlighted {
		focus[h] = true
	}

	parts := make([]string, len(values))
	for i, v := range values {
		s := fmt.Sprintf("%d", v)
		if focus[i] {
			s = HighlightBarStyle.Bold(true).Render(s)
		}
		parts[i] = s
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Truncate shortens s to width display cells, adding an ellipsis.
func Truncate(s string, width int) string {
	if width <= 0 || lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
