package tui

import (
	"slices"
	"strconv"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"

	"github.com/mabhi256/dsaviz/internal/trace"
	"github.com/mabhi256/dsaviz/utils"
)

// barValue maps an array value to a bar height. Bars cannot grow downward,
// so negatives are drawn as empty bars and keep their label.
func barValue(v int) float64 {
	return float64(max(v, 0))
}

// barStyle picks the fill for index i of step.
func barStyle(step trace.Step, i int, finished bool) lipgloss.Style {
	switch {
	case step.IsHighlighted(i):
		return utils.HighlightBarStyle
	case finished:
		return utils.DoneBarStyle
	case step.Array[i] <= 0:
		return utils.EmptyBarStyle
	default:
		return utils.BarStyle
	}
}

// RenderBars draws the step's array as a vertical bar chart labelled with
// the values.
func RenderBars(step trace.Step, finished bool, width, height int) string {
	if len(step.Array) == 0 {
		return utils.MutedStyle.Render("(empty array)")
	}

	data := make([]barchart.BarData, len(step.Array))
	for i, v := range step.Array {
		data[i] = barchart.BarData{
			Label: strconv.Itoa(v),
			Values: []barchart.BarValue{{
				Name:  strconv.Itoa(i),
				Value: barValue(v),
				Style: barStyle(step, i, finished),
			}},
		}
	}

	maxValue := max(1, barValue(slices.Max(step.Array)))
	chart := barchart.New(width, height,
		barchart.WithDataSet(data),
		barchart.WithMaxValue(maxValue),
		barchart.WithBarGap(1),
	)
	chart.Draw()
	return chart.View()
}
