package tui

import (
	"github.com/NimbleMarkets/ntcharts/sparkline"

	"github.com/mabhi256/dsaviz/internal/trace"
	"github.com/mabhi256/dsaviz/utils"
)

// ComparisonSeries is the running comparison count of steps[0..cursor].
func ComparisonSeries(t *trace.Trace, cursor int) []float64 {
	n := min(cursor+1, t.Len())
	out := make([]float64, 0, max(n, 0))
	for i := range n {
		s, _ := t.At(i)
		out = append(out, float64(s.Comparisons))
	}
	return out
}

// RenderSparkline draws the comparison counter growth up to the cursor.
func RenderSparkline(values []float64, width, height int) string {
	if len(values) == 0 || width <= 0 {
		return ""
	}
	if len(values) > width {
		values = values[len(values)-width:]
	}

	spark := sparkline.New(width, height, sparkline.WithStyle(utils.InfoStyle))
	spark.PushAll(values)
	spark.Draw()
	return spark.View()
}
