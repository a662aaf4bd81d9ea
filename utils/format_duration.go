package utils

import (
	"fmt"
	"time"
)

// FormatDuration renders short durations the way the playback speed readout
// shows them: "700ms", "1.2s".
func FormatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000)
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	case d < time.Minute:
		return fmt.Sprintf("%.1fs", d.Seconds())
	default:
		return d.Round(time.Second).String()
	}
}

// FormatSpeed pairs a speed setting with the per-step delay it produces.
func FormatSpeed(speed int, interval time.Duration) string {
	return fmt.Sprintf("%d (%s/step)", speed, FormatDuration(interval))
}
