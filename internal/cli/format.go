package cli

import (
	"fmt"
	"math"
)

// FormatInterval renders an interval in days as a compact duration: minutes
// below an hour, hours below a day, days otherwise.
func FormatInterval(days float64) string {
	minutes := days * 24 * 60
	switch {
	case minutes < 0.5:
		return "<1m"
	case minutes < 59.5:
		return fmt.Sprintf("%dm", int(math.Round(minutes)))
	case days < 1:
		hours := days * 24
		if hours == math.Trunc(hours) {
			return fmt.Sprintf("%dh", int(hours))
		}
		return fmt.Sprintf("%.1fh", hours)
	default:
		if days == math.Trunc(days) {
			return fmt.Sprintf("%dd", int(days))
		}
		return fmt.Sprintf("%.1fd", days)
	}
}
