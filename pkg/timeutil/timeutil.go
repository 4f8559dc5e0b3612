// Package timeutil provides small helpers for formatting durations.
package timeutil

import (
	"fmt"
	"time"
)

// FormatDuration formats a duration in the compact style used by the
// debug npm package: microseconds below 1ms, milliseconds below 1s,
// then seconds, minutes and hours with one decimal.
func FormatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	case d < time.Minute:
		return fmt.Sprintf("%.1fs", d.Seconds())
	case d < time.Hour:
		return fmt.Sprintf("%.1fm", d.Minutes())
	default:
		return fmt.Sprintf("%.1fh", d.Hours())
	}
}
