package models

import (
	"fmt"
	"strings"
)

// FormatDuration renders a second count as "{h}h {m}m {s}s". Hours are
// omitted when zero; minutes are shown when either minutes or hours are
// nonzero; seconds are always shown. Negative inputs are treated as zero.
func FormatDuration(totalSeconds int64) string {
	if totalSeconds < 0 {
		totalSeconds = 0
	}

	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60

	var parts []string
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes > 0 || hours > 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}
	parts = append(parts, fmt.Sprintf("%ds", seconds))

	return strings.Join(parts, " ")
}
