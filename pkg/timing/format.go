package timing

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatDuration renders a millisecond duration the way the suite
// reports it: whole milliseconds under a second ("742ms"), seconds under
// a minute ("1.5s"), and minutes plus seconds beyond that ("1min 5.0s").
// Negative durations are clamped to "0ms".
func FormatDuration(ms float64) string {
	if ms < 0 {
		ms = 0
	}

	if ms < 1000 {
		return fmt.Sprintf("%dms", int64(ms))
	}

	if ms < 60000 {
		return formatSeconds(ms/1000) + "s"
	}

	minutes := int64(ms / 60000)
	remaining := ms - float64(minutes)*60000

	return fmt.Sprintf("%dmin %ss", minutes, formatSeconds(remaining/1000))
}

// formatSeconds keeps one decimal on integral values so that a whole
// five seconds reads "5.0" rather than "5".
func formatSeconds(sec float64) string {
	s := strconv.FormatFloat(sec, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}

	return s
}
