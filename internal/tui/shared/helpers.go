package shared

import (
	"fmt"
	"time"
)

// ============================================================================
// Formatting Functions
// ============================================================================

// FormatDuration formats duration into human-readable format (e.g., "2m 30s")
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)
	hours := duration / time.Hour
	duration %= time.Hour
	minutes := duration / time.Minute
	duration %= time.Minute
	seconds := duration / time.Second

	if hours > 0 {
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
	} else if minutes > 0 {
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	}

	return fmt.Sprintf("%ds", seconds)
}

// FormatAgo renders how long ago t was relative to now ("just now", "12s ago").
func FormatAgo(t, now time.Time) string {
	if t.IsZero() {
		return ""
	}

	elapsed := now.Sub(t)
	if elapsed < time.Second {
		return "just now"
	}

	return FormatDuration(elapsed) + " ago"
}

// Truncate shortens text to at most width runes, ending with "...".
func Truncate(text string, width int) string {
	runes := []rune(text)
	if width <= 0 || len(runes) <= width {
		return text
	}

	if width <= EllipsisLength {
		return string(runes[:width])
	}

	return string(runes[:width-EllipsisLength]) + "..."
}
