package shared

import (
	"fmt"
	"strings"
)

// RenderActivityLog renders log lines oldest first, one per line, each
// indented by two spaces. When maxEntries > 0 only the most recent
// maxEntries lines are shown and a dim header counts the hidden ones.
// An empty entry list renders placeholder instead.
func RenderActivityLog(entries []string, maxEntries int, placeholder string) string {
	if len(entries) == 0 {
		return RenderDim(placeholder)
	}

	var builder strings.Builder

	startIdx := 0
	if maxEntries > 0 && maxEntries < len(entries) {
		startIdx = len(entries) - maxEntries

		builder.WriteString(RenderDim(pluralLines(startIdx) + " earlier"))
		builder.WriteString("\n")
	}

	for i := startIdx; i < len(entries); i++ {
		builder.WriteString("  ")
		builder.WriteString(entries[i])

		if i < len(entries)-1 {
			builder.WriteString("\n")
		}
	}

	return builder.String()
}

func pluralLines(n int) string {
	if n == 1 {
		return "… 1 line"
	}

	return fmt.Sprintf("… %d lines", n)
}
