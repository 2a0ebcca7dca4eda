package shared

import (
	"strings"

	"github.com/joe/proxy-panel/pkg/errors"
)

// RenderStatusMessage renders the engine's status message. When cause is set,
// the message is styled as an error and followed by the enricher's suggestions.
// An empty message renders as "".
func RenderStatusMessage(message string, cause error, maxWidth int) string {
	if message == "" {
		return ""
	}

	if maxWidth > 0 {
		message = Truncate(message, maxWidth)
	}

	if cause == nil {
		return RenderSuccess(message)
	}

	var builder strings.Builder

	builder.WriteString(RenderError(message))

	suggestions := errors.FormatSuggestions(errors.NewEnricher().Enrich(cause, ""))
	if suggestions != "" {
		builder.WriteString("\n")
		builder.WriteString(RenderDim(suggestions))
	}

	return builder.String()
}
