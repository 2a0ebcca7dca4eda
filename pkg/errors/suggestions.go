package errors

import "fmt"

// SuggestionGenerator generates actionable suggestions based on error category.
type SuggestionGenerator interface {
	Generate(category ErrorCategory, affectedResource string) []string
}

// NewSuggestionGenerator creates a new SuggestionGenerator.
func NewSuggestionGenerator() SuggestionGenerator {
	return &suggestionGenerator{}
}

// suggestionGenerator is the concrete implementation of SuggestionGenerator.
type suggestionGenerator struct{}

// Generate returns actionable suggestions based on the error category and affected resource.
func (g *suggestionGenerator) Generate(category ErrorCategory, affectedResource string) []string {
	switch category {
	case CategoryClipboard:
		return g.generateClipboardSuggestions()
	case CategoryConflict:
		return g.generateConflictSuggestions()
	case CategoryConnection:
		return g.generateConnectionSuggestions(affectedResource)
	case CategoryExport:
		return g.generateExportSuggestions(affectedResource)
	case CategoryPayload:
		return g.generatePayloadSuggestions(affectedResource)
	case CategoryServer:
		return g.generateServerSuggestions()
	case CategoryTimeout:
		return g.generateTimeoutSuggestions()
	case CategoryUnknown:
		return g.generateUnknownSuggestions(affectedResource)
	default:
		return g.generateUnknownSuggestions(affectedResource)
	}
}

func (g *suggestionGenerator) generateClipboardSuggestions() []string {
	return []string{
		"Install xclip, xsel or wl-clipboard on Linux",
		"Select the proxy in the results table and copy it with your terminal instead",
	}
}

func (g *suggestionGenerator) generateConflictSuggestions() []string {
	return []string{
		"Wait for the status indicator to refresh before retrying",
		"Stop the running scan before starting a new one",
	}
}

func (g *suggestionGenerator) generateConnectionSuggestions(resource string) []string {
	suggestions := []string{
		"Check that the scanning service is running",
	}

	if resource != "" {
		suggestions = append(suggestions, "Verify the server address: "+resource)
	} else {
		suggestions = append(suggestions, "Verify the --server address")
	}

	suggestions = append(suggestions, "Polling continues automatically; the panel recovers once the server answers")

	return suggestions
}

func (g *suggestionGenerator) generateExportSuggestions(resource string) []string {
	suggestions := []string{
		"Ensure the destination directory exists and is writable",
	}

	if resource != "" {
		suggestions = append(suggestions, fmt.Sprintf("Check permissions with 'ls -la %s'", resource))
	}

	suggestions = append(suggestions, "For sftp:// destinations, check your SSH agent or keys in ~/.ssh")

	return suggestions
}

func (g *suggestionGenerator) generatePayloadSuggestions(resource string) []string {
	suggestions := []string{
		"The server answered with an unexpected body; check the server version",
	}

	if resource != "" {
		suggestions = append(suggestions, "Open "+resource+" in a browser to inspect the response")
	}

	return suggestions
}

func (g *suggestionGenerator) generateServerSuggestions() []string {
	return []string{
		"Check the scanning service logs for errors",
		"Polling continues automatically; the panel recovers once the server answers",
	}
}

func (g *suggestionGenerator) generateTimeoutSuggestions() []string {
	return []string{
		"The server is slow to respond; try a larger --timeout",
		"Check network latency to the scanning service",
	}
}

func (g *suggestionGenerator) generateUnknownSuggestions(resource string) []string {
	suggestions := []string{
		"Check the error message for more details",
		"Run with --log-file to capture request details",
	}

	if resource != "" {
		suggestions = append(suggestions, "Verify the resource is reachable: "+resource)
	}

	return suggestions
}
