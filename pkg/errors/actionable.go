// Package errors provides actionable error handling with context-aware suggestions.
//
// This package turns the errors the control panel meets (an unreachable scanning
// service, a refused start/stop, an unwritable export destination, a missing
// clipboard) into categorized errors carrying suggestions the user can act on.
//
// Basic Usage:
//
//	enricher := errors.NewEnricher()
//	_, err := client.FetchStatus(ctx)
//	if err != nil {
//	    actionableErr := enricher.Enrich(err, client.BaseURL())
//	    fmt.Println(actionableErr.Error())
//	    fmt.Println(errors.FormatSuggestions(actionableErr))
//	}
//
// The enricher extracts the affected URL from net/http error messages when no
// resource is given explicitly:
//
//	err := errors.New(`Get "http://localhost:8000/status": dial tcp [::1]:8000: connect: connection refused`)
//	enriched := enricher.Enrich(err, "") // resource is http://localhost:8000/status
package errors

import "strings"

// Exported constants.
const (
	CategoryClipboard  ErrorCategory = "clipboard"
	CategoryConflict   ErrorCategory = "conflict"
	CategoryConnection ErrorCategory = "connection"
	CategoryExport     ErrorCategory = "export"
	CategoryPayload    ErrorCategory = "payload"
	CategoryServer     ErrorCategory = "server"
	CategoryTimeout    ErrorCategory = "timeout"
	CategoryUnknown    ErrorCategory = "unknown"
)

// ActionableError represents an error with actionable suggestions for the user.
type ActionableError interface {
	error
	OriginalError() string
	Category() ErrorCategory
	Suggestions() []string
	AffectedResource() string
}

// NewActionableError creates a new ActionableError with the given details.
func NewActionableError(
	originalError string,
	category ErrorCategory,
	suggestions []string,
	affectedResource string,
) ActionableError {
	return &actionableError{
		originalError:    originalError,
		category:         category,
		suggestions:      suggestions,
		affectedResource: affectedResource,
	}
}

// ErrorCategory represents the type of error that occurred.
type ErrorCategory string

// FormatSuggestions formats the suggestions from an ActionableError as a bulleted list
// for display in the TUI. Returns empty string if the error is nil or has no suggestions.
func FormatSuggestions(err error) string {
	if err == nil {
		return ""
	}

	actionable, ok := err.(ActionableError)
	if !ok {
		return ""
	}

	suggestions := actionable.Suggestions()
	if len(suggestions) == 0 {
		return ""
	}

	var builder strings.Builder
	for i, suggestion := range suggestions {
		if i > 0 {
			builder.WriteString("\n")
		}
		builder.WriteString("  • ")
		builder.WriteString(suggestion)
	}

	return builder.String()
}

// actionableError is the concrete implementation of ActionableError.
type actionableError struct {
	originalError    string
	category         ErrorCategory
	suggestions      []string
	affectedResource string
}

// AffectedResource returns the URL or path affected by this error.
func (e *actionableError) AffectedResource() string {
	return e.affectedResource
}

// Category returns the error category.
func (e *actionableError) Category() ErrorCategory {
	return e.category
}

// Error implements the error interface.
func (e *actionableError) Error() string {
	return e.originalError
}

// OriginalError returns the original error message.
func (e *actionableError) OriginalError() string {
	return e.originalError
}

// Suggestions returns the list of actionable suggestions.
func (e *actionableError) Suggestions() []string {
	return e.suggestions
}
