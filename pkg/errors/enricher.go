package errors

import (
	"context"
	"errors"
	"net"
	"net/http"
	"regexp"
	"strings"
)

// Enricher enriches standard errors with actionable suggestions.
type Enricher interface {
	Enrich(err error, affectedResource string) error
}

// StatusCoder is implemented by errors that carry the HTTP status of a
// response, such as the gateway's transport and conflict errors.
type StatusCoder interface {
	HTTPStatus() int
}

// Conflicter is implemented by errors for a command the remote refused.
type Conflicter interface {
	Conflict() bool
}

// NewEnricher creates a new Enricher with default pattern matcher and suggestion generator.
func NewEnricher() Enricher {
	return &enricher{
		matcher:   NewPatternMatcher(),
		generator: NewSuggestionGenerator(),
	}
}

// unexported variables.
var (
	//nolint:gochecknoglobals // Compiled regexes shared across all enricher instances for performance
	resourceExtractionPatterns = []*regexp.Regexp{
		// net/http client errors: Get "http://host/path": ...
		regexp.MustCompile(`\b[A-Z][a-z]+ "([a-z]+://[^"]+)"`),
		// os errors: open /path/to/file: ...
		regexp.MustCompile(`\b\w+\s+([./][^\s:]+):`),
	}
)

// enricher is the concrete implementation of Enricher.
type enricher struct {
	matcher   PatternMatcher
	generator SuggestionGenerator
}

// Enrich takes a standard error and enriches it with category and actionable suggestions.
// If the error is already an ActionableError, it is returned unchanged.
// If affectedResource is empty, attempts to extract a URL or path from the error message.
func (e *enricher) Enrich(err error, affectedResource string) error {
	if err == nil {
		return nil
	}

	var actionableErr ActionableError
	if errors.As(err, &actionableErr) {
		return actionableErr
	}

	errMsg := err.Error()

	if affectedResource == "" {
		affectedResource = extractResource(errMsg)
	}

	category := e.classify(err)
	suggestions := e.generator.Generate(category, affectedResource)

	return NewActionableError(
		errMsg,
		category,
		suggestions,
		affectedResource,
	)
}

// classify trusts what the error chain says about itself (deadline, network
// timeout, command refusal, HTTP status) before falling back to matching the message text.
func (e *enricher) classify(err error) ErrorCategory {
	if errors.Is(err, context.DeadlineExceeded) {
		return CategoryTimeout
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return CategoryTimeout
	}

	var refused Conflicter
	if errors.As(err, &refused) && refused.Conflict() {
		return CategoryConflict
	}

	var coded StatusCoder
	if errors.As(err, &coded) {
		switch code := coded.HTTPStatus(); {
		case code == http.StatusConflict:
			return CategoryConflict
		case code >= http.StatusInternalServerError:
			return CategoryServer
		}
	}

	return e.matcher.Match(err.Error())
}

// extractResource pulls the URL or path out of common Go error messages:
//   - Get "http://localhost:8000/status": dial tcp ...: connection refused
//   - open /tmp/out/results.json: permission denied
func extractResource(errorMsg string) string {
	for _, pattern := range resourceExtractionPatterns {
		if matches := pattern.FindStringSubmatch(errorMsg); len(matches) > 1 {
			resource := strings.TrimSpace(matches[1])
			if resource != "" {
				return resource
			}
		}
	}

	return ""
}
