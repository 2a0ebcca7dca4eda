package errors

import "strings"

// PatternMatcher matches error messages to categories using string patterns.
type PatternMatcher interface {
	Match(errorMsg string) ErrorCategory
}

// NewPatternMatcher creates a new PatternMatcher with predefined patterns.
// Categories are tried in order; the first one with a matching pattern wins.
func NewPatternMatcher() PatternMatcher {
	return &patternMatcher{
		rules: []categoryRule{
			{CategoryClipboard, []string{
				"clipboard",
				"xclip",
				"xsel",
				"pbcopy",
			}},
			{CategoryConflict, []string{
				"already running",
				"not running",
				"no scan is currently running",
				"rejected with status",
			}},
			{CategoryTimeout, []string{
				"deadline exceeded",
				"timeout",
				"timed out",
			}},
			{CategoryConnection, []string{
				"connection refused",
				"no such host",
				"connection reset",
				"network is unreachable",
				"eof",
			}},
			{CategoryServer, []string{
				"server returned status",
				"unexpected response status",
			}},
			{CategoryPayload, []string{
				"failed to decode",
				"invalid character",
				"cannot unmarshal",
			}},
			{CategoryExport, []string{
				"permission denied",
				"no such file or directory",
				"ssh",
				"sftp",
			}},
		},
	}
}

type categoryRule struct {
	category ErrorCategory
	patterns []string
}

// patternMatcher is the concrete implementation of PatternMatcher.
type patternMatcher struct {
	rules []categoryRule
}

// Match returns the error category based on pattern matching.
func (m *patternMatcher) Match(errorMsg string) ErrorCategory {
	lowerMsg := strings.ToLower(errorMsg)

	for _, rule := range m.rules {
		for _, pattern := range rule.patterns {
			if strings.Contains(lowerMsg, pattern) {
				return rule.category
			}
		}
	}

	return CategoryUnknown
}
