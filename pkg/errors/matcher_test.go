package errors_test

import (
	"testing"

	"github.com/joe/proxy-panel/pkg/errors"
)

func TestPatternMatcher_Categories(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		errorMsg string
		expected errors.ErrorCategory
	}{
		{"refused", `status: Get "http://localhost:8000/status": dial tcp [::1]:8000: connect: connection refused`, errors.CategoryConnection},
		{"dns", `logs: Get "http://nope/logs": dial tcp: lookup nope: no such host`, errors.CategoryConnection},
		{"client timeout", `results: Get "http://x/results": context deadline exceeded (Client.Timeout exceeded while awaiting headers)`, errors.CategoryTimeout},
		{"5xx", "status: server returned status 502: unexpected response status", errors.CategoryServer},
		{"bad json", "status: failed to decode response: invalid character 'o' looking for beginning of value", errors.CategoryPayload},
		{"already running", "start: Scan is already running.", errors.CategoryConflict},
		{"not running", "stop: No scan is currently running.", errors.CategoryConflict},
		{"clipboard", `exec: "xclip": executable file not found in $PATH`, errors.CategoryClipboard},
		{"export permission", "open /root/out.json: permission denied", errors.CategoryExport},
		{"unknown", "something odd happened", errors.CategoryUnknown},
	}

	matcher := errors.NewPatternMatcher()

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			category := matcher.Match(testCase.errorMsg)
			if category != testCase.expected {
				t.Errorf("expected category %q, got %q for error: %q",
					testCase.expected, category, testCase.errorMsg)
			}
		})
	}
}

func TestPatternMatcher_CaseInsensitive(t *testing.T) {
	t.Parallel()

	matcher := errors.NewPatternMatcher()

	if category := matcher.Match("CONNECTION REFUSED"); category != errors.CategoryConnection {
		t.Errorf("expected %q, got %q", errors.CategoryConnection, category)
	}
	if category := matcher.Match("Scan Is Already Running"); category != errors.CategoryConflict {
		t.Errorf("expected %q, got %q", errors.CategoryConflict, category)
	}
}
