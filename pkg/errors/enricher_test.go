package errors_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	pkgerrors "github.com/joe/proxy-panel/pkg/errors"
)

func TestEnricher_EnrichAlreadyActionableError(t *testing.T) {
	t.Parallel()

	enricher := pkgerrors.NewEnricher()
	originalActionable := pkgerrors.NewActionableError(
		"connection refused",
		pkgerrors.CategoryConnection,
		[]string{"existing suggestion"},
		"http://original",
	)

	enriched := enricher.Enrich(fmt.Errorf("wrapped: %w", originalActionable), "http://new")

	var actionableErr pkgerrors.ActionableError
	if !errors.As(enriched, &actionableErr) {
		t.Fatalf("expected ActionableError, got %T", enriched)
	}

	if actionableErr != originalActionable {
		t.Error("expected same ActionableError instance when enriching ActionableError")
	}
}

func TestEnricher_EnrichNil(t *testing.T) {
	t.Parallel()

	if enriched := pkgerrors.NewEnricher().Enrich(nil, "x"); enriched != nil {
		t.Errorf("expected nil, got %v", enriched)
	}
}

func TestEnricher_EnrichConnectionErrorUsesGivenResource(t *testing.T) {
	t.Parallel()

	enricher := pkgerrors.NewEnricher()
	enriched := enricher.Enrich(errors.New("dial tcp 127.0.0.1:8000: connect: connection refused"), "http://127.0.0.1:8000")

	var actionableErr pkgerrors.ActionableError
	if !errors.As(enriched, &actionableErr) {
		t.Fatalf("expected ActionableError, got %T", enriched)
	}

	if actionableErr.Category() != pkgerrors.CategoryConnection {
		t.Errorf("expected category %q, got %q", pkgerrors.CategoryConnection, actionableErr.Category())
	}

	found := false
	for _, suggestion := range actionableErr.Suggestions() {
		if strings.Contains(suggestion, "http://127.0.0.1:8000") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a suggestion naming the server, got %v", actionableErr.Suggestions())
	}
}

func TestEnricher_ExtractsResourceFromMessage(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		errorMsg string
		expected string
	}{
		{"http url", `status: Get "http://localhost:8000/status": EOF`, "http://localhost:8000/status"},
		{"post url", `start: Post "https://scan.example/start": connection reset by peer`, "https://scan.example/start"},
		{"file path", "open /tmp/out/results.json: permission denied", "/tmp/out/results.json"},
		{"nothing", "something odd happened", ""},
	}

	enricher := pkgerrors.NewEnricher()

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			enriched := enricher.Enrich(errors.New(testCase.errorMsg), "")

			actionableErr, ok := enriched.(pkgerrors.ActionableError)
			if !ok {
				t.Fatalf("expected ActionableError, got %T", enriched)
			}

			if actionableErr.AffectedResource() != testCase.expected {
				t.Errorf("AffectedResource() = %q, want %q", actionableErr.AffectedResource(), testCase.expected)
			}
		})
	}
}

// statusError stands in for the gateway's typed errors.
type statusError struct {
	code int
	msg  string
}

func (e *statusError) Error() string   { return e.msg }
func (e *statusError) HTTPStatus() int { return e.code }

// refusedError stands in for a command the remote refused.
type refusedError struct {
	statusError
}

func (e *refusedError) Conflict() bool { return true }

func TestEnricher_ClassifiesFromErrorChain(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		err      error
		expected pkgerrors.ErrorCategory
	}{
		{"deadline", fmt.Errorf("status: %w", context.DeadlineExceeded), pkgerrors.CategoryTimeout},
		{"conflict status", &statusError{code: 409, msg: "start: scan busy"}, pkgerrors.CategoryConflict},
		{"server status", fmt.Errorf("wrapped: %w", &statusError{code: 502, msg: "status: bad gateway"}), pkgerrors.CategoryServer},
		{"other status falls back to text", &statusError{code: 404, msg: "logs: connection refused"}, pkgerrors.CategoryConnection},
		{"plain text", errors.New("open out.json: permission denied"), pkgerrors.CategoryExport},
		{"refusal with 400", &refusedError{statusError{code: 400, msg: "stop: rejected with status 400"}}, pkgerrors.CategoryConflict},
		{"refusal with 500", fmt.Errorf("wrapped: %w", &refusedError{statusError{code: 500, msg: "start: busy"}}), pkgerrors.CategoryConflict},
	}

	enricher := pkgerrors.NewEnricher()

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			actionableErr, ok := enricher.Enrich(testCase.err, "").(pkgerrors.ActionableError)
			if !ok {
				t.Fatal("expected ActionableError")
			}

			if actionableErr.Category() != testCase.expected {
				t.Errorf("Category() = %q, want %q", actionableErr.Category(), testCase.expected)
			}
		})
	}
}
