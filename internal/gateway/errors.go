package gateway

import (
	"errors"
	"fmt"
)

// TransportError reports a failed exchange with the remote: the network was
// unreachable, a GET answered non-2xx, or a body could not be decoded.
type TransportError struct {
	Op         string // "status", "logs", "results", "start", "stop"
	StatusCode int    // 0 when no response was received
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode >= 300 {
		return fmt.Sprintf("%s: server returned status %d: %v", e.Op, e.StatusCode, e.Err)
	}

	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// HTTPStatus returns the response status, or 0 when no response was received.
func (e *TransportError) HTTPStatus() int {
	return e.StatusCode
}

// ConflictError reports a start/stop command the remote refused, typically
// because a scan is already running (start) or none is running (stop).
type ConflictError struct {
	Op         string
	StatusCode int
	Reason     string // response body, trimmed; may be empty
}

func (e *ConflictError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s: rejected with status %d", e.Op, e.StatusCode)
	}

	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

// HTTPStatus returns the status the remote refused the command with.
func (e *ConflictError) HTTPStatus() int {
	return e.StatusCode
}

// Conflict marks every command refusal as a conflict, whatever its status.
func (e *ConflictError) Conflict() bool {
	return true
}

// IsTransport reports whether err is (or wraps) a *TransportError.
func IsTransport(err error) bool {
	var transportErr *TransportError
	return errors.As(err, &transportErr)
}

// IsConflict reports whether err is (or wraps) a *ConflictError.
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// ConflictReason returns the server-provided reason carried by err, or "" when
// err is not a conflict or the server sent no body.
func ConflictReason(err error) string {
	var conflictErr *ConflictError
	if errors.As(err, &conflictErr) {
		return conflictErr.Reason
	}

	return ""
}

// unexported variables.
var (
	errUnexpectedStatus = errors.New("unexpected response status")
)
