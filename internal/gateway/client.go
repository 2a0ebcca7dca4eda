// Package gateway maps the remote scanning service's HTTP API onto Go calls.
//
// The client holds no state beyond its configuration: there is no retry, no
// caching and no timeout other than the one configured on the http.Client.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Exported constants.
const (
	// DefaultTimeout is the per-request timeout when none is configured
	DefaultTimeout = 10 * time.Second
	// MaxBodyBytes caps how much of any response body is read
	MaxBodyBytes = 4 << 20
	// RequestIDHeader carries the per-request correlation id
	RequestIDHeader = "X-Request-ID"
)

// Client talks to one scanning service.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logf       func(string)
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout sets the per-request timeout of the default http.Client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient = &http.Client{Timeout: timeout}
	}
}

// WithLogger receives one line per completed request.
func WithLogger(logf func(string)) Option {
	return func(c *Client) {
		c.logf = logf
	}
}

// New creates a client for the service rooted at baseURL (e.g. http://localhost:8000).
func New(baseURL string, opts ...Option) *Client {
	client := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// BaseURL returns the service root the client was created with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// SetLogger replaces the request logger. Call it before the client is shared.
func (c *Client) SetLogger(logf func(string)) {
	c.logf = logf
}

// FetchLogs returns the scan log lines. A missing, null or malformed "logs"
// field yields an empty slice; only a body that is not a JSON object fails.
func (c *Client) FetchLogs(ctx context.Context) ([]string, error) {
	var resp logsResponse

	err := c.getJSON(ctx, "logs", "/logs", &resp)
	if err != nil {
		return nil, err
	}

	return decodeList[string](resp.Logs), nil
}

// FetchResults returns the working proxies found so far. A missing, null or
// malformed "results" field yields an empty slice.
func (c *Client) FetchResults(ctx context.Context) ([]ResultRow, error) {
	var resp resultsResponse

	err := c.getJSON(ctx, "results", "/results", &resp)
	if err != nil {
		return nil, err
	}

	return decodeList[ResultRow](resp.Results), nil
}

// FetchStatus returns the remote run status.
func (c *Client) FetchStatus(ctx context.Context) (RunStatus, error) {
	var status RunStatus

	err := c.getJSON(ctx, "status", "/status", &status)
	if err != nil {
		return RunStatus{}, err
	}

	return status, nil
}

// Start asks the remote to begin a scan and returns its plain-text acknowledgement.
// A refusal (e.g. already running) is a *ConflictError.
func (c *Client) Start(ctx context.Context, payload StartPayload) (string, error) {
	return c.postCommand(ctx, "start", "/start", payload)
}

// Stop asks the remote to stop the running scan and returns its plain-text acknowledgement.
// A refusal (e.g. not running) is a *ConflictError.
func (c *Client) Stop(ctx context.Context) (string, error) {
	return c.postCommand(ctx, "stop", "/stop", struct{}{})
}

func (c *Client) do(ctx context.Context, op, method, path string, body io.Reader) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return 0, nil, &TransportError{Op: op, Err: fmt.Errorf("failed to build request: %w", err)}
	}

	requestID := uuid.NewString()
	req.Header.Set(RequestIDHeader, requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	started := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log(fmt.Sprintf("%s %s -> error after %s (%s): %v", method, path, time.Since(started).Round(time.Millisecond), requestID, err))
		return 0, nil, &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodyBytes))
	if err != nil {
		return resp.StatusCode, nil, &TransportError{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to read body: %w", err)}
	}

	c.log(fmt.Sprintf("%s %s -> %d in %s (%s)", method, path, resp.StatusCode, time.Since(started).Round(time.Millisecond), requestID))

	return resp.StatusCode, data, nil
}

func (c *Client) getJSON(ctx context.Context, op, path string, out any) error {
	code, data, err := c.do(ctx, op, http.MethodGet, path, nil)
	if err != nil {
		return err
	}

	if !isSuccess(code) {
		return &TransportError{Op: op, StatusCode: code, Err: errUnexpectedStatus}
	}

	err = json.Unmarshal(data, out)
	if err != nil {
		return &TransportError{Op: op, StatusCode: code, Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	return nil
}

// decodeList decodes raw as a JSON array, returning an empty slice when it is
// absent, null or not a list of T.
func decodeList[T any](raw json.RawMessage) []T {
	var items []T

	if len(raw) == 0 || json.Unmarshal(raw, &items) != nil || items == nil {
		return []T{}
	}

	return items
}

func (c *Client) log(line string) {
	if c.logf != nil {
		c.logf(line)
	}
}

func (c *Client) postCommand(ctx context.Context, op, path string, payload any) (string, error) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return "", &TransportError{Op: op, Err: fmt.Errorf("failed to encode payload: %w", err)}
	}

	code, data, err := c.do(ctx, op, http.MethodPost, path, bytes.NewReader(encoded))
	if err != nil {
		return "", err
	}

	text := strings.TrimSpace(string(data))
	if !isSuccess(code) {
		return "", &ConflictError{Op: op, StatusCode: code, Reason: text}
	}

	return text, nil
}

func isSuccess(code int) bool {
	return code >= http.StatusOK && code < http.StatusMultipleChoices
}
