package syncengine_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/joe/proxy-panel/internal/gateway"
	"github.com/joe/proxy-panel/internal/syncengine"
)

var errBoom = errors.New("dial tcp 127.0.0.1:8000: connect: connection refused")

// fakeGateway is a scriptable Gateway. Each fetch consults its hook when set,
// otherwise returns the canned value.
type fakeGateway struct {
	mu         sync.Mutex
	status     gateway.RunStatus
	statusErr  error
	logs       []string
	logsErr    error
	results    []gateway.ResultRow
	resultsErr error
	startErr   error
	stopErr    error
	payloads   []gateway.StartPayload

	statusHook  func(call int32) (gateway.RunStatus, error)
	resultsHook func(call int32) ([]gateway.ResultRow, error)

	// startGate, when set, blocks Start until it is closed.
	startGate    chan struct{}
	startEntered chan struct{}

	statusCalls  atomic.Int32
	logsCalls    atomic.Int32
	resultsCalls atomic.Int32
	startCalls   atomic.Int32
	stopCalls    atomic.Int32
}

func (f *fakeGateway) FetchLogs(context.Context) ([]string, error) {
	f.logsCalls.Add(1)

	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]string(nil), f.logs...), f.logsErr
}

func (f *fakeGateway) FetchResults(context.Context) ([]gateway.ResultRow, error) {
	call := f.resultsCalls.Add(1)
	if f.resultsHook != nil {
		return f.resultsHook(call)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]gateway.ResultRow(nil), f.results...), f.resultsErr
}

func (f *fakeGateway) FetchStatus(context.Context) (gateway.RunStatus, error) {
	call := f.statusCalls.Add(1)
	if f.statusHook != nil {
		return f.statusHook(call)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	return f.status, f.statusErr
}

func (f *fakeGateway) Start(_ context.Context, payload gateway.StartPayload) (string, error) {
	f.startCalls.Add(1)

	f.mu.Lock()
	f.payloads = append(f.payloads, payload)
	gate := f.startGate
	entered := f.startEntered
	err := f.startErr
	f.mu.Unlock()

	if entered != nil {
		entered <- struct{}{}
	}

	if gate != nil {
		<-gate
	}

	if err != nil {
		return "", err
	}

	return "Scan started", nil
}

func (f *fakeGateway) Stop(context.Context) (string, error) {
	f.stopCalls.Add(1)

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.stopErr != nil {
		return "", f.stopErr
	}

	return "Stopping", nil
}

func (f *fakeGateway) setResults(rows []gateway.ResultRow) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.results = rows
}

func (f *fakeGateway) setStatus(status gateway.RunStatus, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.status = status
	f.statusErr = err
}

// recordingEmitter captures events for assertions.
type recordingEmitter struct {
	mu     sync.Mutex
	events []syncengine.Event
}

func (r *recordingEmitter) Emit(event syncengine.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = append(r.events, event)
}

func (r *recordingEmitter) Events() []syncengine.Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]syncengine.Event(nil), r.events...)
}

type fakeClipboard struct {
	available bool
	err       error
	copied    []string
}

func (c *fakeClipboard) Available() bool { return c.available }

func (c *fakeClipboard) WriteAll(text string) error {
	if c.err != nil {
		return c.err
	}

	c.copied = append(c.copied, text)

	return nil
}

type fakeExporter struct {
	err  error
	dest string
	rows []gateway.ResultRow
}

func (e *fakeExporter) Export(dest string, rows []gateway.ResultRow) error {
	e.dest = dest
	e.rows = rows

	return e.err
}

var epoch = time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

// newTestEngine returns an engine over gw with a mock clock and ticker.
func newTestEngine(gw syncengine.Gateway) (*syncengine.Engine, *syncengine.MockTimeProvider) {
	provider := &syncengine.MockTimeProvider{
		Ticker:      syncengine.NewMockTicker(),
		CurrentTime: epoch,
	}

	engine := syncengine.NewEngine(gw)
	engine.TimeProvider = provider
	engine.Clipboard = &fakeClipboard{}

	return engine, provider
}
