// Package syncengine keeps a local copy of the remote scan's state in sync.
//
// The engine polls status, logs and results on a fixed interval, merges every
// response into a single State, and runs the start/stop commands behind
// per-command guards so a double submission never reaches the remote.
package syncengine

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/joe/proxy-panel/internal/gateway"
)

// Exported constants.
const (
	// DefaultInterval is the poll interval
	DefaultInterval = 4 * time.Second
)

// Status messages.
const (
	MsgAlreadyRunning       = "Scan is already running."
	MsgClipboardUnavailable = "Clipboard not available in this terminal."
	MsgCopyFailed           = "Unable to copy right now."
	MsgNotRunning           = "No scan is currently running."
	MsgStartAccepted        = "Scan started. Watching for updates..."
	MsgStatusUnavailable    = "Unable to load status. Check the server connection."
	MsgStopAccepted         = "Stopping scan..."
)

// Exported variables.
var (
	ErrClipboardUnavailable = errors.New("clipboard unavailable")
	ErrNoExporter           = errors.New("no exporter configured")
)

// Gateway is the remote API the engine synchronizes with.
type Gateway interface {
	FetchStatus(ctx context.Context) (gateway.RunStatus, error)
	FetchLogs(ctx context.Context) ([]string, error)
	FetchResults(ctx context.Context) ([]gateway.ResultRow, error)
	Start(ctx context.Context, payload gateway.StartPayload) (string, error)
	Stop(ctx context.Context) (string, error)
}

// Exporter writes result rows to a destination.
type Exporter interface {
	Export(dest string, rows []gateway.ResultRow) error
}

// Engine owns the local State and everything that mutates it.
type Engine struct {
	Interval     time.Duration // Poll interval (default: 4s)
	TimeProvider TimeProvider  // Time provider (for dependency injection)
	Clipboard    Clipboard     // Clipboard for CopyProxy (default: system clipboard)
	Exporter     Exporter      // Exporter for ExportResults (optional)
	Verbose      bool          // Enable verbose request logging

	gateway        Gateway
	emitter        EventEmitter
	stateCallbacks []func(State)
	callbackMu     sync.RWMutex

	mu        sync.Mutex // guards state, sequences, closed, cancel
	state     State
	sequences map[Resource]*sequence
	closed    bool
	cancel    context.CancelFunc

	startGuard commandGuard
	stopGuard  commandGuard

	initOnce  sync.Once
	closeOnce sync.Once
	loopDone  chan struct{}

	logFile *os.File   // Optional log file for debugging
	logMu   sync.Mutex // Mutex for log file writes
}

// sequence tracks fetch ordering for one resource. Responses to requests
// issued before the last applied one are stale.
type sequence struct {
	issued  uint64
	applied uint64
}

// NewEngine creates an engine for the given gateway. The engine does nothing
// until Initialize is called.
func NewEngine(gw Gateway) *Engine {
	return &Engine{
		Interval:     DefaultInterval,
		TimeProvider: &RealTimeProvider{},
		Clipboard:    SystemClipboard{},
		gateway:      gw,
		state:        newState(),
		sequences: map[Resource]*sequence{
			ResourceStatus:  {},
			ResourceLogs:    {},
			ResourceResults: {},
		},
		loopDone: make(chan struct{}),
	}
}

// SetEventEmitter sets the event emitter for TUI communication.
// The emitter is optional - if nil, no events will be emitted.
func (e *Engine) SetEventEmitter(emitter EventEmitter) {
	e.emitter = emitter
}

// GetEventEmitter returns the current event emitter.
func (e *Engine) GetEventEmitter() EventEmitter {
	return e.emitter
}

// RegisterStateCallback registers a callback that receives a snapshot after every state change.
func (e *Engine) RegisterStateCallback(callback func(State)) {
	e.callbackMu.Lock()
	defer e.callbackMu.Unlock()

	e.stateCallbacks = append(e.stateCallbacks, callback)
}

// Initialize fetches status, logs and results once, concurrently, then keeps
// polling them every Interval until Close is called or ctx is done. It returns
// immediately; only the first call has any effect.
func (e *Engine) Initialize(ctx context.Context) {
	e.initOnce.Do(func() {
		e.mu.Lock()
		if e.closed {
			e.mu.Unlock()
			close(e.loopDone)

			return
		}

		loopCtx, cancel := context.WithCancel(ctx)
		e.cancel = cancel
		ticker := e.TimeProvider.NewTicker(e.Interval)
		e.mu.Unlock()

		e.logToFile(fmt.Sprintf("Polling every %s", e.Interval))

		go e.pollLoop(loopCtx, ticker)
	})
}

// Close stops polling. It is safe to call more than once and before Initialize.
// Requests already in flight are allowed to finish but their responses are discarded.
func (e *Engine) Close() {
	e.closeOnce.Do(func() {
		e.mu.Lock()
		e.closed = true
		cancel := e.cancel
		e.mu.Unlock()

		if cancel != nil {
			cancel()
		}

		e.logToFile("Engine closed")
	})
}

// Done is closed when the poll loop has exited after Close (or immediately
// when Close came before Initialize and Initialize was then called).
func (e *Engine) Done() <-chan struct{} {
	return e.loopDone
}

// RefreshLogs fetches the log lines once and merges them.
func (e *Engine) RefreshLogs(ctx context.Context) {
	e.refreshLogs(ctx)
}

// RefreshResults fetches the result rows once and merges them.
func (e *Engine) RefreshResults(ctx context.Context) {
	e.refreshResults(ctx, true)
}

// RefreshStatus fetches the run status once and merges it.
func (e *Engine) RefreshStatus(ctx context.Context) {
	e.refreshStatus(ctx)
}

// Snapshot returns a copy of the current state.
func (e *Engine) Snapshot() State {
	e.mu.Lock()
	snapshot := e.state.clone()
	e.mu.Unlock()

	snapshot.IsStarting = e.startGuard.Pending()
	snapshot.IsStopping = e.stopGuard.Pending()

	return snapshot
}

// StatusLabel is the label of the current state. See State.StatusLabel.
func (e *Engine) StatusLabel() string {
	return e.Snapshot().StatusLabel()
}

// StatusClass is the class of the current state. See State.StatusClass.
func (e *Engine) StatusClass() StatusClass {
	return e.Snapshot().StatusClass()
}

// acceptLocked reports whether a successful response for resource with the
// given sequence may be merged, and records it as applied. Caller holds e.mu.
func (e *Engine) acceptLocked(resource Resource, seq uint64) bool {
	if e.closed {
		return false
	}

	tracker := e.sequences[resource]
	if seq < tracker.applied {
		return false
	}

	tracker.applied = seq

	return true
}

// emit sends an event if an emitter is configured.
// Safe to call even when emitter is nil.
func (e *Engine) emit(event Event) {
	if e.emitter != nil {
		e.emitter.Emit(event)
	}
}

func (e *Engine) nextSequence(resource Resource) uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	tracker := e.sequences[resource]
	tracker.issued++

	return tracker.issued
}

// notifyStateChange notifies all registered callbacks
func (e *Engine) notifyStateChange() {
	e.callbackMu.RLock()
	callbacks := make([]func(State), len(e.stateCallbacks))
	copy(callbacks, e.stateCallbacks)
	e.callbackMu.RUnlock()

	if len(callbacks) == 0 {
		return
	}

	snapshot := e.Snapshot()
	for _, callback := range callbacks {
		callback(snapshot)
	}
}

func (e *Engine) pollLoop(ctx context.Context, ticker Ticker) {
	defer close(e.loopDone)
	defer ticker.Stop()

	// In-flight fetches are not cancelled by Close; their results are dropped instead.
	fetchCtx := context.WithoutCancel(ctx)

	e.refreshAll(fetchCtx, true)

	for {
		select {
		case <-ctx.Done():
			e.Close()
			return
		case <-ticker.C():
			if ctx.Err() != nil {
				e.Close()
				return
			}
			e.refreshAll(fetchCtx, false)
		}
	}
}

// refreshAll fetches the three resources concurrently. A failure of one never
// affects the others.
func (e *Engine) refreshAll(ctx context.Context, markResults bool) {
	var group errgroup.Group

	group.Go(func() error {
		e.refreshStatus(ctx)
		return nil
	})
	group.Go(func() error {
		e.refreshLogs(ctx)
		return nil
	})
	group.Go(func() error {
		e.refreshResults(ctx, markResults)
		return nil
	})

	_ = group.Wait()
}

func (e *Engine) refreshLogs(ctx context.Context) {
	seq := e.nextSequence(ResourceLogs)

	logs, err := e.gateway.FetchLogs(ctx)
	if err != nil {
		e.LogVerbose(fmt.Sprintf("logs #%d failed: %v", seq, err))
		e.emit(RefreshFailed{Resource: ResourceLogs, Err: err})

		return
	}

	if logs == nil {
		logs = []string{}
	}

	e.mu.Lock()
	if !e.acceptLocked(ResourceLogs, seq) {
		e.mu.Unlock()
		e.LogVerbose(fmt.Sprintf("logs #%d discarded", seq))

		return
	}
	e.state.Logs = logs
	e.state.LastUpdated = e.TimeProvider.Now()
	e.mu.Unlock()

	e.emit(LogsRefreshed{Count: len(logs)})
	e.notifyStateChange()
}

func (e *Engine) refreshResults(ctx context.Context, markUpdated bool) {
	seq := e.nextSequence(ResourceResults)

	results, err := e.gateway.FetchResults(ctx)
	if err != nil {
		e.LogVerbose(fmt.Sprintf("results #%d failed: %v", seq, err))
		e.emit(RefreshFailed{Resource: ResourceResults, Err: err})

		return
	}

	if results == nil {
		results = []gateway.ResultRow{}
	}

	e.mu.Lock()
	if !e.acceptLocked(ResourceResults, seq) {
		e.mu.Unlock()
		e.LogVerbose(fmt.Sprintf("results #%d discarded", seq))

		return
	}
	e.state.Results = results
	if markUpdated {
		e.state.LastUpdated = e.TimeProvider.Now()
	}
	e.mu.Unlock()

	e.emit(ResultsRefreshed{Count: len(results)})
	e.notifyStateChange()
}

func (e *Engine) refreshStatus(ctx context.Context) {
	seq := e.nextSequence(ResourceStatus)

	status, err := e.gateway.FetchStatus(ctx)
	if err != nil {
		e.statusFailed(seq, err)
		return
	}

	e.mu.Lock()
	if !e.acceptLocked(ResourceStatus, seq) {
		e.mu.Unlock()
		e.LogVerbose(fmt.Sprintf("status #%d discarded", seq))

		return
	}
	e.state.Status = &status
	e.state.LastUpdated = e.TimeProvider.Now()

	// A recovered connection clears its own warning, nothing else.
	cleared := e.state.StatusMessage == MsgStatusUnavailable
	if cleared {
		e.state.StatusMessage = ""
	}
	e.mu.Unlock()

	e.emit(StatusRefreshed{Running: status.Running, Stopping: status.Stopping})
	if cleared {
		e.emit(MessageChanged{})
	}
	e.notifyStateChange()
}

// setMessage replaces the status message unless the engine is closed.
func (e *Engine) setMessage(message string, cause error) {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.state.StatusMessage = message
	e.mu.Unlock()

	if message != "" {
		e.logToFile("Message: " + message)
	}

	e.emit(MessageChanged{Message: message, Err: cause})
	e.notifyStateChange()
}

func (e *Engine) statusFailed(seq uint64, err error) {
	e.logToFile(fmt.Sprintf("status #%d failed: %v", seq, err))
	e.emit(RefreshFailed{Resource: ResourceStatus, Err: err})

	e.mu.Lock()
	stale := e.closed || seq < e.sequences[ResourceStatus].applied
	if !stale {
		e.state.StatusMessage = MsgStatusUnavailable
	}
	e.mu.Unlock()

	if stale {
		return
	}

	e.emit(MessageChanged{Message: MsgStatusUnavailable, Err: err})
	e.notifyStateChange()
}
