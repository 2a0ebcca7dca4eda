package shared

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/joe/proxy-panel/internal/syncengine"
)

// eventBufferSize bounds how far the engine may run ahead of the TUI.
const eventBufferSize = 100

// EngineEventMsg wraps a syncengine.Event for use as a tea.Msg.
type EngineEventMsg struct {
	Event syncengine.Event
}

// EventBridge adapts syncengine events to bubble tea messages.
// It implements syncengine.EventEmitter and provides a channel for TUI consumption.
// Emit is called from engine goroutines, so the closed flag is guarded.
type EventBridge struct {
	mu        sync.RWMutex
	eventChan chan tea.Msg
	closed    bool
}

// NewEventBridge creates a new event bridge.
func NewEventBridge() *EventBridge {
	return &EventBridge{
		eventChan: make(chan tea.Msg, eventBufferSize),
	}
}

// Emit implements syncengine.EventEmitter.
// The send never blocks; when the buffer is full the event is dropped, which
// is harmless because the TUI re-reads the whole snapshot on the next event.
func (b *EventBridge) Emit(event syncengine.Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return
	}

	select {
	case b.eventChan <- EngineEventMsg{Event: event}:
	default:
	}
}

// Subscribe returns the event channel for receiving events.
func (b *EventBridge) Subscribe() <-chan tea.Msg {
	return b.eventChan
}

// ListenCmd returns a tea.Cmd that blocks until an event is received.
// Use this in Init() or after processing an event to continue listening.
func (b *EventBridge) ListenCmd() tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-b.eventChan
		if !ok {
			return nil // Channel closed
		}

		return msg
	}
}

// Close closes the event channel. Safe to call more than once.
func (b *EventBridge) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.closed {
		b.closed = true
		close(b.eventChan)
	}
}
