package syncengine

import (
	"time"

	"github.com/joe/proxy-panel/internal/gateway"
)

// Status labels.
const (
	LabelIdle     = "Idle"
	LabelRunning  = "Running"
	LabelStopping = "Stopping"
)

// StatusClass is the three-valued display class of the run status.
type StatusClass int

const (
	// StatusIdle - no scan running, or status not yet known
	StatusIdle StatusClass = iota
	// StatusRunning - a scan is running
	StatusRunning
	// StatusStopping - a stop was requested and the scan is winding down
	StatusStopping
)

// String returns the string representation of StatusClass
func (c StatusClass) String() string {
	switch c {
	case StatusRunning:
		return "running"
	case StatusStopping:
		return "stopping"
	case StatusIdle:
		return "idle"
	default:
		return "unknown"
	}
}

// State is the engine's local view of the remote scan.
// Engine.Snapshot returns copies; the engine's own instance is never shared.
type State struct {
	Status        *gateway.RunStatus // nil until the first successful status fetch
	Logs          []string
	Results       []gateway.ResultRow
	StatusMessage string
	IsStarting    bool
	IsStopping    bool
	LastUpdated   time.Time // zero until the first successful sync
}

// StatusLabel is "Stopping" whenever the remote reports stopping, otherwise
// "Running" or "Idle". An unknown status is "Idle".
func (s State) StatusLabel() string {
	if s.Status == nil {
		return LabelIdle
	}

	if s.Status.Stopping {
		return LabelStopping
	}

	if s.Status.Running {
		return LabelRunning
	}

	return LabelIdle
}

// StatusClass maps StatusLabel onto StatusClass.
func (s State) StatusClass() StatusClass {
	switch s.StatusLabel() {
	case LabelRunning:
		return StatusRunning
	case LabelStopping:
		return StatusStopping
	default:
		return StatusIdle
	}
}

// clone returns a deep copy so callers can hold it without locking.
func (s State) clone() State {
	out := s

	if s.Status != nil {
		status := *s.Status
		out.Status = &status
	}

	out.Logs = append([]string(nil), s.Logs...)
	out.Results = append([]gateway.ResultRow(nil), s.Results...)

	return out
}

func newState() State {
	return State{
		Logs:    []string{},
		Results: []gateway.ResultRow{},
	}
}
