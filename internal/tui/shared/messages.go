package shared

import (
	"github.com/joe/proxy-panel/internal/syncengine"
)

// ============================================================================
// Engine Result Messages
// Sent by the tea.Cmds that run engine calls off the UI goroutine
// ============================================================================

// EngineReadyMsg is sent once Initialize has launched the poll loop
type EngineReadyMsg struct{}

// CommandResultMsg is sent when a start or stop call returns
type CommandResultMsg struct {
	Kind     syncengine.CommandKind
	Accepted bool // false when a command of the same kind was already pending
}

// RefreshDoneMsg is sent when a manual refresh of all three resources returns
type RefreshDoneMsg struct{}

// CopyDoneMsg is sent when a clipboard copy returns
type CopyDoneMsg struct {
	Proxy string
}

// ExportDoneMsg is sent when an export returns
type ExportDoneMsg struct {
	Dest string
	Err  error
}
