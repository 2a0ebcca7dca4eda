package syncengine

// Event is the interface implemented by all sync engine events.
type Event interface {
	isEvent()
}

// EventEmitter is the interface for emitting events.
type EventEmitter interface {
	Emit(event Event)
}

// Resource names one of the polled remote resources.
type Resource string

// Polled resources.
const (
	ResourceStatus  Resource = "status"
	ResourceLogs    Resource = "logs"
	ResourceResults Resource = "results"
)

// CommandKind names a user command guarded against duplicate submission.
type CommandKind string

// Guarded commands.
const (
	CommandStart CommandKind = "start"
	CommandStop  CommandKind = "stop"
)

// Refresh events

// StatusRefreshed is emitted when a status response has been merged.
type StatusRefreshed struct {
	Running  bool
	Stopping bool
}

func (StatusRefreshed) isEvent() {}

// LogsRefreshed is emitted when a logs response has been merged.
type LogsRefreshed struct {
	Count int
}

func (LogsRefreshed) isEvent() {}

// ResultsRefreshed is emitted when a results response has been merged.
type ResultsRefreshed struct {
	Count int
}

func (ResultsRefreshed) isEvent() {}

// RefreshFailed is emitted when a fetch fails. The resource keeps its prior value.
type RefreshFailed struct {
	Resource Resource
	Err      error
}

func (RefreshFailed) isEvent() {}

// Command events

// CommandStarted is emitted when a guarded command has been submitted to the remote.
type CommandStarted struct {
	Kind CommandKind
}

func (CommandStarted) isEvent() {}

// CommandFinished is emitted once the command's guard has been released.
// Err is nil on success.
type CommandFinished struct {
	Kind CommandKind
	Err  error
}

func (CommandFinished) isEvent() {}

// CommandIgnored is emitted when a command is submitted while one of the same kind is pending.
type CommandIgnored struct {
	Kind CommandKind
}

func (CommandIgnored) isEvent() {}

// Message events

// MessageChanged is emitted when the status message changes.
// Err carries the failure behind the message, if any.
type MessageChanged struct {
	Message string
	Err     error
}

func (MessageChanged) isEvent() {}
