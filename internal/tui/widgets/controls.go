package widgets

import (
	"strings"

	"github.com/joe/proxy-panel/internal/syncengine"
	"github.com/joe/proxy-panel/internal/tui/shared"
)

// NewControlsWidget renders the start and stop actions. A pending action shows
// spinnerFrame and its in-progress label; an action that cannot be submitted
// right now is dimmed.
func NewControlsWidget(state syncengine.State, spinnerFrame string) func() string {
	return func() string {
		status := state.StatusClass()

		start := action("ctrl+s", "Start scan", state.IsStarting, "Starting…", spinnerFrame,
			status == syncengine.StatusIdle)
		stop := action("ctrl+x", "Stop scan", state.IsStopping, "Stopping…", spinnerFrame,
			status == syncengine.StatusRunning)

		return strings.Join([]string{start, stop}, "   ")
	}
}

func action(key, label string, pending bool, pendingLabel, spinnerFrame string, available bool) string {
	if pending {
		return shared.RenderWarning(spinnerFrame + " " + pendingLabel)
	}

	text := "[" + key + "] " + label
	if !available {
		return shared.RenderDim(text)
	}

	return shared.RenderLabel(text)
}
