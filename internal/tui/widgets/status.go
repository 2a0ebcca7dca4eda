package widgets

import (
	"fmt"
	"strings"
	"time"

	"github.com/joe/proxy-panel/internal/presenter"
	"github.com/joe/proxy-panel/internal/syncengine"
	"github.com/joe/proxy-panel/internal/tui/shared"
)

// NewStatusWidget renders the run status badge, the remote's last start and
// finish times, and when the panel last synced.
func NewStatusWidget(state syncengine.State, now time.Time) func() string {
	return func() string {
		var lastStarted, lastFinished *float64
		if state.Status != nil {
			lastStarted = state.Status.LastStarted
			lastFinished = state.Status.LastFinished
		}

		updated := presenter.FormatLastUpdated(state.LastUpdated)
		if ago := shared.FormatAgo(state.LastUpdated, now); ago != "" {
			updated = fmt.Sprintf("%s (%s)", updated, ago)
		}

		lines := []string{
			shared.RenderStatusBadge(state.StatusLabel(), state.StatusClass()),
			shared.RenderLabel("Last started:  ") + presenter.FormatTimestamp(lastStarted),
			shared.RenderLabel("Last finished: ") + presenter.FormatTimestamp(lastFinished),
			shared.RenderLabel("Last updated:  ") + updated,
		}

		return strings.Join(lines, "\n")
	}
}
