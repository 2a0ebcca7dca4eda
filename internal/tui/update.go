package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/joe/proxy-panel/internal/presenter"
	"github.com/joe/proxy-panel/internal/syncengine"
	"github.com/joe/proxy-panel/internal/tui/shared"
)

// Update implements tea.Model
func (p *ControlPanel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.resize(msg.Width, msg.Height)
		return p, nil

	case tea.KeyMsg:
		return p.handleKeyMsg(msg)

	case shared.EngineEventMsg:
		p.handleEngineEvent(msg.Event)
		p.syncState()

		return p, p.listenCmd()

	case shared.EngineReadyMsg:
		p.addActivity("Watching " + p.server)
		p.syncState()

		return p, nil

	case shared.CommandResultMsg:
		if !msg.Accepted {
			p.addActivity(commandTitle(msg.Kind) + " already in progress")
		}

		p.syncState()

		return p, nil

	case shared.RefreshDoneMsg, shared.CopyDoneMsg:
		p.syncState()
		return p, nil

	case shared.ExportDoneMsg:
		if msg.Err == nil {
			p.addActivity("Exported results to " + msg.Dest)
		}

		p.syncState()

		return p, nil

	case shared.TickMsg:
		// Nothing to pull; the tick only re-renders relative times.
		return p, shared.TickCmd()

	case spinner.TickMsg:
		var cmd tea.Cmd
		p.spinner, cmd = p.spinner.Update(msg)

		return p, cmd
	}

	return p, p.updateFocused(msg)
}

func (p *ControlPanel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, p.keys.Quit):
		p.quitting = true
		p.engine.Close()

		return p, tea.Quit

	case key.Matches(msg, p.keys.NextFocus):
		p.setFocus(p.focus.next())
		return p, nil

	case key.Matches(msg, p.keys.PrevFocus):
		p.setFocus(p.focus.prev())
		return p, nil

	case key.Matches(msg, p.keys.Start):
		return p, p.submitStart()

	case key.Matches(msg, p.keys.Stop):
		return p, p.stopCmd()

	case key.Matches(msg, p.keys.Refresh):
		if !p.refreshLimiter.Allow() {
			p.addActivity("Refresh skipped: too many requests")
			return p, nil
		}

		return p, p.refreshCmd()

	case key.Matches(msg, p.keys.Export):
		return p, p.exportCmd()

	case key.Matches(msg, p.keys.Copy),
		p.focus == SectionResults && msg.Type == tea.KeyEnter:
		row, ok := p.selectedResult()
		if !ok {
			return p, nil
		}

		return p, p.copyCmd(row.Proxy)
	}

	return p, p.updateFocused(msg)
}

// submitStart validates the form. An invalid form is reported under the form
// and nothing is sent.
func (p *ControlPanel) submitStart() tea.Cmd {
	payload, err := presenter.BuildStartPayload(presenter.FormInput{
		Targets:      p.targets.Value(),
		MaxProxies:   p.maxProxies.Value(),
		MaxPerTarget: p.maxPerTarget.Value(),
	})
	if err != nil {
		p.formError = err.Error()
		return nil
	}

	p.formError = ""

	return p.startCmd(payload)
}

// updateFocused forwards msg to the focused input.
func (p *ControlPanel) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd

	switch p.focus {
	case SectionTargets:
		p.targets, cmd = p.targets.Update(msg)
	case SectionMaxProxies:
		p.maxProxies, cmd = p.maxProxies.Update(msg)
		p.formError = ""
	case SectionMaxPerTarget:
		p.maxPerTarget, cmd = p.maxPerTarget.Update(msg)
		p.formError = ""
	case SectionFilter:
		before := p.filter.Value()
		p.filter, cmd = p.filter.Update(msg)

		if p.filter.Value() != before {
			p.applyResults()
		}
	case SectionResults:
		p.results, cmd = p.results.Update(msg)
	case SectionLogs:
		p.logs, cmd = p.logs.Update(msg)
	case sectionCount:
	}

	return cmd
}

// handleEngineEvent records noteworthy events in the activity feed. Poll
// results are only recorded when they change something.
func (p *ControlPanel) handleEngineEvent(event syncengine.Event) {
	switch event := event.(type) {
	case syncengine.StatusRefreshed:
		p.recovered(syncengine.ResourceStatus)

		label := statusLabel(event)
		if label != p.lastStatus {
			p.lastStatus = label
			p.addActivity("Scan " + strings.ToLower(label))
		}

	case syncengine.LogsRefreshed:
		p.recovered(syncengine.ResourceLogs)

	case syncengine.ResultsRefreshed:
		p.recovered(syncengine.ResourceResults)

		if event.Count != p.lastResultCount {
			p.lastResultCount = event.Count
			p.addActivity(fmt.Sprintf("%d working proxies", event.Count))
		}

	case syncengine.RefreshFailed:
		if !p.failing[event.Resource] {
			p.failing[event.Resource] = true
			p.addActivity(fmt.Sprintf("Failed to refresh %s: %v", event.Resource, event.Err))
		}

	case syncengine.CommandStarted:
		p.addActivity(commandTitle(event.Kind) + " requested")

	case syncengine.CommandFinished:
		if event.Err != nil {
			p.addActivity(fmt.Sprintf("%s failed: %v", commandTitle(event.Kind), event.Err))
		} else {
			p.addActivity(commandTitle(event.Kind) + " accepted")
		}

	case syncengine.CommandIgnored:
		// Reported from CommandResultMsg.

	case syncengine.MessageChanged:
		p.messageErr = event.Err
	}
}

// recovered notes in the activity feed that a failing resource is reachable again.
func (p *ControlPanel) recovered(resource syncengine.Resource) {
	if p.failing[resource] {
		delete(p.failing, resource)
		p.addActivity(fmt.Sprintf("Refreshed %s again", resource))
	}
}

func commandTitle(kind syncengine.CommandKind) string {
	switch kind {
	case syncengine.CommandStart:
		return "Start"
	case syncengine.CommandStop:
		return "Stop"
	default:
		return string(kind)
	}
}

func statusLabel(event syncengine.StatusRefreshed) string {
	switch {
	case event.Stopping:
		return syncengine.LabelStopping
	case event.Running:
		return syncengine.LabelRunning
	default:
		return syncengine.LabelIdle
	}
}
