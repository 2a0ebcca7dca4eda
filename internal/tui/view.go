package tui

import (
	"strings"

	"github.com/joe/proxy-panel/internal/tui/shared"
	"github.com/joe/proxy-panel/internal/tui/widgets"
)

// View implements tea.Model
func (p *ControlPanel) View() string {
	if p.quitting {
		return ""
	}

	sections := []string{
		shared.RenderTitle("Proxy Scanner") + "  " + shared.RenderDim(p.server),
		shared.RenderTwoColumnLayout(p.renderForm(), p.renderStatus(), p.width),
		shared.RenderSection("Logs", p.logs.View(), p.width, p.focus == SectionLogs),
		shared.RenderSection("Working proxies", p.renderResults(), p.width,
			p.focus == SectionFilter || p.focus == SectionResults),
		p.help.View(p.keys),
	}

	return strings.Join(sections, "\n")
}

func (p *ControlPanel) formFocused() bool {
	return p.focus == SectionTargets || p.focus == SectionMaxProxies || p.focus == SectionMaxPerTarget
}

func (p *ControlPanel) renderForm() string {
	var builder strings.Builder

	builder.WriteString(shared.RenderLabel("Targets"))
	builder.WriteString("\n")
	builder.WriteString(p.targets.View())
	builder.WriteString("\n")
	builder.WriteString(shared.RenderLabel("Max proxies ") + p.maxProxies.View())
	builder.WriteString("\n")
	builder.WriteString(shared.RenderLabel("Max per target ") + p.maxPerTarget.View())
	builder.WriteString("\n")

	if p.formError != "" {
		builder.WriteString(shared.RenderError(p.formError))
		builder.WriteString("\n")
	}

	builder.WriteString(widgets.NewControlsWidget(p.state, p.spinner.View())())

	leftWidth := int(float64(p.width) * 0.6) //nolint:mnd // matches RenderTwoColumnLayout

	return shared.RenderSection("Start scan", builder.String(), leftWidth, p.formFocused())
}

func (p *ControlPanel) renderStatus() string {
	rightWidth := p.width - int(float64(p.width)*0.6) //nolint:mnd // matches RenderTwoColumnLayout

	parts := []string{widgets.NewStatusWidget(p.state, p.now())()}

	if message := shared.RenderStatusMessage(p.state.StatusMessage, p.messageErr,
		shared.InnerWidth(rightWidth)); message != "" {
		parts = append(parts, message)
	}

	if activity := widgets.NewActivityLogWidget(p.Activity, widgets.DefaultActivityEntries)(); activity != "" {
		parts = append(parts, shared.RenderDim(activity))
	}

	return shared.RenderSection("Status", strings.Join(parts, "\n\n"), rightWidth, false)
}

func (p *ControlPanel) renderResults() string {
	summary := widgets.NewResultsSummaryWidget(len(p.state.Results), len(p.visible), p.filter.Value())()

	var body string

	switch {
	case len(p.state.Results) == 0:
		body = shared.RenderDim("No working proxies yet.")
	case len(p.visible) == 0:
		body = shared.RenderDim("No proxies match the filter.")
	default:
		body = p.results.View()
	}

	return strings.Join([]string{summary, p.filter.View(), body}, "\n")
}
