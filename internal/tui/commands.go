package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/joe/proxy-panel/internal/gateway"
	"github.com/joe/proxy-panel/internal/syncengine"
	"github.com/joe/proxy-panel/internal/tui/shared"
)

// Engine calls block on the network, so each one runs inside a tea.Cmd and
// reports back with a message from shared/messages.go.

func (p *ControlPanel) initializeCmd() tea.Cmd {
	engine, ctx := p.engine, p.ctx

	return func() tea.Msg {
		engine.Initialize(ctx)
		return shared.EngineReadyMsg{}
	}
}

func (p *ControlPanel) listenCmd() tea.Cmd {
	if p.bridge == nil {
		return nil
	}

	return p.bridge.ListenCmd()
}

func (p *ControlPanel) startCmd(payload gateway.StartPayload) tea.Cmd {
	engine, ctx := p.engine, p.ctx

	return func() tea.Msg {
		return shared.CommandResultMsg{
			Kind:     syncengine.CommandStart,
			Accepted: engine.Start(ctx, payload),
		}
	}
}

func (p *ControlPanel) stopCmd() tea.Cmd {
	engine, ctx := p.engine, p.ctx

	return func() tea.Msg {
		return shared.CommandResultMsg{
			Kind:     syncengine.CommandStop,
			Accepted: engine.Stop(ctx),
		}
	}
}

// refreshCmd refetches all three resources concurrently.
func (p *ControlPanel) refreshCmd() tea.Cmd {
	engine, ctx := p.engine, p.ctx

	return func() tea.Msg {
		var group errgroup.Group

		for _, refresh := range []func(context.Context){
			engine.RefreshStatus,
			engine.RefreshLogs,
			engine.RefreshResults,
		} {
			refresh := refresh

			group.Go(func() error {
				refresh(ctx)
				return nil
			})
		}

		_ = group.Wait()

		return shared.RefreshDoneMsg{}
	}
}

func (p *ControlPanel) copyCmd(proxy string) tea.Cmd {
	engine := p.engine

	return func() tea.Msg {
		engine.CopyProxy(proxy)
		return shared.CopyDoneMsg{Proxy: proxy}
	}
}

func (p *ControlPanel) exportCmd() tea.Cmd {
	engine, dest := p.engine, p.exportDest

	return func() tea.Msg {
		return shared.ExportDoneMsg{Dest: dest, Err: engine.ExportResults(dest)}
	}
}
