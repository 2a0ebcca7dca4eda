package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/joe/proxy-panel/internal/config"
	"github.com/joe/proxy-panel/internal/tui/shared"
)

// AppModel is the top-level model. It owns the window size and delegates
// everything else to the control panel.
type AppModel struct {
	config        *config.Config
	currentScreen tea.Model
	width         int
	height        int
}

// NewAppModel creates the app model around a control panel seeded from cfg.
func NewAppModel(ctx context.Context, cfg *config.Config, engine Engine, bridge *shared.EventBridge) *AppModel {
	panel := NewControlPanel(ctx, engine, bridge, Options{
		Server:       cfg.Server,
		Targets:      cfg.Targets,
		MaxProxies:   cfg.MaxProxies,
		MaxPerTarget: cfg.MaxPerTarget,
		Filter:       cfg.Filter,
		ExportDest:   cfg.Export,
	})

	return &AppModel{
		config:        cfg,
		currentScreen: panel,
	}
}

// CurrentScreen returns the current screen (for testing)
func (a AppModel) CurrentScreen() tea.Model {
	return a.currentScreen
}

// Init implements tea.Model
func (a AppModel) Init() tea.Cmd {
	return a.currentScreen.Init()
}

// Size returns the last window size seen (for testing)
func (a AppModel) Size() (int, int) {
	return a.width, a.height
}

// Update implements tea.Model
func (a AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if windowMsg, ok := msg.(tea.WindowSizeMsg); ok {
		a.width = windowMsg.Width
		a.height = windowMsg.Height
	}

	var cmd tea.Cmd
	a.currentScreen, cmd = a.currentScreen.Update(msg)

	return a, cmd
}

// View implements tea.Model
func (a AppModel) View() string {
	return a.currentScreen.View()
}
