// Package main is the entry point for the proxy-panel application.
package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term" //nolint:depguard // Required for TTY detection

	"github.com/joe/proxy-panel/internal/config"
	"github.com/joe/proxy-panel/internal/export"
	"github.com/joe/proxy-panel/internal/gateway"
	"github.com/joe/proxy-panel/internal/syncengine"
	"github.com/joe/proxy-panel/internal/tui"
	"github.com/joe/proxy-panel/internal/tui/shared"
)

func main() {
	cfg, err := config.ParseFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	client := gateway.New(cfg.Server, gateway.WithTimeout(cfg.Timeout))

	engine := syncengine.NewEngine(client)
	engine.Interval = cfg.Interval
	engine.Verbose = cfg.Verbose
	engine.Exporter = export.New()

	if cfg.LogFile != "" {
		if err := engine.EnableFileLogging(cfg.LogFile); err != nil {
			return err
		}
		defer engine.CloseLog()
	}

	client.SetLogger(engine.LogVerbose)

	bridge := shared.NewEventBridge()
	defer bridge.Close()

	engine.SetEventEmitter(bridge)
	defer engine.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	model := tui.NewAppModel(ctx, cfg, engine, bridge)

	// Only use alt screen if stdout is a TTY
	var opts []tea.ProgramOption
	if term.IsTerminal(int(os.Stdout.Fd())) {
		opts = append(opts, tea.WithAltScreen())
	}

	_, err := tea.NewProgram(model, opts...).Run()
	if err != nil {
		return fmt.Errorf("run control panel: %w", err)
	}

	return nil
}
