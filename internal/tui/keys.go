package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/joe/proxy-panel/internal/tui/shared"
)

// keyMap holds the panel's global bindings. Everything else goes to the
// focused input.
type keyMap struct {
	NextFocus key.Binding
	PrevFocus key.Binding
	Start     key.Binding
	Stop      key.Binding
	Refresh   key.Binding
	Copy      key.Binding
	Export    key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		NextFocus: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		PrevFocus: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
		Start:     key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "start")),
		Stop:      key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "stop")),
		Refresh:   key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "refresh")),
		Copy:      key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y/enter", "copy proxy")),
		Export:    key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("ctrl+e", "export")),
		Quit:      key.NewBinding(key.WithKeys(shared.KeyCtrlC), key.WithHelp(shared.KeyCtrlC, "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextFocus, k.Start, k.Stop, k.Refresh, k.Copy, k.Export, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextFocus, k.PrevFocus},
		{k.Start, k.Stop, k.Refresh},
		{k.Copy, k.Export, k.Quit},
	}
}
