package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the TUI key bindings.
type keyMap struct {
	NextPurpose key.Binding
	PrevPurpose key.Binding
	Clear       key.Binding
	Help        key.Binding
	Quit        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		NextPurpose: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next purpose")),
		PrevPurpose: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous purpose")),
		Clear:       key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "clear input")),
		Help:        key.NewBinding(key.WithKeys("?", "f1"), key.WithHelp("?", "toggle help")),
		Quit:        key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextPurpose, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextPurpose, k.PrevPurpose},
		{k.Clear, k.Help, k.Quit},
	}
}
