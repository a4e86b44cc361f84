package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap lists the bindings the explorer reacts to. Navigation and file
// actions will be added here without changing the loop.
type keyMap struct {
	Quit key.Binding
}

var defaultKeys = keyMap{
	Quit: key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
