package tui

import (
	"log"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Decide maps the current state and an input event to the next state and
// whether another frame should be drawn. It has no side effects.
//
// Only the quit key moves Running to Exiting; every other event, including
// resizes, is consumed and the loop keeps rendering. Exiting absorbs all
// events.
func Decide(s State, msg tea.Msg) (next State, render bool) {
	if s == Exiting {
		return Exiting, false
	}
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return Running, true
	}
	if key.Matches(k, defaultKeys.Quit) {
		return Exiting, false
	}
	// Printable keys that arrive in one read are delivered as a single
	// message. Each rune is still its own key press, taken in order.
	if k.Type == tea.KeyRunes && !k.Alt {
		for _, r := range k.Runes {
			if key.Matches(runeKey(r), defaultKeys.Quit) {
				return Exiting, false
			}
		}
	}
	return Running, true
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// Update records the window size, then applies Decide. Leaving Running asks
// Bubble Tea to quit.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = ws.Width, ws.Height
		m.help.Width = ws.Width
	}

	next, render := Decide(m.state, msg)
	if next != m.state {
		log.Printf("tui: %s -> %s on %v", m.state, next, msg)
	}
	m.state = next

	if !render {
		return m, tea.Quit
	}
	return m, nil
}
