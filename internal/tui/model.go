package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/w31r4/breeze/internal/dirinfo"
)

// State is the explorer loop's position in its two-state machine.
type State int

const (
	// Running renders frames and waits for input.
	Running State = iota
	// Exiting is terminal: nothing is rendered and the loop returns.
	Exiting
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Exiting:
		return "exiting"
	default:
		return "unknown"
	}
}

// model holds the explorer's view state.
type model struct {
	info   dirinfo.Info
	state  State
	keys   keyMap
	help   help.Model
	styles styles

	// Terminal size; zero until the first WindowSizeMsg.
	width, height int
}

// newModel builds the initial model. Styles are bound to r so colors follow
// the terminal frames are written to rather than stdout.
func newModel(info dirinfo.Info, r *lipgloss.Renderer) model {
	st := newStyles(r)
	h := help.New()
	h.Styles.ShortKey = st.helpKey
	h.Styles.ShortDesc = st.helpDesc
	h.Styles.ShortSeparator = st.helpSep
	h.Styles.Ellipsis = st.helpSep

	return model{
		info:   info,
		keys:   defaultKeys,
		help:   h,
		styles: st,
	}
}

// Init is Bubble Tea's startup hook. Everything is collected before the loop
// starts, so there is nothing to load.
func (m model) Init() tea.Cmd {
	return nil
}
