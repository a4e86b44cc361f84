package session

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/x/term"
)

// ttyTerminal drives a real terminal: termios for input, escape sequences on
// the output surface for the screen buffer.
type ttyTerminal struct {
	in    *os.File
	out   io.Writer
	saved *term.State
}

func newTTYTerminal(in *os.File, out io.Writer) *ttyTerminal {
	return &ttyTerminal{in: in, out: out}
}

func (t *ttyTerminal) EnableRaw() error {
	state, err := term.MakeRaw(t.in.Fd())
	if err != nil {
		return fmt.Errorf("make raw %s: %w", t.in.Name(), err)
	}
	t.saved = state
	return nil
}

func (t *ttyTerminal) DisableRaw() error {
	if t.saved == nil {
		return nil
	}
	if err := term.Restore(t.in.Fd(), t.saved); err != nil {
		return fmt.Errorf("restore %s: %w", t.in.Name(), err)
	}
	t.saved = nil
	return nil
}

func (t *ttyTerminal) EnterAltScreen() error {
	_, err := io.WriteString(t.out, ansi.SetAltScreenSaveCursorMode)
	return err
}

func (t *ttyTerminal) LeaveAltScreen() error {
	_, err := io.WriteString(t.out, ansi.ResetAltScreenSaveCursorMode)
	return err
}
