// Package tui runs the explorer's render/input loop on top of Bubble Tea.
//
// Each turn draws the current frame, blocks for the next terminal event and
// feeds it through Decide. The loop ends when Decide reports Exiting.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/w31r4/breeze/internal/dirinfo"
	"github.com/w31r4/breeze/internal/session"
)

// Run drives the explorer on an open session until the user quits or ctx is
// cancelled. The caller remains responsible for closing the session.
func Run(ctx context.Context, sess *session.Session, info dirinfo.Info) error {
	m := newModel(info, lipgloss.NewRenderer(sess.Surface()))
	_, err := run(ctx, m, sess.Input(), sess.Surface())
	return err
}

func run(ctx context.Context, m model, in io.Reader, out io.Writer) (model, error) {
	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		// The session owns signal handling and restores the terminal itself.
		tea.WithoutSignalHandler(),
	)

	final, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return m, fmt.Errorf("event loop interrupted: %w", ctx.Err())
		}
		return m, fmt.Errorf("event loop: %w", err)
	}

	fm, ok := final.(model)
	if !ok {
		return m, fmt.Errorf("event loop: unexpected model %T", final)
	}
	log.Printf("tui: loop finished in state %s", fm.state)
	return fm, nil
}
