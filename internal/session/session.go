// Package session owns the interactive terminal for the lifetime of the
// explorer: raw keyboard input, the alternate screen buffer, and the buffered
// surface frames are drawn to.
//
// A Session is acquired with Open and released with Close. Close is safe to
// call more than once and must be deferred immediately after a successful
// Open so the user's shell is restored on every exit path.
package session

import (
	"errors"
	"fmt"
	"log"
	"os"
)

// ErrSession wraps failures to enter or leave the interactive terminal state.
var ErrSession = errors.New("terminal session")

// Terminal switches the terminal modes a session depends on.
type Terminal interface {
	EnableRaw() error
	DisableRaw() error
	EnterAltScreen() error
	LeaveAltScreen() error
}

// Options configures Open. Zero values select the process's own streams.
type Options struct {
	// Stdin is consulted to find the controlling terminal.
	Stdin *os.File
	// Output receives rendered frames. Defaults to stderr so stdout stays
	// free for printing results.
	Output *os.File
	// Input overrides the keyboard source. When nil it is stdin if that is a
	// terminal, otherwise the process's controlling terminal device.
	Input *os.File
	// Terminal overrides the mode switcher, mainly for tests.
	Terminal Terminal
}

// Session is the single owned handle on the interactive terminal.
type Session struct {
	term      Terminal
	in        *os.File
	ownsInput bool
	surface   *Surface

	raw    bool
	alt    bool
	closed bool
}

// Open enables raw mode and then enters the alternate screen. If the second
// step fails, raw mode is disabled again before the error is returned.
func Open(opts Options) (*Session, error) {
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.Output == nil {
		opts.Output = os.Stderr
	}

	s := &Session{
		in:      opts.Input,
		surface: NewSurface(opts.Output),
	}
	if s.in == nil {
		in, owned, err := controllingTTY(opts.Stdin)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrSession, err)
		}
		s.in, s.ownsInput = in, owned
	}

	s.term = opts.Terminal
	if s.term == nil {
		s.term = newTTYTerminal(s.in, s.surface)
	}

	if err := s.term.EnableRaw(); err != nil {
		err = fmt.Errorf("%w: enable raw mode: %w", ErrSession, err)
		return nil, errors.Join(err, s.Close())
	}
	s.raw = true

	if err := s.term.EnterAltScreen(); err != nil {
		err = fmt.Errorf("%w: enter alternate screen: %w", ErrSession, err)
		return nil, errors.Join(err, s.Close())
	}
	s.alt = true

	log.Printf("session: opened (input=%s)", s.in.Name())
	return s, nil
}

// Input is the file keyboard events are read from.
func (s *Session) Input() *os.File { return s.in }

// Surface is the buffered writer frames are rendered to.
func (s *Session) Surface() *Surface { return s.surface }

// State reports whether raw mode and the alternate screen are active.
func (s *Session) State() (raw, alt bool) { return s.raw, s.alt }

// Close leaves the alternate screen, flushes pending output and disables raw
// mode, in that order. Every step is attempted; all failures are returned.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	var errs []error
	if s.alt {
		if err := s.term.LeaveAltScreen(); err != nil {
			errs = append(errs, fmt.Errorf("%w: leave alternate screen: %w", ErrSession, err))
		}
		s.alt = false
	}
	if err := s.surface.Close(); err != nil {
		errs = append(errs, fmt.Errorf("%w: flush output: %w", ErrSession, err))
	}
	if s.raw {
		if err := s.term.DisableRaw(); err != nil {
			errs = append(errs, fmt.Errorf("%w: disable raw mode: %w", ErrSession, err))
		}
		s.raw = false
	}
	if s.ownsInput {
		if err := s.in.Close(); err != nil {
			errs = append(errs, fmt.Errorf("%w: close terminal: %w", ErrSession, err))
		}
	}

	log.Printf("session: closed")
	return errors.Join(errs...)
}
