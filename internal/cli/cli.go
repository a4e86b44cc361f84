// Package cli wires breeze together: it acquires the command line, resolves
// the target directory and runs the explorer inside a terminal session.
package cli

import (
	"context"
	"errors"
	"io"
	"log"
	"os"

	"github.com/w31r4/breeze/internal/dirinfo"
	"github.com/w31r4/breeze/internal/resolve"
	"github.com/w31r4/breeze/internal/session"
	"github.com/w31r4/breeze/internal/tui"
)

type runner struct {
	source Source
	stdin  *os.File
	stdout io.Writer

	open func(session.Options) (*session.Session, error)
	loop func(context.Context, *session.Session, dirinfo.Info) error
}

// Execute runs breeze against the process's own streams and arguments.
func Execute(ctx context.Context) error {
	r := runner{
		source: DetectSource(os.Stdin, os.Args),
		stdin:  os.Stdin,
		stdout: os.Stdout,
		open:   session.Open,
		loop:   tui.Run,
	}
	return r.run(ctx)
}

// run performs every fallible startup step before the terminal is touched.
// Once a session is open it is closed on every return path, and teardown
// errors are reported alongside any loop error.
func (r runner) run(ctx context.Context) (err error) {
	argv, err := r.source.Argv()
	if err != nil {
		return err
	}

	args, proceed, err := Parse(argv, r.stdout)
	if err != nil || !proceed {
		return err
	}

	logs, err := setupLogging(args.LogFile)
	if err != nil {
		return err
	}
	defer logs.Close()

	dir, err := resolve.Directory(args.Directory)
	if err != nil {
		return err
	}
	log.Printf("cli: exploring %s (requested %q)", dir, args.Directory)

	info := dirinfo.Collect(ctx, dir)

	ctx, stop := session.NotifyContext(ctx)
	defer stop()

	sess, err := r.open(session.Options{Stdin: r.stdin})
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, sess.Close())
	}()

	return r.loop(ctx, sess, info)
}
