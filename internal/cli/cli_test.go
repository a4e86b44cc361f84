package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/w31r4/breeze/internal/dirinfo"
	"github.com/w31r4/breeze/internal/resolve"
	"github.com/w31r4/breeze/internal/session"
)

// modeTerminal tracks the terminal modes a session switches.
type modeTerminal struct {
	raw, alt bool
	opened   bool
}

func (m *modeTerminal) EnableRaw() error {
	m.raw, m.opened = true, true
	return nil
}

func (m *modeTerminal) DisableRaw() error {
	m.raw = false
	return nil
}

func (m *modeTerminal) EnterAltScreen() error {
	m.alt = true
	return nil
}

func (m *modeTerminal) LeaveAltScreen() error {
	m.alt = false
	return nil
}

type harness struct {
	term     *modeTerminal
	opens    int
	loopInfo *dirinfo.Info
	loopErr  error
}

func newRunner(t *testing.T, src Source, h *harness) runner {
	t.Helper()

	in, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		_ = in.Close()
		_ = w.Close()
	})
	out, err := os.CreateTemp(t.TempDir(), "surface")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = out.Close() })

	h.term = &modeTerminal{}
	return runner{
		source: src,
		stdout: &bytes.Buffer{},
		open: func(opts session.Options) (*session.Session, error) {
			h.opens++
			opts.Input, opts.Output, opts.Terminal = in, out, h.term
			return session.Open(opts)
		},
		loop: func(_ context.Context, sess *session.Session, info dirinfo.Info) error {
			if raw, alt := sess.State(); !raw || !alt {
				t.Errorf("loop ran with raw=%v alt=%v", raw, alt)
			}
			h.loopInfo = &info
			return h.loopErr
		},
	}
}

func TestRunExploresDirectory(t *testing.T) {
	dir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	h := &harness{}
	r := newRunner(t, Interactive{Args: []string{"breeze", dir}}, h)
	if err := r.run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}

	if h.loopInfo == nil || h.loopInfo.Path != dir {
		t.Fatalf("loop info = %+v, want path %s", h.loopInfo, dir)
	}
	if h.term.raw || h.term.alt {
		t.Errorf("terminal left raw=%v alt=%v", h.term.raw, h.term.alt)
	}
}

func TestRunPipedMatchesDirect(t *testing.T) {
	dir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	direct := &harness{}
	if err := newRunner(t, Interactive{Args: []string{"breeze", dir}}, direct).run(context.Background()); err != nil {
		t.Fatal(err)
	}
	piped := &harness{}
	src := Piped{Name: "breeze", R: strings.NewReader(dir + "\n")}
	if err := newRunner(t, src, piped).run(context.Background()); err != nil {
		t.Fatal(err)
	}

	if direct.loopInfo.Path != piped.loopInfo.Path {
		t.Errorf("piped path %s != direct path %s", piped.loopInfo.Path, direct.loopInfo.Path)
	}
}

func TestRunFailsBeforeTouchingTerminal(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")

	tests := []struct {
		name string
		src  Source
		want error
	}{
		{"missing directory", Interactive{Args: []string{"breeze", missing}}, resolve.ErrResolve},
		{"usage", Interactive{Args: []string{"breeze", "a", "b"}}, ErrUsage},
		{"unreadable stdin", Piped{Name: "breeze", R: errReader{}}, ErrInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &harness{}
			err := newRunner(t, tt.src, h).run(context.Background())
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
			if h.opens != 0 || h.term.opened {
				t.Error("terminal session was opened")
			}
		})
	}
}

func TestRunHelpDoesNotOpenSession(t *testing.T) {
	h := &harness{}
	r := newRunner(t, Interactive{Args: []string{"breeze", "--help"}}, h)
	if err := r.run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if h.opens != 0 {
		t.Error("terminal session was opened for --help")
	}
}

func TestRunRestoresTerminalOnLoopError(t *testing.T) {
	boom := errors.New("boom")
	h := &harness{loopErr: boom}
	r := newRunner(t, Interactive{Args: []string{"breeze", t.TempDir()}}, h)

	if err := r.run(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
	if h.term.raw || h.term.alt {
		t.Errorf("terminal left raw=%v alt=%v", h.term.raw, h.term.alt)
	}
}

func TestRunRestoresTerminalOnPanic(t *testing.T) {
	h := &harness{}
	r := newRunner(t, Interactive{Args: []string{"breeze", t.TempDir()}}, h)
	r.loop = func(context.Context, *session.Session, dirinfo.Info) error {
		panic("loop exploded")
	}

	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("panic was swallowed")
			}
		}()
		_ = r.run(context.Background())
	}()

	if h.term.raw || h.term.alt {
		t.Errorf("terminal left raw=%v alt=%v", h.term.raw, h.term.alt)
	}
}

func TestRunLogFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "breeze.log")
	h := &harness{}
	r := newRunner(t, Interactive{Args: []string{"breeze", "--log-file", logPath, t.TempDir()}}, h)
	if err := r.run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	t.Cleanup(func() { _, _ = setupLogging("") })

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "cli: exploring") {
		t.Errorf("log file missing startup line:\n%s", data)
	}
}

type errReader struct{}

func (errReader) Read([]byte) (int, error) { return 0, errors.New("read failed") }
