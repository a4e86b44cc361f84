package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// ErrInput wraps failures to read a piped command line.
var ErrInput = errors.New("reading command line from stdin")

// Source yields the argument vector to parse. Index 0 is the program name.
type Source interface {
	Argv() ([]string, error)
}

// Interactive is used when stdin is a terminal: the process's own arguments.
type Interactive struct {
	Args []string
}

func (s Interactive) Argv() ([]string, error) {
	return s.Args, nil
}

// Piped is used when stdin is a pipe or file. Its whole content is read as a
// command line, so another program (a fuzzy finder, say) can hand breeze a
// directory.
type Piped struct {
	Name string
	R    io.Reader
}

func (s Piped) Argv() ([]string, error) {
	data, err := io.ReadAll(s.R)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInput, err)
	}
	// The parser expects a program name first, as in os.Args.
	argv := []string{s.Name}
	return append(argv, strings.Fields(strings.TrimSpace(string(data)))...), nil
}

// DetectSource picks the argument source for this invocation.
func DetectSource(stdin *os.File, args []string) Source {
	fd := stdin.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return Interactive{Args: args}
	}
	return Piped{Name: programName(args), R: stdin}
}

func programName(args []string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	return "breeze"
}
