//go:build !windows

package session

import (
	"fmt"
	"os"

	"github.com/charmbracelet/x/term"
)

// controllingTTY returns stdin when it is a terminal. Otherwise stdin carried
// piped data and keystrokes must come from /dev/tty, which the caller owns.
func controllingTTY(stdin *os.File) (*os.File, bool, error) {
	if term.IsTerminal(stdin.Fd()) {
		return stdin, false, nil
	}
	f, err := os.Open("/dev/tty")
	if err != nil {
		return nil, false, fmt.Errorf("open controlling terminal: %w", err)
	}
	return f, true, nil
}
