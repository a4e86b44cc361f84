//go:build windows

package session

import (
	"fmt"
	"os"

	"github.com/charmbracelet/x/term"
)

// controllingTTY returns stdin when it is a console, otherwise CONIN$.
func controllingTTY(stdin *os.File) (*os.File, bool, error) {
	if term.IsTerminal(stdin.Fd()) {
		return stdin, false, nil
	}
	f, err := os.OpenFile("CONIN$", os.O_RDWR, 0)
	if err != nil {
		return nil, false, fmt.Errorf("open console input: %w", err)
	}
	return f, true, nil
}
