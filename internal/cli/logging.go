package cli

import (
	"fmt"
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// setupLogging routes the standard logger. The terminal belongs to the UI, so
// logs only go to a file and are discarded otherwise.
func setupLogging(path string) (io.Closer, error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return nopCloser{}, nil
	}

	f, err := tea.LogToFile(path, "breeze")
	if err != nil {
		return nil, fmt.Errorf("log file: %w", err)
	}
	return f, nil
}
