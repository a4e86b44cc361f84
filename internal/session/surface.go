package session

import (
	"bufio"
	"io"
	"os"
)

// Surface is a buffered frame writer over a terminal stream. Each Write is
// treated as one frame and flushed as a unit.
//
// It also satisfies the term.File and termenv.File interfaces so the renderer
// can query the size and color profile of the underlying terminal.
type Surface struct {
	f *os.File
	w *bufio.Writer
}

// NewSurface wraps f. The file is not closed by the Surface.
func NewSurface(f *os.File) *Surface {
	return &Surface{f: f, w: bufio.NewWriter(f)}
}

func (s *Surface) Write(p []byte) (int, error) {
	n, err := s.w.Write(p)
	if err != nil {
		return n, err
	}
	return n, s.w.Flush()
}

// Read always reports EOF; the surface is write-only.
func (s *Surface) Read([]byte) (int, error) { return 0, io.EOF }

// Fd returns the descriptor of the underlying terminal stream.
func (s *Surface) Fd() uintptr { return s.f.Fd() }

// Close flushes buffered output without closing the underlying stream.
func (s *Surface) Close() error { return s.w.Flush() }
