//go:build windows

package session

import "os"

// Console close and logoff events surface as os.Interrupt.
var terminationSignals = []os.Signal{os.Interrupt}
