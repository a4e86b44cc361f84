//go:build !windows

package session

import (
	"os"
	"syscall"
)

var terminationSignals = []os.Signal{
	syscall.SIGINT,
	syscall.SIGTERM,
	syscall.SIGHUP,
	syscall.SIGQUIT,
}
