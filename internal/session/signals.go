package session

import (
	"context"
	"os/signal"
)

// NotifyContext returns a context cancelled when the process receives a
// termination signal, so a running session unwinds through its deferred Close
// instead of dying with the terminal still in raw mode.
func NotifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, terminationSignals...)
}
