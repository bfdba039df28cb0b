// Package signal ties SIGINT and SIGTERM to context cancellation so an
// in-flight completion call or backoff wait stops promptly.
package signal

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// WithInterrupt returns a copy of parent that is cancelled on the first
// SIGINT or SIGTERM. onInterrupt, if non-nil, runs before cancellation.
//
// Handlers are installed before WithInterrupt returns. Calling the returned
// cancel func uninstalls them and releases the context.
//
//	ctx, stop := signal.WithInterrupt(context.Background(), func() {
//	    logging.Warn("Interrupted")
//	})
//	defer stop()
func WithInterrupt(parent context.Context, onInterrupt func()) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		defer signal.Stop(sigCh)
		select {
		case <-sigCh:
			if onInterrupt != nil {
				onInterrupt()
			}
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}
