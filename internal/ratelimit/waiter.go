package ratelimit

import (
	"context"
	"time"
)

// Wait blocks for d or until ctx is done, whichever comes first.
// A non-positive d returns immediately unless ctx is already cancelled.
func Wait(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
