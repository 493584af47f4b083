package utils

import (
	"context"
	"time"
)

// WaitFor sleeps for the given duration unless the context ends first, in
// which case the context error is returned.
func WaitFor(ctx context.Context, d time.Duration) error {
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
