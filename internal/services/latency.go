package services

import (
	"context"
	"time"
)

// wait imitates the round trip to a remote backend. The delay always comes
// before any store access, so no lock is ever held across it.
func wait(ctx context.Context, d time.Duration) error {
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
