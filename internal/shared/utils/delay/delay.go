package delay

import (
	"context"
	"time"
)

// Wait blocks for d, or until ctx is cancelled. The mock providers use it as
// their stand-in for network latency; a zero or negative d returns
// immediately so tests run without sleeping.
func Wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
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
