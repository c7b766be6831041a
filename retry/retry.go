// Package retry implements a bounded, fixed-interval retry policy for transient failures.
package retry

import (
	"context"
	"time"
)

// Policy bounds the recovery loop for a retryable operation.
//
// The window is measured from the first attempt on the monotonic clock. An
// attempt whose failure the predicate classifies as non-retryable propagates
// immediately; otherwise attempts repeat at the fixed interval until the
// window expires, and the last failure is returned to the caller.
type Policy struct {
	Interval  time.Duration
	Window    time.Duration
	Retryable func(error) bool
}

// Do runs attempt under the policy. The sleep between attempts is
// cancellation-aware: a done context aborts the loop with ctx.Err().
func (p Policy) Do(ctx context.Context, attempt func(context.Context) error) error {
	start := time.Now()

	for {
		err := attempt(ctx)
		if err == nil {
			return nil
		}

		if p.Retryable != nil && !p.Retryable(err) {
			return err
		}

		if time.Since(start)+p.Interval >= p.Window {
			return err
		}

		timer := time.NewTimer(p.Interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}
