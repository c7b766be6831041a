package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/tubescribe-cli/tubescribe/fault"
)

func TestPolicy(t *testing.T) {
	Convey("Policy", t, func() {
		policy := Policy{
			Interval:  5 * time.Millisecond,
			Window:    40 * time.Millisecond,
			Retryable: fault.Retryable,
		}

		Convey("Should not retry a successful attempt", func() {
			calls := 0
			err := policy.Do(context.Background(), func(context.Context) error {
				calls++
				return nil
			})
			So(err, ShouldBeNil)
			So(calls, ShouldEqual, 1)
		})

		Convey("Should never retry a classified error", func() {
			calls := 0
			terminal := fault.New(fault.VideoNotAvailable, "gone")
			err := policy.Do(context.Background(), func(context.Context) error {
				calls++
				return terminal
			})
			So(err, ShouldEqual, terminal)
			So(calls, ShouldEqual, 1)
		})

		Convey("Should retry transient errors until the window expires", func() {
			calls := 0
			transient := errors.New("connection reset")
			start := time.Now()
			err := policy.Do(context.Background(), func(context.Context) error {
				calls++
				return transient
			})
			So(err, ShouldEqual, transient)
			So(calls, ShouldBeGreaterThan, 1)
			So(time.Since(start), ShouldBeLessThan, policy.Window+20*time.Millisecond)
		})

		Convey("Should recover when a later attempt succeeds", func() {
			calls := 0
			err := policy.Do(context.Background(), func(context.Context) error {
				calls++
				if calls < 3 {
					return errors.New("flaky")
				}
				return nil
			})
			So(err, ShouldBeNil)
			So(calls, ShouldEqual, 3)
		})

		Convey("Should abort the sleep on context cancellation", func() {
			ctx, cancel := context.WithCancel(context.Background())
			slow := Policy{
				Interval:  time.Minute,
				Window:    time.Hour,
				Retryable: fault.Retryable,
			}

			go func() {
				time.Sleep(10 * time.Millisecond)
				cancel()
			}()

			err := slow.Do(ctx, func(context.Context) error {
				return errors.New("transient")
			})
			So(errors.Is(err, context.Canceled), ShouldBeTrue)
		})
	})
}
