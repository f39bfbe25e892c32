package minitimer

import (
	"sync"
	"time"
)

// Scheduler abstracts the host's repeating-timer primitive so that timers can
// be tested deterministically. Production code uses [TickerScheduler]; tests
// may substitute a manual implementation (see the schedtest package) to
// control the passage of time.
type Scheduler interface {
	// Schedule invokes fn repeatedly, once per period, until the returned
	// registration is cancelled.
	Schedule(period time.Duration, fn func()) Registration
}

// Registration is a handle on an active periodic callback.
type Registration interface {
	// Cancel stops further invocations of the callback. Cancel is idempotent;
	// cancelling twice is a safe no-op. Cancellation is not guaranteed to be
	// synchronous: an invocation already in flight may still be delivered, so
	// consumers must tolerate one stale callback.
	Cancel()
}

// TickerScheduler is a zero-value [Scheduler] backed by [time.Ticker].
// It is safe for concurrent use because it holds no mutable state.
type TickerScheduler struct{}

// Schedule runs fn once per period on a dedicated goroutine until cancelled.
func (TickerScheduler) Schedule(period time.Duration, fn func()) Registration {
	r := &tickerRegistration{stop: make(chan struct{})}

	go func() {
		ticker := time.NewTicker(period)
		defer ticker.Stop()

		for {
			select {
			case <-r.stop:
				return
			case <-ticker.C:
				fn()
			}
		}
	}()

	return r
}

// tickerRegistration cancels a TickerScheduler callback loop.
type tickerRegistration struct {
	stop chan struct{}
	once sync.Once
}

func (r *tickerRegistration) Cancel() {
	r.once.Do(func() { close(r.stop) })
}
