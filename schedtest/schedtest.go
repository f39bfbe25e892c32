// Package schedtest provides a manual Scheduler for deterministic tests.
//
// Instead of real time, ticks are driven explicitly with [Scheduler.Tick] or
// [Scheduler.Advance], so timer-driven code can be tested without sleeping.
package schedtest

import (
	"sync"
	"time"

	minitimer "github.com/Torathion/mini-timer"
)

// Scheduler implements [minitimer.Scheduler] with manually driven ticks.
// The zero value is not usable; create one with New.
type Scheduler struct {
	mu   sync.Mutex
	regs []*registration
}

type registration struct {
	owner     *Scheduler
	fn        func()
	period    time.Duration
	cancelled bool
}

// Cancel implements [minitimer.Registration]. Idempotent.
func (r *registration) Cancel() {
	r.owner.mu.Lock()
	defer r.owner.mu.Unlock()
	r.cancelled = true
}

// New creates an empty manual scheduler.
func New() *Scheduler {
	return &Scheduler{}
}

// Schedule records the callback; nothing fires until Tick or Advance.
func (s *Scheduler) Schedule(period time.Duration, fn func()) minitimer.Registration {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := &registration{owner: s, fn: fn, period: period}
	s.regs = append(s.regs, r)

	return r
}

// Tick fires every active callback exactly once, in registration order.
// Callbacks cancelled mid-Tick (for example by a timer finishing) do not
// fire again.
func (s *Scheduler) Tick() {
	for _, r := range s.snapshot() {
		s.fire(r)
	}
}

// Advance simulates the passage of d: each active callback fires once per
// full period contained in d, stopping early if it cancels itself.
func (s *Scheduler) Advance(d time.Duration) {
	for _, r := range s.snapshot() {
		for fired := r.period; fired <= d; fired += r.period {
			if !s.fire(r) {
				break
			}
		}
	}
}

// Active returns the number of registrations that have not been cancelled.
func (s *Scheduler) Active() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, r := range s.regs {
		if !r.cancelled {
			n++
		}
	}

	return n
}

func (s *Scheduler) snapshot() []*registration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*registration(nil), s.regs...)
}

// fire invokes the callback unless cancelled, and reports whether it ran.
// The lock is not held during the callback: callbacks routinely call Cancel.
func (s *Scheduler) fire(r *registration) bool {
	s.mu.Lock()
	dead := r.cancelled
	s.mu.Unlock()

	if dead {
		return false
	}

	r.fn()
	return true
}
