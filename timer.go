package minitimer

import (
	"sync"
	"time"
)

// ---------------------------------------------------------------------------
// Timer — the engine
// ---------------------------------------------------------------------------

// Timer advances an elapsed value by a signed increment once per tick. The
// increment's sign selects count-up or count-down; its magnitude is both the
// per-tick step and the tick period. An optional target auto-stops the timer
// with a finish event, clamping elapsed exactly to the target so overshoot is
// never observable.
//
// All operations are synchronous. Internal state is guarded by a mutex
// because the default scheduler delivers ticks from its own goroutine, but
// events are dispatched with the lock released. Event handlers must not call
// state-changing operations on the timer that invoked them; doing so is
// undefined behavior.
type Timer struct {
	sched    Scheduler
	reg      Registration
	bus      *bus
	registry *Registry
	name     string

	mu        sync.Mutex
	elapsed   time.Duration
	from      time.Duration
	inc       time.Duration
	to        time.Duration
	hasTarget bool
	running   bool
}

// Option configures a Timer.
type Option func(*Timer)

// WithTarget sets the value at which the timer auto-stops. A target of zero
// is a valid target (the common "count down to zero" configuration) and is
// range-validated like any other.
func WithTarget(to time.Duration) Option {
	return func(t *Timer) {
		t.to = to
		t.hasTarget = true
	}
}

// WithScheduler replaces the default [TickerScheduler].
func WithScheduler(s Scheduler) Option {
	return func(t *Timer) {
		t.sched = s
	}
}

// WithName assigns a name under which the timer registers with a [Registry]
// for status snapshots. Unnamed timers are never registered.
func WithName(name string) Option {
	return func(t *Timer) {
		t.name = name
	}
}

// WithRegistry sets an explicit registry for a named timer to register with.
// If not provided, named timers register with [DefaultRegistry].
func WithRegistry(reg *Registry) Option {
	return func(t *Timer) {
		t.registry = reg
	}
}

// New creates a stopped timer with elapsed = from. The increment must be
// non-zero; its absolute value becomes the tick period. The range of a
// configured target is validated lazily, on Start/Resume, not here.
func New(from, inc time.Duration, opts ...Option) (*Timer, error) {
	if inc == 0 {
		return nil, ErrZeroIncrement
	}

	t := &Timer{
		sched:   TickerScheduler{},
		bus:     newBus(),
		elapsed: from,
		from:    from,
		inc:     inc,
	}
	for _, o := range opts {
		o(t)
	}

	if t.name != "" {
		reg := t.registry
		if reg == nil {
			reg = DefaultRegistry()
		}
		reg.Register(t)
	}

	return t, nil
}

// Name returns the timer's registry name, or "" for anonymous timers.
func (t *Timer) Name() string { return t.name }

// Elapsed returns the current accumulated value.
func (t *Timer) Elapsed() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.elapsed
}

// Running reports whether the periodic scheduler is active for this timer.
func (t *Timer) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}

// On registers a handler for an event. Handlers for the same event fire in
// registration order.
func (t *Timer) On(event Event, handler Handler) Subscription {
	return t.bus.on(event, handler)
}

// Off removes a previously registered handler. The handler receives no
// further invocations; other handlers for the same event are unaffected.
func (t *Timer) Off(sub Subscription) {
	t.bus.off(sub)
}

// ---------------------------------------------------------------------------
// Transitions
// ---------------------------------------------------------------------------

// Start validates the configured range, transitions to running, emits a
// start event carrying the current elapsed value, and schedules ticks at the
// increment's magnitude. Starting an already-running timer is a no-op.
func (t *Timer) Start() error { return t.begin(EventStart) }

// Resume is identical to Start but emits a resume event.
func (t *Timer) Resume() error { return t.begin(EventResume) }

func (t *Timer) begin(event Event) error {
	t.mu.Lock()
	if t.running {
		t.mu.Unlock()
		return nil
	}
	if err := t.checkRangeLocked(); err != nil {
		t.mu.Unlock()
		return err
	}

	t.running = true
	t.reg = t.sched.Schedule(t.period(), t.tick)
	elapsed := t.elapsed
	t.mu.Unlock()

	t.bus.emit(event, elapsed)
	return nil
}

// Pause transitions to stopped and emits a pause event, preserving elapsed
// so a later Resume continues without drift. No-op when already stopped.
func (t *Timer) Pause() {
	t.halt(EventPause)
}

// Stop transitions to stopped, cancelling the pending tick schedule, and
// emits a finish event, or override[0] if given. No-op when already stopped.
func (t *Timer) Stop(override ...Event) {
	event := EventFinish
	if len(override) > 0 {
		event = override[0]
	}
	t.halt(event)
}

func (t *Timer) halt(event Event) {
	t.mu.Lock()
	if !t.running {
		t.mu.Unlock()
		return
	}

	t.cancelLocked()
	t.running = false
	elapsed := t.elapsed
	t.mu.Unlock()

	t.bus.emit(event, elapsed)
}

// Reset forces elapsed to zero and the timer to stopped, and always emits a
// reset event, even when the timer was already stopped.
func (t *Timer) Reset() {
	t.mu.Lock()
	t.cancelLocked()
	t.running = false
	t.elapsed = 0
	t.mu.Unlock()

	t.bus.emit(EventReset, 0)
}

// Toggle stops a running timer and starts a stopped one. The returned error
// is non-nil only when the toggle resolves to a start and range validation
// fails.
func (t *Timer) Toggle() error {
	if t.Running() {
		t.Stop()
		return nil
	}
	return t.Start()
}

// Update advances the timer by one tick without waiting for the scheduler.
// No-op when stopped, like any other tick.
func (t *Timer) Update() {
	t.tick()
}

// ---------------------------------------------------------------------------
// Tick
// ---------------------------------------------------------------------------

// tick is the periodic callback. It tolerates stale invocations delivered
// after cancellation: the running gate makes them no-ops.
func (t *Timer) tick() {
	t.mu.Lock()
	if !t.running {
		t.mu.Unlock()
		return
	}

	next := t.elapsed + t.inc
	if next < 0 {
		next = 0
	}

	if t.hasTarget && next*t.dir() >= t.to*t.dir() {
		// Crossed or reached the target: clamp exactly, never expose the raw
		// overshoot in state or payload.
		t.elapsed = t.to
		t.running = false
		t.cancelLocked()
		elapsed := t.elapsed
		t.mu.Unlock()

		t.bus.emit(EventFinish, elapsed)
		return
	}

	t.elapsed = next
	t.mu.Unlock()

	t.bus.emit(EventUpdate, next)
}

// checkRangeLocked rejects configurations whose start already lies beyond
// the target in the direction of travel. Checked on every start-class
// transition, before any mutation or emission.
func (t *Timer) checkRangeLocked() error {
	if !t.hasTarget {
		return nil
	}
	if t.from*t.dir() > t.to*t.dir() {
		return &RangeError{From: t.from, To: t.to, Inc: t.inc}
	}
	return nil
}

// cancelLocked cancels the scheduler registration and clears the handle so a
// second cancellation cannot be attempted.
func (t *Timer) cancelLocked() {
	if t.reg != nil {
		t.reg.Cancel()
		t.reg = nil
	}
}

// period is the tick period: the increment's magnitude.
func (t *Timer) period() time.Duration {
	if t.inc < 0 {
		return -t.inc
	}
	return t.inc
}

// dir is +1 for count-up, -1 for count-down.
func (t *Timer) dir() time.Duration {
	if t.inc < 0 {
		return -1
	}
	return 1
}
