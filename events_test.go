package minitimer

import (
	"testing"
	"time"
)

// ---------------------------------------------------------------------------
// Handlers for the same event fire in registration order
// ---------------------------------------------------------------------------

func TestHandlersFireInRegistrationOrder(t *testing.T) {
	timer, _, _ := newTestTimer(t, 0, 100*time.Millisecond)

	var order []int
	timer.On(EventStart, func(time.Duration) { order = append(order, 1) })
	timer.On(EventStart, func(time.Duration) { order = append(order, 2) })
	timer.On(EventStart, func(time.Duration) { order = append(order, 3) })

	if err := timer.Start(); err != nil {
		t.Fatalf("Start() error = %v, want nil", err)
	}

	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Fatalf("dispatch order = %v, want [1 2 3]", order)
	}
}

// ---------------------------------------------------------------------------
// Off removes exactly one handler; the rest keep firing
// ---------------------------------------------------------------------------

func TestOffRemovesOnlyTargetHandler(t *testing.T) {
	timer, sched, _ := newTestTimer(t, 0, 100*time.Millisecond)

	var first, second int
	sub := timer.On(EventUpdate, func(time.Duration) { first++ })
	timer.On(EventUpdate, func(time.Duration) { second++ })

	if err := timer.Start(); err != nil {
		t.Fatalf("Start() error = %v, want nil", err)
	}
	sched.tick()

	timer.Off(sub)
	sched.tick()
	sched.tick()

	if first != 1 {
		t.Fatalf("removed handler invocations = %d, want 1 (none after Off)", first)
	}
	if second != 3 {
		t.Fatalf("remaining handler invocations = %d, want 3", second)
	}
}

// ---------------------------------------------------------------------------
// Off is idempotent and scoped to its event
// ---------------------------------------------------------------------------

func TestOffIdempotentAndScoped(t *testing.T) {
	timer, _, _ := newTestTimer(t, 0, 100*time.Millisecond)

	var startCount int
	sub := timer.On(EventStart, func(time.Duration) { startCount++ })
	timer.Off(sub)
	timer.Off(sub) // second removal of the same subscription is a no-op

	var finishCount int
	timer.On(EventFinish, func(time.Duration) { finishCount++ })

	if err := timer.Start(); err != nil {
		t.Fatalf("Start() error = %v, want nil", err)
	}
	timer.Stop()

	if startCount != 0 {
		t.Fatalf("removed start handler invocations = %d, want 0", startCount)
	}
	if finishCount != 1 {
		t.Fatalf("finish handler invocations = %d, want 1", finishCount)
	}
}

// ---------------------------------------------------------------------------
// Handlers only see their own event name
// ---------------------------------------------------------------------------

func TestHandlersAreScopedToEventName(t *testing.T) {
	timer, sched, _ := newTestTimer(t, 300*time.Millisecond, -100*time.Millisecond, WithTarget(0))

	counts := map[Event]int{}
	for _, e := range []Event{EventStart, EventUpdate, EventFinish, EventPause} {
		e := e
		timer.On(e, func(time.Duration) { counts[e]++ })
	}

	if err := timer.Start(); err != nil {
		t.Fatalf("Start() error = %v, want nil", err)
	}
	for i := 0; i < 3; i++ {
		sched.tick()
	}

	if counts[EventStart] != 1 {
		t.Fatalf("start count = %d, want 1", counts[EventStart])
	}
	if counts[EventUpdate] != 2 {
		t.Fatalf("update count = %d, want 2", counts[EventUpdate])
	}
	if counts[EventFinish] != 1 {
		t.Fatalf("finish count = %d, want 1", counts[EventFinish])
	}
	if counts[EventPause] != 0 {
		t.Fatalf("pause count = %d, want 0", counts[EventPause])
	}
}
