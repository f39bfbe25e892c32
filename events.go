package minitimer

import (
	"sync"
	"time"
)

// Event names a lifecycle transition. The payload delivered with every event
// is the timer's elapsed value at the moment of emission.
type Event string

// Timer lifecycle events.
const (
	EventStart  Event = "start"
	EventResume Event = "resume"
	EventUpdate Event = "update"
	EventPause  Event = "pause"
	EventReset  Event = "reset"
	EventFinish Event = "finish"
)

// Handler receives the elapsed value captured when the event was emitted.
type Handler func(elapsed time.Duration)

// Subscription identifies a registered handler so it can be removed with
// Timer.Off. Go functions are not comparable, so removal is by handle rather
// than by the handler value itself.
type Subscription struct {
	event Event
	id    uint64
}

type listener struct {
	fn Handler
	id uint64
}

// bus is a per-timer synchronous listener registry. Handlers for the same
// event fire in registration order. Dispatch never happens while the timer's
// state lock is held, but handlers still must not call back into the owning
// timer's state-changing operations.
type bus struct {
	listeners map[Event][]listener
	nextID    uint64
	mu        sync.Mutex
}

func newBus() *bus {
	return &bus{listeners: make(map[Event][]listener)}
}

func (b *bus) on(event Event, fn Handler) Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	b.listeners[event] = append(b.listeners[event], listener{fn: fn, id: b.nextID})

	return Subscription{event: event, id: b.nextID}
}

func (b *bus) off(sub Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ls := b.listeners[sub.event]
	for i, l := range ls {
		if l.id == sub.id {
			// Full-slice expression so later appends cannot clobber a slice
			// snapshot taken by a concurrent emit.
			b.listeners[sub.event] = append(ls[:i:i], ls[i+1:]...)
			return
		}
	}
}

func (b *bus) emit(event Event, elapsed time.Duration) {
	b.mu.Lock()
	ls := append([]listener(nil), b.listeners[event]...)
	b.mu.Unlock()

	for _, l := range ls {
		l.fn(elapsed)
	}
}
