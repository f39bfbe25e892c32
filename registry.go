package minitimer

import (
	"sync"
	"sync/atomic"
	"time"
)

// ---------------------------------------------------------------------------
// TimerStatus — point-in-time view of a single timer
// ---------------------------------------------------------------------------

type (
	// TimerStatus is a point-in-time view of one registered timer.
	TimerStatus struct {
		Name    string        `json:"name"`
		Elapsed time.Duration `json:"elapsed"`
		Running bool          `json:"running"`
	}

	// StatusReporter is implemented by Timer. The interface keeps the
	// registry decoupled from the concrete timer type so test doubles can be
	// registered too.
	StatusReporter interface {
		// Name returns the timer's registry name.
		Name() string
		// Status returns the timer's current status.
		Status() TimerStatus
	}

	// Registry tracks named timers for status snapshots and holds timer
	// configurations loaded from a config file. It observes timers; it never
	// coordinates them.
	Registry struct {
		reporters atomic.Pointer[[]StatusReporter]
		configs   map[string]TimerConfig
		mu        sync.Mutex
	}
)

//nolint:gochecknoglobals // singleton via sync.OnceValue
var defaultRegistry = sync.OnceValue(NewRegistry)

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	r := &Registry{}

	var empty []StatusReporter

	r.reporters.Store(&empty)

	return r
}

// Register adds a reporter to the registry. This is typically called during
// startup by New for named timers. It is safe for concurrent use but
// intended for initialization only.
func (r *Registry) Register(sr StatusReporter) {
	r.mu.Lock()
	defer r.mu.Unlock()

	old := *r.reporters.Load()
	// Copy-on-write so concurrent Snapshot calls never observe a slice being
	// mutated under them.
	updated := make([]StatusReporter, len(old), len(old)+1)
	copy(updated, old)
	updated = append(updated, sr)
	r.reporters.Store(&updated)
}

// Snapshot returns the current status of every registered timer, in
// registration order.
func (r *Registry) Snapshot() []TimerStatus {
	reporters := *r.reporters.Load()

	statuses := make([]TimerStatus, 0, len(reporters))
	for _, sr := range reporters {
		statuses = append(statuses, sr.Status())
	}

	return statuses
}

// DefaultRegistry returns the package-level registry, creating it on first
// call. Named timers register here unless given an explicit registry.
func DefaultRegistry() *Registry {
	return defaultRegistry()
}

// Status implements [StatusReporter].
func (t *Timer) Status() TimerStatus {
	t.mu.Lock()
	defer t.mu.Unlock()

	return TimerStatus{
		Name:    t.name,
		Elapsed: t.elapsed,
		Running: t.running,
	}
}
