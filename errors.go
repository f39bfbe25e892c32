package minitimer

import (
	"fmt"
	"time"
)

// timerError is the concrete type backing all sentinel errors.
type timerError string

// Sentinel errors.
var (
	// ErrZeroIncrement is returned by New when the per-tick increment is
	// zero, which would produce a degenerate tick period.
	ErrZeroIncrement error = timerError("zero increment")
	// ErrUnknownTimer is returned by GetTimer when the requested name has no
	// stored configuration.
	ErrUnknownTimer error = timerError("unknown timer")
)

func (e timerError) Error() string { return string(e) }

// RangeError reports a geometrically inconsistent configuration: the start
// value already lies beyond the target in the direction of travel. It is
// returned by Start, Resume, and Toggle before any state mutation or event
// emission, and carries the offending configuration for diagnostics.
type RangeError struct {
	From time.Duration
	To   time.Duration
	Inc  time.Duration
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("invalid timer range [%v, %v] on inc %v", e.From, e.To, e.Inc)
}
