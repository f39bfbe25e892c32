// Package minitimer provides a small observable countdown/count-up timer.
//
// The central type is Timer, which advances an elapsed value by a signed
// increment on a fixed schedule, clamps it to an optional target, and
// notifies subscribers of lifecycle transitions (start, resume, update,
// pause, reset, finish). Scheduling is abstracted behind the Scheduler
// interface so tests can drive ticks deterministically.
package minitimer
