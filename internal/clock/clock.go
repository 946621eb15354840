// Package clock provides a time abstraction for deterministic testing.
//
// Lifecycle code records claim and completion timestamps. Reading
// time.Now() directly makes those code paths untestable, so callers
// receive time through the Clock interface and tests substitute a
// fixed implementation.
package clock

import "time"

// Clock abstracts time operations.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the actual system time.
type RealClock struct{}

// Now returns the current system time.
func (RealClock) Now() time.Time {
	return time.Now()
}
