// Package clock provides wall time for persisted records
package clock

import "time"

// Clock provides time functionality
type Clock interface {
	Now() time.Time
}

// Real implements Clock using the system time
type Real struct{}

// Now returns the current time
func (c *Real) Now() time.Time {
	return time.Now()
}

// New returns a real clock
func New() Clock {
	return &Real{}
}

// Fixed always returns the same instant. Tests use it so stored loadout
// timestamps are reproducible.
type Fixed struct {
	At time.Time
}

// Now returns the fixed instant
func (c Fixed) Now() time.Time {
	return c.At
}
