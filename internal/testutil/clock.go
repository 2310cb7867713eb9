package testutil

import (
	"sync"
	"time"
)

// FixedClock is a settable clock for tests and scenario runs.
//
// It returns the same instant until told otherwise, so tenure values are
// reproducible across runs and golden snapshots stay byte-identical.
//
// Thread-safety: All methods are safe for concurrent use via internal mutex.
type FixedClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFixedClock creates a clock frozen at now.
func NewFixedClock(now time.Time) *FixedClock {
	return &FixedClock{now: now}
}

// NewMonthClock creates a clock frozen at noon UTC on the 15th of the given month.
func NewMonthClock(year int, month time.Month) *FixedClock {
	return NewFixedClock(time.Date(year, month, 15, 12, 0, 0, 0, time.UTC))
}

// Now returns the frozen instant.
//
// Implements roster.Clock.
func (c *FixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Set moves the clock to t.
func (c *FixedClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// AddMonths moves the clock n calendar months (negative moves back).
func (c *FixedClock) AddMonths(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.AddDate(0, n, 0)
}
