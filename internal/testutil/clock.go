// Package testutil provides helpers shared by tests across packages.
package testutil

import (
	"sync"

	"github.com/roach88/sprintdeck/internal/calendar"
)

// FixedClock is a settable calendar.Clock for tests.
//
// Unlike calendar.Fixed, a FixedClock can be advanced mid-test, which lets
// one scenario watch a sprint move through its phases without rebuilding
// the engine.
//
// Thread-safety: all methods are safe for concurrent use via internal
// mutex.
type FixedClock struct {
	mu    sync.Mutex
	today calendar.Date
}

// NewFixedClock creates a clock pinned to the given YYYY-MM-DD date.
func NewFixedClock(date string) *FixedClock {
	return &FixedClock{today: calendar.MustParse(date)}
}

// Today implements calendar.Clock.
func (c *FixedClock) Today() calendar.Date {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.today
}

// Set moves the clock to the given YYYY-MM-DD date.
func (c *FixedClock) Set(date string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.today = calendar.MustParse(date)
}

// Advance moves the clock forward by n calendar days.
func (c *FixedClock) Advance(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.today = c.today.AddDays(n)
}
