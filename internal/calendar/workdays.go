package calendar

import (
	"sync"
	"time"
)

// IsWorkingDay reports whether d is a working day: any weekday that is not
// Saturday or Sunday. Holidays are intentionally not consulted here; they
// are a display-only concept and never reduce working-day counts.
func IsWorkingDay(d Date) bool {
	wd := d.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// Range returns every calendar date in [start, end] inclusive, in order.
// Returns an empty slice when end is before start.
func Range(start, end Date) []Date {
	if end.Before(start) {
		return nil
	}
	var days []Date
	for d := start; !d.After(end); d = d.Next() {
		days = append(days, d)
	}
	return days
}

// Counter counts working days in date intervals, memoizing results.
//
// The cache is keyed by the interval's string form, is append-only for the
// lifetime of the Counter, and is never invalidated: a given key's answer
// can never change, so staleness is impossible. The mutex makes the cache
// safe to share across concurrent read queries.
//
// Counters are cheap; callers that need isolated cache state (tests, most
// of all) construct their own rather than sharing a package-level one.
type Counter struct {
	mu     sync.Mutex
	counts map[string]int
}

// NewCounter creates an empty working-day counter.
func NewCounter() *Counter {
	return &Counter{counts: make(map[string]int)}
}

// CountWorkingDays returns the inclusive count of non-weekend days in
// [start, end]. Returns 0 when end is before start, never a negative.
func (c *Counter) CountWorkingDays(start, end Date) int {
	if end.Before(start) {
		return 0
	}

	key := start.String() + "|" + end.String()

	c.mu.Lock()
	if n, ok := c.counts[key]; ok {
		c.mu.Unlock()
		return n
	}
	c.mu.Unlock()

	n := 0
	for d := start; !d.After(end); d = d.Next() {
		if IsWorkingDay(d) {
			n++
		}
	}

	c.mu.Lock()
	c.counts[key] = n
	c.mu.Unlock()
	return n
}

// Size returns the number of memoized intervals. Diagnostics and tests.
func (c *Counter) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.counts)
}
