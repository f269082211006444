package engine

import (
	"github.com/roach88/sprintdeck/internal/calendar"
)

// Engine answers sprint calendar and capacity queries.
//
// An Engine is safe for concurrent use: its only mutable state is the
// working-day memo cache, which synchronizes internally.
type Engine struct {
	clock calendar.Clock
	days  *calendar.Counter
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock replaces the system clock. Tests and the CLI's --today flag
// use this to pin which day "today" is.
func WithClock(c calendar.Clock) Option {
	return func(e *Engine) {
		e.clock = c
	}
}

// WithCounter replaces the working-day counter, letting callers share one
// memo cache across engines or reset cache state between test cases.
func WithCounter(c *calendar.Counter) Option {
	return func(e *Engine) {
		e.days = c
	}
}

// New creates an Engine with the system clock and a fresh memo cache.
func New(opts ...Option) *Engine {
	e := &Engine{
		clock: calendar.SystemClock{},
		days:  calendar.NewCounter(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Today returns the engine's current civil date.
func (e *Engine) Today() calendar.Date {
	return e.clock.Today()
}
