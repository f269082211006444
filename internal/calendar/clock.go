package calendar

import "time"

// Clock is the single source of "today" for the whole engine.
//
// Every computation that compares dates against now must go through one
// injected Clock rather than reading the system time itself. Two call
// sites constructing "today" independently is how a server in UTC and a
// browser in UTC+5:30 end up disagreeing about which day it is.
type Clock interface {
	// Today returns the current civil date in the observer's local timezone.
	Today() Date
}

// SystemClock reads the host clock in the host's local timezone.
type SystemClock struct{}

// Today implements Clock.
func (SystemClock) Today() Date {
	return DateOf(time.Now())
}

// fixedClock always reports the same date. Used to pin "today" for
// reproducible output (e.g. the CLI's --today flag).
type fixedClock struct {
	today Date
}

// Fixed returns a Clock pinned to the given date.
func Fixed(d Date) Clock {
	return fixedClock{today: d}
}

// Today implements Clock.
func (c fixedClock) Today() Date {
	return c.today
}
