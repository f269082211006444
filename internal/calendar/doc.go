// Package calendar provides the civil-date primitives the sprint engine is
// built on: a timezone-free Date value, a single injectable source of
// "today", the working-day predicate, and memoized working-day counting.
//
// ARCHITECTURE:
//
// Local calendar time, everywhere:
// A Date is a plain (year, month, day) triple with no time-of-day and no
// timezone. Whenever a Date has to touch the time package (weekday lookup,
// "today"), it is anchored to the host's local zone. Anchoring to UTC
// instead would shift dates by a day for observers east or west of
// Greenwich, which is exactly the class of bug this package exists to
// prevent.
//
// Single source of "now":
// Every component that needs today's date takes a Clock. Nothing in this
// repository calls time.Now directly outside of SystemClock, so a whole
// query tree always agrees on which day it is.
//
// Working days:
// A working day is any day that is not a Saturday or Sunday. Holidays are
// deliberately NOT part of this predicate: holiday dates are carried by the
// plan for display tagging only and never reduce working-day counts (and
// therefore never reduce capacity). See internal/engine for the consumers.
package calendar
