package engine

import (
	"github.com/roach88/sprintdeck/internal/calendar"
	"github.com/roach88/sprintdeck/internal/plan"
)

// Window is the sprint's visible timeline: the ordered day sequence task
// bars are projected onto. Built once per render and queried per task.
type Window struct {
	Start calendar.Date
	End   calendar.Date

	days  []calendar.Date
	index map[calendar.Date]int
}

// DayCell is one column of the timeline header. Weekend and holiday tags
// are independent of bar placement: a bar may overlay a weekend cell when
// the raw task interval spans one.
type DayCell struct {
	Date    calendar.Date `json:"date"`
	Index   int           `json:"index"`
	Weekend bool          `json:"weekend"`
	Holiday bool          `json:"holiday"`
	Today   bool          `json:"today"`
}

// Bar is the projected geometry of one task on the window.
type Bar struct {
	TaskID string `json:"task_id"`

	// Unscheduled marks a task with no usable interval: it occupies a
	// single marker cell in the first column, carrying only its status.
	// Distinct from a one-day bar that genuinely starts at the window
	// start.
	Unscheduled bool `json:"unscheduled,omitempty"`

	StartIndex int `json:"start_index"`
	EndIndex   int `json:"end_index"`
	Span       int `json:"span"`

	// Overflow flags mark truncation at each edge independently, so the
	// rendering layer can draw continuation hints.
	OverflowLeft  bool `json:"overflow_left,omitempty"`
	OverflowRight bool `json:"overflow_right,omitempty"`
}

// Window builds the visible timeline for a configured project. Returns
// false when the project has no sprint window to project onto.
func (e *Engine) Window(p plan.Project) (*Window, bool) {
	if !p.Configured() || p.EndDate.Before(*p.StartDate) {
		return nil, false
	}
	days := calendar.Range(*p.StartDate, *p.EndDate)
	index := make(map[calendar.Date]int, len(days))
	for i, d := range days {
		index[d] = i
	}
	return &Window{Start: *p.StartDate, End: *p.EndDate, days: days, index: index}, true
}

// Days returns the window's ordered day sequence.
func (w *Window) Days() []calendar.Date {
	return w.days
}

// Len returns the number of day columns.
func (w *Window) Len() int {
	return len(w.days)
}

// Cells tags every day column for rendering. Holidays come from the plan
// and are display-only; today comes from the engine clock.
func (e *Engine) Cells(w *Window, holidays map[calendar.Date]bool) []DayCell {
	today := e.clock.Today()
	cells := make([]DayCell, len(w.days))
	for i, d := range w.days {
		cells[i] = DayCell{
			Date:    d,
			Index:   i,
			Weekend: !calendar.IsWorkingDay(d),
			Holiday: holidays[d],
			Today:   d.Equal(today),
		}
	}
	return cells
}

// Bar clips the task's interval to the window and returns its geometry.
//
// A task with no usable interval (either date missing) gets the
// single-cell unscheduled marker. A dated task entirely outside the
// window gets no bar at all: ok is false.
func (w *Window) Bar(t plan.Task) (Bar, bool) {
	if !t.Scheduled() {
		return Bar{TaskID: t.ID, Unscheduled: true, StartIndex: 0, EndIndex: 0, Span: 1}, true
	}

	start, end := *t.StartDate, *t.EndDate
	visibleStart := start
	if visibleStart.Before(w.Start) {
		visibleStart = w.Start
	}
	visibleEnd := end
	if visibleEnd.After(w.End) {
		visibleEnd = w.End
	}
	if visibleEnd.Before(visibleStart) {
		return Bar{}, false
	}

	si := w.index[visibleStart]
	ei := w.index[visibleEnd]
	return Bar{
		TaskID:        t.ID,
		StartIndex:    si,
		EndIndex:      ei,
		Span:          ei - si + 1,
		OverflowLeft:  start.Before(w.Start),
		OverflowRight: end.After(w.End),
	}, true
}
