package engine

import (
	"math"

	"github.com/roach88/sprintdeck/internal/plan"
)

// Phase is the sprint's position in time relative to today.
//
// The phase is not stored anywhere; it is recomputed from the clock and
// the project bounds on every query, so there are no transitions to get
// wrong and nothing to invalidate.
type Phase string

const (
	// PhaseNotConfigured: the project has no sprint window yet.
	PhaseNotConfigured Phase = "NOT_CONFIGURED"

	// PhaseNotStarted: today is before the sprint start.
	PhaseNotStarted Phase = "NOT_STARTED"

	// PhaseActive: today is inside the sprint window, inclusive.
	PhaseActive Phase = "ACTIVE"

	// PhaseComplete: today is after the sprint end.
	PhaseComplete Phase = "COMPLETE"
)

// TimeState is the derived time position of a sprint. Plain data,
// recomputed per query, never persisted.
type TimeState struct {
	Valid                bool  `json:"valid"`
	Phase                Phase `json:"phase"`
	TotalWorkingDays     int   `json:"total_working_days"`
	ElapsedWorkingDays   int   `json:"elapsed_working_days"`
	RemainingWorkingDays int   `json:"remaining_working_days"`

	// CurrentDay is the 1-based day number of the sprint: 0 before the
	// sprint, TotalWorkingDays once it is over.
	CurrentDay int `json:"current_day"`

	// ProgressPercent is elapsed over total, rounded to the nearest whole
	// percent; 0 when the sprint has no working days.
	ProgressPercent int `json:"progress_percent"`
}

// TimeState classifies the sprint against today and derives elapsed and
// remaining working-day counts.
//
// Boundary semantics: today itself counts as elapsed, not remaining.
// On the first sprint day, elapsed is already 1: today is treated as in
// progress rather than upcoming. CurrentDay follows the same rule.
func (e *Engine) TimeState(p plan.Project) TimeState {
	if !p.Configured() {
		return TimeState{Valid: false, Phase: PhaseNotConfigured}
	}

	start := *p.StartDate
	end := *p.EndDate
	today := e.clock.Today()
	total := e.days.CountWorkingDays(start, end)

	ts := TimeState{Valid: true, TotalWorkingDays: total}
	switch {
	case today.Before(start):
		ts.Phase = PhaseNotStarted
		ts.RemainingWorkingDays = total
	case today.After(end):
		ts.Phase = PhaseComplete
		ts.ElapsedWorkingDays = total
		ts.CurrentDay = total
	default:
		ts.Phase = PhaseActive
		ts.ElapsedWorkingDays = e.days.CountWorkingDays(start, today)
		if tomorrow := today.Next(); !tomorrow.After(end) {
			ts.RemainingWorkingDays = e.days.CountWorkingDays(tomorrow, end)
		}
		ts.CurrentDay = ts.ElapsedWorkingDays
	}

	if total > 0 {
		ts.ProgressPercent = int(math.Round(float64(ts.ElapsedWorkingDays) / float64(total) * 100))
	}
	return ts
}

// NotStarted reports whether the sprint has yet to begin.
func (ts TimeState) NotStarted() bool { return ts.Phase == PhaseNotStarted }

// Complete reports whether the sprint is over.
func (ts TimeState) Complete() bool { return ts.Phase == PhaseComplete }
