package engine

import (
	"github.com/roach88/sprintdeck/internal/calendar"
	"github.com/roach88/sprintdeck/internal/plan"
)

// DefaultMinFreeHours is the free-capacity threshold a day must clear to
// count as available when the caller does not specify one.
const DefaultMinFreeHours = 4.0

// Slot is a day with enough free capacity for new work.
type Slot struct {
	Date      calendar.Date `json:"date"`
	FreeHours float64       `json:"free_hours"`
}

// NextAvailableDay finds the first working day, scanning forward from
// today through the sprint end, on which the member has at least
// minFreeHours of unallocated capacity. Returns nil when the sprint is
// not configured or already complete, and nil when every remaining day is
// booked solid ("fully booked this sprint").
//
// Allocation is estimated by spreading each of the member's dated tasks
// evenly across that task's own working days. The scan is a plain greedy
// forward walk: the first qualifying day wins, with no preference for the
// emptiest day. O(sprint length x tasks), which is fine at sprint scale.
func (e *Engine) NextAvailableDay(m plan.Member, p *plan.Plan, minFreeHours float64) *Slot {
	ts := e.TimeState(p.Project)
	if !ts.Valid || ts.Complete() {
		return nil
	}

	hpd := hoursPerDay(m.Bandwidth())
	allocated := e.dailyAllocation(m, p)

	end := *p.Project.EndDate
	for d := e.clock.Today(); !d.After(end); d = d.Next() {
		if !calendar.IsWorkingDay(d) {
			continue
		}
		free := hpd - allocated[d]
		if free >= minFreeHours {
			return &Slot{Date: d, FreeHours: round1(free)}
		}
	}
	return nil
}

// dailyAllocation builds the transient day-to-hours map for one member.
//
// Only tasks with both dates and an estimate participate; unscheduled
// tasks have no calendar footprint. Each task's hours are spread evenly
// over its own working days, skipping weekends. A task that spans only
// weekend days has no working days to spread over and is skipped.
func (e *Engine) dailyAllocation(m plan.Member, p *plan.Plan) map[calendar.Date]float64 {
	alloc := make(map[calendar.Date]float64)
	for _, t := range p.TasksFor(m.ID) {
		if !t.Scheduled() || t.EstimatedHours == nil {
			continue
		}
		start, end := *t.StartDate, *t.EndDate
		workdays := e.days.CountWorkingDays(start, end)
		if workdays == 0 {
			continue
		}
		perDay := *t.EstimatedHours / float64(workdays)
		for d := start; !d.After(end); d = d.Next() {
			if calendar.IsWorkingDay(d) {
				alloc[d] += perDay
			}
		}
	}
	return alloc
}
