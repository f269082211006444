package engine

import (
	"math"

	"github.com/roach88/sprintdeck/internal/plan"
)

// workdaysPerWeek is the fixed work-week assumption behind the
// weekly-to-daily bandwidth conversion.
const workdaysPerWeek = 5.0

// round1 rounds to one decimal place. All hour figures leaving the
// capacity model pass through this exactly once per level (member, then
// team); see TeamCapacity.
func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

// Capacity is one member's hour budget for the sprint.
type Capacity struct {
	MemberID       string  `json:"member_id"`
	MemberName     string  `json:"member_name,omitempty"`
	WorkingDays    int     `json:"working_days"`
	HoursPerDay    float64 `json:"hours_per_day"`
	TotalHours     float64 `json:"total_hours"`
	RemainingHours float64 `json:"remaining_hours"`
	AllocatedHours float64 `json:"allocated_hours"`
}

// TeamCapacity aggregates member capacities.
type TeamCapacity struct {
	Members        []Capacity `json:"members"`
	TotalHours     float64    `json:"total_hours"`
	RemainingHours float64    `json:"remaining_hours"`
	AllocatedHours float64    `json:"allocated_hours"`
}

// hoursPerDay converts weekly bandwidth to a per-working-day rate.
func hoursPerDay(weeklyHours float64) float64 {
	return weeklyHours / workdaysPerWeek
}

// MemberCapacity computes one member's sprint hour budget from their
// weekly bandwidth and the sprint window.
//
// If the sprint is not configured every figure is 0. If the sprint is
// complete, remaining hours are 0 while the total stands. Allocated hours
// are the plain sum of the member's task estimates; shared tasks count in
// full for each member, since a shared task demands both people's time.
func (e *Engine) MemberCapacity(m plan.Member, p *plan.Plan) Capacity {
	out := Capacity{MemberID: m.ID, MemberName: m.Name}
	ts := e.TimeState(p.Project)
	if !ts.Valid {
		return out
	}

	hpd := hoursPerDay(m.Bandwidth())
	out.WorkingDays = ts.TotalWorkingDays
	out.HoursPerDay = hpd
	out.TotalHours = round1(hpd * float64(ts.TotalWorkingDays))
	if !ts.Complete() {
		out.RemainingHours = round1(hpd * float64(ts.RemainingWorkingDays))
	}

	for _, t := range p.TasksFor(m.ID) {
		if t.EstimatedHours != nil {
			out.AllocatedHours += *t.EstimatedHours
		}
	}
	out.AllocatedHours = round1(out.AllocatedHours)
	return out
}

// TeamCapacity computes every member's capacity and the team totals.
//
// Totals are the sum of the already-rounded member figures, rounded to one
// decimal again. The two-stage rounding is load-bearing: summing unrounded
// per-member values can produce a different final digit, and the figures
// here must agree with the per-member rows shown beside them.
func (e *Engine) TeamCapacity(p *plan.Plan) TeamCapacity {
	var team TeamCapacity
	for _, m := range p.Members {
		c := e.MemberCapacity(m, p)
		team.Members = append(team.Members, c)
		team.TotalHours += c.TotalHours
		team.RemainingHours += c.RemainingHours
		team.AllocatedHours += c.AllocatedHours
	}
	team.TotalHours = round1(team.TotalHours)
	team.RemainingHours = round1(team.RemainingHours)
	team.AllocatedHours = round1(team.AllocatedHours)
	return team
}

// Utilization is allocated over total as a whole percent, capped at 999.
// This is the over-capacity figure: values above 100 are meaningful and
// shown, the cap only keeps a degenerate denominator from producing a
// four-digit display.
func Utilization(allocatedHours, totalHours float64) int {
	if totalHours <= 0 {
		return 0
	}
	pct := math.Round(allocatedHours / totalHours * 100)
	return int(math.Min(pct, 999))
}

// BarUtilization is allocated over total clamped into [0, 100]. This is
// the fill-a-bar figure: a bar cannot be more than full, so over-capacity
// saturates at 100. Deliberately distinct from Utilization; the two call
// sites answer different questions.
func BarUtilization(allocatedHours, totalHours float64) float64 {
	if totalHours <= 0 {
		return 0
	}
	pct := allocatedHours / totalHours * 100
	return math.Max(0, math.Min(pct, 100))
}
