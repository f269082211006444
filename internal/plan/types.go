package plan

import (
	"golang.org/x/text/unicode/norm"

	"github.com/roach88/sprintdeck/internal/calendar"
)

// Owner sentinels. A task owner is either a member ID or one of these.
const (
	// OwnerBoth marks a task shared by the whole team; it counts toward
	// every member's allocation in full.
	OwnerBoth = "both"

	// OwnerUnassigned marks a task with no owner yet.
	OwnerUnassigned = "unassigned"
)

// DefaultBandwidthHours is a member's weekly bandwidth when the plan omits
// the field. An explicit 0 is a valid, distinct value (someone on leave),
// so the default applies only to absence.
const DefaultBandwidthHours = 40.0

// Project is the sprint window. Dates are pointers because a plan may
// legitimately not be configured yet; the engine reports that state rather
// than rejecting it.
type Project struct {
	Name      string         `yaml:"name,omitempty" json:"name,omitempty"`
	StartDate *calendar.Date `yaml:"start_date,omitempty" json:"start_date,omitempty"`
	EndDate   *calendar.Date `yaml:"end_date,omitempty" json:"end_date,omitempty"`
}

// Configured reports whether both sprint bounds are present.
func (p Project) Configured() bool {
	return p.StartDate != nil && p.EndDate != nil
}

// Member is one person on the roster.
type Member struct {
	ID   string `yaml:"id" json:"id"`
	Name string `yaml:"name" json:"name"`

	// BandwidthHours is the nominal weekly capacity. nil means "not set"
	// and defaults to DefaultBandwidthHours; 0 means zero capacity.
	BandwidthHours *float64 `yaml:"bandwidth_hours,omitempty" json:"bandwidth_hours,omitempty"`
}

// Bandwidth returns the weekly bandwidth with the absent-field default
// applied.
func (m Member) Bandwidth() float64 {
	if m.BandwidthHours == nil {
		return DefaultBandwidthHours
	}
	return *m.BandwidthHours
}

// Task is a unit of work. Dates are optional: a task may exist without a
// schedule, and the engine treats that distinctly from a zero-length
// interval.
type Task struct {
	ID             string         `yaml:"id,omitempty" json:"id,omitempty"`
	Owner          string         `yaml:"owner" json:"owner"`
	Status         string         `yaml:"status,omitempty" json:"status,omitempty"`
	StartDate      *calendar.Date `yaml:"start_date,omitempty" json:"start_date,omitempty"`
	EndDate        *calendar.Date `yaml:"end_date,omitempty" json:"end_date,omitempty"`
	EstimatedHours *float64       `yaml:"estimated_hours,omitempty" json:"estimated_hours,omitempty"`
	Completed      bool           `yaml:"completed,omitempty" json:"completed,omitempty"`
}

// Scheduled reports whether the task has both a start and an end date.
func (t Task) Scheduled() bool {
	return t.StartDate != nil && t.EndDate != nil
}

// OwnedBy reports whether the task counts toward the given member's work.
// Shared ("both") tasks count for everyone.
func (t Task) OwnedBy(memberID string) bool {
	return t.Owner == memberID || t.Owner == OwnerBoth
}

// Plan bundles everything the engine reads for one sprint.
type Plan struct {
	Project  Project         `yaml:"project" json:"project"`
	Members  []Member        `yaml:"members,omitempty" json:"members,omitempty"`
	Tasks    []Task          `yaml:"tasks,omitempty" json:"tasks,omitempty"`
	Holidays []calendar.Date `yaml:"holidays,omitempty" json:"holidays,omitempty"`
}

// Member returns the roster entry with the given ID, if any.
func (p *Plan) Member(id string) (Member, bool) {
	for _, m := range p.Members {
		if m.ID == id {
			return m, true
		}
	}
	return Member{}, false
}

// TasksFor returns the tasks that count toward the given member, shared
// tasks included.
func (p *Plan) TasksFor(memberID string) []Task {
	var out []Task
	for _, t := range p.Tasks {
		if t.OwnedBy(memberID) {
			out = append(out, t)
		}
	}
	return out
}

// HolidaySet returns the holiday dates as a lookup set.
func (p *Plan) HolidaySet() map[calendar.Date]bool {
	set := make(map[calendar.Date]bool, len(p.Holidays))
	for _, d := range p.Holidays {
		set[d] = true
	}
	return set
}

// Normalize NFC-normalizes every identifier and display name in place.
//
// Plans originate in spreadsheet exports, where the same name can arrive
// precomposed from one editor and with combining accents from another.
// Without normalization those two spellings split one person into two
// roster keys and orphan their tasks.
func (p *Plan) Normalize() {
	p.Project.Name = norm.NFC.String(p.Project.Name)
	for i := range p.Members {
		p.Members[i].ID = norm.NFC.String(p.Members[i].ID)
		p.Members[i].Name = norm.NFC.String(p.Members[i].Name)
	}
	for i := range p.Tasks {
		p.Tasks[i].ID = norm.NFC.String(p.Tasks[i].ID)
		p.Tasks[i].Owner = norm.NFC.String(p.Tasks[i].Owner)
	}
}
