package plan

import "fmt"

// ValidationCode categorizes plan validation failures.
type ValidationCode string

const (
	// CodeProjectDates indicates the sprint window is inverted.
	CodeProjectDates ValidationCode = "PROJECT_DATES"

	// CodeDuplicateMember indicates two roster entries share an ID.
	CodeDuplicateMember ValidationCode = "DUPLICATE_MEMBER"

	// CodeNegativeBandwidth indicates a member's weekly bandwidth is negative.
	CodeNegativeBandwidth ValidationCode = "NEGATIVE_BANDWIDTH"

	// CodeTaskDates indicates a task's interval is inverted.
	CodeTaskDates ValidationCode = "TASK_DATES"

	// CodeNegativeHours indicates a task's estimate is negative.
	CodeNegativeHours ValidationCode = "NEGATIVE_HOURS"

	// CodeUnknownOwner indicates a task owner that is neither a roster ID
	// nor an owner sentinel.
	CodeUnknownOwner ValidationCode = "UNKNOWN_OWNER"
)

// ValidationError is one violated plan invariant.
type ValidationError struct {
	Code    ValidationCode `json:"code"`
	Field   string         `json:"field"`
	Message string         `json:"message"`
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Code, e.Field, e.Message)
}

// Validate checks every plan invariant and returns all violations, not
// just the first. A nil result means the plan is well-formed.
//
// Note what is NOT validated: missing project dates, missing task dates,
// and missing estimates are all legal states the engine degrades through,
// not errors.
func (p *Plan) Validate() []ValidationError {
	var errs []ValidationError

	if p.Project.Configured() && p.Project.EndDate.Before(*p.Project.StartDate) {
		errs = append(errs, ValidationError{
			Code:    CodeProjectDates,
			Field:   "project",
			Message: fmt.Sprintf("end date %s is before start date %s", p.Project.EndDate, p.Project.StartDate),
		})
	}

	seen := make(map[string]bool, len(p.Members))
	for i, m := range p.Members {
		field := fmt.Sprintf("members[%d]", i)
		if seen[m.ID] {
			errs = append(errs, ValidationError{
				Code:    CodeDuplicateMember,
				Field:   field,
				Message: fmt.Sprintf("duplicate member id %q", m.ID),
			})
		}
		seen[m.ID] = true

		if m.BandwidthHours != nil && *m.BandwidthHours < 0 {
			errs = append(errs, ValidationError{
				Code:    CodeNegativeBandwidth,
				Field:   field,
				Message: fmt.Sprintf("bandwidth %v must be >= 0", *m.BandwidthHours),
			})
		}
	}

	for i, t := range p.Tasks {
		field := fmt.Sprintf("tasks[%d]", i)
		if t.Scheduled() && t.EndDate.Before(*t.StartDate) {
			errs = append(errs, ValidationError{
				Code:    CodeTaskDates,
				Field:   field,
				Message: fmt.Sprintf("end date %s is before start date %s", t.EndDate, t.StartDate),
			})
		}
		if t.EstimatedHours != nil && *t.EstimatedHours < 0 {
			errs = append(errs, ValidationError{
				Code:    CodeNegativeHours,
				Field:   field,
				Message: fmt.Sprintf("estimated hours %v must be >= 0", *t.EstimatedHours),
			})
		}
		if t.Owner != OwnerBoth && t.Owner != OwnerUnassigned && !seen[t.Owner] {
			errs = append(errs, ValidationError{
				Code:    CodeUnknownOwner,
				Field:   field,
				Message: fmt.Sprintf("owner %q is not on the roster", t.Owner),
			})
		}
	}

	return errs
}
