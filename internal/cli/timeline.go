package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/sprintdeck/internal/engine"
	"github.com/roach88/sprintdeck/internal/plan"
)

// timelineSnapshot is the JSON payload of the timeline command: the
// tagged day columns plus one row of bar geometry per task.
type timelineSnapshot struct {
	Project     string           `json:"project,omitempty"`
	Start       string           `json:"start"`
	End         string           `json:"end"`
	WorkingDays int              `json:"working_days"`
	Cells       []engine.DayCell `json:"cells"`
	Rows        []timelineRow    `json:"rows"`
}

type timelineRow struct {
	TaskID    string `json:"task_id"`
	Owner     string `json:"owner"`
	Status    string `json:"status,omitempty"`
	Completed bool   `json:"completed,omitempty"`

	// Bar is null when the task's interval falls entirely outside the
	// sprint window.
	Bar *engine.Bar `json:"bar"`
}

// NewTimelineCommand creates the timeline command.
func NewTimelineCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "timeline [plan.yaml]",
		Short: "Project tasks onto the sprint window",
		Long: `Project every task's date span onto the sprint's visible window: clipped
bar positions, truncation flags for tasks overhanging either edge, and a
single marker cell for unscheduled work. Weekend and holiday columns are
tagged for display; bars may legitimately overlay them.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTimeline(rootOpts, args, cmd)
		},
	}
	return cmd
}

func runTimeline(opts *RootOptions, args []string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
	log := newLogger(opts.Verbose)

	p, err := loadPlan(opts, args, log)
	if err != nil {
		return err
	}

	eng := opts.NewEngine()
	snapshot, ok := buildTimeline(eng, p)
	if !ok {
		return formatter.Error("NOT_CONFIGURED", "the plan has no sprint dates to project onto", nil)
	}
	return formatter.Success(snapshot, renderTimelineText(snapshot))
}

// buildTimeline assembles the snapshot; ok is false when the project has
// no window.
func buildTimeline(eng *engine.Engine, p *plan.Plan) (timelineSnapshot, bool) {
	w, ok := eng.Window(p.Project)
	if !ok {
		return timelineSnapshot{}, false
	}

	ts := eng.TimeState(p.Project)
	snapshot := timelineSnapshot{
		Project:     p.Project.Name,
		Start:       w.Start.String(),
		End:         w.End.String(),
		WorkingDays: ts.TotalWorkingDays,
		Cells:       eng.Cells(w, p.HolidaySet()),
	}

	for _, t := range p.Tasks {
		row := timelineRow{TaskID: t.ID, Owner: t.Owner, Status: t.Status, Completed: t.Completed}
		if bar, ok := w.Bar(t); ok {
			b := bar
			row.Bar = &b
		}
		snapshot.Rows = append(snapshot.Rows, row)
	}
	return snapshot, true
}

// Text rendering. Each day column is 3 characters wide ("dd "), task
// labels occupy a fixed left gutter, and bar cells use:
//
//	==   inside the bar        <=  truncated at the left edge
//	*    unscheduled marker    =>  truncated at the right edge
//
// The tag line under the header marks today (^^), weekends (~~), and
// holidays (!!).
const timelineGutter = 14

func renderTimelineText(s timelineSnapshot) string {
	var b strings.Builder

	title := s.Project
	if title == "" {
		title = "sprint"
	}
	fmt.Fprintf(&b, "%s: %s .. %s (%d working days)\n", title, s.Start, s.End, s.WorkingDays)

	// Day-of-month header and tag line.
	var header, tags strings.Builder
	for _, c := range s.Cells {
		fmt.Fprintf(&header, "%02d ", c.Date.Day)
		switch {
		case c.Today:
			tags.WriteString("^^ ")
		case c.Holiday:
			tags.WriteString("!! ")
		case c.Weekend:
			tags.WriteString("~~ ")
		default:
			tags.WriteString(".. ")
		}
	}
	gutter := strings.Repeat(" ", timelineGutter)
	fmt.Fprintf(&b, "%s%s\n", gutter, strings.TrimRight(header.String(), " "))
	fmt.Fprintf(&b, "%s%s\n", gutter, strings.TrimRight(tags.String(), " "))

	for _, row := range s.Rows {
		b.WriteString(renderTimelineRow(row, len(s.Cells)))
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderTimelineRow(row timelineRow, columns int) string {
	label := row.TaskID
	if len(label) > timelineGutter-2 {
		label = label[:timelineGutter-2]
	}
	line := fmt.Sprintf("%-*s", timelineGutter, label)

	if row.Bar == nil {
		return strings.TrimRight(line, " ") + "  (outside sprint window)"
	}

	bar := row.Bar
	cells := make([]string, columns)
	for i := range cells {
		cells[i] = "   "
	}
	if bar.Unscheduled {
		cells[0] = "*  "
		status := row.Status
		if status == "" {
			status = "unscheduled"
		}
		return strings.TrimRight(line+strings.Join(cells, ""), " ") + "  (" + status + ")"
	}

	for i := bar.StartIndex; i <= bar.EndIndex; i++ {
		cells[i] = "== "
	}
	if bar.OverflowLeft {
		cells[bar.StartIndex] = "<= "
	}
	if bar.OverflowRight {
		cells[bar.EndIndex] = "=> "
	}
	return strings.TrimRight(line+strings.Join(cells, ""), " ")
}
