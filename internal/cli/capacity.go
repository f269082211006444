package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/roach88/sprintdeck/internal/engine"
)

// capacityReport is the JSON payload of the capacity command: the
// engine's team figures plus the two utilization percentages per member.
type capacityReport struct {
	Members []memberCapacity `json:"members"`
	Team    teamCapacity     `json:"team"`
}

type memberCapacity struct {
	engine.Capacity

	// UtilizationPercent may exceed 100: it is the over-capacity figure.
	UtilizationPercent int `json:"utilization_percent"`

	// BarPercent is clamped to [0,100]: it is the bar-fill figure.
	BarPercent float64 `json:"bar_percent"`
}

type teamCapacity struct {
	TotalHours         float64 `json:"total_hours"`
	RemainingHours     float64 `json:"remaining_hours"`
	AllocatedHours     float64 `json:"allocated_hours"`
	UtilizationPercent int     `json:"utilization_percent"`
}

// NewCapacityCommand creates the capacity command.
func NewCapacityCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "capacity [plan.yaml]",
		Short: "Show per-member and team hour budgets",
		Long: `Show each member's sprint capacity derived from weekly bandwidth (total,
remaining, and allocated hours) and the team aggregate. Team totals are
sums of the rounded member figures so they agree with the rows above them.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCapacity(rootOpts, args, cmd)
		},
	}
	return cmd
}

func runCapacity(opts *RootOptions, args []string, cmd *cobra.Command) error {
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
	team := eng.TeamCapacity(p)

	report := capacityReport{
		Team: teamCapacity{
			TotalHours:         team.TotalHours,
			RemainingHours:     team.RemainingHours,
			AllocatedHours:     team.AllocatedHours,
			UtilizationPercent: engine.Utilization(team.AllocatedHours, team.TotalHours),
		},
	}
	for _, c := range team.Members {
		report.Members = append(report.Members, memberCapacity{
			Capacity:           c,
			UtilizationPercent: engine.Utilization(c.AllocatedHours, c.TotalHours),
			BarPercent:         engine.BarUtilization(c.AllocatedHours, c.TotalHours),
		})
	}

	return formatter.Success(report, renderCapacityText(report))
}

func renderCapacityText(r capacityReport) string {
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "MEMBER\tHOURS/DAY\tTOTAL\tREMAINING\tALLOCATED\tUTIL")
	for _, m := range r.Members {
		name := m.MemberName
		if name == "" {
			name = m.MemberID
		}
		fmt.Fprintf(w, "%s\t%.1f\t%.1f\t%.1f\t%.1f\t%d%%\n",
			name, m.HoursPerDay, m.TotalHours, m.RemainingHours, m.AllocatedHours, m.UtilizationPercent)
	}
	fmt.Fprintf(w, "team\t\t%.1f\t%.1f\t%.1f\t%d%%\n",
		r.Team.TotalHours, r.Team.RemainingHours, r.Team.AllocatedHours, r.Team.UtilizationPercent)
	w.Flush()

	return strings.TrimRight(b.String(), "\n")
}
