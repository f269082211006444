package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/sprintdeck/internal/engine"
	"github.com/roach88/sprintdeck/internal/plan"
)

// NewStatusCommand creates the status command.
func NewStatusCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status [plan.yaml]",
		Short: "Show where the sprint stands today",
		Long: `Show the sprint's time state: its phase (not started, active, complete)
and the total, elapsed, and remaining working-day counts.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus(rootOpts, args, cmd)
		},
	}
	return cmd
}

func runStatus(opts *RootOptions, args []string, cmd *cobra.Command) error {
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
	ts := eng.TimeState(p.Project)
	return formatter.Success(ts, renderStatusText(p.Project, ts))
}

func renderStatusText(project plan.Project, ts engine.TimeState) string {
	var b strings.Builder

	name := project.Name
	if name == "" {
		name = "sprint"
	}
	if !ts.Valid {
		fmt.Fprintf(&b, "%s: not configured (no sprint dates)", name)
		return b.String()
	}

	fmt.Fprintf(&b, "%s: %s .. %s\n", name, project.StartDate, project.EndDate)
	fmt.Fprintf(&b, "phase: %s\n", ts.Phase)
	fmt.Fprintf(&b, "working days: %d total, %d elapsed, %d remaining\n",
		ts.TotalWorkingDays, ts.ElapsedWorkingDays, ts.RemainingWorkingDays)
	fmt.Fprintf(&b, "day %d of %d (%d%%)", ts.CurrentDay, ts.TotalWorkingDays, ts.ProgressPercent)
	return b.String()
}
