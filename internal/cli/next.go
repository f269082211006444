package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/sprintdeck/internal/engine"
)

// nextResult is the JSON payload of the next command. Slot is null when
// the member is fully booked (or the sprint is over), which is a valid
// answer, not an error.
type nextResult struct {
	MemberID     string       `json:"member_id"`
	MinFreeHours float64      `json:"min_free_hours"`
	Slot         *engine.Slot `json:"slot"`
}

// NewNextCommand creates the next command.
func NewNextCommand(rootOpts *RootOptions) *cobra.Command {
	minFree := engine.DefaultMinFreeHours

	cmd := &cobra.Command{
		Use:   "next <member-id> [plan.yaml]",
		Short: "Find a member's next day with free capacity",
		Long: `Find the first working day, from today through the end of the sprint, on
which the member has at least --min-free unallocated hours. Allocation is
estimated by spreading each dated task's hours evenly over its own
working days.`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNext(rootOpts, args[0], args[1:], minFree, cmd)
		},
	}

	cmd.Flags().Float64Var(&minFree, "min-free", engine.DefaultMinFreeHours,
		"minimum free hours a day must have to count")
	return cmd
}

func runNext(opts *RootOptions, memberID string, args []string, minFree float64, cmd *cobra.Command) error {
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

	member, ok := p.Member(memberID)
	if !ok {
		return NewExitError(ExitFailure, fmt.Sprintf("member %q is not on the roster", memberID))
	}

	eng := opts.NewEngine()
	slot := eng.NextAvailableDay(member, p, minFree)

	result := nextResult{MemberID: member.ID, MinFreeHours: minFree, Slot: slot}
	return formatter.Success(result, renderNextText(member.ID, minFree, slot))
}

func renderNextText(memberID string, minFree float64, slot *engine.Slot) string {
	if slot == nil {
		return fmt.Sprintf("%s has no day with %.1fh free before the sprint ends", memberID, minFree)
	}
	return fmt.Sprintf("%s: next available day is %s (%.1fh free)", memberID, slot.Date, slot.FreeHours)
}
