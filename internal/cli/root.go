// Package cli implements the sprintdeck command-line interface: thin
// cobra commands that load a plan, query the engine, and format the
// derived values as text or JSON. All sprint math lives in
// internal/engine; nothing here computes anything.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/sprintdeck/internal/calendar"
	"github.com/roach88/sprintdeck/internal/engine"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
	Today   string // optional YYYY-MM-DD clock override
	DB      string // optional plan snapshot database path
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the sprintdeck CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "sprintdeck",
		Short: "Sprint calendar and capacity queries",
		Long: `sprintdeck answers sprint calendar and capacity questions from a plan
file: where the sprint stands today, how many hours each member has left,
when someone next has free time, and how tasks project onto the timeline.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			if opts.Today != "" {
				if _, err := calendar.Parse(opts.Today); err != nil {
					return fmt.Errorf("invalid --today: %w", err)
				}
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Today, "today", "", "pin today's date (YYYY-MM-DD) for reproducible output")
	cmd.PersistentFlags().StringVar(&opts.DB, "db", "", "read the plan from a snapshot database instead of a file")

	cmd.AddCommand(NewStatusCommand(opts))
	cmd.AddCommand(NewCapacityCommand(opts))
	cmd.AddCommand(NewNextCommand(opts))
	cmd.AddCommand(NewTimelineCommand(opts))
	cmd.AddCommand(NewPlanCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// Clock returns the clock all commands should query: pinned when --today
// is set, the system clock otherwise. Validity of the flag is checked in
// PersistentPreRunE.
func (o *RootOptions) Clock() calendar.Clock {
	if o.Today != "" {
		return calendar.Fixed(calendar.MustParse(o.Today))
	}
	return calendar.SystemClock{}
}

// NewEngine builds the engine every command queries.
func (o *RootOptions) NewEngine() *engine.Engine {
	return engine.New(engine.WithClock(o.Clock()))
}
