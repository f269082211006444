package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/roach88/sprintdeck/internal/plan"
	"github.com/roach88/sprintdeck/internal/store"
)

// newLogger builds the diagnostic logger. Silent unless --verbose;
// console-formatted because the audience is a person at a terminal.
func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.Disabled
	if verbose {
		level = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

// loadPlan resolves the plan a command operates on: the snapshot database
// when --db is set, the YAML file argument otherwise. The plan is
// validated; an invalid plan is a command error, with every violation in
// the message.
func loadPlan(opts *RootOptions, args []string, log zerolog.Logger) (*plan.Plan, error) {
	var (
		p   *plan.Plan
		err error
	)
	switch {
	case opts.DB != "":
		p, err = loadPlanFromStore(opts.DB)
	case len(args) > 0:
		p, err = plan.LoadFile(args[0])
	default:
		return nil, NewExitError(ExitCommandError, "no plan given: pass a plan file or --db")
	}
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "loading plan", err)
	}

	if violations := p.Validate(); len(violations) > 0 {
		msgs := make([]string, len(violations))
		for i, v := range violations {
			msgs[i] = v.Error()
		}
		return nil, NewExitError(ExitCommandError, "invalid plan:\n  "+strings.Join(msgs, "\n  "))
	}

	log.Debug().
		Str("project", p.Project.Name).
		Int("members", len(p.Members)).
		Int("tasks", len(p.Tasks)).
		Int("holidays", len(p.Holidays)).
		Msg("plan loaded")
	return p, nil
}

func loadPlanFromStore(path string) (*plan.Plan, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("snapshot database %s: %w", path, err)
	}
	s, err := store.Open(path)
	if err != nil {
		return nil, err
	}
	defer s.Close()
	return s.LoadPlan(context.Background())
}
