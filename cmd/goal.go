package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cryptofolio"
	"github.com/google/subcommands"
)

// goalCmd holds the flags for the 'goal' subcommand.
type goalCmd struct {
	target  string
	date    string
	initial string
}

func (*goalCmd) Name() string     { return "goal" }
func (*goalCmd) Synopsis() string { return "set the investment goal" }
func (*goalCmd) Usage() string {
	return `cft goal -target <value> [-date <YYYY-MM-DD>] [-initial <value>]

  Sets the investment goal: the portfolio value to reach, an optional
  target date, and the optional capital initially committed (used for
  ROI). The goal replaces any previous one; no history is kept.

Usage Examples:
$ cft goal -target 50000 -date 2027-01-01 -initial 12000
`
}

func (c *goalCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.target, "target", "", "Target portfolio value in the active currency.")
	f.StringVar(&c.date, "date", "", "Target date.")
	f.StringVar(&c.initial, "initial", "", "Initial investment in the active currency.")
}

func (c *goalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	// The goal is built whole before anything touches the settings: an
	// invalid field must not leave a half-updated goal behind.
	goal, err := cryptofolio.ParseGoal(c.target, c.date, c.initial)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	store := appStore()
	settings := store.LoadSettings()
	settings.Goals = goal
	if err := store.SaveSettings(settings); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if !goal.IsSet() {
		fmt.Println("Goal cleared.")
		return subcommands.ExitSuccess
	}
	fmt.Printf("Goal saved: %s", goal.TargetValue.In(settings.Currency))
	if !goal.TargetDate.IsZero() {
		fmt.Printf(" by %s", goal.TargetDate)
	}
	if goal.InitialInvestment.IsPositive() {
		fmt.Printf(" (initial investment %s)", goal.InitialInvestment.In(settings.Currency))
	}
	fmt.Println()
	return subcommands.ExitSuccess
}
