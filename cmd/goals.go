package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cryptofolio"
	"github.com/etnz/cryptofolio/date"
	"github.com/etnz/cryptofolio/renderer"
	"github.com/google/subcommands"
)

// goalsCmd implements the goal progress view.
type goalsCmd struct{}

func (*goalsCmd) Name() string     { return "goals" }
func (*goalsCmd) Synopsis() string { return "check progress toward the investment goal" }
func (*goalsCmd) Usage() string {
	return `cft goals

  Values the portfolio at live prices and measures it against the goal:
  progress bar, remaining or exceeded amount, days until the target date,
  and ROI when an initial investment was recorded.
`
}

func (*goalsCmd) SetFlags(_ *flag.FlagSet) {}

func (c *goalsCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := appStore()
	settings := store.LoadSettings()

	if !settings.Goals.IsSet() {
		printMarkdown(renderer.GoalsMarkdown(&cryptofolio.GoalReport{}))
		return subcommands.ExitSuccess
	}

	// Goal progress needs the live total; the quotes are re-fetched here,
	// never shared with a previous view.
	ledger := store.LoadLedger()
	valuation, err := cryptofolio.NewValuationReport(ctx, appClient(), cryptofolio.NewQuoteThrottle(), ledger, settings.Currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error valuing portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	report := cryptofolio.NewGoalReport(settings.Goals, valuation.TotalValue, date.Today())
	printMarkdown(renderer.GoalsMarkdown(report))

	if valuation.Partial {
		fmt.Fprintf(os.Stderr, "warning, some assets could not be quoted; the current value is understated\n")
	}
	return subcommands.ExitSuccess
}
