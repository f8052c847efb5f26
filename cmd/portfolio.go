package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cryptofolio"
	"github.com/etnz/cryptofolio/date"
	"github.com/etnz/cryptofolio/renderer"
	"github.com/google/subcommands"
)

// portfolioCmd holds the flags for the 'portfolio' subcommand.
type portfolioCmd struct {
	jsonOutput bool
}

func (*portfolioCmd) Name() string     { return "portfolio" }
func (*portfolioCmd) Synopsis() string { return "display holdings with live value and profit/loss" }
func (*portfolioCmd) Usage() string {
	return `cft portfolio [-json]

  Values every holding at the live price and displays per-asset and total
  profit/loss in the active currency. When a goal is set, goal progress is
  appended.
`
}

func (c *portfolioCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.jsonOutput, "json", false, "Dump the raw valuation report as JSON.")
}

func (c *portfolioCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := appStore()
	ledger := store.LoadLedger()
	settings := store.LoadSettings()

	report, err := cryptofolio.NewValuationReport(ctx, appClient(), cryptofolio.NewQuoteThrottle(), ledger, settings.Currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error valuing portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding report: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.ValuationMarkdown(report))

	if settings.Goals.IsSet() && len(report.Lines) > 0 {
		progress := cryptofolio.NewGoalReport(settings.Goals, report.TotalValue, date.Today())
		printMarkdown(renderer.GoalsMarkdown(progress))
	}

	return subcommands.ExitSuccess
}
