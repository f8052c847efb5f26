package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/cryptofolio/renderer"
	"github.com/google/subcommands"
)

// searchCmd implements the "search" command.
type searchCmd struct{}

func (*searchCmd) Name() string     { return "search" }
func (*searchCmd) Synopsis() string { return "search assets by name" }
func (*searchCmd) Usage() string {
	return `cft search <search term>

  Searches CoinGecko for coins matching the term and prints ready-to-use
  'cft add' commands for the results.
`
}

func (*searchCmd) SetFlags(_ *flag.FlagSet) {}

func (c *searchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: a search term is required.")
		return subcommands.ExitUsageError
	}
	query := strings.Join(f.Args(), " ")

	results, err := appClient().Search(ctx, query)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error searching assets: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.SearchMarkdown(query, results))
	return subcommands.ExitSuccess
}
