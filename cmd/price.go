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

type priceCmd struct{}

func (*priceCmd) Name() string     { return "price" }
func (*priceCmd) Synopsis() string { return "quick price check for one asset" }
func (*priceCmd) Usage() string {
	return `cft price <asset-id>

  Fetches and displays the live price, 24h change and market cap of one
  asset in the active currency.
`
}

func (*priceCmd) SetFlags(_ *flag.FlagSet) {}

func (c *priceCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: an asset id is required.")
		return subcommands.ExitUsageError
	}
	assetID := strings.ToLower(f.Arg(0))

	settings := appStore().LoadSettings()
	quote, err := appClient().Quote(ctx, assetID, settings.Currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not fetch a price for %q.\n", assetID)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.QuoteMarkdown(assetID, quote, settings.Currency))
	return subcommands.ExitSuccess
}
