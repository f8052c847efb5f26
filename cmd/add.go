package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/cryptofolio"
	"github.com/etnz/cryptofolio/date"
	"github.com/google/subcommands"
)

// addCmd holds the flags for the 'add' subcommand.
type addCmd struct {
	price string
	date  string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a purchase of an asset" }
func (*addCmd) Usage() string {
	return `cft add [-p <price>] [-d <date>] <asset-id> <amount>

  Records a purchase. The asset id is the CoinGecko id ("bitcoin",
  "ethereum", ...); use 'cft search' to find it. Without -p the current
  price is fetched and used as the purchase price; with -p any historical
  price is accepted as given.

  Adding to an existing holding accumulates the amount and recomputes the
  average cost as the volume-weighted average of all purchases.

Usage Examples:
$ cft add bitcoin 0.05
$ cft add -p 1800.50 -d 2024-11-02 ethereum 2
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.price, "p", "", "Purchase price per unit. Defaults to the live price.")
	f.StringVar(&c.date, "d", date.Today().String(), "Purchase date for a new holding.")
}

func (c *addCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: want exactly an asset id and an amount.")
		return subcommands.ExitUsageError
	}
	assetID := strings.ToLower(f.Arg(0))

	amount, err := cryptofolio.ParseQuantity(f.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount %q: %v\n", f.Arg(1), err)
		return subcommands.ExitUsageError
	}

	on, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	store := appStore()
	settings := store.LoadSettings()

	var price cryptofolio.Quantity
	if c.price != "" {
		price, err = cryptofolio.ParseQuantity(c.price)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing price %q: %v\n", c.price, err)
			return subcommands.ExitUsageError
		}
	} else {
		quote, err := appClient().Quote(ctx, assetID, settings.Currency)
		if err != nil {
			if errors.Is(err, cryptofolio.ErrQuoteUnavailable) {
				fmt.Fprintf(os.Stderr, "Error: could not fetch a price for %q; nothing recorded. Pass -p to set the purchase price yourself.\n", assetID)
			} else {
				fmt.Fprintln(os.Stderr, err)
			}
			return subcommands.ExitFailure
		}
		price = quote.Price
	}

	ledger := store.LoadLedger()
	if err := ledger.Add(assetID, amount, price, on); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := store.SaveLedger(ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	holding, _ := ledger.Get(assetID)
	fmt.Printf("Added %s %s at %s (holding %s, avg cost %s)\n",
		amount, strings.ToUpper(assetID), price.In(settings.Currency),
		holding.Amount, holding.AvgCost.In(settings.Currency))
	return subcommands.ExitSuccess
}
