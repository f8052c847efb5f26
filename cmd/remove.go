package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/cryptofolio"
	"github.com/google/subcommands"
)

// removeCmd holds the flags for the 'remove' subcommand.
type removeCmd struct{}

func (*removeCmd) Name() string     { return "remove" }
func (*removeCmd) Synopsis() string { return "remove an asset, entirely or partially" }
func (*removeCmd) Usage() string {
	return `cft remove <asset-id> [<amount>|all]

  Removes an asset from the portfolio. With no amount (or "all") the whole
  holding is deleted; with an amount the holding is reduced. An amount
  larger than the position behaves like "all".

Usage Examples:
$ cft remove bitcoin
$ cft remove ethereum 0.5
`
}

func (*removeCmd) SetFlags(_ *flag.FlagSet) {}

func (c *removeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 1 || f.NArg() > 2 {
		fmt.Fprintln(os.Stderr, "Error: want an asset id and an optional amount.")
		return subcommands.ExitUsageError
	}
	assetID := strings.ToLower(f.Arg(0))

	// zero means "remove all"
	var amount cryptofolio.Quantity
	if f.NArg() == 2 && f.Arg(1) != "all" {
		var err error
		amount, err = cryptofolio.ParseQuantity(f.Arg(1))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing amount %q: %v\n", f.Arg(1), err)
			return subcommands.ExitUsageError
		}
	}

	store := appStore()
	ledger := store.LoadLedger()

	gone, err := ledger.Remove(assetID, amount)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := store.SaveLedger(ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if gone {
		fmt.Printf("Removed %s\n", strings.ToUpper(assetID))
	} else {
		holding, _ := ledger.Get(assetID)
		fmt.Printf("Removed %s %s (still holding %s)\n", amount, strings.ToUpper(assetID), holding.Amount)
	}
	return subcommands.ExitSuccess
}
