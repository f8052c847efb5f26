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

type currencyCmd struct{}

func (*currencyCmd) Name() string     { return "currency" }
func (*currencyCmd) Synopsis() string { return "show or switch the active currency" }
func (*currencyCmd) Usage() string {
	return `cft currency [<code>]

  Without argument, shows the active currency and the supported codes.
  With a code (usd, inr, eur, gbp), switches to it. Prices, values and
  goals are all expressed in the active currency.
`
}

func (*currencyCmd) SetFlags(_ *flag.FlagSet) {}

func (c *currencyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := appStore()
	settings := store.LoadSettings()

	if f.NArg() == 0 {
		fmt.Printf("Active currency: %s (%s)\n", cryptofolio.CurrencyName(settings.Currency), cryptofolio.CurrencySymbol(settings.Currency))
		fmt.Printf("Supported: %s\n", strings.Join(cryptofolio.Currencies, ", "))
		return subcommands.ExitSuccess
	}

	code, err := cryptofolio.ParseCurrency(f.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	settings.Currency = code
	if err := store.SaveSettings(settings); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Currency changed to %s (%s)\n", cryptofolio.CurrencyName(code), cryptofolio.CurrencySymbol(code))
	return subcommands.ExitSuccess
}
