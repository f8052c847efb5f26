// Package cmd implements the CLI application to track a crypto portfolio.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/cryptofolio"
	"github.com/etnz/cryptofolio/coingecko"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&portfolioCmd{}, "portfolio")
	c.Register(&addCmd{}, "portfolio")
	c.Register(&removeCmd{}, "portfolio")

	c.Register(&searchCmd{}, "market")
	c.Register(&trendingCmd{}, "market")
	c.Register(&priceCmd{}, "market")

	c.Register(&currencyCmd{}, "settings")
	c.Register(&goalCmd{}, "settings")
	c.Register(&goalsCmd{}, "settings")

	c.Register(&assistCmd{}, "")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataDir = flag.String("data-dir", ".", "Directory holding the portfolio.json and settings.json documents")

// appStore returns the document store for the selected data directory.
func appStore() cryptofolio.Store { return cryptofolio.DefaultStore(*dataDir) }

// appClient returns the CoinGecko client. The optional demo API key comes
// from the COINGECKO_API_KEY environment variable (or a .env file loaded by
// main).
func appClient() *coingecko.Client {
	return coingecko.NewClient(os.Getenv("COINGECKO_API_KEY"))
}

// printMarkdown renders markdown to the terminal. When rendering fails the
// raw markdown is still perfectly readable, so print that instead.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}
