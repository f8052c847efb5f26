package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cryptofolio/renderer"
	"github.com/google/subcommands"
)

type trendingCmd struct{}

func (*trendingCmd) Name() string     { return "trending" }
func (*trendingCmd) Synopsis() string { return "show the coins trending on CoinGecko" }
func (*trendingCmd) Usage() string {
	return `cft trending

  Shows the most searched coins right now, with their market cap rank.
`
}

func (*trendingCmd) SetFlags(_ *flag.FlagSet) {}

func (c *trendingCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	coins, err := appClient().Trending(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching trending data: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.TrendingMarkdown(coins))
	return subcommands.ExitSuccess
}
