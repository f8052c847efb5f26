package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/cryptofolio/cmd"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Optional .env with COINGECKO_API_KEY / GEMINI_API_KEY; absence is fine.
	_ = godotenv.Load()

	// Shell completion: takes over and exits when invoked by the shell.
	completion().Complete("cft")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"data-dir": predict.Dirs("*"),
		},
		Sub: map[string]*complete.Command{
			"portfolio": {Flags: map[string]complete.Predictor{"json": predict.Nothing}},
			"add":       {},
			"remove":    {},
			"search":    {},
			"trending":  {},
			"price":     {},
			"currency":  {},
			"goal":      {},
			"goals":     {},
			"assist":    {},
		},
	}
}
