package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/jsandler/portdash/cmd"
)

func main() {
	// a .env next to the binary may carry PDASH_* settings
	godotenv.Load()

	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion registers shell completion and returns immediately when the
// binary is invoked normally.
func completion() {
	cmdline := &complete.Command{
		Sub: map[string]*complete.Command{
			"positions": {},
			"summary":   {},
			"weights":   {},
			"sources":   {},
		},
		Flags: map[string]complete.Predictor{
			"config":   predict.Files("*.yaml"),
			"fidelity": predict.Files("*.csv"),
			"schwab":   predict.Files("*.csv"),
		},
	}
	cmdline.Complete("pdash")
}
