package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/jsandler/portdash/renderer"
)

// weightsCmd holds the flags for the 'weights' subcommand.
type weightsCmd struct{}

func (*weightsCmd) Name() string     { return "weights" }
func (*weightsCmd) Synopsis() string { return "display per-symbol portfolio weights" }
func (*weightsCmd) Usage() string {
	return `pdash weights

  Displays each symbol's share of the portfolio, by market value and by
  cost basis, consolidated across accounts and brokerages.
`
}

func (*weightsCmd) SetFlags(f *flag.FlagSet) {}

func (c *weightsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	table, _, err := LoadTable()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading positions: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.WeightsMarkdown(table))

	return subcommands.ExitSuccess
}
