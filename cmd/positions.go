package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/jsandler/portdash/renderer"
)

// positionsCmd holds the flags for the 'positions' subcommand.
type positionsCmd struct{}

func (*positionsCmd) Name() string     { return "positions" }
func (*positionsCmd) Synopsis() string { return "display the full position table with P&L and weights" }
func (*positionsCmd) Usage() string {
	return `pdash positions

  Displays every position from the configured brokerage exports: quantity,
  price, value, cost basis, profit and loss, and portfolio weight.
`
}

func (*positionsCmd) SetFlags(f *flag.FlagSet) {}

func (c *positionsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	table, m, err := LoadTable()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading positions: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.PositionsMarkdown(table, m))

	return subcommands.ExitSuccess
}
