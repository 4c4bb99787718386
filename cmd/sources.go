package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/jsandler/portdash/renderer"
)

// sourcesCmd holds the flags for the 'sources' subcommand.
type sourcesCmd struct{}

func (*sourcesCmd) Name() string     { return "sources" }
func (*sourcesCmd) Synopsis() string { return "display which export files fed the table and their freshness" }
func (*sourcesCmd) Usage() string {
	return `pdash sources

  Displays the export file behind each source, its last modification time,
  and how many positions it contributed.
`
}

func (*sourcesCmd) SetFlags(f *flag.FlagSet) {}

func (c *sourcesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	table, _, err := LoadTable()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading positions: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.SourcesMarkdown(table))

	return subcommands.ExitSuccess
}
