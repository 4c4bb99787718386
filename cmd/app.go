// Package cmd implements the CLI application to browse brokerage exports.
package cmd

import (
	"flag"

	"github.com/google/subcommands"

	"github.com/jsandler/portdash"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&positionsCmd{}, "reports")
	c.Register(&summaryCmd{}, "reports")
	c.Register(&weightsCmd{}, "reports")
	c.Register(&sourcesCmd{}, "reports")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	configFile   = flag.String("config", "", "Path to the pdash configuration file (YAML)")
	fidelityFile = flag.String("fidelity", "", "Path to the Fidelity positions export (overrides the configuration)")
	schwabFile   = flag.String("schwab", "", "Path to the Charles Schwab positions export (overrides the configuration)")
	verbose      = flag.Bool("v", false, "Verbose logging")
)

// LoadTable resolves the configuration and runs the full pipeline on it.
func LoadTable() (*portdash.Table, portdash.Metrics, error) {
	cfg, err := ResolveConfig()
	if err != nil {
		return nil, portdash.Metrics{}, err
	}
	table, err := portdash.Load(cfg)
	if err != nil {
		return nil, portdash.Metrics{}, err
	}
	return table, portdash.Compute(table), nil
}
