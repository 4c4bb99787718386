package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jsandler/portdash"
)

// Default locations mirror the usual export layout: one file per brokerage
// under a local data directory.
const (
	defaultFidelityFile = "portfolio_data/fidelity.csv"
	defaultSchwabFile   = "portfolio_data/charles_schwab.csv"
)

// ResolveConfig builds the pipeline configuration from, in increasing
// precedence: built-in defaults, an optional pdash.yaml (or the -config
// file), PDASH_* environment variables, and command-line flags.
func ResolveConfig() (portdash.Config, error) {
	v := viper.New()
	v.SetDefault("fidelity_file", defaultFidelityFile)
	v.SetDefault("schwab_file", defaultSchwabFile)
	v.SetDefault("cash_symbols", portdash.DefaultCashSymbols)
	v.SetEnvPrefix("PDASH")
	v.AutomaticEnv()

	if *configFile != "" {
		v.SetConfigFile(*configFile)
		if err := v.ReadInConfig(); err != nil {
			return portdash.Config{}, fmt.Errorf("cannot read config %q: %w", *configFile, err)
		}
	} else {
		v.SetConfigName("pdash")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return portdash.Config{}, fmt.Errorf("cannot read pdash.yaml: %w", err)
			}
			// no config file is fine, defaults apply
		}
	}

	cfg := portdash.Config{
		FidelityFile: v.GetString("fidelity_file"),
		SchwabFile:   v.GetString("schwab_file"),
		CashSymbols:  v.GetStringSlice("cash_symbols"),
		Log:          newLogger(),
	}
	if *fidelityFile != "" {
		cfg.FidelityFile = *fidelityFile
	}
	if *schwabFile != "" {
		cfg.SchwabFile = *schwabFile
	}
	return cfg, nil
}

// newLogger builds a console logger on stderr: warnings only by default,
// everything with -v.
func newLogger() *zap.Logger {
	c := zap.NewDevelopmentConfig()
	c.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if *verbose {
		c.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	log, err := c.Build()
	if err != nil {
		return zap.NewNop()
	}
	return log
}
