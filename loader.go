package portdash

import (
	"errors"

	"go.uber.org/zap"
)

// Config names the pipeline's inputs explicitly. There is no implicit data
// directory: the caller decides where each export lives. An empty path means
// that source is not configured at all.
type Config struct {
	FidelityFile string
	SchwabFile   string

	// CashSymbols overrides DefaultCashSymbols when non-nil.
	CashSymbols []string

	// Log receives warnings about skipped rows and omitted sources.
	// Defaults to a nop logger.
	Log *zap.Logger
}

func (c Config) options() Options {
	return Options{CashSymbols: c.CashSymbols, Log: c.Log}
}

// Load runs the full pipeline: parse every configured export, merge the
// ones that succeeded into the canonical table. A source that is missing or
// fails to parse is omitted with a warning; only when no source contributes
// a single position does Load fail, with a *NoDataError joining the
// per-source causes. The returned table always has at least one row.
func Load(cfg Config) (*Table, error) {
	log := cfg.options().logger()

	inputs := []struct {
		src  Source
		path string
	}{
		{Fidelity, cfg.FidelityFile},
		{Schwab, cfg.SchwabFile},
	}

	var parsed []SourceTable
	var causes []error
	for _, in := range inputs {
		if in.path == "" {
			continue
		}
		positions, info, err := ParseFile(in.src, in.path, cfg.options())
		if err != nil {
			log.Warn("omitting source", zap.String("source", string(in.src)),
				zap.String("path", in.path), zap.Error(err))
			causes = append(causes, err)
			continue
		}
		log.Info("parsed source", zap.String("source", string(in.src)),
			zap.String("file", info.File), zap.Int("rows", info.Rows))
		parsed = append(parsed, SourceTable{Info: info, Positions: positions})
	}

	t := Merge(parsed...)
	if t.Len() == 0 {
		return nil, &NoDataError{Err: errors.Join(causes...)}
	}
	return t, nil
}
