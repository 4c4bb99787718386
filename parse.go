package portdash

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// DefaultCashSymbols are the cash-equivalent markers recognized out of the
// box: the usual money-market core positions plus Schwab's explicit label.
var DefaultCashSymbols = []string{"SPAXX", "FDRXX", "FCASH", "Cash & Cash Investments"}

// Options tune a parse without changing its contract.
type Options struct {
	// CashSymbols are symbols classified as cash equivalents, in addition
	// to the rows the export itself marks as cash. Defaults to
	// DefaultCashSymbols when nil.
	CashSymbols []string
	// Log receives one warning per skipped row. Defaults to a nop logger.
	Log *zap.Logger
}

func (o Options) logger() *zap.Logger {
	if o.Log == nil {
		return zap.NewNop()
	}
	return o.Log
}

// isCashSymbol reports whether sym matches a configured cash-equivalent
// marker. Fidelity decorates its core position with a trailing "**"
// ("SPAXX**"), stripped before matching.
func (o Options) isCashSymbol(sym string) bool {
	sym = strings.TrimSuffix(strings.TrimSpace(sym), "**")
	symbols := o.CashSymbols
	if symbols == nil {
		symbols = DefaultCashSymbols
	}
	for _, s := range symbols {
		if strings.EqualFold(sym, s) {
			return true
		}
	}
	return strings.Contains(sym, "Cash")
}

// Parse reads one brokerage export from r and returns its normalized
// positions. Rows whose numeric cells cannot be coerced are skipped with a
// warning; a missing required column aborts the source with a
// *MissingColumnError.
func Parse(src Source, r io.Reader, opt Options) ([]Position, error) {
	switch src {
	case Fidelity:
		return parseFidelity(r, opt)
	case Schwab:
		return parseSchwab(r, opt)
	default:
		return nil, fmt.Errorf("unknown source %q", src)
	}
}

// ParseFile parses the export at path and records its provenance. A missing
// or unreadable file is reported as a *SourceUnavailableError so the caller
// can proceed with the remaining sources.
func ParseFile(src Source, path string, opt Options) ([]Position, SourceInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, SourceInfo{}, &SourceUnavailableError{Source: src, Path: path, Err: err}
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return nil, SourceInfo{}, &SourceUnavailableError{Source: src, Path: path, Err: err}
	}

	positions, err := Parse(src, f, opt)
	if err != nil {
		return nil, SourceInfo{}, err
	}
	info := SourceInfo{
		Source:  src,
		File:    filepath.Base(path),
		ModTime: st.ModTime(),
		Rows:    len(positions),
	}
	return positions, info, nil
}

// indexColumns maps trimmed header names to their column index.
func indexColumns(header []string) map[string]int {
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}
	return col
}

// cell returns the trimmed cell under the named column, or "" when the row
// is too short. Exports routinely pad or truncate rows.
func cell(row []string, col map[string]int, name string) string {
	i, ok := col[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
