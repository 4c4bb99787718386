package portdash

import (
	"regexp"
	"strings"
	"time"
)

// Source identifies the brokerage an export came from. It is a closed set:
// adding a brokerage means adding a parser for it in parse.go.
type Source string

const (
	Fidelity Source = "Fidelity"
	Schwab   Source = "Charles Schwab"
)

// Position is one holding in one account, as reported by a single export.
// Positions are immutable once built.
type Position struct {
	Symbol       string
	Description  string
	Account      string // normalized account label (Brokerage, Roth IRA, ...)
	Quantity     Quantity
	Price        Money
	CurrentValue Money
	CostBasis    *Money // nil when the export does not report a cost basis
	Source       Source
	Cash         bool // cash or cash-equivalent holding
}

// SourceInfo is the provenance of one parsed export, kept for freshness
// display.
type SourceInfo struct {
	Source  Source
	File    string
	ModTime time.Time
	Rows    int
}

// Table is the canonical position table: all successfully parsed sources
// concatenated in insertion order.
type Table struct {
	Positions []Position
	Sources   []SourceInfo
}

func (t *Table) Len() int { return len(t.Positions) }

// ConsolidatedPosition aggregates every row of one symbol across accounts
// and sources: summed quantity, value and known cost basis, first seen price.
type ConsolidatedPosition struct {
	Symbol       string
	Quantity     Quantity
	Price        Money
	CurrentValue Money
	CostBasis    *Money
	Cash         bool
}

// Consolidated returns the per-symbol view of the table, in first-seen
// order. The raw table is left untouched: the same symbol held at two
// brokerages stays two rows there.
func (t *Table) Consolidated() []ConsolidatedPosition {
	index := make(map[string]int)
	var out []ConsolidatedPosition
	for _, p := range t.Positions {
		i, ok := index[p.Symbol]
		if !ok {
			index[p.Symbol] = len(out)
			cp := ConsolidatedPosition{
				Symbol:       p.Symbol,
				Quantity:     p.Quantity,
				Price:        p.Price,
				CurrentValue: p.CurrentValue,
				Cash:         p.Cash,
			}
			if p.CostBasis != nil {
				cb := *p.CostBasis
				cp.CostBasis = &cb
			}
			out = append(out, cp)
			continue
		}
		cp := out[i]
		cp.Quantity = cp.Quantity.Add(p.Quantity)
		cp.CurrentValue = cp.CurrentValue.Add(p.CurrentValue)
		if p.CostBasis != nil {
			if cp.CostBasis == nil {
				cb := *p.CostBasis
				cp.CostBasis = &cb
			} else {
				cb := cp.CostBasis.Add(*p.CostBasis)
				cp.CostBasis = &cb
			}
		}
		out[i] = cp
	}
	return out
}

// Brokerages label the same account kinds differently ("Individual",
// "ROTH IRA", "Roth Contributory IRA", ...). The ordered rules below map
// them to one label each; order matters, a "Roth Contributory IRA" is a
// Roth IRA, not a Traditional one.
var accountLabels = []struct {
	re    *regexp.Regexp
	label string
}{
	{regexp.MustCompile(`(?i)individual`), "Brokerage"},
	{regexp.MustCompile(`(?i)roth`), "Roth IRA"},
	{regexp.MustCompile(`(?i)contributory|traditional`), "Traditional IRA"},
}

// normalizeAccount maps a raw account name to its canonical label, or
// returns it trimmed when no rule matches.
func normalizeAccount(name string) string {
	for _, rule := range accountLabels {
		if rule.re.MatchString(name) {
			return rule.label
		}
	}
	return strings.TrimSpace(name)
}
