package portdash

// RowMetrics are the derived figures for one position. Nil means undefined:
// a missing cost basis must not read as breakeven, and a zero-value
// portfolio has no weights.
type RowMetrics struct {
	PnL           *Money   // CurrentValue - CostBasis
	PnLPercent    *Percent // PnL relative to CostBasis
	WeightByValue *Percent // share of TotalValue
	WeightByCost  *Percent // share of TotalCost, known-cost rows only
}

// Metrics are the aggregate figures for a table. Rows is parallel to the
// table's Positions slice; an empty table yields zero rows, which callers
// must distinguish from a non-empty table with Weighted false.
type Metrics struct {
	Rows []RowMetrics

	TotalValue    Money
	TotalCost     Money // sum of known cost bases
	TotalCash     Money
	TotalInvested Money

	Weighted     bool // false when TotalValue is zero: weights by value undefined
	CostWeighted bool // false when TotalCost is zero: weights by cost undefined
}

// Compute derives all metrics from the table in one pass over the rows plus
// one for the weights. It never divides by zero and never returns NaN:
// degenerate inputs surface as nil figures and lowered flags.
func Compute(t *Table) Metrics {
	m := Metrics{Rows: make([]RowMetrics, len(t.Positions))}

	for _, p := range t.Positions {
		m.TotalValue = m.TotalValue.Add(p.CurrentValue)
		if p.CostBasis != nil {
			m.TotalCost = m.TotalCost.Add(*p.CostBasis)
		}
		if p.Cash {
			m.TotalCash = m.TotalCash.Add(p.CurrentValue)
		}
	}
	m.TotalInvested = m.TotalValue.Sub(m.TotalCash)
	m.Weighted = !m.TotalValue.IsZero()
	m.CostWeighted = !m.TotalCost.IsZero()

	for i, p := range t.Positions {
		row := RowMetrics{}
		if p.CostBasis != nil {
			pnl := p.CurrentValue.Sub(*p.CostBasis)
			row.PnL = &pnl
			if !p.CostBasis.IsZero() {
				row.PnLPercent = ratio(pnl, *p.CostBasis)
			}
		}
		if m.Weighted {
			row.WeightByValue = ratio(p.CurrentValue, m.TotalValue)
		}
		if m.CostWeighted && p.CostBasis != nil {
			row.WeightByCost = ratio(*p.CostBasis, m.TotalCost)
		}
		m.Rows[i] = row
	}
	return m
}

// SymbolWeight is the weight of one consolidated symbol.
type SymbolWeight struct {
	Symbol  string
	ByValue *Percent
	ByCost  *Percent
}

// ConsolidatedWeights computes portfolio weights over the per-symbol view,
// in first-seen order. Same degenerate-input policy as Compute.
func ConsolidatedWeights(t *Table) []SymbolWeight {
	consolidated := t.Consolidated()

	var totalValue, totalCost Money
	for _, c := range consolidated {
		totalValue = totalValue.Add(c.CurrentValue)
		if c.CostBasis != nil {
			totalCost = totalCost.Add(*c.CostBasis)
		}
	}

	out := make([]SymbolWeight, len(consolidated))
	for i, c := range consolidated {
		w := SymbolWeight{Symbol: c.Symbol}
		if !totalValue.IsZero() {
			w.ByValue = ratio(c.CurrentValue, totalValue)
		}
		if !totalCost.IsZero() && c.CostBasis != nil {
			w.ByCost = ratio(*c.CostBasis, totalCost)
		}
		out[i] = w
	}
	return out
}

// ratio returns part/total as a Percent. total must be non-zero.
func ratio(part, total Money) *Percent {
	p := Percent(part.value.Div(total.value).InexactFloat64() * 100)
	return &p
}
