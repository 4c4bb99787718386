package renderer

import (
	"bytes"

	md "github.com/nao1215/markdown"

	"github.com/jsandler/portdash"
)

// PositionsMarkdown renders the raw position table with its per-row metrics.
func PositionsMarkdown(t *portdash.Table, m portdash.Metrics) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Positions")

	if t.Len() == 0 {
		doc.PlainText("No data.")
		return doc.String()
	}

	rows := make([][]string, 0, t.Len())
	for i, p := range t.Positions {
		rm := m.Rows[i]
		kind := ""
		if p.Cash {
			kind = "cash"
		}
		rows = append(rows, []string{
			p.Symbol,
			p.Account,
			string(p.Source),
			p.Quantity.String(),
			p.Price.String(),
			p.CurrentValue.String(),
			moneyOrDash(p.CostBasis),
			signedMoneyOrDash(rm.PnL),
			signedPercentOrDash(rm.PnLPercent),
			percentOrDash(rm.WeightByValue),
			kind,
		})
	}

	doc.Table(md.TableSet{
		Header: []string{"Symbol", "Account", "Source", "Quantity", "Price", "Value", "Cost Basis", "P&L", "P&L %", "Weight", ""},
		Rows:   rows,
	})

	return doc.String()
}
