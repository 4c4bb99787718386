package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/jsandler/portdash"
)

// SummaryMarkdown renders the portfolio totals and the cash versus invested
// split.
func SummaryMarkdown(t *portdash.Table, m portdash.Metrics) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Portfolio Summary")

	if t.Len() == 0 {
		doc.PlainText("No data.")
		return doc.String()
	}

	doc.PlainText(fmt.Sprintf("Total Portfolio Value: %s", m.TotalValue))
	doc.PlainText(fmt.Sprintf("Total Cost Basis: %s", m.TotalCost))
	pnl := m.TotalValue.Sub(m.TotalCost)
	doc.PlainText(fmt.Sprintf("Unrealized P&L: %s", pnl.SignedString()))

	doc.H2("Invested vs Cash")

	invested := []string{"Invested", m.TotalInvested.String(), dash}
	cash := []string{"Cash", m.TotalCash.String(), dash}
	if m.Weighted {
		investedShare := portdash.Percent(m.TotalInvested.InexactFloat64() / m.TotalValue.InexactFloat64() * 100)
		cashShare := portdash.Percent(m.TotalCash.InexactFloat64() / m.TotalValue.InexactFloat64() * 100)
		invested[2] = investedShare.String()
		cash[2] = cashShare.String()
	}

	doc.Table(md.TableSet{
		Header: []string{"Bucket", "Value", "Share"},
		Rows:   [][]string{invested, cash},
	})

	return doc.String()
}
