package renderer

import (
	"bytes"

	md "github.com/nao1215/markdown"

	"github.com/jsandler/portdash"
)

// WeightsMarkdown renders per-symbol portfolio weights, by market value and
// by cost basis, over the consolidated view of the table.
func WeightsMarkdown(t *portdash.Table) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Portfolio Weights")

	weights := portdash.ConsolidatedWeights(t)
	if len(weights) == 0 {
		doc.PlainText("No data.")
		return doc.String()
	}

	rows := make([][]string, 0, len(weights))
	for _, w := range weights {
		rows = append(rows, []string{
			w.Symbol,
			percentOrDash(w.ByValue),
			percentOrDash(w.ByCost),
		})
	}

	doc.Table(md.TableSet{
		Header: []string{"Symbol", "Weight by Value", "Weight by Cost"},
		Rows:   rows,
	})

	return doc.String()
}
