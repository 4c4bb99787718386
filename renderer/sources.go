package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/jsandler/portdash"
)

// SourcesMarkdown renders the data-freshness view: which export files fed
// the table and when they were last modified.
func SourcesMarkdown(t *portdash.Table) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Data Sources")

	if len(t.Sources) == 0 {
		doc.PlainText("No data.")
		return doc.String()
	}

	rows := make([][]string, 0, len(t.Sources))
	for _, s := range t.Sources {
		rows = append(rows, []string{
			s.File,
			string(s.Source),
			s.ModTime.Format("2006-01-02 15:04:05"),
			fmt.Sprintf("%d", s.Rows),
		})
	}

	doc.Table(md.TableSet{
		Header: []string{"File", "Source", "Last Modified", "Rows"},
		Rows:   rows,
	})

	doc.PlainText("All calculations are based on the latest exports provided.")

	return doc.String()
}
