package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/household"
	md "github.com/nao1215/markdown"
)

// CandidatesMarkdown renders the entries a recurring expansion proposes for
// a month, before they are applied to the ledger.
func CandidatesMarkdown(month household.Month, candidates []household.Entry) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Recurring Candidates for %s", month))

	if len(candidates) == 0 {
		doc.PlainText("Nothing to add: every occurrence already exists.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Date", "Kind", "Category", "Amount"},
	}
	for _, e := range candidates {
		category, _ := e.Labels()
		table.Rows = append(table.Rows, []string{
			e.When().String(),
			string(e.Kind()),
			dash(category),
			e.Value().String(),
		})
	}
	doc.Table(table)
	return doc.String()
}
