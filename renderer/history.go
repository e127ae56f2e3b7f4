package renderer

import (
	"bytes"

	"github.com/etnz/household"
	md "github.com/nao1215/markdown"
)

// HistoryMarkdown renders the monthly valuation snapshots as a markdown
// table, one row per month from the earliest to the latest recorded one.
func HistoryMarkdown(snapshots []household.MonthlySnapshot) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Monthly History")

	if len(snapshots) == 0 {
		doc.PlainText("No recorded history.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Month", "Stocks", "Savings", "Total"},
	}
	for _, s := range snapshots {
		table.Rows = append(table.Rows, []string{
			s.Month.String(),
			s.Stocks.String(),
			s.Savings.String(),
			s.Total.String(),
		})
	}
	doc.Table(table)
	return doc.String()
}
