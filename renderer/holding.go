package renderer

import (
	"bytes"

	"github.com/etnz/household"
	md "github.com/nao1215/markdown"
)

// HoldingsMarkdown renders the open positions as a markdown table, one row
// per (account, ticker) pair, with a grand total of market values.
func HoldingsMarkdown(positions []household.Position) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Holdings")

	if len(positions) == 0 {
		doc.PlainText("No open positions.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Account", "Ticker", "Quantity", "Avg Cost", "Value"},
	}

	var total household.Money
	mixed := false
	for _, p := range positions {
		ticker := p.Ticker
		if p.Name != "" {
			ticker = p.Ticker + " (" + p.Name + ")"
		}
		table.Rows = append(table.Rows, []string{
			p.Account,
			ticker,
			p.Quantity.String(),
			p.AvgCost.String(),
			p.Value.String(),
		})
		if total.Currency() != "" && p.Value.Currency() != "" && total.Currency() != p.Value.Currency() {
			mixed = true
			continue
		}
		total = total.Add(p.Value)
	}
	// a grand total over mixed native currencies would be meaningless
	if !mixed {
		table.Rows = append(table.Rows, []string{
			md.Bold("Total"), "", "", "", md.Bold(total.String()),
		})
	}

	doc.Table(table)
	return doc.String()
}
