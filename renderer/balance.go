package renderer

import (
	"bytes"

	"github.com/etnz/household"
	md "github.com/nao1215/markdown"
)

// BalancesMarkdown renders the replayed account balances as a markdown
// table. The foreign column only appears when at least one account carries
// a foreign transfer net or a foreign cash balance.
func BalancesMarkdown(balances []household.AccountBalance) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Account Balances")

	hasForeign := false
	for _, b := range balances {
		if !b.USDNet.IsZero() || !b.Account.USDBalance.IsZero() {
			hasForeign = true
			break
		}
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Account", "Type", "Balance"},
	}
	if hasForeign {
		table.Alignment = append(table.Alignment, md.AlignRight)
		table.Header = append(table.Header, "Foreign")
	}

	var total household.Money
	for _, b := range balances {
		label := b.Account.Name
		if label == "" {
			label = b.Account.ID
		}
		row := []string{
			dash(label),
			b.Account.Type.String(),
			b.Balance.String(),
		}
		if hasForeign {
			row = append(row, foreignCell(b))
		}
		table.Rows = append(table.Rows, row)
		total = total.Add(b.Balance)
	}

	totalRow := []string{md.Bold("Total"), "", md.Bold(total.String())}
	if hasForeign {
		totalRow = append(totalRow, "")
	}
	table.Rows = append(table.Rows, totalRow)

	doc.Table(table)
	return doc.String()
}

// foreignCell folds an account's foreign cash balance and transfer net into
// one cell. Mismatched currency tags are shown side by side, never summed.
func foreignCell(b household.AccountBalance) string {
	cash, net := b.Account.USDBalance, b.USDNet
	if net.IsZero() {
		return cash.SignedString()
	}
	if cash.IsZero() {
		return net.SignedString()
	}
	if c, n := cash.Currency(), net.Currency(); c != "" && n != "" && c != n {
		return cash.SignedString() + " " + net.SignedString()
	}
	return cash.Add(net).SignedString()
}
