package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/household"
	"github.com/google/subcommands"
)

// addCmd holds the flags for the 'add' subcommand.
type addCmd struct {
	kind     string
	date     string
	from     string
	to       string
	category string
	sub      string
	desc     string
	amount   float64
	currency string
	fixed    bool
	note     string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record an income, expense or transfer in the ledger" }
func (*addCmd) Usage() string {
	return `hhb add -k <kind> -a <amount> [-d <date>] [-from <account>] [-to <account>] [-c <category>]

  Appends one entry to the ledger file. The kind is one of income,
  expense or transfer; income needs -to, expense needs -from, transfer
  needs both.

Usage Examples:
# Record the monthly salary.
$ hhb add -k income -to main -c salary -a 2500

# Record groceries paid from the main account.
$ hhb add -k expense -from main -c groceries -a 42.50
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "k", "expense", "Entry kind: income, expense or transfer.")
	f.StringVar(&c.date, "d", household.Today().String(), "Date of the entry.")
	f.StringVar(&c.from, "from", "", "Source account.")
	f.StringVar(&c.to, "to", "", "Destination account.")
	f.StringVar(&c.category, "c", "", "Category label.")
	f.StringVar(&c.sub, "s", "", "Sub-category label.")
	f.StringVar(&c.desc, "desc", "", "Free-form description.")
	f.Float64Var(&c.amount, "a", 0, "Amount, in the entry currency.")
	f.StringVar(&c.currency, "currency", "", "Currency of the amount. Defaults to the base currency.")
	f.BoolVar(&c.fixed, "fixed", false, "Tag the entry as a fixed cost.")
	f.StringVar(&c.note, "note", "", "Free-form note.")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := household.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	if c.amount <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -a must be a positive amount.")
		return subcommands.ExitUsageError
	}
	currency := c.currency
	if currency == *baseCurrency {
		currency = "" // the empty tag means base currency on disk
	}
	amount := household.M(c.amount, currency)

	var entry household.Entry
	switch household.EntryKind(c.kind) {
	case household.KindIncome:
		if c.to == "" {
			fmt.Fprintln(os.Stderr, "Error: income needs a -to account.")
			return subcommands.ExitUsageError
		}
		e := household.NewIncome(on, c.to, c.category, amount)
		e.SubCategory, e.Description, e.Fixed, e.Note = c.sub, c.desc, c.fixed, c.note
		entry = e
	case household.KindExpense:
		if c.from == "" {
			fmt.Fprintln(os.Stderr, "Error: expense needs a -from account.")
			return subcommands.ExitUsageError
		}
		e := household.NewExpense(on, c.from, c.category, amount)
		e.To = c.to
		e.SubCategory, e.Description, e.Fixed, e.Note = c.sub, c.desc, c.fixed, c.note
		entry = e
	case household.KindTransfer:
		if c.from == "" || c.to == "" {
			fmt.Fprintln(os.Stderr, "Error: transfer needs both -from and -to accounts.")
			return subcommands.ExitUsageError
		}
		e := household.NewTransfer(on, c.from, c.to, c.category, amount)
		e.SubCategory, e.Description, e.Fixed, e.Note = c.sub, c.desc, c.fixed, c.note
		entry = e
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown kind %q.\n", c.kind)
		return subcommands.ExitUsageError
	}

	if err := AppendEntries(entry); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing to ledger file: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Successfully appended %s to %s\n", c.kind, *ledgerFile)
	return subcommands.ExitSuccess
}
