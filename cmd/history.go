package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/household"
	"github.com/etnz/household/renderer"
	"github.com/google/subcommands"
)

// historyCmd holds the flags for the 'history' subcommand.
type historyCmd struct {
	tail int
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "display the monthly valuation history" }
func (*historyCmd) Usage() string {
	return `hhb history [-tail <n>]

  Displays one valuation row per month from the earliest to the latest
  recorded one: stock value, savings and total worth.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.tail, "tail", 0, "Show only the last N months.")
}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	accounts, err := DecodeAccounts()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading accounts: %v\n", err)
		return subcommands.ExitFailure
	}
	entries, err := DecodeEntries()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	trades, err := DecodeTrades()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading trades: %v\n", err)
		return subcommands.ExitFailure
	}
	prices, err := DecodePrices()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading quotes: %v\n", err)
		return subcommands.ExitFailure
	}

	snapshots := household.History(accounts, entries, trades, prices, usdRate(), *baseCurrency)
	if c.tail > 0 && c.tail < len(snapshots) {
		snapshots = snapshots[len(snapshots)-c.tail:]
	}
	printMarkdown(renderer.HistoryMarkdown(snapshots))

	return subcommands.ExitSuccess
}
