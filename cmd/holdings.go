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

// holdingsCmd holds the flags for the 'holdings' subcommand.
type holdingsCmd struct {
	atCost bool
}

func (*holdingsCmd) Name() string     { return "holdings" }
func (*holdingsCmd) Synopsis() string { return "display the open positions per account" }
func (*holdingsCmd) Usage() string {
	return `hhb holdings [-cost]

  Replays the trade history through FIFO lot matching and displays the
  open positions, valued at the latest known quote.
`
}

func (c *holdingsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.atCost, "cost", false, "value positions without a quote at their cost basis")
}

func (c *holdingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	accounts, err := DecodeAccounts()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading accounts: %v\n", err)
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

	positions := household.Positions(trades, prices, accounts, household.Valuation{
		Rate:         usdRate(),
		CostFallback: c.atCost,
	})
	printMarkdown(renderer.HoldingsMarkdown(positions))

	return subcommands.ExitSuccess
}
