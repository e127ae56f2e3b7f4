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

// reviewCmd holds the flags for the 'review' subcommand.
type reviewCmd struct {
	month string
}

func (*reviewCmd) Name() string     { return "review" }
func (*reviewCmd) Synopsis() string { return "display one month's spending review" }
func (*reviewCmd) Usage() string {
	return `hhb review [-m <month>]

  Displays the month's income and its spending broken down into fixed,
  variable and savings buckets, with a per-category detail.
`
}

func (c *reviewCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "m", household.ThisMonth().String(), "Month to review, in 2006-01 format.")
}

func (c *reviewCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	report, status := monthReview(c.month)
	if status != subcommands.ExitSuccess {
		return status
	}
	printMarkdown(report)
	return subcommands.ExitSuccess
}

// monthReview assembles the monthly review markdown shared by the review
// and assist subcommands.
func monthReview(monthFlag string) (string, subcommands.ExitStatus) {
	month, err := household.ParseMonth(monthFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing month: %v\n", err)
		return "", subcommands.ExitUsageError
	}

	accounts, err := DecodeAccounts()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading accounts: %v\n", err)
		return "", subcommands.ExitFailure
	}
	entries, err := DecodeEntries()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return "", subcommands.ExitFailure
	}
	presets, err := DecodePresets()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading presets: %v\n", err)
		return "", subcommands.ExitFailure
	}

	report := renderer.MonthMarkdown(month, entries, household.IndexAccounts(accounts), presets, *baseCurrency)
	return report, subcommands.ExitSuccess
}
