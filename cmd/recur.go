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

// recurCmd holds the flags for the 'recur' subcommand.
type recurCmd struct {
	month string
	apply bool
}

func (*recurCmd) Name() string     { return "recur" }
func (*recurCmd) Synopsis() string { return "expand recurring templates into a month's entries" }
func (*recurCmd) Usage() string {
	return `hhb recur [-m <month>] [-apply]

  Expands the recurring templates into concrete entries for the month,
  skipping occurrences that already exist in the ledger. Without -apply
  the candidates are only displayed; with -apply they are appended to
  the ledger file. Running it twice on the same month adds nothing.
`
}

func (c *recurCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "m", household.ThisMonth().String(), "Month to expand, in 2006-01 format.")
	f.BoolVar(&c.apply, "apply", false, "Append the candidates to the ledger file.")
}

func (c *recurCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	month, err := household.ParseMonth(c.month)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing month: %v\n", err)
		return subcommands.ExitUsageError
	}

	templates, err := DecodeRecurrings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading recurring templates: %v\n", err)
		return subcommands.ExitFailure
	}
	entries, err := DecodeEntries()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	candidates := household.Expand(templates, month, entries)
	printMarkdown(renderer.CandidatesMarkdown(month, candidates))

	if !c.apply || len(candidates) == 0 {
		return subcommands.ExitSuccess
	}
	if err := AppendEntries(candidates...); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing to ledger file: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Successfully appended %d entries to %s\n", len(candidates), *ledgerFile)
	return subcommands.ExitSuccess
}
