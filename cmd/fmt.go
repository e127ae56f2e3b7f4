package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/etnz/household"
	"github.com/google/subcommands"
)

// fmtCmd holds the flags for the 'fmt' subcommand.
type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "rewrite the ledger and trades files into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `hhb fmt

  Reads the ledger and trades files, sorts the records by date keeping
  the relative order of same-day records, and writes them back in a
  canonical JSONL form. Replaying is order independent, so formatting
  never changes any report.
`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	entries, err := DecodeEntries()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].When().Before(entries[j].When())
	})
	if err := rewriteFile(*ledgerFile, func(w *os.File) error {
		return household.EncodeEntries(w, entries...)
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error rewriting ledger file: %v\n", err)
		return subcommands.ExitFailure
	}

	trades, err := DecodeTrades()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading trades: %v\n", err)
		return subcommands.ExitFailure
	}
	sort.SliceStable(trades, func(i, j int) bool {
		return trades[i].Date.Before(trades[j].Date)
	})
	if err := rewriteFile(*tradesFile, func(w *os.File) error {
		return household.EncodeTrades(w, trades...)
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error rewriting trades file: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Successfully formatted %s and %s\n", *ledgerFile, *tradesFile)
	return subcommands.ExitSuccess
}

// rewriteFile atomically replaces a data file: the new content goes to a
// temporary sibling first, then renames over the original.
func rewriteFile(filename string, encode func(w *os.File) error) error {
	dir, base := filepath.Split(filename)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, base+".tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if err := encode(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), filename)
}
