// Package cmd implements the CLI application to manage a household ledger.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/household"
	"github.com/google/subcommands"
)

// Register the subcommands. A main package calls Register() and then
// Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&balancesCmd{}, "reports")
	c.Register(&holdingsCmd{}, "reports")
	c.Register(&historyCmd{}, "reports")
	c.Register(&reviewCmd{}, "reports")

	c.Register(&addCmd{}, "ledger")
	c.Register(&tradeCmd{}, "ledger")
	c.Register(&recurCmd{}, "ledger")
	c.Register(&fmtCmd{}, "ledger")

	c.Register(&pricesCmd{}, "market")
	c.Register(&assistCmd{}, "assistant")
	c.Register(&topicCmd{}, "documentation")
}

// Environment variables overriding the global flag defaults. A .env file
// loaded by the main package feeds them too.
const (
	EnvAccountsFile  = "HHB_ACCOUNTS_FILE"
	EnvLedgerFile    = "HHB_LEDGER_FILE"
	EnvTradesFile    = "HHB_TRADES_FILE"
	EnvPricesFile    = "HHB_PRICES_FILE"
	EnvRecurringFile = "HHB_RECURRING_FILE"
	EnvPresetsFile   = "HHB_PRESETS_FILE"
	EnvCurrency      = "HHB_CURRENCY"
	EnvUSDRate       = "HHB_USD_RATE"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// As a CLI application it has a very short lived lifecycle, so it is ok to
// use global variables.

var accountsFile = flag.String("accounts-file", envOr(EnvAccountsFile, "accounts.jsonl"), "Path to the accounts file (JSONL format)")
var ledgerFile = flag.String("ledger-file", envOr(EnvLedgerFile, "ledger.jsonl"), "Path to the ledger file containing entries (JSONL format)")
var tradesFile = flag.String("trades-file", envOr(EnvTradesFile, "trades.jsonl"), "Path to the trades file (JSONL format)")
var pricesFile = flag.String("prices-file", envOr(EnvPricesFile, "prices.jsonl"), "Path to the quotes file (JSONL format)")
var recurringFile = flag.String("recurring-file", envOr(EnvRecurringFile, "recurring.jsonl"), "Path to the recurring templates file (JSONL format)")
var presetsFile = flag.String("presets-file", envOr(EnvPresetsFile, "presets.json"), "Path to the category presets file")
var baseCurrency = flag.String("currency", envOr(EnvCurrency, "EUR"), "Base currency of the household")

// decodeFile opens a data file and hands it to the given decoder. A missing
// file decodes as empty, so every report works on a fresh directory.
func decodeFile[T any](filename string, decode func(r *os.File) (T, error)) (T, error) {
	f, err := os.Open(filename)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning, %q does not exist, using an empty one instead", filename)
		var zero T
		return zero, nil
	}
	if err != nil {
		var zero T
		return zero, err
	}
	defer f.Close()
	return decode(f)
}

// DecodeAccounts loads the app accounts file.
func DecodeAccounts() ([]household.Account, error) {
	return decodeFile(*accountsFile, func(r *os.File) ([]household.Account, error) {
		return household.DecodeAccounts(r, *baseCurrency)
	})
}

// DecodeEntries loads the app ledger file.
func DecodeEntries() ([]household.Entry, error) {
	return decodeFile(*ledgerFile, func(r *os.File) ([]household.Entry, error) {
		return household.DecodeEntries(r)
	})
}

// DecodeTrades loads the app trades file.
func DecodeTrades() ([]household.Trade, error) {
	return decodeFile(*tradesFile, func(r *os.File) ([]household.Trade, error) {
		return household.DecodeTrades(r)
	})
}

// DecodePrices loads the app quotes file.
func DecodePrices() (*household.Prices, error) {
	return decodeFile(*pricesFile, func(r *os.File) (*household.Prices, error) {
		return household.DecodeQuotes(r)
	})
}

// DecodeRecurrings loads the app recurring templates file.
func DecodeRecurrings() ([]household.Recurring, error) {
	return decodeFile(*recurringFile, func(r *os.File) ([]household.Recurring, error) {
		return household.DecodeRecurrings(r)
	})
}

// DecodePresets loads the app category presets file.
func DecodePresets() (household.Presets, error) {
	return decodeFile(*presetsFile, func(r *os.File) (household.Presets, error) {
		return household.DecodePresets(r)
	})
}

// appendToFile appends records to a JSONL data file, creating it on first
// use.
func appendToFile(filename string, encode func(w *os.File) error) error {
	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("opening %q: %w", filename, err)
	}
	defer f.Close()
	return encode(f)
}

// AppendEntries appends ledger entries to the app ledger file.
func AppendEntries(entries ...household.Entry) error {
	return appendToFile(*ledgerFile, func(w *os.File) error {
		return household.EncodeEntries(w, entries...)
	})
}

// AppendTrades appends trades to the app trades file.
func AppendTrades(trades ...household.Trade) error {
	return appendToFile(*tradesFile, func(w *os.File) error {
		return household.EncodeTrades(w, trades...)
	})
}

// AppendQuotes appends quotes to the app quotes file.
func AppendQuotes(quotes ...household.Quote) error {
	return appendToFile(*pricesFile, func(w *os.File) error {
		return household.EncodeQuotes(w, quotes...)
	})
}

// usdRate builds the optional USD conversion rate from the environment.
// Without a configured rate, foreign amounts are reported in their native
// currency.
func usdRate() household.Rate {
	v := os.Getenv(EnvUSDRate)
	if v == "" {
		return household.Rate{}
	}
	var rate float64
	if _, err := fmt.Sscanf(v, "%g", &rate); err != nil {
		log.Printf("warning, invalid %s %q, ignoring it", EnvUSDRate, v)
		return household.Rate{}
	}
	return household.NewRate(rate, "USD", *baseCurrency)
}

// printMarkdown renders markdown to the terminal, falling back to the raw
// text when the renderer cannot be built.
func printMarkdown(markdown string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		fmt.Println(markdown)
		return
	}
	out, err := r.Render(markdown)
	if err != nil {
		fmt.Println(markdown)
		return
	}
	fmt.Print(out)
}
