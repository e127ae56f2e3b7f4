package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/household"
	"github.com/google/subcommands"
)

// pricesCmd holds the flags for the 'prices' subcommand.
type pricesCmd struct {
	file     string
	ticker   string
	name     string
	lastPath string
	datePath string
	currency string
}

func (*pricesCmd) Name() string     { return "prices" }
func (*pricesCmd) Synopsis() string { return "import a quote from a provider JSON document" }
func (*pricesCmd) Usage() string {
	return `hhb prices -file <provider.json> -ticker <ticker> -last <jsonpath> [-date <jsonpath>]

  Extracts one quote from an externally fetched provider document and
  appends it to the quotes file. The engine never fetches anything
  itself; the document is whatever the provider's API returned.

Usage Examples:
# Import the last price from a generic quote endpoint dump.
$ hhb prices -file acme.json -ticker ACME -last '$.quote.last' -date '$.quote.date'
`
}

func (c *pricesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "file", "", "Provider JSON document to read.")
	f.StringVar(&c.ticker, "ticker", "", "Ticker to record the quote under.")
	f.StringVar(&c.name, "name", "", "Human-readable instrument name.")
	f.StringVar(&c.lastPath, "last", "$.last", "JSONPath of the last price inside the document.")
	f.StringVar(&c.datePath, "date", "", "JSONPath of the observation date. Empty records an undated quote.")
	f.StringVar(&c.currency, "currency", "", "Quote currency. Defaults to the base currency.")
}

func (c *pricesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" || c.ticker == "" {
		fmt.Fprintln(os.Stderr, "Error: -file and -ticker are required.")
		return subcommands.ExitUsageError
	}

	data, err := os.ReadFile(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading provider document: %v\n", err)
		return subcommands.ExitFailure
	}
	var jobj any
	if err := json.Unmarshal(data, &jobj); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing provider document: %v\n", err)
		return subcommands.ExitFailure
	}

	last, err := floatAt(jobj, c.lastPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error extracting last price: %v\n", err)
		return subcommands.ExitFailure
	}

	var updated household.Date
	if c.datePath != "" {
		raw, err := stringAt(jobj, c.datePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error extracting date: %v\n", err)
			return subcommands.ExitFailure
		}
		updated, err = household.ParseDate(raw)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date %q: %v\n", raw, err)
			return subcommands.ExitFailure
		}
	}

	currency := c.currency
	if currency == *baseCurrency {
		currency = ""
	}
	quote := household.Quote{
		Ticker:  c.ticker,
		Name:    c.name,
		Last:    household.M(last, currency),
		Updated: updated,
	}
	if err := AppendQuotes(quote); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing to quotes file: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Successfully appended quote for %s to %s\n", c.ticker, *pricesFile)
	return subcommands.ExitSuccess
}

// floatAt extracts a float value at a JSONPath.
func floatAt(jobj any, path string) (float64, error) {
	jval, err := valueAt(jobj, path)
	if err != nil {
		return 0, err
	}
	val, ok := jval.(float64)
	if !ok {
		return 0, fmt.Errorf("value at %q is not a number: %v", path, jval)
	}
	return val, nil
}

// stringAt extracts a string value at a JSONPath.
func stringAt(jobj any, path string) (string, error) {
	jval, err := valueAt(jobj, path)
	if err != nil {
		return "", err
	}
	val, ok := jval.(string)
	if !ok {
		return "", fmt.Errorf("value at %q is not a string: %v", path, jval)
	}
	return val, nil
}

func valueAt(jobj any, path string) (any, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("evaluating %q: %w", path, err)
	}
	// jsonpath is never clear about whether it returns a list of one
	// answer or a single answer; keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	return jval, nil
}
