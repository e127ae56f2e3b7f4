package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/household"
	"github.com/google/subcommands"
)

// tradeCmd holds the flags for the 'trade' subcommand.
type tradeCmd struct {
	side     string
	date     string
	account  string
	ticker   string
	name     string
	quantity float64
	price    float64
	fee      float64
	currency string
}

func (*tradeCmd) Name() string     { return "trade" }
func (*tradeCmd) Synopsis() string { return "record a buy or sell in the trades file" }
func (*tradeCmd) Usage() string {
	return `hhb trade -side <buy|sell> -account <account> -ticker <ticker> -q <quantity> -p <price>

  Appends one trade to the trades file. The total amount and the cash
  impact on the account are derived from quantity, price and fee.

Usage Examples:
# Buy 6 shares at 10 with a 5 fee.
$ hhb trade -side buy -account broker -ticker ACME -q 6 -p 10 -fee 5
`
}

func (c *tradeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.side, "side", "buy", "Trade side: buy or sell.")
	f.StringVar(&c.date, "d", household.Today().String(), "Date of the trade.")
	f.StringVar(&c.account, "account", "", "Account holding the position.")
	f.StringVar(&c.ticker, "ticker", "", "Instrument ticker.")
	f.StringVar(&c.name, "name", "", "Human-readable instrument name.")
	f.Float64Var(&c.quantity, "q", 0, "Number of units.")
	f.Float64Var(&c.price, "p", 0, "Price per unit.")
	f.Float64Var(&c.fee, "fee", 0, "Transaction fee.")
	f.StringVar(&c.currency, "currency", "", "Instrument currency. Defaults to the base currency.")
}

func (c *tradeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := household.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	if c.account == "" || c.ticker == "" {
		fmt.Fprintln(os.Stderr, "Error: -account and -ticker are required.")
		return subcommands.ExitUsageError
	}
	if c.quantity <= 0 || c.price <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -q and -p must be positive.")
		return subcommands.ExitUsageError
	}

	currency := c.currency
	if currency == *baseCurrency {
		currency = ""
	}
	quantity := household.Q(c.quantity)
	price := household.M(c.price, currency)
	fee := household.M(c.fee, currency)

	var trade household.Trade
	switch c.side {
	case "buy":
		trade = household.NewBuy(on, c.account, c.ticker, quantity, price, fee)
	case "sell":
		trade = household.NewSell(on, c.account, c.ticker, quantity, price, fee)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown side %q.\n", c.side)
		return subcommands.ExitUsageError
	}
	trade.Name = c.name

	if err := AppendTrades(trade); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing to trades file: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Successfully appended %s of %s to %s\n", c.side, c.ticker, *tradesFile)
	return subcommands.ExitSuccess
}
