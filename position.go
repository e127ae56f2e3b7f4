package household

import (
	"sort"
)

// Position is the replayed holding of one (account, ticker) pair.
type Position struct {
	Account  string
	Ticker   string
	Name     string
	Quantity Quantity
	AvgCost  Money  // per-unit cost of the remaining lots, native currency
	Value    Money  // market value, base currency when a rate is known
	Currency string // instrument native currency, "" for base
}

// Valuation holds the options controlling how positions are valued.
type Valuation struct {
	Rate         Rate // optional FX rate for foreign instruments
	CostFallback bool // value at cost basis when no quote exists
}

// Positions derives FIFO-lot quantity, average cost and market value per
// (account, ticker) from the trade history. Only positions with a positive
// remaining quantity are returned, ordered by account then ticker.
//
// Trades referencing unknown accounts are silently ignored; selling more
// than is held clamps the position at zero.
func Positions(trades []Trade, prices *Prices, accounts []Account, opts Valuation) []Position {
	idx := IndexAccounts(accounts)

	type key struct{ account, ticker string }
	groups := make(map[key][]Trade)
	for _, t := range trades {
		if _, ok := idx[t.Account]; !ok {
			continue
		}
		k := key{t.Account, t.Ticker}
		groups[k] = append(groups[k], t)
	}

	keys := make([]key, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].account != keys[j].account {
			return keys[i].account < keys[j].account
		}
		return keys[i].ticker < keys[j].ticker
	})

	out := make([]Position, 0, len(keys))
	for _, k := range keys {
		group := groups[k]
		// stable: same-day trades keep their original relative order
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].Date.Before(group[j].Date)
		})

		var queue lots
		var name, currency string
		for _, t := range group {
			tag := t.Currency
			if tag == "" {
				tag = t.Amount.Currency()
			}
			if tag != "" && currency != "" && tag != currency {
				// one mistagged trade must not crash the whole valuation;
				// its lots are simply not counted
				continue
			}
			if t.Name != "" {
				name = t.Name
			}
			if tag != "" {
				currency = tag
			}
			switch t.Side {
			case Buy:
				queue = queue.buy(t.Quantity, t.Amount)
			case Sell:
				queue = queue.sell(t.Quantity)
			}
		}

		quantity := queue.quantity()
		if !quantity.IsPositive() {
			continue // fully sold out, or malformed history clamped to zero
		}
		costBasis := queue.cost()
		avgCost := costBasis.Div(quantity)

		var value Money
		if quote, ok := prices.Last(k.ticker); ok {
			value = quote.Last.Mul(quantity)
			if name == "" {
				name = quote.Name
			}
			if currency == "" {
				currency = quote.Last.Currency()
			}
		} else if opts.CostFallback {
			value = costBasis
		}

		out = append(out, Position{
			Account:  k.account,
			Ticker:   k.ticker,
			Name:     name,
			Quantity: quantity,
			AvgCost:  avgCost,
			Value:    opts.Rate.Convert(value),
			Currency: currency,
		})
	}
	return out
}
