package household

// MonthlySnapshot is one month's valuation row for trend charts.
type MonthlySnapshot struct {
	Month   Month
	Stocks  Money // market value of positions held at month end
	Savings Money // cash in savings- and securities-type accounts
	Total   Money // cash + stocks + debt across all accounts
}

// History produces one snapshot per month across the full contiguous range
// from the earliest to the latest recorded month, with no gaps even for
// inactive months.
//
// Cash balances accumulate incrementally with full hindsight, exactly as in
// Balances; stock valuation for a month deliberately uses only quotes
// observed on or before that month's end, so each row reflects what was
// knowable at the time. The cost is linear in the total entry count, not
// quadratic in months.
func History(accounts []Account, entries []Entry, trades []Trade, prices *Prices, rate Rate, base string) []MonthlySnapshot {
	first, last, ok := monthRange(entries, trades)
	if !ok {
		return nil
	}

	entriesByMonth := make(map[Month][]Entry)
	for _, e := range entries {
		m := MonthOf(e.When())
		entriesByMonth[m] = append(entriesByMonth[m], e)
	}
	tradesByMonth := make(map[Month][]Trade)
	for _, t := range trades {
		m := MonthOf(t.Date)
		tradesByMonth[m] = append(tradesByMonth[m], t)
	}

	state := newReplayState(accounts, base)
	var tradesSoFar []Trade

	var out []MonthlySnapshot
	for m := first; !m.After(last); m = m.Next() {
		for _, e := range entriesByMonth[m] {
			state.apply(e)
		}
		for _, t := range tradesByMonth[m] {
			state.applyTrade(t)
		}
		tradesSoFar = append(tradesSoFar, tradesByMonth[m]...)

		// For past months AsOf prunes later quotes; for the current month
		// it naturally keeps the whole live set.
		positions := Positions(tradesSoFar, prices.AsOf(m.Last()), accounts, Valuation{
			Rate:         rate,
			CostFallback: true,
		})
		var stocks Money
		for _, p := range positions {
			stocks = stocks.Add(M(rate.Convert(p.Value).value, base))
		}

		savings := M(0, base)
		total := M(0, base)
		for _, a := range accounts {
			cash := state.totals[a.ID]
			foreign := M(rate.Convert(a.USDBalance).value, base)
			for _, net := range state.usd[a.ID] {
				foreign = foreign.Add(M(rate.Convert(net).value, base))
			}
			total = total.Add(cash).Add(foreign).Add(M(a.Debt.value, base))
			if a.Type == Savings || a.Type == Securities {
				savings = savings.Add(cash).Add(foreign)
			}
		}
		total = total.Add(M(stocks.value, base))

		out = append(out, MonthlySnapshot{
			Month:   m,
			Stocks:  M(stocks.value, base),
			Savings: savings,
			Total:   total,
		})
	}
	return out
}

// monthRange finds the earliest and latest months touched by the history.
// Zero dates (malformed records) are ignored.
func monthRange(entries []Entry, trades []Trade) (first, last Month, ok bool) {
	grow := func(on Date) {
		if on.IsZero() {
			return
		}
		m := MonthOf(on)
		if !ok {
			first, last, ok = m, m, true
			return
		}
		if m.Before(first) {
			first = m
		}
		if m.After(last) {
			last = m
		}
	}
	for _, e := range entries {
		grow(e.When())
	}
	for _, t := range trades {
		grow(t.Date)
	}
	return first, last, ok
}
