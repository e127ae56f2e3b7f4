package household

import (
	"maps"
	"slices"
	"sort"
)

// Quote is one market price record for a ticker, supplied by an external
// price collaborator. Updated is the day the quote was observed; a zero
// Updated is treated as always current.
type Quote struct {
	Ticker    string
	Name      string
	Last      Money
	Change    Money    // absolute change since previous close
	ChangePct Quantity // relative change, in percent
	Updated   Date
}

// MarshalJSON implements the json.Marshaler interface for Quote.
func (q Quote) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("ticker", q.Ticker)
	w.Optional("name", q.Name)
	w.Append("last", q.Last.value)
	w.Optional("currency", q.Last.cur)
	w.Optional("change", q.Change.value)
	w.Optional("changePct", q.ChangePct)
	w.Optional("updated", q.Updated)
	return w.MarshalJSON()
}

// Prices holds the known quotes per ticker, ordered by observation date.
// The zero value and nil are both usable empty collections.
type Prices struct {
	quotes map[string][]Quote
}

// NewPrices builds a price collection from quotes, in any order.
func NewPrices(quotes ...Quote) *Prices {
	p := &Prices{}
	for _, q := range quotes {
		p.Add(q)
	}
	return p
}

// Add inserts a quote, keeping the per-ticker history ordered by date.
func (p *Prices) Add(q Quote) {
	if p.quotes == nil {
		p.quotes = make(map[string][]Quote)
	}
	history := append(p.quotes[q.Ticker], q)
	sort.SliceStable(history, func(i, j int) bool {
		return history[i].Updated.Before(history[j].Updated)
	})
	p.quotes[q.Ticker] = history
}

// Last returns the most recent quote for a ticker.
func (p *Prices) Last(ticker string) (Quote, bool) {
	if p == nil || len(p.quotes[ticker]) == 0 {
		return Quote{}, false
	}
	history := p.quotes[ticker]
	return history[len(history)-1], true
}

// AsOf returns a derived collection holding only quotes observed on or
// before the given date, modeling the information available at that point
// in time. Undated quotes are always included.
func (p *Prices) AsOf(on Date) *Prices {
	filtered := &Prices{}
	if p == nil {
		return filtered
	}
	for _, history := range p.quotes {
		for _, q := range history {
			if q.Updated.IsZero() || !q.Updated.After(on) {
				filtered.Add(q)
			}
		}
	}
	return filtered
}

// Tickers returns all known tickers in lexical order.
func (p *Prices) Tickers() []string {
	if p == nil {
		return nil
	}
	tickers := slices.Collect(maps.Keys(p.quotes))
	slices.Sort(tickers)
	return tickers
}

// All returns every quote, grouped by ticker in lexical order.
func (p *Prices) All() []Quote {
	var out []Quote
	for _, ticker := range p.Tickers() {
		out = append(out, p.quotes[ticker]...)
	}
	return out
}
