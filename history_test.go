package household

import (
	"testing"
	"time"
)

func TestHistory_ContiguousMonths(t *testing.T) {
	accounts := []Account{{ID: "main", Type: Checking, Initial: M(1000, base)}}
	entries := []Entry{
		NewExpense(day(2025, time.January, 10), "main", "groceries", M(100, base)),
		NewExpense(day(2025, time.March, 5), "main", "groceries", M(50, base)),
	}

	got := History(accounts, entries, nil, nil, Rate{}, base)
	if len(got) != 3 {
		t.Fatalf("History() returned %d snapshots, want 3", len(got))
	}

	// February has no activity but still gets a row carrying January forward.
	wantTotals := []struct {
		month Month
		total Money
	}{
		{month(2025, time.January), M(900, base)},
		{month(2025, time.February), M(900, base)},
		{month(2025, time.March), M(850, base)},
	}
	for i, w := range wantTotals {
		if got[i].Month != w.month {
			t.Errorf("snapshot %d month = %s, want %s", i, got[i].Month, w.month)
		}
		if !got[i].Total.Equal(w.total) {
			t.Errorf("snapshot %d total = %s, want %s", i, got[i].Total, w.total)
		}
	}
}

func TestHistory_AsOfPrices(t *testing.T) {
	accounts := []Account{
		{ID: "main", Type: Checking, Initial: M(500, base)},
		{ID: "broker", Type: Securities},
	}
	trades := []Trade{
		NewBuy(day(2025, time.January, 15), "broker", "ACME", Q(10), M(10, base), M(0, base)),
	}
	entries := []Entry{
		NewIncome(day(2025, time.February, 1), "main", "salary", M(20, base)),
	}
	prices := NewPrices(Quote{Ticker: "ACME", Last: M(15, base), Updated: day(2025, time.February, 10)})

	got := History(accounts, entries, trades, prices, Rate{}, base)
	if len(got) != 2 {
		t.Fatalf("History() returned %d snapshots, want 2", len(got))
	}

	// In January the February quote is not yet observable, so the position
	// is carried at cost. In February the quote applies.
	if want := M(100, base); !got[0].Stocks.Equal(want) {
		t.Errorf("January stocks = %s, want %s", got[0].Stocks, want)
	}
	if want := M(150, base); !got[1].Stocks.Equal(want) {
		t.Errorf("February stocks = %s, want %s", got[1].Stocks, want)
	}

	// Totals fold the trade's cash leg back in: 500 - 100 + 100 in January,
	// then +20 income and the revalued position in February.
	if want := M(500, base); !got[0].Total.Equal(want) {
		t.Errorf("January total = %s, want %s", got[0].Total, want)
	}
	if want := M(570, base); !got[1].Total.Equal(want) {
		t.Errorf("February total = %s, want %s", got[1].Total, want)
	}
}

func TestHistory_SavingsAndDebt(t *testing.T) {
	accounts := []Account{
		{ID: "main", Type: Checking, Initial: M(1000, base)},
		{ID: "pot", Type: Savings, Initial: M(2000, base)},
		{ID: "loan", Type: Other, Debt: M(-5000, base)},
	}
	entries := []Entry{
		NewIncome(day(2025, time.January, 20), "main", "salary", M(100, base)),
	}

	got := History(accounts, entries, nil, nil, Rate{}, base)
	if len(got) != 1 {
		t.Fatalf("History() returned %d snapshots, want 1", len(got))
	}
	if want := M(2000, base); !got[0].Savings.Equal(want) {
		t.Errorf("savings = %s, want %s", got[0].Savings, want)
	}
	if want := M(-1900, base); !got[0].Total.Equal(want) {
		t.Errorf("total = %s, want %s", got[0].Total, want)
	}
}

func TestHistory_ForeignBalances(t *testing.T) {
	accounts := []Account{
		{ID: "main", Type: Checking, USDBalance: M(100, "USD")},
	}
	entries := []Entry{
		NewIncome(day(2025, time.January, 20), "main", "salary", M(50, base)),
	}
	rate := NewRate(0.9, "USD", base)

	got := History(accounts, entries, nil, nil, rate, base)
	if len(got) != 1 {
		t.Fatalf("History() returned %d snapshots, want 1", len(got))
	}
	if want := M(140, base); !got[0].Total.Equal(want) {
		t.Errorf("total = %s, want %s", got[0].Total, want)
	}
}

func TestHistory_Empty(t *testing.T) {
	accounts := []Account{{ID: "main", Type: Checking, Initial: M(100, base)}}
	if got := History(accounts, nil, nil, nil, Rate{}, base); got != nil {
		t.Errorf("History() without records returned %d snapshots, want none", len(got))
	}
}
