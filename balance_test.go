package household

import (
	"testing"
	"time"
)

const base = "EUR"

func day(y int, m time.Month, d int) Date { return NewDate(y, m, d) }

func findBalance(t *testing.T, balances []AccountBalance, account string) AccountBalance {
	t.Helper()
	for _, b := range balances {
		if b.Account.ID == account {
			return b
		}
	}
	t.Fatalf("no balance for account %q", account)
	return AccountBalance{}
}

func TestBalances_SingleExpense(t *testing.T) {
	accounts := []Account{{ID: "main", Type: Checking, Initial: M(100, base)}}
	entries := []Entry{
		NewExpense(day(2025, time.March, 2), "main", "groceries", M(30, base)),
	}

	got := Balances(accounts, entries, nil, base)
	if want := M(70, base); !findBalance(t, got, "main").Balance.Equal(want) {
		t.Errorf("Balance = %v, want %v", findBalance(t, got, "main").Balance, want)
	}
}

func TestBalances_PerKindEffects(t *testing.T) {
	accounts := []Account{
		{ID: "main", Type: Checking, Initial: M(1000, base)},
		{ID: "pot", Type: Savings},
	}
	testCases := []struct {
		name     string
		entries  []Entry
		wantMain float64
		wantPot  float64
	}{
		{
			name:     "income credits destination",
			entries:  []Entry{NewIncome(day(2025, time.January, 25), "main", "salary", M(2500, base))},
			wantMain: 3500,
		},
		{
			name:     "expense debits source",
			entries:  []Entry{NewExpense(day(2025, time.January, 5), "main", "rent", M(800, base))},
			wantMain: 200,
		},
		{
			name: "savings-like expense also credits destination",
			entries: []Entry{
				Expense{
					entryBase: entryBase{Date: day(2025, time.January, 10), Category: "savings", Amount: M(150, base)},
					From:      "main", To: "pot",
				},
			},
			wantMain: 850,
			wantPot:  150,
		},
		{
			name:     "transfer moves between accounts",
			entries:  []Entry{NewTransfer(day(2025, time.January, 12), "main", "pot", "transfer", M(200, base))},
			wantMain: 800,
			wantPot:  200,
		},
		{
			name: "unknown accounts are ignored",
			entries: []Entry{
				NewExpense(day(2025, time.January, 3), "ghost", "rent", M(999, base)),
				NewIncome(day(2025, time.January, 4), "phantom", "salary", M(999, base)),
			},
			wantMain: 1000,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Balances(accounts, tc.entries, nil, base)
			if want := M(tc.wantMain, base); !findBalance(t, got, "main").Balance.Equal(want) {
				t.Errorf("main = %v, want %v", findBalance(t, got, "main").Balance, want)
			}
			if want := M(tc.wantPot, base); !findBalance(t, got, "pot").Balance.Equal(want) {
				t.Errorf("pot = %v, want %v", findBalance(t, got, "pot").Balance, want)
			}
		})
	}
}

func TestBalances_Seed(t *testing.T) {
	testCases := []struct {
		name    string
		account Account
		want    float64
	}{
		{
			name:    "checking uses the generic initial balance",
			account: Account{ID: "a", Type: Checking, Initial: M(100, base), InitialCash: M(42, base)},
			want:    100,
		},
		{
			name:    "securities prefers the cash-specific balance",
			account: Account{ID: "a", Type: Securities, Initial: M(100, base), InitialCash: M(42, base)},
			want:    42,
		},
		{
			name:    "securities falls back to the generic balance",
			account: Account{ID: "a", Type: Securities, Initial: M(100, base)},
			want:    100,
		},
		{
			name: "adjustment and savings baseline are added",
			account: Account{
				ID: "a", Type: Savings,
				Initial: M(100, base), Adjustment: M(-10, base), SavingsBase: M(25, base),
			},
			want: 115,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Balances([]Account{tc.account}, nil, nil, base)
			if want := M(tc.want, base); !got[0].Balance.Equal(want) {
				t.Errorf("seed = %v, want %v", got[0].Balance, want)
			}
		})
	}
}

func TestBalances_ForeignTransferSegregation(t *testing.T) {
	accounts := []Account{
		{ID: "main", Type: Checking, Initial: M(1000, base)},
		{ID: "broker", Type: Securities, Initial: M(0, base)},
	}
	entries := []Entry{
		NewTransfer(day(2025, time.February, 1), "main", "broker", "transfer", M(500, "USD")),
	}

	got := Balances(accounts, entries, nil, base)

	main := findBalance(t, got, "main")
	if want := M(1000, base); !main.Balance.Equal(want) {
		t.Errorf("main balance touched by foreign transfer: got %v, want %v", main.Balance, want)
	}
	if want := M(-500, "USD"); !main.USDNet.Equal(want) {
		t.Errorf("main USD net = %v, want %v", main.USDNet, want)
	}
	broker := findBalance(t, got, "broker")
	if want := M(0, base); !broker.Balance.Equal(want) {
		t.Errorf("broker balance touched by foreign transfer: got %v, want %v", broker.Balance, want)
	}
	if want := M(500, "USD"); !broker.USDNet.Equal(want) {
		t.Errorf("broker USD net = %v, want %v", broker.USDNet, want)
	}
}

func TestBalances_MixedForeignCurrencies(t *testing.T) {
	accounts := []Account{
		{ID: "main", Type: Checking, Initial: M(1000, base)},
		{ID: "broker", Type: Securities},
	}
	entries := []Entry{
		NewTransfer(day(2025, time.April, 1), "main", "broker", "transfer", M(100, "USD")),
		NewTransfer(day(2025, time.April, 2), "main", "broker", "transfer", M(50, "GBP")),
	}

	got := Balances(accounts, entries, nil, base)

	broker := findBalance(t, got, "broker")
	if want := M(100, "USD"); !broker.USDNet.Equal(want) {
		t.Errorf("broker USD net = %v, want %v", broker.USDNet, want)
	}
	main := findBalance(t, got, "main")
	if want := M(-100, "USD"); !main.USDNet.Equal(want) {
		t.Errorf("main USD net = %v, want %v", main.USDNet, want)
	}
	if want := M(1000, base); !main.Balance.Equal(want) {
		t.Errorf("main balance touched by foreign transfers: got %v, want %v", main.Balance, want)
	}

	// same multiset, reversed order
	reversed := []Entry{entries[1], entries[0]}
	again := findBalance(t, Balances(accounts, reversed, nil, base), "broker")
	if !again.USDNet.Equal(broker.USDNet) {
		t.Errorf("shuffled USD net = %v, want %v", again.USDNet, broker.USDNet)
	}
}

func TestBalances_NonUSDForeignTransfer(t *testing.T) {
	accounts := []Account{
		{ID: "main", Type: Checking},
		{ID: "broker", Type: Securities},
	}
	entries := []Entry{
		NewTransfer(day(2025, time.April, 3), "main", "broker", "transfer", M(75, "GBP")),
	}

	got := Balances(accounts, entries, nil, base)
	if want := M(75, "GBP"); !findBalance(t, got, "broker").USDNet.Equal(want) {
		t.Errorf("broker net = %v, want %v", findBalance(t, got, "broker").USDNet, want)
	}
}

func TestBalances_TradeCashLeg(t *testing.T) {
	accounts := []Account{
		{ID: "broker", Type: Securities, InitialCash: M(10000, base)},
		{ID: "main", Type: Checking, Initial: M(1000, base)},
	}
	trades := []Trade{
		// base-currency trade hits the account's cash
		NewBuy(day(2025, time.March, 3), "broker", "ASML", Q(10), M(600, base), M(5, base)),
		// foreign instrument in a securities account is skipped entirely
		NewBuy(day(2025, time.March, 4), "broker", "AAPL", Q(10), M(150, "USD"), M(0, "USD")),
		// unknown account is ignored
		NewSell(day(2025, time.March, 5), "ghost", "ASML", Q(1), M(700, base), M(0, base)),
	}

	got := Balances(accounts, nil, trades, base)
	if want := M(10000-6005, base); !findBalance(t, got, "broker").Balance.Equal(want) {
		t.Errorf("broker = %v, want %v", findBalance(t, got, "broker").Balance, want)
	}
}

func TestBalances_OrderIndependence(t *testing.T) {
	accounts := []Account{
		{ID: "main", Type: Checking, Initial: M(500, base)},
		{ID: "pot", Type: Savings, SavingsBase: M(50, base)},
	}
	entries := []Entry{
		NewIncome(day(2025, time.January, 25), "main", "salary", M(2500, base)),
		NewExpense(day(2025, time.February, 5), "main", "rent", M(800, base)),
		NewTransfer(day(2025, time.February, 6), "main", "pot", "transfer", M(300, base)),
		NewExpense(day(2025, time.March, 1), "main", "groceries", M(120.55, base)),
	}
	trades := []Trade{
		NewBuy(day(2025, time.February, 10), "main", "FND", Q(2), M(100, base), M(1, base)),
		NewSell(day(2025, time.March, 12), "main", "FND", Q(1), M(110, base), M(1, base)),
	}

	want := Balances(accounts, entries, trades, base)

	// same multiset, reversed order
	reversedEntries := make([]Entry, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		reversedEntries = append(reversedEntries, entries[i])
	}
	reversedTrades := []Trade{trades[1], trades[0]}

	got := Balances(accounts, reversedEntries, reversedTrades, base)
	for i := range want {
		if !got[i].Balance.Equal(want[i].Balance) || !got[i].USDNet.Equal(want[i].USDNet) {
			t.Errorf("account %q: shuffled result %v/%v, want %v/%v",
				want[i].Account.ID, got[i].Balance, got[i].USDNet, want[i].Balance, want[i].USDNet)
		}
	}
}

func TestBalances_Idempotence(t *testing.T) {
	accounts := []Account{{ID: "main", Type: Checking, Initial: M(500, base)}}
	entries := []Entry{
		NewIncome(day(2025, time.January, 25), "main", "salary", M(2500, base)),
		NewExpense(day(2025, time.February, 5), "main", "rent", M(800, base)),
	}

	first := Balances(accounts, entries, nil, base)
	second := Balances(accounts, entries, nil, base)
	for i := range first {
		if !first[i].Balance.Equal(second[i].Balance) {
			t.Errorf("account %q: second call %v, first call %v",
				first[i].Account.ID, second[i].Balance, first[i].Balance)
		}
	}
}
