package household

import "sort"

// AccountBalance is the replayed cash state of one account.
type AccountBalance struct {
	Account Account
	Balance Money // current balance in the base currency
	USDNet  Money // net of foreign-tagged transfers, kept segregated
}

// replayState accumulates per-account running totals during a replay.
// It is rebuilt from scratch on every invocation and never survives a call.
type replayState struct {
	idx    map[string]Account
	totals map[string]Money            // base-currency cash
	usd    map[string]map[string]Money // foreign transfer net, per currency tag
	base   string
}

// newReplayState seeds every account's running total with its opening
// balance: the securities-specific cash balance when present, otherwise the
// generic initial balance, plus manual adjustment and savings baseline.
func newReplayState(accounts []Account, base string) *replayState {
	s := &replayState{
		idx:    IndexAccounts(accounts),
		totals: make(map[string]Money, len(accounts)),
		usd:    make(map[string]map[string]Money, len(accounts)),
		base:   base,
	}
	for _, a := range accounts {
		s.totals[a.ID] = M(0, base).Add(a.seed())
	}
	return s
}

// credit and debit re-tag amounts into the base currency: whatever currency
// tag an entry carries, only the foreign-transfer path may escape the
// base-currency totals.

func (s *replayState) credit(account string, amount Money) {
	if _, ok := s.totals[account]; !ok {
		return // unknown account references are ignored, not errors
	}
	s.totals[account] = s.totals[account].Add(M(amount.value, s.base))
}

func (s *replayState) debit(account string, amount Money) {
	if _, ok := s.totals[account]; !ok {
		return
	}
	s.totals[account] = s.totals[account].Sub(M(amount.value, s.base))
}

// apply adds one ledger entry's effect to the running totals. The effect is
// keyed on the entry kind; a foreign-tagged transfer never touches the
// base-currency totals and goes to the segregated USD accumulator instead.
func (s *replayState) apply(e Entry) {
	switch v := e.(type) {
	case Income:
		s.credit(v.To, v.Amount)
	case Expense:
		s.debit(v.From, v.Amount)
		if v.To != "" {
			// a savings-like expense simultaneously funds its destination
			s.credit(v.To, v.Amount)
		}
	case Transfer:
		if v.Currency != "" && v.Currency != s.base {
			s.foreign(v.From, v.Amount.Neg())
			s.foreign(v.To, v.Amount)
			return
		}
		s.debit(v.From, v.Amount)
		s.credit(v.To, v.Amount)
	}
}

// foreign folds a foreign-tagged transfer leg into an account's segregated
// accumulator. Nets are kept per currency tag so one transfer with an odd
// tag can never corrupt or crash the rest of the replay.
func (s *replayState) foreign(account string, amount Money) {
	if _, ok := s.idx[account]; !ok {
		return
	}
	per := s.usd[account]
	if per == nil {
		per = make(map[string]Money)
		s.usd[account] = per
	}
	per[amount.Currency()] = per[amount.Currency()].Add(amount)
}

// usdNet picks the account's foreign net to surface. "USD" wins when
// several currency tags were seen, then the lowest code, so the result
// never depends on input order.
func (s *replayState) usdNet(account string) Money {
	per := s.usd[account]
	if len(per) == 0 {
		return Money{}
	}
	if net, ok := per["USD"]; ok {
		return net
	}
	codes := make([]string, 0, len(per))
	for c := range per {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	return per[codes[0]]
}

// applyTrade adds a trade's signed cash impact to its account. The cash leg
// of a foreign-currency instrument inside a securities account is tracked
// only through the USD transfer net and the account's own USD balance, so
// it is skipped here.
func (s *replayState) applyTrade(t Trade) {
	acc, ok := s.idx[t.Account]
	if !ok {
		return
	}
	if acc.Type == Securities && t.Currency != "" && t.Currency != s.base {
		return
	}
	s.totals[t.Account] = s.totals[t.Account].Add(M(t.CashImpact.value, s.base))
}

// balances materializes one AccountBalance per account, in input order.
func (s *replayState) balances(accounts []Account) []AccountBalance {
	out := make([]AccountBalance, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, AccountBalance{
			Account: a,
			Balance: s.totals[a.ID],
			USDNet:  s.usdNet(a.ID),
		})
	}
	return out
}

// Balances derives every account's current cash balance from the full
// ledger and trade history. Pure summation over unordered inputs: the
// result is independent of the order of entries and trades, and identical
// inputs always produce identical output.
func Balances(accounts []Account, entries []Entry, trades []Trade, base string) []AccountBalance {
	state := newReplayState(accounts, base)
	for _, e := range entries {
		state.apply(e)
	}
	for _, t := range trades {
		state.applyTrade(t)
	}
	return state.balances(accounts)
}
