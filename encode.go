package household

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// The persistence collaborator speaks JSONL: one record per line, stable
// field order, human-readable and git-friendly. Optional fields default on
// read: a missing amount is zero, a missing currency is the base currency
// (represented by the empty tag).

// jsonEntry is a specialized struct holding every possible entry field for
// decoding; the kind discriminator selects which ones are meaningful.
type jsonEntry struct {
	Kind        EntryKind       `json:"kind"`
	ID          string          `json:"id"`
	Date        Date            `json:"date"`
	Category    string          `json:"category"`
	SubCategory string          `json:"subCategory"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	Fixed       bool            `json:"fixed"`
	Note        string          `json:"note"`
	From        string          `json:"from"`
	To          string          `json:"to"`
}

func (j jsonEntry) base() entryBase {
	return entryBase{
		ID:          j.ID,
		Date:        j.Date,
		Category:    j.Category,
		SubCategory: j.SubCategory,
		Description: j.Description,
		Amount:      M(j.Amount, j.Currency),
		Fixed:       j.Fixed,
		Note:        j.Note,
	}
}

// DecodeEntries decodes ledger entries from a stream of JSONL data,
// decoding each line into the appropriate entry variant.
func DecodeEntries(r io.Reader) ([]Entry, error) {
	var entries []Entry
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue // Skip empty lines
		}

		var temp jsonEntry
		if err := json.Unmarshal(line, &temp); err != nil {
			return nil, fmt.Errorf("format error in ledger line %q: %w", string(line), err)
		}

		switch temp.Kind {
		case KindIncome:
			entries = append(entries, Income{entryBase: temp.base(), To: temp.To})
		case KindExpense:
			entries = append(entries, Expense{entryBase: temp.base(), From: temp.From, To: temp.To})
		case KindTransfer:
			entries = append(entries, Transfer{
				entryBase: temp.base(),
				From:      temp.From, To: temp.To,
				Currency: temp.Currency,
			})
		default:
			return nil, fmt.Errorf("unknown entry kind %q in line %q", temp.Kind, string(line))
		}
	}
	return entries, scanner.Err()
}

// EncodeEntries writes entries as JSONL, one per line.
func EncodeEntries(w io.Writer, entries ...Entry) error {
	for _, e := range entries {
		data, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("could not marshal %s entry on %s: %w", e.Kind(), e.When(), err)
		}
		if _, err := fmt.Fprintf(w, "%s\n", data); err != nil {
			return err
		}
	}
	return nil
}

// jsonTrade is the decode-side shape of a trade record.
type jsonTrade struct {
	ID         string          `json:"id"`
	Date       Date            `json:"date"`
	Account    string          `json:"account"`
	Ticker     string          `json:"ticker"`
	Name       string          `json:"name"`
	Side       Side            `json:"side"`
	Quantity   Quantity        `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
	Fee        decimal.Decimal `json:"fee"`
	Amount     decimal.Decimal `json:"amount"`
	CashImpact decimal.Decimal `json:"cashImpact"`
	Currency   string          `json:"currency"`
}

// DecodeTrades decodes trade records from a stream of JSONL data. A missing
// cash impact is derived from the side and amount.
func DecodeTrades(r io.Reader) ([]Trade, error) {
	var trades []Trade
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var temp jsonTrade
		if err := json.Unmarshal(line, &temp); err != nil {
			return nil, fmt.Errorf("format error in trades line %q: %w", string(line), err)
		}
		t := Trade{
			ID:         temp.ID,
			Date:       temp.Date,
			Account:    temp.Account,
			Ticker:     temp.Ticker,
			Name:       temp.Name,
			Side:       temp.Side,
			Quantity:   temp.Quantity,
			Price:      M(temp.Price, temp.Currency),
			Fee:        M(temp.Fee, temp.Currency),
			Amount:     M(temp.Amount, temp.Currency),
			CashImpact: M(temp.CashImpact, temp.Currency),
			Currency:   temp.Currency,
		}
		if t.CashImpact.IsZero() && !t.Amount.IsZero() {
			if t.Side == Buy {
				t.CashImpact = t.Amount.Neg()
			} else {
				t.CashImpact = t.Amount
			}
		}
		trades = append(trades, t)
	}
	return trades, scanner.Err()
}

// EncodeTrades writes trades as JSONL, one per line.
func EncodeTrades(w io.Writer, trades ...Trade) error {
	for _, t := range trades {
		data, err := json.Marshal(t)
		if err != nil {
			return fmt.Errorf("could not marshal trade %s %s: %w", t.Ticker, t.Date, err)
		}
		if _, err := fmt.Fprintf(w, "%s\n", data); err != nil {
			return err
		}
	}
	return nil
}

// jsonAccount is the decode-side shape of an account record.
type jsonAccount struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Institution string          `json:"institution"`
	Type        AccountType     `json:"type"`
	Initial     decimal.Decimal `json:"initial"`
	InitialCash decimal.Decimal `json:"initialCash"`
	USDBalance  decimal.Decimal `json:"usdBalance"`
	Adjustment  decimal.Decimal `json:"adjustment"`
	SavingsBase decimal.Decimal `json:"savingsBase"`
	Debt        decimal.Decimal `json:"debt"`
}

// DecodeAccounts decodes account records from a stream of JSONL data.
// Balances are in the base currency; the USD balance is tagged USD.
func DecodeAccounts(r io.Reader, base string) ([]Account, error) {
	var accounts []Account
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var temp jsonAccount
		if err := json.Unmarshal(line, &temp); err != nil {
			return nil, fmt.Errorf("format error in accounts line %q: %w", string(line), err)
		}
		accounts = append(accounts, Account{
			ID:          temp.ID,
			Name:        temp.Name,
			Institution: temp.Institution,
			Type:        temp.Type,
			Initial:     M(temp.Initial, base),
			InitialCash: M(temp.InitialCash, base),
			USDBalance:  M(temp.USDBalance, "USD"),
			Adjustment:  M(temp.Adjustment, base),
			SavingsBase: M(temp.SavingsBase, base),
			Debt:        M(temp.Debt, base),
		})
	}
	return accounts, scanner.Err()
}

// EncodeAccounts writes accounts as JSONL, one per line.
func EncodeAccounts(w io.Writer, accounts ...Account) error {
	for _, a := range accounts {
		var obj jsonObjectWriter
		obj.Append("id", a.ID)
		obj.Optional("name", a.Name)
		obj.Optional("institution", a.Institution)
		obj.Append("type", a.Type)
		obj.Optional("initial", a.Initial.value)
		obj.Optional("initialCash", a.InitialCash.value)
		obj.Optional("usdBalance", a.USDBalance.value)
		obj.Optional("adjustment", a.Adjustment.value)
		obj.Optional("savingsBase", a.SavingsBase.value)
		obj.Optional("debt", a.Debt.value)
		data, err := obj.MarshalJSON()
		if err != nil {
			return fmt.Errorf("could not marshal account %q: %w", a.ID, err)
		}
		if _, err := fmt.Fprintf(w, "%s\n", data); err != nil {
			return err
		}
	}
	return nil
}

// jsonQuote is the decode-side shape of a price record.
type jsonQuote struct {
	Ticker    string          `json:"ticker"`
	Name      string          `json:"name"`
	Last      decimal.Decimal `json:"last"`
	Currency  string          `json:"currency"`
	Change    decimal.Decimal `json:"change"`
	ChangePct Quantity        `json:"changePct"`
	Updated   Date            `json:"updated"`
}

// DecodeQuotes decodes price records from a stream of JSONL data.
func DecodeQuotes(r io.Reader) (*Prices, error) {
	prices := NewPrices()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var temp jsonQuote
		if err := json.Unmarshal(line, &temp); err != nil {
			return nil, fmt.Errorf("format error in prices line %q: %w", string(line), err)
		}
		prices.Add(Quote{
			Ticker:    temp.Ticker,
			Name:      temp.Name,
			Last:      M(temp.Last, temp.Currency),
			Change:    M(temp.Change, temp.Currency),
			ChangePct: temp.ChangePct,
			Updated:   temp.Updated,
		})
	}
	return prices, scanner.Err()
}

// EncodeQuotes writes quotes as JSONL, one per line.
func EncodeQuotes(w io.Writer, quotes ...Quote) error {
	for _, q := range quotes {
		data, err := json.Marshal(q)
		if err != nil {
			return fmt.Errorf("could not marshal quote %q: %w", q.Ticker, err)
		}
		if _, err := fmt.Fprintf(w, "%s\n", data); err != nil {
			return err
		}
	}
	return nil
}

// jsonRecurring is the decode-side shape of a recurring template.
type jsonRecurring struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
	Category string          `json:"category"`
	Freq     Frequency       `json:"frequency"`
	Start    Date            `json:"start"`
	End      Date            `json:"end"`
	From     string          `json:"from"`
	To       string          `json:"to"`
}

// DecodeRecurrings decodes recurring templates from a stream of JSONL data.
func DecodeRecurrings(r io.Reader) ([]Recurring, error) {
	var templates []Recurring
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var temp jsonRecurring
		if err := json.Unmarshal(line, &temp); err != nil {
			return nil, fmt.Errorf("format error in recurring line %q: %w", string(line), err)
		}
		templates = append(templates, Recurring{
			ID:       temp.ID,
			Title:    temp.Title,
			Amount:   M(temp.Amount, temp.Currency),
			Category: temp.Category,
			Freq:     temp.Freq,
			Start:    temp.Start,
			End:      temp.End,
			From:     temp.From,
			To:       temp.To,
		})
	}
	return templates, scanner.Err()
}

// EncodeRecurrings writes recurring templates as JSONL, one per line.
func EncodeRecurrings(w io.Writer, templates ...Recurring) error {
	for _, t := range templates {
		data, err := json.Marshal(t)
		if err != nil {
			return fmt.Errorf("could not marshal recurring %q: %w", t.Title, err)
		}
		if _, err := fmt.Fprintf(w, "%s\n", data); err != nil {
			return err
		}
	}
	return nil
}

// DecodePresets decodes the category presets from a single JSON object.
func DecodePresets(r io.Reader) (Presets, error) {
	var p Presets
	dec := json.NewDecoder(r)
	if err := dec.Decode(&p); err != nil {
		if err == io.EOF {
			return Presets{}, nil // an empty file means no presets
		}
		return Presets{}, fmt.Errorf("format error in presets: %w", err)
	}
	return p, nil
}
