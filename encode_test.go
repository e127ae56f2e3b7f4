package household

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestEncodeDecodeEntries(t *testing.T) {
	transfer := NewTransfer(day(2025, time.March, 3), "main", "pot", "savings", M(200, base))
	entries := []Entry{
		NewIncome(day(2025, time.March, 1), "main", "salary", M(2500, base)),
		NewExpense(day(2025, time.March, 2), "main", "groceries", M(42.5, base)),
		transfer,
	}

	var buf bytes.Buffer
	if err := EncodeEntries(&buf, entries...); err != nil {
		t.Fatalf("EncodeEntries() error: %v", err)
	}

	got, err := DecodeEntries(&buf)
	if err != nil {
		t.Fatalf("DecodeEntries() error: %v", err)
	}
	if len(got) != len(entries) {
		t.Fatalf("DecodeEntries() returned %d entries, want %d", len(got), len(entries))
	}
	for i, e := range got {
		if e.Kind() != entries[i].Kind() {
			t.Errorf("entry %d kind = %s, want %s", i, e.Kind(), entries[i].Kind())
		}
		if e.When() != entries[i].When() {
			t.Errorf("entry %d date = %s, want %s", i, e.When(), entries[i].When())
		}
		if !e.Value().Equal(entries[i].Value()) {
			t.Errorf("entry %d amount = %s, want %s", i, e.Value(), entries[i].Value())
		}
	}
	if tr, ok := got[2].(Transfer); !ok {
		t.Errorf("entry 2 is %T, want Transfer", got[2])
	} else if tr.From != transfer.From || tr.To != transfer.To {
		t.Errorf("transfer accounts = (%q, %q), want (%q, %q)", tr.From, tr.To, transfer.From, transfer.To)
	}
}

func TestDecodeEntries_Errors(t *testing.T) {
	if _, err := DecodeEntries(strings.NewReader(`{"kind":"teleport","date":"2025-03-01"}` + "\n")); err == nil {
		t.Error("DecodeEntries() accepted an unknown kind")
	}
	if _, err := DecodeEntries(strings.NewReader("not json\n")); err == nil {
		t.Error("DecodeEntries() accepted malformed input")
	}
}

func TestDecodeEntries_SkipsEmptyLines(t *testing.T) {
	in := `{"kind":"income","date":"2025-03-01","category":"salary","amount":100,"to":"main"}` + "\n\n"
	got, err := DecodeEntries(strings.NewReader(in))
	if err != nil {
		t.Fatalf("DecodeEntries() error: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("DecodeEntries() returned %d entries, want 1", len(got))
	}
}

func TestEncodeDecodeTrades(t *testing.T) {
	trades := []Trade{
		NewBuy(day(2025, time.January, 10), "broker", "ACME", Q(10), M(100, base), M(5, base)),
		NewSell(day(2025, time.February, 12), "broker", "ACME", Q(4), M(120, base), M(5, base)),
	}

	var buf bytes.Buffer
	if err := EncodeTrades(&buf, trades...); err != nil {
		t.Fatalf("EncodeTrades() error: %v", err)
	}

	got, err := DecodeTrades(&buf)
	if err != nil {
		t.Fatalf("DecodeTrades() error: %v", err)
	}
	if len(got) != len(trades) {
		t.Fatalf("DecodeTrades() returned %d trades, want %d", len(got), len(trades))
	}
	for i, tr := range got {
		if tr.Side != trades[i].Side || !tr.Quantity.Equal(trades[i].Quantity) {
			t.Errorf("trade %d = %v, want %v", i, tr, trades[i])
		}
		if !tr.CashImpact.Equal(trades[i].CashImpact) {
			t.Errorf("trade %d cash impact = %s, want %s", i, tr.CashImpact, trades[i].CashImpact)
		}
	}
}

func TestDecodeTrades_DefaultCashImpact(t *testing.T) {
	in := `{"date":"2025-01-10","account":"broker","ticker":"ACME","side":"buy","quantity":10,"amount":1005}` + "\n" +
		`{"date":"2025-02-12","account":"broker","ticker":"ACME","side":"sell","quantity":4,"amount":475}` + "\n"

	got, err := DecodeTrades(strings.NewReader(in))
	if err != nil {
		t.Fatalf("DecodeTrades() error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("DecodeTrades() returned %d trades, want 2", len(got))
	}
	if want := M(-1005, ""); !got[0].CashImpact.Equal(want) {
		t.Errorf("buy cash impact = %s, want %s", got[0].CashImpact, want)
	}
	if want := M(475, ""); !got[1].CashImpact.Equal(want) {
		t.Errorf("sell cash impact = %s, want %s", got[1].CashImpact, want)
	}
}

func TestDecodeAccounts(t *testing.T) {
	in := `{"id":"main","name":"Main","type":"checking","initial":1000}` + "\n" +
		`{"id":"broker","type":"securities","initialCash":250,"usdBalance":100,"debt":-500}` + "\n"

	got, err := DecodeAccounts(strings.NewReader(in), base)
	if err != nil {
		t.Fatalf("DecodeAccounts() error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("DecodeAccounts() returned %d accounts, want 2", len(got))
	}
	if got[0].Type != Checking || !got[0].Initial.Equal(M(1000, base)) {
		t.Errorf("account 0 = %+v", got[0])
	}
	if got[1].Type != Securities || !got[1].InitialCash.Equal(M(250, base)) {
		t.Errorf("account 1 = %+v", got[1])
	}
	if want := M(100, "USD"); !got[1].USDBalance.Equal(want) {
		t.Errorf("usd balance = %s, want %s", got[1].USDBalance, want)
	}
}

func TestEncodeDecodeQuotes(t *testing.T) {
	quotes := []Quote{
		{Ticker: "ACME", Name: "Acme Corp", Last: M(123.45, base), Updated: day(2025, time.March, 7)},
		{Ticker: "GLOB", Last: M(10, "USD")},
	}

	var buf bytes.Buffer
	if err := EncodeQuotes(&buf, quotes...); err != nil {
		t.Fatalf("EncodeQuotes() error: %v", err)
	}

	got, err := DecodeQuotes(&buf)
	if err != nil {
		t.Fatalf("DecodeQuotes() error: %v", err)
	}
	q, ok := got.Last("ACME")
	if !ok {
		t.Fatal("decoded prices are missing ACME")
	}
	if !q.Last.Equal(M(123.45, base)) || q.Updated != day(2025, time.March, 7) {
		t.Errorf("ACME quote = %+v", q)
	}
	if _, ok := got.Last("GLOB"); !ok {
		t.Error("decoded prices are missing GLOB")
	}
}

func TestEncodeDecodeRecurrings(t *testing.T) {
	templates := []Recurring{
		{
			Title: "Rent", Amount: M(800, base), Category: "housing",
			Freq: Monthly, Start: day(2024, time.January, 31), From: "main",
		},
		{
			Title: "Savings plan", Amount: M(200, base), Category: "savings",
			Freq: Weekly, Start: day(2024, time.June, 4), End: day(2026, time.June, 4),
			From: "main", To: "pot",
		},
	}

	var buf bytes.Buffer
	if err := EncodeRecurrings(&buf, templates...); err != nil {
		t.Fatalf("EncodeRecurrings() error: %v", err)
	}

	got, err := DecodeRecurrings(&buf)
	if err != nil {
		t.Fatalf("DecodeRecurrings() error: %v", err)
	}
	if len(got) != len(templates) {
		t.Fatalf("DecodeRecurrings() returned %d templates, want %d", len(got), len(templates))
	}
	for i, r := range got {
		if r.Freq != templates[i].Freq || r.Start != templates[i].Start || r.End != templates[i].End {
			t.Errorf("template %d = %+v, want %+v", i, r, templates[i])
		}
		if !r.Amount.Equal(templates[i].Amount) {
			t.Errorf("template %d amount = %s, want %s", i, r.Amount, templates[i].Amount)
		}
	}
}

func TestDecodePresets(t *testing.T) {
	in := `{"fixed":["housing"],"savings":["savings","retirement"],"pureTransfer":"move"}`
	got, err := DecodePresets(strings.NewReader(in))
	if err != nil {
		t.Fatalf("DecodePresets() error: %v", err)
	}
	if len(got.Fixed) != 1 || len(got.Savings) != 2 || got.PureTransfer != "move" {
		t.Errorf("DecodePresets() = %+v", got)
	}

	// an empty stream means no presets, not an error
	empty, err := DecodePresets(strings.NewReader(""))
	if err != nil {
		t.Fatalf("DecodePresets() on empty input error: %v", err)
	}
	if len(empty.Fixed) != 0 || len(empty.Savings) != 0 {
		t.Errorf("DecodePresets() on empty input = %+v", empty)
	}
}
