package household

import (
	"encoding/json"
	"fmt"
)

// Frequency is the cadence of a recurring expense template.
type Frequency int

const (
	Weekly Frequency = iota
	Monthly
	Yearly
)

func (f Frequency) String() string {
	switch f {
	case Weekly:
		return "weekly"
	case Monthly:
		return "monthly"
	case Yearly:
		return "yearly"
	default:
		return "unknown"
	}
}

// ParseFrequency parses a string into a Frequency.
func ParseFrequency(s string) (Frequency, error) {
	switch s {
	case "weekly":
		return Weekly, nil
	case "monthly", "":
		return Monthly, nil
	case "yearly":
		return Yearly, nil
	default:
		return 0, fmt.Errorf("unknown frequency: %q", s)
	}
}

// MarshalJSON implements the json.Marshaler interface for Frequency.
func (f Frequency) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface for Frequency.
func (f *Frequency) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	parsed, err := ParseFrequency(str)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// Recurring is a template for a regularly repeating expense or transfer.
// A zero End means open-ended.
type Recurring struct {
	ID       string
	Title    string
	Amount   Money
	Category string
	Freq     Frequency
	Start    Date
	End      Date
	From     string
	To       string
}

// MarshalJSON implements the json.Marshaler interface for Recurring.
func (r Recurring) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Optional("id", r.ID)
	w.Append("title", r.Title)
	w.Append("amount", r.Amount.value)
	w.Optional("currency", r.Amount.cur)
	w.Optional("category", r.Category)
	w.Append("frequency", r.Freq)
	w.Append("start", r.Start)
	w.Optional("end", r.End)
	w.Optional("from", r.From)
	w.Optional("to", r.To)
	return w.MarshalJSON()
}

// dedupKey identifies an entry for duplicate suppression: two entries with
// the same date, category, sub-category, amount and accounts are the same
// occurrence. The amount is keyed by its canonical decimal string because
// decimal values are not comparable.
type dedupKey struct {
	date     Date
	category string
	sub      string
	amount   string
	from     string
	to       string
}

func keyOf(e Entry) dedupKey {
	category, sub := e.Labels()
	from, to := entryAccounts(e)
	return dedupKey{
		date:     e.When(),
		category: category,
		sub:      sub,
		amount:   e.Value().value.String(),
		from:     from,
		to:       to,
	}
}

// occurrences computes the concrete dates a template lands on inside the
// target month, honoring the template's start/end bounds. Monthly and
// yearly templates anchor on the start date's day of month, clamped into
// shorter months; weekly templates step every 7 days from the start date.
func (r Recurring) occurrences(month Month) []Date {
	var dates []Date
	inBounds := func(on Date) bool {
		return !on.Before(r.Start) && (r.End.IsZero() || !on.After(r.End))
	}
	switch r.Freq {
	case Monthly:
		on := month.Clamped(r.Start.Day())
		if inBounds(on) {
			dates = append(dates, on)
		}
	case Yearly:
		if r.Start.Month() == month.Month() {
			on := month.Clamped(r.Start.Day())
			if inBounds(on) {
				dates = append(dates, on)
			}
		}
	case Weekly:
		first, last := month.First(), month.Last()
		for on := r.Start; !on.After(last); on = on.Add(7) {
			if on.Before(first) {
				continue
			}
			if !inBounds(on) {
				break
			}
			dates = append(dates, on)
		}
	}
	return dates
}

// candidate materializes one occurrence as a ledger entry: a transfer when
// the template has a destination account, an expense otherwise, tagged as a
// fixed expense either way.
func (r Recurring) candidate(on Date) Entry {
	base := entryBase{
		Date:        on,
		Category:    r.Category,
		Description: r.Title,
		Amount:      r.Amount,
		Fixed:       true,
	}
	if r.To != "" {
		return Transfer{entryBase: base, From: r.From, To: r.To, Currency: r.Amount.cur}
	}
	return Expense{entryBase: base, From: r.From}
}

// Expand expands recurring templates into concrete ledger entries for the
// target month, suppressing candidates that already exist in the given
// ledger snapshot. Re-expanding an already applied month therefore yields
// nothing. A zero month yields nothing.
//
// Templates without a start date or with a non-positive amount are skipped;
// so are templates whose end date precedes the month.
func Expand(templates []Recurring, month Month, existing []Entry) []Entry {
	if month.IsZero() {
		return nil
	}

	seen := make(map[dedupKey]struct{})
	for _, e := range existing {
		if month.Contains(e.When()) {
			seen[keyOf(e)] = struct{}{}
		}
	}

	var out []Entry
	for _, t := range templates {
		if t.Start.IsZero() || !t.Amount.IsPositive() {
			continue
		}
		if !t.End.IsZero() && t.End.Before(month.First()) {
			continue
		}
		for _, on := range t.occurrences(month) {
			e := t.candidate(on)
			k := keyOf(e)
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			out = append(out, e)
		}
	}
	return out
}
