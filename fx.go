package household

import "github.com/shopspring/decimal"

// Rate is an externally supplied exchange rate: how many units of the base
// currency one unit of the foreign currency is worth. The zero value means
// no rate is available.
//
// Rates are never fetched here. A momentarily unavailable rate must not
// blank the rest of the computation, so Convert degrades to returning the
// amount unconverted instead of failing.
type Rate struct {
	value   decimal.Decimal
	foreign string
	base    string
}

// NewRate returns a rate worth value units of base per one unit of foreign.
func NewRate[T float32 | float64 | int | int64 | decimal.Decimal](value T, foreign, base string) Rate {
	return Rate{value: newDecimal(value), foreign: foreign, base: base}
}

// IsZero returns true when no rate is available.
func (r Rate) IsZero() bool { return r.value.IsZero() }

// Base returns the base currency of the rate, or "" for the zero rate.
func (r Rate) Base() string { return r.base }

// Convert normalizes an amount to the base currency. Amounts already in the
// base currency (or carrying no currency tag) pass through unchanged. When
// the rate is missing or does not cover the amount's currency, the amount is
// returned unconverted.
func (r Rate) Convert(m Money) Money {
	if m.cur == "" || m.cur == r.base {
		return m
	}
	if r.value.IsZero() || m.cur != r.foreign {
		return m
	}
	return M(m.value.Mul(r.value), r.base)
}
