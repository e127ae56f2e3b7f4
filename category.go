package household

import "slices"

// Presets is the user-configurable category table: which labels count as
// fixed costs, which as savings-like, and which single label marks a pure
// transfer that must never be classified as savings.
type Presets struct {
	Fixed        []string `json:"fixed,omitempty"`
	Savings      []string `json:"savings,omitempty"`
	PureTransfer string   `json:"pureTransfer,omitempty"`
}

// CategoryType is the spending classification of a ledger entry.
type CategoryType int

const (
	CategoryVariable CategoryType = iota
	CategoryFixed
	CategorySavings
)

func (t CategoryType) String() string {
	switch t {
	case CategoryVariable:
		return "variable"
	case CategoryFixed:
		return "fixed"
	case CategorySavings:
		return "savings"
	default:
		return "unknown"
	}
}

// IsSavingsExpense reports whether an entry funds savings: either its
// category is configured as savings-like, or it is a transfer into an
// account of type savings or securities. The configured pure-transfer
// label is always excluded, regardless of the destination account type.
//
// Pure function: identical inputs always give identical output.
func IsSavingsExpense(e Entry, accounts map[string]Account, presets Presets) bool {
	category, _ := e.Labels()
	if category != "" && category == presets.PureTransfer {
		return false
	}
	if slices.Contains(presets.Savings, category) {
		return true
	}
	if t, ok := e.(Transfer); ok {
		if acc, ok := accounts[t.To]; ok && (acc.Type == Savings || acc.Type == Securities) {
			return true
		}
	}
	return false
}

// TypeOf classifies an entry as fixed, variable or savings by table lookup
// against the presets, falling back to variable.
func TypeOf(e Entry, accounts map[string]Account, presets Presets) CategoryType {
	if IsSavingsExpense(e, accounts, presets) {
		return CategorySavings
	}
	category, _ := e.Labels()
	if e.IsFixed() || slices.Contains(presets.Fixed, category) {
		return CategoryFixed
	}
	return CategoryVariable
}
