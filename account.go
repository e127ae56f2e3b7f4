package household

import (
	"encoding/json"
	"fmt"
)

// AccountType classifies an account for replay and reporting.
type AccountType int

const (
	Checking AccountType = iota
	Savings
	Securities
	Other
)

func (t AccountType) String() string {
	switch t {
	case Checking:
		return "checking"
	case Savings:
		return "savings"
	case Securities:
		return "securities"
	case Other:
		return "other"
	default:
		return "unknown"
	}
}

// ParseAccountType parses a string into an AccountType.
func ParseAccountType(s string) (AccountType, error) {
	switch s {
	case "checking":
		return Checking, nil
	case "savings":
		return Savings, nil
	case "securities":
		return Securities, nil
	case "other", "":
		return Other, nil
	default:
		return 0, fmt.Errorf("unknown account type: %q", s)
	}
}

// MarshalJSON implements the json.Marshaler interface for AccountType.
func (t AccountType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface for AccountType.
func (t *AccountType) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	parsed, err := ParseAccountType(str)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Account is one household account: a bank account, a savings pot, or a
// brokerage cash account. All its monetary fields are in the base currency
// except USDBalance.
type Account struct {
	ID          string
	Name        string
	Institution string
	Type        AccountType
	Initial     Money // opening balance
	InitialCash Money // securities accounts: opening cash leg, distinct from Initial
	USDBalance  Money // foreign cash held next to the base cash
	Adjustment  Money // manual cash adjustment
	SavingsBase Money // savings baseline amount
	Debt        Money // signed, folded directly into net worth
}

// seed computes the opening balance the replay starts from: the
// account-type-specific initial balance plus the manual adjustment and the
// savings baseline.
func (a Account) seed() Money {
	opening := a.Initial
	if a.Type == Securities && !a.InitialCash.IsZero() {
		opening = a.InitialCash
	}
	return opening.Add(a.Adjustment).Add(a.SavingsBase)
}

// IndexAccounts builds a lookup by account id. Later duplicates are ignored,
// duplicate detection is an audit feature, not a replay concern.
func IndexAccounts(accounts []Account) map[string]Account {
	idx := make(map[string]Account, len(accounts))
	for _, a := range accounts {
		if _, ok := idx[a.ID]; ok {
			continue
		}
		idx[a.ID] = a
	}
	return idx
}
