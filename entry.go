package household

// EntryKind is a typed string identifying a ledger entry variant.
type EntryKind string

// Entry kinds used as the JSONL discriminator.
const (
	KindIncome   EntryKind = "income"
	KindExpense  EntryKind = "expense"
	KindTransfer EntryKind = "transfer"
)

// Entry is one ledger record. It is a tagged union: the concrete type
// (Income, Expense, Transfer) determines which account fields are
// meaningful, making invalid field combinations unrepresentable.
//
// Amounts are always non-negative; the kind implies the direction.
type Entry interface {
	Kind() EntryKind
	When() Date
	Ref() string
	Value() Money
	Labels() (category, sub string)
	IsFixed() bool
}

// entryBase carries the fields shared by every entry variant.
type entryBase struct {
	ID          string
	Date        Date
	Category    string
	SubCategory string
	Description string
	Amount      Money
	Fixed       bool // marks a fixed (as opposed to variable) expense
	Note        string
}

func (e entryBase) When() Date                     { return e.Date }
func (e entryBase) Ref() string                    { return e.ID }
func (e entryBase) Value() Money                   { return e.Amount }
func (e entryBase) Labels() (category, sub string) { return e.Category, e.SubCategory }
func (e entryBase) IsFixed() bool                  { return e.Fixed }

// Income credits a destination account.
type Income struct {
	entryBase
	To string
}

func (Income) Kind() EntryKind { return KindIncome }

// NewIncome records an income of amount into the account to.
func NewIncome(on Date, to, category string, amount Money) Income {
	return Income{entryBase: entryBase{Date: on, Category: category, Amount: amount}, To: to}
}

// Expense debits a source account. A set destination marks a savings-like
// expense that simultaneously funds that account.
type Expense struct {
	entryBase
	From string
	To   string
}

func (Expense) Kind() EntryKind { return KindExpense }

// NewExpense records an expense of amount from the account from.
func NewExpense(on Date, from, category string, amount Money) Expense {
	return Expense{entryBase: entryBase{Date: on, Category: category, Amount: amount}, From: from}
}

// Transfer moves an amount between two accounts. A non-empty Currency tags
// the moved amount as foreign; its cash leg is then kept out of the
// base-currency totals until presentation. The Amount carries the same tag.
type Transfer struct {
	entryBase
	From     string
	To       string
	Currency string
}

func (Transfer) Kind() EntryKind { return KindTransfer }

// NewTransfer records a transfer of amount between two accounts. The
// amount's currency tag, if any, becomes the transfer's currency.
func NewTransfer(on Date, from, to, category string, amount Money) Transfer {
	return Transfer{
		entryBase: entryBase{Date: on, Category: category, Amount: amount},
		From:      from, To: to,
		Currency: amount.cur,
	}
}

// entryAccounts resolves the source and destination account references of
// any entry variant.
func entryAccounts(e Entry) (from, to string) {
	switch v := e.(type) {
	case Income:
		return "", v.To
	case Expense:
		return v.From, v.To
	case Transfer:
		return v.From, v.To
	default:
		return "", ""
	}
}

// MarshalJSON implements the json.Marshaler interface for Income.
func (e Income) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("kind", KindIncome)
	w.EmbedFrom(e.entryBase)
	w.Optional("to", e.To)
	return w.MarshalJSON()
}

// MarshalJSON implements the json.Marshaler interface for Expense.
func (e Expense) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("kind", KindExpense)
	w.EmbedFrom(e.entryBase)
	w.Optional("from", e.From)
	w.Optional("to", e.To)
	return w.MarshalJSON()
}

// MarshalJSON implements the json.Marshaler interface for Transfer.
func (e Transfer) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("kind", KindTransfer)
	w.EmbedFrom(e.entryBase)
	w.Optional("from", e.From)
	w.Optional("to", e.To)
	return w.MarshalJSON()
}

// MarshalJSON implements the json.Marshaler interface for entryBase.
func (e entryBase) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("date", e.Date)
	w.Optional("id", e.ID)
	w.Optional("category", e.Category)
	w.Optional("subCategory", e.SubCategory)
	w.Optional("description", e.Description)
	w.Append("amount", e.Amount.value)
	w.Optional("currency", e.Amount.cur)
	if e.Fixed {
		w.Append("fixed", true)
	}
	w.Optional("note", e.Note)
	return w.MarshalJSON()
}
