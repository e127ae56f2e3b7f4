package household

import (
	"encoding/json"
	"fmt"
)

// Side identifies the direction of a trade.
type Side int

const (
	Buy Side = iota
	Sell
)

func (s Side) String() string {
	switch s {
	case Buy:
		return "buy"
	case Sell:
		return "sell"
	default:
		return "unknown"
	}
}

// ParseSide parses a string into a Side.
func ParseSide(str string) (Side, error) {
	switch str {
	case "buy":
		return Buy, nil
	case "sell":
		return Sell, nil
	default:
		return 0, fmt.Errorf("unknown trade side: %q", str)
	}
}

// MarshalJSON implements the json.Marshaler interface for Side.
func (s Side) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface for Side.
func (s *Side) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	parsed, err := ParseSide(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Trade is one buy or sell of an instrument inside an account. Amount is
// the total consideration in the instrument's native currency; CashImpact
// is its pre-computed signed cash leg (negative for a buy, positive for a
// sell). An empty Currency means the base currency.
type Trade struct {
	ID         string
	Date       Date
	Account    string
	Ticker     string
	Name       string
	Side       Side
	Quantity   Quantity
	Price      Money // unit price
	Fee        Money
	Amount     Money // total consideration, fee included
	CashImpact Money // signed cash leg
	Currency   string
}

// NewBuy records a purchase. The total cost is quantity*price plus the fee.
func NewBuy(on Date, account, ticker string, quantity Quantity, price, fee Money) Trade {
	amount := price.Mul(quantity).Add(fee)
	return Trade{
		Date: on, Account: account, Ticker: ticker,
		Side: Buy, Quantity: quantity, Price: price, Fee: fee,
		Amount: amount, CashImpact: amount.Neg(),
		Currency: price.cur,
	}
}

// NewSell records a sale. The proceeds are quantity*price minus the fee.
func NewSell(on Date, account, ticker string, quantity Quantity, price, fee Money) Trade {
	amount := price.Mul(quantity).Sub(fee)
	return Trade{
		Date: on, Account: account, Ticker: ticker,
		Side: Sell, Quantity: quantity, Price: price, Fee: fee,
		Amount: amount, CashImpact: amount,
		Currency: price.cur,
	}
}

// MarshalJSON implements the json.Marshaler interface for Trade.
func (t Trade) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("date", t.Date)
	w.Optional("id", t.ID)
	w.Optional("account", t.Account)
	w.Append("ticker", t.Ticker)
	w.Optional("name", t.Name)
	w.Append("side", t.Side)
	w.Append("quantity", t.Quantity)
	w.Append("price", t.Price.value)
	w.Optional("fee", t.Fee.value)
	w.Append("amount", t.Amount.value)
	w.Append("cashImpact", t.CashImpact.value)
	w.Optional("currency", t.Currency)
	return w.MarshalJSON()
}
