package stocks

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Price is an amount of currency units per share.
//
// Prices carry no currency: a ledger is single-currency and the currency is
// only needed to format a price, see Format.
type Price struct {
	value decimal.Decimal
}

// P returns the Price for value.
func P[T number](value T) Price {
	return Price{value: newDecimal(value)}
}

// ParsePrice parses a decimal string into a Price.
func ParsePrice(s string) (Price, error) {
	v, err := decimal.NewFromString(s)
	if err != nil {
		return Price{}, err
	}
	return Price{value: v}, nil
}

func (p Price) Decimal() decimal.Decimal         { return p.value }
func (p Price) Equal(n Price) bool               { return p.value.Equal(n.value) }
func (p Price) IsZero() bool                     { return p.value.IsZero() }
func (p Price) IsPositive() bool                 { return p.value.IsPositive() }
func (p Price) IsNegative() bool                 { return p.value.IsNegative() }
func (p Price) LessThan(n Price) bool            { return p.value.LessThan(n.value) }
func (p Price) GreaterThan(n Price) bool         { return p.value.GreaterThan(n.value) }
func (p Price) Add(n Price) Price                { return Price{value: p.value.Add(n.value)} }
func (p Price) Mul(q Quantity) Price             { return Price{value: p.value.Mul(q.value)} }
func (p Price) Div(q Quantity) Price             { return Price{value: p.value.Div(q.value)} }
func (p Price) String() string                   { return p.value.String() }
func (p Price) MarshalJSON() ([]byte, error)     { return p.value.MarshalJSON() }
func (p *Price) UnmarshalJSON(data []byte) error { return p.value.UnmarshalJSON(data) }

// Format returns the price formatted in currency, e.g. "£1.50" for GBP.
//
// The value is rounded to the currency fraction.
func (p Price) Format(currency string) string {
	// to get a never nil currency I need to call the Money constructor
	cur := *money.New(0, currency).Currency()
	dec := p.value.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(dec.IntPart())
}
