package signalbot

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value in a single currency. All arithmetic
// stays in decimal; go-money is only consulted for the currency's fraction
// and display format.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// USD wraps a decimal amount as US dollars, the only currency the bot's
// watchlist trades in today.
func USD(value decimal.Decimal) Money { return Money{value: value, cur: money.USD} }

// M builds a Money from a decimal amount and an ISO currency code.
func M(value decimal.Decimal, currency string) Money { return Money{value: value, cur: currency} }

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the string representation of the money value, e.g. "$12.50".
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(dec.IntPart())
}

// SignedString returns the money with an explicit sign, the way a P&L is
// displayed: "+$7.50", "-$3.10", and "$0.00" stays unsigned.
func (m Money) SignedString() string {
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

func (m Money) Amount() decimal.Decimal { return m.value }
func (m Money) Currency() string        { return m.cur }
func (m Money) IsZero() bool            { return m.value.IsZero() }
func (m Money) Equal(n Money) bool      { return m.value.Equal(n.value) && m.cur == n.cur }
