package signalbot

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestMoney_String(t *testing.T) {
	cases := []struct {
		value string
		want  string
	}{
		{value: "12.5", want: "$12.50"},
		{value: "0", want: "$0.00"},
		{value: "-3.1", want: "-$3.10"},
		{value: "1234.567", want: "$1,234.57"}, // rounded to the cent
	}
	for _, c := range cases {
		m := USD(decimal.RequireFromString(c.value))
		if got := m.String(); got != c.want {
			t.Errorf("USD(%s).String() = %q, want %q", c.value, got, c.want)
		}
	}
}

func TestMoney_SignedString(t *testing.T) {
	cases := []struct {
		value string
		want  string
	}{
		{value: "7.5", want: "+$7.50"},
		{value: "-7.5", want: "-$7.50"},
		{value: "0", want: "$0.00"},
	}
	for _, c := range cases {
		m := USD(decimal.RequireFromString(c.value))
		if got := m.SignedString(); got != c.want {
			t.Errorf("USD(%s).SignedString() = %q, want %q", c.value, got, c.want)
		}
	}
}

func TestMoney_OtherCurrency(t *testing.T) {
	m := M(decimal.RequireFromString("100"), "JPY")
	// yen has no minor unit
	if got := m.String(); got != "¥100" {
		t.Errorf("JPY 100 = %q, want %q", got, "¥100")
	}
}
