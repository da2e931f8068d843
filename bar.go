package signalbot

import (
	"slices"

	"github.com/junsystemtrade/stock-signal-bot/date"
	"github.com/shopspring/decimal"
)

// PriceBar is one daily OHLC bar for a symbol.
//
// A bar with a zero Close is considered invalid: data feeds report null or
// missing closes on partial days, and those bars must not feed the signal
// computation.
type PriceBar struct {
	Date  date.Date
	Open  decimal.Decimal
	High  decimal.Decimal
	Low   decimal.Decimal
	Close decimal.Decimal
}

// Valid reports whether the bar carries a usable close.
func (b PriceBar) Valid() bool { return !b.Close.IsZero() }

// ValidBars returns the bars with a usable close, preserving order.
func ValidBars(bars []PriceBar) []PriceBar {
	valid := make([]PriceBar, 0, len(bars))
	for _, b := range bars {
		if b.Valid() {
			valid = append(valid, b)
		}
	}
	return valid
}

// LastBar returns the most recent valid bar, or false when there is none.
func LastBar(bars []PriceBar) (PriceBar, bool) {
	for i := len(bars) - 1; i >= 0; i-- {
		if bars[i].Valid() {
			return bars[i], true
		}
	}
	return PriceBar{}, false
}

// SortBars sorts bars in place by ascending date. Providers are expected to
// return bars oldest first, but remote feeds occasionally interleave
// corrections, so callers normalize before computing anything.
func SortBars(bars []PriceBar) {
	slices.SortStableFunc(bars, func(a, b PriceBar) int {
		switch {
		case a.Date.Before(b.Date):
			return -1
		case a.Date.After(b.Date):
			return 1
		default:
			return 0
		}
	})
}
