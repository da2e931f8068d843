package signalbot

import (
	"time"

	"github.com/junsystemtrade/stock-signal-bot/date"
)

// RunReport is everything one reconciliation run wants to tell a human.
// It is a plain value: the renderer package turns it into markdown.
type RunReport struct {
	Date time.Time // Generation time, wall clock.

	// Notifications holds one line per buy signal fired during this run.
	Notifications []string

	// Statuses holds one valuation line per watched symbol, in watchlist
	// order. A symbol is present even when its data could not be fetched.
	Statuses []SymbolStatus

	// Digest lists the holdings bought in the trailing week. Nil outside
	// report days (or when not requested); empty but non-nil means "report
	// day, nothing bought".
	Digest []Purchase
}

// IsReportDay reports whether this run carries the weekly digest section.
// An empty but non-nil digest still renders, as "nothing bought".
func (r *RunReport) IsReportDay() bool { return r.Digest != nil }

// SymbolStatus is the per-symbol valuation line of a run.
type SymbolStatus struct {
	Symbol string

	// DataOK is false when the provider returned nothing usable. The
	// valuation fields are then computed against a zero price so the
	// symbol still shows up instead of silently disappearing.
	DataOK   bool
	LastDate date.Date // date of the most recent valid close

	Shares      int
	Price       Money
	MarketValue Money
	CostBasis   Money
	PnL         Money
}

// Purchase is one line of the weekly digest.
type Purchase struct {
	Date     date.Date
	Symbol   string
	BuyPrice Money
}
