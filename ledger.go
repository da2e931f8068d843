package signalbot

import (
	"fmt"
	"iter"

	"github.com/junsystemtrade/stock-signal-bot/date"
	"github.com/shopspring/decimal"
)

// Status is the lifecycle state of a ledger entry.
type Status int

const (
	// StatusSignal marks an entry awaiting price confirmation: the buy
	// signal fired but the fill price is not known yet.
	StatusSignal Status = iota
	// StatusHolding marks an entry filled at the recorded buy price.
	StatusHolding
)

func (s Status) String() string {
	switch s {
	case StatusSignal:
		return "signal"
	case StatusHolding:
		return "holding"
	default:
		return "unknown"
	}
}

// ParseStatus parses a string into a Status.
func ParseStatus(s string) (Status, error) {
	switch s {
	case "signal":
		return StatusSignal, nil
	case "holding":
		return StatusHolding, nil
	default:
		return 0, fmt.Errorf("unknown ledger status: %q", s)
	}
}

// Entry is one row of the trade ledger.
//
// Date is the day the buy signal fired, not the fill day. A signal entry
// always carries a zero BuyPrice; the price is fixed when a later run
// promotes the entry to holding with the next bar's opening price. One
// holding entry represents exactly one share: there is no quantity field.
type Entry struct {
	Date     date.Date
	Symbol   string
	Status   Status
	BuyPrice decimal.Decimal
}

// Ledger is the persisted collection of entries, the sole source of truth
// for position state across runs.
//
// The reconciliation engine is its only writer. Entries are appended or
// promoted in place, never deleted; removal is a manual operation on the
// underlying file.
type Ledger struct {
	entries []Entry
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{entries: make([]Entry, 0)}
}

// Len returns the number of entries.
func (l *Ledger) Len() int { return len(l.entries) }

// Entries returns an iterator over all entries in their original order.
func (l *Ledger) Entries() iter.Seq2[int, Entry] {
	return func(yield func(int, Entry) bool) {
		for i, e := range l.entries {
			if !yield(i, e) {
				return
			}
		}
	}
}

// Exists reports whether any entry exists for the given day and symbol.
//
// The check is deliberately independent of status: a day that already
// produced an entry (signal or holding) for a symbol must never receive a
// second one.
func (l *Ledger) Exists(on date.Date, symbol string) bool {
	for _, e := range l.entries {
		if e.Symbol == symbol && e.Date == on {
			return true
		}
	}
	return false
}

// Append adds an entry to the ledger. It refuses a duplicate (date, symbol)
// pair, enforcing the one-entry-per-day invariant even if callers forgot to
// check Exists first.
func (l *Ledger) Append(e Entry) error {
	if l.Exists(e.Date, e.Symbol) {
		return fmt.Errorf("ledger already has an entry for %s on %s", e.Symbol, e.Date)
	}
	l.entries = append(l.entries, e)
	return nil
}

// Promote turns every pending signal entry for symbol into a holding filled
// at the given price, and returns how many entries were promoted.
//
// Under correct operation at most one signal is pending per symbol, but the
// promotion applies to all matches so a ledger that drifted (hand edits,
// interrupted runs) converges back to a consistent state.
func (l *Ledger) Promote(symbol string, fill decimal.Decimal) int {
	n := 0
	for i, e := range l.entries {
		if e.Symbol == symbol && e.Status == StatusSignal {
			l.entries[i].Status = StatusHolding
			l.entries[i].BuyPrice = fill
			n++
		}
	}
	return n
}

// Holdings returns the holding entries for a symbol, in ledger order.
func (l *Ledger) Holdings(symbol string) []Entry {
	var held []Entry
	for _, e := range l.entries {
		if e.Symbol == symbol && e.Status == StatusHolding {
			held = append(held, e)
		}
	}
	return held
}

// Purchases returns the holding entries dated on or after since, in ledger
// order. This is the weekly digest view: a pure read, no side effects.
func (l *Ledger) Purchases(since date.Date) []Entry {
	var bought []Entry
	for _, e := range l.entries {
		if e.Status == StatusHolding && !e.Date.Before(since) {
			bought = append(bought, e)
		}
	}
	return bought
}

// Position values the holdings of a symbol at the given price.
func (l *Ledger) Position(symbol string, price decimal.Decimal) Position {
	p := Position{Symbol: symbol, Price: price}
	for _, e := range l.Holdings(symbol) {
		p.Shares++
		p.CostBasis = p.CostBasis.Add(e.BuyPrice)
	}
	p.MarketValue = price.Mul(decimal.NewFromInt(int64(p.Shares)))
	p.PnL = p.MarketValue.Sub(p.CostBasis)
	return p
}

// Position is the derived valuation of one symbol's holdings. It is never
// stored: every run recomputes it from the ledger and the current price.
type Position struct {
	Symbol      string
	Shares      int
	Price       decimal.Decimal
	CostBasis   decimal.Decimal
	MarketValue decimal.Decimal
	PnL         decimal.Decimal
}
