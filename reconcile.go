package signalbot

import (
	"fmt"
	"log"
	"time"

	"github.com/junsystemtrade/stock-signal-bot/date"
	"github.com/shopspring/decimal"
)

// Provider fetches daily OHLC bars for a symbol, oldest first. A provider
// should return an empty slice rather than an error for transient gaps
// (market holidays, late feeds); either way the engine degrades to a zero
// valuation for that symbol and keeps going.
type Provider interface {
	Daily(symbol string, from, to date.Date) ([]PriceBar, error)
}

// DefaultLookback is how many calendar days of history a run requests:
// enough for the 14-bar stochastic window with a wide margin for holidays
// and suspended sessions.
const DefaultLookback = 90

// Reconciler drives one run of the bot: per symbol it derives the buy
// signal, moves ledger entries through the signal → holding state machine
// and values the position.
//
// The run mutates the ledger in memory only; persisting it is the caller's
// job and must happen before any notification goes out. There is no sell
// transition: holdings accumulate for as long as the ledger lives.
type Reconciler struct {
	provider Provider
	lookback int
}

// NewReconciler creates a reconciler over the given market data provider.
// A non-positive lookback falls back to DefaultLookback.
func NewReconciler(p Provider, lookback int) *Reconciler {
	if lookback <= 0 {
		lookback = DefaultLookback
	}
	return &Reconciler{provider: p, lookback: lookback}
}

// Run reconciles every symbol, strictly in the given order, against the
// ledger and returns the run's report. A failure on one symbol never
// aborts the others. On Saturdays the report also carries the weekly
// digest of purchases, matching the bot's historical report day.
func (r *Reconciler) Run(l *Ledger, symbols []string, on date.Date) *RunReport {
	report := &RunReport{Date: time.Now()}
	for _, symbol := range symbols {
		status, notes := r.reconcileSymbol(l, symbol, on)
		report.Statuses = append(report.Statuses, status)
		report.Notifications = append(report.Notifications, notes...)
	}
	if on.Weekday() == time.Saturday {
		report.Digest = WeeklyDigest(l, on)
	}
	return report
}

// reconcileSymbol applies the per-symbol algorithm:
//
//  1. fetch bars; empty or error means skip the signal step but still
//     value holdings at a zero price, so the symbol never silently drops
//     out of the report,
//  2. with at least 14 valid bars, promote pending signals at the latest
//     bar's open, then append a new signal entry unless the (date, symbol)
//     pair already exists,
//  3. always value the holdings.
//
// Promotion runs before insertion so that an entry appended in this run
// can only ever be promoted by a later run, once a later bar exists.
func (r *Reconciler) reconcileSymbol(l *Ledger, symbol string, on date.Date) (SymbolStatus, []string) {
	status := SymbolStatus{Symbol: symbol}

	bars, err := r.provider.Daily(symbol, on.Add(-r.lookback), on)
	if err != nil {
		log.Printf("warning: no market data for %s: %v", symbol, err)
		bars = nil
	}
	valid := ValidBars(bars)

	price := decimal.Zero
	if last, ok := LastBar(valid); ok {
		status.DataOK = true
		status.LastDate = last.Date
		price = last.Close
	}

	var notes []string
	if rows := ComputeSignals(valid); rows != nil {
		sig := rows[len(rows)-1]

		if n := l.Promote(symbol, sig.Open); n > 0 {
			log.Printf("%s: %d signal entry promoted to holding at %s open %s", symbol, n, sig.Date, sig.Open)
		}

		if sig.Buy && !l.Exists(sig.Date, symbol) {
			e := Entry{Date: sig.Date, Symbol: symbol, Status: StatusSignal, BuyPrice: decimal.Zero}
			if err := l.Append(e); err != nil {
				// Unreachable after the Exists check, but a refused append
				// must never kill the run.
				log.Printf("warning: %s: %v", symbol, err)
			} else {
				notes = append(notes, fmt.Sprintf("buy signal: %s (date: %s)", symbol, sig.Date))
			}
		}
	}

	pos := l.Position(symbol, price)
	status.Shares = pos.Shares
	status.Price = USD(pos.Price)
	status.MarketValue = USD(pos.MarketValue)
	status.CostBasis = USD(pos.CostBasis)
	status.PnL = USD(pos.PnL)
	return status, notes
}

// WeeklyDigest lists the holdings bought in the trailing seven days
// (inclusive), in ledger order. Pure read: the ledger is not touched.
func WeeklyDigest(l *Ledger, on date.Date) []Purchase {
	digest := make([]Purchase, 0)
	for _, e := range l.Purchases(on.Add(-7)) {
		digest = append(digest, Purchase{Date: e.Date, Symbol: e.Symbol, BuyPrice: USD(e.BuyPrice)})
	}
	return digest
}
