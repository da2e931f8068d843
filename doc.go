// Package signalbot implements a daily stock signal bot: it fetches end of
// day price bars for a fixed watchlist, computes a stochastic oscillator
// (14/3) buy signal per symbol, and reconciles a persistent trade ledger
// where each buy signal becomes a one-share holding filled at the next
// day's open.
//
// The core functionalities include:
//   - Signal Calculation: a pure function turning a daily price series into
//     %K/%D values and a boolean buy signal (stoch.go).
//   - Trade Ledger: the chronological record of signal and holding rows,
//     the single source of truth across runs, persisted as a CSV file
//     (ledger.go, encode.go).
//   - Reconciliation: the per-run state machine that promotes yesterday's
//     signals into holdings at today's open, appends new signals exactly
//     once per (date, symbol), and values every position (reconcile.go).
//   - Market Data: end-of-day bars from EODHD and intraday quotes, both
//     behind a small per-day disk cache (provider.go, quote.go).
//   - Reporting: a markdown status report delivered to a Discord webhook
//     and rendered locally (report.go, renderer, notify.go).
//
// This package serves as the foundational logic for the `sigbot`
// command-line tool. Holdings are never sold: the ledger only ever moves
// rows from signal to holding, which is a deliberate property of the bot,
// not an oversight.
package signalbot
