package signalbot

import "github.com/shopspring/decimal"

// This file computes the stochastic oscillator (14/3) and the derived buy
// signal. It is a pure function over a price series: no I/O, no ledger.

const (
	// stochPeriod is the lookback window for the raw %K.
	stochPeriod = 14
	// smoothPeriod is the simple moving average window producing %D.
	smoothPeriod = 3
)

var (
	hundred      = decimal.NewFromInt(100)
	smoothFactor = decimal.NewFromInt(smoothPeriod)
	// buyThreshold is the oversold bound: the bot buys when %K or %D is at
	// or under it.
	buyThreshold = decimal.NewFromInt(25)
)

// SignalRow is a PriceBar augmented with the oscillator values and the
// resulting buy decision.
//
// HasK and HasD report whether the respective value is defined: %K needs a
// full 14-bar window, %D additionally needs two preceding %K rows. An
// undefined %D never raises, it simply leaves the decision to %K alone.
type SignalRow struct {
	PriceBar
	K    decimal.Decimal
	D    decimal.Decimal
	HasK bool
	HasD bool
	Buy  bool
}

// ComputeSignals augments a price series with %K, %D and the buy signal.
//
// The input must contain only valid bars (see ValidBars) in ascending date
// order. When fewer than stochPeriod bars are available the result is nil:
// the series has no opinion yet, which callers treat as "skip", never as an
// error.
//
// On a flat 14-bar window (high == low) %K is defined as 0 rather than
// dividing by zero; the last computed row is therefore never NaN or
// infinite, which matters because it drives a boolean downstream.
func ComputeSignals(bars []PriceBar) []SignalRow {
	if len(bars) < stochPeriod {
		return nil
	}
	rows := make([]SignalRow, len(bars))
	for i, b := range bars {
		rows[i].PriceBar = b
		if i < stochPeriod-1 {
			continue
		}

		low14, high14 := b.Low, b.High
		for _, w := range bars[i-(stochPeriod-1) : i] {
			if w.Low.LessThan(low14) {
				low14 = w.Low
			}
			if w.High.GreaterThan(high14) {
				high14 = w.High
			}
		}

		span := high14.Sub(low14)
		k := decimal.Zero // flat window: %K is 0 by definition
		if !span.IsZero() {
			k = hundred.Mul(b.Close.Sub(low14)).Div(span)
		}
		rows[i].K, rows[i].HasK = k, true

		if i >= stochPeriod+smoothPeriod-2 {
			d := rows[i].K.Add(rows[i-1].K).Add(rows[i-2].K).Div(smoothFactor)
			rows[i].D, rows[i].HasD = d, true
		}

		rows[i].Buy = k.LessThanOrEqual(buyThreshold) ||
			(rows[i].HasD && rows[i].D.LessThanOrEqual(buyThreshold))
	}
	return rows
}
