package signalbot

import (
	"errors"
	"reflect"
	"testing"

	"github.com/junsystemtrade/stock-signal-bot/date"
	"github.com/shopspring/decimal"
)

// fakeProvider serves canned bars per symbol and records the requested
// windows.
type fakeProvider struct {
	bars  map[string][]PriceBar
	fail  map[string]error
	calls []string
	from  date.Date
	to    date.Date
}

func (f *fakeProvider) Daily(symbol string, from, to date.Date) ([]PriceBar, error) {
	f.calls = append(f.calls, symbol)
	f.from, f.to = from, to
	if err := f.fail[symbol]; err != nil {
		return nil, err
	}
	return f.bars[symbol], nil
}

func TestReconciler_NewSignal(t *testing.T) {
	// constant 0..100 range: the last close of 20 puts %K at 20, under the
	// oversold threshold.
	p := &fakeProvider{bars: map[string][]PriceBar{
		"AAPL.US": rangedBars(0, 100, append(closes(13, 80), 20)...),
	}}
	l := NewLedger()
	on := date.New(2025, 8, 14)

	report := NewReconciler(p, 0).Run(l, []string{"AAPL.US"}, on)

	want := []string{"buy signal: AAPL.US (date: 2025-08-14)"}
	if !reflect.DeepEqual(report.Notifications, want) {
		t.Errorf("notifications = %v, want %v", report.Notifications, want)
	}
	// the fresh entry must stay a pending signal within its own run:
	// promotion happens before insertion, never after.
	if got := l.Holdings("AAPL.US"); len(got) != 0 {
		t.Errorf("new signal promoted in the same run: %v", got)
	}
	if !l.Exists(on, "AAPL.US") {
		t.Error("signal entry missing from ledger")
	}

	// default lookback window
	if wantFrom := on.Add(-DefaultLookback); p.from != wantFrom || p.to != on {
		t.Errorf("requested window %s..%s, want %s..%s", p.from, p.to, wantFrom, on)
	}

	status := report.Statuses[0]
	if !status.DataOK {
		t.Error("data fetched, DataOK must be true")
	}
	if status.LastDate != on {
		t.Errorf("last date = %s, want %s", status.LastDate, on)
	}
	if wantPrice := USD(decimal.NewFromInt(20)); !status.Price.Equal(wantPrice) {
		t.Errorf("price = %s, want %s", status.Price, wantPrice)
	}
	if status.Shares != 0 {
		t.Errorf("shares = %d, a signal is not yet a share", status.Shares)
	}
}

func TestReconciler_Idempotent(t *testing.T) {
	p := &fakeProvider{bars: map[string][]PriceBar{
		"AAPL.US": rangedBars(0, 100, append(closes(13, 80), 20)...),
	}}
	l := NewLedger()
	on := date.New(2025, 8, 14)
	r := NewReconciler(p, 30)

	first := r.Run(l, []string{"AAPL.US"}, on)
	if len(first.Notifications) != 1 {
		t.Fatalf("first run fired %d notifications, want 1", len(first.Notifications))
	}

	// same day, same data: nothing new
	second := r.Run(l, []string{"AAPL.US"}, on)
	if len(second.Notifications) != 0 {
		t.Errorf("second run fired %v, want none", second.Notifications)
	}
	if l.Len() != 1 {
		t.Errorf("ledger has %d entries after two runs, want 1", l.Len())
	}
}

func TestReconciler_Promotion(t *testing.T) {
	// last bar opens at 78 and closes at 80: no buy signal, but the pending
	// entry from a previous run must fill at the open.
	bars := append(rangedBars(0, 100, closes(13, 50)...), bar(14, 78, 100, 0, 80))
	p := &fakeProvider{bars: map[string][]PriceBar{"AAPL.US": bars}}
	l := NewLedger()
	l.Append(entry("2025-08-13", "AAPL.US", StatusSignal, "0"))
	on := date.New(2025, 8, 14)

	report := NewReconciler(p, 30).Run(l, []string{"AAPL.US"}, on)

	if len(report.Notifications) != 0 {
		t.Errorf("notifications = %v, want none", report.Notifications)
	}
	holdings := l.Holdings("AAPL.US")
	if len(holdings) != 1 {
		t.Fatalf("holdings = %v, want the promoted entry", holdings)
	}
	if want := decimal.NewFromInt(78); !holdings[0].BuyPrice.Equal(want) {
		t.Errorf("fill price = %s, want the open %s", holdings[0].BuyPrice, want)
	}

	status := report.Statuses[0]
	if status.Shares != 1 {
		t.Errorf("shares = %d, want 1", status.Shares)
	}
	if want := USD(decimal.NewFromInt(80)); !status.MarketValue.Equal(want) {
		t.Errorf("market value = %s, want %s", status.MarketValue, want)
	}
	if want := USD(decimal.NewFromInt(2)); !status.PnL.Equal(want) {
		t.Errorf("pnl = %s, want %s", status.PnL, want)
	}
}

func TestReconciler_FaultIsolation(t *testing.T) {
	p := &fakeProvider{
		bars: map[string][]PriceBar{
			"MSFT.US": rangedBars(0, 100, append(closes(13, 80), 20)...),
		},
		fail: map[string]error{"AAPL.US": errors.New("api down")},
	}
	l := NewLedger()
	l.Append(entry("2025-08-10", "AAPL.US", StatusHolding, "10"))
	on := date.New(2025, 8, 14)

	report := NewReconciler(p, 30).Run(l, []string{"AAPL.US", "MSFT.US"}, on)

	if got := len(report.Statuses); got != 2 {
		t.Fatalf("statuses = %d, a failing symbol must not drop out", got)
	}

	aapl := report.Statuses[0]
	if aapl.DataOK {
		t.Error("AAPL.US has no data, DataOK must be false")
	}
	// valued against a zero price: the shares and cost basis survive
	if aapl.Shares != 1 {
		t.Errorf("AAPL.US shares = %d, want 1", aapl.Shares)
	}
	if !aapl.MarketValue.IsZero() {
		t.Errorf("AAPL.US market value = %s, want zero", aapl.MarketValue)
	}
	if want := USD(decimal.NewFromInt(10)); !aapl.CostBasis.Equal(want) {
		t.Errorf("AAPL.US cost basis = %s, want %s", aapl.CostBasis, want)
	}

	// the healthy symbol still fires
	want := []string{"buy signal: MSFT.US (date: 2025-08-14)"}
	if !reflect.DeepEqual(report.Notifications, want) {
		t.Errorf("notifications = %v, want %v", report.Notifications, want)
	}
}

func TestReconciler_InsufficientHistory(t *testing.T) {
	p := &fakeProvider{bars: map[string][]PriceBar{
		"AAPL.US": rangedBars(0, 100, closes(10, 5)...), // deeply oversold, but too short
	}}
	l := NewLedger()

	report := NewReconciler(p, 30).Run(l, []string{"AAPL.US"}, date.New(2025, 8, 14))

	if l.Len() != 0 {
		t.Errorf("ledger gained %d entries from a 10-bar history", l.Len())
	}
	status := report.Statuses[0]
	if !status.DataOK {
		t.Error("bars were fetched, DataOK must be true even without a signal opinion")
	}
	if want := USD(decimal.NewFromInt(5)); !status.Price.Equal(want) {
		t.Errorf("price = %s, want %s", status.Price, want)
	}
}

func TestReconciler_InvalidBarsIgnored(t *testing.T) {
	// 14 bars, one with a zero close: only 13 are usable, so no opinion.
	bars := rangedBars(0, 100, append(closes(13, 5), 5)...)
	bars[6].Close = decimal.Zero
	p := &fakeProvider{bars: map[string][]PriceBar{"AAPL.US": bars}}
	l := NewLedger()

	NewReconciler(p, 30).Run(l, []string{"AAPL.US"}, date.New(2025, 8, 14))

	if l.Len() != 0 {
		t.Errorf("ledger gained %d entries from 13 valid bars", l.Len())
	}
}

func TestReconciler_EmptyData(t *testing.T) {
	p := &fakeProvider{}
	l := NewLedger()

	report := NewReconciler(p, 30).Run(l, []string{"AAPL.US"}, date.New(2025, 8, 14))

	status := report.Statuses[0]
	if status.DataOK {
		t.Error("no bars, DataOK must be false")
	}
	if !status.Price.IsZero() {
		t.Errorf("price = %s, want zero", status.Price)
	}
}

func TestReconciler_SaturdayDigest(t *testing.T) {
	p := &fakeProvider{}
	l := NewLedger()
	l.Append(entry("2025-08-12", "AAPL.US", StatusHolding, "10"))

	saturday := date.New(2025, 8, 16)
	report := NewReconciler(p, 30).Run(l, nil, saturday)
	if !report.IsReportDay() {
		t.Fatal("Saturday run must carry the digest")
	}
	want := []Purchase{{Date: date.New(2025, 8, 12), Symbol: "AAPL.US", BuyPrice: USD(decimal.NewFromInt(10))}}
	if !reflect.DeepEqual(report.Digest, want) {
		t.Errorf("digest = %v, want %v", report.Digest, want)
	}

	weekday := date.New(2025, 8, 14)
	if report := NewReconciler(p, 30).Run(l, nil, weekday); report.IsReportDay() {
		t.Error("Thursday run must not carry the digest")
	}
}

func TestWeeklyDigest_EmptyWeek(t *testing.T) {
	l := NewLedger()
	l.Append(entry("2025-08-01", "AAPL.US", StatusHolding, "10")) // too old

	digest := WeeklyDigest(l, date.New(2025, 8, 16))
	if digest == nil {
		t.Fatal("an empty week is an empty digest, not a missing one")
	}
	if len(digest) != 0 {
		t.Errorf("digest = %v, want empty", digest)
	}
}
