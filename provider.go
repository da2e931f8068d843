package signalbot

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/junsystemtrade/stock-signal-bot/date"
	"github.com/shopspring/decimal"
)

// EODHDKeyEnv is the environment variable holding the eodhd.com API key
// when the flag is not set. You can get a key at https://eodhd.com/.
const EODHDKeyEnv = "EODHD_API_KEY"

// EODHD fetches end-of-day bars from eodhd.com.
//
// Symbols use eodhd's ticker format, e.g. "AAPL.US". Responses go through
// the per-day disk cache so repeated commands on the same day do not burn
// through the API quota.
type EODHD struct {
	apiKey string
	client *http.Client
}

// NewEODHD creates a provider using the given API key.
func NewEODHD(apiKey string) *EODHD {
	return &EODHD{apiKey: apiKey, client: daily()}
}

// Daily returns the daily bars for a symbol between from and to, bounds
// included, oldest first. Days the feed has no close for come back with a
// zero Close and are filtered out downstream by ValidBars.
func (p *EODHD) Daily(symbol string, from, to date.Date) ([]PriceBar, error) {
	if p.apiKey == "" {
		return nil, fmt.Errorf("eodhd: missing API key (flag -eodhd-api-key or env %s)", EODHDKeyEnv)
	}

	// https://eodhd.com/api/eod/AAPL.US?api_token=...&fmt=json
	// [
	//	{
	//		"date": "2024-02-13",
	//		"open": 675.066,
	//		"high": 684.219,
	//		"low": 648.659,
	//		"close": 668.445,
	//		"adjusted_close": 67.705,
	//		"volume": 0
	//	  },
	addr := fmt.Sprintf("https://eodhd.com/api/eod/%s?fmt=json&api_token=%s&from=%s&to=%s",
		url.PathEscape(symbol), p.apiKey, from, to)

	type info struct {
		Date date.Date `json:"date"`
		Open float64   `json:"open"`
		High float64   `json:"high"`
		Low  float64   `json:"low"`
		// the adjusted close absorbs splits, which matters for a 90-day
		// window much more than the raw close does.
		Close float64 `json:"adjusted_close"`
	}

	content := make([]info, 0)
	if err := jwget(p.client, addr, &content); err != nil {
		return nil, fmt.Errorf("eodhd: cannot fetch %s: %w", symbol, err)
	}

	bars := make([]PriceBar, 0, len(content))
	for _, b := range content {
		bars = append(bars, PriceBar{
			Date:  b.Date,
			Open:  decimal.NewFromFloat(b.Open),
			High:  decimal.NewFromFloat(b.High),
			Low:   decimal.NewFromFloat(b.Low),
			Close: decimal.NewFromFloat(b.Close),
		})
	}
	SortBars(bars)
	return bars, nil
}
