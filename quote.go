package signalbot

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

/*
	https://eodhd.com/api/real-time/AAPL.US?fmt=json
	{
	    "code": "AAPL.US",
	    "timestamp": 1756400400,
	    "open": 230.82,
	    "high": 233.41,
	    "low": 229.34,
	    "close": 232.56,
	    "previousClose": 230.49,
	    "change": 2.07,
	    "change_p": 0.8981
	}
*/

// Live returns the latest intraday price for a symbol.
//
// Outside trading hours the endpoint replaces numbers with the string "NA",
// so the fields are plucked by jsonpath and type-checked instead of being
// decoded into a typed struct, falling back from close to previousClose.
// Live prices are never cached and never touch the ledger: they only make
// the status report fresher than the last end-of-day close.
func (p *EODHD) Live(symbol string) (decimal.Decimal, error) {
	if p.apiKey == "" {
		return decimal.Zero, fmt.Errorf("eodhd: missing API key (flag -eodhd-api-key or env %s)", EODHDKeyEnv)
	}
	addr := fmt.Sprintf("https://eodhd.com/api/real-time/%s?fmt=json&api_token=%s",
		url.PathEscape(symbol), p.apiKey)

	var jobj any
	if err := jwget(new(http.Client), addr, &jobj); err != nil {
		return decimal.Zero, fmt.Errorf("error in wget %q: %w", symbol, err)
	}

	for _, path := range []string{"$.close", "$.previousClose"} {
		jval, err := jsonpath.Get(path, jobj)
		if err != nil {
			continue
		}
		// because jsonpath is never clear about wheter it returns a list of 1 answer, or a single answer:
		// by this call I keep the first one if any
		if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
			jval = jlist[0]
		}
		if val, ok := jval.(float64); ok {
			return decimal.NewFromFloat(val), nil
		}
	}
	return decimal.Zero, fmt.Errorf("no usable live price for %q", symbol)
}
