package cmd

import (
	"context"
	"flag"
	"log"
	"time"

	signalbot "github.com/junsystemtrade/stock-signal-bot"
	"github.com/junsystemtrade/stock-signal-bot/date"
	"github.com/junsystemtrade/stock-signal-bot/renderer"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type statusCmd struct {
	live bool
}

func (*statusCmd) Name() string     { return "status" }
func (*statusCmd) Synopsis() string { return "display the current holdings and their valuation" }
func (*statusCmd) Usage() string {
	return `sigbot status [-live]

  Values the trade log's holdings at the last end-of-day close and prints
  the report. Read only: neither the trade log nor any signal is touched.

  With -live, holdings are valued at the intraday price instead of the
  last close when the quote endpoint has one.
`
}

func (c *statusCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.live, "live", false, "value holdings at the intraday price instead of the last close")
}

func (c *statusCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger := DecodeLedgerFile()
	today := date.Today()
	provider := signalbot.NewEODHD(APIKey())

	report := &signalbot.RunReport{Date: time.Now()}
	for _, symbol := range Symbols() {
		status := signalbot.SymbolStatus{Symbol: symbol}
		price := decimal.Zero

		bars, err := provider.Daily(symbol, today.Add(-*lookback), today)
		if err != nil {
			log.Printf("warning: no market data for %s: %v", symbol, err)
		}
		if last, ok := signalbot.LastBar(signalbot.ValidBars(bars)); ok {
			status.DataOK = true
			status.LastDate = last.Date
			price = last.Close
		}
		if c.live {
			if quote, err := provider.Live(symbol); err == nil {
				price = quote
			} else {
				log.Printf("warning: no live quote for %s, using last close: %v", symbol, err)
			}
		}

		pos := ledger.Position(symbol, price)
		status.Shares = pos.Shares
		status.Price = signalbot.USD(pos.Price)
		status.MarketValue = signalbot.USD(pos.MarketValue)
		status.CostBasis = signalbot.USD(pos.CostBasis)
		status.PnL = signalbot.USD(pos.PnL)
		report.Statuses = append(report.Statuses, status)
	}

	printMarkdown(renderer.RunMarkdown(report))
	return subcommands.ExitSuccess
}
