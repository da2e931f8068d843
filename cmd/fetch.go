package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	signalbot "github.com/junsystemtrade/stock-signal-bot"
	"github.com/junsystemtrade/stock-signal-bot/date"
	"github.com/google/subcommands"
)

type fetchCmd struct {
	days int
}

func (*fetchCmd) Name() string     { return "fetch" }
func (*fetchCmd) Synopsis() string { return "fetch daily bars and signals for one symbol" }
func (*fetchCmd) Usage() string {
	return `sigbot fetch [-days n] <symbol>

  Fetches the symbol's daily bars and prints them with the stochastic
  oscillator values and the buy column, most recent last. Useful to check
  what the next run would decide. Read only.
`
}

func (c *fetchCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.days, "days", signalbot.DefaultLookback, "calendar days of history to fetch")
}

func (c *fetchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: fetch wants exactly one symbol")
		return subcommands.ExitUsageError
	}
	symbol := f.Arg(0)
	today := date.Today()

	provider := signalbot.NewEODHD(APIKey())
	bars, err := provider.Daily(symbol, today.Add(-c.days), today)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	valid := signalbot.ValidBars(bars)
	rows := signalbot.ComputeSignals(valid)
	if rows == nil {
		fmt.Fprintf(os.Stderr, "Warning: only %d valid bars for %s, no signal opinion\n", len(valid), symbol)
		rows = make([]signalbot.SignalRow, 0, len(valid))
		for _, b := range valid {
			rows = append(rows, signalbot.SignalRow{PriceBar: b})
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", symbol)
	fmt.Fprintln(&b, "| Date | Open | High | Low | Close | %K | %D | Buy |")
	fmt.Fprintln(&b, "|---|---|---|---|---|---|---|---|")
	for _, r := range rows {
		k, d, buy := "", "", ""
		if r.HasK {
			k = r.K.StringFixed(1)
		}
		if r.HasD {
			d = r.D.StringFixed(1)
		}
		if r.Buy {
			buy = "🚨"
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s | %s |\n",
			r.Date, r.Open, r.High, r.Low, r.Close, k, d, buy)
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
