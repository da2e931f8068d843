package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	signalbot "github.com/junsystemtrade/stock-signal-bot"
	"github.com/junsystemtrade/stock-signal-bot/date"
	"github.com/junsystemtrade/stock-signal-bot/renderer"
	"github.com/google/subcommands"
)

type runCmd struct {
	weekly bool
}

func (*runCmd) Name() string     { return "run" }
func (*runCmd) Synopsis() string { return "fetch prices, update the trade log and post the report" }
func (*runCmd) Usage() string {
	return `sigbot run [-weekly]

  Performs one reconciliation: fetches daily bars for every watched symbol,
  promotes pending signal entries to holdings, appends new buy signals,
  saves the trade log, then posts the report to the Discord webhook.

  The weekly purchase digest is included automatically on Saturdays.
`
}

func (c *runCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.weekly, "weekly", false, "include the weekly purchase digest regardless of the day")
}

func (c *runCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger := DecodeLedgerFile()
	today := date.Today()

	provider := signalbot.NewEODHD(APIKey())
	report := signalbot.NewReconciler(provider, *lookback).Run(ledger, Symbols(), today)
	if c.weekly && !report.IsReportDay() {
		report.Digest = signalbot.WeeklyDigest(ledger, today)
	}

	// The log must be on disk before anyone hears about it: a notified
	// signal that was never saved would fire again tomorrow.
	if err := SaveLedgerFile(ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving trade log: %v\n", err)
		return subcommands.ExitFailure
	}

	md := renderer.RunMarkdown(report)
	printMarkdown(md)

	if url := WebhookURL(); url != "" {
		if err := signalbot.NewDiscordWebhook(url).Send(md); err != nil {
			log.Printf("warning: discord notification failed: %v", err)
		}
	} else {
		log.Printf("no webhook configured, notification skipped")
	}
	return subcommands.ExitSuccess
}
