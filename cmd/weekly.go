package cmd

import (
	"context"
	"flag"

	signalbot "github.com/junsystemtrade/stock-signal-bot"
	"github.com/junsystemtrade/stock-signal-bot/date"
	"github.com/junsystemtrade/stock-signal-bot/renderer"
	"github.com/google/subcommands"
)

type weeklyCmd struct{}

func (*weeklyCmd) Name() string     { return "weekly" }
func (*weeklyCmd) Synopsis() string { return "display the weekly purchase digest" }
func (*weeklyCmd) Usage() string {
	return `sigbot weekly

  Lists every holding bought in the trailing seven days, the same digest
  the run report includes on Saturdays. Read only.
`
}

func (*weeklyCmd) SetFlags(f *flag.FlagSet) {}

func (*weeklyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger := DecodeLedgerFile()
	today := date.Today()
	digest := signalbot.WeeklyDigest(ledger, today)
	printMarkdown(renderer.WeeklyMarkdown(today, digest))
	return subcommands.ExitSuccess
}
