// Command sigbot runs the daily stock signal bot.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/junsystemtrade/stock-signal-bot/cmd"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion answers shell completion requests and exits; in a normal run
// it is a no-op.
func completion() {
	run := &complete.Command{Flags: map[string]complete.Predictor{
		"weekly": predict.Nothing,
	}}
	status := &complete.Command{Flags: map[string]complete.Predictor{
		"live": predict.Nothing,
	}}
	fetch := &complete.Command{Flags: map[string]complete.Predictor{
		"days": predict.Something,
	}}
	topic := &complete.Command{
		Args: predict.Set{"readme", "signals", "ledger", "reconciliation", "*"},
	}

	sigbot := &complete.Command{
		Sub: map[string]*complete.Command{
			"run":    run,
			"status": status,
			"weekly": {},
			"fetch":  fetch,
			"fmt":    {},
			"topic":  topic,
			"assist": {},
		},
		Flags: map[string]complete.Predictor{
			"ledger-file":   predict.Files("*.csv"),
			"symbols":       predict.Something,
			"webhook-url":   predict.Something,
			"eodhd-api-key": predict.Something,
			"lookback":      predict.Something,
		},
	}
	sigbot.Complete("sigbot")
}
