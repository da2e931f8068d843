package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	signalbot "github.com/junsystemtrade/stock-signal-bot"
	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validate and rewrite the trade log in canonical form"
}
func (*fmtCmd) Usage() string {
	return `sigbot fmt

  Reads the whole trade log, validates it, and writes it back in canonical
  CSV form: trimmed statuses, ISO dates, coerced prices. Unlike the other
  commands this one is strict: a log it cannot fully parse is an error, not
  an empty log, so nothing gets silently rewritten away.
`
}

func (*fmtCmd) SetFlags(f *flag.FlagSet) {}

func (*fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	file, err := os.Open(*ledgerFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot open trade log %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}
	ledger, err := signalbot.DecodeLedger(file)
	file.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot parse trade log %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}

	if err := SaveLedgerFile(ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "Formatted %d entries in %q.\n", ledger.Len(), *ledgerFile)
	return subcommands.ExitSuccess
}
