package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	signalbot "github.com/junsystemtrade/stock-signal-bot"
	"github.com/junsystemtrade/stock-signal-bot/agent"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "start an interactive session with the AI assistant" }
func (*assistCmd) Usage() string {
	return `sigbot assist [<question>]

  Starts an interactive session with the AI assistant. The assistant can
  read the trade log, value positions and inspect signals; it never edits
  the log. Requires Gemini credentials in the environment.
`
}

func (*assistCmd) SetFlags(f *flag.FlagSet) {}

func (*assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	initialPrompt := ""
	if f.NArg() > 0 {
		initialPrompt = strings.Join(f.Args(), " ")
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	ledger := DecodeLedgerFile()
	analyst := agent.NewAnalyst(ledger, signalbot.NewEODHD(APIKey()))
	a := agent.New(os.Stdout, os.Stdin, analyst)

	if err := a.Run(ctx, client, initialPrompt); err != nil {
		fmt.Fprintln(os.Stderr, "Agent failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
