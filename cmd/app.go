// Package cmd implements the CLI application to run the signal bot.
package cmd

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	signalbot "github.com/junsystemtrade/stock-signal-bot"
	"github.com/google/subcommands"
)

// Commands lists every subcommand; a main package registers them all.
var Commands = []subcommands.Command{
	&runCmd{},
	&statusCmd{},
	&weeklyCmd{},
	&fetchCmd{},
	&fmtCmd{},
	&topicCmd{},
	&assistCmd{},
}

// Environment variables used when the matching flag is not set.
const (
	SymbolsEnv = "SIGBOT_SYMBOLS"
	WebhookEnv = "DISCORD_WEBHOOK_URL"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	ledgerFile  = flag.String("ledger-file", "trade_log.csv", "Path to the trade log CSV file")
	symbolsFlag = flag.String("symbols", "", "Comma separated watchlist (default: $"+SymbolsEnv+", then the built-in list)")
	webhookFlag = flag.String("webhook-url", "", "Discord webhook URL for reports (default: $"+WebhookEnv+")")
	eodhdKey    = flag.String("eodhd-api-key", "", "eodhd.com API key (default: $"+signalbot.EODHDKeyEnv+")")
	lookback    = flag.Int("lookback", signalbot.DefaultLookback, "Calendar days of price history to fetch")
)

// defaultSymbols is the built-in watchlist, used when neither the flag nor
// the environment names one.
var defaultSymbols = []string{"AAPL.US", "MSFT.US", "NVDA.US", "GOOGL.US", "AMZN.US"}

// Symbols returns the watchlist: flag, then environment, then the built-in
// default. Order is preserved, it is also the report order.
func Symbols() []string {
	raw := *symbolsFlag
	if raw == "" {
		raw = os.Getenv(SymbolsEnv)
	}
	if raw == "" {
		return defaultSymbols
	}
	var symbols []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			symbols = append(symbols, s)
		}
	}
	return symbols
}

// WebhookURL returns the Discord webhook URL, empty when unconfigured.
func WebhookURL() string {
	if *webhookFlag != "" {
		return *webhookFlag
	}
	return os.Getenv(WebhookEnv)
}

// APIKey returns the eodhd.com API key, empty when unconfigured.
func APIKey() string {
	if *eodhdKey != "" {
		return *eodhdKey
	}
	return os.Getenv(signalbot.EODHDKeyEnv)
}

// DecodeLedgerFile loads the trade log. A missing or unreadable file is a
// warning and an empty log: on a fresh deployment the first run creates it.
func DecodeLedgerFile() *signalbot.Ledger {
	f, err := os.Open(*ledgerFile)
	if err != nil {
		log.Printf("warning: cannot open trade log %q, starting empty: %v", *ledgerFile, err)
		return signalbot.NewLedger()
	}
	defer f.Close()

	l, err := signalbot.DecodeLedger(f)
	if err != nil {
		log.Printf("warning: cannot read trade log %q, starting empty: %v", *ledgerFile, err)
		return signalbot.NewLedger()
	}
	return l
}

// SaveLedgerFile persists the trade log. It writes to a temporary file and
// renames, so a failed write never truncates the existing log.
func SaveLedgerFile(l *signalbot.Ledger) error {
	tmp := *ledgerFile + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("cannot create %q: %w", tmp, err)
	}
	if err := signalbot.EncodeLedger(f, l); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("cannot write trade log: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("cannot write trade log: %w", err)
	}
	return os.Rename(tmp, *ledgerFile)
}
