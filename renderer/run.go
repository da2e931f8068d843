package renderer

import (
	signalbot "github.com/junsystemtrade/stock-signal-bot"
	"github.com/junsystemtrade/stock-signal-bot/date"
)

// RunMarkdown renders the full run report to a markdown string.
func RunMarkdown(r *signalbot.RunReport) string {
	partials := map[string]string{
		"run_title":    "run_title.md",
		"run_signals":  "run_signals.md",
		"run_holdings": "run_holdings.md",
		"run_digest":   "run_digest.md",
	}
	return renderTemplate("run", "run.md", partials, r)
}

// weeklyView is the data handed to the standalone weekly template.
type weeklyView struct {
	On     date.Date
	Digest []signalbot.Purchase
}

// WeeklyMarkdown renders the weekly purchase digest on its own, for the
// `sigbot weekly` command.
func WeeklyMarkdown(on date.Date, digest []signalbot.Purchase) string {
	return renderTemplate("weekly", "weekly.md", nil, weeklyView{On: on, Digest: digest})
}
