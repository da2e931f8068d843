package agent

import (
	"context"
	"fmt"
	"strings"

	signalbot "github.com/junsystemtrade/stock-signal-bot"
	"github.com/junsystemtrade/stock-signal-bot/date"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// newFacilitator builds the expert that fronts the conversation.
func newFacilitator(experts ...*Expert) *Expert {
	functions := make([]Function, 0, len(experts))
	for _, e := range experts {
		functions = append(functions, expertFunction(e))
	}
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(functions)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are the assistant of a daily stock signal bot. The user runs a
			small paper-trading bot: it watches a fixed list of tickers, fires a
			buy signal when the stochastic oscillator says a symbol is oversold,
			and records one share per signal in a trade log.

			Use the Analyst's functions whenever the user asks about the trade
			log, the holdings, the valuation, or a symbol's signal. Never invent
			numbers: every figure in your answer must come from a function call.
			Keep answers short and concrete; amounts are in US dollars.
		`}}},
		},
		Library: NewLibrary(functions),
	}
}

// expertFunction exposes another expert as a callable question function.
func expertFunction(e *Expert) Function {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        e.Name,
			Description: e.Description,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"question": {
						Type:        genai.TypeString,
						Description: "The question to ask the expert.",
					},
				},
				Required: []string{"question"},
			},
		},
		Run: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			fresp := &genai.FunctionResponse{ID: id, Name: e.Name}
			question, ok := args["question"].(string)
			if !ok {
				fresp.Response = map[string]any{"error": fmt.Sprintf("invalid question type %T", args["question"])}
				return fresp
			}
			content, err := e.Ask(ctx, &genai.Part{Text: question})
			if err != nil {
				fresp.Response = map[string]any{"error": err.Error()}
				return fresp
			}
			fresp.Response = map[string]any{"output": content.Parts[0].Text}
			return fresp
		},
	}
}

// NewAnalyst returns the expert that reads the bot's trade log and market
// data. Its functions are read only: the assist session never mutates the
// log.
func NewAnalyst(ledger *signalbot.Ledger, provider signalbot.Provider) *Expert {
	functions := []Function{
		tradeLogFunc(ledger),
		positionFunc(ledger, provider),
		signalsFunc(provider),
	}
	return &Expert{
		Name: "Analyst",
		Description: `The Analyst reads the bot's trade log and market data.
		Ask the Analyst for the raw trade log, a symbol's position and
		valuation, or a symbol's current stochastic oscillator values.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(functions)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are the analyst of a stock signal bot. The trade log records one
			share per row: a "signal" row is a fired but unfilled buy signal, a
			"holding" row is filled at Buy_Price. Use the tools to read the log,
			value positions and inspect signals, then answer with the figures
			you found.
		`}}},
		},
		Library: NewLibrary(functions),
	}
}

func tradeLogFunc(ledger *signalbot.Ledger) Function {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "TradeLog",
			Description: `TradeLog returns the bot's whole trade log as CSV with the
			header Date,Symbol,Status,Buy_Price. One row is one share.`,
			Parameters: &genai.Schema{Type: genai.TypeObject},
		},
		Run: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			var b strings.Builder
			if err := signalbot.EncodeLedger(&b, ledger); err != nil {
				return &genai.FunctionResponse{ID: id, Name: "TradeLog",
					Response: map[string]any{"error": err.Error()}}
			}
			return &genai.FunctionResponse{ID: id, Name: "TradeLog",
				Response: map[string]any{"output": b.String()}}
		},
	}
}

func positionFunc(ledger *signalbot.Ledger, provider signalbot.Provider) Function {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Position",
			Description: `Position values one symbol's holdings at the latest
			available closing price: share count, cost basis, market value and
			profit or loss, in US dollars.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"symbol": {
						Type:        genai.TypeString,
						Description: `The eodhd ticker, e.g. "AAPL.US".`,
					},
				},
				Required: []string{"symbol"},
			},
		},
		Run: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			fail := func(err error) *genai.FunctionResponse {
				return &genai.FunctionResponse{ID: id, Name: "Position",
					Response: map[string]any{"error": err.Error()}}
			}
			symbol, ok := args["symbol"].(string)
			if !ok {
				return fail(fmt.Errorf("invalid symbol type %T", args["symbol"]))
			}
			today := date.Today()
			bars, err := provider.Daily(symbol, today.Add(-signalbot.DefaultLookback), today)
			if err != nil {
				return fail(err)
			}
			last, ok := signalbot.LastBar(signalbot.ValidBars(bars))
			if !ok {
				return fail(fmt.Errorf("no usable price for %s", symbol))
			}
			pos := ledger.Position(symbol, last.Close)
			out := fmt.Sprintf("%s: %d shares, price %s (close of %s), cost basis %s, market value %s, P&L %s",
				symbol, pos.Shares, signalbot.USD(pos.Price), last.Date,
				signalbot.USD(pos.CostBasis), signalbot.USD(pos.MarketValue), signalbot.USD(pos.PnL).SignedString())
			return &genai.FunctionResponse{ID: id, Name: "Position",
				Response: map[string]any{"output": out}}
		},
	}
}

func signalsFunc(provider signalbot.Provider) Function {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Signals",
			Description: `Signals computes the stochastic oscillator (14/3) for a
			symbol and returns the latest %K, %D and whether a buy signal is
			active. A buy signal means the symbol looks oversold (K or D at or
			under 25).`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"symbol": {
						Type:        genai.TypeString,
						Description: `The eodhd ticker, e.g. "AAPL.US".`,
					},
				},
				Required: []string{"symbol"},
			},
		},
		Run: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			fail := func(err error) *genai.FunctionResponse {
				return &genai.FunctionResponse{ID: id, Name: "Signals",
					Response: map[string]any{"error": err.Error()}}
			}
			symbol, ok := args["symbol"].(string)
			if !ok {
				return fail(fmt.Errorf("invalid symbol type %T", args["symbol"]))
			}
			today := date.Today()
			bars, err := provider.Daily(symbol, today.Add(-signalbot.DefaultLookback), today)
			if err != nil {
				return fail(err)
			}
			rows := signalbot.ComputeSignals(signalbot.ValidBars(bars))
			if rows == nil {
				return fail(fmt.Errorf("not enough history for %s", symbol))
			}
			sig := rows[len(rows)-1]
			out := fmt.Sprintf("%s on %s: close %s, %%K %s", symbol, sig.Date, sig.Close, sig.K.StringFixed(1))
			if sig.HasD {
				out += fmt.Sprintf(", %%D %s", sig.D.StringFixed(1))
			}
			if sig.Buy {
				out += " (buy signal active)"
			} else {
				out += " (no buy signal)"
			}
			return &genai.FunctionResponse{ID: id, Name: "Signals",
				Response: map[string]any{"output": out}}
		},
	}
}
