package signalbot

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/junsystemtrade/stock-signal-bot/date"
	"github.com/shopspring/decimal"
)

// This file handles the persisted form of the ledger: a CSV file with the
// header Date,Symbol,Status,Buy_Price. The format predates this program and
// is shared with spreadsheet-edited copies, hence the tolerant decoding:
// status cells are trimmed and an unparseable Buy_Price is coerced to zero.

// ledgerHeader is the canonical column order of the ledger file.
var ledgerHeader = []string{"Date", "Symbol", "Status", "Buy_Price"}

// DecodeLedger reads a whole ledger from CSV. The load is wholesale: there
// is no partial read, and a malformed date or status makes the whole file
// an error so the caller can decide how to recover.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("cannot read ledger csv: %w", err)
	}

	ledger := NewLedger()
	for i, rec := range records {
		if i == 0 && isLedgerHeader(rec) {
			continue
		}
		if len(rec) != len(ledgerHeader) {
			return nil, fmt.Errorf("ledger line %d: got %d columns, want %d", i+1, len(rec), len(ledgerHeader))
		}

		on, err := date.Parse(strings.TrimSpace(rec[0]))
		if err != nil {
			return nil, fmt.Errorf("ledger line %d: %w", i+1, err)
		}
		status, err := ParseStatus(strings.TrimSpace(rec[2]))
		if err != nil {
			return nil, fmt.Errorf("ledger line %d: %w", i+1, err)
		}

		price, err := decimal.NewFromString(strings.TrimSpace(rec[3]))
		if err != nil {
			// Spreadsheet edits leave blanks or junk here; a zero price is
			// the historical behavior and keeps the rest of the row.
			log.Printf("warning: ledger line %d: bad Buy_Price %q coerced to 0", i+1, rec[3])
			price = decimal.Zero
		}

		e := Entry{
			Date:     on,
			Symbol:   strings.TrimSpace(rec[1]),
			Status:   status,
			BuyPrice: price,
		}
		if err := ledger.Append(e); err != nil {
			return nil, fmt.Errorf("ledger line %d: %w", i+1, err)
		}
	}
	return ledger, nil
}

// EncodeLedger writes the whole ledger as CSV, overwriting semantics: the
// caller truncates the destination, there is no append mode.
func EncodeLedger(w io.Writer, l *Ledger) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ledgerHeader); err != nil {
		return fmt.Errorf("cannot write ledger header: %w", err)
	}
	for _, e := range l.entries {
		rec := []string{e.Date.String(), e.Symbol, e.Status.String(), e.BuyPrice.String()}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("cannot write ledger entry for %s on %s: %w", e.Symbol, e.Date, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func isLedgerHeader(rec []string) bool {
	if len(rec) != len(ledgerHeader) {
		return false
	}
	for i, col := range ledgerHeader {
		if !strings.EqualFold(strings.TrimSpace(rec[i]), col) {
			return false
		}
	}
	return true
}
