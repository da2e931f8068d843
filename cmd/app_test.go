package cmd

import (
	"reflect"
	"testing"
)

func TestSymbols(t *testing.T) {
	t.Setenv(SymbolsEnv, "")
	defer func() { *symbolsFlag = "" }()

	*symbolsFlag = " AAPL.US , MSFT.US ,"
	if got, want := Symbols(), []string{"AAPL.US", "MSFT.US"}; !reflect.DeepEqual(got, want) {
		t.Errorf("flag symbols = %v, want %v", got, want)
	}

	*symbolsFlag = ""
	t.Setenv(SymbolsEnv, "NVDA.US")
	if got, want := Symbols(), []string{"NVDA.US"}; !reflect.DeepEqual(got, want) {
		t.Errorf("env symbols = %v, want %v", got, want)
	}

	t.Setenv(SymbolsEnv, "")
	if got := Symbols(); !reflect.DeepEqual(got, defaultSymbols) {
		t.Errorf("default symbols = %v, want %v", got, defaultSymbols)
	}
}

func TestLedgerFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	*ledgerFile = dir + "/trade_log.csv"
	defer func() { *ledgerFile = "trade_log.csv" }()

	// a missing file is an empty log, not an error
	l := DecodeLedgerFile()
	if l.Len() != 0 {
		t.Fatalf("missing file decoded to %d entries", l.Len())
	}

	if err := SaveLedgerFile(l); err != nil {
		t.Fatalf("save empty log: %v", err)
	}
	if back := DecodeLedgerFile(); back.Len() != 0 {
		t.Errorf("round trip gained %d entries", back.Len())
	}
}
