package export

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"trade-confirm-parser/internal/store"
	"trade-confirm-parser/internal/summary"
	"trade-confirm-parser/internal/types"
)

func testConfig(t *testing.T, format string) *store.Config {
	t.Helper()
	dir := t.TempDir()
	cfg := store.Default()
	cfg.Export.Format = format
	cfg.Export.LedgerFile = filepath.Join(dir, "ledger."+format)
	cfg.Export.SummaryFile = filepath.Join(dir, "summary."+format)
	return cfg
}

func sampleRecords() []types.TransactionRecord {
	return []types.TransactionRecord{
		{
			TradeDate:      "2024/01/15",
			TradeTime:      "09:00:01",
			OrderID:        "A001",
			InstrumentCode: "2330",
			InstrumentName: "台積電",
			Category:       "現買",
			Shares:         1000,
			UnitPrice:      decimal.NewFromInt(600),
			GrossAmount:    decimal.NewFromInt(600000),
		},
	}
}

func TestWriteLedgerCSV(t *testing.T) {
	cfg := testConfig(t, "csv")
	if err := WriteLedger(context.Background(), cfg, sampleRecords()); err != nil {
		t.Fatalf("WriteLedger failed: %v", err)
	}

	f, err := os.Open(cfg.Export.LedgerFile)
	if err != nil {
		t.Fatalf("Expected ledger file to exist: %v", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("Failed to read ledger csv: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("Expected header plus 1 row, got %d rows", len(rows))
	}
	if rows[0][0] != "TradeDate" || rows[0][8] != "GrossAmount" {
		t.Errorf("Unexpected header: %v", rows[0])
	}
	want := []string{"2024/01/15", "09:00:01", "A001", "2330", "台積電", "現買", "1000", "600", "600000"}
	for i, cell := range want {
		if rows[1][i] != cell {
			t.Errorf("Column %d: expected %q, got %q", i, cell, rows[1][i])
		}
	}
}

func TestWriteLedgerXLSX(t *testing.T) {
	cfg := testConfig(t, "xlsx")
	if err := WriteLedger(context.Background(), cfg, sampleRecords()); err != nil {
		t.Fatalf("WriteLedger failed: %v", err)
	}

	f, err := excelize.OpenFile(cfg.Export.LedgerFile)
	if err != nil {
		t.Fatalf("Expected readable xlsx: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		t.Fatalf("Failed to read sheet: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("Expected header plus 1 row, got %d", len(rows))
	}
	if rows[1][3] != "2330" || rows[1][6] != "1000" {
		t.Errorf("Unexpected row content: %v", rows[1])
	}
}

func TestWriteLedgerEmptySkipsFile(t *testing.T) {
	cfg := testConfig(t, "csv")
	if err := WriteLedger(context.Background(), cfg, nil); err != nil {
		t.Fatalf("WriteLedger failed: %v", err)
	}
	if _, err := os.Stat(cfg.Export.LedgerFile); !os.IsNotExist(err) {
		t.Error("Expected no ledger file for empty ledger")
	}
}

func TestWriteSummaryCSV(t *testing.T) {
	cfg := testConfig(t, "csv")
	rows := []summary.Row{
		{
			InstrumentCode: "2603",
			InstrumentName: "長榮",
			TotalShares:    300,
			TotalCost:      decimal.NewFromInt(3200),
			AverageCost:    decimal.NewFromInt(3200).Div(decimal.NewFromInt(300)),
			CategoryLabel:  "現買",
			NetShares:      60,
		},
	}
	if err := WriteSummary(context.Background(), cfg, rows); err != nil {
		t.Fatalf("WriteSummary failed: %v", err)
	}

	f, err := os.Open(cfg.Export.SummaryFile)
	if err != nil {
		t.Fatalf("Expected summary file to exist: %v", err)
	}
	defer f.Close()

	got, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("Failed to read summary csv: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Expected header plus 1 row, got %d", len(got))
	}
	want := []string{"2603", "長榮", "300", "3200", "10.6667", "現買", "60"}
	for i, cell := range want {
		if got[1][i] != cell {
			t.Errorf("Column %d: expected %q, got %q", i, cell, got[1][i])
		}
	}
}
