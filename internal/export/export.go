package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/xuri/excelize/v2"

	"trade-confirm-parser/internal/logger"
	"trade-confirm-parser/internal/store"
	"trade-confirm-parser/internal/summary"
	"trade-confirm-parser/internal/types"
)

var (
	ledgerHeader = []string{
		"TradeDate", "TradeTime", "OrderId", "InstrumentCode",
		"InstrumentName", "Category", "Shares", "UnitPrice", "GrossAmount",
	}
	summaryHeader = []string{
		"InstrumentCode", "InstrumentName", "TotalShares", "TotalCost",
		"AverageCost", "CategoryLabel", "NetShares",
	}
)

// WriteLedger exports the full transaction ledger, one row per record
// in document order. An empty ledger writes nothing.
func WriteLedger(ctx context.Context, cfg *store.Config, records []types.TransactionRecord) error {
	if len(records) == 0 {
		logger.Info(ctx, "Ledger is empty, skipping ledger export")
		return nil
	}

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.TradeDate, r.TradeTime, r.OrderID, r.InstrumentCode,
			r.InstrumentName, r.Category,
			strconv.FormatInt(r.Shares, 10),
			r.UnitPrice.String(),
			r.GrossAmount.String(),
		})
	}

	if err := writeTable(cfg.Export.Format, cfg.Export.LedgerFile, ledgerHeader, rows); err != nil {
		return fmt.Errorf("writing ledger export: %w", err)
	}
	logger.Info(ctx, "Ledger exported", "file", cfg.Export.LedgerFile, "rows", len(rows))
	return nil
}

// WriteSummary exports the per-instrument-direction cost summary. No
// summary rows means nothing is written.
func WriteSummary(ctx context.Context, cfg *store.Config, sumRows []summary.Row) error {
	if len(sumRows) == 0 {
		logger.Info(ctx, "Summary is empty, skipping summary export")
		return nil
	}

	rows := make([][]string, 0, len(sumRows))
	for _, s := range sumRows {
		rows = append(rows, []string{
			s.InstrumentCode, s.InstrumentName,
			strconv.FormatInt(s.TotalShares, 10),
			s.TotalCost.String(),
			s.AverageCost.Round(4).String(),
			s.CategoryLabel,
			strconv.FormatInt(s.NetShares, 10),
		})
	}

	if err := writeTable(cfg.Export.Format, cfg.Export.SummaryFile, summaryHeader, rows); err != nil {
		return fmt.Errorf("writing summary export: %w", err)
	}
	logger.Info(ctx, "Summary exported", "file", cfg.Export.SummaryFile, "rows", len(rows))
	return nil
}

func writeTable(format, path string, header []string, rows [][]string) error {
	if format == "csv" {
		return writeCSV(path, header, rows)
	}
	return writeXLSX(path, header, rows)
}

func writeCSV(path string, header []string, rows [][]string) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()

	w := csv.NewWriter(out)
	defer w.Flush()
	if err := w.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func writeXLSX(path string, header []string, rows [][]string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if err := setRow(f, sheet, 1, header); err != nil {
		return err
	}
	for i, row := range rows {
		if err := setRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}
	return f.SaveAs(path)
}

func setRow(f *excelize.File, sheet string, rowIndex int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowIndex)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}
