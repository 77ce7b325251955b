package parse

import (
	"context"

	"github.com/PuerkitoBio/goquery"

	"trade-confirm-parser/internal/logger"
	"trade-confirm-parser/internal/types"
)

// ExtractRows walks the body rows of a matched transaction table and
// builds one TransactionRecord per row carrying enough data cells.
// Rows with fewer than eight cells are rejected, never padded. A
// legacy table's trailing source column is discarded. Row order is
// preserved.
func ExtractRows(ctx context.Context, table *goquery.Selection, tradeDate string) []types.TransactionRecord {
	var records []types.TransactionRecord

	table.Find("tbody").First().Find("tr").Each(func(i int, row *goquery.Selection) {
		cells := cellTexts(row)
		if len(cells) < recordColumns {
			logger.Skip(ctx, "row has too few cells", "row_index", i, "cells", len(cells))
			return
		}
		records = append(records, newRecord(tradeDate, cells))
	})

	return records
}

// newRecord maps the first eight cells, in schema order, onto a
// record. Share and amount cells are normalized here so downstream
// aggregation only ever sees typed values.
func newRecord(tradeDate string, cells []string) types.TransactionRecord {
	return types.TransactionRecord{
		TradeDate:      tradeDate,
		TradeTime:      cells[0],
		OrderID:        cells[1],
		InstrumentCode: cells[2],
		InstrumentName: cells[3],
		Category:       cells[4],
		Shares:         ParseShares(cells[5]),
		UnitPrice:      ParseAmount(cells[6]),
		GrossAmount:    ParseAmount(cells[7]),
	}
}
