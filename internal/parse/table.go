package parse

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"trade-confirm-parser/internal/logger"
)

// FindTransactionTable scans every table in the document in document
// order and returns the first one whose header row matches a
// recognized schema. Tables without a direct <thead> holding exactly
// one header row, or whose header texts differ from every recognized
// schema, are skipped. A document with no matching table is a normal
// outcome (it may simply carry no executed trades).
func FindTransactionTable(ctx context.Context, doc *goquery.Document) (*goquery.Selection, HeaderSchema, bool) {
	var (
		match  *goquery.Selection
		schema HeaderSchema
	)

	doc.Find("table").EachWithBreak(func(i int, table *goquery.Selection) bool {
		thead := table.ChildrenFiltered("thead")
		if thead.Length() == 0 {
			logger.Debug(ctx, "Table has no header section", "table_index", i)
			return true
		}

		rows := thead.First().ChildrenFiltered("tr")
		if rows.Length() != 1 {
			logger.Debug(ctx, "Table header section is not a single row", "table_index", i, "rows", rows.Length())
			return true
		}

		headers := cellTexts(rows.First())
		s, ok := MatchSchema(headers)
		if !ok {
			logger.Debug(ctx, "Table header does not match a recognized schema", "table_index", i, "headers", headers)
			return true
		}

		match = table
		schema = s
		return false
	})

	return match, schema, match != nil
}

// cellTexts collects the trimmed texts of the row's direct data cells.
func cellTexts(row *goquery.Selection) []string {
	var texts []string
	row.ChildrenFiltered("td").Each(func(_ int, cell *goquery.Selection) {
		texts = append(texts, strings.TrimSpace(cell.Text()))
	})
	return texts
}
