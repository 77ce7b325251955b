package ledger

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"trade-confirm-parser/internal/logger"
	"trade-confirm-parser/internal/parse"
	"trade-confirm-parser/internal/types"
)

var datePattern = regexp.MustCompile(`\d{8}`)

// TradeDateFromName derives a trade date from the first contiguous
// 8-digit run in a document identifier, formatted YYYY/MM/DD. Runs
// that are not a valid calendar date yield no result.
func TradeDateFromName(name string) (string, bool) {
	m := datePattern.FindString(name)
	if m == "" {
		return "", false
	}
	if _, err := time.Parse("20060102", m); err != nil {
		return "", false
	}
	return m[:4] + "/" + m[4:6] + "/" + m[6:], true
}

// Collect walks the saved confirmation documents under dir and builds
// the combined transaction ledger. Files are processed in lexicographic
// name order, so runs over the same directory are deterministic.
// Documents without a derivable trade date, without a matching table,
// or that fail to parse contribute nothing; only an unreadable
// directory fails the run.
func Collect(ctx context.Context, dir string) ([]types.TransactionRecord, error) {
	op := logger.StartOperation(ctx, "collect_documents", "dir", dir)
	ctx = op.Context()

	entries, err := os.ReadDir(dir)
	if err != nil {
		err = fmt.Errorf("reading mail directory: %w", err)
		op.EndWithError(err)
		return nil, err
	}

	var records []types.TransactionRecord
	documents := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".html") {
			continue
		}
		date, ok := TradeDateFromName(entry.Name())
		if !ok {
			logger.Skip(ctx, "no trade date in filename", "file", entry.Name())
			continue
		}
		recs, err := parseDocument(ctx, filepath.Join(dir, entry.Name()), date)
		if err != nil {
			logger.ErrorWithErr(ctx, "Failed to parse document", err, "file", entry.Name())
			continue
		}
		documents++
		records = append(records, recs...)
	}

	op.End("documents", documents, "records", len(records))
	return records, nil
}

func parseDocument(ctx context.Context, path, tradeDate string) ([]types.TransactionRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}

	table, schema, ok := parse.FindTransactionTable(ctx, doc)
	if !ok {
		logger.Info(ctx, "No transaction table in document", "file", filepath.Base(path))
		return nil, nil
	}

	records := parse.ExtractRows(ctx, table, tradeDate)
	logger.Info(ctx, "Extracted transaction rows",
		"file", filepath.Base(path), "schema", schema.Name, "rows", len(records))
	return records, nil
}
