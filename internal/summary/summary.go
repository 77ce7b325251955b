package summary

import (
	"context"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"trade-confirm-parser/internal/logger"
	"trade-confirm-parser/internal/types"
)

// categoryPrefix is prepended to the direction keyword to build the
// display label of a summary row ("現買" / "現賣").
const categoryPrefix = "現"

// Row is one line of the per-instrument cost summary, keyed by
// instrument and direction. NetShares is the signed share total across
// both directions and is identical on the buy and sell rows of the
// same instrument.
type Row struct {
	InstrumentCode string
	InstrumentName string
	TotalShares    int64
	TotalCost      decimal.Decimal
	AverageCost    decimal.Decimal
	CategoryLabel  string
	NetShares      int64
}

// Classify derives a record's direction from its category text. The
// text must contain exactly one of the buy/sell keywords; a category
// matching neither or both is not classifiable.
func Classify(category string) (types.Direction, bool) {
	buy := strings.Contains(category, types.Buy.Keyword())
	sell := strings.Contains(category, types.Sell.Keyword())
	switch {
	case buy && !sell:
		return types.Buy, true
	case sell && !buy:
		return types.Sell, true
	}
	return 0, false
}

// Aggregate groups the ledger by instrument within each direction,
// sums shares and traded cost, derives the average cost, and joins the
// per-instrument net position onto every row. Buy rows come first,
// then sell rows, each sorted by instrument code then name. An empty
// ledger yields nil. Records whose category is not classifiable are
// excluded from both directions with a warning.
func Aggregate(ctx context.Context, records []types.TransactionRecord) []Row {
	if len(records) == 0 {
		return nil
	}

	op := logger.StartOperation(ctx, "aggregate_ledger", "records", len(records))
	ctx = op.Context()

	subsets := map[types.Direction][]types.TransactionRecord{}
	for _, r := range records {
		dir, ok := Classify(r.Category)
		if !ok {
			logger.Warn(ctx, "Record category is not classifiable, excluded from summary",
				"category", r.Category, "order_id", r.OrderID, "instrument", r.InstrumentCode)
			continue
		}
		subsets[dir] = append(subsets[dir], r)
	}

	var rows []Row
	net := map[types.InstrumentKey]int64{}
	for _, dir := range []types.Direction{types.Buy, types.Sell} {
		for _, g := range groupByInstrument(subsets[dir]) {
			avg := decimal.Zero
			if g.shares != 0 {
				avg = g.cost.Div(decimal.NewFromInt(g.shares))
			}
			rows = append(rows, Row{
				InstrumentCode: g.key.Code,
				InstrumentName: g.key.Name,
				TotalShares:    g.shares,
				TotalCost:      g.cost,
				AverageCost:    avg,
				CategoryLabel:  categoryPrefix + dir.Keyword(),
			})
			net[g.key] += g.shares * dir.Sign()
		}
	}

	for i := range rows {
		rows[i].NetShares = net[types.InstrumentKey{Code: rows[i].InstrumentCode, Name: rows[i].InstrumentName}]
	}

	op.End("rows", len(rows))
	return rows
}

type instrumentGroup struct {
	key    types.InstrumentKey
	shares int64
	cost   decimal.Decimal
}

// groupByInstrument sums shares and gross amounts per instrument and
// returns the groups sorted by instrument code then name.
func groupByInstrument(records []types.TransactionRecord) []instrumentGroup {
	groups := map[types.InstrumentKey]*instrumentGroup{}
	for _, r := range records {
		g := groups[r.Key()]
		if g == nil {
			g = &instrumentGroup{key: r.Key(), cost: decimal.Zero}
			groups[r.Key()] = g
		}
		g.shares += r.Shares
		g.cost = g.cost.Add(r.GrossAmount)
	}

	ordered := make([]instrumentGroup, 0, len(groups))
	for _, g := range groups {
		ordered = append(ordered, *g)
	}
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].key.Code != ordered[j].key.Code {
			return ordered[i].key.Code < ordered[j].key.Code
		}
		return ordered[i].key.Name < ordered[j].key.Name
	})
	return ordered
}
