package types

import "github.com/shopspring/decimal"

// Direction classifies a transaction as a buy or a sell, derived from
// the keyword found in the record's category text.
type Direction int

const (
	Buy Direction = iota
	Sell
)

// Keyword returns the category marker identifying this direction.
func (d Direction) Keyword() string {
	if d == Sell {
		return "賣"
	}
	return "買"
}

// Sign returns the weight applied to share counts when computing the
// net position: +1 for buys, -1 for sells.
func (d Direction) Sign() int64 {
	if d == Sell {
		return -1
	}
	return 1
}

func (d Direction) String() string {
	if d == Sell {
		return "SELL"
	}
	return "BUY"
}

// TransactionRecord is one executed trade line extracted from a
// confirmation document. The trade date comes from the owning
// document's filename, not from the row itself. Records are built only
// from rows with at least eight data cells and are never mutated after
// construction.
type TransactionRecord struct {
	TradeDate      string // YYYY/MM/DD
	TradeTime      string
	OrderID        string
	InstrumentCode string
	InstrumentName string
	Category       string
	Shares         int64
	UnitPrice      decimal.Decimal
	GrossAmount    decimal.Decimal
}

// InstrumentKey identifies one instrument across aggregation views.
type InstrumentKey struct {
	Code, Name string
}

// Key returns the record's instrument grouping key.
func (r TransactionRecord) Key() InstrumentKey {
	return InstrumentKey{Code: r.InstrumentCode, Name: r.InstrumentName}
}
