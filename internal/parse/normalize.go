package parse

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// The broker formats numbers with thousands separators ("12,345").
// Malformed or empty cells coerce to zero instead of failing the run:
// a single garbled cell must not abort aggregation of an otherwise
// valid document. Callers relying on exact totals should treat a zero
// from a non-empty cell as a possible understatement.

// ParseShares normalizes a share-count cell into a non-negative
// integer. Anything that does not parse as an unsigned integer after
// separator stripping yields zero.
func ParseShares(text string) int64 {
	n, err := strconv.ParseUint(stripSeparators(text), 10, 63)
	if err != nil {
		return 0
	}
	return int64(n)
}

// ParseAmount normalizes a monetary cell into a decimal. Unparseable
// text yields decimal zero.
func ParseAmount(text string) decimal.Decimal {
	d, err := decimal.NewFromString(stripSeparators(text))
	if err != nil {
		return decimal.Zero
	}
	return d
}

func stripSeparators(text string) string {
	return strings.ReplaceAll(strings.TrimSpace(text), ",", "")
}
