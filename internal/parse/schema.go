package parse

import "strings"

// HeaderSchema is an ordered list of expected header-cell texts
// identifying a recognized transaction-table shape. Matching is
// verbatim equality against the whole ordered list.
type HeaderSchema struct {
	Name    string
	Headers []string
}

// recordColumns is the number of leading columns that map onto a
// TransactionRecord. The legacy schema carries one extra trailing
// column which is discarded.
const recordColumns = 8

var (
	// currentSchema matches confirmation mails issued after the
	// broker's template change.
	currentSchema = HeaderSchema{
		Name: "current",
		Headers: []string{
			"成交時間", "委託單號", "股號", "股票名稱", "類別", "股數", "單價", "價金",
		},
	}

	// legacySchema is the older template with a trailing source column.
	legacySchema = HeaderSchema{
		Name:    "legacy",
		Headers: append(append([]string{}, currentSchema.Headers...), "來源別"),
	}

	// recognizedSchemas in match preference order.
	recognizedSchemas = []HeaderSchema{currentSchema, legacySchema}
)

// Matches reports whether the trimmed header texts equal this schema's
// headers exactly, in order.
func (s HeaderSchema) Matches(headers []string) bool {
	if len(headers) != len(s.Headers) {
		return false
	}
	for i, h := range headers {
		if strings.TrimSpace(h) != s.Headers[i] {
			return false
		}
	}
	return true
}

// MatchSchema returns the first recognized schema the given header
// texts match, if any.
func MatchSchema(headers []string) (HeaderSchema, bool) {
	for _, s := range recognizedSchemas {
		if s.Matches(headers) {
			return s, true
		}
	}
	return HeaderSchema{}, false
}
