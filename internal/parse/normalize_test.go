package parse

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseSharesStripsThousandsSeparators(t *testing.T) {
	if got := ParseShares("1,234"); got != 1234 {
		t.Errorf("Expected 1234, got %d", got)
	}
	if got := ParseShares("12,345,678"); got != 12345678 {
		t.Errorf("Expected 12345678, got %d", got)
	}
	if got := ParseShares(" 500 "); got != 500 {
		t.Errorf("Expected 500, got %d", got)
	}
}

func TestParseSharesCoercesGarbageToZero(t *testing.T) {
	for _, text := range []string{"abc", "", "12a4", "-100", "1.5"} {
		if got := ParseShares(text); got != 0 {
			t.Errorf("Expected %q to coerce to 0, got %d", text, got)
		}
	}
}

func TestParseAmount(t *testing.T) {
	if got := ParseAmount("12,345.67"); !got.Equal(decimal.RequireFromString("12345.67")) {
		t.Errorf("Expected 12345.67, got %s", got)
	}
	if got := ParseAmount("1,000"); !got.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("Expected 1000, got %s", got)
	}
}

func TestParseAmountCoercesGarbageToZero(t *testing.T) {
	for _, text := range []string{"abc", "", "--"} {
		if got := ParseAmount(text); !got.IsZero() {
			t.Errorf("Expected %q to coerce to zero, got %s", text, got)
		}
	}
}
