package metadata

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	reCurrencyAmount = regexp.MustCompile(`\$\s*([0-9\.,]{3,})`)
	reKeywordAmount  = regexp.MustCompile(`(?i)(valor\s+total|monto\s+total|total)\s*[:\-]?\s*\$?\s*([0-9\.,]{3,})`)
)

// FindAmount locates the first currency-marked numeric token, e.g. "$1.234,56"
// or "$1,234.56". Returns nil when nothing parses.
func FindAmount(text string) *decimal.Decimal {
	m := reCurrencyAmount.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	return parseAmount(m[1])
}

// FindAmountByKeyword locates a total anchored by "valor total", "monto total"
// or "total". Takes precedence over the bare currency-marked token.
func FindAmountByKeyword(text string) *decimal.Decimal {
	m := reKeywordAmount.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	return parseAmount(m[2])
}

// parseAmount normalizes separators before parsing: exactly one comma plus at
// least one period means Latin-American convention (period thousands, comma
// decimal); otherwise commas are thousands separators.
func parseAmount(raw string) *decimal.Decimal {
	raw = strings.ReplaceAll(raw, " ", "")
	if strings.Count(raw, ",") == 1 && strings.Count(raw, ".") >= 1 {
		raw = strings.ReplaceAll(raw, ".", "")
		raw = strings.ReplaceAll(raw, ",", ".")
	} else {
		raw = strings.ReplaceAll(raw, ",", "")
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil
	}
	return &d
}
