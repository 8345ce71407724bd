package metadata

import (
	"regexp"
	"strings"
)

// Label-anchored reference patterns, tried in order; the first capture wins.
var referencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:n[°o]\.?\s*|número\s*)([A-Z0-9\-\/]{4,})`),
	regexp.MustCompile(`(?i)(?:oc|orden)\s*[:#]?\s*([A-Z0-9\-\/]{4,})`),
	regexp.MustCompile(`(?i)(?:contrato)\s*[:#]?\s*([A-Z0-9\-\/]{4,})`),
}

// Purchase-order specific patterns, used as a type-conditional override.
var purchaseOrderPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bOC\b\s*[:#]?\s*([A-Z0-9\-\/]{4,})`),
	regexp.MustCompile(`(?i)\bOrden\s+de\s+Compra\b\s*[:#]?\s*([A-Z0-9\-\/]{4,})`),
}

// FindReferenceNumber returns the first label-anchored alphanumeric token
// ("N° CT-2026/001", "Contrato: 2026-15", ...), or "" when nothing matches.
func FindReferenceNumber(text string) string {
	return firstCapture(referencePatterns, text)
}

// FindPurchaseOrderNumber returns a PO-styled reference ("OC 4500123456",
// "Orden de Compra # OC-88"), or "" when nothing matches.
func FindPurchaseOrderNumber(text string) string {
	return firstCapture(purchaseOrderPatterns, text)
}

func firstCapture(patterns []*regexp.Regexp, text string) string {
	for _, p := range patterns {
		if m := p.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}
