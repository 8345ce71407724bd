package metadata

import "strings"

// Role keywords that mark a line as naming a party.
var partyKeywords = []string{"contratante", "contratista", "proveedor", "cliente"}

const (
	partiesMaxLines = 250 // bounded scan cost on large documents
	partiesMaxHits  = 3
	partiesMaxRunes = 500
)

// FindParties scans the first 250 non-blank lines for role-keyword lines and
// returns up to three of them joined with " | ", truncated to 500 runes.
func FindParties(text string) string {
	var hits []string
	scanned := 0
	for _, ln := range strings.Split(text, "\n") {
		ln = strings.TrimSpace(ln)
		if ln == "" {
			continue
		}
		scanned++
		if scanned > partiesMaxLines {
			break
		}
		lower := strings.ToLower(ln)
		for _, kw := range partyKeywords {
			if strings.Contains(lower, kw) {
				hits = append(hits, ln)
				break
			}
		}
		if len(hits) == partiesMaxHits {
			break
		}
	}

	joined := strings.Join(hits, " | ")
	if runes := []rune(joined); len(runes) > partiesMaxRunes {
		return string(runes[:partiesMaxRunes])
	}
	return joined
}
