package extract

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	reCRLF       = regexp.MustCompile(`\r\n?`)
	reHSpace     = regexp.MustCompile(`[ \t]{2,}`)
	reMultiBlank = regexp.MustCompile(`\n{3,}`)
)

// noiseRunes are symbols characteristic of OCR garbage. A line whose noise
// fraction exceeds noiseRatio is dropped entirely.
const noiseRunes = "�§©®™{}[]|`~"

const noiseRatio = 0.15

// Normalize cleans raw or OCR text: unified line endings, collapsed horizontal
// whitespace, at most one blank line between paragraphs, corrupted lines
// removed. Blank lines are always kept. Idempotent.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	s := reCRLF.ReplaceAllString(text, "\n")
	s = reHSpace.ReplaceAllString(s, " ")
	s = reMultiBlank.ReplaceAllString(s, "\n\n")

	lines := strings.Split(s, "\n")
	kept := make([]string, 0, len(lines))
	for _, ln := range lines {
		ln = strings.TrimSpace(ln)
		if ln == "" {
			kept = append(kept, "")
			continue
		}
		if noiseFraction(ln) > noiseRatio {
			continue
		}
		kept = append(kept, ln)
	}

	out := strings.Join(kept, "\n")
	// dropping a line can merge blank-line runs; collapse again so the filter
	// stays idempotent
	out = reMultiBlank.ReplaceAllString(out, "\n\n")
	return strings.TrimSpace(out)
}

func noiseFraction(line string) float64 {
	total := utf8.RuneCountInString(line)
	if total == 0 {
		return 0
	}
	noise := 0
	for _, r := range line {
		if strings.ContainsRune(noiseRunes, r) {
			noise++
		}
	}
	return float64(noise) / float64(total)
}
