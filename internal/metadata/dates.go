// Package metadata holds the field-extraction heuristics. Every heuristic is
// total and failure-tolerant: no match or a failed parse yields nil or empty,
// never an error and never a malformed value.
package metadata

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	// 12/02/2026 or 12-02-2026, 1-2 digit day/month, 2-4 digit year
	reDateDMY = regexp.MustCompile(`\b(\d{1,2})[/-](\d{1,2})[/-](\d{2,4})\b`)
	// 2026-02-12
	reDateYMD = regexp.MustCompile(`\b(\d{4})-(\d{1,2})-(\d{1,2})\b`)
)

// FindDates scans for date tokens in both shapes, D/M/Y first. Two-digit years
// are promoted by adding 2000. Calendar-invalid dates are silently discarded.
func FindDates(text string) []time.Time {
	var found []time.Time
	for _, m := range reDateDMY.FindAllStringSubmatch(text, -1) {
		if d, ok := makeDate(m[3], m[2], m[1]); ok {
			found = append(found, d)
		}
	}
	for _, m := range reDateYMD.FindAllStringSubmatch(text, -1) {
		if d, ok := makeDate(m[1], m[2], m[3]); ok {
			found = append(found, d)
		}
	}
	return found
}

// FindDateByKeyword looks for a D/M/Y token within a bounded lookahead window
// after the keyword phrase. Used for contract validity ranges.
func FindDateByKeyword(text, keywordPattern string) *time.Time {
	re, err := regexp.Compile(`(?i)(?:` + keywordPattern + `).{0,40}?(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`)
	if err != nil {
		return nil
	}
	m := re.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	parts := strings.Split(strings.ReplaceAll(m[1], "-", "/"), "/")
	if len(parts) != 3 {
		return nil
	}
	d, ok := makeDate(parts[2], parts[1], parts[0])
	if !ok {
		return nil
	}
	return &d
}

// makeDate validates year/month/day strings into a UTC date. Invalid calendar
// dates (day 31 in a 30-day month, month 13, ...) yield ok=false.
func makeDate(yearS, monthS, dayS string) (time.Time, bool) {
	year, err1 := strconv.Atoi(yearS)
	month, err2 := strconv.Atoi(monthS)
	day, err3 := strconv.Atoi(dayS)
	if err1 != nil || err2 != nil || err3 != nil {
		return time.Time{}, false
	}
	if year < 100 {
		year += 2000
	}
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes overflow (31/04 becomes 01/05); reject those
	if d.Year() != year || d.Month() != time.Month(month) || d.Day() != day {
		return time.Time{}, false
	}
	return d, true
}
