// Package tripextract turns unstructured text — pasted emails, out-of-office
// messages, boarding passes, text pulled out of PDFs — into structured trip
// suggestions.
//
// Everything in this package is pure, synchronous string processing: no I/O,
// no shared mutable state, safe to call concurrently. Unparseable input
// degrades to fewer (or zero) suggestions; nothing here returns an error or
// panics on user text.
package tripextract

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateEvidence is the normalized output of the date grammar: either an exact
// visit span, approximate month/year evidence, or nothing at all. The
// grammar never fabricates fields without textual evidence.
type DateEvidence struct {
	Visit       *time.Time
	End         *time.Time
	ApproxMonth int // 1-12, 0 = unset
	ApproxYear  int // 4-digit, 0 = unset
}

// Empty reports whether no date evidence was found.
func (e DateEvidence) Empty() bool {
	return e.Visit == nil && e.End == nil && e.ApproxMonth == 0 && e.ApproxYear == 0
}

// monthsByName maps lowercase month names and their common abbreviations to
// calendar months. "sept" is the one four-letter abbreviation in the wild.
var monthsByName = map[string]time.Month{
	"jan": time.January, "january": time.January,
	"feb": time.February, "february": time.February,
	"mar": time.March, "march": time.March,
	"apr": time.April, "april": time.April,
	"may": time.May,
	"jun": time.June, "june": time.June,
	"jul": time.July, "july": time.July,
	"aug": time.August, "august": time.August,
	"sep": time.September, "sept": time.September, "september": time.September,
	"oct": time.October, "october": time.October,
	"nov": time.November, "november": time.November,
	"dec": time.December, "december": time.December,
}

// monthByName resolves a month name or abbreviation, case-insensitively.
func monthByName(name string) (time.Month, bool) {
	m, ok := monthsByName[strings.ToLower(name)]
	return m, ok
}

// makeDate builds a UTC date and rejects calendar-invalid component sets.
// time.Date normalizes out-of-range values (Feb 30 becomes Mar 2), so the
// round-trip check is what actually catches "Feb 30".
func makeDate(year int, month time.Month, day int) (*time.Time, bool) {
	if year < 1900 || year > 2099 {
		return nil, false
	}
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return nil, false
	}
	return &t, true
}

// expandYear turns a two-digit year into 20xx; four-digit years pass through.
func expandYear(y int) int {
	if y < 100 {
		return y + 2000
	}
	return y
}

// atoi is strconv.Atoi for regexp groups already known to be digits.
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

// rangeSep separates the two ends of a date range.
const rangeSep = `\s*(?:to|until|through|thru|[-\x{2013}\x{2014}])\s*`

// monthDayYear matches "Mon D, YYYY" / "March 3rd 2020" style fragments.
const monthDayYear = `([A-Za-z]{3,9})\.?\s+(\d{1,2})(?:st|nd|rd|th)?,?\s+(\d{4})`

// dateMatcher is one entry in the ordered grammar table: a pattern plus the
// function that turns its capture groups into evidence. Parse returns false
// when the groups are not a valid calendar date, in which case the scan
// moves on to the next matcher instead of failing.
type dateMatcher struct {
	name  string
	re    *regexp.Regexp
	parse func(g []string) (DateEvidence, bool)
}

// dateMatchers is evaluated top to bottom; the first matcher whose regexp
// hits and whose groups survive calendar validation wins.
//
// The US numeric form (M/D/Y) deliberately sits above the European slash
// form (D/M/Y). For day and month both <= 12 the two are indistinguishable
// ("3/4/2020"), and this priority order is the documented tie-break: the US
// reading wins unless it fails calendar validation. Locale detection is out
// of scope; misreads of genuinely European dates with small day numbers are
// a known limitation.
var dateMatchers = []dateMatcher{
	{
		name: "numeric range (US order)",
		re:   regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})/(\d{4}|\d{2})` + rangeSep + `(\d{1,2})/(\d{1,2})/(\d{4}|\d{2})\b`),
		parse: func(g []string) (DateEvidence, bool) {
			return numericRange(g, false)
		},
	},
	{
		name: "month-name range, full dates",
		re:   regexp.MustCompile(`(?i)\b` + monthDayYear + rangeSep + monthDayYear + `\b`),
		parse: func(g []string) (DateEvidence, bool) {
			start, ok := monthNameDate(g[1], g[2], g[3])
			if !ok {
				return DateEvidence{}, false
			}
			end, ok := monthNameDate(g[4], g[5], g[6])
			if !ok {
				return DateEvidence{}, false
			}
			return spanEvidence(start, end), true
		},
	},
	{
		name: "month-name range, shared trailing year",
		re:   regexp.MustCompile(`(?i)\b([A-Za-z]{3,9})\.?\s+(\d{1,2})(?:st|nd|rd|th)?` + rangeSep + `([A-Za-z]{3,9})\.?\s+(\d{1,2})(?:st|nd|rd|th)?,?\s+(\d{4})\b`),
		parse: func(g []string) (DateEvidence, bool) {
			start, ok := monthNameDate(g[1], g[2], g[5])
			if !ok {
				return DateEvidence{}, false
			}
			end, ok := monthNameDate(g[3], g[4], g[5])
			if !ok {
				return DateEvidence{}, false
			}
			return spanEvidence(start, end), true
		},
	},
	{
		name: "same-month range",
		re:   regexp.MustCompile(`(?i)\b([A-Za-z]{3,9})\.?\s+(\d{1,2})(?:st|nd|rd|th)?\s*[-\x{2013}]\s*(\d{1,2})(?:st|nd|rd|th)?,?\s+(\d{4})\b`),
		parse: func(g []string) (DateEvidence, bool) {
			start, ok := monthNameDate(g[1], g[2], g[4])
			if !ok {
				return DateEvidence{}, false
			}
			end, ok := monthNameDate(g[1], g[3], g[4])
			if !ok {
				return DateEvidence{}, false
			}
			return spanEvidence(start, end), true
		},
	},
	{
		name: "ISO range",
		re:   regexp.MustCompile(`\b(\d{4})-(\d{2})-(\d{2})` + rangeSep + `(\d{4})-(\d{2})-(\d{2})\b`),
		parse: func(g []string) (DateEvidence, bool) {
			start, ok := makeDate(atoi(g[1]), time.Month(atoi(g[2])), atoi(g[3]))
			if !ok {
				return DateEvidence{}, false
			}
			end, ok := makeDate(atoi(g[4]), time.Month(atoi(g[5])), atoi(g[6]))
			if !ok {
				return DateEvidence{}, false
			}
			return spanEvidence(start, end), true
		},
	},
	{
		name: "European dot range",
		re:   regexp.MustCompile(`\b(\d{1,2})\.(\d{1,2})\.(\d{4})` + rangeSep + `(\d{1,2})\.(\d{1,2})\.(\d{4})\b`),
		parse: func(g []string) (DateEvidence, bool) {
			return numericRange(g, true)
		},
	},
	{
		name: "European slash range",
		re:   regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})/(\d{4}|\d{2})` + rangeSep + `(\d{1,2})/(\d{1,2})/(\d{4}|\d{2})\b`),
		parse: func(g []string) (DateEvidence, bool) {
			return numericRange(g, true)
		},
	},
	{
		name: "boarding-pass compact date",
		re:   regexp.MustCompile(`(?i)\b(\d{1,2})(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)(\d{4}|\d{2})?\b`),
		parse: func(g []string) (DateEvidence, bool) {
			month, ok := monthByName(g[2])
			if !ok {
				return DateEvidence{}, false
			}
			year := time.Now().UTC().Year()
			if g[3] != "" {
				year = expandYear(atoi(g[3]))
			}
			d, ok := makeDate(year, month, atoi(g[1]))
			if !ok {
				return DateEvidence{}, false
			}
			return spanEvidence(d, d), true
		},
	},
}

// monthDayPattern is used by the fallback scan for "Month D, YYYY" shapes
// anywhere in the text.
var monthDayPattern = regexp.MustCompile(`(?i)\b` + monthDayYear + `\b`)

// monthYearPattern matches "Month YYYY" with no day.
var monthYearPattern = regexp.MustCompile(`(?i)\b([A-Za-z]{3,9})\.?\s+(\d{4})\b`)

// bareYearPattern matches a lone 4-digit year in [1900, 2099].
var bareYearPattern = regexp.MustCompile(`\b(19\d{2}|20\d{2})\b`)

// ExtractDateRange finds the most specific date evidence in a text fragment.
// The ordered matcher table runs first; when nothing in it hits, the scan
// falls back to collecting "Month D, YYYY" occurrences (two or more form a
// range, one forms a single-day visit) and finally to ParseSingleDateOrApprox.
//
// An empty DateEvidence is an ordinary result, not an error.
func ExtractDateRange(text string) DateEvidence {
	for _, m := range dateMatchers {
		g := m.re.FindStringSubmatch(text)
		if g == nil {
			continue
		}
		if ev, ok := m.parse(g); ok {
			return ev
		}
	}

	if ev, ok := scanMonthDayDates(text); ok {
		return ev
	}

	return ParseSingleDateOrApprox(text)
}

// scanMonthDayDates collects every valid "Month D, YYYY" substring. With two
// or more hits the first becomes the start and the last date distinct from
// it the end; a single hit becomes a one-day visit.
func scanMonthDayDates(text string) (DateEvidence, bool) {
	var dates []*time.Time
	for _, g := range monthDayPattern.FindAllStringSubmatch(text, -1) {
		if d, ok := monthNameDate(g[1], g[2], g[3]); ok {
			dates = append(dates, d)
		}
	}
	switch {
	case len(dates) >= 2:
		start := dates[0]
		end := start
		// Restated dates ("June 1, 2022 ... again on June 1, 2022") must not
		// swallow a real end date mentioned between them.
		for i := len(dates) - 1; i > 0; i-- {
			if !dates[i].Equal(*start) {
				end = dates[i]
				break
			}
		}
		if end.Equal(*start) {
			// All occurrences collapse to the same day.
			return spanEvidence(start, start), true
		}
		if end.Before(*start) {
			// Return-trip phrasing mentions the later date first.
			start, end = end, start
		}
		return spanEvidence(start, end), true
	case len(dates) == 1:
		return spanEvidence(dates[0], dates[0]), true
	}
	return DateEvidence{}, false
}

// ParseSingleDateOrApprox is the final fallback of the grammar: a "Month
// YYYY" mention yields approximate month+year plus the full calendar month
// as a best-effort span; a bare 4-digit year yields approximate year only,
// with no exact dates.
func ParseSingleDateOrApprox(text string) DateEvidence {
	// Any word followed by four digits matches the shape; only the first
	// occurrence whose word is actually a month name counts.
	for _, g := range monthYearPattern.FindAllStringSubmatch(text, -1) {
		month, ok := monthByName(g[1])
		if !ok {
			continue
		}
		year := atoi(g[2])
		if first, ok := makeDate(year, month, 1); ok {
			last := first.AddDate(0, 1, -1)
			return DateEvidence{
				Visit:       first,
				End:         &last,
				ApproxMonth: int(month),
				ApproxYear:  year,
			}
		}
	}

	if g := bareYearPattern.FindStringSubmatch(text); g != nil {
		return DateEvidence{ApproxYear: atoi(g[1])}
	}

	return DateEvidence{}
}

// numericRange parses the six capture groups of a numeric range matcher.
// european selects D/M/Y order; otherwise M/D/Y.
func numericRange(g []string, european bool) (DateEvidence, bool) {
	parse := func(a, b, y string) (*time.Time, bool) {
		month, day := atoi(a), atoi(b)
		if european {
			month, day = day, month
		}
		return makeDate(expandYear(atoi(y)), time.Month(month), day)
	}
	start, ok := parse(g[1], g[2], g[3])
	if !ok {
		return DateEvidence{}, false
	}
	end, ok := parse(g[4], g[5], g[6])
	if !ok {
		return DateEvidence{}, false
	}
	return spanEvidence(start, end), true
}

// monthNameDate builds a date from (month name, day, year) strings.
func monthNameDate(monthName, day, year string) (*time.Time, bool) {
	month, ok := monthByName(monthName)
	if !ok {
		return nil, false
	}
	return makeDate(atoi(year), month, atoi(day))
}

// spanEvidence wraps a start/end pair as exact-date evidence.
func spanEvidence(start, end *time.Time) DateEvidence {
	return DateEvidence{Visit: start, End: end}
}
