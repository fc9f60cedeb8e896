package tripextract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/wandermap/tripsuggest/internal/countries"
	"github.com/wandermap/tripsuggest/internal/domain"
)

// minFragmentLen is the shortest trimmed fragment worth scanning. Anything
// shorter ("ok", "- x") cannot name a country.
const minFragmentLen = 6

// genericSourceLabel is the provenance string for suggestions with no
// recognizable trip-name phrase.
const genericSourceLabel = "From pasted text"

var (
	blankLineRe = regexp.MustCompile(`\n\s*\n`)
	bulletRe    = regexp.MustCompile(`(?m)^\s*(?:[-*\x{2022}]|\d+[.)])\s+`)
)

// splitFragments chunks a multi-trip paste into independent fragments:
// blank-line paragraphs first, then bullet/numbered list items within each
// paragraph. Fragments shorter than minFragmentLen are dropped, but if the
// split yields nothing at all the full input is kept as a single fragment —
// input is never silently discarded.
func splitFragments(text string) []string {
	var frags []string
	for _, para := range blankLineRe.Split(text, -1) {
		for _, item := range bulletRe.Split(para, -1) {
			item = strings.TrimSpace(item)
			if len(item) >= minFragmentLen {
				frags = append(frags, item)
			}
		}
	}
	if len(frags) == 0 {
		if whole := strings.TrimSpace(text); whole != "" {
			frags = append(frags, whole)
		}
	}
	return frags
}

// oooPattern is a sentence shape that jointly captures a country phrase
// (group 1) and a date phrase (group 2) — out-of-office notices, "I will be
// in X from Y", "X trip: Y", "flight to X 14MAR".
type oooPattern struct {
	name string
	re   *regexp.Regexp
}

const countryPhrase = `([A-Za-z][A-Za-z .'-]*?)`

// oooPatterns is tried in order per fragment; the first pattern whose
// country phrase resolves wins and the fragment is not scanned further.
var oooPatterns = []oooPattern{
	{
		name: "out-of-office notice",
		re:   regexp.MustCompile(`(?i)\b(?:ooo|out of (?:the )?office)\b[^\n]*?\bin\s+` + countryPhrase + `\s+from\s+(.+)`),
	},
	{
		name: "first-person travel sentence",
		re:   regexp.MustCompile(`(?i)\bI(?:\s+will|'ll)?\s+(?:be|am)\s+(?:travell?ing\s+)?(?:in|to|visiting)\s+` + countryPhrase + `\s+(?:from|between|starting)\s+(.+)`),
	},
	{
		name: "labelled trip line",
		re:   regexp.MustCompile(`(?i)^\s*` + countryPhrase + `\s+trip:\s*(.+)$`),
	},
	{
		name: "flight with compact date",
		re:   regexp.MustCompile(`(?i)\bflight\s+to\s+` + countryPhrase + `\s+(?:on\s+)?(\d{1,2}[A-Za-z]{3}(?:\d{4}|\d{2})?)\b`),
	},
}

// tripNamePatterns recognize an explicit trip-name phrase in a fragment,
// e.g. "our honeymoon trip", "July 2020 trip".
var tripNamePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b((?:my|our|the)\s+(?:[A-Za-z]+\s+){0,2}trip)\b`),
	regexp.MustCompile(`(?i)\b([A-Za-z]{3,9}\s+\d{4}\s+trip)\b`),
	regexp.MustCompile(`(?i)\b(honeymoon|anniversary|babymoon)\b`),
}

// extractTripName returns a cleaned trip-name phrase, or "" when none found.
func extractTripName(fragment string) string {
	for i, re := range tripNamePatterns {
		g := re.FindStringSubmatch(fragment)
		if g == nil {
			continue
		}
		name := strings.Join(strings.Fields(g[1]), " ")
		if i == len(tripNamePatterns)-1 {
			// Bare occasion words read better with "trip" appended.
			name = strings.ToLower(name) + " trip"
		}
		return capitalize(name)
	}
	return ""
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// ParsePastedText extracts trip suggestions from free text: a pasted email,
// an out-of-office message, or text pulled out of a PDF. Fragments that name
// no resolvable country yield nothing; input that parses to nothing yields
// an empty (non-nil) slice, never an error.
func ParsePastedText(text string) []domain.TripSuggestion {
	out := []domain.TripSuggestion{}
	seen := map[string]bool{}
	for _, frag := range splitFragments(text) {
		s := extractFromFragment(frag)
		if s == nil {
			continue
		}
		key := dedupeKey(*s)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, *s)
	}
	return out
}

// extractFromFragment pulls at most one suggestion out of a fragment.
// The OOO sentence patterns run first and short-circuit; otherwise the
// generic path looks for a country anywhere and takes the best date
// evidence from the whole fragment.
func extractFromFragment(fragment string) *domain.TripSuggestion {
	for _, p := range oooPatterns {
		g := p.re.FindStringSubmatch(fragment)
		if g == nil {
			continue
		}
		country := countries.Resolve(g[1])
		if country == nil {
			continue
		}
		ev := ExtractDateRange(g[2])
		if ev.Empty() {
			// The captured date phrase may be truncated; fall back to the
			// whole fragment before giving up on dates.
			ev = ExtractDateRange(fragment)
		}
		s := newSuggestion(country, ev, extractTripName(fragment))
		return &s
	}

	country := countries.Resolve(fragment)
	if country == nil {
		return nil
	}
	s := newSuggestion(country, ExtractDateRange(fragment), extractTripName(fragment))
	return &s
}

// newSuggestion assembles a pasted-text suggestion with a fresh opaque id.
func newSuggestion(country *countries.Country, ev DateEvidence, tripName string) domain.TripSuggestion {
	label := genericSourceLabel
	if tripName != "" {
		label = tripName
	}
	return domain.TripSuggestion{
		ID:          uuid.New(),
		CountryName: country.Name,
		CountryCode: country.Code,
		VisitDate:   ev.Visit,
		EndDate:     ev.End,
		ApproxMonth: ev.ApproxMonth,
		ApproxYear:  ev.ApproxYear,
		TripName:    tripName,
		SourceType:  domain.SourcePastedText,
		SourceLabel: label,
	}
}

// dedupeKey identifies a suggestion within one parse call: same country and
// same date evidence means the same trip mentioned twice.
func dedupeKey(s domain.TripSuggestion) string {
	country := s.CountryCode
	if country == "" {
		country = strings.ToLower(s.CountryName)
	}
	switch {
	case s.HasExactDate():
		return country + "|" + s.VisitDate.Format("2006-01-02")
	case s.ApproxYear != 0:
		return country + "|" + strconv.Itoa(s.ApproxYear)
	default:
		return country + "|no-date"
	}
}
