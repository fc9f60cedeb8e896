package tripextract

import (
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/wandermap/tripsuggest/internal/countries"
	"github.com/wandermap/tripsuggest/internal/domain"
)

// emailPattern recognizes one kind of structured travel email. Confidence is
// a heuristic constant reflecting how specific the pattern is — airport-code
// matchers resolve the destination through the fixed IATA table and score
// higher than free-text country mentions.
type emailPattern struct {
	name       string
	label      string // SourceLabel for suggestions from this pattern
	re         *regexp.Regexp
	confidence float64

	// iataGroup, when non-zero, names the capture group holding an airport
	// code to resolve via the IATA table. Otherwise countryGroup (or the
	// whole fragment when zero) is resolved as free text.
	iataGroup    int
	countryGroup int
}

var emailPatterns = []emailPattern{
	{
		name:       "flight route",
		label:      "Flight confirmation",
		re:         regexp.MustCompile(`\b[A-Z]{3}\s*(?:\x{2192}|->|\x{2013}|-)\s*([A-Z]{3})\b`),
		confidence: 0.95,
		iataGroup:  1,
	},
	{
		name:       "flight to airport",
		label:      "Flight confirmation",
		re:         regexp.MustCompile(`(?i)\b(?:flight|flying|departing)\s+(?:to|into|for)\s+([A-Z]{3})\b`),
		confidence: 0.9,
		iataGroup:  1,
	},
	{
		name:       "boarding pass",
		label:      "Boarding pass",
		re:         regexp.MustCompile(`(?i)\bboarding\s+pass\b`),
		confidence: 0.85,
	},
	{
		name:         "lodging confirmation",
		label:        "Hotel confirmation",
		re:           regexp.MustCompile(`(?i)\b(?:hotel|airbnb|expedia|booking\.com)\b[^\n]*?\b(?:reservation|confirmation|booking|is\s+confirmed)\b(?:[^\n]*?\b(?:in|for|at)\s+([A-Za-z][A-Za-z .'-]*))?`),
		confidence:   0.8,
		countryGroup: 1,
	},
	{
		name:         "visa document",
		label:        "Visa document",
		re:           regexp.MustCompile(`(?i)\bvisa\b[^\n]*?\b(?:for|to)\s+([A-Za-z][A-Za-z .'-]*)`),
		confidence:   0.75,
		countryGroup: 1,
	},
	{
		name:         "travel mention",
		label:        "Travel mention",
		re:           regexp.MustCompile(`(?i)\btravell?ing\s+to\s+([A-Za-z][A-Za-z .'-]*)`),
		confidence:   0.6,
		countryGroup: 1,
	},
}

// ParseEmailContent extracts trip suggestions from a structured email body:
// flight and lodging confirmations, boarding passes, visa documents, and
// generic travel mentions. Fragments that match no email pattern fall back
// to the pasted-text path, so a forwarded out-of-office notice inside an
// email still parses. Returns an empty (non-nil) slice for hopeless input.
func ParseEmailContent(text string) []domain.TripSuggestion {
	out := []domain.TripSuggestion{}
	seen := map[string]bool{}
	for _, frag := range splitFragments(text) {
		s := extractFromEmailFragment(frag)
		if s == nil {
			s = extractFromFragment(frag)
		}
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

// extractFromEmailFragment tries each email pattern in specificity order and
// emits on the first whose destination resolves to a country.
func extractFromEmailFragment(fragment string) *domain.TripSuggestion {
	for _, p := range emailPatterns {
		g := p.re.FindStringSubmatch(fragment)
		if g == nil {
			continue
		}

		country := resolveEmailDestination(p, g, fragment)
		if country == nil {
			continue
		}

		ev := ExtractDateRange(fragment)
		s := domain.TripSuggestion{
			ID:          uuid.New(),
			CountryName: country.Name,
			CountryCode: country.Code,
			VisitDate:   ev.Visit,
			EndDate:     ev.End,
			ApproxMonth: ev.ApproxMonth,
			ApproxYear:  ev.ApproxYear,
			TripName:    extractTripName(fragment),
			SourceType:  domain.SourcePastedText,
			SourceLabel: p.label,
			Confidence:  p.confidence,
		}
		return &s
	}
	return nil
}

// iataCandidate finds standalone uppercase 3-letter tokens that may be
// airport codes.
var iataCandidate = regexp.MustCompile(`\b([A-Z]{3})\b`)

// resolveEmailDestination turns the pattern's captured destination into a
// country: IATA table for airport-code groups, free-text resolution for the
// rest. Patterns with no capture (boarding pass) resolve from the whole
// fragment, trying any airport code in it before free text — boarding
// passes often name no country at all.
func resolveEmailDestination(p emailPattern, groups []string, fragment string) *countries.Country {
	if p.iataGroup > 0 {
		return countries.ByAirport(groups[p.iataGroup])
	}
	if p.countryGroup > 0 && p.countryGroup < len(groups) && strings.TrimSpace(groups[p.countryGroup]) != "" {
		return countries.Resolve(groups[p.countryGroup])
	}
	for _, g := range iataCandidate.FindAllStringSubmatch(fragment, -1) {
		if c := countries.ByAirport(g[1]); c != nil {
			return c
		}
	}
	return countries.Resolve(fragment)
}
