// Package countries holds the canonical country list, the curated alias
// table, and the airport-code table used to resolve free-text fragments to
// countries.
//
// All tables are immutable and built once at package init; lookups are pure
// and safe for concurrent use.
package countries

import (
	"regexp"
	"strings"
)

// Country is a canonical {name, code} pair with lowercase search aliases.
type Country struct {
	Code    string // ISO 3166-1 alpha-2
	Name    string // official display name
	Aliases []string
}

// All is the canonical country list, in display order.
// Aliases feed the Search function; the whole-word alias tier uses the
// separate aliasTable below.
var All = []Country{
	{Code: "US", Name: "United States", Aliases: []string{"usa", "america", "united states of america"}},
	{Code: "GB", Name: "United Kingdom", Aliases: []string{"uk", "britain", "great britain"}},
	{Code: "FR", Name: "France", Aliases: []string{"french republic"}},
	{Code: "DE", Name: "Germany", Aliases: []string{"deutschland"}},
	{Code: "IT", Name: "Italy", Aliases: []string{"italia"}},
	{Code: "ES", Name: "Spain", Aliases: []string{"espana"}},
	{Code: "PT", Name: "Portugal", Aliases: nil},
	{Code: "NL", Name: "Netherlands", Aliases: []string{"holland"}},
	{Code: "BE", Name: "Belgium", Aliases: nil},
	{Code: "CH", Name: "Switzerland", Aliases: nil},
	{Code: "AT", Name: "Austria", Aliases: nil},
	{Code: "IE", Name: "Ireland", Aliases: nil},
	{Code: "IS", Name: "Iceland", Aliases: nil},
	{Code: "NO", Name: "Norway", Aliases: nil},
	{Code: "SE", Name: "Sweden", Aliases: nil},
	{Code: "DK", Name: "Denmark", Aliases: nil},
	{Code: "FI", Name: "Finland", Aliases: nil},
	{Code: "GR", Name: "Greece", Aliases: []string{"hellas"}},
	{Code: "TR", Name: "Turkey", Aliases: []string{"turkiye"}},
	{Code: "PL", Name: "Poland", Aliases: nil},
	{Code: "CZ", Name: "Czech Republic", Aliases: []string{"czechia"}},
	{Code: "SK", Name: "Slovakia", Aliases: nil},
	{Code: "SI", Name: "Slovenia", Aliases: nil},
	{Code: "HR", Name: "Croatia", Aliases: nil},
	{Code: "HU", Name: "Hungary", Aliases: nil},
	{Code: "RO", Name: "Romania", Aliases: nil},
	{Code: "BG", Name: "Bulgaria", Aliases: nil},
	{Code: "RS", Name: "Serbia", Aliases: nil},
	{Code: "AL", Name: "Albania", Aliases: nil},
	{Code: "ME", Name: "Montenegro", Aliases: nil},
	{Code: "EE", Name: "Estonia", Aliases: nil},
	{Code: "LV", Name: "Latvia", Aliases: nil},
	{Code: "LT", Name: "Lithuania", Aliases: nil},
	{Code: "UA", Name: "Ukraine", Aliases: nil},
	{Code: "RU", Name: "Russia", Aliases: []string{"russian federation"}},
	{Code: "MT", Name: "Malta", Aliases: nil},
	{Code: "CY", Name: "Cyprus", Aliases: nil},
	{Code: "LU", Name: "Luxembourg", Aliases: nil},
	{Code: "MC", Name: "Monaco", Aliases: nil},
	{Code: "CA", Name: "Canada", Aliases: nil},
	{Code: "MX", Name: "Mexico", Aliases: nil},
	{Code: "CR", Name: "Costa Rica", Aliases: nil},
	{Code: "PA", Name: "Panama", Aliases: nil},
	{Code: "GT", Name: "Guatemala", Aliases: nil},
	{Code: "BZ", Name: "Belize", Aliases: nil},
	{Code: "CU", Name: "Cuba", Aliases: nil},
	{Code: "JM", Name: "Jamaica", Aliases: nil},
	{Code: "DO", Name: "Dominican Republic", Aliases: nil},
	{Code: "BS", Name: "Bahamas", Aliases: nil},
	{Code: "BR", Name: "Brazil", Aliases: []string{"brasil"}},
	{Code: "AR", Name: "Argentina", Aliases: nil},
	{Code: "CL", Name: "Chile", Aliases: nil},
	{Code: "PE", Name: "Peru", Aliases: nil},
	{Code: "CO", Name: "Colombia", Aliases: nil},
	{Code: "EC", Name: "Ecuador", Aliases: nil},
	{Code: "BO", Name: "Bolivia", Aliases: nil},
	{Code: "UY", Name: "Uruguay", Aliases: nil},
	{Code: "VE", Name: "Venezuela", Aliases: nil},
	{Code: "JP", Name: "Japan", Aliases: []string{"nippon"}},
	{Code: "CN", Name: "China", Aliases: []string{"prc"}},
	{Code: "KR", Name: "South Korea", Aliases: []string{"korea", "republic of korea"}},
	{Code: "TW", Name: "Taiwan", Aliases: nil},
	{Code: "HK", Name: "Hong Kong", Aliases: nil},
	{Code: "SG", Name: "Singapore", Aliases: nil},
	{Code: "MY", Name: "Malaysia", Aliases: nil},
	{Code: "TH", Name: "Thailand", Aliases: []string{"siam"}},
	{Code: "VN", Name: "Vietnam", Aliases: []string{"viet nam"}},
	{Code: "KH", Name: "Cambodia", Aliases: nil},
	{Code: "LA", Name: "Laos", Aliases: nil},
	{Code: "MM", Name: "Myanmar", Aliases: []string{"burma"}},
	{Code: "PH", Name: "Philippines", Aliases: nil},
	{Code: "ID", Name: "Indonesia", Aliases: []string{"bali"}},
	{Code: "IN", Name: "India", Aliases: nil},
	{Code: "NP", Name: "Nepal", Aliases: nil},
	{Code: "LK", Name: "Sri Lanka", Aliases: []string{"ceylon"}},
	{Code: "MV", Name: "Maldives", Aliases: nil},
	{Code: "AE", Name: "United Arab Emirates", Aliases: []string{"uae", "dubai", "abu dhabi"}},
	{Code: "QA", Name: "Qatar", Aliases: nil},
	{Code: "SA", Name: "Saudi Arabia", Aliases: nil},
	{Code: "JO", Name: "Jordan", Aliases: nil},
	{Code: "IL", Name: "Israel", Aliases: nil},
	{Code: "EG", Name: "Egypt", Aliases: nil},
	{Code: "MA", Name: "Morocco", Aliases: nil},
	{Code: "TN", Name: "Tunisia", Aliases: nil},
	{Code: "KE", Name: "Kenya", Aliases: nil},
	{Code: "TZ", Name: "Tanzania", Aliases: []string{"zanzibar"}},
	{Code: "ZA", Name: "South Africa", Aliases: nil},
	{Code: "NA", Name: "Namibia", Aliases: nil},
	{Code: "BW", Name: "Botswana", Aliases: nil},
	{Code: "ET", Name: "Ethiopia", Aliases: nil},
	{Code: "GH", Name: "Ghana", Aliases: nil},
	{Code: "NG", Name: "Nigeria", Aliases: nil},
	{Code: "MU", Name: "Mauritius", Aliases: nil},
	{Code: "MG", Name: "Madagascar", Aliases: nil},
	{Code: "AU", Name: "Australia", Aliases: nil},
	{Code: "NZ", Name: "New Zealand", Aliases: nil},
	{Code: "FJ", Name: "Fiji", Aliases: nil},
	{Code: "PF", Name: "French Polynesia", Aliases: []string{"tahiti", "bora bora"}},
}

// byCode indexes All for O(1) code lookups; built at init.
var byCode = func() map[string]*Country {
	m := make(map[string]*Country, len(All))
	for i := range All {
		m[All[i].Code] = &All[i]
	}
	return m
}()

// ByCode returns the country for an ISO alpha-2 code, or nil when unknown.
// The code is matched case-insensitively.
func ByCode(code string) *Country {
	return byCode[strings.ToUpper(code)]
}

// Search returns every country the query plausibly refers to, preserving
// the order of the canonical list. A query matches when it is a prefix of
// any word in the country's name or aliases; queries of 5+ characters also
// match as a plain substring (so "zealand" finds New Zealand).
//
// Short queries deliberately do NOT match mid-word: a substring match would
// make everyday words like "the" or "can" hit Netherlands or Canada.
// An empty or whitespace query returns nil.
func Search(query string) []Country {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var out []Country
	for _, c := range All {
		if matchesQuery(strings.ToLower(c.Name), q) {
			out = append(out, c)
			continue
		}
		for _, a := range c.Aliases {
			if matchesQuery(a, q) {
				out = append(out, c)
				break
			}
		}
	}
	return out
}

// matchesQuery reports whether the lowercase candidate phrase matches the
// lowercase query under the Search rules.
func matchesQuery(phrase, q string) bool {
	if len(q) >= 5 && strings.Contains(phrase, q) {
		return true
	}
	for _, w := range strings.Fields(phrase) {
		if strings.HasPrefix(w, q) {
			return true
		}
	}
	return false
}

// wordPattern compiles a case-insensitive whole-word regexp for phrase.
func wordPattern(phrase string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(phrase) + `\b`)
}
