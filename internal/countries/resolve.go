package countries

import (
	"regexp"
	"strings"
)

// aliasEntry maps an ISO code to the lowercase aliases matched as whole
// words by the first resolution tier. Order matters: the table is iterated
// top to bottom and the first hit wins, so more specific aliases (city
// names, former names) sit above catch-alls.
type aliasEntry struct {
	code    string
	aliases []string
}

// aliasTable is the curated alias table. City names, former country names,
// and common abbreviations all land here; canonical names do not (they are
// the second tier).
var aliasTable = []aliasEntry{
	{"GB", []string{"uk", "britain", "england", "scotland", "wales", "london", "edinburgh"}},
	{"US", []string{"usa", "america", "new york", "nyc", "los angeles", "san francisco", "hawaii", "states"}},
	{"AE", []string{"uae", "dubai", "abu dhabi"}},
	{"NL", []string{"holland", "amsterdam"}},
	{"CZ", []string{"czechia", "prague"}},
	{"FR", []string{"paris", "nice", "lyon"}},
	{"IT", []string{"rome", "venice", "florence", "milan", "sicily"}},
	{"ES", []string{"barcelona", "madrid", "mallorca", "ibiza", "canary islands"}},
	{"PT", []string{"lisbon", "porto", "madeira", "azores"}},
	{"DE", []string{"deutschland", "berlin", "munich"}},
	{"GR", []string{"athens", "santorini", "mykonos", "crete"}},
	{"TR", []string{"turkiye", "istanbul"}},
	{"AT", []string{"vienna"}},
	{"CH", []string{"zurich", "geneva"}},
	{"HU", []string{"budapest"}},
	{"IE", []string{"dublin"}},
	{"IS", []string{"reykjavik"}},
	{"DK", []string{"copenhagen"}},
	{"SE", []string{"stockholm"}},
	{"NO", []string{"oslo"}},
	{"JP", []string{"tokyo", "kyoto", "osaka", "nippon"}},
	{"KR", []string{"korea", "seoul"}},
	{"CN", []string{"beijing", "shanghai"}},
	{"TH", []string{"bangkok", "phuket", "siam"}},
	{"VN", []string{"viet nam", "hanoi", "saigon", "ho chi minh"}},
	{"ID", []string{"bali", "jakarta"}},
	{"MM", []string{"burma"}},
	{"LK", []string{"ceylon"}},
	{"SG", []string{}},
	{"IN", []string{"delhi", "mumbai", "goa"}},
	{"IL", []string{"tel aviv", "jerusalem"}},
	{"EG", []string{"cairo"}},
	{"MA", []string{"marrakech", "casablanca"}},
	{"TZ", []string{"zanzibar"}},
	{"ZA", []string{"cape town", "johannesburg"}},
	{"BR", []string{"brasil", "rio", "rio de janeiro", "sao paulo"}},
	{"AR", []string{"buenos aires", "patagonia"}},
	{"PE", []string{"machu picchu", "lima", "cusco"}},
	{"MX", []string{"cancun", "mexico city", "tulum"}},
	{"CA", []string{"toronto", "vancouver", "montreal"}},
	{"AU", []string{"sydney", "melbourne"}},
	{"NZ", []string{"auckland", "queenstown"}},
	{"PF", []string{"tahiti", "bora bora"}},
	{"RU", []string{"moscow", "st petersburg"}},
	{"HR", []string{"dubrovnik", "split"}},
}

// compiledAlias pairs an alias table entry with its precompiled whole-word
// patterns. Built once at init per the process-wide static table model.
type compiledAlias struct {
	code     string
	patterns []*regexp.Regexp
}

var aliasPatterns = func() []compiledAlias {
	out := make([]compiledAlias, 0, len(aliasTable))
	for _, e := range aliasTable {
		ca := compiledAlias{code: e.code}
		for _, a := range e.aliases {
			ca.patterns = append(ca.patterns, wordPattern(a))
		}
		out = append(out, ca)
	}
	return out
}()

// namePatterns holds a precompiled whole-word pattern per canonical name,
// parallel to All.
var namePatterns = func() []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(All))
	for i, c := range All {
		out[i] = wordPattern(c.Name)
	}
	return out
}()

// Resolve maps a free-text fragment to a country. Matching runs in three
// tiers, first match wins:
//
//  1. curated alias table, whole-word, in table order
//  2. canonical display names, whole-word
//  3. per-word fuzzy search: each whitespace token of 3+ chars (trailing
//     punctuation stripped) is run through Search
//
// Returns nil when nothing matches; callers treat that as "no trip
// extractable", not as an error.
func Resolve(text string) *Country {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	for _, ca := range aliasPatterns {
		for _, p := range ca.patterns {
			if p.MatchString(text) {
				return ByCode(ca.code)
			}
		}
	}

	for i := range All {
		if namePatterns[i].MatchString(text) {
			return &All[i]
		}
	}

	for _, tok := range strings.Fields(text) {
		tok = strings.TrimRight(tok, ".,;:!?)'\"")
		if len(tok) < 3 || stopwords[strings.ToLower(tok)] {
			continue
		}
		if found := Search(tok); len(found) > 0 {
			return &found[0]
		}
	}

	return nil
}

// stopwords are everyday tokens excluded from the fuzzy tier. Without this
// guard words like "can" (prefix of Canada) or "ice" (prefix of Iceland)
// would resolve sentences that mention no country at all.
var stopwords = map[string]bool{
	"the": true, "and": true, "for": true, "but": true, "not": true,
	"you": true, "are": true, "was": true, "all": true, "any": true,
	"can": true, "her": true, "his": true, "our": true, "out": true,
	"ice": true, "man": true, "will": true, "with": true, "from": true,
	"have": true, "this": true, "that": true, "been": true, "were": true,
	"trip": true, "travel": true, "traveling": true, "travelling": true,
	"visit": true, "visiting": true, "vacation": true, "holiday": true,
	"flight": true, "hotel": true, "booking": true, "confirmation": true,
}
