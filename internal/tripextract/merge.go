package tripextract

import (
	"sort"
	"strings"
	"time"

	"github.com/wandermap/tripsuggest/internal/domain"
)

// DefaultMaxDaysApart is the merge window: two suggestions to the same
// country whose spans sit at most this many days apart are treated as legs
// of one trip.
const DefaultMaxDaysApart = 7

// MergeNearbyTrips folds suggestions for the same country whose date spans
// sit within maxDaysApart of each other into single suggestions. The merged
// suggestion takes the union date span, the summed photo count, and the
// higher confidence. Suggestions without exact dates never merge (a missing
// date aborts the pair, it never fails). Groups of one pass through
// unchanged. A maxDaysApart of zero or less selects DefaultMaxDaysApart.
func MergeNearbyTrips(suggestions []domain.TripSuggestion, maxDaysApart int) []domain.TripSuggestion {
	if maxDaysApart <= 0 {
		maxDaysApart = DefaultMaxDaysApart
	}
	if len(suggestions) <= 1 {
		return suggestions
	}

	// Group by country, preserving first-appearance order of groups.
	var order []string
	groups := map[string][]domain.TripSuggestion{}
	for _, s := range suggestions {
		k := countryKey(s)
		if _, ok := groups[k]; !ok {
			order = append(order, k)
		}
		groups[k] = append(groups[k], s)
	}

	out := make([]domain.TripSuggestion, 0, len(suggestions))
	for _, k := range order {
		out = append(out, mergeGroup(groups[k], maxDaysApart)...)
	}
	return out
}

// mergeGroup sorts one country's suggestions by best available date and
// folds adjacent spans left to right.
func mergeGroup(group []domain.TripSuggestion, maxDaysApart int) []domain.TripSuggestion {
	if len(group) == 1 {
		return group
	}

	sort.SliceStable(group, func(i, j int) bool {
		di, iok := bestDate(group[i])
		dj, jok := bestDate(group[j])
		if iok != jok {
			return iok // dated suggestions sort before undateable ones
		}
		return di.Before(dj)
	})

	merged := []domain.TripSuggestion{group[0]}
	for _, next := range group[1:] {
		cur := &merged[len(merged)-1]
		if canFold(*cur, next, maxDaysApart) {
			fold(cur, next)
			continue
		}
		merged = append(merged, next)
	}
	return merged
}

// canFold reports whether next belongs to the same trip as cur: both carry
// exact dates and next starts within maxDaysApart of cur's end.
func canFold(cur, next domain.TripSuggestion, maxDaysApart int) bool {
	if !cur.HasExactDate() || !next.HasExactDate() {
		return false
	}
	curEnd := endOrStart(cur.VisitDate, cur.EndDate)
	gap := next.VisitDate.Sub(curEnd)
	return gap <= time.Duration(maxDaysApart)*24*time.Hour
}

// fold absorbs next into cur: union date span, summed photo counts, higher
// confidence. cur keeps its identity (id, names, labels).
func fold(cur *domain.TripSuggestion, next domain.TripSuggestion) {
	if next.VisitDate.Before(*cur.VisitDate) {
		cur.VisitDate = next.VisitDate
	}
	curEnd := endOrStart(cur.VisitDate, cur.EndDate)
	nextEnd := endOrStart(next.VisitDate, next.EndDate)
	if nextEnd.After(curEnd) {
		cur.EndDate = &nextEnd
	}
	cur.PhotoCount += next.PhotoCount
	if next.Confidence > cur.Confidence {
		cur.Confidence = next.Confidence
	}
}

// bestDate returns the sort key for merging: the exact visit date when
// present, else the 15th of the approximate month (January when only a year
// is known). False means the suggestion has no date evidence at all.
func bestDate(s domain.TripSuggestion) (time.Time, bool) {
	if s.HasExactDate() {
		return *s.VisitDate, true
	}
	if s.ApproxYear != 0 {
		month := time.January
		if s.ApproxMonth != 0 {
			month = time.Month(s.ApproxMonth)
		}
		return time.Date(s.ApproxYear, month, 15, 0, 0, 0, 0, time.UTC), true
	}
	return time.Time{}, false
}

// countryKey groups suggestions by ISO code, falling back to the lowercased
// name when no code is known.
func countryKey(s domain.TripSuggestion) string {
	if s.CountryCode != "" {
		return s.CountryCode
	}
	return strings.ToLower(s.CountryName)
}
