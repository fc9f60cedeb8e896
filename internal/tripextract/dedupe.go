package tripextract

import (
	"fmt"
	"strings"
	"time"

	"github.com/wandermap/tripsuggest/internal/domain"
)

// duplicateProximityDays is how close two date ranges may sit and still
// describe the same trip: overlapping ranges always match, and a gap of up
// to this many days between any pair of boundary dates also matches.
const duplicateProximityDays = 3

// DuplicateCheck is the outcome of comparing one suggestion against the
// recorded trips.
type DuplicateCheck struct {
	IsDuplicate bool
	Reason      string // human-readable, empty when not a duplicate
}

// CheckDuplicateTrip reports whether the suggestion matches an already
// recorded trip. Country must match first (ISO code equality preferred,
// else case-insensitive name equality); on a country match, exact date
// ranges compare by overlap-or-proximity, and approximate evidence compares
// by year (and month, when both sides know one). The first matching
// existing trip wins.
func CheckDuplicateTrip(s domain.TripSuggestion, existing []domain.Trip) DuplicateCheck {
	for _, t := range existing {
		if !sameCountry(s, t) {
			continue
		}

		if s.HasExactDate() || t.VisitDate != nil {
			// Exact-date comparison needs dates on both sides; a dated
			// suggestion never matches a dateless record.
			if s.HasExactDate() && t.VisitDate != nil &&
				rangesNearby(*s.VisitDate, endOrStart(s.VisitDate, s.EndDate), *t.VisitDate, endOrStart(t.VisitDate, t.EndDate)) {
				return DuplicateCheck{
					IsDuplicate: true,
					Reason:      fmt.Sprintf("matches your %s trip (%s)", t.CountryName, describeTripDates(t)),
				}
			}
			continue
		}

		if s.ApproxYear != 0 && s.ApproxYear == t.ApproxYear {
			// A month on both sides must agree; a year-only suggestion can
			// still match a month+year record in the same year.
			if s.ApproxMonth != 0 && t.ApproxMonth != 0 && s.ApproxMonth != t.ApproxMonth {
				continue
			}
			return DuplicateCheck{
				IsDuplicate: true,
				Reason:      fmt.Sprintf("matches your %s trip in %d", t.CountryName, t.ApproxYear),
			}
		}
	}
	return DuplicateCheck{}
}

// MarkDuplicateSuggestions annotates each suggestion's AlreadyExists and
// DuplicateReason fields against the recorded trips. Pure and
// order-preserving: the input slice is not mutated, and running it twice
// yields identical output.
func MarkDuplicateSuggestions(suggestions []domain.TripSuggestion, existing []domain.Trip) []domain.TripSuggestion {
	out := make([]domain.TripSuggestion, len(suggestions))
	for i, s := range suggestions {
		check := CheckDuplicateTrip(s, existing)
		s.AlreadyExists = check.IsDuplicate
		s.DuplicateReason = check.Reason
		out[i] = s
	}
	return out
}

// sameCountry prefers ISO code equality and falls back to case-insensitive
// name equality when either side lacks a code.
func sameCountry(s domain.TripSuggestion, t domain.Trip) bool {
	if s.CountryCode != "" && t.CountryCode != "" {
		return strings.EqualFold(s.CountryCode, t.CountryCode)
	}
	return strings.EqualFold(s.CountryName, t.CountryName)
}

// rangesNearby reports whether two date ranges overlap or sit within
// duplicateProximityDays of each other. Single dates are zero-length ranges.
func rangesNearby(aStart, aEnd, bStart, bEnd time.Time) bool {
	if !aStart.After(bEnd) && !bStart.After(aEnd) {
		return true // overlap
	}
	near := func(x, y time.Time) bool {
		d := x.Sub(y)
		if d < 0 {
			d = -d
		}
		return d <= duplicateProximityDays*24*time.Hour
	}
	for _, x := range []time.Time{aStart, aEnd} {
		for _, y := range []time.Time{bStart, bEnd} {
			if near(x, y) {
				return true
			}
		}
	}
	return false
}

// endOrStart returns *end when set, else *start. Callers guarantee start is
// non-nil.
func endOrStart(start, end *time.Time) time.Time {
	if end != nil {
		return *end
	}
	return *start
}

// describeTripDates renders a trip's date evidence for duplicate reasons.
func describeTripDates(t domain.Trip) string {
	switch {
	case t.VisitDate != nil && t.EndDate != nil && !t.EndDate.Equal(*t.VisitDate):
		return t.VisitDate.Format("2006-01-02") + " to " + t.EndDate.Format("2006-01-02")
	case t.VisitDate != nil:
		return t.VisitDate.Format("2006-01-02")
	case t.ApproxYear != 0 && t.ApproxMonth != 0:
		return fmt.Sprintf("%s %d", time.Month(t.ApproxMonth), t.ApproxYear)
	case t.ApproxYear != 0:
		return fmt.Sprintf("%d", t.ApproxYear)
	default:
		return "no dates"
	}
}
