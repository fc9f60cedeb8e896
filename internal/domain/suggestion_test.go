package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/wandermap/tripsuggest/internal/domain"
)

func TestTripSuggestion_HasExactDate(t *testing.T) {
	visit := time.Date(2022, 6, 1, 0, 0, 0, 0, time.UTC)

	dated := domain.TripSuggestion{CountryName: "Iceland", VisitDate: &visit}
	assert.True(t, dated.HasExactDate())

	// Approximate evidence is not an exact date.
	approx := domain.TripSuggestion{CountryName: "France", ApproxMonth: 7, ApproxYear: 2020}
	assert.False(t, approx.HasExactDate())
}
