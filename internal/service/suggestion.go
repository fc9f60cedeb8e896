package service

import (
	"context"
	"fmt"

	"github.com/wandermap/tripsuggest/internal/domain"
	"github.com/wandermap/tripsuggest/internal/repo"
	"github.com/wandermap/tripsuggest/internal/tripextract"
)

// SuggestionService orchestrates the text parser for API callers: it runs
// the extraction, then annotates each suggestion against the user's recorded
// trips so the UI can flag "you already logged this one".
//
// The parser itself is pure; this service owns the one impure step (loading
// the recorded trips).
type SuggestionService struct {
	trips       repo.TripRepo
	mergeWindow int
}

// NewSuggestionService constructs a SuggestionService backed by the provided
// TripRepo. mergeWindow is the merge window (in days) used when a Merge call
// does not specify one; zero falls back to the package default.
func NewSuggestionService(trips repo.TripRepo, mergeWindow int) *SuggestionService {
	return &SuggestionService{trips: trips, mergeWindow: mergeWindow}
}

// ParseText extracts suggestions from pasted free text (emails, OOO
// messages, PDF text) and marks duplicates against the recorded trips.
// Unparseable text yields an empty slice, not an error.
func (s *SuggestionService) ParseText(ctx context.Context, text string) ([]domain.TripSuggestion, error) {
	return s.markAgainstExisting(ctx, tripextract.ParsePastedText(text))
}

// ParseEmail extracts suggestions using the email-tuned pattern set
// (flight/hotel confirmations, boarding passes, visa documents) and marks
// duplicates against the recorded trips.
func (s *SuggestionService) ParseEmail(ctx context.Context, text string) ([]domain.TripSuggestion, error) {
	return s.markAgainstExisting(ctx, tripextract.ParseEmailContent(text))
}

// Merge folds suggestions for the same country whose date spans sit within
// maxDaysApart of each other. Zero selects the configured default window.
func (s *SuggestionService) Merge(_ context.Context, suggestions []domain.TripSuggestion, maxDaysApart int) []domain.TripSuggestion {
	if maxDaysApart <= 0 {
		maxDaysApart = s.mergeWindow
	}
	merged := tripextract.MergeNearbyTrips(suggestions, maxDaysApart)
	if merged == nil {
		return []domain.TripSuggestion{}
	}
	return merged
}

// markAgainstExisting loads the recorded trips and runs the dedupe pass.
func (s *SuggestionService) markAgainstExisting(ctx context.Context, suggestions []domain.TripSuggestion) ([]domain.TripSuggestion, error) {
	if len(suggestions) == 0 {
		return []domain.TripSuggestion{}, nil
	}
	existing, err := s.trips.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.SuggestionService: load existing trips: %w", err)
	}
	return tripextract.MarkDuplicateSuggestions(suggestions, existing), nil
}
