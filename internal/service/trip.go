// Package service contains the business logic for the trip suggestion
// service. Services validate inputs, enforce business rules, and orchestrate
// repo and parser calls. No SQL lives here — services depend on repo
// interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/wandermap/tripsuggest/internal/countries"
	"github.com/wandermap/tripsuggest/internal/domain"
	"github.com/wandermap/tripsuggest/internal/repo"
)

// TripService implements business logic for recorded Trip operations.
type TripService struct {
	repo repo.TripRepo
}

// NewTripService constructs a TripService backed by the provided TripRepo.
func NewTripService(r repo.TripRepo) *TripService {
	return &TripService{repo: r}
}

// Create validates and persists a new trip. When the country code is missing
// it is filled in from the country name where possible.
func (s *TripService) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if err := validateTrip(&trip); err != nil {
		return domain.Trip{}, err
	}
	result, err := s.repo.Create(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single trip by ID.
func (s *TripService) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	result, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", err)
	}
	return result, nil
}

// List returns all trips, most recent first.
// Always returns a non-nil slice so callers can safely range over it.
func (s *TripService) List(ctx context.Context) ([]domain.Trip, error) {
	trips, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.List: %w", err)
	}
	if trips == nil {
		return []domain.Trip{}, nil
	}
	return trips, nil
}

// ListByCountry returns all trips recorded for one country.
// The code is normalized to uppercase; a blank code is a validation error.
// Always returns a non-nil slice so callers can safely range over it.
func (s *TripService) ListByCountry(ctx context.Context, code string) ([]domain.Trip, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, fmt.Errorf("%w: country code is required", domain.ErrValidation)
	}
	trips, err := s.repo.ListByCountry(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.ListByCountry: %w", err)
	}
	if trips == nil {
		return []domain.Trip{}, nil
	}
	return trips, nil
}

// ListPaged returns one page of trips plus the total count.
func (s *TripService) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	trips, total, err := s.repo.ListPaged(ctx, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.TripService.ListPaged: %w", err)
	}
	if trips == nil {
		trips = []domain.Trip{}
	}
	return trips, total, nil
}

// Update validates and updates an existing trip.
func (s *TripService) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if err := validateTrip(&trip); err != nil {
		return domain.Trip{}, err
	}
	result, err := s.repo.Update(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	return result, nil
}

// Delete removes a trip by ID.
func (s *TripService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	return nil
}

// validateTrip enforces the business rules shared by Create and Update, and
// normalizes the country code.
//   - Country name is required (whitespace-only is rejected).
//   - EndDate, if set, requires VisitDate and must not precede it.
//   - ApproxMonth must be 1-12 and requires ApproxYear.
//   - ApproxYear must be in [1900, 2099] when set.
//   - A trip needs either an exact visit date or an approximate year — the
//     same invariant the parser maintains for suggestions.
func validateTrip(trip *domain.Trip) error {
	if strings.TrimSpace(trip.CountryName) == "" {
		return fmt.Errorf("%w: country name is required", domain.ErrValidation)
	}
	if trip.EndDate != nil {
		if trip.VisitDate == nil {
			return fmt.Errorf("%w: end_date requires visit_date", domain.ErrValidation)
		}
		if trip.EndDate.Before(*trip.VisitDate) {
			return fmt.Errorf("%w: end_date must not be before visit_date", domain.ErrValidation)
		}
	}
	if trip.ApproxMonth != 0 {
		if trip.ApproxMonth < 1 || trip.ApproxMonth > 12 {
			return fmt.Errorf("%w: approx_month must be between 1 and 12", domain.ErrValidation)
		}
		if trip.ApproxYear == 0 {
			return fmt.Errorf("%w: approx_month requires approx_year", domain.ErrValidation)
		}
	}
	if trip.ApproxYear != 0 && (trip.ApproxYear < 1900 || trip.ApproxYear > 2099) {
		return fmt.Errorf("%w: approx_year must be between 1900 and 2099", domain.ErrValidation)
	}
	if trip.VisitDate == nil && trip.ApproxYear == 0 {
		return fmt.Errorf("%w: a trip needs a visit_date or an approx_year", domain.ErrValidation)
	}

	if trip.CountryCode == "" {
		if c := countries.Resolve(trip.CountryName); c != nil {
			trip.CountryCode = c.Code
		}
	} else {
		trip.CountryCode = strings.ToUpper(trip.CountryCode)
	}
	return nil
}
