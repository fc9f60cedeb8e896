package service

import (
	"context"
	"fmt"

	"github.com/wandermap/tripsuggest/internal/domain"
	"github.com/wandermap/tripsuggest/internal/repo"
)

// ExportService assembles the flat full-data export backing the read-only
// shared dashboard.
type ExportService struct {
	trips repo.TripRepo
}

// NewExportService constructs an ExportService backed by the provided TripRepo.
func NewExportService(trips repo.TripRepo) *ExportService {
	return &ExportService{trips: trips}
}

// Export returns one ExportRow per recorded trip, most recent first.
// Always returns a non-nil slice.
func (s *ExportService) Export(ctx context.Context) ([]domain.ExportRow, error) {
	trips, err := s.trips.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}

	rows := make([]domain.ExportRow, 0, len(trips))
	for _, t := range trips {
		row := domain.ExportRow{
			TripID:      t.ID.String(),
			CountryName: t.CountryName,
			CountryCode: t.CountryCode,
			TripName:    t.Name,
			ApproxMonth: t.ApproxMonth,
			ApproxYear:  t.ApproxYear,
			Notes:       t.Notes,
		}
		if t.VisitDate != nil {
			row.VisitDate = t.VisitDate.Format("2006-01-02")
		}
		if t.EndDate != nil {
			row.EndDate = t.EndDate.Format("2006-01-02")
		}
		rows = append(rows, row)
	}
	return rows, nil
}
