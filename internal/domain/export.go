package domain

// ExportRow is a single row in the full-data export backing the read-only
// shared dashboard: one flat row per trip.
//
// Dates are pre-formatted "2006-01-02" strings (empty when nil) so that CSV
// and JSON encoders need no date logic of their own.
type ExportRow struct {
	TripID      string
	CountryName string
	CountryCode string
	TripName    string
	VisitDate   string // empty when only approximate evidence exists
	EndDate     string
	ApproxMonth int
	ApproxYear  int
	Notes       string
}
