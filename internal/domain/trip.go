// Package domain contains the core data types for the trip suggestion service.
// This package has no dependencies beyond uuid and is imported by every other
// internal package (tripextract, repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Trip is a persisted travel record: one country visit with either exact
// dates or approximate month/year evidence. Accepted suggestions become
// trips, and existing trips are the comparison set for duplicate detection.
type Trip struct {
	ID          uuid.UUID  `json:"id"`
	CountryName string     `json:"country_name"`
	CountryCode string     `json:"country_code,omitempty"` // ISO 3166-1 alpha-2, empty when unknown
	Name        string     `json:"name,omitempty"`         // e.g. "Our honeymoon trip"
	VisitDate   *time.Time `json:"visit_date,omitempty"`   // date precision; nil when only approximate info is known
	EndDate     *time.Time `json:"end_date,omitempty"`

	// ApproxMonth and ApproxYear hold the fallback evidence when no exact
	// dates are known. Zero means unset. A valid trip has either a
	// VisitDate or an ApproxYear, never neither.
	ApproxMonth int `json:"approx_month,omitempty"` // 1-12
	ApproxYear  int `json:"approx_year,omitempty"`  // 4-digit

	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
