package domain

import (
	"time"

	"github.com/google/uuid"
)

// SourceType identifies where a suggestion was extracted from.
type SourceType string

const (
	// SourcePastedText marks suggestions extracted from free text — a pasted
	// email, an out-of-office message, or text pulled out of a PDF.
	SourcePastedText SourceType = "pasted_text"
	// SourcePhotoEXIF marks suggestions built from photo metadata. The text
	// parser never emits this type, but merged suggestion sets may carry it.
	SourcePhotoEXIF SourceType = "photo_exif"
)

// TripSuggestion is a candidate trip inferred from unstructured text. It is a
// transient working value: the parser creates it, the caller may edit or
// merge it, and it is discarded once accepted (becoming a Trip) or dismissed.
//
// Date evidence is never fabricated: a suggestion carries an exact
// VisitDate/EndDate, or approximate month/year fields, or — when the text
// held no date at all — none of the four.
type TripSuggestion struct {
	ID          uuid.UUID  `json:"id"`
	CountryName string     `json:"country_name"`
	CountryCode string     `json:"country_code,omitempty"`
	VisitDate   *time.Time `json:"visit_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	ApproxMonth int        `json:"approx_month,omitempty"` // 1-12, 0 = unset
	ApproxYear  int        `json:"approx_year,omitempty"`  // 4-digit, 0 = unset
	TripName    string     `json:"trip_name,omitempty"`

	SourceType  SourceType `json:"source_type"`
	SourceLabel string     `json:"source_label"` // human-readable provenance, e.g. "Flight confirmation"
	Confidence  float64    `json:"confidence,omitempty"`
	PhotoCount  int        `json:"photo_count,omitempty"` // EXIF-derived suggestions only; summed on merge

	// AlreadyExists and DuplicateReason are set by the dedupe pass, never by
	// extraction.
	AlreadyExists   bool   `json:"already_exists,omitempty"`
	DuplicateReason string `json:"duplicate_reason,omitempty"`
}

// HasExactDate reports whether the suggestion carries day-level evidence.
func (s TripSuggestion) HasExactDate() bool {
	return s.VisitDate != nil
}
