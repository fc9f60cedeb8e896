package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/wandermap/tripsuggest/internal/domain"
)

// parseRequest is the JSON body for both parse endpoints.
type parseRequest struct {
	Text string `json:"text"`
}

// suggestionJSON is the wire shape of a trip suggestion. It round-trips:
// the parse endpoints emit it and the merge/accept endpoints consume it.
type suggestionJSON struct {
	ID              uuid.UUID           `json:"id"`
	CountryName     string              `json:"country_name"`
	CountryCode     string              `json:"country_code,omitempty"`
	VisitDate       *openapi_types.Date `json:"visit_date,omitempty"`
	EndDate         *openapi_types.Date `json:"end_date,omitempty"`
	ApproxMonth     int                 `json:"approx_month,omitempty"`
	ApproxYear      int                 `json:"approx_year,omitempty"`
	TripName        string              `json:"trip_name,omitempty"`
	SourceType      string              `json:"source_type"`
	SourceLabel     string              `json:"source_label"`
	Confidence      float64             `json:"confidence,omitempty"`
	PhotoCount      int                 `json:"photo_count,omitempty"`
	AlreadyExists   bool                `json:"already_exists,omitempty"`
	DuplicateReason string              `json:"duplicate_reason,omitempty"`
}

// mergeRequest is the JSON body for POST /suggestions/merge.
type mergeRequest struct {
	Suggestions  []suggestionJSON `json:"suggestions"`
	MaxDaysApart int              `json:"max_days_apart,omitempty"` // 0 = default window
}

// acceptRequest is the JSON body for POST /suggestions/accept.
type acceptRequest struct {
	Suggestion suggestionJSON `json:"suggestion"`
	Notes      string         `json:"notes,omitempty"`
}

// parseText handles POST /suggestions/parse.
// Text that yields no suggestions is an ordinary outcome: 200 with [].
func (s *Server) parseText(w http.ResponseWriter, r *http.Request) {
	s.handleParse(w, r, s.suggestions.ParseText)
}

// parseEmail handles POST /suggestions/parse-email.
func (s *Server) parseEmail(w http.ResponseWriter, r *http.Request) {
	s.handleParse(w, r, s.suggestions.ParseEmail)
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request, parse func(ctx context.Context, text string) ([]domain.TripSuggestion, error)) {
	var req parseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("invalid request body"))
		return
	}

	suggestions, err := parse(r.Context(), req.Text)
	if err != nil {
		writeError(w, r, err, "not found")
		return
	}

	slog.InfoContext(r.Context(), "text parsed",
		"input_chars", len(req.Text),
		"suggestions", len(suggestions),
	)
	writeJSON(w, http.StatusOK, suggestionsToJSON(suggestions))
}

// mergeSuggestions handles POST /suggestions/merge.
func (s *Server) mergeSuggestions(w http.ResponseWriter, r *http.Request) {
	var req mergeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("invalid request body"))
		return
	}

	in := make([]domain.TripSuggestion, len(req.Suggestions))
	for i, sj := range req.Suggestions {
		in[i] = jsonToSuggestion(sj)
	}

	merged := s.suggestions.Merge(r.Context(), in, req.MaxDaysApart)
	writeJSON(w, http.StatusOK, suggestionsToJSON(merged))
}

// acceptSuggestion handles POST /suggestions/accept: it converts the
// suggestion into a trip and persists it through the trip service, which
// owns validation.
func (s *Server) acceptSuggestion(w http.ResponseWriter, r *http.Request) {
	var req acceptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("invalid request body"))
		return
	}

	trip := suggestionToTrip(jsonToSuggestion(req.Suggestion))
	trip.Notes = req.Notes

	created, err := s.trips.Create(r.Context(), trip)
	if err != nil {
		writeError(w, r, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusCreated, tripToResponse(created))
}

// --- mapping helpers --------------------------------------------------------

func suggestionsToJSON(in []domain.TripSuggestion) []suggestionJSON {
	out := make([]suggestionJSON, len(in))
	for i, s := range in {
		out[i] = suggestionJSON{
			ID:              s.ID,
			CountryName:     s.CountryName,
			CountryCode:     s.CountryCode,
			VisitDate:       optionalDate(s.VisitDate),
			EndDate:         optionalDate(s.EndDate),
			ApproxMonth:     s.ApproxMonth,
			ApproxYear:      s.ApproxYear,
			TripName:        s.TripName,
			SourceType:      string(s.SourceType),
			SourceLabel:     s.SourceLabel,
			Confidence:      s.Confidence,
			PhotoCount:      s.PhotoCount,
			AlreadyExists:   s.AlreadyExists,
			DuplicateReason: s.DuplicateReason,
		}
	}
	return out
}

func jsonToSuggestion(sj suggestionJSON) domain.TripSuggestion {
	s := domain.TripSuggestion{
		ID:              sj.ID,
		CountryName:     sj.CountryName,
		CountryCode:     sj.CountryCode,
		ApproxMonth:     sj.ApproxMonth,
		ApproxYear:      sj.ApproxYear,
		TripName:        sj.TripName,
		SourceType:      domain.SourceType(sj.SourceType),
		SourceLabel:     sj.SourceLabel,
		Confidence:      sj.Confidence,
		PhotoCount:      sj.PhotoCount,
		AlreadyExists:   sj.AlreadyExists,
		DuplicateReason: sj.DuplicateReason,
	}
	if sj.VisitDate != nil {
		v := sj.VisitDate.Time
		s.VisitDate = &v
	}
	if sj.EndDate != nil {
		e := sj.EndDate.Time
		s.EndDate = &e
	}
	return s
}

// suggestionToTrip maps an accepted suggestion onto the persisted trip shape.
func suggestionToTrip(s domain.TripSuggestion) domain.Trip {
	return domain.Trip{
		CountryName: s.CountryName,
		CountryCode: s.CountryCode,
		Name:        s.TripName,
		VisitDate:   s.VisitDate,
		EndDate:     s.EndDate,
		ApproxMonth: s.ApproxMonth,
		ApproxYear:  s.ApproxYear,
	}
}
