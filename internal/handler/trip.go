package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/wandermap/tripsuggest/internal/domain"
)

// tripRequest is the JSON body for POST /trips and PUT /trips/{id}.
// Date fields use the openapi runtime Date type so they marshal as plain
// "2006-01-02" strings rather than RFC3339 timestamps.
type tripRequest struct {
	CountryName string              `json:"country_name"`
	CountryCode string              `json:"country_code,omitempty"`
	Name        string              `json:"name,omitempty"`
	VisitDate   *openapi_types.Date `json:"visit_date,omitempty"`
	EndDate     *openapi_types.Date `json:"end_date,omitempty"`
	ApproxMonth int                 `json:"approx_month,omitempty"`
	ApproxYear  int                 `json:"approx_year,omitempty"`
	Notes       string              `json:"notes,omitempty"`
}

// tripResponse is the JSON shape of a persisted trip.
type tripResponse struct {
	ID          uuid.UUID           `json:"id"`
	CountryName string              `json:"country_name"`
	CountryCode string              `json:"country_code,omitempty"`
	Name        string              `json:"name,omitempty"`
	VisitDate   *openapi_types.Date `json:"visit_date,omitempty"`
	EndDate     *openapi_types.Date `json:"end_date,omitempty"`
	ApproxMonth int                 `json:"approx_month,omitempty"`
	ApproxYear  int                 `json:"approx_year,omitempty"`
	Notes       string              `json:"notes,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// pagination echoes the applied page parameters back to the client.
type pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

// tripListResponse is the body of GET /trips.
type tripListResponse struct {
	Data       []tripResponse `json:"data"`
	Pagination pagination     `json:"pagination"`
}

// createTrip handles POST /trips.
func (s *Server) createTrip(w http.ResponseWriter, r *http.Request) {
	var req tripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("invalid request body"))
		return
	}

	created, err := s.trips.Create(r.Context(), requestToTrip(req, uuid.Nil))
	if err != nil {
		writeError(w, r, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusCreated, tripToResponse(created))
}

// listTrips handles GET /trips.
// Supports ?page= and ?limit= query parameters (defaults: page=1, limit=20,
// max=100). With ?country=XX the full filtered set is returned in one page.
func (s *Server) listTrips(w http.ResponseWriter, r *http.Request) {
	if code := r.URL.Query().Get("country"); code != "" {
		s.listTripsByCountry(w, r, code)
		return
	}

	params := domain.NewPaginationParams(
		queryInt(r, "page"),
		queryInt(r, "limit"),
	)

	trips, total, err := s.trips.ListPaged(r.Context(), params)
	if err != nil {
		writeError(w, r, err, "trip not found")
		return
	}

	data := make([]tripResponse, len(trips))
	for i, t := range trips {
		data[i] = tripToResponse(t)
	}
	writeJSON(w, http.StatusOK, tripListResponse{
		Data:       data,
		Pagination: pagination{Page: params.Page, Limit: params.Limit, Total: total},
	})
}

// listTripsByCountry serves the ?country= branch of GET /trips. Country
// collections stay small (one user's trips to one place), so no paging.
func (s *Server) listTripsByCountry(w http.ResponseWriter, r *http.Request, code string) {
	trips, err := s.trips.ListByCountry(r.Context(), code)
	if err != nil {
		writeError(w, r, err, "trip not found")
		return
	}

	data := make([]tripResponse, len(trips))
	for i, t := range trips {
		data[i] = tripToResponse(t)
	}
	writeJSON(w, http.StatusOK, tripListResponse{
		Data:       data,
		Pagination: pagination{Page: 1, Limit: len(data), Total: int64(len(data))},
	})
}

// getTrip handles GET /trips/{id}.
func (s *Server) getTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	trip, err := s.trips.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, r, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusOK, tripToResponse(trip))
}

// updateTrip handles PUT /trips/{id}.
func (s *Server) updateTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req tripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("invalid request body"))
		return
	}

	updated, err := s.trips.Update(r.Context(), requestToTrip(req, id))
	if err != nil {
		writeError(w, r, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusOK, tripToResponse(updated))
}

// deleteTrip handles DELETE /trips/{id}.
func (s *Server) deleteTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := s.trips.Delete(r.Context(), id); err != nil {
		writeError(w, r, err, "trip not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- mapping helpers --------------------------------------------------------

// pathID parses the {id} path parameter. A malformed UUID can never name an
// existing trip, so it is reported as 404 rather than a separate error shape.
func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, notFoundBody("trip not found"))
		return uuid.Nil, false
	}
	return id, true
}

// queryInt returns a pointer to the integer query param, or nil when absent
// or malformed.
func queryInt(r *http.Request, key string) *int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil
	}
	return &n
}

// requestToTrip converts a tripRequest body into a domain.Trip, preserving
// the path ID on updates.
func requestToTrip(req tripRequest, id uuid.UUID) domain.Trip {
	t := domain.Trip{
		ID:          id,
		CountryName: req.CountryName,
		CountryCode: req.CountryCode,
		Name:        req.Name,
		ApproxMonth: req.ApproxMonth,
		ApproxYear:  req.ApproxYear,
		Notes:       req.Notes,
	}
	if req.VisitDate != nil {
		v := req.VisitDate.Time
		t.VisitDate = &v
	}
	if req.EndDate != nil {
		e := req.EndDate.Time
		t.EndDate = &e
	}
	return t
}

// tripToResponse converts a domain.Trip into its JSON shape.
func tripToResponse(t domain.Trip) tripResponse {
	resp := tripResponse{
		ID:          t.ID,
		CountryName: t.CountryName,
		CountryCode: t.CountryCode,
		Name:        t.Name,
		ApproxMonth: t.ApproxMonth,
		ApproxYear:  t.ApproxYear,
		Notes:       t.Notes,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
	resp.VisitDate = optionalDate(t.VisitDate)
	resp.EndDate = optionalDate(t.EndDate)
	return resp
}

// optionalDate wraps a nullable time as a nullable openapi date.
func optionalDate(t *time.Time) *openapi_types.Date {
	if t == nil {
		return nil
	}
	return &openapi_types.Date{Time: *t}
}
