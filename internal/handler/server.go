// Package handler implements the HTTP surface of the trip suggestion
// service. All endpoints are methods on Server; methods are split into
// resource-specific files (health.go, trip.go, suggestion.go, export.go)
// but share the same struct so they can access its dependencies.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/wandermap/tripsuggest/internal/domain"
)

// TripServicer defines the business operations the trip endpoints depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type TripServicer interface {
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error)
	ListByCountry(ctx context.Context, code string) ([]domain.Trip, error)
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// SuggestionServicer defines the parse/merge operations the suggestion
// endpoints depend on.
type SuggestionServicer interface {
	ParseText(ctx context.Context, text string) ([]domain.TripSuggestion, error)
	ParseEmail(ctx context.Context, text string) ([]domain.TripSuggestion, error)
	Merge(ctx context.Context, suggestions []domain.TripSuggestion, maxDaysApart int) []domain.TripSuggestion
}

// Exporter defines the dashboard export operation.
type Exporter interface {
	Export(ctx context.Context) ([]domain.ExportRow, error)
}

// Server holds the dependencies for all endpoints. Wire it in main.go via
// Routes().
type Server struct {
	trips       TripServicer
	suggestions SuggestionServicer
	export      Exporter
}

// NewServer constructs the Server with all its dependencies.
func NewServer(trips TripServicer, suggestions SuggestionServicer, export Exporter) *Server {
	return &Server{trips: trips, suggestions: suggestions, export: export}
}

// NewHealthHandler returns a Server suitable for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(nil, nil, nil)
}

// Routes assembles the chi router for the full REST surface.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.getHealth)

	r.Route("/trips", func(r chi.Router) {
		r.Post("/", s.createTrip)
		r.Get("/", s.listTrips)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.getTrip)
			r.Put("/", s.updateTrip)
			r.Delete("/", s.deleteTrip)
		})
	})

	r.Route("/suggestions", func(r chi.Router) {
		r.Post("/parse", s.parseText)
		r.Post("/parse-email", s.parseEmail)
		r.Post("/merge", s.mergeSuggestions)
		r.Post("/accept", s.acceptSuggestion)
	})

	r.Get("/export", s.getExport)

	return r
}

// writeJSON encodes v with the given status. Encoding failures are logged,
// not surfaced — headers are already gone by then.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

// writeError maps domain sentinel errors to HTTP error bodies; anything
// unrecognized becomes a logged 500.
func writeError(w http.ResponseWriter, r *http.Request, err error, notFoundMsg string) {
	switch {
	case isNotFound(err):
		writeJSON(w, http.StatusNotFound, notFoundBody(notFoundMsg))
	case isValidation(err):
		writeJSON(w, http.StatusUnprocessableEntity, validationBody(err))
	default:
		slog.ErrorContext(r.Context(), "handler error", "method", r.Method, "path", r.URL.Path, "error", err)
		writeJSON(w, http.StatusInternalServerError, internalBody())
	}
}
