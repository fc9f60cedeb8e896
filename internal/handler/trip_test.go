package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wandermap/tripsuggest/internal/domain"
	"github.com/wandermap/tripsuggest/internal/handler"
)

// mockTripServicer is a test double for handler.TripServicer.
// Set only the method fields your test needs.
type mockTripServicer struct {
	create        func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	getByID       func(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	listPaged     func(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error)
	listByCountry func(ctx context.Context, code string) ([]domain.Trip, error)
	update        func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	delete        func(ctx context.Context, id uuid.UUID) error
}

func (m *mockTripServicer) Create(ctx context.Context, t domain.Trip) (domain.Trip, error) {
	return m.create(ctx, t)
}
func (m *mockTripServicer) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	return m.getByID(ctx, id)
}
func (m *mockTripServicer) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	return m.listPaged(ctx, p)
}
func (m *mockTripServicer) ListByCountry(ctx context.Context, code string) ([]domain.Trip, error) {
	return m.listByCountry(ctx, code)
}
func (m *mockTripServicer) Update(ctx context.Context, t domain.Trip) (domain.Trip, error) {
	return m.update(ctx, t)
}
func (m *mockTripServicer) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

// compile-time check: mockTripServicer must satisfy handler.TripServicer.
var _ handler.TripServicer = (*mockTripServicer)(nil)

// ---- helpers ---------------------------------------------------------------

// newTripHandler wires a Server with the given mock into the chi router,
// mirroring how main.go wires it in production.
func newTripHandler(svc handler.TripServicer) http.Handler {
	return handler.NewServer(svc, nil, nil).Routes()
}

func tripFixture() domain.Trip {
	visit := time.Date(2022, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2022, 6, 10, 0, 0, 0, 0, time.UTC)
	return domain.Trip{
		ID:          uuid.New(),
		CountryName: "Iceland",
		CountryCode: "IS",
		Name:        "Ring road",
		VisitDate:   &visit,
		EndDate:     &end,
		Notes:       "test notes",
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

// tripJSON mirrors the response shape loosely for decoding in tests.
type tripJSON struct {
	ID          uuid.UUID `json:"id"`
	CountryName string    `json:"country_name"`
	CountryCode string    `json:"country_code"`
	Name        string    `json:"name"`
	VisitDate   string    `json:"visit_date"`
	EndDate     string    `json:"end_date"`
	ApproxMonth int       `json:"approx_month"`
	ApproxYear  int       `json:"approx_year"`
	Notes       string    `json:"notes"`
}

type errJSON struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// ---- POST /trips -----------------------------------------------------------

func TestCreateTrip_201(t *testing.T) {
	fixture := tripFixture()
	svc := &mockTripServicer{
		create: func(_ context.Context, _ domain.Trip) (domain.Trip, error) {
			return fixture, nil
		},
	}

	body := jsonBody(t, map[string]any{
		"country_name": "Iceland",
		"visit_date":   "2022-06-01",
		"end_date":     "2022-06-10",
	})

	req := httptest.NewRequest(http.MethodPost, "/trips", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newTripHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp tripJSON
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, fixture.ID, resp.ID)
	assert.Equal(t, "Iceland", resp.CountryName)
	assert.Equal(t, "2022-06-01", resp.VisitDate)
	assert.Equal(t, "2022-06-10", resp.EndDate)
}

func TestCreateTrip_PassesParsedDatesToService(t *testing.T) {
	var got domain.Trip
	svc := &mockTripServicer{
		create: func(_ context.Context, trip domain.Trip) (domain.Trip, error) {
			got = trip
			return trip, nil
		},
	}

	body := jsonBody(t, map[string]any{
		"country_name": "France",
		"approx_month": 7,
		"approx_year":  2020,
	})

	req := httptest.NewRequest(http.MethodPost, "/trips", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newTripHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "France", got.CountryName)
	assert.Nil(t, got.VisitDate)
	assert.Equal(t, 7, got.ApproxMonth)
	assert.Equal(t, 2020, got.ApproxYear)
}

func TestCreateTrip_422_ValidationError(t *testing.T) {
	svc := &mockTripServicer{
		create: func(_ context.Context, _ domain.Trip) (domain.Trip, error) {
			return domain.Trip{}, fmt.Errorf("%w: country name is required", domain.ErrValidation)
		},
	}

	body := jsonBody(t, map[string]any{"country_name": ""})

	req := httptest.NewRequest(http.MethodPost, "/trips", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newTripHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp errJSON
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "validation_error", resp.Error.Code)
	assert.Equal(t, "country name is required", resp.Error.Message)
}

func TestCreateTrip_422_MalformedBody(t *testing.T) {
	svc := &mockTripServicer{}

	req := httptest.NewRequest(http.MethodPost, "/trips", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newTripHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

// ---- GET /trips ------------------------------------------------------------

func TestListTrips_200(t *testing.T) {
	svc := &mockTripServicer{
		listPaged: func(_ context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error) {
			return []domain.Trip{tripFixture(), tripFixture()}, 2, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/trips", nil)
	rec := httptest.NewRecorder()

	newTripHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data       []tripJSON `json:"data"`
		Pagination struct {
			Page  int   `json:"page"`
			Limit int   `json:"limit"`
			Total int64 `json:"total"`
		} `json:"pagination"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Len(t, resp.Data, 2)
	assert.Equal(t, 1, resp.Pagination.Page)
	assert.Equal(t, 20, resp.Pagination.Limit)
	assert.EqualValues(t, 2, resp.Pagination.Total)
}

func TestListTrips_PaginationParams(t *testing.T) {
	var got domain.PaginationParams
	svc := &mockTripServicer{
		listPaged: func(_ context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error) {
			got = p
			return nil, 0, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/trips?page=3&limit=5", nil)
	rec := httptest.NewRecorder()

	newTripHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 3, got.Page)
	assert.Equal(t, 5, got.Limit)
}

func TestListTrips_FilterByCountry(t *testing.T) {
	var gotCode string
	svc := &mockTripServicer{
		listByCountry: func(_ context.Context, code string) ([]domain.Trip, error) {
			gotCode = code
			return []domain.Trip{tripFixture()}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/trips?country=IS", nil)
	rec := httptest.NewRecorder()

	// listPaged is left nil: the filtered branch must never touch it.
	newTripHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "IS", gotCode)

	var resp struct {
		Data       []tripJSON `json:"data"`
		Pagination struct {
			Total int64 `json:"total"`
		} `json:"pagination"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Len(t, resp.Data, 1)
	assert.Equal(t, "IS", resp.Data[0].CountryCode)
	assert.EqualValues(t, 1, resp.Pagination.Total)
}

func TestListTrips_FilterByCountry_422_BlankAfterTrim(t *testing.T) {
	svc := &mockTripServicer{
		listByCountry: func(_ context.Context, code string) ([]domain.Trip, error) {
			return nil, fmt.Errorf("%w: country code is required", domain.ErrValidation)
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/trips?country=%20%20", nil)
	rec := httptest.NewRecorder()

	newTripHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

// ---- GET /trips/{id} -------------------------------------------------------

func TestGetTrip_200(t *testing.T) {
	fixture := tripFixture()
	svc := &mockTripServicer{
		getByID: func(_ context.Context, id uuid.UUID) (domain.Trip, error) {
			assert.Equal(t, fixture.ID, id)
			return fixture, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/trips/"+fixture.ID.String(), nil)
	rec := httptest.NewRecorder()

	newTripHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp tripJSON
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, fixture.ID, resp.ID)
}

func TestGetTrip_404_NotFound(t *testing.T) {
	svc := &mockTripServicer{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.Trip, error) {
			return domain.Trip{}, domain.ErrNotFound
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/trips/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()

	newTripHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var resp errJSON
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "not_found", resp.Error.Code)
}

func TestGetTrip_404_MalformedID(t *testing.T) {
	// The servicer must never be called for an unparseable UUID.
	svc := &mockTripServicer{}

	req := httptest.NewRequest(http.MethodGet, "/trips/not-a-uuid", nil)
	rec := httptest.NewRecorder()

	newTripHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ---- PUT /trips/{id} -------------------------------------------------------

func TestUpdateTrip_200(t *testing.T) {
	fixture := tripFixture()
	svc := &mockTripServicer{
		update: func(_ context.Context, trip domain.Trip) (domain.Trip, error) {
			// The path ID must win over anything in the body.
			assert.Equal(t, fixture.ID, trip.ID)
			return fixture, nil
		},
	}

	body := jsonBody(t, map[string]any{
		"country_name": "Iceland",
		"visit_date":   "2022-06-01",
	})

	req := httptest.NewRequest(http.MethodPut, "/trips/"+fixture.ID.String(), body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newTripHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateTrip_404_NotFound(t *testing.T) {
	svc := &mockTripServicer{
		update: func(_ context.Context, _ domain.Trip) (domain.Trip, error) {
			return domain.Trip{}, domain.ErrNotFound
		},
	}

	body := jsonBody(t, map[string]any{
		"country_name": "Iceland",
		"visit_date":   "2022-06-01",
	})

	req := httptest.NewRequest(http.MethodPut, "/trips/"+uuid.NewString(), body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newTripHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ---- DELETE /trips/{id} ----------------------------------------------------

func TestDeleteTrip_204(t *testing.T) {
	svc := &mockTripServicer{
		delete: func(_ context.Context, _ uuid.UUID) error { return nil },
	}

	req := httptest.NewRequest(http.MethodDelete, "/trips/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()

	newTripHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.Bytes())
}

func TestDeleteTrip_404_NotFound(t *testing.T) {
	svc := &mockTripServicer{
		delete: func(_ context.Context, _ uuid.UUID) error { return domain.ErrNotFound },
	}

	req := httptest.NewRequest(http.MethodDelete, "/trips/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()

	newTripHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
