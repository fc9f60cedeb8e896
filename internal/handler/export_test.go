package handler_test

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wandermap/tripsuggest/internal/domain"
	"github.com/wandermap/tripsuggest/internal/handler"
)

// mockExporter is a test double for handler.Exporter.
type mockExporter struct {
	export func(ctx context.Context) ([]domain.ExportRow, error)
}

func (m *mockExporter) Export(ctx context.Context) ([]domain.ExportRow, error) {
	return m.export(ctx)
}

// compile-time check: mockExporter must satisfy handler.Exporter.
var _ handler.Exporter = (*mockExporter)(nil)

func exportRows() []domain.ExportRow {
	return []domain.ExportRow{
		{
			TripID:      "11111111-1111-1111-1111-111111111111",
			CountryName: "Iceland",
			CountryCode: "IS",
			TripName:    "Ring road",
			VisitDate:   "2022-06-01",
			EndDate:     "2022-06-10",
			Notes:       "northern lights",
		},
		{
			TripID:      "22222222-2222-2222-2222-222222222222",
			CountryName: "France",
			CountryCode: "FR",
			ApproxMonth: 7,
			ApproxYear:  2020,
		},
	}
}

// ---- GET /export (JSON) ----------------------------------------------------

func TestGetExport_JSON(t *testing.T) {
	svc := &mockExporter{
		export: func(_ context.Context) ([]domain.ExportRow, error) { return exportRows(), nil },
	}
	h := handler.NewServer(nil, nil, svc).Routes()

	req := httptest.NewRequest(http.MethodGet, "/export", nil)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")

	var resp []map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "Iceland", resp[0]["country_name"])
	assert.Equal(t, "2022-06-01", resp[0]["visit_date"])
	// Zero-valued fields are omitted, not rendered as 0 / "".
	assert.NotContains(t, resp[1], "visit_date")
	assert.EqualValues(t, 7, resp[1]["approx_month"])
}

// ---- GET /export?format=csv ------------------------------------------------

func TestGetExport_CSV(t *testing.T) {
	svc := &mockExporter{
		export: func(_ context.Context) ([]domain.ExportRow, error) { return exportRows(), nil },
	}
	h := handler.NewServer(nil, nil, svc).Routes()

	req := httptest.NewRequest(http.MethodGet, "/export?format=csv", nil)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))

	records, err := csv.NewReader(strings.NewReader(rec.Body.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3) // header + 2 rows

	assert.Equal(t, []string{
		"trip_id", "country_name", "country_code", "trip_name",
		"visit_date", "end_date", "approx_month", "approx_year", "notes",
	}, records[0])
	assert.Equal(t, "Iceland", records[1][1])
	assert.Equal(t, "2022-06-01", records[1][4])
	// Unset approx fields come out as empty strings, not "0".
	assert.Equal(t, "", records[1][6])
	assert.Equal(t, "7", records[2][6])
	assert.Equal(t, "2020", records[2][7])
}

func TestGetExport_CSV_EmptyStillHasHeader(t *testing.T) {
	svc := &mockExporter{
		export: func(_ context.Context) ([]domain.ExportRow, error) { return []domain.ExportRow{}, nil },
	}
	h := handler.NewServer(nil, nil, svc).Routes()

	req := httptest.NewRequest(http.MethodGet, "/export?format=csv", nil)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	records, err := csv.NewReader(strings.NewReader(rec.Body.String())).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestGetExport_500_ServiceError(t *testing.T) {
	svc := &mockExporter{
		export: func(_ context.Context) ([]domain.ExportRow, error) {
			return nil, errors.New("db exploded")
		},
	}
	h := handler.NewServer(nil, nil, svc).Routes()

	req := httptest.NewRequest(http.MethodGet, "/export", nil)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
