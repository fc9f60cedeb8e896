// Package handler — export.go implements GET /export.
// Returns all recorded trips as a flat table for the shared read-only
// dashboard. Supports content negotiation via ?format=csv (CSV) or default
// (JSON).
package handler

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strconv"

	"github.com/wandermap/tripsuggest/internal/domain"
)

// csvHeaders defines the column names written as the first row of any CSV export.
var csvHeaders = []string{
	"trip_id", "country_name", "country_code", "trip_name",
	"visit_date", "end_date", "approx_month", "approx_year", "notes",
}

// exportRowJSON is the JSON shape of one export row.
type exportRowJSON struct {
	TripID      string `json:"trip_id"`
	CountryName string `json:"country_name"`
	CountryCode string `json:"country_code,omitempty"`
	TripName    string `json:"trip_name,omitempty"`
	VisitDate   string `json:"visit_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	ApproxMonth int    `json:"approx_month,omitempty"`
	ApproxYear  int    `json:"approx_year,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

// getExport handles GET /export.
// Use ?format=csv to receive CSV; default is JSON.
func (s *Server) getExport(w http.ResponseWriter, r *http.Request) {
	rows, err := s.export.Export(r.Context())
	if err != nil {
		writeError(w, r, err, "not found")
		return
	}

	if r.URL.Query().Get("format") == "csv" {
		writeCSV(w, rows)
		return
	}

	out := make([]exportRowJSON, len(rows))
	for i, row := range rows {
		out[i] = exportRowJSON(row)
	}
	writeJSON(w, http.StatusOK, out)
}

// writeCSV encodes rows as CSV. Zero approx values are encoded as empty
// strings rather than "0".
func writeCSV(w http.ResponseWriter, rows []domain.ExportRow) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	//nolint:errcheck — bytes.Buffer.Write never returns an error.
	cw.Write(csvHeaders)
	for _, r := range rows {
		//nolint:errcheck
		cw.Write([]string{
			r.TripID,
			r.CountryName,
			r.CountryCode,
			r.TripName,
			r.VisitDate,
			r.EndDate,
			emptyIfZero(r.ApproxMonth),
			emptyIfZero(r.ApproxYear),
			r.Notes,
		})
	}
	cw.Flush()

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	//nolint:errcheck
	w.Write(buf.Bytes())
}

func emptyIfZero(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}
