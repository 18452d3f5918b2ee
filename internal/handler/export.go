package handler

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strconv"

	"github.com/pkordes/wayfarer/internal/domain"
)

// csvHeaders defines the column names written as the first row of any CSV export.
var csvHeaders = []string{
	"trip_id", "trip_title", "trip_start_date", "trip_end_date", "trip_active",
	"entry_title", "entry_date", "entry_category", "location_name",
	"latitude", "longitude", "weather", "mood", "content",
}

// ExportRowResponse is one row of the JSON export. Entry fields are absent
// for trips without entries.
type ExportRowResponse struct {
	TripID        string   `json:"tripId"`
	TripTitle     string   `json:"tripTitle"`
	TripStartDate string   `json:"tripStartDate"`
	TripEndDate   string   `json:"tripEndDate"`
	TripActive    bool     `json:"tripActive"`
	EntryTitle    string   `json:"entryTitle,omitempty"`
	EntryDate     string   `json:"entryDate,omitempty"`
	EntryCategory string   `json:"entryCategory,omitempty"`
	LocationName  string   `json:"locationName,omitempty"`
	Latitude      *float64 `json:"latitude,omitempty"`
	Longitude     *float64 `json:"longitude,omitempty"`
	Weather       string   `json:"weather,omitempty"`
	Mood          string   `json:"mood,omitempty"`
	Content       string   `json:"content,omitempty"`
}

// GetExport handles GET /export.
// It returns a flat table of every trip and journal entry.
// Use ?format=csv to receive CSV; default is JSON.
func (s *Server) GetExport(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format != "" && format != "json" && format != "csv" {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("format must be json or csv"))
		return
	}

	rows, err := s.export.Export(r.Context())
	if err != nil {
		s.writeServiceError(w, r, err, "export")
		return
	}

	if format == "csv" {
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="wayfarer-export.csv"`)
		w.WriteHeader(http.StatusOK)
		//nolint:errcheck // headers are sent; a failed write means the client left.
		w.Write(buildCSV(rows))
		return
	}
	out := make([]ExportRowResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, rowToResponse(row))
	}
	writeJSON(w, http.StatusOK, out)
}

// buildCSV encodes domain rows as CSV, header first.
func buildCSV(rows []domain.ExportRow) []byte {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	//nolint:errcheck // bytes.Buffer.Write never returns an error.
	w.Write(csvHeaders)
	for _, r := range rows {
		//nolint:errcheck
		w.Write(rowToCSVRecord(r))
	}
	w.Flush()
	return buf.Bytes()
}

func rowToResponse(r domain.ExportRow) ExportRowResponse {
	out := ExportRowResponse{
		TripID:        r.TripID,
		TripTitle:     r.TripTitle,
		TripStartDate: r.TripStartDate,
		TripEndDate:   r.TripEndDate,
		TripActive:    r.TripActive,
		EntryTitle:    r.EntryTitle,
		EntryDate:     r.EntryDate,
		EntryCategory: r.EntryCategory,
		LocationName:  r.LocationName,
		Weather:       r.Weather,
		Mood:          r.Mood,
		Content:       r.Content,
	}
	if r.EntryDate != "" {
		lat, lng := r.Latitude, r.Longitude
		out.Latitude = &lat
		out.Longitude = &lng
	}
	return out
}

// rowToCSVRecord flattens a row. Coordinates are blank for trips without
// entries.
func rowToCSVRecord(r domain.ExportRow) []string {
	var lat, lng string
	if r.EntryDate != "" {
		lat = strconv.FormatFloat(r.Latitude, 'f', -1, 64)
		lng = strconv.FormatFloat(r.Longitude, 'f', -1, 64)
	}
	return []string{
		r.TripID,
		r.TripTitle,
		r.TripStartDate,
		r.TripEndDate,
		strconv.FormatBool(r.TripActive),
		r.EntryTitle,
		r.EntryDate,
		r.EntryCategory,
		r.LocationName,
		lat,
		lng,
		r.Weather,
		r.Mood,
		r.Content,
	}
}
