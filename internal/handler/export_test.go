package handler_test

import (
	"context"
	"encoding/csv"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/wayfarer/internal/domain"
	"github.com/pkordes/wayfarer/internal/handler"
)

// ---- mock ExportServicer ---------------------------------------------------

type mockExportServicer struct {
	export func(ctx context.Context) ([]domain.ExportRow, error)
}

func (m *mockExportServicer) Export(ctx context.Context) ([]domain.ExportRow, error) {
	return m.export(ctx)
}

// compile-time check: mockExportServicer must satisfy handler.ExportServicer.
var _ handler.ExportServicer = (*mockExportServicer)(nil)

// newExportHTTPHandler wires a Server with only the export service mock.
func newExportHTTPHandler(svc handler.ExportServicer) http.Handler {
	return handler.NewServer(handler.Services{Export: svc}, discardLogger()).Handler()
}

// ---- GET /export -----------------------------------------------------------

func TestGetExport_DefaultJSON(t *testing.T) {
	env := newTestEnv(t)

	rec := do(t, env.h, http.MethodGet, "/export", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
	rows := decode[[]handler.ExportRowResponse](t, rec)
	require.Len(t, rows, 4)
	assert.Equal(t, "NT Outback Journey 2025", rows[0].TripTitle)
	assert.Equal(t, "Day 1. Leaving Darwin.", rows[0].EntryTitle)
	require.NotNil(t, rows[0].Latitude)
	assert.InDelta(t, -12.4634, *rows[0].Latitude, 1e-9)

	bare := rows[3]
	assert.Equal(t, "2", bare.TripID)
	assert.Empty(t, bare.EntryTitle)
	assert.Nil(t, bare.Latitude)
}

func TestGetExport_CSV(t *testing.T) {
	env := newTestEnv(t)

	rec := do(t, env.h, http.MethodGet, "/export?format=csv", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	records, err := csv.NewReader(strings.NewReader(rec.Body.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 5, "header plus one row per entry or bare trip")
	assert.Equal(t, "trip_id", records[0][0])
	assert.Equal(t, "true", records[1][4])
	assert.Equal(t, "-12.4634", records[1][9])
	assert.Equal(t, "", records[4][9], "bare trip rows have no coordinates")
}

func TestGetExport_EmptyResult(t *testing.T) {
	svc := &mockExportServicer{
		export: func(_ context.Context) ([]domain.ExportRow, error) {
			return []domain.ExportRow{}, nil
		},
	}

	rec := do(t, newExportHTTPHandler(svc), http.MethodGet, "/export?format=json", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestGetExport_UnknownFormat(t *testing.T) {
	called := false
	svc := &mockExportServicer{
		export: func(_ context.Context) ([]domain.ExportRow, error) {
			called = true
			return nil, nil
		},
	}

	rec := do(t, newExportHTTPHandler(svc), http.MethodGet, "/export?format=xml", nil)

	requireError(t, rec, http.StatusUnprocessableEntity, "validation_error")
	assert.False(t, called)
}

func TestGetExport_ServiceError_Returns500(t *testing.T) {
	svc := &mockExportServicer{
		export: func(_ context.Context) ([]domain.ExportRow, error) {
			return nil, errors.New("snapshot store offline")
		},
	}

	rec := do(t, newExportHTTPHandler(svc), http.MethodGet, "/export", nil)

	body := requireError(t, rec, http.StatusInternalServerError, "internal_error")
	assert.NotContains(t, body.Error.Message, "offline", "internal details stay in the log")
}
