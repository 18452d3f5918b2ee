package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pkordes/wayfarer/internal/handler"
	"github.com/pkordes/wayfarer/internal/idgen"
	"github.com/pkordes/wayfarer/internal/repo"
	"github.com/pkordes/wayfarer/internal/service"
)

// testEnv is a fully wired API over seeded in-memory stores.
type testEnv struct {
	h         http.Handler
	trips     *service.TripService
	gear      *service.GearService
	checklist *service.ChecklistService
}

type loader interface {
	Load(ctx context.Context, seed bool) error
}

// newTestEnv wires every service against one in-memory repo, seeded with
// the demo data. This mirrors how main.go wires it in production.
func newTestEnv(t *testing.T) testEnv {
	t.Helper()
	r := repo.NewMemorySnapshotRepo()
	ids := &idgen.Sequence{Prefix: "new-"}

	trips := service.NewTripService(r, ids, nil)
	gear := service.NewGearService(r, ids, nil)
	checklist := service.NewChecklistService(r, ids, nil)
	vehicle := service.NewVehicleService(r, ids, nil)
	assets := service.NewAssetService(r, ids, nil)
	gallery := service.NewGalleryService(r, ids, nil)
	profile := service.NewProfileService(r, nil)

	for _, l := range []loader{trips, gear, checklist, vehicle, assets, gallery, profile} {
		require.NoError(t, l.Load(context.Background(), true))
	}

	srv := handler.NewServer(handler.Services{
		Trips:     trips,
		Gear:      gear,
		Checklist: checklist,
		Vehicle:   vehicle,
		Assets:    assets,
		Gallery:   gallery,
		Profile:   profile,
		Export:    service.NewExportService(trips),
	}, discardLogger())
	return testEnv{h: srv.Handler(), trips: trips, gear: gear, checklist: checklist}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// do sends a request to h. body may be nil, a raw string, or a value to
// JSON-encode.
func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rdr io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		rdr = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		rdr = bytes.NewBuffer(raw)
	}
	req := httptest.NewRequest(method, path, rdr)
	if rdr != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// decode unmarshals the recorded JSON body into T.
func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

// requireError asserts the status code and error code of a failed response.
func requireError(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) handler.ErrorResponse {
	t.Helper()
	require.Equal(t, status, rec.Code, rec.Body.String())
	body := decode[handler.ErrorResponse](t, rec)
	require.Equal(t, code, body.Error.Code)
	return body
}
