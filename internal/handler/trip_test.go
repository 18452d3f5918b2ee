package handler_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/wayfarer/internal/handler"
)

// ---- trips -----------------------------------------------------------------

func TestListTrips_Paginated(t *testing.T) {
	env := newTestEnv(t)

	rec := do(t, env.h, http.MethodGet, "/trips?limit=1", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	page := decode[handler.Page[handler.TripResponse]](t, rec)
	assert.Equal(t, handler.PaginationMeta{Page: 1, Limit: 1, Total: 2}, page.Pagination)
	require.Len(t, page.Data, 1)
	first := page.Data[0]
	assert.Equal(t, "1", first.ID)
	assert.Equal(t, "Jun 26 - Jul 15, 2025", first.DateRange)
	assert.Equal(t, "2025-06-26", first.StartDate.Format("2006-01-02"))
	assert.Equal(t, 20, first.Stats.DaysOnTrip)
	assert.True(t, first.IsActive)
}

func TestListTrips_PageBeyondEnd(t *testing.T) {
	env := newTestEnv(t)

	rec := do(t, env.h, http.MethodGet, "/trips?page=5", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	page := decode[handler.Page[handler.TripResponse]](t, rec)
	assert.NotNil(t, page.Data)
	assert.Empty(t, page.Data)
	assert.Equal(t, 2, page.Pagination.Total)
}

func TestListTrips_NonIntegerPage(t *testing.T) {
	env := newTestEnv(t)

	rec := do(t, env.h, http.MethodGet, "/trips?page=abc", nil)

	body := requireError(t, rec, http.StatusUnprocessableEntity, "validation_error")
	assert.Equal(t, "page must be an integer", body.Error.Message)
}

func TestGetActiveTrip(t *testing.T) {
	env := newTestEnv(t)

	rec := do(t, env.h, http.MethodGet, "/trips/active", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1", decode[handler.TripResponse](t, rec).ID)
}

func TestGetActiveTrip_NoneAfterDelete(t *testing.T) {
	env := newTestEnv(t)
	require.Equal(t, http.StatusNoContent, do(t, env.h, http.MethodDelete, "/trips/1", nil).Code)

	rec := do(t, env.h, http.MethodGet, "/trips/active", nil)

	body := requireError(t, rec, http.StatusNotFound, "not_found")
	assert.Equal(t, "no active trip", body.Error.Message)
}

func TestCreateTrip_Created(t *testing.T) {
	env := newTestEnv(t)

	rec := do(t, env.h, http.MethodPost, "/trips", map[string]any{
		"title":     "Gibb River Road",
		"startDate": "2025-08-01",
		"endDate":   "2025-08-05",
		"locations": []map[string]any{{"latitude": -17.96, "longitude": 122.24, "name": "Broome"}},
	})

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	got := decode[handler.TripResponse](t, rec)
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, 5, got.Stats.DaysOnTrip)
	assert.Equal(t, 1, got.Stats.PlacesVisited)
	assert.False(t, got.IsActive)
	assert.Equal(t, "Aug 1 - Aug 5, 2025", got.DateRange)
	assert.Len(t, env.trips.List(), 3)
}

func TestCreateTrip_Rejected(t *testing.T) {
	tests := []struct {
		name    string
		body    any
		message string
	}{
		{
			name:    "missing title",
			body:    map[string]any{"startDate": "2025-08-01", "endDate": "2025-08-05"},
			message: "title is required",
		},
		{
			name:    "inverted range",
			body:    map[string]any{"title": "Backwards", "startDate": "2025-08-05", "endDate": "2025-08-01"},
			message: "endDate must not be before startDate",
		},
		{
			name: "missing dates",
			body: map[string]any{"title": "Someday"},
		},
		{
			name: "malformed date",
			body: map[string]any{"title": "Bad", "startDate": "01/08/2025", "endDate": "2025-08-05"},
		},
		{
			name: "unknown field",
			body: map[string]any{"title": "Extra", "startDate": "2025-08-01", "endDate": "2025-08-05", "budget": 9},
		},
		{
			name:    "empty body",
			body:    nil,
			message: "request body is required",
		},
		{
			name: "not json",
			body: "{title:",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			env := newTestEnv(t)

			rec := do(t, env.h, http.MethodPost, "/trips", tc.body)

			body := requireError(t, rec, http.StatusUnprocessableEntity, "validation_error")
			if tc.message != "" {
				assert.Equal(t, tc.message, body.Error.Message)
			}
			assert.Len(t, env.trips.List(), 2, "rejected input must not change state")
		})
	}
}

func TestGetTrip_NotFound(t *testing.T) {
	env := newTestEnv(t)

	rec := do(t, env.h, http.MethodGet, "/trips/nope", nil)

	body := requireError(t, rec, http.StatusNotFound, "not_found")
	assert.Equal(t, "trip not found", body.Error.Message)
}

func TestUpdateTrip_PartialPatch(t *testing.T) {
	env := newTestEnv(t)
	before, err := env.trips.Get("2")
	require.NoError(t, err)

	rec := do(t, env.h, http.MethodPut, "/trips/2", map[string]any{"title": "Tassie Trek", "endDate": "2025-03-12"})

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	got := decode[handler.TripResponse](t, rec)
	assert.Equal(t, "Tassie Trek", got.Title)
	assert.Equal(t, before.Description, got.Description)
	assert.Equal(t, 3, got.Stats.DaysOnTrip)
}

func TestUpdateTrip_InvertedRange(t *testing.T) {
	env := newTestEnv(t)

	rec := do(t, env.h, http.MethodPut, "/trips/2", map[string]any{"endDate": "2025-01-01"})

	requireError(t, rec, http.StatusUnprocessableEntity, "validation_error")
	stored, err := env.trips.Get("2")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-25", stored.EndDate.Format("2006-01-02"))
}

func TestUpdateTrip_NotFound(t *testing.T) {
	env := newTestEnv(t)

	rec := do(t, env.h, http.MethodPut, "/trips/nope", map[string]any{"title": "x"})

	requireError(t, rec, http.StatusNotFound, "not_found")
}

func TestActivateTrip_SingleActive(t *testing.T) {
	env := newTestEnv(t)

	rec := do(t, env.h, http.MethodPost, "/trips/2/activate", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decode[handler.TripResponse](t, rec).IsActive)

	old := decode[handler.TripResponse](t, do(t, env.h, http.MethodGet, "/trips/1", nil))
	assert.False(t, old.IsActive)

	active := decode[handler.TripResponse](t, do(t, env.h, http.MethodGet, "/trips/active", nil))
	assert.Equal(t, "2", active.ID)
}

func TestActivateTrip_Unknown(t *testing.T) {
	env := newTestEnv(t)

	rec := do(t, env.h, http.MethodPost, "/trips/nope/activate", nil)

	requireError(t, rec, http.StatusNotFound, "not_found")
	active, ok := env.trips.Active()
	require.True(t, ok)
	assert.Equal(t, "1", active.ID)
}

func TestDeleteTrip_CascadesEntries(t *testing.T) {
	env := newTestEnv(t)

	rec := do(t, env.h, http.MethodDelete, "/trips/1", nil)

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
	requireError(t, do(t, env.h, http.MethodGet, "/entries/1", nil), http.StatusNotFound, "not_found")
	requireError(t, do(t, env.h, http.MethodDelete, "/trips/1", nil), http.StatusNotFound, "not_found")
}

// ---- journal entries -------------------------------------------------------

func TestListEntries(t *testing.T) {
	env := newTestEnv(t)

	rec := do(t, env.h, http.MethodGet, "/trips/1/entries", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	page := decode[handler.Page[handler.EntryResponse]](t, rec)
	require.Len(t, page.Data, 3)
	assert.Equal(t, 3, page.Pagination.Total)
	assert.Equal(t, "Day 1. Leaving Darwin.", page.Data[0].Title)
	assert.Equal(t, "Jun 26", page.Data[0].DisplayDate)
	assert.Equal(t, "Darwin", page.Data[0].Location.Name)
}

func TestListEntries_HugePage(t *testing.T) {
	env := newTestEnv(t)

	rec := do(t, env.h, http.MethodGet, "/trips/1/entries?page=4611686018427387905&limit=2", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	page := decode[handler.Page[handler.EntryResponse]](t, rec)
	assert.Empty(t, page.Data)
	assert.Equal(t, 3, page.Pagination.Total)
}

func TestListEntries_UnknownTrip(t *testing.T) {
	env := newTestEnv(t)

	rec := do(t, env.h, http.MethodGet, "/trips/nope/entries", nil)

	body := requireError(t, rec, http.StatusNotFound, "not_found")
	assert.Equal(t, "trip not found", body.Error.Message)
}

func TestCreateEntry_DefaultsDateToToday(t *testing.T) {
	env := newTestEnv(t)

	rec := do(t, env.h, http.MethodPost, "/trips/2/entries", map[string]any{
		"title":    "Wineglass Bay",
		"content":  "Climbed to the lookout before breakfast.",
		"category": "Scenery",
		"location": map[string]any{"latitude": -42.15, "longitude": 148.3, "name": "Freycinet"},
	})

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	got := decode[handler.EntryResponse](t, rec)
	assert.Equal(t, "2", got.TripID)
	assert.Equal(t, time.Now().UTC().Format("2006-01-02"), got.Date.Format("2006-01-02"))

	assert.Len(t, env.trips.EntriesForTrip("2"), 1)
}

func TestCreateEntry_UnknownTrip(t *testing.T) {
	env := newTestEnv(t)

	rec := do(t, env.h, http.MethodPost, "/trips/nope/entries", map[string]any{
		"title": "Lost", "content": "Nowhere", "category": "Adventure", "date": "2025-06-30",
	})

	body := requireError(t, rec, http.StatusNotFound, "not_found")
	assert.Equal(t, "trip not found", body.Error.Message)
}

func TestCreateEntry_MissingContent(t *testing.T) {
	env := newTestEnv(t)

	rec := do(t, env.h, http.MethodPost, "/trips/1/entries", map[string]any{
		"title": "Blank", "category": "Food", "date": "2025-06-30",
	})

	requireError(t, rec, http.StatusUnprocessableEntity, "validation_error")
	assert.Len(t, env.trips.EntriesForTrip("1"), 3)
}

func TestUpdateAndDeleteEntry(t *testing.T) {
	env := newTestEnv(t)

	rec := do(t, env.h, http.MethodPut, "/entries/2", map[string]any{"mood": "Awestruck"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	got := decode[handler.EntryResponse](t, rec)
	assert.Equal(t, "Awestruck", got.Mood)
	assert.Equal(t, "Katherine Gorge Sunset", got.Title)

	fetched := decode[handler.EntryResponse](t, do(t, env.h, http.MethodGet, "/entries/2", nil))
	assert.Equal(t, "Awestruck", fetched.Mood)

	require.Equal(t, http.StatusNoContent, do(t, env.h, http.MethodDelete, "/entries/2", nil).Code)
	requireError(t, do(t, env.h, http.MethodPut, "/entries/2", map[string]any{"mood": "x"}), http.StatusNotFound, "not_found")
}

// ---- photos ----------------------------------------------------------------

func TestPhotoLifecycle(t *testing.T) {
	env := newTestEnv(t)

	rec := do(t, env.h, http.MethodPost, "/trips/2/photos", map[string]any{
		"imageUri": "file:///hobart.jpg",
		"caption":  "Salamanca",
		"date":     "2025-03-11",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	photo := decode[handler.PhotoResponse](t, rec)
	assert.Equal(t, "2025-03-11", photo.Date.Format("2006-01-02"))

	trip := decode[handler.TripResponse](t, do(t, env.h, http.MethodGet, "/trips/2", nil))
	assert.Equal(t, 1, trip.Stats.PhotosCount)

	list := decode[struct {
		Data []handler.PhotoResponse `json:"data"`
	}](t, do(t, env.h, http.MethodGet, "/trips/2/photos", nil))
	require.Len(t, list.Data, 1)

	rec = do(t, env.h, http.MethodPut, "/photos/"+photo.ID, map[string]any{"caption": "Salamanca Market"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Salamanca Market", decode[handler.PhotoResponse](t, rec).Caption)

	require.Equal(t, http.StatusNoContent, do(t, env.h, http.MethodDelete, "/photos/"+photo.ID, nil).Code)
	requireError(t, do(t, env.h, http.MethodGet, "/photos/"+photo.ID, nil), http.StatusNotFound, "not_found")

	trip = decode[handler.TripResponse](t, do(t, env.h, http.MethodGet, "/trips/2", nil))
	assert.Equal(t, 0, trip.Stats.PhotosCount)
}

func TestCreatePhoto_RequiresImage(t *testing.T) {
	env := newTestEnv(t)

	rec := do(t, env.h, http.MethodPost, "/trips/1/photos", map[string]any{"caption": "No image"})

	body := requireError(t, rec, http.StatusUnprocessableEntity, "validation_error")
	assert.Equal(t, "imageUri is required", body.Error.Message)
}
