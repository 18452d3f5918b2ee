package handler_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/wayfarer/internal/handler"
)

func TestGetVehicle_Seeded(t *testing.T) {
	env := newTestEnv(t)

	rec := do(t, env.h, http.MethodGet, "/vehicle", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[handler.VehicleResponse](t, rec)
	assert.Equal(t, "Toyota Land Cruiser", got.Name)
	require.Len(t, got.Modifications, 3)
	assert.Nil(t, got.Modifications[0].DateAdded)
	assert.NotContains(t, rec.Body.String(), "dateAdded")
}

func TestCreateVehicleMod_PrependsWithToday(t *testing.T) {
	env := newTestEnv(t)

	rec := do(t, env.h, http.MethodPost, "/vehicle/mods", map[string]any{"name": "Snorkel", "description": "Safari V-spec"})

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	mod := decode[handler.VehicleModResponse](t, rec)
	require.NotNil(t, mod.DateAdded)
	assert.Equal(t, time.Now().UTC().Format("2006-01-02"), mod.DateAdded.Format("2006-01-02"))

	v := decode[handler.VehicleResponse](t, do(t, env.h, http.MethodGet, "/vehicle", nil))
	require.Len(t, v.Modifications, 4)
	assert.Equal(t, mod.ID, v.Modifications[0].ID)
}

func TestUpdateAndDeleteVehicleMod(t *testing.T) {
	env := newTestEnv(t)

	rec := do(t, env.h, http.MethodPut, "/vehicle/mods/mod-1", map[string]any{"description": "Replaced with a hard shell"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Rooftop Tent", decode[handler.VehicleModResponse](t, rec).Name)

	require.Equal(t, http.StatusNoContent, do(t, env.h, http.MethodDelete, "/vehicle/mods/mod-1", nil).Code)
	body := requireError(t, do(t, env.h, http.MethodDelete, "/vehicle/mods/mod-1", nil), http.StatusNotFound, "not_found")
	assert.Equal(t, "modification not found", body.Error.Message)
}

func TestSetVehicleNameAndPhoto(t *testing.T) {
	env := newTestEnv(t)

	rec := do(t, env.h, http.MethodPut, "/vehicle/name", map[string]any{"name": "Troopy"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Troopy", decode[handler.VehicleResponse](t, rec).Name)

	rec = do(t, env.h, http.MethodPut, "/vehicle/photo", map[string]any{"photoUri": "file:///troopy.jpg"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "file:///troopy.jpg", decode[handler.VehicleResponse](t, rec).PhotoURI)

	requireError(t, do(t, env.h, http.MethodPut, "/vehicle/name", map[string]any{"name": ""}),
		http.StatusUnprocessableEntity, "validation_error")
}
