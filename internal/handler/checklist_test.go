package handler_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/wayfarer/internal/domain"
	"github.com/pkordes/wayfarer/internal/handler"
)

func TestGetChecklist_TemplateOrder(t *testing.T) {
	env := newTestEnv(t)

	rec := do(t, env.h, http.MethodGet, "/checklist", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[handler.ChecklistResponse](t, rec)
	assert.True(t, got.Initialized)
	names := make([]string, 0, len(got.Categories))
	for _, c := range got.Categories {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"Vehicle", "Recovery", "Camping", "Kitchen", "Safety", "Documents"}, names)
	assert.Equal(t, domain.ChecklistProgress{Completed: 0, Total: 26, Percentage: 0}, got.Progress)
	assert.Equal(t, 5, got.Categories[0].Progress.Total)
}

func TestToggleChecklistItem(t *testing.T) {
	env := newTestEnv(t)

	rec := do(t, env.h, http.MethodPost, "/checklist/Vehicle/items/vehicle-1/toggle", nil)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.True(t, decode[domain.ChecklistItem](t, rec).Checked)

	progress := decode[domain.ChecklistProgress](t, do(t, env.h, http.MethodGet, "/checklist/Vehicle/progress", nil))
	assert.Equal(t, domain.ChecklistProgress{Completed: 1, Total: 5, Percentage: 20}, progress)

	overall := decode[domain.ChecklistProgress](t, do(t, env.h, http.MethodGet, "/checklist/progress", nil))
	assert.Equal(t, 1, overall.Completed)
}

func TestToggleChecklistItem_Unknown(t *testing.T) {
	env := newTestEnv(t)

	requireError(t, do(t, env.h, http.MethodPost, "/checklist/Vehicle/items/nope/toggle", nil), http.StatusNotFound, "not_found")
	requireError(t, do(t, env.h, http.MethodPost, "/checklist/Nope/items/vehicle-1/toggle", nil), http.StatusNotFound, "not_found")
	assert.Equal(t, 0, env.checklist.Progress().Completed)
}

func TestCustomChecklistItem_Lifecycle(t *testing.T) {
	env := newTestEnv(t)

	rec := do(t, env.h, http.MethodPost, "/checklist/Camping/items", map[string]any{"text": "Fly screen"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	item := decode[domain.ChecklistItem](t, rec)
	assert.True(t, strings.HasPrefix(item.ID, domain.CustomItemPrefix))
	assert.False(t, item.Checked)
	assert.Len(t, env.checklist.Checklist()["Camping"], 5)

	rec = do(t, env.h, http.MethodDelete, "/checklist/Camping/items/"+item.ID, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Len(t, env.checklist.Checklist()["Camping"], 4)
}

func TestAddChecklistItem_Rejected(t *testing.T) {
	env := newTestEnv(t)

	body := requireError(t, do(t, env.h, http.MethodPost, "/checklist/Nope/items", map[string]any{"text": "x"}),
		http.StatusNotFound, "not_found")
	assert.Equal(t, "checklist category not found", body.Error.Message)

	requireError(t, do(t, env.h, http.MethodPost, "/checklist/Camping/items", map[string]any{"text": "  "}),
		http.StatusUnprocessableEntity, "validation_error")
}

func TestDeleteChecklistItem_TemplateItemRefused(t *testing.T) {
	env := newTestEnv(t)

	rec := do(t, env.h, http.MethodDelete, "/checklist/Vehicle/items/vehicle-1", nil)

	requireError(t, rec, http.StatusUnprocessableEntity, "validation_error")
	assert.Len(t, env.checklist.Checklist()["Vehicle"], 5)
}

func TestResetAndInitializeChecklist(t *testing.T) {
	env := newTestEnv(t)
	do(t, env.h, http.MethodPost, "/checklist/Safety/items/safety-1/toggle", nil)
	do(t, env.h, http.MethodPost, "/checklist/Safety/items", map[string]any{"text": "Snake bandage"})

	rec := do(t, env.h, http.MethodPost, "/checklist/reset", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[handler.ChecklistResponse](t, rec)
	assert.Equal(t, 0, got.Progress.Completed)
	assert.Equal(t, 26, got.Progress.Total)

	// An existing checklist is left alone.
	rec = do(t, env.h, http.MethodPost, "/checklist/initialize", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetChecklistCategoryProgress_UnknownCategory(t *testing.T) {
	env := newTestEnv(t)

	rec := do(t, env.h, http.MethodGet, "/checklist/Nope/progress", nil)

	requireError(t, rec, http.StatusNotFound, "not_found")
}
