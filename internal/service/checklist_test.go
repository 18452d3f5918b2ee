package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/wayfarer/internal/domain"
	"github.com/pkordes/wayfarer/internal/idgen"
	"github.com/pkordes/wayfarer/internal/repo"
	"github.com/pkordes/wayfarer/internal/service"
)

func newChecklistService(t *testing.T, seed bool) *service.ChecklistService {
	t.Helper()
	ids, err := idgen.NewSnowflake(1)
	require.NoError(t, err)
	svc := service.NewChecklistService(repo.NewMemorySnapshotRepo(), ids, nil)
	require.NoError(t, svc.Load(context.Background(), seed))
	return svc
}

func firstItem(t *testing.T, svc *service.ChecklistService) (string, domain.ChecklistItem) {
	t.Helper()
	cats := svc.Categories()
	require.NotEmpty(t, cats)
	items := svc.Checklist()[cats[0]]
	require.NotEmpty(t, items)
	return cats[0], items[0]
}

func TestChecklistService_StartsUninitialized(t *testing.T) {
	svc := newChecklistService(t, false)

	assert.False(t, svc.Initialized())
	assert.Empty(t, svc.Checklist())
	assert.Equal(t, domain.ChecklistProgress{}, svc.Progress())
}

func TestChecklistService_InitializeFromTemplate(t *testing.T) {
	svc := newChecklistService(t, false)
	ctx := context.Background()

	changed, err := svc.InitializeFromTemplate(ctx)
	require.NoError(t, err)
	assert.True(t, changed)
	first := svc.Checklist()

	changed, err = svc.InitializeFromTemplate(ctx)
	require.NoError(t, err)
	assert.False(t, changed, "second call is a no-op")
	assert.Equal(t, first, svc.Checklist())
}

func TestChecklistService_InitializeKeepsCustomizations(t *testing.T) {
	svc := newChecklistService(t, true)
	ctx := context.Background()
	cat, item := firstItem(t, svc)
	_, err := svc.ToggleItem(ctx, cat, item.ID)
	require.NoError(t, err)

	changed, err := svc.InitializeFromTemplate(ctx)

	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, 1, svc.Progress().Completed)
}

func TestChecklistService_Categories_TemplateOrder(t *testing.T) {
	svc := newChecklistService(t, true)

	assert.Equal(t, []string{"Vehicle", "Recovery", "Camping", "Kitchen", "Safety", "Documents"}, svc.Categories())
}

func TestChecklistService_ToggleItem(t *testing.T) {
	svc := newChecklistService(t, true)
	ctx := context.Background()
	cat, item := firstItem(t, svc)

	got, err := svc.ToggleItem(ctx, cat, item.ID)
	require.NoError(t, err)
	assert.True(t, got.Checked)
	assert.Equal(t, 1, svc.CategoryProgress(cat).Completed)

	got, err = svc.ToggleItem(ctx, cat, item.ID)
	require.NoError(t, err)
	assert.False(t, got.Checked)
}

func TestChecklistService_ToggleItem_UnknownLeavesStateUnchanged(t *testing.T) {
	svc := newChecklistService(t, true)
	ctx := context.Background()
	cat, _ := firstItem(t, svc)
	before := svc.Checklist()

	_, err := svc.ToggleItem(ctx, "Nope", "vehicle-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = svc.ToggleItem(ctx, cat, "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.Equal(t, before, svc.Checklist())
	assert.NotContains(t, svc.Checklist(), "Nope")
}

func TestChecklistService_AddAndRemoveCustomItem(t *testing.T) {
	svc := newChecklistService(t, true)
	ctx := context.Background()
	before := svc.Progress().Total

	item, err := svc.AddCustomItem(ctx, "Kitchen", "Coffee beans")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(item.ID, domain.CustomItemPrefix))
	assert.False(t, item.Checked)

	items := svc.Checklist()["Kitchen"]
	assert.Equal(t, item, items[len(items)-1], "custom items are appended")
	assert.Equal(t, before+1, svc.Progress().Total)

	require.NoError(t, svc.RemoveItem(ctx, "Kitchen", item.ID))
	assert.Equal(t, before, svc.Progress().Total)
}

func TestChecklistService_AddCustomItem_Errors(t *testing.T) {
	svc := newChecklistService(t, true)
	ctx := context.Background()

	_, err := svc.AddCustomItem(ctx, "Invented", "Thing")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.AddCustomItem(ctx, "Kitchen", "  ")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestChecklistService_RemoveItem_TemplateItemRejected(t *testing.T) {
	svc := newChecklistService(t, true)
	cat, item := firstItem(t, svc)

	err := svc.RemoveItem(context.Background(), cat, item.ID)

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, svc.Checklist()[cat], item)
}

func TestChecklistService_Reset(t *testing.T) {
	svc := newChecklistService(t, true)
	ctx := context.Background()
	template := svc.Checklist()

	cat, item := firstItem(t, svc)
	_, err := svc.ToggleItem(ctx, cat, item.ID)
	require.NoError(t, err)
	_, err = svc.AddCustomItem(ctx, cat, "Spare fuses")
	require.NoError(t, err)

	require.NoError(t, svc.Reset(ctx))

	got := svc.Checklist()
	assert.Equal(t, template, got)
	for _, items := range got {
		for _, it := range items {
			assert.False(t, it.Checked)
			assert.False(t, it.IsCustom())
		}
	}
}

func TestChecklistService_ChecklistIsDeepCopy(t *testing.T) {
	svc := newChecklistService(t, true)
	cat, _ := firstItem(t, svc)

	c := svc.Checklist()
	c[cat][0].Checked = true

	assert.Zero(t, svc.Progress().Completed)
}

func TestChecklistService_Progress(t *testing.T) {
	svc := newChecklistService(t, true)
	ctx := context.Background()
	total := svc.Progress().Total
	require.Positive(t, total)

	for _, item := range svc.Checklist()["Safety"] {
		_, err := svc.ToggleItem(ctx, "Safety", item.ID)
		require.NoError(t, err)
	}

	cp := svc.CategoryProgress("Safety")
	assert.Equal(t, cp.Total, cp.Completed)
	assert.Equal(t, 100, cp.Percentage)

	p := svc.Progress()
	assert.Equal(t, cp.Completed, p.Completed)
	assert.Equal(t, total, p.Total)
	assert.GreaterOrEqual(t, p.Percentage, 0)
	assert.LessOrEqual(t, p.Percentage, 100)

	assert.Equal(t, domain.ChecklistProgress{}, svc.CategoryProgress("Nope"))
}
