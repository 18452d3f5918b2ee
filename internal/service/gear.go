package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"slices"

	"github.com/pkordes/wayfarer/internal/domain"
	"github.com/pkordes/wayfarer/internal/idgen"
	"github.com/pkordes/wayfarer/internal/repo"
)

// GearStorageKey is the snapshot key of the gear store.
const GearStorageKey = "gear-storage"

type gearState struct {
	GearItems      []domain.GearItem     `json:"gearItems"`
	GearCategories []domain.GearCategory `json:"gearCategories"`
}

func (s gearState) clone() gearState {
	return gearState{
		GearItems:      slices.Clone(s.GearItems),
		GearCategories: slices.Clone(s.GearCategories),
	}
}

func (s gearState) itemIndex(id string) int {
	return slices.IndexFunc(s.GearItems, func(g domain.GearItem) bool { return g.ID == id })
}

func (s gearState) categoryIndex(id string) int {
	return slices.IndexFunc(s.GearCategories, func(c domain.GearCategory) bool { return c.ID == id })
}

// GearService owns the packing list and its categories.
type GearService struct {
	store *snapshotStore[gearState]
	ids   idgen.Generator
}

// NewGearService constructs a GearService persisted through r.
func NewGearService(r repo.SnapshotRepo, ids idgen.Generator, logger *slog.Logger) *GearService {
	return &GearService{
		store: newSnapshotStore(GearStorageKey, r, logger, gearState.clone, nil),
		ids:   ids,
	}
}

// Load restores the persisted packing list, seeding the demo list when
// nothing is stored yet and seed is true.
func (s *GearService) Load(ctx context.Context, seed bool) error {
	var seedFn func() gearState
	if seed {
		seedFn = seedGearState
	}
	if err := s.store.load(ctx, seedFn); err != nil {
		return fmt.Errorf("service.GearService.Load: %w", err)
	}
	return nil
}

// Items returns every gear item in insertion order.
func (s *GearService) Items() []domain.GearItem {
	var out []domain.GearItem
	s.store.view(func(st gearState) {
		out = slices.Clone(st.GearItems)
	})
	if out == nil {
		return []domain.GearItem{}
	}
	return out
}

// Categories returns every gear category in insertion order.
func (s *GearService) Categories() []domain.GearCategory {
	var out []domain.GearCategory
	s.store.view(func(st gearState) {
		out = slices.Clone(st.GearCategories)
	})
	if out == nil {
		return []domain.GearCategory{}
	}
	return out
}

// ItemsByCategory returns the items filed under categoryID.
func (s *GearService) ItemsByCategory(categoryID string) []domain.GearItem {
	out := []domain.GearItem{}
	s.store.view(func(st gearState) {
		for _, g := range st.GearItems {
			if g.Category == categoryID {
				out = append(out, g)
			}
		}
	})
	return out
}

// TotalWeight sums the weight of every item, in kilograms.
func (s *GearService) TotalWeight() float64 {
	var total float64
	s.store.view(func(st gearState) {
		for _, g := range st.GearItems {
			total += g.Weight
		}
	})
	return total
}

// PackedWeight sums the weight of packed items, in kilograms.
func (s *GearService) PackedWeight() float64 {
	var total float64
	s.store.view(func(st gearState) {
		for _, g := range st.GearItems {
			if g.IsPacked {
				total += g.Weight
			}
		}
	})
	return total
}

// PackingProgress reports how many items are packed.
func (s *GearService) PackingProgress() domain.PackingProgress {
	var p domain.PackingProgress
	s.store.view(func(st gearState) {
		p.Total = len(st.GearItems)
		for _, g := range st.GearItems {
			if g.IsPacked {
				p.Packed++
			}
		}
	})
	p.Percentage = percentage(p.Packed, p.Total)
	return p
}

// AddItem validates and stores a new gear item.
// Returns domain.ErrValidation if the name is blank, the weight is negative,
// or the category does not exist.
func (s *GearService) AddItem(ctx context.Context, in domain.GearItemInput) (domain.GearItem, error) {
	item := domain.GearItem{
		ID:       s.ids.NewID(),
		Name:     in.Name,
		Category: in.Category,
		Weight:   in.Weight,
		IsPacked: in.IsPacked,
		Notes:    in.Notes,
		ImageURI: in.ImageURI,
	}
	err := s.store.update(ctx, func(st *gearState) error {
		if err := validateGearItem(*st, item); err != nil {
			return err
		}
		st.GearItems = append(st.GearItems, item)
		return nil
	})
	if err != nil {
		return domain.GearItem{}, fmt.Errorf("service.GearService.AddItem: %w", err)
	}
	return item, nil
}

// UpdateItem merges patch into an existing item.
// Returns domain.ErrValidation for invalid input, domain.ErrNotFound if the
// item does not exist.
func (s *GearService) UpdateItem(ctx context.Context, id string, patch domain.GearItemPatch) (domain.GearItem, error) {
	var out domain.GearItem
	err := s.store.update(ctx, func(st *gearState) error {
		i := st.itemIndex(id)
		if i < 0 {
			return domain.ErrNotFound
		}
		g := &st.GearItems[i]
		if patch.Name != nil {
			g.Name = *patch.Name
		}
		if patch.Category != nil {
			g.Category = *patch.Category
		}
		if patch.Weight != nil {
			g.Weight = *patch.Weight
		}
		if patch.IsPacked != nil {
			g.IsPacked = *patch.IsPacked
		}
		if patch.Notes != nil {
			g.Notes = *patch.Notes
		}
		if patch.ImageURI != nil {
			g.ImageURI = *patch.ImageURI
		}
		if err := validateGearItem(*st, *g); err != nil {
			return err
		}
		out = *g
		return nil
	})
	if err != nil {
		return domain.GearItem{}, fmt.Errorf("service.GearService.UpdateItem: %w", err)
	}
	return out, nil
}

// RemoveItem deletes a gear item.
// Returns domain.ErrNotFound if the item does not exist.
func (s *GearService) RemoveItem(ctx context.Context, id string) error {
	err := s.store.update(ctx, func(st *gearState) error {
		i := st.itemIndex(id)
		if i < 0 {
			return domain.ErrNotFound
		}
		st.GearItems = slices.Delete(st.GearItems, i, i+1)
		return nil
	})
	if err != nil {
		return fmt.Errorf("service.GearService.RemoveItem: %w", err)
	}
	return nil
}

// TogglePacked flips the packed flag of an item.
// Returns domain.ErrNotFound if the item does not exist.
func (s *GearService) TogglePacked(ctx context.Context, id string) (domain.GearItem, error) {
	var out domain.GearItem
	err := s.store.update(ctx, func(st *gearState) error {
		i := st.itemIndex(id)
		if i < 0 {
			return domain.ErrNotFound
		}
		st.GearItems[i].IsPacked = !st.GearItems[i].IsPacked
		out = st.GearItems[i]
		return nil
	})
	if err != nil {
		return domain.GearItem{}, fmt.Errorf("service.GearService.TogglePacked: %w", err)
	}
	return out, nil
}

// AddCategory stores a new category with a generated ID.
// Returns domain.ErrValidation if the name is blank.
func (s *GearService) AddCategory(ctx context.Context, name, icon string) (domain.GearCategory, error) {
	if err := required("name", name); err != nil {
		return domain.GearCategory{}, err
	}
	cat := domain.GearCategory{ID: s.ids.NewID(), Name: name, Icon: icon}
	err := s.store.update(ctx, func(st *gearState) error {
		st.GearCategories = append(st.GearCategories, cat)
		return nil
	})
	if err != nil {
		return domain.GearCategory{}, fmt.Errorf("service.GearService.AddCategory: %w", err)
	}
	return cat, nil
}

// UpdateCategory renames a category or changes its icon. The ID never changes.
// Returns domain.ErrNotFound if the category does not exist.
func (s *GearService) UpdateCategory(ctx context.Context, id string, patch domain.GearCategoryPatch) (domain.GearCategory, error) {
	var out domain.GearCategory
	err := s.store.update(ctx, func(st *gearState) error {
		i := st.categoryIndex(id)
		if i < 0 {
			return domain.ErrNotFound
		}
		c := &st.GearCategories[i]
		if patch.Name != nil {
			if err := required("name", *patch.Name); err != nil {
				return err
			}
			c.Name = *patch.Name
		}
		if patch.Icon != nil {
			c.Icon = *patch.Icon
		}
		out = *c
		return nil
	})
	if err != nil {
		return domain.GearCategory{}, fmt.Errorf("service.GearService.UpdateCategory: %w", err)
	}
	return out, nil
}

// RemoveCategory deletes an empty category.
// Returns domain.ErrConflict while any item is still filed under it, and
// domain.ErrNotFound if the category does not exist.
func (s *GearService) RemoveCategory(ctx context.Context, id string) error {
	err := s.store.update(ctx, func(st *gearState) error {
		i := st.categoryIndex(id)
		if i < 0 {
			return domain.ErrNotFound
		}
		n := 0
		for _, g := range st.GearItems {
			if g.Category == id {
				n++
			}
		}
		if n > 0 {
			return fmt.Errorf("%w: category %q still holds %d item(s)", domain.ErrConflict, id, n)
		}
		st.GearCategories = slices.Delete(st.GearCategories, i, i+1)
		return nil
	})
	if err != nil {
		return fmt.Errorf("service.GearService.RemoveCategory: %w", err)
	}
	return nil
}

// validateGearItem enforces business rules common to AddItem and UpdateItem.
//   - Name must be non-empty.
//   - Weight must not be negative.
//   - Category must reference an existing category.
func validateGearItem(st gearState, g domain.GearItem) error {
	if err := required("name", g.Name); err != nil {
		return err
	}
	if g.Weight < 0 || math.IsNaN(g.Weight) {
		return fmt.Errorf("%w: weight must not be negative", domain.ErrValidation)
	}
	if st.categoryIndex(g.Category) < 0 {
		return fmt.Errorf("%w: unknown category %q", domain.ErrValidation, g.Category)
	}
	return nil
}

// percentage returns round(part/total*100), or 0 when total is 0.
func percentage(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}
