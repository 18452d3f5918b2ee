package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sort"

	"github.com/pkordes/wayfarer/internal/domain"
	"github.com/pkordes/wayfarer/internal/idgen"
	"github.com/pkordes/wayfarer/internal/repo"
)

// ChecklistStorageKey is the snapshot key of the checklist store.
const ChecklistStorageKey = "shdwblk-checklist-storage"

type checklistState struct {
	Checklist domain.Checklist `json:"checklist"`
}

func (s checklistState) clone() checklistState {
	return checklistState{Checklist: s.Checklist.Clone()}
}

// ChecklistService owns the pre-departure checklist.
//
// The checklist starts empty (uninitialized). InitializeFromTemplate fills it
// from the master template once; Reset discards every customization and
// checked flag by replacing it with a fresh template copy.
type ChecklistService struct {
	store *snapshotStore[checklistState]
	ids   idgen.Generator
}

// NewChecklistService constructs a ChecklistService persisted through r.
// ids supplies the suffix of custom item IDs.
func NewChecklistService(r repo.SnapshotRepo, ids idgen.Generator, logger *slog.Logger) *ChecklistService {
	return &ChecklistService{
		store: newSnapshotStore(ChecklistStorageKey, r, logger, checklistState.clone, nil),
		ids:   ids,
	}
}

// Load restores the persisted checklist. When nothing is stored yet and seed
// is true, the checklist is initialized from the template.
func (s *ChecklistService) Load(ctx context.Context, seed bool) error {
	var seedFn func() checklistState
	if seed {
		seedFn = func() checklistState { return checklistState{Checklist: templateChecklist()} }
	}
	if err := s.store.load(ctx, seedFn); err != nil {
		return fmt.Errorf("service.ChecklistService.Load: %w", err)
	}
	return nil
}

// Initialized reports whether the checklist holds any categories.
func (s *ChecklistService) Initialized() bool {
	var ok bool
	s.store.view(func(st checklistState) { ok = len(st.Checklist) > 0 })
	return ok
}

// Checklist returns a deep copy of the whole checklist.
func (s *ChecklistService) Checklist() domain.Checklist {
	var out domain.Checklist
	s.store.view(func(st checklistState) { out = st.Checklist.Clone() })
	return out
}

// Categories returns the category names in template order. Categories not in
// the template follow, sorted by name.
func (s *ChecklistService) Categories() []string {
	out := []string{}
	s.store.view(func(st checklistState) {
		seen := make(map[string]bool, len(st.Checklist))
		for _, c := range checklistTemplate {
			if _, ok := st.Checklist[c.name]; ok {
				out = append(out, c.name)
				seen[c.name] = true
			}
		}
		var extra []string
		for name := range st.Checklist {
			if !seen[name] {
				extra = append(extra, name)
			}
		}
		sort.Strings(extra)
		out = append(out, extra...)
	})
	return out
}

// InitializeFromTemplate fills an empty checklist from the template.
// It reports whether anything changed; a non-empty checklist is left as is.
func (s *ChecklistService) InitializeFromTemplate(ctx context.Context) (bool, error) {
	changed := false
	err := s.store.update(ctx, func(st *checklistState) error {
		if len(st.Checklist) > 0 {
			return errNoChange
		}
		st.Checklist = templateChecklist()
		changed = true
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("service.ChecklistService.InitializeFromTemplate: %w", err)
	}
	return changed, nil
}

// Reset replaces the checklist with a fresh copy of the template.
func (s *ChecklistService) Reset(ctx context.Context) error {
	err := s.store.update(ctx, func(st *checklistState) error {
		st.Checklist = templateChecklist()
		return nil
	})
	if err != nil {
		return fmt.Errorf("service.ChecklistService.Reset: %w", err)
	}
	return nil
}

// ToggleItem flips the checked flag of one item.
// Returns domain.ErrNotFound, leaving the checklist untouched, if the category
// or item does not exist.
func (s *ChecklistService) ToggleItem(ctx context.Context, category, itemID string) (domain.ChecklistItem, error) {
	var out domain.ChecklistItem
	err := s.store.update(ctx, func(st *checklistState) error {
		items, ok := st.Checklist[category]
		if !ok {
			return domain.ErrNotFound
		}
		i := slices.IndexFunc(items, func(it domain.ChecklistItem) bool { return it.ID == itemID })
		if i < 0 {
			return domain.ErrNotFound
		}
		items[i].Checked = !items[i].Checked
		out = items[i]
		return nil
	})
	if err != nil {
		return domain.ChecklistItem{}, fmt.Errorf("service.ChecklistService.ToggleItem: %w", err)
	}
	return out, nil
}

// AddCustomItem appends an unchecked user item to an existing category.
// Returns domain.ErrValidation if text is blank, domain.ErrNotFound if the
// category does not exist.
func (s *ChecklistService) AddCustomItem(ctx context.Context, category, text string) (domain.ChecklistItem, error) {
	if err := required("text", text); err != nil {
		return domain.ChecklistItem{}, err
	}
	item := domain.ChecklistItem{ID: domain.CustomItemPrefix + s.ids.NewID(), Text: text}
	err := s.store.update(ctx, func(st *checklistState) error {
		items, ok := st.Checklist[category]
		if !ok {
			return domain.ErrNotFound
		}
		st.Checklist[category] = append(items, item)
		return nil
	})
	if err != nil {
		return domain.ChecklistItem{}, fmt.Errorf("service.ChecklistService.AddCustomItem: %w", err)
	}
	return item, nil
}

// RemoveItem deletes a user-added item. Template items can only be toggled.
// Returns domain.ErrValidation for a template item, domain.ErrNotFound if the
// category or item does not exist.
func (s *ChecklistService) RemoveItem(ctx context.Context, category, itemID string) error {
	err := s.store.update(ctx, func(st *checklistState) error {
		items, ok := st.Checklist[category]
		if !ok {
			return domain.ErrNotFound
		}
		i := slices.IndexFunc(items, func(it domain.ChecklistItem) bool { return it.ID == itemID })
		if i < 0 {
			return domain.ErrNotFound
		}
		if !items[i].IsCustom() {
			return fmt.Errorf("%w: template item %q cannot be removed", domain.ErrValidation, itemID)
		}
		st.Checklist[category] = slices.Delete(items, i, i+1)
		return nil
	})
	if err != nil {
		return fmt.Errorf("service.ChecklistService.RemoveItem: %w", err)
	}
	return nil
}

// Progress counts checked items across every category.
func (s *ChecklistService) Progress() domain.ChecklistProgress {
	var p domain.ChecklistProgress
	s.store.view(func(st checklistState) {
		for _, items := range st.Checklist {
			p.Total += len(items)
			for _, it := range items {
				if it.Checked {
					p.Completed++
				}
			}
		}
	})
	p.Percentage = percentage(p.Completed, p.Total)
	return p
}

// CategoryProgress counts checked items in one category. An unknown category
// reports zero items.
func (s *ChecklistService) CategoryProgress(category string) domain.ChecklistProgress {
	var p domain.ChecklistProgress
	s.store.view(func(st checklistState) {
		items := st.Checklist[category]
		p.Total = len(items)
		for _, it := range items {
			if it.Checked {
				p.Completed++
			}
		}
	})
	p.Percentage = percentage(p.Completed, p.Total)
	return p
}
