package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/pkordes/wayfarer/internal/domain"
	"github.com/pkordes/wayfarer/internal/idgen"
	"github.com/pkordes/wayfarer/internal/repo"
)

// AssetStorageKey is the snapshot key of the digital asset store.
const AssetStorageKey = "outroader-asset-storage"

type assetState struct {
	Assets []domain.DigitalAsset `json:"assets"`
}

func (s assetState) clone() assetState {
	return assetState{Assets: slices.Clone(s.Assets)}
}

func (s assetState) index(id string) int {
	return slices.IndexFunc(s.Assets, func(a domain.DigitalAsset) bool { return a.ID == id })
}

// AssetService owns the inventory of cameras, satellite kit, and drones.
type AssetService struct {
	store *snapshotStore[assetState]
	ids   idgen.Generator
}

// NewAssetService constructs an AssetService persisted through r.
func NewAssetService(r repo.SnapshotRepo, ids idgen.Generator, logger *slog.Logger) *AssetService {
	return &AssetService{
		store: newSnapshotStore(AssetStorageKey, r, logger, assetState.clone, nil),
		ids:   ids,
	}
}

// Load restores the persisted inventory, seeding the demo assets when nothing
// is stored yet and seed is true.
func (s *AssetService) Load(ctx context.Context, seed bool) error {
	var seedFn func() assetState
	if seed {
		seedFn = func() assetState { return assetState{Assets: seedAssets()} }
	}
	if err := s.store.load(ctx, seedFn); err != nil {
		return fmt.Errorf("service.AssetService.Load: %w", err)
	}
	return nil
}

// List returns every asset, newest first.
func (s *AssetService) List() []domain.DigitalAsset {
	out := []domain.DigitalAsset{}
	s.store.view(func(st assetState) { out = append(out, st.Assets...) })
	return out
}

// ByType returns the assets of one type, newest first.
func (s *AssetService) ByType(t domain.AssetType) []domain.DigitalAsset {
	out := []domain.DigitalAsset{}
	s.store.view(func(st assetState) {
		for _, a := range st.Assets {
			if a.Type == t {
				out = append(out, a)
			}
		}
	})
	return out
}

// Get returns a single asset.
// Returns domain.ErrNotFound if no asset has that ID.
func (s *AssetService) Get(id string) (domain.DigitalAsset, error) {
	var (
		out   domain.DigitalAsset
		found bool
	)
	s.store.view(func(st assetState) {
		if i := st.index(id); i >= 0 {
			out, found = st.Assets[i], true
		}
	})
	if !found {
		return domain.DigitalAsset{}, fmt.Errorf("service.AssetService.Get: %w", domain.ErrNotFound)
	}
	return out, nil
}

// Add validates a new asset and puts it at the top of the list.
// Returns domain.ErrValidation if the name is blank or the type is unknown.
func (s *AssetService) Add(ctx context.Context, in domain.DigitalAssetInput) (domain.DigitalAsset, error) {
	asset := domain.DigitalAsset{
		ID:           s.ids.NewID(),
		Name:         in.Name,
		Type:         in.Type,
		SerialNumber: in.SerialNumber,
		Notes:        in.Notes,
		ImageURI:     in.ImageURI,
	}
	if err := validateAsset(asset); err != nil {
		return domain.DigitalAsset{}, err
	}
	err := s.store.update(ctx, func(st *assetState) error {
		st.Assets = slices.Insert(st.Assets, 0, asset)
		return nil
	})
	if err != nil {
		return domain.DigitalAsset{}, fmt.Errorf("service.AssetService.Add: %w", err)
	}
	return asset, nil
}

// Update merges patch into an existing asset.
// Returns domain.ErrValidation for invalid input, domain.ErrNotFound if the
// asset does not exist.
func (s *AssetService) Update(ctx context.Context, id string, patch domain.DigitalAssetPatch) (domain.DigitalAsset, error) {
	var out domain.DigitalAsset
	err := s.store.update(ctx, func(st *assetState) error {
		i := st.index(id)
		if i < 0 {
			return domain.ErrNotFound
		}
		a := &st.Assets[i]
		if patch.Name != nil {
			a.Name = *patch.Name
		}
		if patch.Type != nil {
			a.Type = *patch.Type
		}
		if patch.SerialNumber != nil {
			a.SerialNumber = *patch.SerialNumber
		}
		if patch.Notes != nil {
			a.Notes = *patch.Notes
		}
		if patch.ImageURI != nil {
			a.ImageURI = *patch.ImageURI
		}
		if err := validateAsset(*a); err != nil {
			return err
		}
		out = *a
		return nil
	})
	if err != nil {
		return domain.DigitalAsset{}, fmt.Errorf("service.AssetService.Update: %w", err)
	}
	return out, nil
}

// Remove deletes an asset.
// Returns domain.ErrNotFound if the asset does not exist.
func (s *AssetService) Remove(ctx context.Context, id string) error {
	err := s.store.update(ctx, func(st *assetState) error {
		i := st.index(id)
		if i < 0 {
			return domain.ErrNotFound
		}
		st.Assets = slices.Delete(st.Assets, i, i+1)
		return nil
	})
	if err != nil {
		return fmt.Errorf("service.AssetService.Remove: %w", err)
	}
	return nil
}

func validateAsset(a domain.DigitalAsset) error {
	if err := required("name", a.Name); err != nil {
		return err
	}
	if !a.Type.Valid() {
		return fmt.Errorf("%w: unknown asset type %q", domain.ErrValidation, a.Type)
	}
	return nil
}
