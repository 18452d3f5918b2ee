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

// GalleryStorageKey is the snapshot key of the gallery store.
const GalleryStorageKey = "shdwblk-gallery-storage"

type galleryState struct {
	GalleryPhotos []domain.GalleryPhoto `json:"galleryPhotos"`
}

func (s galleryState) clone() galleryState {
	return galleryState{GalleryPhotos: slices.Clone(s.GalleryPhotos)}
}

func (s galleryState) index(id string) int {
	return slices.IndexFunc(s.GalleryPhotos, func(p domain.GalleryPhoto) bool { return p.ID == id })
}

// GalleryService owns the showcase photos, which are not tied to any trip.
type GalleryService struct {
	store *snapshotStore[galleryState]
	ids   idgen.Generator
}

// NewGalleryService constructs a GalleryService persisted through r.
func NewGalleryService(r repo.SnapshotRepo, ids idgen.Generator, logger *slog.Logger) *GalleryService {
	return &GalleryService{
		store: newSnapshotStore(GalleryStorageKey, r, logger, galleryState.clone, nil),
		ids:   ids,
	}
}

// Load restores the persisted gallery, seeding the demo photos when nothing is
// stored yet and seed is true.
func (s *GalleryService) Load(ctx context.Context, seed bool) error {
	var seedFn func() galleryState
	if seed {
		seedFn = func() galleryState { return galleryState{GalleryPhotos: seedGalleryPhotos()} }
	}
	if err := s.store.load(ctx, seedFn); err != nil {
		return fmt.Errorf("service.GalleryService.Load: %w", err)
	}
	return nil
}

// List returns every gallery photo in insertion order.
func (s *GalleryService) List() []domain.GalleryPhoto {
	out := []domain.GalleryPhoto{}
	s.store.view(func(st galleryState) { out = append(out, st.GalleryPhotos...) })
	return out
}

// Get returns a single gallery photo.
// Returns domain.ErrNotFound if no photo has that ID.
func (s *GalleryService) Get(id string) (domain.GalleryPhoto, error) {
	var (
		out   domain.GalleryPhoto
		found bool
	)
	s.store.view(func(st galleryState) {
		if i := st.index(id); i >= 0 {
			out, found = st.GalleryPhotos[i], true
		}
	})
	if !found {
		return domain.GalleryPhoto{}, fmt.Errorf("service.GalleryService.Get: %w", domain.ErrNotFound)
	}
	return out, nil
}

// Add appends a photo to the gallery.
// Returns domain.ErrValidation if imageURI is blank.
func (s *GalleryService) Add(ctx context.Context, caption, description, imageURI string) (domain.GalleryPhoto, error) {
	if err := required("imageUri", imageURI); err != nil {
		return domain.GalleryPhoto{}, err
	}
	photo := domain.GalleryPhoto{
		ID:          s.ids.NewID(),
		Caption:     caption,
		Description: description,
		ImageURI:    imageURI,
	}
	err := s.store.update(ctx, func(st *galleryState) error {
		st.GalleryPhotos = append(st.GalleryPhotos, photo)
		return nil
	})
	if err != nil {
		return domain.GalleryPhoto{}, fmt.Errorf("service.GalleryService.Add: %w", err)
	}
	return photo, nil
}

// UpdateDetails replaces the caption and description of a photo.
// Returns domain.ErrNotFound if the photo does not exist.
func (s *GalleryService) UpdateDetails(ctx context.Context, id, caption, description string) (domain.GalleryPhoto, error) {
	var out domain.GalleryPhoto
	err := s.store.update(ctx, func(st *galleryState) error {
		i := st.index(id)
		if i < 0 {
			return domain.ErrNotFound
		}
		st.GalleryPhotos[i].Caption = caption
		st.GalleryPhotos[i].Description = description
		out = st.GalleryPhotos[i]
		return nil
	})
	if err != nil {
		return domain.GalleryPhoto{}, fmt.Errorf("service.GalleryService.UpdateDetails: %w", err)
	}
	return out, nil
}

// Remove deletes a gallery photo.
// Returns domain.ErrNotFound if the photo does not exist.
func (s *GalleryService) Remove(ctx context.Context, id string) error {
	err := s.store.update(ctx, func(st *galleryState) error {
		i := st.index(id)
		if i < 0 {
			return domain.ErrNotFound
		}
		st.GalleryPhotos = slices.Delete(st.GalleryPhotos, i, i+1)
		return nil
	})
	if err != nil {
		return fmt.Errorf("service.GalleryService.Remove: %w", err)
	}
	return nil
}
