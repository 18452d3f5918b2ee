package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pkordes/wayfarer/internal/domain"
	"github.com/pkordes/wayfarer/internal/repo"
)

// ProfileStorageKey is the snapshot key of the profile store.
const ProfileStorageKey = "profile-storage"

// DefaultProfileName is the traveller name of a fresh or reset profile.
const DefaultProfileName = "SHDWBLK TRVLR"

func defaultProfile() domain.Profile {
	return domain.Profile{Name: DefaultProfileName}
}

// ProfileService owns the single traveller profile.
type ProfileService struct {
	store *snapshotStore[domain.Profile]
}

// NewProfileService constructs a ProfileService persisted through r.
func NewProfileService(r repo.SnapshotRepo, logger *slog.Logger) *ProfileService {
	clone := func(p domain.Profile) domain.Profile { return p }
	return &ProfileService{store: newSnapshotStore(ProfileStorageKey, r, logger, clone, nil)}
}

// Load restores the persisted profile. A missing profile always starts from
// the default name, whether or not demo data is seeded.
func (s *ProfileService) Load(ctx context.Context, _ bool) error {
	if err := s.store.load(ctx, defaultProfile); err != nil {
		return fmt.Errorf("service.ProfileService.Load: %w", err)
	}
	return nil
}

// Get returns the profile.
func (s *ProfileService) Get() domain.Profile {
	var out domain.Profile
	s.store.view(func(p domain.Profile) { out = p })
	return out
}

// Update merges patch into the profile.
// Returns domain.ErrValidation if the name would become blank.
func (s *ProfileService) Update(ctx context.Context, patch domain.ProfilePatch) (domain.Profile, error) {
	var out domain.Profile
	err := s.store.update(ctx, func(p *domain.Profile) error {
		if patch.Name != nil {
			if err := required("name", *patch.Name); err != nil {
				return err
			}
			p.Name = *patch.Name
		}
		if patch.Email != nil {
			p.Email = *patch.Email
		}
		if patch.Bio != nil {
			p.Bio = *patch.Bio
		}
		out = *p
		return nil
	})
	if err != nil {
		return domain.Profile{}, fmt.Errorf("service.ProfileService.Update: %w", err)
	}
	return out, nil
}

// Reset restores the default profile.
func (s *ProfileService) Reset(ctx context.Context) (domain.Profile, error) {
	err := s.store.update(ctx, func(p *domain.Profile) error {
		*p = defaultProfile()
		return nil
	})
	if err != nil {
		return domain.Profile{}, fmt.Errorf("service.ProfileService.Reset: %w", err)
	}
	return defaultProfile(), nil
}
