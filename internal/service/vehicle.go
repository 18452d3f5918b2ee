package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/pkordes/wayfarer/internal/dates"
	"github.com/pkordes/wayfarer/internal/domain"
	"github.com/pkordes/wayfarer/internal/idgen"
	"github.com/pkordes/wayfarer/internal/repo"
)

// VehicleStorageKey is the snapshot key of the vehicle store.
const VehicleStorageKey = "vehicle-storage"

type vehicleState struct {
	Vehicle domain.Vehicle `json:"vehicle"`
}

func (s vehicleState) clone() vehicleState {
	v := s.Vehicle
	v.Modifications = slices.Clone(v.Modifications)
	return vehicleState{Vehicle: v}
}

func (s vehicleState) modIndex(id string) int {
	return slices.IndexFunc(s.Vehicle.Modifications, func(m domain.VehicleMod) bool { return m.ID == id })
}

func migrateVehicleStateV0(payload json.RawMessage) (json.RawMessage, error) {
	var legacy struct {
		Vehicle map[string]json.RawMessage `json:"vehicle"`
	}
	if err := json.Unmarshal(payload, &legacy); err != nil {
		return nil, err
	}
	if raw, ok := legacy.Vehicle["modifications"]; ok {
		var mods []json.RawMessage
		if err := json.Unmarshal(raw, &mods); err != nil {
			return nil, err
		}
		mods, err := upgradeDateFieldsEach(mods, "dateAdded")
		if err != nil {
			return nil, err
		}
		if legacy.Vehicle["modifications"], err = json.Marshal(mods); err != nil {
			return nil, err
		}
	}
	return json.Marshal(legacy)
}

// VehicleService owns the single vehicle and its modifications.
type VehicleService struct {
	store *snapshotStore[vehicleState]
	ids   idgen.Generator
	now   func() time.Time
}

// NewVehicleService constructs a VehicleService persisted through r.
func NewVehicleService(r repo.SnapshotRepo, ids idgen.Generator, logger *slog.Logger) *VehicleService {
	return &VehicleService{
		store: newSnapshotStore(VehicleStorageKey, r, logger, vehicleState.clone, map[int]migration{
			0: migrateVehicleStateV0,
		}),
		ids: ids,
		now: time.Now,
	}
}

// Load restores the persisted vehicle, seeding the demo vehicle when nothing
// is stored yet and seed is true.
func (s *VehicleService) Load(ctx context.Context, seed bool) error {
	var seedFn func() vehicleState
	if seed {
		seedFn = func() vehicleState { return vehicleState{Vehicle: seedVehicle()} }
	}
	if err := s.store.load(ctx, seedFn); err != nil {
		return fmt.Errorf("service.VehicleService.Load: %w", err)
	}
	return nil
}

// Get returns the vehicle with its modifications, newest first.
func (s *VehicleService) Get() domain.Vehicle {
	var out domain.Vehicle
	s.store.view(func(st vehicleState) { out = st.snapshot() })
	return out
}

// snapshot returns a deep copy of the vehicle with a non-nil mod list.
func (st vehicleState) snapshot() domain.Vehicle {
	v := st.clone().Vehicle
	if v.Modifications == nil {
		v.Modifications = []domain.VehicleMod{}
	}
	return v
}

// SetName renames the vehicle.
// Returns domain.ErrValidation if name is blank.
func (s *VehicleService) SetName(ctx context.Context, name string) (domain.Vehicle, error) {
	if err := required("name", name); err != nil {
		return domain.Vehicle{}, err
	}
	var out domain.Vehicle
	err := s.store.update(ctx, func(st *vehicleState) error {
		st.Vehicle.Name = name
		out = st.snapshot()
		return nil
	})
	if err != nil {
		return domain.Vehicle{}, fmt.Errorf("service.VehicleService.SetName: %w", err)
	}
	return out, nil
}

// SetPhoto replaces the vehicle photo. An empty uri clears it.
func (s *VehicleService) SetPhoto(ctx context.Context, uri string) (domain.Vehicle, error) {
	var out domain.Vehicle
	err := s.store.update(ctx, func(st *vehicleState) error {
		st.Vehicle.PhotoURI = uri
		out = st.snapshot()
		return nil
	})
	if err != nil {
		return domain.Vehicle{}, fmt.Errorf("service.VehicleService.SetPhoto: %w", err)
	}
	return out, nil
}

// AddModification records a new modification at the top of the list, dated today.
// Returns domain.ErrValidation if name is blank.
func (s *VehicleService) AddModification(ctx context.Context, name, description string) (domain.VehicleMod, error) {
	if err := required("name", name); err != nil {
		return domain.VehicleMod{}, err
	}
	mod := domain.VehicleMod{
		ID:          s.ids.NewID(),
		Name:        name,
		Description: description,
		DateAdded:   dates.Truncate(s.now()),
	}
	err := s.store.update(ctx, func(st *vehicleState) error {
		st.Vehicle.Modifications = slices.Insert(st.Vehicle.Modifications, 0, mod)
		return nil
	})
	if err != nil {
		return domain.VehicleMod{}, fmt.Errorf("service.VehicleService.AddModification: %w", err)
	}
	return mod, nil
}

// UpdateModification merges patch into an existing modification.
// Returns domain.ErrNotFound if the modification does not exist.
func (s *VehicleService) UpdateModification(ctx context.Context, id string, patch domain.VehicleModPatch) (domain.VehicleMod, error) {
	var out domain.VehicleMod
	err := s.store.update(ctx, func(st *vehicleState) error {
		i := st.modIndex(id)
		if i < 0 {
			return domain.ErrNotFound
		}
		m := &st.Vehicle.Modifications[i]
		if patch.Name != nil {
			if err := required("name", *patch.Name); err != nil {
				return err
			}
			m.Name = *patch.Name
		}
		if patch.Description != nil {
			m.Description = *patch.Description
		}
		out = *m
		return nil
	})
	if err != nil {
		return domain.VehicleMod{}, fmt.Errorf("service.VehicleService.UpdateModification: %w", err)
	}
	return out, nil
}

// RemoveModification deletes a modification.
// Returns domain.ErrNotFound if the modification does not exist.
func (s *VehicleService) RemoveModification(ctx context.Context, id string) error {
	err := s.store.update(ctx, func(st *vehicleState) error {
		i := st.modIndex(id)
		if i < 0 {
			return domain.ErrNotFound
		}
		st.Vehicle.Modifications = slices.Delete(st.Vehicle.Modifications, i, i+1)
		return nil
	})
	if err != nil {
		return fmt.Errorf("service.VehicleService.RemoveModification: %w", err)
	}
	return nil
}
