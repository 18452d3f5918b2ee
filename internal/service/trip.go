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
	"github.com/pkordes/wayfarer/internal/geo"
	"github.com/pkordes/wayfarer/internal/idgen"
	"github.com/pkordes/wayfarer/internal/repo"
)

// TripStorageKey is the snapshot key of the trip store.
const TripStorageKey = "trip-storage"

type tripState struct {
	Trips          []domain.Trip         `json:"trips"`
	ActiveTripID   string                `json:"activeTripId,omitempty"`
	JournalEntries []domain.JournalEntry `json:"journalEntries"`
	Photos         []domain.Photo        `json:"photos"`
}

func cloneTrip(t domain.Trip) domain.Trip {
	t.Locations = slices.Clone(t.Locations)
	return t
}

func (s tripState) clone() tripState {
	out := tripState{
		Trips:          make([]domain.Trip, len(s.Trips)),
		ActiveTripID:   s.ActiveTripID,
		JournalEntries: slices.Clone(s.JournalEntries),
		Photos:         slices.Clone(s.Photos),
	}
	for i, t := range s.Trips {
		out.Trips[i] = cloneTrip(t)
	}
	return out
}

func (s tripState) tripIndex(id string) int {
	return slices.IndexFunc(s.Trips, func(t domain.Trip) bool { return t.ID == id })
}

func (s tripState) entryIndex(id string) int {
	return slices.IndexFunc(s.JournalEntries, func(e domain.JournalEntry) bool { return e.ID == id })
}

func (s tripState) photoIndex(id string) int {
	return slices.IndexFunc(s.Photos, func(p domain.Photo) bool { return p.ID == id })
}

// refreshStats re-derives the stats of the trip at index i from its dates,
// its route, and the photos attached to it.
func (s *tripState) refreshStats(i int) {
	t := &s.Trips[i]
	photos := 0
	for _, p := range s.Photos {
		if p.TripID == t.ID {
			photos++
		}
	}
	t.Stats = domain.TripStats{
		DistanceTraveled: geo.TotalRouteDistance(routePoints(t.Locations)),
		PlacesVisited:    len(t.Locations),
		PhotosCount:      photos,
		DaysOnTrip:       dates.InclusiveDaySpan(t.StartDate, t.EndDate),
	}
}

func routePoints(locs []domain.Location) []geo.Point {
	pts := make([]geo.Point, len(locs))
	for i, l := range locs {
		pts[i] = geo.Point{Lat: l.Latitude, Lng: l.Longitude}
	}
	return pts
}

// migrateTripStateV0 converts the original client layout: calendar-date
// strings become timestamps and the embedded active trip becomes an ID.
func migrateTripStateV0(payload json.RawMessage) (json.RawMessage, error) {
	var legacy struct {
		Trips          []json.RawMessage `json:"trips"`
		ActiveTripID   string            `json:"activeTripId"`
		JournalEntries []json.RawMessage `json:"journalEntries"`
		Photos         []json.RawMessage `json:"photos"`
		ActiveTrip     *struct {
			ID string `json:"id"`
		} `json:"activeTrip"`
	}
	if err := json.Unmarshal(payload, &legacy); err != nil {
		return nil, err
	}

	trips, err := upgradeDateFieldsEach(legacy.Trips, "startDate", "endDate")
	if err != nil {
		return nil, err
	}
	entries, err := upgradeDateFieldsEach(legacy.JournalEntries, "date")
	if err != nil {
		return nil, err
	}
	photos, err := upgradeDateFieldsEach(legacy.Photos, "date")
	if err != nil {
		return nil, err
	}

	activeID := legacy.ActiveTripID
	if activeID == "" && legacy.ActiveTrip != nil {
		activeID = legacy.ActiveTrip.ID
	}
	return json.Marshal(map[string]any{
		"trips":          trips,
		"activeTripId":   activeID,
		"journalEntries": entries,
		"photos":         photos,
	})
}

// TripService owns trips, their journal entries, and their photos.
// Removing a trip cascades to everything attached to it.
type TripService struct {
	store *snapshotStore[tripState]
	ids   idgen.Generator
	now   func() time.Time
}

// NewTripService constructs a TripService persisted through r.
// Call Load before serving requests.
func NewTripService(r repo.SnapshotRepo, ids idgen.Generator, logger *slog.Logger) *TripService {
	return &TripService{
		store: newSnapshotStore(TripStorageKey, r, logger, tripState.clone, map[int]migration{
			0: migrateTripStateV0,
		}),
		ids: ids,
		now: time.Now,
	}
}

// Load restores the persisted trips. When nothing is stored yet and seed is
// true, the demo trips are written instead.
func (s *TripService) Load(ctx context.Context, seed bool) error {
	var seedFn func() tripState
	if seed {
		seedFn = seedTripState
	}
	if err := s.store.load(ctx, seedFn); err != nil {
		return fmt.Errorf("service.TripService.Load: %w", err)
	}
	return nil
}

// List returns every trip in insertion order.
// Always returns a non-nil slice so callers can safely range over it.
func (s *TripService) List() []domain.Trip {
	var out []domain.Trip
	s.store.view(func(st tripState) {
		out = make([]domain.Trip, len(st.Trips))
		for i, t := range st.Trips {
			out[i] = cloneTrip(t)
		}
	})
	return out
}

// Get returns a single trip by ID.
// Returns domain.ErrNotFound if no trip has that ID.
func (s *TripService) Get(id string) (domain.Trip, error) {
	var (
		out   domain.Trip
		found bool
	)
	s.store.view(func(st tripState) {
		if i := st.tripIndex(id); i >= 0 {
			out, found = cloneTrip(st.Trips[i]), true
		}
	})
	if !found {
		return domain.Trip{}, fmt.Errorf("service.TripService.Get: %w", domain.ErrNotFound)
	}
	return out, nil
}

// Active returns the active trip, if any. The result always reflects the
// latest edits to that trip.
func (s *TripService) Active() (domain.Trip, bool) {
	var (
		out   domain.Trip
		found bool
	)
	s.store.view(func(st tripState) {
		if st.ActiveTripID == "" {
			return
		}
		if i := st.tripIndex(st.ActiveTripID); i >= 0 {
			out, found = cloneTrip(st.Trips[i]), true
		}
	})
	return out, found
}

// SetActive marks tripID as the only active trip.
// Returns domain.ErrNotFound, leaving every trip untouched, if tripID is unknown.
func (s *TripService) SetActive(ctx context.Context, tripID string) (domain.Trip, error) {
	var out domain.Trip
	err := s.store.update(ctx, func(st *tripState) error {
		idx := st.tripIndex(tripID)
		if idx < 0 {
			return domain.ErrNotFound
		}
		for i := range st.Trips {
			st.Trips[i].IsActive = i == idx
		}
		st.ActiveTripID = tripID
		out = cloneTrip(st.Trips[idx])
		return nil
	})
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.SetActive: %w", err)
	}
	return out, nil
}

// Add validates and stores a new, inactive trip with derived stats.
// Returns domain.ErrValidation if input violates business rules.
func (s *TripService) Add(ctx context.Context, in domain.TripInput) (domain.Trip, error) {
	trip := domain.Trip{
		ID:            s.ids.NewID(),
		Title:         in.Title,
		Description:   in.Description,
		StartDate:     dates.Truncate(in.StartDate),
		EndDate:       dates.Truncate(in.EndDate),
		CoverImageURI: in.CoverImageURI,
		Locations:     slices.Clone(in.Locations),
	}
	if trip.Locations == nil {
		trip.Locations = []domain.Location{}
	}
	if err := validateTrip(trip); err != nil {
		return domain.Trip{}, err
	}

	err := s.store.update(ctx, func(st *tripState) error {
		st.Trips = append(st.Trips, trip)
		st.refreshStats(len(st.Trips) - 1)
		trip = cloneTrip(st.Trips[len(st.Trips)-1])
		return nil
	})
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Add: %w", err)
	}
	return trip, nil
}

// Update merges patch into the trip and re-derives its stats.
// Returns domain.ErrValidation for invalid input, domain.ErrNotFound if the
// trip does not exist.
func (s *TripService) Update(ctx context.Context, id string, patch domain.TripPatch) (domain.Trip, error) {
	var out domain.Trip
	err := s.store.update(ctx, func(st *tripState) error {
		i := st.tripIndex(id)
		if i < 0 {
			return domain.ErrNotFound
		}
		t := &st.Trips[i]
		if patch.Title != nil {
			t.Title = *patch.Title
		}
		if patch.Description != nil {
			t.Description = *patch.Description
		}
		if patch.StartDate != nil {
			t.StartDate = dates.Truncate(*patch.StartDate)
		}
		if patch.EndDate != nil {
			t.EndDate = dates.Truncate(*patch.EndDate)
		}
		if patch.CoverImageURI != nil {
			t.CoverImageURI = *patch.CoverImageURI
		}
		if patch.Locations != nil {
			t.Locations = slices.Clone(*patch.Locations)
			if t.Locations == nil {
				t.Locations = []domain.Location{}
			}
		}
		if err := validateTrip(*t); err != nil {
			return err
		}
		st.refreshStats(i)
		out = cloneTrip(st.Trips[i])
		return nil
	})
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	return out, nil
}

// Remove deletes a trip together with its journal entries and photos.
// Returns domain.ErrNotFound if the trip does not exist.
func (s *TripService) Remove(ctx context.Context, id string) error {
	err := s.store.update(ctx, func(st *tripState) error {
		i := st.tripIndex(id)
		if i < 0 {
			return domain.ErrNotFound
		}
		st.Trips = slices.Delete(st.Trips, i, i+1)
		st.JournalEntries = slices.DeleteFunc(st.JournalEntries, func(e domain.JournalEntry) bool { return e.TripID == id })
		st.Photos = slices.DeleteFunc(st.Photos, func(p domain.Photo) bool { return p.TripID == id })
		if st.ActiveTripID == id {
			st.ActiveTripID = ""
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("service.TripService.Remove: %w", err)
	}
	return nil
}

// EntriesForTrip returns the journal entries of a trip in insertion order.
// An unknown trip yields an empty slice.
func (s *TripService) EntriesForTrip(tripID string) []domain.JournalEntry {
	out := []domain.JournalEntry{}
	s.store.view(func(st tripState) {
		for _, e := range st.JournalEntries {
			if e.TripID == tripID {
				out = append(out, e)
			}
		}
	})
	return out
}

// Entry returns a single journal entry by ID.
// Returns domain.ErrNotFound if no entry has that ID.
func (s *TripService) Entry(id string) (domain.JournalEntry, error) {
	var (
		out   domain.JournalEntry
		found bool
	)
	s.store.view(func(st tripState) {
		if i := st.entryIndex(id); i >= 0 {
			out, found = st.JournalEntries[i], true
		}
	})
	if !found {
		return domain.JournalEntry{}, fmt.Errorf("service.TripService.Entry: %w", domain.ErrNotFound)
	}
	return out, nil
}

// AddEntry validates and stores a journal entry under an existing trip.
// A zero Date is replaced with today's date.
// Returns domain.ErrNotFound if the parent trip does not exist.
func (s *TripService) AddEntry(ctx context.Context, in domain.JournalEntryInput) (domain.JournalEntry, error) {
	entry := domain.JournalEntry{
		ID:       s.ids.NewID(),
		TripID:   in.TripID,
		Title:    in.Title,
		Content:  in.Content,
		Date:     dates.Truncate(in.Date),
		Location: in.Location,
		Category: in.Category,
		ImageURI: in.ImageURI,
		Weather:  in.Weather,
		Mood:     in.Mood,
	}
	if in.Date.IsZero() {
		entry.Date = dates.Truncate(s.now())
	}

	err := s.store.update(ctx, func(st *tripState) error {
		if st.tripIndex(entry.TripID) < 0 {
			return domain.ErrNotFound
		}
		if err := validateEntry(entry); err != nil {
			return err
		}
		st.JournalEntries = append(st.JournalEntries, entry)
		return nil
	})
	if err != nil {
		return domain.JournalEntry{}, fmt.Errorf("service.TripService.AddEntry: %w", err)
	}
	return entry, nil
}

// UpdateEntry merges patch into an existing journal entry.
// Returns domain.ErrValidation for invalid input, domain.ErrNotFound if the
// entry does not exist.
func (s *TripService) UpdateEntry(ctx context.Context, id string, patch domain.JournalEntryPatch) (domain.JournalEntry, error) {
	var out domain.JournalEntry
	err := s.store.update(ctx, func(st *tripState) error {
		i := st.entryIndex(id)
		if i < 0 {
			return domain.ErrNotFound
		}
		e := &st.JournalEntries[i]
		if patch.Title != nil {
			e.Title = *patch.Title
		}
		if patch.Content != nil {
			e.Content = *patch.Content
		}
		if patch.Date != nil {
			e.Date = dates.Truncate(*patch.Date)
		}
		if patch.Location != nil {
			e.Location = *patch.Location
		}
		if patch.Category != nil {
			e.Category = *patch.Category
		}
		if patch.ImageURI != nil {
			e.ImageURI = *patch.ImageURI
		}
		if patch.Weather != nil {
			e.Weather = *patch.Weather
		}
		if patch.Mood != nil {
			e.Mood = *patch.Mood
		}
		if err := validateEntry(*e); err != nil {
			return err
		}
		out = *e
		return nil
	})
	if err != nil {
		return domain.JournalEntry{}, fmt.Errorf("service.TripService.UpdateEntry: %w", err)
	}
	return out, nil
}

// RemoveEntry deletes a journal entry.
// Returns domain.ErrNotFound if the entry does not exist.
func (s *TripService) RemoveEntry(ctx context.Context, id string) error {
	err := s.store.update(ctx, func(st *tripState) error {
		i := st.entryIndex(id)
		if i < 0 {
			return domain.ErrNotFound
		}
		st.JournalEntries = slices.Delete(st.JournalEntries, i, i+1)
		return nil
	})
	if err != nil {
		return fmt.Errorf("service.TripService.RemoveEntry: %w", err)
	}
	return nil
}

// PhotosForTrip returns the photos of a trip in insertion order.
// An unknown trip yields an empty slice.
func (s *TripService) PhotosForTrip(tripID string) []domain.Photo {
	out := []domain.Photo{}
	s.store.view(func(st tripState) {
		for _, p := range st.Photos {
			if p.TripID == tripID {
				out = append(out, p)
			}
		}
	})
	return out
}

// PhotoByID returns a single photo.
// Returns domain.ErrNotFound if no photo has that ID.
func (s *TripService) PhotoByID(id string) (domain.Photo, error) {
	var (
		out   domain.Photo
		found bool
	)
	s.store.view(func(st tripState) {
		if i := st.photoIndex(id); i >= 0 {
			out, found = st.Photos[i], true
		}
	})
	if !found {
		return domain.Photo{}, fmt.Errorf("service.TripService.PhotoByID: %w", domain.ErrNotFound)
	}
	return out, nil
}

// AddPhoto attaches a photo to an existing trip and bumps its photo count.
// Returns domain.ErrNotFound if the trip does not exist.
func (s *TripService) AddPhoto(ctx context.Context, in domain.PhotoInput) (domain.Photo, error) {
	photo := domain.Photo{
		ID:       s.ids.NewID(),
		TripID:   in.TripID,
		ImageURI: in.ImageURI,
		Caption:  in.Caption,
		Location: in.Location,
		Date:     dates.Truncate(in.Date),
	}
	if in.Date.IsZero() {
		photo.Date = dates.Truncate(s.now())
	}

	err := s.store.update(ctx, func(st *tripState) error {
		ti := st.tripIndex(photo.TripID)
		if ti < 0 {
			return domain.ErrNotFound
		}
		if err := required("imageUri", photo.ImageURI); err != nil {
			return err
		}
		if err := validateLocation(photo.Location); err != nil {
			return err
		}
		st.Photos = append(st.Photos, photo)
		st.refreshStats(ti)
		return nil
	})
	if err != nil {
		return domain.Photo{}, fmt.Errorf("service.TripService.AddPhoto: %w", err)
	}
	return photo, nil
}

// UpdatePhoto merges patch into an existing photo.
// Returns domain.ErrNotFound if the photo does not exist.
func (s *TripService) UpdatePhoto(ctx context.Context, id string, patch domain.PhotoPatch) (domain.Photo, error) {
	var out domain.Photo
	err := s.store.update(ctx, func(st *tripState) error {
		i := st.photoIndex(id)
		if i < 0 {
			return domain.ErrNotFound
		}
		p := &st.Photos[i]
		if patch.Caption != nil {
			p.Caption = *patch.Caption
		}
		if patch.Location != nil {
			if err := validateLocation(*patch.Location); err != nil {
				return err
			}
			p.Location = *patch.Location
		}
		if patch.Date != nil {
			p.Date = dates.Truncate(*patch.Date)
		}
		out = *p
		return nil
	})
	if err != nil {
		return domain.Photo{}, fmt.Errorf("service.TripService.UpdatePhoto: %w", err)
	}
	return out, nil
}

// RemovePhoto deletes a photo and lowers its trip's photo count.
// Returns domain.ErrNotFound if the photo does not exist.
func (s *TripService) RemovePhoto(ctx context.Context, id string) error {
	err := s.store.update(ctx, func(st *tripState) error {
		i := st.photoIndex(id)
		if i < 0 {
			return domain.ErrNotFound
		}
		tripID := st.Photos[i].TripID
		st.Photos = slices.Delete(st.Photos, i, i+1)
		if ti := st.tripIndex(tripID); ti >= 0 {
			st.refreshStats(ti)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("service.TripService.RemovePhoto: %w", err)
	}
	return nil
}

// validateTrip enforces business rules common to Add and Update.
//   - Title must be non-empty (whitespace-only titles are rejected).
//   - Both dates are required and EndDate must not be before StartDate.
func validateTrip(t domain.Trip) error {
	if err := required("title", t.Title); err != nil {
		return err
	}
	if t.StartDate.IsZero() || t.EndDate.IsZero() {
		return fmt.Errorf("%w: startDate and endDate are required", domain.ErrValidation)
	}
	if t.EndDate.Before(t.StartDate) {
		return fmt.Errorf("%w: endDate must not be before startDate", domain.ErrValidation)
	}
	for i, l := range t.Locations {
		if err := validateLocation(l); err != nil {
			return fmt.Errorf("locations[%d]: %w", i, err)
		}
	}
	return nil
}

func validateEntry(e domain.JournalEntry) error {
	if err := required("title", e.Title); err != nil {
		return err
	}
	if err := required("content", e.Content); err != nil {
		return err
	}
	if err := required("category", e.Category); err != nil {
		return err
	}
	return validateLocation(e.Location)
}

func validateLocation(l domain.Location) error {
	if !(geo.Point{Lat: l.Latitude, Lng: l.Longitude}).Valid() {
		return fmt.Errorf("%w: latitude must be between -90 and 90 and longitude between -180 and 180", domain.ErrValidation)
	}
	return nil
}
