package service

import (
	"context"
	"fmt"

	"github.com/pkordes/wayfarer/internal/dates"
	"github.com/pkordes/wayfarer/internal/domain"
)

// TripReader is the part of TripService the export reads from.
type TripReader interface {
	List() []domain.Trip
	EntriesForTrip(tripID string) []domain.JournalEntry
}

// ExportService assembles a flat export of every trip and journal entry.
type ExportService struct {
	trips TripReader
}

// NewExportService constructs an ExportService reading from trips.
func NewExportService(trips TripReader) *ExportService {
	return &ExportService{trips: trips}
}

// Export returns one ExportRow per journal entry across all trips, in trip
// order. Trips with no entries contribute one row with empty entry fields.
func (s *ExportService) Export(ctx context.Context) ([]domain.ExportRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}

	rows := []domain.ExportRow{}
	for _, t := range s.trips.List() {
		base := domain.ExportRow{
			TripID:        t.ID,
			TripTitle:     t.Title,
			TripStartDate: t.StartDate.Format(dates.Layout),
			TripEndDate:   t.EndDate.Format(dates.Layout),
			TripActive:    t.IsActive,
		}

		entries := s.trips.EntriesForTrip(t.ID)
		if len(entries) == 0 {
			rows = append(rows, base)
			continue
		}
		for _, e := range entries {
			row := base
			row.EntryTitle = e.Title
			row.EntryDate = e.Date.Format(dates.Layout)
			row.EntryCategory = e.Category
			row.LocationName = e.Location.Name
			row.Latitude = e.Location.Latitude
			row.Longitude = e.Location.Longitude
			row.Weather = e.Weather
			row.Mood = e.Mood
			row.Content = e.Content
			rows = append(rows, row)
		}
	}
	return rows, nil
}
