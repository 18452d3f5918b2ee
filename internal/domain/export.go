package domain

// ExportRow is a single row in the full journal export.
// It is a flat, denormalized view: one row per journal entry, with trip fields
// repeated for every entry on that trip. Trips with no entries yield one row
// with zero values for all entry fields.
type ExportRow struct {
	// Trip fields, repeated for every entry on the trip.
	TripID        string
	TripTitle     string
	TripStartDate string // "2006-01-02" formatted date
	TripEndDate   string
	TripActive    bool

	// Entry fields, zero values when the trip has no entries.
	EntryTitle    string
	EntryDate     string // empty when the trip has no entries
	EntryCategory string
	LocationName  string
	Latitude      float64
	Longitude     float64
	Weather       string
	Mood          string
	Content       string
}
