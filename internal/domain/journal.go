package domain

import "time"

// JournalCategories lists the entry categories offered by the journal editor.
var JournalCategories = []string{
	"Today's Drive",
	"Adventure",
	"Wildlife",
	"Food",
	"Scenery",
	"People",
	"Accommodation",
}

// JournalEntry is a dated, located note attached to a trip.
type JournalEntry struct {
	ID       string    `json:"id"`
	TripID   string    `json:"tripId"`
	Title    string    `json:"title"`
	Content  string    `json:"content"`
	Date     time.Time `json:"date"`
	Location Location  `json:"location"`
	Category string    `json:"category"`
	ImageURI string    `json:"imageUri,omitempty"`
	Weather  string    `json:"weather,omitempty"`
	Mood     string    `json:"mood,omitempty"`
}

// JournalEntryInput carries the caller-supplied fields of a new entry.
// A zero Date means "today".
type JournalEntryInput struct {
	TripID   string
	Title    string
	Content  string
	Date     time.Time
	Location Location
	Category string
	ImageURI string
	Weather  string
	Mood     string
}

// JournalEntryPatch is a partial update; nil fields are left unchanged.
// An entry cannot be moved to another trip.
type JournalEntryPatch struct {
	Title    *string
	Content  *string
	Date     *time.Time
	Location *Location
	Category *string
	ImageURI *string
	Weather  *string
	Mood     *string
}

// Photo is an image captured during a trip.
type Photo struct {
	ID       string    `json:"id"`
	TripID   string    `json:"tripId"`
	ImageURI string    `json:"imageUri"`
	Caption  string    `json:"caption,omitempty"`
	Location Location  `json:"location"`
	Date     time.Time `json:"date"`
}

// PhotoInput carries the caller-supplied fields of a new photo.
type PhotoInput struct {
	TripID   string
	ImageURI string
	Caption  string
	Location Location
	Date     time.Time
}

// PhotoPatch is a partial update; nil fields are left unchanged.
type PhotoPatch struct {
	Caption  *string
	Location *Location
	Date     *time.Time
}
