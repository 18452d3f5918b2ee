// Package domain contains the core data types for the Wayfarer travel journal.
// This package has zero external dependencies and is imported by every other
// internal package (repo, service, handler).
package domain

import "time"

// Location is a named coordinate on a trip route or attached to an entry.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Name      string  `json:"name"`
}

// TripStats holds the aggregates shown on the trip dashboard. Every field is
// derived by the trip store; callers never set them directly.
type TripStats struct {
	DistanceTraveled float64 `json:"distanceTraveled"`
	PlacesVisited    int     `json:"placesVisited"`
	PhotosCount      int     `json:"photosCount"`
	DaysOnTrip       int     `json:"daysOnTrip"`
}

// Trip is a bounded travel period. At most one trip is active at a time.
// StartDate and EndDate carry date-only semantics (midnight UTC).
type Trip struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	StartDate     time.Time  `json:"startDate"`
	EndDate       time.Time  `json:"endDate"`
	CoverImageURI string     `json:"coverImageUri,omitempty"`
	Stats         TripStats  `json:"stats"`
	Locations     []Location `json:"locations"`
	IsActive      bool       `json:"isActive"`
}

// TripInput carries the caller-supplied fields of a new trip.
type TripInput struct {
	Title         string
	Description   string
	StartDate     time.Time
	EndDate       time.Time
	CoverImageURI string
	Locations     []Location
}

// TripPatch is a partial update; nil fields are left unchanged.
// Activation is not patchable: use the store's SetActive.
type TripPatch struct {
	Title         *string
	Description   *string
	StartDate     *time.Time
	EndDate       *time.Time
	CoverImageURI *string
	Locations     *[]Location
}
