package domain

import "time"

// Vehicle is the single rig owned by this installation.
type Vehicle struct {
	Name          string       `json:"name"`
	PhotoURI      string       `json:"photoUri,omitempty"`
	Modifications []VehicleMod `json:"modifications"`
}

// VehicleMod is an aftermarket modification fitted to the vehicle.
type VehicleMod struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	DateAdded   time.Time `json:"dateAdded,omitzero"`
}

// VehicleModPatch is a partial update; nil fields are left unchanged.
type VehicleModPatch struct {
	Name        *string
	Description *string
}
