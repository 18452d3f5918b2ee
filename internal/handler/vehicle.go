package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/wayfarer/internal/domain"
)

// VehicleResponse is the body of GET /vehicle.
type VehicleResponse struct {
	Name          string               `json:"name"`
	PhotoURI      string               `json:"photoUri,omitempty"`
	Modifications []VehicleModResponse `json:"modifications"`
}

// VehicleModResponse is the JSON shape of a vehicle modification. dateAdded
// is omitted for modifications recorded without one.
type VehicleModResponse struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	DateAdded   *openapi_types.Date `json:"dateAdded,omitempty"`
}

// VehicleNameRequest is the body of PUT /vehicle/name.
type VehicleNameRequest struct {
	Name string `json:"name"`
}

// VehiclePhotoRequest is the body of PUT /vehicle/photo.
type VehiclePhotoRequest struct {
	PhotoURI string `json:"photoUri"`
}

// VehicleModRequest is the body of POST /vehicle/mods.
type VehicleModRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// VehicleModPatchRequest is the body of PUT /vehicle/mods/{id}.
type VehicleModPatchRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// GetVehicle handles GET /vehicle.
func (s *Server) GetVehicle(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, vehicleToResponse(s.vehicle.Get()))
}

// SetVehicleName handles PUT /vehicle/name.
func (s *Server) SetVehicleName(w http.ResponseWriter, r *http.Request) {
	var req VehicleNameRequest
	if err := decodeBody(r, &req); err != nil {
		writeBodyError(w, err)
		return
	}
	v, err := s.vehicle.SetName(r.Context(), req.Name)
	if err != nil {
		s.writeServiceError(w, r, err, "vehicle")
		return
	}
	writeJSON(w, http.StatusOK, vehicleToResponse(v))
}

// SetVehiclePhoto handles PUT /vehicle/photo.
func (s *Server) SetVehiclePhoto(w http.ResponseWriter, r *http.Request) {
	var req VehiclePhotoRequest
	if err := decodeBody(r, &req); err != nil {
		writeBodyError(w, err)
		return
	}
	v, err := s.vehicle.SetPhoto(r.Context(), req.PhotoURI)
	if err != nil {
		s.writeServiceError(w, r, err, "vehicle")
		return
	}
	writeJSON(w, http.StatusOK, vehicleToResponse(v))
}

// CreateVehicleMod handles POST /vehicle/mods.
func (s *Server) CreateVehicleMod(w http.ResponseWriter, r *http.Request) {
	var req VehicleModRequest
	if err := decodeBody(r, &req); err != nil {
		writeBodyError(w, err)
		return
	}
	mod, err := s.vehicle.AddModification(r.Context(), req.Name, req.Description)
	if err != nil {
		s.writeServiceError(w, r, err, "modification")
		return
	}
	writeJSON(w, http.StatusCreated, modToResponse(mod))
}

// UpdateVehicleMod handles PUT /vehicle/mods/{id}.
func (s *Server) UpdateVehicleMod(w http.ResponseWriter, r *http.Request) {
	var req VehicleModPatchRequest
	if err := decodeBody(r, &req); err != nil {
		writeBodyError(w, err)
		return
	}
	mod, err := s.vehicle.UpdateModification(r.Context(), chi.URLParam(r, "id"),
		domain.VehicleModPatch{Name: req.Name, Description: req.Description})
	if err != nil {
		s.writeServiceError(w, r, err, "modification")
		return
	}
	writeJSON(w, http.StatusOK, modToResponse(mod))
}

// DeleteVehicleMod handles DELETE /vehicle/mods/{id}.
func (s *Server) DeleteVehicleMod(w http.ResponseWriter, r *http.Request) {
	if err := s.vehicle.RemoveModification(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeServiceError(w, r, err, "modification")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func vehicleToResponse(v domain.Vehicle) VehicleResponse {
	mods := make([]VehicleModResponse, 0, len(v.Modifications))
	for _, m := range v.Modifications {
		mods = append(mods, modToResponse(m))
	}
	return VehicleResponse{Name: v.Name, PhotoURI: v.PhotoURI, Modifications: mods}
}

func modToResponse(m domain.VehicleMod) VehicleModResponse {
	out := VehicleModResponse{ID: m.ID, Name: m.Name, Description: m.Description}
	if !m.DateAdded.IsZero() {
		out.DateAdded = &openapi_types.Date{Time: m.DateAdded}
	}
	return out
}
