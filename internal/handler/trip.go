package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/wayfarer/internal/dates"
	"github.com/pkordes/wayfarer/internal/domain"
)

// TripRequest is the body of POST /trips.
type TripRequest struct {
	Title         string             `json:"title"`
	Description   string             `json:"description"`
	StartDate     openapi_types.Date `json:"startDate"`
	EndDate       openapi_types.Date `json:"endDate"`
	CoverImageURI string             `json:"coverImageUri"`
	Locations     []domain.Location  `json:"locations"`
}

// TripPatchRequest is the body of PUT /trips/{id}. Absent fields are kept.
type TripPatchRequest struct {
	Title         *string             `json:"title"`
	Description   *string             `json:"description"`
	StartDate     *openapi_types.Date `json:"startDate"`
	EndDate       *openapi_types.Date `json:"endDate"`
	CoverImageURI *string             `json:"coverImageUri"`
	Locations     *[]domain.Location  `json:"locations"`
}

// TripResponse is the JSON shape of a trip.
type TripResponse struct {
	ID            string             `json:"id"`
	Title         string             `json:"title"`
	Description   string             `json:"description"`
	StartDate     openapi_types.Date `json:"startDate"`
	EndDate       openapi_types.Date `json:"endDate"`
	DateRange     string             `json:"dateRange"`
	CoverImageURI string             `json:"coverImageUri,omitempty"`
	Stats         domain.TripStats   `json:"stats"`
	Locations     []domain.Location  `json:"locations"`
	IsActive      bool               `json:"isActive"`
}

// ListTrips handles GET /trips.
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	p, err := paginationParams(r)
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody(err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, paginate(s.trips.List(), p, tripToResponse))
}

// GetActiveTrip handles GET /trips/active.
func (s *Server) GetActiveTrip(w http.ResponseWriter, _ *http.Request) {
	t, ok := s.trips.Active()
	if !ok {
		writeJSON(w, http.StatusNotFound, notFoundBody("no active trip"))
		return
	}
	writeJSON(w, http.StatusOK, tripToResponse(t))
}

// CreateTrip handles POST /trips.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var req TripRequest
	if err := decodeBody(r, &req); err != nil {
		writeBodyError(w, err)
		return
	}
	t, err := s.trips.Add(r.Context(), domain.TripInput{
		Title:         req.Title,
		Description:   req.Description,
		StartDate:     req.StartDate.Time,
		EndDate:       req.EndDate.Time,
		CoverImageURI: req.CoverImageURI,
		Locations:     req.Locations,
	})
	if err != nil {
		s.writeServiceError(w, r, err, "trip")
		return
	}
	writeJSON(w, http.StatusCreated, tripToResponse(t))
}

// GetTrip handles GET /trips/{id}.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	t, err := s.trips.Get(chi.URLParam(r, "id"))
	if err != nil {
		s.writeServiceError(w, r, err, "trip")
		return
	}
	writeJSON(w, http.StatusOK, tripToResponse(t))
}

// UpdateTrip handles PUT /trips/{id}.
func (s *Server) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	var req TripPatchRequest
	if err := decodeBody(r, &req); err != nil {
		writeBodyError(w, err)
		return
	}
	t, err := s.trips.Update(r.Context(), chi.URLParam(r, "id"), domain.TripPatch{
		Title:         req.Title,
		Description:   req.Description,
		StartDate:     dateToTime(req.StartDate),
		EndDate:       dateToTime(req.EndDate),
		CoverImageURI: req.CoverImageURI,
		Locations:     req.Locations,
	})
	if err != nil {
		s.writeServiceError(w, r, err, "trip")
		return
	}
	writeJSON(w, http.StatusOK, tripToResponse(t))
}

// DeleteTrip handles DELETE /trips/{id}. The trip's entries and photos go
// with it.
func (s *Server) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	if err := s.trips.Remove(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeServiceError(w, r, err, "trip")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ActivateTrip handles POST /trips/{id}/activate.
func (s *Server) ActivateTrip(w http.ResponseWriter, r *http.Request) {
	t, err := s.trips.SetActive(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeServiceError(w, r, err, "trip")
		return
	}
	writeJSON(w, http.StatusOK, tripToResponse(t))
}

func tripToResponse(t domain.Trip) TripResponse {
	locs := t.Locations
	if locs == nil {
		locs = []domain.Location{}
	}
	return TripResponse{
		ID:            t.ID,
		Title:         t.Title,
		Description:   t.Description,
		StartDate:     openapi_types.Date{Time: t.StartDate},
		EndDate:       openapi_types.Date{Time: t.EndDate},
		DateRange:     dates.FormatRange(t.StartDate, t.EndDate),
		CoverImageURI: t.CoverImageURI,
		Stats:         t.Stats,
		Locations:     locs,
		IsActive:      t.IsActive,
	}
}

// dateToTime converts an optional wire date to an optional time.
func dateToTime(d *openapi_types.Date) *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}
