package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/wayfarer/internal/dates"
	"github.com/pkordes/wayfarer/internal/domain"
)

// EntryRequest is the body of POST /trips/{id}/entries. An omitted date
// means today.
type EntryRequest struct {
	Title    string             `json:"title"`
	Content  string             `json:"content"`
	Date     openapi_types.Date `json:"date"`
	Location domain.Location    `json:"location"`
	Category string             `json:"category"`
	ImageURI string             `json:"imageUri"`
	Weather  string             `json:"weather"`
	Mood     string             `json:"mood"`
}

// EntryPatchRequest is the body of PUT /entries/{id}.
type EntryPatchRequest struct {
	Title    *string             `json:"title"`
	Content  *string             `json:"content"`
	Date     *openapi_types.Date `json:"date"`
	Location *domain.Location    `json:"location"`
	Category *string             `json:"category"`
	ImageURI *string             `json:"imageUri"`
	Weather  *string             `json:"weather"`
	Mood     *string             `json:"mood"`
}

// EntryResponse is the JSON shape of a journal entry.
type EntryResponse struct {
	ID          string             `json:"id"`
	TripID      string             `json:"tripId"`
	Title       string             `json:"title"`
	Content     string             `json:"content"`
	Date        openapi_types.Date `json:"date"`
	DisplayDate string             `json:"displayDate"`
	Location    domain.Location    `json:"location"`
	Category    string             `json:"category"`
	ImageURI    string             `json:"imageUri,omitempty"`
	Weather     string             `json:"weather,omitempty"`
	Mood        string             `json:"mood,omitempty"`
}

// PhotoRequest is the body of POST /trips/{id}/photos.
type PhotoRequest struct {
	ImageURI string             `json:"imageUri"`
	Caption  string             `json:"caption"`
	Location domain.Location    `json:"location"`
	Date     openapi_types.Date `json:"date"`
}

// PhotoPatchRequest is the body of PUT /photos/{id}.
type PhotoPatchRequest struct {
	Caption  *string             `json:"caption"`
	Location *domain.Location    `json:"location"`
	Date     *openapi_types.Date `json:"date"`
}

// PhotoResponse is the JSON shape of a trip photo.
type PhotoResponse struct {
	ID       string             `json:"id"`
	TripID   string             `json:"tripId"`
	ImageURI string             `json:"imageUri"`
	Caption  string             `json:"caption,omitempty"`
	Location domain.Location    `json:"location"`
	Date     openapi_types.Date `json:"date"`
}

// ---- entries ---------------------------------------------------------------

// ListEntries handles GET /trips/{id}/entries.
func (s *Server) ListEntries(w http.ResponseWriter, r *http.Request) {
	tripID := chi.URLParam(r, "id")
	if _, err := s.trips.Get(tripID); err != nil {
		s.writeServiceError(w, r, err, "trip")
		return
	}
	p, err := paginationParams(r)
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody(err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, paginate(s.trips.EntriesForTrip(tripID), p, entryToResponse))
}

// CreateEntry handles POST /trips/{id}/entries.
func (s *Server) CreateEntry(w http.ResponseWriter, r *http.Request) {
	var req EntryRequest
	if err := decodeBody(r, &req); err != nil {
		writeBodyError(w, err)
		return
	}
	e, err := s.trips.AddEntry(r.Context(), domain.JournalEntryInput{
		TripID:   chi.URLParam(r, "id"),
		Title:    req.Title,
		Content:  req.Content,
		Date:     req.Date.Time,
		Location: req.Location,
		Category: req.Category,
		ImageURI: req.ImageURI,
		Weather:  req.Weather,
		Mood:     req.Mood,
	})
	if err != nil {
		// The only lookup AddEntry performs is the parent trip.
		s.writeServiceError(w, r, err, "trip")
		return
	}
	writeJSON(w, http.StatusCreated, entryToResponse(e))
}

// GetEntry handles GET /entries/{id}.
func (s *Server) GetEntry(w http.ResponseWriter, r *http.Request) {
	e, err := s.trips.Entry(chi.URLParam(r, "id"))
	if err != nil {
		s.writeServiceError(w, r, err, "journal entry")
		return
	}
	writeJSON(w, http.StatusOK, entryToResponse(e))
}

// UpdateEntry handles PUT /entries/{id}.
func (s *Server) UpdateEntry(w http.ResponseWriter, r *http.Request) {
	var req EntryPatchRequest
	if err := decodeBody(r, &req); err != nil {
		writeBodyError(w, err)
		return
	}
	e, err := s.trips.UpdateEntry(r.Context(), chi.URLParam(r, "id"), domain.JournalEntryPatch{
		Title:    req.Title,
		Content:  req.Content,
		Date:     dateToTime(req.Date),
		Location: req.Location,
		Category: req.Category,
		ImageURI: req.ImageURI,
		Weather:  req.Weather,
		Mood:     req.Mood,
	})
	if err != nil {
		s.writeServiceError(w, r, err, "journal entry")
		return
	}
	writeJSON(w, http.StatusOK, entryToResponse(e))
}

// DeleteEntry handles DELETE /entries/{id}.
func (s *Server) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	if err := s.trips.RemoveEntry(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeServiceError(w, r, err, "journal entry")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---- photos ----------------------------------------------------------------

// ListPhotos handles GET /trips/{id}/photos.
func (s *Server) ListPhotos(w http.ResponseWriter, r *http.Request) {
	tripID := chi.URLParam(r, "id")
	if _, err := s.trips.Get(tripID); err != nil {
		s.writeServiceError(w, r, err, "trip")
		return
	}
	photos := s.trips.PhotosForTrip(tripID)
	out := make([]PhotoResponse, 0, len(photos))
	for _, p := range photos {
		out = append(out, photoToResponse(p))
	}
	writeJSON(w, http.StatusOK, listBody[PhotoResponse]{Data: out})
}

// CreatePhoto handles POST /trips/{id}/photos.
func (s *Server) CreatePhoto(w http.ResponseWriter, r *http.Request) {
	var req PhotoRequest
	if err := decodeBody(r, &req); err != nil {
		writeBodyError(w, err)
		return
	}
	p, err := s.trips.AddPhoto(r.Context(), domain.PhotoInput{
		TripID:   chi.URLParam(r, "id"),
		ImageURI: req.ImageURI,
		Caption:  req.Caption,
		Location: req.Location,
		Date:     req.Date.Time,
	})
	if err != nil {
		s.writeServiceError(w, r, err, "trip")
		return
	}
	writeJSON(w, http.StatusCreated, photoToResponse(p))
}

// GetPhoto handles GET /photos/{id}.
func (s *Server) GetPhoto(w http.ResponseWriter, r *http.Request) {
	p, err := s.trips.PhotoByID(chi.URLParam(r, "id"))
	if err != nil {
		s.writeServiceError(w, r, err, "photo")
		return
	}
	writeJSON(w, http.StatusOK, photoToResponse(p))
}

// UpdatePhoto handles PUT /photos/{id}.
func (s *Server) UpdatePhoto(w http.ResponseWriter, r *http.Request) {
	var req PhotoPatchRequest
	if err := decodeBody(r, &req); err != nil {
		writeBodyError(w, err)
		return
	}
	p, err := s.trips.UpdatePhoto(r.Context(), chi.URLParam(r, "id"), domain.PhotoPatch{
		Caption:  req.Caption,
		Location: req.Location,
		Date:     dateToTime(req.Date),
	})
	if err != nil {
		s.writeServiceError(w, r, err, "photo")
		return
	}
	writeJSON(w, http.StatusOK, photoToResponse(p))
}

// DeletePhoto handles DELETE /photos/{id}.
func (s *Server) DeletePhoto(w http.ResponseWriter, r *http.Request) {
	if err := s.trips.RemovePhoto(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeServiceError(w, r, err, "photo")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func entryToResponse(e domain.JournalEntry) EntryResponse {
	return EntryResponse{
		ID:          e.ID,
		TripID:      e.TripID,
		Title:       e.Title,
		Content:     e.Content,
		Date:        openapi_types.Date{Time: e.Date},
		DisplayDate: dates.FormatShort(e.Date),
		Location:    e.Location,
		Category:    e.Category,
		ImageURI:    e.ImageURI,
		Weather:     e.Weather,
		Mood:        e.Mood,
	}
}

func photoToResponse(p domain.Photo) PhotoResponse {
	return PhotoResponse{
		ID:       p.ID,
		TripID:   p.TripID,
		ImageURI: p.ImageURI,
		Caption:  p.Caption,
		Location: p.Location,
		Date:     openapi_types.Date{Time: p.Date},
	}
}
