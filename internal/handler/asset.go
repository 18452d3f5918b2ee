package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/wayfarer/internal/domain"
)

// AssetRequest is the body of POST /assets.
type AssetRequest struct {
	Name         string           `json:"name"`
	Type         domain.AssetType `json:"type"`
	SerialNumber string           `json:"serialNumber"`
	Notes        string           `json:"notes"`
	ImageURI     string           `json:"imageUri"`
}

// AssetPatchRequest is the body of PUT /assets/{id}.
type AssetPatchRequest struct {
	Name         *string           `json:"name"`
	Type         *domain.AssetType `json:"type"`
	SerialNumber *string           `json:"serialNumber"`
	Notes        *string           `json:"notes"`
	ImageURI     *string           `json:"imageUri"`
}

// GalleryPhotoRequest is the body of POST /gallery.
type GalleryPhotoRequest struct {
	Caption     string `json:"caption"`
	Description string `json:"description"`
	ImageURI    string `json:"imageUri"`
}

// GalleryDetailsRequest is the body of PUT /gallery/{id}. The image itself
// cannot be replaced.
type GalleryDetailsRequest struct {
	Caption     string `json:"caption"`
	Description string `json:"description"`
}

// ProfilePatchRequest is the body of PUT /profile. A present email must be
// a valid address.
type ProfilePatchRequest struct {
	Name  *string              `json:"name"`
	Email *openapi_types.Email `json:"email"`
	Bio   *string              `json:"bio"`
}

// ---- assets ----------------------------------------------------------------

// ListAssets handles GET /assets. ?type= filters to one asset type.
func (s *Server) ListAssets(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("type")
	if raw == "" {
		writeJSON(w, http.StatusOK, listBody[domain.DigitalAsset]{Data: s.assets.List()})
		return
	}
	t := domain.AssetType(raw)
	if !t.Valid() {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("unknown asset type "+raw))
		return
	}
	writeJSON(w, http.StatusOK, listBody[domain.DigitalAsset]{Data: s.assets.ByType(t)})
}

// CreateAsset handles POST /assets.
func (s *Server) CreateAsset(w http.ResponseWriter, r *http.Request) {
	var req AssetRequest
	if err := decodeBody(r, &req); err != nil {
		writeBodyError(w, err)
		return
	}
	a, err := s.assets.Add(r.Context(), domain.DigitalAssetInput{
		Name:         req.Name,
		Type:         req.Type,
		SerialNumber: req.SerialNumber,
		Notes:        req.Notes,
		ImageURI:     req.ImageURI,
	})
	if err != nil {
		s.writeServiceError(w, r, err, "asset")
		return
	}
	writeJSON(w, http.StatusCreated, a)
}

// GetAsset handles GET /assets/{id}.
func (s *Server) GetAsset(w http.ResponseWriter, r *http.Request) {
	a, err := s.assets.Get(chi.URLParam(r, "id"))
	if err != nil {
		s.writeServiceError(w, r, err, "asset")
		return
	}
	writeJSON(w, http.StatusOK, a)
}

// UpdateAsset handles PUT /assets/{id}.
func (s *Server) UpdateAsset(w http.ResponseWriter, r *http.Request) {
	var req AssetPatchRequest
	if err := decodeBody(r, &req); err != nil {
		writeBodyError(w, err)
		return
	}
	a, err := s.assets.Update(r.Context(), chi.URLParam(r, "id"), domain.DigitalAssetPatch{
		Name:         req.Name,
		Type:         req.Type,
		SerialNumber: req.SerialNumber,
		Notes:        req.Notes,
		ImageURI:     req.ImageURI,
	})
	if err != nil {
		s.writeServiceError(w, r, err, "asset")
		return
	}
	writeJSON(w, http.StatusOK, a)
}

// DeleteAsset handles DELETE /assets/{id}.
func (s *Server) DeleteAsset(w http.ResponseWriter, r *http.Request) {
	if err := s.assets.Remove(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeServiceError(w, r, err, "asset")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---- gallery ---------------------------------------------------------------

// ListGallery handles GET /gallery.
func (s *Server) ListGallery(w http.ResponseWriter, r *http.Request) {
	p, err := paginationParams(r)
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody(err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, paginate(s.gallery.List(), p, identity[domain.GalleryPhoto]))
}

// CreateGalleryPhoto handles POST /gallery.
func (s *Server) CreateGalleryPhoto(w http.ResponseWriter, r *http.Request) {
	var req GalleryPhotoRequest
	if err := decodeBody(r, &req); err != nil {
		writeBodyError(w, err)
		return
	}
	p, err := s.gallery.Add(r.Context(), req.Caption, req.Description, req.ImageURI)
	if err != nil {
		s.writeServiceError(w, r, err, "gallery photo")
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

// GetGalleryPhoto handles GET /gallery/{id}.
func (s *Server) GetGalleryPhoto(w http.ResponseWriter, r *http.Request) {
	p, err := s.gallery.Get(chi.URLParam(r, "id"))
	if err != nil {
		s.writeServiceError(w, r, err, "gallery photo")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// UpdateGalleryPhoto handles PUT /gallery/{id}.
func (s *Server) UpdateGalleryPhoto(w http.ResponseWriter, r *http.Request) {
	var req GalleryDetailsRequest
	if err := decodeBody(r, &req); err != nil {
		writeBodyError(w, err)
		return
	}
	p, err := s.gallery.UpdateDetails(r.Context(), chi.URLParam(r, "id"), req.Caption, req.Description)
	if err != nil {
		s.writeServiceError(w, r, err, "gallery photo")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// DeleteGalleryPhoto handles DELETE /gallery/{id}.
func (s *Server) DeleteGalleryPhoto(w http.ResponseWriter, r *http.Request) {
	if err := s.gallery.Remove(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeServiceError(w, r, err, "gallery photo")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---- profile ---------------------------------------------------------------

// GetProfile handles GET /profile.
func (s *Server) GetProfile(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.profile.Get())
}

// UpdateProfile handles PUT /profile.
func (s *Server) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req ProfilePatchRequest
	if err := decodeBody(r, &req); err != nil {
		writeBodyError(w, err)
		return
	}
	patch := domain.ProfilePatch{Name: req.Name, Bio: req.Bio}
	if req.Email != nil {
		email := string(*req.Email)
		patch.Email = &email
	}
	p, err := s.profile.Update(r.Context(), patch)
	if err != nil {
		s.writeServiceError(w, r, err, "profile")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// ResetProfile handles POST /profile/reset.
func (s *Server) ResetProfile(w http.ResponseWriter, r *http.Request) {
	p, err := s.profile.Reset(r.Context())
	if err != nil {
		s.writeServiceError(w, r, err, "profile")
		return
	}
	writeJSON(w, http.StatusOK, p)
}
