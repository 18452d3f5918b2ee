package handler

import (
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/wayfarer/internal/domain"
)

// GearItemRequest is the body of POST /gear/items.
type GearItemRequest struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Weight   float64 `json:"weight"`
	IsPacked bool    `json:"isPacked"`
	Notes    string  `json:"notes"`
	ImageURI string  `json:"imageUri"`
}

// GearItemPatchRequest is the body of PUT /gear/items/{id}.
type GearItemPatchRequest struct {
	Name     *string  `json:"name"`
	Category *string  `json:"category"`
	Weight   *float64 `json:"weight"`
	IsPacked *bool    `json:"isPacked"`
	Notes    *string  `json:"notes"`
	ImageURI *string  `json:"imageUri"`
}

// GearCategoryRequest is the body of POST /gear/categories.
type GearCategoryRequest struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// GearCategoryPatchRequest is the body of PUT /gear/categories/{id}.
type GearCategoryPatchRequest struct {
	Name *string `json:"name"`
	Icon *string `json:"icon"`
}

// GearSummaryResponse is the body of GET /gear/summary. Weights are in kg.
type GearSummaryResponse struct {
	TotalWeight  float64                `json:"totalWeight"`
	PackedWeight float64                `json:"packedWeight"`
	Progress     domain.PackingProgress `json:"progress"`
}

// GetGearSummary handles GET /gear/summary.
func (s *Server) GetGearSummary(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, GearSummaryResponse{
		TotalWeight:  s.gear.TotalWeight(),
		PackedWeight: s.gear.PackedWeight(),
		Progress:     s.gear.PackingProgress(),
	})
}

// ListGearItems handles GET /gear/items.
func (s *Server) ListGearItems(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, listBody[domain.GearItem]{Data: s.gear.Items()})
}

// ListGearItemsByCategory handles GET /gear/categories/{id}/items.
func (s *Server) ListGearItemsByCategory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	known := slices.ContainsFunc(s.gear.Categories(), func(c domain.GearCategory) bool { return c.ID == id })
	if !known {
		writeJSON(w, http.StatusNotFound, notFoundBody("gear category not found"))
		return
	}
	writeJSON(w, http.StatusOK, listBody[domain.GearItem]{Data: s.gear.ItemsByCategory(id)})
}

// CreateGearItem handles POST /gear/items.
func (s *Server) CreateGearItem(w http.ResponseWriter, r *http.Request) {
	var req GearItemRequest
	if err := decodeBody(r, &req); err != nil {
		writeBodyError(w, err)
		return
	}
	item, err := s.gear.AddItem(r.Context(), domain.GearItemInput{
		Name:     req.Name,
		Category: req.Category,
		Weight:   req.Weight,
		IsPacked: req.IsPacked,
		Notes:    req.Notes,
		ImageURI: req.ImageURI,
	})
	if err != nil {
		s.writeServiceError(w, r, err, "gear item")
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

// UpdateGearItem handles PUT /gear/items/{id}.
func (s *Server) UpdateGearItem(w http.ResponseWriter, r *http.Request) {
	var req GearItemPatchRequest
	if err := decodeBody(r, &req); err != nil {
		writeBodyError(w, err)
		return
	}
	item, err := s.gear.UpdateItem(r.Context(), chi.URLParam(r, "id"), domain.GearItemPatch{
		Name:     req.Name,
		Category: req.Category,
		Weight:   req.Weight,
		IsPacked: req.IsPacked,
		Notes:    req.Notes,
		ImageURI: req.ImageURI,
	})
	if err != nil {
		s.writeServiceError(w, r, err, "gear item")
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// DeleteGearItem handles DELETE /gear/items/{id}.
func (s *Server) DeleteGearItem(w http.ResponseWriter, r *http.Request) {
	if err := s.gear.RemoveItem(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeServiceError(w, r, err, "gear item")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ToggleGearItem handles POST /gear/items/{id}/toggle.
func (s *Server) ToggleGearItem(w http.ResponseWriter, r *http.Request) {
	item, err := s.gear.TogglePacked(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeServiceError(w, r, err, "gear item")
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// ListGearCategories handles GET /gear/categories.
func (s *Server) ListGearCategories(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, listBody[domain.GearCategory]{Data: s.gear.Categories()})
}

// CreateGearCategory handles POST /gear/categories.
func (s *Server) CreateGearCategory(w http.ResponseWriter, r *http.Request) {
	var req GearCategoryRequest
	if err := decodeBody(r, &req); err != nil {
		writeBodyError(w, err)
		return
	}
	c, err := s.gear.AddCategory(r.Context(), req.Name, req.Icon)
	if err != nil {
		s.writeServiceError(w, r, err, "gear category")
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

// UpdateGearCategory handles PUT /gear/categories/{id}.
func (s *Server) UpdateGearCategory(w http.ResponseWriter, r *http.Request) {
	var req GearCategoryPatchRequest
	if err := decodeBody(r, &req); err != nil {
		writeBodyError(w, err)
		return
	}
	c, err := s.gear.UpdateCategory(r.Context(), chi.URLParam(r, "id"),
		domain.GearCategoryPatch{Name: req.Name, Icon: req.Icon})
	if err != nil {
		s.writeServiceError(w, r, err, "gear category")
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// DeleteGearCategory handles DELETE /gear/categories/{id}. A category that
// still holds items is refused with 409.
func (s *Server) DeleteGearCategory(w http.ResponseWriter, r *http.Request) {
	if err := s.gear.RemoveCategory(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeServiceError(w, r, err, "gear category")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
