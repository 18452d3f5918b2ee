package handler

import (
	"net/http"

	"github.com/pkordes/wayfarer/internal/domain"
)

// ChecklistCategoryResponse is one category of the pre-trip checklist.
type ChecklistCategoryResponse struct {
	Name     string                   `json:"name"`
	Items    []domain.ChecklistItem   `json:"items"`
	Progress domain.ChecklistProgress `json:"progress"`
}

// ChecklistResponse is the body of GET /checklist. Categories keep their
// display order.
type ChecklistResponse struct {
	Initialized bool                        `json:"initialized"`
	Categories  []ChecklistCategoryResponse `json:"categories"`
	Progress    domain.ChecklistProgress    `json:"progress"`
}

// ChecklistItemRequest is the body of POST /checklist/{category}/items.
type ChecklistItemRequest struct {
	Text string `json:"text"`
}

// GetChecklist handles GET /checklist.
func (s *Server) GetChecklist(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.checklistBody())
}

// InitializeChecklist handles POST /checklist/initialize. It answers 201 when
// the template was applied and 200 when the checklist already existed.
func (s *Server) InitializeChecklist(w http.ResponseWriter, r *http.Request) {
	changed, err := s.checklist.InitializeFromTemplate(r.Context())
	if err != nil {
		s.writeServiceError(w, r, err, "checklist")
		return
	}
	status := http.StatusOK
	if changed {
		status = http.StatusCreated
	}
	writeJSON(w, status, s.checklistBody())
}

// ResetChecklist handles POST /checklist/reset.
func (s *Server) ResetChecklist(w http.ResponseWriter, r *http.Request) {
	if err := s.checklist.Reset(r.Context()); err != nil {
		s.writeServiceError(w, r, err, "checklist")
		return
	}
	writeJSON(w, http.StatusOK, s.checklistBody())
}

// GetChecklistProgress handles GET /checklist/progress.
func (s *Server) GetChecklistProgress(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.checklist.Progress())
}

// GetChecklistCategoryProgress handles GET /checklist/{category}/progress.
func (s *Server) GetChecklistCategoryProgress(w http.ResponseWriter, r *http.Request) {
	category := pathParam(r, "category")
	if _, ok := s.checklist.Checklist()[category]; !ok {
		writeJSON(w, http.StatusNotFound, notFoundBody("checklist category not found"))
		return
	}
	writeJSON(w, http.StatusOK, s.checklist.CategoryProgress(category))
}

// AddChecklistItem handles POST /checklist/{category}/items.
func (s *Server) AddChecklistItem(w http.ResponseWriter, r *http.Request) {
	var req ChecklistItemRequest
	if err := decodeBody(r, &req); err != nil {
		writeBodyError(w, err)
		return
	}
	item, err := s.checklist.AddCustomItem(r.Context(), pathParam(r, "category"), req.Text)
	if err != nil {
		s.writeServiceError(w, r, err, "checklist category")
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

// ToggleChecklistItem handles POST /checklist/{category}/items/{itemId}/toggle.
func (s *Server) ToggleChecklistItem(w http.ResponseWriter, r *http.Request) {
	item, err := s.checklist.ToggleItem(r.Context(), pathParam(r, "category"), pathParam(r, "itemId"))
	if err != nil {
		s.writeServiceError(w, r, err, "checklist item")
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// DeleteChecklistItem handles DELETE /checklist/{category}/items/{itemId}.
// Only custom items can be deleted.
func (s *Server) DeleteChecklistItem(w http.ResponseWriter, r *http.Request) {
	if err := s.checklist.RemoveItem(r.Context(), pathParam(r, "category"), pathParam(r, "itemId")); err != nil {
		s.writeServiceError(w, r, err, "checklist item")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) checklistBody() ChecklistResponse {
	list := s.checklist.Checklist()
	names := s.checklist.Categories()
	cats := make([]ChecklistCategoryResponse, 0, len(names))
	for _, name := range names {
		items := list[name]
		if items == nil {
			items = []domain.ChecklistItem{}
		}
		cats = append(cats, ChecklistCategoryResponse{
			Name:     name,
			Items:    items,
			Progress: s.checklist.CategoryProgress(name),
		})
	}
	return ChecklistResponse{
		Initialized: s.checklist.Initialized(),
		Categories:  cats,
		Progress:    s.checklist.Progress(),
	}
}
