package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/wayfarer/internal/domain"
)

var errBodyRequired = errors.New("request body is required")

// writeJSON encodes v as the JSON response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck // the status line is already sent; nothing to recover.
	json.NewEncoder(w).Encode(v)
}

// decodeBody decodes a JSON request body into dst, rejecting unknown fields.
func decodeBody(r *http.Request, dst any) error {
	if r.Body == nil || r.Body == http.NoBody {
		return errBodyRequired
	}
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return errBodyRequired
		}
		return err
	}
	return nil
}

// pathParam returns the unescaped chi URL parameter, so checklist categories
// like "First%20Aid" resolve to their stored names.
func pathParam(r *http.Request, name string) string {
	raw := chi.URLParam(r, name)
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}

// Page is the envelope of every paginated list response.
type Page[T any] struct {
	Data       []T            `json:"data"`
	Pagination PaginationMeta `json:"pagination"`
}

// PaginationMeta describes the slice of a collection a Page holds.
type PaginationMeta struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// paginationParams reads ?page and ?limit. Absent values take the defaults;
// values that are not integers are rejected.
func paginationParams(r *http.Request) (domain.PaginationParams, error) {
	page, err := queryInt(r, "page")
	if err != nil {
		return domain.PaginationParams{}, err
	}
	limit, err := queryInt(r, "limit")
	if err != nil {
		return domain.PaginationParams{}, err
	}
	return domain.NewPaginationParams(page, limit), nil
}

func queryInt(r *http.Request, name string) (*int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, errors.New(name + " must be an integer")
	}
	return &n, nil
}

// paginate converts items with conv and wraps the requested page.
func paginate[In, Out any](items []In, p domain.PaginationParams, conv func(In) Out) Page[Out] {
	slice, total := domain.Paginate(items, p)
	out := make([]Out, 0, len(slice))
	for _, it := range slice {
		out = append(out, conv(it))
	}
	return Page[Out]{
		Data:       out,
		Pagination: PaginationMeta{Page: p.Page, Limit: p.Limit, Total: total},
	}
}

// listBody wraps an unpaginated collection as {"data": [...]}.
type listBody[T any] struct {
	Data []T `json:"data"`
}

func identity[T any](v T) T { return v }
