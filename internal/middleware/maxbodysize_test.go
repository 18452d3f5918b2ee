package middleware_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pkordes/wayfarer/internal/middleware"
)

// drainBody reads the whole body and reports 413 when the reader gives up,
// the way the JSON handlers do.
var drainBody = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	n, err := io.Copy(io.Discard, r.Body)
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		w.WriteHeader(http.StatusRequestEntityTooLarge)
		return
	}
	w.Header().Set("X-Read", strings.Repeat("#", int(n)))
	w.WriteHeader(http.StatusOK)
})

func TestMaxBodySizeHandler(t *testing.T) {
	const limit = 100

	tests := []struct {
		name          string
		body          string
		contentLength int64
		wantStatus    int
		wantRead      int
	}{
		{"within limit", strings.Repeat("x", 50), 50, http.StatusOK, 50},
		{"exactly at limit", strings.Repeat("x", limit), limit, http.StatusOK, limit},
		{"declared length over limit", strings.Repeat("x", 200), 200, http.StatusRequestEntityTooLarge, 0},
		{"streamed body over limit", strings.Repeat("x", 200), -1, http.StatusRequestEntityTooLarge, 0},
		{"no body", "", 0, http.StatusOK, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := middleware.NewMaxBodySizeHandler(limit)(drainBody)

			req := httptest.NewRequest(http.MethodPost, "/trips", strings.NewReader(tc.body))
			req.ContentLength = tc.contentLength
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Len(t, rec.Header().Get("X-Read"), tc.wantRead)
		})
	}
}

// An oversized Content-Length is refused before the handler runs, with the
// same JSON error envelope the handlers use.
func TestMaxBodySizeHandler_RejectsEarly(t *testing.T) {
	called := false
	h := middleware.NewMaxBodySizeHandler(10)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		called = true
	}))

	req := httptest.NewRequest(http.MethodPut, "/profile", strings.NewReader(strings.Repeat("x", 64)))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.False(t, called)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, "close", rec.Header().Get("Connection"))
	assert.JSONEq(t, `{"error":{"code":"payload_too_large","message":"request body too large"}}`, rec.Body.String())
}
