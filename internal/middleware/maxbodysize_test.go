package middleware_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/worktracker/internal/middleware"
)

// echoHandler reads the whole body the way a JSON-decoding handler would and
// echoes it back. A read that trips http.MaxBytesReader answers 413.
var echoHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		w.WriteHeader(http.StatusRequestEntityTooLarge)
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
})

func TestMaxBodySizeHandler(t *testing.T) {
	const limit = 100
	cases := []struct {
		name          string
		size          int
		contentLength int64 // -1 means unknown, as with chunked uploads
		want          int
	}{
		{"well under the limit", 50, 50, http.StatusOK},
		{"exactly the limit", limit, limit, http.StatusOK},
		{"declared length over the limit", 200, 200, http.StatusRequestEntityTooLarge},
		{"streamed body under the limit", 50, -1, http.StatusOK},
		{"streamed body over the limit", 200, -1, http.StatusRequestEntityTooLarge},
	}

	h := middleware.NewMaxBodySizeHandler(limit)(echoHandler)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			payload := strings.Repeat("x", tc.size)
			req := httptest.NewRequest(http.MethodPost, "/api/records", strings.NewReader(payload))
			req.ContentLength = tc.contentLength
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, req)

			require.Equal(t, tc.want, rec.Code)
			if tc.want == http.StatusOK {
				assert.Equal(t, payload, rec.Body.String(), "body must reach the handler unchanged")
			}
		})
	}
}

// TestMaxBodySizeHandler_NoBody verifies that GET requests pass straight through.
func TestMaxBodySizeHandler_NoBody(t *testing.T) {
	h := middleware.NewMaxBodySizeHandler(1)(echoHandler)

	req := httptest.NewRequest(http.MethodGet, "/api/records", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

// TestMaxBodySizeHandler_RejectionIsJSONError verifies that an early rejection
// uses the API's error envelope and never reaches the handler.
func TestMaxBodySizeHandler_RejectionIsJSONError(t *testing.T) {
	reached := false
	h := middleware.NewMaxBodySizeHandler(10)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/records", strings.NewReader(strings.Repeat("x", 20)))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), `"code":"request_too_large"`)
	assert.False(t, reached)
}
