package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/worktracker/internal/middleware"
)

// trivialHandler is a minimal http.Handler that always returns 200.
var trivialHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

var devOrigins = []string{"http://localhost:5173", "https://tracker.example.com"}

// TestCORSHandler_SimpleRequests checks which origins get the
// Access-Control-Allow-Origin header. A disallowed origin still gets the
// response; the browser is what blocks it.
func TestCORSHandler_SimpleRequests(t *testing.T) {
	cases := []struct {
		name   string
		origin string
		path   string
		want   string
	}{
		{"dev server", "http://localhost:5173", "/api/records", "http://localhost:5173"},
		{"second origin", "https://tracker.example.com", "/api/records/summary", "https://tracker.example.com"},
		{"unknown origin", "http://evil.example.com", "/api/records", ""},
		{"scheme mismatch", "https://localhost:5173", "/api/tags", ""},
	}
	h := middleware.NewCORSHandler(devOrigins, nil)(trivialHandler)

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			req.Header.Set("Origin", tc.origin)
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tc.want, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

// TestCORSHandler_Preflight covers the methods the API actually routes.
// Browsers lowercase Access-Control-Request-Headers and rs/cors compares
// verbatim, so the test does too.
func TestCORSHandler_Preflight(t *testing.T) {
	h := middleware.NewCORSHandler(devOrigins, nil)(trivialHandler)

	for _, method := range []string{http.MethodPost, http.MethodDelete} {
		t.Run(method, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodOptions, "/api/records/1", nil)
			req.Header.Set("Origin", "http://localhost:5173")
			req.Header.Set("Access-Control-Request-Method", method)
			req.Header.Set("Access-Control-Request-Headers", "content-type")
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.True(t, rec.Code == http.StatusNoContent || rec.Code == http.StatusOK,
				"expected 2xx for OPTIONS preflight, got %d", rec.Code)
			assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, method, rec.Header().Get("Access-Control-Allow-Methods"))
		})
	}
}

// TestCORSHandler_Preflight_PUTNotAllowed verifies that methods the API does
// not route are not advertised.
func TestCORSHandler_Preflight_PUTNotAllowed(t *testing.T) {
	h := middleware.NewCORSHandler(devOrigins, nil)(trivialHandler)

	req := httptest.NewRequest(http.MethodOptions, "/api/records/1", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPut)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

// TestCORSHandler_ExposesContentDisposition verifies that the CSV export
// filename header is readable by browser clients.
func TestCORSHandler_ExposesContentDisposition(t *testing.T) {
	h := middleware.NewCORSHandler(devOrigins, nil)(trivialHandler)

	req := httptest.NewRequest(http.MethodGet, "/api/records/export?format=csv", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "Content-Disposition", rec.Header().Get("Access-Control-Expose-Headers"))
}

// TestCORSHandler_PreflightMaxAge verifies browsers are told to cache the
// preflight answer.
func TestCORSHandler_PreflightMaxAge(t *testing.T) {
	h := middleware.NewCORSHandler(devOrigins, nil)(trivialHandler)

	req := httptest.NewRequest(http.MethodOptions, "/api/tags", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "600", rec.Header().Get("Access-Control-Max-Age"))
}

// TestCORSHandler_DebugLogging checks that rejected origins show up in the
// server log when the logger is at debug level, and stay silent otherwise.
func TestCORSHandler_DebugLogging(t *testing.T) {
	cases := []struct {
		name    string
		level   slog.Level
		wantLog bool
	}{
		{"debug", slog.LevelDebug, true},
		{"info", slog.LevelInfo, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: tc.level}))
			h := middleware.NewCORSHandler(devOrigins, logger)(trivialHandler)

			req := httptest.NewRequest(http.MethodGet, "/api/records", nil)
			req.Header.Set("Origin", "http://evil.example.com")
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			if tc.wantLog {
				assert.Contains(t, buf.String(), "http://evil.example.com")
				assert.Contains(t, buf.String(), `"component":"cors"`)
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}
