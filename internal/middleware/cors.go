// Package middleware provides the HTTP middleware chain of the work tracker API.
package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/rs/cors"
)

// corsPreflightMaxAge is how long, in seconds, browsers may cache a preflight answer.
const corsPreflightMaxAge = 600

// NewCORSHandler returns the CORS middleware for the browser front-end.
// Only the methods the API routes are allowed. X-Request-Id may be sent so a
// client can correlate its request with the server log line, and
// Content-Disposition is exposed so the export filename is readable.
// When log has debug enabled every CORS decision is logged through it.
func NewCORSHandler(allowedOrigins []string, log *slog.Logger) func(http.Handler) http.Handler {
	opts := cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"Content-Disposition"},
		MaxAge:         corsPreflightMaxAge,
	}
	if log != nil && log.Enabled(context.Background(), slog.LevelDebug) {
		opts.Debug = true
		opts.Logger = corsLogger{log: log}
	}
	return cors.New(opts).Handler
}

// corsLogger adapts slog to the Printf-style logger rs/cors writes to.
type corsLogger struct {
	log *slog.Logger
}

func (l corsLogger) Printf(format string, v ...any) {
	l.log.Debug(strings.TrimSpace(fmt.Sprintf(format, v...)), "component", "cors")
}
