// Package handler implements the HTTP handlers for the work tracker API.
// All handlers are methods on Server, which implements gen.StrictServerInterface.
// Methods are split into domain-specific files (health.go, record.go, etc.) but
// all share the same Server struct so they can access its dependencies.
package handler

//go:generate oapi-codegen --config=gen/oapi-codegen.yaml ../../openapi/openapi.yaml

import (
	"context"
	"log/slog"

	"github.com/pkordes/worktracker/internal/domain"
	"github.com/pkordes/worktracker/internal/handler/gen"
)

// RecordServicer defines the business operations the record handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type RecordServicer interface {
	Create(ctx context.Context, in domain.NewRecord) (domain.Record, error)
	GetByID(ctx context.Context, id int64) (domain.Record, error)
	List(ctx context.Context, f domain.RecordFilter, p domain.PaginationParams) ([]domain.Record, error)
	Delete(ctx context.Context, id int64) (bool, error)
	Summary(ctx context.Context, f domain.RecordFilter) (domain.Summary, error)
}

// TagServicer defines the business operations the tag handlers depend on.
type TagServicer interface {
	List(ctx context.Context) ([]domain.Tag, error)
	GetOrCreate(ctx context.Context, name string) (domain.Tag, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// ExportServicer defines the business operation the export handler depends on.
type ExportServicer interface {
	Export(ctx context.Context, f domain.RecordFilter) ([]domain.ExportRow, error)
}

// Server implements gen.StrictServerInterface for all API endpoints.
// Wire it in main.go via gen.NewStrictHandlerWithOptions(server, nil, server.StrictOptions()).
type Server struct {
	records RecordServicer
	tags    TagServicer
	export  ExportServicer
	log     *slog.Logger
}

var _ gen.StrictServerInterface = (*Server)(nil)

// NewServer constructs the Server with all its dependencies.
// A nil logger falls back to slog.Default.
func NewServer(records RecordServicer, tags TagServicer, export ExportServicer, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{records: records, tags: tags, export: export, log: log}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(nil, nil, nil, nil)
}

// StrictOptions routes body-decoding failures and handler errors through the
// JSON error envelope instead of the generated plain-text defaults.
func (s *Server) StrictOptions() gen.StrictHTTPServerOptions {
	return gen.StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  requestError,
		ResponseErrorHandlerFunc: s.responseError,
	}
}

// RouterOptions returns the chi options main.go mounts the generated router
// with. Responses are buffered so an encoding failure can still become a 500.
func (s *Server) RouterOptions() gen.ChiServerOptions {
	return gen.ChiServerOptions{
		// Applied in list order; the last entry runs first.
		Middlewares:      []gen.MiddlewareFunc{requireSingleJSONValue, bufferResponses},
		ErrorHandlerFunc: paramError,
	}
}
