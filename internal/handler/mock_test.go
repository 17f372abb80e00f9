package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pkordes/worktracker/internal/domain"
	"github.com/pkordes/worktracker/internal/handler"
	"github.com/pkordes/worktracker/internal/handler/gen"
)

// mockRecordServicer is a test double for handler.RecordServicer.
// Set only the method fields your test needs.
type mockRecordServicer struct {
	create  func(ctx context.Context, in domain.NewRecord) (domain.Record, error)
	getByID func(ctx context.Context, id int64) (domain.Record, error)
	list    func(ctx context.Context, f domain.RecordFilter, p domain.PaginationParams) ([]domain.Record, error)
	delete  func(ctx context.Context, id int64) (bool, error)
	summary func(ctx context.Context, f domain.RecordFilter) (domain.Summary, error)
}

func (m *mockRecordServicer) Create(ctx context.Context, in domain.NewRecord) (domain.Record, error) {
	return m.create(ctx, in)
}
func (m *mockRecordServicer) GetByID(ctx context.Context, id int64) (domain.Record, error) {
	return m.getByID(ctx, id)
}
func (m *mockRecordServicer) List(ctx context.Context, f domain.RecordFilter, p domain.PaginationParams) ([]domain.Record, error) {
	return m.list(ctx, f, p)
}
func (m *mockRecordServicer) Delete(ctx context.Context, id int64) (bool, error) {
	return m.delete(ctx, id)
}
func (m *mockRecordServicer) Summary(ctx context.Context, f domain.RecordFilter) (domain.Summary, error) {
	return m.summary(ctx, f)
}

// mockTagServicer is a test double for handler.TagServicer.
type mockTagServicer struct {
	list        func(ctx context.Context) ([]domain.Tag, error)
	getOrCreate func(ctx context.Context, name string) (domain.Tag, error)
	delete      func(ctx context.Context, id int64) (bool, error)
}

func (m *mockTagServicer) List(ctx context.Context) ([]domain.Tag, error) {
	return m.list(ctx)
}
func (m *mockTagServicer) GetOrCreate(ctx context.Context, name string) (domain.Tag, error) {
	return m.getOrCreate(ctx, name)
}
func (m *mockTagServicer) Delete(ctx context.Context, id int64) (bool, error) {
	return m.delete(ctx, id)
}

// mockExportServicer is a test double for handler.ExportServicer.
type mockExportServicer struct {
	export func(ctx context.Context, f domain.RecordFilter) ([]domain.ExportRow, error)
}

func (m *mockExportServicer) Export(ctx context.Context, f domain.RecordFilter) ([]domain.ExportRow, error) {
	return m.export(ctx, f)
}

// compile-time checks: the mocks must satisfy the handler interfaces.
var (
	_ handler.RecordServicer = (*mockRecordServicer)(nil)
	_ handler.TagServicer    = (*mockTagServicer)(nil)
	_ handler.ExportServicer = (*mockExportServicer)(nil)
)

// ---- helpers ---------------------------------------------------------------

// quietLogger discards the 500-path error logs so test output stays readable.
func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newHTTPHandler mounts srv the same way main.go does.
func newHTTPHandler(srv *handler.Server) http.Handler {
	return gen.HandlerWithOptions(
		gen.NewStrictHandlerWithOptions(srv, nil, srv.StrictOptions()),
		srv.RouterOptions(),
	)
}

// newRecordHTTPHandler wires a Server with only the record service mock.
func newRecordHTTPHandler(svc handler.RecordServicer) http.Handler {
	return newHTTPHandler(handler.NewServer(svc, nil, nil, quietLogger()))
}

func newTagHTTPHandler(svc handler.TagServicer) http.Handler {
	return newHTTPHandler(handler.NewServer(nil, svc, nil, quietLogger()))
}

func newExportHTTPHandler(svc handler.ExportServicer) http.Handler {
	return newHTTPHandler(handler.NewServer(nil, nil, svc, quietLogger()))
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func decodeError(t *testing.T, body io.Reader) gen.ErrorResponse {
	t.Helper()
	var resp gen.ErrorResponse
	require.NoError(t, json.NewDecoder(body).Decode(&resp))
	return resp
}

func recordFixture() domain.Record {
	desc := "Code review"
	return domain.Record{
		ID:          7,
		StartTime:   time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC),
		EndTime:     time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
		Duration:    3600,
		Description: &desc,
		CreatedAt:   time.Date(2024, 1, 15, 10, 1, 0, 0, time.UTC),
		Tags:        []domain.Tag{{ID: 1, Name: "review"}, {ID: 2, Name: "work"}},
	}
}
