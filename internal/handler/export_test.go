package handler_test

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/worktracker/internal/domain"
	"github.com/pkordes/worktracker/internal/handler/gen"
)

// exportRowFixture returns a fully-populated domain.ExportRow for testing.
func exportRowFixture() domain.ExportRow {
	return domain.ExportRow{
		RecordID:    11,
		StartTime:   time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC),
		EndTime:     time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
		Duration:    5400,
		Description: "Sprint planning",
		CreatedAt:   time.Date(2024, 1, 15, 10, 31, 0, 0, time.UTC),
		Tags:        []string{"meeting", "work"},
	}
}

// ---- GET /api/records/export: JSON -----------------------------------------

func TestGetExport_DefaultJSON_EmptyResult(t *testing.T) {
	svc := &mockExportServicer{
		export: func(_ context.Context, _ domain.RecordFilter) ([]domain.ExportRow, error) {
			return []domain.ExportRow{}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/records/export", nil)
	rec := httptest.NewRecorder()
	newExportHTTPHandler(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
	assert.Equal(t, `attachment; filename="records.json"`, rec.Header().Get("Content-Disposition"))
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestGetExport_JSON_WithRows(t *testing.T) {
	noDesc := exportRowFixture()
	noDesc.RecordID = 12
	noDesc.Description = ""
	noDesc.Tags = nil

	svc := &mockExportServicer{
		export: func(_ context.Context, _ domain.RecordFilter) ([]domain.ExportRow, error) {
			return []domain.ExportRow{exportRowFixture(), noDesc}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/records/export?format=json", nil)
	rec := httptest.NewRecorder()
	newExportHTTPHandler(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var rows []gen.ExportRow
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&rows))
	require.Len(t, rows, 2)
	assert.Equal(t, int64(11), rows[0].RecordId)
	require.NotNil(t, rows[0].Description)
	assert.Equal(t, "Sprint planning", *rows[0].Description)
	assert.Equal(t, []string{"meeting", "work"}, rows[0].Tags)
	assert.Nil(t, rows[1].Description, "empty description is omitted")
	assert.Equal(t, []string{}, rows[1].Tags)
}

func TestGetExport_PassesFilter(t *testing.T) {
	var got domain.RecordFilter
	svc := &mockExportServicer{
		export: func(_ context.Context, f domain.RecordFilter) ([]domain.ExportRow, error) {
			got = f
			return nil, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/records/export?start_date=2024-01-01&end_date=2024-02-01", nil)
	rec := httptest.NewRecorder()
	newExportHTTPHandler(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, got.StartDate)
	require.NotNil(t, got.EndDate)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), *got.EndDate)
}

// ---- GET /api/records/export: CSV ------------------------------------------

func TestGetExport_CSV(t *testing.T) {
	svc := &mockExportServicer{
		export: func(_ context.Context, _ domain.RecordFilter) ([]domain.ExportRow, error) {
			return []domain.ExportRow{exportRowFixture()}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/records/export?format=csv", nil)
	rec := httptest.NewRecorder()
	newExportHTTPHandler(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "records.csv")

	lines, err := csv.NewReader(strings.NewReader(rec.Body.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, []string{"record_id", "start_time", "end_time", "duration", "description", "created_at", "tags"}, lines[0])
	assert.Equal(t, []string{
		"11",
		"2024-01-15T09:00:00Z",
		"2024-01-15T10:30:00Z",
		"5400",
		"Sprint planning",
		"2024-01-15T10:31:00Z",
		"meeting|work",
	}, lines[1])
}

func TestGetExport_CSV_HeaderOnlyWhenEmpty(t *testing.T) {
	svc := &mockExportServicer{
		export: func(_ context.Context, _ domain.RecordFilter) ([]domain.ExportRow, error) {
			return nil, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/records/export?format=csv", nil)
	rec := httptest.NewRecorder()
	newExportHTTPHandler(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	lines, err := csv.NewReader(strings.NewReader(rec.Body.String())).ReadAll()
	require.NoError(t, err)
	assert.Len(t, lines, 1)
}

// ---- errors ----------------------------------------------------------------

func TestGetExport_400_UnknownFormat(t *testing.T) {
	svc := &mockExportServicer{}

	req := httptest.NewRequest(http.MethodGet, "/api/records/export?format=xml", nil)
	rec := httptest.NewRecorder()
	newExportHTTPHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "bad_request", decodeError(t, rec.Body).Error.Code)
}

func TestGetExport_400_DateOutsideYearRange(t *testing.T) {
	svc := &mockExportServicer{}

	req := httptest.NewRequest(http.MethodGet, "/api/records/export?end_date=0000-01-01T00:00:00%2B01:00", nil)
	rec := httptest.NewRecorder()
	newExportHTTPHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetExport_500_ServiceError(t *testing.T) {
	svc := &mockExportServicer{
		export: func(_ context.Context, _ domain.RecordFilter) ([]domain.ExportRow, error) {
			return nil, errors.New("db is down")
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/records/export", nil)
	rec := httptest.NewRecorder()
	newExportHTTPHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal_error", decodeError(t, rec.Body).Error.Code)
}
