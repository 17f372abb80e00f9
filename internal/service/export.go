package service

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/pkordes/worktracker/internal/domain"
	"github.com/pkordes/worktracker/internal/repo"
)

// ExportService assembles a flat export of records and their tag names.
type ExportService struct {
	uow repo.UnitOfWork
}

// NewExportService constructs an ExportService backed by the provided UnitOfWork.
func NewExportService(uow repo.UnitOfWork) *ExportService {
	return &ExportService{uow: uow}
}

// Export returns one ExportRow per record matching f, most recent start first.
func (s *ExportService) Export(ctx context.Context, f domain.RecordFilter) ([]domain.ExportRow, error) {
	records, err := s.uow.Records().ListAll(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}

	slices.SortFunc(records, func(a, b domain.Record) int {
		if c := b.StartTime.Compare(a.StartTime); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})

	rows := make([]domain.ExportRow, 0, len(records))
	for _, rec := range records {
		row := domain.ExportRow{
			RecordID:  rec.ID,
			StartTime: rec.StartTime,
			EndTime:   rec.EndTime,
			Duration:  rec.Duration,
			CreatedAt: rec.CreatedAt,
			Tags:      make([]string, len(rec.Tags)),
		}
		if rec.Description != nil {
			row.Description = *rec.Description
		}
		for i, t := range rec.Tags {
			row.Tags[i] = t.Name
		}
		slices.Sort(row.Tags)
		rows = append(rows, row)
	}
	return rows, nil
}
