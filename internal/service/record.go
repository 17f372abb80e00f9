// Package service contains the business logic for the work tracker.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here; services depend on repo interfaces, not implementations.
package service

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/pkordes/worktracker/internal/domain"
	"github.com/pkordes/worktracker/internal/repo"
)

// RecordService implements business logic for Record operations:
// creation with tag resolution, lookups, deletion and summaries.
type RecordService struct {
	uow repo.UnitOfWork
	now func() time.Time
}

// RecordOption customizes a RecordService.
type RecordOption func(*RecordService)

// WithClock replaces the clock used to stamp CreatedAt.
func WithClock(now func() time.Time) RecordOption {
	return func(s *RecordService) { s.now = now }
}

// NewRecordService constructs a RecordService backed by the provided UnitOfWork.
func NewRecordService(uow repo.UnitOfWork, opts ...RecordOption) *RecordService {
	s := &RecordService{uow: uow, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create validates in, resolves its tags and persists the record. New tags,
// the record row and its tag links commit together or not at all.
//
// EndTime before StartTime, or a Duration that disagrees with the two times,
// is accepted as given.
func (s *RecordService) Create(ctx context.Context, in domain.NewRecord) (domain.Record, error) {
	if in.Duration < 0 {
		return domain.Record{}, fmt.Errorf("service.RecordService.Create: %w: duration must be >= 0", domain.ErrValidation)
	}
	for _, name := range in.TagNames {
		if err := validateTagName(name); err != nil {
			return domain.Record{}, fmt.Errorf("service.RecordService.Create: %w", err)
		}
	}

	var created domain.Record
	err := s.uow.Execute(ctx, func(tx repo.UnitOfWork) error {
		tags, err := resolveTags(ctx, tx.Tags(), in.TagIDs, in.TagNames)
		if err != nil {
			return err
		}

		rec, err := tx.Records().Create(ctx, domain.Record{
			StartTime:   in.StartTime,
			EndTime:     in.EndTime,
			Duration:    in.Duration,
			Description: in.Description,
			CreatedAt:   s.now().UTC(),
		})
		if err != nil {
			return err
		}

		ids := make([]int64, len(tags))
		for i, t := range tags {
			ids[i] = t.ID
		}
		if err := tx.Records().AttachTags(ctx, rec.ID, ids); err != nil {
			return err
		}

		rec.Tags = tags
		created = rec
		return nil
	})
	if err != nil {
		return domain.Record{}, fmt.Errorf("service.RecordService.Create: %w", err)
	}
	return created, nil
}

// GetByID returns a single record with its tags.
// Returns domain.ErrNotFound if it does not exist.
func (s *RecordService) GetByID(ctx context.Context, id int64) (domain.Record, error) {
	rec, err := s.uow.Records().GetByID(ctx, id)
	if err != nil {
		return domain.Record{}, fmt.Errorf("service.RecordService.GetByID: %w", err)
	}
	return rec, nil
}

// List returns one page of records matching f, newest first.
func (s *RecordService) List(ctx context.Context, f domain.RecordFilter, p domain.PaginationParams) ([]domain.Record, error) {
	records, err := s.uow.Records().List(ctx, f, p)
	if err != nil {
		return nil, fmt.Errorf("service.RecordService.List: %w", err)
	}
	if records == nil {
		records = []domain.Record{}
	}
	return records, nil
}

// Delete removes a record and its tag links. Tags themselves are kept.
// Reports false, with no error, when the record does not exist.
func (s *RecordService) Delete(ctx context.Context, id int64) (bool, error) {
	err := s.uow.Execute(ctx, func(tx repo.UnitOfWork) error {
		return tx.Records().Delete(ctx, id)
	})
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("service.RecordService.Delete: %w", err)
	}
	return true, nil
}

// Summary aggregates every record matching f by tag and by start date.
// Both views are computed from the same loaded set.
func (s *RecordService) Summary(ctx context.Context, f domain.RecordFilter) (domain.Summary, error) {
	records, err := s.uow.Records().ListAll(ctx, f)
	if err != nil {
		return domain.Summary{}, fmt.Errorf("service.RecordService.Summary: %w", err)
	}
	return domain.Summary{
		ByTag:  summarizeByTag(records),
		ByDate: summarizeByDate(records),
	}, nil
}

// resolveTags turns tag ids and names into a set of tags, deduplicated by id.
// Unknown ids are dropped. Names are reused when a tag with that exact name
// exists and created otherwise. The result is ordered by name.
func resolveTags(ctx context.Context, tags repo.TagRepo, ids []int64, names []string) ([]domain.Tag, error) {
	resolved := []domain.Tag{}
	if len(ids) > 0 {
		found, err := tags.GetByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, found...)
	}

	seen := make(map[int64]bool, len(resolved)+len(names))
	for _, t := range resolved {
		seen[t.ID] = true
	}

	for _, name := range names {
		tag, err := tags.GetByName(ctx, name)
		if errors.Is(err, domain.ErrNotFound) {
			tag, err = tags.Create(ctx, name)
		}
		if err != nil {
			return nil, err
		}
		if seen[tag.ID] {
			continue
		}
		seen[tag.ID] = true
		resolved = append(resolved, tag)
	}

	slices.SortFunc(resolved, func(a, b domain.Tag) int {
		return cmp.Compare(a.Name, b.Name)
	})
	return resolved, nil
}
