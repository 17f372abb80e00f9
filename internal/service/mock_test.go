package service_test

import (
	"context"

	"github.com/pkordes/worktracker/internal/domain"
	"github.com/pkordes/worktracker/internal/repo"
)

// ---- mock RecordRepo -------------------------------------------------------

type mockRecordRepo struct {
	create     func(ctx context.Context, rec domain.Record) (domain.Record, error)
	attachTags func(ctx context.Context, recordID int64, tagIDs []int64) error
	getByID    func(ctx context.Context, id int64) (domain.Record, error)
	list       func(ctx context.Context, f domain.RecordFilter, p domain.PaginationParams) ([]domain.Record, error)
	listAll    func(ctx context.Context, f domain.RecordFilter) ([]domain.Record, error)
	delete     func(ctx context.Context, id int64) error
}

func (m *mockRecordRepo) Create(ctx context.Context, rec domain.Record) (domain.Record, error) {
	return m.create(ctx, rec)
}
func (m *mockRecordRepo) AttachTags(ctx context.Context, recordID int64, tagIDs []int64) error {
	return m.attachTags(ctx, recordID, tagIDs)
}
func (m *mockRecordRepo) GetByID(ctx context.Context, id int64) (domain.Record, error) {
	return m.getByID(ctx, id)
}
func (m *mockRecordRepo) List(ctx context.Context, f domain.RecordFilter, p domain.PaginationParams) ([]domain.Record, error) {
	return m.list(ctx, f, p)
}
func (m *mockRecordRepo) ListAll(ctx context.Context, f domain.RecordFilter) ([]domain.Record, error) {
	return m.listAll(ctx, f)
}
func (m *mockRecordRepo) Delete(ctx context.Context, id int64) error {
	return m.delete(ctx, id)
}

// ---- mock TagRepo ----------------------------------------------------------

type mockTagRepo struct {
	create    func(ctx context.Context, name string) (domain.Tag, error)
	getByName func(ctx context.Context, name string) (domain.Tag, error)
	getByIDs  func(ctx context.Context, ids []int64) ([]domain.Tag, error)
	list      func(ctx context.Context) ([]domain.Tag, error)
	delete    func(ctx context.Context, id int64) error
}

func (m *mockTagRepo) Create(ctx context.Context, name string) (domain.Tag, error) {
	return m.create(ctx, name)
}
func (m *mockTagRepo) GetByName(ctx context.Context, name string) (domain.Tag, error) {
	return m.getByName(ctx, name)
}
func (m *mockTagRepo) GetByIDs(ctx context.Context, ids []int64) ([]domain.Tag, error) {
	return m.getByIDs(ctx, ids)
}
func (m *mockTagRepo) List(ctx context.Context) ([]domain.Tag, error) {
	return m.list(ctx)
}
func (m *mockTagRepo) Delete(ctx context.Context, id int64) error {
	return m.delete(ctx, id)
}

// memTagRepo is a TagRepo over a map, for tests that care about the
// resulting set of tags rather than individual calls.
type memTagRepo struct {
	byName  map[string]domain.Tag
	nextID  int64
	created []string
}

func newMemTagRepo(existing ...domain.Tag) *memTagRepo {
	m := &memTagRepo{byName: map[string]domain.Tag{}, nextID: 100}
	for _, t := range existing {
		m.byName[t.Name] = t
	}
	return m
}

func (m *memTagRepo) Create(_ context.Context, name string) (domain.Tag, error) {
	if _, ok := m.byName[name]; ok {
		return domain.Tag{}, domain.ErrConflict
	}
	m.nextID++
	t := domain.Tag{ID: m.nextID, Name: name}
	m.byName[name] = t
	m.created = append(m.created, name)
	return t, nil
}
func (m *memTagRepo) GetByName(_ context.Context, name string) (domain.Tag, error) {
	t, ok := m.byName[name]
	if !ok {
		return domain.Tag{}, domain.ErrNotFound
	}
	return t, nil
}
func (m *memTagRepo) GetByIDs(_ context.Context, ids []int64) ([]domain.Tag, error) {
	out := []domain.Tag{}
	for _, t := range m.byName {
		for _, id := range ids {
			if t.ID == id {
				out = append(out, t)
				break
			}
		}
	}
	return out, nil
}
func (m *memTagRepo) List(context.Context) ([]domain.Tag, error) { return nil, nil }
func (m *memTagRepo) Delete(context.Context, int64) error      { return nil }

// ---- mock UnitOfWork -------------------------------------------------------

// mockUnitOfWork hands the same repos to fn that it returns from its
// accessors. executions counts Execute calls so tests can assert that a
// write path ran inside a transaction.
type mockUnitOfWork struct {
	records    repo.RecordRepo
	tags       repo.TagRepo
	executions int
	beginErr   error
}

func (m *mockUnitOfWork) Execute(_ context.Context, fn func(uow repo.UnitOfWork) error) error {
	m.executions++
	if m.beginErr != nil {
		return m.beginErr
	}
	return fn(m)
}
func (m *mockUnitOfWork) Records() repo.RecordRepo { return m.records }
func (m *mockUnitOfWork) Tags() repo.TagRepo       { return m.tags }

// compile-time checks
var (
	_ repo.RecordRepo = (*mockRecordRepo)(nil)
	_ repo.TagRepo    = (*mockTagRepo)(nil)
	_ repo.TagRepo    = (*memTagRepo)(nil)
	_ repo.UnitOfWork = (*mockUnitOfWork)(nil)
)
