// Package repo contains all database access logic for the work tracker.
// Each resource has its own file with an interface and a Postgres implementation.
// No business logic lives here, only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/worktracker/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// RecordRepo defines the persistence operations for Records and their
// record_tags membership rows.
// The service layer depends on this interface, not the concrete Postgres implementation,
// which allows the service to be unit-tested with a mock.
type RecordRepo interface {
	// Create inserts a new record and returns it with the DB-generated id.
	// Tags on the input are ignored; link them with AttachTags.
	Create(ctx context.Context, rec domain.Record) (domain.Record, error)

	// AttachTags links the given tags to a record. Idempotent per pair.
	AttachTags(ctx context.Context, recordID int64, tagIDs []int64) error

	// GetByID retrieves a single record with its tags.
	// Returns domain.ErrNotFound if no record with that ID exists.
	GetByID(ctx context.Context, id int64) (domain.Record, error)

	// List returns one page of records matching f, ordered by created_at
	// descending, with tags loaded.
	List(ctx context.Context, f domain.RecordFilter, p domain.PaginationParams) ([]domain.Record, error)

	// ListAll returns every record matching f, with tags loaded.
	// Order is unspecified.
	ListAll(ctx context.Context, f domain.RecordFilter) ([]domain.Record, error)

	// Delete removes a record's tag links and then the record itself.
	// Returns domain.ErrNotFound if it does not exist. Run it inside a
	// UnitOfWork so both statements commit together.
	Delete(ctx context.Context, id int64) error
}

// pgRecordRepo is the Postgres implementation of RecordRepo.
type pgRecordRepo struct {
	db db
}

// NewRecordRepo constructs a RecordRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewRecordRepo(db db) RecordRepo {
	return &pgRecordRepo{db: db}
}

const recordColumns = `id, start_time, end_time, duration, description, created_at`

// Create inserts a new record row and returns the full persisted record.
func (r *pgRecordRepo) Create(ctx context.Context, rec domain.Record) (domain.Record, error) {
	const q = `
		INSERT INTO records (start_time, end_time, duration, description, created_at)
		VALUES (@start_time, @end_time, @duration, @description, @created_at)
		RETURNING ` + recordColumns

	args := pgx.NamedArgs{
		"start_time":  rec.StartTime,
		"end_time":    rec.EndTime,
		"duration":    rec.Duration,
		"description": rec.Description, // nil becomes NULL
		"created_at":  rec.CreatedAt,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanRecord(row)
	if err != nil {
		return domain.Record{}, fmt.Errorf("repo.RecordRepo.Create: %w", err)
	}
	result.Tags = []domain.Tag{}
	return result, nil
}

// AttachTags inserts one record_tags row per tag. ON CONFLICT keeps it idempotent.
func (r *pgRecordRepo) AttachTags(ctx context.Context, recordID int64, tagIDs []int64) error {
	if len(tagIDs) == 0 {
		return nil
	}
	const q = `
		INSERT INTO record_tags (record_id, tag_id)
		SELECT @record_id::bigint, unnest(@tag_ids::bigint[])
		ON CONFLICT (record_id, tag_id) DO NOTHING`

	_, err := r.db.Exec(ctx, q, pgx.NamedArgs{"record_id": recordID, "tag_ids": tagIDs})
	if err != nil {
		return fmt.Errorf("repo.RecordRepo.AttachTags: %w", mapPgError(err))
	}
	return nil
}

// GetByID retrieves a record by primary key along with its tags.
func (r *pgRecordRepo) GetByID(ctx context.Context, id int64) (domain.Record, error) {
	const q = `SELECT ` + recordColumns + ` FROM records WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanRecord(row)
	if err != nil {
		return domain.Record{}, fmt.Errorf("repo.RecordRepo.GetByID: %w", err)
	}

	records := []domain.Record{result}
	if err := r.loadTags(ctx, records); err != nil {
		return domain.Record{}, fmt.Errorf("repo.RecordRepo.GetByID: %w", err)
	}
	return records[0], nil
}

// List returns a page of records, most recently created first.
// id breaks ties between records created in the same instant.
func (r *pgRecordRepo) List(ctx context.Context, f domain.RecordFilter, p domain.PaginationParams) ([]domain.Record, error) {
	where, args := filterClause(f)
	args["offset"] = p.Skip
	args["limit"] = p.Limit

	q := `SELECT ` + recordColumns + ` FROM records` + where + `
		ORDER BY created_at DESC, id DESC
		OFFSET @offset LIMIT @limit`

	records, err := r.query(ctx, q, args)
	if err != nil {
		return nil, fmt.Errorf("repo.RecordRepo.List: %w", err)
	}
	return records, nil
}

// ListAll returns every record matching f. Used for aggregation and export,
// so no pagination is applied.
func (r *pgRecordRepo) ListAll(ctx context.Context, f domain.RecordFilter) ([]domain.Record, error) {
	where, args := filterClause(f)
	q := `SELECT ` + recordColumns + ` FROM records` + where + ` ORDER BY start_time DESC, id DESC`

	records, err := r.query(ctx, q, args)
	if err != nil {
		return nil, fmt.Errorf("repo.RecordRepo.ListAll: %w", err)
	}
	return records, nil
}

// Delete removes the record's membership rows and then the record.
func (r *pgRecordRepo) Delete(ctx context.Context, id int64) error {
	args := pgx.NamedArgs{"id": id}

	if _, err := r.db.Exec(ctx, `DELETE FROM record_tags WHERE record_id = @id`, args); err != nil {
		return fmt.Errorf("repo.RecordRepo.Delete: tags: %w", err)
	}

	tag, err := r.db.Exec(ctx, `DELETE FROM records WHERE id = @id`, args)
	if err != nil {
		return fmt.Errorf("repo.RecordRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.RecordRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// query runs a record SELECT and loads tags for every returned row.
func (r *pgRecordRepo) query(ctx context.Context, q string, args pgx.NamedArgs) ([]domain.Record, error) {
	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []domain.Record{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	if err := r.loadTags(ctx, records); err != nil {
		return nil, err
	}
	return records, nil
}

// loadTags fills Tags on every record with a single query over record_tags.
// Records without tags get an empty, non-nil slice.
func (r *pgRecordRepo) loadTags(ctx context.Context, records []domain.Record) error {
	if len(records) == 0 {
		return nil
	}

	ids := make([]int64, len(records))
	index := make(map[int64]int, len(records))
	for i := range records {
		ids[i] = records[i].ID
		index[records[i].ID] = i
		records[i].Tags = []domain.Tag{}
	}

	const q = `
		SELECT rt.record_id, t.id, t.name
		FROM record_tags rt
		JOIN tags t ON t.id = rt.tag_id
		WHERE rt.record_id = ANY(@ids)
		ORDER BY t.name COLLATE "C"`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"ids": ids})
	if err != nil {
		return fmt.Errorf("load tags: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			recordID int64
			t        domain.Tag
		)
		if err := rows.Scan(&recordID, &t.ID, &t.Name); err != nil {
			return fmt.Errorf("load tags: scan: %w", err)
		}
		i := index[recordID]
		records[i].Tags = append(records[i].Tags, t)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("load tags: rows: %w", err)
	}
	return nil
}

// filterClause builds the WHERE clause for a RecordFilter. Both bounds are inclusive.
func filterClause(f domain.RecordFilter) (string, pgx.NamedArgs) {
	args := pgx.NamedArgs{}
	var conds []string
	if f.StartDate != nil {
		conds = append(conds, "start_time >= @start_date")
		args["start_date"] = *f.StartDate
	}
	if f.EndDate != nil {
		conds = append(conds, "end_time <= @end_date")
		args["end_date"] = *f.EndDate
	}
	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing scanRecord to be
// reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanRecord maps a single database row into a domain.Record.
// Timestamps are normalized to UTC and a NULL description becomes nil.
func scanRecord(s scanner) (domain.Record, error) {
	var (
		rec  domain.Record
		desc pgtype.Text
	)

	err := s.Scan(&rec.ID, &rec.StartTime, &rec.EndTime, &rec.Duration, &desc, &rec.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Record{}, domain.ErrNotFound
		}
		return domain.Record{}, err
	}

	rec.StartTime = rec.StartTime.UTC()
	rec.EndTime = rec.EndTime.UTC()
	rec.CreatedAt = rec.CreatedAt.UTC()
	if desc.Valid {
		d := desc.String
		rec.Description = &d
	}
	return rec, nil
}
