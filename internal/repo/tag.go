package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pkordes/worktracker/internal/domain"
)

// pgUniqueViolation is the SQLSTATE Postgres reports for a unique-constraint failure.
const pgUniqueViolation = "23505"

// TagRepo defines the persistence operations for Tags.
type TagRepo interface {
	// Create inserts a tag with the given name.
	// Returns domain.ErrConflict if a tag with that name already exists.
	Create(ctx context.Context, name string) (domain.Tag, error)

	// GetByName returns the tag whose name matches exactly (case-sensitive).
	// Returns domain.ErrNotFound if there is none.
	GetByName(ctx context.Context, name string) (domain.Tag, error)

	// GetByIDs returns the tags whose ids appear in ids, ordered by name.
	// Ids with no matching tag are skipped.
	GetByIDs(ctx context.Context, ids []int64) ([]domain.Tag, error)

	// List returns all tags ordered by name.
	List(ctx context.Context) ([]domain.Tag, error)

	// Delete removes a tag's record links and then the tag itself.
	// Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id int64) error
}

// pgTagRepo is the Postgres implementation of TagRepo.
type pgTagRepo struct {
	db db
}

// NewTagRepo constructs a TagRepo backed by the provided db connection.
func NewTagRepo(db db) TagRepo {
	return &pgTagRepo{db: db}
}

// Create inserts a tag. The id comes back through RETURNING, so it is usable
// by later statements in the same transaction before commit.
func (r *pgTagRepo) Create(ctx context.Context, name string) (domain.Tag, error) {
	const q = `
		INSERT INTO tags (name)
		VALUES (@name)
		RETURNING id, name`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"name": name})
	result, err := scanTag(row)
	if err != nil {
		return domain.Tag{}, fmt.Errorf("repo.TagRepo.Create: %w", mapPgError(err))
	}
	return result, nil
}

// GetByName looks a tag up by exact name.
func (r *pgTagRepo) GetByName(ctx context.Context, name string) (domain.Tag, error) {
	const q = `SELECT id, name FROM tags WHERE name = @name`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"name": name})
	result, err := scanTag(row)
	if err != nil {
		return domain.Tag{}, fmt.Errorf("repo.TagRepo.GetByName: %w", err)
	}
	return result, nil
}

// GetByIDs loads every tag in ids with one query.
func (r *pgTagRepo) GetByIDs(ctx context.Context, ids []int64) ([]domain.Tag, error) {
	if len(ids) == 0 {
		return []domain.Tag{}, nil
	}
	const q = `
		SELECT id, name
		FROM tags
		WHERE id = ANY(@ids)
		ORDER BY name COLLATE "C"`

	tags, err := r.query(ctx, q, pgx.NamedArgs{"ids": ids})
	if err != nil {
		return nil, fmt.Errorf("repo.TagRepo.GetByIDs: %w", err)
	}
	return tags, nil
}

// List returns all tags ordered by name. COLLATE "C" gives plain byte order,
// which matches how the service sorts summary rows.
func (r *pgTagRepo) List(ctx context.Context) ([]domain.Tag, error) {
	const q = `SELECT id, name FROM tags ORDER BY name COLLATE "C"`

	tags, err := r.query(ctx, q, nil)
	if err != nil {
		return nil, fmt.Errorf("repo.TagRepo.List: %w", err)
	}
	return tags, nil
}

// Delete removes the tag's membership rows and then the tag. Records are untouched.
func (r *pgTagRepo) Delete(ctx context.Context, id int64) error {
	args := pgx.NamedArgs{"id": id}

	if _, err := r.db.Exec(ctx, `DELETE FROM record_tags WHERE tag_id = @id`, args); err != nil {
		return fmt.Errorf("repo.TagRepo.Delete: records: %w", err)
	}

	tag, err := r.db.Exec(ctx, `DELETE FROM tags WHERE id = @id`, args)
	if err != nil {
		return fmt.Errorf("repo.TagRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.TagRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

func (r *pgTagRepo) query(ctx context.Context, q string, args pgx.NamedArgs) ([]domain.Tag, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if args == nil {
		rows, err = r.db.Query(ctx, q)
	} else {
		rows, err = r.db.Query(ctx, q, args)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tags := []domain.Tag{}
	for rows.Next() {
		tag, err := scanTag(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		tags = append(tags, tag)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return tags, nil
}

// scanTag maps a single database row into a domain.Tag.
func scanTag(s scanner) (domain.Tag, error) {
	var t domain.Tag
	err := s.Scan(&t.ID, &t.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Tag{}, domain.ErrNotFound
		}
		return domain.Tag{}, err
	}
	return t, nil
}

// mapPgError translates a unique-constraint violation into domain.ErrConflict.
// The original error stays in the chain for logging.
func mapPgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return fmt.Errorf("%w: %s", domain.ErrConflict, pgErr.ConstraintName)
	}
	return err
}
