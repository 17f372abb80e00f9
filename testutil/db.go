// Package testutil holds the integration-test plumbing shared by the repo,
// service and migration tests: database handles bound to TEST_DATABASE_URL,
// an optional throwaway Postgres container, and a migrated, self-cleaning
// transaction for per-test isolation.
package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" driver for database/sql

	"github.com/pkordes/worktracker/migrations"
)

// NewPool returns a pinged *pgxpool.Pool for TEST_DATABASE_URL, closed when
// the test finishes. The test is skipped when the variable is unset, so
// integration tests stay opt-in.
func NewPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	pool, err := pgxpool.New(ctx, requireDSN(t))
	if err != nil {
		t.Fatalf("testutil.NewPool: open pool: %v", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		t.Fatalf("testutil.NewPool: ping: %v", err)
	}

	t.Cleanup(pool.Close)
	return pool
}

// NewSQLDB is NewPool for callers that need database/sql, such as goose.
func NewSQLDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := openSQLDB(context.Background(), requireDSN(t))
	if err != nil {
		t.Fatalf("testutil.NewSQLDB: %v", err)
	}

	t.Cleanup(func() { db.Close() })
	return db
}

// Migrate applies every pending migration to the database at dsn.
// It is meant for TestMain, where no *testing.T exists yet.
func Migrate(ctx context.Context, dsn string) error {
	db, err := openSQLDB(ctx, dsn)
	if err != nil {
		return fmt.Errorf("testutil.Migrate: %w", err)
	}
	defer db.Close()

	if _, err := migrations.Up(ctx, db); err != nil {
		return fmt.Errorf("testutil.Migrate: %w", err)
	}
	return nil
}

// NewMigratedTx returns a transaction on a fully migrated test database with
// empty work-tracker tables. Everything done through it is rolled back when
// the test finishes. Skips like NewPool when TEST_DATABASE_URL is not set.
func NewMigratedTx(t *testing.T) pgx.Tx {
	t.Helper()
	ctx := context.Background()

	if _, err := migrations.Up(ctx, NewSQLDB(t)); err != nil {
		t.Fatalf("testutil.NewMigratedTx: migrate: %v", err)
	}

	tx, err := NewPool(t).Begin(ctx)
	if err != nil {
		t.Fatalf("testutil.NewMigratedTx: begin: %v", err)
	}
	t.Cleanup(func() { _ = tx.Rollback(context.Background()) })

	if _, err := tx.Exec(ctx, `TRUNCATE record_tags, records, tags`); err != nil {
		t.Fatalf("testutil.NewMigratedTx: truncate: %v", err)
	}
	return tx
}

func openSQLDB(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}
	return db, nil
}

// requireDSN returns TEST_DATABASE_URL, skipping the test if it is not set.
func requireDSN(t *testing.T) string {
	t.Helper()
	dsn := os.Getenv(DatabaseURLEnv)
	if dsn == "" {
		t.Skip(DatabaseURLEnv + " not set; skipping integration test")
	}
	return dsn
}
