package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// UnitOfWork scopes a group of repo calls to one database transaction.
// Repos obtained from the uow passed to fn share that transaction; repos
// obtained outside Execute run on the underlying connection directly.
type UnitOfWork interface {
	// Execute runs fn in a transaction. It commits when fn returns nil and
	// rolls back when fn returns an error or panics.
	Execute(ctx context.Context, fn func(uow UnitOfWork) error) error
	Records() RecordRepo
	Tags() TagRepo
}

// beginner is a db that can open a transaction. *pgxpool.Pool and pgx.Tx both
// satisfy it; on a pgx.Tx, Begin creates a savepoint, so tests can hand in a
// transaction they later roll back.
type beginner interface {
	db
	Begin(ctx context.Context) (pgx.Tx, error)
}

type pgUnitOfWork struct {
	conn beginner
}

// NewUnitOfWork constructs a UnitOfWork over conn.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewUnitOfWork(conn beginner) UnitOfWork {
	return &pgUnitOfWork{conn: conn}
}

func (u *pgUnitOfWork) Records() RecordRepo { return NewRecordRepo(u.conn) }

func (u *pgUnitOfWork) Tags() TagRepo { return NewTagRepo(u.conn) }

// Execute wraps pgx.BeginFunc, which commits on success and rolls back on
// error or panic.
func (u *pgUnitOfWork) Execute(ctx context.Context, fn func(uow UnitOfWork) error) error {
	err := pgx.BeginFunc(ctx, u.conn, func(tx pgx.Tx) error {
		return fn(&pgUnitOfWork{conn: tx})
	})
	if err != nil {
		return fmt.Errorf("repo.UnitOfWork.Execute: %w", err)
	}
	return nil
}
