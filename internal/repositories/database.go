package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Database is the minimal query surface the repositories need. It is satisfied
// by *pgxpool.Pool, by pgx.Tx, and by the pgxmock pool used in tests, so the
// same repository code runs against the pool, inside a transaction, or under a
// mock without conditional wiring.
type Database interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TxBeginner is a Database that can also open transactions. *pgxpool.Pool and
// pgxmock.PgxPoolIface both satisfy it.
type TxBeginner interface {
	Database
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Store aggregates the repositories behind one handle. ExecTx runs fn against
// a store whose repositories all share a single transaction; if fn returns an
// error the transaction is rolled back and none of its writes are visible.
type Store interface {
	Users() UserRepository
	Products() ProductRepository
	Orders() OrderRepository
	OrderItems() OrderItemRepository
	ExecTx(ctx context.Context, fn func(Store) error) error
}

type sqlStore struct {
	db       Database
	beginner TxBeginner // nil when this store is already transaction-scoped
}

// NewStore creates a Store backed by the given connection pool.
func NewStore(db TxBeginner) Store {
	return &sqlStore{db: db, beginner: db}
}

func (s *sqlStore) Users() UserRepository           { return NewUserRepo(s.db) }
func (s *sqlStore) Products() ProductRepository     { return NewProductRepo(s.db) }
func (s *sqlStore) Orders() OrderRepository         { return NewOrderRepo(s.db) }
func (s *sqlStore) OrderItems() OrderItemRepository { return NewOrderItemRepo(s.db) }

func (s *sqlStore) ExecTx(ctx context.Context, fn func(Store) error) error {
	if s.beginner == nil {
		// Already inside a transaction; nested scopes join it.
		return fn(s)
	}

	tx, err := s.beginner.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	// Rollback after Commit is a no-op (pgx.ErrTxClosed). Deferring it keeps a
	// panic inside fn from leaking an open transaction and its row locks back
	// into the pool.
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(&sqlStore{db: tx}); err != nil {
		return err
	}

	return tx.Commit(ctx)
}
