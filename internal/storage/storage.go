package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/walletsync/internal/config"
	"github.com/carson-networks/walletsync/internal/storage/sqlconfig"
)

// Tables groups the table accessors bound to one executor, either the
// pool or a single transaction.
type Tables struct {
	Owners      sqlconfig.IOwnerTable
	Credentials sqlconfig.ICredentialTable
	Divisions   sqlconfig.IDivisionTable
	Balances    sqlconfig.IBalanceTable
	Journal     sqlconfig.IJournalTable
	Tokens      sqlconfig.ITokenTable
}

// BeginFunc opens a transaction and returns a Writer bound to it.
type BeginFunc func(ctx context.Context) (*Writer, error)

type Storage struct {
	Tables

	DB    *sql.DB
	begin BeginFunc
}

func newTables(exec bob.Executor) Tables {
	return Tables{
		Owners:      sqlconfig.NewOwnersTable(exec),
		Credentials: sqlconfig.NewCredentialsTable(exec),
		Divisions:   sqlconfig.NewDivisionsTable(exec),
		Balances:    sqlconfig.NewBalancesTable(exec),
		Journal:     sqlconfig.NewJournalTable(exec),
		Tokens:      sqlconfig.NewTokensTable(exec),
	}
}

// New assembles a Storage from already-built tables. Used by alternative
// backends such as memstore.
func New(tables Tables, begin BeginFunc) *Storage {
	return &Storage{Tables: tables, begin: begin}
}

// NewStorage connects to Postgres, retrying the initial ping with
// exponential backoff.
func NewStorage(ctx context.Context, env *config.Config) (*Storage, error) {
	db, err := sql.Open("postgres", env.PostgresConnectionString())
	if err != nil {
		return nil, fmt.Errorf("storage: open: %w", err)
	}

	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = time.Minute
	err = backoff.Retry(func() error {
		return db.PingContext(ctx)
	}, backoff.WithContext(policy, ctx))
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("storage: ping: %w", err)
	}

	bobDB := bob.NewDB(db)
	return &Storage{
		Tables: newTables(bobDB),
		DB:     db,
		begin: func(ctx context.Context) (*Writer, error) {
			tx, err := bobDB.BeginTx(ctx, nil)
			if err != nil {
				return nil, err
			}
			return NewWriter(tx, newTables(tx)), nil
		},
	}, nil
}

// Write opens a transaction. The caller must Commit or Rollback.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	return s.begin(ctx)
}

func (s *Storage) Close() error {
	if s.DB == nil {
		return nil
	}
	return s.DB.Close()
}
