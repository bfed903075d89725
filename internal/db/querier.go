package db

import (
	"context"
	"database/sql"
)

// Querier is the subset of database/sql operations shared by *sql.DB and
// *sql.Tx. Repositories are constructed over a Querier so the same query code
// serves plain pool reads and unit-of-work writes: the coordinator hands its
// open transaction to the repositories it builds, and their writes become part
// of that transaction's commit.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var (
	_ Querier = (*sql.DB)(nil)
	_ Querier = (*sql.Tx)(nil)
	_ Querier = (*DB)(nil)
)
