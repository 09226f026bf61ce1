package db

import (
	"context"
	"database/sql"
)

// DBTX is what the directive, meal, workout and profile repositories run
// their SQL against. Read paths hand them the *sql.DB; the completion and
// activity services hand them the *sql.Tx of the current unit of work.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var (
	_ DBTX = (*sql.DB)(nil)
	_ DBTX = (*sql.Tx)(nil)
)
