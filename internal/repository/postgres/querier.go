package postgres

import (
	"context"
	"database/sql"
)

// DBTX - общее подмножество *sql.DB и *sql.Tx
type DBTX interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}
