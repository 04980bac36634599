// Package dbx holds the small database/sql abstraction shared by repositories.
package dbx

import (
	"context"
	"database/sql"
	"strings"
)

// DBTX is the subset of database/sql used by our repos.
// Both *sql.DB and *sql.Tx satisfy this interface.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Rebinder rewrites a query written with PostgreSQL "$N" placeholders into
// the target dialect.
type Rebinder func(query string) string

// Dollar leaves "$N" placeholders as they are (PostgreSQL).
func Dollar(query string) string { return query }

// Numbered turns "$N" into "?N", which SQLite reads as the same positional
// parameter. Queries must not contain a literal '$'.
func Numbered(query string) string { return strings.ReplaceAll(query, "$", "?") }
