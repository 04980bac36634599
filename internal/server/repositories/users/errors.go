package users

import (
	"errors"
	"strings"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// duplicateError maps a unique-constraint violation on insert to the
// matching sentinel. It returns nil for any other error.
func duplicateError(err error) error {
	var detail string

	var pgErr *pgconn.PgError
	var liteErr *sqlite.Error
	switch {
	case errors.As(err, &pgErr):
		if pgErr.Code != pgerrcode.UniqueViolation {
			return nil
		}
		detail = pgErr.ConstraintName
	case errors.As(err, &liteErr):
		if liteErr.Code()&0xff != sqlite3.SQLITE_CONSTRAINT || !strings.Contains(liteErr.Error(), "UNIQUE") {
			return nil
		}
		detail = liteErr.Error()
	default:
		return nil
	}

	if strings.Contains(detail, "email") {
		return common.ErrEmailTaken
	}
	return common.ErrNameTaken
}
