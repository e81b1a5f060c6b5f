package pgstmt

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrFailedToPrepareStatement = errors.New("failed to prepare statement")
	ErrCacheClosed              = errors.New("statement cache is closed")
)

// IsInvalidCachedPlan detects PostgreSQL's "cached plan must not change
// result type" error (SQLSTATE 0A000), raised when a DDL change invalidates
// an already prepared statement. Callers should Clear the cache and retry.
//
// Only the SQLSTATE is checked: the server localizes the message text, so
// matching on it would miss the error on non-English servers. 0A000 covers
// a few other unsupported-feature errors too; a false positive merely
// clears statements that would have been re-prepared anyway.
func IsInvalidCachedPlan(err error) bool {
	if err == nil {
		return false
	}

	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "0A000"
}
