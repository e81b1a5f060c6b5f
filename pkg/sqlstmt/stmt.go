package sqlstmt

import (
	"context"
	"database/sql"

	"github.com/dmitrymomot/sqlkit/pkg/stmtcache"
)

// Stmt is a checked-out handle to a prepared statement. Closing the
// handle checks the statement back into the connection's cache; the
// underlying statement is really closed only when the cache evicts it or
// the connection shuts down.
//
// A handle belongs to the caller that prepared it and is not meant to be
// shared between goroutines. Prepare one handle per borrower instead; they
// all resolve to the same cached statement.
type Stmt struct {
	conn   *Conn
	key    stmtcache.Key
	stmt   *sql.Stmt
	cached bool
	closed bool
}

// ExecContext executes the statement with the given arguments.
func (s *Stmt) ExecContext(ctx context.Context, args ...any) (sql.Result, error) {
	if s.closed {
		return nil, ErrStmtClosed
	}
	return s.stmt.ExecContext(ctx, args...)
}

// QueryContext executes the statement and returns the resulting rows.
func (s *Stmt) QueryContext(ctx context.Context, args ...any) (*sql.Rows, error) {
	if s.closed {
		return nil, ErrStmtClosed
	}
	return s.stmt.QueryContext(ctx, args...)
}

// QueryRowContext executes the statement expecting at most one row.
// It must not be called after Close.
func (s *Stmt) QueryRowContext(ctx context.Context, args ...any) *sql.Row {
	return s.stmt.QueryRowContext(ctx, args...)
}

// Close checks the statement back into the cache, making it evictable
// once no other handle holds it. For statements prepared with caching
// disabled it closes the statement for real. Close is idempotent.
func (s *Stmt) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if !s.cached {
		return s.stmt.Close()
	}
	s.conn.mu.Lock()
	defer s.conn.mu.Unlock()
	if s.conn.closed {
		// The connection teardown already closed every cached statement.
		return nil
	}
	s.conn.cache.Put(s.key, s.stmt)
	return nil
}
