// Package sqlstmt adds per-connection prepared statement caching on top
// of database/sql.
//
// A Conn wraps a dedicated *sql.Conn. Statements prepared through it are
// kept in a bounded LRU cache instead of being closed after use, so hot
// queries skip the prepare round-trip on every execution. The cache's
// usage counting guarantees a statement is never closed while a handle to
// it is still checked out, even when the same query is prepared twice on
// the connection.
//
// # Usage
//
//	conn, err := db.Conn(ctx)
//	if err != nil {
//		return err
//	}
//
//	cached := sqlstmt.Wrap(conn, sqlstmt.Config{CacheSize: 64})
//	defer cached.Close() // closes every cached statement, then the conn
//
//	stmt, err := cached.PrepareContext(ctx, "SELECT name FROM users WHERE id = $1")
//	if err != nil {
//		return err
//	}
//	defer stmt.Close() // checks the statement back in, does not close it
//
//	row := stmt.QueryRowContext(ctx, userID)
//
// The one-shot helpers bundle the prepare, execute and check-in steps:
//
//	if _, err := cached.ExecContext(ctx, "UPDATE users SET seen = now() WHERE id = $1", userID); err != nil {
//		return err
//	}
//
// # Lifecycle
//
// Handles returned by PrepareContext share the underlying statement; each
// Close is a check-in, and the statement stays open until the cache evicts
// it or the connection closes. Setting CacheSize to zero disables caching:
// every PrepareContext prepares a fresh statement owned by the caller.
//
// Conn is safe for concurrent use; the cache's usage counting keeps a
// statement alive while any handle to it is outstanding. When two
// goroutines race to prepare the same query, one statement wins the cache
// slot and the duplicate is closed immediately. Individual handles belong
// to the goroutine that prepared them.
package sqlstmt
