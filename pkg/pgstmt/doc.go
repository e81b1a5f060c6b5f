// Package pgstmt caches named prepared statements on a PostgreSQL
// connection driven through pgconn.
//
// PostgreSQL keeps prepared statements per session, addressed by name.
// The cache derives a stable name from the SQL text, prepares each text at
// most once and deallocates statements on the server when they fall out of
// the cache. Usage counting guarantees a statement is never deallocated
// while a caller still holds its description.
//
// # Usage
//
//	pgConn, err := pgconn.Connect(ctx, connString)
//	if err != nil {
//		return err
//	}
//
//	cache := pgstmt.New(pgConn, pgstmt.Config{CacheSize: 512})
//
//	sd, err := cache.Prepare(ctx, "SELECT name FROM users WHERE id = $1")
//	if err != nil {
//		return err
//	}
//	defer cache.Release(sd)
//
//	res := pgConn.ExecPrepared(ctx, sd.Name, [][]byte{id}, nil, nil)
//
// # Plan Invalidation
//
// Schema changes can invalidate prepared plans server-side; PostgreSQL
// reports this as SQLSTATE 0A000. Detect it with IsInvalidCachedPlan,
// Clear the cache and retry:
//
//	if pgstmt.IsInvalidCachedPlan(err) {
//		cache.Clear()
//		// re-prepare and retry the query
//	}
//
// Clear deallocates checked-out statements along with the rest and
// invalidates every outstanding description: releasing one afterwards is
// a safe no-op, so a deferred Release never resurrects a deallocated
// statement.
//
// # Disabled Caching
//
// With CacheSize zero the cache prepares unnamed statements. The server
// replaces an unnamed statement on the next unnamed parse, so there is no
// bookkeeping and Release becomes a no-op for them.
//
// # Teardown
//
// Call Close before discarding the connection. It deallocates everything
// still cached and fails subsequent Prepare calls with ErrCacheClosed;
// the wrapped connection itself stays open and remains the owner's to
// close.
package pgstmt
