// Package stmtcache provides a bounded, concurrency-safe cache for live
// prepared-statement handles, keyed by the statement's SQL text together
// with its driver-level execution options.
//
// Re-preparing an identical statement forces the database to parse and plan
// it again. The cache keeps already-prepared handles alive and hands them
// back to callers, while a usage-count protocol guarantees that a handle is
// never evicted while somebody is still using it. The configured size is a
// soft target, not a hard cap: when every entry is checked out the cache is
// allowed to grow past it and shrinks back once entries are returned.
//
// # Check-out / Check-in Protocol
//
// Callers borrow statements with Get and return them with Put:
//
//	key := stmtcache.NewKey("SELECT id FROM users WHERE email = $1")
//
//	stmt, ok := cache.Get(key)
//	if !ok {
//		stmt = prepare() // really prepare on the connection
//		stmt, ok = cache.Put(key, stmt)
//		if !ok {
//			// caching disabled: the caller owns stmt and must close it
//		}
//	}
//	// ... use stmt ...
//	cache.Put(key, stmt) // check the statement back in
//
// Every successful Get increments the entry's usage count and must be
// balanced by exactly one Put with the same key. Put with an untracked key
// inserts the statement with a usage count of one, so a statement prepared
// on a cache miss is already checked out by the preparing caller. While the
// usage count is above zero the entry is pinned and survives every eviction
// scan.
//
// Put always returns the canonical cached statement: when the key is
// already tracked the caller's argument is discarded in favour of the
// stored handle, because both must originate from the same Get.
//
// # Eviction
//
// Eviction runs only as a side effect of Put. When the tracked size
// exceeds the target, entries are scanned from least- to most-recently
// used; unpinned entries are removed until the size meets the target again.
// Pinned entries are skipped in place and keep their recency position.
//
// Clear removes every entry unconditionally, pinned or not. It is a forced
// teardown intended for connection close.
//
// # Eviction Listeners
//
// Listeners registered with AddEvictionListener receive every statement the
// cache lets go of, whether through the eviction scan or through Clear.
// The conventional listener closes the statement:
//
//	cache := stmtcache.New[*sql.Stmt](64)
//	cache.AddEvictionListener(func(stmt *sql.Stmt) {
//		stmt.Close()
//	})
//
// Notifications fire after the cache's internal lock is released, so a
// listener may safely touch connection state or call back into the cache.
// A panicking listener is recovered and logged; remaining listeners still
// fire.
//
// # Keys
//
// Two keys are equal only when the SQL text and every execution option
// match. Statements that share SQL text but differ in cursor type,
// concurrency, holdability, generated-key retrieval or returned-column
// specification occupy independent cache slots:
//
//	a := stmtcache.NewKey("SELECT * FROM t")
//	b := stmtcache.NewKeyWithCursor("SELECT * FROM t",
//		stmtcache.ScrollSensitive, stmtcache.Updatable)
//	// a and b are distinct slots
//
// # Concurrency
//
// All cache operations are safe for concurrent use. Get, Put and Clear
// each run as a single critical section under one mutex, so an eviction
// scan always observes a consistent view of usage counts and recency
// order. Listener registration uses its own lock and never contends with
// the cache's.
package stmtcache
