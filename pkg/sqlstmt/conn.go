package sqlstmt

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrymomot/sqlkit/pkg/logger"
	"github.com/dmitrymomot/sqlkit/pkg/stmtcache"
)

// Conn couples a single database connection with a prepared statement
// cache. PrepareContext hands out cached statements where possible and
// prepares on the underlying connection otherwise; evicted statements are
// closed by the cache's eviction listener.
//
// Conn is safe for concurrent use. Operations serialize on the single
// underlying connection, so concurrent callers share its throughput.
type Conn struct {
	id    string
	conn  *sql.Conn
	cache *stmtcache.Cache[*sql.Stmt]
	log   *slog.Logger

	mu     sync.Mutex
	closed bool
}

// Wrap attaches a statement cache to conn. The connection is dedicated to
// the returned wrapper; release it through the wrapper's Close so cached
// statements are cleaned up with it.
func Wrap(conn *sql.Conn, cfg Config, opts ...Option) *Conn {
	c := &Conn{
		id:   uuid.New().String(),
		conn: conn,
		log:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.With(logger.ConnID(c.id))
	c.cache = stmtcache.New(cfg.CacheSize, stmtcache.WithLogger[*sql.Stmt](c.log))
	c.cache.AddEvictionListener(func(st *sql.Stmt) {
		if err := st.Close(); err != nil {
			c.log.Error("failed to close evicted statement", logger.Error(err))
		}
	})
	return c
}

// PrepareContext returns a statement handle for query, reusing a cached
// statement when one exists. The handle must be closed after use; closing
// checks the statement back into the cache rather than closing it.
func (c *Conn) PrepareContext(ctx context.Context, query string) (*Stmt, error) {
	key := stmtcache.NewKey(query)

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil, ErrConnClosed
	}
	if st, ok := c.cache.Get(key); ok {
		c.mu.Unlock()
		return &Stmt{conn: c, key: key, stmt: st, cached: true}, nil
	}
	c.mu.Unlock()

	// Prepare without holding the lock; the driver round-trip may be slow.
	st, err := c.conn.PrepareContext(ctx, query)
	if err != nil {
		return nil, errors.Join(ErrFailedToPrepareStatement, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		_ = st.Close()
		return nil, ErrConnClosed
	}
	// Another caller may have prepared the same query while we were waiting
	// on the driver. Borrow the cached statement and drop the duplicate.
	if cached, ok := c.cache.Get(key); ok {
		_ = st.Close()
		return &Stmt{conn: c, key: key, stmt: cached, cached: true}, nil
	}
	canonical, ok := c.cache.Put(key, st)
	if !ok {
		// Caching is disabled: the handle owns the statement outright
		// and its Close really closes it.
		return &Stmt{conn: c, key: key, stmt: st}, nil
	}
	return &Stmt{conn: c, key: key, stmt: canonical, cached: true}, nil
}

// ExecContext prepares query through the cache, executes it with args and
// checks the statement back in.
func (c *Conn) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	stmt, err := c.PrepareContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer stmt.Close()
	return stmt.ExecContext(ctx, args...)
}

// QueryContext prepares query through the cache, executes it with args and
// checks the statement back in. The returned rows stay valid after the
// check-in; database/sql defers the real statement close until the rows
// are drained even if the cache evicts it meanwhile.
func (c *Conn) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	stmt, err := c.PrepareContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer stmt.Close()
	return stmt.QueryContext(ctx, args...)
}

// Stats returns a snapshot of the statement cache counters.
func (c *Conn) Stats() stmtcache.Stats {
	return c.cache.Stats()
}

// ID returns the identifier attached to this connection's log records.
func (c *Conn) ID() string {
	return c.id
}

// Close releases every cached statement and then closes the underlying
// connection, returning it to its pool. Close is idempotent.
func (c *Conn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	c.cache.Clear()
	return c.conn.Close()
}
