package pgstmt

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrymomot/sqlkit/pkg/logger"
	"github.com/dmitrymomot/sqlkit/pkg/stmtcache"
)

// Conn is the subset of *pgconn.PgConn the cache drives: preparing named
// statements and releasing them again.
type Conn interface {
	Prepare(ctx context.Context, name, sql string, paramOIDs []uint32) (*pgconn.StatementDescription, error)
	Deallocate(ctx context.Context, name string) error
}

// Cache keeps named prepared statements alive on a single PostgreSQL
// connection. Statements are identified by their SQL text; the server-side
// name is derived from it, so the same text always maps to the same named
// statement. Evicted statements are deallocated on the server.
//
// Like the connection it wraps, a Cache is driven by one goroutine at a
// time. Stats may be read concurrently.
type Cache struct {
	conn           Conn
	cache          *stmtcache.Cache[*pgconn.StatementDescription]
	borrowed       map[*pgconn.StatementDescription]int
	log            *slog.Logger
	deallocTimeout time.Duration
	closed         bool
}

// New wraps conn with a statement cache. With cfg.CacheSize below one the
// cache prepares unnamed statements only, leaving nothing to track or
// deallocate.
func New(conn Conn, cfg Config, opts ...Option) *Cache {
	c := &Cache{
		conn:           conn,
		borrowed:       make(map[*pgconn.StatementDescription]int),
		log:            slog.Default(),
		deallocTimeout: cfg.DeallocateTimeout,
	}
	if c.deallocTimeout <= 0 {
		c.deallocTimeout = 5 * time.Second
	}
	for _, opt := range opts {
		opt(c)
	}
	c.cache = stmtcache.New(cfg.CacheSize, stmtcache.WithLogger[*pgconn.StatementDescription](c.log))
	c.cache.AddEvictionListener(func(sd *pgconn.StatementDescription) {
		ctx, cancel := context.WithTimeout(context.Background(), c.deallocTimeout)
		defer cancel()
		if err := c.conn.Deallocate(ctx, sd.Name); err != nil {
			c.log.Error("failed to deallocate evicted statement",
				logger.StatementName(sd.Name),
				logger.Error(err),
			)
		}
	})
	return c
}

// Prepare returns the statement description for sql, preparing it on the
// connection only when no cached statement exists. The returned statement
// is checked out; pass it to Release when done with it.
func (c *Cache) Prepare(ctx context.Context, sql string) (*pgconn.StatementDescription, error) {
	if c.closed {
		return nil, ErrCacheClosed
	}
	if c.cache.TargetSize() < 1 {
		// Unnamed statements live until the next unnamed parse; the
		// server replaces them for free, so nothing is tracked.
		sd, err := c.conn.Prepare(ctx, "", sql, nil)
		if err != nil {
			return nil, errors.Join(ErrFailedToPrepareStatement, err)
		}
		return sd, nil
	}

	key := stmtcache.NewKey(sql)
	if sd, ok := c.cache.Get(key); ok {
		c.borrowed[sd]++
		return sd, nil
	}

	sd, err := c.conn.Prepare(ctx, StatementName(sql), sql, nil)
	if err != nil {
		return nil, errors.Join(ErrFailedToPrepareStatement, err)
	}
	canonical, _ := c.cache.Put(key, sd)
	c.borrowed[canonical]++
	return canonical, nil
}

// Release checks a prepared statement back into the cache, making it
// evictable once every Prepare of the same SQL has been balanced by a
// Release. Unnamed statements from a disabled cache, descriptions already
// invalidated by Clear or Close, and repeated releases of the same
// checkout are all ignored.
func (c *Cache) Release(sd *pgconn.StatementDescription) {
	if sd == nil || sd.Name == "" {
		return
	}
	if c.borrowed[sd] == 0 {
		return
	}
	if c.borrowed[sd] == 1 {
		delete(c.borrowed, sd)
	} else {
		c.borrowed[sd]--
	}
	c.cache.Put(stmtcache.NewKey(sd.SQL), sd)
}

// Clear deallocates every cached statement, checked out or not, and
// invalidates every outstanding description. Use it when the server
// invalidates prepared plans, for example after a schema migration
// surfaced through IsInvalidCachedPlan; drop any descriptions still held
// and re-prepare them.
func (c *Cache) Clear() {
	clear(c.borrowed)
	c.cache.Clear()
}

// Close tears the cache down: every statement is deallocated and further
// Prepare calls fail with ErrCacheClosed. The wrapped connection itself
// stays open; closing it is the owner's job. Close is idempotent.
func (c *Cache) Close() {
	if c.closed {
		return
	}
	c.closed = true
	c.Clear()
}

// Len returns the number of statements currently tracked.
func (c *Cache) Len() int {
	return c.cache.Len()
}

// Stats returns a snapshot of the cache counters.
func (c *Cache) Stats() stmtcache.Stats {
	return c.cache.Stats()
}

// StatementName derives the server-side name for sql. The name is a
// digest of the text, so repeated preparations of the same SQL reuse one
// named statement and never collide with other texts.
func StatementName(sql string) string {
	digest := sha256.Sum256([]byte(sql))
	return "sqlkit_" + hex.EncodeToString(digest[0:24])
}
