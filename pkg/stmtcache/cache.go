package stmtcache

import (
	"container/list"
	"context"
	"log/slog"
	"sync"
)

// entry tracks one cached statement together with its pin count and its
// position in the recency list.
type entry[S any] struct {
	key   Key
	stmt  S
	usage int
	elem  *list.Element
}

// Cache is a soft-bounded LRU cache of prepared-statement handles with
// usage-count pinning and eviction listeners. One instance serves one
// physical connection; all methods are safe for concurrent use.
//
// S is the statement handle type the cache tracks. The cache never calls
// into it, so any type works: *sql.Stmt, a driver's statement descriptor,
// or a test double.
type Cache[S any] struct {
	mu      sync.Mutex
	buckets map[string][]*entry[S] // sql text -> entries sharing that text
	order   *list.List             // front = most recently used, back = least
	size    int
	target  int

	hits      uint64
	misses    uint64
	evictions uint64

	log *slog.Logger
	reg registry[S]
}

// New creates a cache that aims to keep at most targetSize statements.
// The target is soft: the cache grows past it while every entry is checked
// out and shrinks back as entries are returned. A targetSize below one
// disables caching entirely; Put then tracks nothing and tells the caller
// so via its second return value.
func New[S any](targetSize int, opts ...Option[S]) *Cache[S] {
	c := &Cache[S]{
		buckets: make(map[string][]*entry[S]),
		order:   list.New(),
		target:  targetSize,
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get looks up the statement cached under key and checks it out. On a hit
// the entry's usage count rises by one, the entry becomes the most
// recently used, and the cached handle is returned. The caller must
// balance every hit with exactly one Put for the same key. A miss has no
// side effects.
func (c *Cache[S]) Get(key Key) (S, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e := c.lookup(key); e != nil {
		e.usage++
		c.order.MoveToFront(e.elem)
		c.hits++
		if c.log.Enabled(context.Background(), slog.LevelDebug) {
			c.log.Debug("statement delivered from cache",
				slog.String("statement", key.String()),
				slog.Int("usage_count", e.usage),
			)
		}
		return e.stmt, true
	}

	c.misses++
	var zero S
	return zero, false
}

// Put inserts a freshly prepared statement or checks a borrowed one back
// in, depending on whether key is already tracked.
//
// For an untracked key the supplied handle becomes the canonical cached
// one, checked out by the caller (usage count one). For a tracked key the
// call is a check-in: the usage count drops by one and the canonical
// cached handle is returned — the argument is discarded, since a matching
// Get must have produced it in the first place.
//
// The returned bool is false only when caching is disabled (target size
// below one); the cache then tracks nothing and the caller stays
// responsible for closing the statement itself.
//
// When the tracked size ends up above the target, unpinned entries are
// evicted oldest-first and their eviction notifications fire before Put
// returns.
func (c *Cache[S]) Put(key Key, stmt S) (S, bool) {
	if c.target < 1 {
		var zero S
		return zero, false
	}

	c.mu.Lock()
	if e := c.lookup(key); e != nil {
		if e.usage > 0 {
			e.usage--
		} else {
			c.log.Warn("statement checked in without a matching checkout",
				slog.String("statement", key.String()),
			)
		}
		c.order.MoveToFront(e.elem)
		stmt = e.stmt
		if c.log.Enabled(context.Background(), slog.LevelDebug) {
			c.log.Debug("statement returned to cache",
				slog.String("statement", key.String()),
				slog.Int("usage_count", e.usage),
			)
		}
	} else {
		e := &entry[S]{key: key, stmt: stmt, usage: 1}
		e.elem = c.order.PushFront(e)
		c.buckets[key.sql] = append(c.buckets[key.sql], e)
		c.size++
		if c.log.Enabled(context.Background(), slog.LevelDebug) {
			c.log.Debug("statement added to cache",
				slog.String("statement", key.String()),
				slog.Int("size", c.size),
			)
		}
	}

	var evicted []S
	if c.size > c.target {
		evicted = c.evictLocked()
	}
	c.mu.Unlock()

	c.notify(evicted)
	return stmt, true
}

// Clear unconditionally removes every entry, pinned or not, and fires one
// eviction notification per entry. It is a forced teardown for connection
// close; it does not wait for outstanding checkouts.
func (c *Cache[S]) Clear() {
	c.mu.Lock()
	cleared := make([]S, 0, c.size)
	for el := c.order.Back(); el != nil; el = el.Prev() {
		cleared = append(cleared, el.Value.(*entry[S]).stmt)
	}
	c.buckets = make(map[string][]*entry[S])
	c.order.Init()
	c.size = 0
	c.evictions += uint64(len(cleared))
	c.mu.Unlock()

	if len(cleared) > 0 {
		c.log.Debug("cache cleared", slog.Int("evicted", len(cleared)))
	}
	c.notify(cleared)
}

// Len returns the number of statements currently tracked.
func (c *Cache[S]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.size
}

// TargetSize returns the configured soft size target.
func (c *Cache[S]) TargetSize() int {
	return c.target
}

// lookup finds the entry equal to key, resolving same-SQL collisions by
// full key equality. Caller must hold mu.
func (c *Cache[S]) lookup(key Key) *entry[S] {
	for _, e := range c.buckets[key.sql] {
		if e.key.Equal(key) {
			return e
		}
	}
	return nil
}

// evictLocked scans from the least recently used end and removes unpinned
// entries until the size target is met. Pinned entries are skipped in
// place and keep their recency position; if everything is pinned the cache
// simply stays above target. Caller must hold mu; the removed statements
// are returned for notification outside the lock.
func (c *Cache[S]) evictLocked() []S {
	var evicted []S
	for el := c.order.Back(); el != nil && c.size > c.target; {
		prev := el.Prev()
		e := el.Value.(*entry[S])
		if e.usage == 0 {
			c.removeLocked(e)
			c.evictions++
			evicted = append(evicted, e.stmt)
			if c.log.Enabled(context.Background(), slog.LevelDebug) {
				c.log.Debug("statement evicted from cache",
					slog.String("statement", e.key.String()),
					slog.Int("size", c.size),
				)
			}
		}
		el = prev
	}
	return evicted
}

// removeLocked unlinks e from the recency list and its bucket. Caller
// must hold mu.
func (c *Cache[S]) removeLocked(e *entry[S]) {
	c.order.Remove(e.elem)
	bucket := c.buckets[e.key.sql]
	for i, be := range bucket {
		if be == e {
			bucket = append(bucket[:i], bucket[i+1:]...)
			break
		}
	}
	if len(bucket) == 0 {
		delete(c.buckets, e.key.sql)
	} else {
		c.buckets[e.key.sql] = bucket
	}
	c.size--
}
