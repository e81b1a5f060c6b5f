package stmtcache

// Stats is a point-in-time snapshot of cache activity.
type Stats struct {
	// Hits counts lookups that delivered a cached statement. Every hit
	// pins its entry until the matching check-in.
	Hits uint64
	// Misses counts lookups that found nothing.
	Misses uint64
	// Evictions counts statements removed from the cache, by the eviction
	// scan and by Clear alike.
	Evictions uint64
	// Size is the number of statements currently tracked.
	Size int
	// Pinned is the number of tracked statements with at least one
	// outstanding checkout.
	Pinned int
}

// Stats returns a consistent snapshot of the cache's counters.
func (c *Cache[S]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	pinned := 0
	for el := c.order.Front(); el != nil; el = el.Next() {
		if el.Value.(*entry[S]).usage > 0 {
			pinned++
		}
	}
	return Stats{
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
		Size:      c.size,
		Pinned:    pinned,
	}
}
