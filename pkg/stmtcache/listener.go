package stmtcache

import (
	"log/slog"
	"sync"
)

// EvictionListener receives every statement the cache lets go of, whether
// through the eviction scan or through Clear. Ownership of the statement
// transfers to the listeners; the conventional listener closes it.
type EvictionListener[S any] func(stmt S)

// Listener is the registration handle returned by AddEvictionListener.
// It identifies the registration for later removal.
type Listener[S any] struct {
	fn EvictionListener[S]
}

// registry keeps eviction listeners behind their own lock so registration
// never contends with the cache mutex and notification never observes a
// half-mutated list. Mutations copy the slice; firing iterates an
// immutable snapshot.
type registry[S any] struct {
	mu        sync.RWMutex
	listeners []*Listener[S]
}

func (r *registry[S]) add(fn EvictionListener[S]) *Listener[S] {
	l := &Listener[S]{fn: fn}
	r.mu.Lock()
	defer r.mu.Unlock()
	next := make([]*Listener[S], 0, len(r.listeners)+1)
	next = append(next, r.listeners...)
	next = append(next, l)
	r.listeners = next
	return l
}

func (r *registry[S]) remove(l *Listener[S]) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, cur := range r.listeners {
		if cur == l {
			next := make([]*Listener[S], 0, len(r.listeners)-1)
			next = append(next, r.listeners[:i]...)
			next = append(next, r.listeners[i+1:]...)
			r.listeners = next
			return
		}
	}
}

func (r *registry[S]) snapshot() []*Listener[S] {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.listeners
}

// AddEvictionListener registers fn and returns its handle. Listeners may
// be added and removed concurrently with evictions; a registration made
// while a notification round is in flight takes effect from the next
// round. A nil fn is ignored and yields a nil handle.
func (c *Cache[S]) AddEvictionListener(fn EvictionListener[S]) *Listener[S] {
	if fn == nil {
		return nil
	}
	return c.reg.add(fn)
}

// RemoveEvictionListener drops a previously added listener. Removing a
// handle that was never registered, or was already removed, is a no-op.
func (c *Cache[S]) RemoveEvictionListener(l *Listener[S]) {
	if l == nil {
		return
	}
	c.reg.remove(l)
}

// notify fires one eviction notification per statement, oldest first,
// to every listener registered at the start of the round. It runs after
// the cache mutex is released, so listeners may touch connection state or
// call back into the cache without deadlocking.
func (c *Cache[S]) notify(stmts []S) {
	if len(stmts) == 0 {
		return
	}
	listeners := c.reg.snapshot()
	if len(listeners) == 0 {
		return
	}
	for _, stmt := range stmts {
		for _, l := range listeners {
			c.fire(l, stmt)
		}
	}
}

// fire invokes a single listener, containing any panic so the remaining
// listeners and the surrounding operation still complete.
func (c *Cache[S]) fire(l *Listener[S], stmt S) {
	defer func() {
		if r := recover(); r != nil {
			c.log.Error("eviction listener panicked", slog.Any("panic", r))
		}
	}()
	l.fn(stmt)
}
