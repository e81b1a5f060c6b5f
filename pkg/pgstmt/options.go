package pgstmt

import "log/slog"

// Option configures a Cache.
type Option func(*Cache)

// WithLogger attaches log to the cache. A nil logger is ignored.
func WithLogger(log *slog.Logger) Option {
	return func(c *Cache) {
		if log != nil {
			c.log = log
		}
	}
}
