package stmtcache

import "log/slog"

// Option configures a Cache.
type Option[S any] func(*Cache[S])

// WithLogger sets the logger used for debug tracing and contract-violation
// warnings. Nil loggers are ignored; the default is slog.Default().
func WithLogger[S any](log *slog.Logger) Option[S] {
	return func(c *Cache[S]) {
		if log != nil {
			c.log = log
		}
	}
}
