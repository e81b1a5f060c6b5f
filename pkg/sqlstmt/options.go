package sqlstmt

import "log/slog"

// Option configures a wrapped connection.
type Option func(*Conn)

// WithLogger attaches log to the connection and its statement cache.
// A nil logger is ignored.
func WithLogger(log *slog.Logger) Option {
	return func(c *Conn) {
		if log != nil {
			c.log = log
		}
	}
}
