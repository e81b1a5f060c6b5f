package pgstmt

import "time"

type Config struct {
	CacheSize         int           `env:"PG_STMT_CACHE_SIZE" envDefault:"512"`     // CacheSize is the target number of named statements kept prepared on the connection. Zero switches to unnamed statements.
	DeallocateTimeout time.Duration `env:"PG_STMT_DEALLOC_TIMEOUT" envDefault:"5s"` // DeallocateTimeout bounds the server round-trip that releases an evicted statement.
}
