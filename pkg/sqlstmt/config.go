package sqlstmt

type Config struct {
	CacheSize int `env:"STMT_CACHE_SIZE" envDefault:"64"` // CacheSize is the target number of cached statements per connection. Zero disables caching.
}
