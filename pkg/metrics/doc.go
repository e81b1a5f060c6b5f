// Package metrics exports statement cache counters to Prometheus.
//
// The collector is pull-based: it takes a Stats snapshot from the cache on
// every scrape instead of instrumenting the cache's hot path. Any value
// with a Stats method qualifies as a source, which covers the statement
// cache itself as well as the connection wrappers built on it.
//
//	conn := sqlstmt.Wrap(sqlConn, cfg)
//	prometheus.MustRegister(metrics.NewCacheCollector("orders_db", conn))
//
// The cache name becomes the value of the "cache" label, so several caches
// can publish side by side in one registry.
package metrics
