package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrymomot/sqlkit/pkg/stmtcache"
)

// StatsSource yields point-in-time statement cache counters.
type StatsSource interface {
	Stats() stmtcache.Stats
}

// CacheCollector implements prometheus.Collector over a statement cache.
type CacheCollector struct {
	src StatsSource

	hits      *prometheus.Desc
	misses    *prometheus.Desc
	evictions *prometheus.Desc
	size      *prometheus.Desc
	pinned    *prometheus.Desc
}

// NewCacheCollector builds a collector that reports src's counters under
// the given cache name. Register it with a prometheus.Registerer; the
// name must be unique within the registry.
func NewCacheCollector(cacheName string, src StatsSource) *CacheCollector {
	labels := prometheus.Labels{"cache": cacheName}
	return &CacheCollector{
		src: src,
		hits: prometheus.NewDesc(
			"sqlkit_stmtcache_hits_total",
			"Total number of statement cache hits.",
			nil, labels,
		),
		misses: prometheus.NewDesc(
			"sqlkit_stmtcache_misses_total",
			"Total number of statement cache misses.",
			nil, labels,
		),
		evictions: prometheus.NewDesc(
			"sqlkit_stmtcache_evictions_total",
			"Total number of statements evicted from the cache, including statements released by Clear.",
			nil, labels,
		),
		size: prometheus.NewDesc(
			"sqlkit_stmtcache_size",
			"Number of statements currently tracked by the cache.",
			nil, labels,
		),
		pinned: prometheus.NewDesc(
			"sqlkit_stmtcache_pinned",
			"Number of cached statements currently checked out.",
			nil, labels,
		),
	}
}

func (c *CacheCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.hits
	ch <- c.misses
	ch <- c.evictions
	ch <- c.size
	ch <- c.pinned
}

func (c *CacheCollector) Collect(ch chan<- prometheus.Metric) {
	stats := c.src.Stats()
	ch <- prometheus.MustNewConstMetric(c.hits, prometheus.CounterValue, float64(stats.Hits))
	ch <- prometheus.MustNewConstMetric(c.misses, prometheus.CounterValue, float64(stats.Misses))
	ch <- prometheus.MustNewConstMetric(c.evictions, prometheus.CounterValue, float64(stats.Evictions))
	ch <- prometheus.MustNewConstMetric(c.size, prometheus.GaugeValue, float64(stats.Size))
	ch <- prometheus.MustNewConstMetric(c.pinned, prometheus.GaugeValue, float64(stats.Pinned))
}
