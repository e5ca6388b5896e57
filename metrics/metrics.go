package metrics

import (
	"log"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsPrefix is the prefix used for all metrics
const MetricsPrefix = "market_fetcher_"

// Service constants
const (
	ServiceMarkets = "markets"
)

var (
	// Upstream request counter per service
	// Cardinality: ~3 (success, error, rate_limited)
	CoingeckoRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricsPrefix + "coingecko_requests_total",
			Help: "Total number of HTTP requests to the CoinGecko API per service",
		},
		[]string{"service", "status"},
	)

	// Retry attempts counter
	ServiceRetryCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricsPrefix + "retry_attempts_total",
			Help: "Total number of retry attempts per service",
		},
		[]string{"service"},
	)

	// Cache lookup counter
	// Cardinality: ~2 (hit, miss)
	CacheLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricsPrefix + "cache_lookups_total",
			Help: "Total number of cache lookups per service by outcome",
		},
		[]string{"service", "outcome"},
	)

	// Fetch operation duration per service
	FetchDurationHistogram = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: MetricsPrefix + "fetch_duration_seconds",
			Help: "Time taken to serve a fetch operation, cache hits included",
		},
		[]string{"service", "operation"},
	)
)

// RecordFetchDuration measures and records the duration of a fetch operation
func RecordFetchDuration(service, operation string, start time.Time) {
	duration := time.Since(start)
	FetchDurationHistogram.WithLabelValues(service, operation).Observe(duration.Seconds())
	log.Printf("Metrics: %s %s took %.2fs", service, operation, duration.Seconds())
}

// MetricsWriter provides a unified interface for recording service metrics
type MetricsWriter struct {
	serviceName string
}

// NewMetricsWriter creates a new MetricsWriter for the specified service
func NewMetricsWriter(serviceName string) *MetricsWriter {
	return &MetricsWriter{
		serviceName: serviceName,
	}
}

// GetServiceName returns the service name
func (mw *MetricsWriter) GetServiceName() string {
	return mw.serviceName
}

// RecordCacheHit records a cache lookup that was served from the cache
func (mw *MetricsWriter) RecordCacheHit() {
	CacheLookupsTotal.WithLabelValues(mw.serviceName, "hit").Inc()
}

// RecordCacheMiss records a cache lookup that went to the upstream
func (mw *MetricsWriter) RecordCacheMiss() {
	CacheLookupsTotal.WithLabelValues(mw.serviceName, "miss").Inc()
}

// Implement coingecko.StatusHandler for MetricsWriter
// OnRequest records an HTTP request with its status
func (mw *MetricsWriter) OnRequest(status string) {
	CoingeckoRequestsTotal.WithLabelValues(mw.serviceName, status).Inc()
}

// OnRetry records an HTTP retry attempt
func (mw *MetricsWriter) OnRetry() {
	ServiceRetryCounter.WithLabelValues(mw.serviceName).Inc()
	log.Printf("Metrics: %s recorded a retry attempt", mw.serviceName)
}
