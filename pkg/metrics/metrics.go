package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics
	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"service", "method", "path", "status"},
	)

	HttpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "method", "path", "status"},
	)

	HttpRequestsInFlight = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Current number of HTTP requests being processed",
		},
		[]string{"service"},
	)

	// Timing data provider
	ProviderRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "provider_requests_total",
			Help: "Total number of calls to the timing data provider",
		},
		[]string{"operation", "status"},
	)

	ProviderRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "provider_request_duration_seconds",
			Help:    "Timing data provider call duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"operation"},
	)

	SampleFallbacksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sample_fallbacks_total",
			Help: "Total number of responses served from synthesized sample data",
		},
		[]string{"operation"},
	)

	// Response cache
	CacheHitsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Total number of response cache hits",
		},
		[]string{"tier"},
	)

	CacheMissesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Total number of response cache misses",
		},
		[]string{"tier"},
	)

	// Language model
	LLMRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "llm_requests_total",
			Help: "Total number of insight generations by outcome",
		},
		[]string{"outcome"},
	)

	WebSocketConnectionsGauge = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "websocket_connections_total",
			Help: "Current number of active WebSocket connections",
		},
		[]string{"service"},
	)

	DatabaseQueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "database_queries_total",
			Help: "Total number of database queries",
		},
		[]string{"service", "operation", "status"},
	)

	DatabaseQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "database_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "operation"},
	)
)

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

// RecordHTTPMetrics records HTTP request metrics
func RecordHTTPMetrics(service, method, path string, statusCode int, duration time.Duration) {
	status := strconv.Itoa(statusCode)
	HttpRequestsTotal.WithLabelValues(service, method, path, status).Inc()
	HttpRequestDuration.WithLabelValues(service, method, path, status).Observe(duration.Seconds())
}

// RecordProviderCall records a single timing data provider call.
func RecordProviderCall(operation string, err error, duration time.Duration) {
	ProviderRequestsTotal.WithLabelValues(operation, status(err)).Inc()
	ProviderRequestDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordFallback counts a response that was filled with sample data.
func RecordFallback(operation string) {
	SampleFallbacksTotal.WithLabelValues(operation).Inc()
}

// RecordCacheLookup records a cache hit or miss for the given tier.
func RecordCacheLookup(tier string, hit bool) {
	if hit {
		CacheHitsTotal.WithLabelValues(tier).Inc()
		return
	}
	CacheMissesTotal.WithLabelValues(tier).Inc()
}

// RecordLLMOutcome records how an insight generation ended (llm, missing_key, error, malformed).
func RecordLLMOutcome(outcome string) {
	LLMRequestsTotal.WithLabelValues(outcome).Inc()
}

// RecordDatabaseQuery records database query metrics
func RecordDatabaseQuery(service, operation string, err error, duration time.Duration) {
	DatabaseQueriesTotal.WithLabelValues(service, operation, status(err)).Inc()
	DatabaseQueryDuration.WithLabelValues(service, operation).Observe(duration.Seconds())
}
