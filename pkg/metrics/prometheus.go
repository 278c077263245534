// Package metrics provides Prometheus metrics for the Podium board service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Manager manages all Prometheus metrics for the Podium service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	registry         prometheus.Registerer

	// Feed metrics - payload ingestion health
	payloadFetches     prometheus.Counter
	payloadFetchErrors prometheus.Counter
	payloadRowDefects  prometheus.Counter
	snapshotsPublished prometheus.Counter
	snapshotsDiscarded prometheus.Counter

	// Snapshot state gauges
	entrantsTotal      prometheus.Gauge
	snapshotGeneration prometheus.Gauge
	snapshotLastUnix   prometheus.Gauge

	// Pipeline metrics - view assembly
	pipelineRuns    prometheus.Counter
	pipelineLatency prometheus.Histogram
	emptyResults    prometheus.Counter

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	endpointErrors      *prometheus.CounterVec

	// System metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
	systemGCPauseTime    prometheus.Histogram
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "podium",
		subsystem:        "board",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	factory := func(name, help string) prometheus.Counter {
		c := prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      name,
			Help:      help,
		})
		m.registry.MustRegister(c)
		return c
	}
	gauge := func(name, help string) prometheus.Gauge {
		g := prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      name,
			Help:      help,
		})
		m.registry.MustRegister(g)
		return g
	}
	histogram := func(name, help string) prometheus.Histogram {
		h := prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      name,
			Help:      help,
			Buckets:   m.histogramBuckets,
		})
		m.registry.MustRegister(h)
		return h
	}

	m.payloadFetches = factory("payload_fetches_total", "Total upstream payload fetches")
	m.payloadFetchErrors = factory("payload_fetch_errors_total", "Total failed upstream payload fetches")
	m.payloadRowDefects = factory("payload_row_defects_total", "Total payload rows that required defaulting")
	m.snapshotsPublished = factory("snapshots_published_total", "Total snapshots published to the store")
	m.snapshotsDiscarded = factory("snapshots_discarded_total", "Total stale snapshots discarded by generation")

	m.entrantsTotal = gauge("entrants_total", "Entrants in the current snapshot")
	m.snapshotGeneration = gauge("snapshot_generation", "Generation of the current snapshot")
	m.snapshotLastUnix = gauge("snapshot_last_unix", "Unix time of the last published snapshot")

	m.pipelineRuns = factory("pipeline_runs_total", "Total view pipeline executions")
	m.pipelineLatency = histogram("pipeline_latency_ms", "View pipeline latency in milliseconds")
	m.emptyResults = factory("empty_results_total", "Total pipeline runs that produced zero rows")

	m.httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_requests_total",
		Help:      "Total HTTP requests by endpoint, method, and status",
	}, []string{"endpoint", "method", "status"})
	m.registry.MustRegister(m.httpRequests)

	m.httpRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_request_duration_ms",
		Help:      "HTTP request duration in milliseconds",
		Buckets:   m.histogramBuckets,
	}, []string{"endpoint", "method", "status"})
	m.registry.MustRegister(m.httpRequestDuration)

	m.endpointErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "endpoint_errors_total",
		Help:      "Total HTTP error responses by endpoint and error type",
	}, []string{"endpoint", "method", "error_type"})
	m.registry.MustRegister(m.endpointErrors)

	m.systemMemoryUsage = gauge("system_memory_bytes", "Allocated heap bytes")
	m.systemGoroutineCount = gauge("system_goroutines", "Current goroutine count")
	m.systemGCPauseTime = histogram("system_gc_pause_ms", "Average GC pause time in milliseconds")
}

// Package-level helpers operating on the global manager.

// RecordPayloadFetch increments the payload fetch counter.
func RecordPayloadFetch() {
	if globalManager.enabled {
		globalManager.payloadFetches.Inc()
	}
}

// RecordPayloadFetchError increments the payload fetch error counter.
func RecordPayloadFetchError() {
	if globalManager.enabled {
		globalManager.payloadFetchErrors.Inc()
	}
}

// RecordRowDefects adds the per-payload count of defaulted rows.
func RecordRowDefects(n int) {
	if globalManager.enabled && n > 0 {
		globalManager.payloadRowDefects.Add(float64(n))
	}
}

// RecordSnapshotPublished increments the published snapshot counter.
func RecordSnapshotPublished() {
	if globalManager.enabled {
		globalManager.snapshotsPublished.Inc()
	}
}

// RecordSnapshotDiscarded increments the stale snapshot counter.
func RecordSnapshotDiscarded() {
	if globalManager.enabled {
		globalManager.snapshotsDiscarded.Inc()
	}
}

// UpdateEntrantsTotal sets the entrant count gauge.
func UpdateEntrantsTotal(count int) {
	if globalManager.enabled {
		globalManager.entrantsTotal.Set(float64(count))
	}
}

// UpdateSnapshotGeneration sets the snapshot generation gauge.
func UpdateSnapshotGeneration(gen uint64) {
	if globalManager.enabled {
		globalManager.snapshotGeneration.Set(float64(gen))
	}
}

// UpdateSnapshotLastUnix sets the last snapshot timestamp gauge.
func UpdateSnapshotLastUnix(unix int64) {
	if globalManager.enabled {
		globalManager.snapshotLastUnix.Set(float64(unix))
	}
}

// RecordPipelineRun records one view pipeline execution and its latency.
func RecordPipelineRun(latencyMs float64) {
	if globalManager.enabled {
		globalManager.pipelineRuns.Inc()
		globalManager.pipelineLatency.Observe(latencyMs)
	}
}

// RecordEmptyResult increments the zero-row result counter.
func RecordEmptyResult() {
	if globalManager.enabled {
		globalManager.emptyResults.Inc()
	}
}

// RecordHTTPRequest records an HTTP request by endpoint, method, and status.
func RecordHTTPRequest(endpoint, method, status string) {
	if globalManager.enabled {
		globalManager.httpRequests.WithLabelValues(endpoint, method, status).Inc()
	}
}

// RecordHTTPRequestDuration records an HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, status string, durationMs float64) {
	if globalManager.enabled {
		globalManager.httpRequestDuration.WithLabelValues(endpoint, method, status).Observe(durationMs)
	}
}

// RecordEndpointError records an HTTP error response.
func RecordEndpointError(endpoint, method, errorType string) {
	if globalManager.enabled {
		globalManager.endpointErrors.WithLabelValues(endpoint, method, errorType).Inc()
	}
}

// UpdateSystemMemoryUsage sets the heap usage gauge.
func UpdateSystemMemoryUsage(bytes uint64) {
	if globalManager.enabled {
		globalManager.systemMemoryUsage.Set(float64(bytes))
	}
}

// UpdateSystemGoroutineCount sets the goroutine count gauge.
func UpdateSystemGoroutineCount(count int) {
	if globalManager.enabled {
		globalManager.systemGoroutineCount.Set(float64(count))
	}
}

// RecordSystemGCPauseTime records an average GC pause observation.
func RecordSystemGCPauseTime(pauseMs float64) {
	if globalManager.enabled {
		globalManager.systemGCPauseTime.Observe(pauseMs)
	}
}

// GetRegistry returns the custom registry used by the global manager.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
