package prometheus

import (
	"time"

	"github.com/momen-x/e-commerce-Admin-dashboard/pkg/config"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Authentication metrics
	authErrorsCounter prometheus.Counter

	// Database operation metrics
	dbOperationDuration *prometheus.HistogramVec

	// Domain operation metrics
	storeOperationsCounter   *prometheus.CounterVec
	catalogOperationsCounter *prometheus.CounterVec
	orderOperationsCounter   *prometheus.CounterVec

	// Conflict rejections on delete/insert (foreign key dependencies)
	conflictCounter *prometheus.CounterVec
)

// InitMetrics initializes Prometheus metrics with configuration. The record
// helpers are no-ops until this runs.
func InitMetrics(config *config.Config) {
	prefix := config.Metrics.Prefix

	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	authErrorsCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_auth_errors_total",
			Help: "Total number of authentication errors",
		},
	)

	dbOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_db_operation_duration_seconds",
			Help:    "Duration of database operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation_type"},
	)

	storeOperationsCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_store_operations_total",
			Help: "Total number of store operations",
		},
		[]string{"operation"},
	)

	catalogOperationsCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_catalog_operations_total",
			Help: "Total number of catalog entity operations",
		},
		[]string{"resource", "operation"},
	)

	orderOperationsCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_order_operations_total",
			Help: "Total number of order operations",
		},
		[]string{"operation"},
	)

	conflictCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_conflicts_total",
			Help: "Total number of operations rejected by foreign key dependencies",
		},
		[]string{"resource"},
	)
}

// RecordHTTPRequest records one handled request
func RecordHTTPRequest(method, path, status string, seconds float64) {
	if httpRequestsTotal == nil {
		return
	}
	httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	httpRequestDuration.WithLabelValues(method, path, status).Observe(seconds)
}

// RecordAuthError increments the counter for authentication errors
func RecordAuthError() {
	if authErrorsCounter == nil {
		return
	}
	authErrorsCounter.Inc()
}

// TrackDBOperation returns a function that records the duration of a database operation
func TrackDBOperation(operationType string) func(startTime time.Time) {
	return func(startTime time.Time) {
		if dbOperationDuration == nil {
			return
		}
		duration := time.Since(startTime).Seconds()
		dbOperationDuration.WithLabelValues(operationType).Observe(duration)
	}
}

// RecordStoreOperation increments the counter for store operations
func RecordStoreOperation(operation string) {
	if storeOperationsCounter == nil {
		return
	}
	storeOperationsCounter.WithLabelValues(operation).Inc()
}

// RecordCatalogOperation increments the counter for catalog entity operations
func RecordCatalogOperation(resource, operation string) {
	if catalogOperationsCounter == nil {
		return
	}
	catalogOperationsCounter.WithLabelValues(resource, operation).Inc()
}

// RecordOrderOperation increments the counter for order operations
func RecordOrderOperation(operation string) {
	if orderOperationsCounter == nil {
		return
	}
	orderOperationsCounter.WithLabelValues(operation).Inc()
}

// RecordConflict increments the counter for conflict rejections
func RecordConflict(resource string) {
	if conflictCounter == nil {
		return
	}
	conflictCounter.WithLabelValues(resource).Inc()
}
