// Package metrics exposes Prometheus collectors for the catalog server.
//
// Collectors are package level and always safe to record into. They are
// only exported once Register has been called with a registry.
package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "pharmacatalog"

var (
	// RequestCounter counts HTTP requests by route pattern and status.
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	// RequestDuration records request latency in seconds.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// CatalogReads counts catalog loads by the tier that served them.
	CatalogReads = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "catalog_reads_total",
			Help:      "Catalog reads by serving source (local, primary, seed)",
		},
		[]string{"source"},
	)

	// CatalogFallbacks counts tiers skipped during a read because they failed.
	CatalogFallbacks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "catalog_read_fallbacks_total",
			Help:      "Storage tiers that errored during a catalog read",
		},
		[]string{"source"},
	)

	// CatalogSize is the number of products in the last catalog read.
	CatalogSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "catalog_products",
			Help:      "Number of products in the most recently served catalog",
		},
	)

	// Uploads counts catalog uploads by write target and outcome.
	Uploads = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "catalog_uploads_total",
			Help:      "Catalog uploads by target and outcome",
		},
		[]string{"target", "outcome"},
	)

	// PrimaryOps records primary store call latency by backend and operation.
	PrimaryOps = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "primary_op_duration_seconds",
			Help:      "Duration of primary store operations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"backend", "op", "outcome"},
	)
)

var registerOnce sync.Once

// Register adds every collector to reg. Only the first call has an effect.
func Register(reg prometheus.Registerer) {
	registerOnce.Do(func() {
		reg.MustRegister(
			RequestCounter,
			RequestDuration,
			CatalogReads,
			CatalogFallbacks,
			CatalogSize,
			Uploads,
			PrimaryOps,
		)
	})
}

// Handler serves the default registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Outcome labels an operation result.
func Outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

// ObserveRead records a catalog read served by source with n products.
func ObserveRead(source string, n int) {
	CatalogReads.WithLabelValues(source).Inc()
	CatalogSize.Set(float64(n))
}

// ObserveFallback records that source failed during a read.
func ObserveFallback(source string) {
	CatalogFallbacks.WithLabelValues(source).Inc()
}

// ObserveUpload records an upload attempt against target.
func ObserveUpload(target string, err error) {
	Uploads.WithLabelValues(target, Outcome(err)).Inc()
}

// ObservePrimary records one primary store call started at start.
func ObservePrimary(backend, op string, start time.Time, err error) {
	PrimaryOps.WithLabelValues(backend, op, Outcome(err)).Observe(time.Since(start).Seconds())
}

// Middleware records request count and latency per chi route pattern.
// Unmatched requests are labelled "unmatched" to keep cardinality bounded.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		RequestCounter.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		RequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}
