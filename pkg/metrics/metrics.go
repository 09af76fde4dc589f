// Package metrics holds the Prometheus collectors of the quote service.
package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry is the dedicated registry exposed on /metrics.
	Registry = prometheus.NewRegistry()

	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "Total HTTP requests."},
		[]string{"method", "path", "status"},
	)
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "http_request_duration_seconds", Help: "HTTP request duration in seconds.", Buckets: prometheus.DefBuckets},
		[]string{"method", "path", "status"},
	)

	// DocumentsGenerated counts quote documents built by the generator.
	DocumentsGenerated = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "quote_documents_generated_total", Help: "Quote documents generated."},
	)
	// ValidationFindings counts validator findings by severity (error, warning, suggestion).
	ValidationFindings = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "quote_validation_findings_total", Help: "Validation findings by severity."},
		[]string{"severity"},
	)
	// Exports counts exporter outcomes by artifact kind.
	Exports = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "quote_exports_total", Help: "Quote exports by kind and outcome."},
		[]string{"kind", "outcome"},
	)
	// DraftsSaved counts persisted wizard drafts by status.
	DraftsSaved = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "draft_quotes_saved_total", Help: "Draft quotes saved by status."},
		[]string{"status"},
	)
)

var regOnce sync.Once

// Register adds every collector to Registry. Safe to call more than once.
func Register() {
	regOnce.Do(func() {
		Registry.MustRegister(HTTPRequests)
		Registry.MustRegister(HTTPDuration)
		Registry.MustRegister(DocumentsGenerated)
		Registry.MustRegister(ValidationFindings)
		Registry.MustRegister(Exports)
		Registry.MustRegister(DraftsSaved)
		Registry.MustRegister(collectors.NewGoCollector())
		Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	})
}

// Handler serves the registry in the Prometheus exposition format.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// GinMiddleware records request count and latency keyed by route template.
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		HTTPRequests.WithLabelValues(c.Request.Method, path, status).Inc()
		HTTPDuration.WithLabelValues(c.Request.Method, path, status).Observe(time.Since(start).Seconds())
	}
}
