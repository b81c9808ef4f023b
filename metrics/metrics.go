// Package metrics registers the Prometheus metrics of the file gallery and
// provides the HTTP middleware that records per-request counts and
// latencies.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "filegallery_http_requests_total",
			Help: "Total HTTP requests handled",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "filegallery_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
)

// Business metrics, updated from the handlers.
var (
	UploadsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "filegallery_uploads_total",
		Help: "Total accepted uploads",
	})

	UploadedBytes = promauto.NewCounter(prometheus.CounterOpts{
		Name: "filegallery_uploaded_bytes_total",
		Help: "Total bytes accepted through uploads",
	})

	DeletesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "filegallery_deletes_total",
		Help: "Total deleted files",
	})
)

// Middleware records request count and latency per route. The route
// template is used as the path label so stored filenames never blow up the
// label cardinality.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())

		httpRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		httpRequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}
