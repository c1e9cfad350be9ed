package middleware

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	metricsOnce sync.Once

	httpRequestsTotal      *prometheus.CounterVec
	httpRequestDuration    *prometheus.HistogramVec
	decorateRendersTotal   *prometheus.CounterVec
	decorateRenderDuration *prometheus.HistogramVec
)

func initMetrics() {
	metricsOnce.Do(func() {
		httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "showcase",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests handled",
		}, []string{"method", "path", "status"})

		httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "showcase",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP request handling",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path"})

		decorateRendersTotal = promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "showcase",
			Subsystem: "decorate",
			Name:      "renders_total",
			Help:      "Total block decoration renders",
		}, []string{"type", "status"})

		decorateRenderDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "showcase",
			Subsystem: "decorate",
			Name:      "render_duration_seconds",
			Help:      "Duration of block decoration renders",
			Buckets:   prometheus.DefBuckets,
		}, []string{"type"})
	})
}

// MetricsMiddleware records request counts and latencies per route.
func MetricsMiddleware() gin.HandlerFunc {
	initMetrics()

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		httpRequestsTotal.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		httpRequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}

// ObserveRender records the outcome of a single block render.
func ObserveRender(blockType, status string, elapsed time.Duration) {
	initMetrics()
	decorateRendersTotal.WithLabelValues(blockType, status).Inc()
	decorateRenderDuration.WithLabelValues(blockType).Observe(elapsed.Seconds())
}
