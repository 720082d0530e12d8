package monitoring

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "endpoint"},
	)

	// 匹配引擎
	MatchRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "career_match_operations_total",
			Help: "Matching engine operations by name and outcome",
		},
		[]string{"operation", "status"},
	)

	MatchDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "career_match_operation_duration_seconds",
			Help:    "Duration of matching engine operations",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
		[]string{"operation"},
	)

	FallbackScores = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "career_match_fallback_scores_total",
			Help: "Role scores that were computed with the fallback formula",
		},
	)

	ProfileCacheResults = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "career_match_profile_cache_total",
			Help: "Profile cache lookups by result",
		},
		[]string{"result"},
	)

	CatalogImports = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "career_match_catalog_imports_total",
			Help: "Career catalog imports by source and status",
		},
		[]string{"source", "status"},
	)

	ConfigReloads = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "career_match_config_reloads_total",
			Help: "Matching config hot reloads by status",
		},
		[]string{"status"},
	)
)

var initOnce sync.Once

func Init() {
	initOnce.Do(func() {
		prometheus.MustRegister(
			RequestCounter,
			RequestDuration,
			MatchRequests,
			MatchDuration,
			FallbackScores,
			ProfileCacheResults,
			CatalogImports,
			ConfigReloads,
		)
	})
}

// ObserveOperation 记录一次引擎调用的耗时和结果
func ObserveOperation(operation string, start time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	MatchRequests.WithLabelValues(operation, status).Inc()
	MatchDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		duration := time.Since(start).Seconds()
		status := c.Writer.Status()
		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}

		RequestCounter.WithLabelValues(
			c.Request.Method,
			endpoint,
			strconv.Itoa(status),
		).Inc()

		RequestDuration.WithLabelValues(
			c.Request.Method,
			endpoint,
		).Observe(duration)
	}
}

func PrometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
