package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Generate pipeline
	GenerateRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sitegen_generate_requests_total",
			Help: "Generate requests by outcome",
		},
		[]string{"result"}, // result: ok|invalid|ai_error
	)
	AIRequestDurationSeconds = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "sitegen_ai_request_duration_seconds",
			Help:    "Duration of site plan requests to the AI service",
			Buckets: prometheus.ExponentialBuckets(0.25, 2, 8), // 0.25s..32s
		},
	)
	GeneratedFiles = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sitegen_generated_files_total",
			Help: "Files emitted by the code generator",
		},
		[]string{"flavor", "file_type"},
	)

	// Export
	ExportArchiveBytes = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "sitegen_export_archive_bytes",
			Help:    "Size of exported zip archives",
			Buckets: prometheus.ExponentialBuckets(1024, 4, 8), // 1KiB..16MiB
		},
	)

	// HTTP
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sitegen_http_requests_total",
			Help: "HTTP requests by route and status",
		},
		[]string{"method", "path", "status"},
	)
)

func init() {
	prometheus.MustRegister(
		GenerateRequests,
		AIRequestDurationSeconds,
		GeneratedFiles,
		ExportArchiveBytes,
		HTTPRequests,
	)
}

func IncGenerateRequest(result string) {
	GenerateRequests.WithLabelValues(result).Inc()
}

func ObserveAIRequest(d time.Duration) {
	AIRequestDurationSeconds.Observe(d.Seconds())
}

func IncGeneratedFile(flavor, fileType string) {
	GeneratedFiles.WithLabelValues(flavor, fileType).Inc()
}

func ObserveArchiveSize(n int) {
	ExportArchiveBytes.Observe(float64(n))
}

// Handler serves the default registry.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}

// Middleware counts requests by matched route so path parameters do not
// explode label cardinality.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		HTTPRequests.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
	}
}
