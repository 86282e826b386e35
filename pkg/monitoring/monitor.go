package monitoring

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_client_requests_total",
			Help: "Total number of outgoing API requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_client_request_duration_seconds",
			Help:    "Duration of outgoing API requests",
			Buckets: []float64{0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "endpoint"},
	)

	RetryCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_client_retries_total",
			Help: "Retries performed by the listing backoff loop",
		},
		[]string{"operation"},
	)
)

func Init() {
	prometheus.MustRegister(RequestCounter)
	prometheus.MustRegister(RequestDuration)
	prometheus.MustRegister(RetryCounter)
}

// Serve exposes /metrics on addr for scraping a long-running client. It
// blocks until the listener fails, so callers run it in a goroutine.
func Serve(addr string) error {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.GET("/metrics", PrometheusHandler())
	return router.Run(addr)
}

func PrometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
