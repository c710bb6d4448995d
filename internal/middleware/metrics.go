package middleware

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"code", "method", "path"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"code", "method", "path"},
	)
)

// MetricsMiddlewareFiber creates a Fiber middleware for collecting Prometheus metrics.
func MetricsMiddlewareFiber() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		statusCode := c.Response().StatusCode()
		if err != nil {
			var fiberError *fiber.Error
			if errors.As(err, &fiberError) {
				statusCode = fiberError.Code
			} else if statusCode == http.StatusOK {
				statusCode = http.StatusInternalServerError
			}
		}

		// Route patterns (e.g. /api/user/:id) keep the label cardinality low.
		path := c.Route().Path
		if path == "" {
			path = c.Path()
		}

		duration := time.Since(start).Seconds()
		httpRequestsTotal.WithLabelValues(strconv.Itoa(statusCode), c.Method(), path).Inc()
		httpRequestDuration.WithLabelValues(strconv.Itoa(statusCode), c.Method(), path).Observe(duration)

		return err
	}
}

// MetricsMiddlewareGin creates a Gin middleware for collecting Prometheus metrics.
func MetricsMiddlewareGin() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		statusCode := c.Writer.Status()

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		duration := time.Since(start).Seconds()
		httpRequestsTotal.WithLabelValues(strconv.Itoa(statusCode), c.Request.Method, path).Inc()
		httpRequestDuration.WithLabelValues(strconv.Itoa(statusCode), c.Request.Method, path).Observe(duration)
	}
}
