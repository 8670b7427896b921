package middleware

import (
	"strconv"
	"time"

	"salon-booking/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// MetricsMiddleware records request counts and latency per route template, so
// /api/reservations/:id stays one series however many ids are seen.
func MetricsMiddleware(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		method := c.Request.Method
		m.HTTPRequests.WithLabelValues(method, path, strconv.Itoa(c.Writer.Status())).Inc()
		m.HTTPDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
	}
}
