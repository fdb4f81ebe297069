package telemetry

import (
	"net/http"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	once sync.Once

	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "jobdeck_http_requests_total", Help: "HTTP requests by method, route and status"},
		[]string{"method", "route", "status"},
	)
	JobsCreated       = prometheus.NewCounter(prometheus.CounterOpts{Name: "jobdeck_jobs_created_total", Help: "Jobs created"})
	ActivitiesCreated = prometheus.NewCounter(prometheus.CounterOpts{Name: "jobdeck_activities_created_total", Help: "Activities created"})
)

// Handler exposes the /metrics HTTP handler with a singleton registry.
func Handler() http.Handler {
	once.Do(func() {
		prometheus.MustRegister(
			RequestCounter,
			JobsCreated,
			ActivitiesCreated,
		)
	})
	return promhttp.Handler()
}

// RequestMetrics counts every request after it completes.
func RequestMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		RequestCounter.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
	}
}
