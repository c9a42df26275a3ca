package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the prometheus collectors of the API.
type Metrics struct {
	parseTotal   *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	totalRequest *prometheus.CounterVec
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		parseTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "latlng",
			Name:      "parse_total",
			Help:      "The total number of analyzed coordinate inputs, by detected format",
		}, []string{"format"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "latlng",
			Name:      "request_duration_seconds",
			Help:      "The duration of request",
			Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"method", "path"}),
		totalRequest: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "latlng",
			Name:      "total_requests",
			Help:      "The total number of requests",
		}, []string{"path", "method", "status"}),
	}
	reg.MustRegister(m.parseTotal, m.httpDuration, m.totalRequest)
	return m
}

// RecordParse counts one analyzed input. format is "deg", "dmm" or "invalid".
func (m *Metrics) RecordParse(format string) {
	m.parseTotal.WithLabelValues(format).Inc()
}

// Middleware records request duration and status for every route.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.httpDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
		m.totalRequest.WithLabelValues(path, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
	}
}
