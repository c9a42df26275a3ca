package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_RecordParse(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.RecordParse("deg")
	m.RecordParse("deg")
	m.RecordParse("invalid")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.parseTotal.WithLabelValues("deg")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.parseTotal.WithLabelValues("dmm")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.parseTotal.WithLabelValues("invalid")))
}

func TestMetrics_Middleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := New(prometheus.NewRegistry())

	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/health", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for _, path := range []string{"/health", "/health", "/missing"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.totalRequest.WithLabelValues("/health", http.MethodGet, "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.totalRequest.WithLabelValues("unmatched", http.MethodGet, "404")))
}
