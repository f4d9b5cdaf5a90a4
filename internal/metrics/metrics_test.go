package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectorCounters(t *testing.T) {
	c := New("socialsense-test")

	c.ScrapeOutcome("ok")
	c.ScrapeOutcome("degraded")
	c.ScrapeOutcome("degraded")
	c.GenerationOutcome("ok")
	c.MediaAttached("video")

	assert.Equal(t, 2.0, testutil.ToFloat64(c.scrapeOutcomes.WithLabelValues("degraded")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.scrapeOutcomes.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.generationOutcomes.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.mediaAttachments.WithLabelValues("video")))
}

func TestCollectorMiddlewareAndHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c := New("socialsense")

	r := gin.New()
	r.Use(c.Middleware())
	r.GET("/ping", func(ctx *gin.Context) { ctx.String(http.StatusOK, "pong") })
	r.GET("/metrics", c.Handler())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, 1.0, testutil.ToFloat64(c.httpRequestsTotal.WithLabelValues("GET", "/ping", "200")))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "socialsense_http_requests_total")
}
