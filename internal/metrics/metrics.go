package metrics

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector owns the service's Prometheus registry.
type Collector struct {
	registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	scrapeOutcomes      *prometheus.CounterVec
	generationOutcomes  *prometheus.CounterVec
	mediaAttachments    *prometheus.CounterVec
}

func New(serviceName string) *Collector {
	prefix := strings.ReplaceAll(serviceName, "-", "_")

	c := &Collector{
		registry: prometheus.NewRegistry(),
		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status"},
		),
		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    prefix + "_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),
		scrapeOutcomes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_scrape_outcomes_total",
				Help: "Scrape requests by outcome (ok, degraded, invalid)",
			},
			[]string{"outcome"},
		),
		generationOutcomes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_generation_outcomes_total",
				Help: "Comment generation requests by outcome",
			},
			[]string{"outcome"},
		),
		mediaAttachments: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_media_attachments_total",
				Help: "Media parts attached to generation prompts by kind",
			},
			[]string{"kind"},
		),
	}

	c.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		c.httpRequestsTotal,
		c.httpRequestDuration,
		c.scrapeOutcomes,
		c.generationOutcomes,
		c.mediaAttachments,
	)

	return c
}

func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

func (c *Collector) ScrapeOutcome(outcome string) {
	c.scrapeOutcomes.WithLabelValues(outcome).Inc()
}

func (c *Collector) GenerationOutcome(outcome string) {
	c.generationOutcomes.WithLabelValues(outcome).Inc()
}

func (c *Collector) MediaAttached(kind string) {
	c.mediaAttachments.WithLabelValues(kind).Inc()
}

// Middleware records request counts and latency per route.
func (c *Collector) Middleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		endpoint := ctx.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		method := ctx.Request.Method
		c.httpRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(ctx.Writer.Status())).Inc()
		c.httpRequestDuration.WithLabelValues(method, endpoint).Observe(time.Since(start).Seconds())
	}
}

func (c *Collector) Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{}))
}
