package handler

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
)

// Metrics holds all Prometheus collectors for the backend.
var Metrics = struct {
	IngestionsTotal   *prometheus.CounterVec
	IngestionDuration prometheus.Histogram
	VideosCollected   prometheus.Counter
	ToolCallsTotal    *prometheus.CounterVec
	RequestDuration   *prometheus.HistogramVec
	RequestsInFlight  prometheus.Gauge
	DBPoolActive      prometheus.GaugeFunc
	DBPoolIdle        prometheus.GaugeFunc
}{}

// InitMetrics registers all Prometheus metrics. Call once at startup.
func InitMetrics(pool *pgxpool.Pool) {
	Metrics.IngestionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "channelchat_ingestions_total",
			Help: "Total channel downloads, by outcome.",
		},
		[]string{"outcome"},
	)

	Metrics.IngestionDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "channelchat_ingestion_duration_seconds",
			Help:    "Duration of successful channel downloads.",
			Buckets: []float64{1, 2.5, 5, 10, 20, 40, 80, 120},
		},
	)

	Metrics.VideosCollected = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "channelchat_videos_collected_total",
			Help: "Total videos collected across all downloads.",
		},
	)

	Metrics.ToolCallsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "channelchat_tool_calls_total",
			Help: "Total analytics tool invocations, by tool and outcome.",
		},
		[]string{"tool", "outcome"},
	)

	Metrics.RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "channelchat_api_request_duration_seconds",
			Help:    "HTTP request duration in seconds, by endpoint and method.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint", "method", "status"},
	)

	Metrics.RequestsInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "channelchat_requests_in_flight",
			Help: "Number of HTTP requests currently being served.",
		},
	)

	// DB pool gauges read live stats from pgxpool
	if pool != nil {
		Metrics.DBPoolActive = prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Name: "channelchat_db_connection_pool_active",
				Help: "Number of active database connections.",
			},
			func() float64 {
				return float64(pool.Stat().AcquiredConns())
			},
		)

		Metrics.DBPoolIdle = prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Name: "channelchat_db_connection_pool_idle",
				Help: "Number of idle database connections.",
			},
			func() float64 {
				return float64(pool.Stat().IdleConns())
			},
		)

		prometheus.MustRegister(Metrics.DBPoolActive)
		prometheus.MustRegister(Metrics.DBPoolIdle)
	}

	prometheus.MustRegister(
		Metrics.IngestionsTotal,
		Metrics.IngestionDuration,
		Metrics.VideosCollected,
		Metrics.ToolCallsTotal,
		Metrics.RequestDuration,
		Metrics.RequestsInFlight,
	)
}

// MetricsMiddleware records request duration and in-flight count for Prometheus.
func MetricsMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		// Don't instrument the /metrics endpoint itself
		if c.Path() == "/metrics" {
			return c.Next()
		}

		// Copy path and method into owned strings BEFORE c.Next() — Fiber
		// returns slices backed by the fasthttp buffer which can be reused
		// or overwritten by handlers (especially fasthttpadaptor).
		path := string([]byte(c.Path()))
		method := string([]byte(c.Method()))
		endpoint := sanitizeEndpoint(path)

		Metrics.RequestsInFlight.Inc()
		start := time.Now()

		err := c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Response().StatusCode())

		Metrics.RequestDuration.WithLabelValues(endpoint, method, status).Observe(duration)
		Metrics.RequestsInFlight.Dec()

		return err
	}
}

// sanitizeEndpoint normalizes paths to avoid cardinality explosion.
func sanitizeEndpoint(path string) string {
	switch {
	case strings.HasPrefix(path, "/api/sessions/"):
		rest := path[len("/api/sessions/"):]
		if strings.HasSuffix(rest, "/messages") {
			return "/api/sessions/:sessionId/messages"
		}
		return "/api/sessions/:sessionId"
	case strings.HasPrefix(path, "/api/users/") && path != "/api/users/login":
		return "/api/users/:username"
	default:
		return path
	}
}

// MetricsHandler serves the Prometheus /metrics endpoint via Fiber.
func MetricsHandler() fiber.Handler {
	httpHandler := fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler())
	return func(c fiber.Ctx) error {
		httpHandler(c.RequestCtx())
		return nil
	}
}
