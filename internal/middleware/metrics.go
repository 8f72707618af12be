package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	chatRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "govchat_requests_total",
		Help: "Total number of chat requests by resolution stage and outcome",
	}, []string{"stage", "success"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "govchat_http_request_duration_seconds",
		Help:    "Duration of HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"path", "method"})

	llmRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "govchat_llm_request_duration_seconds",
		Help:    "Duration of LLM completion requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"status"})

	cacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "govchat_cache_hits_total",
		Help: "Total number of answer cache hits",
	})

	cacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "govchat_cache_misses_total",
		Help: "Total number of answer cache misses",
	})

	rateLimitRejections = promauto.NewCounter(prometheus.CounterOpts{
		Name: "govchat_rate_limit_rejections_total",
		Help: "Total number of requests rejected by the rate limiter",
	})
)

// Metrics provides methods to record metrics
type Metrics struct{}

// NewMetrics creates a new metrics instance
func NewMetrics() *Metrics {
	return &Metrics{}
}

// RecordChatResolution records which pipeline stage resolved a request
func (m *Metrics) RecordChatResolution(stage string, success bool) {
	chatRequestsTotal.WithLabelValues(stage, strconv.FormatBool(success)).Inc()
}

// RecordLLMRequest records an LLM completion attempt
func (m *Metrics) RecordLLMRequest(status string, duration time.Duration) {
	llmRequestDuration.WithLabelValues(status).Observe(duration.Seconds())
}

// RecordCacheHit records an answer cache hit
func (m *Metrics) RecordCacheHit() {
	cacheHits.Inc()
}

// RecordCacheMiss records an answer cache miss
func (m *Metrics) RecordCacheMiss() {
	cacheMisses.Inc()
}

// RecordRateLimited records a request rejected by the rate limiter
func (m *Metrics) RecordRateLimited() {
	rateLimitRejections.Inc()
}

// Handler exposes the prometheus scrape endpoint
func Handler() http.Handler {
	return promhttp.Handler()
}

// Instrument wraps an http.Handler and records request durations
func Instrument(path string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next(w, r)
		httpRequestDuration.WithLabelValues(path, r.Method).Observe(time.Since(start).Seconds())
	}
}
