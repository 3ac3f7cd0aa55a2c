package server

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/pfeilbach/svgantt/pkg/observability"
)

var (
	// HTTP request latency
	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "svgantt_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)

	// Pipeline stage latency
	stageDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "svgantt_stage_duration_seconds",
			Help:    "Pipeline stage duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 14), // 0.1ms to ~1.6s
		},
		[]string{"stage", "status"}, // stage: parse, layout, render
	)

	// Rendered artifact count
	rendersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "svgantt_renders_total",
			Help: "Total rendered artifacts",
		},
		[]string{"format", "status"}, // status: ok, error
	)

	// Cache activity
	cacheEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "svgantt_cache_events_total",
			Help: "Cache hits, misses, and writes by key type",
		},
		[]string{"key_type", "event"}, // key_type: layout, artifact
	)
)

// registerMetricsHooks installs Prometheus-backed observability hooks.
// The CLI keeps the no-op defaults; only the server records metrics.
func registerMetricsHooks() {
	observability.SetPipelineHooks(metricsPipelineHooks{})
	observability.SetCacheHooks(metricsCacheHooks{})
	observability.SetHTTPHooks(metricsHTTPHooks{})
}

func statusLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

// metricsPipelineHooks records stage durations and render counts.
type metricsPipelineHooks struct {
	observability.NoopPipelineHooks
}

func (metricsPipelineHooks) OnParseComplete(_ context.Context, _ string, _ int, duration time.Duration, err error) {
	stageDuration.WithLabelValues("parse", statusLabel(err)).Observe(duration.Seconds())
}

func (metricsPipelineHooks) OnLayoutComplete(_ context.Context, duration time.Duration, err error) {
	stageDuration.WithLabelValues("layout", statusLabel(err)).Observe(duration.Seconds())
}

func (metricsPipelineHooks) OnRenderComplete(_ context.Context, formats []string, duration time.Duration, err error) {
	stageDuration.WithLabelValues("render", statusLabel(err)).Observe(duration.Seconds())
	for _, format := range formats {
		rendersTotal.WithLabelValues(format, statusLabel(err)).Inc()
	}
}

// metricsCacheHooks counts cache hits, misses, and writes.
type metricsCacheHooks struct {
	observability.NoopCacheHooks
}

func (metricsCacheHooks) OnCacheHit(_ context.Context, keyType string) {
	cacheEventsTotal.WithLabelValues(keyType, "hit").Inc()
}

func (metricsCacheHooks) OnCacheMiss(_ context.Context, keyType string) {
	cacheEventsTotal.WithLabelValues(keyType, "miss").Inc()
}

func (metricsCacheHooks) OnCacheSet(_ context.Context, keyType string, _ int) {
	cacheEventsTotal.WithLabelValues(keyType, "set").Inc()
}

// metricsHTTPHooks records request durations by method, path, and
// status.
type metricsHTTPHooks struct {
	observability.NoopHTTPHooks
}

func (metricsHTTPHooks) OnResponse(_ context.Context, method, path string, status int, duration time.Duration) {
	httpRequestDuration.WithLabelValues(method, path, strconv.Itoa(status)).Observe(duration.Seconds())
}
