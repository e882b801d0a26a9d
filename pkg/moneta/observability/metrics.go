package observability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records resolution metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordResolution records a completed Resolve call with the path
	// taken ("explicit", "preset", or "fallback") and its duration.
	RecordResolution(ctx context.Context, owner, path string, duration time.Duration)

	// RecordFallback records a forced fallback with its reason.
	RecordFallback(ctx context.Context, owner, reason string)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	resolutions    metric.Int64Counter
	resolveLatency metric.Float64Histogram
	fallbacks      metric.Int64Counter
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics returns the default OTel metrics instance.
// Lazily initializes the metrics on first call.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

// newOtelMetrics creates a new OTel metrics instance.
func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("moneta")

	resolutions, err := meter.Int64Counter("moneta.resolve.count",
		metric.WithDescription("Number of context resolutions"),
	)
	if err != nil {
		return nil, err
	}

	resolveLatency, err := meter.Float64Histogram("moneta.resolve.latency_ms",
		metric.WithDescription("Context resolution latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	fallbacks, err := meter.Int64Counter("moneta.resolve.fallbacks",
		metric.WithDescription("Number of resolutions forced onto the DECIMAL64 fallback"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		resolutions:    resolutions,
		resolveLatency: resolveLatency,
		fallbacks:      fallbacks,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordResolution records a completed Resolve call.
func (m *otelMetrics) RecordResolution(ctx context.Context, owner, path string, duration time.Duration) {
	attrs := []attribute.KeyValue{
		attribute.String("owner", owner),
		attribute.String("path", path),
	}

	m.resolutions.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.resolveLatency.Record(ctx, float64(duration.Milliseconds()), metric.WithAttributes(attrs...))
}

// RecordFallback records a forced fallback.
func (m *otelMetrics) RecordFallback(ctx context.Context, owner, reason string) {
	attrs := []attribute.KeyValue{
		attribute.String("owner", owner),
		attribute.String("reason", reason),
	}
	m.fallbacks.Add(ctx, 1, metric.WithAttributes(attrs...))
}
