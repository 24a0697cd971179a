// Package observe provides application-wide observability primitives for the
// Audio2Face bridge: OpenTelemetry metrics, distributed tracing, structured
// logging, and HTTP middleware that ties them together.
//
// Metrics are recorded through the OpenTelemetry Metrics API. A Prometheus
// exporter bridge is available via [InitProvider] so that metrics can still be
// scraped via the standard /metrics endpoint. A package-level default
// [Metrics] instance ([DefaultMetrics]) is provided for convenience; tests
// should use [NewMetrics] with a custom [metric.MeterProvider] to avoid
// cross-test pollution.
package observe

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// meterName is the instrumentation scope name used for all bridge metrics.
const meterName = "github.com/MrWong99/a2fbridge"

// Metrics holds all OpenTelemetry metric instruments for the bridge.
// All fields are safe for concurrent use — the underlying OTel types handle
// their own synchronisation.
type Metrics struct {
	// UpstreamDuration tracks one inference call end to end, from request
	// dispatch to decoded response.
	UpstreamDuration metric.Float64Histogram

	// UpstreamRequests counts upstream inference calls. Use with attributes:
	//   attribute.String("transport", ...), attribute.String("status", ...)
	UpstreamRequests metric.Int64Counter

	// UpstreamErrors counts failed upstream calls. Use with attribute:
	//   attribute.String("transport", ...)
	UpstreamErrors metric.Int64Counter

	// FramesGenerated counts blendshape frames returned to clients.
	FramesGenerated metric.Int64Counter

	// HTTPRequestDuration tracks HTTP request processing time. Use with attributes:
	//   attribute.String("method", ...), attribute.String("path", ...)
	HTTPRequestDuration metric.Float64Histogram
}

// latencyBuckets defines histogram bucket boundaries (in seconds). Upstream
// inference calls routinely take multiple seconds for longer clips, so the
// buckets extend well past typical HTTP latencies.
var latencyBuckets = []float64{
	0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60,
}

// NewMetrics creates a fully initialised [Metrics] struct using the given
// [metric.MeterProvider]. Returns an error if any instrument creation fails.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	m := mp.Meter(meterName)
	var err error
	met := &Metrics{}

	if met.UpstreamDuration, err = m.Float64Histogram("a2fbridge.upstream.duration",
		metric.WithDescription("Latency of one upstream inference call."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(latencyBuckets...),
	); err != nil {
		return nil, err
	}
	if met.UpstreamRequests, err = m.Int64Counter("a2fbridge.upstream.requests",
		metric.WithDescription("Total upstream inference calls by transport and status."),
	); err != nil {
		return nil, err
	}
	if met.UpstreamErrors, err = m.Int64Counter("a2fbridge.upstream.errors",
		metric.WithDescription("Total failed upstream inference calls by transport."),
	); err != nil {
		return nil, err
	}
	if met.FramesGenerated, err = m.Int64Counter("a2fbridge.frames.generated",
		metric.WithDescription("Total blendshape frames returned to clients."),
	); err != nil {
		return nil, err
	}
	if met.HTTPRequestDuration, err = m.Float64Histogram("a2fbridge.http.request.duration",
		metric.WithDescription("HTTP request latency by method and path."),
		metric.WithUnit("s"),
	); err != nil {
		return nil, err
	}

	return met, nil
}

// defaultMetrics is the lazily-initialised package-level Metrics instance.
var (
	defaultMetrics     *Metrics
	defaultMetricsOnce sync.Once
)

// DefaultMetrics returns the package-level [Metrics] instance, creating it on
// first call using [otel.GetMeterProvider]. Subsequent calls return the same
// pointer. Panics if instrument creation fails (should not happen with the
// global provider).
func DefaultMetrics() *Metrics {
	defaultMetricsOnce.Do(func() {
		var err error
		defaultMetrics, err = NewMetrics(otel.GetMeterProvider())
		if err != nil {
			panic("observe: failed to create default metrics: " + err.Error())
		}
	})
	return defaultMetrics
}

// Attr is a convenience alias for [attribute.String] to reduce verbosity at
// call sites.
func Attr(key, value string) attribute.KeyValue {
	return attribute.String(key, value)
}

// RecordUpstreamRequest records one completed upstream call: the request
// counter with the standard attribute set and the duration histogram.
func (m *Metrics) RecordUpstreamRequest(ctx context.Context, transport, status string, seconds float64) {
	m.UpstreamRequests.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("transport", transport),
			attribute.String("status", status),
		),
	)
	m.UpstreamDuration.Record(ctx, seconds,
		metric.WithAttributes(attribute.String("transport", transport)),
	)
}

// RecordUpstreamError records a failed upstream call.
func (m *Metrics) RecordUpstreamError(ctx context.Context, transport string) {
	m.UpstreamErrors.Add(ctx, 1,
		metric.WithAttributes(attribute.String("transport", transport)),
	)
}

// RecordFrames records the number of blendshape frames produced for one
// request.
func (m *Metrics) RecordFrames(ctx context.Context, n int) {
	m.FramesGenerated.Add(ctx, int64(n))
}
