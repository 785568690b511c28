// Package metrics holds the OpenTelemetry instruments recorded by the lookup
// pipeline. Instruments are exported through the Prometheus reader wired up
// in the serve command.
package metrics

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// DefaultBuckets is a common set of latency histogram buckets in seconds.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// Lookup groups the instruments recorded while aggregating a single URL:
// per-collection match outcomes and per-branch lookup latency.
type Lookup struct {
	matches  metric.Int64Counter
	duration metric.Float64Histogram
}

// NewLookup creates the lookup instruments on the given meter.
func NewLookup(meter metric.Meter) (*Lookup, error) {
	matches, err := meter.Int64Counter("lookup_matches_total",
		metric.WithDescription("Reputation match outcomes per collection"))
	if err != nil {
		return nil, fmt.Errorf("could not create matches counter: %w", err)
	}

	duration, err := meter.Float64Histogram("lookup_duration_seconds",
		metric.WithDescription("Latency of individual sub-lookups"),
		metric.WithExplicitBucketBoundaries(DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create duration histogram: %w", err)
	}

	return &Lookup{matches: matches, duration: duration}, nil
}

// ObserveMatch records the outcome of one collection match. Safe to call on a
// nil receiver so the aggregator can run without metrics in tests.
func (l *Lookup) ObserveMatch(ctx context.Context, collection, outcome string) {
	if l == nil {
		return
	}

	l.matches.Add(ctx, 1, metric.WithAttributes(
		attribute.String("collection", collection),
		attribute.String("outcome", outcome),
	))
}

// ObserveDuration records the latency of one sub-lookup branch. Safe to call
// on a nil receiver.
func (l *Lookup) ObserveDuration(ctx context.Context, branch string, elapsed time.Duration) {
	if l == nil {
		return
	}

	l.duration.Record(ctx, elapsed.Seconds(), metric.WithAttributes(
		attribute.String("branch", branch),
	))
}
