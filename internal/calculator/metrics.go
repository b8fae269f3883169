package calculator

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// Metric instruments — initialized once via InitMetrics(). They are no-ops
// until then.
var (
	calcCounter     metric.Int64Counter     = noop.Int64Counter{}
	calcHistogram   metric.Float64Histogram = noop.Float64Histogram{}
	errorCounter    metric.Int64Counter     = noop.Int64Counter{}
	unguardedSplits metric.Int64Counter     = noop.Int64Counter{}
	totalGauge      metric.Float64Gauge     = noop.Float64Gauge{}
)

// InitMetrics registers custom OTel metric instruments for the calculator domain.
// Call this once at startup (after observability.InitMetrics).
func InitMetrics() error {
	meter := otel.Meter("calculator")

	var err error

	calcCounter, err = meter.Int64Counter("calculator.calculations.total",
		metric.WithDescription("Total number of tip calculations performed"),
		metric.WithUnit("{calculation}"),
	)
	if err != nil {
		return fmt.Errorf("creating calculations counter: %w", err)
	}

	calcHistogram, err = meter.Float64Histogram("calculator.calculation.duration",
		metric.WithDescription("Duration of tip calculations in milliseconds"),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(0.01, 0.05, 0.1, 0.5, 1, 5, 10),
	)
	if err != nil {
		return fmt.Errorf("creating calculation histogram: %w", err)
	}

	errorCounter, err = meter.Int64Counter("calculator.errors.total",
		metric.WithDescription("Total number of rejected calculator requests"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return fmt.Errorf("creating error counter: %w", err)
	}

	unguardedSplits, err = meter.Int64Counter("calculator.unguarded_split.total",
		metric.WithDescription("Calculations split across zero or fewer people"),
		metric.WithUnit("{calculation}"),
	)
	if err != nil {
		return fmt.Errorf("creating unguarded split counter: %w", err)
	}

	totalGauge, err = meter.Float64Gauge("calculator.last_total_per_person",
		metric.WithDescription("Per-person total of the last finite calculation"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return fmt.Errorf("creating total gauge: %w", err)
	}

	return nil
}
