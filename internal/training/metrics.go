package training

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// Metric instruments — initialized once via InitMetrics().
var (
	summaryCounter    metric.Int64Counter
	errorCounter      metric.Int64Counter
	calcHistogram     metric.Float64Histogram
	caloriesHistogram metric.Float64Histogram
)

var lastSummaryGauge = prometheus.NewGauge(prometheus.GaugeOpts{
	Namespace: "fitness_tracker",
	Name:      "last_summary_timestamp_seconds",
	Help:      "Unix timestamp of the most recent training summary computed.",
})

func init() {
	prometheus.MustRegister(lastSummaryGauge)
}

// recordSummaryTime updates the last summary watermark gauge.
func recordSummaryTime(ts time.Time) {
	if ts.IsZero() {
		return
	}
	lastSummaryGauge.Set(float64(ts.Unix()))
}

// InitMetrics registers custom OTel metric instruments for the training domain.
// Call this once at startup (after observability.InitMetrics).
func InitMetrics() error {
	meter := otel.Meter("training")

	var err error

	summaryCounter, err = meter.Int64Counter("trainings.summaries.total",
		metric.WithDescription("Total number of training summaries computed"),
		metric.WithUnit("{summary}"),
	)
	if err != nil {
		return fmt.Errorf("creating summary counter: %w", err)
	}

	errorCounter, err = meter.Int64Counter("trainings.errors.total",
		metric.WithDescription("Total number of rejected training packages"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return fmt.Errorf("creating error counter: %w", err)
	}

	calcHistogram, err = meter.Float64Histogram("trainings.calculation.duration",
		metric.WithDescription("Duration of training calculations in milliseconds"),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(0.01, 0.05, 0.1, 0.5, 1, 5, 10),
	)
	if err != nil {
		return fmt.Errorf("creating calculation histogram: %w", err)
	}

	caloriesHistogram, err = meter.Float64Histogram("trainings.calories",
		metric.WithDescription("Calories spent per computed training"),
		metric.WithUnit("kcal"),
		metric.WithExplicitBucketBoundaries(50, 100, 250, 500, 750, 1000, 2000),
	)
	if err != nil {
		return fmt.Errorf("creating calories histogram: %w", err)
	}

	return nil
}
