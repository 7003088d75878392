package graphsearch

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/pdrpinto/graphsearch"

type searchTelemetry struct {
	tracer   trace.Tracer
	searches metric.Int64Counter
	expanded metric.Int64Histogram
	duration metric.Float64Histogram
}

func newSearchTelemetry(options *Options) *searchTelemetry {
	telemetry := &searchTelemetry{
		tracer: options.TracerProvider.Tracer(instrumentationName),
	}
	if err := telemetry.initInstruments(options.MeterProvider.Meter(instrumentationName)); err != nil {
		// the no-op meter never fails
		_ = telemetry.initInstruments(noop.NewMeterProvider().Meter(instrumentationName))
	}
	return telemetry
}

func (telemetry *searchTelemetry) initInstruments(meter metric.Meter) error {
	var err error
	telemetry.searches, err = meter.Int64Counter(
		"graphsearch.searches",
		metric.WithDescription("Number of completed search invocations"),
	)
	if err != nil {
		return err
	}
	telemetry.expanded, err = meter.Int64Histogram(
		"graphsearch.expanded_nodes",
		metric.WithDescription("States expanded per search"),
	)
	if err != nil {
		return err
	}
	telemetry.duration, err = meter.Float64Histogram(
		"graphsearch.duration",
		metric.WithDescription("Wall time per search"),
		metric.WithUnit("s"),
	)
	return err
}

// finish records the outcome on the span and the metrics. ErrNoPath is an
// ordinary result and does not mark the span as failed.
func (telemetry *searchTelemetry) finish(
	ctx context.Context,
	span trace.Span,
	strategy Strategy,
	found bool,
	expandedNodes int,
	pathLength int,
	err error,
	elapsed time.Duration,
) {
	span.SetAttributes(
		attribute.Bool("graphsearch.found", found),
		attribute.Int("graphsearch.expanded_nodes", expandedNodes),
		attribute.Int("graphsearch.path_length", pathLength),
	)
	if err != nil && !errors.Is(err, ErrNoPath) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	attrs := metric.WithAttributes(
		attribute.String("strategy", strategy.String()),
		attribute.Bool("found", found),
	)
	telemetry.searches.Add(ctx, 1, attrs)
	telemetry.expanded.Record(ctx, int64(expandedNodes), attrs)
	telemetry.duration.Record(ctx, elapsed.Seconds(), attrs)
}
