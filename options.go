package graphsearch

import (
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Options defines parameters for the search.
type Options struct {
	Logger         *slog.Logger
	TracerProvider trace.TracerProvider
	MeterProvider  metric.MeterProvider
	// MaxExpansions bounds the number of expanded states. Zero means unbounded.
	MaxExpansions int
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithLogger sets the logger used for search lifecycle records.
func WithLogger(logger *slog.Logger) Option {
	return func(options *Options) { options.Logger = logger }
}

// WithTracerProvider overrides the global OpenTelemetry tracer provider.
func WithTracerProvider(provider trace.TracerProvider) Option {
	return func(options *Options) { options.TracerProvider = provider }
}

// WithMeterProvider overrides the global OpenTelemetry meter provider.
func WithMeterProvider(provider metric.MeterProvider) Option {
	return func(options *Options) { options.MeterProvider = provider }
}

// WithMaxExpansions stops the search with ErrExpansionLimit once n states have
// been expanded without popping a goal.
func WithMaxExpansions(n int) Option {
	return func(options *Options) {
		if n >= 0 {
			options.MaxExpansions = n
		}
	}
}

func newOptions(options []Option) *Options {
	searchOptions := &Options{}
	for _, option := range options {
		option(searchOptions)
	}
	if searchOptions.Logger == nil {
		searchOptions.Logger = slog.New(slog.DiscardHandler)
	}
	if searchOptions.TracerProvider == nil {
		searchOptions.TracerProvider = otel.GetTracerProvider()
	}
	if searchOptions.MeterProvider == nil {
		searchOptions.MeterProvider = otel.GetMeterProvider()
	}
	return searchOptions
}
