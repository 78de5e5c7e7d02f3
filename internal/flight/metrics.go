package flight

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const meterName = "skybook/flight"

type metrics struct {
	searches       metric.Int64Counter
	providerErrors metric.Int64Counter
	bookings       metric.Int64Counter
	searchLatency  metric.Float64Histogram
}

// newMetrics registers instruments on the global meter provider. Without
// an SDK installed these are no-ops.
func newMetrics() metrics {
	return newMetricsWith(otel.Meter(meterName))
}

// newMetricsWith reports instrument errors to the otel error handler and
// falls back to no-op instruments.
func newMetricsWith(meter metric.Meter) metrics {
	return metrics{
		searches: counter(meter.Int64Counter("flight.searches",
			metric.WithDescription("Flight searches and filter runs"))),
		providerErrors: counter(meter.Int64Counter("flight.provider_errors",
			metric.WithDescription("Failed calls to the flight data provider"))),
		bookings: counter(meter.Int64Counter("flight.bookings",
			metric.WithDescription("Orders created"))),
		searchLatency: histogram(meter.Float64Histogram("flight.search.duration",
			metric.WithDescription("Time spent fetching offers"),
			metric.WithUnit("ms"))),
	}
}

func counter(c metric.Int64Counter, err error) metric.Int64Counter {
	if err != nil {
		otel.Handle(err)
	}
	if c == nil {
		return noop.Int64Counter{}
	}
	return c
}

func histogram(h metric.Float64Histogram, err error) metric.Float64Histogram {
	if err != nil {
		otel.Handle(err)
	}
	if h == nil {
		return noop.Float64Histogram{}
	}
	return h
}

func (m metrics) recordSearch(ctx context.Context, op string, cacheHit bool, shown int) {
	m.searches.Add(ctx, 1, metric.WithAttributes(
		attribute.String("op", op),
		attribute.Bool("cache_hit", cacheHit),
		attribute.Bool("empty", shown == 0),
	))
}

func (m metrics) recordProviderError(ctx context.Context, op string, code ErrorCode) {
	m.providerErrors.Add(ctx, 1, metric.WithAttributes(
		attribute.String("op", op),
		attribute.String("code", string(code)),
	))
}

func (m metrics) recordFetch(ctx context.Context, ms int64) {
	m.searchLatency.Record(ctx, float64(ms))
}
