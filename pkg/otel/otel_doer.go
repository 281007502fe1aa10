package otel

import (
	"context"
	"net/http"
	"time"

	"github.com/adrianliechti/oai/pkg/exchange"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	semconv "go.opentelemetry.io/otel/semconv/v1.38.0"
	"go.opentelemetry.io/otel/trace"
)

type observableDoer struct {
	doer exchange.Doer

	durationMetric metric.Float64Histogram
}

// NewDoer traces every exchange as a client span and records its duration.
func NewDoer(d exchange.Doer) Doer {
	meter := otel.Meter(instrumentationName)

	durationMetric, _ := meter.Float64Histogram("http.client.request.duration",
		metric.WithDescription("Duration of API exchanges."),
		metric.WithUnit("s"),
	)

	return &observableDoer{
		doer: d,

		durationMetric: durationMetric,
	}
}

func (d *observableDoer) otelSetup() {
}

func (d *observableDoer) Do(ctx context.Context, req *http.Request) (*exchange.Response, error) {
	path := req.URL.Opaque

	if path == "" {
		path = req.URL.Path
	}

	attrs := []attribute.KeyValue{
		semconv.HTTPRequestMethodKey.String(req.Method),
		semconv.ServerAddress(req.Host),
	}

	ctx, span := otel.Tracer(instrumentationName).Start(ctx, req.Method+" "+path,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attrs...),
		trace.WithAttributes(semconv.URLPath(path)),
	)

	defer span.End()

	timestamp := time.Now()

	resp, err := d.doer.Do(ctx, req)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	if resp != nil {
		attrs = append(attrs, semconv.HTTPResponseStatusCode(resp.StatusCode))
		span.SetAttributes(semconv.HTTPResponseStatusCode(resp.StatusCode))

		if resp.StatusCode >= 400 {
			span.SetStatus(codes.Error, resp.Status)
		}

		if EnableDebug {
			span.SetAttributes(attribute.String("response", string(resp.Body)))
		}
	}

	if d.durationMetric != nil {
		d.durationMetric.Record(ctx, time.Since(timestamp).Seconds(), metric.WithAttributes(attrs...))
	}

	return resp, err
}
