package otel_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/adrianliechti/oai/pkg/exchange"
	"github.com/adrianliechti/oai/pkg/otel"

	otelapi "go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/stretchr/testify/require"
)

type doerFunc func(ctx context.Context, req *http.Request) (*exchange.Response, error)

func (f doerFunc) Do(ctx context.Context, req *http.Request) (*exchange.Response, error) {
	return f(ctx, req)
}

func setupProviders(t *testing.T) (*tracetest.SpanRecorder, *sdkmetric.ManualReader) {
	t.Helper()

	spans := tracetest.NewSpanRecorder()
	reader := sdkmetric.NewManualReader()

	otelapi.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(spans)))
	otelapi.SetMeterProvider(sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)))

	return spans, reader
}

func newRequest(t *testing.T) *http.Request {
	t.Helper()

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, "https://api.openai.com", nil)
	require.NoError(t, err)

	req.URL.Opaque = "/v1/models"
	req.Host = "api.openai.com"

	return req
}

func TestDoer(t *testing.T) {
	spans, reader := setupProviders(t)

	d := otel.NewDoer(doerFunc(func(ctx context.Context, req *http.Request) (*exchange.Response, error) {
		return &exchange.Response{StatusCode: http.StatusOK, Status: "200 OK", Body: []byte(`{}`)}, nil
	}))

	resp, err := d.Do(context.Background(), newRequest(t))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	ended := spans.Ended()
	require.Len(t, ended, 1)
	require.Equal(t, "GET /v1/models", ended[0].Name())
	require.NotEqual(t, codes.Error, ended[0].Status().Code)

	var data metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &data))
	require.NotEmpty(t, data.ScopeMetrics)
	require.Equal(t, "http.client.request.duration", data.ScopeMetrics[0].Metrics[0].Name)
}

func TestDoerError(t *testing.T) {
	spans, _ := setupProviders(t)

	failure := errors.New("connection refused")

	d := otel.NewDoer(doerFunc(func(ctx context.Context, req *http.Request) (*exchange.Response, error) {
		return nil, failure
	}))

	_, err := d.Do(context.Background(), newRequest(t))
	require.ErrorIs(t, err, failure)

	ended := spans.Ended()
	require.Len(t, ended, 1)
	require.Equal(t, codes.Error, ended[0].Status().Code)
}

func TestSetupDisabled(t *testing.T) {
	otel.EnableTelemetry = false

	shutdown, err := otel.Setup(context.Background(), "oai")
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
}
