package httpmetrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/aalemi-dev/reqobserve/httpmetrics"
	"github.com/aalemi-dev/reqobserve/interceptor"
	"github.com/aalemi-dev/reqobserve/logger"
	"github.com/aalemi-dev/reqobserve/metrics"
	"github.com/aalemi-dev/reqobserve/sinks"
	"github.com/aalemi-dev/reqobserve/tracer"
)

func TestFXModule_ProvidesMiddleware(t *testing.T) {
	t.Parallel()
	sink := &recordingSink{}
	var mw *httpmetrics.Middleware

	app := fxtest.New(t,
		httpmetrics.FXModule,
		fx.Provide(
			func() httpmetrics.Config { return httpmetrics.Config{} },
			func() interceptor.Sink { return sink },
			func() logger.Logger { return logger.NewNop() },
		),
		fx.Populate(&mw),
	)
	app.RequireStart()
	defer app.RequireStop()

	require.NotNil(t, mw)
	mw.Handler(http.NotFoundHandler()).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))

	records := sink.Records()
	require.Len(t, records, 1)
	assert.Equal(t, "GET, /missing, 404", records[0].Summary())
}

func TestFXModule_WiresTracerAndInFlightGauge(t *testing.T) {
	t.Parallel()
	sr := tracetest.NewSpanRecorder()
	tr := tracer.NewFromProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr)))
	m := metrics.NewMetrics(metrics.Config{
		ServiceName:               "httpmetrics-test",
		SystemMetricsAddress:      metrics.Ptr(""),
		ApplicationMetricsAddress: metrics.Ptr(""),
	})
	var mw *httpmetrics.Middleware

	app := fxtest.New(t,
		httpmetrics.FXModule,
		fx.Provide(
			func() httpmetrics.Config { return httpmetrics.Config{} },
			func() interceptor.Sink { return sinks.NewTracerSink(tr) },
			func() logger.Logger { return logger.NewNop() },
			func() tracer.Tracer { return tr },
			func() metrics.MetricsCollector { return m },
			func() sinks.Config { return sinks.Config{Namespace: "fx"} },
		),
		fx.Populate(&mw),
	)
	app.RequireStart()
	defer app.RequireStop()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Traceparent", traceparent)
	mw.Handler(http.NotFoundHandler()).ServeHTTP(httptest.NewRecorder(), req)

	ended := sr.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, remoteSpanID, ended[0].Parent().SpanID().String())

	n, err := testutil.GatherAndCount(m.ApplicationRegistry, "fx_requests_in_flight")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
