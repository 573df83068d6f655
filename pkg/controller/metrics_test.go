package controller_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"marketplace/pkg/controller"
)

func TestWithMetrics_RecordsRequests(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	mw, err := controller.WithMetrics(mp.Meter("test"))
	require.NoError(t, err)

	h := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	for range 3 {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	}

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	require.Len(t, rm.ScopeMetrics, 1)

	var count int64
	for _, m := range rm.ScopeMetrics[0].Metrics {
		if m.Name != "http.server.request.count" {
			continue
		}
		sum, ok := m.Data.(metricdata.Sum[int64])
		require.True(t, ok)
		require.Len(t, sum.DataPoints, 1)
		count = sum.DataPoints[0].Value
		status, ok := sum.DataPoints[0].Attributes.Value("http.response.status_code")
		require.True(t, ok)
		require.Equal(t, "418", status.AsString())
	}
	require.Equal(t, int64(3), count)
}
