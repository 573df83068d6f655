package controller

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// WithMetrics returns a middleware recording the count and duration of HTTP
// requests on meter, by method and status code.
func WithMetrics(meter metric.Meter) (func(http.Handler) http.Handler, error) {
	requests, err := meter.Int64Counter("http.server.request.count",
		metric.WithDescription("Number of HTTP requests served"),
		metric.WithUnit("{request}"))
	if err != nil {
		return nil, fmt.Errorf("could not create request counter: %w", err)
	}

	duration, err := meter.Float64Histogram("http.server.duration",
		metric.WithDescription("Duration of HTTP requests"),
		metric.WithUnit("s"))
	if err != nil {
		return nil, fmt.Errorf("could not create duration histogram: %w", err)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			attrs := metric.WithAttributes(
				attribute.String("http.request.method", r.Method),
				attribute.String("http.response.status_code", strconv.Itoa(rec.status)),
			)
			requests.Add(r.Context(), 1, attrs)
			duration.Record(r.Context(), time.Since(start).Seconds(), attrs)
		})
	}, nil
}
