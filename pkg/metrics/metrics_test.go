package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"

	"marketplace/pkg/metrics"
)

func TestRecorder(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec := metrics.NewRecorder(reg)

	rec.ObserveMatch(0.02, []int{72, 40, 10})
	rec.NotificationsStored("project_match", 3)
	rec.NotificationsStored("project_match", 0)
	rec.GeocodeRequest("ok")
	rec.Application("pending")

	families, err := reg.Gather()
	require.NoError(t, err)
	byName := map[string]*dto.MetricFamily{}
	for _, f := range families {
		byName[f.GetName()] = f
	}

	require.Contains(t, byName, "marketplace_matcher_requests_total")
	require.InDelta(t, 1, byName["marketplace_matcher_requests_total"].GetMetric()[0].GetCounter().GetValue(), 0)

	require.Contains(t, byName, "marketplace_matcher_scores")
	require.EqualValues(t, 3, byName["marketplace_matcher_scores"].GetMetric()[0].GetHistogram().GetSampleCount())

	require.Contains(t, byName, "marketplace_notifications_stored_total")
	require.InDelta(t, 3, byName["marketplace_notifications_stored_total"].GetMetric()[0].GetCounter().GetValue(), 0)

	count, err := testutil.GatherAndCount(reg, "marketplace_geocoder_requests_total", "marketplace_applications_total")
	require.NoError(t, err)
	require.Equal(t, 2, count)
}

func TestRecorder_Nil(t *testing.T) {
	var rec *metrics.Recorder
	require.NotPanics(t, func() {
		rec.ObserveMatch(1, []int{1})
		rec.NotificationsStored("project_match", 1)
		rec.GeocodeRequest("error")
		rec.Application("accepted")
	})
}
