// Package metrics holds the Prometheus collectors of the marketplace.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "marketplace"

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// ScoreBuckets splits the [0, 100] relevance range in deciles.
var ScoreBuckets = prometheus.LinearBuckets(10, 10, 10) //nolint: gochecknoglobals

// Recorder groups the business collectors. A nil *Recorder is valid and
// records nothing, which keeps services usable without a registry.
type Recorder struct {
	matchRequests   prometheus.Counter
	matchResults    prometheus.Histogram
	matchScores     prometheus.Histogram
	matchDuration   prometheus.Histogram
	notifications   *prometheus.CounterVec
	geocodeRequests *prometheus.CounterVec
	applications    *prometheus.CounterVec
}

// NewRecorder registers the business collectors on reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	auto := promauto.With(reg)

	return &Recorder{
		matchRequests: auto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "matcher",
			Name:      "requests_total",
			Help:      "Total number of match listings computed",
		}),
		matchResults: auto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "matcher",
			Name:      "results",
			Help:      "Number of projects returned by a match listing",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 8),
		}),
		matchScores: auto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "matcher",
			Name:      "scores",
			Help:      "Distribution of the relevance scores computed",
			Buckets:   ScoreBuckets,
		}),
		matchDuration: auto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "matcher",
			Name:      "duration_seconds",
			Help:      "Time spent loading and scoring candidates",
			Buckets:   DefaultBuckets,
		}),
		notifications: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "notifications",
			Name:      "stored_total",
			Help:      "Total number of notifications stored",
		}, []string{"kind"}),
		geocodeRequests: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "geocoder",
			Name:      "requests_total",
			Help:      "Total number of geocoding requests by outcome",
		}, []string{"result"}),
		applications: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "applications",
			Name:      "total",
			Help:      "Total number of applications by status transition",
		}, []string{"status"}),
	}
}

// ObserveMatch records one match listing.
func (r *Recorder) ObserveMatch(seconds float64, scores []int) {
	if r == nil {
		return
	}

	r.matchRequests.Inc()
	r.matchDuration.Observe(seconds)
	r.matchResults.Observe(float64(len(scores)))
	for _, s := range scores {
		r.matchScores.Observe(float64(s))
	}
}

// NotificationsStored adds n notifications of the given kind.
func (r *Recorder) NotificationsStored(kind string, n int) {
	if r == nil || n <= 0 {
		return
	}

	r.notifications.WithLabelValues(kind).Add(float64(n))
}

// GeocodeRequest counts a geocoding call by outcome ("ok", "not_found", "rate_limited", "error").
func (r *Recorder) GeocodeRequest(result string) {
	if r == nil {
		return
	}

	r.geocodeRequests.WithLabelValues(result).Inc()
}

// Application counts an application entering status.
func (r *Recorder) Application(status string) {
	if r == nil {
		return
	}

	r.applications.WithLabelValues(status).Inc()
}
