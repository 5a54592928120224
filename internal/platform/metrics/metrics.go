package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Package-level collectors are registered once via promauto, matching the
// store-level histogram convention used across the codebase.
var (
	upstreamCallDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "prisoner_profile_upstream_call_duration_seconds",
		Help:    "Latency of upstream API calls by API and outcome",
		Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	}, []string{"api", "outcome"})

	registerCacheOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "prisoner_profile_register_cache_total",
		Help: "Register cache outcomes: hit, miss, read_error, write_error",
	}, []string{"outcome"})

	profileAggregationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "prisoner_profile_aggregation_duration_seconds",
		Help:    "Wall-clock latency of one full profile aggregation run",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	})

	profileSectionFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "prisoner_profile_section_failures_total",
		Help: "Profile sections served in a degraded state, by section",
	}, []string{"section"})

	auditEventsDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "prisoner_profile_audit_events_dropped_total",
		Help: "Audit events dropped because the publisher buffer was full",
	})
)

// ObserveUpstreamCall records one upstream call's latency and outcome
// ("ok", "not_found" or "error").
func ObserveUpstreamCall(api, outcome string, d time.Duration) {
	upstreamCallDuration.WithLabelValues(api, outcome).Observe(d.Seconds())
}

// RegisterCacheOutcome counts one cache interaction outcome.
func RegisterCacheOutcome(outcome string) {
	registerCacheOutcomes.WithLabelValues(outcome).Inc()
}

// ObserveAggregation records one aggregation run's wall-clock latency.
func ObserveAggregation(d time.Duration) {
	profileAggregationDuration.Observe(d.Seconds())
}

// SectionFailure counts one degraded profile section.
func SectionFailure(section string) {
	profileSectionFailures.WithLabelValues(section).Inc()
}

// AuditEventDropped counts one discarded audit event.
func AuditEventDropped() {
	auditEventsDropped.Inc()
}
