// Package metric provides Prometheus instrumentation for the term
// validation core.
package metric

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics contains all core-level metrics. A nil *Metrics is valid and
// turns every recording method into a no-op, so library code can be wired
// with or without instrumentation.
type Metrics struct {
	// Label cache metrics
	LabelLookups    *prometheus.CounterVec
	BackendQueries  *prometheus.CounterVec
	UnknownPrefixes prometheus.Counter

	// Resolver metrics
	AdapterResolutions *prometheus.CounterVec

	// Enum expansion metrics
	EnumExpansions    prometheus.Counter
	ExpansionDuration prometheus.Histogram
}

// NewMetrics creates a new Metrics instance with all core metrics.
func NewMetrics() *Metrics {
	return &Metrics{
		LabelLookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "semterms",
				Subsystem: "labels",
				Name:      "lookups_total",
				Help:      "Total label lookups by serving tier (memory, file, backend, miss)",
			},
			[]string{"tier"},
		),

		BackendQueries: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "semterms",
				Subsystem: "backend",
				Name:      "queries_total",
				Help:      "Total ontology backend queries by prefix and operation",
			},
			[]string{"prefix", "operation"},
		),

		UnknownPrefixes: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "semterms",
				Subsystem: "labels",
				Name:      "unknown_prefixes_total",
				Help:      "Total lookups that hit a prefix with no usable adapter",
			},
		),

		AdapterResolutions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "semterms",
				Subsystem: "resolver",
				Name:      "resolutions_total",
				Help:      "Total adapter resolutions by outcome (resolved, absent, error)",
			},
			[]string{"outcome"},
		),

		EnumExpansions: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "semterms",
				Subsystem: "enums",
				Name:      "expansions_total",
				Help:      "Total dynamic enum expansions performed",
			},
		),

		ExpansionDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "semterms",
				Subsystem: "enums",
				Name:      "expansion_duration_seconds",
				Help:      "Dynamic enum expansion duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
		),
	}
}

// Register registers all metrics with the given registry.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	if m == nil {
		return nil
	}
	collectors := []prometheus.Collector{
		m.LabelLookups,
		m.BackendQueries,
		m.UnknownPrefixes,
		m.AdapterResolutions,
		m.EnumExpansions,
		m.ExpansionDuration,
	}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// Lookup tiers reported by RecordLabelLookup.
const (
	TierMemory  = "memory"
	TierFile    = "file"
	TierBackend = "backend"
	TierMiss    = "miss"
)

// Resolver outcomes reported by RecordResolution.
const (
	OutcomeResolved = "resolved"
	OutcomeAbsent   = "absent"
	OutcomeError    = "error"
)

// RecordLabelLookup counts a label lookup served by the given tier.
func (m *Metrics) RecordLabelLookup(tier string) {
	if m == nil {
		return
	}
	m.LabelLookups.WithLabelValues(tier).Inc()
}

// RecordBackendQuery counts one backend query for a prefix and operation
// (label, ancestors, descendants).
func (m *Metrics) RecordBackendQuery(prefix, operation string) {
	if m == nil {
		return
	}
	m.BackendQueries.WithLabelValues(prefix, operation).Inc()
}

// RecordUnknownPrefix counts a lookup against a prefix with no adapter.
func (m *Metrics) RecordUnknownPrefix() {
	if m == nil {
		return
	}
	m.UnknownPrefixes.Inc()
}

// RecordResolution counts one adapter resolution by outcome.
func (m *Metrics) RecordResolution(outcome string) {
	if m == nil {
		return
	}
	m.AdapterResolutions.WithLabelValues(outcome).Inc()
}

// RecordExpansion counts one enum expansion and its duration in seconds.
func (m *Metrics) RecordExpansion(seconds float64) {
	if m == nil {
		return
	}
	m.EnumExpansions.Inc()
	m.ExpansionDuration.Observe(seconds)
}
