// Package telemetry exposes Prometheus metrics for secret provisioning.
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Secret kinds recorded by RecordUpsert.
const (
	KindCredential  = "credential"
	KindProfile     = "profile"
	KindPreferences = "preferences"
)

// Upsert outcomes recorded by RecordUpsert.
const (
	OutcomeCreated = "created"
	OutcomeReused  = "reused"
	OutcomeError   = "error"
)

var (
	secretUpserts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "workspace_secret_upserts_total",
			Help: "Workspace secret upserts by secret kind and outcome.",
		},
		[]string{"kind", "outcome"},
	)

	auxiliaryFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "workspace_secret_auxiliary_failures_total",
			Help: "Swallowed failures while building user information secrets, by stage.",
		},
		[]string{"stage"},
	)
)

func init() {
	prometheus.MustRegister(secretUpserts, auxiliaryFailures)
}

// RecordUpsert counts one secret upsert attempt.
func RecordUpsert(kind, outcome string) {
	secretUpserts.WithLabelValues(kind, outcome).Inc()
}

// RecordAuxiliaryFailure counts one logged-and-swallowed failure in the
// profile/preferences path.
func RecordAuxiliaryFailure(stage string) {
	auxiliaryFailures.WithLabelValues(stage).Inc()
}
