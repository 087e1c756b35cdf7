// Package metrics exposes pipeline counters and gauges via Prometheus.
//
// All series share the "heatwatch" namespace. Registration happens once
// at package init; the HTTP handler is mounted by the router.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// EventsIngested counts events accepted by the Ingestion Gate, by source type.
	EventsIngested = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "heatwatch",
		Name:      "events_ingested_total",
		Help:      "Events accepted by the ingestion gate.",
	}, []string{"source_type"})

	// EventsRejected counts events rejected as InvalidEvent.
	EventsRejected = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "heatwatch",
		Name:      "events_rejected_total",
		Help:      "Events rejected by the ingestion gate.",
	}, []string{"source_type"})

	// EventsDeduped counts raw-level duplicate suppressions.
	EventsDeduped = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "heatwatch",
		Name:      "events_deduped_total",
		Help:      "Raw payload duplicates silently dropped at ingestion.",
	})

	// EventsDeadLettered counts events diverted to the dead-letter store, by stage.
	EventsDeadLettered = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "heatwatch",
		Name:      "events_dead_lettered_total",
		Help:      "Events that exhausted their retry budget.",
	}, []string{"stage", "reason"})

	// ClaimsCreated counts novel claims.
	ClaimsCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "heatwatch",
		Name:      "claims_created_total",
		Help:      "Claims created from a novel fingerprint.",
	})

	// ClaimsMerged counts merges into existing claims.
	ClaimsMerged = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "heatwatch",
		Name:      "claims_merged_total",
		Help:      "Events merged into an existing claim.",
	})

	// StageBacklog is the pending-job count per stage queue.
	StageBacklog = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "heatwatch",
		Name:      "stage_backlog",
		Help:      "Pending jobs per stage queue.",
	}, []string{"queue"})
)

func init() {
	prometheus.MustRegister(
		EventsIngested,
		EventsRejected,
		EventsDeduped,
		EventsDeadLettered,
		ClaimsCreated,
		ClaimsMerged,
		StageBacklog,
	)
}

// Handler returns the HTTP handler serving the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
