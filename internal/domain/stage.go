package domain

import "time"

// Stage names a pipeline stage for attempt accounting and dead-letter
// records. Stage transitions only move forward, except to FAILED.
type Stage string

const (
	StageIngest    Stage = "ingest"
	StageEnrich    Stage = "enrich"
	StageResolve   Stage = "resolve"
	StageAggregate Stage = "aggregate"
)

// Reason codes recorded on dead-letter rows and FAILED events.
const (
	ReasonInvalidEvent        = "InvalidEvent"
	ReasonTransientEnrichment = "TransientEnrichmentFailure"
	ReasonEnrichmentRejected  = "EnrichmentRejected"
	ReasonClaimConflict       = "ClaimConflict"
	ReasonStorageUnavailable  = "StorageUnavailable"
)

// AttemptRecord is one delivery attempt at a stage, kept as the
// attempt_history of a dead-letter row.
type AttemptRecord struct {
	Attempt int       `json:"attempt"`
	At      time.Time `json:"at"`
	Error   string    `json:"error,omitempty"`
}
