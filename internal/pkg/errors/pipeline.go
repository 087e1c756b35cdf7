package errors

import (
	"errors"

	"heatwatch.io/heatwatch/internal/domain"
)

// Machine-readable error codes used across the pipeline and API.
const (
	CodeInvalidEvent        = "INVALID_EVENT"
	CodeDuplicateEvent      = "DUPLICATE_EVENT"
	CodeTransientEnrichment = "TRANSIENT_ENRICHMENT_FAILURE"
	CodeEnrichmentRejected  = "ENRICHMENT_REJECTED"
	CodeClaimConflict       = "CLAIM_CONFLICT"
	CodeStorageUnavailable  = "STORAGE_UNAVAILABLE"
	CodeNotFound            = "NOT_FOUND"
	CodeUnauthorized        = "UNAUTHORIZED"
	CodeInternal            = "INTERNAL_ERROR"
)

// PipelineError is a stage failure that the retry coordinator routes:
// transient failures are retried with backoff, permanent ones terminate
// the event immediately.
type PipelineError struct {
	// Reason is the dead-letter reason code (domain.Reason*).
	Reason string

	// Transient marks the failure as retryable.
	Transient bool

	// Err is the wrapped cause.
	Err error
}

// Error implements the error interface.
func (e *PipelineError) Error() string {
	if e.Err != nil {
		return e.Reason + ": " + e.Err.Error()
	}
	return e.Reason
}

// Unwrap returns the underlying error.
func (e *PipelineError) Unwrap() error {
	return e.Err
}

// Pipeline failure constructors. The taxonomy is closed: every stage
// failure is one of these five.

// InvalidEvent rejects malformed input at ingestion. Never retried.
func InvalidEvent(err error) *PipelineError {
	return &PipelineError{Reason: domain.ReasonInvalidEvent, Transient: false, Err: err}
}

// TransientEnrichment marks an analyzer timeout or 5xx-equivalent.
// Retried per backoff policy.
func TransientEnrichment(err error) *PipelineError {
	return &PipelineError{Reason: domain.ReasonTransientEnrichment, Transient: true, Err: err}
}

// EnrichmentRejected marks input the analyzer refuses as unprocessable.
// Moved to FAILED without retry.
func EnrichmentRejected(err error) *PipelineError {
	return &PipelineError{Reason: domain.ReasonEnrichmentRejected, Transient: false, Err: err}
}

// ClaimConflict marks a concurrent-update race on a claim row.
// Resolved by retry-on-conflict, never surfaced to callers.
func ClaimConflict(err error) *PipelineError {
	return &PipelineError{Reason: domain.ReasonClaimConflict, Transient: true, Err: err}
}

// StorageUnavailable marks a durable-write failure. Retried with backoff;
// diverted to dead-letter after the attempt budget.
func StorageUnavailable(err error) *PipelineError {
	return &PipelineError{Reason: domain.ReasonStorageUnavailable, Transient: true, Err: err}
}

// IsTransient reports whether err should be retried. Unclassified errors
// default to transient: at-least-once delivery makes a spurious retry
// safe, a spurious drop is not.
func IsTransient(err error) bool {
	var pe *PipelineError
	if errors.As(err, &pe) {
		return pe.Transient
	}
	return true
}

// ReasonOf extracts the dead-letter reason code for err, falling back to
// StorageUnavailable for unclassified failures (the catch-all for
// durable-write problems).
func ReasonOf(err error) string {
	var pe *PipelineError
	if errors.As(err, &pe) {
		return pe.Reason
	}
	return domain.ReasonStorageUnavailable
}
