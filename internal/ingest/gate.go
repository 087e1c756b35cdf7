// Package ingest validates and persists raw events at the pipeline
// boundary and tracks the health of registered data sources.
package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"heatwatch.io/heatwatch/ent"
	"heatwatch.io/heatwatch/ent/event"
	"heatwatch.io/heatwatch/internal/claims"
	"heatwatch.io/heatwatch/internal/domain"
	apperrors "heatwatch.io/heatwatch/internal/pkg/errors"
	"heatwatch.io/heatwatch/internal/pkg/logger"
	"heatwatch.io/heatwatch/internal/pkg/metrics"
)

// EnrichEnqueuer hands an accepted event to the enrichment stage.
// The job binding is done at composition root level.
type EnrichEnqueuer interface {
	EnqueueEnrich(ctx context.Context, eventID string) error
}

// GateConfig carries the validation and dedup knobs for the gate.
type GateConfig struct {
	MinContentLength   int
	ClockSkewTolerance time.Duration
	DedupWindow        time.Duration
}

// Gate is the single entry point for raw events. Every connector and
// the ingestion API route through it; nothing writes events directly.
type Gate struct {
	client  *ent.Client
	enqueue EnrichEnqueuer
	tracker *Tracker
	cfg     GateConfig
	now     func() time.Time
}

func NewGate(client *ent.Client, enqueue EnrichEnqueuer, cfg GateConfig) *Gate {
	return &Gate{
		client:  client,
		enqueue: enqueue,
		cfg:     cfg,
		now:     time.Now,
	}
}

// WithTracker enables per-source accept/reject accounting. Without a
// tracker the gate counts only in Prometheus.
func (g *Gate) WithTracker(t *Tracker) *Gate {
	g.tracker = t
	return g
}

// IngestOutcome reports what the gate did with one raw event.
type IngestOutcome struct {
	EventID string
	Deduped bool
}

// Ingest validates raw, deduplicates it against recent intake from the
// same source, persists it in RAW state, and enqueues enrichment.
// Duplicates are dropped silently: the connector already delivered the
// content once and at-least-once sources will legitimately resend.
func (g *Gate) Ingest(ctx context.Context, raw domain.RawEvent) (*IngestOutcome, error) {
	if err := g.validate(raw); err != nil {
		metrics.EventsRejected.WithLabelValues(string(raw.SourceType)).Inc()
		g.noteRejection(ctx, raw.SourceID, err)
		return nil, err
	}

	now := g.now().UTC()
	rawHash := claims.RawHash(raw.SourceID, raw.Content)

	dup, err := g.client.Event.Query().
		Where(
			event.SourceIDEQ(raw.SourceID),
			event.RawHashEQ(rawHash),
			event.IngestedAtGTE(now.Add(-g.cfg.DedupWindow)),
		).
		Exist(ctx)
	if err != nil {
		return nil, apperrors.StorageUnavailable(fmt.Errorf("dedup lookup: %w", err))
	}
	if dup {
		metrics.EventsDeduped.Inc()
		logger.Debug("duplicate event dropped",
			zap.String("source_id", raw.SourceID),
			zap.String("raw_hash", rawHash))
		return &IngestOutcome{Deduped: true}, nil
	}

	id := uuid.Must(uuid.NewV7()).String()

	create := g.client.Event.Create().
		SetID(id).
		SetSourceID(raw.SourceID).
		SetSourceType(event.SourceType(raw.SourceType)).
		SetRawContent(raw.Content).
		SetNormalizedContent(claims.Normalize(raw.Content)).
		SetRawHash(rawHash).
		SetObservedAt(raw.Timestamp.UTC()).
		SetIngestedAt(now).
		SetState(event.StateRAW).
		SetAttemptCounts(map[string]int{})
	if raw.URL != "" {
		create.SetURL(raw.URL)
	}
	if raw.Location != nil {
		create.SetLocationHint(raw.Location)
	}

	if _, err := create.Save(ctx); err != nil {
		if ent.IsConstraintError(err) {
			// Concurrent delivery of the same content lost the race.
			metrics.EventsDeduped.Inc()
			return &IngestOutcome{Deduped: true}, nil
		}
		return nil, apperrors.StorageUnavailable(fmt.Errorf("persist event: %w", err))
	}

	if err := g.enqueue.EnqueueEnrich(ctx, id); err != nil {
		return nil, apperrors.StorageUnavailable(fmt.Errorf("enqueue enrichment for event %s: %w", id, err))
	}

	metrics.EventsIngested.WithLabelValues(string(raw.SourceType)).Inc()
	g.noteIngest(ctx, raw.SourceID)
	return &IngestOutcome{EventID: id}, nil
}

// Source accounting is best-effort: an unregistered source or a counter
// write failure never changes the ingest outcome.
func (g *Gate) noteIngest(ctx context.Context, sourceID string) {
	if g.tracker == nil {
		return
	}
	if err := g.tracker.RecordIngest(ctx, sourceID); err != nil && !ent.IsNotFound(err) {
		logger.Warn("source ingest count not recorded",
			zap.String("source_id", sourceID),
			zap.Error(err))
	}
}

func (g *Gate) noteRejection(ctx context.Context, sourceID string, cause error) {
	if g.tracker == nil || sourceID == "" {
		return
	}
	if err := g.tracker.RecordRejection(ctx, sourceID, cause); err != nil && !ent.IsNotFound(err) {
		logger.Warn("source rejection count not recorded",
			zap.String("source_id", sourceID),
			zap.Error(err))
	}
}

func (g *Gate) validate(raw domain.RawEvent) error {
	if raw.SourceID == "" {
		return apperrors.InvalidEvent(fmt.Errorf("missing source_id"))
	}
	if !domain.ValidSourceType(raw.SourceType) {
		return apperrors.InvalidEvent(fmt.Errorf("unknown source_type %q", raw.SourceType))
	}
	if len(raw.Content) < g.cfg.MinContentLength {
		return apperrors.InvalidEvent(fmt.Errorf("content shorter than %d bytes", g.cfg.MinContentLength))
	}
	if raw.Timestamp.IsZero() {
		return apperrors.InvalidEvent(fmt.Errorf("missing timestamp"))
	}
	if raw.Timestamp.After(g.now().Add(g.cfg.ClockSkewTolerance)) {
		return apperrors.InvalidEvent(fmt.Errorf("timestamp %s is in the future", raw.Timestamp.Format(time.RFC3339)))
	}
	return nil
}
