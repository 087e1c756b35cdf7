package jobs

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/riverqueue/river"

	"heatwatch.io/heatwatch/internal/config"
)

// StageEnqueuer schedules the next pipeline stage for an event.
// Workers depend on this interface; the River binding is done at
// composition root level.
type StageEnqueuer interface {
	EnqueueEnrich(ctx context.Context, eventID string) error
	EnqueueResolve(ctx context.Context, eventID string) error
	EnqueueAggregate(ctx context.Context, eventID string) error
}

// Enqueuer inserts stage jobs with the configured attempt budgets. It
// is the only component that hands work to River; stages chain through
// it instead of touching the queue client directly.
//
// The River client is bound after worker registration (workers need the
// enqueuer, the client needs the workers), so construction is two-step.
type Enqueuer struct {
	client *river.Client[pgx.Tx]
	cfg    config.RiverConfig
}

func NewEnqueuer(cfg config.RiverConfig) *Enqueuer {
	return &Enqueuer{cfg: cfg}
}

// Bind attaches the started River client.
func (e *Enqueuer) Bind(client *river.Client[pgx.Tx]) {
	e.client = client
}

func (e *Enqueuer) insert(ctx context.Context, args river.JobArgs, maxAttempts int) error {
	if e.client == nil {
		return fmt.Errorf("job queue not initialized")
	}
	_, err := e.client.Insert(ctx, args, &river.InsertOpts{MaxAttempts: maxAttempts})
	if err != nil {
		return fmt.Errorf("insert %s job: %w", args.Kind(), err)
	}
	return nil
}

// EnqueueEnrich schedules the enrichment stage for an event.
func (e *Enqueuer) EnqueueEnrich(ctx context.Context, eventID string) error {
	return e.insert(ctx, EnrichArgs{EventID: eventID}, e.cfg.EnrichmentMaxAttempts)
}

// EnqueueResolve schedules claim resolution for an enriched event.
func (e *Enqueuer) EnqueueResolve(ctx context.Context, eventID string) error {
	return e.insert(ctx, ClaimResolveArgs{EventID: eventID}, e.cfg.ClaimMaxAttempts)
}

// EnqueueAggregate schedules bucket aggregation for a claimed event.
func (e *Enqueuer) EnqueueAggregate(ctx context.Context, eventID string) error {
	return e.insert(ctx, AggregateArgs{EventID: eventID}, e.cfg.AggregationMaxAttempts)
}

// EnqueueReplay re-runs a dead-lettered event from the stage it failed
// in. The replayed job gets a fresh attempt budget.
func (e *Enqueuer) EnqueueReplay(ctx context.Context, eventID, stage string) error {
	switch stage {
	case "enrich", "ingest":
		return e.EnqueueEnrich(ctx, eventID)
	case "resolve":
		return e.EnqueueResolve(ctx, eventID)
	case "aggregate":
		return e.EnqueueAggregate(ctx, eventID)
	}
	return fmt.Errorf("unknown replay stage %q", stage)
}
