package jobs

import (
	"context"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"heatwatch.io/heatwatch/ent"
	"heatwatch.io/heatwatch/internal/claims"
	"heatwatch.io/heatwatch/internal/domain"
	"heatwatch.io/heatwatch/internal/infrastructure"
	apperrors "heatwatch.io/heatwatch/internal/pkg/errors"
	"heatwatch.io/heatwatch/internal/pkg/logger"
)

// ClaimResolveArgs carries only the event ID.
type ClaimResolveArgs struct {
	EventID string `json:"event_id"`
}

// Kind returns the job kind identifier for claim resolution.
func (ClaimResolveArgs) Kind() string { return "claim_resolve" }

// InsertOpts returns default insert options for claim resolution jobs.
func (ClaimResolveArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		Queue: infrastructure.QueueClaims,
		UniqueOpts: river.UniqueOpts{
			ByArgs:  true,
			ByQueue: true,
		},
	}
}

// ClaimResolveWorker links an enriched event to its canonical claim and
// chains the aggregation job. The resolver itself is redelivery-safe,
// so the worker only handles failure routing.
type ClaimResolveWorker struct {
	river.WorkerDefaults[ClaimResolveArgs]
	entClient *ent.Client
	resolver  *claims.Resolver
	enqueuer  StageEnqueuer
}

func NewClaimResolveWorker(entClient *ent.Client, resolver *claims.Resolver, enqueuer StageEnqueuer) *ClaimResolveWorker {
	return &ClaimResolveWorker{entClient: entClient, resolver: resolver, enqueuer: enqueuer}
}

// Work executes claim resolution.
func (w *ClaimResolveWorker) Work(ctx context.Context, job *river.Job[ClaimResolveArgs]) error {
	eventID := job.Args.EventID

	resolution, err := w.resolver.Resolve(ctx, eventID)
	if err != nil {
		return stageError(ctx, w.entClient, eventID, domain.StageResolve, job.JobRow, err)
	}

	if err := w.enqueuer.EnqueueAggregate(ctx, eventID); err != nil {
		return stageError(ctx, w.entClient, eventID, domain.StageResolve, job.JobRow,
			apperrors.StorageUnavailable(err))
	}

	logger.Debug("event resolved to claim",
		zap.String("event_id", eventID),
		zap.String("claim_id", resolution.ClaimID),
		zap.Bool("created", resolution.Created),
	)
	return nil
}
