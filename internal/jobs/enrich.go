package jobs

import (
	"context"
	"fmt"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"heatwatch.io/heatwatch/ent"
	"heatwatch.io/heatwatch/ent/event"
	"heatwatch.io/heatwatch/internal/domain"
	"heatwatch.io/heatwatch/internal/enrichment"
	"heatwatch.io/heatwatch/internal/infrastructure"
	apperrors "heatwatch.io/heatwatch/internal/pkg/errors"
	"heatwatch.io/heatwatch/internal/pkg/logger"
)

// EnrichArgs carries only the event ID; the worker loads everything
// else from storage.
type EnrichArgs struct {
	EventID string `json:"event_id"`
}

// Kind returns the job kind identifier for enrichment.
func (EnrichArgs) Kind() string { return "event_enrich" }

// InsertOpts returns default insert options for enrichment jobs.
func (EnrichArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		Queue: infrastructure.QueueEnrichment,
		UniqueOpts: river.UniqueOpts{
			ByArgs:  true,
			ByQueue: true,
		},
	}
}

// EnrichWorker runs the NLP and satellite analyzers over a RAW event
// and advances it to ENRICHED.
//
// Execution flow:
//  1. Fetch the event; skip work already done by a prior delivery
//  2. Call the NLP analyzer; conditionally the satellite validator
//  3. Persist scores and the fused risk, advance state to ENRICHED
//  4. Chain the claim resolution job
type EnrichWorker struct {
	river.WorkerDefaults[EnrichArgs]
	entClient *ent.Client
	enricher  *enrichment.Enricher
	enqueuer  StageEnqueuer
}

func NewEnrichWorker(entClient *ent.Client, enricher *enrichment.Enricher, enqueuer StageEnqueuer) *EnrichWorker {
	return &EnrichWorker{entClient: entClient, enricher: enricher, enqueuer: enqueuer}
}

// Work executes the enrichment stage.
func (w *EnrichWorker) Work(ctx context.Context, job *river.Job[EnrichArgs]) error {
	eventID := job.Args.EventID

	ev, err := w.entClient.Event.Get(ctx, eventID)
	if err != nil {
		if ent.IsNotFound(err) {
			return stageError(ctx, w.entClient, eventID, domain.StageEnrich, job.JobRow,
				apperrors.InvalidEvent(fmt.Errorf("event %s not found", eventID)))
		}
		return stageError(ctx, w.entClient, eventID, domain.StageEnrich, job.JobRow,
			apperrors.StorageUnavailable(err))
	}

	switch ev.State {
	case event.StateRAW:
		// proceed
	case event.StateENRICHED, event.StateCLAIMED, event.StatePUBLISHED:
		// A prior delivery already enriched this event; make sure the
		// chain continues and stop.
		logger.Info("event already enriched, skipping duplicate analysis",
			zap.String("event_id", eventID),
			zap.String("state", ev.State.String()),
		)
		if err := w.enqueuer.EnqueueResolve(ctx, eventID); err != nil {
			return stageError(ctx, w.entClient, eventID, domain.StageEnrich, job.JobRow,
				apperrors.StorageUnavailable(err))
		}
		return nil
	default:
		// FAILED events stay failed until an operator replays them.
		return nil
	}

	result, err := w.enricher.Enrich(ctx, ev.RawContent, ev.LocationHint)
	if err != nil {
		return stageError(ctx, w.entClient, eventID, domain.StageEnrich, job.JobRow, err)
	}

	update := w.entClient.Event.UpdateOneID(eventID).
		SetNlpResult(result.NLP).
		SetFusedRisk(result.FusedRisk).
		SetState(event.StateENRICHED)
	if result.Satellite != nil {
		update.SetSatelliteResult(result.Satellite)
	}
	if err := update.Exec(ctx); err != nil {
		return stageError(ctx, w.entClient, eventID, domain.StageEnrich, job.JobRow,
			apperrors.StorageUnavailable(err))
	}

	if err := w.enqueuer.EnqueueResolve(ctx, eventID); err != nil {
		return stageError(ctx, w.entClient, eventID, domain.StageEnrich, job.JobRow,
			apperrors.StorageUnavailable(err))
	}

	logger.Debug("event enriched",
		zap.String("event_id", eventID),
		zap.Float64("fused_risk", result.FusedRisk),
		zap.Bool("satellite", result.Satellite != nil),
	)
	return nil
}
