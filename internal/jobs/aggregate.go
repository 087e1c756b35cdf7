package jobs

import (
	"context"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"heatwatch.io/heatwatch/ent"
	"heatwatch.io/heatwatch/internal/aggregation"
	"heatwatch.io/heatwatch/internal/domain"
	"heatwatch.io/heatwatch/internal/infrastructure"
	"heatwatch.io/heatwatch/internal/pkg/logger"
)

// AggregateArgs carries only the event ID.
type AggregateArgs struct {
	EventID string `json:"event_id"`
}

// Kind returns the job kind identifier for aggregation.
func (AggregateArgs) Kind() string { return "event_aggregate" }

// InsertOpts returns default insert options for aggregation jobs.
func (AggregateArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		Queue: infrastructure.QueueAggregation,
		UniqueOpts: river.UniqueOpts{
			ByArgs:  true,
			ByQueue: true,
		},
	}
}

// AggregateWorker folds a claimed event into its hourly region bucket
// and publishes it.
type AggregateWorker struct {
	river.WorkerDefaults[AggregateArgs]
	entClient *ent.Client
	engine    *aggregation.Engine
}

func NewAggregateWorker(entClient *ent.Client, engine *aggregation.Engine) *AggregateWorker {
	return &AggregateWorker{entClient: entClient, engine: engine}
}

// Work executes the aggregation stage.
func (w *AggregateWorker) Work(ctx context.Context, job *river.Job[AggregateArgs]) error {
	eventID := job.Args.EventID

	if err := w.engine.Apply(ctx, eventID); err != nil {
		return stageError(ctx, w.entClient, eventID, domain.StageAggregate, job.JobRow, err)
	}

	logger.Debug("event aggregated", zap.String("event_id", eventID))
	return nil
}
