package jobs

import (
	"context"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"heatwatch.io/heatwatch/internal/infrastructure"
	"heatwatch.io/heatwatch/internal/pkg/logger"
	"heatwatch.io/heatwatch/internal/pkg/metrics"
)

// BacklogWatchArgs is the periodic queue-depth inspection job.
type BacklogWatchArgs struct{}

// Kind returns the job kind identifier for backlog inspection.
func (BacklogWatchArgs) Kind() string { return "backlog_watch" }

// InsertOpts returns default insert options for backlog inspection.
func (BacklogWatchArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: 1,
		UniqueOpts: river.UniqueOpts{
			ByQueue: true,
		},
	}
}

// BacklogWatchWorker samples pending-job depth per stage queue, exports
// it as a gauge, and raises a log alert when a queue exceeds the
// configured threshold. Reporting only: the pipeline never sheds load.
type BacklogWatchWorker struct {
	river.WorkerDefaults[BacklogWatchArgs]
	db        *infrastructure.DatabaseClients
	threshold int
}

func NewBacklogWatchWorker(db *infrastructure.DatabaseClients, threshold int) *BacklogWatchWorker {
	return &BacklogWatchWorker{db: db, threshold: threshold}
}

// Work samples every stage queue once.
func (w *BacklogWatchWorker) Work(ctx context.Context, _ *river.Job[BacklogWatchArgs]) error {
	for _, queue := range infrastructure.StageQueues {
		pending, err := w.db.PendingJobs(ctx, queue)
		if err != nil {
			logger.Warn("failed to sample queue backlog",
				zap.String("queue", queue),
				zap.Error(err),
			)
			continue
		}

		metrics.StageBacklog.WithLabelValues(queue).Set(float64(pending))
		if pending > int64(w.threshold) {
			logger.Warn("stage queue backlog above threshold",
				zap.String("queue", queue),
				zap.Int64("pending", pending),
				zap.Int("threshold", w.threshold),
			)
		}
	}
	return nil
}
