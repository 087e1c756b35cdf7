package jobs

import (
	"context"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"heatwatch.io/heatwatch/ent"
	"heatwatch.io/heatwatch/ent/claim"
	"heatwatch.io/heatwatch/ent/deadletter"
	"heatwatch.io/heatwatch/ent/stateaggregation"
	"heatwatch.io/heatwatch/internal/config"
	"heatwatch.io/heatwatch/internal/pkg/logger"
)

// RetentionArgs is the periodic storage retention job.
type RetentionArgs struct{}

// Kind returns the job kind identifier for retention.
func (RetentionArgs) Kind() string { return "storage_retention" }

// InsertOpts returns default insert options for retention jobs.
func (RetentionArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: 1,
		UniqueOpts: river.UniqueOpts{
			ByQueue: true,
		},
	}
}

// RetentionWorker enforces the storage retention windows: old
// aggregation buckets are dropped, stale claims archived, and expired
// dead letters purged. Each sweep is independent; one failing does not
// stop the others.
type RetentionWorker struct {
	river.WorkerDefaults[RetentionArgs]
	entClient *ent.Client
	cfg       config.RetentionConfig
}

func NewRetentionWorker(entClient *ent.Client, cfg config.RetentionConfig) *RetentionWorker {
	return &RetentionWorker{entClient: entClient, cfg: cfg}
}

// Work runs all retention sweeps once.
func (w *RetentionWorker) Work(ctx context.Context, _ *river.Job[RetentionArgs]) error {
	now := time.Now().UTC()

	bucketCutoff := now.AddDate(0, 0, -w.cfg.AggregationDays).Format("2006-01-02")
	dropped, err := w.entClient.StateAggregation.Delete().
		Where(stateaggregation.DateLT(bucketCutoff)).
		Exec(ctx)
	if err != nil {
		logger.Error("failed to drop expired aggregation buckets", zap.Error(err))
	} else if dropped > 0 {
		logger.Info("dropped expired aggregation buckets",
			zap.Int("count", dropped),
			zap.String("cutoff", bucketCutoff),
		)
	}

	claimCutoff := now.AddDate(0, 0, -w.cfg.ClaimArchiveDays)
	archived, err := w.entClient.Claim.Update().
		Where(
			claim.LastSeenAtLT(claimCutoff),
			claim.ArchivedAtIsNil(),
		).
		SetArchivedAt(now).
		Save(ctx)
	if err != nil {
		logger.Error("failed to archive stale claims", zap.Error(err))
	} else if archived > 0 {
		logger.Info("archived stale claims",
			zap.Int("count", archived),
			zap.Time("cutoff", claimCutoff),
		)
	}

	dlCutoff := now.AddDate(0, 0, -w.cfg.DeadLetterDays)
	purged, err := w.entClient.DeadLetter.Delete().
		Where(deadletter.CreatedAtLT(dlCutoff)).
		Exec(ctx)
	if err != nil {
		logger.Error("failed to purge expired dead letters", zap.Error(err))
	} else if purged > 0 {
		logger.Info("purged expired dead letters",
			zap.Int("count", purged),
			zap.Time("cutoff", dlCutoff),
		)
	}

	return nil
}
