// Package jobs defines the River queue jobs that move events through
// the pipeline stages. Jobs carry only the event ID; all state lives in
// the database.
package jobs

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"go.uber.org/zap"

	"heatwatch.io/heatwatch/ent"
	"heatwatch.io/heatwatch/ent/deadletter"
	"heatwatch.io/heatwatch/ent/event"
	"heatwatch.io/heatwatch/internal/domain"
	apperrors "heatwatch.io/heatwatch/internal/pkg/errors"
	"heatwatch.io/heatwatch/internal/pkg/logger"
	"heatwatch.io/heatwatch/internal/pkg/metrics"
)

// recordAttempt bumps the per-stage attempt counter on the event. This
// is a best-effort operation: failures are logged but not propagated,
// since the counter is diagnostic and River tracks attempts
// authoritatively.
func recordAttempt(ctx context.Context, client *ent.Client, eventID string, stage domain.Stage) {
	ev, err := client.Event.Get(ctx, eventID)
	if err != nil {
		logger.Warn("failed to load event for attempt accounting",
			zap.String("event_id", eventID),
			zap.String("stage", string(stage)),
			zap.Error(err),
		)
		return
	}
	counts := ev.AttemptCounts
	if counts == nil {
		counts = map[string]int{}
	}
	counts[string(stage)]++
	if err := ev.Update().SetAttemptCounts(counts).Exec(ctx); err != nil {
		logger.Warn("failed to record stage attempt",
			zap.String("event_id", eventID),
			zap.String("stage", string(stage)),
			zap.Error(err),
		)
	}
}

// stageError routes a stage failure: permanent failures and exhausted
// attempt budgets divert the event to the dead letter store and cancel
// the job; transient failures below the budget bubble up so River
// retries with backoff.
func stageError(ctx context.Context, client *ent.Client, eventID string, stage domain.Stage, row *rivertype.JobRow, cause error) error {
	recordAttempt(ctx, client, eventID, stage)

	if apperrors.IsTransient(cause) && row.Attempt < row.MaxAttempts {
		logger.Warn("stage failed, will retry",
			zap.String("event_id", eventID),
			zap.String("stage", string(stage)),
			zap.Int("attempt", row.Attempt),
			zap.Int("max_attempts", row.MaxAttempts),
			zap.Error(cause),
		)
		return cause
	}
	return divertToDeadLetter(ctx, client, eventID, stage, row, cause)
}

// divertToDeadLetter marks the event FAILED, writes the dead letter
// entry, and cancels the job so River never re-runs it.
func divertToDeadLetter(ctx context.Context, client *ent.Client, eventID string, stage domain.Stage, row *rivertype.JobRow, cause error) error {
	reason := apperrors.ReasonOf(cause)

	err := client.Event.UpdateOneID(eventID).
		SetState(event.StateFAILED).
		SetFailureReason(reason).
		Exec(ctx)
	if err != nil && !ent.IsNotFound(err) {
		// The event row must reflect the terminal state before the dead
		// letter exists, otherwise a replay could race a half-failed event.
		return apperrors.StorageUnavailable(err)
	}

	_, err = client.DeadLetter.Create().
		SetID(uuid.Must(uuid.NewV7()).String()).
		SetEventID(eventID).
		SetStage(deadletter.Stage(stage)).
		SetReason(reason).
		SetMessage(cause.Error()).
		SetAttemptHistory(attemptHistory(row, cause)).
		Save(ctx)
	if err != nil {
		return apperrors.StorageUnavailable(err)
	}

	metrics.EventsDeadLettered.WithLabelValues(string(stage), reason).Inc()
	logger.Error("event diverted to dead letter",
		zap.String("event_id", eventID),
		zap.String("stage", string(stage)),
		zap.String("reason", reason),
		zap.Int("attempts", row.Attempt),
		zap.Error(cause),
	)
	return river.JobCancel(cause)
}

// attemptHistory folds River's per-attempt error log plus the final
// cause into the dead letter record.
func attemptHistory(row *rivertype.JobRow, cause error) []domain.AttemptRecord {
	history := make([]domain.AttemptRecord, 0, len(row.Errors)+1)
	for _, attemptErr := range row.Errors {
		history = append(history, domain.AttemptRecord{
			Attempt: attemptErr.Attempt,
			At:      attemptErr.At,
			Error:   attemptErr.Error,
		})
	}
	history = append(history, domain.AttemptRecord{
		Attempt: row.Attempt,
		At:      time.Now().UTC(),
		Error:   cause.Error(),
	})
	return history
}
