package ingest

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"heatwatch.io/heatwatch/ent"
	"heatwatch.io/heatwatch/ent/datasource"
	"heatwatch.io/heatwatch/internal/pkg/logger"
)

// Tracker maintains per-source health counters. A source that fails
// repeatedly is moved to DEGRADED so the poller stops hammering a dead
// feed; an operator re-enables it through the admin API.
type Tracker struct {
	client    *ent.Client
	threshold int
}

func NewTracker(client *ent.Client, errorThreshold int) *Tracker {
	return &Tracker{client: client, threshold: errorThreshold}
}

// RecordSuccess resets the consecutive error streak and stamps the
// fetch. Event-level counters are bumped by the gate, not here.
func (t *Tracker) RecordSuccess(ctx context.Context, sourceID string) error {
	err := t.client.DataSource.UpdateOneID(sourceID).
		SetConsecutiveErrors(0).
		SetLastSuccessAt(time.Now().UTC()).
		SetLastError("").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("record fetch success for %s: %w", sourceID, err)
	}
	return nil
}

// RecordIngest counts one accepted event against the source.
func (t *Tracker) RecordIngest(ctx context.Context, sourceID string) error {
	err := t.client.DataSource.UpdateOneID(sourceID).
		AddFetchCount(1).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("record ingest for %s: %w", sourceID, err)
	}
	return nil
}

// RecordRejection counts one rejected event against the source. A
// per-item rejection leaves the consecutive streak alone: validation
// problems belong to the item, connector health to the fetch loop.
func (t *Tracker) RecordRejection(ctx context.Context, sourceID string, cause error) error {
	err := t.client.DataSource.UpdateOneID(sourceID).
		AddErrorCount(1).
		SetLastError(cause.Error()).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("record rejection for %s: %w", sourceID, err)
	}
	return nil
}

// RecordError bumps the error counters and degrades the source once the
// consecutive streak reaches the threshold.
func (t *Tracker) RecordError(ctx context.Context, sourceID string, fetchErr error) error {
	ds, err := t.client.DataSource.Query().Where(datasource.IDEQ(sourceID)).Only(ctx)
	if err != nil {
		return fmt.Errorf("look up data source %s: %w", sourceID, err)
	}

	streak := ds.ConsecutiveErrors + 1
	update := ds.Update().
		AddErrorCount(1).
		SetConsecutiveErrors(streak).
		SetLastError(fetchErr.Error())

	if streak >= t.threshold && ds.Status == datasource.StatusACTIVE {
		update.SetStatus(datasource.StatusDEGRADED)
		logger.Warn("data source degraded after consecutive fetch failures",
			zap.String("source_id", sourceID),
			zap.Int("consecutive_errors", streak),
			zap.Error(fetchErr))
	}

	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("record fetch error for %s: %w", sourceID, err)
	}
	return nil
}

// Reactivate puts a degraded or disabled source back in rotation.
func (t *Tracker) Reactivate(ctx context.Context, sourceID string) error {
	err := t.client.DataSource.UpdateOneID(sourceID).
		SetStatus(datasource.StatusACTIVE).
		SetConsecutiveErrors(0).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("reactivate data source %s: %w", sourceID, err)
	}
	return nil
}
