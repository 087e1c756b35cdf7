// Package aggregation folds published events into hourly per-region
// risk buckets and serves heatmap reads over them.
package aggregation

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"heatwatch.io/heatwatch/ent"
	"heatwatch.io/heatwatch/ent/event"
	"heatwatch.io/heatwatch/ent/stateaggregation"
	apperrors "heatwatch.io/heatwatch/internal/pkg/errors"
	"heatwatch.io/heatwatch/internal/pkg/logger"
)

const dateLayout = "2006-01-02"

// Engine applies events to hourly region buckets. Bucket updates run in
// a transaction with the row locked, so concurrent workers fold into
// the same bucket without losing counts.
type Engine struct {
	client        *ent.Client
	highRiskLimit float64
}

func NewEngine(client *ent.Client, highRiskThreshold float64) *Engine {
	return &Engine{client: client, highRiskLimit: highRiskThreshold}
}

// Apply folds one claimed event into its region/hour bucket and marks
// it PUBLISHED. Already-published events are skipped, which makes
// redelivery of the aggregation job harmless. Events without a usable
// region cannot be placed on the map and are published without a
// bucket.
func (e *Engine) Apply(ctx context.Context, eventID string) error {
	ev, err := e.client.Event.Get(ctx, eventID)
	if err != nil {
		if ent.IsNotFound(err) {
			return apperrors.InvalidEvent(fmt.Errorf("event %s not found", eventID))
		}
		return apperrors.StorageUnavailable(fmt.Errorf("load event %s: %w", eventID, err))
	}

	if ev.State == event.StatePUBLISHED {
		return nil
	}
	if ev.State != event.StateCLAIMED {
		return apperrors.InvalidEvent(fmt.Errorf("event %s in state %s cannot be aggregated", eventID, ev.State))
	}

	region := ev.LocationHint.Region()
	if region == "" {
		logger.Debug("event has no region, skipping bucket",
			zap.String("event_id", eventID))
		return e.markPublished(ctx, eventID)
	}

	date := ev.ObservedAt.UTC().Format(dateLayout)
	hour := ev.ObservedAt.UTC().Hour()

	txErr := e.withTx(ctx, func(tx *ent.Tx) error {
		bucket, err := tx.StateAggregation.Query().
			Where(
				stateaggregation.RegionEQ(region),
				stateaggregation.DateEQ(date),
				stateaggregation.HourEQ(hour),
			).
			ForUpdate().
			Only(ctx)
		if err != nil && !ent.IsNotFound(err) {
			return fmt.Errorf("load bucket %s/%s/%d: %w", region, date, hour, err)
		}

		if ent.IsNotFound(err) {
			err = e.createBucket(ctx, tx, region, date, hour, ev)
		} else {
			err = e.updateBucket(ctx, tx, bucket, ev)
		}
		if err != nil {
			return err
		}

		// The state change commits together with the fold. A redelivered
		// job sees PUBLISHED and never folds the event twice.
		if err := tx.Event.UpdateOneID(eventID).
			SetState(event.StatePUBLISHED).
			Exec(ctx); err != nil {
			return fmt.Errorf("publish event %s: %w", eventID, err)
		}
		return nil
	})
	if txErr != nil {
		if ent.IsConstraintError(txErr) {
			// Two workers created the same bucket at once; the retry
			// folds into the winner's row.
			return apperrors.StorageUnavailable(fmt.Errorf("bucket create race for %s/%s/%d: %w", region, date, hour, txErr))
		}
		return apperrors.StorageUnavailable(txErr)
	}

	return nil
}

// highRisk applies the strict cutoff: a fused risk exactly at the
// threshold is not high-risk.
func (e *Engine) highRisk(risk float64) bool {
	return risk > e.highRiskLimit
}

func (e *Engine) createBucket(ctx context.Context, tx *ent.Tx, region, date string, hour int, ev *ent.Event) error {
	validated := int64(0)
	if ev.SatelliteResult != nil && ev.SatelliteResult.Validated {
		validated = 1
	}
	high := int64(0)
	if e.highRisk(ev.FusedRisk) {
		high = 1
	}

	_, err := tx.StateAggregation.Create().
		SetID(BucketID(region, date, hour)).
		SetRegion(region).
		SetDate(date).
		SetHour(hour).
		SetTotalEvents(1).
		SetHighRiskEvents(high).
		SetValidatedEvents(validated).
		SetAvgMisinformationRisk(ev.FusedRisk).
		SetMaxMisinformationRisk(ev.FusedRisk).
		SetHeatIntensity(HeatIntensity(1, high, validated, ev.FusedRisk)).
		SetCategoryBreakdown(categoryCounts(nil, ev)).
		Save(ctx)
	return err
}

func (e *Engine) updateBucket(ctx context.Context, tx *ent.Tx, bucket *ent.StateAggregation, ev *ent.Event) error {
	total := bucket.TotalEvents + 1
	high := bucket.HighRiskEvents
	if e.highRisk(ev.FusedRisk) {
		high++
	}
	validated := bucket.ValidatedEvents
	if ev.SatelliteResult != nil && ev.SatelliteResult.Validated {
		validated++
	}

	avg := (bucket.AvgMisinformationRisk*float64(bucket.TotalEvents) + ev.FusedRisk) / float64(total)
	max := bucket.MaxMisinformationRisk
	if ev.FusedRisk > max {
		max = ev.FusedRisk
	}

	return tx.StateAggregation.UpdateOneID(bucket.ID).
		SetTotalEvents(total).
		SetHighRiskEvents(high).
		SetValidatedEvents(validated).
		SetAvgMisinformationRisk(avg).
		SetMaxMisinformationRisk(max).
		SetHeatIntensity(HeatIntensity(total, high, validated, avg)).
		SetCategoryBreakdown(categoryCounts(bucket.CategoryBreakdown, ev)).
		Exec(ctx)
}

func (e *Engine) markPublished(ctx context.Context, eventID string) error {
	err := e.client.Event.UpdateOneID(eventID).
		SetState(event.StatePUBLISHED).
		Exec(ctx)
	if err != nil {
		return apperrors.StorageUnavailable(fmt.Errorf("publish event %s: %w", eventID, err))
	}
	return nil
}

func (e *Engine) withTx(ctx context.Context, fn func(tx *ent.Tx) error) error {
	tx, err := e.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback()
			panic(r)
		}
	}()
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// BucketID is the deterministic row key for a (region, date, hour)
// bucket.
func BucketID(region, date string, hour int) string {
	return fmt.Sprintf("%s|%s|%02d", region, date, hour)
}

// HeatIntensity is the bucket's map weight: the high-risk share scaled
// by average risk, boosted up to 20% by the satellite-validated share,
// capped at 1.0.
func HeatIntensity(total, high, validated int64, avgRisk float64) float64 {
	if total == 0 {
		return 0
	}
	intensity := (float64(high) / float64(total)) * avgRisk * (1 + 0.2*float64(validated)/float64(total))
	if intensity > 1.0 {
		intensity = 1.0
	}
	return intensity
}

func categoryCounts(existing map[string]int64, ev *ent.Event) map[string]int64 {
	out := make(map[string]int64, len(existing)+2)
	for k, v := range existing {
		out[k] = v
	}
	if ev.NlpResult != nil {
		for _, c := range ev.NlpResult.Categories {
			out[c]++
		}
	}
	return out
}

// bucketTimeRange converts a [from, to] time range to date-string
// bounds for bucket queries.
func bucketTimeRange(from, to time.Time) (string, string) {
	return from.UTC().Format(dateLayout), to.UTC().Format(dateLayout)
}
