package claims

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"heatwatch.io/heatwatch/ent"
	entclaim "heatwatch.io/heatwatch/ent/claim"
	entevent "heatwatch.io/heatwatch/ent/event"
	apperrors "heatwatch.io/heatwatch/internal/pkg/errors"
	"heatwatch.io/heatwatch/internal/pkg/logger"
	"heatwatch.io/heatwatch/internal/pkg/metrics"
)

// minVelocityHours floors the spread-velocity denominator so
// near-simultaneous occurrences don't blow the ratio up.
const minVelocityHours = 1.0 / 60.0

// Resolution reports the outcome of resolving one event.
type Resolution struct {
	ClaimID string
	Created bool
}

// Resolver merges enriched events into canonical claims. All updates to
// a single claim row are serialized with a row lock; the create race on
// a novel fingerprint is caught by the unique constraint and surfaced as
// a retryable conflict.
type Resolver struct {
	client     *ent.Client
	ewmaWeight float64
}

// NewResolver creates a Resolver. ewmaWeight is the weight of the newest
// sample in the claim's running risk average.
func NewResolver(client *ent.Client, ewmaWeight float64) *Resolver {
	return &Resolver{client: client, ewmaWeight: ewmaWeight}
}

// Resolve links an ENRICHED event to its claim, creating the claim when
// the fingerprint is novel, and advances the event to CLAIMED.
//
// Re-delivery safety: an event whose claim_id is already set is returned
// as-is without touching claim counters, so at-least-once delivery never
// double-increments occurrence_count.
func (r *Resolver) Resolve(ctx context.Context, eventID string) (*Resolution, error) {
	ev, err := r.client.Event.Get(ctx, eventID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("event %s not found: %w", eventID, err)
		}
		return nil, apperrors.StorageUnavailable(fmt.Errorf("fetch event %s: %w", eventID, err))
	}

	if ev.ClaimID != "" {
		logger.Debug("event already resolved, skipping duplicate merge",
			zap.String("event_id", eventID),
			zap.String("claim_id", ev.ClaimID),
		)
		return &Resolution{ClaimID: ev.ClaimID, Created: false}, nil
	}
	if ev.State == entevent.StateRAW {
		return nil, fmt.Errorf("event %s is not enriched yet (state=%s)", eventID, ev.State)
	}

	fp := Fingerprint(ev.NormalizedContent)
	region := ev.LocationHint.Region()

	var res Resolution
	txErr := withTx(ctx, r.client, func(tx *ent.Tx) error {
		existing, err := tx.Claim.Query().
			Where(entclaim.FingerprintEQ(fp)).
			ForUpdate().
			Only(ctx)
		switch {
		case err == nil:
			merged, err := mergeClaim(ctx, tx, existing, ev, region, r.ewmaWeight)
			if err != nil {
				return err
			}
			res = Resolution{ClaimID: merged.ID, Created: false}
		case ent.IsNotFound(err):
			created, err := createClaim(ctx, tx, fp, ev, region)
			if err != nil {
				return err
			}
			res = Resolution{ClaimID: created.ID, Created: true}
		default:
			return apperrors.StorageUnavailable(fmt.Errorf("query claim by fingerprint: %w", err))
		}

		// Weak back-reference plus forward state transition, in the same
		// transaction as the merge so a crash can't half-apply.
		if _, err := tx.Event.UpdateOneID(ev.ID).
			SetClaimID(res.ClaimID).
			SetState(entevent.StateCLAIMED).
			Save(ctx); err != nil {
			return apperrors.StorageUnavailable(fmt.Errorf("link event %s to claim %s: %w", ev.ID, res.ClaimID, err))
		}
		return nil
	})
	if txErr != nil {
		if ent.IsConstraintError(txErr) {
			// Two workers raced on a novel fingerprint; the loser retries
			// and will find the winner's row.
			return nil, apperrors.ClaimConflict(txErr)
		}
		return nil, txErr
	}

	if res.Created {
		metrics.ClaimsCreated.Inc()
	} else {
		metrics.ClaimsMerged.Inc()
	}
	return &res, nil
}

func createClaim(ctx context.Context, tx *ent.Tx, fp string, ev *ent.Event, region string) (*ent.Claim, error) {
	var locations []string
	if region != "" {
		locations = []string{region}
	}

	created, err := tx.Claim.Create().
		SetID(uuid.NewString()).
		SetFingerprint(fp).
		SetFirstSeenAt(ev.ObservedAt).
		SetFirstSeenEventID(ev.ID).
		SetLastSeenAt(ev.ObservedAt).
		SetOccurrenceCount(1).
		SetDistinctLocations(locations).
		SetSpreadVelocity(0).
		SetGeographicSpreadScore(geoSpreadScore(len(locations), 1)).
		SetOverallRiskScore(ev.FusedRisk).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, err // classified as ClaimConflict by the caller
		}
		return nil, apperrors.StorageUnavailable(fmt.Errorf("create claim: %w", err))
	}
	return created, nil
}

func mergeClaim(ctx context.Context, tx *ent.Tx, cl *ent.Claim, ev *ent.Event, region string, ewmaWeight float64) (*ent.Claim, error) {
	occ := cl.OccurrenceCount + 1

	locations := cl.DistinctLocations
	if region != "" && !contains(locations, region) {
		locations = append(locations, region)
	}

	lastSeen := cl.LastSeenAt
	if ev.ObservedAt.After(lastSeen) {
		lastSeen = ev.ObservedAt
	}

	merged, err := tx.Claim.UpdateOneID(cl.ID).
		SetOccurrenceCount(occ).
		SetDistinctLocations(locations).
		SetSpreadVelocity(spreadVelocity(occ, cl.FirstSeenAt, lastSeen)).
		SetGeographicSpreadScore(geoSpreadScore(len(locations), occ)).
		SetOverallRiskScore(ewma(cl.OverallRiskScore, ev.FusedRisk, ewmaWeight)).
		SetLastSeenAt(lastSeen).
		Save(ctx)
	if err != nil {
		return nil, apperrors.StorageUnavailable(fmt.Errorf("merge claim %s: %w", cl.ID, err))
	}
	return merged, nil
}

// spreadVelocity is occurrences per hour since the claim was first seen,
// with the denominator floored at one minute.
func spreadVelocity(occurrences int64, firstSeen, lastSeen time.Time) float64 {
	hours := lastSeen.Sub(firstSeen).Hours()
	if hours < minVelocityHours {
		hours = minVelocityHours
	}
	return float64(occurrences) / hours
}

// geoSpreadScore is |distinct_locations| / occurrence_count, bounded [0,1].
func geoSpreadScore(locations int, occurrences int64) float64 {
	if occurrences <= 0 {
		return 0
	}
	score := float64(locations) / float64(occurrences)
	if score > 1 {
		score = 1
	}
	if score < 0 {
		score = 0
	}
	return score
}

// ewma folds a new sample into the running risk average, weighting the
// newest sample by w.
func ewma(current, sample, w float64) float64 {
	return (1-w)*current + w*sample
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

// withTx runs fn inside a transaction, rolling back on error or panic.
func withTx(ctx context.Context, client *ent.Client, fn func(tx *ent.Tx) error) error {
	tx, err := client.Tx(ctx)
	if err != nil {
		return apperrors.StorageUnavailable(fmt.Errorf("begin tx: %w", err))
	}
	defer func() {
		if v := recover(); v != nil {
			_ = tx.Rollback()
			panic(v)
		}
	}()
	if err := fn(tx); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			err = fmt.Errorf("%w: rolling back: %v", err, rerr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return apperrors.StorageUnavailable(fmt.Errorf("commit tx: %w", err))
	}
	return nil
}
