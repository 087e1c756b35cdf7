package aggregation

import (
	"context"
	"fmt"
	"time"

	"heatwatch.io/heatwatch/ent"
	"heatwatch.io/heatwatch/ent/stateaggregation"
	apperrors "heatwatch.io/heatwatch/internal/pkg/errors"
)

const defaultQueryLimit = 200

// QueryParams filters a heatmap read. Zero values mean "no filter".
type QueryParams struct {
	Region string
	From   time.Time
	To     time.Time
	Limit  int
}

// Reader serves heatmap queries over the aggregation buckets.
type Reader struct {
	client *ent.Client
}

func NewReader(client *ent.Client) *Reader {
	return &Reader{client: client}
}

// Query returns buckets matching params, hottest first.
func (r *Reader) Query(ctx context.Context, params QueryParams) ([]*ent.StateAggregation, error) {
	q := r.client.StateAggregation.Query()

	if params.Region != "" {
		q = q.Where(stateaggregation.RegionEQ(params.Region))
	}
	if !params.From.IsZero() && !params.To.IsZero() {
		fromDate, toDate := bucketTimeRange(params.From, params.To)
		q = q.Where(
			stateaggregation.DateGTE(fromDate),
			stateaggregation.DateLTE(toDate),
		)
	}

	limit := params.Limit
	if limit <= 0 || limit > defaultQueryLimit {
		limit = defaultQueryLimit
	}

	buckets, err := q.
		Order(ent.Desc(stateaggregation.FieldHeatIntensity), ent.Asc(stateaggregation.FieldRegion)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, apperrors.StorageUnavailable(fmt.Errorf("query aggregation buckets: %w", err))
	}
	return buckets, nil
}
