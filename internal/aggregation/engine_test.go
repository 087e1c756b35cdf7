package aggregation

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"

	"heatwatch.io/heatwatch/ent"
	"heatwatch.io/heatwatch/ent/event"
	"heatwatch.io/heatwatch/ent/hook"
	"heatwatch.io/heatwatch/ent/stateaggregation"
	"heatwatch.io/heatwatch/internal/domain"
	"heatwatch.io/heatwatch/internal/pkg/logger"
	"heatwatch.io/heatwatch/internal/testutil"
)

func init() {
	// Initialize logger for tests
	_ = logger.Init("error", "json")
}

func TestHeatIntensity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		total     int64
		high      int64
		validated int64
		avgRisk   float64
		want      float64
	}{
		{
			name: "empty bucket",
			want: 0,
		},
		{
			name:  "two high-risk none validated",
			total: 2, high: 2, avgRisk: 0.8,
			want: 0.8, // (2/2)*0.8*(1+0)
		},
		{
			name:  "half high-risk all validated",
			total: 4, high: 2, validated: 4, avgRisk: 0.6,
			want: 0.36, // (2/4)*0.6*(1+0.2)
		},
		{
			name:  "capped at one",
			total: 1, high: 1, validated: 1, avgRisk: 1.0,
			want: 1.0,
		},
		{
			name:  "no high-risk events",
			total: 10, avgRisk: 0.3,
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := HeatIntensity(tt.total, tt.high, tt.validated, tt.avgRisk)
			if diff := got - tt.want; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("HeatIntensity() = %f, want %f", got, tt.want)
			}
			if got < 0 || got > 1 {
				t.Errorf("HeatIntensity() = %f outside [0,1]", got)
			}
		})
	}
}

func seedClaimedEvent(t *testing.T, client *ent.Client, observedAt time.Time, risk float64, validated bool, region string) string {
	t.Helper()

	id := uuid.NewString()
	create := client.Event.Create().
		SetID(id).
		SetSourceID("test-source").
		SetSourceType(event.SourceTypeRss).
		SetRawContent("Bridge collapsed in Patna").
		SetNormalizedContent("bridge collapsed patna").
		SetRawHash(id).
		SetObservedAt(observedAt).
		SetIngestedAt(observedAt).
		SetNlpResult(&domain.NLPResult{MisinformationScore: risk, Confidence: 0.9, Categories: []string{"infrastructure"}}).
		SetFusedRisk(risk).
		SetState(event.StateCLAIMED).
		SetClaimID(uuid.NewString()).
		SetAttemptCounts(map[string]int{})
	if validated {
		create.SetSatelliteResult(&domain.SatelliteResult{Validated: true, Confidence: 0.7})
	}
	if region != "" {
		create.SetLocationHint(&domain.LocationHint{State: region})
	}
	create.SaveX(context.Background())
	return id
}

func TestEngine_ApplyFoldsBucket(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "agg_apply")
	engine := NewEngine(client, 0.5)
	ctx := context.Background()

	observed := time.Date(2024, 1, 1, 14, 30, 0, 0, time.UTC)
	first := seedClaimedEvent(t, client, observed, 0.8, false, "Bihar")
	second := seedClaimedEvent(t, client, observed.Add(45*time.Minute), 0.8, false, "Bihar")

	if err := engine.Apply(ctx, first); err != nil {
		t.Fatalf("Apply(first) error = %v", err)
	}
	if err := engine.Apply(ctx, second); err != nil {
		t.Fatalf("Apply(second) error = %v", err)
	}

	bucket := client.StateAggregation.Query().
		Where(
			stateaggregation.RegionEQ("Bihar"),
			stateaggregation.DateEQ("2024-01-01"),
			stateaggregation.HourEQ(14),
		).
		OnlyX(ctx)

	if bucket.TotalEvents != 2 || bucket.HighRiskEvents != 2 || bucket.ValidatedEvents != 0 {
		t.Errorf("bucket counts = total %d high %d validated %d, want 2/2/0",
			bucket.TotalEvents, bucket.HighRiskEvents, bucket.ValidatedEvents)
	}
	if diff := bucket.AvgMisinformationRisk - 0.8; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("avg_risk = %f, want 0.8", bucket.AvgMisinformationRisk)
	}
	if diff := bucket.HeatIntensity - 0.8; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("heat_intensity = %f, want 0.8", bucket.HeatIntensity)
	}
	if bucket.CategoryBreakdown["infrastructure"] != 2 {
		t.Errorf("category breakdown = %v, want infrastructure=2", bucket.CategoryBreakdown)
	}
	if bucket.HighRiskEvents > bucket.TotalEvents || bucket.ValidatedEvents > bucket.TotalEvents {
		t.Error("bucket counts violate conservation")
	}

	for _, id := range []string{first, second} {
		if st := client.Event.GetX(ctx, id).State; st != event.StatePUBLISHED {
			t.Errorf("event %s state = %s, want PUBLISHED", id, st)
		}
	}
}

func TestEngine_ApplyIsIdempotent(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "agg_idem")
	engine := NewEngine(client, 0.5)
	ctx := context.Background()

	observed := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	id := seedClaimedEvent(t, client, observed, 0.9, true, "Assam")

	if err := engine.Apply(ctx, id); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	// Redelivered job sees PUBLISHED and leaves the bucket alone.
	if err := engine.Apply(ctx, id); err != nil {
		t.Fatalf("Apply() redelivery error = %v", err)
	}

	bucket := client.StateAggregation.Query().
		Where(stateaggregation.RegionEQ("Assam")).
		OnlyX(ctx)
	if bucket.TotalEvents != 1 {
		t.Errorf("total_events = %d after redelivery, want 1", bucket.TotalEvents)
	}
}

func TestEngine_ApplyWithoutRegionPublishesWithoutBucket(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "agg_noregion")
	engine := NewEngine(client, 0.5)
	ctx := context.Background()

	id := seedClaimedEvent(t, client, time.Now().UTC(), 0.7, false, "")

	if err := engine.Apply(ctx, id); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if st := client.Event.GetX(ctx, id).State; st != event.StatePUBLISHED {
		t.Errorf("state = %s, want PUBLISHED", st)
	}
	if n := client.StateAggregation.Query().CountX(ctx); n != 0 {
		t.Errorf("bucket count = %d, want 0", n)
	}
}

func TestReader_QueryOrdersByIntensity(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "agg_query")
	ctx := context.Background()

	seed := []struct {
		region    string
		intensity float64
	}{
		{"Bihar", 0.8},
		{"Kerala", 0.3},
		{"Assam", 0.95},
	}
	for _, s := range seed {
		client.StateAggregation.Create().
			SetID(BucketID(s.region, "2024-01-01", 14)).
			SetRegion(s.region).
			SetDate("2024-01-01").
			SetHour(14).
			SetTotalEvents(4).
			SetHighRiskEvents(2).
			SetValidatedEvents(1).
			SetAvgMisinformationRisk(0.5).
			SetMaxMisinformationRisk(0.9).
			SetHeatIntensity(s.intensity).
			SetCategoryBreakdown(map[string]int64{}).
			SaveX(ctx)
	}

	reader := NewReader(client)

	buckets, err := reader.Query(ctx, QueryParams{
		From: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	if len(buckets) != 3 {
		t.Fatalf("Query() returned %d buckets, want 3", len(buckets))
	}
	if buckets[0].Region != "Assam" || buckets[2].Region != "Kerala" {
		t.Errorf("order = [%s %s %s], want hottest first",
			buckets[0].Region, buckets[1].Region, buckets[2].Region)
	}

	filtered, err := reader.Query(ctx, QueryParams{Region: "Bihar"})
	if err != nil {
		t.Fatalf("Query(region) error = %v", err)
	}
	if len(filtered) != 1 || filtered[0].Region != "Bihar" {
		t.Errorf("Query(region) = %v, want single Bihar bucket", filtered)
	}
}

func TestEngine_HighRiskCutoffIsStrict(t *testing.T) {
	t.Parallel()

	engine := NewEngine(nil, 0.5)

	tests := []struct {
		risk float64
		want bool
	}{
		{risk: 0.49, want: false},
		{risk: 0.5, want: false},
		{risk: 0.51, want: true},
	}
	for _, tt := range tests {
		if got := engine.highRisk(tt.risk); got != tt.want {
			t.Errorf("highRisk(%v) = %v, want %v", tt.risk, got, tt.want)
		}
	}
}

func TestEngine_PublishCommitsWithFold(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "agg_publish_tx")
	engine := NewEngine(client, 0.5)
	ctx := context.Background()

	var failPublish atomic.Bool
	client.Event.Use(func(next ent.Mutator) ent.Mutator {
		return hook.EventFunc(func(ctx context.Context, m *ent.EventMutation) (ent.Value, error) {
			if st, ok := m.State(); ok && st == event.StatePUBLISHED && failPublish.Load() {
				return nil, errors.New("publish write failed")
			}
			return next.Mutate(ctx, m)
		})
	})

	observed := time.Date(2024, 3, 5, 9, 15, 0, 0, time.UTC)
	id := seedClaimedEvent(t, client, observed, 0.8, false, "Assam")

	failPublish.Store(true)
	if err := engine.Apply(ctx, id); err == nil {
		t.Fatal("Apply() expected error while publish writes fail")
	}

	// The failed publish must take the fold down with it, or a retry
	// would count the event twice.
	buckets := client.StateAggregation.Query().
		Where(
			stateaggregation.RegionEQ("Assam"),
			stateaggregation.DateEQ("2024-03-05"),
			stateaggregation.HourEQ(9),
		).
		CountX(ctx)
	if buckets != 0 {
		t.Fatalf("bucket rows = %d after rollback, want 0", buckets)
	}
	if st := client.Event.GetX(ctx, id).State; st != event.StateCLAIMED {
		t.Fatalf("event state = %s after rollback, want CLAIMED", st)
	}

	failPublish.Store(false)
	if err := engine.Apply(ctx, id); err != nil {
		t.Fatalf("Apply() retry error = %v", err)
	}

	bucket := client.StateAggregation.Query().
		Where(
			stateaggregation.RegionEQ("Assam"),
			stateaggregation.DateEQ("2024-03-05"),
			stateaggregation.HourEQ(9),
		).
		OnlyX(ctx)
	if bucket.TotalEvents != 1 {
		t.Errorf("total_events = %d after retry, want 1", bucket.TotalEvents)
	}
	if st := client.Event.GetX(ctx, id).State; st != event.StatePUBLISHED {
		t.Errorf("event state = %s after retry, want PUBLISHED", st)
	}
}
