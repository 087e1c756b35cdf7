package jobs

import (
	"context"
	"testing"
	"time"

	"github.com/riverqueue/river"

	"heatwatch.io/heatwatch/ent"
	"heatwatch.io/heatwatch/ent/event"
	"heatwatch.io/heatwatch/ent/stateaggregation"
	"heatwatch.io/heatwatch/internal/aggregation"
	"heatwatch.io/heatwatch/internal/claims"
	"heatwatch.io/heatwatch/internal/domain"
	"heatwatch.io/heatwatch/internal/enrichment"
	"heatwatch.io/heatwatch/internal/testutil"
)

// TestPipelineFlow drives two deliveries of the same rumor through the
// enrichment, resolution, and aggregation workers and checks the claim
// and bucket math end to end.
func TestPipelineFlow(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "pipeline_flow")
	ctx := context.Background()

	analyzer := &enrichment.MockAnalyzer{
		Result: &domain.NLPResult{MisinformationScore: 0.8, Confidence: 0.9, Categories: []string{"infrastructure"}},
	}
	validator := &enrichment.MockValidator{Result: &domain.SatelliteResult{Validated: false, Confidence: 0.6}}
	enqueuer := &mockEnqueuer{}

	enrichWorker := NewEnrichWorker(client, enrichment.NewEnricher(analyzer, validator), enqueuer)
	resolveWorker := NewClaimResolveWorker(client, claims.NewResolver(client, 0.3), enqueuer)
	aggregateWorker := NewAggregateWorker(client, aggregation.NewEngine(client, 0.5))

	observed := time.Date(2024, 1, 1, 14, 10, 0, 0, time.UTC)
	first := seedPipelineEvent(t, client, "pib-factcheck", "Bridge collapsed in Patna", observed)
	second := seedPipelineEvent(t, client, "district-crawler", "bridge COLLAPSED in patna!!", observed.Add(time.Hour))

	for _, id := range []string{first, second} {
		if err := enrichWorker.Work(ctx, enrichJob(id, 1, 5)); err != nil {
			t.Fatalf("enrich %s: %v", id, err)
		}
		job := &river.Job[ClaimResolveArgs]{JobRow: jobRow(1, 3), Args: ClaimResolveArgs{EventID: id}}
		if err := resolveWorker.Work(ctx, job); err != nil {
			t.Fatalf("resolve %s: %v", id, err)
		}
		aggJob := &river.Job[AggregateArgs]{JobRow: jobRow(1, 3), Args: AggregateArgs{EventID: id}}
		if err := aggregateWorker.Work(ctx, aggJob); err != nil {
			t.Fatalf("aggregate %s: %v", id, err)
		}
	}

	// Both phrasings normalize to the same fingerprint: one claim, two
	// occurrences, one distinct region.
	cl := client.Claim.Query().OnlyX(ctx)
	if cl.OccurrenceCount != 2 {
		t.Errorf("occurrence_count = %d, want 2", cl.OccurrenceCount)
	}
	if diff := cl.SpreadVelocity - 2.0; diff > 0.01 || diff < -0.01 {
		t.Errorf("spread_velocity = %f, want ~2.0", cl.SpreadVelocity)
	}
	if diff := cl.GeographicSpreadScore - 0.5; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("geographic_spread_score = %f, want 0.5", cl.GeographicSpreadScore)
	}

	evs := client.Event.Query().AllX(ctx)
	for _, ev := range evs {
		if ev.State != event.StatePUBLISHED {
			t.Errorf("event %s state = %s, want PUBLISHED", ev.ID, ev.State)
		}
		if ev.ClaimID != cl.ID {
			t.Errorf("event %s claim_id = %s, want %s", ev.ID, ev.ClaimID, cl.ID)
		}
	}

	bucket := client.StateAggregation.Query().
		Where(
			stateaggregation.RegionEQ("Bihar"),
			stateaggregation.DateEQ("2024-01-01"),
		).
		AllX(ctx)
	var total, high int64
	for _, b := range bucket {
		total += b.TotalEvents
		high += b.HighRiskEvents
		if b.HeatIntensity < 0 || b.HeatIntensity > 1 {
			t.Errorf("heat_intensity = %f outside [0,1]", b.HeatIntensity)
		}
	}
	if total != 2 || high != 2 {
		t.Errorf("bucket totals = %d/%d, want 2 events, both high-risk", total, high)
	}
}

func seedPipelineEvent(t *testing.T, client *ent.Client, sourceID, content string, observedAt time.Time) string {
	t.Helper()

	id := claims.RawHash(sourceID, content)
	client.Event.Create().
		SetID(id).
		SetSourceID(sourceID).
		SetSourceType(event.SourceTypeRss).
		SetRawContent(content).
		SetNormalizedContent(claims.Normalize(content)).
		SetRawHash(id).
		SetObservedAt(observedAt).
		SetIngestedAt(observedAt).
		SetState(event.StateRAW).
		SetAttemptCounts(map[string]int{}).
		SetLocationHint(&domain.LocationHint{State: "Bihar"}).
		SaveX(context.Background())
	return id
}
