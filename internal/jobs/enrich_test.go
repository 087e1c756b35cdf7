package jobs

import (
	"context"
	"errors"
	"testing"

	"github.com/riverqueue/river"

	"heatwatch.io/heatwatch/ent/event"
	"heatwatch.io/heatwatch/internal/domain"
	"heatwatch.io/heatwatch/internal/enrichment"
	apperrors "heatwatch.io/heatwatch/internal/pkg/errors"
	"heatwatch.io/heatwatch/internal/testutil"
)

func enrichJob(id string, attempt, maxAttempts int) *river.Job[EnrichArgs] {
	return &river.Job[EnrichArgs]{
		JobRow: jobRow(attempt, maxAttempts),
		Args:   EnrichArgs{EventID: id},
	}
}

func TestEnrichWorker_AdvancesAndChains(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "enrich_ok")
	ctx := context.Background()
	id := seedRawEvent(t, client)

	analyzer := &enrichment.MockAnalyzer{
		Result: &domain.NLPResult{MisinformationScore: 0.8, Confidence: 0.9, Categories: []string{"infrastructure"}},
	}
	validator := &enrichment.MockValidator{Result: &domain.SatelliteResult{Validated: false, Confidence: 0.6}}
	enqueuer := &mockEnqueuer{}
	worker := NewEnrichWorker(client, enrichment.NewEnricher(analyzer, validator), enqueuer)

	if err := worker.Work(ctx, enrichJob(id, 1, 5)); err != nil {
		t.Fatalf("Work() error = %v", err)
	}

	ev := client.Event.GetX(ctx, id)
	if ev.State != event.StateENRICHED {
		t.Errorf("state = %s, want ENRICHED", ev.State)
	}
	if ev.NlpResult == nil || ev.NlpResult.MisinformationScore != 0.8 {
		t.Errorf("nlp_result = %+v, want stored score 0.8", ev.NlpResult)
	}
	// Satellite ran (location + infrastructure category) but did not
	// validate, so the fused risk is the bare NLP score.
	if ev.SatelliteResult == nil || ev.SatelliteResult.Validated {
		t.Errorf("satellite_result = %+v, want unvalidated result stored", ev.SatelliteResult)
	}
	if diff := ev.FusedRisk - 0.8; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("fused_risk = %f, want 0.8", ev.FusedRisk)
	}
	if len(enqueuer.resolve) != 1 || enqueuer.resolve[0] != id {
		t.Errorf("resolve chain = %v, want [%s]", enqueuer.resolve, id)
	}
}

func TestEnrichWorker_RedeliveryOnlyRechains(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "enrich_redeliver")
	ctx := context.Background()
	id := seedRawEvent(t, client)
	client.Event.UpdateOneID(id).
		SetState(event.StateENRICHED).
		SetFusedRisk(0.7).
		ExecX(ctx)

	analyzer := &enrichment.MockAnalyzer{}
	enqueuer := &mockEnqueuer{}
	worker := NewEnrichWorker(client, enrichment.NewEnricher(analyzer, &enrichment.MockValidator{}), enqueuer)

	if err := worker.Work(ctx, enrichJob(id, 1, 5)); err != nil {
		t.Fatalf("Work() error = %v", err)
	}
	if analyzer.Calls != 0 {
		t.Errorf("analyzer calls = %d, want 0 on redelivery", analyzer.Calls)
	}
	if len(enqueuer.resolve) != 1 {
		t.Errorf("resolve chain = %v, want re-enqueued once", enqueuer.resolve)
	}
}

func TestEnrichWorker_TransientFailureRetries(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "enrich_transient")
	ctx := context.Background()
	id := seedRawEvent(t, client)

	analyzer := &enrichment.MockAnalyzer{Err: apperrors.TransientEnrichment(errors.New("analyzer timeout"))}
	worker := NewEnrichWorker(client, enrichment.NewEnricher(analyzer, &enrichment.MockValidator{}), &mockEnqueuer{})

	err := worker.Work(ctx, enrichJob(id, 2, 5))
	if err == nil {
		t.Fatal("Work() expected error for retry")
	}

	ev := client.Event.GetX(ctx, id)
	if ev.State != event.StateRAW {
		t.Errorf("state = %s, want RAW pending retry", ev.State)
	}
	if n := client.DeadLetter.Query().CountX(ctx); n != 0 {
		t.Errorf("dead letters = %d, want 0 below budget", n)
	}
}

func TestEnrichWorker_RejectionFailsImmediately(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "enrich_reject")
	ctx := context.Background()
	id := seedRawEvent(t, client)

	analyzer := &enrichment.MockAnalyzer{Err: apperrors.EnrichmentRejected(errors.New("unsupported language"))}
	enqueuer := &mockEnqueuer{}
	worker := NewEnrichWorker(client, enrichment.NewEnricher(analyzer, &enrichment.MockValidator{}), enqueuer)

	err := worker.Work(ctx, enrichJob(id, 1, 5))
	if err == nil {
		t.Fatal("Work() expected cancellation error")
	}

	ev := client.Event.GetX(ctx, id)
	if ev.State != event.StateFAILED {
		t.Errorf("state = %s, want FAILED", ev.State)
	}
	if len(enqueuer.resolve) != 0 {
		t.Error("rejected event must not chain to resolution")
	}
}
