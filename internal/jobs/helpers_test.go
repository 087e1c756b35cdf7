package jobs

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/riverqueue/river/rivertype"

	"heatwatch.io/heatwatch/ent"
	"heatwatch.io/heatwatch/ent/deadletter"
	"heatwatch.io/heatwatch/ent/event"
	"heatwatch.io/heatwatch/internal/domain"
	apperrors "heatwatch.io/heatwatch/internal/pkg/errors"
	"heatwatch.io/heatwatch/internal/pkg/logger"
	"heatwatch.io/heatwatch/internal/testutil"
)

func init() {
	// Initialize logger for tests
	_ = logger.Init("error", "json")
}

type mockEnqueuer struct {
	mu        sync.Mutex
	enrich    []string
	resolve   []string
	aggregate []string
	err       error
}

func (m *mockEnqueuer) EnqueueEnrich(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.enrich = append(m.enrich, id)
	return m.err
}

func (m *mockEnqueuer) EnqueueResolve(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resolve = append(m.resolve, id)
	return m.err
}

func (m *mockEnqueuer) EnqueueAggregate(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.aggregate = append(m.aggregate, id)
	return m.err
}

func seedRawEvent(t *testing.T, client *ent.Client) string {
	t.Helper()

	id := uuid.NewString()
	client.Event.Create().
		SetID(id).
		SetSourceID("test-source").
		SetSourceType(event.SourceTypeRss).
		SetRawContent("Bridge collapsed in Patna this morning").
		SetNormalizedContent("bridge collapsed patna morning").
		SetRawHash(id).
		SetObservedAt(time.Now().UTC().Add(-time.Minute)).
		SetIngestedAt(time.Now().UTC()).
		SetState(event.StateRAW).
		SetAttemptCounts(map[string]int{}).
		SetLocationHint(&domain.LocationHint{State: "Bihar"}).
		SaveX(context.Background())
	return id
}

func jobRow(attempt, maxAttempts int) *rivertype.JobRow {
	errs := make([]rivertype.AttemptError, 0, attempt-1)
	for i := 1; i < attempt; i++ {
		errs = append(errs, rivertype.AttemptError{
			Attempt: i,
			At:      time.Now().UTC().Add(time.Duration(i-attempt) * time.Minute),
			Error:   "analyzer timeout",
		})
	}
	return &rivertype.JobRow{Attempt: attempt, MaxAttempts: maxAttempts, Errors: errs}
}

func TestAttemptHistory(t *testing.T) {
	t.Parallel()

	row := jobRow(5, 5)
	history := attemptHistory(row, errors.New("analyzer timeout"))

	if len(history) != 5 {
		t.Fatalf("attempt history length = %d, want 5", len(history))
	}
	for i, rec := range history {
		if rec.Attempt != i+1 {
			t.Errorf("history[%d].Attempt = %d, want %d", i, rec.Attempt, i+1)
		}
		if rec.Error == "" {
			t.Errorf("history[%d].Error empty", i)
		}
	}
}

func TestStageError_TransientBelowBudgetRetries(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "jobs_retry")
	ctx := context.Background()
	id := seedRawEvent(t, client)

	cause := apperrors.TransientEnrichment(errors.New("analyzer timeout"))
	err := stageError(ctx, client, id, domain.StageEnrich, jobRow(2, 5), cause)

	if !errors.Is(err, cause) {
		t.Errorf("stageError() = %v, want the cause back for retry", err)
	}
	ev := client.Event.GetX(ctx, id)
	if ev.State != event.StateRAW {
		t.Errorf("state = %s, want RAW untouched", ev.State)
	}
	if ev.AttemptCounts["enrich"] != 1 {
		t.Errorf("attempt_counts = %v, want enrich=1", ev.AttemptCounts)
	}
	if n := client.DeadLetter.Query().CountX(ctx); n != 0 {
		t.Errorf("dead letters = %d, want 0", n)
	}
}

func TestStageError_BudgetExhaustedDeadLetters(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "jobs_exhaust")
	ctx := context.Background()
	id := seedRawEvent(t, client)

	// Fifth transient failure of a five-attempt budget.
	cause := apperrors.TransientEnrichment(errors.New("analyzer timeout"))
	err := stageError(ctx, client, id, domain.StageEnrich, jobRow(5, 5), cause)
	if err == nil {
		t.Fatal("stageError() expected cancellation error")
	}

	ev := client.Event.GetX(ctx, id)
	if ev.State != event.StateFAILED {
		t.Errorf("state = %s, want FAILED", ev.State)
	}
	if ev.FailureReason != domain.ReasonTransientEnrichment {
		t.Errorf("failure_reason = %q, want %q", ev.FailureReason, domain.ReasonTransientEnrichment)
	}

	dl := client.DeadLetter.Query().Where(deadletter.EventIDEQ(id)).OnlyX(ctx)
	if dl.Stage != deadletter.StageEnrich {
		t.Errorf("dead letter stage = %s, want enrich", dl.Stage)
	}
	if dl.Reason != domain.ReasonTransientEnrichment {
		t.Errorf("dead letter reason = %q, want %q", dl.Reason, domain.ReasonTransientEnrichment)
	}
	if len(dl.AttemptHistory) != 5 {
		t.Errorf("attempt history length = %d, want 5", len(dl.AttemptHistory))
	}
}

func TestStageError_PermanentFailureDeadLettersImmediately(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "jobs_perm")
	ctx := context.Background()
	id := seedRawEvent(t, client)

	cause := apperrors.EnrichmentRejected(errors.New("unsupported language"))
	err := stageError(ctx, client, id, domain.StageEnrich, jobRow(1, 5), cause)
	if err == nil {
		t.Fatal("stageError() expected cancellation error")
	}

	ev := client.Event.GetX(ctx, id)
	if ev.State != event.StateFAILED {
		t.Errorf("state = %s, want FAILED on first permanent failure", ev.State)
	}

	dl := client.DeadLetter.Query().Where(deadletter.EventIDEQ(id)).OnlyX(ctx)
	if dl.Reason != domain.ReasonEnrichmentRejected {
		t.Errorf("dead letter reason = %q, want %q", dl.Reason, domain.ReasonEnrichmentRejected)
	}
	if len(dl.AttemptHistory) != 1 {
		t.Errorf("attempt history length = %d, want 1", len(dl.AttemptHistory))
	}
}
