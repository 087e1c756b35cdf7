package ingest

import (
	"context"
	"sync"
	"testing"
	"time"

	"heatwatch.io/heatwatch/ent/datasource"
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

type recordingEnqueuer struct {
	mu       sync.Mutex
	eventIDs []string
}

func (r *recordingEnqueuer) EnqueueEnrich(_ context.Context, eventID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.eventIDs = append(r.eventIDs, eventID)
	return nil
}

func testGateConfig() GateConfig {
	return GateConfig{
		MinContentLength:   8,
		ClockSkewTolerance: 5 * time.Minute,
		DedupWindow:        10 * time.Minute,
	}
}

func validRawEvent() domain.RawEvent {
	return domain.RawEvent{
		SourceID:   "pib-factcheck",
		SourceType: domain.SourceRSS,
		Content:    "Dam breach reported upstream of the city, residents advised to evacuate",
		Timestamp:  time.Now().Add(-time.Minute),
		Location:   &domain.LocationHint{State: "Kerala"},
	}
}

func TestGate_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*domain.RawEvent)
	}{
		{
			name:   "missing source id",
			mutate: func(e *domain.RawEvent) { e.SourceID = "" },
		},
		{
			name:   "unknown source type",
			mutate: func(e *domain.RawEvent) { e.SourceType = "telegraph" },
		},
		{
			name:   "content too short",
			mutate: func(e *domain.RawEvent) { e.Content = "short" },
		},
		{
			name:   "zero timestamp",
			mutate: func(e *domain.RawEvent) { e.Timestamp = time.Time{} },
		},
		{
			name:   "timestamp beyond skew tolerance",
			mutate: func(e *domain.RawEvent) { e.Timestamp = time.Now().Add(time.Hour) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// Validation failures return before any storage access.
			gate := NewGate(nil, &recordingEnqueuer{}, testGateConfig())
			raw := validRawEvent()
			tt.mutate(&raw)

			_, err := gate.Ingest(context.Background(), raw)
			if err == nil {
				t.Fatal("Ingest() expected validation error")
			}
			if got := apperrors.ReasonOf(err); got != domain.ReasonInvalidEvent {
				t.Errorf("ReasonOf() = %q, want %q", got, domain.ReasonInvalidEvent)
			}
			if apperrors.IsTransient(err) {
				t.Error("validation failures must not be retried")
			}
		})
	}
}

func TestGate_IngestAndDedup(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "gate_ingest")
	enqueuer := &recordingEnqueuer{}
	gate := NewGate(client, enqueuer, testGateConfig())
	ctx := context.Background()

	raw := validRawEvent()

	first, err := gate.Ingest(ctx, raw)
	if err != nil {
		t.Fatalf("Ingest() error = %v", err)
	}
	if first.Deduped || first.EventID == "" {
		t.Fatalf("first Ingest() = %+v, want accepted with event ID", first)
	}

	stored := client.Event.GetX(ctx, first.EventID)
	if stored.State != event.StateRAW {
		t.Errorf("state = %s, want RAW", stored.State)
	}
	if stored.NormalizedContent == "" || stored.NormalizedContent == stored.RawContent {
		t.Errorf("normalized content not derived: %q", stored.NormalizedContent)
	}

	// Same content from the same source inside the window is dropped.
	second, err := gate.Ingest(ctx, raw)
	if err != nil {
		t.Fatalf("duplicate Ingest() error = %v", err)
	}
	if !second.Deduped {
		t.Error("duplicate Ingest() not deduped")
	}

	// The same content from another source is a separate event.
	other := raw
	other.SourceID = "district-crawler"
	other.SourceType = domain.SourceCrawler
	third, err := gate.Ingest(ctx, other)
	if err != nil {
		t.Fatalf("Ingest() from second source error = %v", err)
	}
	if third.Deduped {
		t.Error("same content from a different source must not dedup")
	}

	if got := len(enqueuer.eventIDs); got != 2 {
		t.Errorf("enqueued %d enrichment jobs, want 2", got)
	}
}

func TestGate_DedupWindowExpiry(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "gate_window")
	gate := NewGate(client, &recordingEnqueuer{}, testGateConfig())
	ctx := context.Background()

	// First delivery lands an hour in the past; ingested_at is immutable
	// so the age comes from the gate's clock.
	raw := validRawEvent()
	raw.Timestamp = time.Now().Add(-2 * time.Hour)
	gate.now = func() time.Time { return time.Now().Add(-time.Hour) }
	if _, err := gate.Ingest(ctx, raw); err != nil {
		t.Fatalf("Ingest() error = %v", err)
	}

	gate.now = time.Now
	outcome, err := gate.Ingest(ctx, raw)
	if err != nil {
		t.Fatalf("Ingest() after window error = %v", err)
	}
	if outcome.Deduped {
		t.Error("content older than the dedup window must be accepted again")
	}
}

func TestGate_SourceCounters(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "gate_counters")
	ctx := context.Background()
	seedSource(t, client, "pib-factcheck")

	tracker := NewTracker(client, 3)
	gate := NewGate(client, &recordingEnqueuer{}, testGateConfig()).WithTracker(tracker)

	if _, err := gate.Ingest(ctx, validRawEvent()); err != nil {
		t.Fatalf("Ingest() error = %v", err)
	}

	bad := validRawEvent()
	bad.Content = "short"
	if _, err := gate.Ingest(ctx, bad); err == nil {
		t.Fatal("Ingest() expected validation error")
	}

	ds := client.DataSource.GetX(ctx, "pib-factcheck")
	if ds.FetchCount != 1 {
		t.Errorf("fetch_count = %d, want 1", ds.FetchCount)
	}
	if ds.ErrorCount != 1 {
		t.Errorf("error_count = %d, want 1", ds.ErrorCount)
	}
	// Item rejections are not connector failures.
	if ds.ConsecutiveErrors != 0 || ds.Status != datasource.StatusACTIVE {
		t.Errorf("rejection touched source health: %+v", ds)
	}
}
