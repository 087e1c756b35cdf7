package ingest

import (
	"context"
	"errors"
	"testing"
	"time"

	"heatwatch.io/heatwatch/ent"
	"heatwatch.io/heatwatch/ent/datasource"
	"heatwatch.io/heatwatch/internal/domain"
	"heatwatch.io/heatwatch/internal/testutil"
)

func seedSource(t *testing.T, client *ent.Client, id string) {
	t.Helper()
	client.DataSource.Create().
		SetID(id).
		SetName(id).
		SetSourceType(datasource.SourceTypeRss).
		SetStatus(datasource.StatusACTIVE).
		SetEndpoint("https://example.in/feed").
		SaveX(context.Background())
}

func TestTracker_DegradeAfterConsecutiveErrors(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "tracker")
	ctx := context.Background()
	seedSource(t, client, "flaky-feed")

	tracker := NewTracker(client, 3)
	fetchErr := errors.New("connection refused")

	for i := 0; i < 2; i++ {
		if err := tracker.RecordError(ctx, "flaky-feed", fetchErr); err != nil {
			t.Fatalf("RecordError() error = %v", err)
		}
	}
	ds := client.DataSource.GetX(ctx, "flaky-feed")
	if ds.Status != datasource.StatusACTIVE {
		t.Fatalf("status after 2 errors = %s, want ACTIVE", ds.Status)
	}

	// A success in between resets the streak.
	if err := tracker.RecordSuccess(ctx, "flaky-feed"); err != nil {
		t.Fatalf("RecordSuccess() error = %v", err)
	}
	ds = client.DataSource.GetX(ctx, "flaky-feed")
	if ds.ConsecutiveErrors != 0 || ds.LastSuccessAt == nil {
		t.Fatalf("success did not reset streak: %+v", ds)
	}

	for i := 0; i < 3; i++ {
		if err := tracker.RecordError(ctx, "flaky-feed", fetchErr); err != nil {
			t.Fatalf("RecordError() error = %v", err)
		}
	}
	ds = client.DataSource.GetX(ctx, "flaky-feed")
	if ds.Status != datasource.StatusDEGRADED {
		t.Errorf("status after threshold = %s, want DEGRADED", ds.Status)
	}
	if ds.ErrorCount != 5 {
		t.Errorf("error_count = %d, want 5", ds.ErrorCount)
	}

	if err := tracker.Reactivate(ctx, "flaky-feed"); err != nil {
		t.Fatalf("Reactivate() error = %v", err)
	}
	ds = client.DataSource.GetX(ctx, "flaky-feed")
	if ds.Status != datasource.StatusACTIVE || ds.ConsecutiveErrors != 0 {
		t.Errorf("Reactivate() left %+v", ds)
	}
}

type failingSource struct {
	id string
}

func (f *failingSource) ID() string              { return f.id }
func (f *failingSource) Type() domain.SourceType { return domain.SourceRSS }
func (f *failingSource) FetchEvents(context.Context, time.Time) ([]domain.RawEvent, error) {
	return nil, errors.New("feed unreachable")
}

func TestPoller_SkipsDegradedAndRecordsOutcomes(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "poller")
	ctx := context.Background()

	seedSource(t, client, "healthy-feed")
	seedSource(t, client, "broken-feed")
	seedSource(t, client, "parked-feed")
	client.DataSource.UpdateOneID("parked-feed").SetStatus(datasource.StatusDISABLED).ExecX(ctx)

	enqueuer := &recordingEnqueuer{}
	tracker := NewTracker(client, 3)
	gate := NewGate(client, enqueuer, testGateConfig()).WithTracker(tracker)

	polled := false
	registry := NewRegistry()
	registry.Register(&StaticSource{
		SourceID:   "healthy-feed",
		SourceType: domain.SourceRSS,
		Events: []domain.RawEvent{{
			SourceID:   "healthy-feed",
			SourceType: domain.SourceRSS,
			Content:    "Bridge collapse rumor spreading on local channels",
			Timestamp:  time.Now().Add(-time.Minute),
		}},
	})
	registry.Register(&failingSource{id: "broken-feed"})
	registry.Register(&pollProbe{id: "parked-feed", hit: &polled})

	poller := NewPoller(client, registry, gate, tracker)
	if err := poller.PollAll(ctx); err != nil {
		t.Fatalf("PollAll() error = %v", err)
	}

	if polled {
		t.Error("disabled source was polled")
	}
	if got := len(enqueuer.eventIDs); got != 1 {
		t.Errorf("enqueued %d events, want 1", got)
	}

	healthy := client.DataSource.GetX(ctx, "healthy-feed")
	if healthy.FetchCount != 1 || healthy.LastSuccessAt == nil {
		t.Errorf("healthy source not recorded: %+v", healthy)
	}
	broken := client.DataSource.GetX(ctx, "broken-feed")
	if broken.ErrorCount != 1 || broken.ConsecutiveErrors != 1 {
		t.Errorf("broken source not recorded: %+v", broken)
	}
}

type pollProbe struct {
	id  string
	hit *bool
}

func (p *pollProbe) ID() string              { return p.id }
func (p *pollProbe) Type() domain.SourceType { return domain.SourceManual }
func (p *pollProbe) FetchEvents(context.Context, time.Time) ([]domain.RawEvent, error) {
	*p.hit = true
	return nil, nil
}
