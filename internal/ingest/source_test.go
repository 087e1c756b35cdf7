package ingest

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"heatwatch.io/heatwatch/ent/datasource"
	"heatwatch.io/heatwatch/internal/domain"
	"heatwatch.io/heatwatch/internal/testutil"
)

func TestStaticSource_FetchSince(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	src := &StaticSource{
		SourceID:   "static-1",
		SourceType: domain.SourceManual,
		Events: []domain.RawEvent{
			{SourceID: "static-1", Content: "old item", Timestamp: base.Add(-time.Hour)},
			{SourceID: "static-1", Content: "new item", Timestamp: base.Add(time.Hour)},
		},
	}

	got, err := src.FetchEvents(context.Background(), base)
	if err != nil {
		t.Fatalf("FetchEvents() error = %v", err)
	}
	if len(got) != 1 || got[0].Content != "new item" {
		t.Errorf("FetchEvents() = %v, want only the newer item", got)
	}
}

func TestRegistry_RegisterAndList(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	reg.Register(&StaticSource{SourceID: "b-source", SourceType: domain.SourceRSS})
	reg.Register(&StaticSource{SourceID: "a-source", SourceType: domain.SourceCrawler})

	if _, ok := reg.Get("a-source"); !ok {
		t.Error("Get() did not find registered source")
	}

	all := reg.All()
	if len(all) != 2 || all[0].ID() != "a-source" || all[1].ID() != "b-source" {
		t.Errorf("All() order = %v, want sorted by ID", all)
	}
}

func TestSyncRegistryFile(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "source_registry")
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "sources.yaml")
	content := `sources:
  - id: pib-factcheck
    name: PIB Fact Check
    type: rss
    endpoint: https://factcheck.example.in/feed
  - id: district-crawler
    name: District News Crawler
    type: crawler
    endpoint: https://crawler.example.in/api
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write registry file: %v", err)
	}

	if err := SyncRegistryFile(ctx, client, path); err != nil {
		t.Fatalf("SyncRegistryFile() error = %v", err)
	}

	ds := client.DataSource.GetX(ctx, "pib-factcheck")
	if ds.Status != datasource.StatusACTIVE || ds.SourceType != datasource.SourceTypeRss {
		t.Errorf("created source = %+v, want ACTIVE rss", ds)
	}

	// Degrade one source, then re-sync with a new endpoint: counters and
	// status must survive, descriptive fields must refresh.
	client.DataSource.UpdateOneID("pib-factcheck").
		SetStatus(datasource.StatusDEGRADED).
		SetConsecutiveErrors(7).
		ExecX(ctx)

	updated := `sources:
  - id: pib-factcheck
    name: PIB Fact Check
    type: rss
    endpoint: https://factcheck.example.in/v2/feed
`
	if err := os.WriteFile(path, []byte(updated), 0o600); err != nil {
		t.Fatalf("rewrite registry file: %v", err)
	}
	if err := SyncRegistryFile(ctx, client, path); err != nil {
		t.Fatalf("SyncRegistryFile() resync error = %v", err)
	}

	ds = client.DataSource.GetX(ctx, "pib-factcheck")
	if ds.Endpoint != "https://factcheck.example.in/v2/feed" {
		t.Errorf("endpoint not refreshed: %q", ds.Endpoint)
	}
	if ds.Status != datasource.StatusDEGRADED || ds.ConsecutiveErrors != 7 {
		t.Errorf("resync clobbered health state: %+v", ds)
	}
}

func TestSyncRegistryFile_BadEntry(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "sources.yaml")
	if err := os.WriteFile(path, []byte("sources:\n  - id: x\n    type: smoke-signal\n"), 0o600); err != nil {
		t.Fatalf("write registry file: %v", err)
	}

	if err := SyncRegistryFile(context.Background(), nil, path); err == nil {
		t.Error("SyncRegistryFile() expected error for unknown source type")
	}
}
