package ingest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"heatwatch.io/heatwatch/internal/domain"
)

func TestHTTPSource_FetchEvents(t *testing.T) {
	var gotSince string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSince = r.URL.Query().Get("since")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"events":[
			{"content":"floodwater rising near the east embankment","timestamp":"2026-08-30T10:00:00Z"},
			{"source_id":"spoofed","content":"dam gates reportedly left open overnight","timestamp":"2026-08-30T11:00:00Z"}
		]}`))
	}))
	defer srv.Close()

	src := NewHTTPSource("rss-regional", domain.SourceRSS, srv.URL, 5*time.Second)
	since := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)

	events, err := src.FetchEvents(context.Background(), since)
	if err != nil {
		t.Fatalf("FetchEvents: %v", err)
	}
	if gotSince != "2026-08-30T09:00:00Z" {
		t.Errorf("since param = %q", gotSince)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	for _, ev := range events {
		// Feed attribution is overwritten with the connector's own.
		if ev.SourceID != "rss-regional" || ev.SourceType != domain.SourceRSS {
			t.Errorf("event attribution = %s/%s", ev.SourceID, ev.SourceType)
		}
	}
}

func TestHTTPSource_FetchEventsErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"events": [truncated`))
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			src := NewHTTPSource("s1", domain.SourceAPI, srv.URL, 5*time.Second)
			if _, err := src.FetchEvents(context.Background(), time.Now().Add(-time.Hour)); err == nil {
				t.Fatal("expected fetch error")
			}
		})
	}
}

func TestRegisterFileSources(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sources.yaml")
	data := `sources:
  - id: rss-a
    name: Feed A
    type: rss
    endpoint: http://localhost:9911/feed
  - id: manual-desk
    name: Manual desk
    type: manual
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	reg := NewRegistry()
	if err := RegisterFileSources(path, reg); err != nil {
		t.Fatalf("RegisterFileSources: %v", err)
	}

	if _, ok := reg.Get("rss-a"); !ok {
		t.Error("endpoint-bearing entry not registered")
	}
	if _, ok := reg.Get("manual-desk"); ok {
		t.Error("push-only entry should not get a connector")
	}
}
