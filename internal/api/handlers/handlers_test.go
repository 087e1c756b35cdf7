package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"heatwatch.io/heatwatch/ent"
	"heatwatch.io/heatwatch/ent/deadletter"
	"heatwatch.io/heatwatch/ent/event"
	"heatwatch.io/heatwatch/internal/aggregation"
	"heatwatch.io/heatwatch/internal/api/middleware"
	"heatwatch.io/heatwatch/internal/audit"
	"heatwatch.io/heatwatch/internal/domain"
	"heatwatch.io/heatwatch/internal/ingest"
	"heatwatch.io/heatwatch/internal/pkg/logger"
	"heatwatch.io/heatwatch/internal/testutil"
)

func init() {
	// Initialize logger for tests
	_ = logger.Init("error", "json")
}

type mockReplay struct {
	mu     sync.Mutex
	events []string
	stages []string
}

func (m *mockReplay) EnqueueReplay(_ context.Context, eventID, stage string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, eventID)
	m.stages = append(m.stages, stage)
	return nil
}

type noopEnqueuer struct{}

func (noopEnqueuer) EnqueueEnrich(context.Context, string) error { return nil }

func newTestRouter(t *testing.T, prefix string) (*gin.Engine, *ent.Client, *mockReplay) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	client := testutil.OpenEntPostgres(t, prefix)
	replay := &mockReplay{}

	gate := ingest.NewGate(client, noopEnqueuer{}, ingest.GateConfig{
		MinContentLength:   8,
		ClockSkewTolerance: 5 * time.Minute,
		DedupWindow:        10 * time.Minute,
	})

	srv := NewServer(ServerDeps{
		EntClient: client,
		Gate:      gate,
		Reader:    aggregation.NewReader(client),
		Tracker:   ingest.NewTracker(client, 5),
		Replay:    replay,
		Audit:     audit.NewLogger(client),
	})

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.ErrorHandler())
	r.POST("/api/v1/events", srv.PostEvent)
	r.GET("/api/v1/aggregations", srv.GetAggregations)
	r.GET("/api/v1/claims", srv.ListClaims)
	r.GET("/api/v1/claims/:id", srv.GetClaim)
	r.GET("/api/v1/admin/dead-letters", srv.ListDeadLetters)
	r.POST("/api/v1/admin/dead-letters/:id/replay", srv.ReplayDeadLetter)
	r.GET("/api/v1/admin/sources", srv.ListSources)
	r.POST("/api/v1/admin/sources/:id/status", srv.SetSourceStatus)
	return r, client, replay
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPostEvent(t *testing.T) {
	r, _, _ := newTestRouter(t, "api_events")

	body := `{
		"source_id": "manual-desk",
		"source_type": "manual",
		"content": "Dam breach rumor circulating in messaging groups",
		"timestamp": "` + time.Now().Add(-time.Minute).Format(time.RFC3339) + `",
		"location_hint": {"state": "Kerala"}
	}`

	w := doJSON(t, r, http.MethodPost, "/api/v1/events", body)
	if w.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want %d body=%s", w.Code, http.StatusAccepted, w.Body.String())
	}
	var resp struct {
		EventID string `json:"event_id"`
		Deduped bool   `json:"deduped"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.EventID == "" || resp.Deduped {
		t.Errorf("response = %+v, want accepted with event ID", resp)
	}

	// Duplicate delivery returns 200 with the dedup flag.
	w = doJSON(t, r, http.MethodPost, "/api/v1/events", body)
	if w.Code != http.StatusOK {
		t.Fatalf("duplicate status = %d, want %d", w.Code, http.StatusOK)
	}

	// Invalid payloads are the caller's fault.
	w = doJSON(t, r, http.MethodPost, "/api/v1/events", `{"source_id":"x","source_type":"rss","content":"hi"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("invalid payload status = %d, want %d body=%s", w.Code, http.StatusBadRequest, w.Body.String())
	}
}

func TestGetAggregations(t *testing.T) {
	r, client, _ := newTestRouter(t, "api_agg")
	ctx := context.Background()

	for i, region := range []string{"Bihar", "Assam"} {
		client.StateAggregation.Create().
			SetID(aggregation.BucketID(region, "2024-01-01", 14)).
			SetRegion(region).
			SetDate("2024-01-01").
			SetHour(14).
			SetTotalEvents(2).
			SetHighRiskEvents(int64(i)).
			SetValidatedEvents(0).
			SetAvgMisinformationRisk(0.5).
			SetMaxMisinformationRisk(0.8).
			SetHeatIntensity(float64(i) * 0.4).
			SetCategoryBreakdown(map[string]int64{"disaster": 1}).
			SaveX(ctx)
	}

	w := doJSON(t, r, http.MethodGet, "/api/v1/aggregations?region=Assam", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}
	var resp struct {
		Items []aggregationBucket `json:"items"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Items) != 1 || resp.Items[0].Region != "Assam" {
		t.Errorf("items = %v, want single Assam bucket", resp.Items)
	}

	w = doJSON(t, r, http.MethodGet, "/api/v1/aggregations?from=notatime", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad from status = %d, want 400", w.Code)
	}
}

func TestClaimLookup(t *testing.T) {
	r, client, _ := newTestRouter(t, "api_claims")
	ctx := context.Background()

	now := time.Now().UTC()
	cl := client.Claim.Create().
		SetID(uuid.NewString()).
		SetFingerprint("fp-bridge-patna").
		SetFirstSeenAt(now.Add(-2 * time.Hour)).
		SetFirstSeenEventID(uuid.NewString()).
		SetLastSeenAt(now).
		SetOccurrenceCount(3).
		SetDistinctLocations([]string{"Bihar"}).
		SetSpreadVelocity(1.5).
		SetGeographicSpreadScore(0.33).
		SetOverallRiskScore(0.8).
		SaveX(ctx)

	w := doJSON(t, r, http.MethodGet, "/api/v1/claims/fp-bridge-patna", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}
	var got claimResponse
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.ID != cl.ID || got.OccurrenceCount != 3 {
		t.Errorf("claim = %+v, want id %s with 3 occurrences", got, cl.ID)
	}

	w = doJSON(t, r, http.MethodGet, "/api/v1/claims/no-such-claim", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("missing claim status = %d, want 404", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, "/api/v1/claims?region=Bihar", "")
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d", w.Code)
	}
	var list struct {
		Items []claimResponse `json:"items"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list.Items) != 1 {
		t.Errorf("region-filtered claims = %d, want 1", len(list.Items))
	}
}

func TestReplayDeadLetter(t *testing.T) {
	r, client, replay := newTestRouter(t, "api_replay")
	ctx := context.Background()

	eventID := uuid.NewString()
	client.Event.Create().
		SetID(eventID).
		SetSourceID("test-source").
		SetSourceType(event.SourceTypeRss).
		SetRawContent("Collapsed bridge rumor resurfacing").
		SetNormalizedContent("collapsed bridge rumor resurfacing").
		SetRawHash(eventID).
		SetObservedAt(time.Now().UTC()).
		SetIngestedAt(time.Now().UTC()).
		SetState(event.StateFAILED).
		SetFailureReason(domain.ReasonTransientEnrichment).
		SetAttemptCounts(map[string]int{"enrich": 5}).
		SaveX(ctx)

	dl := client.DeadLetter.Create().
		SetID(uuid.NewString()).
		SetEventID(eventID).
		SetStage(deadletter.StageEnrich).
		SetReason(domain.ReasonTransientEnrichment).
		SetMessage("analyzer timeout").
		SetAttemptHistory([]domain.AttemptRecord{{Attempt: 5, At: time.Now().UTC(), Error: "analyzer timeout"}}).
		SaveX(ctx)

	w := doJSON(t, r, http.MethodPost, "/api/v1/admin/dead-letters/"+dl.ID+"/replay", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}

	ev := client.Event.GetX(ctx, eventID)
	if ev.State != event.StateRAW {
		t.Errorf("event state = %s, want RAW for enrich replay", ev.State)
	}
	if ev.FailureReason != "" {
		t.Errorf("failure_reason = %q, want cleared", ev.FailureReason)
	}
	if len(replay.events) != 1 || replay.events[0] != eventID || replay.stages[0] != "enrich" {
		t.Errorf("replay calls = %v/%v, want one enrich replay", replay.events, replay.stages)
	}
	if client.DeadLetter.GetX(ctx, dl.ID).ReplayedAt == nil {
		t.Error("replayed_at not stamped")
	}

	// Second replay of the same entry is rejected.
	w = doJSON(t, r, http.MethodPost, "/api/v1/admin/dead-letters/"+dl.ID+"/replay", "")
	if w.Code != http.StatusConflict {
		t.Errorf("double replay status = %d, want 409", w.Code)
	}

	// Audit trail got the replay.
	if n := client.AuditLog.Query().CountX(ctx); n != 1 {
		t.Errorf("audit logs = %d, want 1", n)
	}
}
