package enrichment

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"heatwatch.io/heatwatch/internal/domain"
	apperrors "heatwatch.io/heatwatch/internal/pkg/errors"
	"heatwatch.io/heatwatch/internal/pkg/logger"
	"heatwatch.io/heatwatch/internal/pkg/worker"
)

func init() {
	// Initialize logger for tests
	_ = logger.Init("error", "json")
}

func TestEnricher_SatelliteGate(t *testing.T) {
	t.Parallel()

	lat, lon := 12.97, 77.59

	tests := []struct {
		name          string
		nlp           *domain.NLPResult
		loc           *domain.LocationHint
		wantSatellite bool
		wantRisk      float64
	}{
		{
			name:          "location claim with region triggers validation",
			nlp:           &domain.NLPResult{MisinformationScore: 0.5, Confidence: 0.9, Categories: []string{"disaster"}},
			loc:           &domain.LocationHint{State: "Karnataka", Lat: &lat, Lon: &lon},
			wantSatellite: true,
			wantRisk:      0.6, // 0.5 * 1.2, satellite validated
		},
		{
			name:          "no location skips validation",
			nlp:           &domain.NLPResult{MisinformationScore: 0.5, Confidence: 0.9, Categories: []string{"disaster"}},
			loc:           nil,
			wantSatellite: false,
			wantRisk:      0.5,
		},
		{
			name:          "non-location category skips validation",
			nlp:           &domain.NLPResult{MisinformationScore: 0.7, Confidence: 0.9, Categories: []string{"health"}},
			loc:           &domain.LocationHint{State: "Karnataka"},
			wantSatellite: false,
			wantRisk:      0.7,
		},
		{
			name:          "fused risk capped at one",
			nlp:           &domain.NLPResult{MisinformationScore: 0.95, Confidence: 0.9, Categories: []string{"infrastructure"}},
			loc:           &domain.LocationHint{District: "Pune"},
			wantSatellite: true,
			wantRisk:      1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			analyzer := &MockAnalyzer{Result: tt.nlp}
			validator := &MockValidator{Result: &domain.SatelliteResult{Validated: true, Confidence: 0.8}}
			enricher := NewEnricher(analyzer, validator)

			res, err := enricher.Enrich(context.Background(), "some claim text", tt.loc)
			if err != nil {
				t.Fatalf("Enrich() error = %v", err)
			}
			if got := res.Satellite != nil; got != tt.wantSatellite {
				t.Errorf("satellite ran = %v, want %v", got, tt.wantSatellite)
			}
			if validator.Calls > 0 != tt.wantSatellite {
				t.Errorf("validator calls = %d, want called=%v", validator.Calls, tt.wantSatellite)
			}
			if diff := res.FusedRisk - tt.wantRisk; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("FusedRisk = %f, want %f", res.FusedRisk, tt.wantRisk)
			}
		})
	}
}

func TestEnricher_AnalyzerFailurePropagates(t *testing.T) {
	t.Parallel()

	analyzer := &MockAnalyzer{Err: apperrors.TransientEnrichment(errors.New("timeout"))}
	enricher := NewEnricher(analyzer, &MockValidator{})

	_, err := enricher.Enrich(context.Background(), "claim", nil)
	if err == nil {
		t.Fatal("Enrich() expected error")
	}
	if !apperrors.IsTransient(err) {
		t.Errorf("IsTransient() = false, want true")
	}
	if got := apperrors.ReasonOf(err); got != domain.ReasonTransientEnrichment {
		t.Errorf("ReasonOf() = %q, want %q", got, domain.ReasonTransientEnrichment)
	}
}

func TestHTTPNLPAnalyzer_StatusClassification(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		status        int
		body          string
		wantErr       bool
		wantTransient bool
		wantReason    string
	}{
		{
			name:   "success",
			status: http.StatusOK,
			body:   `{"misinformation_score":0.75,"confidence":0.9,"categories":["disaster"]}`,
		},
		{
			name:          "server error is transient",
			status:        http.StatusBadGateway,
			body:          "upstream down",
			wantErr:       true,
			wantTransient: true,
			wantReason:    domain.ReasonTransientEnrichment,
		},
		{
			name:          "client error is permanent rejection",
			status:        http.StatusUnprocessableEntity,
			body:          "unsupported language",
			wantErr:       true,
			wantTransient: false,
			wantReason:    domain.ReasonEnrichmentRejected,
		},
		{
			name:          "score out of range rejected",
			status:        http.StatusOK,
			body:          `{"misinformation_score":1.5,"confidence":0.9}`,
			wantErr:       true,
			wantTransient: false,
			wantReason:    domain.ReasonEnrichmentRejected,
		},
		{
			name:          "malformed body is transient",
			status:        http.StatusOK,
			body:          "not json",
			wantErr:       true,
			wantTransient: true,
			wantReason:    domain.ReasonTransientEnrichment,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			analyzer := NewHTTPNLPAnalyzer(srv.URL, 5*time.Second)
			res, err := analyzer.Analyze(context.Background(), "claim text")

			if tt.wantErr {
				if err == nil {
					t.Fatal("Analyze() expected error")
				}
				if got := apperrors.IsTransient(err); got != tt.wantTransient {
					t.Errorf("IsTransient() = %v, want %v", got, tt.wantTransient)
				}
				if got := apperrors.ReasonOf(err); got != tt.wantReason {
					t.Errorf("ReasonOf() = %q, want %q", got, tt.wantReason)
				}
				return
			}
			if err != nil {
				t.Fatalf("Analyze() error = %v", err)
			}
			if res.MisinformationScore != 0.75 {
				t.Errorf("MisinformationScore = %f, want 0.75", res.MisinformationScore)
			}
		})
	}
}

func TestHTTPNLPAnalyzer_Timeout(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	analyzer := NewHTTPNLPAnalyzer(srv.URL, 20*time.Millisecond)
	_, err := analyzer.Analyze(context.Background(), "claim")
	if err == nil {
		t.Fatal("Analyze() expected timeout error")
	}
	if !apperrors.IsTransient(err) {
		t.Error("timeout should be transient")
	}
}

func TestHTTPSatelliteValidator(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("Content-Type = %q", r.Header.Get("Content-Type"))
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"validated":true,"confidence":0.82}`))
	}))
	defer srv.Close()

	validator := NewHTTPSatelliteValidator(srv.URL, 5*time.Second)
	res, err := validator.Validate(context.Background(), "flood reported", &domain.LocationHint{State: "Assam"})
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if !res.Validated || res.Confidence != 0.82 {
		t.Errorf("Validate() = %+v, want validated with confidence 0.82", res)
	}
}

func TestEnricher_PooledAnalyzerCalls(t *testing.T) {
	t.Parallel()

	pools, err := worker.NewPools(context.Background(), worker.PoolConfig{
		GeneralPoolSize:  2,
		AnalyzerPoolSize: 2,
	})
	if err != nil {
		t.Fatalf("NewPools() error = %v", err)
	}
	defer pools.Shutdown()

	lat, lon := 25.59, 85.13
	analyzer := &MockAnalyzer{Result: &domain.NLPResult{MisinformationScore: 0.5, Confidence: 0.9, Categories: []string{"disaster"}}}
	validator := &MockValidator{Result: &domain.SatelliteResult{Validated: true, Confidence: 0.8}}
	enricher := NewEnricher(analyzer, validator).WithPool(pools.Analyzer)

	res, err := enricher.Enrich(context.Background(), "flood claim", &domain.LocationHint{State: "Bihar", Lat: &lat, Lon: &lon})
	if err != nil {
		t.Fatalf("Enrich() error = %v", err)
	}
	if res.Satellite == nil {
		t.Fatal("satellite stage did not run")
	}
	if analyzer.Calls != 1 || validator.Calls != 1 {
		t.Errorf("analyzer calls = %d, validator calls = %d, want 1 and 1", analyzer.Calls, validator.Calls)
	}
	if diff := res.FusedRisk - 0.6; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("FusedRisk = %f, want 0.6", res.FusedRisk)
	}

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := enricher.Enrich(cancelled, "flood claim", nil); !errors.Is(err, context.Canceled) {
		t.Errorf("Enrich() with cancelled context error = %v, want context.Canceled", err)
	}
}
