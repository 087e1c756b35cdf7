package enrichment

import (
	"context"
	"sync"

	"heatwatch.io/heatwatch/internal/domain"
)

// MockAnalyzer implements NLPAnalyzer for testing without the external
// scoring service.
type MockAnalyzer struct {
	mu      sync.Mutex
	Result  *domain.NLPResult
	Err     error
	Calls   int
	FailFor int // fail the first FailFor calls with Err, then succeed
}

func (m *MockAnalyzer) Analyze(_ context.Context, _ string) (*domain.NLPResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls++
	if m.Err != nil && (m.FailFor == 0 || m.Calls <= m.FailFor) {
		return nil, m.Err
	}
	if m.Result == nil {
		return &domain.NLPResult{MisinformationScore: 0.5, Confidence: 0.9}, nil
	}
	return m.Result, nil
}

// MockValidator implements SatelliteValidator for testing.
type MockValidator struct {
	mu     sync.Mutex
	Result *domain.SatelliteResult
	Err    error
	Calls  int
}

func (m *MockValidator) Validate(_ context.Context, _ string, _ *domain.LocationHint) (*domain.SatelliteResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Result == nil {
		return &domain.SatelliteResult{Validated: true, Confidence: 0.8}, nil
	}
	return m.Result, nil
}
