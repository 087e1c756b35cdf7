package enrichment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"heatwatch.io/heatwatch/internal/domain"
	apperrors "heatwatch.io/heatwatch/internal/pkg/errors"
	"heatwatch.io/heatwatch/internal/pkg/logger"
)

const maxResponseBytes = 1 << 20

// HTTPNLPAnalyzer calls an external NLP scoring service over HTTP.
type HTTPNLPAnalyzer struct {
	endpoint string
	client   *http.Client
}

func NewHTTPNLPAnalyzer(endpoint string, timeout time.Duration) *HTTPNLPAnalyzer {
	return &HTTPNLPAnalyzer{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

type nlpRequest struct {
	Content string `json:"content"`
}

// Analyze posts content to the analyzer and classifies failures:
// timeouts and 5xx responses are transient, 4xx responses mean the
// analyzer rejected the input for good.
func (a *HTTPNLPAnalyzer) Analyze(ctx context.Context, content string) (*domain.NLPResult, error) {
	var result domain.NLPResult
	if err := postJSON(ctx, a.client, a.endpoint, nlpRequest{Content: content}, &result); err != nil {
		return nil, err
	}
	if result.MisinformationScore < 0 || result.MisinformationScore > 1 {
		return nil, apperrors.EnrichmentRejected(fmt.Errorf("analyzer returned score %f outside [0,1]", result.MisinformationScore))
	}
	return &result, nil
}

// HTTPSatelliteValidator calls the satellite cross-validation service.
// Satellite lookups are slow (imagery retrieval and diffing), so the
// timeout is configured independently of the NLP one.
type HTTPSatelliteValidator struct {
	endpoint string
	client   *http.Client
}

func NewHTTPSatelliteValidator(endpoint string, timeout time.Duration) *HTTPSatelliteValidator {
	return &HTTPSatelliteValidator{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

type satelliteRequest struct {
	Content  string               `json:"content"`
	Location *domain.LocationHint `json:"location"`
}

func (v *HTTPSatelliteValidator) Validate(ctx context.Context, content string, loc *domain.LocationHint) (*domain.SatelliteResult, error) {
	var result domain.SatelliteResult
	if err := postJSON(ctx, v.client, v.endpoint, satelliteRequest{Content: content, Location: loc}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func postJSON(ctx context.Context, client *http.Client, endpoint string, reqBody, respBody any) error {
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return apperrors.EnrichmentRejected(fmt.Errorf("encode request: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return apperrors.EnrichmentRejected(fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		// Connection and timeout failures are retryable.
		return apperrors.TransientEnrichment(err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return apperrors.TransientEnrichment(fmt.Errorf("read response: %w", err))
	}

	switch {
	case resp.StatusCode >= 500:
		return apperrors.TransientEnrichment(fmt.Errorf("analyzer returned %d: %s", resp.StatusCode, truncate(body, 200)))
	case resp.StatusCode >= 400:
		return apperrors.EnrichmentRejected(fmt.Errorf("analyzer returned %d: %s", resp.StatusCode, truncate(body, 200)))
	case resp.StatusCode != http.StatusOK:
		return apperrors.TransientEnrichment(fmt.Errorf("analyzer returned unexpected status %d", resp.StatusCode))
	}

	if err := json.Unmarshal(body, respBody); err != nil {
		logger.Warn("analyzer returned malformed body",
			zap.String("endpoint", endpoint),
			zap.Error(err))
		return apperrors.TransientEnrichment(fmt.Errorf("decode response: %w", err))
	}
	return nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
