// Package enrichment calls the NLP and satellite analysis services and
// fuses their outputs into a single risk score for an event.
package enrichment

import (
	"context"

	"heatwatch.io/heatwatch/internal/domain"
	"heatwatch.io/heatwatch/internal/pkg/worker"
)

// NLPAnalyzer scores event content for misinformation risk.
// Actual HTTP binding is done at composition root level.
type NLPAnalyzer interface {
	Analyze(ctx context.Context, content string) (*domain.NLPResult, error)
}

// SatelliteValidator cross-checks a location-bearing claim against
// satellite observation data.
type SatelliteValidator interface {
	Validate(ctx context.Context, content string, loc *domain.LocationHint) (*domain.SatelliteResult, error)
}

// Result holds the outcome of one enrichment pass over an event.
type Result struct {
	NLP       *domain.NLPResult
	Satellite *domain.SatelliteResult
	FusedRisk float64
}

// Enricher runs the NLP stage and, when the event carries a location
// hint and a location-bound category, the satellite stage.
type Enricher struct {
	nlp  NLPAnalyzer
	sat  SatelliteValidator
	pool *worker.Pool
}

func NewEnricher(nlp NLPAnalyzer, sat SatelliteValidator) *Enricher {
	return &Enricher{nlp: nlp, sat: sat}
}

// WithPool routes analyzer calls through p, so concurrent enrichment
// jobs share one bounded set of in-flight analyzer requests.
func (e *Enricher) WithPool(p *worker.Pool) *Enricher {
	e.pool = p
	return e
}

// call runs fn on the analyzer pool when one is bound and waits for it
// to finish or for ctx to be cancelled. Without a pool fn runs inline.
func (e *Enricher) call(ctx context.Context, fn func()) error {
	if e.pool == nil {
		fn()
		return nil
	}
	done := make(chan struct{})
	if err := e.pool.Submit(ctx, func(context.Context) {
		defer close(done)
		fn()
	}); err != nil {
		return err
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		// The pool drops queued tasks for cancelled contexts, so done
		// may never close.
		return ctx.Err()
	}
}

// Enrich analyzes content and returns the fused risk. Satellite
// validation only runs for events that can be checked against imagery;
// for all other events the NLP score stands alone.
func (e *Enricher) Enrich(ctx context.Context, content string, loc *domain.LocationHint) (*Result, error) {
	var (
		nlpRes *domain.NLPResult
		nlpErr error
	)
	if err := e.call(ctx, func() {
		nlpRes, nlpErr = e.nlp.Analyze(ctx, content)
	}); err != nil {
		return nil, err
	}
	if nlpErr != nil {
		return nil, nlpErr
	}

	res := &Result{NLP: nlpRes}
	if domain.NeedsSatelliteValidation(loc, nlpRes.Categories) {
		var (
			satRes *domain.SatelliteResult
			satErr error
		)
		if err := e.call(ctx, func() {
			satRes, satErr = e.sat.Validate(ctx, content, loc)
		}); err != nil {
			return nil, err
		}
		if satErr != nil {
			return nil, satErr
		}
		res.Satellite = satRes
	}

	res.FusedRisk = domain.FusedRisk(nlpRes, res.Satellite)
	return res, nil
}
