package ingest

import (
	"context"
	"time"

	"go.uber.org/zap"

	"heatwatch.io/heatwatch/ent"
	"heatwatch.io/heatwatch/ent/datasource"
	"heatwatch.io/heatwatch/internal/pkg/logger"
	"heatwatch.io/heatwatch/internal/pkg/worker"
)

// defaultLookback bounds the first fetch of a source that has never
// succeeded.
const defaultLookback = time.Hour

// Poller drives the registered pull sources through the gate on a
// schedule. Only ACTIVE sources are polled.
type Poller struct {
	client   *ent.Client
	registry *Registry
	gate     *Gate
	tracker  *Tracker
	pool     *worker.Pool
}

func NewPoller(client *ent.Client, registry *Registry, gate *Gate, tracker *Tracker) *Poller {
	return &Poller{client: client, registry: registry, gate: gate, tracker: tracker}
}

// WithPool enables concurrent source fetches through the given pool.
// Without a pool, sources are polled sequentially.
func (p *Poller) WithPool(pool *worker.Pool) *Poller {
	p.pool = pool
	return p
}

// PollAll fetches every active registered source once. Per-source
// failures are recorded and do not stop the sweep.
func (p *Poller) PollAll(ctx context.Context) error {
	sources := p.registry.All()
	if p.pool == nil {
		for _, src := range sources {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			p.pollOne(ctx, src)
		}
		return nil
	}

	done := make(chan struct{}, len(sources))
	submitted := 0
	for _, src := range sources {
		src := src
		err := p.pool.Submit(ctx, func(ctx context.Context) {
			p.pollOne(ctx, src)
			done <- struct{}{}
		})
		if err != nil {
			break
		}
		submitted++
	}

	for i := 0; i < submitted; i++ {
		select {
		case <-done:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return ctx.Err()
}

func (p *Poller) pollOne(ctx context.Context, src Source) {
	ds, err := p.client.DataSource.Query().Where(datasource.IDEQ(src.ID())).Only(ctx)
	if err != nil {
		logger.Warn("skipping unregistered source",
			zap.String("source_id", src.ID()),
			zap.Error(err))
		return
	}
	if ds.Status != datasource.StatusACTIVE {
		return
	}

	since := time.Now().UTC().Add(-defaultLookback)
	if ds.LastSuccessAt != nil {
		since = *ds.LastSuccessAt
	}

	events, err := src.FetchEvents(ctx, since)
	if err != nil {
		if trackErr := p.tracker.RecordError(ctx, src.ID(), err); trackErr != nil {
			logger.Error("failed to record source error",
				zap.String("source_id", src.ID()),
				zap.Error(trackErr))
		}
		return
	}

	accepted := 0
	for _, ev := range events {
		outcome, err := p.gate.Ingest(ctx, ev)
		if err != nil {
			// A bad item is the source's problem, not the sweep's.
			logger.Warn("source event rejected",
				zap.String("source_id", src.ID()),
				zap.Error(err))
			continue
		}
		if !outcome.Deduped {
			accepted++
		}
	}

	if err := p.tracker.RecordSuccess(ctx, src.ID()); err != nil {
		logger.Error("failed to record source success",
			zap.String("source_id", src.ID()),
			zap.Error(err))
		return
	}

	logger.Debug("source poll complete",
		zap.String("source_id", src.ID()),
		zap.Int("fetched", len(events)),
		zap.Int("accepted", accepted))
}
