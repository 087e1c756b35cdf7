package jobs

import (
	"context"

	"github.com/riverqueue/river"

	"heatwatch.io/heatwatch/internal/ingest"
)

// SourcePollArgs is the periodic pull-source sweep job.
type SourcePollArgs struct{}

// Kind returns the job kind identifier for source polling.
func (SourcePollArgs) Kind() string { return "source_poll" }

// InsertOpts returns default insert options for source polling.
func (SourcePollArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: 1,
		UniqueOpts: river.UniqueOpts{
			ByQueue: true,
		},
	}
}

// SourcePollWorker sweeps the registered pull sources through the
// ingestion gate. Per-source failures are tracked on the source row,
// never propagated, so the job itself only fails on cancellation.
type SourcePollWorker struct {
	river.WorkerDefaults[SourcePollArgs]
	poller *ingest.Poller
}

func NewSourcePollWorker(poller *ingest.Poller) *SourcePollWorker {
	return &SourcePollWorker{poller: poller}
}

// Work runs one full sweep.
func (w *SourcePollWorker) Work(ctx context.Context, _ *river.Job[SourcePollArgs]) error {
	return w.poller.PollAll(ctx)
}
