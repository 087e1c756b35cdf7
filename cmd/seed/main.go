// Package main provides data seeding for the heatwatch pipeline.
//
// Seeds demo data sources and a small event batch so a fresh deployment
// has something to enrich and aggregate. The command is idempotent:
// existing sources keep their status and health counters, and repeated
// event batches deduplicate at the gate.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap"

	"heatwatch.io/heatwatch/ent"
	"heatwatch.io/heatwatch/ent/datasource"
	"heatwatch.io/heatwatch/internal/config"
	"heatwatch.io/heatwatch/internal/domain"
	"heatwatch.io/heatwatch/internal/infrastructure"
	"heatwatch.io/heatwatch/internal/ingest"
	"heatwatch.io/heatwatch/internal/jobs"
	"heatwatch.io/heatwatch/internal/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "seed error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	db, err := infrastructure.NewDatabaseClients(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		if err := db.AutoMigrate(ctx); err != nil {
			return fmt.Errorf("auto-migrate: %w", err)
		}
	}

	logger.Info("Starting data seeding...")

	if err := seedDataSources(ctx, db.EntClient); err != nil {
		return fmt.Errorf("seed data sources: %w", err)
	}

	// Insert-only River client: the batch enqueues enrich jobs for the
	// running server to pick up. Never started here.
	riverClient, err := river.NewClient(riverpgxv5.New(db.Pool), &river.Config{})
	if err != nil {
		return fmt.Errorf("init river client: %w", err)
	}
	enqueuer := jobs.NewEnqueuer(cfg.River)
	enqueuer.Bind(riverClient)

	gate := ingest.NewGate(db.EntClient, enqueuer, ingest.GateConfig{
		MinContentLength:   cfg.Ingest.MinContentLength,
		ClockSkewTolerance: cfg.Ingest.ClockSkewTolerance,
		DedupWindow:        cfg.Ingest.DedupWindow,
	}).WithTracker(ingest.NewTracker(db.EntClient, cfg.Ingest.SourceErrorThreshold))
	if err := seedDemoEvents(ctx, gate); err != nil {
		return fmt.Errorf("seed demo events: %w", err)
	}

	logger.Info("Data seeding completed successfully")
	return nil
}

// demoSource defines a data source for seeding.
type demoSource struct {
	ID       string
	Name     string
	Type     datasource.SourceType
	Endpoint string
}

var demoSources = []demoSource{
	{
		ID:   "manual-operator",
		Name: "Operator manual submissions",
		Type: datasource.SourceTypeManual,
	},
	{
		ID:       "rss-regional-news",
		Name:     "Regional news RSS bridge",
		Type:     datasource.SourceTypeRss,
		Endpoint: "http://localhost:9911/feed",
	},
	{
		ID:       "crawler-social",
		Name:     "Social media crawler",
		Type:     datasource.SourceTypeCrawler,
		Endpoint: "http://localhost:9912/feed",
	},
}

func seedDataSources(ctx context.Context, client *ent.Client) error {
	for _, src := range demoSources {
		exists, err := client.DataSource.Query().
			Where(datasource.IDEQ(src.ID)).
			Exist(ctx)
		if err != nil {
			return fmt.Errorf("check source %s: %w", src.ID, err)
		}
		if exists {
			logger.Debug("Source already present, skipping", zap.String("source_id", src.ID))
			continue
		}

		_, err = client.DataSource.Create().
			SetID(src.ID).
			SetName(src.Name).
			SetSourceType(src.Type).
			SetStatus(datasource.StatusACTIVE).
			SetEndpoint(src.Endpoint).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create source %s: %w", src.ID, err)
		}
		logger.Info("Seeded data source",
			zap.String("source_id", src.ID),
			zap.String("type", string(src.Type)),
		)
	}
	return nil
}

func seedDemoEvents(ctx context.Context, gate *ingest.Gate) error {
	now := time.Now().UTC()
	batch := []domain.RawEvent{
		{
			SourceID:   "manual-operator",
			SourceType: domain.SourceManual,
			Content:    "Video claims floodwater has breached the Koshi embankment near Supaul",
			Timestamp:  now.Add(-45 * time.Minute),
			Location:   &domain.LocationHint{State: "Bihar", District: "Supaul"},
		},
		{
			SourceID:   "manual-operator",
			SourceType: domain.SourceManual,
			Content:    "Message forward says drinking water in Patna is contaminated by the flood",
			Timestamp:  now.Add(-30 * time.Minute),
			Location:   &domain.LocationHint{State: "Bihar", City: "Patna"},
		},
		{
			SourceID:   "manual-operator",
			SourceType: domain.SourceManual,
			Content:    "Post alleges relief camps in Darbhanga are turning families away",
			Timestamp:  now.Add(-10 * time.Minute),
			Location:   &domain.LocationHint{State: "Bihar", District: "Darbhanga"},
		},
	}

	for _, ev := range batch {
		outcome, err := gate.Ingest(ctx, ev)
		if err != nil {
			return fmt.Errorf("ingest demo event: %w", err)
		}
		if outcome.Deduped {
			logger.Debug("Demo event already present, skipping")
			continue
		}
		logger.Info("Seeded demo event", zap.String("event_id", outcome.EventID))
	}
	return nil
}
