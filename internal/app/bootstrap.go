// Package app is the composition root: bootstrap stays
// orchestration-only, all construction is manual DI.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/riverqueue/river"

	"heatwatch.io/heatwatch/internal/aggregation"
	"heatwatch.io/heatwatch/internal/api/handlers"
	"heatwatch.io/heatwatch/internal/audit"
	"heatwatch.io/heatwatch/internal/claims"
	"heatwatch.io/heatwatch/internal/config"
	"heatwatch.io/heatwatch/internal/enrichment"
	"heatwatch.io/heatwatch/internal/infrastructure"
	"heatwatch.io/heatwatch/internal/ingest"
	"heatwatch.io/heatwatch/internal/jobs"
	"heatwatch.io/heatwatch/internal/pkg/worker"
)

// Application holds composed application dependencies.
type Application struct {
	Config   *config.Config
	Router   *gin.Engine
	DB       *infrastructure.DatabaseClients
	Pools    *worker.Pools
	Registry *ingest.Registry
}

// Bootstrap initializes all dependencies.
func Bootstrap(ctx context.Context, cfg *config.Config) (*Application, error) {
	db, err := infrastructure.NewDatabaseClients(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("init database: %w", err)
	}

	// Dev-mode: auto-create Ent tables + River queue tables.
	if cfg.Database.AutoMigrate {
		if err := db.AutoMigrate(ctx); err != nil {
			db.Close()
			return nil, fmt.Errorf("auto-migrate: %w", err)
		}
	}

	pools, err := worker.NewPools(ctx, worker.PoolConfig{
		GeneralPoolSize:  cfg.Worker.GeneralPoolSize,
		AnalyzerPoolSize: cfg.Worker.AnalyzerPoolSize,
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init worker pools: %w", err)
	}

	entClient := db.EntClient

	// Pipeline services.
	enricher := enrichment.NewEnricher(
		enrichment.NewHTTPNLPAnalyzer(cfg.Enrichment.NLPEndpoint, cfg.Enrichment.NLPTimeout),
		enrichment.NewHTTPSatelliteValidator(cfg.Enrichment.SatelliteEndpoint, cfg.Enrichment.SatelliteTimeout),
	).WithPool(pools.Analyzer)
	resolver := claims.NewResolver(entClient, cfg.Claims.EWMAWeight)
	engine := aggregation.NewEngine(entClient, cfg.Aggregation.HighRiskThreshold)
	enqueuer := jobs.NewEnqueuer(cfg.River)

	// Ingestion.
	tracker := ingest.NewTracker(entClient, cfg.Ingest.SourceErrorThreshold)
	gate := ingest.NewGate(entClient, enqueuer, ingest.GateConfig{
		MinContentLength:   cfg.Ingest.MinContentLength,
		ClockSkewTolerance: cfg.Ingest.ClockSkewTolerance,
		DedupWindow:        cfg.Ingest.DedupWindow,
	}).WithTracker(tracker)
	registry := ingest.NewRegistry()
	if cfg.Ingest.RegistryFile != "" {
		if err := ingest.SyncRegistryFile(ctx, entClient, cfg.Ingest.RegistryFile); err != nil {
			pools.Shutdown()
			db.Close()
			return nil, fmt.Errorf("sync source registry: %w", err)
		}
		if err := ingest.RegisterFileSources(cfg.Ingest.RegistryFile, registry); err != nil {
			pools.Shutdown()
			db.Close()
			return nil, fmt.Errorf("register pull sources: %w", err)
		}
	}
	poller := ingest.NewPoller(entClient, registry, gate, tracker).WithPool(pools.General)

	// Queue workers.
	workers := river.NewWorkers()
	river.AddWorker(workers, jobs.NewEnrichWorker(entClient, enricher, enqueuer))
	river.AddWorker(workers, jobs.NewClaimResolveWorker(entClient, resolver, enqueuer))
	river.AddWorker(workers, jobs.NewAggregateWorker(entClient, engine))
	river.AddWorker(workers, jobs.NewBacklogWatchWorker(db, cfg.River.BacklogThreshold))
	river.AddWorker(workers, jobs.NewRetentionWorker(entClient, cfg.Retention))
	river.AddWorker(workers, jobs.NewSourcePollWorker(poller))

	retryPolicy := jobs.RetryPolicy{
		Base: cfg.River.RetryBackoffBase,
		Cap:  cfg.River.RetryBackoffCap,
	}
	if err := db.InitRiverClient(workers, cfg.River, retryPolicy); err != nil {
		pools.Shutdown()
		db.Close()
		return nil, fmt.Errorf("init river workers: %w", err)
	}
	enqueuer.Bind(db.RiverClient)

	registerPeriodicJobs(db, cfg)

	server := handlers.NewServer(handlers.ServerDeps{
		EntClient: entClient,
		Gate:      gate,
		Reader:    aggregation.NewReader(entClient),
		Tracker:   tracker,
		Replay:    enqueuer,
		Audit:     audit.NewLogger(entClient),
		DB:        db,
		Pools:     pools,
	})

	return &Application{
		Config:   cfg,
		Router:   newRouter(server, []byte(cfg.Security.JWTSigningKey)),
		DB:       db,
		Pools:    pools,
		Registry: registry,
	}, nil
}

// registerPeriodicJobs schedules the housekeeping jobs: queue backlog
// sampling, storage retention, and the pull-source sweep.
func registerPeriodicJobs(db *infrastructure.DatabaseClients, cfg *config.Config) {
	if db.RiverClient == nil {
		return
	}

	db.RiverClient.PeriodicJobs().Add(
		river.NewPeriodicJob(
			river.PeriodicInterval(time.Minute),
			func() (river.JobArgs, *river.InsertOpts) {
				return jobs.BacklogWatchArgs{}, nil
			},
			&river.PeriodicJobOpts{RunOnStart: true},
		),
	)

	db.RiverClient.PeriodicJobs().Add(
		river.NewPeriodicJob(
			river.PeriodicInterval(24*time.Hour),
			func() (river.JobArgs, *river.InsertOpts) {
				return jobs.RetentionArgs{}, nil
			},
			&river.PeriodicJobOpts{RunOnStart: true},
		),
	)

	if cfg.Sources.PollEnabled {
		db.RiverClient.PeriodicJobs().Add(
			river.NewPeriodicJob(
				river.PeriodicInterval(cfg.Ingest.PollInterval),
				func() (river.JobArgs, *river.InsertOpts) {
					return jobs.SourcePollArgs{}, nil
				},
				&river.PeriodicJobOpts{RunOnStart: false},
			),
		)
	}
}
