// Package infrastructure provides database and connection pool setup.
//
// A single shared pgxpool backs both Ent and River so stage transitions
// and job state can share transactions.
package infrastructure

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"github.com/riverqueue/river/rivermigrate"
	"go.uber.org/zap"

	"heatwatch.io/heatwatch/ent"
	entmigrate "heatwatch.io/heatwatch/ent/migrate"
	"heatwatch.io/heatwatch/internal/config"
	"heatwatch.io/heatwatch/internal/pkg/logger"
)

// Stage queue names. Each pipeline stage pulls from its own queue so
// budgets and worker counts are tuned per stage.
const (
	QueueEnrichment  = "enrichment"
	QueueClaims      = "claims"
	QueueAggregation = "aggregation"
)

// StageQueues lists every stage queue for backlog reporting.
var StageQueues = []string{QueueEnrichment, QueueClaims, QueueAggregation}

// DatabaseClients contains all database-related clients.
// All clients share a single pgxpool connection pool.
type DatabaseClients struct {
	// Pool is the shared connection pool (Ent + River).
	Pool *pgxpool.Pool

	// DB is the *sql.DB wrapper around Pool for the Ent ORM.
	// Created via stdlib.OpenDBFromPool to reuse pgxpool connections.
	DB *sql.DB

	// EntClient is the Ent ORM client backed by the shared pool.
	EntClient *ent.Client

	// RiverClient is the River job queue client backed by the shared pool.
	RiverClient *river.Client[pgx.Tx]
}

// NewDatabaseClients creates database clients with a shared connection pool.
func NewDatabaseClients(ctx context.Context, cfg config.DatabaseConfig) (*DatabaseClients, error) {
	dsn := cfg.DSN()

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse pool config: %w", err)
	}
	poolConfig.MaxConns = cfg.MaxConns
	poolConfig.MinConns = cfg.MinConns
	poolConfig.MaxConnLifetime = cfg.MaxConnLifetime
	poolConfig.MaxConnIdleTime = cfg.MaxConnIdleTime
	poolConfig.HealthCheckPeriod = time.Minute

	// Buckets and velocity math assume UTC throughout.
	poolConfig.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		_, err := conn.Exec(ctx, "SET timezone = 'UTC'")
		return err
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	// *sql.DB from the pool so Ent reuses pgxpool connections instead of
	// opening a second pool.
	db := stdlib.OpenDBFromPool(pool)

	entDriver := entsql.OpenDB(dialect.Postgres, db)
	entClient := ent.NewClient(ent.Driver(entDriver))

	logger.Info("Database connection pool created",
		zap.Int32("max_conns", cfg.MaxConns),
		zap.Int32("min_conns", cfg.MinConns),
	)

	return &DatabaseClients{
		Pool:      pool,
		DB:        db,
		EntClient: entClient,
	}, nil
}

// AutoMigrate runs Ent schema migration and River queue table migration.
// Only use in development; production should use Atlas-managed migrations.
func (c *DatabaseClients) AutoMigrate(ctx context.Context) error {
	logger.Info("Running Ent auto-migration...")
	if err := c.EntClient.Schema.Create(ctx,
		entmigrate.WithDropIndex(true),
		entmigrate.WithDropColumn(true),
		entmigrate.WithForeignKeys(true),
	); err != nil {
		return fmt.Errorf("ent auto-migrate: %w", err)
	}
	logger.Info("Ent auto-migration completed")

	logger.Info("Running River migration...")
	migrator, err := rivermigrate.New(riverpgxv5.New(c.Pool), nil)
	if err != nil {
		return fmt.Errorf("create river migrator: %w", err)
	}
	res, err := migrator.Migrate(ctx, rivermigrate.DirectionUp, nil)
	if err != nil {
		return fmt.Errorf("river migrate up: %w", err)
	}
	if len(res.Versions) > 0 {
		logger.Info("River migration completed",
			zap.Int("versions_applied", len(res.Versions)),
		)
	} else {
		logger.Info("River migration: already up-to-date")
	}

	return nil
}

// InitRiverClient creates a River client with registered workers and the
// pipeline's retry policy. Called after NewDatabaseClients; workers and
// retryPolicy come from bootstrap.
func (c *DatabaseClients) InitRiverClient(
	workers *river.Workers,
	cfg config.RiverConfig,
	retryPolicy river.ClientRetryPolicy,
) error {
	riverClient, err := river.NewClient(riverpgxv5.New(c.Pool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: 5},
			QueueEnrichment:    {MaxWorkers: cfg.EnrichmentWorkers},
			QueueClaims:        {MaxWorkers: cfg.ClaimWorkers},
			QueueAggregation:   {MaxWorkers: cfg.AggregationWorkers},
		},
		Workers:                     workers,
		RetryPolicy:                 retryPolicy,
		CompletedJobRetentionPeriod: cfg.CompletedJobRetentionPeriod,
	})
	if err != nil {
		return fmt.Errorf("create river client: %w", err)
	}
	c.RiverClient = riverClient
	logger.Info("River client initialized",
		zap.Int("enrichment_workers", cfg.EnrichmentWorkers),
		zap.Int("claim_workers", cfg.ClaimWorkers),
		zap.Int("aggregation_workers", cfg.AggregationWorkers),
	)
	return nil
}

// PendingJobs counts available or retryable jobs on a queue. Used by the
// backlog watch: above the configured threshold this is surfaced as an
// operational alert, never as load shedding.
func (c *DatabaseClients) PendingJobs(ctx context.Context, queue string) (int64, error) {
	var count int64
	err := c.Pool.QueryRow(ctx,
		`SELECT count(*) FROM river_job WHERE queue = $1 AND state IN ('available', 'retryable', 'scheduled')`,
		queue,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count pending jobs on %s: %w", queue, err)
	}
	return count, nil
}

// Close closes all connection pools gracefully.
func (c *DatabaseClients) Close() {
	if c.EntClient != nil {
		c.EntClient.Close()
	}
	if c.DB != nil {
		c.DB.Close()
	}
	if c.Pool != nil {
		c.Pool.Close()
	}
}
