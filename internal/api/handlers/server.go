// Package handlers implements the HTTP API: ingestion, heatmap and
// claim reads, and the operator admin surface.
//
// Route registration is centralized in the app router; handlers do NOT
// register their own routes.
package handlers

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"heatwatch.io/heatwatch/ent"
	"heatwatch.io/heatwatch/internal/aggregation"
	"heatwatch.io/heatwatch/internal/audit"
	"heatwatch.io/heatwatch/internal/infrastructure"
	"heatwatch.io/heatwatch/internal/ingest"
	"heatwatch.io/heatwatch/internal/pkg/logger"
	"heatwatch.io/heatwatch/internal/pkg/worker"
)

// ReplayEnqueuer re-runs a dead-lettered event from its failed stage.
type ReplayEnqueuer interface {
	EnqueueReplay(ctx context.Context, eventID, stage string) error
}

// Server implements all API handlers.
type Server struct {
	client  *ent.Client
	gate    *ingest.Gate
	reader  *aggregation.Reader
	tracker *ingest.Tracker
	replay  ReplayEnqueuer
	audit   *audit.Logger
	db      *infrastructure.DatabaseClients
	pools   *worker.Pools
}

// ServerDeps holds all dependencies for creating a Server.
// Manual DI, no Wire/Dig.
type ServerDeps struct {
	EntClient *ent.Client
	Gate      *ingest.Gate
	Reader    *aggregation.Reader
	Tracker   *ingest.Tracker
	Replay    ReplayEnqueuer
	Audit     *audit.Logger
	DB        *infrastructure.DatabaseClients
	Pools     *worker.Pools
}

// NewServer creates a new Server with all dependencies.
func NewServer(deps ServerDeps) *Server {
	return &Server{
		client:  deps.EntClient,
		gate:    deps.Gate,
		reader:  deps.Reader,
		tracker: deps.Tracker,
		replay:  deps.Replay,
		audit:   deps.Audit,
		db:      deps.DB,
		pools:   deps.Pools,
	}
}

// auditAsync records an admin action off the request goroutine, so a
// slow audit write never holds up the admin response. Without pools the
// write runs inline.
func (s *Server) auditAsync(record func(ctx context.Context) error, fields ...zap.Field) {
	task := func(ctx context.Context) {
		if err := record(ctx); err != nil {
			logger.Warn("audit record not written", append(fields, zap.Error(err))...)
		}
	}
	if s.pools == nil {
		task(context.Background())
		return
	}
	if err := s.pools.SubmitDetached("general", task); err != nil {
		logger.Warn("audit task not submitted", append(fields, zap.Error(err))...)
	}
}

// actorFromCtx extracts the authenticated operator ID from the request
// context.
func actorFromCtx(c *gin.Context) string {
	if uid := c.GetString("user_id"); uid != "" {
		return uid
	}
	return "anonymous"
}
