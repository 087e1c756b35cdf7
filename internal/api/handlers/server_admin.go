package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"heatwatch.io/heatwatch/ent"
	"heatwatch.io/heatwatch/ent/datasource"
	"heatwatch.io/heatwatch/ent/deadletter"
	"heatwatch.io/heatwatch/ent/event"
	"heatwatch.io/heatwatch/internal/domain"
	"heatwatch.io/heatwatch/internal/infrastructure"
	apperrors "heatwatch.io/heatwatch/internal/pkg/errors"
	"heatwatch.io/heatwatch/internal/pkg/logger"
)

const maxDeadLetterPageSize = 100

// deadLetterResponse is the API shape of one dead letter entry.
type deadLetterResponse struct {
	ID             string                 `json:"id"`
	EventID        string                 `json:"event_id"`
	Stage          string                 `json:"stage"`
	Reason         string                 `json:"reason"`
	Message        string                 `json:"message"`
	AttemptHistory []domain.AttemptRecord `json:"attempt_history"`
	CreatedAt      time.Time              `json:"created_at"`
	ReplayedAt     *time.Time             `json:"replayed_at,omitempty"`
}

// ListDeadLetters handles GET /api/v1/admin/dead-letters.
func (s *Server) ListDeadLetters(c *gin.Context) {
	query := s.client.DeadLetter.Query()

	if stage := c.Query("stage"); stage != "" {
		query = query.Where(deadletter.StageEQ(deadletter.Stage(stage)))
	}
	if reason := c.Query("reason"); reason != "" {
		query = query.Where(deadletter.ReasonEQ(reason))
	}
	if c.Query("pending") == "true" {
		query = query.Where(deadletter.ReplayedAtIsNil())
	}

	limit := maxDeadLetterPageSize
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxDeadLetterPageSize {
			_ = c.Error(apperrors.BadRequest(apperrors.CodeInvalidEvent, "limit must be in [1,100]"))
			return
		}
		limit = n
	}

	entries, err := query.
		Order(ent.Desc(deadletter.FieldCreatedAt)).
		Limit(limit).
		All(c.Request.Context())
	if err != nil {
		logger.Error("failed to list dead letters", zap.Error(err))
		_ = c.Error(apperrors.Internal(apperrors.CodeInternal, "failed to list dead letters"))
		return
	}

	items := make([]deadLetterResponse, 0, len(entries))
	for _, dl := range entries {
		items = append(items, deadLetterToAPI(dl))
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// replayInputState maps a failed stage back to the event state its
// replay expects.
var replayInputState = map[deadletter.Stage]event.State{
	deadletter.StageIngest:    event.StateRAW,
	deadletter.StageEnrich:    event.StateRAW,
	deadletter.StageResolve:   event.StateENRICHED,
	deadletter.StageAggregate: event.StateCLAIMED,
}

// ReplayDeadLetter handles POST /api/v1/admin/dead-letters/:id/replay.
// The event is reset to the failed stage's input state and re-enqueued
// with a fresh attempt budget.
func (s *Server) ReplayDeadLetter(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	dl, err := s.client.DeadLetter.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			_ = c.Error(apperrors.NotFound(apperrors.CodeNotFound, "dead letter not found"))
			return
		}
		logger.Error("failed to load dead letter", zap.String("id", id), zap.Error(err))
		_ = c.Error(apperrors.Internal(apperrors.CodeInternal, "failed to load dead letter"))
		return
	}
	if dl.ReplayedAt != nil {
		_ = c.Error(apperrors.Conflict(apperrors.CodeInternal, "dead letter already replayed"))
		return
	}

	state, ok := replayInputState[dl.Stage]
	if !ok {
		_ = c.Error(apperrors.Internal(apperrors.CodeInternal, "dead letter has unknown stage"))
		return
	}

	err = s.client.Event.UpdateOneID(dl.EventID).
		SetState(state).
		ClearFailureReason().
		Exec(ctx)
	if err != nil {
		logger.Error("failed to reset event for replay",
			zap.String("event_id", dl.EventID),
			zap.Error(err),
		)
		_ = c.Error(apperrors.Internal(apperrors.CodeInternal, "failed to reset event for replay"))
		return
	}

	if err := s.replay.EnqueueReplay(ctx, dl.EventID, dl.Stage.String()); err != nil {
		logger.Error("failed to enqueue replay",
			zap.String("event_id", dl.EventID),
			zap.String("stage", dl.Stage.String()),
			zap.Error(err),
		)
		_ = c.Error(apperrors.Internal(apperrors.CodeInternal, "failed to enqueue replay"))
		return
	}

	dl, err = dl.Update().SetReplayedAt(time.Now().UTC()).Save(ctx)
	if err != nil {
		logger.Error("failed to mark dead letter replayed", zap.String("id", id), zap.Error(err))
		_ = c.Error(apperrors.Internal(apperrors.CodeInternal, "failed to mark dead letter replayed"))
		return
	}

	actor := actorFromCtx(c)
	dlID, eventID := dl.ID, dl.EventID
	s.auditAsync(func(ctx context.Context) error {
		return s.audit.LogReplay(ctx, dlID, eventID, actor)
	}, zap.String("dead_letter_id", dlID))

	c.JSON(http.StatusOK, deadLetterToAPI(dl))
}

// sourceResponse is the API shape of one data source.
type sourceResponse struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	SourceType        string     `json:"source_type"`
	Status            string     `json:"status"`
	Endpoint          string     `json:"endpoint"`
	FetchCount        int64      `json:"fetch_count"`
	ErrorCount        int64      `json:"error_count"`
	ConsecutiveErrors int        `json:"consecutive_errors"`
	LastSuccessAt     *time.Time `json:"last_success_at,omitempty"`
	LastError         string     `json:"last_error,omitempty"`
}

// ListSources handles GET /api/v1/admin/sources.
func (s *Server) ListSources(c *gin.Context) {
	sources, err := s.client.DataSource.Query().
		Order(ent.Asc(datasource.FieldID)).
		All(c.Request.Context())
	if err != nil {
		logger.Error("failed to list sources", zap.Error(err))
		_ = c.Error(apperrors.Internal(apperrors.CodeInternal, "failed to list sources"))
		return
	}

	items := make([]sourceResponse, 0, len(sources))
	for _, ds := range sources {
		items = append(items, sourceToAPI(ds))
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

type sourceStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// SetSourceStatus handles POST /api/v1/admin/sources/:id/status:
// operator enable/disable of a data source.
func (s *Server) SetSourceStatus(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	var req sourceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeInvalidEvent, "status is required"))
		return
	}

	var err error
	switch datasource.Status(req.Status) {
	case datasource.StatusACTIVE:
		err = s.tracker.Reactivate(ctx, id)
	case datasource.StatusDISABLED:
		err = s.client.DataSource.UpdateOneID(id).
			SetStatus(datasource.StatusDISABLED).
			Exec(ctx)
	default:
		_ = c.Error(apperrors.BadRequest(apperrors.CodeInvalidEvent, "status must be ACTIVE or DISABLED"))
		return
	}
	if err != nil {
		if ent.IsNotFound(err) {
			_ = c.Error(apperrors.NotFound(apperrors.CodeNotFound, "source not found"))
			return
		}
		logger.Error("failed to update source status",
			zap.String("source_id", id),
			zap.String("status", req.Status),
			zap.Error(err),
		)
		_ = c.Error(apperrors.Internal(apperrors.CodeInternal, "failed to update source status"))
		return
	}

	actor := actorFromCtx(c)
	operation := "enable"
	if datasource.Status(req.Status) == datasource.StatusDISABLED {
		operation = "disable"
	}
	s.auditAsync(func(ctx context.Context) error {
		return s.audit.LogSourceStatus(ctx, operation, id, actor)
	}, zap.String("source_id", id))

	ds, err := s.client.DataSource.Get(ctx, id)
	if err != nil {
		logger.Error("failed to reload source", zap.String("source_id", id), zap.Error(err))
		_ = c.Error(apperrors.Internal(apperrors.CodeInternal, "failed to reload source"))
		return
	}
	c.JSON(http.StatusOK, sourceToAPI(ds))
}

// GetBacklog handles GET /api/v1/admin/backlog: pending jobs per stage
// queue.
func (s *Server) GetBacklog(c *gin.Context) {
	ctx := c.Request.Context()

	backlog := make(map[string]int64, len(infrastructure.StageQueues))
	for _, queue := range infrastructure.StageQueues {
		pending, err := s.db.PendingJobs(ctx, queue)
		if err != nil {
			logger.Error("failed to sample queue backlog",
				zap.String("queue", queue),
				zap.Error(err),
			)
			_ = c.Error(apperrors.Internal(apperrors.CodeInternal, "failed to sample queue backlog"))
			return
		}
		backlog[queue] = pending
	}

	resp := gin.H{"queues": backlog}
	if s.pools != nil {
		resp["workers"] = s.pools.Metrics()
	}
	c.JSON(http.StatusOK, resp)
}

func deadLetterToAPI(dl *ent.DeadLetter) deadLetterResponse {
	return deadLetterResponse{
		ID:             dl.ID,
		EventID:        dl.EventID,
		Stage:          dl.Stage.String(),
		Reason:         dl.Reason,
		Message:        dl.Message,
		AttemptHistory: dl.AttemptHistory,
		CreatedAt:      dl.CreatedAt,
		ReplayedAt:     dl.ReplayedAt,
	}
}

func sourceToAPI(ds *ent.DataSource) sourceResponse {
	return sourceResponse{
		ID:                ds.ID,
		Name:              ds.Name,
		SourceType:        ds.SourceType.String(),
		Status:            ds.Status.String(),
		Endpoint:          ds.Endpoint,
		FetchCount:        ds.FetchCount,
		ErrorCount:        ds.ErrorCount,
		ConsecutiveErrors: ds.ConsecutiveErrors,
		LastSuccessAt:     ds.LastSuccessAt,
		LastError:         ds.LastError,
	}
}
