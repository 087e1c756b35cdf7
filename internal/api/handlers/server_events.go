package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"heatwatch.io/heatwatch/internal/domain"
	apperrors "heatwatch.io/heatwatch/internal/pkg/errors"
)

// ingestResponse is returned for accepted (or silently deduplicated)
// events.
type ingestResponse struct {
	EventID string `json:"event_id,omitempty"`
	Deduped bool   `json:"deduped"`
}

// PostEvent handles POST /api/v1/events: push-style ingestion for API
// and manual sources.
func (s *Server) PostEvent(c *gin.Context) {
	var raw domain.RawEvent
	if err := c.ShouldBindJSON(&raw); err != nil {
		_ = c.Error(apperrors.Wrap(err, apperrors.CodeInvalidEvent, "invalid event payload", http.StatusBadRequest))
		return
	}

	outcome, err := s.gate.Ingest(c.Request.Context(), raw)
	if err != nil {
		_ = c.Error(err)
		return
	}

	status := http.StatusAccepted
	if outcome.Deduped {
		status = http.StatusOK
	}
	c.JSON(status, ingestResponse{
		EventID: outcome.EventID,
		Deduped: outcome.Deduped,
	})
}
