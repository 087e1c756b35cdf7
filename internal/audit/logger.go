// Package audit implements the audit logging service.
//
// Audit logs are append-only operator-action records. Hard-delete is
// NOT allowed.
package audit

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"heatwatch.io/heatwatch/ent"
	"heatwatch.io/heatwatch/internal/pkg/logger"
)

// Logger writes audit records to the database.
type Logger struct {
	client *ent.Client
}

// NewLogger creates a new audit Logger.
func NewLogger(client *ent.Client) *Logger {
	return &Logger{client: client}
}

// LogAction records an auditable action.
func (l *Logger) LogAction(ctx context.Context, action, resourceType, resourceID, actor string, details map[string]interface{}) error {
	_, err := l.client.AuditLog.Create().
		SetID(generateAuditID()).
		SetAction(action).
		SetResourceType(resourceType).
		SetResourceID(resourceID).
		SetActor(actor).
		SetDetails(details).
		Save(ctx)
	if err != nil {
		logger.Error("Failed to write audit log",
			zap.String("action", action),
			zap.String("resource_type", resourceType),
			zap.String("resource_id", resourceID),
			zap.Error(err),
		)
		return fmt.Errorf("write audit log: %w", err)
	}
	return nil
}

// LogReplay records a dead-letter replay decision.
func (l *Logger) LogReplay(ctx context.Context, deadLetterID, eventID, actor string) error {
	return l.LogAction(ctx, "deadletter.replay", "dead_letter", deadLetterID, actor, map[string]interface{}{
		"event_id": eventID,
	})
}

// LogSourceStatus records a source enable/disable decision.
func (l *Logger) LogSourceStatus(ctx context.Context, operation, sourceID, actor string) error {
	return l.LogAction(ctx, "source."+operation, "data_source", sourceID, actor, nil)
}

func generateAuditID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return fmt.Sprintf("audit-%s", id.String())
}
