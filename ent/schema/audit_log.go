package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AuditLog holds the schema definition for the AuditLog entity.
// Append-only records of operator actions (dead-letter replay, source
// enable/disable). Hard-delete is NOT allowed.
type AuditLog struct {
	ent.Schema
}

// Mixin of the AuditLog.
func (AuditLog) Mixin() []ent.Mixin {
	return []ent.Mixin{
		AuditMixin{}, // Append-only: created_at only
	}
}

// Fields of the AuditLog.
func (AuditLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("action").
			NotEmpty().
			Immutable(), // e.g. "deadletter.replay", "source.disable"
		field.String("resource_type").
			NotEmpty().
			Immutable(), // e.g. "dead_letter", "data_source"
		field.String("resource_id").
			NotEmpty().
			Immutable(),
		field.String("actor").
			NotEmpty().
			Immutable(),
		field.JSON("details", map[string]interface{}{}).
			Optional(),
	}
}

// Indexes of the AuditLog.
func (AuditLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("resource_type", "resource_id"),
		index.Fields("actor"),
		index.Fields("created_at"),
	}
}
