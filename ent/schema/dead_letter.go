package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"heatwatch.io/heatwatch/internal/domain"
)

// DeadLetter holds the schema definition for the DeadLetter entity:
// terminal records for events that exhausted their retry budget at some
// stage. Rows never advance automatically; operators replay them.
type DeadLetter struct {
	ent.Schema
}

// Mixin of the DeadLetter.
func (DeadLetter) Mixin() []ent.Mixin {
	return []ent.Mixin{
		AuditMixin{}, // Append-only: created_at only
	}
}

// Fields of the DeadLetter.
func (DeadLetter) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("event_id").
			NotEmpty().
			Immutable(),
		field.Enum("stage").
			Values("ingest", "enrich", "resolve", "aggregate").
			Immutable(),
		field.String("reason").
			NotEmpty().
			Immutable(), // e.g. "TransientEnrichmentFailure"
		field.Text("message").
			Optional().
			Immutable(),
		field.JSON("attempt_history", []domain.AttemptRecord{}).
			Optional(),
		field.Time("replayed_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the DeadLetter.
func (DeadLetter) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("event_id"),
		index.Fields("stage"),
		index.Fields("created_at"),
	}
}
