package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DataSource holds the schema definition for the DataSource entity:
// health tracking for registered connectors. The pipeline reads these
// counters for circuit-breaking; connectors own the rest of the record.
type DataSource struct {
	ent.Schema
}

// Mixin of the DataSource.
func (DataSource) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the DataSource.
func (DataSource) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(), // source_id
		field.String("name").
			NotEmpty(),
		field.Enum("source_type").
			Values("rss", "crawler", "api", "manual"),
		field.Enum("status").
			Values("ACTIVE", "DEGRADED", "DISABLED").
			Default("ACTIVE"),
		field.String("endpoint").
			Optional(),
		field.Int64("fetch_count").
			Default(0),
		field.Int64("error_count").
			Default(0),
		// consecutive_errors drives DEGRADED; reset on any success
		field.Int("consecutive_errors").
			Default(0),
		field.Time("last_success_at").
			Optional().
			Nillable(),
		field.String("last_error").
			Optional(),
	}
}

// Indexes of the DataSource.
func (DataSource) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("source_type"),
	}
}
