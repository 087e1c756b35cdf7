package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Claim holds the schema definition for the Claim entity: one canonical
// row per deduplicated claim, keyed by the fingerprint of its normalized
// text. Rows are created once, mutated by every merge, and never deleted
// (retention archives them instead).
type Claim struct {
	ent.Schema
}

// Mixin of the Claim.
func (Claim) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Claim.
func (Claim) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("fingerprint").
			NotEmpty().
			Unique().
			Immutable(),
		field.Time("first_seen_at").
			Immutable(),
		field.String("first_seen_event_id").
			NotEmpty().
			Immutable(),
		field.Time("last_seen_at"),
		field.Int64("occurrence_count").
			Default(1),
		field.JSON("distinct_locations", []string{}).
			Optional(),
		// occurrences per hour since first_seen_at
		field.Float("spread_velocity").
			Default(0),
		// |distinct_locations| / occurrence_count, bounded [0,1]
		field.Float("geographic_spread_score").
			Default(0),
		// EWMA over merged events' fused risk
		field.Float("overall_risk_score").
			Default(0),
		field.Time("archived_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the Claim.
func (Claim) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("last_seen_at"),
		index.Fields("first_seen_at"),
	}
}
