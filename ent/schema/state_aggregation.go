package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StateAggregation holds the schema definition for the StateAggregation
// read model: one row per (region, date, hour) bucket, upserted
// incrementally as events reach PUBLISHED. This is the table the
// presentation layer reads.
type StateAggregation struct {
	ent.Schema
}

// Mixin of the StateAggregation.
func (StateAggregation) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the StateAggregation.
func (StateAggregation) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("region").
			NotEmpty().
			Immutable(),
		// date is the bucket day in YYYY-MM-DD (UTC)
		field.String("date").
			NotEmpty().
			Immutable(),
		field.Int("hour").
			Min(0).
			Max(23).
			Immutable(),
		field.Int64("total_events").
			Default(0),
		field.Int64("high_risk_events").
			Default(0),
		field.Int64("validated_events").
			Default(0),
		field.Float("avg_misinformation_risk").
			Default(0),
		field.Float("max_misinformation_risk").
			Default(0),
		field.Float("heat_intensity").
			Default(0),
		field.JSON("category_breakdown", map[string]int64{}).
			Optional(),
	}
}

// Indexes of the StateAggregation.
func (StateAggregation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("region", "date", "hour").
			Unique(),
		index.Fields("date", "hour"),
		index.Fields("heat_intensity"),
	}
}
