package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"heatwatch.io/heatwatch/internal/domain"
)

// Event holds the schema definition for the Event entity: one canonical
// row per ingested content item, carrying its lifecycle state through the
// pipeline. The id is assigned at ingestion and immutable; state only
// moves forward, except to FAILED.
type Event struct {
	ent.Schema
}

// Mixin of the Event.
func (Event) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Event.
func (Event) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("source_id").
			NotEmpty().
			Immutable(),
		field.Enum("source_type").
			Values("rss", "crawler", "api", "manual").
			Immutable(),
		field.Text("raw_content").
			Immutable(),
		field.Text("normalized_content"),
		// raw_hash is the ingestion-level dedup key (distinct from the
		// claim fingerprint): hash of the raw payload per source.
		field.String("raw_hash").
			NotEmpty().
			Immutable(),
		field.String("url").
			Optional(),
		// observed_at is when the source observed the content;
		// ingested_at is when the gate accepted it.
		field.Time("observed_at").
			Immutable(),
		field.Time("ingested_at").
			Immutable(),
		field.JSON("location_hint", &domain.LocationHint{}).
			Optional(),
		field.JSON("nlp_result", &domain.NLPResult{}).
			Optional(),
		field.JSON("satellite_result", &domain.SatelliteResult{}).
			Optional(),
		// fused_risk is the effective risk weight after satellite fusion,
		// persisted at enrichment so aggregation never re-derives it.
		field.Float("fused_risk").
			Default(0),
		// claim_id is a weak back-reference: the Claim owns its own
		// lifecycle, the event only records membership.
		field.String("claim_id").
			Optional(),
		field.Enum("state").
			Values("RAW", "ENRICHED", "CLAIMED", "PUBLISHED", "FAILED").
			Default("RAW"),
		field.JSON("attempt_counts", map[string]int{}).
			Optional(),
		field.String("failure_reason").
			Optional(),
	}
}

// Indexes of the Event.
func (Event) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("source_id", "raw_hash"),
		index.Fields("state"),
		index.Fields("claim_id"),
		index.Fields("observed_at"),
	}
}
