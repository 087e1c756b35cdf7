// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AuditLogsColumns holds the columns for the "audit_logs" table.
	AuditLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "action", Type: field.TypeString},
		{Name: "resource_type", Type: field.TypeString},
		{Name: "resource_id", Type: field.TypeString},
		{Name: "actor", Type: field.TypeString},
		{Name: "details", Type: field.TypeJSON, Nullable: true},
	}
	// AuditLogsTable holds the schema information for the "audit_logs" table.
	AuditLogsTable = &schema.Table{
		Name:       "audit_logs",
		Columns:    AuditLogsColumns,
		PrimaryKey: []*schema.Column{AuditLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "auditlog_resource_type_resource_id",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[3], AuditLogsColumns[4]},
			},
			{
				Name:    "auditlog_actor",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[5]},
			},
			{
				Name:    "auditlog_created_at",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[1]},
			},
		},
	}
	// ClaimsColumns holds the columns for the "claims" table.
	ClaimsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "fingerprint", Type: field.TypeString, Unique: true},
		{Name: "first_seen_at", Type: field.TypeTime},
		{Name: "first_seen_event_id", Type: field.TypeString},
		{Name: "last_seen_at", Type: field.TypeTime},
		{Name: "occurrence_count", Type: field.TypeInt64, Default: 1},
		{Name: "distinct_locations", Type: field.TypeJSON, Nullable: true},
		{Name: "spread_velocity", Type: field.TypeFloat64, Default: 0},
		{Name: "geographic_spread_score", Type: field.TypeFloat64, Default: 0},
		{Name: "overall_risk_score", Type: field.TypeFloat64, Default: 0},
		{Name: "archived_at", Type: field.TypeTime, Nullable: true},
	}
	// ClaimsTable holds the schema information for the "claims" table.
	ClaimsTable = &schema.Table{
		Name:       "claims",
		Columns:    ClaimsColumns,
		PrimaryKey: []*schema.Column{ClaimsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "claim_last_seen_at",
				Unique:  false,
				Columns: []*schema.Column{ClaimsColumns[6]},
			},
			{
				Name:    "claim_first_seen_at",
				Unique:  false,
				Columns: []*schema.Column{ClaimsColumns[4]},
			},
		},
	}
	// DataSourcesColumns holds the columns for the "data_sources" table.
	DataSourcesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString},
		{Name: "source_type", Type: field.TypeEnum, Enums: []string{"rss", "crawler", "api", "manual"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"ACTIVE", "DEGRADED", "DISABLED"}, Default: "ACTIVE"},
		{Name: "endpoint", Type: field.TypeString, Nullable: true},
		{Name: "fetch_count", Type: field.TypeInt64, Default: 0},
		{Name: "error_count", Type: field.TypeInt64, Default: 0},
		{Name: "consecutive_errors", Type: field.TypeInt, Default: 0},
		{Name: "last_success_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_error", Type: field.TypeString, Nullable: true},
	}
	// DataSourcesTable holds the schema information for the "data_sources" table.
	DataSourcesTable = &schema.Table{
		Name:       "data_sources",
		Columns:    DataSourcesColumns,
		PrimaryKey: []*schema.Column{DataSourcesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "datasource_status",
				Unique:  false,
				Columns: []*schema.Column{DataSourcesColumns[5]},
			},
			{
				Name:    "datasource_source_type",
				Unique:  false,
				Columns: []*schema.Column{DataSourcesColumns[4]},
			},
		},
	}
	// DeadLettersColumns holds the columns for the "dead_letters" table.
	DeadLettersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "event_id", Type: field.TypeString},
		{Name: "stage", Type: field.TypeEnum, Enums: []string{"ingest", "enrich", "resolve", "aggregate"}},
		{Name: "reason", Type: field.TypeString},
		{Name: "message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "attempt_history", Type: field.TypeJSON, Nullable: true},
		{Name: "replayed_at", Type: field.TypeTime, Nullable: true},
	}
	// DeadLettersTable holds the schema information for the "dead_letters" table.
	DeadLettersTable = &schema.Table{
		Name:       "dead_letters",
		Columns:    DeadLettersColumns,
		PrimaryKey: []*schema.Column{DeadLettersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "deadletter_event_id",
				Unique:  false,
				Columns: []*schema.Column{DeadLettersColumns[2]},
			},
			{
				Name:    "deadletter_stage",
				Unique:  false,
				Columns: []*schema.Column{DeadLettersColumns[3]},
			},
			{
				Name:    "deadletter_created_at",
				Unique:  false,
				Columns: []*schema.Column{DeadLettersColumns[1]},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "source_id", Type: field.TypeString},
		{Name: "source_type", Type: field.TypeEnum, Enums: []string{"rss", "crawler", "api", "manual"}},
		{Name: "raw_content", Type: field.TypeString, Size: 2147483647},
		{Name: "normalized_content", Type: field.TypeString, Size: 2147483647},
		{Name: "raw_hash", Type: field.TypeString},
		{Name: "url", Type: field.TypeString, Nullable: true},
		{Name: "observed_at", Type: field.TypeTime},
		{Name: "ingested_at", Type: field.TypeTime},
		{Name: "location_hint", Type: field.TypeJSON, Nullable: true},
		{Name: "nlp_result", Type: field.TypeJSON, Nullable: true},
		{Name: "satellite_result", Type: field.TypeJSON, Nullable: true},
		{Name: "fused_risk", Type: field.TypeFloat64, Default: 0},
		{Name: "claim_id", Type: field.TypeString, Nullable: true},
		{Name: "state", Type: field.TypeEnum, Enums: []string{"RAW", "ENRICHED", "CLAIMED", "PUBLISHED", "FAILED"}, Default: "RAW"},
		{Name: "attempt_counts", Type: field.TypeJSON, Nullable: true},
		{Name: "failure_reason", Type: field.TypeString, Nullable: true},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "event_source_id_raw_hash",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[3], EventsColumns[7]},
			},
			{
				Name:    "event_state",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[16]},
			},
			{
				Name:    "event_claim_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[15]},
			},
			{
				Name:    "event_observed_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[9]},
			},
		},
	}
	// StateAggregationsColumns holds the columns for the "state_aggregations" table.
	StateAggregationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "region", Type: field.TypeString},
		{Name: "date", Type: field.TypeString},
		{Name: "hour", Type: field.TypeInt},
		{Name: "total_events", Type: field.TypeInt64, Default: 0},
		{Name: "high_risk_events", Type: field.TypeInt64, Default: 0},
		{Name: "validated_events", Type: field.TypeInt64, Default: 0},
		{Name: "avg_misinformation_risk", Type: field.TypeFloat64, Default: 0},
		{Name: "max_misinformation_risk", Type: field.TypeFloat64, Default: 0},
		{Name: "heat_intensity", Type: field.TypeFloat64, Default: 0},
		{Name: "category_breakdown", Type: field.TypeJSON, Nullable: true},
	}
	// StateAggregationsTable holds the schema information for the "state_aggregations" table.
	StateAggregationsTable = &schema.Table{
		Name:       "state_aggregations",
		Columns:    StateAggregationsColumns,
		PrimaryKey: []*schema.Column{StateAggregationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "stateaggregation_region_date_hour",
				Unique:  true,
				Columns: []*schema.Column{StateAggregationsColumns[3], StateAggregationsColumns[4], StateAggregationsColumns[5]},
			},
			{
				Name:    "stateaggregation_date_hour",
				Unique:  false,
				Columns: []*schema.Column{StateAggregationsColumns[4], StateAggregationsColumns[5]},
			},
			{
				Name:    "stateaggregation_heat_intensity",
				Unique:  false,
				Columns: []*schema.Column{StateAggregationsColumns[11]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AuditLogsTable,
		ClaimsTable,
		DataSourcesTable,
		DeadLettersTable,
		EventsTable,
		StateAggregationsTable,
	}
)

func init() {
}
