// Code generated by ent, DO NOT EDIT.

package event

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the event type in the database.
	Label = "event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldSourceID holds the string denoting the source_id field in the database.
	FieldSourceID = "source_id"
	// FieldSourceType holds the string denoting the source_type field in the database.
	FieldSourceType = "source_type"
	// FieldRawContent holds the string denoting the raw_content field in the database.
	FieldRawContent = "raw_content"
	// FieldNormalizedContent holds the string denoting the normalized_content field in the database.
	FieldNormalizedContent = "normalized_content"
	// FieldRawHash holds the string denoting the raw_hash field in the database.
	FieldRawHash = "raw_hash"
	// FieldURL holds the string denoting the url field in the database.
	FieldURL = "url"
	// FieldObservedAt holds the string denoting the observed_at field in the database.
	FieldObservedAt = "observed_at"
	// FieldIngestedAt holds the string denoting the ingested_at field in the database.
	FieldIngestedAt = "ingested_at"
	// FieldLocationHint holds the string denoting the location_hint field in the database.
	FieldLocationHint = "location_hint"
	// FieldNlpResult holds the string denoting the nlp_result field in the database.
	FieldNlpResult = "nlp_result"
	// FieldSatelliteResult holds the string denoting the satellite_result field in the database.
	FieldSatelliteResult = "satellite_result"
	// FieldFusedRisk holds the string denoting the fused_risk field in the database.
	FieldFusedRisk = "fused_risk"
	// FieldClaimID holds the string denoting the claim_id field in the database.
	FieldClaimID = "claim_id"
	// FieldState holds the string denoting the state field in the database.
	FieldState = "state"
	// FieldAttemptCounts holds the string denoting the attempt_counts field in the database.
	FieldAttemptCounts = "attempt_counts"
	// FieldFailureReason holds the string denoting the failure_reason field in the database.
	FieldFailureReason = "failure_reason"
	// Table holds the table name of the event in the database.
	Table = "events"
)

// Columns holds all SQL columns for event fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldSourceID,
	FieldSourceType,
	FieldRawContent,
	FieldNormalizedContent,
	FieldRawHash,
	FieldURL,
	FieldObservedAt,
	FieldIngestedAt,
	FieldLocationHint,
	FieldNlpResult,
	FieldSatelliteResult,
	FieldFusedRisk,
	FieldClaimID,
	FieldState,
	FieldAttemptCounts,
	FieldFailureReason,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// SourceIDValidator is a validator for the "source_id" field. It is called by the builders before save.
	SourceIDValidator func(string) error
	// RawHashValidator is a validator for the "raw_hash" field. It is called by the builders before save.
	RawHashValidator func(string) error
	// DefaultFusedRisk holds the default value on creation for the "fused_risk" field.
	DefaultFusedRisk float64
)

// SourceType defines the type for the "source_type" enum field.
type SourceType string

// SourceType values.
const (
	SourceTypeRss     SourceType = "rss"
	SourceTypeCrawler SourceType = "crawler"
	SourceTypeAPI     SourceType = "api"
	SourceTypeManual  SourceType = "manual"
)

func (st SourceType) String() string {
	return string(st)
}

// SourceTypeValidator is a validator for the "source_type" field enum values. It is called by the builders before save.
func SourceTypeValidator(st SourceType) error {
	switch st {
	case SourceTypeRss, SourceTypeCrawler, SourceTypeAPI, SourceTypeManual:
		return nil
	default:
		return fmt.Errorf("event: invalid enum value for source_type field: %q", st)
	}
}

// State defines the type for the "state" enum field.
type State string

// StateRAW is the default value of the State enum.
const DefaultState = StateRAW

// State values.
const (
	StateRAW       State = "RAW"
	StateENRICHED  State = "ENRICHED"
	StateCLAIMED   State = "CLAIMED"
	StatePUBLISHED State = "PUBLISHED"
	StateFAILED    State = "FAILED"
)

func (s State) String() string {
	return string(s)
}

// StateValidator is a validator for the "state" field enum values. It is called by the builders before save.
func StateValidator(s State) error {
	switch s {
	case StateRAW, StateENRICHED, StateCLAIMED, StatePUBLISHED, StateFAILED:
		return nil
	default:
		return fmt.Errorf("event: invalid enum value for state field: %q", s)
	}
}

// OrderOption defines the ordering options for the Event queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// BySourceID orders the results by the source_id field.
func BySourceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceID, opts...).ToFunc()
}

// BySourceType orders the results by the source_type field.
func BySourceType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceType, opts...).ToFunc()
}

// ByRawContent orders the results by the raw_content field.
func ByRawContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRawContent, opts...).ToFunc()
}

// ByNormalizedContent orders the results by the normalized_content field.
func ByNormalizedContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNormalizedContent, opts...).ToFunc()
}

// ByRawHash orders the results by the raw_hash field.
func ByRawHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRawHash, opts...).ToFunc()
}

// ByURL orders the results by the url field.
func ByURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldURL, opts...).ToFunc()
}

// ByObservedAt orders the results by the observed_at field.
func ByObservedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldObservedAt, opts...).ToFunc()
}

// ByIngestedAt orders the results by the ingested_at field.
func ByIngestedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIngestedAt, opts...).ToFunc()
}

// ByFusedRisk orders the results by the fused_risk field.
func ByFusedRisk(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFusedRisk, opts...).ToFunc()
}

// ByClaimID orders the results by the claim_id field.
func ByClaimID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClaimID, opts...).ToFunc()
}

// ByState orders the results by the state field.
func ByState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldState, opts...).ToFunc()
}

// ByFailureReason orders the results by the failure_reason field.
func ByFailureReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailureReason, opts...).ToFunc()
}
