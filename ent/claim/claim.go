// Code generated by ent, DO NOT EDIT.

package claim

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the claim type in the database.
	Label = "claim"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldFingerprint holds the string denoting the fingerprint field in the database.
	FieldFingerprint = "fingerprint"
	// FieldFirstSeenAt holds the string denoting the first_seen_at field in the database.
	FieldFirstSeenAt = "first_seen_at"
	// FieldFirstSeenEventID holds the string denoting the first_seen_event_id field in the database.
	FieldFirstSeenEventID = "first_seen_event_id"
	// FieldLastSeenAt holds the string denoting the last_seen_at field in the database.
	FieldLastSeenAt = "last_seen_at"
	// FieldOccurrenceCount holds the string denoting the occurrence_count field in the database.
	FieldOccurrenceCount = "occurrence_count"
	// FieldDistinctLocations holds the string denoting the distinct_locations field in the database.
	FieldDistinctLocations = "distinct_locations"
	// FieldSpreadVelocity holds the string denoting the spread_velocity field in the database.
	FieldSpreadVelocity = "spread_velocity"
	// FieldGeographicSpreadScore holds the string denoting the geographic_spread_score field in the database.
	FieldGeographicSpreadScore = "geographic_spread_score"
	// FieldOverallRiskScore holds the string denoting the overall_risk_score field in the database.
	FieldOverallRiskScore = "overall_risk_score"
	// FieldArchivedAt holds the string denoting the archived_at field in the database.
	FieldArchivedAt = "archived_at"
	// Table holds the table name of the claim in the database.
	Table = "claims"
)

// Columns holds all SQL columns for claim fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldFingerprint,
	FieldFirstSeenAt,
	FieldFirstSeenEventID,
	FieldLastSeenAt,
	FieldOccurrenceCount,
	FieldDistinctLocations,
	FieldSpreadVelocity,
	FieldGeographicSpreadScore,
	FieldOverallRiskScore,
	FieldArchivedAt,
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
	// FingerprintValidator is a validator for the "fingerprint" field. It is called by the builders before save.
	FingerprintValidator func(string) error
	// FirstSeenEventIDValidator is a validator for the "first_seen_event_id" field. It is called by the builders before save.
	FirstSeenEventIDValidator func(string) error
	// DefaultOccurrenceCount holds the default value on creation for the "occurrence_count" field.
	DefaultOccurrenceCount int64
	// DefaultSpreadVelocity holds the default value on creation for the "spread_velocity" field.
	DefaultSpreadVelocity float64
	// DefaultGeographicSpreadScore holds the default value on creation for the "geographic_spread_score" field.
	DefaultGeographicSpreadScore float64
	// DefaultOverallRiskScore holds the default value on creation for the "overall_risk_score" field.
	DefaultOverallRiskScore float64
)

// OrderOption defines the ordering options for the Claim queries.
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

// ByFingerprint orders the results by the fingerprint field.
func ByFingerprint(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFingerprint, opts...).ToFunc()
}

// ByFirstSeenAt orders the results by the first_seen_at field.
func ByFirstSeenAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFirstSeenAt, opts...).ToFunc()
}

// ByFirstSeenEventID orders the results by the first_seen_event_id field.
func ByFirstSeenEventID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFirstSeenEventID, opts...).ToFunc()
}

// ByLastSeenAt orders the results by the last_seen_at field.
func ByLastSeenAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastSeenAt, opts...).ToFunc()
}

// ByOccurrenceCount orders the results by the occurrence_count field.
func ByOccurrenceCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOccurrenceCount, opts...).ToFunc()
}

// BySpreadVelocity orders the results by the spread_velocity field.
func BySpreadVelocity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSpreadVelocity, opts...).ToFunc()
}

// ByGeographicSpreadScore orders the results by the geographic_spread_score field.
func ByGeographicSpreadScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGeographicSpreadScore, opts...).ToFunc()
}

// ByOverallRiskScore orders the results by the overall_risk_score field.
func ByOverallRiskScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOverallRiskScore, opts...).ToFunc()
}

// ByArchivedAt orders the results by the archived_at field.
func ByArchivedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldArchivedAt, opts...).ToFunc()
}
