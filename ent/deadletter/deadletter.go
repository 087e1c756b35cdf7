// Code generated by ent, DO NOT EDIT.

package deadletter

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the deadletter type in the database.
	Label = "dead_letter"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldEventID holds the string denoting the event_id field in the database.
	FieldEventID = "event_id"
	// FieldStage holds the string denoting the stage field in the database.
	FieldStage = "stage"
	// FieldReason holds the string denoting the reason field in the database.
	FieldReason = "reason"
	// FieldMessage holds the string denoting the message field in the database.
	FieldMessage = "message"
	// FieldAttemptHistory holds the string denoting the attempt_history field in the database.
	FieldAttemptHistory = "attempt_history"
	// FieldReplayedAt holds the string denoting the replayed_at field in the database.
	FieldReplayedAt = "replayed_at"
	// Table holds the table name of the deadletter in the database.
	Table = "dead_letters"
)

// Columns holds all SQL columns for deadletter fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldEventID,
	FieldStage,
	FieldReason,
	FieldMessage,
	FieldAttemptHistory,
	FieldReplayedAt,
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
	// EventIDValidator is a validator for the "event_id" field. It is called by the builders before save.
	EventIDValidator func(string) error
	// ReasonValidator is a validator for the "reason" field. It is called by the builders before save.
	ReasonValidator func(string) error
)

// Stage defines the type for the "stage" enum field.
type Stage string

// Stage values.
const (
	StageIngest    Stage = "ingest"
	StageEnrich    Stage = "enrich"
	StageResolve   Stage = "resolve"
	StageAggregate Stage = "aggregate"
)

func (s Stage) String() string {
	return string(s)
}

// StageValidator is a validator for the "stage" field enum values. It is called by the builders before save.
func StageValidator(s Stage) error {
	switch s {
	case StageIngest, StageEnrich, StageResolve, StageAggregate:
		return nil
	default:
		return fmt.Errorf("deadletter: invalid enum value for stage field: %q", s)
	}
}

// OrderOption defines the ordering options for the DeadLetter queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByEventID orders the results by the event_id field.
func ByEventID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventID, opts...).ToFunc()
}

// ByStage orders the results by the stage field.
func ByStage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStage, opts...).ToFunc()
}

// ByReason orders the results by the reason field.
func ByReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReason, opts...).ToFunc()
}

// ByMessage orders the results by the message field.
func ByMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessage, opts...).ToFunc()
}

// ByReplayedAt orders the results by the replayed_at field.
func ByReplayedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReplayedAt, opts...).ToFunc()
}
