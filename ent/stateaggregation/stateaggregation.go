// Code generated by ent, DO NOT EDIT.

package stateaggregation

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the stateaggregation type in the database.
	Label = "state_aggregation"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldRegion holds the string denoting the region field in the database.
	FieldRegion = "region"
	// FieldDate holds the string denoting the date field in the database.
	FieldDate = "date"
	// FieldHour holds the string denoting the hour field in the database.
	FieldHour = "hour"
	// FieldTotalEvents holds the string denoting the total_events field in the database.
	FieldTotalEvents = "total_events"
	// FieldHighRiskEvents holds the string denoting the high_risk_events field in the database.
	FieldHighRiskEvents = "high_risk_events"
	// FieldValidatedEvents holds the string denoting the validated_events field in the database.
	FieldValidatedEvents = "validated_events"
	// FieldAvgMisinformationRisk holds the string denoting the avg_misinformation_risk field in the database.
	FieldAvgMisinformationRisk = "avg_misinformation_risk"
	// FieldMaxMisinformationRisk holds the string denoting the max_misinformation_risk field in the database.
	FieldMaxMisinformationRisk = "max_misinformation_risk"
	// FieldHeatIntensity holds the string denoting the heat_intensity field in the database.
	FieldHeatIntensity = "heat_intensity"
	// FieldCategoryBreakdown holds the string denoting the category_breakdown field in the database.
	FieldCategoryBreakdown = "category_breakdown"
	// Table holds the table name of the stateaggregation in the database.
	Table = "state_aggregations"
)

// Columns holds all SQL columns for stateaggregation fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldRegion,
	FieldDate,
	FieldHour,
	FieldTotalEvents,
	FieldHighRiskEvents,
	FieldValidatedEvents,
	FieldAvgMisinformationRisk,
	FieldMaxMisinformationRisk,
	FieldHeatIntensity,
	FieldCategoryBreakdown,
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
	// RegionValidator is a validator for the "region" field. It is called by the builders before save.
	RegionValidator func(string) error
	// DateValidator is a validator for the "date" field. It is called by the builders before save.
	DateValidator func(string) error
	// HourValidator is a validator for the "hour" field. It is called by the builders before save.
	HourValidator func(int) error
	// DefaultTotalEvents holds the default value on creation for the "total_events" field.
	DefaultTotalEvents int64
	// DefaultHighRiskEvents holds the default value on creation for the "high_risk_events" field.
	DefaultHighRiskEvents int64
	// DefaultValidatedEvents holds the default value on creation for the "validated_events" field.
	DefaultValidatedEvents int64
	// DefaultAvgMisinformationRisk holds the default value on creation for the "avg_misinformation_risk" field.
	DefaultAvgMisinformationRisk float64
	// DefaultMaxMisinformationRisk holds the default value on creation for the "max_misinformation_risk" field.
	DefaultMaxMisinformationRisk float64
	// DefaultHeatIntensity holds the default value on creation for the "heat_intensity" field.
	DefaultHeatIntensity float64
)

// OrderOption defines the ordering options for the StateAggregation queries.
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

// ByRegion orders the results by the region field.
func ByRegion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRegion, opts...).ToFunc()
}

// ByDate orders the results by the date field.
func ByDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDate, opts...).ToFunc()
}

// ByHour orders the results by the hour field.
func ByHour(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHour, opts...).ToFunc()
}

// ByTotalEvents orders the results by the total_events field.
func ByTotalEvents(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalEvents, opts...).ToFunc()
}

// ByHighRiskEvents orders the results by the high_risk_events field.
func ByHighRiskEvents(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHighRiskEvents, opts...).ToFunc()
}

// ByValidatedEvents orders the results by the validated_events field.
func ByValidatedEvents(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValidatedEvents, opts...).ToFunc()
}

// ByAvgMisinformationRisk orders the results by the avg_misinformation_risk field.
func ByAvgMisinformationRisk(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAvgMisinformationRisk, opts...).ToFunc()
}

// ByMaxMisinformationRisk orders the results by the max_misinformation_risk field.
func ByMaxMisinformationRisk(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxMisinformationRisk, opts...).ToFunc()
}

// ByHeatIntensity orders the results by the heat_intensity field.
func ByHeatIntensity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHeatIntensity, opts...).ToFunc()
}
