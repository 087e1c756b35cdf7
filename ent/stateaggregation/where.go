// Code generated by ent, DO NOT EDIT.

package stateaggregation

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"heatwatch.io/heatwatch/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldEQ(FieldUpdatedAt, v))
}

// Region applies equality check predicate on the "region" field. It's identical to RegionEQ.
func Region(v string) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldEQ(FieldRegion, v))
}

// Date applies equality check predicate on the "date" field. It's identical to DateEQ.
func Date(v string) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldEQ(FieldDate, v))
}

// Hour applies equality check predicate on the "hour" field. It's identical to HourEQ.
func Hour(v int) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldEQ(FieldHour, v))
}

// TotalEvents applies equality check predicate on the "total_events" field. It's identical to TotalEventsEQ.
func TotalEvents(v int64) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldEQ(FieldTotalEvents, v))
}

// HighRiskEvents applies equality check predicate on the "high_risk_events" field. It's identical to HighRiskEventsEQ.
func HighRiskEvents(v int64) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldEQ(FieldHighRiskEvents, v))
}

// ValidatedEvents applies equality check predicate on the "validated_events" field. It's identical to ValidatedEventsEQ.
func ValidatedEvents(v int64) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldEQ(FieldValidatedEvents, v))
}

// AvgMisinformationRisk applies equality check predicate on the "avg_misinformation_risk" field. It's identical to AvgMisinformationRiskEQ.
func AvgMisinformationRisk(v float64) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldEQ(FieldAvgMisinformationRisk, v))
}

// MaxMisinformationRisk applies equality check predicate on the "max_misinformation_risk" field. It's identical to MaxMisinformationRiskEQ.
func MaxMisinformationRisk(v float64) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldEQ(FieldMaxMisinformationRisk, v))
}

// HeatIntensity applies equality check predicate on the "heat_intensity" field. It's identical to HeatIntensityEQ.
func HeatIntensity(v float64) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldEQ(FieldHeatIntensity, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldLTE(FieldUpdatedAt, v))
}

// RegionEQ applies the EQ predicate on the "region" field.
func RegionEQ(v string) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldEQ(FieldRegion, v))
}

// RegionNEQ applies the NEQ predicate on the "region" field.
func RegionNEQ(v string) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldNEQ(FieldRegion, v))
}

// RegionIn applies the In predicate on the "region" field.
func RegionIn(vs ...string) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldIn(FieldRegion, vs...))
}

// RegionNotIn applies the NotIn predicate on the "region" field.
func RegionNotIn(vs ...string) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldNotIn(FieldRegion, vs...))
}

// RegionGT applies the GT predicate on the "region" field.
func RegionGT(v string) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldGT(FieldRegion, v))
}

// RegionGTE applies the GTE predicate on the "region" field.
func RegionGTE(v string) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldGTE(FieldRegion, v))
}

// RegionLT applies the LT predicate on the "region" field.
func RegionLT(v string) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldLT(FieldRegion, v))
}

// RegionLTE applies the LTE predicate on the "region" field.
func RegionLTE(v string) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldLTE(FieldRegion, v))
}

// RegionContains applies the Contains predicate on the "region" field.
func RegionContains(v string) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldContains(FieldRegion, v))
}

// RegionHasPrefix applies the HasPrefix predicate on the "region" field.
func RegionHasPrefix(v string) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldHasPrefix(FieldRegion, v))
}

// RegionHasSuffix applies the HasSuffix predicate on the "region" field.
func RegionHasSuffix(v string) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldHasSuffix(FieldRegion, v))
}

// RegionEqualFold applies the EqualFold predicate on the "region" field.
func RegionEqualFold(v string) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldEqualFold(FieldRegion, v))
}

// RegionContainsFold applies the ContainsFold predicate on the "region" field.
func RegionContainsFold(v string) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldContainsFold(FieldRegion, v))
}

// DateEQ applies the EQ predicate on the "date" field.
func DateEQ(v string) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldEQ(FieldDate, v))
}

// DateNEQ applies the NEQ predicate on the "date" field.
func DateNEQ(v string) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldNEQ(FieldDate, v))
}

// DateIn applies the In predicate on the "date" field.
func DateIn(vs ...string) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldIn(FieldDate, vs...))
}

// DateNotIn applies the NotIn predicate on the "date" field.
func DateNotIn(vs ...string) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldNotIn(FieldDate, vs...))
}

// DateGT applies the GT predicate on the "date" field.
func DateGT(v string) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldGT(FieldDate, v))
}

// DateGTE applies the GTE predicate on the "date" field.
func DateGTE(v string) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldGTE(FieldDate, v))
}

// DateLT applies the LT predicate on the "date" field.
func DateLT(v string) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldLT(FieldDate, v))
}

// DateLTE applies the LTE predicate on the "date" field.
func DateLTE(v string) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldLTE(FieldDate, v))
}

// DateContains applies the Contains predicate on the "date" field.
func DateContains(v string) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldContains(FieldDate, v))
}

// DateHasPrefix applies the HasPrefix predicate on the "date" field.
func DateHasPrefix(v string) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldHasPrefix(FieldDate, v))
}

// DateHasSuffix applies the HasSuffix predicate on the "date" field.
func DateHasSuffix(v string) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldHasSuffix(FieldDate, v))
}

// DateEqualFold applies the EqualFold predicate on the "date" field.
func DateEqualFold(v string) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldEqualFold(FieldDate, v))
}

// DateContainsFold applies the ContainsFold predicate on the "date" field.
func DateContainsFold(v string) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldContainsFold(FieldDate, v))
}

// HourEQ applies the EQ predicate on the "hour" field.
func HourEQ(v int) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldEQ(FieldHour, v))
}

// HourNEQ applies the NEQ predicate on the "hour" field.
func HourNEQ(v int) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldNEQ(FieldHour, v))
}

// HourIn applies the In predicate on the "hour" field.
func HourIn(vs ...int) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldIn(FieldHour, vs...))
}

// HourNotIn applies the NotIn predicate on the "hour" field.
func HourNotIn(vs ...int) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldNotIn(FieldHour, vs...))
}

// HourGT applies the GT predicate on the "hour" field.
func HourGT(v int) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldGT(FieldHour, v))
}

// HourGTE applies the GTE predicate on the "hour" field.
func HourGTE(v int) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldGTE(FieldHour, v))
}

// HourLT applies the LT predicate on the "hour" field.
func HourLT(v int) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldLT(FieldHour, v))
}

// HourLTE applies the LTE predicate on the "hour" field.
func HourLTE(v int) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldLTE(FieldHour, v))
}

// TotalEventsEQ applies the EQ predicate on the "total_events" field.
func TotalEventsEQ(v int64) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldEQ(FieldTotalEvents, v))
}

// TotalEventsNEQ applies the NEQ predicate on the "total_events" field.
func TotalEventsNEQ(v int64) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldNEQ(FieldTotalEvents, v))
}

// TotalEventsIn applies the In predicate on the "total_events" field.
func TotalEventsIn(vs ...int64) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldIn(FieldTotalEvents, vs...))
}

// TotalEventsNotIn applies the NotIn predicate on the "total_events" field.
func TotalEventsNotIn(vs ...int64) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldNotIn(FieldTotalEvents, vs...))
}

// TotalEventsGT applies the GT predicate on the "total_events" field.
func TotalEventsGT(v int64) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldGT(FieldTotalEvents, v))
}

// TotalEventsGTE applies the GTE predicate on the "total_events" field.
func TotalEventsGTE(v int64) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldGTE(FieldTotalEvents, v))
}

// TotalEventsLT applies the LT predicate on the "total_events" field.
func TotalEventsLT(v int64) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldLT(FieldTotalEvents, v))
}

// TotalEventsLTE applies the LTE predicate on the "total_events" field.
func TotalEventsLTE(v int64) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldLTE(FieldTotalEvents, v))
}

// HighRiskEventsEQ applies the EQ predicate on the "high_risk_events" field.
func HighRiskEventsEQ(v int64) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldEQ(FieldHighRiskEvents, v))
}

// HighRiskEventsNEQ applies the NEQ predicate on the "high_risk_events" field.
func HighRiskEventsNEQ(v int64) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldNEQ(FieldHighRiskEvents, v))
}

// HighRiskEventsIn applies the In predicate on the "high_risk_events" field.
func HighRiskEventsIn(vs ...int64) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldIn(FieldHighRiskEvents, vs...))
}

// HighRiskEventsNotIn applies the NotIn predicate on the "high_risk_events" field.
func HighRiskEventsNotIn(vs ...int64) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldNotIn(FieldHighRiskEvents, vs...))
}

// HighRiskEventsGT applies the GT predicate on the "high_risk_events" field.
func HighRiskEventsGT(v int64) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldGT(FieldHighRiskEvents, v))
}

// HighRiskEventsGTE applies the GTE predicate on the "high_risk_events" field.
func HighRiskEventsGTE(v int64) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldGTE(FieldHighRiskEvents, v))
}

// HighRiskEventsLT applies the LT predicate on the "high_risk_events" field.
func HighRiskEventsLT(v int64) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldLT(FieldHighRiskEvents, v))
}

// HighRiskEventsLTE applies the LTE predicate on the "high_risk_events" field.
func HighRiskEventsLTE(v int64) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldLTE(FieldHighRiskEvents, v))
}

// ValidatedEventsEQ applies the EQ predicate on the "validated_events" field.
func ValidatedEventsEQ(v int64) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldEQ(FieldValidatedEvents, v))
}

// ValidatedEventsNEQ applies the NEQ predicate on the "validated_events" field.
func ValidatedEventsNEQ(v int64) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldNEQ(FieldValidatedEvents, v))
}

// ValidatedEventsIn applies the In predicate on the "validated_events" field.
func ValidatedEventsIn(vs ...int64) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldIn(FieldValidatedEvents, vs...))
}

// ValidatedEventsNotIn applies the NotIn predicate on the "validated_events" field.
func ValidatedEventsNotIn(vs ...int64) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldNotIn(FieldValidatedEvents, vs...))
}

// ValidatedEventsGT applies the GT predicate on the "validated_events" field.
func ValidatedEventsGT(v int64) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldGT(FieldValidatedEvents, v))
}

// ValidatedEventsGTE applies the GTE predicate on the "validated_events" field.
func ValidatedEventsGTE(v int64) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldGTE(FieldValidatedEvents, v))
}

// ValidatedEventsLT applies the LT predicate on the "validated_events" field.
func ValidatedEventsLT(v int64) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldLT(FieldValidatedEvents, v))
}

// ValidatedEventsLTE applies the LTE predicate on the "validated_events" field.
func ValidatedEventsLTE(v int64) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldLTE(FieldValidatedEvents, v))
}

// AvgMisinformationRiskEQ applies the EQ predicate on the "avg_misinformation_risk" field.
func AvgMisinformationRiskEQ(v float64) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldEQ(FieldAvgMisinformationRisk, v))
}

// AvgMisinformationRiskNEQ applies the NEQ predicate on the "avg_misinformation_risk" field.
func AvgMisinformationRiskNEQ(v float64) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldNEQ(FieldAvgMisinformationRisk, v))
}

// AvgMisinformationRiskIn applies the In predicate on the "avg_misinformation_risk" field.
func AvgMisinformationRiskIn(vs ...float64) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldIn(FieldAvgMisinformationRisk, vs...))
}

// AvgMisinformationRiskNotIn applies the NotIn predicate on the "avg_misinformation_risk" field.
func AvgMisinformationRiskNotIn(vs ...float64) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldNotIn(FieldAvgMisinformationRisk, vs...))
}

// AvgMisinformationRiskGT applies the GT predicate on the "avg_misinformation_risk" field.
func AvgMisinformationRiskGT(v float64) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldGT(FieldAvgMisinformationRisk, v))
}

// AvgMisinformationRiskGTE applies the GTE predicate on the "avg_misinformation_risk" field.
func AvgMisinformationRiskGTE(v float64) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldGTE(FieldAvgMisinformationRisk, v))
}

// AvgMisinformationRiskLT applies the LT predicate on the "avg_misinformation_risk" field.
func AvgMisinformationRiskLT(v float64) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldLT(FieldAvgMisinformationRisk, v))
}

// AvgMisinformationRiskLTE applies the LTE predicate on the "avg_misinformation_risk" field.
func AvgMisinformationRiskLTE(v float64) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldLTE(FieldAvgMisinformationRisk, v))
}

// MaxMisinformationRiskEQ applies the EQ predicate on the "max_misinformation_risk" field.
func MaxMisinformationRiskEQ(v float64) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldEQ(FieldMaxMisinformationRisk, v))
}

// MaxMisinformationRiskNEQ applies the NEQ predicate on the "max_misinformation_risk" field.
func MaxMisinformationRiskNEQ(v float64) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldNEQ(FieldMaxMisinformationRisk, v))
}

// MaxMisinformationRiskIn applies the In predicate on the "max_misinformation_risk" field.
func MaxMisinformationRiskIn(vs ...float64) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldIn(FieldMaxMisinformationRisk, vs...))
}

// MaxMisinformationRiskNotIn applies the NotIn predicate on the "max_misinformation_risk" field.
func MaxMisinformationRiskNotIn(vs ...float64) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldNotIn(FieldMaxMisinformationRisk, vs...))
}

// MaxMisinformationRiskGT applies the GT predicate on the "max_misinformation_risk" field.
func MaxMisinformationRiskGT(v float64) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldGT(FieldMaxMisinformationRisk, v))
}

// MaxMisinformationRiskGTE applies the GTE predicate on the "max_misinformation_risk" field.
func MaxMisinformationRiskGTE(v float64) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldGTE(FieldMaxMisinformationRisk, v))
}

// MaxMisinformationRiskLT applies the LT predicate on the "max_misinformation_risk" field.
func MaxMisinformationRiskLT(v float64) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldLT(FieldMaxMisinformationRisk, v))
}

// MaxMisinformationRiskLTE applies the LTE predicate on the "max_misinformation_risk" field.
func MaxMisinformationRiskLTE(v float64) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldLTE(FieldMaxMisinformationRisk, v))
}

// HeatIntensityEQ applies the EQ predicate on the "heat_intensity" field.
func HeatIntensityEQ(v float64) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldEQ(FieldHeatIntensity, v))
}

// HeatIntensityNEQ applies the NEQ predicate on the "heat_intensity" field.
func HeatIntensityNEQ(v float64) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldNEQ(FieldHeatIntensity, v))
}

// HeatIntensityIn applies the In predicate on the "heat_intensity" field.
func HeatIntensityIn(vs ...float64) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldIn(FieldHeatIntensity, vs...))
}

// HeatIntensityNotIn applies the NotIn predicate on the "heat_intensity" field.
func HeatIntensityNotIn(vs ...float64) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldNotIn(FieldHeatIntensity, vs...))
}

// HeatIntensityGT applies the GT predicate on the "heat_intensity" field.
func HeatIntensityGT(v float64) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldGT(FieldHeatIntensity, v))
}

// HeatIntensityGTE applies the GTE predicate on the "heat_intensity" field.
func HeatIntensityGTE(v float64) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldGTE(FieldHeatIntensity, v))
}

// HeatIntensityLT applies the LT predicate on the "heat_intensity" field.
func HeatIntensityLT(v float64) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldLT(FieldHeatIntensity, v))
}

// HeatIntensityLTE applies the LTE predicate on the "heat_intensity" field.
func HeatIntensityLTE(v float64) predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldLTE(FieldHeatIntensity, v))
}

// CategoryBreakdownIsNil applies the IsNil predicate on the "category_breakdown" field.
func CategoryBreakdownIsNil() predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldIsNull(FieldCategoryBreakdown))
}

// CategoryBreakdownNotNil applies the NotNil predicate on the "category_breakdown" field.
func CategoryBreakdownNotNil() predicate.StateAggregation {
	return predicate.StateAggregation(sql.FieldNotNull(FieldCategoryBreakdown))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StateAggregation) predicate.StateAggregation {
	return predicate.StateAggregation(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StateAggregation) predicate.StateAggregation {
	return predicate.StateAggregation(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StateAggregation) predicate.StateAggregation {
	return predicate.StateAggregation(sql.NotPredicates(p))
}
