// Code generated by ent, DO NOT EDIT.

package claim

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"heatwatch.io/heatwatch/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Claim {
	return predicate.Claim(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Claim {
	return predicate.Claim(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Claim {
	return predicate.Claim(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Claim {
	return predicate.Claim(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Claim {
	return predicate.Claim(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Claim {
	return predicate.Claim(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Claim {
	return predicate.Claim(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Claim {
	return predicate.Claim(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Claim {
	return predicate.Claim(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldUpdatedAt, v))
}

// Fingerprint applies equality check predicate on the "fingerprint" field. It's identical to FingerprintEQ.
func Fingerprint(v string) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldFingerprint, v))
}

// FirstSeenAt applies equality check predicate on the "first_seen_at" field. It's identical to FirstSeenAtEQ.
func FirstSeenAt(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldFirstSeenAt, v))
}

// FirstSeenEventID applies equality check predicate on the "first_seen_event_id" field. It's identical to FirstSeenEventIDEQ.
func FirstSeenEventID(v string) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldFirstSeenEventID, v))
}

// LastSeenAt applies equality check predicate on the "last_seen_at" field. It's identical to LastSeenAtEQ.
func LastSeenAt(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldLastSeenAt, v))
}

// OccurrenceCount applies equality check predicate on the "occurrence_count" field. It's identical to OccurrenceCountEQ.
func OccurrenceCount(v int64) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldOccurrenceCount, v))
}

// SpreadVelocity applies equality check predicate on the "spread_velocity" field. It's identical to SpreadVelocityEQ.
func SpreadVelocity(v float64) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldSpreadVelocity, v))
}

// GeographicSpreadScore applies equality check predicate on the "geographic_spread_score" field. It's identical to GeographicSpreadScoreEQ.
func GeographicSpreadScore(v float64) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldGeographicSpreadScore, v))
}

// OverallRiskScore applies equality check predicate on the "overall_risk_score" field. It's identical to OverallRiskScoreEQ.
func OverallRiskScore(v float64) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldOverallRiskScore, v))
}

// ArchivedAt applies equality check predicate on the "archived_at" field. It's identical to ArchivedAtEQ.
func ArchivedAt(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldArchivedAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldLTE(FieldUpdatedAt, v))
}

// FingerprintEQ applies the EQ predicate on the "fingerprint" field.
func FingerprintEQ(v string) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldFingerprint, v))
}

// FingerprintNEQ applies the NEQ predicate on the "fingerprint" field.
func FingerprintNEQ(v string) predicate.Claim {
	return predicate.Claim(sql.FieldNEQ(FieldFingerprint, v))
}

// FingerprintIn applies the In predicate on the "fingerprint" field.
func FingerprintIn(vs ...string) predicate.Claim {
	return predicate.Claim(sql.FieldIn(FieldFingerprint, vs...))
}

// FingerprintNotIn applies the NotIn predicate on the "fingerprint" field.
func FingerprintNotIn(vs ...string) predicate.Claim {
	return predicate.Claim(sql.FieldNotIn(FieldFingerprint, vs...))
}

// FingerprintGT applies the GT predicate on the "fingerprint" field.
func FingerprintGT(v string) predicate.Claim {
	return predicate.Claim(sql.FieldGT(FieldFingerprint, v))
}

// FingerprintGTE applies the GTE predicate on the "fingerprint" field.
func FingerprintGTE(v string) predicate.Claim {
	return predicate.Claim(sql.FieldGTE(FieldFingerprint, v))
}

// FingerprintLT applies the LT predicate on the "fingerprint" field.
func FingerprintLT(v string) predicate.Claim {
	return predicate.Claim(sql.FieldLT(FieldFingerprint, v))
}

// FingerprintLTE applies the LTE predicate on the "fingerprint" field.
func FingerprintLTE(v string) predicate.Claim {
	return predicate.Claim(sql.FieldLTE(FieldFingerprint, v))
}

// FingerprintContains applies the Contains predicate on the "fingerprint" field.
func FingerprintContains(v string) predicate.Claim {
	return predicate.Claim(sql.FieldContains(FieldFingerprint, v))
}

// FingerprintHasPrefix applies the HasPrefix predicate on the "fingerprint" field.
func FingerprintHasPrefix(v string) predicate.Claim {
	return predicate.Claim(sql.FieldHasPrefix(FieldFingerprint, v))
}

// FingerprintHasSuffix applies the HasSuffix predicate on the "fingerprint" field.
func FingerprintHasSuffix(v string) predicate.Claim {
	return predicate.Claim(sql.FieldHasSuffix(FieldFingerprint, v))
}

// FingerprintEqualFold applies the EqualFold predicate on the "fingerprint" field.
func FingerprintEqualFold(v string) predicate.Claim {
	return predicate.Claim(sql.FieldEqualFold(FieldFingerprint, v))
}

// FingerprintContainsFold applies the ContainsFold predicate on the "fingerprint" field.
func FingerprintContainsFold(v string) predicate.Claim {
	return predicate.Claim(sql.FieldContainsFold(FieldFingerprint, v))
}

// FirstSeenAtEQ applies the EQ predicate on the "first_seen_at" field.
func FirstSeenAtEQ(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldFirstSeenAt, v))
}

// FirstSeenAtNEQ applies the NEQ predicate on the "first_seen_at" field.
func FirstSeenAtNEQ(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldNEQ(FieldFirstSeenAt, v))
}

// FirstSeenAtIn applies the In predicate on the "first_seen_at" field.
func FirstSeenAtIn(vs ...time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldIn(FieldFirstSeenAt, vs...))
}

// FirstSeenAtNotIn applies the NotIn predicate on the "first_seen_at" field.
func FirstSeenAtNotIn(vs ...time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldNotIn(FieldFirstSeenAt, vs...))
}

// FirstSeenAtGT applies the GT predicate on the "first_seen_at" field.
func FirstSeenAtGT(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldGT(FieldFirstSeenAt, v))
}

// FirstSeenAtGTE applies the GTE predicate on the "first_seen_at" field.
func FirstSeenAtGTE(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldGTE(FieldFirstSeenAt, v))
}

// FirstSeenAtLT applies the LT predicate on the "first_seen_at" field.
func FirstSeenAtLT(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldLT(FieldFirstSeenAt, v))
}

// FirstSeenAtLTE applies the LTE predicate on the "first_seen_at" field.
func FirstSeenAtLTE(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldLTE(FieldFirstSeenAt, v))
}

// FirstSeenEventIDEQ applies the EQ predicate on the "first_seen_event_id" field.
func FirstSeenEventIDEQ(v string) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldFirstSeenEventID, v))
}

// FirstSeenEventIDNEQ applies the NEQ predicate on the "first_seen_event_id" field.
func FirstSeenEventIDNEQ(v string) predicate.Claim {
	return predicate.Claim(sql.FieldNEQ(FieldFirstSeenEventID, v))
}

// FirstSeenEventIDIn applies the In predicate on the "first_seen_event_id" field.
func FirstSeenEventIDIn(vs ...string) predicate.Claim {
	return predicate.Claim(sql.FieldIn(FieldFirstSeenEventID, vs...))
}

// FirstSeenEventIDNotIn applies the NotIn predicate on the "first_seen_event_id" field.
func FirstSeenEventIDNotIn(vs ...string) predicate.Claim {
	return predicate.Claim(sql.FieldNotIn(FieldFirstSeenEventID, vs...))
}

// FirstSeenEventIDGT applies the GT predicate on the "first_seen_event_id" field.
func FirstSeenEventIDGT(v string) predicate.Claim {
	return predicate.Claim(sql.FieldGT(FieldFirstSeenEventID, v))
}

// FirstSeenEventIDGTE applies the GTE predicate on the "first_seen_event_id" field.
func FirstSeenEventIDGTE(v string) predicate.Claim {
	return predicate.Claim(sql.FieldGTE(FieldFirstSeenEventID, v))
}

// FirstSeenEventIDLT applies the LT predicate on the "first_seen_event_id" field.
func FirstSeenEventIDLT(v string) predicate.Claim {
	return predicate.Claim(sql.FieldLT(FieldFirstSeenEventID, v))
}

// FirstSeenEventIDLTE applies the LTE predicate on the "first_seen_event_id" field.
func FirstSeenEventIDLTE(v string) predicate.Claim {
	return predicate.Claim(sql.FieldLTE(FieldFirstSeenEventID, v))
}

// FirstSeenEventIDContains applies the Contains predicate on the "first_seen_event_id" field.
func FirstSeenEventIDContains(v string) predicate.Claim {
	return predicate.Claim(sql.FieldContains(FieldFirstSeenEventID, v))
}

// FirstSeenEventIDHasPrefix applies the HasPrefix predicate on the "first_seen_event_id" field.
func FirstSeenEventIDHasPrefix(v string) predicate.Claim {
	return predicate.Claim(sql.FieldHasPrefix(FieldFirstSeenEventID, v))
}

// FirstSeenEventIDHasSuffix applies the HasSuffix predicate on the "first_seen_event_id" field.
func FirstSeenEventIDHasSuffix(v string) predicate.Claim {
	return predicate.Claim(sql.FieldHasSuffix(FieldFirstSeenEventID, v))
}

// FirstSeenEventIDEqualFold applies the EqualFold predicate on the "first_seen_event_id" field.
func FirstSeenEventIDEqualFold(v string) predicate.Claim {
	return predicate.Claim(sql.FieldEqualFold(FieldFirstSeenEventID, v))
}

// FirstSeenEventIDContainsFold applies the ContainsFold predicate on the "first_seen_event_id" field.
func FirstSeenEventIDContainsFold(v string) predicate.Claim {
	return predicate.Claim(sql.FieldContainsFold(FieldFirstSeenEventID, v))
}

// LastSeenAtEQ applies the EQ predicate on the "last_seen_at" field.
func LastSeenAtEQ(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldLastSeenAt, v))
}

// LastSeenAtNEQ applies the NEQ predicate on the "last_seen_at" field.
func LastSeenAtNEQ(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldNEQ(FieldLastSeenAt, v))
}

// LastSeenAtIn applies the In predicate on the "last_seen_at" field.
func LastSeenAtIn(vs ...time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldIn(FieldLastSeenAt, vs...))
}

// LastSeenAtNotIn applies the NotIn predicate on the "last_seen_at" field.
func LastSeenAtNotIn(vs ...time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldNotIn(FieldLastSeenAt, vs...))
}

// LastSeenAtGT applies the GT predicate on the "last_seen_at" field.
func LastSeenAtGT(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldGT(FieldLastSeenAt, v))
}

// LastSeenAtGTE applies the GTE predicate on the "last_seen_at" field.
func LastSeenAtGTE(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldGTE(FieldLastSeenAt, v))
}

// LastSeenAtLT applies the LT predicate on the "last_seen_at" field.
func LastSeenAtLT(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldLT(FieldLastSeenAt, v))
}

// LastSeenAtLTE applies the LTE predicate on the "last_seen_at" field.
func LastSeenAtLTE(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldLTE(FieldLastSeenAt, v))
}

// OccurrenceCountEQ applies the EQ predicate on the "occurrence_count" field.
func OccurrenceCountEQ(v int64) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldOccurrenceCount, v))
}

// OccurrenceCountNEQ applies the NEQ predicate on the "occurrence_count" field.
func OccurrenceCountNEQ(v int64) predicate.Claim {
	return predicate.Claim(sql.FieldNEQ(FieldOccurrenceCount, v))
}

// OccurrenceCountIn applies the In predicate on the "occurrence_count" field.
func OccurrenceCountIn(vs ...int64) predicate.Claim {
	return predicate.Claim(sql.FieldIn(FieldOccurrenceCount, vs...))
}

// OccurrenceCountNotIn applies the NotIn predicate on the "occurrence_count" field.
func OccurrenceCountNotIn(vs ...int64) predicate.Claim {
	return predicate.Claim(sql.FieldNotIn(FieldOccurrenceCount, vs...))
}

// OccurrenceCountGT applies the GT predicate on the "occurrence_count" field.
func OccurrenceCountGT(v int64) predicate.Claim {
	return predicate.Claim(sql.FieldGT(FieldOccurrenceCount, v))
}

// OccurrenceCountGTE applies the GTE predicate on the "occurrence_count" field.
func OccurrenceCountGTE(v int64) predicate.Claim {
	return predicate.Claim(sql.FieldGTE(FieldOccurrenceCount, v))
}

// OccurrenceCountLT applies the LT predicate on the "occurrence_count" field.
func OccurrenceCountLT(v int64) predicate.Claim {
	return predicate.Claim(sql.FieldLT(FieldOccurrenceCount, v))
}

// OccurrenceCountLTE applies the LTE predicate on the "occurrence_count" field.
func OccurrenceCountLTE(v int64) predicate.Claim {
	return predicate.Claim(sql.FieldLTE(FieldOccurrenceCount, v))
}

// DistinctLocationsIsNil applies the IsNil predicate on the "distinct_locations" field.
func DistinctLocationsIsNil() predicate.Claim {
	return predicate.Claim(sql.FieldIsNull(FieldDistinctLocations))
}

// DistinctLocationsNotNil applies the NotNil predicate on the "distinct_locations" field.
func DistinctLocationsNotNil() predicate.Claim {
	return predicate.Claim(sql.FieldNotNull(FieldDistinctLocations))
}

// SpreadVelocityEQ applies the EQ predicate on the "spread_velocity" field.
func SpreadVelocityEQ(v float64) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldSpreadVelocity, v))
}

// SpreadVelocityNEQ applies the NEQ predicate on the "spread_velocity" field.
func SpreadVelocityNEQ(v float64) predicate.Claim {
	return predicate.Claim(sql.FieldNEQ(FieldSpreadVelocity, v))
}

// SpreadVelocityIn applies the In predicate on the "spread_velocity" field.
func SpreadVelocityIn(vs ...float64) predicate.Claim {
	return predicate.Claim(sql.FieldIn(FieldSpreadVelocity, vs...))
}

// SpreadVelocityNotIn applies the NotIn predicate on the "spread_velocity" field.
func SpreadVelocityNotIn(vs ...float64) predicate.Claim {
	return predicate.Claim(sql.FieldNotIn(FieldSpreadVelocity, vs...))
}

// SpreadVelocityGT applies the GT predicate on the "spread_velocity" field.
func SpreadVelocityGT(v float64) predicate.Claim {
	return predicate.Claim(sql.FieldGT(FieldSpreadVelocity, v))
}

// SpreadVelocityGTE applies the GTE predicate on the "spread_velocity" field.
func SpreadVelocityGTE(v float64) predicate.Claim {
	return predicate.Claim(sql.FieldGTE(FieldSpreadVelocity, v))
}

// SpreadVelocityLT applies the LT predicate on the "spread_velocity" field.
func SpreadVelocityLT(v float64) predicate.Claim {
	return predicate.Claim(sql.FieldLT(FieldSpreadVelocity, v))
}

// SpreadVelocityLTE applies the LTE predicate on the "spread_velocity" field.
func SpreadVelocityLTE(v float64) predicate.Claim {
	return predicate.Claim(sql.FieldLTE(FieldSpreadVelocity, v))
}

// GeographicSpreadScoreEQ applies the EQ predicate on the "geographic_spread_score" field.
func GeographicSpreadScoreEQ(v float64) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldGeographicSpreadScore, v))
}

// GeographicSpreadScoreNEQ applies the NEQ predicate on the "geographic_spread_score" field.
func GeographicSpreadScoreNEQ(v float64) predicate.Claim {
	return predicate.Claim(sql.FieldNEQ(FieldGeographicSpreadScore, v))
}

// GeographicSpreadScoreIn applies the In predicate on the "geographic_spread_score" field.
func GeographicSpreadScoreIn(vs ...float64) predicate.Claim {
	return predicate.Claim(sql.FieldIn(FieldGeographicSpreadScore, vs...))
}

// GeographicSpreadScoreNotIn applies the NotIn predicate on the "geographic_spread_score" field.
func GeographicSpreadScoreNotIn(vs ...float64) predicate.Claim {
	return predicate.Claim(sql.FieldNotIn(FieldGeographicSpreadScore, vs...))
}

// GeographicSpreadScoreGT applies the GT predicate on the "geographic_spread_score" field.
func GeographicSpreadScoreGT(v float64) predicate.Claim {
	return predicate.Claim(sql.FieldGT(FieldGeographicSpreadScore, v))
}

// GeographicSpreadScoreGTE applies the GTE predicate on the "geographic_spread_score" field.
func GeographicSpreadScoreGTE(v float64) predicate.Claim {
	return predicate.Claim(sql.FieldGTE(FieldGeographicSpreadScore, v))
}

// GeographicSpreadScoreLT applies the LT predicate on the "geographic_spread_score" field.
func GeographicSpreadScoreLT(v float64) predicate.Claim {
	return predicate.Claim(sql.FieldLT(FieldGeographicSpreadScore, v))
}

// GeographicSpreadScoreLTE applies the LTE predicate on the "geographic_spread_score" field.
func GeographicSpreadScoreLTE(v float64) predicate.Claim {
	return predicate.Claim(sql.FieldLTE(FieldGeographicSpreadScore, v))
}

// OverallRiskScoreEQ applies the EQ predicate on the "overall_risk_score" field.
func OverallRiskScoreEQ(v float64) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldOverallRiskScore, v))
}

// OverallRiskScoreNEQ applies the NEQ predicate on the "overall_risk_score" field.
func OverallRiskScoreNEQ(v float64) predicate.Claim {
	return predicate.Claim(sql.FieldNEQ(FieldOverallRiskScore, v))
}

// OverallRiskScoreIn applies the In predicate on the "overall_risk_score" field.
func OverallRiskScoreIn(vs ...float64) predicate.Claim {
	return predicate.Claim(sql.FieldIn(FieldOverallRiskScore, vs...))
}

// OverallRiskScoreNotIn applies the NotIn predicate on the "overall_risk_score" field.
func OverallRiskScoreNotIn(vs ...float64) predicate.Claim {
	return predicate.Claim(sql.FieldNotIn(FieldOverallRiskScore, vs...))
}

// OverallRiskScoreGT applies the GT predicate on the "overall_risk_score" field.
func OverallRiskScoreGT(v float64) predicate.Claim {
	return predicate.Claim(sql.FieldGT(FieldOverallRiskScore, v))
}

// OverallRiskScoreGTE applies the GTE predicate on the "overall_risk_score" field.
func OverallRiskScoreGTE(v float64) predicate.Claim {
	return predicate.Claim(sql.FieldGTE(FieldOverallRiskScore, v))
}

// OverallRiskScoreLT applies the LT predicate on the "overall_risk_score" field.
func OverallRiskScoreLT(v float64) predicate.Claim {
	return predicate.Claim(sql.FieldLT(FieldOverallRiskScore, v))
}

// OverallRiskScoreLTE applies the LTE predicate on the "overall_risk_score" field.
func OverallRiskScoreLTE(v float64) predicate.Claim {
	return predicate.Claim(sql.FieldLTE(FieldOverallRiskScore, v))
}

// ArchivedAtEQ applies the EQ predicate on the "archived_at" field.
func ArchivedAtEQ(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldArchivedAt, v))
}

// ArchivedAtNEQ applies the NEQ predicate on the "archived_at" field.
func ArchivedAtNEQ(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldNEQ(FieldArchivedAt, v))
}

// ArchivedAtIn applies the In predicate on the "archived_at" field.
func ArchivedAtIn(vs ...time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldIn(FieldArchivedAt, vs...))
}

// ArchivedAtNotIn applies the NotIn predicate on the "archived_at" field.
func ArchivedAtNotIn(vs ...time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldNotIn(FieldArchivedAt, vs...))
}

// ArchivedAtGT applies the GT predicate on the "archived_at" field.
func ArchivedAtGT(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldGT(FieldArchivedAt, v))
}

// ArchivedAtGTE applies the GTE predicate on the "archived_at" field.
func ArchivedAtGTE(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldGTE(FieldArchivedAt, v))
}

// ArchivedAtLT applies the LT predicate on the "archived_at" field.
func ArchivedAtLT(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldLT(FieldArchivedAt, v))
}

// ArchivedAtLTE applies the LTE predicate on the "archived_at" field.
func ArchivedAtLTE(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldLTE(FieldArchivedAt, v))
}

// ArchivedAtIsNil applies the IsNil predicate on the "archived_at" field.
func ArchivedAtIsNil() predicate.Claim {
	return predicate.Claim(sql.FieldIsNull(FieldArchivedAt))
}

// ArchivedAtNotNil applies the NotNil predicate on the "archived_at" field.
func ArchivedAtNotNil() predicate.Claim {
	return predicate.Claim(sql.FieldNotNull(FieldArchivedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Claim) predicate.Claim {
	return predicate.Claim(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Claim) predicate.Claim {
	return predicate.Claim(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Claim) predicate.Claim {
	return predicate.Claim(sql.NotPredicates(p))
}
