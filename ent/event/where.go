// Code generated by ent, DO NOT EDIT.

package event

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"heatwatch.io/heatwatch/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldUpdatedAt, v))
}

// SourceID applies equality check predicate on the "source_id" field. It's identical to SourceIDEQ.
func SourceID(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldSourceID, v))
}

// RawContent applies equality check predicate on the "raw_content" field. It's identical to RawContentEQ.
func RawContent(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldRawContent, v))
}

// NormalizedContent applies equality check predicate on the "normalized_content" field. It's identical to NormalizedContentEQ.
func NormalizedContent(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldNormalizedContent, v))
}

// RawHash applies equality check predicate on the "raw_hash" field. It's identical to RawHashEQ.
func RawHash(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldRawHash, v))
}

// URL applies equality check predicate on the "url" field. It's identical to URLEQ.
func URL(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldURL, v))
}

// ObservedAt applies equality check predicate on the "observed_at" field. It's identical to ObservedAtEQ.
func ObservedAt(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldObservedAt, v))
}

// IngestedAt applies equality check predicate on the "ingested_at" field. It's identical to IngestedAtEQ.
func IngestedAt(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldIngestedAt, v))
}

// FusedRisk applies equality check predicate on the "fused_risk" field. It's identical to FusedRiskEQ.
func FusedRisk(v float64) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldFusedRisk, v))
}

// ClaimID applies equality check predicate on the "claim_id" field. It's identical to ClaimIDEQ.
func ClaimID(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldClaimID, v))
}

// FailureReason applies equality check predicate on the "failure_reason" field. It's identical to FailureReasonEQ.
func FailureReason(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldFailureReason, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldUpdatedAt, v))
}

// SourceIDEQ applies the EQ predicate on the "source_id" field.
func SourceIDEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldSourceID, v))
}

// SourceIDNEQ applies the NEQ predicate on the "source_id" field.
func SourceIDNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldSourceID, v))
}

// SourceIDIn applies the In predicate on the "source_id" field.
func SourceIDIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldSourceID, vs...))
}

// SourceIDNotIn applies the NotIn predicate on the "source_id" field.
func SourceIDNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldSourceID, vs...))
}

// SourceIDGT applies the GT predicate on the "source_id" field.
func SourceIDGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldSourceID, v))
}

// SourceIDGTE applies the GTE predicate on the "source_id" field.
func SourceIDGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldSourceID, v))
}

// SourceIDLT applies the LT predicate on the "source_id" field.
func SourceIDLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldSourceID, v))
}

// SourceIDLTE applies the LTE predicate on the "source_id" field.
func SourceIDLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldSourceID, v))
}

// SourceIDContains applies the Contains predicate on the "source_id" field.
func SourceIDContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldSourceID, v))
}

// SourceIDHasPrefix applies the HasPrefix predicate on the "source_id" field.
func SourceIDHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldSourceID, v))
}

// SourceIDHasSuffix applies the HasSuffix predicate on the "source_id" field.
func SourceIDHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldSourceID, v))
}

// SourceIDEqualFold applies the EqualFold predicate on the "source_id" field.
func SourceIDEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldSourceID, v))
}

// SourceIDContainsFold applies the ContainsFold predicate on the "source_id" field.
func SourceIDContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldSourceID, v))
}

// SourceTypeEQ applies the EQ predicate on the "source_type" field.
func SourceTypeEQ(v SourceType) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldSourceType, v))
}

// SourceTypeNEQ applies the NEQ predicate on the "source_type" field.
func SourceTypeNEQ(v SourceType) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldSourceType, v))
}

// SourceTypeIn applies the In predicate on the "source_type" field.
func SourceTypeIn(vs ...SourceType) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldSourceType, vs...))
}

// SourceTypeNotIn applies the NotIn predicate on the "source_type" field.
func SourceTypeNotIn(vs ...SourceType) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldSourceType, vs...))
}

// RawContentEQ applies the EQ predicate on the "raw_content" field.
func RawContentEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldRawContent, v))
}

// RawContentNEQ applies the NEQ predicate on the "raw_content" field.
func RawContentNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldRawContent, v))
}

// RawContentIn applies the In predicate on the "raw_content" field.
func RawContentIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldRawContent, vs...))
}

// RawContentNotIn applies the NotIn predicate on the "raw_content" field.
func RawContentNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldRawContent, vs...))
}

// RawContentGT applies the GT predicate on the "raw_content" field.
func RawContentGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldRawContent, v))
}

// RawContentGTE applies the GTE predicate on the "raw_content" field.
func RawContentGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldRawContent, v))
}

// RawContentLT applies the LT predicate on the "raw_content" field.
func RawContentLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldRawContent, v))
}

// RawContentLTE applies the LTE predicate on the "raw_content" field.
func RawContentLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldRawContent, v))
}

// RawContentContains applies the Contains predicate on the "raw_content" field.
func RawContentContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldRawContent, v))
}

// RawContentHasPrefix applies the HasPrefix predicate on the "raw_content" field.
func RawContentHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldRawContent, v))
}

// RawContentHasSuffix applies the HasSuffix predicate on the "raw_content" field.
func RawContentHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldRawContent, v))
}

// RawContentEqualFold applies the EqualFold predicate on the "raw_content" field.
func RawContentEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldRawContent, v))
}

// RawContentContainsFold applies the ContainsFold predicate on the "raw_content" field.
func RawContentContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldRawContent, v))
}

// NormalizedContentEQ applies the EQ predicate on the "normalized_content" field.
func NormalizedContentEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldNormalizedContent, v))
}

// NormalizedContentNEQ applies the NEQ predicate on the "normalized_content" field.
func NormalizedContentNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldNormalizedContent, v))
}

// NormalizedContentIn applies the In predicate on the "normalized_content" field.
func NormalizedContentIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldNormalizedContent, vs...))
}

// NormalizedContentNotIn applies the NotIn predicate on the "normalized_content" field.
func NormalizedContentNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldNormalizedContent, vs...))
}

// NormalizedContentGT applies the GT predicate on the "normalized_content" field.
func NormalizedContentGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldNormalizedContent, v))
}

// NormalizedContentGTE applies the GTE predicate on the "normalized_content" field.
func NormalizedContentGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldNormalizedContent, v))
}

// NormalizedContentLT applies the LT predicate on the "normalized_content" field.
func NormalizedContentLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldNormalizedContent, v))
}

// NormalizedContentLTE applies the LTE predicate on the "normalized_content" field.
func NormalizedContentLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldNormalizedContent, v))
}

// NormalizedContentContains applies the Contains predicate on the "normalized_content" field.
func NormalizedContentContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldNormalizedContent, v))
}

// NormalizedContentHasPrefix applies the HasPrefix predicate on the "normalized_content" field.
func NormalizedContentHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldNormalizedContent, v))
}

// NormalizedContentHasSuffix applies the HasSuffix predicate on the "normalized_content" field.
func NormalizedContentHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldNormalizedContent, v))
}

// NormalizedContentEqualFold applies the EqualFold predicate on the "normalized_content" field.
func NormalizedContentEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldNormalizedContent, v))
}

// NormalizedContentContainsFold applies the ContainsFold predicate on the "normalized_content" field.
func NormalizedContentContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldNormalizedContent, v))
}

// RawHashEQ applies the EQ predicate on the "raw_hash" field.
func RawHashEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldRawHash, v))
}

// RawHashNEQ applies the NEQ predicate on the "raw_hash" field.
func RawHashNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldRawHash, v))
}

// RawHashIn applies the In predicate on the "raw_hash" field.
func RawHashIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldRawHash, vs...))
}

// RawHashNotIn applies the NotIn predicate on the "raw_hash" field.
func RawHashNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldRawHash, vs...))
}

// RawHashGT applies the GT predicate on the "raw_hash" field.
func RawHashGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldRawHash, v))
}

// RawHashGTE applies the GTE predicate on the "raw_hash" field.
func RawHashGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldRawHash, v))
}

// RawHashLT applies the LT predicate on the "raw_hash" field.
func RawHashLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldRawHash, v))
}

// RawHashLTE applies the LTE predicate on the "raw_hash" field.
func RawHashLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldRawHash, v))
}

// RawHashContains applies the Contains predicate on the "raw_hash" field.
func RawHashContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldRawHash, v))
}

// RawHashHasPrefix applies the HasPrefix predicate on the "raw_hash" field.
func RawHashHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldRawHash, v))
}

// RawHashHasSuffix applies the HasSuffix predicate on the "raw_hash" field.
func RawHashHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldRawHash, v))
}

// RawHashEqualFold applies the EqualFold predicate on the "raw_hash" field.
func RawHashEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldRawHash, v))
}

// RawHashContainsFold applies the ContainsFold predicate on the "raw_hash" field.
func RawHashContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldRawHash, v))
}

// URLEQ applies the EQ predicate on the "url" field.
func URLEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldURL, v))
}

// URLNEQ applies the NEQ predicate on the "url" field.
func URLNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldURL, v))
}

// URLIn applies the In predicate on the "url" field.
func URLIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldURL, vs...))
}

// URLNotIn applies the NotIn predicate on the "url" field.
func URLNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldURL, vs...))
}

// URLGT applies the GT predicate on the "url" field.
func URLGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldURL, v))
}

// URLGTE applies the GTE predicate on the "url" field.
func URLGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldURL, v))
}

// URLLT applies the LT predicate on the "url" field.
func URLLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldURL, v))
}

// URLLTE applies the LTE predicate on the "url" field.
func URLLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldURL, v))
}

// URLContains applies the Contains predicate on the "url" field.
func URLContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldURL, v))
}

// URLHasPrefix applies the HasPrefix predicate on the "url" field.
func URLHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldURL, v))
}

// URLHasSuffix applies the HasSuffix predicate on the "url" field.
func URLHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldURL, v))
}

// URLIsNil applies the IsNil predicate on the "url" field.
func URLIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldURL))
}

// URLNotNil applies the NotNil predicate on the "url" field.
func URLNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldURL))
}

// URLEqualFold applies the EqualFold predicate on the "url" field.
func URLEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldURL, v))
}

// URLContainsFold applies the ContainsFold predicate on the "url" field.
func URLContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldURL, v))
}

// ObservedAtEQ applies the EQ predicate on the "observed_at" field.
func ObservedAtEQ(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldObservedAt, v))
}

// ObservedAtNEQ applies the NEQ predicate on the "observed_at" field.
func ObservedAtNEQ(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldObservedAt, v))
}

// ObservedAtIn applies the In predicate on the "observed_at" field.
func ObservedAtIn(vs ...time.Time) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldObservedAt, vs...))
}

// ObservedAtNotIn applies the NotIn predicate on the "observed_at" field.
func ObservedAtNotIn(vs ...time.Time) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldObservedAt, vs...))
}

// ObservedAtGT applies the GT predicate on the "observed_at" field.
func ObservedAtGT(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldObservedAt, v))
}

// ObservedAtGTE applies the GTE predicate on the "observed_at" field.
func ObservedAtGTE(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldObservedAt, v))
}

// ObservedAtLT applies the LT predicate on the "observed_at" field.
func ObservedAtLT(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldObservedAt, v))
}

// ObservedAtLTE applies the LTE predicate on the "observed_at" field.
func ObservedAtLTE(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldObservedAt, v))
}

// IngestedAtEQ applies the EQ predicate on the "ingested_at" field.
func IngestedAtEQ(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldIngestedAt, v))
}

// IngestedAtNEQ applies the NEQ predicate on the "ingested_at" field.
func IngestedAtNEQ(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldIngestedAt, v))
}

// IngestedAtIn applies the In predicate on the "ingested_at" field.
func IngestedAtIn(vs ...time.Time) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldIngestedAt, vs...))
}

// IngestedAtNotIn applies the NotIn predicate on the "ingested_at" field.
func IngestedAtNotIn(vs ...time.Time) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldIngestedAt, vs...))
}

// IngestedAtGT applies the GT predicate on the "ingested_at" field.
func IngestedAtGT(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldIngestedAt, v))
}

// IngestedAtGTE applies the GTE predicate on the "ingested_at" field.
func IngestedAtGTE(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldIngestedAt, v))
}

// IngestedAtLT applies the LT predicate on the "ingested_at" field.
func IngestedAtLT(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldIngestedAt, v))
}

// IngestedAtLTE applies the LTE predicate on the "ingested_at" field.
func IngestedAtLTE(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldIngestedAt, v))
}

// LocationHintIsNil applies the IsNil predicate on the "location_hint" field.
func LocationHintIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldLocationHint))
}

// LocationHintNotNil applies the NotNil predicate on the "location_hint" field.
func LocationHintNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldLocationHint))
}

// NlpResultIsNil applies the IsNil predicate on the "nlp_result" field.
func NlpResultIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldNlpResult))
}

// NlpResultNotNil applies the NotNil predicate on the "nlp_result" field.
func NlpResultNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldNlpResult))
}

// SatelliteResultIsNil applies the IsNil predicate on the "satellite_result" field.
func SatelliteResultIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldSatelliteResult))
}

// SatelliteResultNotNil applies the NotNil predicate on the "satellite_result" field.
func SatelliteResultNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldSatelliteResult))
}

// FusedRiskEQ applies the EQ predicate on the "fused_risk" field.
func FusedRiskEQ(v float64) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldFusedRisk, v))
}

// FusedRiskNEQ applies the NEQ predicate on the "fused_risk" field.
func FusedRiskNEQ(v float64) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldFusedRisk, v))
}

// FusedRiskIn applies the In predicate on the "fused_risk" field.
func FusedRiskIn(vs ...float64) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldFusedRisk, vs...))
}

// FusedRiskNotIn applies the NotIn predicate on the "fused_risk" field.
func FusedRiskNotIn(vs ...float64) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldFusedRisk, vs...))
}

// FusedRiskGT applies the GT predicate on the "fused_risk" field.
func FusedRiskGT(v float64) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldFusedRisk, v))
}

// FusedRiskGTE applies the GTE predicate on the "fused_risk" field.
func FusedRiskGTE(v float64) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldFusedRisk, v))
}

// FusedRiskLT applies the LT predicate on the "fused_risk" field.
func FusedRiskLT(v float64) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldFusedRisk, v))
}

// FusedRiskLTE applies the LTE predicate on the "fused_risk" field.
func FusedRiskLTE(v float64) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldFusedRisk, v))
}

// ClaimIDEQ applies the EQ predicate on the "claim_id" field.
func ClaimIDEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldClaimID, v))
}

// ClaimIDNEQ applies the NEQ predicate on the "claim_id" field.
func ClaimIDNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldClaimID, v))
}

// ClaimIDIn applies the In predicate on the "claim_id" field.
func ClaimIDIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldClaimID, vs...))
}

// ClaimIDNotIn applies the NotIn predicate on the "claim_id" field.
func ClaimIDNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldClaimID, vs...))
}

// ClaimIDGT applies the GT predicate on the "claim_id" field.
func ClaimIDGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldClaimID, v))
}

// ClaimIDGTE applies the GTE predicate on the "claim_id" field.
func ClaimIDGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldClaimID, v))
}

// ClaimIDLT applies the LT predicate on the "claim_id" field.
func ClaimIDLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldClaimID, v))
}

// ClaimIDLTE applies the LTE predicate on the "claim_id" field.
func ClaimIDLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldClaimID, v))
}

// ClaimIDContains applies the Contains predicate on the "claim_id" field.
func ClaimIDContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldClaimID, v))
}

// ClaimIDHasPrefix applies the HasPrefix predicate on the "claim_id" field.
func ClaimIDHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldClaimID, v))
}

// ClaimIDHasSuffix applies the HasSuffix predicate on the "claim_id" field.
func ClaimIDHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldClaimID, v))
}

// ClaimIDIsNil applies the IsNil predicate on the "claim_id" field.
func ClaimIDIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldClaimID))
}

// ClaimIDNotNil applies the NotNil predicate on the "claim_id" field.
func ClaimIDNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldClaimID))
}

// ClaimIDEqualFold applies the EqualFold predicate on the "claim_id" field.
func ClaimIDEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldClaimID, v))
}

// ClaimIDContainsFold applies the ContainsFold predicate on the "claim_id" field.
func ClaimIDContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldClaimID, v))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v State) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v State) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...State) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...State) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldState, vs...))
}

// AttemptCountsIsNil applies the IsNil predicate on the "attempt_counts" field.
func AttemptCountsIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldAttemptCounts))
}

// AttemptCountsNotNil applies the NotNil predicate on the "attempt_counts" field.
func AttemptCountsNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldAttemptCounts))
}

// FailureReasonEQ applies the EQ predicate on the "failure_reason" field.
func FailureReasonEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldFailureReason, v))
}

// FailureReasonNEQ applies the NEQ predicate on the "failure_reason" field.
func FailureReasonNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldFailureReason, v))
}

// FailureReasonIn applies the In predicate on the "failure_reason" field.
func FailureReasonIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldFailureReason, vs...))
}

// FailureReasonNotIn applies the NotIn predicate on the "failure_reason" field.
func FailureReasonNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldFailureReason, vs...))
}

// FailureReasonGT applies the GT predicate on the "failure_reason" field.
func FailureReasonGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldFailureReason, v))
}

// FailureReasonGTE applies the GTE predicate on the "failure_reason" field.
func FailureReasonGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldFailureReason, v))
}

// FailureReasonLT applies the LT predicate on the "failure_reason" field.
func FailureReasonLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldFailureReason, v))
}

// FailureReasonLTE applies the LTE predicate on the "failure_reason" field.
func FailureReasonLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldFailureReason, v))
}

// FailureReasonContains applies the Contains predicate on the "failure_reason" field.
func FailureReasonContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldFailureReason, v))
}

// FailureReasonHasPrefix applies the HasPrefix predicate on the "failure_reason" field.
func FailureReasonHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldFailureReason, v))
}

// FailureReasonHasSuffix applies the HasSuffix predicate on the "failure_reason" field.
func FailureReasonHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldFailureReason, v))
}

// FailureReasonIsNil applies the IsNil predicate on the "failure_reason" field.
func FailureReasonIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldFailureReason))
}

// FailureReasonNotNil applies the NotNil predicate on the "failure_reason" field.
func FailureReasonNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldFailureReason))
}

// FailureReasonEqualFold applies the EqualFold predicate on the "failure_reason" field.
func FailureReasonEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldFailureReason, v))
}

// FailureReasonContainsFold applies the ContainsFold predicate on the "failure_reason" field.
func FailureReasonContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldFailureReason, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Event) predicate.Event {
	return predicate.Event(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Event) predicate.Event {
	return predicate.Event(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Event) predicate.Event {
	return predicate.Event(sql.NotPredicates(p))
}
