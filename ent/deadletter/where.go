// Code generated by ent, DO NOT EDIT.

package deadletter

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"heatwatch.io/heatwatch/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldEQ(FieldCreatedAt, v))
}

// EventID applies equality check predicate on the "event_id" field. It's identical to EventIDEQ.
func EventID(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldEQ(FieldEventID, v))
}

// Reason applies equality check predicate on the "reason" field. It's identical to ReasonEQ.
func Reason(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldEQ(FieldReason, v))
}

// Message applies equality check predicate on the "message" field. It's identical to MessageEQ.
func Message(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldEQ(FieldMessage, v))
}

// ReplayedAt applies equality check predicate on the "replayed_at" field. It's identical to ReplayedAtEQ.
func ReplayedAt(v time.Time) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldEQ(FieldReplayedAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldLTE(FieldCreatedAt, v))
}

// EventIDEQ applies the EQ predicate on the "event_id" field.
func EventIDEQ(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldEQ(FieldEventID, v))
}

// EventIDNEQ applies the NEQ predicate on the "event_id" field.
func EventIDNEQ(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldNEQ(FieldEventID, v))
}

// EventIDIn applies the In predicate on the "event_id" field.
func EventIDIn(vs ...string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldIn(FieldEventID, vs...))
}

// EventIDNotIn applies the NotIn predicate on the "event_id" field.
func EventIDNotIn(vs ...string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldNotIn(FieldEventID, vs...))
}

// EventIDGT applies the GT predicate on the "event_id" field.
func EventIDGT(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldGT(FieldEventID, v))
}

// EventIDGTE applies the GTE predicate on the "event_id" field.
func EventIDGTE(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldGTE(FieldEventID, v))
}

// EventIDLT applies the LT predicate on the "event_id" field.
func EventIDLT(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldLT(FieldEventID, v))
}

// EventIDLTE applies the LTE predicate on the "event_id" field.
func EventIDLTE(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldLTE(FieldEventID, v))
}

// EventIDContains applies the Contains predicate on the "event_id" field.
func EventIDContains(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldContains(FieldEventID, v))
}

// EventIDHasPrefix applies the HasPrefix predicate on the "event_id" field.
func EventIDHasPrefix(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldHasPrefix(FieldEventID, v))
}

// EventIDHasSuffix applies the HasSuffix predicate on the "event_id" field.
func EventIDHasSuffix(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldHasSuffix(FieldEventID, v))
}

// EventIDEqualFold applies the EqualFold predicate on the "event_id" field.
func EventIDEqualFold(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldEqualFold(FieldEventID, v))
}

// EventIDContainsFold applies the ContainsFold predicate on the "event_id" field.
func EventIDContainsFold(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldContainsFold(FieldEventID, v))
}

// StageEQ applies the EQ predicate on the "stage" field.
func StageEQ(v Stage) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldEQ(FieldStage, v))
}

// StageNEQ applies the NEQ predicate on the "stage" field.
func StageNEQ(v Stage) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldNEQ(FieldStage, v))
}

// StageIn applies the In predicate on the "stage" field.
func StageIn(vs ...Stage) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldIn(FieldStage, vs...))
}

// StageNotIn applies the NotIn predicate on the "stage" field.
func StageNotIn(vs ...Stage) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldNotIn(FieldStage, vs...))
}

// ReasonEQ applies the EQ predicate on the "reason" field.
func ReasonEQ(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldEQ(FieldReason, v))
}

// ReasonNEQ applies the NEQ predicate on the "reason" field.
func ReasonNEQ(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldNEQ(FieldReason, v))
}

// ReasonIn applies the In predicate on the "reason" field.
func ReasonIn(vs ...string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldIn(FieldReason, vs...))
}

// ReasonNotIn applies the NotIn predicate on the "reason" field.
func ReasonNotIn(vs ...string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldNotIn(FieldReason, vs...))
}

// ReasonGT applies the GT predicate on the "reason" field.
func ReasonGT(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldGT(FieldReason, v))
}

// ReasonGTE applies the GTE predicate on the "reason" field.
func ReasonGTE(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldGTE(FieldReason, v))
}

// ReasonLT applies the LT predicate on the "reason" field.
func ReasonLT(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldLT(FieldReason, v))
}

// ReasonLTE applies the LTE predicate on the "reason" field.
func ReasonLTE(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldLTE(FieldReason, v))
}

// ReasonContains applies the Contains predicate on the "reason" field.
func ReasonContains(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldContains(FieldReason, v))
}

// ReasonHasPrefix applies the HasPrefix predicate on the "reason" field.
func ReasonHasPrefix(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldHasPrefix(FieldReason, v))
}

// ReasonHasSuffix applies the HasSuffix predicate on the "reason" field.
func ReasonHasSuffix(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldHasSuffix(FieldReason, v))
}

// ReasonEqualFold applies the EqualFold predicate on the "reason" field.
func ReasonEqualFold(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldEqualFold(FieldReason, v))
}

// ReasonContainsFold applies the ContainsFold predicate on the "reason" field.
func ReasonContainsFold(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldContainsFold(FieldReason, v))
}

// MessageEQ applies the EQ predicate on the "message" field.
func MessageEQ(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldEQ(FieldMessage, v))
}

// MessageNEQ applies the NEQ predicate on the "message" field.
func MessageNEQ(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldNEQ(FieldMessage, v))
}

// MessageIn applies the In predicate on the "message" field.
func MessageIn(vs ...string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldIn(FieldMessage, vs...))
}

// MessageNotIn applies the NotIn predicate on the "message" field.
func MessageNotIn(vs ...string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldNotIn(FieldMessage, vs...))
}

// MessageGT applies the GT predicate on the "message" field.
func MessageGT(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldGT(FieldMessage, v))
}

// MessageGTE applies the GTE predicate on the "message" field.
func MessageGTE(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldGTE(FieldMessage, v))
}

// MessageLT applies the LT predicate on the "message" field.
func MessageLT(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldLT(FieldMessage, v))
}

// MessageLTE applies the LTE predicate on the "message" field.
func MessageLTE(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldLTE(FieldMessage, v))
}

// MessageContains applies the Contains predicate on the "message" field.
func MessageContains(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldContains(FieldMessage, v))
}

// MessageHasPrefix applies the HasPrefix predicate on the "message" field.
func MessageHasPrefix(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldHasPrefix(FieldMessage, v))
}

// MessageHasSuffix applies the HasSuffix predicate on the "message" field.
func MessageHasSuffix(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldHasSuffix(FieldMessage, v))
}

// MessageIsNil applies the IsNil predicate on the "message" field.
func MessageIsNil() predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldIsNull(FieldMessage))
}

// MessageNotNil applies the NotNil predicate on the "message" field.
func MessageNotNil() predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldNotNull(FieldMessage))
}

// MessageEqualFold applies the EqualFold predicate on the "message" field.
func MessageEqualFold(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldEqualFold(FieldMessage, v))
}

// MessageContainsFold applies the ContainsFold predicate on the "message" field.
func MessageContainsFold(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldContainsFold(FieldMessage, v))
}

// AttemptHistoryIsNil applies the IsNil predicate on the "attempt_history" field.
func AttemptHistoryIsNil() predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldIsNull(FieldAttemptHistory))
}

// AttemptHistoryNotNil applies the NotNil predicate on the "attempt_history" field.
func AttemptHistoryNotNil() predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldNotNull(FieldAttemptHistory))
}

// ReplayedAtEQ applies the EQ predicate on the "replayed_at" field.
func ReplayedAtEQ(v time.Time) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldEQ(FieldReplayedAt, v))
}

// ReplayedAtNEQ applies the NEQ predicate on the "replayed_at" field.
func ReplayedAtNEQ(v time.Time) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldNEQ(FieldReplayedAt, v))
}

// ReplayedAtIn applies the In predicate on the "replayed_at" field.
func ReplayedAtIn(vs ...time.Time) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldIn(FieldReplayedAt, vs...))
}

// ReplayedAtNotIn applies the NotIn predicate on the "replayed_at" field.
func ReplayedAtNotIn(vs ...time.Time) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldNotIn(FieldReplayedAt, vs...))
}

// ReplayedAtGT applies the GT predicate on the "replayed_at" field.
func ReplayedAtGT(v time.Time) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldGT(FieldReplayedAt, v))
}

// ReplayedAtGTE applies the GTE predicate on the "replayed_at" field.
func ReplayedAtGTE(v time.Time) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldGTE(FieldReplayedAt, v))
}

// ReplayedAtLT applies the LT predicate on the "replayed_at" field.
func ReplayedAtLT(v time.Time) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldLT(FieldReplayedAt, v))
}

// ReplayedAtLTE applies the LTE predicate on the "replayed_at" field.
func ReplayedAtLTE(v time.Time) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldLTE(FieldReplayedAt, v))
}

// ReplayedAtIsNil applies the IsNil predicate on the "replayed_at" field.
func ReplayedAtIsNil() predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldIsNull(FieldReplayedAt))
}

// ReplayedAtNotNil applies the NotNil predicate on the "replayed_at" field.
func ReplayedAtNotNil() predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldNotNull(FieldReplayedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DeadLetter) predicate.DeadLetter {
	return predicate.DeadLetter(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DeadLetter) predicate.DeadLetter {
	return predicate.DeadLetter(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DeadLetter) predicate.DeadLetter {
	return predicate.DeadLetter(sql.NotPredicates(p))
}
