// Code generated by ent, DO NOT EDIT.

package datasource

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"heatwatch.io/heatwatch/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.DataSource {
	return predicate.DataSource(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.DataSource {
	return predicate.DataSource(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.DataSource {
	return predicate.DataSource(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.DataSource {
	return predicate.DataSource(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.DataSource {
	return predicate.DataSource(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.DataSource {
	return predicate.DataSource(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.DataSource {
	return predicate.DataSource(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.DataSource {
	return predicate.DataSource(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.DataSource {
	return predicate.DataSource(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.DataSource {
	return predicate.DataSource(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.DataSource {
	return predicate.DataSource(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.DataSource {
	return predicate.DataSource(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.DataSource {
	return predicate.DataSource(sql.FieldEQ(FieldUpdatedAt, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.DataSource {
	return predicate.DataSource(sql.FieldEQ(FieldName, v))
}

// Endpoint applies equality check predicate on the "endpoint" field. It's identical to EndpointEQ.
func Endpoint(v string) predicate.DataSource {
	return predicate.DataSource(sql.FieldEQ(FieldEndpoint, v))
}

// FetchCount applies equality check predicate on the "fetch_count" field. It's identical to FetchCountEQ.
func FetchCount(v int64) predicate.DataSource {
	return predicate.DataSource(sql.FieldEQ(FieldFetchCount, v))
}

// ErrorCount applies equality check predicate on the "error_count" field. It's identical to ErrorCountEQ.
func ErrorCount(v int64) predicate.DataSource {
	return predicate.DataSource(sql.FieldEQ(FieldErrorCount, v))
}

// ConsecutiveErrors applies equality check predicate on the "consecutive_errors" field. It's identical to ConsecutiveErrorsEQ.
func ConsecutiveErrors(v int) predicate.DataSource {
	return predicate.DataSource(sql.FieldEQ(FieldConsecutiveErrors, v))
}

// LastSuccessAt applies equality check predicate on the "last_success_at" field. It's identical to LastSuccessAtEQ.
func LastSuccessAt(v time.Time) predicate.DataSource {
	return predicate.DataSource(sql.FieldEQ(FieldLastSuccessAt, v))
}

// LastError applies equality check predicate on the "last_error" field. It's identical to LastErrorEQ.
func LastError(v string) predicate.DataSource {
	return predicate.DataSource(sql.FieldEQ(FieldLastError, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.DataSource {
	return predicate.DataSource(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.DataSource {
	return predicate.DataSource(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.DataSource {
	return predicate.DataSource(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.DataSource {
	return predicate.DataSource(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.DataSource {
	return predicate.DataSource(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.DataSource {
	return predicate.DataSource(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.DataSource {
	return predicate.DataSource(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.DataSource {
	return predicate.DataSource(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.DataSource {
	return predicate.DataSource(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.DataSource {
	return predicate.DataSource(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.DataSource {
	return predicate.DataSource(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.DataSource {
	return predicate.DataSource(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.DataSource {
	return predicate.DataSource(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.DataSource {
	return predicate.DataSource(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.DataSource {
	return predicate.DataSource(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.DataSource {
	return predicate.DataSource(sql.FieldLTE(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.DataSource {
	return predicate.DataSource(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.DataSource {
	return predicate.DataSource(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.DataSource {
	return predicate.DataSource(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.DataSource {
	return predicate.DataSource(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.DataSource {
	return predicate.DataSource(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.DataSource {
	return predicate.DataSource(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.DataSource {
	return predicate.DataSource(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.DataSource {
	return predicate.DataSource(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.DataSource {
	return predicate.DataSource(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.DataSource {
	return predicate.DataSource(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.DataSource {
	return predicate.DataSource(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.DataSource {
	return predicate.DataSource(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.DataSource {
	return predicate.DataSource(sql.FieldContainsFold(FieldName, v))
}

// SourceTypeEQ applies the EQ predicate on the "source_type" field.
func SourceTypeEQ(v SourceType) predicate.DataSource {
	return predicate.DataSource(sql.FieldEQ(FieldSourceType, v))
}

// SourceTypeNEQ applies the NEQ predicate on the "source_type" field.
func SourceTypeNEQ(v SourceType) predicate.DataSource {
	return predicate.DataSource(sql.FieldNEQ(FieldSourceType, v))
}

// SourceTypeIn applies the In predicate on the "source_type" field.
func SourceTypeIn(vs ...SourceType) predicate.DataSource {
	return predicate.DataSource(sql.FieldIn(FieldSourceType, vs...))
}

// SourceTypeNotIn applies the NotIn predicate on the "source_type" field.
func SourceTypeNotIn(vs ...SourceType) predicate.DataSource {
	return predicate.DataSource(sql.FieldNotIn(FieldSourceType, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.DataSource {
	return predicate.DataSource(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.DataSource {
	return predicate.DataSource(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.DataSource {
	return predicate.DataSource(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.DataSource {
	return predicate.DataSource(sql.FieldNotIn(FieldStatus, vs...))
}

// EndpointEQ applies the EQ predicate on the "endpoint" field.
func EndpointEQ(v string) predicate.DataSource {
	return predicate.DataSource(sql.FieldEQ(FieldEndpoint, v))
}

// EndpointNEQ applies the NEQ predicate on the "endpoint" field.
func EndpointNEQ(v string) predicate.DataSource {
	return predicate.DataSource(sql.FieldNEQ(FieldEndpoint, v))
}

// EndpointIn applies the In predicate on the "endpoint" field.
func EndpointIn(vs ...string) predicate.DataSource {
	return predicate.DataSource(sql.FieldIn(FieldEndpoint, vs...))
}

// EndpointNotIn applies the NotIn predicate on the "endpoint" field.
func EndpointNotIn(vs ...string) predicate.DataSource {
	return predicate.DataSource(sql.FieldNotIn(FieldEndpoint, vs...))
}

// EndpointGT applies the GT predicate on the "endpoint" field.
func EndpointGT(v string) predicate.DataSource {
	return predicate.DataSource(sql.FieldGT(FieldEndpoint, v))
}

// EndpointGTE applies the GTE predicate on the "endpoint" field.
func EndpointGTE(v string) predicate.DataSource {
	return predicate.DataSource(sql.FieldGTE(FieldEndpoint, v))
}

// EndpointLT applies the LT predicate on the "endpoint" field.
func EndpointLT(v string) predicate.DataSource {
	return predicate.DataSource(sql.FieldLT(FieldEndpoint, v))
}

// EndpointLTE applies the LTE predicate on the "endpoint" field.
func EndpointLTE(v string) predicate.DataSource {
	return predicate.DataSource(sql.FieldLTE(FieldEndpoint, v))
}

// EndpointContains applies the Contains predicate on the "endpoint" field.
func EndpointContains(v string) predicate.DataSource {
	return predicate.DataSource(sql.FieldContains(FieldEndpoint, v))
}

// EndpointHasPrefix applies the HasPrefix predicate on the "endpoint" field.
func EndpointHasPrefix(v string) predicate.DataSource {
	return predicate.DataSource(sql.FieldHasPrefix(FieldEndpoint, v))
}

// EndpointHasSuffix applies the HasSuffix predicate on the "endpoint" field.
func EndpointHasSuffix(v string) predicate.DataSource {
	return predicate.DataSource(sql.FieldHasSuffix(FieldEndpoint, v))
}

// EndpointIsNil applies the IsNil predicate on the "endpoint" field.
func EndpointIsNil() predicate.DataSource {
	return predicate.DataSource(sql.FieldIsNull(FieldEndpoint))
}

// EndpointNotNil applies the NotNil predicate on the "endpoint" field.
func EndpointNotNil() predicate.DataSource {
	return predicate.DataSource(sql.FieldNotNull(FieldEndpoint))
}

// EndpointEqualFold applies the EqualFold predicate on the "endpoint" field.
func EndpointEqualFold(v string) predicate.DataSource {
	return predicate.DataSource(sql.FieldEqualFold(FieldEndpoint, v))
}

// EndpointContainsFold applies the ContainsFold predicate on the "endpoint" field.
func EndpointContainsFold(v string) predicate.DataSource {
	return predicate.DataSource(sql.FieldContainsFold(FieldEndpoint, v))
}

// FetchCountEQ applies the EQ predicate on the "fetch_count" field.
func FetchCountEQ(v int64) predicate.DataSource {
	return predicate.DataSource(sql.FieldEQ(FieldFetchCount, v))
}

// FetchCountNEQ applies the NEQ predicate on the "fetch_count" field.
func FetchCountNEQ(v int64) predicate.DataSource {
	return predicate.DataSource(sql.FieldNEQ(FieldFetchCount, v))
}

// FetchCountIn applies the In predicate on the "fetch_count" field.
func FetchCountIn(vs ...int64) predicate.DataSource {
	return predicate.DataSource(sql.FieldIn(FieldFetchCount, vs...))
}

// FetchCountNotIn applies the NotIn predicate on the "fetch_count" field.
func FetchCountNotIn(vs ...int64) predicate.DataSource {
	return predicate.DataSource(sql.FieldNotIn(FieldFetchCount, vs...))
}

// FetchCountGT applies the GT predicate on the "fetch_count" field.
func FetchCountGT(v int64) predicate.DataSource {
	return predicate.DataSource(sql.FieldGT(FieldFetchCount, v))
}

// FetchCountGTE applies the GTE predicate on the "fetch_count" field.
func FetchCountGTE(v int64) predicate.DataSource {
	return predicate.DataSource(sql.FieldGTE(FieldFetchCount, v))
}

// FetchCountLT applies the LT predicate on the "fetch_count" field.
func FetchCountLT(v int64) predicate.DataSource {
	return predicate.DataSource(sql.FieldLT(FieldFetchCount, v))
}

// FetchCountLTE applies the LTE predicate on the "fetch_count" field.
func FetchCountLTE(v int64) predicate.DataSource {
	return predicate.DataSource(sql.FieldLTE(FieldFetchCount, v))
}

// ErrorCountEQ applies the EQ predicate on the "error_count" field.
func ErrorCountEQ(v int64) predicate.DataSource {
	return predicate.DataSource(sql.FieldEQ(FieldErrorCount, v))
}

// ErrorCountNEQ applies the NEQ predicate on the "error_count" field.
func ErrorCountNEQ(v int64) predicate.DataSource {
	return predicate.DataSource(sql.FieldNEQ(FieldErrorCount, v))
}

// ErrorCountIn applies the In predicate on the "error_count" field.
func ErrorCountIn(vs ...int64) predicate.DataSource {
	return predicate.DataSource(sql.FieldIn(FieldErrorCount, vs...))
}

// ErrorCountNotIn applies the NotIn predicate on the "error_count" field.
func ErrorCountNotIn(vs ...int64) predicate.DataSource {
	return predicate.DataSource(sql.FieldNotIn(FieldErrorCount, vs...))
}

// ErrorCountGT applies the GT predicate on the "error_count" field.
func ErrorCountGT(v int64) predicate.DataSource {
	return predicate.DataSource(sql.FieldGT(FieldErrorCount, v))
}

// ErrorCountGTE applies the GTE predicate on the "error_count" field.
func ErrorCountGTE(v int64) predicate.DataSource {
	return predicate.DataSource(sql.FieldGTE(FieldErrorCount, v))
}

// ErrorCountLT applies the LT predicate on the "error_count" field.
func ErrorCountLT(v int64) predicate.DataSource {
	return predicate.DataSource(sql.FieldLT(FieldErrorCount, v))
}

// ErrorCountLTE applies the LTE predicate on the "error_count" field.
func ErrorCountLTE(v int64) predicate.DataSource {
	return predicate.DataSource(sql.FieldLTE(FieldErrorCount, v))
}

// ConsecutiveErrorsEQ applies the EQ predicate on the "consecutive_errors" field.
func ConsecutiveErrorsEQ(v int) predicate.DataSource {
	return predicate.DataSource(sql.FieldEQ(FieldConsecutiveErrors, v))
}

// ConsecutiveErrorsNEQ applies the NEQ predicate on the "consecutive_errors" field.
func ConsecutiveErrorsNEQ(v int) predicate.DataSource {
	return predicate.DataSource(sql.FieldNEQ(FieldConsecutiveErrors, v))
}

// ConsecutiveErrorsIn applies the In predicate on the "consecutive_errors" field.
func ConsecutiveErrorsIn(vs ...int) predicate.DataSource {
	return predicate.DataSource(sql.FieldIn(FieldConsecutiveErrors, vs...))
}

// ConsecutiveErrorsNotIn applies the NotIn predicate on the "consecutive_errors" field.
func ConsecutiveErrorsNotIn(vs ...int) predicate.DataSource {
	return predicate.DataSource(sql.FieldNotIn(FieldConsecutiveErrors, vs...))
}

// ConsecutiveErrorsGT applies the GT predicate on the "consecutive_errors" field.
func ConsecutiveErrorsGT(v int) predicate.DataSource {
	return predicate.DataSource(sql.FieldGT(FieldConsecutiveErrors, v))
}

// ConsecutiveErrorsGTE applies the GTE predicate on the "consecutive_errors" field.
func ConsecutiveErrorsGTE(v int) predicate.DataSource {
	return predicate.DataSource(sql.FieldGTE(FieldConsecutiveErrors, v))
}

// ConsecutiveErrorsLT applies the LT predicate on the "consecutive_errors" field.
func ConsecutiveErrorsLT(v int) predicate.DataSource {
	return predicate.DataSource(sql.FieldLT(FieldConsecutiveErrors, v))
}

// ConsecutiveErrorsLTE applies the LTE predicate on the "consecutive_errors" field.
func ConsecutiveErrorsLTE(v int) predicate.DataSource {
	return predicate.DataSource(sql.FieldLTE(FieldConsecutiveErrors, v))
}

// LastSuccessAtEQ applies the EQ predicate on the "last_success_at" field.
func LastSuccessAtEQ(v time.Time) predicate.DataSource {
	return predicate.DataSource(sql.FieldEQ(FieldLastSuccessAt, v))
}

// LastSuccessAtNEQ applies the NEQ predicate on the "last_success_at" field.
func LastSuccessAtNEQ(v time.Time) predicate.DataSource {
	return predicate.DataSource(sql.FieldNEQ(FieldLastSuccessAt, v))
}

// LastSuccessAtIn applies the In predicate on the "last_success_at" field.
func LastSuccessAtIn(vs ...time.Time) predicate.DataSource {
	return predicate.DataSource(sql.FieldIn(FieldLastSuccessAt, vs...))
}

// LastSuccessAtNotIn applies the NotIn predicate on the "last_success_at" field.
func LastSuccessAtNotIn(vs ...time.Time) predicate.DataSource {
	return predicate.DataSource(sql.FieldNotIn(FieldLastSuccessAt, vs...))
}

// LastSuccessAtGT applies the GT predicate on the "last_success_at" field.
func LastSuccessAtGT(v time.Time) predicate.DataSource {
	return predicate.DataSource(sql.FieldGT(FieldLastSuccessAt, v))
}

// LastSuccessAtGTE applies the GTE predicate on the "last_success_at" field.
func LastSuccessAtGTE(v time.Time) predicate.DataSource {
	return predicate.DataSource(sql.FieldGTE(FieldLastSuccessAt, v))
}

// LastSuccessAtLT applies the LT predicate on the "last_success_at" field.
func LastSuccessAtLT(v time.Time) predicate.DataSource {
	return predicate.DataSource(sql.FieldLT(FieldLastSuccessAt, v))
}

// LastSuccessAtLTE applies the LTE predicate on the "last_success_at" field.
func LastSuccessAtLTE(v time.Time) predicate.DataSource {
	return predicate.DataSource(sql.FieldLTE(FieldLastSuccessAt, v))
}

// LastSuccessAtIsNil applies the IsNil predicate on the "last_success_at" field.
func LastSuccessAtIsNil() predicate.DataSource {
	return predicate.DataSource(sql.FieldIsNull(FieldLastSuccessAt))
}

// LastSuccessAtNotNil applies the NotNil predicate on the "last_success_at" field.
func LastSuccessAtNotNil() predicate.DataSource {
	return predicate.DataSource(sql.FieldNotNull(FieldLastSuccessAt))
}

// LastErrorEQ applies the EQ predicate on the "last_error" field.
func LastErrorEQ(v string) predicate.DataSource {
	return predicate.DataSource(sql.FieldEQ(FieldLastError, v))
}

// LastErrorNEQ applies the NEQ predicate on the "last_error" field.
func LastErrorNEQ(v string) predicate.DataSource {
	return predicate.DataSource(sql.FieldNEQ(FieldLastError, v))
}

// LastErrorIn applies the In predicate on the "last_error" field.
func LastErrorIn(vs ...string) predicate.DataSource {
	return predicate.DataSource(sql.FieldIn(FieldLastError, vs...))
}

// LastErrorNotIn applies the NotIn predicate on the "last_error" field.
func LastErrorNotIn(vs ...string) predicate.DataSource {
	return predicate.DataSource(sql.FieldNotIn(FieldLastError, vs...))
}

// LastErrorGT applies the GT predicate on the "last_error" field.
func LastErrorGT(v string) predicate.DataSource {
	return predicate.DataSource(sql.FieldGT(FieldLastError, v))
}

// LastErrorGTE applies the GTE predicate on the "last_error" field.
func LastErrorGTE(v string) predicate.DataSource {
	return predicate.DataSource(sql.FieldGTE(FieldLastError, v))
}

// LastErrorLT applies the LT predicate on the "last_error" field.
func LastErrorLT(v string) predicate.DataSource {
	return predicate.DataSource(sql.FieldLT(FieldLastError, v))
}

// LastErrorLTE applies the LTE predicate on the "last_error" field.
func LastErrorLTE(v string) predicate.DataSource {
	return predicate.DataSource(sql.FieldLTE(FieldLastError, v))
}

// LastErrorContains applies the Contains predicate on the "last_error" field.
func LastErrorContains(v string) predicate.DataSource {
	return predicate.DataSource(sql.FieldContains(FieldLastError, v))
}

// LastErrorHasPrefix applies the HasPrefix predicate on the "last_error" field.
func LastErrorHasPrefix(v string) predicate.DataSource {
	return predicate.DataSource(sql.FieldHasPrefix(FieldLastError, v))
}

// LastErrorHasSuffix applies the HasSuffix predicate on the "last_error" field.
func LastErrorHasSuffix(v string) predicate.DataSource {
	return predicate.DataSource(sql.FieldHasSuffix(FieldLastError, v))
}

// LastErrorIsNil applies the IsNil predicate on the "last_error" field.
func LastErrorIsNil() predicate.DataSource {
	return predicate.DataSource(sql.FieldIsNull(FieldLastError))
}

// LastErrorNotNil applies the NotNil predicate on the "last_error" field.
func LastErrorNotNil() predicate.DataSource {
	return predicate.DataSource(sql.FieldNotNull(FieldLastError))
}

// LastErrorEqualFold applies the EqualFold predicate on the "last_error" field.
func LastErrorEqualFold(v string) predicate.DataSource {
	return predicate.DataSource(sql.FieldEqualFold(FieldLastError, v))
}

// LastErrorContainsFold applies the ContainsFold predicate on the "last_error" field.
func LastErrorContainsFold(v string) predicate.DataSource {
	return predicate.DataSource(sql.FieldContainsFold(FieldLastError, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DataSource) predicate.DataSource {
	return predicate.DataSource(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DataSource) predicate.DataSource {
	return predicate.DataSource(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DataSource) predicate.DataSource {
	return predicate.DataSource(sql.NotPredicates(p))
}
