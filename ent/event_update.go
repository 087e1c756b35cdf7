// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"heatwatch.io/heatwatch/ent/event"
	"heatwatch.io/heatwatch/ent/predicate"
	"heatwatch.io/heatwatch/internal/domain"
)

// EventUpdate is the builder for updating Event entities.
type EventUpdate struct {
	config
	hooks    []Hook
	mutation *EventMutation
}

// Where appends a list predicates to the EventUpdate builder.
func (_u *EventUpdate) Where(ps ...predicate.Event) *EventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EventUpdate) SetUpdatedAt(v time.Time) *EventUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNormalizedContent sets the "normalized_content" field.
func (_u *EventUpdate) SetNormalizedContent(v string) *EventUpdate {
	_u.mutation.SetNormalizedContent(v)
	return _u
}

// SetNillableNormalizedContent sets the "normalized_content" field if the given value is not nil.
func (_u *EventUpdate) SetNillableNormalizedContent(v *string) *EventUpdate {
	if v != nil {
		_u.SetNormalizedContent(*v)
	}
	return _u
}

// SetURL sets the "url" field.
func (_u *EventUpdate) SetURL(v string) *EventUpdate {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *EventUpdate) SetNillableURL(v *string) *EventUpdate {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// ClearURL clears the value of the "url" field.
func (_u *EventUpdate) ClearURL() *EventUpdate {
	_u.mutation.ClearURL()
	return _u
}

// SetLocationHint sets the "location_hint" field.
func (_u *EventUpdate) SetLocationHint(v *domain.LocationHint) *EventUpdate {
	_u.mutation.SetLocationHint(v)
	return _u
}

// ClearLocationHint clears the value of the "location_hint" field.
func (_u *EventUpdate) ClearLocationHint() *EventUpdate {
	_u.mutation.ClearLocationHint()
	return _u
}

// SetNlpResult sets the "nlp_result" field.
func (_u *EventUpdate) SetNlpResult(v *domain.NLPResult) *EventUpdate {
	_u.mutation.SetNlpResult(v)
	return _u
}

// ClearNlpResult clears the value of the "nlp_result" field.
func (_u *EventUpdate) ClearNlpResult() *EventUpdate {
	_u.mutation.ClearNlpResult()
	return _u
}

// SetSatelliteResult sets the "satellite_result" field.
func (_u *EventUpdate) SetSatelliteResult(v *domain.SatelliteResult) *EventUpdate {
	_u.mutation.SetSatelliteResult(v)
	return _u
}

// ClearSatelliteResult clears the value of the "satellite_result" field.
func (_u *EventUpdate) ClearSatelliteResult() *EventUpdate {
	_u.mutation.ClearSatelliteResult()
	return _u
}

// SetFusedRisk sets the "fused_risk" field.
func (_u *EventUpdate) SetFusedRisk(v float64) *EventUpdate {
	_u.mutation.ResetFusedRisk()
	_u.mutation.SetFusedRisk(v)
	return _u
}

// SetNillableFusedRisk sets the "fused_risk" field if the given value is not nil.
func (_u *EventUpdate) SetNillableFusedRisk(v *float64) *EventUpdate {
	if v != nil {
		_u.SetFusedRisk(*v)
	}
	return _u
}

// AddFusedRisk adds value to the "fused_risk" field.
func (_u *EventUpdate) AddFusedRisk(v float64) *EventUpdate {
	_u.mutation.AddFusedRisk(v)
	return _u
}

// SetClaimID sets the "claim_id" field.
func (_u *EventUpdate) SetClaimID(v string) *EventUpdate {
	_u.mutation.SetClaimID(v)
	return _u
}

// SetNillableClaimID sets the "claim_id" field if the given value is not nil.
func (_u *EventUpdate) SetNillableClaimID(v *string) *EventUpdate {
	if v != nil {
		_u.SetClaimID(*v)
	}
	return _u
}

// ClearClaimID clears the value of the "claim_id" field.
func (_u *EventUpdate) ClearClaimID() *EventUpdate {
	_u.mutation.ClearClaimID()
	return _u
}

// SetState sets the "state" field.
func (_u *EventUpdate) SetState(v event.State) *EventUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *EventUpdate) SetNillableState(v *event.State) *EventUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetAttemptCounts sets the "attempt_counts" field.
func (_u *EventUpdate) SetAttemptCounts(v map[string]int) *EventUpdate {
	_u.mutation.SetAttemptCounts(v)
	return _u
}

// ClearAttemptCounts clears the value of the "attempt_counts" field.
func (_u *EventUpdate) ClearAttemptCounts() *EventUpdate {
	_u.mutation.ClearAttemptCounts()
	return _u
}

// SetFailureReason sets the "failure_reason" field.
func (_u *EventUpdate) SetFailureReason(v string) *EventUpdate {
	_u.mutation.SetFailureReason(v)
	return _u
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_u *EventUpdate) SetNillableFailureReason(v *string) *EventUpdate {
	if v != nil {
		_u.SetFailureReason(*v)
	}
	return _u
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (_u *EventUpdate) ClearFailureReason() *EventUpdate {
	_u.mutation.ClearFailureReason()
	return _u
}

// Mutation returns the EventMutation object of the builder.
func (_u *EventUpdate) Mutation() *EventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EventUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EventUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := event.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EventUpdate) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := event.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Event.state": %w`, err)}
		}
	}
	return nil
}

func (_u *EventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(event.Table, event.Columns, sqlgraph.NewFieldSpec(event.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(event.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.NormalizedContent(); ok {
		_spec.SetField(event.FieldNormalizedContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(event.FieldURL, field.TypeString, value)
	}
	if _u.mutation.URLCleared() {
		_spec.ClearField(event.FieldURL, field.TypeString)
	}
	if value, ok := _u.mutation.LocationHint(); ok {
		_spec.SetField(event.FieldLocationHint, field.TypeJSON, value)
	}
	if _u.mutation.LocationHintCleared() {
		_spec.ClearField(event.FieldLocationHint, field.TypeJSON)
	}
	if value, ok := _u.mutation.NlpResult(); ok {
		_spec.SetField(event.FieldNlpResult, field.TypeJSON, value)
	}
	if _u.mutation.NlpResultCleared() {
		_spec.ClearField(event.FieldNlpResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.SatelliteResult(); ok {
		_spec.SetField(event.FieldSatelliteResult, field.TypeJSON, value)
	}
	if _u.mutation.SatelliteResultCleared() {
		_spec.ClearField(event.FieldSatelliteResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.FusedRisk(); ok {
		_spec.SetField(event.FieldFusedRisk, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFusedRisk(); ok {
		_spec.AddField(event.FieldFusedRisk, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ClaimID(); ok {
		_spec.SetField(event.FieldClaimID, field.TypeString, value)
	}
	if _u.mutation.ClaimIDCleared() {
		_spec.ClearField(event.FieldClaimID, field.TypeString)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(event.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AttemptCounts(); ok {
		_spec.SetField(event.FieldAttemptCounts, field.TypeJSON, value)
	}
	if _u.mutation.AttemptCountsCleared() {
		_spec.ClearField(event.FieldAttemptCounts, field.TypeJSON)
	}
	if value, ok := _u.mutation.FailureReason(); ok {
		_spec.SetField(event.FieldFailureReason, field.TypeString, value)
	}
	if _u.mutation.FailureReasonCleared() {
		_spec.ClearField(event.FieldFailureReason, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{event.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EventUpdateOne is the builder for updating a single Event entity.
type EventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EventMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EventUpdateOne) SetUpdatedAt(v time.Time) *EventUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNormalizedContent sets the "normalized_content" field.
func (_u *EventUpdateOne) SetNormalizedContent(v string) *EventUpdateOne {
	_u.mutation.SetNormalizedContent(v)
	return _u
}

// SetNillableNormalizedContent sets the "normalized_content" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableNormalizedContent(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetNormalizedContent(*v)
	}
	return _u
}

// SetURL sets the "url" field.
func (_u *EventUpdateOne) SetURL(v string) *EventUpdateOne {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableURL(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// ClearURL clears the value of the "url" field.
func (_u *EventUpdateOne) ClearURL() *EventUpdateOne {
	_u.mutation.ClearURL()
	return _u
}

// SetLocationHint sets the "location_hint" field.
func (_u *EventUpdateOne) SetLocationHint(v *domain.LocationHint) *EventUpdateOne {
	_u.mutation.SetLocationHint(v)
	return _u
}

// ClearLocationHint clears the value of the "location_hint" field.
func (_u *EventUpdateOne) ClearLocationHint() *EventUpdateOne {
	_u.mutation.ClearLocationHint()
	return _u
}

// SetNlpResult sets the "nlp_result" field.
func (_u *EventUpdateOne) SetNlpResult(v *domain.NLPResult) *EventUpdateOne {
	_u.mutation.SetNlpResult(v)
	return _u
}

// ClearNlpResult clears the value of the "nlp_result" field.
func (_u *EventUpdateOne) ClearNlpResult() *EventUpdateOne {
	_u.mutation.ClearNlpResult()
	return _u
}

// SetSatelliteResult sets the "satellite_result" field.
func (_u *EventUpdateOne) SetSatelliteResult(v *domain.SatelliteResult) *EventUpdateOne {
	_u.mutation.SetSatelliteResult(v)
	return _u
}

// ClearSatelliteResult clears the value of the "satellite_result" field.
func (_u *EventUpdateOne) ClearSatelliteResult() *EventUpdateOne {
	_u.mutation.ClearSatelliteResult()
	return _u
}

// SetFusedRisk sets the "fused_risk" field.
func (_u *EventUpdateOne) SetFusedRisk(v float64) *EventUpdateOne {
	_u.mutation.ResetFusedRisk()
	_u.mutation.SetFusedRisk(v)
	return _u
}

// SetNillableFusedRisk sets the "fused_risk" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableFusedRisk(v *float64) *EventUpdateOne {
	if v != nil {
		_u.SetFusedRisk(*v)
	}
	return _u
}

// AddFusedRisk adds value to the "fused_risk" field.
func (_u *EventUpdateOne) AddFusedRisk(v float64) *EventUpdateOne {
	_u.mutation.AddFusedRisk(v)
	return _u
}

// SetClaimID sets the "claim_id" field.
func (_u *EventUpdateOne) SetClaimID(v string) *EventUpdateOne {
	_u.mutation.SetClaimID(v)
	return _u
}

// SetNillableClaimID sets the "claim_id" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableClaimID(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetClaimID(*v)
	}
	return _u
}

// ClearClaimID clears the value of the "claim_id" field.
func (_u *EventUpdateOne) ClearClaimID() *EventUpdateOne {
	_u.mutation.ClearClaimID()
	return _u
}

// SetState sets the "state" field.
func (_u *EventUpdateOne) SetState(v event.State) *EventUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableState(v *event.State) *EventUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetAttemptCounts sets the "attempt_counts" field.
func (_u *EventUpdateOne) SetAttemptCounts(v map[string]int) *EventUpdateOne {
	_u.mutation.SetAttemptCounts(v)
	return _u
}

// ClearAttemptCounts clears the value of the "attempt_counts" field.
func (_u *EventUpdateOne) ClearAttemptCounts() *EventUpdateOne {
	_u.mutation.ClearAttemptCounts()
	return _u
}

// SetFailureReason sets the "failure_reason" field.
func (_u *EventUpdateOne) SetFailureReason(v string) *EventUpdateOne {
	_u.mutation.SetFailureReason(v)
	return _u
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableFailureReason(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetFailureReason(*v)
	}
	return _u
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (_u *EventUpdateOne) ClearFailureReason() *EventUpdateOne {
	_u.mutation.ClearFailureReason()
	return _u
}

// Mutation returns the EventMutation object of the builder.
func (_u *EventUpdateOne) Mutation() *EventMutation {
	return _u.mutation
}

// Where appends a list predicates to the EventUpdate builder.
func (_u *EventUpdateOne) Where(ps ...predicate.Event) *EventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EventUpdateOne) Select(field string, fields ...string) *EventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Event entity.
func (_u *EventUpdateOne) Save(ctx context.Context) (*Event, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EventUpdateOne) SaveX(ctx context.Context) *Event {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EventUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := event.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EventUpdateOne) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := event.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Event.state": %w`, err)}
		}
	}
	return nil
}

func (_u *EventUpdateOne) sqlSave(ctx context.Context) (_node *Event, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(event.Table, event.Columns, sqlgraph.NewFieldSpec(event.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Event.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, event.FieldID)
		for _, f := range fields {
			if !event.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != event.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(event.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.NormalizedContent(); ok {
		_spec.SetField(event.FieldNormalizedContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(event.FieldURL, field.TypeString, value)
	}
	if _u.mutation.URLCleared() {
		_spec.ClearField(event.FieldURL, field.TypeString)
	}
	if value, ok := _u.mutation.LocationHint(); ok {
		_spec.SetField(event.FieldLocationHint, field.TypeJSON, value)
	}
	if _u.mutation.LocationHintCleared() {
		_spec.ClearField(event.FieldLocationHint, field.TypeJSON)
	}
	if value, ok := _u.mutation.NlpResult(); ok {
		_spec.SetField(event.FieldNlpResult, field.TypeJSON, value)
	}
	if _u.mutation.NlpResultCleared() {
		_spec.ClearField(event.FieldNlpResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.SatelliteResult(); ok {
		_spec.SetField(event.FieldSatelliteResult, field.TypeJSON, value)
	}
	if _u.mutation.SatelliteResultCleared() {
		_spec.ClearField(event.FieldSatelliteResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.FusedRisk(); ok {
		_spec.SetField(event.FieldFusedRisk, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFusedRisk(); ok {
		_spec.AddField(event.FieldFusedRisk, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ClaimID(); ok {
		_spec.SetField(event.FieldClaimID, field.TypeString, value)
	}
	if _u.mutation.ClaimIDCleared() {
		_spec.ClearField(event.FieldClaimID, field.TypeString)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(event.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AttemptCounts(); ok {
		_spec.SetField(event.FieldAttemptCounts, field.TypeJSON, value)
	}
	if _u.mutation.AttemptCountsCleared() {
		_spec.ClearField(event.FieldAttemptCounts, field.TypeJSON)
	}
	if value, ok := _u.mutation.FailureReason(); ok {
		_spec.SetField(event.FieldFailureReason, field.TypeString, value)
	}
	if _u.mutation.FailureReasonCleared() {
		_spec.ClearField(event.FieldFailureReason, field.TypeString)
	}
	_node = &Event{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{event.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
