// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"heatwatch.io/heatwatch/ent/claim"
	"heatwatch.io/heatwatch/ent/predicate"
)

// ClaimUpdate is the builder for updating Claim entities.
type ClaimUpdate struct {
	config
	hooks    []Hook
	mutation *ClaimMutation
}

// Where appends a list predicates to the ClaimUpdate builder.
func (_u *ClaimUpdate) Where(ps ...predicate.Claim) *ClaimUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ClaimUpdate) SetUpdatedAt(v time.Time) *ClaimUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetLastSeenAt sets the "last_seen_at" field.
func (_u *ClaimUpdate) SetLastSeenAt(v time.Time) *ClaimUpdate {
	_u.mutation.SetLastSeenAt(v)
	return _u
}

// SetNillableLastSeenAt sets the "last_seen_at" field if the given value is not nil.
func (_u *ClaimUpdate) SetNillableLastSeenAt(v *time.Time) *ClaimUpdate {
	if v != nil {
		_u.SetLastSeenAt(*v)
	}
	return _u
}

// SetOccurrenceCount sets the "occurrence_count" field.
func (_u *ClaimUpdate) SetOccurrenceCount(v int64) *ClaimUpdate {
	_u.mutation.ResetOccurrenceCount()
	_u.mutation.SetOccurrenceCount(v)
	return _u
}

// SetNillableOccurrenceCount sets the "occurrence_count" field if the given value is not nil.
func (_u *ClaimUpdate) SetNillableOccurrenceCount(v *int64) *ClaimUpdate {
	if v != nil {
		_u.SetOccurrenceCount(*v)
	}
	return _u
}

// AddOccurrenceCount adds value to the "occurrence_count" field.
func (_u *ClaimUpdate) AddOccurrenceCount(v int64) *ClaimUpdate {
	_u.mutation.AddOccurrenceCount(v)
	return _u
}

// SetDistinctLocations sets the "distinct_locations" field.
func (_u *ClaimUpdate) SetDistinctLocations(v []string) *ClaimUpdate {
	_u.mutation.SetDistinctLocations(v)
	return _u
}

// AppendDistinctLocations appends value to the "distinct_locations" field.
func (_u *ClaimUpdate) AppendDistinctLocations(v []string) *ClaimUpdate {
	_u.mutation.AppendDistinctLocations(v)
	return _u
}

// ClearDistinctLocations clears the value of the "distinct_locations" field.
func (_u *ClaimUpdate) ClearDistinctLocations() *ClaimUpdate {
	_u.mutation.ClearDistinctLocations()
	return _u
}

// SetSpreadVelocity sets the "spread_velocity" field.
func (_u *ClaimUpdate) SetSpreadVelocity(v float64) *ClaimUpdate {
	_u.mutation.ResetSpreadVelocity()
	_u.mutation.SetSpreadVelocity(v)
	return _u
}

// SetNillableSpreadVelocity sets the "spread_velocity" field if the given value is not nil.
func (_u *ClaimUpdate) SetNillableSpreadVelocity(v *float64) *ClaimUpdate {
	if v != nil {
		_u.SetSpreadVelocity(*v)
	}
	return _u
}

// AddSpreadVelocity adds value to the "spread_velocity" field.
func (_u *ClaimUpdate) AddSpreadVelocity(v float64) *ClaimUpdate {
	_u.mutation.AddSpreadVelocity(v)
	return _u
}

// SetGeographicSpreadScore sets the "geographic_spread_score" field.
func (_u *ClaimUpdate) SetGeographicSpreadScore(v float64) *ClaimUpdate {
	_u.mutation.ResetGeographicSpreadScore()
	_u.mutation.SetGeographicSpreadScore(v)
	return _u
}

// SetNillableGeographicSpreadScore sets the "geographic_spread_score" field if the given value is not nil.
func (_u *ClaimUpdate) SetNillableGeographicSpreadScore(v *float64) *ClaimUpdate {
	if v != nil {
		_u.SetGeographicSpreadScore(*v)
	}
	return _u
}

// AddGeographicSpreadScore adds value to the "geographic_spread_score" field.
func (_u *ClaimUpdate) AddGeographicSpreadScore(v float64) *ClaimUpdate {
	_u.mutation.AddGeographicSpreadScore(v)
	return _u
}

// SetOverallRiskScore sets the "overall_risk_score" field.
func (_u *ClaimUpdate) SetOverallRiskScore(v float64) *ClaimUpdate {
	_u.mutation.ResetOverallRiskScore()
	_u.mutation.SetOverallRiskScore(v)
	return _u
}

// SetNillableOverallRiskScore sets the "overall_risk_score" field if the given value is not nil.
func (_u *ClaimUpdate) SetNillableOverallRiskScore(v *float64) *ClaimUpdate {
	if v != nil {
		_u.SetOverallRiskScore(*v)
	}
	return _u
}

// AddOverallRiskScore adds value to the "overall_risk_score" field.
func (_u *ClaimUpdate) AddOverallRiskScore(v float64) *ClaimUpdate {
	_u.mutation.AddOverallRiskScore(v)
	return _u
}

// SetArchivedAt sets the "archived_at" field.
func (_u *ClaimUpdate) SetArchivedAt(v time.Time) *ClaimUpdate {
	_u.mutation.SetArchivedAt(v)
	return _u
}

// SetNillableArchivedAt sets the "archived_at" field if the given value is not nil.
func (_u *ClaimUpdate) SetNillableArchivedAt(v *time.Time) *ClaimUpdate {
	if v != nil {
		_u.SetArchivedAt(*v)
	}
	return _u
}

// ClearArchivedAt clears the value of the "archived_at" field.
func (_u *ClaimUpdate) ClearArchivedAt() *ClaimUpdate {
	_u.mutation.ClearArchivedAt()
	return _u
}

// Mutation returns the ClaimMutation object of the builder.
func (_u *ClaimUpdate) Mutation() *ClaimMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ClaimUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClaimUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ClaimUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClaimUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ClaimUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := claim.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ClaimUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(claim.Table, claim.Columns, sqlgraph.NewFieldSpec(claim.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(claim.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastSeenAt(); ok {
		_spec.SetField(claim.FieldLastSeenAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.OccurrenceCount(); ok {
		_spec.SetField(claim.FieldOccurrenceCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedOccurrenceCount(); ok {
		_spec.AddField(claim.FieldOccurrenceCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.DistinctLocations(); ok {
		_spec.SetField(claim.FieldDistinctLocations, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDistinctLocations(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, claim.FieldDistinctLocations, value)
		})
	}
	if _u.mutation.DistinctLocationsCleared() {
		_spec.ClearField(claim.FieldDistinctLocations, field.TypeJSON)
	}
	if value, ok := _u.mutation.SpreadVelocity(); ok {
		_spec.SetField(claim.FieldSpreadVelocity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSpreadVelocity(); ok {
		_spec.AddField(claim.FieldSpreadVelocity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.GeographicSpreadScore(); ok {
		_spec.SetField(claim.FieldGeographicSpreadScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedGeographicSpreadScore(); ok {
		_spec.AddField(claim.FieldGeographicSpreadScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.OverallRiskScore(); ok {
		_spec.SetField(claim.FieldOverallRiskScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOverallRiskScore(); ok {
		_spec.AddField(claim.FieldOverallRiskScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ArchivedAt(); ok {
		_spec.SetField(claim.FieldArchivedAt, field.TypeTime, value)
	}
	if _u.mutation.ArchivedAtCleared() {
		_spec.ClearField(claim.FieldArchivedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{claim.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ClaimUpdateOne is the builder for updating a single Claim entity.
type ClaimUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ClaimMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ClaimUpdateOne) SetUpdatedAt(v time.Time) *ClaimUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetLastSeenAt sets the "last_seen_at" field.
func (_u *ClaimUpdateOne) SetLastSeenAt(v time.Time) *ClaimUpdateOne {
	_u.mutation.SetLastSeenAt(v)
	return _u
}

// SetNillableLastSeenAt sets the "last_seen_at" field if the given value is not nil.
func (_u *ClaimUpdateOne) SetNillableLastSeenAt(v *time.Time) *ClaimUpdateOne {
	if v != nil {
		_u.SetLastSeenAt(*v)
	}
	return _u
}

// SetOccurrenceCount sets the "occurrence_count" field.
func (_u *ClaimUpdateOne) SetOccurrenceCount(v int64) *ClaimUpdateOne {
	_u.mutation.ResetOccurrenceCount()
	_u.mutation.SetOccurrenceCount(v)
	return _u
}

// SetNillableOccurrenceCount sets the "occurrence_count" field if the given value is not nil.
func (_u *ClaimUpdateOne) SetNillableOccurrenceCount(v *int64) *ClaimUpdateOne {
	if v != nil {
		_u.SetOccurrenceCount(*v)
	}
	return _u
}

// AddOccurrenceCount adds value to the "occurrence_count" field.
func (_u *ClaimUpdateOne) AddOccurrenceCount(v int64) *ClaimUpdateOne {
	_u.mutation.AddOccurrenceCount(v)
	return _u
}

// SetDistinctLocations sets the "distinct_locations" field.
func (_u *ClaimUpdateOne) SetDistinctLocations(v []string) *ClaimUpdateOne {
	_u.mutation.SetDistinctLocations(v)
	return _u
}

// AppendDistinctLocations appends value to the "distinct_locations" field.
func (_u *ClaimUpdateOne) AppendDistinctLocations(v []string) *ClaimUpdateOne {
	_u.mutation.AppendDistinctLocations(v)
	return _u
}

// ClearDistinctLocations clears the value of the "distinct_locations" field.
func (_u *ClaimUpdateOne) ClearDistinctLocations() *ClaimUpdateOne {
	_u.mutation.ClearDistinctLocations()
	return _u
}

// SetSpreadVelocity sets the "spread_velocity" field.
func (_u *ClaimUpdateOne) SetSpreadVelocity(v float64) *ClaimUpdateOne {
	_u.mutation.ResetSpreadVelocity()
	_u.mutation.SetSpreadVelocity(v)
	return _u
}

// SetNillableSpreadVelocity sets the "spread_velocity" field if the given value is not nil.
func (_u *ClaimUpdateOne) SetNillableSpreadVelocity(v *float64) *ClaimUpdateOne {
	if v != nil {
		_u.SetSpreadVelocity(*v)
	}
	return _u
}

// AddSpreadVelocity adds value to the "spread_velocity" field.
func (_u *ClaimUpdateOne) AddSpreadVelocity(v float64) *ClaimUpdateOne {
	_u.mutation.AddSpreadVelocity(v)
	return _u
}

// SetGeographicSpreadScore sets the "geographic_spread_score" field.
func (_u *ClaimUpdateOne) SetGeographicSpreadScore(v float64) *ClaimUpdateOne {
	_u.mutation.ResetGeographicSpreadScore()
	_u.mutation.SetGeographicSpreadScore(v)
	return _u
}

// SetNillableGeographicSpreadScore sets the "geographic_spread_score" field if the given value is not nil.
func (_u *ClaimUpdateOne) SetNillableGeographicSpreadScore(v *float64) *ClaimUpdateOne {
	if v != nil {
		_u.SetGeographicSpreadScore(*v)
	}
	return _u
}

// AddGeographicSpreadScore adds value to the "geographic_spread_score" field.
func (_u *ClaimUpdateOne) AddGeographicSpreadScore(v float64) *ClaimUpdateOne {
	_u.mutation.AddGeographicSpreadScore(v)
	return _u
}

// SetOverallRiskScore sets the "overall_risk_score" field.
func (_u *ClaimUpdateOne) SetOverallRiskScore(v float64) *ClaimUpdateOne {
	_u.mutation.ResetOverallRiskScore()
	_u.mutation.SetOverallRiskScore(v)
	return _u
}

// SetNillableOverallRiskScore sets the "overall_risk_score" field if the given value is not nil.
func (_u *ClaimUpdateOne) SetNillableOverallRiskScore(v *float64) *ClaimUpdateOne {
	if v != nil {
		_u.SetOverallRiskScore(*v)
	}
	return _u
}

// AddOverallRiskScore adds value to the "overall_risk_score" field.
func (_u *ClaimUpdateOne) AddOverallRiskScore(v float64) *ClaimUpdateOne {
	_u.mutation.AddOverallRiskScore(v)
	return _u
}

// SetArchivedAt sets the "archived_at" field.
func (_u *ClaimUpdateOne) SetArchivedAt(v time.Time) *ClaimUpdateOne {
	_u.mutation.SetArchivedAt(v)
	return _u
}

// SetNillableArchivedAt sets the "archived_at" field if the given value is not nil.
func (_u *ClaimUpdateOne) SetNillableArchivedAt(v *time.Time) *ClaimUpdateOne {
	if v != nil {
		_u.SetArchivedAt(*v)
	}
	return _u
}

// ClearArchivedAt clears the value of the "archived_at" field.
func (_u *ClaimUpdateOne) ClearArchivedAt() *ClaimUpdateOne {
	_u.mutation.ClearArchivedAt()
	return _u
}

// Mutation returns the ClaimMutation object of the builder.
func (_u *ClaimUpdateOne) Mutation() *ClaimMutation {
	return _u.mutation
}

// Where appends a list predicates to the ClaimUpdate builder.
func (_u *ClaimUpdateOne) Where(ps ...predicate.Claim) *ClaimUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ClaimUpdateOne) Select(field string, fields ...string) *ClaimUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Claim entity.
func (_u *ClaimUpdateOne) Save(ctx context.Context) (*Claim, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClaimUpdateOne) SaveX(ctx context.Context) *Claim {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ClaimUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClaimUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ClaimUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := claim.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ClaimUpdateOne) sqlSave(ctx context.Context) (_node *Claim, err error) {
	_spec := sqlgraph.NewUpdateSpec(claim.Table, claim.Columns, sqlgraph.NewFieldSpec(claim.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Claim.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, claim.FieldID)
		for _, f := range fields {
			if !claim.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != claim.FieldID {
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
		_spec.SetField(claim.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastSeenAt(); ok {
		_spec.SetField(claim.FieldLastSeenAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.OccurrenceCount(); ok {
		_spec.SetField(claim.FieldOccurrenceCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedOccurrenceCount(); ok {
		_spec.AddField(claim.FieldOccurrenceCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.DistinctLocations(); ok {
		_spec.SetField(claim.FieldDistinctLocations, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDistinctLocations(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, claim.FieldDistinctLocations, value)
		})
	}
	if _u.mutation.DistinctLocationsCleared() {
		_spec.ClearField(claim.FieldDistinctLocations, field.TypeJSON)
	}
	if value, ok := _u.mutation.SpreadVelocity(); ok {
		_spec.SetField(claim.FieldSpreadVelocity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSpreadVelocity(); ok {
		_spec.AddField(claim.FieldSpreadVelocity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.GeographicSpreadScore(); ok {
		_spec.SetField(claim.FieldGeographicSpreadScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedGeographicSpreadScore(); ok {
		_spec.AddField(claim.FieldGeographicSpreadScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.OverallRiskScore(); ok {
		_spec.SetField(claim.FieldOverallRiskScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOverallRiskScore(); ok {
		_spec.AddField(claim.FieldOverallRiskScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ArchivedAt(); ok {
		_spec.SetField(claim.FieldArchivedAt, field.TypeTime, value)
	}
	if _u.mutation.ArchivedAtCleared() {
		_spec.ClearField(claim.FieldArchivedAt, field.TypeTime)
	}
	_node = &Claim{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{claim.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
