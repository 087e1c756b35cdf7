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
	"heatwatch.io/heatwatch/ent/predicate"
	"heatwatch.io/heatwatch/ent/stateaggregation"
)

// StateAggregationUpdate is the builder for updating StateAggregation entities.
type StateAggregationUpdate struct {
	config
	hooks    []Hook
	mutation *StateAggregationMutation
}

// Where appends a list predicates to the StateAggregationUpdate builder.
func (_u *StateAggregationUpdate) Where(ps ...predicate.StateAggregation) *StateAggregationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StateAggregationUpdate) SetUpdatedAt(v time.Time) *StateAggregationUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTotalEvents sets the "total_events" field.
func (_u *StateAggregationUpdate) SetTotalEvents(v int64) *StateAggregationUpdate {
	_u.mutation.ResetTotalEvents()
	_u.mutation.SetTotalEvents(v)
	return _u
}

// SetNillableTotalEvents sets the "total_events" field if the given value is not nil.
func (_u *StateAggregationUpdate) SetNillableTotalEvents(v *int64) *StateAggregationUpdate {
	if v != nil {
		_u.SetTotalEvents(*v)
	}
	return _u
}

// AddTotalEvents adds value to the "total_events" field.
func (_u *StateAggregationUpdate) AddTotalEvents(v int64) *StateAggregationUpdate {
	_u.mutation.AddTotalEvents(v)
	return _u
}

// SetHighRiskEvents sets the "high_risk_events" field.
func (_u *StateAggregationUpdate) SetHighRiskEvents(v int64) *StateAggregationUpdate {
	_u.mutation.ResetHighRiskEvents()
	_u.mutation.SetHighRiskEvents(v)
	return _u
}

// SetNillableHighRiskEvents sets the "high_risk_events" field if the given value is not nil.
func (_u *StateAggregationUpdate) SetNillableHighRiskEvents(v *int64) *StateAggregationUpdate {
	if v != nil {
		_u.SetHighRiskEvents(*v)
	}
	return _u
}

// AddHighRiskEvents adds value to the "high_risk_events" field.
func (_u *StateAggregationUpdate) AddHighRiskEvents(v int64) *StateAggregationUpdate {
	_u.mutation.AddHighRiskEvents(v)
	return _u
}

// SetValidatedEvents sets the "validated_events" field.
func (_u *StateAggregationUpdate) SetValidatedEvents(v int64) *StateAggregationUpdate {
	_u.mutation.ResetValidatedEvents()
	_u.mutation.SetValidatedEvents(v)
	return _u
}

// SetNillableValidatedEvents sets the "validated_events" field if the given value is not nil.
func (_u *StateAggregationUpdate) SetNillableValidatedEvents(v *int64) *StateAggregationUpdate {
	if v != nil {
		_u.SetValidatedEvents(*v)
	}
	return _u
}

// AddValidatedEvents adds value to the "validated_events" field.
func (_u *StateAggregationUpdate) AddValidatedEvents(v int64) *StateAggregationUpdate {
	_u.mutation.AddValidatedEvents(v)
	return _u
}

// SetAvgMisinformationRisk sets the "avg_misinformation_risk" field.
func (_u *StateAggregationUpdate) SetAvgMisinformationRisk(v float64) *StateAggregationUpdate {
	_u.mutation.ResetAvgMisinformationRisk()
	_u.mutation.SetAvgMisinformationRisk(v)
	return _u
}

// SetNillableAvgMisinformationRisk sets the "avg_misinformation_risk" field if the given value is not nil.
func (_u *StateAggregationUpdate) SetNillableAvgMisinformationRisk(v *float64) *StateAggregationUpdate {
	if v != nil {
		_u.SetAvgMisinformationRisk(*v)
	}
	return _u
}

// AddAvgMisinformationRisk adds value to the "avg_misinformation_risk" field.
func (_u *StateAggregationUpdate) AddAvgMisinformationRisk(v float64) *StateAggregationUpdate {
	_u.mutation.AddAvgMisinformationRisk(v)
	return _u
}

// SetMaxMisinformationRisk sets the "max_misinformation_risk" field.
func (_u *StateAggregationUpdate) SetMaxMisinformationRisk(v float64) *StateAggregationUpdate {
	_u.mutation.ResetMaxMisinformationRisk()
	_u.mutation.SetMaxMisinformationRisk(v)
	return _u
}

// SetNillableMaxMisinformationRisk sets the "max_misinformation_risk" field if the given value is not nil.
func (_u *StateAggregationUpdate) SetNillableMaxMisinformationRisk(v *float64) *StateAggregationUpdate {
	if v != nil {
		_u.SetMaxMisinformationRisk(*v)
	}
	return _u
}

// AddMaxMisinformationRisk adds value to the "max_misinformation_risk" field.
func (_u *StateAggregationUpdate) AddMaxMisinformationRisk(v float64) *StateAggregationUpdate {
	_u.mutation.AddMaxMisinformationRisk(v)
	return _u
}

// SetHeatIntensity sets the "heat_intensity" field.
func (_u *StateAggregationUpdate) SetHeatIntensity(v float64) *StateAggregationUpdate {
	_u.mutation.ResetHeatIntensity()
	_u.mutation.SetHeatIntensity(v)
	return _u
}

// SetNillableHeatIntensity sets the "heat_intensity" field if the given value is not nil.
func (_u *StateAggregationUpdate) SetNillableHeatIntensity(v *float64) *StateAggregationUpdate {
	if v != nil {
		_u.SetHeatIntensity(*v)
	}
	return _u
}

// AddHeatIntensity adds value to the "heat_intensity" field.
func (_u *StateAggregationUpdate) AddHeatIntensity(v float64) *StateAggregationUpdate {
	_u.mutation.AddHeatIntensity(v)
	return _u
}

// SetCategoryBreakdown sets the "category_breakdown" field.
func (_u *StateAggregationUpdate) SetCategoryBreakdown(v map[string]int64) *StateAggregationUpdate {
	_u.mutation.SetCategoryBreakdown(v)
	return _u
}

// ClearCategoryBreakdown clears the value of the "category_breakdown" field.
func (_u *StateAggregationUpdate) ClearCategoryBreakdown() *StateAggregationUpdate {
	_u.mutation.ClearCategoryBreakdown()
	return _u
}

// Mutation returns the StateAggregationMutation object of the builder.
func (_u *StateAggregationUpdate) Mutation() *StateAggregationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StateAggregationUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StateAggregationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StateAggregationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StateAggregationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StateAggregationUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := stateaggregation.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *StateAggregationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(stateaggregation.Table, stateaggregation.Columns, sqlgraph.NewFieldSpec(stateaggregation.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(stateaggregation.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TotalEvents(); ok {
		_spec.SetField(stateaggregation.FieldTotalEvents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTotalEvents(); ok {
		_spec.AddField(stateaggregation.FieldTotalEvents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.HighRiskEvents(); ok {
		_spec.SetField(stateaggregation.FieldHighRiskEvents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedHighRiskEvents(); ok {
		_spec.AddField(stateaggregation.FieldHighRiskEvents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ValidatedEvents(); ok {
		_spec.SetField(stateaggregation.FieldValidatedEvents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedValidatedEvents(); ok {
		_spec.AddField(stateaggregation.FieldValidatedEvents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AvgMisinformationRisk(); ok {
		_spec.SetField(stateaggregation.FieldAvgMisinformationRisk, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgMisinformationRisk(); ok {
		_spec.AddField(stateaggregation.FieldAvgMisinformationRisk, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MaxMisinformationRisk(); ok {
		_spec.SetField(stateaggregation.FieldMaxMisinformationRisk, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMaxMisinformationRisk(); ok {
		_spec.AddField(stateaggregation.FieldMaxMisinformationRisk, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.HeatIntensity(); ok {
		_spec.SetField(stateaggregation.FieldHeatIntensity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedHeatIntensity(); ok {
		_spec.AddField(stateaggregation.FieldHeatIntensity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CategoryBreakdown(); ok {
		_spec.SetField(stateaggregation.FieldCategoryBreakdown, field.TypeJSON, value)
	}
	if _u.mutation.CategoryBreakdownCleared() {
		_spec.ClearField(stateaggregation.FieldCategoryBreakdown, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stateaggregation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StateAggregationUpdateOne is the builder for updating a single StateAggregation entity.
type StateAggregationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StateAggregationMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StateAggregationUpdateOne) SetUpdatedAt(v time.Time) *StateAggregationUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTotalEvents sets the "total_events" field.
func (_u *StateAggregationUpdateOne) SetTotalEvents(v int64) *StateAggregationUpdateOne {
	_u.mutation.ResetTotalEvents()
	_u.mutation.SetTotalEvents(v)
	return _u
}

// SetNillableTotalEvents sets the "total_events" field if the given value is not nil.
func (_u *StateAggregationUpdateOne) SetNillableTotalEvents(v *int64) *StateAggregationUpdateOne {
	if v != nil {
		_u.SetTotalEvents(*v)
	}
	return _u
}

// AddTotalEvents adds value to the "total_events" field.
func (_u *StateAggregationUpdateOne) AddTotalEvents(v int64) *StateAggregationUpdateOne {
	_u.mutation.AddTotalEvents(v)
	return _u
}

// SetHighRiskEvents sets the "high_risk_events" field.
func (_u *StateAggregationUpdateOne) SetHighRiskEvents(v int64) *StateAggregationUpdateOne {
	_u.mutation.ResetHighRiskEvents()
	_u.mutation.SetHighRiskEvents(v)
	return _u
}

// SetNillableHighRiskEvents sets the "high_risk_events" field if the given value is not nil.
func (_u *StateAggregationUpdateOne) SetNillableHighRiskEvents(v *int64) *StateAggregationUpdateOne {
	if v != nil {
		_u.SetHighRiskEvents(*v)
	}
	return _u
}

// AddHighRiskEvents adds value to the "high_risk_events" field.
func (_u *StateAggregationUpdateOne) AddHighRiskEvents(v int64) *StateAggregationUpdateOne {
	_u.mutation.AddHighRiskEvents(v)
	return _u
}

// SetValidatedEvents sets the "validated_events" field.
func (_u *StateAggregationUpdateOne) SetValidatedEvents(v int64) *StateAggregationUpdateOne {
	_u.mutation.ResetValidatedEvents()
	_u.mutation.SetValidatedEvents(v)
	return _u
}

// SetNillableValidatedEvents sets the "validated_events" field if the given value is not nil.
func (_u *StateAggregationUpdateOne) SetNillableValidatedEvents(v *int64) *StateAggregationUpdateOne {
	if v != nil {
		_u.SetValidatedEvents(*v)
	}
	return _u
}

// AddValidatedEvents adds value to the "validated_events" field.
func (_u *StateAggregationUpdateOne) AddValidatedEvents(v int64) *StateAggregationUpdateOne {
	_u.mutation.AddValidatedEvents(v)
	return _u
}

// SetAvgMisinformationRisk sets the "avg_misinformation_risk" field.
func (_u *StateAggregationUpdateOne) SetAvgMisinformationRisk(v float64) *StateAggregationUpdateOne {
	_u.mutation.ResetAvgMisinformationRisk()
	_u.mutation.SetAvgMisinformationRisk(v)
	return _u
}

// SetNillableAvgMisinformationRisk sets the "avg_misinformation_risk" field if the given value is not nil.
func (_u *StateAggregationUpdateOne) SetNillableAvgMisinformationRisk(v *float64) *StateAggregationUpdateOne {
	if v != nil {
		_u.SetAvgMisinformationRisk(*v)
	}
	return _u
}

// AddAvgMisinformationRisk adds value to the "avg_misinformation_risk" field.
func (_u *StateAggregationUpdateOne) AddAvgMisinformationRisk(v float64) *StateAggregationUpdateOne {
	_u.mutation.AddAvgMisinformationRisk(v)
	return _u
}

// SetMaxMisinformationRisk sets the "max_misinformation_risk" field.
func (_u *StateAggregationUpdateOne) SetMaxMisinformationRisk(v float64) *StateAggregationUpdateOne {
	_u.mutation.ResetMaxMisinformationRisk()
	_u.mutation.SetMaxMisinformationRisk(v)
	return _u
}

// SetNillableMaxMisinformationRisk sets the "max_misinformation_risk" field if the given value is not nil.
func (_u *StateAggregationUpdateOne) SetNillableMaxMisinformationRisk(v *float64) *StateAggregationUpdateOne {
	if v != nil {
		_u.SetMaxMisinformationRisk(*v)
	}
	return _u
}

// AddMaxMisinformationRisk adds value to the "max_misinformation_risk" field.
func (_u *StateAggregationUpdateOne) AddMaxMisinformationRisk(v float64) *StateAggregationUpdateOne {
	_u.mutation.AddMaxMisinformationRisk(v)
	return _u
}

// SetHeatIntensity sets the "heat_intensity" field.
func (_u *StateAggregationUpdateOne) SetHeatIntensity(v float64) *StateAggregationUpdateOne {
	_u.mutation.ResetHeatIntensity()
	_u.mutation.SetHeatIntensity(v)
	return _u
}

// SetNillableHeatIntensity sets the "heat_intensity" field if the given value is not nil.
func (_u *StateAggregationUpdateOne) SetNillableHeatIntensity(v *float64) *StateAggregationUpdateOne {
	if v != nil {
		_u.SetHeatIntensity(*v)
	}
	return _u
}

// AddHeatIntensity adds value to the "heat_intensity" field.
func (_u *StateAggregationUpdateOne) AddHeatIntensity(v float64) *StateAggregationUpdateOne {
	_u.mutation.AddHeatIntensity(v)
	return _u
}

// SetCategoryBreakdown sets the "category_breakdown" field.
func (_u *StateAggregationUpdateOne) SetCategoryBreakdown(v map[string]int64) *StateAggregationUpdateOne {
	_u.mutation.SetCategoryBreakdown(v)
	return _u
}

// ClearCategoryBreakdown clears the value of the "category_breakdown" field.
func (_u *StateAggregationUpdateOne) ClearCategoryBreakdown() *StateAggregationUpdateOne {
	_u.mutation.ClearCategoryBreakdown()
	return _u
}

// Mutation returns the StateAggregationMutation object of the builder.
func (_u *StateAggregationUpdateOne) Mutation() *StateAggregationMutation {
	return _u.mutation
}

// Where appends a list predicates to the StateAggregationUpdate builder.
func (_u *StateAggregationUpdateOne) Where(ps ...predicate.StateAggregation) *StateAggregationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StateAggregationUpdateOne) Select(field string, fields ...string) *StateAggregationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StateAggregation entity.
func (_u *StateAggregationUpdateOne) Save(ctx context.Context) (*StateAggregation, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StateAggregationUpdateOne) SaveX(ctx context.Context) *StateAggregation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StateAggregationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StateAggregationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StateAggregationUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := stateaggregation.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *StateAggregationUpdateOne) sqlSave(ctx context.Context) (_node *StateAggregation, err error) {
	_spec := sqlgraph.NewUpdateSpec(stateaggregation.Table, stateaggregation.Columns, sqlgraph.NewFieldSpec(stateaggregation.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StateAggregation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, stateaggregation.FieldID)
		for _, f := range fields {
			if !stateaggregation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != stateaggregation.FieldID {
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
		_spec.SetField(stateaggregation.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TotalEvents(); ok {
		_spec.SetField(stateaggregation.FieldTotalEvents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTotalEvents(); ok {
		_spec.AddField(stateaggregation.FieldTotalEvents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.HighRiskEvents(); ok {
		_spec.SetField(stateaggregation.FieldHighRiskEvents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedHighRiskEvents(); ok {
		_spec.AddField(stateaggregation.FieldHighRiskEvents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ValidatedEvents(); ok {
		_spec.SetField(stateaggregation.FieldValidatedEvents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedValidatedEvents(); ok {
		_spec.AddField(stateaggregation.FieldValidatedEvents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AvgMisinformationRisk(); ok {
		_spec.SetField(stateaggregation.FieldAvgMisinformationRisk, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgMisinformationRisk(); ok {
		_spec.AddField(stateaggregation.FieldAvgMisinformationRisk, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MaxMisinformationRisk(); ok {
		_spec.SetField(stateaggregation.FieldMaxMisinformationRisk, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMaxMisinformationRisk(); ok {
		_spec.AddField(stateaggregation.FieldMaxMisinformationRisk, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.HeatIntensity(); ok {
		_spec.SetField(stateaggregation.FieldHeatIntensity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedHeatIntensity(); ok {
		_spec.AddField(stateaggregation.FieldHeatIntensity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CategoryBreakdown(); ok {
		_spec.SetField(stateaggregation.FieldCategoryBreakdown, field.TypeJSON, value)
	}
	if _u.mutation.CategoryBreakdownCleared() {
		_spec.ClearField(stateaggregation.FieldCategoryBreakdown, field.TypeJSON)
	}
	_node = &StateAggregation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stateaggregation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
