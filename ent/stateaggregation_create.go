// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"heatwatch.io/heatwatch/ent/stateaggregation"
)

// StateAggregationCreate is the builder for creating a StateAggregation entity.
type StateAggregationCreate struct {
	config
	mutation *StateAggregationMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *StateAggregationCreate) SetCreatedAt(v time.Time) *StateAggregationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StateAggregationCreate) SetNillableCreatedAt(v *time.Time) *StateAggregationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *StateAggregationCreate) SetUpdatedAt(v time.Time) *StateAggregationCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *StateAggregationCreate) SetNillableUpdatedAt(v *time.Time) *StateAggregationCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetRegion sets the "region" field.
func (_c *StateAggregationCreate) SetRegion(v string) *StateAggregationCreate {
	_c.mutation.SetRegion(v)
	return _c
}

// SetDate sets the "date" field.
func (_c *StateAggregationCreate) SetDate(v string) *StateAggregationCreate {
	_c.mutation.SetDate(v)
	return _c
}

// SetHour sets the "hour" field.
func (_c *StateAggregationCreate) SetHour(v int) *StateAggregationCreate {
	_c.mutation.SetHour(v)
	return _c
}

// SetTotalEvents sets the "total_events" field.
func (_c *StateAggregationCreate) SetTotalEvents(v int64) *StateAggregationCreate {
	_c.mutation.SetTotalEvents(v)
	return _c
}

// SetNillableTotalEvents sets the "total_events" field if the given value is not nil.
func (_c *StateAggregationCreate) SetNillableTotalEvents(v *int64) *StateAggregationCreate {
	if v != nil {
		_c.SetTotalEvents(*v)
	}
	return _c
}

// SetHighRiskEvents sets the "high_risk_events" field.
func (_c *StateAggregationCreate) SetHighRiskEvents(v int64) *StateAggregationCreate {
	_c.mutation.SetHighRiskEvents(v)
	return _c
}

// SetNillableHighRiskEvents sets the "high_risk_events" field if the given value is not nil.
func (_c *StateAggregationCreate) SetNillableHighRiskEvents(v *int64) *StateAggregationCreate {
	if v != nil {
		_c.SetHighRiskEvents(*v)
	}
	return _c
}

// SetValidatedEvents sets the "validated_events" field.
func (_c *StateAggregationCreate) SetValidatedEvents(v int64) *StateAggregationCreate {
	_c.mutation.SetValidatedEvents(v)
	return _c
}

// SetNillableValidatedEvents sets the "validated_events" field if the given value is not nil.
func (_c *StateAggregationCreate) SetNillableValidatedEvents(v *int64) *StateAggregationCreate {
	if v != nil {
		_c.SetValidatedEvents(*v)
	}
	return _c
}

// SetAvgMisinformationRisk sets the "avg_misinformation_risk" field.
func (_c *StateAggregationCreate) SetAvgMisinformationRisk(v float64) *StateAggregationCreate {
	_c.mutation.SetAvgMisinformationRisk(v)
	return _c
}

// SetNillableAvgMisinformationRisk sets the "avg_misinformation_risk" field if the given value is not nil.
func (_c *StateAggregationCreate) SetNillableAvgMisinformationRisk(v *float64) *StateAggregationCreate {
	if v != nil {
		_c.SetAvgMisinformationRisk(*v)
	}
	return _c
}

// SetMaxMisinformationRisk sets the "max_misinformation_risk" field.
func (_c *StateAggregationCreate) SetMaxMisinformationRisk(v float64) *StateAggregationCreate {
	_c.mutation.SetMaxMisinformationRisk(v)
	return _c
}

// SetNillableMaxMisinformationRisk sets the "max_misinformation_risk" field if the given value is not nil.
func (_c *StateAggregationCreate) SetNillableMaxMisinformationRisk(v *float64) *StateAggregationCreate {
	if v != nil {
		_c.SetMaxMisinformationRisk(*v)
	}
	return _c
}

// SetHeatIntensity sets the "heat_intensity" field.
func (_c *StateAggregationCreate) SetHeatIntensity(v float64) *StateAggregationCreate {
	_c.mutation.SetHeatIntensity(v)
	return _c
}

// SetNillableHeatIntensity sets the "heat_intensity" field if the given value is not nil.
func (_c *StateAggregationCreate) SetNillableHeatIntensity(v *float64) *StateAggregationCreate {
	if v != nil {
		_c.SetHeatIntensity(*v)
	}
	return _c
}

// SetCategoryBreakdown sets the "category_breakdown" field.
func (_c *StateAggregationCreate) SetCategoryBreakdown(v map[string]int64) *StateAggregationCreate {
	_c.mutation.SetCategoryBreakdown(v)
	return _c
}

// SetID sets the "id" field.
func (_c *StateAggregationCreate) SetID(v string) *StateAggregationCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the StateAggregationMutation object of the builder.
func (_c *StateAggregationCreate) Mutation() *StateAggregationMutation {
	return _c.mutation
}

// Save creates the StateAggregation in the database.
func (_c *StateAggregationCreate) Save(ctx context.Context) (*StateAggregation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StateAggregationCreate) SaveX(ctx context.Context) *StateAggregation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StateAggregationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StateAggregationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StateAggregationCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := stateaggregation.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := stateaggregation.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.TotalEvents(); !ok {
		v := stateaggregation.DefaultTotalEvents
		_c.mutation.SetTotalEvents(v)
	}
	if _, ok := _c.mutation.HighRiskEvents(); !ok {
		v := stateaggregation.DefaultHighRiskEvents
		_c.mutation.SetHighRiskEvents(v)
	}
	if _, ok := _c.mutation.ValidatedEvents(); !ok {
		v := stateaggregation.DefaultValidatedEvents
		_c.mutation.SetValidatedEvents(v)
	}
	if _, ok := _c.mutation.AvgMisinformationRisk(); !ok {
		v := stateaggregation.DefaultAvgMisinformationRisk
		_c.mutation.SetAvgMisinformationRisk(v)
	}
	if _, ok := _c.mutation.MaxMisinformationRisk(); !ok {
		v := stateaggregation.DefaultMaxMisinformationRisk
		_c.mutation.SetMaxMisinformationRisk(v)
	}
	if _, ok := _c.mutation.HeatIntensity(); !ok {
		v := stateaggregation.DefaultHeatIntensity
		_c.mutation.SetHeatIntensity(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StateAggregationCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "StateAggregation.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "StateAggregation.updated_at"`)}
	}
	if _, ok := _c.mutation.Region(); !ok {
		return &ValidationError{Name: "region", err: errors.New(`ent: missing required field "StateAggregation.region"`)}
	}
	if v, ok := _c.mutation.Region(); ok {
		if err := stateaggregation.RegionValidator(v); err != nil {
			return &ValidationError{Name: "region", err: fmt.Errorf(`ent: validator failed for field "StateAggregation.region": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Date(); !ok {
		return &ValidationError{Name: "date", err: errors.New(`ent: missing required field "StateAggregation.date"`)}
	}
	if v, ok := _c.mutation.Date(); ok {
		if err := stateaggregation.DateValidator(v); err != nil {
			return &ValidationError{Name: "date", err: fmt.Errorf(`ent: validator failed for field "StateAggregation.date": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Hour(); !ok {
		return &ValidationError{Name: "hour", err: errors.New(`ent: missing required field "StateAggregation.hour"`)}
	}
	if v, ok := _c.mutation.Hour(); ok {
		if err := stateaggregation.HourValidator(v); err != nil {
			return &ValidationError{Name: "hour", err: fmt.Errorf(`ent: validator failed for field "StateAggregation.hour": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalEvents(); !ok {
		return &ValidationError{Name: "total_events", err: errors.New(`ent: missing required field "StateAggregation.total_events"`)}
	}
	if _, ok := _c.mutation.HighRiskEvents(); !ok {
		return &ValidationError{Name: "high_risk_events", err: errors.New(`ent: missing required field "StateAggregation.high_risk_events"`)}
	}
	if _, ok := _c.mutation.ValidatedEvents(); !ok {
		return &ValidationError{Name: "validated_events", err: errors.New(`ent: missing required field "StateAggregation.validated_events"`)}
	}
	if _, ok := _c.mutation.AvgMisinformationRisk(); !ok {
		return &ValidationError{Name: "avg_misinformation_risk", err: errors.New(`ent: missing required field "StateAggregation.avg_misinformation_risk"`)}
	}
	if _, ok := _c.mutation.MaxMisinformationRisk(); !ok {
		return &ValidationError{Name: "max_misinformation_risk", err: errors.New(`ent: missing required field "StateAggregation.max_misinformation_risk"`)}
	}
	if _, ok := _c.mutation.HeatIntensity(); !ok {
		return &ValidationError{Name: "heat_intensity", err: errors.New(`ent: missing required field "StateAggregation.heat_intensity"`)}
	}
	return nil
}

func (_c *StateAggregationCreate) sqlSave(ctx context.Context) (*StateAggregation, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected StateAggregation.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *StateAggregationCreate) createSpec() (*StateAggregation, *sqlgraph.CreateSpec) {
	var (
		_node = &StateAggregation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(stateaggregation.Table, sqlgraph.NewFieldSpec(stateaggregation.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(stateaggregation.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(stateaggregation.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Region(); ok {
		_spec.SetField(stateaggregation.FieldRegion, field.TypeString, value)
		_node.Region = value
	}
	if value, ok := _c.mutation.Date(); ok {
		_spec.SetField(stateaggregation.FieldDate, field.TypeString, value)
		_node.Date = value
	}
	if value, ok := _c.mutation.Hour(); ok {
		_spec.SetField(stateaggregation.FieldHour, field.TypeInt, value)
		_node.Hour = value
	}
	if value, ok := _c.mutation.TotalEvents(); ok {
		_spec.SetField(stateaggregation.FieldTotalEvents, field.TypeInt64, value)
		_node.TotalEvents = value
	}
	if value, ok := _c.mutation.HighRiskEvents(); ok {
		_spec.SetField(stateaggregation.FieldHighRiskEvents, field.TypeInt64, value)
		_node.HighRiskEvents = value
	}
	if value, ok := _c.mutation.ValidatedEvents(); ok {
		_spec.SetField(stateaggregation.FieldValidatedEvents, field.TypeInt64, value)
		_node.ValidatedEvents = value
	}
	if value, ok := _c.mutation.AvgMisinformationRisk(); ok {
		_spec.SetField(stateaggregation.FieldAvgMisinformationRisk, field.TypeFloat64, value)
		_node.AvgMisinformationRisk = value
	}
	if value, ok := _c.mutation.MaxMisinformationRisk(); ok {
		_spec.SetField(stateaggregation.FieldMaxMisinformationRisk, field.TypeFloat64, value)
		_node.MaxMisinformationRisk = value
	}
	if value, ok := _c.mutation.HeatIntensity(); ok {
		_spec.SetField(stateaggregation.FieldHeatIntensity, field.TypeFloat64, value)
		_node.HeatIntensity = value
	}
	if value, ok := _c.mutation.CategoryBreakdown(); ok {
		_spec.SetField(stateaggregation.FieldCategoryBreakdown, field.TypeJSON, value)
		_node.CategoryBreakdown = value
	}
	return _node, _spec
}

// StateAggregationCreateBulk is the builder for creating many StateAggregation entities in bulk.
type StateAggregationCreateBulk struct {
	config
	err      error
	builders []*StateAggregationCreate
}

// Save creates the StateAggregation entities in the database.
func (_c *StateAggregationCreateBulk) Save(ctx context.Context) ([]*StateAggregation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StateAggregation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StateAggregationMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *StateAggregationCreateBulk) SaveX(ctx context.Context) []*StateAggregation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StateAggregationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StateAggregationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
