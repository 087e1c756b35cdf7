// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"heatwatch.io/heatwatch/ent/predicate"
	"heatwatch.io/heatwatch/ent/stateaggregation"
)

// StateAggregationDelete is the builder for deleting a StateAggregation entity.
type StateAggregationDelete struct {
	config
	hooks    []Hook
	mutation *StateAggregationMutation
}

// Where appends a list predicates to the StateAggregationDelete builder.
func (_d *StateAggregationDelete) Where(ps ...predicate.StateAggregation) *StateAggregationDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *StateAggregationDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *StateAggregationDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *StateAggregationDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(stateaggregation.Table, sqlgraph.NewFieldSpec(stateaggregation.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// StateAggregationDeleteOne is the builder for deleting a single StateAggregation entity.
type StateAggregationDeleteOne struct {
	_d *StateAggregationDelete
}

// Where appends a list predicates to the StateAggregationDelete builder.
func (_d *StateAggregationDeleteOne) Where(ps ...predicate.StateAggregation) *StateAggregationDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *StateAggregationDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{stateaggregation.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *StateAggregationDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
