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
	"heatwatch.io/heatwatch/ent/deadletter"
	"heatwatch.io/heatwatch/ent/predicate"
	"heatwatch.io/heatwatch/internal/domain"
)

// DeadLetterUpdate is the builder for updating DeadLetter entities.
type DeadLetterUpdate struct {
	config
	hooks    []Hook
	mutation *DeadLetterMutation
}

// Where appends a list predicates to the DeadLetterUpdate builder.
func (_u *DeadLetterUpdate) Where(ps ...predicate.DeadLetter) *DeadLetterUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAttemptHistory sets the "attempt_history" field.
func (_u *DeadLetterUpdate) SetAttemptHistory(v []domain.AttemptRecord) *DeadLetterUpdate {
	_u.mutation.SetAttemptHistory(v)
	return _u
}

// AppendAttemptHistory appends value to the "attempt_history" field.
func (_u *DeadLetterUpdate) AppendAttemptHistory(v []domain.AttemptRecord) *DeadLetterUpdate {
	_u.mutation.AppendAttemptHistory(v)
	return _u
}

// ClearAttemptHistory clears the value of the "attempt_history" field.
func (_u *DeadLetterUpdate) ClearAttemptHistory() *DeadLetterUpdate {
	_u.mutation.ClearAttemptHistory()
	return _u
}

// SetReplayedAt sets the "replayed_at" field.
func (_u *DeadLetterUpdate) SetReplayedAt(v time.Time) *DeadLetterUpdate {
	_u.mutation.SetReplayedAt(v)
	return _u
}

// SetNillableReplayedAt sets the "replayed_at" field if the given value is not nil.
func (_u *DeadLetterUpdate) SetNillableReplayedAt(v *time.Time) *DeadLetterUpdate {
	if v != nil {
		_u.SetReplayedAt(*v)
	}
	return _u
}

// ClearReplayedAt clears the value of the "replayed_at" field.
func (_u *DeadLetterUpdate) ClearReplayedAt() *DeadLetterUpdate {
	_u.mutation.ClearReplayedAt()
	return _u
}

// Mutation returns the DeadLetterMutation object of the builder.
func (_u *DeadLetterUpdate) Mutation() *DeadLetterMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DeadLetterUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DeadLetterUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DeadLetterUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DeadLetterUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *DeadLetterUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(deadletter.Table, deadletter.Columns, sqlgraph.NewFieldSpec(deadletter.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.MessageCleared() {
		_spec.ClearField(deadletter.FieldMessage, field.TypeString)
	}
	if value, ok := _u.mutation.AttemptHistory(); ok {
		_spec.SetField(deadletter.FieldAttemptHistory, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAttemptHistory(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, deadletter.FieldAttemptHistory, value)
		})
	}
	if _u.mutation.AttemptHistoryCleared() {
		_spec.ClearField(deadletter.FieldAttemptHistory, field.TypeJSON)
	}
	if value, ok := _u.mutation.ReplayedAt(); ok {
		_spec.SetField(deadletter.FieldReplayedAt, field.TypeTime, value)
	}
	if _u.mutation.ReplayedAtCleared() {
		_spec.ClearField(deadletter.FieldReplayedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{deadletter.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DeadLetterUpdateOne is the builder for updating a single DeadLetter entity.
type DeadLetterUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DeadLetterMutation
}

// SetAttemptHistory sets the "attempt_history" field.
func (_u *DeadLetterUpdateOne) SetAttemptHistory(v []domain.AttemptRecord) *DeadLetterUpdateOne {
	_u.mutation.SetAttemptHistory(v)
	return _u
}

// AppendAttemptHistory appends value to the "attempt_history" field.
func (_u *DeadLetterUpdateOne) AppendAttemptHistory(v []domain.AttemptRecord) *DeadLetterUpdateOne {
	_u.mutation.AppendAttemptHistory(v)
	return _u
}

// ClearAttemptHistory clears the value of the "attempt_history" field.
func (_u *DeadLetterUpdateOne) ClearAttemptHistory() *DeadLetterUpdateOne {
	_u.mutation.ClearAttemptHistory()
	return _u
}

// SetReplayedAt sets the "replayed_at" field.
func (_u *DeadLetterUpdateOne) SetReplayedAt(v time.Time) *DeadLetterUpdateOne {
	_u.mutation.SetReplayedAt(v)
	return _u
}

// SetNillableReplayedAt sets the "replayed_at" field if the given value is not nil.
func (_u *DeadLetterUpdateOne) SetNillableReplayedAt(v *time.Time) *DeadLetterUpdateOne {
	if v != nil {
		_u.SetReplayedAt(*v)
	}
	return _u
}

// ClearReplayedAt clears the value of the "replayed_at" field.
func (_u *DeadLetterUpdateOne) ClearReplayedAt() *DeadLetterUpdateOne {
	_u.mutation.ClearReplayedAt()
	return _u
}

// Mutation returns the DeadLetterMutation object of the builder.
func (_u *DeadLetterUpdateOne) Mutation() *DeadLetterMutation {
	return _u.mutation
}

// Where appends a list predicates to the DeadLetterUpdate builder.
func (_u *DeadLetterUpdateOne) Where(ps ...predicate.DeadLetter) *DeadLetterUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DeadLetterUpdateOne) Select(field string, fields ...string) *DeadLetterUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DeadLetter entity.
func (_u *DeadLetterUpdateOne) Save(ctx context.Context) (*DeadLetter, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DeadLetterUpdateOne) SaveX(ctx context.Context) *DeadLetter {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DeadLetterUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DeadLetterUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *DeadLetterUpdateOne) sqlSave(ctx context.Context) (_node *DeadLetter, err error) {
	_spec := sqlgraph.NewUpdateSpec(deadletter.Table, deadletter.Columns, sqlgraph.NewFieldSpec(deadletter.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DeadLetter.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, deadletter.FieldID)
		for _, f := range fields {
			if !deadletter.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != deadletter.FieldID {
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
	if _u.mutation.MessageCleared() {
		_spec.ClearField(deadletter.FieldMessage, field.TypeString)
	}
	if value, ok := _u.mutation.AttemptHistory(); ok {
		_spec.SetField(deadletter.FieldAttemptHistory, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAttemptHistory(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, deadletter.FieldAttemptHistory, value)
		})
	}
	if _u.mutation.AttemptHistoryCleared() {
		_spec.ClearField(deadletter.FieldAttemptHistory, field.TypeJSON)
	}
	if value, ok := _u.mutation.ReplayedAt(); ok {
		_spec.SetField(deadletter.FieldReplayedAt, field.TypeTime, value)
	}
	if _u.mutation.ReplayedAtCleared() {
		_spec.ClearField(deadletter.FieldReplayedAt, field.TypeTime)
	}
	_node = &DeadLetter{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{deadletter.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
