// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"heatwatch.io/heatwatch/ent/deadletter"
	"heatwatch.io/heatwatch/internal/domain"
)

// DeadLetterCreate is the builder for creating a DeadLetter entity.
type DeadLetterCreate struct {
	config
	mutation *DeadLetterMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *DeadLetterCreate) SetCreatedAt(v time.Time) *DeadLetterCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DeadLetterCreate) SetNillableCreatedAt(v *time.Time) *DeadLetterCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetEventID sets the "event_id" field.
func (_c *DeadLetterCreate) SetEventID(v string) *DeadLetterCreate {
	_c.mutation.SetEventID(v)
	return _c
}

// SetStage sets the "stage" field.
func (_c *DeadLetterCreate) SetStage(v deadletter.Stage) *DeadLetterCreate {
	_c.mutation.SetStage(v)
	return _c
}

// SetReason sets the "reason" field.
func (_c *DeadLetterCreate) SetReason(v string) *DeadLetterCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetMessage sets the "message" field.
func (_c *DeadLetterCreate) SetMessage(v string) *DeadLetterCreate {
	_c.mutation.SetMessage(v)
	return _c
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_c *DeadLetterCreate) SetNillableMessage(v *string) *DeadLetterCreate {
	if v != nil {
		_c.SetMessage(*v)
	}
	return _c
}

// SetAttemptHistory sets the "attempt_history" field.
func (_c *DeadLetterCreate) SetAttemptHistory(v []domain.AttemptRecord) *DeadLetterCreate {
	_c.mutation.SetAttemptHistory(v)
	return _c
}

// SetReplayedAt sets the "replayed_at" field.
func (_c *DeadLetterCreate) SetReplayedAt(v time.Time) *DeadLetterCreate {
	_c.mutation.SetReplayedAt(v)
	return _c
}

// SetNillableReplayedAt sets the "replayed_at" field if the given value is not nil.
func (_c *DeadLetterCreate) SetNillableReplayedAt(v *time.Time) *DeadLetterCreate {
	if v != nil {
		_c.SetReplayedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DeadLetterCreate) SetID(v string) *DeadLetterCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the DeadLetterMutation object of the builder.
func (_c *DeadLetterCreate) Mutation() *DeadLetterMutation {
	return _c.mutation
}

// Save creates the DeadLetter in the database.
func (_c *DeadLetterCreate) Save(ctx context.Context) (*DeadLetter, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DeadLetterCreate) SaveX(ctx context.Context) *DeadLetter {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DeadLetterCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DeadLetterCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DeadLetterCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := deadletter.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DeadLetterCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "DeadLetter.created_at"`)}
	}
	if _, ok := _c.mutation.EventID(); !ok {
		return &ValidationError{Name: "event_id", err: errors.New(`ent: missing required field "DeadLetter.event_id"`)}
	}
	if v, ok := _c.mutation.EventID(); ok {
		if err := deadletter.EventIDValidator(v); err != nil {
			return &ValidationError{Name: "event_id", err: fmt.Errorf(`ent: validator failed for field "DeadLetter.event_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Stage(); !ok {
		return &ValidationError{Name: "stage", err: errors.New(`ent: missing required field "DeadLetter.stage"`)}
	}
	if v, ok := _c.mutation.Stage(); ok {
		if err := deadletter.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "DeadLetter.stage": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Reason(); !ok {
		return &ValidationError{Name: "reason", err: errors.New(`ent: missing required field "DeadLetter.reason"`)}
	}
	if v, ok := _c.mutation.Reason(); ok {
		if err := deadletter.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "DeadLetter.reason": %w`, err)}
		}
	}
	return nil
}

func (_c *DeadLetterCreate) sqlSave(ctx context.Context) (*DeadLetter, error) {
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
			return nil, fmt.Errorf("unexpected DeadLetter.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DeadLetterCreate) createSpec() (*DeadLetter, *sqlgraph.CreateSpec) {
	var (
		_node = &DeadLetter{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(deadletter.Table, sqlgraph.NewFieldSpec(deadletter.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(deadletter.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.EventID(); ok {
		_spec.SetField(deadletter.FieldEventID, field.TypeString, value)
		_node.EventID = value
	}
	if value, ok := _c.mutation.Stage(); ok {
		_spec.SetField(deadletter.FieldStage, field.TypeEnum, value)
		_node.Stage = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(deadletter.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	if value, ok := _c.mutation.Message(); ok {
		_spec.SetField(deadletter.FieldMessage, field.TypeString, value)
		_node.Message = value
	}
	if value, ok := _c.mutation.AttemptHistory(); ok {
		_spec.SetField(deadletter.FieldAttemptHistory, field.TypeJSON, value)
		_node.AttemptHistory = value
	}
	if value, ok := _c.mutation.ReplayedAt(); ok {
		_spec.SetField(deadletter.FieldReplayedAt, field.TypeTime, value)
		_node.ReplayedAt = &value
	}
	return _node, _spec
}

// DeadLetterCreateBulk is the builder for creating many DeadLetter entities in bulk.
type DeadLetterCreateBulk struct {
	config
	err      error
	builders []*DeadLetterCreate
}

// Save creates the DeadLetter entities in the database.
func (_c *DeadLetterCreateBulk) Save(ctx context.Context) ([]*DeadLetter, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DeadLetter, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DeadLetterMutation)
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
func (_c *DeadLetterCreateBulk) SaveX(ctx context.Context) []*DeadLetter {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DeadLetterCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DeadLetterCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
