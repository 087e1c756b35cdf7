// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"heatwatch.io/heatwatch/ent/event"
	"heatwatch.io/heatwatch/internal/domain"
)

// EventCreate is the builder for creating a Event entity.
type EventCreate struct {
	config
	mutation *EventMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *EventCreate) SetCreatedAt(v time.Time) *EventCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EventCreate) SetNillableCreatedAt(v *time.Time) *EventCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *EventCreate) SetUpdatedAt(v time.Time) *EventCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *EventCreate) SetNillableUpdatedAt(v *time.Time) *EventCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetSourceID sets the "source_id" field.
func (_c *EventCreate) SetSourceID(v string) *EventCreate {
	_c.mutation.SetSourceID(v)
	return _c
}

// SetSourceType sets the "source_type" field.
func (_c *EventCreate) SetSourceType(v event.SourceType) *EventCreate {
	_c.mutation.SetSourceType(v)
	return _c
}

// SetRawContent sets the "raw_content" field.
func (_c *EventCreate) SetRawContent(v string) *EventCreate {
	_c.mutation.SetRawContent(v)
	return _c
}

// SetNormalizedContent sets the "normalized_content" field.
func (_c *EventCreate) SetNormalizedContent(v string) *EventCreate {
	_c.mutation.SetNormalizedContent(v)
	return _c
}

// SetRawHash sets the "raw_hash" field.
func (_c *EventCreate) SetRawHash(v string) *EventCreate {
	_c.mutation.SetRawHash(v)
	return _c
}

// SetURL sets the "url" field.
func (_c *EventCreate) SetURL(v string) *EventCreate {
	_c.mutation.SetURL(v)
	return _c
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_c *EventCreate) SetNillableURL(v *string) *EventCreate {
	if v != nil {
		_c.SetURL(*v)
	}
	return _c
}

// SetObservedAt sets the "observed_at" field.
func (_c *EventCreate) SetObservedAt(v time.Time) *EventCreate {
	_c.mutation.SetObservedAt(v)
	return _c
}

// SetIngestedAt sets the "ingested_at" field.
func (_c *EventCreate) SetIngestedAt(v time.Time) *EventCreate {
	_c.mutation.SetIngestedAt(v)
	return _c
}

// SetLocationHint sets the "location_hint" field.
func (_c *EventCreate) SetLocationHint(v *domain.LocationHint) *EventCreate {
	_c.mutation.SetLocationHint(v)
	return _c
}

// SetNlpResult sets the "nlp_result" field.
func (_c *EventCreate) SetNlpResult(v *domain.NLPResult) *EventCreate {
	_c.mutation.SetNlpResult(v)
	return _c
}

// SetSatelliteResult sets the "satellite_result" field.
func (_c *EventCreate) SetSatelliteResult(v *domain.SatelliteResult) *EventCreate {
	_c.mutation.SetSatelliteResult(v)
	return _c
}

// SetFusedRisk sets the "fused_risk" field.
func (_c *EventCreate) SetFusedRisk(v float64) *EventCreate {
	_c.mutation.SetFusedRisk(v)
	return _c
}

// SetNillableFusedRisk sets the "fused_risk" field if the given value is not nil.
func (_c *EventCreate) SetNillableFusedRisk(v *float64) *EventCreate {
	if v != nil {
		_c.SetFusedRisk(*v)
	}
	return _c
}

// SetClaimID sets the "claim_id" field.
func (_c *EventCreate) SetClaimID(v string) *EventCreate {
	_c.mutation.SetClaimID(v)
	return _c
}

// SetNillableClaimID sets the "claim_id" field if the given value is not nil.
func (_c *EventCreate) SetNillableClaimID(v *string) *EventCreate {
	if v != nil {
		_c.SetClaimID(*v)
	}
	return _c
}

// SetState sets the "state" field.
func (_c *EventCreate) SetState(v event.State) *EventCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *EventCreate) SetNillableState(v *event.State) *EventCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetAttemptCounts sets the "attempt_counts" field.
func (_c *EventCreate) SetAttemptCounts(v map[string]int) *EventCreate {
	_c.mutation.SetAttemptCounts(v)
	return _c
}

// SetFailureReason sets the "failure_reason" field.
func (_c *EventCreate) SetFailureReason(v string) *EventCreate {
	_c.mutation.SetFailureReason(v)
	return _c
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_c *EventCreate) SetNillableFailureReason(v *string) *EventCreate {
	if v != nil {
		_c.SetFailureReason(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EventCreate) SetID(v string) *EventCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the EventMutation object of the builder.
func (_c *EventCreate) Mutation() *EventMutation {
	return _c.mutation
}

// Save creates the Event in the database.
func (_c *EventCreate) Save(ctx context.Context) (*Event, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EventCreate) SaveX(ctx context.Context) *Event {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EventCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := event.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := event.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.FusedRisk(); !ok {
		v := event.DefaultFusedRisk
		_c.mutation.SetFusedRisk(v)
	}
	if _, ok := _c.mutation.State(); !ok {
		v := event.DefaultState
		_c.mutation.SetState(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EventCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Event.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Event.updated_at"`)}
	}
	if _, ok := _c.mutation.SourceID(); !ok {
		return &ValidationError{Name: "source_id", err: errors.New(`ent: missing required field "Event.source_id"`)}
	}
	if v, ok := _c.mutation.SourceID(); ok {
		if err := event.SourceIDValidator(v); err != nil {
			return &ValidationError{Name: "source_id", err: fmt.Errorf(`ent: validator failed for field "Event.source_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SourceType(); !ok {
		return &ValidationError{Name: "source_type", err: errors.New(`ent: missing required field "Event.source_type"`)}
	}
	if v, ok := _c.mutation.SourceType(); ok {
		if err := event.SourceTypeValidator(v); err != nil {
			return &ValidationError{Name: "source_type", err: fmt.Errorf(`ent: validator failed for field "Event.source_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RawContent(); !ok {
		return &ValidationError{Name: "raw_content", err: errors.New(`ent: missing required field "Event.raw_content"`)}
	}
	if _, ok := _c.mutation.NormalizedContent(); !ok {
		return &ValidationError{Name: "normalized_content", err: errors.New(`ent: missing required field "Event.normalized_content"`)}
	}
	if _, ok := _c.mutation.RawHash(); !ok {
		return &ValidationError{Name: "raw_hash", err: errors.New(`ent: missing required field "Event.raw_hash"`)}
	}
	if v, ok := _c.mutation.RawHash(); ok {
		if err := event.RawHashValidator(v); err != nil {
			return &ValidationError{Name: "raw_hash", err: fmt.Errorf(`ent: validator failed for field "Event.raw_hash": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ObservedAt(); !ok {
		return &ValidationError{Name: "observed_at", err: errors.New(`ent: missing required field "Event.observed_at"`)}
	}
	if _, ok := _c.mutation.IngestedAt(); !ok {
		return &ValidationError{Name: "ingested_at", err: errors.New(`ent: missing required field "Event.ingested_at"`)}
	}
	if _, ok := _c.mutation.FusedRisk(); !ok {
		return &ValidationError{Name: "fused_risk", err: errors.New(`ent: missing required field "Event.fused_risk"`)}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "Event.state"`)}
	}
	if v, ok := _c.mutation.State(); ok {
		if err := event.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Event.state": %w`, err)}
		}
	}
	return nil
}

func (_c *EventCreate) sqlSave(ctx context.Context) (*Event, error) {
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
			return nil, fmt.Errorf("unexpected Event.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EventCreate) createSpec() (*Event, *sqlgraph.CreateSpec) {
	var (
		_node = &Event{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(event.Table, sqlgraph.NewFieldSpec(event.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(event.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(event.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.SourceID(); ok {
		_spec.SetField(event.FieldSourceID, field.TypeString, value)
		_node.SourceID = value
	}
	if value, ok := _c.mutation.SourceType(); ok {
		_spec.SetField(event.FieldSourceType, field.TypeEnum, value)
		_node.SourceType = value
	}
	if value, ok := _c.mutation.RawContent(); ok {
		_spec.SetField(event.FieldRawContent, field.TypeString, value)
		_node.RawContent = value
	}
	if value, ok := _c.mutation.NormalizedContent(); ok {
		_spec.SetField(event.FieldNormalizedContent, field.TypeString, value)
		_node.NormalizedContent = value
	}
	if value, ok := _c.mutation.RawHash(); ok {
		_spec.SetField(event.FieldRawHash, field.TypeString, value)
		_node.RawHash = value
	}
	if value, ok := _c.mutation.URL(); ok {
		_spec.SetField(event.FieldURL, field.TypeString, value)
		_node.URL = value
	}
	if value, ok := _c.mutation.ObservedAt(); ok {
		_spec.SetField(event.FieldObservedAt, field.TypeTime, value)
		_node.ObservedAt = value
	}
	if value, ok := _c.mutation.IngestedAt(); ok {
		_spec.SetField(event.FieldIngestedAt, field.TypeTime, value)
		_node.IngestedAt = value
	}
	if value, ok := _c.mutation.LocationHint(); ok {
		_spec.SetField(event.FieldLocationHint, field.TypeJSON, value)
		_node.LocationHint = value
	}
	if value, ok := _c.mutation.NlpResult(); ok {
		_spec.SetField(event.FieldNlpResult, field.TypeJSON, value)
		_node.NlpResult = value
	}
	if value, ok := _c.mutation.SatelliteResult(); ok {
		_spec.SetField(event.FieldSatelliteResult, field.TypeJSON, value)
		_node.SatelliteResult = value
	}
	if value, ok := _c.mutation.FusedRisk(); ok {
		_spec.SetField(event.FieldFusedRisk, field.TypeFloat64, value)
		_node.FusedRisk = value
	}
	if value, ok := _c.mutation.ClaimID(); ok {
		_spec.SetField(event.FieldClaimID, field.TypeString, value)
		_node.ClaimID = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(event.FieldState, field.TypeEnum, value)
		_node.State = value
	}
	if value, ok := _c.mutation.AttemptCounts(); ok {
		_spec.SetField(event.FieldAttemptCounts, field.TypeJSON, value)
		_node.AttemptCounts = value
	}
	if value, ok := _c.mutation.FailureReason(); ok {
		_spec.SetField(event.FieldFailureReason, field.TypeString, value)
		_node.FailureReason = value
	}
	return _node, _spec
}

// EventCreateBulk is the builder for creating many Event entities in bulk.
type EventCreateBulk struct {
	config
	err      error
	builders []*EventCreate
}

// Save creates the Event entities in the database.
func (_c *EventCreateBulk) Save(ctx context.Context) ([]*Event, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Event, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EventMutation)
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
func (_c *EventCreateBulk) SaveX(ctx context.Context) []*Event {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
