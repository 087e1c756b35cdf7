// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"heatwatch.io/heatwatch/ent/claim"
)

// ClaimCreate is the builder for creating a Claim entity.
type ClaimCreate struct {
	config
	mutation *ClaimMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *ClaimCreate) SetCreatedAt(v time.Time) *ClaimCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ClaimCreate) SetNillableCreatedAt(v *time.Time) *ClaimCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ClaimCreate) SetUpdatedAt(v time.Time) *ClaimCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ClaimCreate) SetNillableUpdatedAt(v *time.Time) *ClaimCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetFingerprint sets the "fingerprint" field.
func (_c *ClaimCreate) SetFingerprint(v string) *ClaimCreate {
	_c.mutation.SetFingerprint(v)
	return _c
}

// SetFirstSeenAt sets the "first_seen_at" field.
func (_c *ClaimCreate) SetFirstSeenAt(v time.Time) *ClaimCreate {
	_c.mutation.SetFirstSeenAt(v)
	return _c
}

// SetFirstSeenEventID sets the "first_seen_event_id" field.
func (_c *ClaimCreate) SetFirstSeenEventID(v string) *ClaimCreate {
	_c.mutation.SetFirstSeenEventID(v)
	return _c
}

// SetLastSeenAt sets the "last_seen_at" field.
func (_c *ClaimCreate) SetLastSeenAt(v time.Time) *ClaimCreate {
	_c.mutation.SetLastSeenAt(v)
	return _c
}

// SetOccurrenceCount sets the "occurrence_count" field.
func (_c *ClaimCreate) SetOccurrenceCount(v int64) *ClaimCreate {
	_c.mutation.SetOccurrenceCount(v)
	return _c
}

// SetNillableOccurrenceCount sets the "occurrence_count" field if the given value is not nil.
func (_c *ClaimCreate) SetNillableOccurrenceCount(v *int64) *ClaimCreate {
	if v != nil {
		_c.SetOccurrenceCount(*v)
	}
	return _c
}

// SetDistinctLocations sets the "distinct_locations" field.
func (_c *ClaimCreate) SetDistinctLocations(v []string) *ClaimCreate {
	_c.mutation.SetDistinctLocations(v)
	return _c
}

// SetSpreadVelocity sets the "spread_velocity" field.
func (_c *ClaimCreate) SetSpreadVelocity(v float64) *ClaimCreate {
	_c.mutation.SetSpreadVelocity(v)
	return _c
}

// SetNillableSpreadVelocity sets the "spread_velocity" field if the given value is not nil.
func (_c *ClaimCreate) SetNillableSpreadVelocity(v *float64) *ClaimCreate {
	if v != nil {
		_c.SetSpreadVelocity(*v)
	}
	return _c
}

// SetGeographicSpreadScore sets the "geographic_spread_score" field.
func (_c *ClaimCreate) SetGeographicSpreadScore(v float64) *ClaimCreate {
	_c.mutation.SetGeographicSpreadScore(v)
	return _c
}

// SetNillableGeographicSpreadScore sets the "geographic_spread_score" field if the given value is not nil.
func (_c *ClaimCreate) SetNillableGeographicSpreadScore(v *float64) *ClaimCreate {
	if v != nil {
		_c.SetGeographicSpreadScore(*v)
	}
	return _c
}

// SetOverallRiskScore sets the "overall_risk_score" field.
func (_c *ClaimCreate) SetOverallRiskScore(v float64) *ClaimCreate {
	_c.mutation.SetOverallRiskScore(v)
	return _c
}

// SetNillableOverallRiskScore sets the "overall_risk_score" field if the given value is not nil.
func (_c *ClaimCreate) SetNillableOverallRiskScore(v *float64) *ClaimCreate {
	if v != nil {
		_c.SetOverallRiskScore(*v)
	}
	return _c
}

// SetArchivedAt sets the "archived_at" field.
func (_c *ClaimCreate) SetArchivedAt(v time.Time) *ClaimCreate {
	_c.mutation.SetArchivedAt(v)
	return _c
}

// SetNillableArchivedAt sets the "archived_at" field if the given value is not nil.
func (_c *ClaimCreate) SetNillableArchivedAt(v *time.Time) *ClaimCreate {
	if v != nil {
		_c.SetArchivedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ClaimCreate) SetID(v string) *ClaimCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ClaimMutation object of the builder.
func (_c *ClaimCreate) Mutation() *ClaimMutation {
	return _c.mutation
}

// Save creates the Claim in the database.
func (_c *ClaimCreate) Save(ctx context.Context) (*Claim, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ClaimCreate) SaveX(ctx context.Context) *Claim {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClaimCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClaimCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ClaimCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := claim.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := claim.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.OccurrenceCount(); !ok {
		v := claim.DefaultOccurrenceCount
		_c.mutation.SetOccurrenceCount(v)
	}
	if _, ok := _c.mutation.SpreadVelocity(); !ok {
		v := claim.DefaultSpreadVelocity
		_c.mutation.SetSpreadVelocity(v)
	}
	if _, ok := _c.mutation.GeographicSpreadScore(); !ok {
		v := claim.DefaultGeographicSpreadScore
		_c.mutation.SetGeographicSpreadScore(v)
	}
	if _, ok := _c.mutation.OverallRiskScore(); !ok {
		v := claim.DefaultOverallRiskScore
		_c.mutation.SetOverallRiskScore(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ClaimCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Claim.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Claim.updated_at"`)}
	}
	if _, ok := _c.mutation.Fingerprint(); !ok {
		return &ValidationError{Name: "fingerprint", err: errors.New(`ent: missing required field "Claim.fingerprint"`)}
	}
	if v, ok := _c.mutation.Fingerprint(); ok {
		if err := claim.FingerprintValidator(v); err != nil {
			return &ValidationError{Name: "fingerprint", err: fmt.Errorf(`ent: validator failed for field "Claim.fingerprint": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FirstSeenAt(); !ok {
		return &ValidationError{Name: "first_seen_at", err: errors.New(`ent: missing required field "Claim.first_seen_at"`)}
	}
	if _, ok := _c.mutation.FirstSeenEventID(); !ok {
		return &ValidationError{Name: "first_seen_event_id", err: errors.New(`ent: missing required field "Claim.first_seen_event_id"`)}
	}
	if v, ok := _c.mutation.FirstSeenEventID(); ok {
		if err := claim.FirstSeenEventIDValidator(v); err != nil {
			return &ValidationError{Name: "first_seen_event_id", err: fmt.Errorf(`ent: validator failed for field "Claim.first_seen_event_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LastSeenAt(); !ok {
		return &ValidationError{Name: "last_seen_at", err: errors.New(`ent: missing required field "Claim.last_seen_at"`)}
	}
	if _, ok := _c.mutation.OccurrenceCount(); !ok {
		return &ValidationError{Name: "occurrence_count", err: errors.New(`ent: missing required field "Claim.occurrence_count"`)}
	}
	if _, ok := _c.mutation.SpreadVelocity(); !ok {
		return &ValidationError{Name: "spread_velocity", err: errors.New(`ent: missing required field "Claim.spread_velocity"`)}
	}
	if _, ok := _c.mutation.GeographicSpreadScore(); !ok {
		return &ValidationError{Name: "geographic_spread_score", err: errors.New(`ent: missing required field "Claim.geographic_spread_score"`)}
	}
	if _, ok := _c.mutation.OverallRiskScore(); !ok {
		return &ValidationError{Name: "overall_risk_score", err: errors.New(`ent: missing required field "Claim.overall_risk_score"`)}
	}
	return nil
}

func (_c *ClaimCreate) sqlSave(ctx context.Context) (*Claim, error) {
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
			return nil, fmt.Errorf("unexpected Claim.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ClaimCreate) createSpec() (*Claim, *sqlgraph.CreateSpec) {
	var (
		_node = &Claim{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(claim.Table, sqlgraph.NewFieldSpec(claim.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(claim.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(claim.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Fingerprint(); ok {
		_spec.SetField(claim.FieldFingerprint, field.TypeString, value)
		_node.Fingerprint = value
	}
	if value, ok := _c.mutation.FirstSeenAt(); ok {
		_spec.SetField(claim.FieldFirstSeenAt, field.TypeTime, value)
		_node.FirstSeenAt = value
	}
	if value, ok := _c.mutation.FirstSeenEventID(); ok {
		_spec.SetField(claim.FieldFirstSeenEventID, field.TypeString, value)
		_node.FirstSeenEventID = value
	}
	if value, ok := _c.mutation.LastSeenAt(); ok {
		_spec.SetField(claim.FieldLastSeenAt, field.TypeTime, value)
		_node.LastSeenAt = value
	}
	if value, ok := _c.mutation.OccurrenceCount(); ok {
		_spec.SetField(claim.FieldOccurrenceCount, field.TypeInt64, value)
		_node.OccurrenceCount = value
	}
	if value, ok := _c.mutation.DistinctLocations(); ok {
		_spec.SetField(claim.FieldDistinctLocations, field.TypeJSON, value)
		_node.DistinctLocations = value
	}
	if value, ok := _c.mutation.SpreadVelocity(); ok {
		_spec.SetField(claim.FieldSpreadVelocity, field.TypeFloat64, value)
		_node.SpreadVelocity = value
	}
	if value, ok := _c.mutation.GeographicSpreadScore(); ok {
		_spec.SetField(claim.FieldGeographicSpreadScore, field.TypeFloat64, value)
		_node.GeographicSpreadScore = value
	}
	if value, ok := _c.mutation.OverallRiskScore(); ok {
		_spec.SetField(claim.FieldOverallRiskScore, field.TypeFloat64, value)
		_node.OverallRiskScore = value
	}
	if value, ok := _c.mutation.ArchivedAt(); ok {
		_spec.SetField(claim.FieldArchivedAt, field.TypeTime, value)
		_node.ArchivedAt = &value
	}
	return _node, _spec
}

// ClaimCreateBulk is the builder for creating many Claim entities in bulk.
type ClaimCreateBulk struct {
	config
	err      error
	builders []*ClaimCreate
}

// Save creates the Claim entities in the database.
func (_c *ClaimCreateBulk) Save(ctx context.Context) ([]*Claim, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Claim, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ClaimMutation)
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
func (_c *ClaimCreateBulk) SaveX(ctx context.Context) []*Claim {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClaimCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClaimCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
