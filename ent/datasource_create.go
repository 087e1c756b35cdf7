// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"heatwatch.io/heatwatch/ent/datasource"
)

// DataSourceCreate is the builder for creating a DataSource entity.
type DataSourceCreate struct {
	config
	mutation *DataSourceMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *DataSourceCreate) SetCreatedAt(v time.Time) *DataSourceCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DataSourceCreate) SetNillableCreatedAt(v *time.Time) *DataSourceCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DataSourceCreate) SetUpdatedAt(v time.Time) *DataSourceCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DataSourceCreate) SetNillableUpdatedAt(v *time.Time) *DataSourceCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *DataSourceCreate) SetName(v string) *DataSourceCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetSourceType sets the "source_type" field.
func (_c *DataSourceCreate) SetSourceType(v datasource.SourceType) *DataSourceCreate {
	_c.mutation.SetSourceType(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *DataSourceCreate) SetStatus(v datasource.Status) *DataSourceCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *DataSourceCreate) SetNillableStatus(v *datasource.Status) *DataSourceCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetEndpoint sets the "endpoint" field.
func (_c *DataSourceCreate) SetEndpoint(v string) *DataSourceCreate {
	_c.mutation.SetEndpoint(v)
	return _c
}

// SetNillableEndpoint sets the "endpoint" field if the given value is not nil.
func (_c *DataSourceCreate) SetNillableEndpoint(v *string) *DataSourceCreate {
	if v != nil {
		_c.SetEndpoint(*v)
	}
	return _c
}

// SetFetchCount sets the "fetch_count" field.
func (_c *DataSourceCreate) SetFetchCount(v int64) *DataSourceCreate {
	_c.mutation.SetFetchCount(v)
	return _c
}

// SetNillableFetchCount sets the "fetch_count" field if the given value is not nil.
func (_c *DataSourceCreate) SetNillableFetchCount(v *int64) *DataSourceCreate {
	if v != nil {
		_c.SetFetchCount(*v)
	}
	return _c
}

// SetErrorCount sets the "error_count" field.
func (_c *DataSourceCreate) SetErrorCount(v int64) *DataSourceCreate {
	_c.mutation.SetErrorCount(v)
	return _c
}

// SetNillableErrorCount sets the "error_count" field if the given value is not nil.
func (_c *DataSourceCreate) SetNillableErrorCount(v *int64) *DataSourceCreate {
	if v != nil {
		_c.SetErrorCount(*v)
	}
	return _c
}

// SetConsecutiveErrors sets the "consecutive_errors" field.
func (_c *DataSourceCreate) SetConsecutiveErrors(v int) *DataSourceCreate {
	_c.mutation.SetConsecutiveErrors(v)
	return _c
}

// SetNillableConsecutiveErrors sets the "consecutive_errors" field if the given value is not nil.
func (_c *DataSourceCreate) SetNillableConsecutiveErrors(v *int) *DataSourceCreate {
	if v != nil {
		_c.SetConsecutiveErrors(*v)
	}
	return _c
}

// SetLastSuccessAt sets the "last_success_at" field.
func (_c *DataSourceCreate) SetLastSuccessAt(v time.Time) *DataSourceCreate {
	_c.mutation.SetLastSuccessAt(v)
	return _c
}

// SetNillableLastSuccessAt sets the "last_success_at" field if the given value is not nil.
func (_c *DataSourceCreate) SetNillableLastSuccessAt(v *time.Time) *DataSourceCreate {
	if v != nil {
		_c.SetLastSuccessAt(*v)
	}
	return _c
}

// SetLastError sets the "last_error" field.
func (_c *DataSourceCreate) SetLastError(v string) *DataSourceCreate {
	_c.mutation.SetLastError(v)
	return _c
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_c *DataSourceCreate) SetNillableLastError(v *string) *DataSourceCreate {
	if v != nil {
		_c.SetLastError(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DataSourceCreate) SetID(v string) *DataSourceCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the DataSourceMutation object of the builder.
func (_c *DataSourceCreate) Mutation() *DataSourceMutation {
	return _c.mutation
}

// Save creates the DataSource in the database.
func (_c *DataSourceCreate) Save(ctx context.Context) (*DataSource, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DataSourceCreate) SaveX(ctx context.Context) *DataSource {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DataSourceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DataSourceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DataSourceCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := datasource.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := datasource.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := datasource.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.FetchCount(); !ok {
		v := datasource.DefaultFetchCount
		_c.mutation.SetFetchCount(v)
	}
	if _, ok := _c.mutation.ErrorCount(); !ok {
		v := datasource.DefaultErrorCount
		_c.mutation.SetErrorCount(v)
	}
	if _, ok := _c.mutation.ConsecutiveErrors(); !ok {
		v := datasource.DefaultConsecutiveErrors
		_c.mutation.SetConsecutiveErrors(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DataSourceCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "DataSource.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "DataSource.updated_at"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "DataSource.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := datasource.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "DataSource.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SourceType(); !ok {
		return &ValidationError{Name: "source_type", err: errors.New(`ent: missing required field "DataSource.source_type"`)}
	}
	if v, ok := _c.mutation.SourceType(); ok {
		if err := datasource.SourceTypeValidator(v); err != nil {
			return &ValidationError{Name: "source_type", err: fmt.Errorf(`ent: validator failed for field "DataSource.source_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "DataSource.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := datasource.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DataSource.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FetchCount(); !ok {
		return &ValidationError{Name: "fetch_count", err: errors.New(`ent: missing required field "DataSource.fetch_count"`)}
	}
	if _, ok := _c.mutation.ErrorCount(); !ok {
		return &ValidationError{Name: "error_count", err: errors.New(`ent: missing required field "DataSource.error_count"`)}
	}
	if _, ok := _c.mutation.ConsecutiveErrors(); !ok {
		return &ValidationError{Name: "consecutive_errors", err: errors.New(`ent: missing required field "DataSource.consecutive_errors"`)}
	}
	return nil
}

func (_c *DataSourceCreate) sqlSave(ctx context.Context) (*DataSource, error) {
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
			return nil, fmt.Errorf("unexpected DataSource.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DataSourceCreate) createSpec() (*DataSource, *sqlgraph.CreateSpec) {
	var (
		_node = &DataSource{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(datasource.Table, sqlgraph.NewFieldSpec(datasource.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(datasource.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(datasource.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(datasource.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.SourceType(); ok {
		_spec.SetField(datasource.FieldSourceType, field.TypeEnum, value)
		_node.SourceType = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(datasource.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Endpoint(); ok {
		_spec.SetField(datasource.FieldEndpoint, field.TypeString, value)
		_node.Endpoint = value
	}
	if value, ok := _c.mutation.FetchCount(); ok {
		_spec.SetField(datasource.FieldFetchCount, field.TypeInt64, value)
		_node.FetchCount = value
	}
	if value, ok := _c.mutation.ErrorCount(); ok {
		_spec.SetField(datasource.FieldErrorCount, field.TypeInt64, value)
		_node.ErrorCount = value
	}
	if value, ok := _c.mutation.ConsecutiveErrors(); ok {
		_spec.SetField(datasource.FieldConsecutiveErrors, field.TypeInt, value)
		_node.ConsecutiveErrors = value
	}
	if value, ok := _c.mutation.LastSuccessAt(); ok {
		_spec.SetField(datasource.FieldLastSuccessAt, field.TypeTime, value)
		_node.LastSuccessAt = &value
	}
	if value, ok := _c.mutation.LastError(); ok {
		_spec.SetField(datasource.FieldLastError, field.TypeString, value)
		_node.LastError = value
	}
	return _node, _spec
}

// DataSourceCreateBulk is the builder for creating many DataSource entities in bulk.
type DataSourceCreateBulk struct {
	config
	err      error
	builders []*DataSourceCreate
}

// Save creates the DataSource entities in the database.
func (_c *DataSourceCreateBulk) Save(ctx context.Context) ([]*DataSource, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DataSource, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DataSourceMutation)
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
func (_c *DataSourceCreateBulk) SaveX(ctx context.Context) []*DataSource {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DataSourceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DataSourceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
