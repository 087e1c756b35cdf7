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
	"heatwatch.io/heatwatch/ent/datasource"
	"heatwatch.io/heatwatch/ent/predicate"
)

// DataSourceUpdate is the builder for updating DataSource entities.
type DataSourceUpdate struct {
	config
	hooks    []Hook
	mutation *DataSourceMutation
}

// Where appends a list predicates to the DataSourceUpdate builder.
func (_u *DataSourceUpdate) Where(ps ...predicate.DataSource) *DataSourceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DataSourceUpdate) SetUpdatedAt(v time.Time) *DataSourceUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *DataSourceUpdate) SetName(v string) *DataSourceUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *DataSourceUpdate) SetNillableName(v *string) *DataSourceUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSourceType sets the "source_type" field.
func (_u *DataSourceUpdate) SetSourceType(v datasource.SourceType) *DataSourceUpdate {
	_u.mutation.SetSourceType(v)
	return _u
}

// SetNillableSourceType sets the "source_type" field if the given value is not nil.
func (_u *DataSourceUpdate) SetNillableSourceType(v *datasource.SourceType) *DataSourceUpdate {
	if v != nil {
		_u.SetSourceType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *DataSourceUpdate) SetStatus(v datasource.Status) *DataSourceUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DataSourceUpdate) SetNillableStatus(v *datasource.Status) *DataSourceUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetEndpoint sets the "endpoint" field.
func (_u *DataSourceUpdate) SetEndpoint(v string) *DataSourceUpdate {
	_u.mutation.SetEndpoint(v)
	return _u
}

// SetNillableEndpoint sets the "endpoint" field if the given value is not nil.
func (_u *DataSourceUpdate) SetNillableEndpoint(v *string) *DataSourceUpdate {
	if v != nil {
		_u.SetEndpoint(*v)
	}
	return _u
}

// ClearEndpoint clears the value of the "endpoint" field.
func (_u *DataSourceUpdate) ClearEndpoint() *DataSourceUpdate {
	_u.mutation.ClearEndpoint()
	return _u
}

// SetFetchCount sets the "fetch_count" field.
func (_u *DataSourceUpdate) SetFetchCount(v int64) *DataSourceUpdate {
	_u.mutation.ResetFetchCount()
	_u.mutation.SetFetchCount(v)
	return _u
}

// SetNillableFetchCount sets the "fetch_count" field if the given value is not nil.
func (_u *DataSourceUpdate) SetNillableFetchCount(v *int64) *DataSourceUpdate {
	if v != nil {
		_u.SetFetchCount(*v)
	}
	return _u
}

// AddFetchCount adds value to the "fetch_count" field.
func (_u *DataSourceUpdate) AddFetchCount(v int64) *DataSourceUpdate {
	_u.mutation.AddFetchCount(v)
	return _u
}

// SetErrorCount sets the "error_count" field.
func (_u *DataSourceUpdate) SetErrorCount(v int64) *DataSourceUpdate {
	_u.mutation.ResetErrorCount()
	_u.mutation.SetErrorCount(v)
	return _u
}

// SetNillableErrorCount sets the "error_count" field if the given value is not nil.
func (_u *DataSourceUpdate) SetNillableErrorCount(v *int64) *DataSourceUpdate {
	if v != nil {
		_u.SetErrorCount(*v)
	}
	return _u
}

// AddErrorCount adds value to the "error_count" field.
func (_u *DataSourceUpdate) AddErrorCount(v int64) *DataSourceUpdate {
	_u.mutation.AddErrorCount(v)
	return _u
}

// SetConsecutiveErrors sets the "consecutive_errors" field.
func (_u *DataSourceUpdate) SetConsecutiveErrors(v int) *DataSourceUpdate {
	_u.mutation.ResetConsecutiveErrors()
	_u.mutation.SetConsecutiveErrors(v)
	return _u
}

// SetNillableConsecutiveErrors sets the "consecutive_errors" field if the given value is not nil.
func (_u *DataSourceUpdate) SetNillableConsecutiveErrors(v *int) *DataSourceUpdate {
	if v != nil {
		_u.SetConsecutiveErrors(*v)
	}
	return _u
}

// AddConsecutiveErrors adds value to the "consecutive_errors" field.
func (_u *DataSourceUpdate) AddConsecutiveErrors(v int) *DataSourceUpdate {
	_u.mutation.AddConsecutiveErrors(v)
	return _u
}

// SetLastSuccessAt sets the "last_success_at" field.
func (_u *DataSourceUpdate) SetLastSuccessAt(v time.Time) *DataSourceUpdate {
	_u.mutation.SetLastSuccessAt(v)
	return _u
}

// SetNillableLastSuccessAt sets the "last_success_at" field if the given value is not nil.
func (_u *DataSourceUpdate) SetNillableLastSuccessAt(v *time.Time) *DataSourceUpdate {
	if v != nil {
		_u.SetLastSuccessAt(*v)
	}
	return _u
}

// ClearLastSuccessAt clears the value of the "last_success_at" field.
func (_u *DataSourceUpdate) ClearLastSuccessAt() *DataSourceUpdate {
	_u.mutation.ClearLastSuccessAt()
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *DataSourceUpdate) SetLastError(v string) *DataSourceUpdate {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *DataSourceUpdate) SetNillableLastError(v *string) *DataSourceUpdate {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *DataSourceUpdate) ClearLastError() *DataSourceUpdate {
	_u.mutation.ClearLastError()
	return _u
}

// Mutation returns the DataSourceMutation object of the builder.
func (_u *DataSourceUpdate) Mutation() *DataSourceMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DataSourceUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DataSourceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DataSourceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DataSourceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DataSourceUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := datasource.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DataSourceUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := datasource.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "DataSource.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceType(); ok {
		if err := datasource.SourceTypeValidator(v); err != nil {
			return &ValidationError{Name: "source_type", err: fmt.Errorf(`ent: validator failed for field "DataSource.source_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := datasource.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DataSource.status": %w`, err)}
		}
	}
	return nil
}

func (_u *DataSourceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(datasource.Table, datasource.Columns, sqlgraph.NewFieldSpec(datasource.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(datasource.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(datasource.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceType(); ok {
		_spec.SetField(datasource.FieldSourceType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(datasource.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Endpoint(); ok {
		_spec.SetField(datasource.FieldEndpoint, field.TypeString, value)
	}
	if _u.mutation.EndpointCleared() {
		_spec.ClearField(datasource.FieldEndpoint, field.TypeString)
	}
	if value, ok := _u.mutation.FetchCount(); ok {
		_spec.SetField(datasource.FieldFetchCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFetchCount(); ok {
		_spec.AddField(datasource.FieldFetchCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ErrorCount(); ok {
		_spec.SetField(datasource.FieldErrorCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedErrorCount(); ok {
		_spec.AddField(datasource.FieldErrorCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ConsecutiveErrors(); ok {
		_spec.SetField(datasource.FieldConsecutiveErrors, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConsecutiveErrors(); ok {
		_spec.AddField(datasource.FieldConsecutiveErrors, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastSuccessAt(); ok {
		_spec.SetField(datasource.FieldLastSuccessAt, field.TypeTime, value)
	}
	if _u.mutation.LastSuccessAtCleared() {
		_spec.ClearField(datasource.FieldLastSuccessAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(datasource.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(datasource.FieldLastError, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{datasource.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DataSourceUpdateOne is the builder for updating a single DataSource entity.
type DataSourceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DataSourceMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DataSourceUpdateOne) SetUpdatedAt(v time.Time) *DataSourceUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *DataSourceUpdateOne) SetName(v string) *DataSourceUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *DataSourceUpdateOne) SetNillableName(v *string) *DataSourceUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSourceType sets the "source_type" field.
func (_u *DataSourceUpdateOne) SetSourceType(v datasource.SourceType) *DataSourceUpdateOne {
	_u.mutation.SetSourceType(v)
	return _u
}

// SetNillableSourceType sets the "source_type" field if the given value is not nil.
func (_u *DataSourceUpdateOne) SetNillableSourceType(v *datasource.SourceType) *DataSourceUpdateOne {
	if v != nil {
		_u.SetSourceType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *DataSourceUpdateOne) SetStatus(v datasource.Status) *DataSourceUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DataSourceUpdateOne) SetNillableStatus(v *datasource.Status) *DataSourceUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetEndpoint sets the "endpoint" field.
func (_u *DataSourceUpdateOne) SetEndpoint(v string) *DataSourceUpdateOne {
	_u.mutation.SetEndpoint(v)
	return _u
}

// SetNillableEndpoint sets the "endpoint" field if the given value is not nil.
func (_u *DataSourceUpdateOne) SetNillableEndpoint(v *string) *DataSourceUpdateOne {
	if v != nil {
		_u.SetEndpoint(*v)
	}
	return _u
}

// ClearEndpoint clears the value of the "endpoint" field.
func (_u *DataSourceUpdateOne) ClearEndpoint() *DataSourceUpdateOne {
	_u.mutation.ClearEndpoint()
	return _u
}

// SetFetchCount sets the "fetch_count" field.
func (_u *DataSourceUpdateOne) SetFetchCount(v int64) *DataSourceUpdateOne {
	_u.mutation.ResetFetchCount()
	_u.mutation.SetFetchCount(v)
	return _u
}

// SetNillableFetchCount sets the "fetch_count" field if the given value is not nil.
func (_u *DataSourceUpdateOne) SetNillableFetchCount(v *int64) *DataSourceUpdateOne {
	if v != nil {
		_u.SetFetchCount(*v)
	}
	return _u
}

// AddFetchCount adds value to the "fetch_count" field.
func (_u *DataSourceUpdateOne) AddFetchCount(v int64) *DataSourceUpdateOne {
	_u.mutation.AddFetchCount(v)
	return _u
}

// SetErrorCount sets the "error_count" field.
func (_u *DataSourceUpdateOne) SetErrorCount(v int64) *DataSourceUpdateOne {
	_u.mutation.ResetErrorCount()
	_u.mutation.SetErrorCount(v)
	return _u
}

// SetNillableErrorCount sets the "error_count" field if the given value is not nil.
func (_u *DataSourceUpdateOne) SetNillableErrorCount(v *int64) *DataSourceUpdateOne {
	if v != nil {
		_u.SetErrorCount(*v)
	}
	return _u
}

// AddErrorCount adds value to the "error_count" field.
func (_u *DataSourceUpdateOne) AddErrorCount(v int64) *DataSourceUpdateOne {
	_u.mutation.AddErrorCount(v)
	return _u
}

// SetConsecutiveErrors sets the "consecutive_errors" field.
func (_u *DataSourceUpdateOne) SetConsecutiveErrors(v int) *DataSourceUpdateOne {
	_u.mutation.ResetConsecutiveErrors()
	_u.mutation.SetConsecutiveErrors(v)
	return _u
}

// SetNillableConsecutiveErrors sets the "consecutive_errors" field if the given value is not nil.
func (_u *DataSourceUpdateOne) SetNillableConsecutiveErrors(v *int) *DataSourceUpdateOne {
	if v != nil {
		_u.SetConsecutiveErrors(*v)
	}
	return _u
}

// AddConsecutiveErrors adds value to the "consecutive_errors" field.
func (_u *DataSourceUpdateOne) AddConsecutiveErrors(v int) *DataSourceUpdateOne {
	_u.mutation.AddConsecutiveErrors(v)
	return _u
}

// SetLastSuccessAt sets the "last_success_at" field.
func (_u *DataSourceUpdateOne) SetLastSuccessAt(v time.Time) *DataSourceUpdateOne {
	_u.mutation.SetLastSuccessAt(v)
	return _u
}

// SetNillableLastSuccessAt sets the "last_success_at" field if the given value is not nil.
func (_u *DataSourceUpdateOne) SetNillableLastSuccessAt(v *time.Time) *DataSourceUpdateOne {
	if v != nil {
		_u.SetLastSuccessAt(*v)
	}
	return _u
}

// ClearLastSuccessAt clears the value of the "last_success_at" field.
func (_u *DataSourceUpdateOne) ClearLastSuccessAt() *DataSourceUpdateOne {
	_u.mutation.ClearLastSuccessAt()
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *DataSourceUpdateOne) SetLastError(v string) *DataSourceUpdateOne {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *DataSourceUpdateOne) SetNillableLastError(v *string) *DataSourceUpdateOne {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *DataSourceUpdateOne) ClearLastError() *DataSourceUpdateOne {
	_u.mutation.ClearLastError()
	return _u
}

// Mutation returns the DataSourceMutation object of the builder.
func (_u *DataSourceUpdateOne) Mutation() *DataSourceMutation {
	return _u.mutation
}

// Where appends a list predicates to the DataSourceUpdate builder.
func (_u *DataSourceUpdateOne) Where(ps ...predicate.DataSource) *DataSourceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DataSourceUpdateOne) Select(field string, fields ...string) *DataSourceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DataSource entity.
func (_u *DataSourceUpdateOne) Save(ctx context.Context) (*DataSource, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DataSourceUpdateOne) SaveX(ctx context.Context) *DataSource {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DataSourceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DataSourceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DataSourceUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := datasource.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DataSourceUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := datasource.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "DataSource.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceType(); ok {
		if err := datasource.SourceTypeValidator(v); err != nil {
			return &ValidationError{Name: "source_type", err: fmt.Errorf(`ent: validator failed for field "DataSource.source_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := datasource.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DataSource.status": %w`, err)}
		}
	}
	return nil
}

func (_u *DataSourceUpdateOne) sqlSave(ctx context.Context) (_node *DataSource, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(datasource.Table, datasource.Columns, sqlgraph.NewFieldSpec(datasource.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DataSource.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, datasource.FieldID)
		for _, f := range fields {
			if !datasource.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != datasource.FieldID {
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
		_spec.SetField(datasource.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(datasource.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceType(); ok {
		_spec.SetField(datasource.FieldSourceType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(datasource.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Endpoint(); ok {
		_spec.SetField(datasource.FieldEndpoint, field.TypeString, value)
	}
	if _u.mutation.EndpointCleared() {
		_spec.ClearField(datasource.FieldEndpoint, field.TypeString)
	}
	if value, ok := _u.mutation.FetchCount(); ok {
		_spec.SetField(datasource.FieldFetchCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFetchCount(); ok {
		_spec.AddField(datasource.FieldFetchCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ErrorCount(); ok {
		_spec.SetField(datasource.FieldErrorCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedErrorCount(); ok {
		_spec.AddField(datasource.FieldErrorCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ConsecutiveErrors(); ok {
		_spec.SetField(datasource.FieldConsecutiveErrors, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConsecutiveErrors(); ok {
		_spec.AddField(datasource.FieldConsecutiveErrors, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastSuccessAt(); ok {
		_spec.SetField(datasource.FieldLastSuccessAt, field.TypeTime, value)
	}
	if _u.mutation.LastSuccessAtCleared() {
		_spec.ClearField(datasource.FieldLastSuccessAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(datasource.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(datasource.FieldLastError, field.TypeString)
	}
	_node = &DataSource{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{datasource.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
