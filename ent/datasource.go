// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"heatwatch.io/heatwatch/ent/datasource"
)

// DataSource is the model entity for the DataSource schema.
type DataSource struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// SourceType holds the value of the "source_type" field.
	SourceType datasource.SourceType `json:"source_type,omitempty"`
	// Status holds the value of the "status" field.
	Status datasource.Status `json:"status,omitempty"`
	// Endpoint holds the value of the "endpoint" field.
	Endpoint string `json:"endpoint,omitempty"`
	// FetchCount holds the value of the "fetch_count" field.
	FetchCount int64 `json:"fetch_count,omitempty"`
	// ErrorCount holds the value of the "error_count" field.
	ErrorCount int64 `json:"error_count,omitempty"`
	// ConsecutiveErrors holds the value of the "consecutive_errors" field.
	ConsecutiveErrors int `json:"consecutive_errors,omitempty"`
	// LastSuccessAt holds the value of the "last_success_at" field.
	LastSuccessAt *time.Time `json:"last_success_at,omitempty"`
	// LastError holds the value of the "last_error" field.
	LastError    string `json:"last_error,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DataSource) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case datasource.FieldFetchCount, datasource.FieldErrorCount, datasource.FieldConsecutiveErrors:
			values[i] = new(sql.NullInt64)
		case datasource.FieldID, datasource.FieldName, datasource.FieldSourceType, datasource.FieldStatus, datasource.FieldEndpoint, datasource.FieldLastError:
			values[i] = new(sql.NullString)
		case datasource.FieldCreatedAt, datasource.FieldUpdatedAt, datasource.FieldLastSuccessAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DataSource fields.
func (_m *DataSource) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case datasource.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case datasource.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case datasource.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case datasource.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case datasource.FieldSourceType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_type", values[i])
			} else if value.Valid {
				_m.SourceType = datasource.SourceType(value.String)
			}
		case datasource.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = datasource.Status(value.String)
			}
		case datasource.FieldEndpoint:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field endpoint", values[i])
			} else if value.Valid {
				_m.Endpoint = value.String
			}
		case datasource.FieldFetchCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field fetch_count", values[i])
			} else if value.Valid {
				_m.FetchCount = value.Int64
			}
		case datasource.FieldErrorCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field error_count", values[i])
			} else if value.Valid {
				_m.ErrorCount = value.Int64
			}
		case datasource.FieldConsecutiveErrors:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field consecutive_errors", values[i])
			} else if value.Valid {
				_m.ConsecutiveErrors = int(value.Int64)
			}
		case datasource.FieldLastSuccessAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_success_at", values[i])
			} else if value.Valid {
				_m.LastSuccessAt = new(time.Time)
				*_m.LastSuccessAt = value.Time
			}
		case datasource.FieldLastError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_error", values[i])
			} else if value.Valid {
				_m.LastError = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DataSource.
// This includes values selected through modifiers, order, etc.
func (_m *DataSource) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this DataSource.
// Note that you need to call DataSource.Unwrap() before calling this method if this DataSource
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DataSource) Update() *DataSourceUpdateOne {
	return NewDataSourceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DataSource entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DataSource) Unwrap() *DataSource {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DataSource is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DataSource) String() string {
	var builder strings.Builder
	builder.WriteString("DataSource(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("source_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.SourceType))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("endpoint=")
	builder.WriteString(_m.Endpoint)
	builder.WriteString(", ")
	builder.WriteString("fetch_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.FetchCount))
	builder.WriteString(", ")
	builder.WriteString("error_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ErrorCount))
	builder.WriteString(", ")
	builder.WriteString("consecutive_errors=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConsecutiveErrors))
	builder.WriteString(", ")
	if v := _m.LastSuccessAt; v != nil {
		builder.WriteString("last_success_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("last_error=")
	builder.WriteString(_m.LastError)
	builder.WriteByte(')')
	return builder.String()
}

// DataSources is a parsable slice of DataSource.
type DataSources []*DataSource
