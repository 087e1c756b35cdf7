// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"heatwatch.io/heatwatch/ent/deadletter"
	"heatwatch.io/heatwatch/internal/domain"
)

// DeadLetter is the model entity for the DeadLetter schema.
type DeadLetter struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// EventID holds the value of the "event_id" field.
	EventID string `json:"event_id,omitempty"`
	// Stage holds the value of the "stage" field.
	Stage deadletter.Stage `json:"stage,omitempty"`
	// Reason holds the value of the "reason" field.
	Reason string `json:"reason,omitempty"`
	// Message holds the value of the "message" field.
	Message string `json:"message,omitempty"`
	// AttemptHistory holds the value of the "attempt_history" field.
	AttemptHistory []domain.AttemptRecord `json:"attempt_history,omitempty"`
	// ReplayedAt holds the value of the "replayed_at" field.
	ReplayedAt   *time.Time `json:"replayed_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DeadLetter) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case deadletter.FieldAttemptHistory:
			values[i] = new([]byte)
		case deadletter.FieldID, deadletter.FieldEventID, deadletter.FieldStage, deadletter.FieldReason, deadletter.FieldMessage:
			values[i] = new(sql.NullString)
		case deadletter.FieldCreatedAt, deadletter.FieldReplayedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DeadLetter fields.
func (_m *DeadLetter) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case deadletter.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case deadletter.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case deadletter.FieldEventID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_id", values[i])
			} else if value.Valid {
				_m.EventID = value.String
			}
		case deadletter.FieldStage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stage", values[i])
			} else if value.Valid {
				_m.Stage = deadletter.Stage(value.String)
			}
		case deadletter.FieldReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reason", values[i])
			} else if value.Valid {
				_m.Reason = value.String
			}
		case deadletter.FieldMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field message", values[i])
			} else if value.Valid {
				_m.Message = value.String
			}
		case deadletter.FieldAttemptHistory:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field attempt_history", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AttemptHistory); err != nil {
					return fmt.Errorf("unmarshal field attempt_history: %w", err)
				}
			}
		case deadletter.FieldReplayedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field replayed_at", values[i])
			} else if value.Valid {
				_m.ReplayedAt = new(time.Time)
				*_m.ReplayedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DeadLetter.
// This includes values selected through modifiers, order, etc.
func (_m *DeadLetter) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this DeadLetter.
// Note that you need to call DeadLetter.Unwrap() before calling this method if this DeadLetter
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DeadLetter) Update() *DeadLetterUpdateOne {
	return NewDeadLetterClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DeadLetter entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DeadLetter) Unwrap() *DeadLetter {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DeadLetter is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DeadLetter) String() string {
	var builder strings.Builder
	builder.WriteString("DeadLetter(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("event_id=")
	builder.WriteString(_m.EventID)
	builder.WriteString(", ")
	builder.WriteString("stage=")
	builder.WriteString(fmt.Sprintf("%v", _m.Stage))
	builder.WriteString(", ")
	builder.WriteString("reason=")
	builder.WriteString(_m.Reason)
	builder.WriteString(", ")
	builder.WriteString("message=")
	builder.WriteString(_m.Message)
	builder.WriteString(", ")
	builder.WriteString("attempt_history=")
	builder.WriteString(fmt.Sprintf("%v", _m.AttemptHistory))
	builder.WriteString(", ")
	if v := _m.ReplayedAt; v != nil {
		builder.WriteString("replayed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// DeadLetters is a parsable slice of DeadLetter.
type DeadLetters []*DeadLetter
