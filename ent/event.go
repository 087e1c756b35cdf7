// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"heatwatch.io/heatwatch/ent/event"
	"heatwatch.io/heatwatch/internal/domain"
)

// Event is the model entity for the Event schema.
type Event struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// SourceID holds the value of the "source_id" field.
	SourceID string `json:"source_id,omitempty"`
	// SourceType holds the value of the "source_type" field.
	SourceType event.SourceType `json:"source_type,omitempty"`
	// RawContent holds the value of the "raw_content" field.
	RawContent string `json:"raw_content,omitempty"`
	// NormalizedContent holds the value of the "normalized_content" field.
	NormalizedContent string `json:"normalized_content,omitempty"`
	// RawHash holds the value of the "raw_hash" field.
	RawHash string `json:"raw_hash,omitempty"`
	// URL holds the value of the "url" field.
	URL string `json:"url,omitempty"`
	// ObservedAt holds the value of the "observed_at" field.
	ObservedAt time.Time `json:"observed_at,omitempty"`
	// IngestedAt holds the value of the "ingested_at" field.
	IngestedAt time.Time `json:"ingested_at,omitempty"`
	// LocationHint holds the value of the "location_hint" field.
	LocationHint *domain.LocationHint `json:"location_hint,omitempty"`
	// NlpResult holds the value of the "nlp_result" field.
	NlpResult *domain.NLPResult `json:"nlp_result,omitempty"`
	// SatelliteResult holds the value of the "satellite_result" field.
	SatelliteResult *domain.SatelliteResult `json:"satellite_result,omitempty"`
	// FusedRisk holds the value of the "fused_risk" field.
	FusedRisk float64 `json:"fused_risk,omitempty"`
	// ClaimID holds the value of the "claim_id" field.
	ClaimID string `json:"claim_id,omitempty"`
	// State holds the value of the "state" field.
	State event.State `json:"state,omitempty"`
	// AttemptCounts holds the value of the "attempt_counts" field.
	AttemptCounts map[string]int `json:"attempt_counts,omitempty"`
	// FailureReason holds the value of the "failure_reason" field.
	FailureReason string `json:"failure_reason,omitempty"`
	selectValues  sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Event) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case event.FieldLocationHint, event.FieldNlpResult, event.FieldSatelliteResult, event.FieldAttemptCounts:
			values[i] = new([]byte)
		case event.FieldFusedRisk:
			values[i] = new(sql.NullFloat64)
		case event.FieldID, event.FieldSourceID, event.FieldSourceType, event.FieldRawContent, event.FieldNormalizedContent, event.FieldRawHash, event.FieldURL, event.FieldClaimID, event.FieldState, event.FieldFailureReason:
			values[i] = new(sql.NullString)
		case event.FieldCreatedAt, event.FieldUpdatedAt, event.FieldObservedAt, event.FieldIngestedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Event fields.
func (_m *Event) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case event.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case event.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case event.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case event.FieldSourceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_id", values[i])
			} else if value.Valid {
				_m.SourceID = value.String
			}
		case event.FieldSourceType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_type", values[i])
			} else if value.Valid {
				_m.SourceType = event.SourceType(value.String)
			}
		case event.FieldRawContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field raw_content", values[i])
			} else if value.Valid {
				_m.RawContent = value.String
			}
		case event.FieldNormalizedContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field normalized_content", values[i])
			} else if value.Valid {
				_m.NormalizedContent = value.String
			}
		case event.FieldRawHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field raw_hash", values[i])
			} else if value.Valid {
				_m.RawHash = value.String
			}
		case event.FieldURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field url", values[i])
			} else if value.Valid {
				_m.URL = value.String
			}
		case event.FieldObservedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field observed_at", values[i])
			} else if value.Valid {
				_m.ObservedAt = value.Time
			}
		case event.FieldIngestedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field ingested_at", values[i])
			} else if value.Valid {
				_m.IngestedAt = value.Time
			}
		case event.FieldLocationHint:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field location_hint", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.LocationHint); err != nil {
					return fmt.Errorf("unmarshal field location_hint: %w", err)
				}
			}
		case event.FieldNlpResult:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field nlp_result", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.NlpResult); err != nil {
					return fmt.Errorf("unmarshal field nlp_result: %w", err)
				}
			}
		case event.FieldSatelliteResult:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field satellite_result", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SatelliteResult); err != nil {
					return fmt.Errorf("unmarshal field satellite_result: %w", err)
				}
			}
		case event.FieldFusedRisk:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field fused_risk", values[i])
			} else if value.Valid {
				_m.FusedRisk = value.Float64
			}
		case event.FieldClaimID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field claim_id", values[i])
			} else if value.Valid {
				_m.ClaimID = value.String
			}
		case event.FieldState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state", values[i])
			} else if value.Valid {
				_m.State = event.State(value.String)
			}
		case event.FieldAttemptCounts:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field attempt_counts", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AttemptCounts); err != nil {
					return fmt.Errorf("unmarshal field attempt_counts: %w", err)
				}
			}
		case event.FieldFailureReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field failure_reason", values[i])
			} else if value.Valid {
				_m.FailureReason = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Event.
// This includes values selected through modifiers, order, etc.
func (_m *Event) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Event.
// Note that you need to call Event.Unwrap() before calling this method if this Event
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Event) Update() *EventUpdateOne {
	return NewEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Event entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Event) Unwrap() *Event {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Event is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Event) String() string {
	var builder strings.Builder
	builder.WriteString("Event(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("source_id=")
	builder.WriteString(_m.SourceID)
	builder.WriteString(", ")
	builder.WriteString("source_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.SourceType))
	builder.WriteString(", ")
	builder.WriteString("raw_content=")
	builder.WriteString(_m.RawContent)
	builder.WriteString(", ")
	builder.WriteString("normalized_content=")
	builder.WriteString(_m.NormalizedContent)
	builder.WriteString(", ")
	builder.WriteString("raw_hash=")
	builder.WriteString(_m.RawHash)
	builder.WriteString(", ")
	builder.WriteString("url=")
	builder.WriteString(_m.URL)
	builder.WriteString(", ")
	builder.WriteString("observed_at=")
	builder.WriteString(_m.ObservedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("ingested_at=")
	builder.WriteString(_m.IngestedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("location_hint=")
	builder.WriteString(fmt.Sprintf("%v", _m.LocationHint))
	builder.WriteString(", ")
	builder.WriteString("nlp_result=")
	builder.WriteString(fmt.Sprintf("%v", _m.NlpResult))
	builder.WriteString(", ")
	builder.WriteString("satellite_result=")
	builder.WriteString(fmt.Sprintf("%v", _m.SatelliteResult))
	builder.WriteString(", ")
	builder.WriteString("fused_risk=")
	builder.WriteString(fmt.Sprintf("%v", _m.FusedRisk))
	builder.WriteString(", ")
	builder.WriteString("claim_id=")
	builder.WriteString(_m.ClaimID)
	builder.WriteString(", ")
	builder.WriteString("state=")
	builder.WriteString(fmt.Sprintf("%v", _m.State))
	builder.WriteString(", ")
	builder.WriteString("attempt_counts=")
	builder.WriteString(fmt.Sprintf("%v", _m.AttemptCounts))
	builder.WriteString(", ")
	builder.WriteString("failure_reason=")
	builder.WriteString(_m.FailureReason)
	builder.WriteByte(')')
	return builder.String()
}

// Events is a parsable slice of Event.
type Events []*Event
