// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"heatwatch.io/heatwatch/ent/claim"
)

// Claim is the model entity for the Claim schema.
type Claim struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Fingerprint holds the value of the "fingerprint" field.
	Fingerprint string `json:"fingerprint,omitempty"`
	// FirstSeenAt holds the value of the "first_seen_at" field.
	FirstSeenAt time.Time `json:"first_seen_at,omitempty"`
	// FirstSeenEventID holds the value of the "first_seen_event_id" field.
	FirstSeenEventID string `json:"first_seen_event_id,omitempty"`
	// LastSeenAt holds the value of the "last_seen_at" field.
	LastSeenAt time.Time `json:"last_seen_at,omitempty"`
	// OccurrenceCount holds the value of the "occurrence_count" field.
	OccurrenceCount int64 `json:"occurrence_count,omitempty"`
	// DistinctLocations holds the value of the "distinct_locations" field.
	DistinctLocations []string `json:"distinct_locations,omitempty"`
	// SpreadVelocity holds the value of the "spread_velocity" field.
	SpreadVelocity float64 `json:"spread_velocity,omitempty"`
	// GeographicSpreadScore holds the value of the "geographic_spread_score" field.
	GeographicSpreadScore float64 `json:"geographic_spread_score,omitempty"`
	// OverallRiskScore holds the value of the "overall_risk_score" field.
	OverallRiskScore float64 `json:"overall_risk_score,omitempty"`
	// ArchivedAt holds the value of the "archived_at" field.
	ArchivedAt   *time.Time `json:"archived_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Claim) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case claim.FieldDistinctLocations:
			values[i] = new([]byte)
		case claim.FieldSpreadVelocity, claim.FieldGeographicSpreadScore, claim.FieldOverallRiskScore:
			values[i] = new(sql.NullFloat64)
		case claim.FieldOccurrenceCount:
			values[i] = new(sql.NullInt64)
		case claim.FieldID, claim.FieldFingerprint, claim.FieldFirstSeenEventID:
			values[i] = new(sql.NullString)
		case claim.FieldCreatedAt, claim.FieldUpdatedAt, claim.FieldFirstSeenAt, claim.FieldLastSeenAt, claim.FieldArchivedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Claim fields.
func (_m *Claim) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case claim.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case claim.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case claim.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case claim.FieldFingerprint:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field fingerprint", values[i])
			} else if value.Valid {
				_m.Fingerprint = value.String
			}
		case claim.FieldFirstSeenAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field first_seen_at", values[i])
			} else if value.Valid {
				_m.FirstSeenAt = value.Time
			}
		case claim.FieldFirstSeenEventID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field first_seen_event_id", values[i])
			} else if value.Valid {
				_m.FirstSeenEventID = value.String
			}
		case claim.FieldLastSeenAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_seen_at", values[i])
			} else if value.Valid {
				_m.LastSeenAt = value.Time
			}
		case claim.FieldOccurrenceCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field occurrence_count", values[i])
			} else if value.Valid {
				_m.OccurrenceCount = value.Int64
			}
		case claim.FieldDistinctLocations:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field distinct_locations", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.DistinctLocations); err != nil {
					return fmt.Errorf("unmarshal field distinct_locations: %w", err)
				}
			}
		case claim.FieldSpreadVelocity:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field spread_velocity", values[i])
			} else if value.Valid {
				_m.SpreadVelocity = value.Float64
			}
		case claim.FieldGeographicSpreadScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field geographic_spread_score", values[i])
			} else if value.Valid {
				_m.GeographicSpreadScore = value.Float64
			}
		case claim.FieldOverallRiskScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field overall_risk_score", values[i])
			} else if value.Valid {
				_m.OverallRiskScore = value.Float64
			}
		case claim.FieldArchivedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field archived_at", values[i])
			} else if value.Valid {
				_m.ArchivedAt = new(time.Time)
				*_m.ArchivedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Claim.
// This includes values selected through modifiers, order, etc.
func (_m *Claim) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Claim.
// Note that you need to call Claim.Unwrap() before calling this method if this Claim
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Claim) Update() *ClaimUpdateOne {
	return NewClaimClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Claim entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Claim) Unwrap() *Claim {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Claim is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Claim) String() string {
	var builder strings.Builder
	builder.WriteString("Claim(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("fingerprint=")
	builder.WriteString(_m.Fingerprint)
	builder.WriteString(", ")
	builder.WriteString("first_seen_at=")
	builder.WriteString(_m.FirstSeenAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("first_seen_event_id=")
	builder.WriteString(_m.FirstSeenEventID)
	builder.WriteString(", ")
	builder.WriteString("last_seen_at=")
	builder.WriteString(_m.LastSeenAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("occurrence_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.OccurrenceCount))
	builder.WriteString(", ")
	builder.WriteString("distinct_locations=")
	builder.WriteString(fmt.Sprintf("%v", _m.DistinctLocations))
	builder.WriteString(", ")
	builder.WriteString("spread_velocity=")
	builder.WriteString(fmt.Sprintf("%v", _m.SpreadVelocity))
	builder.WriteString(", ")
	builder.WriteString("geographic_spread_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.GeographicSpreadScore))
	builder.WriteString(", ")
	builder.WriteString("overall_risk_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.OverallRiskScore))
	builder.WriteString(", ")
	if v := _m.ArchivedAt; v != nil {
		builder.WriteString("archived_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Claims is a parsable slice of Claim.
type Claims []*Claim
