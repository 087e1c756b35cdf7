// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"heatwatch.io/heatwatch/ent/stateaggregation"
)

// StateAggregation is the model entity for the StateAggregation schema.
type StateAggregation struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Region holds the value of the "region" field.
	Region string `json:"region,omitempty"`
	// Date holds the value of the "date" field.
	Date string `json:"date,omitempty"`
	// Hour holds the value of the "hour" field.
	Hour int `json:"hour,omitempty"`
	// TotalEvents holds the value of the "total_events" field.
	TotalEvents int64 `json:"total_events,omitempty"`
	// HighRiskEvents holds the value of the "high_risk_events" field.
	HighRiskEvents int64 `json:"high_risk_events,omitempty"`
	// ValidatedEvents holds the value of the "validated_events" field.
	ValidatedEvents int64 `json:"validated_events,omitempty"`
	// AvgMisinformationRisk holds the value of the "avg_misinformation_risk" field.
	AvgMisinformationRisk float64 `json:"avg_misinformation_risk,omitempty"`
	// MaxMisinformationRisk holds the value of the "max_misinformation_risk" field.
	MaxMisinformationRisk float64 `json:"max_misinformation_risk,omitempty"`
	// HeatIntensity holds the value of the "heat_intensity" field.
	HeatIntensity float64 `json:"heat_intensity,omitempty"`
	// CategoryBreakdown holds the value of the "category_breakdown" field.
	CategoryBreakdown map[string]int64 `json:"category_breakdown,omitempty"`
	selectValues      sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*StateAggregation) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case stateaggregation.FieldCategoryBreakdown:
			values[i] = new([]byte)
		case stateaggregation.FieldAvgMisinformationRisk, stateaggregation.FieldMaxMisinformationRisk, stateaggregation.FieldHeatIntensity:
			values[i] = new(sql.NullFloat64)
		case stateaggregation.FieldHour, stateaggregation.FieldTotalEvents, stateaggregation.FieldHighRiskEvents, stateaggregation.FieldValidatedEvents:
			values[i] = new(sql.NullInt64)
		case stateaggregation.FieldID, stateaggregation.FieldRegion, stateaggregation.FieldDate:
			values[i] = new(sql.NullString)
		case stateaggregation.FieldCreatedAt, stateaggregation.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the StateAggregation fields.
func (_m *StateAggregation) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case stateaggregation.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case stateaggregation.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case stateaggregation.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case stateaggregation.FieldRegion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field region", values[i])
			} else if value.Valid {
				_m.Region = value.String
			}
		case stateaggregation.FieldDate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field date", values[i])
			} else if value.Valid {
				_m.Date = value.String
			}
		case stateaggregation.FieldHour:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field hour", values[i])
			} else if value.Valid {
				_m.Hour = int(value.Int64)
			}
		case stateaggregation.FieldTotalEvents:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_events", values[i])
			} else if value.Valid {
				_m.TotalEvents = value.Int64
			}
		case stateaggregation.FieldHighRiskEvents:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field high_risk_events", values[i])
			} else if value.Valid {
				_m.HighRiskEvents = value.Int64
			}
		case stateaggregation.FieldValidatedEvents:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field validated_events", values[i])
			} else if value.Valid {
				_m.ValidatedEvents = value.Int64
			}
		case stateaggregation.FieldAvgMisinformationRisk:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field avg_misinformation_risk", values[i])
			} else if value.Valid {
				_m.AvgMisinformationRisk = value.Float64
			}
		case stateaggregation.FieldMaxMisinformationRisk:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field max_misinformation_risk", values[i])
			} else if value.Valid {
				_m.MaxMisinformationRisk = value.Float64
			}
		case stateaggregation.FieldHeatIntensity:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field heat_intensity", values[i])
			} else if value.Valid {
				_m.HeatIntensity = value.Float64
			}
		case stateaggregation.FieldCategoryBreakdown:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field category_breakdown", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CategoryBreakdown); err != nil {
					return fmt.Errorf("unmarshal field category_breakdown: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the StateAggregation.
// This includes values selected through modifiers, order, etc.
func (_m *StateAggregation) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this StateAggregation.
// Note that you need to call StateAggregation.Unwrap() before calling this method if this StateAggregation
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *StateAggregation) Update() *StateAggregationUpdateOne {
	return NewStateAggregationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the StateAggregation entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *StateAggregation) Unwrap() *StateAggregation {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: StateAggregation is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *StateAggregation) String() string {
	var builder strings.Builder
	builder.WriteString("StateAggregation(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("region=")
	builder.WriteString(_m.Region)
	builder.WriteString(", ")
	builder.WriteString("date=")
	builder.WriteString(_m.Date)
	builder.WriteString(", ")
	builder.WriteString("hour=")
	builder.WriteString(fmt.Sprintf("%v", _m.Hour))
	builder.WriteString(", ")
	builder.WriteString("total_events=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalEvents))
	builder.WriteString(", ")
	builder.WriteString("high_risk_events=")
	builder.WriteString(fmt.Sprintf("%v", _m.HighRiskEvents))
	builder.WriteString(", ")
	builder.WriteString("validated_events=")
	builder.WriteString(fmt.Sprintf("%v", _m.ValidatedEvents))
	builder.WriteString(", ")
	builder.WriteString("avg_misinformation_risk=")
	builder.WriteString(fmt.Sprintf("%v", _m.AvgMisinformationRisk))
	builder.WriteString(", ")
	builder.WriteString("max_misinformation_risk=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxMisinformationRisk))
	builder.WriteString(", ")
	builder.WriteString("heat_intensity=")
	builder.WriteString(fmt.Sprintf("%v", _m.HeatIntensity))
	builder.WriteString(", ")
	builder.WriteString("category_breakdown=")
	builder.WriteString(fmt.Sprintf("%v", _m.CategoryBreakdown))
	builder.WriteByte(')')
	return builder.String()
}

// StateAggregations is a parsable slice of StateAggregation.
type StateAggregations []*StateAggregation
