// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dappsmith/conductor/ent/recording"
	"github.com/dappsmith/conductor/ent/spec"
)

// Spec is the model entity for the Spec schema.
type Spec struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// RecordingID holds the value of the "recording_id" field.
	RecordingID string `json:"recording_id,omitempty"`
	// Test program source
	Code string `json:"code,omitempty"`
	// Only non-draft specs are eligible to run
	Status spec.Status `json:"status,omitempty"`
	// Monotonic per lineage; bumped by patches and regeneration
	Version int `json:"version,omitempty"`
	// Self-heal generation counter, 1 for originals
	Attempt int `json:"attempt,omitempty"`
	// MaxAttempts holds the value of the "max_attempts" field.
	MaxAttempts int `json:"max_attempts,omitempty"`
	// Self-heal ancestor; one-way reference
	ParentSpecID *string `json:"parent_spec_id,omitempty"`
	// Failure snapshot the regeneration was based on
	FailureContext map[string]interface{} `json:"failure_context,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SpecQuery when eager-loading is set.
	Edges        SpecEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SpecEdges holds the relations/edges for other nodes in the graph.
type SpecEdges struct {
	// Recording holds the value of the recording edge.
	Recording *Recording `json:"recording,omitempty"`
	// Runs holds the value of the runs edge.
	Runs []*Run `json:"runs,omitempty"`
	// Clarifications holds the value of the clarifications edge.
	Clarifications []*Clarification `json:"clarifications,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// RecordingOrErr returns the Recording value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SpecEdges) RecordingOrErr() (*Recording, error) {
	if e.Recording != nil {
		return e.Recording, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: recording.Label}
	}
	return nil, &NotLoadedError{edge: "recording"}
}

// RunsOrErr returns the Runs value or an error if the edge
// was not loaded in eager-loading.
func (e SpecEdges) RunsOrErr() ([]*Run, error) {
	if e.loadedTypes[1] {
		return e.Runs, nil
	}
	return nil, &NotLoadedError{edge: "runs"}
}

// ClarificationsOrErr returns the Clarifications value or an error if the edge
// was not loaded in eager-loading.
func (e SpecEdges) ClarificationsOrErr() ([]*Clarification, error) {
	if e.loadedTypes[2] {
		return e.Clarifications, nil
	}
	return nil, &NotLoadedError{edge: "clarifications"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Spec) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case spec.FieldFailureContext:
			values[i] = new([]byte)
		case spec.FieldVersion, spec.FieldAttempt, spec.FieldMaxAttempts:
			values[i] = new(sql.NullInt64)
		case spec.FieldID, spec.FieldRecordingID, spec.FieldCode, spec.FieldStatus, spec.FieldParentSpecID:
			values[i] = new(sql.NullString)
		case spec.FieldCreatedAt, spec.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Spec fields.
func (_m *Spec) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case spec.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case spec.FieldRecordingID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field recording_id", values[i])
			} else if value.Valid {
				_m.RecordingID = value.String
			}
		case spec.FieldCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field code", values[i])
			} else if value.Valid {
				_m.Code = value.String
			}
		case spec.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = spec.Status(value.String)
			}
		case spec.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = int(value.Int64)
			}
		case spec.FieldAttempt:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempt", values[i])
			} else if value.Valid {
				_m.Attempt = int(value.Int64)
			}
		case spec.FieldMaxAttempts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_attempts", values[i])
			} else if value.Valid {
				_m.MaxAttempts = int(value.Int64)
			}
		case spec.FieldParentSpecID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field parent_spec_id", values[i])
			} else if value.Valid {
				_m.ParentSpecID = new(string)
				*_m.ParentSpecID = value.String
			}
		case spec.FieldFailureContext:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field failure_context", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.FailureContext); err != nil {
					return fmt.Errorf("unmarshal field failure_context: %w", err)
				}
			}
		case spec.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case spec.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Spec.
// This includes values selected through modifiers, order, etc.
func (_m *Spec) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRecording queries the "recording" edge of the Spec entity.
func (_m *Spec) QueryRecording() *RecordingQuery {
	return NewSpecClient(_m.config).QueryRecording(_m)
}

// QueryRuns queries the "runs" edge of the Spec entity.
func (_m *Spec) QueryRuns() *RunQuery {
	return NewSpecClient(_m.config).QueryRuns(_m)
}

// QueryClarifications queries the "clarifications" edge of the Spec entity.
func (_m *Spec) QueryClarifications() *ClarificationQuery {
	return NewSpecClient(_m.config).QueryClarifications(_m)
}

// Update returns a builder for updating this Spec.
// Note that you need to call Spec.Unwrap() before calling this method if this Spec
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Spec) Update() *SpecUpdateOne {
	return NewSpecClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Spec entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Spec) Unwrap() *Spec {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Spec is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Spec) String() string {
	var builder strings.Builder
	builder.WriteString("Spec(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("recording_id=")
	builder.WriteString(_m.RecordingID)
	builder.WriteString(", ")
	builder.WriteString("code=")
	builder.WriteString(_m.Code)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteString(", ")
	builder.WriteString("attempt=")
	builder.WriteString(fmt.Sprintf("%v", _m.Attempt))
	builder.WriteString(", ")
	builder.WriteString("max_attempts=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxAttempts))
	builder.WriteString(", ")
	if v := _m.ParentSpecID; v != nil {
		builder.WriteString("parent_spec_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("failure_context=")
	builder.WriteString(fmt.Sprintf("%v", _m.FailureContext))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Specs is a parsable slice of Spec.
type Specs []*Spec
