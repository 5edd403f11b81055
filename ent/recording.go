// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dappsmith/conductor/ent/project"
	"github.com/dappsmith/conductor/ent/recording"
)

// Recording is the model entity for the Recording schema.
type Recording struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ProjectID holds the value of the "project_id" field.
	ProjectID string `json:"project_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// connection recordings produce wallet-login preludes
	RecordingType recording.RecordingType `json:"recording_type,omitempty"`
	// Ordered click/input/navigation/wallet actions; immutable after creation
	Actions []map[string]interface{} `json:"actions,omitempty"`
	// Entry URL captured at record time
	URL string `json:"url,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the RecordingQuery when eager-loading is set.
	Edges        RecordingEdges `json:"edges"`
	selectValues sql.SelectValues
}

// RecordingEdges holds the relations/edges for other nodes in the graph.
type RecordingEdges struct {
	// Project holds the value of the project edge.
	Project *Project `json:"project,omitempty"`
	// Specs holds the value of the specs edge.
	Specs []*Spec `json:"specs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ProjectOrErr returns the Project value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RecordingEdges) ProjectOrErr() (*Project, error) {
	if e.Project != nil {
		return e.Project, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: project.Label}
	}
	return nil, &NotLoadedError{edge: "project"}
}

// SpecsOrErr returns the Specs value or an error if the edge
// was not loaded in eager-loading.
func (e RecordingEdges) SpecsOrErr() ([]*Spec, error) {
	if e.loadedTypes[1] {
		return e.Specs, nil
	}
	return nil, &NotLoadedError{edge: "specs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Recording) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case recording.FieldActions:
			values[i] = new([]byte)
		case recording.FieldID, recording.FieldProjectID, recording.FieldName, recording.FieldRecordingType, recording.FieldURL:
			values[i] = new(sql.NullString)
		case recording.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Recording fields.
func (_m *Recording) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case recording.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case recording.FieldProjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field project_id", values[i])
			} else if value.Valid {
				_m.ProjectID = value.String
			}
		case recording.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case recording.FieldRecordingType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field recording_type", values[i])
			} else if value.Valid {
				_m.RecordingType = recording.RecordingType(value.String)
			}
		case recording.FieldActions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field actions", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Actions); err != nil {
					return fmt.Errorf("unmarshal field actions: %w", err)
				}
			}
		case recording.FieldURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field url", values[i])
			} else if value.Valid {
				_m.URL = value.String
			}
		case recording.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Recording.
// This includes values selected through modifiers, order, etc.
func (_m *Recording) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProject queries the "project" edge of the Recording entity.
func (_m *Recording) QueryProject() *ProjectQuery {
	return NewRecordingClient(_m.config).QueryProject(_m)
}

// QuerySpecs queries the "specs" edge of the Recording entity.
func (_m *Recording) QuerySpecs() *SpecQuery {
	return NewRecordingClient(_m.config).QuerySpecs(_m)
}

// Update returns a builder for updating this Recording.
// Note that you need to call Recording.Unwrap() before calling this method if this Recording
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Recording) Update() *RecordingUpdateOne {
	return NewRecordingClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Recording entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Recording) Unwrap() *Recording {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Recording is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Recording) String() string {
	var builder strings.Builder
	builder.WriteString("Recording(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("project_id=")
	builder.WriteString(_m.ProjectID)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("recording_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.RecordingType))
	builder.WriteString(", ")
	builder.WriteString("actions=")
	builder.WriteString(fmt.Sprintf("%v", _m.Actions))
	builder.WriteString(", ")
	builder.WriteString("url=")
	builder.WriteString(_m.URL)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Recordings is a parsable slice of Recording.
type Recordings []*Recording
