// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dappsmith/conductor/ent/clarification"
	"github.com/dappsmith/conductor/ent/spec"
)

// Clarification is the model entity for the Clarification schema.
type Clarification struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SpecID holds the value of the "spec_id" field.
	SpecID string `json:"spec_id,omitempty"`
	// Question holds the value of the "question" field.
	Question string `json:"question,omitempty"`
	// Answer holds the value of the "answer" field.
	Answer *string `json:"answer,omitempty"`
	// Status holds the value of the "status" field.
	Status clarification.Status `json:"status,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// ResolvedAt holds the value of the "resolved_at" field.
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ClarificationQuery when eager-loading is set.
	Edges        ClarificationEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ClarificationEdges holds the relations/edges for other nodes in the graph.
type ClarificationEdges struct {
	// Spec holds the value of the spec edge.
	Spec *Spec `json:"spec,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SpecOrErr returns the Spec value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ClarificationEdges) SpecOrErr() (*Spec, error) {
	if e.Spec != nil {
		return e.Spec, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: spec.Label}
	}
	return nil, &NotLoadedError{edge: "spec"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Clarification) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case clarification.FieldID, clarification.FieldSpecID, clarification.FieldQuestion, clarification.FieldAnswer, clarification.FieldStatus:
			values[i] = new(sql.NullString)
		case clarification.FieldCreatedAt, clarification.FieldResolvedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Clarification fields.
func (_m *Clarification) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case clarification.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case clarification.FieldSpecID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field spec_id", values[i])
			} else if value.Valid {
				_m.SpecID = value.String
			}
		case clarification.FieldQuestion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question", values[i])
			} else if value.Valid {
				_m.Question = value.String
			}
		case clarification.FieldAnswer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field answer", values[i])
			} else if value.Valid {
				_m.Answer = new(string)
				*_m.Answer = value.String
			}
		case clarification.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = clarification.Status(value.String)
			}
		case clarification.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case clarification.FieldResolvedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field resolved_at", values[i])
			} else if value.Valid {
				_m.ResolvedAt = new(time.Time)
				*_m.ResolvedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Clarification.
// This includes values selected through modifiers, order, etc.
func (_m *Clarification) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySpec queries the "spec" edge of the Clarification entity.
func (_m *Clarification) QuerySpec() *SpecQuery {
	return NewClarificationClient(_m.config).QuerySpec(_m)
}

// Update returns a builder for updating this Clarification.
// Note that you need to call Clarification.Unwrap() before calling this method if this Clarification
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Clarification) Update() *ClarificationUpdateOne {
	return NewClarificationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Clarification entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Clarification) Unwrap() *Clarification {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Clarification is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Clarification) String() string {
	var builder strings.Builder
	builder.WriteString("Clarification(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("spec_id=")
	builder.WriteString(_m.SpecID)
	builder.WriteString(", ")
	builder.WriteString("question=")
	builder.WriteString(_m.Question)
	builder.WriteString(", ")
	if v := _m.Answer; v != nil {
		builder.WriteString("answer=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.ResolvedAt; v != nil {
		builder.WriteString("resolved_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Clarifications is a parsable slice of Clarification.
type Clarifications []*Clarification
