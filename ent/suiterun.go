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
	"github.com/dappsmith/conductor/ent/suiterun"
)

// SuiteRun is the model entity for the SuiteRun schema.
type SuiteRun struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ProjectID holds the value of the "project_id" field.
	ProjectID string `json:"project_id,omitempty"`
	// Execution order; duplicates allowed
	SpecIds []string `json:"spec_ids,omitempty"`
	// Status holds the value of the "status" field.
	Status suiterun.Status `json:"status,omitempty"`
	// TotalTests holds the value of the "total_tests" field.
	TotalTests int `json:"total_tests,omitempty"`
	// PassedTests holds the value of the "passed_tests" field.
	PassedTests int `json:"passed_tests,omitempty"`
	// FailedTests holds the value of the "failed_tests" field.
	FailedTests int `json:"failed_tests,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SuiteRunQuery when eager-loading is set.
	Edges        SuiteRunEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SuiteRunEdges holds the relations/edges for other nodes in the graph.
type SuiteRunEdges struct {
	// Project holds the value of the project edge.
	Project *Project `json:"project,omitempty"`
	// Runs holds the value of the runs edge.
	Runs []*Run `json:"runs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ProjectOrErr returns the Project value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SuiteRunEdges) ProjectOrErr() (*Project, error) {
	if e.Project != nil {
		return e.Project, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: project.Label}
	}
	return nil, &NotLoadedError{edge: "project"}
}

// RunsOrErr returns the Runs value or an error if the edge
// was not loaded in eager-loading.
func (e SuiteRunEdges) RunsOrErr() ([]*Run, error) {
	if e.loadedTypes[1] {
		return e.Runs, nil
	}
	return nil, &NotLoadedError{edge: "runs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SuiteRun) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case suiterun.FieldSpecIds:
			values[i] = new([]byte)
		case suiterun.FieldTotalTests, suiterun.FieldPassedTests, suiterun.FieldFailedTests:
			values[i] = new(sql.NullInt64)
		case suiterun.FieldID, suiterun.FieldProjectID, suiterun.FieldStatus, suiterun.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case suiterun.FieldCreatedAt, suiterun.FieldStartedAt, suiterun.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SuiteRun fields.
func (_m *SuiteRun) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case suiterun.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case suiterun.FieldProjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field project_id", values[i])
			} else if value.Valid {
				_m.ProjectID = value.String
			}
		case suiterun.FieldSpecIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field spec_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SpecIds); err != nil {
					return fmt.Errorf("unmarshal field spec_ids: %w", err)
				}
			}
		case suiterun.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = suiterun.Status(value.String)
			}
		case suiterun.FieldTotalTests:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_tests", values[i])
			} else if value.Valid {
				_m.TotalTests = int(value.Int64)
			}
		case suiterun.FieldPassedTests:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field passed_tests", values[i])
			} else if value.Valid {
				_m.PassedTests = int(value.Int64)
			}
		case suiterun.FieldFailedTests:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field failed_tests", values[i])
			} else if value.Valid {
				_m.FailedTests = int(value.Int64)
			}
		case suiterun.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case suiterun.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case suiterun.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case suiterun.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SuiteRun.
// This includes values selected through modifiers, order, etc.
func (_m *SuiteRun) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProject queries the "project" edge of the SuiteRun entity.
func (_m *SuiteRun) QueryProject() *ProjectQuery {
	return NewSuiteRunClient(_m.config).QueryProject(_m)
}

// QueryRuns queries the "runs" edge of the SuiteRun entity.
func (_m *SuiteRun) QueryRuns() *RunQuery {
	return NewSuiteRunClient(_m.config).QueryRuns(_m)
}

// Update returns a builder for updating this SuiteRun.
// Note that you need to call SuiteRun.Unwrap() before calling this method if this SuiteRun
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SuiteRun) Update() *SuiteRunUpdateOne {
	return NewSuiteRunClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SuiteRun entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SuiteRun) Unwrap() *SuiteRun {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SuiteRun is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SuiteRun) String() string {
	var builder strings.Builder
	builder.WriteString("SuiteRun(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("project_id=")
	builder.WriteString(_m.ProjectID)
	builder.WriteString(", ")
	builder.WriteString("spec_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.SpecIds))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("total_tests=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalTests))
	builder.WriteString(", ")
	builder.WriteString("passed_tests=")
	builder.WriteString(fmt.Sprintf("%v", _m.PassedTests))
	builder.WriteString(", ")
	builder.WriteString("failed_tests=")
	builder.WriteString(fmt.Sprintf("%v", _m.FailedTests))
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// SuiteRuns is a parsable slice of SuiteRun.
type SuiteRuns []*SuiteRun
