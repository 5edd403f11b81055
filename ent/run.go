// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dappsmith/conductor/ent/run"
	"github.com/dappsmith/conductor/ent/spec"
	"github.com/dappsmith/conductor/ent/suiterun"
)

// Run is the model entity for the Run schema.
type Run struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SpecID holds the value of the "spec_id" field.
	SpecID string `json:"spec_id,omitempty"`
	// SuiteRunID holds the value of the "suite_run_id" field.
	SuiteRunID *string `json:"suite_run_id,omitempty"`
	// Position within the suite, 0-based
	SuiteIndex *int `json:"suite_index,omitempty"`
	// Status holds the value of the "status" field.
	Status run.Status `json:"status,omitempty"`
	// ExecutionMode holds the value of the "execution_mode" field.
	ExecutionMode run.ExecutionMode `json:"execution_mode,omitempty"`
	// StreamingMode holds the value of the "streaming_mode" field.
	StreamingMode run.StreamingMode `json:"streaming_mode,omitempty"`
	// Set on runs enqueued by self-heal
	IsAutoRetry bool `json:"is_auto_retry,omitempty"`
	// 0-100, reported at phase boundaries
	Progress int `json:"progress,omitempty"`
	// Cooperative cancel flag polled by the handler
	CancelRequested bool `json:"cancel_requested,omitempty"`
	// Step timeline and planner cost summary
	AgentData map[string]interface{} `json:"agent_data,omitempty"`
	// Tab/streaming state persisted at phase boundaries for restart recovery
	StreamState map[string]interface{} `json:"stream_state,omitempty"`
	// Logs holds the value of the "logs" field.
	Logs *string `json:"logs,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// Sandbox identifier for diagnostics
	ContainerID *string `json:"container_id,omitempty"`
	// DurationMs holds the value of the "duration_ms" field.
	DurationMs *int `json:"duration_ms,omitempty"`
	// For multi-replica coordination
	PodID *string `json:"pod_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the RunQuery when eager-loading is set.
	Edges        RunEdges `json:"edges"`
	selectValues sql.SelectValues
}

// RunEdges holds the relations/edges for other nodes in the graph.
type RunEdges struct {
	// Spec holds the value of the spec edge.
	Spec *Spec `json:"spec,omitempty"`
	// SuiteRun holds the value of the suite_run edge.
	SuiteRun *SuiteRun `json:"suite_run,omitempty"`
	// Artifacts holds the value of the artifacts edge.
	Artifacts []*Artifact `json:"artifacts,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// SpecOrErr returns the Spec value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RunEdges) SpecOrErr() (*Spec, error) {
	if e.Spec != nil {
		return e.Spec, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: spec.Label}
	}
	return nil, &NotLoadedError{edge: "spec"}
}

// SuiteRunOrErr returns the SuiteRun value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RunEdges) SuiteRunOrErr() (*SuiteRun, error) {
	if e.SuiteRun != nil {
		return e.SuiteRun, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: suiterun.Label}
	}
	return nil, &NotLoadedError{edge: "suite_run"}
}

// ArtifactsOrErr returns the Artifacts value or an error if the edge
// was not loaded in eager-loading.
func (e RunEdges) ArtifactsOrErr() ([]*Artifact, error) {
	if e.loadedTypes[2] {
		return e.Artifacts, nil
	}
	return nil, &NotLoadedError{edge: "artifacts"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Run) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case run.FieldAgentData, run.FieldStreamState:
			values[i] = new([]byte)
		case run.FieldIsAutoRetry, run.FieldCancelRequested:
			values[i] = new(sql.NullBool)
		case run.FieldSuiteIndex, run.FieldProgress, run.FieldDurationMs:
			values[i] = new(sql.NullInt64)
		case run.FieldID, run.FieldSpecID, run.FieldSuiteRunID, run.FieldStatus, run.FieldExecutionMode, run.FieldStreamingMode, run.FieldLogs, run.FieldErrorMessage, run.FieldContainerID, run.FieldPodID:
			values[i] = new(sql.NullString)
		case run.FieldCreatedAt, run.FieldStartedAt, run.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Run fields.
func (_m *Run) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case run.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case run.FieldSpecID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field spec_id", values[i])
			} else if value.Valid {
				_m.SpecID = value.String
			}
		case run.FieldSuiteRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field suite_run_id", values[i])
			} else if value.Valid {
				_m.SuiteRunID = new(string)
				*_m.SuiteRunID = value.String
			}
		case run.FieldSuiteIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field suite_index", values[i])
			} else if value.Valid {
				_m.SuiteIndex = new(int)
				*_m.SuiteIndex = int(value.Int64)
			}
		case run.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = run.Status(value.String)
			}
		case run.FieldExecutionMode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field execution_mode", values[i])
			} else if value.Valid {
				_m.ExecutionMode = run.ExecutionMode(value.String)
			}
		case run.FieldStreamingMode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field streaming_mode", values[i])
			} else if value.Valid {
				_m.StreamingMode = run.StreamingMode(value.String)
			}
		case run.FieldIsAutoRetry:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_auto_retry", values[i])
			} else if value.Valid {
				_m.IsAutoRetry = value.Bool
			}
		case run.FieldProgress:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field progress", values[i])
			} else if value.Valid {
				_m.Progress = int(value.Int64)
			}
		case run.FieldCancelRequested:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field cancel_requested", values[i])
			} else if value.Valid {
				_m.CancelRequested = value.Bool
			}
		case run.FieldAgentData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field agent_data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AgentData); err != nil {
					return fmt.Errorf("unmarshal field agent_data: %w", err)
				}
			}
		case run.FieldStreamState:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field stream_state", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.StreamState); err != nil {
					return fmt.Errorf("unmarshal field stream_state: %w", err)
				}
			}
		case run.FieldLogs:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field logs", values[i])
			} else if value.Valid {
				_m.Logs = new(string)
				*_m.Logs = value.String
			}
		case run.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case run.FieldContainerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field container_id", values[i])
			} else if value.Valid {
				_m.ContainerID = new(string)
				*_m.ContainerID = value.String
			}
		case run.FieldDurationMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_ms", values[i])
			} else if value.Valid {
				_m.DurationMs = new(int)
				*_m.DurationMs = int(value.Int64)
			}
		case run.FieldPodID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pod_id", values[i])
			} else if value.Valid {
				_m.PodID = new(string)
				*_m.PodID = value.String
			}
		case run.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case run.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case run.FieldCompletedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Run.
// This includes values selected through modifiers, order, etc.
func (_m *Run) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySpec queries the "spec" edge of the Run entity.
func (_m *Run) QuerySpec() *SpecQuery {
	return NewRunClient(_m.config).QuerySpec(_m)
}

// QuerySuiteRun queries the "suite_run" edge of the Run entity.
func (_m *Run) QuerySuiteRun() *SuiteRunQuery {
	return NewRunClient(_m.config).QuerySuiteRun(_m)
}

// QueryArtifacts queries the "artifacts" edge of the Run entity.
func (_m *Run) QueryArtifacts() *ArtifactQuery {
	return NewRunClient(_m.config).QueryArtifacts(_m)
}

// Update returns a builder for updating this Run.
// Note that you need to call Run.Unwrap() before calling this method if this Run
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Run) Update() *RunUpdateOne {
	return NewRunClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Run entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Run) Unwrap() *Run {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Run is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Run) String() string {
	var builder strings.Builder
	builder.WriteString("Run(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("spec_id=")
	builder.WriteString(_m.SpecID)
	builder.WriteString(", ")
	if v := _m.SuiteRunID; v != nil {
		builder.WriteString("suite_run_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.SuiteIndex; v != nil {
		builder.WriteString("suite_index=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("execution_mode=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExecutionMode))
	builder.WriteString(", ")
	builder.WriteString("streaming_mode=")
	builder.WriteString(fmt.Sprintf("%v", _m.StreamingMode))
	builder.WriteString(", ")
	builder.WriteString("is_auto_retry=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsAutoRetry))
	builder.WriteString(", ")
	builder.WriteString("progress=")
	builder.WriteString(fmt.Sprintf("%v", _m.Progress))
	builder.WriteString(", ")
	builder.WriteString("cancel_requested=")
	builder.WriteString(fmt.Sprintf("%v", _m.CancelRequested))
	builder.WriteString(", ")
	builder.WriteString("agent_data=")
	builder.WriteString(fmt.Sprintf("%v", _m.AgentData))
	builder.WriteString(", ")
	builder.WriteString("stream_state=")
	builder.WriteString(fmt.Sprintf("%v", _m.StreamState))
	builder.WriteString(", ")
	if v := _m.Logs; v != nil {
		builder.WriteString("logs=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ContainerID; v != nil {
		builder.WriteString("container_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.DurationMs; v != nil {
		builder.WriteString("duration_ms=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.PodID; v != nil {
		builder.WriteString("pod_id=")
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

// Runs is a parsable slice of Run.
type Runs []*Run
