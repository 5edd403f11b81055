// Code generated by ent, DO NOT EDIT.

package run

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the run type in the database.
	Label = "run"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "run_id"
	// FieldSpecID holds the string denoting the spec_id field in the database.
	FieldSpecID = "spec_id"
	// FieldSuiteRunID holds the string denoting the suite_run_id field in the database.
	FieldSuiteRunID = "suite_run_id"
	// FieldSuiteIndex holds the string denoting the suite_index field in the database.
	FieldSuiteIndex = "suite_index"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldExecutionMode holds the string denoting the execution_mode field in the database.
	FieldExecutionMode = "execution_mode"
	// FieldStreamingMode holds the string denoting the streaming_mode field in the database.
	FieldStreamingMode = "streaming_mode"
	// FieldIsAutoRetry holds the string denoting the is_auto_retry field in the database.
	FieldIsAutoRetry = "is_auto_retry"
	// FieldProgress holds the string denoting the progress field in the database.
	FieldProgress = "progress"
	// FieldCancelRequested holds the string denoting the cancel_requested field in the database.
	FieldCancelRequested = "cancel_requested"
	// FieldAgentData holds the string denoting the agent_data field in the database.
	FieldAgentData = "agent_data"
	// FieldStreamState holds the string denoting the stream_state field in the database.
	FieldStreamState = "stream_state"
	// FieldLogs holds the string denoting the logs field in the database.
	FieldLogs = "logs"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldContainerID holds the string denoting the container_id field in the database.
	FieldContainerID = "container_id"
	// FieldDurationMs holds the string denoting the duration_ms field in the database.
	FieldDurationMs = "duration_ms"
	// FieldPodID holds the string denoting the pod_id field in the database.
	FieldPodID = "pod_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// EdgeSpec holds the string denoting the spec edge name in mutations.
	EdgeSpec = "spec"
	// EdgeSuiteRun holds the string denoting the suite_run edge name in mutations.
	EdgeSuiteRun = "suite_run"
	// EdgeArtifacts holds the string denoting the artifacts edge name in mutations.
	EdgeArtifacts = "artifacts"
	// SpecFieldID holds the string denoting the ID field of the Spec.
	SpecFieldID = "spec_id"
	// SuiteRunFieldID holds the string denoting the ID field of the SuiteRun.
	SuiteRunFieldID = "suite_run_id"
	// ArtifactFieldID holds the string denoting the ID field of the Artifact.
	ArtifactFieldID = "artifact_id"
	// Table holds the table name of the run in the database.
	Table = "runs"
	// SpecTable is the table that holds the spec relation/edge.
	SpecTable = "runs"
	// SpecInverseTable is the table name for the Spec entity.
	// It exists in this package in order to avoid circular dependency with the "spec" package.
	SpecInverseTable = "specs"
	// SpecColumn is the table column denoting the spec relation/edge.
	SpecColumn = "spec_id"
	// SuiteRunTable is the table that holds the suite_run relation/edge.
	SuiteRunTable = "runs"
	// SuiteRunInverseTable is the table name for the SuiteRun entity.
	// It exists in this package in order to avoid circular dependency with the "suiterun" package.
	SuiteRunInverseTable = "suite_runs"
	// SuiteRunColumn is the table column denoting the suite_run relation/edge.
	SuiteRunColumn = "suite_run_id"
	// ArtifactsTable is the table that holds the artifacts relation/edge.
	ArtifactsTable = "artifacts"
	// ArtifactsInverseTable is the table name for the Artifact entity.
	// It exists in this package in order to avoid circular dependency with the "artifact" package.
	ArtifactsInverseTable = "artifacts"
	// ArtifactsColumn is the table column denoting the artifacts relation/edge.
	ArtifactsColumn = "run_id"
)

// Columns holds all SQL columns for run fields.
var Columns = []string{
	FieldID,
	FieldSpecID,
	FieldSuiteRunID,
	FieldSuiteIndex,
	FieldStatus,
	FieldExecutionMode,
	FieldStreamingMode,
	FieldIsAutoRetry,
	FieldProgress,
	FieldCancelRequested,
	FieldAgentData,
	FieldStreamState,
	FieldLogs,
	FieldErrorMessage,
	FieldContainerID,
	FieldDurationMs,
	FieldPodID,
	FieldCreatedAt,
	FieldStartedAt,
	FieldCompletedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultIsAutoRetry holds the default value on creation for the "is_auto_retry" field.
	DefaultIsAutoRetry bool
	// DefaultProgress holds the default value on creation for the "progress" field.
	DefaultProgress int
	// DefaultCancelRequested holds the default value on creation for the "cancel_requested" field.
	DefaultCancelRequested bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending   Status = "pending"
	StatusRunning   Status = "running"
	StatusPassed    Status = "passed"
	StatusFailed    Status = "failed"
	StatusCancelled Status = "cancelled"
	StatusTimedOut  Status = "timed_out"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusRunning, StatusPassed, StatusFailed, StatusCancelled, StatusTimedOut:
		return nil
	default:
		return fmt.Errorf("run: invalid enum value for status field: %q", s)
	}
}

// ExecutionMode defines the type for the "execution_mode" enum field.
type ExecutionMode string

// ExecutionModeSpec is the default value of the ExecutionMode enum.
const DefaultExecutionMode = ExecutionModeSpec

// ExecutionMode values.
const (
	ExecutionModeSpec   ExecutionMode = "spec"
	ExecutionModeAgent  ExecutionMode = "agent"
	ExecutionModeHybrid ExecutionMode = "hybrid"
)

func (em ExecutionMode) String() string {
	return string(em)
}

// ExecutionModeValidator is a validator for the "execution_mode" field enum values. It is called by the builders before save.
func ExecutionModeValidator(em ExecutionMode) error {
	switch em {
	case ExecutionModeSpec, ExecutionModeAgent, ExecutionModeHybrid:
		return nil
	default:
		return fmt.Errorf("run: invalid enum value for execution_mode field: %q", em)
	}
}

// StreamingMode defines the type for the "streaming_mode" enum field.
type StreamingMode string

// StreamingModeNone is the default value of the StreamingMode enum.
const DefaultStreamingMode = StreamingModeNone

// StreamingMode values.
const (
	StreamingModeNone  StreamingMode = "none"
	StreamingModeVnc   StreamingMode = "vnc"
	StreamingModeVideo StreamingMode = "video"
)

func (sm StreamingMode) String() string {
	return string(sm)
}

// StreamingModeValidator is a validator for the "streaming_mode" field enum values. It is called by the builders before save.
func StreamingModeValidator(sm StreamingMode) error {
	switch sm {
	case StreamingModeNone, StreamingModeVnc, StreamingModeVideo:
		return nil
	default:
		return fmt.Errorf("run: invalid enum value for streaming_mode field: %q", sm)
	}
}

// OrderOption defines the ordering options for the Run queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySpecID orders the results by the spec_id field.
func BySpecID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSpecID, opts...).ToFunc()
}

// BySuiteRunID orders the results by the suite_run_id field.
func BySuiteRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuiteRunID, opts...).ToFunc()
}

// BySuiteIndex orders the results by the suite_index field.
func BySuiteIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuiteIndex, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByExecutionMode orders the results by the execution_mode field.
func ByExecutionMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExecutionMode, opts...).ToFunc()
}

// ByStreamingMode orders the results by the streaming_mode field.
func ByStreamingMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStreamingMode, opts...).ToFunc()
}

// ByIsAutoRetry orders the results by the is_auto_retry field.
func ByIsAutoRetry(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsAutoRetry, opts...).ToFunc()
}

// ByProgress orders the results by the progress field.
func ByProgress(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProgress, opts...).ToFunc()
}

// ByCancelRequested orders the results by the cancel_requested field.
func ByCancelRequested(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCancelRequested, opts...).ToFunc()
}

// ByLogs orders the results by the logs field.
func ByLogs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLogs, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByContainerID orders the results by the container_id field.
func ByContainerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContainerID, opts...).ToFunc()
}

// ByDurationMs orders the results by the duration_ms field.
func ByDurationMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationMs, opts...).ToFunc()
}

// ByPodID orders the results by the pod_id field.
func ByPodID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPodID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// BySpecField orders the results by spec field.
func BySpecField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSpecStep(), sql.OrderByField(field, opts...))
	}
}

// BySuiteRunField orders the results by suite_run field.
func BySuiteRunField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSuiteRunStep(), sql.OrderByField(field, opts...))
	}
}

// ByArtifactsCount orders the results by artifacts count.
func ByArtifactsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newArtifactsStep(), opts...)
	}
}

// ByArtifacts orders the results by artifacts terms.
func ByArtifacts(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newArtifactsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newSpecStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SpecInverseTable, SpecFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SpecTable, SpecColumn),
	)
}
func newSuiteRunStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SuiteRunInverseTable, SuiteRunFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SuiteRunTable, SuiteRunColumn),
	)
}
func newArtifactsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ArtifactsInverseTable, ArtifactFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ArtifactsTable, ArtifactsColumn),
	)
}
