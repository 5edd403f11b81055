// Code generated by ent, DO NOT EDIT.

package spec

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the spec type in the database.
	Label = "spec"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "spec_id"
	// FieldRecordingID holds the string denoting the recording_id field in the database.
	FieldRecordingID = "recording_id"
	// FieldCode holds the string denoting the code field in the database.
	FieldCode = "code"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// FieldAttempt holds the string denoting the attempt field in the database.
	FieldAttempt = "attempt"
	// FieldMaxAttempts holds the string denoting the max_attempts field in the database.
	FieldMaxAttempts = "max_attempts"
	// FieldParentSpecID holds the string denoting the parent_spec_id field in the database.
	FieldParentSpecID = "parent_spec_id"
	// FieldFailureContext holds the string denoting the failure_context field in the database.
	FieldFailureContext = "failure_context"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeRecording holds the string denoting the recording edge name in mutations.
	EdgeRecording = "recording"
	// EdgeRuns holds the string denoting the runs edge name in mutations.
	EdgeRuns = "runs"
	// EdgeClarifications holds the string denoting the clarifications edge name in mutations.
	EdgeClarifications = "clarifications"
	// RecordingFieldID holds the string denoting the ID field of the Recording.
	RecordingFieldID = "recording_id"
	// RunFieldID holds the string denoting the ID field of the Run.
	RunFieldID = "run_id"
	// ClarificationFieldID holds the string denoting the ID field of the Clarification.
	ClarificationFieldID = "clarification_id"
	// Table holds the table name of the spec in the database.
	Table = "specs"
	// RecordingTable is the table that holds the recording relation/edge.
	RecordingTable = "specs"
	// RecordingInverseTable is the table name for the Recording entity.
	// It exists in this package in order to avoid circular dependency with the "recording" package.
	RecordingInverseTable = "recordings"
	// RecordingColumn is the table column denoting the recording relation/edge.
	RecordingColumn = "recording_id"
	// RunsTable is the table that holds the runs relation/edge.
	RunsTable = "runs"
	// RunsInverseTable is the table name for the Run entity.
	// It exists in this package in order to avoid circular dependency with the "run" package.
	RunsInverseTable = "runs"
	// RunsColumn is the table column denoting the runs relation/edge.
	RunsColumn = "spec_id"
	// ClarificationsTable is the table that holds the clarifications relation/edge.
	ClarificationsTable = "clarifications"
	// ClarificationsInverseTable is the table name for the Clarification entity.
	// It exists in this package in order to avoid circular dependency with the "clarification" package.
	ClarificationsInverseTable = "clarifications"
	// ClarificationsColumn is the table column denoting the clarifications relation/edge.
	ClarificationsColumn = "spec_id"
)

// Columns holds all SQL columns for spec fields.
var Columns = []string{
	FieldID,
	FieldRecordingID,
	FieldCode,
	FieldStatus,
	FieldVersion,
	FieldAttempt,
	FieldMaxAttempts,
	FieldParentSpecID,
	FieldFailureContext,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// DefaultVersion holds the default value on creation for the "version" field.
	DefaultVersion int
	// DefaultAttempt holds the default value on creation for the "attempt" field.
	DefaultAttempt int
	// DefaultMaxAttempts holds the default value on creation for the "max_attempts" field.
	DefaultMaxAttempts int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusDraft is the default value of the Status enum.
const DefaultStatus = StatusDraft

// Status values.
const (
	StatusDraft       Status = "draft"
	StatusNeedsReview Status = "needs_review"
	StatusReady       Status = "ready"
	StatusTested      Status = "tested"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusDraft, StatusNeedsReview, StatusReady, StatusTested:
		return nil
	default:
		return fmt.Errorf("spec: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Spec queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRecordingID orders the results by the recording_id field.
func ByRecordingID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecordingID, opts...).ToFunc()
}

// ByCode orders the results by the code field.
func ByCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCode, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
}

// ByAttempt orders the results by the attempt field.
func ByAttempt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttempt, opts...).ToFunc()
}

// ByMaxAttempts orders the results by the max_attempts field.
func ByMaxAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxAttempts, opts...).ToFunc()
}

// ByParentSpecID orders the results by the parent_spec_id field.
func ByParentSpecID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParentSpecID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByRecordingField orders the results by recording field.
func ByRecordingField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRecordingStep(), sql.OrderByField(field, opts...))
	}
}

// ByRunsCount orders the results by runs count.
func ByRunsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newRunsStep(), opts...)
	}
}

// ByRuns orders the results by runs terms.
func ByRuns(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRunsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByClarificationsCount orders the results by clarifications count.
func ByClarificationsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newClarificationsStep(), opts...)
	}
}

// ByClarifications orders the results by clarifications terms.
func ByClarifications(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newClarificationsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newRecordingStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RecordingInverseTable, RecordingFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, RecordingTable, RecordingColumn),
	)
}
func newRunsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RunsInverseTable, RunFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, RunsTable, RunsColumn),
	)
}
func newClarificationsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ClarificationsInverseTable, ClarificationFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ClarificationsTable, ClarificationsColumn),
	)
}
