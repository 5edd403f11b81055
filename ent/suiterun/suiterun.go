// Code generated by ent, DO NOT EDIT.

package suiterun

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the suiterun type in the database.
	Label = "suite_run"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "suite_run_id"
	// FieldProjectID holds the string denoting the project_id field in the database.
	FieldProjectID = "project_id"
	// FieldSpecIds holds the string denoting the spec_ids field in the database.
	FieldSpecIds = "spec_ids"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldTotalTests holds the string denoting the total_tests field in the database.
	FieldTotalTests = "total_tests"
	// FieldPassedTests holds the string denoting the passed_tests field in the database.
	FieldPassedTests = "passed_tests"
	// FieldFailedTests holds the string denoting the failed_tests field in the database.
	FieldFailedTests = "failed_tests"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// EdgeProject holds the string denoting the project edge name in mutations.
	EdgeProject = "project"
	// EdgeRuns holds the string denoting the runs edge name in mutations.
	EdgeRuns = "runs"
	// ProjectFieldID holds the string denoting the ID field of the Project.
	ProjectFieldID = "project_id"
	// RunFieldID holds the string denoting the ID field of the Run.
	RunFieldID = "run_id"
	// Table holds the table name of the suiterun in the database.
	Table = "suite_runs"
	// ProjectTable is the table that holds the project relation/edge.
	ProjectTable = "suite_runs"
	// ProjectInverseTable is the table name for the Project entity.
	// It exists in this package in order to avoid circular dependency with the "project" package.
	ProjectInverseTable = "projects"
	// ProjectColumn is the table column denoting the project relation/edge.
	ProjectColumn = "project_id"
	// RunsTable is the table that holds the runs relation/edge.
	RunsTable = "runs"
	// RunsInverseTable is the table name for the Run entity.
	// It exists in this package in order to avoid circular dependency with the "run" package.
	RunsInverseTable = "runs"
	// RunsColumn is the table column denoting the runs relation/edge.
	RunsColumn = "suite_run_id"
)

// Columns holds all SQL columns for suiterun fields.
var Columns = []string{
	FieldID,
	FieldProjectID,
	FieldSpecIds,
	FieldStatus,
	FieldTotalTests,
	FieldPassedTests,
	FieldFailedTests,
	FieldErrorMessage,
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
	// DefaultTotalTests holds the default value on creation for the "total_tests" field.
	DefaultTotalTests int
	// DefaultPassedTests holds the default value on creation for the "passed_tests" field.
	DefaultPassedTests int
	// DefaultFailedTests holds the default value on creation for the "failed_tests" field.
	DefaultFailedTests int
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
		return fmt.Errorf("suiterun: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the SuiteRun queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByProjectID orders the results by the project_id field.
func ByProjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProjectID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByTotalTests orders the results by the total_tests field.
func ByTotalTests(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalTests, opts...).ToFunc()
}

// ByPassedTests orders the results by the passed_tests field.
func ByPassedTests(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPassedTests, opts...).ToFunc()
}

// ByFailedTests orders the results by the failed_tests field.
func ByFailedTests(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailedTests, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
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

// ByProjectField orders the results by project field.
func ByProjectField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newProjectStep(), sql.OrderByField(field, opts...))
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
func newProjectStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProjectInverseTable, ProjectFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
	)
}
func newRunsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RunsInverseTable, RunFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, RunsTable, RunsColumn),
	)
}
