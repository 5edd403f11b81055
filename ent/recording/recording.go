// Code generated by ent, DO NOT EDIT.

package recording

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the recording type in the database.
	Label = "recording"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "recording_id"
	// FieldProjectID holds the string denoting the project_id field in the database.
	FieldProjectID = "project_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldRecordingType holds the string denoting the recording_type field in the database.
	FieldRecordingType = "recording_type"
	// FieldActions holds the string denoting the actions field in the database.
	FieldActions = "actions"
	// FieldURL holds the string denoting the url field in the database.
	FieldURL = "url"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeProject holds the string denoting the project edge name in mutations.
	EdgeProject = "project"
	// EdgeSpecs holds the string denoting the specs edge name in mutations.
	EdgeSpecs = "specs"
	// ProjectFieldID holds the string denoting the ID field of the Project.
	ProjectFieldID = "project_id"
	// SpecFieldID holds the string denoting the ID field of the Spec.
	SpecFieldID = "spec_id"
	// Table holds the table name of the recording in the database.
	Table = "recordings"
	// ProjectTable is the table that holds the project relation/edge.
	ProjectTable = "recordings"
	// ProjectInverseTable is the table name for the Project entity.
	// It exists in this package in order to avoid circular dependency with the "project" package.
	ProjectInverseTable = "projects"
	// ProjectColumn is the table column denoting the project relation/edge.
	ProjectColumn = "project_id"
	// SpecsTable is the table that holds the specs relation/edge.
	SpecsTable = "specs"
	// SpecsInverseTable is the table name for the Spec entity.
	// It exists in this package in order to avoid circular dependency with the "spec" package.
	SpecsInverseTable = "specs"
	// SpecsColumn is the table column denoting the specs relation/edge.
	SpecsColumn = "recording_id"
)

// Columns holds all SQL columns for recording fields.
var Columns = []string{
	FieldID,
	FieldProjectID,
	FieldName,
	FieldRecordingType,
	FieldActions,
	FieldURL,
	FieldCreatedAt,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// RecordingType defines the type for the "recording_type" enum field.
type RecordingType string

// RecordingType values.
const (
	RecordingTypeConnection RecordingType = "connection"
	RecordingTypeFlow       RecordingType = "flow"
)

func (rt RecordingType) String() string {
	return string(rt)
}

// RecordingTypeValidator is a validator for the "recording_type" field enum values. It is called by the builders before save.
func RecordingTypeValidator(rt RecordingType) error {
	switch rt {
	case RecordingTypeConnection, RecordingTypeFlow:
		return nil
	default:
		return fmt.Errorf("recording: invalid enum value for recording_type field: %q", rt)
	}
}

// OrderOption defines the ordering options for the Recording queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByProjectID orders the results by the project_id field.
func ByProjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProjectID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByRecordingType orders the results by the recording_type field.
func ByRecordingType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecordingType, opts...).ToFunc()
}

// ByURL orders the results by the url field.
func ByURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldURL, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByProjectField orders the results by project field.
func ByProjectField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newProjectStep(), sql.OrderByField(field, opts...))
	}
}

// BySpecsCount orders the results by specs count.
func BySpecsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSpecsStep(), opts...)
	}
}

// BySpecs orders the results by specs terms.
func BySpecs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSpecsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newProjectStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProjectInverseTable, ProjectFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
	)
}
func newSpecsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SpecsInverseTable, SpecFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SpecsTable, SpecsColumn),
	)
}
