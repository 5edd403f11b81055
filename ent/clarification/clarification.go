// Code generated by ent, DO NOT EDIT.

package clarification

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the clarification type in the database.
	Label = "clarification"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "clarification_id"
	// FieldSpecID holds the string denoting the spec_id field in the database.
	FieldSpecID = "spec_id"
	// FieldQuestion holds the string denoting the question field in the database.
	FieldQuestion = "question"
	// FieldAnswer holds the string denoting the answer field in the database.
	FieldAnswer = "answer"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldResolvedAt holds the string denoting the resolved_at field in the database.
	FieldResolvedAt = "resolved_at"
	// EdgeSpec holds the string denoting the spec edge name in mutations.
	EdgeSpec = "spec"
	// SpecFieldID holds the string denoting the ID field of the Spec.
	SpecFieldID = "spec_id"
	// Table holds the table name of the clarification in the database.
	Table = "clarifications"
	// SpecTable is the table that holds the spec relation/edge.
	SpecTable = "clarifications"
	// SpecInverseTable is the table name for the Spec entity.
	// It exists in this package in order to avoid circular dependency with the "spec" package.
	SpecInverseTable = "specs"
	// SpecColumn is the table column denoting the spec relation/edge.
	SpecColumn = "spec_id"
)

// Columns holds all SQL columns for clarification fields.
var Columns = []string{
	FieldID,
	FieldSpecID,
	FieldQuestion,
	FieldAnswer,
	FieldStatus,
	FieldCreatedAt,
	FieldResolvedAt,
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

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending  Status = "pending"
	StatusAnswered Status = "answered"
	StatusSkipped  Status = "skipped"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusAnswered, StatusSkipped:
		return nil
	default:
		return fmt.Errorf("clarification: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Clarification queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySpecID orders the results by the spec_id field.
func BySpecID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSpecID, opts...).ToFunc()
}

// ByQuestion orders the results by the question field.
func ByQuestion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestion, opts...).ToFunc()
}

// ByAnswer orders the results by the answer field.
func ByAnswer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnswer, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByResolvedAt orders the results by the resolved_at field.
func ByResolvedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResolvedAt, opts...).ToFunc()
}

// BySpecField orders the results by spec field.
func BySpecField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSpecStep(), sql.OrderByField(field, opts...))
	}
}
func newSpecStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SpecInverseTable, SpecFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SpecTable, SpecColumn),
	)
}
