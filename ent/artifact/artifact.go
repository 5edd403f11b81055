// Code generated by ent, DO NOT EDIT.

package artifact

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the artifact type in the database.
	Label = "artifact"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "artifact_id"
	// FieldRunID holds the string denoting the run_id field in the database.
	FieldRunID = "run_id"
	// FieldArtifactType holds the string denoting the artifact_type field in the database.
	FieldArtifactType = "artifact_type"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldStoragePath holds the string denoting the storage_path field in the database.
	FieldStoragePath = "storage_path"
	// FieldMimeType holds the string denoting the mime_type field in the database.
	FieldMimeType = "mime_type"
	// FieldSizeBytes holds the string denoting the size_bytes field in the database.
	FieldSizeBytes = "size_bytes"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeRun holds the string denoting the run edge name in mutations.
	EdgeRun = "run"
	// RunFieldID holds the string denoting the ID field of the Run.
	RunFieldID = "run_id"
	// Table holds the table name of the artifact in the database.
	Table = "artifacts"
	// RunTable is the table that holds the run relation/edge.
	RunTable = "artifacts"
	// RunInverseTable is the table name for the Run entity.
	// It exists in this package in order to avoid circular dependency with the "run" package.
	RunInverseTable = "runs"
	// RunColumn is the table column denoting the run relation/edge.
	RunColumn = "run_id"
)

// Columns holds all SQL columns for artifact fields.
var Columns = []string{
	FieldID,
	FieldRunID,
	FieldArtifactType,
	FieldName,
	FieldStoragePath,
	FieldMimeType,
	FieldSizeBytes,
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

// ArtifactType defines the type for the "artifact_type" enum field.
type ArtifactType string

// ArtifactType values.
const (
	ArtifactTypeScreenshot ArtifactType = "screenshot"
	ArtifactTypeVideo      ArtifactType = "video"
	ArtifactTypeTrace      ArtifactType = "trace"
	ArtifactTypeLog        ArtifactType = "log"
)

func (at ArtifactType) String() string {
	return string(at)
}

// ArtifactTypeValidator is a validator for the "artifact_type" field enum values. It is called by the builders before save.
func ArtifactTypeValidator(at ArtifactType) error {
	switch at {
	case ArtifactTypeScreenshot, ArtifactTypeVideo, ArtifactTypeTrace, ArtifactTypeLog:
		return nil
	default:
		return fmt.Errorf("artifact: invalid enum value for artifact_type field: %q", at)
	}
}

// OrderOption defines the ordering options for the Artifact queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRunID orders the results by the run_id field.
func ByRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunID, opts...).ToFunc()
}

// ByArtifactType orders the results by the artifact_type field.
func ByArtifactType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldArtifactType, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByStoragePath orders the results by the storage_path field.
func ByStoragePath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStoragePath, opts...).ToFunc()
}

// ByMimeType orders the results by the mime_type field.
func ByMimeType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMimeType, opts...).ToFunc()
}

// BySizeBytes orders the results by the size_bytes field.
func BySizeBytes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSizeBytes, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByRunField orders the results by run field.
func ByRunField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRunStep(), sql.OrderByField(field, opts...))
	}
}
func newRunStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RunInverseTable, RunFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, RunTable, RunColumn),
	)
}
