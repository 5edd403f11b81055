// Code generated by ent, DO NOT EDIT.

package project

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the project type in the database.
	Label = "project"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "project_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldDappURL holds the string denoting the dapp_url field in the database.
	FieldDappURL = "dapp_url"
	// FieldWalletAddress holds the string denoting the wallet_address field in the database.
	FieldWalletAddress = "wallet_address"
	// FieldWalletSeedCipher holds the string denoting the wallet_seed_cipher field in the database.
	FieldWalletSeedCipher = "wallet_seed_cipher"
	// FieldConnectionSpecID holds the string denoting the connection_spec_id field in the database.
	FieldConnectionSpecID = "connection_spec_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldDeletedAt holds the string denoting the deleted_at field in the database.
	FieldDeletedAt = "deleted_at"
	// EdgeRecordings holds the string denoting the recordings edge name in mutations.
	EdgeRecordings = "recordings"
	// EdgeSuiteRuns holds the string denoting the suite_runs edge name in mutations.
	EdgeSuiteRuns = "suite_runs"
	// RecordingFieldID holds the string denoting the ID field of the Recording.
	RecordingFieldID = "recording_id"
	// SuiteRunFieldID holds the string denoting the ID field of the SuiteRun.
	SuiteRunFieldID = "suite_run_id"
	// Table holds the table name of the project in the database.
	Table = "projects"
	// RecordingsTable is the table that holds the recordings relation/edge.
	RecordingsTable = "recordings"
	// RecordingsInverseTable is the table name for the Recording entity.
	// It exists in this package in order to avoid circular dependency with the "recording" package.
	RecordingsInverseTable = "recordings"
	// RecordingsColumn is the table column denoting the recordings relation/edge.
	RecordingsColumn = "project_id"
	// SuiteRunsTable is the table that holds the suite_runs relation/edge.
	SuiteRunsTable = "suite_runs"
	// SuiteRunsInverseTable is the table name for the SuiteRun entity.
	// It exists in this package in order to avoid circular dependency with the "suiterun" package.
	SuiteRunsInverseTable = "suite_runs"
	// SuiteRunsColumn is the table column denoting the suite_runs relation/edge.
	SuiteRunsColumn = "project_id"
)

// Columns holds all SQL columns for project fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldDappURL,
	FieldWalletAddress,
	FieldWalletSeedCipher,
	FieldConnectionSpecID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldDeletedAt,
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
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the Project queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByDappURL orders the results by the dapp_url field.
func ByDappURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDappURL, opts...).ToFunc()
}

// ByWalletAddress orders the results by the wallet_address field.
func ByWalletAddress(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWalletAddress, opts...).ToFunc()
}

// ByWalletSeedCipher orders the results by the wallet_seed_cipher field.
func ByWalletSeedCipher(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWalletSeedCipher, opts...).ToFunc()
}

// ByConnectionSpecID orders the results by the connection_spec_id field.
func ByConnectionSpecID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConnectionSpecID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByDeletedAt orders the results by the deleted_at field.
func ByDeletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeletedAt, opts...).ToFunc()
}

// ByRecordingsCount orders the results by recordings count.
func ByRecordingsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newRecordingsStep(), opts...)
	}
}

// ByRecordings orders the results by recordings terms.
func ByRecordings(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRecordingsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// BySuiteRunsCount orders the results by suite_runs count.
func BySuiteRunsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSuiteRunsStep(), opts...)
	}
}

// BySuiteRuns orders the results by suite_runs terms.
func BySuiteRuns(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSuiteRunsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newRecordingsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RecordingsInverseTable, RecordingFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, RecordingsTable, RecordingsColumn),
	)
}
func newSuiteRunsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SuiteRunsInverseTable, SuiteRunFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SuiteRunsTable, SuiteRunsColumn),
	)
}
