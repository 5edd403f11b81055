// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dappsmith/conductor/ent/project"
)

// Project is the model entity for the Project schema.
type Project struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Base URL of the application under test
	DappURL string `json:"dapp_url,omitempty"`
	// Derived address; the only wallet material exposed after creation
	WalletAddress string `json:"wallet_address,omitempty"`
	// AES-GCM sealed seed phrase, write-once at creation
	WalletSeedCipher string `json:"-"`
	// One-way reference to the latest passing connection spec; nulled when stale
	ConnectionSpecID *string `json:"connection_spec_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Soft delete for retention policy
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ProjectQuery when eager-loading is set.
	Edges        ProjectEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ProjectEdges holds the relations/edges for other nodes in the graph.
type ProjectEdges struct {
	// Recordings holds the value of the recordings edge.
	Recordings []*Recording `json:"recordings,omitempty"`
	// SuiteRuns holds the value of the suite_runs edge.
	SuiteRuns []*SuiteRun `json:"suite_runs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// RecordingsOrErr returns the Recordings value or an error if the edge
// was not loaded in eager-loading.
func (e ProjectEdges) RecordingsOrErr() ([]*Recording, error) {
	if e.loadedTypes[0] {
		return e.Recordings, nil
	}
	return nil, &NotLoadedError{edge: "recordings"}
}

// SuiteRunsOrErr returns the SuiteRuns value or an error if the edge
// was not loaded in eager-loading.
func (e ProjectEdges) SuiteRunsOrErr() ([]*SuiteRun, error) {
	if e.loadedTypes[1] {
		return e.SuiteRuns, nil
	}
	return nil, &NotLoadedError{edge: "suite_runs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Project) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case project.FieldID, project.FieldName, project.FieldDappURL, project.FieldWalletAddress, project.FieldWalletSeedCipher, project.FieldConnectionSpecID:
			values[i] = new(sql.NullString)
		case project.FieldCreatedAt, project.FieldUpdatedAt, project.FieldDeletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Project fields.
func (_m *Project) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case project.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case project.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case project.FieldDappURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field dapp_url", values[i])
			} else if value.Valid {
				_m.DappURL = value.String
			}
		case project.FieldWalletAddress:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field wallet_address", values[i])
			} else if value.Valid {
				_m.WalletAddress = value.String
			}
		case project.FieldWalletSeedCipher:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field wallet_seed_cipher", values[i])
			} else if value.Valid {
				_m.WalletSeedCipher = value.String
			}
		case project.FieldConnectionSpecID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field connection_spec_id", values[i])
			} else if value.Valid {
				_m.ConnectionSpecID = new(string)
				*_m.ConnectionSpecID = value.String
			}
		case project.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case project.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case project.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = new(time.Time)
				*_m.DeletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Project.
// This includes values selected through modifiers, order, etc.
func (_m *Project) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRecordings queries the "recordings" edge of the Project entity.
func (_m *Project) QueryRecordings() *RecordingQuery {
	return NewProjectClient(_m.config).QueryRecordings(_m)
}

// QuerySuiteRuns queries the "suite_runs" edge of the Project entity.
func (_m *Project) QuerySuiteRuns() *SuiteRunQuery {
	return NewProjectClient(_m.config).QuerySuiteRuns(_m)
}

// Update returns a builder for updating this Project.
// Note that you need to call Project.Unwrap() before calling this method if this Project
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Project) Update() *ProjectUpdateOne {
	return NewProjectClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Project entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Project) Unwrap() *Project {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Project is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Project) String() string {
	var builder strings.Builder
	builder.WriteString("Project(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("dapp_url=")
	builder.WriteString(_m.DappURL)
	builder.WriteString(", ")
	builder.WriteString("wallet_address=")
	builder.WriteString(_m.WalletAddress)
	builder.WriteString(", ")
	builder.WriteString("wallet_seed_cipher=<sensitive>")
	builder.WriteString(", ")
	if v := _m.ConnectionSpecID; v != nil {
		builder.WriteString("connection_spec_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.DeletedAt; v != nil {
		builder.WriteString("deleted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Projects is a parsable slice of Project.
type Projects []*Project
