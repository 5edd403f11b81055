// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dappsmith/conductor/ent/artifact"
	"github.com/dappsmith/conductor/ent/clarification"
	"github.com/dappsmith/conductor/ent/event"
	"github.com/dappsmith/conductor/ent/job"
	"github.com/dappsmith/conductor/ent/predicate"
	"github.com/dappsmith/conductor/ent/project"
	"github.com/dappsmith/conductor/ent/recording"
	"github.com/dappsmith/conductor/ent/run"
	"github.com/dappsmith/conductor/ent/spec"
	"github.com/dappsmith/conductor/ent/suiterun"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeArtifact      = "Artifact"
	TypeClarification = "Clarification"
	TypeEvent         = "Event"
	TypeJob           = "Job"
	TypeProject       = "Project"
	TypeRecording     = "Recording"
	TypeRun           = "Run"
	TypeSpec          = "Spec"
	TypeSuiteRun      = "SuiteRun"
)

// ArtifactMutation represents an operation that mutates the Artifact nodes in the graph.
type ArtifactMutation struct {
	config
	op            Op
	typ           string
	id            *string
	artifact_type *artifact.ArtifactType
	name          *string
	storage_path  *string
	mime_type     *string
	size_bytes    *int64
	addsize_bytes *int64
	created_at    *time.Time
	clearedFields map[string]struct{}
	run           *string
	clearedrun    bool
	done          bool
	oldValue      func(context.Context) (*Artifact, error)
	predicates    []predicate.Artifact
}

var _ ent.Mutation = (*ArtifactMutation)(nil)

// artifactOption allows management of the mutation configuration using functional options.
type artifactOption func(*ArtifactMutation)

// newArtifactMutation creates new mutation for the Artifact entity.
func newArtifactMutation(c config, op Op, opts ...artifactOption) *ArtifactMutation {
	m := &ArtifactMutation{
		config:        c,
		op:            op,
		typ:           TypeArtifact,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withArtifactID sets the ID field of the mutation.
func withArtifactID(id string) artifactOption {
	return func(m *ArtifactMutation) {
		var (
			err   error
			once  sync.Once
			value *Artifact
		)
		m.oldValue = func(ctx context.Context) (*Artifact, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Artifact.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withArtifact sets the old Artifact of the mutation.
func withArtifact(node *Artifact) artifactOption {
	return func(m *ArtifactMutation) {
		m.oldValue = func(context.Context) (*Artifact, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ArtifactMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ArtifactMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Artifact entities.
func (m *ArtifactMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ArtifactMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ArtifactMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Artifact.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *ArtifactMutation) SetRunID(s string) {
	m.run = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *ArtifactMutation) RunID() (r string, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the Artifact entity.
// If the Artifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *ArtifactMutation) ResetRunID() {
	m.run = nil
}

// SetArtifactType sets the "artifact_type" field.
func (m *ArtifactMutation) SetArtifactType(at artifact.ArtifactType) {
	m.artifact_type = &at
}

// ArtifactType returns the value of the "artifact_type" field in the mutation.
func (m *ArtifactMutation) ArtifactType() (r artifact.ArtifactType, exists bool) {
	v := m.artifact_type
	if v == nil {
		return
	}
	return *v, true
}

// OldArtifactType returns the old "artifact_type" field's value of the Artifact entity.
// If the Artifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactMutation) OldArtifactType(ctx context.Context) (v artifact.ArtifactType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArtifactType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArtifactType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArtifactType: %w", err)
	}
	return oldValue.ArtifactType, nil
}

// ResetArtifactType resets all changes to the "artifact_type" field.
func (m *ArtifactMutation) ResetArtifactType() {
	m.artifact_type = nil
}

// SetName sets the "name" field.
func (m *ArtifactMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ArtifactMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Artifact entity.
// If the Artifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ArtifactMutation) ResetName() {
	m.name = nil
}

// SetStoragePath sets the "storage_path" field.
func (m *ArtifactMutation) SetStoragePath(s string) {
	m.storage_path = &s
}

// StoragePath returns the value of the "storage_path" field in the mutation.
func (m *ArtifactMutation) StoragePath() (r string, exists bool) {
	v := m.storage_path
	if v == nil {
		return
	}
	return *v, true
}

// OldStoragePath returns the old "storage_path" field's value of the Artifact entity.
// If the Artifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactMutation) OldStoragePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStoragePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStoragePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStoragePath: %w", err)
	}
	return oldValue.StoragePath, nil
}

// ResetStoragePath resets all changes to the "storage_path" field.
func (m *ArtifactMutation) ResetStoragePath() {
	m.storage_path = nil
}

// SetMimeType sets the "mime_type" field.
func (m *ArtifactMutation) SetMimeType(s string) {
	m.mime_type = &s
}

// MimeType returns the value of the "mime_type" field in the mutation.
func (m *ArtifactMutation) MimeType() (r string, exists bool) {
	v := m.mime_type
	if v == nil {
		return
	}
	return *v, true
}

// OldMimeType returns the old "mime_type" field's value of the Artifact entity.
// If the Artifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactMutation) OldMimeType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMimeType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMimeType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMimeType: %w", err)
	}
	return oldValue.MimeType, nil
}

// ResetMimeType resets all changes to the "mime_type" field.
func (m *ArtifactMutation) ResetMimeType() {
	m.mime_type = nil
}

// SetSizeBytes sets the "size_bytes" field.
func (m *ArtifactMutation) SetSizeBytes(i int64) {
	m.size_bytes = &i
	m.addsize_bytes = nil
}

// SizeBytes returns the value of the "size_bytes" field in the mutation.
func (m *ArtifactMutation) SizeBytes() (r int64, exists bool) {
	v := m.size_bytes
	if v == nil {
		return
	}
	return *v, true
}

// OldSizeBytes returns the old "size_bytes" field's value of the Artifact entity.
// If the Artifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactMutation) OldSizeBytes(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSizeBytes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSizeBytes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSizeBytes: %w", err)
	}
	return oldValue.SizeBytes, nil
}

// AddSizeBytes adds i to the "size_bytes" field.
func (m *ArtifactMutation) AddSizeBytes(i int64) {
	if m.addsize_bytes != nil {
		*m.addsize_bytes += i
	} else {
		m.addsize_bytes = &i
	}
}

// AddedSizeBytes returns the value that was added to the "size_bytes" field in this mutation.
func (m *ArtifactMutation) AddedSizeBytes() (r int64, exists bool) {
	v := m.addsize_bytes
	if v == nil {
		return
	}
	return *v, true
}

// ClearSizeBytes clears the value of the "size_bytes" field.
func (m *ArtifactMutation) ClearSizeBytes() {
	m.size_bytes = nil
	m.addsize_bytes = nil
	m.clearedFields[artifact.FieldSizeBytes] = struct{}{}
}

// SizeBytesCleared returns if the "size_bytes" field was cleared in this mutation.
func (m *ArtifactMutation) SizeBytesCleared() bool {
	_, ok := m.clearedFields[artifact.FieldSizeBytes]
	return ok
}

// ResetSizeBytes resets all changes to the "size_bytes" field.
func (m *ArtifactMutation) ResetSizeBytes() {
	m.size_bytes = nil
	m.addsize_bytes = nil
	delete(m.clearedFields, artifact.FieldSizeBytes)
}

// SetCreatedAt sets the "created_at" field.
func (m *ArtifactMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ArtifactMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Artifact entity.
// If the Artifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ArtifactMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearRun clears the "run" edge to the Run entity.
func (m *ArtifactMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[artifact.FieldRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the Run entity was cleared.
func (m *ArtifactMutation) RunCleared() bool {
	return m.clearedrun
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *ArtifactMutation) RunIDs() (ids []string) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *ArtifactMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// Where appends a list predicates to the ArtifactMutation builder.
func (m *ArtifactMutation) Where(ps ...predicate.Artifact) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ArtifactMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ArtifactMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Artifact, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ArtifactMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ArtifactMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Artifact).
func (m *ArtifactMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ArtifactMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.run != nil {
		fields = append(fields, artifact.FieldRunID)
	}
	if m.artifact_type != nil {
		fields = append(fields, artifact.FieldArtifactType)
	}
	if m.name != nil {
		fields = append(fields, artifact.FieldName)
	}
	if m.storage_path != nil {
		fields = append(fields, artifact.FieldStoragePath)
	}
	if m.mime_type != nil {
		fields = append(fields, artifact.FieldMimeType)
	}
	if m.size_bytes != nil {
		fields = append(fields, artifact.FieldSizeBytes)
	}
	if m.created_at != nil {
		fields = append(fields, artifact.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ArtifactMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case artifact.FieldRunID:
		return m.RunID()
	case artifact.FieldArtifactType:
		return m.ArtifactType()
	case artifact.FieldName:
		return m.Name()
	case artifact.FieldStoragePath:
		return m.StoragePath()
	case artifact.FieldMimeType:
		return m.MimeType()
	case artifact.FieldSizeBytes:
		return m.SizeBytes()
	case artifact.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ArtifactMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case artifact.FieldRunID:
		return m.OldRunID(ctx)
	case artifact.FieldArtifactType:
		return m.OldArtifactType(ctx)
	case artifact.FieldName:
		return m.OldName(ctx)
	case artifact.FieldStoragePath:
		return m.OldStoragePath(ctx)
	case artifact.FieldMimeType:
		return m.OldMimeType(ctx)
	case artifact.FieldSizeBytes:
		return m.OldSizeBytes(ctx)
	case artifact.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Artifact field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ArtifactMutation) SetField(name string, value ent.Value) error {
	switch name {
	case artifact.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case artifact.FieldArtifactType:
		v, ok := value.(artifact.ArtifactType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArtifactType(v)
		return nil
	case artifact.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case artifact.FieldStoragePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStoragePath(v)
		return nil
	case artifact.FieldMimeType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMimeType(v)
		return nil
	case artifact.FieldSizeBytes:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSizeBytes(v)
		return nil
	case artifact.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Artifact field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ArtifactMutation) AddedFields() []string {
	var fields []string
	if m.addsize_bytes != nil {
		fields = append(fields, artifact.FieldSizeBytes)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ArtifactMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case artifact.FieldSizeBytes:
		return m.AddedSizeBytes()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ArtifactMutation) AddField(name string, value ent.Value) error {
	switch name {
	case artifact.FieldSizeBytes:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSizeBytes(v)
		return nil
	}
	return fmt.Errorf("unknown Artifact numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ArtifactMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(artifact.FieldSizeBytes) {
		fields = append(fields, artifact.FieldSizeBytes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ArtifactMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ArtifactMutation) ClearField(name string) error {
	switch name {
	case artifact.FieldSizeBytes:
		m.ClearSizeBytes()
		return nil
	}
	return fmt.Errorf("unknown Artifact nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ArtifactMutation) ResetField(name string) error {
	switch name {
	case artifact.FieldRunID:
		m.ResetRunID()
		return nil
	case artifact.FieldArtifactType:
		m.ResetArtifactType()
		return nil
	case artifact.FieldName:
		m.ResetName()
		return nil
	case artifact.FieldStoragePath:
		m.ResetStoragePath()
		return nil
	case artifact.FieldMimeType:
		m.ResetMimeType()
		return nil
	case artifact.FieldSizeBytes:
		m.ResetSizeBytes()
		return nil
	case artifact.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Artifact field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ArtifactMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.run != nil {
		edges = append(edges, artifact.EdgeRun)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ArtifactMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case artifact.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ArtifactMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ArtifactMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ArtifactMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrun {
		edges = append(edges, artifact.EdgeRun)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ArtifactMutation) EdgeCleared(name string) bool {
	switch name {
	case artifact.EdgeRun:
		return m.clearedrun
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ArtifactMutation) ClearEdge(name string) error {
	switch name {
	case artifact.EdgeRun:
		m.ClearRun()
		return nil
	}
	return fmt.Errorf("unknown Artifact unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ArtifactMutation) ResetEdge(name string) error {
	switch name {
	case artifact.EdgeRun:
		m.ResetRun()
		return nil
	}
	return fmt.Errorf("unknown Artifact edge %s", name)
}

// ClarificationMutation represents an operation that mutates the Clarification nodes in the graph.
type ClarificationMutation struct {
	config
	op            Op
	typ           string
	id            *string
	question      *string
	answer        *string
	status        *clarification.Status
	created_at    *time.Time
	resolved_at   *time.Time
	clearedFields map[string]struct{}
	spec          *string
	clearedspec   bool
	done          bool
	oldValue      func(context.Context) (*Clarification, error)
	predicates    []predicate.Clarification
}

var _ ent.Mutation = (*ClarificationMutation)(nil)

// clarificationOption allows management of the mutation configuration using functional options.
type clarificationOption func(*ClarificationMutation)

// newClarificationMutation creates new mutation for the Clarification entity.
func newClarificationMutation(c config, op Op, opts ...clarificationOption) *ClarificationMutation {
	m := &ClarificationMutation{
		config:        c,
		op:            op,
		typ:           TypeClarification,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withClarificationID sets the ID field of the mutation.
func withClarificationID(id string) clarificationOption {
	return func(m *ClarificationMutation) {
		var (
			err   error
			once  sync.Once
			value *Clarification
		)
		m.oldValue = func(ctx context.Context) (*Clarification, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Clarification.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withClarification sets the old Clarification of the mutation.
func withClarification(node *Clarification) clarificationOption {
	return func(m *ClarificationMutation) {
		m.oldValue = func(context.Context) (*Clarification, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ClarificationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ClarificationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Clarification entities.
func (m *ClarificationMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ClarificationMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ClarificationMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Clarification.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSpecID sets the "spec_id" field.
func (m *ClarificationMutation) SetSpecID(s string) {
	m.spec = &s
}

// SpecID returns the value of the "spec_id" field in the mutation.
func (m *ClarificationMutation) SpecID() (r string, exists bool) {
	v := m.spec
	if v == nil {
		return
	}
	return *v, true
}

// OldSpecID returns the old "spec_id" field's value of the Clarification entity.
// If the Clarification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClarificationMutation) OldSpecID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpecID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpecID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpecID: %w", err)
	}
	return oldValue.SpecID, nil
}

// ResetSpecID resets all changes to the "spec_id" field.
func (m *ClarificationMutation) ResetSpecID() {
	m.spec = nil
}

// SetQuestion sets the "question" field.
func (m *ClarificationMutation) SetQuestion(s string) {
	m.question = &s
}

// Question returns the value of the "question" field in the mutation.
func (m *ClarificationMutation) Question() (r string, exists bool) {
	v := m.question
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestion returns the old "question" field's value of the Clarification entity.
// If the Clarification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClarificationMutation) OldQuestion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestion: %w", err)
	}
	return oldValue.Question, nil
}

// ResetQuestion resets all changes to the "question" field.
func (m *ClarificationMutation) ResetQuestion() {
	m.question = nil
}

// SetAnswer sets the "answer" field.
func (m *ClarificationMutation) SetAnswer(s string) {
	m.answer = &s
}

// Answer returns the value of the "answer" field in the mutation.
func (m *ClarificationMutation) Answer() (r string, exists bool) {
	v := m.answer
	if v == nil {
		return
	}
	return *v, true
}

// OldAnswer returns the old "answer" field's value of the Clarification entity.
// If the Clarification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClarificationMutation) OldAnswer(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnswer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnswer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnswer: %w", err)
	}
	return oldValue.Answer, nil
}

// ClearAnswer clears the value of the "answer" field.
func (m *ClarificationMutation) ClearAnswer() {
	m.answer = nil
	m.clearedFields[clarification.FieldAnswer] = struct{}{}
}

// AnswerCleared returns if the "answer" field was cleared in this mutation.
func (m *ClarificationMutation) AnswerCleared() bool {
	_, ok := m.clearedFields[clarification.FieldAnswer]
	return ok
}

// ResetAnswer resets all changes to the "answer" field.
func (m *ClarificationMutation) ResetAnswer() {
	m.answer = nil
	delete(m.clearedFields, clarification.FieldAnswer)
}

// SetStatus sets the "status" field.
func (m *ClarificationMutation) SetStatus(c clarification.Status) {
	m.status = &c
}

// Status returns the value of the "status" field in the mutation.
func (m *ClarificationMutation) Status() (r clarification.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Clarification entity.
// If the Clarification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClarificationMutation) OldStatus(ctx context.Context) (v clarification.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ClarificationMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ClarificationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ClarificationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Clarification entity.
// If the Clarification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClarificationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ClarificationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetResolvedAt sets the "resolved_at" field.
func (m *ClarificationMutation) SetResolvedAt(t time.Time) {
	m.resolved_at = &t
}

// ResolvedAt returns the value of the "resolved_at" field in the mutation.
func (m *ClarificationMutation) ResolvedAt() (r time.Time, exists bool) {
	v := m.resolved_at
	if v == nil {
		return
	}
	return *v, true
}

// OldResolvedAt returns the old "resolved_at" field's value of the Clarification entity.
// If the Clarification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClarificationMutation) OldResolvedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolvedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolvedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolvedAt: %w", err)
	}
	return oldValue.ResolvedAt, nil
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (m *ClarificationMutation) ClearResolvedAt() {
	m.resolved_at = nil
	m.clearedFields[clarification.FieldResolvedAt] = struct{}{}
}

// ResolvedAtCleared returns if the "resolved_at" field was cleared in this mutation.
func (m *ClarificationMutation) ResolvedAtCleared() bool {
	_, ok := m.clearedFields[clarification.FieldResolvedAt]
	return ok
}

// ResetResolvedAt resets all changes to the "resolved_at" field.
func (m *ClarificationMutation) ResetResolvedAt() {
	m.resolved_at = nil
	delete(m.clearedFields, clarification.FieldResolvedAt)
}

// ClearSpec clears the "spec" edge to the Spec entity.
func (m *ClarificationMutation) ClearSpec() {
	m.clearedspec = true
	m.clearedFields[clarification.FieldSpecID] = struct{}{}
}

// SpecCleared reports if the "spec" edge to the Spec entity was cleared.
func (m *ClarificationMutation) SpecCleared() bool {
	return m.clearedspec
}

// SpecIDs returns the "spec" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SpecID instead. It exists only for internal usage by the builders.
func (m *ClarificationMutation) SpecIDs() (ids []string) {
	if id := m.spec; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSpec resets all changes to the "spec" edge.
func (m *ClarificationMutation) ResetSpec() {
	m.spec = nil
	m.clearedspec = false
}

// Where appends a list predicates to the ClarificationMutation builder.
func (m *ClarificationMutation) Where(ps ...predicate.Clarification) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ClarificationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ClarificationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Clarification, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ClarificationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ClarificationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Clarification).
func (m *ClarificationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ClarificationMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.spec != nil {
		fields = append(fields, clarification.FieldSpecID)
	}
	if m.question != nil {
		fields = append(fields, clarification.FieldQuestion)
	}
	if m.answer != nil {
		fields = append(fields, clarification.FieldAnswer)
	}
	if m.status != nil {
		fields = append(fields, clarification.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, clarification.FieldCreatedAt)
	}
	if m.resolved_at != nil {
		fields = append(fields, clarification.FieldResolvedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ClarificationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case clarification.FieldSpecID:
		return m.SpecID()
	case clarification.FieldQuestion:
		return m.Question()
	case clarification.FieldAnswer:
		return m.Answer()
	case clarification.FieldStatus:
		return m.Status()
	case clarification.FieldCreatedAt:
		return m.CreatedAt()
	case clarification.FieldResolvedAt:
		return m.ResolvedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ClarificationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case clarification.FieldSpecID:
		return m.OldSpecID(ctx)
	case clarification.FieldQuestion:
		return m.OldQuestion(ctx)
	case clarification.FieldAnswer:
		return m.OldAnswer(ctx)
	case clarification.FieldStatus:
		return m.OldStatus(ctx)
	case clarification.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case clarification.FieldResolvedAt:
		return m.OldResolvedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Clarification field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClarificationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case clarification.FieldSpecID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpecID(v)
		return nil
	case clarification.FieldQuestion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestion(v)
		return nil
	case clarification.FieldAnswer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnswer(v)
		return nil
	case clarification.FieldStatus:
		v, ok := value.(clarification.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case clarification.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case clarification.FieldResolvedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolvedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Clarification field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ClarificationMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ClarificationMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClarificationMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Clarification numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ClarificationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(clarification.FieldAnswer) {
		fields = append(fields, clarification.FieldAnswer)
	}
	if m.FieldCleared(clarification.FieldResolvedAt) {
		fields = append(fields, clarification.FieldResolvedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ClarificationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ClarificationMutation) ClearField(name string) error {
	switch name {
	case clarification.FieldAnswer:
		m.ClearAnswer()
		return nil
	case clarification.FieldResolvedAt:
		m.ClearResolvedAt()
		return nil
	}
	return fmt.Errorf("unknown Clarification nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ClarificationMutation) ResetField(name string) error {
	switch name {
	case clarification.FieldSpecID:
		m.ResetSpecID()
		return nil
	case clarification.FieldQuestion:
		m.ResetQuestion()
		return nil
	case clarification.FieldAnswer:
		m.ResetAnswer()
		return nil
	case clarification.FieldStatus:
		m.ResetStatus()
		return nil
	case clarification.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case clarification.FieldResolvedAt:
		m.ResetResolvedAt()
		return nil
	}
	return fmt.Errorf("unknown Clarification field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ClarificationMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.spec != nil {
		edges = append(edges, clarification.EdgeSpec)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ClarificationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case clarification.EdgeSpec:
		if id := m.spec; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ClarificationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ClarificationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ClarificationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedspec {
		edges = append(edges, clarification.EdgeSpec)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ClarificationMutation) EdgeCleared(name string) bool {
	switch name {
	case clarification.EdgeSpec:
		return m.clearedspec
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ClarificationMutation) ClearEdge(name string) error {
	switch name {
	case clarification.EdgeSpec:
		m.ClearSpec()
		return nil
	}
	return fmt.Errorf("unknown Clarification unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ClarificationMutation) ResetEdge(name string) error {
	switch name {
	case clarification.EdgeSpec:
		m.ResetSpec()
		return nil
	}
	return fmt.Errorf("unknown Clarification edge %s", name)
}

// EventMutation represents an operation that mutates the Event nodes in the graph.
type EventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	run_id        *string
	channel       *string
	payload       *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Event, error)
	predicates    []predicate.Event
}

var _ ent.Mutation = (*EventMutation)(nil)

// eventOption allows management of the mutation configuration using functional options.
type eventOption func(*EventMutation)

// newEventMutation creates new mutation for the Event entity.
func newEventMutation(c config, op Op, opts ...eventOption) *EventMutation {
	m := &EventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventID sets the ID field of the mutation.
func withEventID(id int) eventOption {
	return func(m *EventMutation) {
		var (
			err   error
			once  sync.Once
			value *Event
		)
		m.oldValue = func(ctx context.Context) (*Event, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Event.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvent sets the old Event of the mutation.
func withEvent(node *Event) eventOption {
	return func(m *EventMutation) {
		m.oldValue = func(context.Context) (*Event, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Event.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *EventMutation) SetRunID(s string) {
	m.run_id = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *EventMutation) RunID() (r string, exists bool) {
	v := m.run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ClearRunID clears the value of the "run_id" field.
func (m *EventMutation) ClearRunID() {
	m.run_id = nil
	m.clearedFields[event.FieldRunID] = struct{}{}
}

// RunIDCleared returns if the "run_id" field was cleared in this mutation.
func (m *EventMutation) RunIDCleared() bool {
	_, ok := m.clearedFields[event.FieldRunID]
	return ok
}

// ResetRunID resets all changes to the "run_id" field.
func (m *EventMutation) ResetRunID() {
	m.run_id = nil
	delete(m.clearedFields, event.FieldRunID)
}

// SetChannel sets the "channel" field.
func (m *EventMutation) SetChannel(s string) {
	m.channel = &s
}

// Channel returns the value of the "channel" field in the mutation.
func (m *EventMutation) Channel() (r string, exists bool) {
	v := m.channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChannel returns the old "channel" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldChannel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannel: %w", err)
	}
	return oldValue.Channel, nil
}

// ResetChannel resets all changes to the "channel" field.
func (m *EventMutation) ResetChannel() {
	m.channel = nil
}

// SetPayload sets the "payload" field.
func (m *EventMutation) SetPayload(s string) {
	m.payload = &s
}

// Payload returns the value of the "payload" field in the mutation.
func (m *EventMutation) Payload() (r string, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldPayload(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *EventMutation) ResetPayload() {
	m.payload = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the EventMutation builder.
func (m *EventMutation) Where(ps ...predicate.Event) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Event, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Event).
func (m *EventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.run_id != nil {
		fields = append(fields, event.FieldRunID)
	}
	if m.channel != nil {
		fields = append(fields, event.FieldChannel)
	}
	if m.payload != nil {
		fields = append(fields, event.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, event.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case event.FieldRunID:
		return m.RunID()
	case event.FieldChannel:
		return m.Channel()
	case event.FieldPayload:
		return m.Payload()
	case event.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case event.FieldRunID:
		return m.OldRunID(ctx)
	case event.FieldChannel:
		return m.OldChannel(ctx)
	case event.FieldPayload:
		return m.OldPayload(ctx)
	case event.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Event field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case event.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case event.FieldChannel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannel(v)
		return nil
	case event.FieldPayload:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case event.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Event numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(event.FieldRunID) {
		fields = append(fields, event.FieldRunID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventMutation) ClearField(name string) error {
	switch name {
	case event.FieldRunID:
		m.ClearRunID()
		return nil
	}
	return fmt.Errorf("unknown Event nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventMutation) ResetField(name string) error {
	switch name {
	case event.FieldRunID:
		m.ResetRunID()
		return nil
	case event.FieldChannel:
		m.ResetChannel()
		return nil
	case event.FieldPayload:
		m.ResetPayload()
		return nil
	case event.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Event unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Event edge %s", name)
}

// JobMutation represents an operation that mutates the Job nodes in the graph.
type JobMutation struct {
	config
	op                Op
	typ               string
	id                *string
	kind              *job.Kind
	payload           *map[string]interface{}
	status            *job.Status
	attempt           *int
	addattempt        *int
	max_attempts      *int
	addmax_attempts   *int
	next_attempt_at   *time.Time
	locked_by         *string
	lock_expires_at   *time.Time
	last_heartbeat_at *time.Time
	progress          *int
	addprogress       *int
	cancel_requested  *bool
	run_id            *string
	last_error        *string
	created_at        *time.Time
	completed_at      *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*Job, error)
	predicates        []predicate.Job
}

var _ ent.Mutation = (*JobMutation)(nil)

// jobOption allows management of the mutation configuration using functional options.
type jobOption func(*JobMutation)

// newJobMutation creates new mutation for the Job entity.
func newJobMutation(c config, op Op, opts ...jobOption) *JobMutation {
	m := &JobMutation{
		config:        c,
		op:            op,
		typ:           TypeJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withJobID sets the ID field of the mutation.
func withJobID(id string) jobOption {
	return func(m *JobMutation) {
		var (
			err   error
			once  sync.Once
			value *Job
		)
		m.oldValue = func(ctx context.Context) (*Job, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Job.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withJob sets the old Job of the mutation.
func withJob(node *Job) jobOption {
	return func(m *JobMutation) {
		m.oldValue = func(context.Context) (*Job, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m JobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m JobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Job entities.
func (m *JobMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *JobMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *JobMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Job.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetKind sets the "kind" field.
func (m *JobMutation) SetKind(j job.Kind) {
	m.kind = &j
}

// Kind returns the value of the "kind" field in the mutation.
func (m *JobMutation) Kind() (r job.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldKind(ctx context.Context) (v job.Kind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *JobMutation) ResetKind() {
	m.kind = nil
}

// SetPayload sets the "payload" field.
func (m *JobMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *JobMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *JobMutation) ResetPayload() {
	m.payload = nil
}

// SetStatus sets the "status" field.
func (m *JobMutation) SetStatus(j job.Status) {
	m.status = &j
}

// Status returns the value of the "status" field in the mutation.
func (m *JobMutation) Status() (r job.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldStatus(ctx context.Context) (v job.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *JobMutation) ResetStatus() {
	m.status = nil
}

// SetAttempt sets the "attempt" field.
func (m *JobMutation) SetAttempt(i int) {
	m.attempt = &i
	m.addattempt = nil
}

// Attempt returns the value of the "attempt" field in the mutation.
func (m *JobMutation) Attempt() (r int, exists bool) {
	v := m.attempt
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempt returns the old "attempt" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldAttempt(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempt: %w", err)
	}
	return oldValue.Attempt, nil
}

// AddAttempt adds i to the "attempt" field.
func (m *JobMutation) AddAttempt(i int) {
	if m.addattempt != nil {
		*m.addattempt += i
	} else {
		m.addattempt = &i
	}
}

// AddedAttempt returns the value that was added to the "attempt" field in this mutation.
func (m *JobMutation) AddedAttempt() (r int, exists bool) {
	v := m.addattempt
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempt resets all changes to the "attempt" field.
func (m *JobMutation) ResetAttempt() {
	m.attempt = nil
	m.addattempt = nil
}

// SetMaxAttempts sets the "max_attempts" field.
func (m *JobMutation) SetMaxAttempts(i int) {
	m.max_attempts = &i
	m.addmax_attempts = nil
}

// MaxAttempts returns the value of the "max_attempts" field in the mutation.
func (m *JobMutation) MaxAttempts() (r int, exists bool) {
	v := m.max_attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxAttempts returns the old "max_attempts" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldMaxAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxAttempts: %w", err)
	}
	return oldValue.MaxAttempts, nil
}

// AddMaxAttempts adds i to the "max_attempts" field.
func (m *JobMutation) AddMaxAttempts(i int) {
	if m.addmax_attempts != nil {
		*m.addmax_attempts += i
	} else {
		m.addmax_attempts = &i
	}
}

// AddedMaxAttempts returns the value that was added to the "max_attempts" field in this mutation.
func (m *JobMutation) AddedMaxAttempts() (r int, exists bool) {
	v := m.addmax_attempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxAttempts resets all changes to the "max_attempts" field.
func (m *JobMutation) ResetMaxAttempts() {
	m.max_attempts = nil
	m.addmax_attempts = nil
}

// SetNextAttemptAt sets the "next_attempt_at" field.
func (m *JobMutation) SetNextAttemptAt(t time.Time) {
	m.next_attempt_at = &t
}

// NextAttemptAt returns the value of the "next_attempt_at" field in the mutation.
func (m *JobMutation) NextAttemptAt() (r time.Time, exists bool) {
	v := m.next_attempt_at
	if v == nil {
		return
	}
	return *v, true
}

// OldNextAttemptAt returns the old "next_attempt_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldNextAttemptAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextAttemptAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextAttemptAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextAttemptAt: %w", err)
	}
	return oldValue.NextAttemptAt, nil
}

// ResetNextAttemptAt resets all changes to the "next_attempt_at" field.
func (m *JobMutation) ResetNextAttemptAt() {
	m.next_attempt_at = nil
}

// SetLockedBy sets the "locked_by" field.
func (m *JobMutation) SetLockedBy(s string) {
	m.locked_by = &s
}

// LockedBy returns the value of the "locked_by" field in the mutation.
func (m *JobMutation) LockedBy() (r string, exists bool) {
	v := m.locked_by
	if v == nil {
		return
	}
	return *v, true
}

// OldLockedBy returns the old "locked_by" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldLockedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLockedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLockedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLockedBy: %w", err)
	}
	return oldValue.LockedBy, nil
}

// ClearLockedBy clears the value of the "locked_by" field.
func (m *JobMutation) ClearLockedBy() {
	m.locked_by = nil
	m.clearedFields[job.FieldLockedBy] = struct{}{}
}

// LockedByCleared returns if the "locked_by" field was cleared in this mutation.
func (m *JobMutation) LockedByCleared() bool {
	_, ok := m.clearedFields[job.FieldLockedBy]
	return ok
}

// ResetLockedBy resets all changes to the "locked_by" field.
func (m *JobMutation) ResetLockedBy() {
	m.locked_by = nil
	delete(m.clearedFields, job.FieldLockedBy)
}

// SetLockExpiresAt sets the "lock_expires_at" field.
func (m *JobMutation) SetLockExpiresAt(t time.Time) {
	m.lock_expires_at = &t
}

// LockExpiresAt returns the value of the "lock_expires_at" field in the mutation.
func (m *JobMutation) LockExpiresAt() (r time.Time, exists bool) {
	v := m.lock_expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLockExpiresAt returns the old "lock_expires_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldLockExpiresAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLockExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLockExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLockExpiresAt: %w", err)
	}
	return oldValue.LockExpiresAt, nil
}

// ClearLockExpiresAt clears the value of the "lock_expires_at" field.
func (m *JobMutation) ClearLockExpiresAt() {
	m.lock_expires_at = nil
	m.clearedFields[job.FieldLockExpiresAt] = struct{}{}
}

// LockExpiresAtCleared returns if the "lock_expires_at" field was cleared in this mutation.
func (m *JobMutation) LockExpiresAtCleared() bool {
	_, ok := m.clearedFields[job.FieldLockExpiresAt]
	return ok
}

// ResetLockExpiresAt resets all changes to the "lock_expires_at" field.
func (m *JobMutation) ResetLockExpiresAt() {
	m.lock_expires_at = nil
	delete(m.clearedFields, job.FieldLockExpiresAt)
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (m *JobMutation) SetLastHeartbeatAt(t time.Time) {
	m.last_heartbeat_at = &t
}

// LastHeartbeatAt returns the value of the "last_heartbeat_at" field in the mutation.
func (m *JobMutation) LastHeartbeatAt() (r time.Time, exists bool) {
	v := m.last_heartbeat_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastHeartbeatAt returns the old "last_heartbeat_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldLastHeartbeatAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastHeartbeatAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastHeartbeatAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastHeartbeatAt: %w", err)
	}
	return oldValue.LastHeartbeatAt, nil
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (m *JobMutation) ClearLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	m.clearedFields[job.FieldLastHeartbeatAt] = struct{}{}
}

// LastHeartbeatAtCleared returns if the "last_heartbeat_at" field was cleared in this mutation.
func (m *JobMutation) LastHeartbeatAtCleared() bool {
	_, ok := m.clearedFields[job.FieldLastHeartbeatAt]
	return ok
}

// ResetLastHeartbeatAt resets all changes to the "last_heartbeat_at" field.
func (m *JobMutation) ResetLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	delete(m.clearedFields, job.FieldLastHeartbeatAt)
}

// SetProgress sets the "progress" field.
func (m *JobMutation) SetProgress(i int) {
	m.progress = &i
	m.addprogress = nil
}

// Progress returns the value of the "progress" field in the mutation.
func (m *JobMutation) Progress() (r int, exists bool) {
	v := m.progress
	if v == nil {
		return
	}
	return *v, true
}

// OldProgress returns the old "progress" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldProgress(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProgress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProgress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProgress: %w", err)
	}
	return oldValue.Progress, nil
}

// AddProgress adds i to the "progress" field.
func (m *JobMutation) AddProgress(i int) {
	if m.addprogress != nil {
		*m.addprogress += i
	} else {
		m.addprogress = &i
	}
}

// AddedProgress returns the value that was added to the "progress" field in this mutation.
func (m *JobMutation) AddedProgress() (r int, exists bool) {
	v := m.addprogress
	if v == nil {
		return
	}
	return *v, true
}

// ResetProgress resets all changes to the "progress" field.
func (m *JobMutation) ResetProgress() {
	m.progress = nil
	m.addprogress = nil
}

// SetCancelRequested sets the "cancel_requested" field.
func (m *JobMutation) SetCancelRequested(b bool) {
	m.cancel_requested = &b
}

// CancelRequested returns the value of the "cancel_requested" field in the mutation.
func (m *JobMutation) CancelRequested() (r bool, exists bool) {
	v := m.cancel_requested
	if v == nil {
		return
	}
	return *v, true
}

// OldCancelRequested returns the old "cancel_requested" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldCancelRequested(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCancelRequested is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCancelRequested requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCancelRequested: %w", err)
	}
	return oldValue.CancelRequested, nil
}

// ResetCancelRequested resets all changes to the "cancel_requested" field.
func (m *JobMutation) ResetCancelRequested() {
	m.cancel_requested = nil
}

// SetRunID sets the "run_id" field.
func (m *JobMutation) SetRunID(s string) {
	m.run_id = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *JobMutation) RunID() (r string, exists bool) {
	v := m.run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldRunID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ClearRunID clears the value of the "run_id" field.
func (m *JobMutation) ClearRunID() {
	m.run_id = nil
	m.clearedFields[job.FieldRunID] = struct{}{}
}

// RunIDCleared returns if the "run_id" field was cleared in this mutation.
func (m *JobMutation) RunIDCleared() bool {
	_, ok := m.clearedFields[job.FieldRunID]
	return ok
}

// ResetRunID resets all changes to the "run_id" field.
func (m *JobMutation) ResetRunID() {
	m.run_id = nil
	delete(m.clearedFields, job.FieldRunID)
}

// SetLastError sets the "last_error" field.
func (m *JobMutation) SetLastError(s string) {
	m.last_error = &s
}

// LastError returns the value of the "last_error" field in the mutation.
func (m *JobMutation) LastError() (r string, exists bool) {
	v := m.last_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastError returns the old "last_error" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldLastError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastError: %w", err)
	}
	return oldValue.LastError, nil
}

// ClearLastError clears the value of the "last_error" field.
func (m *JobMutation) ClearLastError() {
	m.last_error = nil
	m.clearedFields[job.FieldLastError] = struct{}{}
}

// LastErrorCleared returns if the "last_error" field was cleared in this mutation.
func (m *JobMutation) LastErrorCleared() bool {
	_, ok := m.clearedFields[job.FieldLastError]
	return ok
}

// ResetLastError resets all changes to the "last_error" field.
func (m *JobMutation) ResetLastError() {
	m.last_error = nil
	delete(m.clearedFields, job.FieldLastError)
}

// SetCreatedAt sets the "created_at" field.
func (m *JobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *JobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *JobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *JobMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *JobMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *JobMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[job.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *JobMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[job.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *JobMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, job.FieldCompletedAt)
}

// Where appends a list predicates to the JobMutation builder.
func (m *JobMutation) Where(ps ...predicate.Job) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the JobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *JobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Job, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *JobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *JobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Job).
func (m *JobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *JobMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.kind != nil {
		fields = append(fields, job.FieldKind)
	}
	if m.payload != nil {
		fields = append(fields, job.FieldPayload)
	}
	if m.status != nil {
		fields = append(fields, job.FieldStatus)
	}
	if m.attempt != nil {
		fields = append(fields, job.FieldAttempt)
	}
	if m.max_attempts != nil {
		fields = append(fields, job.FieldMaxAttempts)
	}
	if m.next_attempt_at != nil {
		fields = append(fields, job.FieldNextAttemptAt)
	}
	if m.locked_by != nil {
		fields = append(fields, job.FieldLockedBy)
	}
	if m.lock_expires_at != nil {
		fields = append(fields, job.FieldLockExpiresAt)
	}
	if m.last_heartbeat_at != nil {
		fields = append(fields, job.FieldLastHeartbeatAt)
	}
	if m.progress != nil {
		fields = append(fields, job.FieldProgress)
	}
	if m.cancel_requested != nil {
		fields = append(fields, job.FieldCancelRequested)
	}
	if m.run_id != nil {
		fields = append(fields, job.FieldRunID)
	}
	if m.last_error != nil {
		fields = append(fields, job.FieldLastError)
	}
	if m.created_at != nil {
		fields = append(fields, job.FieldCreatedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, job.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *JobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case job.FieldKind:
		return m.Kind()
	case job.FieldPayload:
		return m.Payload()
	case job.FieldStatus:
		return m.Status()
	case job.FieldAttempt:
		return m.Attempt()
	case job.FieldMaxAttempts:
		return m.MaxAttempts()
	case job.FieldNextAttemptAt:
		return m.NextAttemptAt()
	case job.FieldLockedBy:
		return m.LockedBy()
	case job.FieldLockExpiresAt:
		return m.LockExpiresAt()
	case job.FieldLastHeartbeatAt:
		return m.LastHeartbeatAt()
	case job.FieldProgress:
		return m.Progress()
	case job.FieldCancelRequested:
		return m.CancelRequested()
	case job.FieldRunID:
		return m.RunID()
	case job.FieldLastError:
		return m.LastError()
	case job.FieldCreatedAt:
		return m.CreatedAt()
	case job.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *JobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case job.FieldKind:
		return m.OldKind(ctx)
	case job.FieldPayload:
		return m.OldPayload(ctx)
	case job.FieldStatus:
		return m.OldStatus(ctx)
	case job.FieldAttempt:
		return m.OldAttempt(ctx)
	case job.FieldMaxAttempts:
		return m.OldMaxAttempts(ctx)
	case job.FieldNextAttemptAt:
		return m.OldNextAttemptAt(ctx)
	case job.FieldLockedBy:
		return m.OldLockedBy(ctx)
	case job.FieldLockExpiresAt:
		return m.OldLockExpiresAt(ctx)
	case job.FieldLastHeartbeatAt:
		return m.OldLastHeartbeatAt(ctx)
	case job.FieldProgress:
		return m.OldProgress(ctx)
	case job.FieldCancelRequested:
		return m.OldCancelRequested(ctx)
	case job.FieldRunID:
		return m.OldRunID(ctx)
	case job.FieldLastError:
		return m.OldLastError(ctx)
	case job.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case job.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Job field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case job.FieldKind:
		v, ok := value.(job.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case job.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case job.FieldStatus:
		v, ok := value.(job.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case job.FieldAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempt(v)
		return nil
	case job.FieldMaxAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxAttempts(v)
		return nil
	case job.FieldNextAttemptAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextAttemptAt(v)
		return nil
	case job.FieldLockedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLockedBy(v)
		return nil
	case job.FieldLockExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLockExpiresAt(v)
		return nil
	case job.FieldLastHeartbeatAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastHeartbeatAt(v)
		return nil
	case job.FieldProgress:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProgress(v)
		return nil
	case job.FieldCancelRequested:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCancelRequested(v)
		return nil
	case job.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case job.FieldLastError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastError(v)
		return nil
	case job.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case job.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *JobMutation) AddedFields() []string {
	var fields []string
	if m.addattempt != nil {
		fields = append(fields, job.FieldAttempt)
	}
	if m.addmax_attempts != nil {
		fields = append(fields, job.FieldMaxAttempts)
	}
	if m.addprogress != nil {
		fields = append(fields, job.FieldProgress)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *JobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case job.FieldAttempt:
		return m.AddedAttempt()
	case job.FieldMaxAttempts:
		return m.AddedMaxAttempts()
	case job.FieldProgress:
		return m.AddedProgress()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case job.FieldAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempt(v)
		return nil
	case job.FieldMaxAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxAttempts(v)
		return nil
	case job.FieldProgress:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProgress(v)
		return nil
	}
	return fmt.Errorf("unknown Job numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *JobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(job.FieldLockedBy) {
		fields = append(fields, job.FieldLockedBy)
	}
	if m.FieldCleared(job.FieldLockExpiresAt) {
		fields = append(fields, job.FieldLockExpiresAt)
	}
	if m.FieldCleared(job.FieldLastHeartbeatAt) {
		fields = append(fields, job.FieldLastHeartbeatAt)
	}
	if m.FieldCleared(job.FieldRunID) {
		fields = append(fields, job.FieldRunID)
	}
	if m.FieldCleared(job.FieldLastError) {
		fields = append(fields, job.FieldLastError)
	}
	if m.FieldCleared(job.FieldCompletedAt) {
		fields = append(fields, job.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *JobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *JobMutation) ClearField(name string) error {
	switch name {
	case job.FieldLockedBy:
		m.ClearLockedBy()
		return nil
	case job.FieldLockExpiresAt:
		m.ClearLockExpiresAt()
		return nil
	case job.FieldLastHeartbeatAt:
		m.ClearLastHeartbeatAt()
		return nil
	case job.FieldRunID:
		m.ClearRunID()
		return nil
	case job.FieldLastError:
		m.ClearLastError()
		return nil
	case job.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Job nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *JobMutation) ResetField(name string) error {
	switch name {
	case job.FieldKind:
		m.ResetKind()
		return nil
	case job.FieldPayload:
		m.ResetPayload()
		return nil
	case job.FieldStatus:
		m.ResetStatus()
		return nil
	case job.FieldAttempt:
		m.ResetAttempt()
		return nil
	case job.FieldMaxAttempts:
		m.ResetMaxAttempts()
		return nil
	case job.FieldNextAttemptAt:
		m.ResetNextAttemptAt()
		return nil
	case job.FieldLockedBy:
		m.ResetLockedBy()
		return nil
	case job.FieldLockExpiresAt:
		m.ResetLockExpiresAt()
		return nil
	case job.FieldLastHeartbeatAt:
		m.ResetLastHeartbeatAt()
		return nil
	case job.FieldProgress:
		m.ResetProgress()
		return nil
	case job.FieldCancelRequested:
		m.ResetCancelRequested()
		return nil
	case job.FieldRunID:
		m.ResetRunID()
		return nil
	case job.FieldLastError:
		m.ResetLastError()
		return nil
	case job.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case job.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *JobMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *JobMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *JobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *JobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *JobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *JobMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *JobMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Job unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *JobMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Job edge %s", name)
}

// ProjectMutation represents an operation that mutates the Project nodes in the graph.
type ProjectMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	name               *string
	dapp_url           *string
	wallet_address     *string
	wallet_seed_cipher *string
	connection_spec_id *string
	created_at         *time.Time
	updated_at         *time.Time
	deleted_at         *time.Time
	clearedFields      map[string]struct{}
	recordings         map[string]struct{}
	removedrecordings  map[string]struct{}
	clearedrecordings  bool
	suite_runs         map[string]struct{}
	removedsuite_runs  map[string]struct{}
	clearedsuite_runs  bool
	done               bool
	oldValue           func(context.Context) (*Project, error)
	predicates         []predicate.Project
}

var _ ent.Mutation = (*ProjectMutation)(nil)

// projectOption allows management of the mutation configuration using functional options.
type projectOption func(*ProjectMutation)

// newProjectMutation creates new mutation for the Project entity.
func newProjectMutation(c config, op Op, opts ...projectOption) *ProjectMutation {
	m := &ProjectMutation{
		config:        c,
		op:            op,
		typ:           TypeProject,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProjectID sets the ID field of the mutation.
func withProjectID(id string) projectOption {
	return func(m *ProjectMutation) {
		var (
			err   error
			once  sync.Once
			value *Project
		)
		m.oldValue = func(ctx context.Context) (*Project, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Project.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProject sets the old Project of the mutation.
func withProject(node *Project) projectOption {
	return func(m *ProjectMutation) {
		m.oldValue = func(context.Context) (*Project, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProjectMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProjectMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Project entities.
func (m *ProjectMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProjectMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProjectMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Project.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *ProjectMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ProjectMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ProjectMutation) ResetName() {
	m.name = nil
}

// SetDappURL sets the "dapp_url" field.
func (m *ProjectMutation) SetDappURL(s string) {
	m.dapp_url = &s
}

// DappURL returns the value of the "dapp_url" field in the mutation.
func (m *ProjectMutation) DappURL() (r string, exists bool) {
	v := m.dapp_url
	if v == nil {
		return
	}
	return *v, true
}

// OldDappURL returns the old "dapp_url" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldDappURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDappURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDappURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDappURL: %w", err)
	}
	return oldValue.DappURL, nil
}

// ResetDappURL resets all changes to the "dapp_url" field.
func (m *ProjectMutation) ResetDappURL() {
	m.dapp_url = nil
}

// SetWalletAddress sets the "wallet_address" field.
func (m *ProjectMutation) SetWalletAddress(s string) {
	m.wallet_address = &s
}

// WalletAddress returns the value of the "wallet_address" field in the mutation.
func (m *ProjectMutation) WalletAddress() (r string, exists bool) {
	v := m.wallet_address
	if v == nil {
		return
	}
	return *v, true
}

// OldWalletAddress returns the old "wallet_address" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldWalletAddress(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWalletAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWalletAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWalletAddress: %w", err)
	}
	return oldValue.WalletAddress, nil
}

// ResetWalletAddress resets all changes to the "wallet_address" field.
func (m *ProjectMutation) ResetWalletAddress() {
	m.wallet_address = nil
}

// SetWalletSeedCipher sets the "wallet_seed_cipher" field.
func (m *ProjectMutation) SetWalletSeedCipher(s string) {
	m.wallet_seed_cipher = &s
}

// WalletSeedCipher returns the value of the "wallet_seed_cipher" field in the mutation.
func (m *ProjectMutation) WalletSeedCipher() (r string, exists bool) {
	v := m.wallet_seed_cipher
	if v == nil {
		return
	}
	return *v, true
}

// OldWalletSeedCipher returns the old "wallet_seed_cipher" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldWalletSeedCipher(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWalletSeedCipher is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWalletSeedCipher requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWalletSeedCipher: %w", err)
	}
	return oldValue.WalletSeedCipher, nil
}

// ResetWalletSeedCipher resets all changes to the "wallet_seed_cipher" field.
func (m *ProjectMutation) ResetWalletSeedCipher() {
	m.wallet_seed_cipher = nil
}

// SetConnectionSpecID sets the "connection_spec_id" field.
func (m *ProjectMutation) SetConnectionSpecID(s string) {
	m.connection_spec_id = &s
}

// ConnectionSpecID returns the value of the "connection_spec_id" field in the mutation.
func (m *ProjectMutation) ConnectionSpecID() (r string, exists bool) {
	v := m.connection_spec_id
	if v == nil {
		return
	}
	return *v, true
}

// OldConnectionSpecID returns the old "connection_spec_id" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldConnectionSpecID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConnectionSpecID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConnectionSpecID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConnectionSpecID: %w", err)
	}
	return oldValue.ConnectionSpecID, nil
}

// ClearConnectionSpecID clears the value of the "connection_spec_id" field.
func (m *ProjectMutation) ClearConnectionSpecID() {
	m.connection_spec_id = nil
	m.clearedFields[project.FieldConnectionSpecID] = struct{}{}
}

// ConnectionSpecIDCleared returns if the "connection_spec_id" field was cleared in this mutation.
func (m *ProjectMutation) ConnectionSpecIDCleared() bool {
	_, ok := m.clearedFields[project.FieldConnectionSpecID]
	return ok
}

// ResetConnectionSpecID resets all changes to the "connection_spec_id" field.
func (m *ProjectMutation) ResetConnectionSpecID() {
	m.connection_spec_id = nil
	delete(m.clearedFields, project.FieldConnectionSpecID)
}

// SetCreatedAt sets the "created_at" field.
func (m *ProjectMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProjectMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProjectMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProjectMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProjectMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ProjectMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *ProjectMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *ProjectMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *ProjectMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[project.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *ProjectMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[project.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *ProjectMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, project.FieldDeletedAt)
}

// AddRecordingIDs adds the "recordings" edge to the Recording entity by ids.
func (m *ProjectMutation) AddRecordingIDs(ids ...string) {
	if m.recordings == nil {
		m.recordings = make(map[string]struct{})
	}
	for i := range ids {
		m.recordings[ids[i]] = struct{}{}
	}
}

// ClearRecordings clears the "recordings" edge to the Recording entity.
func (m *ProjectMutation) ClearRecordings() {
	m.clearedrecordings = true
}

// RecordingsCleared reports if the "recordings" edge to the Recording entity was cleared.
func (m *ProjectMutation) RecordingsCleared() bool {
	return m.clearedrecordings
}

// RemoveRecordingIDs removes the "recordings" edge to the Recording entity by IDs.
func (m *ProjectMutation) RemoveRecordingIDs(ids ...string) {
	if m.removedrecordings == nil {
		m.removedrecordings = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.recordings, ids[i])
		m.removedrecordings[ids[i]] = struct{}{}
	}
}

// RemovedRecordings returns the removed IDs of the "recordings" edge to the Recording entity.
func (m *ProjectMutation) RemovedRecordingsIDs() (ids []string) {
	for id := range m.removedrecordings {
		ids = append(ids, id)
	}
	return
}

// RecordingsIDs returns the "recordings" edge IDs in the mutation.
func (m *ProjectMutation) RecordingsIDs() (ids []string) {
	for id := range m.recordings {
		ids = append(ids, id)
	}
	return
}

// ResetRecordings resets all changes to the "recordings" edge.
func (m *ProjectMutation) ResetRecordings() {
	m.recordings = nil
	m.clearedrecordings = false
	m.removedrecordings = nil
}

// AddSuiteRunIDs adds the "suite_runs" edge to the SuiteRun entity by ids.
func (m *ProjectMutation) AddSuiteRunIDs(ids ...string) {
	if m.suite_runs == nil {
		m.suite_runs = make(map[string]struct{})
	}
	for i := range ids {
		m.suite_runs[ids[i]] = struct{}{}
	}
}

// ClearSuiteRuns clears the "suite_runs" edge to the SuiteRun entity.
func (m *ProjectMutation) ClearSuiteRuns() {
	m.clearedsuite_runs = true
}

// SuiteRunsCleared reports if the "suite_runs" edge to the SuiteRun entity was cleared.
func (m *ProjectMutation) SuiteRunsCleared() bool {
	return m.clearedsuite_runs
}

// RemoveSuiteRunIDs removes the "suite_runs" edge to the SuiteRun entity by IDs.
func (m *ProjectMutation) RemoveSuiteRunIDs(ids ...string) {
	if m.removedsuite_runs == nil {
		m.removedsuite_runs = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.suite_runs, ids[i])
		m.removedsuite_runs[ids[i]] = struct{}{}
	}
}

// RemovedSuiteRuns returns the removed IDs of the "suite_runs" edge to the SuiteRun entity.
func (m *ProjectMutation) RemovedSuiteRunsIDs() (ids []string) {
	for id := range m.removedsuite_runs {
		ids = append(ids, id)
	}
	return
}

// SuiteRunsIDs returns the "suite_runs" edge IDs in the mutation.
func (m *ProjectMutation) SuiteRunsIDs() (ids []string) {
	for id := range m.suite_runs {
		ids = append(ids, id)
	}
	return
}

// ResetSuiteRuns resets all changes to the "suite_runs" edge.
func (m *ProjectMutation) ResetSuiteRuns() {
	m.suite_runs = nil
	m.clearedsuite_runs = false
	m.removedsuite_runs = nil
}

// Where appends a list predicates to the ProjectMutation builder.
func (m *ProjectMutation) Where(ps ...predicate.Project) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProjectMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProjectMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Project, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProjectMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProjectMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Project).
func (m *ProjectMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProjectMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.name != nil {
		fields = append(fields, project.FieldName)
	}
	if m.dapp_url != nil {
		fields = append(fields, project.FieldDappURL)
	}
	if m.wallet_address != nil {
		fields = append(fields, project.FieldWalletAddress)
	}
	if m.wallet_seed_cipher != nil {
		fields = append(fields, project.FieldWalletSeedCipher)
	}
	if m.connection_spec_id != nil {
		fields = append(fields, project.FieldConnectionSpecID)
	}
	if m.created_at != nil {
		fields = append(fields, project.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, project.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, project.FieldDeletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProjectMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case project.FieldName:
		return m.Name()
	case project.FieldDappURL:
		return m.DappURL()
	case project.FieldWalletAddress:
		return m.WalletAddress()
	case project.FieldWalletSeedCipher:
		return m.WalletSeedCipher()
	case project.FieldConnectionSpecID:
		return m.ConnectionSpecID()
	case project.FieldCreatedAt:
		return m.CreatedAt()
	case project.FieldUpdatedAt:
		return m.UpdatedAt()
	case project.FieldDeletedAt:
		return m.DeletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProjectMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case project.FieldName:
		return m.OldName(ctx)
	case project.FieldDappURL:
		return m.OldDappURL(ctx)
	case project.FieldWalletAddress:
		return m.OldWalletAddress(ctx)
	case project.FieldWalletSeedCipher:
		return m.OldWalletSeedCipher(ctx)
	case project.FieldConnectionSpecID:
		return m.OldConnectionSpecID(ctx)
	case project.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case project.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case project.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Project field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectMutation) SetField(name string, value ent.Value) error {
	switch name {
	case project.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case project.FieldDappURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDappURL(v)
		return nil
	case project.FieldWalletAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWalletAddress(v)
		return nil
	case project.FieldWalletSeedCipher:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWalletSeedCipher(v)
		return nil
	case project.FieldConnectionSpecID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConnectionSpecID(v)
		return nil
	case project.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case project.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case project.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Project field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProjectMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProjectMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Project numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProjectMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(project.FieldConnectionSpecID) {
		fields = append(fields, project.FieldConnectionSpecID)
	}
	if m.FieldCleared(project.FieldDeletedAt) {
		fields = append(fields, project.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProjectMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProjectMutation) ClearField(name string) error {
	switch name {
	case project.FieldConnectionSpecID:
		m.ClearConnectionSpecID()
		return nil
	case project.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Project nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProjectMutation) ResetField(name string) error {
	switch name {
	case project.FieldName:
		m.ResetName()
		return nil
	case project.FieldDappURL:
		m.ResetDappURL()
		return nil
	case project.FieldWalletAddress:
		m.ResetWalletAddress()
		return nil
	case project.FieldWalletSeedCipher:
		m.ResetWalletSeedCipher()
		return nil
	case project.FieldConnectionSpecID:
		m.ResetConnectionSpecID()
		return nil
	case project.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case project.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case project.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Project field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProjectMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.recordings != nil {
		edges = append(edges, project.EdgeRecordings)
	}
	if m.suite_runs != nil {
		edges = append(edges, project.EdgeSuiteRuns)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProjectMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case project.EdgeRecordings:
		ids := make([]ent.Value, 0, len(m.recordings))
		for id := range m.recordings {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeSuiteRuns:
		ids := make([]ent.Value, 0, len(m.suite_runs))
		for id := range m.suite_runs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProjectMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedrecordings != nil {
		edges = append(edges, project.EdgeRecordings)
	}
	if m.removedsuite_runs != nil {
		edges = append(edges, project.EdgeSuiteRuns)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProjectMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case project.EdgeRecordings:
		ids := make([]ent.Value, 0, len(m.removedrecordings))
		for id := range m.removedrecordings {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeSuiteRuns:
		ids := make([]ent.Value, 0, len(m.removedsuite_runs))
		for id := range m.removedsuite_runs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProjectMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedrecordings {
		edges = append(edges, project.EdgeRecordings)
	}
	if m.clearedsuite_runs {
		edges = append(edges, project.EdgeSuiteRuns)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProjectMutation) EdgeCleared(name string) bool {
	switch name {
	case project.EdgeRecordings:
		return m.clearedrecordings
	case project.EdgeSuiteRuns:
		return m.clearedsuite_runs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProjectMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Project unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProjectMutation) ResetEdge(name string) error {
	switch name {
	case project.EdgeRecordings:
		m.ResetRecordings()
		return nil
	case project.EdgeSuiteRuns:
		m.ResetSuiteRuns()
		return nil
	}
	return fmt.Errorf("unknown Project edge %s", name)
}

// RecordingMutation represents an operation that mutates the Recording nodes in the graph.
type RecordingMutation struct {
	config
	op             Op
	typ            string
	id             *string
	name           *string
	recording_type *recording.RecordingType
	actions        *[]map[string]interface{}
	appendactions  []map[string]interface{}
	url            *string
	created_at     *time.Time
	clearedFields  map[string]struct{}
	project        *string
	clearedproject bool
	specs          map[string]struct{}
	removedspecs   map[string]struct{}
	clearedspecs   bool
	done           bool
	oldValue       func(context.Context) (*Recording, error)
	predicates     []predicate.Recording
}

var _ ent.Mutation = (*RecordingMutation)(nil)

// recordingOption allows management of the mutation configuration using functional options.
type recordingOption func(*RecordingMutation)

// newRecordingMutation creates new mutation for the Recording entity.
func newRecordingMutation(c config, op Op, opts ...recordingOption) *RecordingMutation {
	m := &RecordingMutation{
		config:        c,
		op:            op,
		typ:           TypeRecording,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRecordingID sets the ID field of the mutation.
func withRecordingID(id string) recordingOption {
	return func(m *RecordingMutation) {
		var (
			err   error
			once  sync.Once
			value *Recording
		)
		m.oldValue = func(ctx context.Context) (*Recording, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Recording.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRecording sets the old Recording of the mutation.
func withRecording(node *Recording) recordingOption {
	return func(m *RecordingMutation) {
		m.oldValue = func(context.Context) (*Recording, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RecordingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RecordingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Recording entities.
func (m *RecordingMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RecordingMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RecordingMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Recording.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectID sets the "project_id" field.
func (m *RecordingMutation) SetProjectID(s string) {
	m.project = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *RecordingMutation) ProjectID() (r string, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the Recording entity.
// If the Recording object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecordingMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *RecordingMutation) ResetProjectID() {
	m.project = nil
}

// SetName sets the "name" field.
func (m *RecordingMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *RecordingMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Recording entity.
// If the Recording object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecordingMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *RecordingMutation) ResetName() {
	m.name = nil
}

// SetRecordingType sets the "recording_type" field.
func (m *RecordingMutation) SetRecordingType(rt recording.RecordingType) {
	m.recording_type = &rt
}

// RecordingType returns the value of the "recording_type" field in the mutation.
func (m *RecordingMutation) RecordingType() (r recording.RecordingType, exists bool) {
	v := m.recording_type
	if v == nil {
		return
	}
	return *v, true
}

// OldRecordingType returns the old "recording_type" field's value of the Recording entity.
// If the Recording object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecordingMutation) OldRecordingType(ctx context.Context) (v recording.RecordingType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecordingType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecordingType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecordingType: %w", err)
	}
	return oldValue.RecordingType, nil
}

// ResetRecordingType resets all changes to the "recording_type" field.
func (m *RecordingMutation) ResetRecordingType() {
	m.recording_type = nil
}

// SetActions sets the "actions" field.
func (m *RecordingMutation) SetActions(value []map[string]interface{}) {
	m.actions = &value
	m.appendactions = nil
}

// Actions returns the value of the "actions" field in the mutation.
func (m *RecordingMutation) Actions() (r []map[string]interface{}, exists bool) {
	v := m.actions
	if v == nil {
		return
	}
	return *v, true
}

// OldActions returns the old "actions" field's value of the Recording entity.
// If the Recording object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecordingMutation) OldActions(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActions: %w", err)
	}
	return oldValue.Actions, nil
}

// AppendActions adds value to the "actions" field.
func (m *RecordingMutation) AppendActions(value []map[string]interface{}) {
	m.appendactions = append(m.appendactions, value...)
}

// AppendedActions returns the list of values that were appended to the "actions" field in this mutation.
func (m *RecordingMutation) AppendedActions() ([]map[string]interface{}, bool) {
	if len(m.appendactions) == 0 {
		return nil, false
	}
	return m.appendactions, true
}

// ResetActions resets all changes to the "actions" field.
func (m *RecordingMutation) ResetActions() {
	m.actions = nil
	m.appendactions = nil
}

// SetURL sets the "url" field.
func (m *RecordingMutation) SetURL(s string) {
	m.url = &s
}

// URL returns the value of the "url" field in the mutation.
func (m *RecordingMutation) URL() (r string, exists bool) {
	v := m.url
	if v == nil {
		return
	}
	return *v, true
}

// OldURL returns the old "url" field's value of the Recording entity.
// If the Recording object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecordingMutation) OldURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldURL: %w", err)
	}
	return oldValue.URL, nil
}

// ClearURL clears the value of the "url" field.
func (m *RecordingMutation) ClearURL() {
	m.url = nil
	m.clearedFields[recording.FieldURL] = struct{}{}
}

// URLCleared returns if the "url" field was cleared in this mutation.
func (m *RecordingMutation) URLCleared() bool {
	_, ok := m.clearedFields[recording.FieldURL]
	return ok
}

// ResetURL resets all changes to the "url" field.
func (m *RecordingMutation) ResetURL() {
	m.url = nil
	delete(m.clearedFields, recording.FieldURL)
}

// SetCreatedAt sets the "created_at" field.
func (m *RecordingMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RecordingMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Recording entity.
// If the Recording object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecordingMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RecordingMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearProject clears the "project" edge to the Project entity.
func (m *RecordingMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[recording.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *RecordingMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *RecordingMutation) ProjectIDs() (ids []string) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *RecordingMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// AddSpecIDs adds the "specs" edge to the Spec entity by ids.
func (m *RecordingMutation) AddSpecIDs(ids ...string) {
	if m.specs == nil {
		m.specs = make(map[string]struct{})
	}
	for i := range ids {
		m.specs[ids[i]] = struct{}{}
	}
}

// ClearSpecs clears the "specs" edge to the Spec entity.
func (m *RecordingMutation) ClearSpecs() {
	m.clearedspecs = true
}

// SpecsCleared reports if the "specs" edge to the Spec entity was cleared.
func (m *RecordingMutation) SpecsCleared() bool {
	return m.clearedspecs
}

// RemoveSpecIDs removes the "specs" edge to the Spec entity by IDs.
func (m *RecordingMutation) RemoveSpecIDs(ids ...string) {
	if m.removedspecs == nil {
		m.removedspecs = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.specs, ids[i])
		m.removedspecs[ids[i]] = struct{}{}
	}
}

// RemovedSpecs returns the removed IDs of the "specs" edge to the Spec entity.
func (m *RecordingMutation) RemovedSpecsIDs() (ids []string) {
	for id := range m.removedspecs {
		ids = append(ids, id)
	}
	return
}

// SpecsIDs returns the "specs" edge IDs in the mutation.
func (m *RecordingMutation) SpecsIDs() (ids []string) {
	for id := range m.specs {
		ids = append(ids, id)
	}
	return
}

// ResetSpecs resets all changes to the "specs" edge.
func (m *RecordingMutation) ResetSpecs() {
	m.specs = nil
	m.clearedspecs = false
	m.removedspecs = nil
}

// Where appends a list predicates to the RecordingMutation builder.
func (m *RecordingMutation) Where(ps ...predicate.Recording) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RecordingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RecordingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Recording, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RecordingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RecordingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Recording).
func (m *RecordingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RecordingMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.project != nil {
		fields = append(fields, recording.FieldProjectID)
	}
	if m.name != nil {
		fields = append(fields, recording.FieldName)
	}
	if m.recording_type != nil {
		fields = append(fields, recording.FieldRecordingType)
	}
	if m.actions != nil {
		fields = append(fields, recording.FieldActions)
	}
	if m.url != nil {
		fields = append(fields, recording.FieldURL)
	}
	if m.created_at != nil {
		fields = append(fields, recording.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RecordingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case recording.FieldProjectID:
		return m.ProjectID()
	case recording.FieldName:
		return m.Name()
	case recording.FieldRecordingType:
		return m.RecordingType()
	case recording.FieldActions:
		return m.Actions()
	case recording.FieldURL:
		return m.URL()
	case recording.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RecordingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case recording.FieldProjectID:
		return m.OldProjectID(ctx)
	case recording.FieldName:
		return m.OldName(ctx)
	case recording.FieldRecordingType:
		return m.OldRecordingType(ctx)
	case recording.FieldActions:
		return m.OldActions(ctx)
	case recording.FieldURL:
		return m.OldURL(ctx)
	case recording.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Recording field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RecordingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case recording.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case recording.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case recording.FieldRecordingType:
		v, ok := value.(recording.RecordingType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecordingType(v)
		return nil
	case recording.FieldActions:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActions(v)
		return nil
	case recording.FieldURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetURL(v)
		return nil
	case recording.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Recording field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RecordingMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RecordingMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RecordingMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Recording numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RecordingMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(recording.FieldURL) {
		fields = append(fields, recording.FieldURL)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RecordingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RecordingMutation) ClearField(name string) error {
	switch name {
	case recording.FieldURL:
		m.ClearURL()
		return nil
	}
	return fmt.Errorf("unknown Recording nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RecordingMutation) ResetField(name string) error {
	switch name {
	case recording.FieldProjectID:
		m.ResetProjectID()
		return nil
	case recording.FieldName:
		m.ResetName()
		return nil
	case recording.FieldRecordingType:
		m.ResetRecordingType()
		return nil
	case recording.FieldActions:
		m.ResetActions()
		return nil
	case recording.FieldURL:
		m.ResetURL()
		return nil
	case recording.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Recording field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RecordingMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.project != nil {
		edges = append(edges, recording.EdgeProject)
	}
	if m.specs != nil {
		edges = append(edges, recording.EdgeSpecs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RecordingMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case recording.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	case recording.EdgeSpecs:
		ids := make([]ent.Value, 0, len(m.specs))
		for id := range m.specs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RecordingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedspecs != nil {
		edges = append(edges, recording.EdgeSpecs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RecordingMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case recording.EdgeSpecs:
		ids := make([]ent.Value, 0, len(m.removedspecs))
		for id := range m.removedspecs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RecordingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedproject {
		edges = append(edges, recording.EdgeProject)
	}
	if m.clearedspecs {
		edges = append(edges, recording.EdgeSpecs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RecordingMutation) EdgeCleared(name string) bool {
	switch name {
	case recording.EdgeProject:
		return m.clearedproject
	case recording.EdgeSpecs:
		return m.clearedspecs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RecordingMutation) ClearEdge(name string) error {
	switch name {
	case recording.EdgeProject:
		m.ClearProject()
		return nil
	}
	return fmt.Errorf("unknown Recording unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RecordingMutation) ResetEdge(name string) error {
	switch name {
	case recording.EdgeProject:
		m.ResetProject()
		return nil
	case recording.EdgeSpecs:
		m.ResetSpecs()
		return nil
	}
	return fmt.Errorf("unknown Recording edge %s", name)
}

// RunMutation represents an operation that mutates the Run nodes in the graph.
type RunMutation struct {
	config
	op               Op
	typ              string
	id               *string
	suite_index      *int
	addsuite_index   *int
	status           *run.Status
	execution_mode   *run.ExecutionMode
	streaming_mode   *run.StreamingMode
	is_auto_retry    *bool
	progress         *int
	addprogress      *int
	cancel_requested *bool
	agent_data       *map[string]interface{}
	stream_state     *map[string]interface{}
	logs             *string
	error_message    *string
	container_id     *string
	duration_ms      *int
	addduration_ms   *int
	pod_id           *string
	created_at       *time.Time
	started_at       *time.Time
	completed_at     *time.Time
	clearedFields    map[string]struct{}
	spec             *string
	clearedspec      bool
	suite_run        *string
	clearedsuite_run bool
	artifacts        map[string]struct{}
	removedartifacts map[string]struct{}
	clearedartifacts bool
	done             bool
	oldValue         func(context.Context) (*Run, error)
	predicates       []predicate.Run
}

var _ ent.Mutation = (*RunMutation)(nil)

// runOption allows management of the mutation configuration using functional options.
type runOption func(*RunMutation)

// newRunMutation creates new mutation for the Run entity.
func newRunMutation(c config, op Op, opts ...runOption) *RunMutation {
	m := &RunMutation{
		config:        c,
		op:            op,
		typ:           TypeRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRunID sets the ID field of the mutation.
func withRunID(id string) runOption {
	return func(m *RunMutation) {
		var (
			err   error
			once  sync.Once
			value *Run
		)
		m.oldValue = func(ctx context.Context) (*Run, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Run.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRun sets the old Run of the mutation.
func withRun(node *Run) runOption {
	return func(m *RunMutation) {
		m.oldValue = func(context.Context) (*Run, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Run entities.
func (m *RunMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RunMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RunMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Run.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSpecID sets the "spec_id" field.
func (m *RunMutation) SetSpecID(s string) {
	m.spec = &s
}

// SpecID returns the value of the "spec_id" field in the mutation.
func (m *RunMutation) SpecID() (r string, exists bool) {
	v := m.spec
	if v == nil {
		return
	}
	return *v, true
}

// OldSpecID returns the old "spec_id" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldSpecID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpecID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpecID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpecID: %w", err)
	}
	return oldValue.SpecID, nil
}

// ResetSpecID resets all changes to the "spec_id" field.
func (m *RunMutation) ResetSpecID() {
	m.spec = nil
}

// SetSuiteRunID sets the "suite_run_id" field.
func (m *RunMutation) SetSuiteRunID(s string) {
	m.suite_run = &s
}

// SuiteRunID returns the value of the "suite_run_id" field in the mutation.
func (m *RunMutation) SuiteRunID() (r string, exists bool) {
	v := m.suite_run
	if v == nil {
		return
	}
	return *v, true
}

// OldSuiteRunID returns the old "suite_run_id" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldSuiteRunID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuiteRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuiteRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuiteRunID: %w", err)
	}
	return oldValue.SuiteRunID, nil
}

// ClearSuiteRunID clears the value of the "suite_run_id" field.
func (m *RunMutation) ClearSuiteRunID() {
	m.suite_run = nil
	m.clearedFields[run.FieldSuiteRunID] = struct{}{}
}

// SuiteRunIDCleared returns if the "suite_run_id" field was cleared in this mutation.
func (m *RunMutation) SuiteRunIDCleared() bool {
	_, ok := m.clearedFields[run.FieldSuiteRunID]
	return ok
}

// ResetSuiteRunID resets all changes to the "suite_run_id" field.
func (m *RunMutation) ResetSuiteRunID() {
	m.suite_run = nil
	delete(m.clearedFields, run.FieldSuiteRunID)
}

// SetSuiteIndex sets the "suite_index" field.
func (m *RunMutation) SetSuiteIndex(i int) {
	m.suite_index = &i
	m.addsuite_index = nil
}

// SuiteIndex returns the value of the "suite_index" field in the mutation.
func (m *RunMutation) SuiteIndex() (r int, exists bool) {
	v := m.suite_index
	if v == nil {
		return
	}
	return *v, true
}

// OldSuiteIndex returns the old "suite_index" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldSuiteIndex(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuiteIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuiteIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuiteIndex: %w", err)
	}
	return oldValue.SuiteIndex, nil
}

// AddSuiteIndex adds i to the "suite_index" field.
func (m *RunMutation) AddSuiteIndex(i int) {
	if m.addsuite_index != nil {
		*m.addsuite_index += i
	} else {
		m.addsuite_index = &i
	}
}

// AddedSuiteIndex returns the value that was added to the "suite_index" field in this mutation.
func (m *RunMutation) AddedSuiteIndex() (r int, exists bool) {
	v := m.addsuite_index
	if v == nil {
		return
	}
	return *v, true
}

// ClearSuiteIndex clears the value of the "suite_index" field.
func (m *RunMutation) ClearSuiteIndex() {
	m.suite_index = nil
	m.addsuite_index = nil
	m.clearedFields[run.FieldSuiteIndex] = struct{}{}
}

// SuiteIndexCleared returns if the "suite_index" field was cleared in this mutation.
func (m *RunMutation) SuiteIndexCleared() bool {
	_, ok := m.clearedFields[run.FieldSuiteIndex]
	return ok
}

// ResetSuiteIndex resets all changes to the "suite_index" field.
func (m *RunMutation) ResetSuiteIndex() {
	m.suite_index = nil
	m.addsuite_index = nil
	delete(m.clearedFields, run.FieldSuiteIndex)
}

// SetStatus sets the "status" field.
func (m *RunMutation) SetStatus(r run.Status) {
	m.status = &r
}

// Status returns the value of the "status" field in the mutation.
func (m *RunMutation) Status() (r run.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldStatus(ctx context.Context) (v run.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *RunMutation) ResetStatus() {
	m.status = nil
}

// SetExecutionMode sets the "execution_mode" field.
func (m *RunMutation) SetExecutionMode(rm run.ExecutionMode) {
	m.execution_mode = &rm
}

// ExecutionMode returns the value of the "execution_mode" field in the mutation.
func (m *RunMutation) ExecutionMode() (r run.ExecutionMode, exists bool) {
	v := m.execution_mode
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutionMode returns the old "execution_mode" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldExecutionMode(ctx context.Context) (v run.ExecutionMode, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutionMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutionMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutionMode: %w", err)
	}
	return oldValue.ExecutionMode, nil
}

// ResetExecutionMode resets all changes to the "execution_mode" field.
func (m *RunMutation) ResetExecutionMode() {
	m.execution_mode = nil
}

// SetStreamingMode sets the "streaming_mode" field.
func (m *RunMutation) SetStreamingMode(rm run.StreamingMode) {
	m.streaming_mode = &rm
}

// StreamingMode returns the value of the "streaming_mode" field in the mutation.
func (m *RunMutation) StreamingMode() (r run.StreamingMode, exists bool) {
	v := m.streaming_mode
	if v == nil {
		return
	}
	return *v, true
}

// OldStreamingMode returns the old "streaming_mode" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldStreamingMode(ctx context.Context) (v run.StreamingMode, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStreamingMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStreamingMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStreamingMode: %w", err)
	}
	return oldValue.StreamingMode, nil
}

// ResetStreamingMode resets all changes to the "streaming_mode" field.
func (m *RunMutation) ResetStreamingMode() {
	m.streaming_mode = nil
}

// SetIsAutoRetry sets the "is_auto_retry" field.
func (m *RunMutation) SetIsAutoRetry(b bool) {
	m.is_auto_retry = &b
}

// IsAutoRetry returns the value of the "is_auto_retry" field in the mutation.
func (m *RunMutation) IsAutoRetry() (r bool, exists bool) {
	v := m.is_auto_retry
	if v == nil {
		return
	}
	return *v, true
}

// OldIsAutoRetry returns the old "is_auto_retry" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldIsAutoRetry(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsAutoRetry is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsAutoRetry requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsAutoRetry: %w", err)
	}
	return oldValue.IsAutoRetry, nil
}

// ResetIsAutoRetry resets all changes to the "is_auto_retry" field.
func (m *RunMutation) ResetIsAutoRetry() {
	m.is_auto_retry = nil
}

// SetProgress sets the "progress" field.
func (m *RunMutation) SetProgress(i int) {
	m.progress = &i
	m.addprogress = nil
}

// Progress returns the value of the "progress" field in the mutation.
func (m *RunMutation) Progress() (r int, exists bool) {
	v := m.progress
	if v == nil {
		return
	}
	return *v, true
}

// OldProgress returns the old "progress" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldProgress(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProgress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProgress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProgress: %w", err)
	}
	return oldValue.Progress, nil
}

// AddProgress adds i to the "progress" field.
func (m *RunMutation) AddProgress(i int) {
	if m.addprogress != nil {
		*m.addprogress += i
	} else {
		m.addprogress = &i
	}
}

// AddedProgress returns the value that was added to the "progress" field in this mutation.
func (m *RunMutation) AddedProgress() (r int, exists bool) {
	v := m.addprogress
	if v == nil {
		return
	}
	return *v, true
}

// ResetProgress resets all changes to the "progress" field.
func (m *RunMutation) ResetProgress() {
	m.progress = nil
	m.addprogress = nil
}

// SetCancelRequested sets the "cancel_requested" field.
func (m *RunMutation) SetCancelRequested(b bool) {
	m.cancel_requested = &b
}

// CancelRequested returns the value of the "cancel_requested" field in the mutation.
func (m *RunMutation) CancelRequested() (r bool, exists bool) {
	v := m.cancel_requested
	if v == nil {
		return
	}
	return *v, true
}

// OldCancelRequested returns the old "cancel_requested" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldCancelRequested(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCancelRequested is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCancelRequested requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCancelRequested: %w", err)
	}
	return oldValue.CancelRequested, nil
}

// ResetCancelRequested resets all changes to the "cancel_requested" field.
func (m *RunMutation) ResetCancelRequested() {
	m.cancel_requested = nil
}

// SetAgentData sets the "agent_data" field.
func (m *RunMutation) SetAgentData(value map[string]interface{}) {
	m.agent_data = &value
}

// AgentData returns the value of the "agent_data" field in the mutation.
func (m *RunMutation) AgentData() (r map[string]interface{}, exists bool) {
	v := m.agent_data
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentData returns the old "agent_data" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldAgentData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentData: %w", err)
	}
	return oldValue.AgentData, nil
}

// ClearAgentData clears the value of the "agent_data" field.
func (m *RunMutation) ClearAgentData() {
	m.agent_data = nil
	m.clearedFields[run.FieldAgentData] = struct{}{}
}

// AgentDataCleared returns if the "agent_data" field was cleared in this mutation.
func (m *RunMutation) AgentDataCleared() bool {
	_, ok := m.clearedFields[run.FieldAgentData]
	return ok
}

// ResetAgentData resets all changes to the "agent_data" field.
func (m *RunMutation) ResetAgentData() {
	m.agent_data = nil
	delete(m.clearedFields, run.FieldAgentData)
}

// SetStreamState sets the "stream_state" field.
func (m *RunMutation) SetStreamState(value map[string]interface{}) {
	m.stream_state = &value
}

// StreamState returns the value of the "stream_state" field in the mutation.
func (m *RunMutation) StreamState() (r map[string]interface{}, exists bool) {
	v := m.stream_state
	if v == nil {
		return
	}
	return *v, true
}

// OldStreamState returns the old "stream_state" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldStreamState(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStreamState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStreamState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStreamState: %w", err)
	}
	return oldValue.StreamState, nil
}

// ClearStreamState clears the value of the "stream_state" field.
func (m *RunMutation) ClearStreamState() {
	m.stream_state = nil
	m.clearedFields[run.FieldStreamState] = struct{}{}
}

// StreamStateCleared returns if the "stream_state" field was cleared in this mutation.
func (m *RunMutation) StreamStateCleared() bool {
	_, ok := m.clearedFields[run.FieldStreamState]
	return ok
}

// ResetStreamState resets all changes to the "stream_state" field.
func (m *RunMutation) ResetStreamState() {
	m.stream_state = nil
	delete(m.clearedFields, run.FieldStreamState)
}

// SetLogs sets the "logs" field.
func (m *RunMutation) SetLogs(s string) {
	m.logs = &s
}

// Logs returns the value of the "logs" field in the mutation.
func (m *RunMutation) Logs() (r string, exists bool) {
	v := m.logs
	if v == nil {
		return
	}
	return *v, true
}

// OldLogs returns the old "logs" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldLogs(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLogs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLogs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLogs: %w", err)
	}
	return oldValue.Logs, nil
}

// ClearLogs clears the value of the "logs" field.
func (m *RunMutation) ClearLogs() {
	m.logs = nil
	m.clearedFields[run.FieldLogs] = struct{}{}
}

// LogsCleared returns if the "logs" field was cleared in this mutation.
func (m *RunMutation) LogsCleared() bool {
	_, ok := m.clearedFields[run.FieldLogs]
	return ok
}

// ResetLogs resets all changes to the "logs" field.
func (m *RunMutation) ResetLogs() {
	m.logs = nil
	delete(m.clearedFields, run.FieldLogs)
}

// SetErrorMessage sets the "error_message" field.
func (m *RunMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *RunMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *RunMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[run.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *RunMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[run.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *RunMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, run.FieldErrorMessage)
}

// SetContainerID sets the "container_id" field.
func (m *RunMutation) SetContainerID(s string) {
	m.container_id = &s
}

// ContainerID returns the value of the "container_id" field in the mutation.
func (m *RunMutation) ContainerID() (r string, exists bool) {
	v := m.container_id
	if v == nil {
		return
	}
	return *v, true
}

// OldContainerID returns the old "container_id" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldContainerID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContainerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContainerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContainerID: %w", err)
	}
	return oldValue.ContainerID, nil
}

// ClearContainerID clears the value of the "container_id" field.
func (m *RunMutation) ClearContainerID() {
	m.container_id = nil
	m.clearedFields[run.FieldContainerID] = struct{}{}
}

// ContainerIDCleared returns if the "container_id" field was cleared in this mutation.
func (m *RunMutation) ContainerIDCleared() bool {
	_, ok := m.clearedFields[run.FieldContainerID]
	return ok
}

// ResetContainerID resets all changes to the "container_id" field.
func (m *RunMutation) ResetContainerID() {
	m.container_id = nil
	delete(m.clearedFields, run.FieldContainerID)
}

// SetDurationMs sets the "duration_ms" field.
func (m *RunMutation) SetDurationMs(i int) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *RunMutation) DurationMs() (r int, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldDurationMs(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *RunMutation) AddDurationMs(i int) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *RunMutation) AddedDurationMs() (r int, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (m *RunMutation) ClearDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	m.clearedFields[run.FieldDurationMs] = struct{}{}
}

// DurationMsCleared returns if the "duration_ms" field was cleared in this mutation.
func (m *RunMutation) DurationMsCleared() bool {
	_, ok := m.clearedFields[run.FieldDurationMs]
	return ok
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *RunMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	delete(m.clearedFields, run.FieldDurationMs)
}

// SetPodID sets the "pod_id" field.
func (m *RunMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *RunMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *RunMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[run.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *RunMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[run.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *RunMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, run.FieldPodID)
}

// SetCreatedAt sets the "created_at" field.
func (m *RunMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RunMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RunMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *RunMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *RunMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *RunMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[run.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *RunMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[run.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *RunMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, run.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *RunMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *RunMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *RunMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[run.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *RunMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[run.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *RunMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, run.FieldCompletedAt)
}

// ClearSpec clears the "spec" edge to the Spec entity.
func (m *RunMutation) ClearSpec() {
	m.clearedspec = true
	m.clearedFields[run.FieldSpecID] = struct{}{}
}

// SpecCleared reports if the "spec" edge to the Spec entity was cleared.
func (m *RunMutation) SpecCleared() bool {
	return m.clearedspec
}

// SpecIDs returns the "spec" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SpecID instead. It exists only for internal usage by the builders.
func (m *RunMutation) SpecIDs() (ids []string) {
	if id := m.spec; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSpec resets all changes to the "spec" edge.
func (m *RunMutation) ResetSpec() {
	m.spec = nil
	m.clearedspec = false
}

// ClearSuiteRun clears the "suite_run" edge to the SuiteRun entity.
func (m *RunMutation) ClearSuiteRun() {
	m.clearedsuite_run = true
	m.clearedFields[run.FieldSuiteRunID] = struct{}{}
}

// SuiteRunCleared reports if the "suite_run" edge to the SuiteRun entity was cleared.
func (m *RunMutation) SuiteRunCleared() bool {
	return m.SuiteRunIDCleared() || m.clearedsuite_run
}

// SuiteRunIDs returns the "suite_run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SuiteRunID instead. It exists only for internal usage by the builders.
func (m *RunMutation) SuiteRunIDs() (ids []string) {
	if id := m.suite_run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSuiteRun resets all changes to the "suite_run" edge.
func (m *RunMutation) ResetSuiteRun() {
	m.suite_run = nil
	m.clearedsuite_run = false
}

// AddArtifactIDs adds the "artifacts" edge to the Artifact entity by ids.
func (m *RunMutation) AddArtifactIDs(ids ...string) {
	if m.artifacts == nil {
		m.artifacts = make(map[string]struct{})
	}
	for i := range ids {
		m.artifacts[ids[i]] = struct{}{}
	}
}

// ClearArtifacts clears the "artifacts" edge to the Artifact entity.
func (m *RunMutation) ClearArtifacts() {
	m.clearedartifacts = true
}

// ArtifactsCleared reports if the "artifacts" edge to the Artifact entity was cleared.
func (m *RunMutation) ArtifactsCleared() bool {
	return m.clearedartifacts
}

// RemoveArtifactIDs removes the "artifacts" edge to the Artifact entity by IDs.
func (m *RunMutation) RemoveArtifactIDs(ids ...string) {
	if m.removedartifacts == nil {
		m.removedartifacts = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.artifacts, ids[i])
		m.removedartifacts[ids[i]] = struct{}{}
	}
}

// RemovedArtifacts returns the removed IDs of the "artifacts" edge to the Artifact entity.
func (m *RunMutation) RemovedArtifactsIDs() (ids []string) {
	for id := range m.removedartifacts {
		ids = append(ids, id)
	}
	return
}

// ArtifactsIDs returns the "artifacts" edge IDs in the mutation.
func (m *RunMutation) ArtifactsIDs() (ids []string) {
	for id := range m.artifacts {
		ids = append(ids, id)
	}
	return
}

// ResetArtifacts resets all changes to the "artifacts" edge.
func (m *RunMutation) ResetArtifacts() {
	m.artifacts = nil
	m.clearedartifacts = false
	m.removedartifacts = nil
}

// Where appends a list predicates to the RunMutation builder.
func (m *RunMutation) Where(ps ...predicate.Run) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Run, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Run).
func (m *RunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RunMutation) Fields() []string {
	fields := make([]string, 0, 19)
	if m.spec != nil {
		fields = append(fields, run.FieldSpecID)
	}
	if m.suite_run != nil {
		fields = append(fields, run.FieldSuiteRunID)
	}
	if m.suite_index != nil {
		fields = append(fields, run.FieldSuiteIndex)
	}
	if m.status != nil {
		fields = append(fields, run.FieldStatus)
	}
	if m.execution_mode != nil {
		fields = append(fields, run.FieldExecutionMode)
	}
	if m.streaming_mode != nil {
		fields = append(fields, run.FieldStreamingMode)
	}
	if m.is_auto_retry != nil {
		fields = append(fields, run.FieldIsAutoRetry)
	}
	if m.progress != nil {
		fields = append(fields, run.FieldProgress)
	}
	if m.cancel_requested != nil {
		fields = append(fields, run.FieldCancelRequested)
	}
	if m.agent_data != nil {
		fields = append(fields, run.FieldAgentData)
	}
	if m.stream_state != nil {
		fields = append(fields, run.FieldStreamState)
	}
	if m.logs != nil {
		fields = append(fields, run.FieldLogs)
	}
	if m.error_message != nil {
		fields = append(fields, run.FieldErrorMessage)
	}
	if m.container_id != nil {
		fields = append(fields, run.FieldContainerID)
	}
	if m.duration_ms != nil {
		fields = append(fields, run.FieldDurationMs)
	}
	if m.pod_id != nil {
		fields = append(fields, run.FieldPodID)
	}
	if m.created_at != nil {
		fields = append(fields, run.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, run.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, run.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case run.FieldSpecID:
		return m.SpecID()
	case run.FieldSuiteRunID:
		return m.SuiteRunID()
	case run.FieldSuiteIndex:
		return m.SuiteIndex()
	case run.FieldStatus:
		return m.Status()
	case run.FieldExecutionMode:
		return m.ExecutionMode()
	case run.FieldStreamingMode:
		return m.StreamingMode()
	case run.FieldIsAutoRetry:
		return m.IsAutoRetry()
	case run.FieldProgress:
		return m.Progress()
	case run.FieldCancelRequested:
		return m.CancelRequested()
	case run.FieldAgentData:
		return m.AgentData()
	case run.FieldStreamState:
		return m.StreamState()
	case run.FieldLogs:
		return m.Logs()
	case run.FieldErrorMessage:
		return m.ErrorMessage()
	case run.FieldContainerID:
		return m.ContainerID()
	case run.FieldDurationMs:
		return m.DurationMs()
	case run.FieldPodID:
		return m.PodID()
	case run.FieldCreatedAt:
		return m.CreatedAt()
	case run.FieldStartedAt:
		return m.StartedAt()
	case run.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case run.FieldSpecID:
		return m.OldSpecID(ctx)
	case run.FieldSuiteRunID:
		return m.OldSuiteRunID(ctx)
	case run.FieldSuiteIndex:
		return m.OldSuiteIndex(ctx)
	case run.FieldStatus:
		return m.OldStatus(ctx)
	case run.FieldExecutionMode:
		return m.OldExecutionMode(ctx)
	case run.FieldStreamingMode:
		return m.OldStreamingMode(ctx)
	case run.FieldIsAutoRetry:
		return m.OldIsAutoRetry(ctx)
	case run.FieldProgress:
		return m.OldProgress(ctx)
	case run.FieldCancelRequested:
		return m.OldCancelRequested(ctx)
	case run.FieldAgentData:
		return m.OldAgentData(ctx)
	case run.FieldStreamState:
		return m.OldStreamState(ctx)
	case run.FieldLogs:
		return m.OldLogs(ctx)
	case run.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case run.FieldContainerID:
		return m.OldContainerID(ctx)
	case run.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case run.FieldPodID:
		return m.OldPodID(ctx)
	case run.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case run.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case run.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Run field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case run.FieldSpecID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpecID(v)
		return nil
	case run.FieldSuiteRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuiteRunID(v)
		return nil
	case run.FieldSuiteIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuiteIndex(v)
		return nil
	case run.FieldStatus:
		v, ok := value.(run.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case run.FieldExecutionMode:
		v, ok := value.(run.ExecutionMode)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutionMode(v)
		return nil
	case run.FieldStreamingMode:
		v, ok := value.(run.StreamingMode)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStreamingMode(v)
		return nil
	case run.FieldIsAutoRetry:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsAutoRetry(v)
		return nil
	case run.FieldProgress:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProgress(v)
		return nil
	case run.FieldCancelRequested:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCancelRequested(v)
		return nil
	case run.FieldAgentData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentData(v)
		return nil
	case run.FieldStreamState:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStreamState(v)
		return nil
	case run.FieldLogs:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLogs(v)
		return nil
	case run.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case run.FieldContainerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContainerID(v)
		return nil
	case run.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case run.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case run.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case run.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case run.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Run field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RunMutation) AddedFields() []string {
	var fields []string
	if m.addsuite_index != nil {
		fields = append(fields, run.FieldSuiteIndex)
	}
	if m.addprogress != nil {
		fields = append(fields, run.FieldProgress)
	}
	if m.addduration_ms != nil {
		fields = append(fields, run.FieldDurationMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RunMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case run.FieldSuiteIndex:
		return m.AddedSuiteIndex()
	case run.FieldProgress:
		return m.AddedProgress()
	case run.FieldDurationMs:
		return m.AddedDurationMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunMutation) AddField(name string, value ent.Value) error {
	switch name {
	case run.FieldSuiteIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSuiteIndex(v)
		return nil
	case run.FieldProgress:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProgress(v)
		return nil
	case run.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown Run numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(run.FieldSuiteRunID) {
		fields = append(fields, run.FieldSuiteRunID)
	}
	if m.FieldCleared(run.FieldSuiteIndex) {
		fields = append(fields, run.FieldSuiteIndex)
	}
	if m.FieldCleared(run.FieldAgentData) {
		fields = append(fields, run.FieldAgentData)
	}
	if m.FieldCleared(run.FieldStreamState) {
		fields = append(fields, run.FieldStreamState)
	}
	if m.FieldCleared(run.FieldLogs) {
		fields = append(fields, run.FieldLogs)
	}
	if m.FieldCleared(run.FieldErrorMessage) {
		fields = append(fields, run.FieldErrorMessage)
	}
	if m.FieldCleared(run.FieldContainerID) {
		fields = append(fields, run.FieldContainerID)
	}
	if m.FieldCleared(run.FieldDurationMs) {
		fields = append(fields, run.FieldDurationMs)
	}
	if m.FieldCleared(run.FieldPodID) {
		fields = append(fields, run.FieldPodID)
	}
	if m.FieldCleared(run.FieldStartedAt) {
		fields = append(fields, run.FieldStartedAt)
	}
	if m.FieldCleared(run.FieldCompletedAt) {
		fields = append(fields, run.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RunMutation) ClearField(name string) error {
	switch name {
	case run.FieldSuiteRunID:
		m.ClearSuiteRunID()
		return nil
	case run.FieldSuiteIndex:
		m.ClearSuiteIndex()
		return nil
	case run.FieldAgentData:
		m.ClearAgentData()
		return nil
	case run.FieldStreamState:
		m.ClearStreamState()
		return nil
	case run.FieldLogs:
		m.ClearLogs()
		return nil
	case run.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case run.FieldContainerID:
		m.ClearContainerID()
		return nil
	case run.FieldDurationMs:
		m.ClearDurationMs()
		return nil
	case run.FieldPodID:
		m.ClearPodID()
		return nil
	case run.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case run.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Run nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RunMutation) ResetField(name string) error {
	switch name {
	case run.FieldSpecID:
		m.ResetSpecID()
		return nil
	case run.FieldSuiteRunID:
		m.ResetSuiteRunID()
		return nil
	case run.FieldSuiteIndex:
		m.ResetSuiteIndex()
		return nil
	case run.FieldStatus:
		m.ResetStatus()
		return nil
	case run.FieldExecutionMode:
		m.ResetExecutionMode()
		return nil
	case run.FieldStreamingMode:
		m.ResetStreamingMode()
		return nil
	case run.FieldIsAutoRetry:
		m.ResetIsAutoRetry()
		return nil
	case run.FieldProgress:
		m.ResetProgress()
		return nil
	case run.FieldCancelRequested:
		m.ResetCancelRequested()
		return nil
	case run.FieldAgentData:
		m.ResetAgentData()
		return nil
	case run.FieldStreamState:
		m.ResetStreamState()
		return nil
	case run.FieldLogs:
		m.ResetLogs()
		return nil
	case run.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case run.FieldContainerID:
		m.ResetContainerID()
		return nil
	case run.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case run.FieldPodID:
		m.ResetPodID()
		return nil
	case run.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case run.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case run.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Run field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RunMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.spec != nil {
		edges = append(edges, run.EdgeSpec)
	}
	if m.suite_run != nil {
		edges = append(edges, run.EdgeSuiteRun)
	}
	if m.artifacts != nil {
		edges = append(edges, run.EdgeArtifacts)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RunMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case run.EdgeSpec:
		if id := m.spec; id != nil {
			return []ent.Value{*id}
		}
	case run.EdgeSuiteRun:
		if id := m.suite_run; id != nil {
			return []ent.Value{*id}
		}
	case run.EdgeArtifacts:
		ids := make([]ent.Value, 0, len(m.artifacts))
		for id := range m.artifacts {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedartifacts != nil {
		edges = append(edges, run.EdgeArtifacts)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RunMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case run.EdgeArtifacts:
		ids := make([]ent.Value, 0, len(m.removedartifacts))
		for id := range m.removedartifacts {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedspec {
		edges = append(edges, run.EdgeSpec)
	}
	if m.clearedsuite_run {
		edges = append(edges, run.EdgeSuiteRun)
	}
	if m.clearedartifacts {
		edges = append(edges, run.EdgeArtifacts)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RunMutation) EdgeCleared(name string) bool {
	switch name {
	case run.EdgeSpec:
		return m.clearedspec
	case run.EdgeSuiteRun:
		return m.clearedsuite_run
	case run.EdgeArtifacts:
		return m.clearedartifacts
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RunMutation) ClearEdge(name string) error {
	switch name {
	case run.EdgeSpec:
		m.ClearSpec()
		return nil
	case run.EdgeSuiteRun:
		m.ClearSuiteRun()
		return nil
	}
	return fmt.Errorf("unknown Run unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RunMutation) ResetEdge(name string) error {
	switch name {
	case run.EdgeSpec:
		m.ResetSpec()
		return nil
	case run.EdgeSuiteRun:
		m.ResetSuiteRun()
		return nil
	case run.EdgeArtifacts:
		m.ResetArtifacts()
		return nil
	}
	return fmt.Errorf("unknown Run edge %s", name)
}

// SpecMutation represents an operation that mutates the Spec nodes in the graph.
type SpecMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	code                  *string
	status                *spec.Status
	version               *int
	addversion            *int
	attempt               *int
	addattempt            *int
	max_attempts          *int
	addmax_attempts       *int
	parent_spec_id        *string
	failure_context       *map[string]interface{}
	created_at            *time.Time
	updated_at            *time.Time
	clearedFields         map[string]struct{}
	recording             *string
	clearedrecording      bool
	runs                  map[string]struct{}
	removedruns           map[string]struct{}
	clearedruns           bool
	clarifications        map[string]struct{}
	removedclarifications map[string]struct{}
	clearedclarifications bool
	done                  bool
	oldValue              func(context.Context) (*Spec, error)
	predicates            []predicate.Spec
}

var _ ent.Mutation = (*SpecMutation)(nil)

// specOption allows management of the mutation configuration using functional options.
type specOption func(*SpecMutation)

// newSpecMutation creates new mutation for the Spec entity.
func newSpecMutation(c config, op Op, opts ...specOption) *SpecMutation {
	m := &SpecMutation{
		config:        c,
		op:            op,
		typ:           TypeSpec,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSpecID sets the ID field of the mutation.
func withSpecID(id string) specOption {
	return func(m *SpecMutation) {
		var (
			err   error
			once  sync.Once
			value *Spec
		)
		m.oldValue = func(ctx context.Context) (*Spec, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Spec.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSpec sets the old Spec of the mutation.
func withSpec(node *Spec) specOption {
	return func(m *SpecMutation) {
		m.oldValue = func(context.Context) (*Spec, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SpecMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SpecMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Spec entities.
func (m *SpecMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SpecMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SpecMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Spec.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRecordingID sets the "recording_id" field.
func (m *SpecMutation) SetRecordingID(s string) {
	m.recording = &s
}

// RecordingID returns the value of the "recording_id" field in the mutation.
func (m *SpecMutation) RecordingID() (r string, exists bool) {
	v := m.recording
	if v == nil {
		return
	}
	return *v, true
}

// OldRecordingID returns the old "recording_id" field's value of the Spec entity.
// If the Spec object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpecMutation) OldRecordingID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecordingID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecordingID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecordingID: %w", err)
	}
	return oldValue.RecordingID, nil
}

// ResetRecordingID resets all changes to the "recording_id" field.
func (m *SpecMutation) ResetRecordingID() {
	m.recording = nil
}

// SetCode sets the "code" field.
func (m *SpecMutation) SetCode(s string) {
	m.code = &s
}

// Code returns the value of the "code" field in the mutation.
func (m *SpecMutation) Code() (r string, exists bool) {
	v := m.code
	if v == nil {
		return
	}
	return *v, true
}

// OldCode returns the old "code" field's value of the Spec entity.
// If the Spec object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpecMutation) OldCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCode: %w", err)
	}
	return oldValue.Code, nil
}

// ResetCode resets all changes to the "code" field.
func (m *SpecMutation) ResetCode() {
	m.code = nil
}

// SetStatus sets the "status" field.
func (m *SpecMutation) SetStatus(s spec.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *SpecMutation) Status() (r spec.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Spec entity.
// If the Spec object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpecMutation) OldStatus(ctx context.Context) (v spec.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *SpecMutation) ResetStatus() {
	m.status = nil
}

// SetVersion sets the "version" field.
func (m *SpecMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *SpecMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the Spec entity.
// If the Spec object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpecMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *SpecMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *SpecMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *SpecMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetAttempt sets the "attempt" field.
func (m *SpecMutation) SetAttempt(i int) {
	m.attempt = &i
	m.addattempt = nil
}

// Attempt returns the value of the "attempt" field in the mutation.
func (m *SpecMutation) Attempt() (r int, exists bool) {
	v := m.attempt
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempt returns the old "attempt" field's value of the Spec entity.
// If the Spec object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpecMutation) OldAttempt(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempt: %w", err)
	}
	return oldValue.Attempt, nil
}

// AddAttempt adds i to the "attempt" field.
func (m *SpecMutation) AddAttempt(i int) {
	if m.addattempt != nil {
		*m.addattempt += i
	} else {
		m.addattempt = &i
	}
}

// AddedAttempt returns the value that was added to the "attempt" field in this mutation.
func (m *SpecMutation) AddedAttempt() (r int, exists bool) {
	v := m.addattempt
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempt resets all changes to the "attempt" field.
func (m *SpecMutation) ResetAttempt() {
	m.attempt = nil
	m.addattempt = nil
}

// SetMaxAttempts sets the "max_attempts" field.
func (m *SpecMutation) SetMaxAttempts(i int) {
	m.max_attempts = &i
	m.addmax_attempts = nil
}

// MaxAttempts returns the value of the "max_attempts" field in the mutation.
func (m *SpecMutation) MaxAttempts() (r int, exists bool) {
	v := m.max_attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxAttempts returns the old "max_attempts" field's value of the Spec entity.
// If the Spec object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpecMutation) OldMaxAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxAttempts: %w", err)
	}
	return oldValue.MaxAttempts, nil
}

// AddMaxAttempts adds i to the "max_attempts" field.
func (m *SpecMutation) AddMaxAttempts(i int) {
	if m.addmax_attempts != nil {
		*m.addmax_attempts += i
	} else {
		m.addmax_attempts = &i
	}
}

// AddedMaxAttempts returns the value that was added to the "max_attempts" field in this mutation.
func (m *SpecMutation) AddedMaxAttempts() (r int, exists bool) {
	v := m.addmax_attempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxAttempts resets all changes to the "max_attempts" field.
func (m *SpecMutation) ResetMaxAttempts() {
	m.max_attempts = nil
	m.addmax_attempts = nil
}

// SetParentSpecID sets the "parent_spec_id" field.
func (m *SpecMutation) SetParentSpecID(s string) {
	m.parent_spec_id = &s
}

// ParentSpecID returns the value of the "parent_spec_id" field in the mutation.
func (m *SpecMutation) ParentSpecID() (r string, exists bool) {
	v := m.parent_spec_id
	if v == nil {
		return
	}
	return *v, true
}

// OldParentSpecID returns the old "parent_spec_id" field's value of the Spec entity.
// If the Spec object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpecMutation) OldParentSpecID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentSpecID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentSpecID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentSpecID: %w", err)
	}
	return oldValue.ParentSpecID, nil
}

// ClearParentSpecID clears the value of the "parent_spec_id" field.
func (m *SpecMutation) ClearParentSpecID() {
	m.parent_spec_id = nil
	m.clearedFields[spec.FieldParentSpecID] = struct{}{}
}

// ParentSpecIDCleared returns if the "parent_spec_id" field was cleared in this mutation.
func (m *SpecMutation) ParentSpecIDCleared() bool {
	_, ok := m.clearedFields[spec.FieldParentSpecID]
	return ok
}

// ResetParentSpecID resets all changes to the "parent_spec_id" field.
func (m *SpecMutation) ResetParentSpecID() {
	m.parent_spec_id = nil
	delete(m.clearedFields, spec.FieldParentSpecID)
}

// SetFailureContext sets the "failure_context" field.
func (m *SpecMutation) SetFailureContext(value map[string]interface{}) {
	m.failure_context = &value
}

// FailureContext returns the value of the "failure_context" field in the mutation.
func (m *SpecMutation) FailureContext() (r map[string]interface{}, exists bool) {
	v := m.failure_context
	if v == nil {
		return
	}
	return *v, true
}

// OldFailureContext returns the old "failure_context" field's value of the Spec entity.
// If the Spec object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpecMutation) OldFailureContext(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailureContext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailureContext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailureContext: %w", err)
	}
	return oldValue.FailureContext, nil
}

// ClearFailureContext clears the value of the "failure_context" field.
func (m *SpecMutation) ClearFailureContext() {
	m.failure_context = nil
	m.clearedFields[spec.FieldFailureContext] = struct{}{}
}

// FailureContextCleared returns if the "failure_context" field was cleared in this mutation.
func (m *SpecMutation) FailureContextCleared() bool {
	_, ok := m.clearedFields[spec.FieldFailureContext]
	return ok
}

// ResetFailureContext resets all changes to the "failure_context" field.
func (m *SpecMutation) ResetFailureContext() {
	m.failure_context = nil
	delete(m.clearedFields, spec.FieldFailureContext)
}

// SetCreatedAt sets the "created_at" field.
func (m *SpecMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SpecMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Spec entity.
// If the Spec object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpecMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SpecMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SpecMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SpecMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Spec entity.
// If the Spec object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpecMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SpecMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearRecording clears the "recording" edge to the Recording entity.
func (m *SpecMutation) ClearRecording() {
	m.clearedrecording = true
	m.clearedFields[spec.FieldRecordingID] = struct{}{}
}

// RecordingCleared reports if the "recording" edge to the Recording entity was cleared.
func (m *SpecMutation) RecordingCleared() bool {
	return m.clearedrecording
}

// RecordingIDs returns the "recording" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RecordingID instead. It exists only for internal usage by the builders.
func (m *SpecMutation) RecordingIDs() (ids []string) {
	if id := m.recording; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRecording resets all changes to the "recording" edge.
func (m *SpecMutation) ResetRecording() {
	m.recording = nil
	m.clearedrecording = false
}

// AddRunIDs adds the "runs" edge to the Run entity by ids.
func (m *SpecMutation) AddRunIDs(ids ...string) {
	if m.runs == nil {
		m.runs = make(map[string]struct{})
	}
	for i := range ids {
		m.runs[ids[i]] = struct{}{}
	}
}

// ClearRuns clears the "runs" edge to the Run entity.
func (m *SpecMutation) ClearRuns() {
	m.clearedruns = true
}

// RunsCleared reports if the "runs" edge to the Run entity was cleared.
func (m *SpecMutation) RunsCleared() bool {
	return m.clearedruns
}

// RemoveRunIDs removes the "runs" edge to the Run entity by IDs.
func (m *SpecMutation) RemoveRunIDs(ids ...string) {
	if m.removedruns == nil {
		m.removedruns = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.runs, ids[i])
		m.removedruns[ids[i]] = struct{}{}
	}
}

// RemovedRuns returns the removed IDs of the "runs" edge to the Run entity.
func (m *SpecMutation) RemovedRunsIDs() (ids []string) {
	for id := range m.removedruns {
		ids = append(ids, id)
	}
	return
}

// RunsIDs returns the "runs" edge IDs in the mutation.
func (m *SpecMutation) RunsIDs() (ids []string) {
	for id := range m.runs {
		ids = append(ids, id)
	}
	return
}

// ResetRuns resets all changes to the "runs" edge.
func (m *SpecMutation) ResetRuns() {
	m.runs = nil
	m.clearedruns = false
	m.removedruns = nil
}

// AddClarificationIDs adds the "clarifications" edge to the Clarification entity by ids.
func (m *SpecMutation) AddClarificationIDs(ids ...string) {
	if m.clarifications == nil {
		m.clarifications = make(map[string]struct{})
	}
	for i := range ids {
		m.clarifications[ids[i]] = struct{}{}
	}
}

// ClearClarifications clears the "clarifications" edge to the Clarification entity.
func (m *SpecMutation) ClearClarifications() {
	m.clearedclarifications = true
}

// ClarificationsCleared reports if the "clarifications" edge to the Clarification entity was cleared.
func (m *SpecMutation) ClarificationsCleared() bool {
	return m.clearedclarifications
}

// RemoveClarificationIDs removes the "clarifications" edge to the Clarification entity by IDs.
func (m *SpecMutation) RemoveClarificationIDs(ids ...string) {
	if m.removedclarifications == nil {
		m.removedclarifications = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.clarifications, ids[i])
		m.removedclarifications[ids[i]] = struct{}{}
	}
}

// RemovedClarifications returns the removed IDs of the "clarifications" edge to the Clarification entity.
func (m *SpecMutation) RemovedClarificationsIDs() (ids []string) {
	for id := range m.removedclarifications {
		ids = append(ids, id)
	}
	return
}

// ClarificationsIDs returns the "clarifications" edge IDs in the mutation.
func (m *SpecMutation) ClarificationsIDs() (ids []string) {
	for id := range m.clarifications {
		ids = append(ids, id)
	}
	return
}

// ResetClarifications resets all changes to the "clarifications" edge.
func (m *SpecMutation) ResetClarifications() {
	m.clarifications = nil
	m.clearedclarifications = false
	m.removedclarifications = nil
}

// Where appends a list predicates to the SpecMutation builder.
func (m *SpecMutation) Where(ps ...predicate.Spec) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SpecMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SpecMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Spec, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SpecMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SpecMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Spec).
func (m *SpecMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SpecMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.recording != nil {
		fields = append(fields, spec.FieldRecordingID)
	}
	if m.code != nil {
		fields = append(fields, spec.FieldCode)
	}
	if m.status != nil {
		fields = append(fields, spec.FieldStatus)
	}
	if m.version != nil {
		fields = append(fields, spec.FieldVersion)
	}
	if m.attempt != nil {
		fields = append(fields, spec.FieldAttempt)
	}
	if m.max_attempts != nil {
		fields = append(fields, spec.FieldMaxAttempts)
	}
	if m.parent_spec_id != nil {
		fields = append(fields, spec.FieldParentSpecID)
	}
	if m.failure_context != nil {
		fields = append(fields, spec.FieldFailureContext)
	}
	if m.created_at != nil {
		fields = append(fields, spec.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, spec.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SpecMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case spec.FieldRecordingID:
		return m.RecordingID()
	case spec.FieldCode:
		return m.Code()
	case spec.FieldStatus:
		return m.Status()
	case spec.FieldVersion:
		return m.Version()
	case spec.FieldAttempt:
		return m.Attempt()
	case spec.FieldMaxAttempts:
		return m.MaxAttempts()
	case spec.FieldParentSpecID:
		return m.ParentSpecID()
	case spec.FieldFailureContext:
		return m.FailureContext()
	case spec.FieldCreatedAt:
		return m.CreatedAt()
	case spec.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SpecMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case spec.FieldRecordingID:
		return m.OldRecordingID(ctx)
	case spec.FieldCode:
		return m.OldCode(ctx)
	case spec.FieldStatus:
		return m.OldStatus(ctx)
	case spec.FieldVersion:
		return m.OldVersion(ctx)
	case spec.FieldAttempt:
		return m.OldAttempt(ctx)
	case spec.FieldMaxAttempts:
		return m.OldMaxAttempts(ctx)
	case spec.FieldParentSpecID:
		return m.OldParentSpecID(ctx)
	case spec.FieldFailureContext:
		return m.OldFailureContext(ctx)
	case spec.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case spec.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Spec field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SpecMutation) SetField(name string, value ent.Value) error {
	switch name {
	case spec.FieldRecordingID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecordingID(v)
		return nil
	case spec.FieldCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCode(v)
		return nil
	case spec.FieldStatus:
		v, ok := value.(spec.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case spec.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case spec.FieldAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempt(v)
		return nil
	case spec.FieldMaxAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxAttempts(v)
		return nil
	case spec.FieldParentSpecID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentSpecID(v)
		return nil
	case spec.FieldFailureContext:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailureContext(v)
		return nil
	case spec.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case spec.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Spec field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SpecMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, spec.FieldVersion)
	}
	if m.addattempt != nil {
		fields = append(fields, spec.FieldAttempt)
	}
	if m.addmax_attempts != nil {
		fields = append(fields, spec.FieldMaxAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SpecMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case spec.FieldVersion:
		return m.AddedVersion()
	case spec.FieldAttempt:
		return m.AddedAttempt()
	case spec.FieldMaxAttempts:
		return m.AddedMaxAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SpecMutation) AddField(name string, value ent.Value) error {
	switch name {
	case spec.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	case spec.FieldAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempt(v)
		return nil
	case spec.FieldMaxAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown Spec numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SpecMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(spec.FieldParentSpecID) {
		fields = append(fields, spec.FieldParentSpecID)
	}
	if m.FieldCleared(spec.FieldFailureContext) {
		fields = append(fields, spec.FieldFailureContext)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SpecMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SpecMutation) ClearField(name string) error {
	switch name {
	case spec.FieldParentSpecID:
		m.ClearParentSpecID()
		return nil
	case spec.FieldFailureContext:
		m.ClearFailureContext()
		return nil
	}
	return fmt.Errorf("unknown Spec nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SpecMutation) ResetField(name string) error {
	switch name {
	case spec.FieldRecordingID:
		m.ResetRecordingID()
		return nil
	case spec.FieldCode:
		m.ResetCode()
		return nil
	case spec.FieldStatus:
		m.ResetStatus()
		return nil
	case spec.FieldVersion:
		m.ResetVersion()
		return nil
	case spec.FieldAttempt:
		m.ResetAttempt()
		return nil
	case spec.FieldMaxAttempts:
		m.ResetMaxAttempts()
		return nil
	case spec.FieldParentSpecID:
		m.ResetParentSpecID()
		return nil
	case spec.FieldFailureContext:
		m.ResetFailureContext()
		return nil
	case spec.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case spec.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Spec field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SpecMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.recording != nil {
		edges = append(edges, spec.EdgeRecording)
	}
	if m.runs != nil {
		edges = append(edges, spec.EdgeRuns)
	}
	if m.clarifications != nil {
		edges = append(edges, spec.EdgeClarifications)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SpecMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case spec.EdgeRecording:
		if id := m.recording; id != nil {
			return []ent.Value{*id}
		}
	case spec.EdgeRuns:
		ids := make([]ent.Value, 0, len(m.runs))
		for id := range m.runs {
			ids = append(ids, id)
		}
		return ids
	case spec.EdgeClarifications:
		ids := make([]ent.Value, 0, len(m.clarifications))
		for id := range m.clarifications {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SpecMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedruns != nil {
		edges = append(edges, spec.EdgeRuns)
	}
	if m.removedclarifications != nil {
		edges = append(edges, spec.EdgeClarifications)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SpecMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case spec.EdgeRuns:
		ids := make([]ent.Value, 0, len(m.removedruns))
		for id := range m.removedruns {
			ids = append(ids, id)
		}
		return ids
	case spec.EdgeClarifications:
		ids := make([]ent.Value, 0, len(m.removedclarifications))
		for id := range m.removedclarifications {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SpecMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedrecording {
		edges = append(edges, spec.EdgeRecording)
	}
	if m.clearedruns {
		edges = append(edges, spec.EdgeRuns)
	}
	if m.clearedclarifications {
		edges = append(edges, spec.EdgeClarifications)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SpecMutation) EdgeCleared(name string) bool {
	switch name {
	case spec.EdgeRecording:
		return m.clearedrecording
	case spec.EdgeRuns:
		return m.clearedruns
	case spec.EdgeClarifications:
		return m.clearedclarifications
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SpecMutation) ClearEdge(name string) error {
	switch name {
	case spec.EdgeRecording:
		m.ClearRecording()
		return nil
	}
	return fmt.Errorf("unknown Spec unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SpecMutation) ResetEdge(name string) error {
	switch name {
	case spec.EdgeRecording:
		m.ResetRecording()
		return nil
	case spec.EdgeRuns:
		m.ResetRuns()
		return nil
	case spec.EdgeClarifications:
		m.ResetClarifications()
		return nil
	}
	return fmt.Errorf("unknown Spec edge %s", name)
}

// SuiteRunMutation represents an operation that mutates the SuiteRun nodes in the graph.
type SuiteRunMutation struct {
	config
	op              Op
	typ             string
	id              *string
	spec_ids        *[]string
	appendspec_ids  []string
	status          *suiterun.Status
	total_tests     *int
	addtotal_tests  *int
	passed_tests    *int
	addpassed_tests *int
	failed_tests    *int
	addfailed_tests *int
	error_message   *string
	created_at      *time.Time
	started_at      *time.Time
	completed_at    *time.Time
	clearedFields   map[string]struct{}
	project         *string
	clearedproject  bool
	runs            map[string]struct{}
	removedruns     map[string]struct{}
	clearedruns     bool
	done            bool
	oldValue        func(context.Context) (*SuiteRun, error)
	predicates      []predicate.SuiteRun
}

var _ ent.Mutation = (*SuiteRunMutation)(nil)

// suiterunOption allows management of the mutation configuration using functional options.
type suiterunOption func(*SuiteRunMutation)

// newSuiteRunMutation creates new mutation for the SuiteRun entity.
func newSuiteRunMutation(c config, op Op, opts ...suiterunOption) *SuiteRunMutation {
	m := &SuiteRunMutation{
		config:        c,
		op:            op,
		typ:           TypeSuiteRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSuiteRunID sets the ID field of the mutation.
func withSuiteRunID(id string) suiterunOption {
	return func(m *SuiteRunMutation) {
		var (
			err   error
			once  sync.Once
			value *SuiteRun
		)
		m.oldValue = func(ctx context.Context) (*SuiteRun, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SuiteRun.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSuiteRun sets the old SuiteRun of the mutation.
func withSuiteRun(node *SuiteRun) suiterunOption {
	return func(m *SuiteRunMutation) {
		m.oldValue = func(context.Context) (*SuiteRun, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SuiteRunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SuiteRunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SuiteRun entities.
func (m *SuiteRunMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SuiteRunMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SuiteRunMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SuiteRun.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectID sets the "project_id" field.
func (m *SuiteRunMutation) SetProjectID(s string) {
	m.project = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *SuiteRunMutation) ProjectID() (r string, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the SuiteRun entity.
// If the SuiteRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SuiteRunMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *SuiteRunMutation) ResetProjectID() {
	m.project = nil
}

// SetSpecIds sets the "spec_ids" field.
func (m *SuiteRunMutation) SetSpecIds(s []string) {
	m.spec_ids = &s
	m.appendspec_ids = nil
}

// SpecIds returns the value of the "spec_ids" field in the mutation.
func (m *SuiteRunMutation) SpecIds() (r []string, exists bool) {
	v := m.spec_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldSpecIds returns the old "spec_ids" field's value of the SuiteRun entity.
// If the SuiteRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SuiteRunMutation) OldSpecIds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpecIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpecIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpecIds: %w", err)
	}
	return oldValue.SpecIds, nil
}

// AppendSpecIds adds s to the "spec_ids" field.
func (m *SuiteRunMutation) AppendSpecIds(s []string) {
	m.appendspec_ids = append(m.appendspec_ids, s...)
}

// AppendedSpecIds returns the list of values that were appended to the "spec_ids" field in this mutation.
func (m *SuiteRunMutation) AppendedSpecIds() ([]string, bool) {
	if len(m.appendspec_ids) == 0 {
		return nil, false
	}
	return m.appendspec_ids, true
}

// ResetSpecIds resets all changes to the "spec_ids" field.
func (m *SuiteRunMutation) ResetSpecIds() {
	m.spec_ids = nil
	m.appendspec_ids = nil
}

// SetStatus sets the "status" field.
func (m *SuiteRunMutation) SetStatus(s suiterun.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *SuiteRunMutation) Status() (r suiterun.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the SuiteRun entity.
// If the SuiteRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SuiteRunMutation) OldStatus(ctx context.Context) (v suiterun.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *SuiteRunMutation) ResetStatus() {
	m.status = nil
}

// SetTotalTests sets the "total_tests" field.
func (m *SuiteRunMutation) SetTotalTests(i int) {
	m.total_tests = &i
	m.addtotal_tests = nil
}

// TotalTests returns the value of the "total_tests" field in the mutation.
func (m *SuiteRunMutation) TotalTests() (r int, exists bool) {
	v := m.total_tests
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalTests returns the old "total_tests" field's value of the SuiteRun entity.
// If the SuiteRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SuiteRunMutation) OldTotalTests(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalTests is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalTests requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalTests: %w", err)
	}
	return oldValue.TotalTests, nil
}

// AddTotalTests adds i to the "total_tests" field.
func (m *SuiteRunMutation) AddTotalTests(i int) {
	if m.addtotal_tests != nil {
		*m.addtotal_tests += i
	} else {
		m.addtotal_tests = &i
	}
}

// AddedTotalTests returns the value that was added to the "total_tests" field in this mutation.
func (m *SuiteRunMutation) AddedTotalTests() (r int, exists bool) {
	v := m.addtotal_tests
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalTests resets all changes to the "total_tests" field.
func (m *SuiteRunMutation) ResetTotalTests() {
	m.total_tests = nil
	m.addtotal_tests = nil
}

// SetPassedTests sets the "passed_tests" field.
func (m *SuiteRunMutation) SetPassedTests(i int) {
	m.passed_tests = &i
	m.addpassed_tests = nil
}

// PassedTests returns the value of the "passed_tests" field in the mutation.
func (m *SuiteRunMutation) PassedTests() (r int, exists bool) {
	v := m.passed_tests
	if v == nil {
		return
	}
	return *v, true
}

// OldPassedTests returns the old "passed_tests" field's value of the SuiteRun entity.
// If the SuiteRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SuiteRunMutation) OldPassedTests(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPassedTests is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPassedTests requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPassedTests: %w", err)
	}
	return oldValue.PassedTests, nil
}

// AddPassedTests adds i to the "passed_tests" field.
func (m *SuiteRunMutation) AddPassedTests(i int) {
	if m.addpassed_tests != nil {
		*m.addpassed_tests += i
	} else {
		m.addpassed_tests = &i
	}
}

// AddedPassedTests returns the value that was added to the "passed_tests" field in this mutation.
func (m *SuiteRunMutation) AddedPassedTests() (r int, exists bool) {
	v := m.addpassed_tests
	if v == nil {
		return
	}
	return *v, true
}

// ResetPassedTests resets all changes to the "passed_tests" field.
func (m *SuiteRunMutation) ResetPassedTests() {
	m.passed_tests = nil
	m.addpassed_tests = nil
}

// SetFailedTests sets the "failed_tests" field.
func (m *SuiteRunMutation) SetFailedTests(i int) {
	m.failed_tests = &i
	m.addfailed_tests = nil
}

// FailedTests returns the value of the "failed_tests" field in the mutation.
func (m *SuiteRunMutation) FailedTests() (r int, exists bool) {
	v := m.failed_tests
	if v == nil {
		return
	}
	return *v, true
}

// OldFailedTests returns the old "failed_tests" field's value of the SuiteRun entity.
// If the SuiteRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SuiteRunMutation) OldFailedTests(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailedTests is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailedTests requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailedTests: %w", err)
	}
	return oldValue.FailedTests, nil
}

// AddFailedTests adds i to the "failed_tests" field.
func (m *SuiteRunMutation) AddFailedTests(i int) {
	if m.addfailed_tests != nil {
		*m.addfailed_tests += i
	} else {
		m.addfailed_tests = &i
	}
}

// AddedFailedTests returns the value that was added to the "failed_tests" field in this mutation.
func (m *SuiteRunMutation) AddedFailedTests() (r int, exists bool) {
	v := m.addfailed_tests
	if v == nil {
		return
	}
	return *v, true
}

// ResetFailedTests resets all changes to the "failed_tests" field.
func (m *SuiteRunMutation) ResetFailedTests() {
	m.failed_tests = nil
	m.addfailed_tests = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *SuiteRunMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *SuiteRunMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the SuiteRun entity.
// If the SuiteRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SuiteRunMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *SuiteRunMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[suiterun.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *SuiteRunMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[suiterun.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *SuiteRunMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, suiterun.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *SuiteRunMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SuiteRunMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SuiteRun entity.
// If the SuiteRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SuiteRunMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SuiteRunMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *SuiteRunMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *SuiteRunMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the SuiteRun entity.
// If the SuiteRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SuiteRunMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *SuiteRunMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[suiterun.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *SuiteRunMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[suiterun.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *SuiteRunMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, suiterun.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *SuiteRunMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *SuiteRunMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the SuiteRun entity.
// If the SuiteRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SuiteRunMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *SuiteRunMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[suiterun.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *SuiteRunMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[suiterun.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *SuiteRunMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, suiterun.FieldCompletedAt)
}

// ClearProject clears the "project" edge to the Project entity.
func (m *SuiteRunMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[suiterun.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *SuiteRunMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *SuiteRunMutation) ProjectIDs() (ids []string) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *SuiteRunMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// AddRunIDs adds the "runs" edge to the Run entity by ids.
func (m *SuiteRunMutation) AddRunIDs(ids ...string) {
	if m.runs == nil {
		m.runs = make(map[string]struct{})
	}
	for i := range ids {
		m.runs[ids[i]] = struct{}{}
	}
}

// ClearRuns clears the "runs" edge to the Run entity.
func (m *SuiteRunMutation) ClearRuns() {
	m.clearedruns = true
}

// RunsCleared reports if the "runs" edge to the Run entity was cleared.
func (m *SuiteRunMutation) RunsCleared() bool {
	return m.clearedruns
}

// RemoveRunIDs removes the "runs" edge to the Run entity by IDs.
func (m *SuiteRunMutation) RemoveRunIDs(ids ...string) {
	if m.removedruns == nil {
		m.removedruns = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.runs, ids[i])
		m.removedruns[ids[i]] = struct{}{}
	}
}

// RemovedRuns returns the removed IDs of the "runs" edge to the Run entity.
func (m *SuiteRunMutation) RemovedRunsIDs() (ids []string) {
	for id := range m.removedruns {
		ids = append(ids, id)
	}
	return
}

// RunsIDs returns the "runs" edge IDs in the mutation.
func (m *SuiteRunMutation) RunsIDs() (ids []string) {
	for id := range m.runs {
		ids = append(ids, id)
	}
	return
}

// ResetRuns resets all changes to the "runs" edge.
func (m *SuiteRunMutation) ResetRuns() {
	m.runs = nil
	m.clearedruns = false
	m.removedruns = nil
}

// Where appends a list predicates to the SuiteRunMutation builder.
func (m *SuiteRunMutation) Where(ps ...predicate.SuiteRun) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SuiteRunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SuiteRunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SuiteRun, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SuiteRunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SuiteRunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SuiteRun).
func (m *SuiteRunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SuiteRunMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.project != nil {
		fields = append(fields, suiterun.FieldProjectID)
	}
	if m.spec_ids != nil {
		fields = append(fields, suiterun.FieldSpecIds)
	}
	if m.status != nil {
		fields = append(fields, suiterun.FieldStatus)
	}
	if m.total_tests != nil {
		fields = append(fields, suiterun.FieldTotalTests)
	}
	if m.passed_tests != nil {
		fields = append(fields, suiterun.FieldPassedTests)
	}
	if m.failed_tests != nil {
		fields = append(fields, suiterun.FieldFailedTests)
	}
	if m.error_message != nil {
		fields = append(fields, suiterun.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, suiterun.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, suiterun.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, suiterun.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SuiteRunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case suiterun.FieldProjectID:
		return m.ProjectID()
	case suiterun.FieldSpecIds:
		return m.SpecIds()
	case suiterun.FieldStatus:
		return m.Status()
	case suiterun.FieldTotalTests:
		return m.TotalTests()
	case suiterun.FieldPassedTests:
		return m.PassedTests()
	case suiterun.FieldFailedTests:
		return m.FailedTests()
	case suiterun.FieldErrorMessage:
		return m.ErrorMessage()
	case suiterun.FieldCreatedAt:
		return m.CreatedAt()
	case suiterun.FieldStartedAt:
		return m.StartedAt()
	case suiterun.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SuiteRunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case suiterun.FieldProjectID:
		return m.OldProjectID(ctx)
	case suiterun.FieldSpecIds:
		return m.OldSpecIds(ctx)
	case suiterun.FieldStatus:
		return m.OldStatus(ctx)
	case suiterun.FieldTotalTests:
		return m.OldTotalTests(ctx)
	case suiterun.FieldPassedTests:
		return m.OldPassedTests(ctx)
	case suiterun.FieldFailedTests:
		return m.OldFailedTests(ctx)
	case suiterun.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case suiterun.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case suiterun.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case suiterun.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SuiteRun field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SuiteRunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case suiterun.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case suiterun.FieldSpecIds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpecIds(v)
		return nil
	case suiterun.FieldStatus:
		v, ok := value.(suiterun.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case suiterun.FieldTotalTests:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalTests(v)
		return nil
	case suiterun.FieldPassedTests:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPassedTests(v)
		return nil
	case suiterun.FieldFailedTests:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailedTests(v)
		return nil
	case suiterun.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case suiterun.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case suiterun.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case suiterun.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SuiteRun field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SuiteRunMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_tests != nil {
		fields = append(fields, suiterun.FieldTotalTests)
	}
	if m.addpassed_tests != nil {
		fields = append(fields, suiterun.FieldPassedTests)
	}
	if m.addfailed_tests != nil {
		fields = append(fields, suiterun.FieldFailedTests)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SuiteRunMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case suiterun.FieldTotalTests:
		return m.AddedTotalTests()
	case suiterun.FieldPassedTests:
		return m.AddedPassedTests()
	case suiterun.FieldFailedTests:
		return m.AddedFailedTests()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SuiteRunMutation) AddField(name string, value ent.Value) error {
	switch name {
	case suiterun.FieldTotalTests:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalTests(v)
		return nil
	case suiterun.FieldPassedTests:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPassedTests(v)
		return nil
	case suiterun.FieldFailedTests:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFailedTests(v)
		return nil
	}
	return fmt.Errorf("unknown SuiteRun numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SuiteRunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(suiterun.FieldErrorMessage) {
		fields = append(fields, suiterun.FieldErrorMessage)
	}
	if m.FieldCleared(suiterun.FieldStartedAt) {
		fields = append(fields, suiterun.FieldStartedAt)
	}
	if m.FieldCleared(suiterun.FieldCompletedAt) {
		fields = append(fields, suiterun.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SuiteRunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SuiteRunMutation) ClearField(name string) error {
	switch name {
	case suiterun.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case suiterun.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case suiterun.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown SuiteRun nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SuiteRunMutation) ResetField(name string) error {
	switch name {
	case suiterun.FieldProjectID:
		m.ResetProjectID()
		return nil
	case suiterun.FieldSpecIds:
		m.ResetSpecIds()
		return nil
	case suiterun.FieldStatus:
		m.ResetStatus()
		return nil
	case suiterun.FieldTotalTests:
		m.ResetTotalTests()
		return nil
	case suiterun.FieldPassedTests:
		m.ResetPassedTests()
		return nil
	case suiterun.FieldFailedTests:
		m.ResetFailedTests()
		return nil
	case suiterun.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case suiterun.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case suiterun.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case suiterun.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown SuiteRun field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SuiteRunMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.project != nil {
		edges = append(edges, suiterun.EdgeProject)
	}
	if m.runs != nil {
		edges = append(edges, suiterun.EdgeRuns)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SuiteRunMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case suiterun.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	case suiterun.EdgeRuns:
		ids := make([]ent.Value, 0, len(m.runs))
		for id := range m.runs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SuiteRunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedruns != nil {
		edges = append(edges, suiterun.EdgeRuns)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SuiteRunMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case suiterun.EdgeRuns:
		ids := make([]ent.Value, 0, len(m.removedruns))
		for id := range m.removedruns {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SuiteRunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedproject {
		edges = append(edges, suiterun.EdgeProject)
	}
	if m.clearedruns {
		edges = append(edges, suiterun.EdgeRuns)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SuiteRunMutation) EdgeCleared(name string) bool {
	switch name {
	case suiterun.EdgeProject:
		return m.clearedproject
	case suiterun.EdgeRuns:
		return m.clearedruns
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SuiteRunMutation) ClearEdge(name string) error {
	switch name {
	case suiterun.EdgeProject:
		m.ClearProject()
		return nil
	}
	return fmt.Errorf("unknown SuiteRun unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SuiteRunMutation) ResetEdge(name string) error {
	switch name {
	case suiterun.EdgeProject:
		m.ResetProject()
		return nil
	case suiterun.EdgeRuns:
		m.ResetRuns()
		return nil
	}
	return fmt.Errorf("unknown SuiteRun edge %s", name)
}
