// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dappsmith/conductor/ent/artifact"
	"github.com/dappsmith/conductor/ent/predicate"
)

// ArtifactUpdate is the builder for updating Artifact entities.
type ArtifactUpdate struct {
	config
	hooks    []Hook
	mutation *ArtifactMutation
}

// Where appends a list predicates to the ArtifactUpdate builder.
func (_u *ArtifactUpdate) Where(ps ...predicate.Artifact) *ArtifactUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetArtifactType sets the "artifact_type" field.
func (_u *ArtifactUpdate) SetArtifactType(v artifact.ArtifactType) *ArtifactUpdate {
	_u.mutation.SetArtifactType(v)
	return _u
}

// SetNillableArtifactType sets the "artifact_type" field if the given value is not nil.
func (_u *ArtifactUpdate) SetNillableArtifactType(v *artifact.ArtifactType) *ArtifactUpdate {
	if v != nil {
		_u.SetArtifactType(*v)
	}
	return _u
}

// SetStoragePath sets the "storage_path" field.
func (_u *ArtifactUpdate) SetStoragePath(v string) *ArtifactUpdate {
	_u.mutation.SetStoragePath(v)
	return _u
}

// SetNillableStoragePath sets the "storage_path" field if the given value is not nil.
func (_u *ArtifactUpdate) SetNillableStoragePath(v *string) *ArtifactUpdate {
	if v != nil {
		_u.SetStoragePath(*v)
	}
	return _u
}

// SetMimeType sets the "mime_type" field.
func (_u *ArtifactUpdate) SetMimeType(v string) *ArtifactUpdate {
	_u.mutation.SetMimeType(v)
	return _u
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (_u *ArtifactUpdate) SetNillableMimeType(v *string) *ArtifactUpdate {
	if v != nil {
		_u.SetMimeType(*v)
	}
	return _u
}

// SetSizeBytes sets the "size_bytes" field.
func (_u *ArtifactUpdate) SetSizeBytes(v int64) *ArtifactUpdate {
	_u.mutation.ResetSizeBytes()
	_u.mutation.SetSizeBytes(v)
	return _u
}

// SetNillableSizeBytes sets the "size_bytes" field if the given value is not nil.
func (_u *ArtifactUpdate) SetNillableSizeBytes(v *int64) *ArtifactUpdate {
	if v != nil {
		_u.SetSizeBytes(*v)
	}
	return _u
}

// AddSizeBytes adds value to the "size_bytes" field.
func (_u *ArtifactUpdate) AddSizeBytes(v int64) *ArtifactUpdate {
	_u.mutation.AddSizeBytes(v)
	return _u
}

// ClearSizeBytes clears the value of the "size_bytes" field.
func (_u *ArtifactUpdate) ClearSizeBytes() *ArtifactUpdate {
	_u.mutation.ClearSizeBytes()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ArtifactUpdate) SetCreatedAt(v time.Time) *ArtifactUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ArtifactUpdate) SetNillableCreatedAt(v *time.Time) *ArtifactUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the ArtifactMutation object of the builder.
func (_u *ArtifactUpdate) Mutation() *ArtifactMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ArtifactUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ArtifactUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ArtifactUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ArtifactUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ArtifactUpdate) check() error {
	if v, ok := _u.mutation.ArtifactType(); ok {
		if err := artifact.ArtifactTypeValidator(v); err != nil {
			return &ValidationError{Name: "artifact_type", err: fmt.Errorf(`ent: validator failed for field "Artifact.artifact_type": %w`, err)}
		}
	}
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Artifact.run"`)
	}
	return nil
}

func (_u *ArtifactUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(artifact.Table, artifact.Columns, sqlgraph.NewFieldSpec(artifact.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ArtifactType(); ok {
		_spec.SetField(artifact.FieldArtifactType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StoragePath(); ok {
		_spec.SetField(artifact.FieldStoragePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.MimeType(); ok {
		_spec.SetField(artifact.FieldMimeType, field.TypeString, value)
	}
	if value, ok := _u.mutation.SizeBytes(); ok {
		_spec.SetField(artifact.FieldSizeBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSizeBytes(); ok {
		_spec.AddField(artifact.FieldSizeBytes, field.TypeInt64, value)
	}
	if _u.mutation.SizeBytesCleared() {
		_spec.ClearField(artifact.FieldSizeBytes, field.TypeInt64)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(artifact.FieldCreatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{artifact.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ArtifactUpdateOne is the builder for updating a single Artifact entity.
type ArtifactUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ArtifactMutation
}

// SetArtifactType sets the "artifact_type" field.
func (_u *ArtifactUpdateOne) SetArtifactType(v artifact.ArtifactType) *ArtifactUpdateOne {
	_u.mutation.SetArtifactType(v)
	return _u
}

// SetNillableArtifactType sets the "artifact_type" field if the given value is not nil.
func (_u *ArtifactUpdateOne) SetNillableArtifactType(v *artifact.ArtifactType) *ArtifactUpdateOne {
	if v != nil {
		_u.SetArtifactType(*v)
	}
	return _u
}

// SetStoragePath sets the "storage_path" field.
func (_u *ArtifactUpdateOne) SetStoragePath(v string) *ArtifactUpdateOne {
	_u.mutation.SetStoragePath(v)
	return _u
}

// SetNillableStoragePath sets the "storage_path" field if the given value is not nil.
func (_u *ArtifactUpdateOne) SetNillableStoragePath(v *string) *ArtifactUpdateOne {
	if v != nil {
		_u.SetStoragePath(*v)
	}
	return _u
}

// SetMimeType sets the "mime_type" field.
func (_u *ArtifactUpdateOne) SetMimeType(v string) *ArtifactUpdateOne {
	_u.mutation.SetMimeType(v)
	return _u
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (_u *ArtifactUpdateOne) SetNillableMimeType(v *string) *ArtifactUpdateOne {
	if v != nil {
		_u.SetMimeType(*v)
	}
	return _u
}

// SetSizeBytes sets the "size_bytes" field.
func (_u *ArtifactUpdateOne) SetSizeBytes(v int64) *ArtifactUpdateOne {
	_u.mutation.ResetSizeBytes()
	_u.mutation.SetSizeBytes(v)
	return _u
}

// SetNillableSizeBytes sets the "size_bytes" field if the given value is not nil.
func (_u *ArtifactUpdateOne) SetNillableSizeBytes(v *int64) *ArtifactUpdateOne {
	if v != nil {
		_u.SetSizeBytes(*v)
	}
	return _u
}

// AddSizeBytes adds value to the "size_bytes" field.
func (_u *ArtifactUpdateOne) AddSizeBytes(v int64) *ArtifactUpdateOne {
	_u.mutation.AddSizeBytes(v)
	return _u
}

// ClearSizeBytes clears the value of the "size_bytes" field.
func (_u *ArtifactUpdateOne) ClearSizeBytes() *ArtifactUpdateOne {
	_u.mutation.ClearSizeBytes()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ArtifactUpdateOne) SetCreatedAt(v time.Time) *ArtifactUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ArtifactUpdateOne) SetNillableCreatedAt(v *time.Time) *ArtifactUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the ArtifactMutation object of the builder.
func (_u *ArtifactUpdateOne) Mutation() *ArtifactMutation {
	return _u.mutation
}

// Where appends a list predicates to the ArtifactUpdate builder.
func (_u *ArtifactUpdateOne) Where(ps ...predicate.Artifact) *ArtifactUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ArtifactUpdateOne) Select(field string, fields ...string) *ArtifactUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Artifact entity.
func (_u *ArtifactUpdateOne) Save(ctx context.Context) (*Artifact, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ArtifactUpdateOne) SaveX(ctx context.Context) *Artifact {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ArtifactUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ArtifactUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ArtifactUpdateOne) check() error {
	if v, ok := _u.mutation.ArtifactType(); ok {
		if err := artifact.ArtifactTypeValidator(v); err != nil {
			return &ValidationError{Name: "artifact_type", err: fmt.Errorf(`ent: validator failed for field "Artifact.artifact_type": %w`, err)}
		}
	}
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Artifact.run"`)
	}
	return nil
}

func (_u *ArtifactUpdateOne) sqlSave(ctx context.Context) (_node *Artifact, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(artifact.Table, artifact.Columns, sqlgraph.NewFieldSpec(artifact.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Artifact.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, artifact.FieldID)
		for _, f := range fields {
			if !artifact.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != artifact.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ArtifactType(); ok {
		_spec.SetField(artifact.FieldArtifactType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StoragePath(); ok {
		_spec.SetField(artifact.FieldStoragePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.MimeType(); ok {
		_spec.SetField(artifact.FieldMimeType, field.TypeString, value)
	}
	if value, ok := _u.mutation.SizeBytes(); ok {
		_spec.SetField(artifact.FieldSizeBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSizeBytes(); ok {
		_spec.AddField(artifact.FieldSizeBytes, field.TypeInt64, value)
	}
	if _u.mutation.SizeBytesCleared() {
		_spec.ClearField(artifact.FieldSizeBytes, field.TypeInt64)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(artifact.FieldCreatedAt, field.TypeTime, value)
	}
	_node = &Artifact{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{artifact.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
