// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dappsmith/conductor/ent/artifact"
	"github.com/dappsmith/conductor/ent/run"
)

// ArtifactCreate is the builder for creating a Artifact entity.
type ArtifactCreate struct {
	config
	mutation *ArtifactMutation
	hooks    []Hook
}

// SetRunID sets the "run_id" field.
func (_c *ArtifactCreate) SetRunID(v string) *ArtifactCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetArtifactType sets the "artifact_type" field.
func (_c *ArtifactCreate) SetArtifactType(v artifact.ArtifactType) *ArtifactCreate {
	_c.mutation.SetArtifactType(v)
	return _c
}

// SetName sets the "name" field.
func (_c *ArtifactCreate) SetName(v string) *ArtifactCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetStoragePath sets the "storage_path" field.
func (_c *ArtifactCreate) SetStoragePath(v string) *ArtifactCreate {
	_c.mutation.SetStoragePath(v)
	return _c
}

// SetMimeType sets the "mime_type" field.
func (_c *ArtifactCreate) SetMimeType(v string) *ArtifactCreate {
	_c.mutation.SetMimeType(v)
	return _c
}

// SetSizeBytes sets the "size_bytes" field.
func (_c *ArtifactCreate) SetSizeBytes(v int64) *ArtifactCreate {
	_c.mutation.SetSizeBytes(v)
	return _c
}

// SetNillableSizeBytes sets the "size_bytes" field if the given value is not nil.
func (_c *ArtifactCreate) SetNillableSizeBytes(v *int64) *ArtifactCreate {
	if v != nil {
		_c.SetSizeBytes(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ArtifactCreate) SetCreatedAt(v time.Time) *ArtifactCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ArtifactCreate) SetNillableCreatedAt(v *time.Time) *ArtifactCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ArtifactCreate) SetID(v string) *ArtifactCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRun sets the "run" edge to the Run entity.
func (_c *ArtifactCreate) SetRun(v *Run) *ArtifactCreate {
	return _c.SetRunID(v.ID)
}

// Mutation returns the ArtifactMutation object of the builder.
func (_c *ArtifactCreate) Mutation() *ArtifactMutation {
	return _c.mutation
}

// Save creates the Artifact in the database.
func (_c *ArtifactCreate) Save(ctx context.Context) (*Artifact, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ArtifactCreate) SaveX(ctx context.Context) *Artifact {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ArtifactCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ArtifactCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ArtifactCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := artifact.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ArtifactCreate) check() error {
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "Artifact.run_id"`)}
	}
	if _, ok := _c.mutation.ArtifactType(); !ok {
		return &ValidationError{Name: "artifact_type", err: errors.New(`ent: missing required field "Artifact.artifact_type"`)}
	}
	if v, ok := _c.mutation.ArtifactType(); ok {
		if err := artifact.ArtifactTypeValidator(v); err != nil {
			return &ValidationError{Name: "artifact_type", err: fmt.Errorf(`ent: validator failed for field "Artifact.artifact_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Artifact.name"`)}
	}
	if _, ok := _c.mutation.StoragePath(); !ok {
		return &ValidationError{Name: "storage_path", err: errors.New(`ent: missing required field "Artifact.storage_path"`)}
	}
	if _, ok := _c.mutation.MimeType(); !ok {
		return &ValidationError{Name: "mime_type", err: errors.New(`ent: missing required field "Artifact.mime_type"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Artifact.created_at"`)}
	}
	if len(_c.mutation.RunIDs()) == 0 {
		return &ValidationError{Name: "run", err: errors.New(`ent: missing required edge "Artifact.run"`)}
	}
	return nil
}

func (_c *ArtifactCreate) sqlSave(ctx context.Context) (*Artifact, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Artifact.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ArtifactCreate) createSpec() (*Artifact, *sqlgraph.CreateSpec) {
	var (
		_node = &Artifact{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(artifact.Table, sqlgraph.NewFieldSpec(artifact.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ArtifactType(); ok {
		_spec.SetField(artifact.FieldArtifactType, field.TypeEnum, value)
		_node.ArtifactType = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(artifact.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.StoragePath(); ok {
		_spec.SetField(artifact.FieldStoragePath, field.TypeString, value)
		_node.StoragePath = value
	}
	if value, ok := _c.mutation.MimeType(); ok {
		_spec.SetField(artifact.FieldMimeType, field.TypeString, value)
		_node.MimeType = value
	}
	if value, ok := _c.mutation.SizeBytes(); ok {
		_spec.SetField(artifact.FieldSizeBytes, field.TypeInt64, value)
		_node.SizeBytes = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(artifact.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.RunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   artifact.RunTable,
			Columns: []string{artifact.RunColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(run.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.RunID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ArtifactCreateBulk is the builder for creating many Artifact entities in bulk.
type ArtifactCreateBulk struct {
	config
	err      error
	builders []*ArtifactCreate
}

// Save creates the Artifact entities in the database.
func (_c *ArtifactCreateBulk) Save(ctx context.Context) ([]*Artifact, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Artifact, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ArtifactMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ArtifactCreateBulk) SaveX(ctx context.Context) []*Artifact {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ArtifactCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ArtifactCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
