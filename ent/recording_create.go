// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dappsmith/conductor/ent/project"
	"github.com/dappsmith/conductor/ent/recording"
	"github.com/dappsmith/conductor/ent/spec"
)

// RecordingCreate is the builder for creating a Recording entity.
type RecordingCreate struct {
	config
	mutation *RecordingMutation
	hooks    []Hook
}

// SetProjectID sets the "project_id" field.
func (_c *RecordingCreate) SetProjectID(v string) *RecordingCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *RecordingCreate) SetName(v string) *RecordingCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetRecordingType sets the "recording_type" field.
func (_c *RecordingCreate) SetRecordingType(v recording.RecordingType) *RecordingCreate {
	_c.mutation.SetRecordingType(v)
	return _c
}

// SetActions sets the "actions" field.
func (_c *RecordingCreate) SetActions(v []map[string]interface{}) *RecordingCreate {
	_c.mutation.SetActions(v)
	return _c
}

// SetURL sets the "url" field.
func (_c *RecordingCreate) SetURL(v string) *RecordingCreate {
	_c.mutation.SetURL(v)
	return _c
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_c *RecordingCreate) SetNillableURL(v *string) *RecordingCreate {
	if v != nil {
		_c.SetURL(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RecordingCreate) SetCreatedAt(v time.Time) *RecordingCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RecordingCreate) SetNillableCreatedAt(v *time.Time) *RecordingCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RecordingCreate) SetID(v string) *RecordingCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetProject sets the "project" edge to the Project entity.
func (_c *RecordingCreate) SetProject(v *Project) *RecordingCreate {
	return _c.SetProjectID(v.ID)
}

// AddSpecIDs adds the "specs" edge to the Spec entity by IDs.
func (_c *RecordingCreate) AddSpecIDs(ids ...string) *RecordingCreate {
	_c.mutation.AddSpecIDs(ids...)
	return _c
}

// AddSpecs adds the "specs" edges to the Spec entity.
func (_c *RecordingCreate) AddSpecs(v ...*Spec) *RecordingCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSpecIDs(ids...)
}

// Mutation returns the RecordingMutation object of the builder.
func (_c *RecordingCreate) Mutation() *RecordingMutation {
	return _c.mutation
}

// Save creates the Recording in the database.
func (_c *RecordingCreate) Save(ctx context.Context) (*Recording, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RecordingCreate) SaveX(ctx context.Context) *Recording {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RecordingCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RecordingCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RecordingCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := recording.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RecordingCreate) check() error {
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "Recording.project_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Recording.name"`)}
	}
	if _, ok := _c.mutation.RecordingType(); !ok {
		return &ValidationError{Name: "recording_type", err: errors.New(`ent: missing required field "Recording.recording_type"`)}
	}
	if v, ok := _c.mutation.RecordingType(); ok {
		if err := recording.RecordingTypeValidator(v); err != nil {
			return &ValidationError{Name: "recording_type", err: fmt.Errorf(`ent: validator failed for field "Recording.recording_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Actions(); !ok {
		return &ValidationError{Name: "actions", err: errors.New(`ent: missing required field "Recording.actions"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Recording.created_at"`)}
	}
	if len(_c.mutation.ProjectIDs()) == 0 {
		return &ValidationError{Name: "project", err: errors.New(`ent: missing required edge "Recording.project"`)}
	}
	return nil
}

func (_c *RecordingCreate) sqlSave(ctx context.Context) (*Recording, error) {
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
			return nil, fmt.Errorf("unexpected Recording.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RecordingCreate) createSpec() (*Recording, *sqlgraph.CreateSpec) {
	var (
		_node = &Recording{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(recording.Table, sqlgraph.NewFieldSpec(recording.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(recording.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.RecordingType(); ok {
		_spec.SetField(recording.FieldRecordingType, field.TypeEnum, value)
		_node.RecordingType = value
	}
	if value, ok := _c.mutation.Actions(); ok {
		_spec.SetField(recording.FieldActions, field.TypeJSON, value)
		_node.Actions = value
	}
	if value, ok := _c.mutation.URL(); ok {
		_spec.SetField(recording.FieldURL, field.TypeString, value)
		_node.URL = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(recording.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   recording.ProjectTable,
			Columns: []string{recording.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ProjectID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SpecsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   recording.SpecsTable,
			Columns: []string{recording.SpecsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(spec.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// RecordingCreateBulk is the builder for creating many Recording entities in bulk.
type RecordingCreateBulk struct {
	config
	err      error
	builders []*RecordingCreate
}

// Save creates the Recording entities in the database.
func (_c *RecordingCreateBulk) Save(ctx context.Context) ([]*Recording, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Recording, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RecordingMutation)
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
func (_c *RecordingCreateBulk) SaveX(ctx context.Context) []*Recording {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RecordingCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RecordingCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
