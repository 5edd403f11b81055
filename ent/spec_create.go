// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dappsmith/conductor/ent/clarification"
	"github.com/dappsmith/conductor/ent/recording"
	"github.com/dappsmith/conductor/ent/run"
	"github.com/dappsmith/conductor/ent/spec"
)

// SpecCreate is the builder for creating a Spec entity.
type SpecCreate struct {
	config
	mutation *SpecMutation
	hooks    []Hook
}

// SetRecordingID sets the "recording_id" field.
func (_c *SpecCreate) SetRecordingID(v string) *SpecCreate {
	_c.mutation.SetRecordingID(v)
	return _c
}

// SetCode sets the "code" field.
func (_c *SpecCreate) SetCode(v string) *SpecCreate {
	_c.mutation.SetCode(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *SpecCreate) SetStatus(v spec.Status) *SpecCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *SpecCreate) SetNillableStatus(v *spec.Status) *SpecCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetVersion sets the "version" field.
func (_c *SpecCreate) SetVersion(v int) *SpecCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *SpecCreate) SetNillableVersion(v *int) *SpecCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetAttempt sets the "attempt" field.
func (_c *SpecCreate) SetAttempt(v int) *SpecCreate {
	_c.mutation.SetAttempt(v)
	return _c
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_c *SpecCreate) SetNillableAttempt(v *int) *SpecCreate {
	if v != nil {
		_c.SetAttempt(*v)
	}
	return _c
}

// SetMaxAttempts sets the "max_attempts" field.
func (_c *SpecCreate) SetMaxAttempts(v int) *SpecCreate {
	_c.mutation.SetMaxAttempts(v)
	return _c
}

// SetNillableMaxAttempts sets the "max_attempts" field if the given value is not nil.
func (_c *SpecCreate) SetNillableMaxAttempts(v *int) *SpecCreate {
	if v != nil {
		_c.SetMaxAttempts(*v)
	}
	return _c
}

// SetParentSpecID sets the "parent_spec_id" field.
func (_c *SpecCreate) SetParentSpecID(v string) *SpecCreate {
	_c.mutation.SetParentSpecID(v)
	return _c
}

// SetNillableParentSpecID sets the "parent_spec_id" field if the given value is not nil.
func (_c *SpecCreate) SetNillableParentSpecID(v *string) *SpecCreate {
	if v != nil {
		_c.SetParentSpecID(*v)
	}
	return _c
}

// SetFailureContext sets the "failure_context" field.
func (_c *SpecCreate) SetFailureContext(v map[string]interface{}) *SpecCreate {
	_c.mutation.SetFailureContext(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SpecCreate) SetCreatedAt(v time.Time) *SpecCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SpecCreate) SetNillableCreatedAt(v *time.Time) *SpecCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SpecCreate) SetUpdatedAt(v time.Time) *SpecCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SpecCreate) SetNillableUpdatedAt(v *time.Time) *SpecCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SpecCreate) SetID(v string) *SpecCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRecording sets the "recording" edge to the Recording entity.
func (_c *SpecCreate) SetRecording(v *Recording) *SpecCreate {
	return _c.SetRecordingID(v.ID)
}

// AddRunIDs adds the "runs" edge to the Run entity by IDs.
func (_c *SpecCreate) AddRunIDs(ids ...string) *SpecCreate {
	_c.mutation.AddRunIDs(ids...)
	return _c
}

// AddRuns adds the "runs" edges to the Run entity.
func (_c *SpecCreate) AddRuns(v ...*Run) *SpecCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddRunIDs(ids...)
}

// AddClarificationIDs adds the "clarifications" edge to the Clarification entity by IDs.
func (_c *SpecCreate) AddClarificationIDs(ids ...string) *SpecCreate {
	_c.mutation.AddClarificationIDs(ids...)
	return _c
}

// AddClarifications adds the "clarifications" edges to the Clarification entity.
func (_c *SpecCreate) AddClarifications(v ...*Clarification) *SpecCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddClarificationIDs(ids...)
}

// Mutation returns the SpecMutation object of the builder.
func (_c *SpecCreate) Mutation() *SpecMutation {
	return _c.mutation
}

// Save creates the Spec in the database.
func (_c *SpecCreate) Save(ctx context.Context) (*Spec, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SpecCreate) SaveX(ctx context.Context) *Spec {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SpecCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SpecCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SpecCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := spec.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Version(); !ok {
		v := spec.DefaultVersion
		_c.mutation.SetVersion(v)
	}
	if _, ok := _c.mutation.Attempt(); !ok {
		v := spec.DefaultAttempt
		_c.mutation.SetAttempt(v)
	}
	if _, ok := _c.mutation.MaxAttempts(); !ok {
		v := spec.DefaultMaxAttempts
		_c.mutation.SetMaxAttempts(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := spec.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := spec.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SpecCreate) check() error {
	if _, ok := _c.mutation.RecordingID(); !ok {
		return &ValidationError{Name: "recording_id", err: errors.New(`ent: missing required field "Spec.recording_id"`)}
	}
	if _, ok := _c.mutation.Code(); !ok {
		return &ValidationError{Name: "code", err: errors.New(`ent: missing required field "Spec.code"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Spec.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := spec.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Spec.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "Spec.version"`)}
	}
	if _, ok := _c.mutation.Attempt(); !ok {
		return &ValidationError{Name: "attempt", err: errors.New(`ent: missing required field "Spec.attempt"`)}
	}
	if _, ok := _c.mutation.MaxAttempts(); !ok {
		return &ValidationError{Name: "max_attempts", err: errors.New(`ent: missing required field "Spec.max_attempts"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Spec.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Spec.updated_at"`)}
	}
	if len(_c.mutation.RecordingIDs()) == 0 {
		return &ValidationError{Name: "recording", err: errors.New(`ent: missing required edge "Spec.recording"`)}
	}
	return nil
}

func (_c *SpecCreate) sqlSave(ctx context.Context) (*Spec, error) {
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
			return nil, fmt.Errorf("unexpected Spec.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SpecCreate) createSpec() (*Spec, *sqlgraph.CreateSpec) {
	var (
		_node = &Spec{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(spec.Table, sqlgraph.NewFieldSpec(spec.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Code(); ok {
		_spec.SetField(spec.FieldCode, field.TypeString, value)
		_node.Code = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(spec.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(spec.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.Attempt(); ok {
		_spec.SetField(spec.FieldAttempt, field.TypeInt, value)
		_node.Attempt = value
	}
	if value, ok := _c.mutation.MaxAttempts(); ok {
		_spec.SetField(spec.FieldMaxAttempts, field.TypeInt, value)
		_node.MaxAttempts = value
	}
	if value, ok := _c.mutation.ParentSpecID(); ok {
		_spec.SetField(spec.FieldParentSpecID, field.TypeString, value)
		_node.ParentSpecID = &value
	}
	if value, ok := _c.mutation.FailureContext(); ok {
		_spec.SetField(spec.FieldFailureContext, field.TypeJSON, value)
		_node.FailureContext = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(spec.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(spec.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.RecordingIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   spec.RecordingTable,
			Columns: []string{spec.RecordingColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(recording.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.RecordingID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.RunsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   spec.RunsTable,
			Columns: []string{spec.RunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(run.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ClarificationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   spec.ClarificationsTable,
			Columns: []string{spec.ClarificationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(clarification.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SpecCreateBulk is the builder for creating many Spec entities in bulk.
type SpecCreateBulk struct {
	config
	err      error
	builders []*SpecCreate
}

// Save creates the Spec entities in the database.
func (_c *SpecCreateBulk) Save(ctx context.Context) ([]*Spec, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Spec, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SpecMutation)
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
func (_c *SpecCreateBulk) SaveX(ctx context.Context) []*Spec {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SpecCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SpecCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
