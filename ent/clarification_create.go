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
	"github.com/dappsmith/conductor/ent/spec"
)

// ClarificationCreate is the builder for creating a Clarification entity.
type ClarificationCreate struct {
	config
	mutation *ClarificationMutation
	hooks    []Hook
}

// SetSpecID sets the "spec_id" field.
func (_c *ClarificationCreate) SetSpecID(v string) *ClarificationCreate {
	_c.mutation.SetSpecID(v)
	return _c
}

// SetQuestion sets the "question" field.
func (_c *ClarificationCreate) SetQuestion(v string) *ClarificationCreate {
	_c.mutation.SetQuestion(v)
	return _c
}

// SetAnswer sets the "answer" field.
func (_c *ClarificationCreate) SetAnswer(v string) *ClarificationCreate {
	_c.mutation.SetAnswer(v)
	return _c
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_c *ClarificationCreate) SetNillableAnswer(v *string) *ClarificationCreate {
	if v != nil {
		_c.SetAnswer(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ClarificationCreate) SetStatus(v clarification.Status) *ClarificationCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ClarificationCreate) SetNillableStatus(v *clarification.Status) *ClarificationCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ClarificationCreate) SetCreatedAt(v time.Time) *ClarificationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ClarificationCreate) SetNillableCreatedAt(v *time.Time) *ClarificationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetResolvedAt sets the "resolved_at" field.
func (_c *ClarificationCreate) SetResolvedAt(v time.Time) *ClarificationCreate {
	_c.mutation.SetResolvedAt(v)
	return _c
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_c *ClarificationCreate) SetNillableResolvedAt(v *time.Time) *ClarificationCreate {
	if v != nil {
		_c.SetResolvedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ClarificationCreate) SetID(v string) *ClarificationCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSpec sets the "spec" edge to the Spec entity.
func (_c *ClarificationCreate) SetSpec(v *Spec) *ClarificationCreate {
	return _c.SetSpecID(v.ID)
}

// Mutation returns the ClarificationMutation object of the builder.
func (_c *ClarificationCreate) Mutation() *ClarificationMutation {
	return _c.mutation
}

// Save creates the Clarification in the database.
func (_c *ClarificationCreate) Save(ctx context.Context) (*Clarification, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ClarificationCreate) SaveX(ctx context.Context) *Clarification {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClarificationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClarificationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ClarificationCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := clarification.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := clarification.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ClarificationCreate) check() error {
	if _, ok := _c.mutation.SpecID(); !ok {
		return &ValidationError{Name: "spec_id", err: errors.New(`ent: missing required field "Clarification.spec_id"`)}
	}
	if _, ok := _c.mutation.Question(); !ok {
		return &ValidationError{Name: "question", err: errors.New(`ent: missing required field "Clarification.question"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Clarification.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := clarification.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Clarification.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Clarification.created_at"`)}
	}
	if len(_c.mutation.SpecIDs()) == 0 {
		return &ValidationError{Name: "spec", err: errors.New(`ent: missing required edge "Clarification.spec"`)}
	}
	return nil
}

func (_c *ClarificationCreate) sqlSave(ctx context.Context) (*Clarification, error) {
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
			return nil, fmt.Errorf("unexpected Clarification.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ClarificationCreate) createSpec() (*Clarification, *sqlgraph.CreateSpec) {
	var (
		_node = &Clarification{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(clarification.Table, sqlgraph.NewFieldSpec(clarification.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Question(); ok {
		_spec.SetField(clarification.FieldQuestion, field.TypeString, value)
		_node.Question = value
	}
	if value, ok := _c.mutation.Answer(); ok {
		_spec.SetField(clarification.FieldAnswer, field.TypeString, value)
		_node.Answer = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(clarification.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(clarification.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.ResolvedAt(); ok {
		_spec.SetField(clarification.FieldResolvedAt, field.TypeTime, value)
		_node.ResolvedAt = &value
	}
	if nodes := _c.mutation.SpecIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   clarification.SpecTable,
			Columns: []string{clarification.SpecColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(spec.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SpecID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ClarificationCreateBulk is the builder for creating many Clarification entities in bulk.
type ClarificationCreateBulk struct {
	config
	err      error
	builders []*ClarificationCreate
}

// Save creates the Clarification entities in the database.
func (_c *ClarificationCreateBulk) Save(ctx context.Context) ([]*Clarification, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Clarification, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ClarificationMutation)
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
func (_c *ClarificationCreateBulk) SaveX(ctx context.Context) []*Clarification {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClarificationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClarificationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
