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
	"github.com/dappsmith/conductor/ent/run"
	"github.com/dappsmith/conductor/ent/suiterun"
)

// SuiteRunCreate is the builder for creating a SuiteRun entity.
type SuiteRunCreate struct {
	config
	mutation *SuiteRunMutation
	hooks    []Hook
}

// SetProjectID sets the "project_id" field.
func (_c *SuiteRunCreate) SetProjectID(v string) *SuiteRunCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetSpecIds sets the "spec_ids" field.
func (_c *SuiteRunCreate) SetSpecIds(v []string) *SuiteRunCreate {
	_c.mutation.SetSpecIds(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *SuiteRunCreate) SetStatus(v suiterun.Status) *SuiteRunCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *SuiteRunCreate) SetNillableStatus(v *suiterun.Status) *SuiteRunCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetTotalTests sets the "total_tests" field.
func (_c *SuiteRunCreate) SetTotalTests(v int) *SuiteRunCreate {
	_c.mutation.SetTotalTests(v)
	return _c
}

// SetNillableTotalTests sets the "total_tests" field if the given value is not nil.
func (_c *SuiteRunCreate) SetNillableTotalTests(v *int) *SuiteRunCreate {
	if v != nil {
		_c.SetTotalTests(*v)
	}
	return _c
}

// SetPassedTests sets the "passed_tests" field.
func (_c *SuiteRunCreate) SetPassedTests(v int) *SuiteRunCreate {
	_c.mutation.SetPassedTests(v)
	return _c
}

// SetNillablePassedTests sets the "passed_tests" field if the given value is not nil.
func (_c *SuiteRunCreate) SetNillablePassedTests(v *int) *SuiteRunCreate {
	if v != nil {
		_c.SetPassedTests(*v)
	}
	return _c
}

// SetFailedTests sets the "failed_tests" field.
func (_c *SuiteRunCreate) SetFailedTests(v int) *SuiteRunCreate {
	_c.mutation.SetFailedTests(v)
	return _c
}

// SetNillableFailedTests sets the "failed_tests" field if the given value is not nil.
func (_c *SuiteRunCreate) SetNillableFailedTests(v *int) *SuiteRunCreate {
	if v != nil {
		_c.SetFailedTests(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *SuiteRunCreate) SetErrorMessage(v string) *SuiteRunCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *SuiteRunCreate) SetNillableErrorMessage(v *string) *SuiteRunCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SuiteRunCreate) SetCreatedAt(v time.Time) *SuiteRunCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SuiteRunCreate) SetNillableCreatedAt(v *time.Time) *SuiteRunCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *SuiteRunCreate) SetStartedAt(v time.Time) *SuiteRunCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *SuiteRunCreate) SetNillableStartedAt(v *time.Time) *SuiteRunCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *SuiteRunCreate) SetCompletedAt(v time.Time) *SuiteRunCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *SuiteRunCreate) SetNillableCompletedAt(v *time.Time) *SuiteRunCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SuiteRunCreate) SetID(v string) *SuiteRunCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetProject sets the "project" edge to the Project entity.
func (_c *SuiteRunCreate) SetProject(v *Project) *SuiteRunCreate {
	return _c.SetProjectID(v.ID)
}

// AddRunIDs adds the "runs" edge to the Run entity by IDs.
func (_c *SuiteRunCreate) AddRunIDs(ids ...string) *SuiteRunCreate {
	_c.mutation.AddRunIDs(ids...)
	return _c
}

// AddRuns adds the "runs" edges to the Run entity.
func (_c *SuiteRunCreate) AddRuns(v ...*Run) *SuiteRunCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddRunIDs(ids...)
}

// Mutation returns the SuiteRunMutation object of the builder.
func (_c *SuiteRunCreate) Mutation() *SuiteRunMutation {
	return _c.mutation
}

// Save creates the SuiteRun in the database.
func (_c *SuiteRunCreate) Save(ctx context.Context) (*SuiteRun, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SuiteRunCreate) SaveX(ctx context.Context) *SuiteRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SuiteRunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SuiteRunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SuiteRunCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := suiterun.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.TotalTests(); !ok {
		v := suiterun.DefaultTotalTests
		_c.mutation.SetTotalTests(v)
	}
	if _, ok := _c.mutation.PassedTests(); !ok {
		v := suiterun.DefaultPassedTests
		_c.mutation.SetPassedTests(v)
	}
	if _, ok := _c.mutation.FailedTests(); !ok {
		v := suiterun.DefaultFailedTests
		_c.mutation.SetFailedTests(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := suiterun.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SuiteRunCreate) check() error {
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "SuiteRun.project_id"`)}
	}
	if _, ok := _c.mutation.SpecIds(); !ok {
		return &ValidationError{Name: "spec_ids", err: errors.New(`ent: missing required field "SuiteRun.spec_ids"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "SuiteRun.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := suiterun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SuiteRun.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalTests(); !ok {
		return &ValidationError{Name: "total_tests", err: errors.New(`ent: missing required field "SuiteRun.total_tests"`)}
	}
	if _, ok := _c.mutation.PassedTests(); !ok {
		return &ValidationError{Name: "passed_tests", err: errors.New(`ent: missing required field "SuiteRun.passed_tests"`)}
	}
	if _, ok := _c.mutation.FailedTests(); !ok {
		return &ValidationError{Name: "failed_tests", err: errors.New(`ent: missing required field "SuiteRun.failed_tests"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SuiteRun.created_at"`)}
	}
	if len(_c.mutation.ProjectIDs()) == 0 {
		return &ValidationError{Name: "project", err: errors.New(`ent: missing required edge "SuiteRun.project"`)}
	}
	return nil
}

func (_c *SuiteRunCreate) sqlSave(ctx context.Context) (*SuiteRun, error) {
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
			return nil, fmt.Errorf("unexpected SuiteRun.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SuiteRunCreate) createSpec() (*SuiteRun, *sqlgraph.CreateSpec) {
	var (
		_node = &SuiteRun{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(suiterun.Table, sqlgraph.NewFieldSpec(suiterun.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SpecIds(); ok {
		_spec.SetField(suiterun.FieldSpecIds, field.TypeJSON, value)
		_node.SpecIds = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(suiterun.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.TotalTests(); ok {
		_spec.SetField(suiterun.FieldTotalTests, field.TypeInt, value)
		_node.TotalTests = value
	}
	if value, ok := _c.mutation.PassedTests(); ok {
		_spec.SetField(suiterun.FieldPassedTests, field.TypeInt, value)
		_node.PassedTests = value
	}
	if value, ok := _c.mutation.FailedTests(); ok {
		_spec.SetField(suiterun.FieldFailedTests, field.TypeInt, value)
		_node.FailedTests = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(suiterun.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(suiterun.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(suiterun.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(suiterun.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   suiterun.ProjectTable,
			Columns: []string{suiterun.ProjectColumn},
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
	if nodes := _c.mutation.RunsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   suiterun.RunsTable,
			Columns: []string{suiterun.RunsColumn},
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
	return _node, _spec
}

// SuiteRunCreateBulk is the builder for creating many SuiteRun entities in bulk.
type SuiteRunCreateBulk struct {
	config
	err      error
	builders []*SuiteRunCreate
}

// Save creates the SuiteRun entities in the database.
func (_c *SuiteRunCreateBulk) Save(ctx context.Context) ([]*SuiteRun, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SuiteRun, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SuiteRunMutation)
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
func (_c *SuiteRunCreateBulk) SaveX(ctx context.Context) []*SuiteRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SuiteRunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SuiteRunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
