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
	"github.com/dappsmith/conductor/ent/spec"
	"github.com/dappsmith/conductor/ent/suiterun"
)

// RunCreate is the builder for creating a Run entity.
type RunCreate struct {
	config
	mutation *RunMutation
	hooks    []Hook
}

// SetSpecID sets the "spec_id" field.
func (_c *RunCreate) SetSpecID(v string) *RunCreate {
	_c.mutation.SetSpecID(v)
	return _c
}

// SetSuiteRunID sets the "suite_run_id" field.
func (_c *RunCreate) SetSuiteRunID(v string) *RunCreate {
	_c.mutation.SetSuiteRunID(v)
	return _c
}

// SetNillableSuiteRunID sets the "suite_run_id" field if the given value is not nil.
func (_c *RunCreate) SetNillableSuiteRunID(v *string) *RunCreate {
	if v != nil {
		_c.SetSuiteRunID(*v)
	}
	return _c
}

// SetSuiteIndex sets the "suite_index" field.
func (_c *RunCreate) SetSuiteIndex(v int) *RunCreate {
	_c.mutation.SetSuiteIndex(v)
	return _c
}

// SetNillableSuiteIndex sets the "suite_index" field if the given value is not nil.
func (_c *RunCreate) SetNillableSuiteIndex(v *int) *RunCreate {
	if v != nil {
		_c.SetSuiteIndex(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *RunCreate) SetStatus(v run.Status) *RunCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *RunCreate) SetNillableStatus(v *run.Status) *RunCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetExecutionMode sets the "execution_mode" field.
func (_c *RunCreate) SetExecutionMode(v run.ExecutionMode) *RunCreate {
	_c.mutation.SetExecutionMode(v)
	return _c
}

// SetNillableExecutionMode sets the "execution_mode" field if the given value is not nil.
func (_c *RunCreate) SetNillableExecutionMode(v *run.ExecutionMode) *RunCreate {
	if v != nil {
		_c.SetExecutionMode(*v)
	}
	return _c
}

// SetStreamingMode sets the "streaming_mode" field.
func (_c *RunCreate) SetStreamingMode(v run.StreamingMode) *RunCreate {
	_c.mutation.SetStreamingMode(v)
	return _c
}

// SetNillableStreamingMode sets the "streaming_mode" field if the given value is not nil.
func (_c *RunCreate) SetNillableStreamingMode(v *run.StreamingMode) *RunCreate {
	if v != nil {
		_c.SetStreamingMode(*v)
	}
	return _c
}

// SetIsAutoRetry sets the "is_auto_retry" field.
func (_c *RunCreate) SetIsAutoRetry(v bool) *RunCreate {
	_c.mutation.SetIsAutoRetry(v)
	return _c
}

// SetNillableIsAutoRetry sets the "is_auto_retry" field if the given value is not nil.
func (_c *RunCreate) SetNillableIsAutoRetry(v *bool) *RunCreate {
	if v != nil {
		_c.SetIsAutoRetry(*v)
	}
	return _c
}

// SetProgress sets the "progress" field.
func (_c *RunCreate) SetProgress(v int) *RunCreate {
	_c.mutation.SetProgress(v)
	return _c
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_c *RunCreate) SetNillableProgress(v *int) *RunCreate {
	if v != nil {
		_c.SetProgress(*v)
	}
	return _c
}

// SetCancelRequested sets the "cancel_requested" field.
func (_c *RunCreate) SetCancelRequested(v bool) *RunCreate {
	_c.mutation.SetCancelRequested(v)
	return _c
}

// SetNillableCancelRequested sets the "cancel_requested" field if the given value is not nil.
func (_c *RunCreate) SetNillableCancelRequested(v *bool) *RunCreate {
	if v != nil {
		_c.SetCancelRequested(*v)
	}
	return _c
}

// SetAgentData sets the "agent_data" field.
func (_c *RunCreate) SetAgentData(v map[string]interface{}) *RunCreate {
	_c.mutation.SetAgentData(v)
	return _c
}

// SetStreamState sets the "stream_state" field.
func (_c *RunCreate) SetStreamState(v map[string]interface{}) *RunCreate {
	_c.mutation.SetStreamState(v)
	return _c
}

// SetLogs sets the "logs" field.
func (_c *RunCreate) SetLogs(v string) *RunCreate {
	_c.mutation.SetLogs(v)
	return _c
}

// SetNillableLogs sets the "logs" field if the given value is not nil.
func (_c *RunCreate) SetNillableLogs(v *string) *RunCreate {
	if v != nil {
		_c.SetLogs(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *RunCreate) SetErrorMessage(v string) *RunCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *RunCreate) SetNillableErrorMessage(v *string) *RunCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetContainerID sets the "container_id" field.
func (_c *RunCreate) SetContainerID(v string) *RunCreate {
	_c.mutation.SetContainerID(v)
	return _c
}

// SetNillableContainerID sets the "container_id" field if the given value is not nil.
func (_c *RunCreate) SetNillableContainerID(v *string) *RunCreate {
	if v != nil {
		_c.SetContainerID(*v)
	}
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *RunCreate) SetDurationMs(v int) *RunCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *RunCreate) SetNillableDurationMs(v *int) *RunCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// SetPodID sets the "pod_id" field.
func (_c *RunCreate) SetPodID(v string) *RunCreate {
	_c.mutation.SetPodID(v)
	return _c
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_c *RunCreate) SetNillablePodID(v *string) *RunCreate {
	if v != nil {
		_c.SetPodID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RunCreate) SetCreatedAt(v time.Time) *RunCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RunCreate) SetNillableCreatedAt(v *time.Time) *RunCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *RunCreate) SetStartedAt(v time.Time) *RunCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *RunCreate) SetNillableStartedAt(v *time.Time) *RunCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *RunCreate) SetCompletedAt(v time.Time) *RunCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *RunCreate) SetNillableCompletedAt(v *time.Time) *RunCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RunCreate) SetID(v string) *RunCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSpec sets the "spec" edge to the Spec entity.
func (_c *RunCreate) SetSpec(v *Spec) *RunCreate {
	return _c.SetSpecID(v.ID)
}

// SetSuiteRun sets the "suite_run" edge to the SuiteRun entity.
func (_c *RunCreate) SetSuiteRun(v *SuiteRun) *RunCreate {
	return _c.SetSuiteRunID(v.ID)
}

// AddArtifactIDs adds the "artifacts" edge to the Artifact entity by IDs.
func (_c *RunCreate) AddArtifactIDs(ids ...string) *RunCreate {
	_c.mutation.AddArtifactIDs(ids...)
	return _c
}

// AddArtifacts adds the "artifacts" edges to the Artifact entity.
func (_c *RunCreate) AddArtifacts(v ...*Artifact) *RunCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddArtifactIDs(ids...)
}

// Mutation returns the RunMutation object of the builder.
func (_c *RunCreate) Mutation() *RunMutation {
	return _c.mutation
}

// Save creates the Run in the database.
func (_c *RunCreate) Save(ctx context.Context) (*Run, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RunCreate) SaveX(ctx context.Context) *Run {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RunCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := run.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ExecutionMode(); !ok {
		v := run.DefaultExecutionMode
		_c.mutation.SetExecutionMode(v)
	}
	if _, ok := _c.mutation.StreamingMode(); !ok {
		v := run.DefaultStreamingMode
		_c.mutation.SetStreamingMode(v)
	}
	if _, ok := _c.mutation.IsAutoRetry(); !ok {
		v := run.DefaultIsAutoRetry
		_c.mutation.SetIsAutoRetry(v)
	}
	if _, ok := _c.mutation.Progress(); !ok {
		v := run.DefaultProgress
		_c.mutation.SetProgress(v)
	}
	if _, ok := _c.mutation.CancelRequested(); !ok {
		v := run.DefaultCancelRequested
		_c.mutation.SetCancelRequested(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := run.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RunCreate) check() error {
	if _, ok := _c.mutation.SpecID(); !ok {
		return &ValidationError{Name: "spec_id", err: errors.New(`ent: missing required field "Run.spec_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Run.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := run.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Run.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExecutionMode(); !ok {
		return &ValidationError{Name: "execution_mode", err: errors.New(`ent: missing required field "Run.execution_mode"`)}
	}
	if v, ok := _c.mutation.ExecutionMode(); ok {
		if err := run.ExecutionModeValidator(v); err != nil {
			return &ValidationError{Name: "execution_mode", err: fmt.Errorf(`ent: validator failed for field "Run.execution_mode": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StreamingMode(); !ok {
		return &ValidationError{Name: "streaming_mode", err: errors.New(`ent: missing required field "Run.streaming_mode"`)}
	}
	if v, ok := _c.mutation.StreamingMode(); ok {
		if err := run.StreamingModeValidator(v); err != nil {
			return &ValidationError{Name: "streaming_mode", err: fmt.Errorf(`ent: validator failed for field "Run.streaming_mode": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsAutoRetry(); !ok {
		return &ValidationError{Name: "is_auto_retry", err: errors.New(`ent: missing required field "Run.is_auto_retry"`)}
	}
	if _, ok := _c.mutation.Progress(); !ok {
		return &ValidationError{Name: "progress", err: errors.New(`ent: missing required field "Run.progress"`)}
	}
	if _, ok := _c.mutation.CancelRequested(); !ok {
		return &ValidationError{Name: "cancel_requested", err: errors.New(`ent: missing required field "Run.cancel_requested"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Run.created_at"`)}
	}
	if len(_c.mutation.SpecIDs()) == 0 {
		return &ValidationError{Name: "spec", err: errors.New(`ent: missing required edge "Run.spec"`)}
	}
	return nil
}

func (_c *RunCreate) sqlSave(ctx context.Context) (*Run, error) {
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
			return nil, fmt.Errorf("unexpected Run.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RunCreate) createSpec() (*Run, *sqlgraph.CreateSpec) {
	var (
		_node = &Run{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(run.Table, sqlgraph.NewFieldSpec(run.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SuiteIndex(); ok {
		_spec.SetField(run.FieldSuiteIndex, field.TypeInt, value)
		_node.SuiteIndex = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(run.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ExecutionMode(); ok {
		_spec.SetField(run.FieldExecutionMode, field.TypeEnum, value)
		_node.ExecutionMode = value
	}
	if value, ok := _c.mutation.StreamingMode(); ok {
		_spec.SetField(run.FieldStreamingMode, field.TypeEnum, value)
		_node.StreamingMode = value
	}
	if value, ok := _c.mutation.IsAutoRetry(); ok {
		_spec.SetField(run.FieldIsAutoRetry, field.TypeBool, value)
		_node.IsAutoRetry = value
	}
	if value, ok := _c.mutation.Progress(); ok {
		_spec.SetField(run.FieldProgress, field.TypeInt, value)
		_node.Progress = value
	}
	if value, ok := _c.mutation.CancelRequested(); ok {
		_spec.SetField(run.FieldCancelRequested, field.TypeBool, value)
		_node.CancelRequested = value
	}
	if value, ok := _c.mutation.AgentData(); ok {
		_spec.SetField(run.FieldAgentData, field.TypeJSON, value)
		_node.AgentData = value
	}
	if value, ok := _c.mutation.StreamState(); ok {
		_spec.SetField(run.FieldStreamState, field.TypeJSON, value)
		_node.StreamState = value
	}
	if value, ok := _c.mutation.Logs(); ok {
		_spec.SetField(run.FieldLogs, field.TypeString, value)
		_node.Logs = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(run.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.ContainerID(); ok {
		_spec.SetField(run.FieldContainerID, field.TypeString, value)
		_node.ContainerID = &value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(run.FieldDurationMs, field.TypeInt, value)
		_node.DurationMs = &value
	}
	if value, ok := _c.mutation.PodID(); ok {
		_spec.SetField(run.FieldPodID, field.TypeString, value)
		_node.PodID = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(run.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(run.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(run.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.SpecIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   run.SpecTable,
			Columns: []string{run.SpecColumn},
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
	if nodes := _c.mutation.SuiteRunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   run.SuiteRunTable,
			Columns: []string{run.SuiteRunColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(suiterun.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SuiteRunID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ArtifactsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.ArtifactsTable,
			Columns: []string{run.ArtifactsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(artifact.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// RunCreateBulk is the builder for creating many Run entities in bulk.
type RunCreateBulk struct {
	config
	err      error
	builders []*RunCreate
}

// Save creates the Run entities in the database.
func (_c *RunCreateBulk) Save(ctx context.Context) ([]*Run, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Run, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RunMutation)
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
func (_c *RunCreateBulk) SaveX(ctx context.Context) []*Run {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
