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
	"github.com/dappsmith/conductor/ent/run"
)

// RunUpdate is the builder for updating Run entities.
type RunUpdate struct {
	config
	hooks    []Hook
	mutation *RunMutation
}

// Where appends a list predicates to the RunUpdate builder.
func (_u *RunUpdate) Where(ps ...predicate.Run) *RunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSuiteIndex sets the "suite_index" field.
func (_u *RunUpdate) SetSuiteIndex(v int) *RunUpdate {
	_u.mutation.ResetSuiteIndex()
	_u.mutation.SetSuiteIndex(v)
	return _u
}

// SetNillableSuiteIndex sets the "suite_index" field if the given value is not nil.
func (_u *RunUpdate) SetNillableSuiteIndex(v *int) *RunUpdate {
	if v != nil {
		_u.SetSuiteIndex(*v)
	}
	return _u
}

// AddSuiteIndex adds value to the "suite_index" field.
func (_u *RunUpdate) AddSuiteIndex(v int) *RunUpdate {
	_u.mutation.AddSuiteIndex(v)
	return _u
}

// ClearSuiteIndex clears the value of the "suite_index" field.
func (_u *RunUpdate) ClearSuiteIndex() *RunUpdate {
	_u.mutation.ClearSuiteIndex()
	return _u
}

// SetStatus sets the "status" field.
func (_u *RunUpdate) SetStatus(v run.Status) *RunUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RunUpdate) SetNillableStatus(v *run.Status) *RunUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetExecutionMode sets the "execution_mode" field.
func (_u *RunUpdate) SetExecutionMode(v run.ExecutionMode) *RunUpdate {
	_u.mutation.SetExecutionMode(v)
	return _u
}

// SetNillableExecutionMode sets the "execution_mode" field if the given value is not nil.
func (_u *RunUpdate) SetNillableExecutionMode(v *run.ExecutionMode) *RunUpdate {
	if v != nil {
		_u.SetExecutionMode(*v)
	}
	return _u
}

// SetStreamingMode sets the "streaming_mode" field.
func (_u *RunUpdate) SetStreamingMode(v run.StreamingMode) *RunUpdate {
	_u.mutation.SetStreamingMode(v)
	return _u
}

// SetNillableStreamingMode sets the "streaming_mode" field if the given value is not nil.
func (_u *RunUpdate) SetNillableStreamingMode(v *run.StreamingMode) *RunUpdate {
	if v != nil {
		_u.SetStreamingMode(*v)
	}
	return _u
}

// SetIsAutoRetry sets the "is_auto_retry" field.
func (_u *RunUpdate) SetIsAutoRetry(v bool) *RunUpdate {
	_u.mutation.SetIsAutoRetry(v)
	return _u
}

// SetNillableIsAutoRetry sets the "is_auto_retry" field if the given value is not nil.
func (_u *RunUpdate) SetNillableIsAutoRetry(v *bool) *RunUpdate {
	if v != nil {
		_u.SetIsAutoRetry(*v)
	}
	return _u
}

// SetProgress sets the "progress" field.
func (_u *RunUpdate) SetProgress(v int) *RunUpdate {
	_u.mutation.ResetProgress()
	_u.mutation.SetProgress(v)
	return _u
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_u *RunUpdate) SetNillableProgress(v *int) *RunUpdate {
	if v != nil {
		_u.SetProgress(*v)
	}
	return _u
}

// AddProgress adds value to the "progress" field.
func (_u *RunUpdate) AddProgress(v int) *RunUpdate {
	_u.mutation.AddProgress(v)
	return _u
}

// SetCancelRequested sets the "cancel_requested" field.
func (_u *RunUpdate) SetCancelRequested(v bool) *RunUpdate {
	_u.mutation.SetCancelRequested(v)
	return _u
}

// SetNillableCancelRequested sets the "cancel_requested" field if the given value is not nil.
func (_u *RunUpdate) SetNillableCancelRequested(v *bool) *RunUpdate {
	if v != nil {
		_u.SetCancelRequested(*v)
	}
	return _u
}

// SetAgentData sets the "agent_data" field.
func (_u *RunUpdate) SetAgentData(v map[string]interface{}) *RunUpdate {
	_u.mutation.SetAgentData(v)
	return _u
}

// ClearAgentData clears the value of the "agent_data" field.
func (_u *RunUpdate) ClearAgentData() *RunUpdate {
	_u.mutation.ClearAgentData()
	return _u
}

// SetStreamState sets the "stream_state" field.
func (_u *RunUpdate) SetStreamState(v map[string]interface{}) *RunUpdate {
	_u.mutation.SetStreamState(v)
	return _u
}

// ClearStreamState clears the value of the "stream_state" field.
func (_u *RunUpdate) ClearStreamState() *RunUpdate {
	_u.mutation.ClearStreamState()
	return _u
}

// SetLogs sets the "logs" field.
func (_u *RunUpdate) SetLogs(v string) *RunUpdate {
	_u.mutation.SetLogs(v)
	return _u
}

// SetNillableLogs sets the "logs" field if the given value is not nil.
func (_u *RunUpdate) SetNillableLogs(v *string) *RunUpdate {
	if v != nil {
		_u.SetLogs(*v)
	}
	return _u
}

// ClearLogs clears the value of the "logs" field.
func (_u *RunUpdate) ClearLogs() *RunUpdate {
	_u.mutation.ClearLogs()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *RunUpdate) SetErrorMessage(v string) *RunUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *RunUpdate) SetNillableErrorMessage(v *string) *RunUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *RunUpdate) ClearErrorMessage() *RunUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetContainerID sets the "container_id" field.
func (_u *RunUpdate) SetContainerID(v string) *RunUpdate {
	_u.mutation.SetContainerID(v)
	return _u
}

// SetNillableContainerID sets the "container_id" field if the given value is not nil.
func (_u *RunUpdate) SetNillableContainerID(v *string) *RunUpdate {
	if v != nil {
		_u.SetContainerID(*v)
	}
	return _u
}

// ClearContainerID clears the value of the "container_id" field.
func (_u *RunUpdate) ClearContainerID() *RunUpdate {
	_u.mutation.ClearContainerID()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *RunUpdate) SetDurationMs(v int) *RunUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *RunUpdate) SetNillableDurationMs(v *int) *RunUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *RunUpdate) AddDurationMs(v int) *RunUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *RunUpdate) ClearDurationMs() *RunUpdate {
	_u.mutation.ClearDurationMs()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *RunUpdate) SetPodID(v string) *RunUpdate {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *RunUpdate) SetNillablePodID(v *string) *RunUpdate {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *RunUpdate) ClearPodID() *RunUpdate {
	_u.mutation.ClearPodID()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *RunUpdate) SetCreatedAt(v time.Time) *RunUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *RunUpdate) SetNillableCreatedAt(v *time.Time) *RunUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *RunUpdate) SetStartedAt(v time.Time) *RunUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *RunUpdate) SetNillableStartedAt(v *time.Time) *RunUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *RunUpdate) ClearStartedAt() *RunUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *RunUpdate) SetCompletedAt(v time.Time) *RunUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *RunUpdate) SetNillableCompletedAt(v *time.Time) *RunUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *RunUpdate) ClearCompletedAt() *RunUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddArtifactIDs adds the "artifacts" edge to the Artifact entity by IDs.
func (_u *RunUpdate) AddArtifactIDs(ids ...string) *RunUpdate {
	_u.mutation.AddArtifactIDs(ids...)
	return _u
}

// AddArtifacts adds the "artifacts" edges to the Artifact entity.
func (_u *RunUpdate) AddArtifacts(v ...*Artifact) *RunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddArtifactIDs(ids...)
}

// Mutation returns the RunMutation object of the builder.
func (_u *RunUpdate) Mutation() *RunMutation {
	return _u.mutation
}

// ClearArtifacts clears all "artifacts" edges to the Artifact entity.
func (_u *RunUpdate) ClearArtifacts() *RunUpdate {
	_u.mutation.ClearArtifacts()
	return _u
}

// RemoveArtifactIDs removes the "artifacts" edge to Artifact entities by IDs.
func (_u *RunUpdate) RemoveArtifactIDs(ids ...string) *RunUpdate {
	_u.mutation.RemoveArtifactIDs(ids...)
	return _u
}

// RemoveArtifacts removes "artifacts" edges to Artifact entities.
func (_u *RunUpdate) RemoveArtifacts(v ...*Artifact) *RunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveArtifactIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RunUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RunUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := run.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Run.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExecutionMode(); ok {
		if err := run.ExecutionModeValidator(v); err != nil {
			return &ValidationError{Name: "execution_mode", err: fmt.Errorf(`ent: validator failed for field "Run.execution_mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StreamingMode(); ok {
		if err := run.StreamingModeValidator(v); err != nil {
			return &ValidationError{Name: "streaming_mode", err: fmt.Errorf(`ent: validator failed for field "Run.streaming_mode": %w`, err)}
		}
	}
	if _u.mutation.SpecCleared() && len(_u.mutation.SpecIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Run.spec"`)
	}
	return nil
}

func (_u *RunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(run.Table, run.Columns, sqlgraph.NewFieldSpec(run.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SuiteIndex(); ok {
		_spec.SetField(run.FieldSuiteIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSuiteIndex(); ok {
		_spec.AddField(run.FieldSuiteIndex, field.TypeInt, value)
	}
	if _u.mutation.SuiteIndexCleared() {
		_spec.ClearField(run.FieldSuiteIndex, field.TypeInt)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(run.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ExecutionMode(); ok {
		_spec.SetField(run.FieldExecutionMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StreamingMode(); ok {
		_spec.SetField(run.FieldStreamingMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IsAutoRetry(); ok {
		_spec.SetField(run.FieldIsAutoRetry, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Progress(); ok {
		_spec.SetField(run.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProgress(); ok {
		_spec.AddField(run.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CancelRequested(); ok {
		_spec.SetField(run.FieldCancelRequested, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AgentData(); ok {
		_spec.SetField(run.FieldAgentData, field.TypeJSON, value)
	}
	if _u.mutation.AgentDataCleared() {
		_spec.ClearField(run.FieldAgentData, field.TypeJSON)
	}
	if value, ok := _u.mutation.StreamState(); ok {
		_spec.SetField(run.FieldStreamState, field.TypeJSON, value)
	}
	if _u.mutation.StreamStateCleared() {
		_spec.ClearField(run.FieldStreamState, field.TypeJSON)
	}
	if value, ok := _u.mutation.Logs(); ok {
		_spec.SetField(run.FieldLogs, field.TypeString, value)
	}
	if _u.mutation.LogsCleared() {
		_spec.ClearField(run.FieldLogs, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(run.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(run.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ContainerID(); ok {
		_spec.SetField(run.FieldContainerID, field.TypeString, value)
	}
	if _u.mutation.ContainerIDCleared() {
		_spec.ClearField(run.FieldContainerID, field.TypeString)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(run.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(run.FieldDurationMs, field.TypeInt, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(run.FieldDurationMs, field.TypeInt)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(run.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(run.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(run.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(run.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(run.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(run.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(run.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.ArtifactsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedArtifactsIDs(); len(nodes) > 0 && !_u.mutation.ArtifactsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ArtifactsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{run.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RunUpdateOne is the builder for updating a single Run entity.
type RunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RunMutation
}

// SetSuiteIndex sets the "suite_index" field.
func (_u *RunUpdateOne) SetSuiteIndex(v int) *RunUpdateOne {
	_u.mutation.ResetSuiteIndex()
	_u.mutation.SetSuiteIndex(v)
	return _u
}

// SetNillableSuiteIndex sets the "suite_index" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableSuiteIndex(v *int) *RunUpdateOne {
	if v != nil {
		_u.SetSuiteIndex(*v)
	}
	return _u
}

// AddSuiteIndex adds value to the "suite_index" field.
func (_u *RunUpdateOne) AddSuiteIndex(v int) *RunUpdateOne {
	_u.mutation.AddSuiteIndex(v)
	return _u
}

// ClearSuiteIndex clears the value of the "suite_index" field.
func (_u *RunUpdateOne) ClearSuiteIndex() *RunUpdateOne {
	_u.mutation.ClearSuiteIndex()
	return _u
}

// SetStatus sets the "status" field.
func (_u *RunUpdateOne) SetStatus(v run.Status) *RunUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableStatus(v *run.Status) *RunUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetExecutionMode sets the "execution_mode" field.
func (_u *RunUpdateOne) SetExecutionMode(v run.ExecutionMode) *RunUpdateOne {
	_u.mutation.SetExecutionMode(v)
	return _u
}

// SetNillableExecutionMode sets the "execution_mode" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableExecutionMode(v *run.ExecutionMode) *RunUpdateOne {
	if v != nil {
		_u.SetExecutionMode(*v)
	}
	return _u
}

// SetStreamingMode sets the "streaming_mode" field.
func (_u *RunUpdateOne) SetStreamingMode(v run.StreamingMode) *RunUpdateOne {
	_u.mutation.SetStreamingMode(v)
	return _u
}

// SetNillableStreamingMode sets the "streaming_mode" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableStreamingMode(v *run.StreamingMode) *RunUpdateOne {
	if v != nil {
		_u.SetStreamingMode(*v)
	}
	return _u
}

// SetIsAutoRetry sets the "is_auto_retry" field.
func (_u *RunUpdateOne) SetIsAutoRetry(v bool) *RunUpdateOne {
	_u.mutation.SetIsAutoRetry(v)
	return _u
}

// SetNillableIsAutoRetry sets the "is_auto_retry" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableIsAutoRetry(v *bool) *RunUpdateOne {
	if v != nil {
		_u.SetIsAutoRetry(*v)
	}
	return _u
}

// SetProgress sets the "progress" field.
func (_u *RunUpdateOne) SetProgress(v int) *RunUpdateOne {
	_u.mutation.ResetProgress()
	_u.mutation.SetProgress(v)
	return _u
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableProgress(v *int) *RunUpdateOne {
	if v != nil {
		_u.SetProgress(*v)
	}
	return _u
}

// AddProgress adds value to the "progress" field.
func (_u *RunUpdateOne) AddProgress(v int) *RunUpdateOne {
	_u.mutation.AddProgress(v)
	return _u
}

// SetCancelRequested sets the "cancel_requested" field.
func (_u *RunUpdateOne) SetCancelRequested(v bool) *RunUpdateOne {
	_u.mutation.SetCancelRequested(v)
	return _u
}

// SetNillableCancelRequested sets the "cancel_requested" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableCancelRequested(v *bool) *RunUpdateOne {
	if v != nil {
		_u.SetCancelRequested(*v)
	}
	return _u
}

// SetAgentData sets the "agent_data" field.
func (_u *RunUpdateOne) SetAgentData(v map[string]interface{}) *RunUpdateOne {
	_u.mutation.SetAgentData(v)
	return _u
}

// ClearAgentData clears the value of the "agent_data" field.
func (_u *RunUpdateOne) ClearAgentData() *RunUpdateOne {
	_u.mutation.ClearAgentData()
	return _u
}

// SetStreamState sets the "stream_state" field.
func (_u *RunUpdateOne) SetStreamState(v map[string]interface{}) *RunUpdateOne {
	_u.mutation.SetStreamState(v)
	return _u
}

// ClearStreamState clears the value of the "stream_state" field.
func (_u *RunUpdateOne) ClearStreamState() *RunUpdateOne {
	_u.mutation.ClearStreamState()
	return _u
}

// SetLogs sets the "logs" field.
func (_u *RunUpdateOne) SetLogs(v string) *RunUpdateOne {
	_u.mutation.SetLogs(v)
	return _u
}

// SetNillableLogs sets the "logs" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableLogs(v *string) *RunUpdateOne {
	if v != nil {
		_u.SetLogs(*v)
	}
	return _u
}

// ClearLogs clears the value of the "logs" field.
func (_u *RunUpdateOne) ClearLogs() *RunUpdateOne {
	_u.mutation.ClearLogs()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *RunUpdateOne) SetErrorMessage(v string) *RunUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableErrorMessage(v *string) *RunUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *RunUpdateOne) ClearErrorMessage() *RunUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetContainerID sets the "container_id" field.
func (_u *RunUpdateOne) SetContainerID(v string) *RunUpdateOne {
	_u.mutation.SetContainerID(v)
	return _u
}

// SetNillableContainerID sets the "container_id" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableContainerID(v *string) *RunUpdateOne {
	if v != nil {
		_u.SetContainerID(*v)
	}
	return _u
}

// ClearContainerID clears the value of the "container_id" field.
func (_u *RunUpdateOne) ClearContainerID() *RunUpdateOne {
	_u.mutation.ClearContainerID()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *RunUpdateOne) SetDurationMs(v int) *RunUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableDurationMs(v *int) *RunUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *RunUpdateOne) AddDurationMs(v int) *RunUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *RunUpdateOne) ClearDurationMs() *RunUpdateOne {
	_u.mutation.ClearDurationMs()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *RunUpdateOne) SetPodID(v string) *RunUpdateOne {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillablePodID(v *string) *RunUpdateOne {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *RunUpdateOne) ClearPodID() *RunUpdateOne {
	_u.mutation.ClearPodID()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *RunUpdateOne) SetCreatedAt(v time.Time) *RunUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableCreatedAt(v *time.Time) *RunUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *RunUpdateOne) SetStartedAt(v time.Time) *RunUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableStartedAt(v *time.Time) *RunUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *RunUpdateOne) ClearStartedAt() *RunUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *RunUpdateOne) SetCompletedAt(v time.Time) *RunUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableCompletedAt(v *time.Time) *RunUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *RunUpdateOne) ClearCompletedAt() *RunUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddArtifactIDs adds the "artifacts" edge to the Artifact entity by IDs.
func (_u *RunUpdateOne) AddArtifactIDs(ids ...string) *RunUpdateOne {
	_u.mutation.AddArtifactIDs(ids...)
	return _u
}

// AddArtifacts adds the "artifacts" edges to the Artifact entity.
func (_u *RunUpdateOne) AddArtifacts(v ...*Artifact) *RunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddArtifactIDs(ids...)
}

// Mutation returns the RunMutation object of the builder.
func (_u *RunUpdateOne) Mutation() *RunMutation {
	return _u.mutation
}

// ClearArtifacts clears all "artifacts" edges to the Artifact entity.
func (_u *RunUpdateOne) ClearArtifacts() *RunUpdateOne {
	_u.mutation.ClearArtifacts()
	return _u
}

// RemoveArtifactIDs removes the "artifacts" edge to Artifact entities by IDs.
func (_u *RunUpdateOne) RemoveArtifactIDs(ids ...string) *RunUpdateOne {
	_u.mutation.RemoveArtifactIDs(ids...)
	return _u
}

// RemoveArtifacts removes "artifacts" edges to Artifact entities.
func (_u *RunUpdateOne) RemoveArtifacts(v ...*Artifact) *RunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveArtifactIDs(ids...)
}

// Where appends a list predicates to the RunUpdate builder.
func (_u *RunUpdateOne) Where(ps ...predicate.Run) *RunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RunUpdateOne) Select(field string, fields ...string) *RunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Run entity.
func (_u *RunUpdateOne) Save(ctx context.Context) (*Run, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RunUpdateOne) SaveX(ctx context.Context) *Run {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RunUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := run.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Run.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExecutionMode(); ok {
		if err := run.ExecutionModeValidator(v); err != nil {
			return &ValidationError{Name: "execution_mode", err: fmt.Errorf(`ent: validator failed for field "Run.execution_mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StreamingMode(); ok {
		if err := run.StreamingModeValidator(v); err != nil {
			return &ValidationError{Name: "streaming_mode", err: fmt.Errorf(`ent: validator failed for field "Run.streaming_mode": %w`, err)}
		}
	}
	if _u.mutation.SpecCleared() && len(_u.mutation.SpecIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Run.spec"`)
	}
	return nil
}

func (_u *RunUpdateOne) sqlSave(ctx context.Context) (_node *Run, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(run.Table, run.Columns, sqlgraph.NewFieldSpec(run.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Run.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, run.FieldID)
		for _, f := range fields {
			if !run.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != run.FieldID {
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
	if value, ok := _u.mutation.SuiteIndex(); ok {
		_spec.SetField(run.FieldSuiteIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSuiteIndex(); ok {
		_spec.AddField(run.FieldSuiteIndex, field.TypeInt, value)
	}
	if _u.mutation.SuiteIndexCleared() {
		_spec.ClearField(run.FieldSuiteIndex, field.TypeInt)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(run.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ExecutionMode(); ok {
		_spec.SetField(run.FieldExecutionMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StreamingMode(); ok {
		_spec.SetField(run.FieldStreamingMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IsAutoRetry(); ok {
		_spec.SetField(run.FieldIsAutoRetry, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Progress(); ok {
		_spec.SetField(run.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProgress(); ok {
		_spec.AddField(run.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CancelRequested(); ok {
		_spec.SetField(run.FieldCancelRequested, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AgentData(); ok {
		_spec.SetField(run.FieldAgentData, field.TypeJSON, value)
	}
	if _u.mutation.AgentDataCleared() {
		_spec.ClearField(run.FieldAgentData, field.TypeJSON)
	}
	if value, ok := _u.mutation.StreamState(); ok {
		_spec.SetField(run.FieldStreamState, field.TypeJSON, value)
	}
	if _u.mutation.StreamStateCleared() {
		_spec.ClearField(run.FieldStreamState, field.TypeJSON)
	}
	if value, ok := _u.mutation.Logs(); ok {
		_spec.SetField(run.FieldLogs, field.TypeString, value)
	}
	if _u.mutation.LogsCleared() {
		_spec.ClearField(run.FieldLogs, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(run.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(run.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ContainerID(); ok {
		_spec.SetField(run.FieldContainerID, field.TypeString, value)
	}
	if _u.mutation.ContainerIDCleared() {
		_spec.ClearField(run.FieldContainerID, field.TypeString)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(run.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(run.FieldDurationMs, field.TypeInt, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(run.FieldDurationMs, field.TypeInt)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(run.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(run.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(run.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(run.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(run.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(run.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(run.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.ArtifactsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedArtifactsIDs(); len(nodes) > 0 && !_u.mutation.ArtifactsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ArtifactsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Run{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{run.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
