// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dappsmith/conductor/ent/job"
)

// JobCreate is the builder for creating a Job entity.
type JobCreate struct {
	config
	mutation *JobMutation
	hooks    []Hook
}

// SetKind sets the "kind" field.
func (_c *JobCreate) SetKind(v job.Kind) *JobCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetPayload sets the "payload" field.
func (_c *JobCreate) SetPayload(v map[string]interface{}) *JobCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *JobCreate) SetStatus(v job.Status) *JobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *JobCreate) SetNillableStatus(v *job.Status) *JobCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetAttempt sets the "attempt" field.
func (_c *JobCreate) SetAttempt(v int) *JobCreate {
	_c.mutation.SetAttempt(v)
	return _c
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_c *JobCreate) SetNillableAttempt(v *int) *JobCreate {
	if v != nil {
		_c.SetAttempt(*v)
	}
	return _c
}

// SetMaxAttempts sets the "max_attempts" field.
func (_c *JobCreate) SetMaxAttempts(v int) *JobCreate {
	_c.mutation.SetMaxAttempts(v)
	return _c
}

// SetNillableMaxAttempts sets the "max_attempts" field if the given value is not nil.
func (_c *JobCreate) SetNillableMaxAttempts(v *int) *JobCreate {
	if v != nil {
		_c.SetMaxAttempts(*v)
	}
	return _c
}

// SetNextAttemptAt sets the "next_attempt_at" field.
func (_c *JobCreate) SetNextAttemptAt(v time.Time) *JobCreate {
	_c.mutation.SetNextAttemptAt(v)
	return _c
}

// SetNillableNextAttemptAt sets the "next_attempt_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableNextAttemptAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetNextAttemptAt(*v)
	}
	return _c
}

// SetLockedBy sets the "locked_by" field.
func (_c *JobCreate) SetLockedBy(v string) *JobCreate {
	_c.mutation.SetLockedBy(v)
	return _c
}

// SetNillableLockedBy sets the "locked_by" field if the given value is not nil.
func (_c *JobCreate) SetNillableLockedBy(v *string) *JobCreate {
	if v != nil {
		_c.SetLockedBy(*v)
	}
	return _c
}

// SetLockExpiresAt sets the "lock_expires_at" field.
func (_c *JobCreate) SetLockExpiresAt(v time.Time) *JobCreate {
	_c.mutation.SetLockExpiresAt(v)
	return _c
}

// SetNillableLockExpiresAt sets the "lock_expires_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableLockExpiresAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetLockExpiresAt(*v)
	}
	return _c
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_c *JobCreate) SetLastHeartbeatAt(v time.Time) *JobCreate {
	_c.mutation.SetLastHeartbeatAt(v)
	return _c
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableLastHeartbeatAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetLastHeartbeatAt(*v)
	}
	return _c
}

// SetProgress sets the "progress" field.
func (_c *JobCreate) SetProgress(v int) *JobCreate {
	_c.mutation.SetProgress(v)
	return _c
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_c *JobCreate) SetNillableProgress(v *int) *JobCreate {
	if v != nil {
		_c.SetProgress(*v)
	}
	return _c
}

// SetCancelRequested sets the "cancel_requested" field.
func (_c *JobCreate) SetCancelRequested(v bool) *JobCreate {
	_c.mutation.SetCancelRequested(v)
	return _c
}

// SetNillableCancelRequested sets the "cancel_requested" field if the given value is not nil.
func (_c *JobCreate) SetNillableCancelRequested(v *bool) *JobCreate {
	if v != nil {
		_c.SetCancelRequested(*v)
	}
	return _c
}

// SetRunID sets the "run_id" field.
func (_c *JobCreate) SetRunID(v string) *JobCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_c *JobCreate) SetNillableRunID(v *string) *JobCreate {
	if v != nil {
		_c.SetRunID(*v)
	}
	return _c
}

// SetLastError sets the "last_error" field.
func (_c *JobCreate) SetLastError(v string) *JobCreate {
	_c.mutation.SetLastError(v)
	return _c
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_c *JobCreate) SetNillableLastError(v *string) *JobCreate {
	if v != nil {
		_c.SetLastError(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *JobCreate) SetCreatedAt(v time.Time) *JobCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableCreatedAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *JobCreate) SetCompletedAt(v time.Time) *JobCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableCompletedAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *JobCreate) SetID(v string) *JobCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the JobMutation object of the builder.
func (_c *JobCreate) Mutation() *JobMutation {
	return _c.mutation
}

// Save creates the Job in the database.
func (_c *JobCreate) Save(ctx context.Context) (*Job, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *JobCreate) SaveX(ctx context.Context) *Job {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *JobCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := job.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Attempt(); !ok {
		v := job.DefaultAttempt
		_c.mutation.SetAttempt(v)
	}
	if _, ok := _c.mutation.MaxAttempts(); !ok {
		v := job.DefaultMaxAttempts
		_c.mutation.SetMaxAttempts(v)
	}
	if _, ok := _c.mutation.NextAttemptAt(); !ok {
		v := job.DefaultNextAttemptAt()
		_c.mutation.SetNextAttemptAt(v)
	}
	if _, ok := _c.mutation.Progress(); !ok {
		v := job.DefaultProgress
		_c.mutation.SetProgress(v)
	}
	if _, ok := _c.mutation.CancelRequested(); !ok {
		v := job.DefaultCancelRequested
		_c.mutation.SetCancelRequested(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := job.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *JobCreate) check() error {
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "Job.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := job.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Job.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`ent: missing required field "Job.payload"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Job.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := job.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Job.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Attempt(); !ok {
		return &ValidationError{Name: "attempt", err: errors.New(`ent: missing required field "Job.attempt"`)}
	}
	if _, ok := _c.mutation.MaxAttempts(); !ok {
		return &ValidationError{Name: "max_attempts", err: errors.New(`ent: missing required field "Job.max_attempts"`)}
	}
	if _, ok := _c.mutation.NextAttemptAt(); !ok {
		return &ValidationError{Name: "next_attempt_at", err: errors.New(`ent: missing required field "Job.next_attempt_at"`)}
	}
	if _, ok := _c.mutation.Progress(); !ok {
		return &ValidationError{Name: "progress", err: errors.New(`ent: missing required field "Job.progress"`)}
	}
	if _, ok := _c.mutation.CancelRequested(); !ok {
		return &ValidationError{Name: "cancel_requested", err: errors.New(`ent: missing required field "Job.cancel_requested"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Job.created_at"`)}
	}
	return nil
}

func (_c *JobCreate) sqlSave(ctx context.Context) (*Job, error) {
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
			return nil, fmt.Errorf("unexpected Job.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *JobCreate) createSpec() (*Job, *sqlgraph.CreateSpec) {
	var (
		_node = &Job{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(job.Table, sqlgraph.NewFieldSpec(job.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(job.FieldKind, field.TypeEnum, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(job.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(job.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Attempt(); ok {
		_spec.SetField(job.FieldAttempt, field.TypeInt, value)
		_node.Attempt = value
	}
	if value, ok := _c.mutation.MaxAttempts(); ok {
		_spec.SetField(job.FieldMaxAttempts, field.TypeInt, value)
		_node.MaxAttempts = value
	}
	if value, ok := _c.mutation.NextAttemptAt(); ok {
		_spec.SetField(job.FieldNextAttemptAt, field.TypeTime, value)
		_node.NextAttemptAt = value
	}
	if value, ok := _c.mutation.LockedBy(); ok {
		_spec.SetField(job.FieldLockedBy, field.TypeString, value)
		_node.LockedBy = &value
	}
	if value, ok := _c.mutation.LockExpiresAt(); ok {
		_spec.SetField(job.FieldLockExpiresAt, field.TypeTime, value)
		_node.LockExpiresAt = &value
	}
	if value, ok := _c.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(job.FieldLastHeartbeatAt, field.TypeTime, value)
		_node.LastHeartbeatAt = &value
	}
	if value, ok := _c.mutation.Progress(); ok {
		_spec.SetField(job.FieldProgress, field.TypeInt, value)
		_node.Progress = value
	}
	if value, ok := _c.mutation.CancelRequested(); ok {
		_spec.SetField(job.FieldCancelRequested, field.TypeBool, value)
		_node.CancelRequested = value
	}
	if value, ok := _c.mutation.RunID(); ok {
		_spec.SetField(job.FieldRunID, field.TypeString, value)
		_node.RunID = &value
	}
	if value, ok := _c.mutation.LastError(); ok {
		_spec.SetField(job.FieldLastError, field.TypeString, value)
		_node.LastError = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(job.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(job.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	return _node, _spec
}

// JobCreateBulk is the builder for creating many Job entities in bulk.
type JobCreateBulk struct {
	config
	err      error
	builders []*JobCreate
}

// Save creates the Job entities in the database.
func (_c *JobCreateBulk) Save(ctx context.Context) ([]*Job, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Job, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*JobMutation)
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
func (_c *JobCreateBulk) SaveX(ctx context.Context) []*Job {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
