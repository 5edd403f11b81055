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
	"github.com/dappsmith/conductor/ent/job"
	"github.com/dappsmith/conductor/ent/predicate"
)

// JobUpdate is the builder for updating Job entities.
type JobUpdate struct {
	config
	hooks    []Hook
	mutation *JobMutation
}

// Where appends a list predicates to the JobUpdate builder.
func (_u *JobUpdate) Where(ps ...predicate.Job) *JobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetKind sets the "kind" field.
func (_u *JobUpdate) SetKind(v job.Kind) *JobUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *JobUpdate) SetNillableKind(v *job.Kind) *JobUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *JobUpdate) SetPayload(v map[string]interface{}) *JobUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *JobUpdate) SetStatus(v job.Status) *JobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *JobUpdate) SetNillableStatus(v *job.Status) *JobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAttempt sets the "attempt" field.
func (_u *JobUpdate) SetAttempt(v int) *JobUpdate {
	_u.mutation.ResetAttempt()
	_u.mutation.SetAttempt(v)
	return _u
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_u *JobUpdate) SetNillableAttempt(v *int) *JobUpdate {
	if v != nil {
		_u.SetAttempt(*v)
	}
	return _u
}

// AddAttempt adds value to the "attempt" field.
func (_u *JobUpdate) AddAttempt(v int) *JobUpdate {
	_u.mutation.AddAttempt(v)
	return _u
}

// SetMaxAttempts sets the "max_attempts" field.
func (_u *JobUpdate) SetMaxAttempts(v int) *JobUpdate {
	_u.mutation.ResetMaxAttempts()
	_u.mutation.SetMaxAttempts(v)
	return _u
}

// SetNillableMaxAttempts sets the "max_attempts" field if the given value is not nil.
func (_u *JobUpdate) SetNillableMaxAttempts(v *int) *JobUpdate {
	if v != nil {
		_u.SetMaxAttempts(*v)
	}
	return _u
}

// AddMaxAttempts adds value to the "max_attempts" field.
func (_u *JobUpdate) AddMaxAttempts(v int) *JobUpdate {
	_u.mutation.AddMaxAttempts(v)
	return _u
}

// SetNextAttemptAt sets the "next_attempt_at" field.
func (_u *JobUpdate) SetNextAttemptAt(v time.Time) *JobUpdate {
	_u.mutation.SetNextAttemptAt(v)
	return _u
}

// SetNillableNextAttemptAt sets the "next_attempt_at" field if the given value is not nil.
func (_u *JobUpdate) SetNillableNextAttemptAt(v *time.Time) *JobUpdate {
	if v != nil {
		_u.SetNextAttemptAt(*v)
	}
	return _u
}

// SetLockedBy sets the "locked_by" field.
func (_u *JobUpdate) SetLockedBy(v string) *JobUpdate {
	_u.mutation.SetLockedBy(v)
	return _u
}

// SetNillableLockedBy sets the "locked_by" field if the given value is not nil.
func (_u *JobUpdate) SetNillableLockedBy(v *string) *JobUpdate {
	if v != nil {
		_u.SetLockedBy(*v)
	}
	return _u
}

// ClearLockedBy clears the value of the "locked_by" field.
func (_u *JobUpdate) ClearLockedBy() *JobUpdate {
	_u.mutation.ClearLockedBy()
	return _u
}

// SetLockExpiresAt sets the "lock_expires_at" field.
func (_u *JobUpdate) SetLockExpiresAt(v time.Time) *JobUpdate {
	_u.mutation.SetLockExpiresAt(v)
	return _u
}

// SetNillableLockExpiresAt sets the "lock_expires_at" field if the given value is not nil.
func (_u *JobUpdate) SetNillableLockExpiresAt(v *time.Time) *JobUpdate {
	if v != nil {
		_u.SetLockExpiresAt(*v)
	}
	return _u
}

// ClearLockExpiresAt clears the value of the "lock_expires_at" field.
func (_u *JobUpdate) ClearLockExpiresAt() *JobUpdate {
	_u.mutation.ClearLockExpiresAt()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *JobUpdate) SetLastHeartbeatAt(v time.Time) *JobUpdate {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *JobUpdate) SetNillableLastHeartbeatAt(v *time.Time) *JobUpdate {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *JobUpdate) ClearLastHeartbeatAt() *JobUpdate {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// SetProgress sets the "progress" field.
func (_u *JobUpdate) SetProgress(v int) *JobUpdate {
	_u.mutation.ResetProgress()
	_u.mutation.SetProgress(v)
	return _u
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_u *JobUpdate) SetNillableProgress(v *int) *JobUpdate {
	if v != nil {
		_u.SetProgress(*v)
	}
	return _u
}

// AddProgress adds value to the "progress" field.
func (_u *JobUpdate) AddProgress(v int) *JobUpdate {
	_u.mutation.AddProgress(v)
	return _u
}

// SetCancelRequested sets the "cancel_requested" field.
func (_u *JobUpdate) SetCancelRequested(v bool) *JobUpdate {
	_u.mutation.SetCancelRequested(v)
	return _u
}

// SetNillableCancelRequested sets the "cancel_requested" field if the given value is not nil.
func (_u *JobUpdate) SetNillableCancelRequested(v *bool) *JobUpdate {
	if v != nil {
		_u.SetCancelRequested(*v)
	}
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *JobUpdate) SetRunID(v string) *JobUpdate {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *JobUpdate) SetNillableRunID(v *string) *JobUpdate {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// ClearRunID clears the value of the "run_id" field.
func (_u *JobUpdate) ClearRunID() *JobUpdate {
	_u.mutation.ClearRunID()
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *JobUpdate) SetLastError(v string) *JobUpdate {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *JobUpdate) SetNillableLastError(v *string) *JobUpdate {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *JobUpdate) ClearLastError() *JobUpdate {
	_u.mutation.ClearLastError()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *JobUpdate) SetCreatedAt(v time.Time) *JobUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *JobUpdate) SetNillableCreatedAt(v *time.Time) *JobUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *JobUpdate) SetCompletedAt(v time.Time) *JobUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *JobUpdate) SetNillableCompletedAt(v *time.Time) *JobUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *JobUpdate) ClearCompletedAt() *JobUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the JobMutation object of the builder.
func (_u *JobUpdate) Mutation() *JobMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *JobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *JobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobUpdate) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := job.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Job.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := job.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Job.status": %w`, err)}
		}
	}
	return nil
}

func (_u *JobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(job.Table, job.Columns, sqlgraph.NewFieldSpec(job.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(job.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(job.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(job.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Attempt(); ok {
		_spec.SetField(job.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempt(); ok {
		_spec.AddField(job.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxAttempts(); ok {
		_spec.SetField(job.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxAttempts(); ok {
		_spec.AddField(job.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextAttemptAt(); ok {
		_spec.SetField(job.FieldNextAttemptAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LockedBy(); ok {
		_spec.SetField(job.FieldLockedBy, field.TypeString, value)
	}
	if _u.mutation.LockedByCleared() {
		_spec.ClearField(job.FieldLockedBy, field.TypeString)
	}
	if value, ok := _u.mutation.LockExpiresAt(); ok {
		_spec.SetField(job.FieldLockExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.LockExpiresAtCleared() {
		_spec.ClearField(job.FieldLockExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(job.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(job.FieldLastHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Progress(); ok {
		_spec.SetField(job.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProgress(); ok {
		_spec.AddField(job.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CancelRequested(); ok {
		_spec.SetField(job.FieldCancelRequested, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(job.FieldRunID, field.TypeString, value)
	}
	if _u.mutation.RunIDCleared() {
		_spec.ClearField(job.FieldRunID, field.TypeString)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(job.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(job.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(job.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(job.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(job.FieldCompletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{job.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// JobUpdateOne is the builder for updating a single Job entity.
type JobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *JobMutation
}

// SetKind sets the "kind" field.
func (_u *JobUpdateOne) SetKind(v job.Kind) *JobUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableKind(v *job.Kind) *JobUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *JobUpdateOne) SetPayload(v map[string]interface{}) *JobUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *JobUpdateOne) SetStatus(v job.Status) *JobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableStatus(v *job.Status) *JobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAttempt sets the "attempt" field.
func (_u *JobUpdateOne) SetAttempt(v int) *JobUpdateOne {
	_u.mutation.ResetAttempt()
	_u.mutation.SetAttempt(v)
	return _u
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableAttempt(v *int) *JobUpdateOne {
	if v != nil {
		_u.SetAttempt(*v)
	}
	return _u
}

// AddAttempt adds value to the "attempt" field.
func (_u *JobUpdateOne) AddAttempt(v int) *JobUpdateOne {
	_u.mutation.AddAttempt(v)
	return _u
}

// SetMaxAttempts sets the "max_attempts" field.
func (_u *JobUpdateOne) SetMaxAttempts(v int) *JobUpdateOne {
	_u.mutation.ResetMaxAttempts()
	_u.mutation.SetMaxAttempts(v)
	return _u
}

// SetNillableMaxAttempts sets the "max_attempts" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableMaxAttempts(v *int) *JobUpdateOne {
	if v != nil {
		_u.SetMaxAttempts(*v)
	}
	return _u
}

// AddMaxAttempts adds value to the "max_attempts" field.
func (_u *JobUpdateOne) AddMaxAttempts(v int) *JobUpdateOne {
	_u.mutation.AddMaxAttempts(v)
	return _u
}

// SetNextAttemptAt sets the "next_attempt_at" field.
func (_u *JobUpdateOne) SetNextAttemptAt(v time.Time) *JobUpdateOne {
	_u.mutation.SetNextAttemptAt(v)
	return _u
}

// SetNillableNextAttemptAt sets the "next_attempt_at" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableNextAttemptAt(v *time.Time) *JobUpdateOne {
	if v != nil {
		_u.SetNextAttemptAt(*v)
	}
	return _u
}

// SetLockedBy sets the "locked_by" field.
func (_u *JobUpdateOne) SetLockedBy(v string) *JobUpdateOne {
	_u.mutation.SetLockedBy(v)
	return _u
}

// SetNillableLockedBy sets the "locked_by" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableLockedBy(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetLockedBy(*v)
	}
	return _u
}

// ClearLockedBy clears the value of the "locked_by" field.
func (_u *JobUpdateOne) ClearLockedBy() *JobUpdateOne {
	_u.mutation.ClearLockedBy()
	return _u
}

// SetLockExpiresAt sets the "lock_expires_at" field.
func (_u *JobUpdateOne) SetLockExpiresAt(v time.Time) *JobUpdateOne {
	_u.mutation.SetLockExpiresAt(v)
	return _u
}

// SetNillableLockExpiresAt sets the "lock_expires_at" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableLockExpiresAt(v *time.Time) *JobUpdateOne {
	if v != nil {
		_u.SetLockExpiresAt(*v)
	}
	return _u
}

// ClearLockExpiresAt clears the value of the "lock_expires_at" field.
func (_u *JobUpdateOne) ClearLockExpiresAt() *JobUpdateOne {
	_u.mutation.ClearLockExpiresAt()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *JobUpdateOne) SetLastHeartbeatAt(v time.Time) *JobUpdateOne {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableLastHeartbeatAt(v *time.Time) *JobUpdateOne {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *JobUpdateOne) ClearLastHeartbeatAt() *JobUpdateOne {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// SetProgress sets the "progress" field.
func (_u *JobUpdateOne) SetProgress(v int) *JobUpdateOne {
	_u.mutation.ResetProgress()
	_u.mutation.SetProgress(v)
	return _u
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableProgress(v *int) *JobUpdateOne {
	if v != nil {
		_u.SetProgress(*v)
	}
	return _u
}

// AddProgress adds value to the "progress" field.
func (_u *JobUpdateOne) AddProgress(v int) *JobUpdateOne {
	_u.mutation.AddProgress(v)
	return _u
}

// SetCancelRequested sets the "cancel_requested" field.
func (_u *JobUpdateOne) SetCancelRequested(v bool) *JobUpdateOne {
	_u.mutation.SetCancelRequested(v)
	return _u
}

// SetNillableCancelRequested sets the "cancel_requested" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableCancelRequested(v *bool) *JobUpdateOne {
	if v != nil {
		_u.SetCancelRequested(*v)
	}
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *JobUpdateOne) SetRunID(v string) *JobUpdateOne {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableRunID(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// ClearRunID clears the value of the "run_id" field.
func (_u *JobUpdateOne) ClearRunID() *JobUpdateOne {
	_u.mutation.ClearRunID()
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *JobUpdateOne) SetLastError(v string) *JobUpdateOne {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableLastError(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *JobUpdateOne) ClearLastError() *JobUpdateOne {
	_u.mutation.ClearLastError()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *JobUpdateOne) SetCreatedAt(v time.Time) *JobUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableCreatedAt(v *time.Time) *JobUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *JobUpdateOne) SetCompletedAt(v time.Time) *JobUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableCompletedAt(v *time.Time) *JobUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *JobUpdateOne) ClearCompletedAt() *JobUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the JobMutation object of the builder.
func (_u *JobUpdateOne) Mutation() *JobMutation {
	return _u.mutation
}

// Where appends a list predicates to the JobUpdate builder.
func (_u *JobUpdateOne) Where(ps ...predicate.Job) *JobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *JobUpdateOne) Select(field string, fields ...string) *JobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Job entity.
func (_u *JobUpdateOne) Save(ctx context.Context) (*Job, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobUpdateOne) SaveX(ctx context.Context) *Job {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *JobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobUpdateOne) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := job.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Job.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := job.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Job.status": %w`, err)}
		}
	}
	return nil
}

func (_u *JobUpdateOne) sqlSave(ctx context.Context) (_node *Job, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(job.Table, job.Columns, sqlgraph.NewFieldSpec(job.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Job.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, job.FieldID)
		for _, f := range fields {
			if !job.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != job.FieldID {
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
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(job.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(job.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(job.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Attempt(); ok {
		_spec.SetField(job.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempt(); ok {
		_spec.AddField(job.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxAttempts(); ok {
		_spec.SetField(job.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxAttempts(); ok {
		_spec.AddField(job.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextAttemptAt(); ok {
		_spec.SetField(job.FieldNextAttemptAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LockedBy(); ok {
		_spec.SetField(job.FieldLockedBy, field.TypeString, value)
	}
	if _u.mutation.LockedByCleared() {
		_spec.ClearField(job.FieldLockedBy, field.TypeString)
	}
	if value, ok := _u.mutation.LockExpiresAt(); ok {
		_spec.SetField(job.FieldLockExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.LockExpiresAtCleared() {
		_spec.ClearField(job.FieldLockExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(job.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(job.FieldLastHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Progress(); ok {
		_spec.SetField(job.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProgress(); ok {
		_spec.AddField(job.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CancelRequested(); ok {
		_spec.SetField(job.FieldCancelRequested, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(job.FieldRunID, field.TypeString, value)
	}
	if _u.mutation.RunIDCleared() {
		_spec.ClearField(job.FieldRunID, field.TypeString)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(job.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(job.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(job.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(job.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(job.FieldCompletedAt, field.TypeTime)
	}
	_node = &Job{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{job.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
