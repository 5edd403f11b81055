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
	"github.com/dappsmith/conductor/ent/predicate"
	"github.com/dappsmith/conductor/ent/run"
	"github.com/dappsmith/conductor/ent/suiterun"
)

// SuiteRunUpdate is the builder for updating SuiteRun entities.
type SuiteRunUpdate struct {
	config
	hooks    []Hook
	mutation *SuiteRunMutation
}

// Where appends a list predicates to the SuiteRunUpdate builder.
func (_u *SuiteRunUpdate) Where(ps ...predicate.SuiteRun) *SuiteRunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *SuiteRunUpdate) SetStatus(v suiterun.Status) *SuiteRunUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SuiteRunUpdate) SetNillableStatus(v *suiterun.Status) *SuiteRunUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTotalTests sets the "total_tests" field.
func (_u *SuiteRunUpdate) SetTotalTests(v int) *SuiteRunUpdate {
	_u.mutation.ResetTotalTests()
	_u.mutation.SetTotalTests(v)
	return _u
}

// SetNillableTotalTests sets the "total_tests" field if the given value is not nil.
func (_u *SuiteRunUpdate) SetNillableTotalTests(v *int) *SuiteRunUpdate {
	if v != nil {
		_u.SetTotalTests(*v)
	}
	return _u
}

// AddTotalTests adds value to the "total_tests" field.
func (_u *SuiteRunUpdate) AddTotalTests(v int) *SuiteRunUpdate {
	_u.mutation.AddTotalTests(v)
	return _u
}

// SetPassedTests sets the "passed_tests" field.
func (_u *SuiteRunUpdate) SetPassedTests(v int) *SuiteRunUpdate {
	_u.mutation.ResetPassedTests()
	_u.mutation.SetPassedTests(v)
	return _u
}

// SetNillablePassedTests sets the "passed_tests" field if the given value is not nil.
func (_u *SuiteRunUpdate) SetNillablePassedTests(v *int) *SuiteRunUpdate {
	if v != nil {
		_u.SetPassedTests(*v)
	}
	return _u
}

// AddPassedTests adds value to the "passed_tests" field.
func (_u *SuiteRunUpdate) AddPassedTests(v int) *SuiteRunUpdate {
	_u.mutation.AddPassedTests(v)
	return _u
}

// SetFailedTests sets the "failed_tests" field.
func (_u *SuiteRunUpdate) SetFailedTests(v int) *SuiteRunUpdate {
	_u.mutation.ResetFailedTests()
	_u.mutation.SetFailedTests(v)
	return _u
}

// SetNillableFailedTests sets the "failed_tests" field if the given value is not nil.
func (_u *SuiteRunUpdate) SetNillableFailedTests(v *int) *SuiteRunUpdate {
	if v != nil {
		_u.SetFailedTests(*v)
	}
	return _u
}

// AddFailedTests adds value to the "failed_tests" field.
func (_u *SuiteRunUpdate) AddFailedTests(v int) *SuiteRunUpdate {
	_u.mutation.AddFailedTests(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *SuiteRunUpdate) SetErrorMessage(v string) *SuiteRunUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *SuiteRunUpdate) SetNillableErrorMessage(v *string) *SuiteRunUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *SuiteRunUpdate) ClearErrorMessage() *SuiteRunUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *SuiteRunUpdate) SetCreatedAt(v time.Time) *SuiteRunUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *SuiteRunUpdate) SetNillableCreatedAt(v *time.Time) *SuiteRunUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *SuiteRunUpdate) SetStartedAt(v time.Time) *SuiteRunUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *SuiteRunUpdate) SetNillableStartedAt(v *time.Time) *SuiteRunUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *SuiteRunUpdate) ClearStartedAt() *SuiteRunUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *SuiteRunUpdate) SetCompletedAt(v time.Time) *SuiteRunUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *SuiteRunUpdate) SetNillableCompletedAt(v *time.Time) *SuiteRunUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *SuiteRunUpdate) ClearCompletedAt() *SuiteRunUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddRunIDs adds the "runs" edge to the Run entity by IDs.
func (_u *SuiteRunUpdate) AddRunIDs(ids ...string) *SuiteRunUpdate {
	_u.mutation.AddRunIDs(ids...)
	return _u
}

// AddRuns adds the "runs" edges to the Run entity.
func (_u *SuiteRunUpdate) AddRuns(v ...*Run) *SuiteRunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRunIDs(ids...)
}

// Mutation returns the SuiteRunMutation object of the builder.
func (_u *SuiteRunUpdate) Mutation() *SuiteRunMutation {
	return _u.mutation
}

// ClearRuns clears all "runs" edges to the Run entity.
func (_u *SuiteRunUpdate) ClearRuns() *SuiteRunUpdate {
	_u.mutation.ClearRuns()
	return _u
}

// RemoveRunIDs removes the "runs" edge to Run entities by IDs.
func (_u *SuiteRunUpdate) RemoveRunIDs(ids ...string) *SuiteRunUpdate {
	_u.mutation.RemoveRunIDs(ids...)
	return _u
}

// RemoveRuns removes "runs" edges to Run entities.
func (_u *SuiteRunUpdate) RemoveRuns(v ...*Run) *SuiteRunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRunIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SuiteRunUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SuiteRunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SuiteRunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SuiteRunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SuiteRunUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := suiterun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SuiteRun.status": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SuiteRun.project"`)
	}
	return nil
}

func (_u *SuiteRunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(suiterun.Table, suiterun.Columns, sqlgraph.NewFieldSpec(suiterun.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(suiterun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TotalTests(); ok {
		_spec.SetField(suiterun.FieldTotalTests, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTests(); ok {
		_spec.AddField(suiterun.FieldTotalTests, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PassedTests(); ok {
		_spec.SetField(suiterun.FieldPassedTests, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPassedTests(); ok {
		_spec.AddField(suiterun.FieldPassedTests, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailedTests(); ok {
		_spec.SetField(suiterun.FieldFailedTests, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailedTests(); ok {
		_spec.AddField(suiterun.FieldFailedTests, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(suiterun.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(suiterun.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(suiterun.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(suiterun.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(suiterun.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(suiterun.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(suiterun.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.RunsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRunsIDs(); len(nodes) > 0 && !_u.mutation.RunsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RunsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{suiterun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SuiteRunUpdateOne is the builder for updating a single SuiteRun entity.
type SuiteRunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SuiteRunMutation
}

// SetStatus sets the "status" field.
func (_u *SuiteRunUpdateOne) SetStatus(v suiterun.Status) *SuiteRunUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SuiteRunUpdateOne) SetNillableStatus(v *suiterun.Status) *SuiteRunUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTotalTests sets the "total_tests" field.
func (_u *SuiteRunUpdateOne) SetTotalTests(v int) *SuiteRunUpdateOne {
	_u.mutation.ResetTotalTests()
	_u.mutation.SetTotalTests(v)
	return _u
}

// SetNillableTotalTests sets the "total_tests" field if the given value is not nil.
func (_u *SuiteRunUpdateOne) SetNillableTotalTests(v *int) *SuiteRunUpdateOne {
	if v != nil {
		_u.SetTotalTests(*v)
	}
	return _u
}

// AddTotalTests adds value to the "total_tests" field.
func (_u *SuiteRunUpdateOne) AddTotalTests(v int) *SuiteRunUpdateOne {
	_u.mutation.AddTotalTests(v)
	return _u
}

// SetPassedTests sets the "passed_tests" field.
func (_u *SuiteRunUpdateOne) SetPassedTests(v int) *SuiteRunUpdateOne {
	_u.mutation.ResetPassedTests()
	_u.mutation.SetPassedTests(v)
	return _u
}

// SetNillablePassedTests sets the "passed_tests" field if the given value is not nil.
func (_u *SuiteRunUpdateOne) SetNillablePassedTests(v *int) *SuiteRunUpdateOne {
	if v != nil {
		_u.SetPassedTests(*v)
	}
	return _u
}

// AddPassedTests adds value to the "passed_tests" field.
func (_u *SuiteRunUpdateOne) AddPassedTests(v int) *SuiteRunUpdateOne {
	_u.mutation.AddPassedTests(v)
	return _u
}

// SetFailedTests sets the "failed_tests" field.
func (_u *SuiteRunUpdateOne) SetFailedTests(v int) *SuiteRunUpdateOne {
	_u.mutation.ResetFailedTests()
	_u.mutation.SetFailedTests(v)
	return _u
}

// SetNillableFailedTests sets the "failed_tests" field if the given value is not nil.
func (_u *SuiteRunUpdateOne) SetNillableFailedTests(v *int) *SuiteRunUpdateOne {
	if v != nil {
		_u.SetFailedTests(*v)
	}
	return _u
}

// AddFailedTests adds value to the "failed_tests" field.
func (_u *SuiteRunUpdateOne) AddFailedTests(v int) *SuiteRunUpdateOne {
	_u.mutation.AddFailedTests(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *SuiteRunUpdateOne) SetErrorMessage(v string) *SuiteRunUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *SuiteRunUpdateOne) SetNillableErrorMessage(v *string) *SuiteRunUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *SuiteRunUpdateOne) ClearErrorMessage() *SuiteRunUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *SuiteRunUpdateOne) SetCreatedAt(v time.Time) *SuiteRunUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *SuiteRunUpdateOne) SetNillableCreatedAt(v *time.Time) *SuiteRunUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *SuiteRunUpdateOne) SetStartedAt(v time.Time) *SuiteRunUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *SuiteRunUpdateOne) SetNillableStartedAt(v *time.Time) *SuiteRunUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *SuiteRunUpdateOne) ClearStartedAt() *SuiteRunUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *SuiteRunUpdateOne) SetCompletedAt(v time.Time) *SuiteRunUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *SuiteRunUpdateOne) SetNillableCompletedAt(v *time.Time) *SuiteRunUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *SuiteRunUpdateOne) ClearCompletedAt() *SuiteRunUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddRunIDs adds the "runs" edge to the Run entity by IDs.
func (_u *SuiteRunUpdateOne) AddRunIDs(ids ...string) *SuiteRunUpdateOne {
	_u.mutation.AddRunIDs(ids...)
	return _u
}

// AddRuns adds the "runs" edges to the Run entity.
func (_u *SuiteRunUpdateOne) AddRuns(v ...*Run) *SuiteRunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRunIDs(ids...)
}

// Mutation returns the SuiteRunMutation object of the builder.
func (_u *SuiteRunUpdateOne) Mutation() *SuiteRunMutation {
	return _u.mutation
}

// ClearRuns clears all "runs" edges to the Run entity.
func (_u *SuiteRunUpdateOne) ClearRuns() *SuiteRunUpdateOne {
	_u.mutation.ClearRuns()
	return _u
}

// RemoveRunIDs removes the "runs" edge to Run entities by IDs.
func (_u *SuiteRunUpdateOne) RemoveRunIDs(ids ...string) *SuiteRunUpdateOne {
	_u.mutation.RemoveRunIDs(ids...)
	return _u
}

// RemoveRuns removes "runs" edges to Run entities.
func (_u *SuiteRunUpdateOne) RemoveRuns(v ...*Run) *SuiteRunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRunIDs(ids...)
}

// Where appends a list predicates to the SuiteRunUpdate builder.
func (_u *SuiteRunUpdateOne) Where(ps ...predicate.SuiteRun) *SuiteRunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SuiteRunUpdateOne) Select(field string, fields ...string) *SuiteRunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SuiteRun entity.
func (_u *SuiteRunUpdateOne) Save(ctx context.Context) (*SuiteRun, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SuiteRunUpdateOne) SaveX(ctx context.Context) *SuiteRun {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SuiteRunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SuiteRunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SuiteRunUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := suiterun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SuiteRun.status": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SuiteRun.project"`)
	}
	return nil
}

func (_u *SuiteRunUpdateOne) sqlSave(ctx context.Context) (_node *SuiteRun, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(suiterun.Table, suiterun.Columns, sqlgraph.NewFieldSpec(suiterun.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SuiteRun.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, suiterun.FieldID)
		for _, f := range fields {
			if !suiterun.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != suiterun.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(suiterun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TotalTests(); ok {
		_spec.SetField(suiterun.FieldTotalTests, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTests(); ok {
		_spec.AddField(suiterun.FieldTotalTests, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PassedTests(); ok {
		_spec.SetField(suiterun.FieldPassedTests, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPassedTests(); ok {
		_spec.AddField(suiterun.FieldPassedTests, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailedTests(); ok {
		_spec.SetField(suiterun.FieldFailedTests, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailedTests(); ok {
		_spec.AddField(suiterun.FieldFailedTests, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(suiterun.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(suiterun.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(suiterun.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(suiterun.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(suiterun.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(suiterun.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(suiterun.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.RunsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRunsIDs(); len(nodes) > 0 && !_u.mutation.RunsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RunsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &SuiteRun{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{suiterun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
