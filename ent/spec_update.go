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
	"github.com/dappsmith/conductor/ent/clarification"
	"github.com/dappsmith/conductor/ent/predicate"
	"github.com/dappsmith/conductor/ent/run"
	"github.com/dappsmith/conductor/ent/spec"
)

// SpecUpdate is the builder for updating Spec entities.
type SpecUpdate struct {
	config
	hooks    []Hook
	mutation *SpecMutation
}

// Where appends a list predicates to the SpecUpdate builder.
func (_u *SpecUpdate) Where(ps ...predicate.Spec) *SpecUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCode sets the "code" field.
func (_u *SpecUpdate) SetCode(v string) *SpecUpdate {
	_u.mutation.SetCode(v)
	return _u
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_u *SpecUpdate) SetNillableCode(v *string) *SpecUpdate {
	if v != nil {
		_u.SetCode(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *SpecUpdate) SetStatus(v spec.Status) *SpecUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SpecUpdate) SetNillableStatus(v *spec.Status) *SpecUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *SpecUpdate) SetVersion(v int) *SpecUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *SpecUpdate) SetNillableVersion(v *int) *SpecUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *SpecUpdate) AddVersion(v int) *SpecUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetAttempt sets the "attempt" field.
func (_u *SpecUpdate) SetAttempt(v int) *SpecUpdate {
	_u.mutation.ResetAttempt()
	_u.mutation.SetAttempt(v)
	return _u
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_u *SpecUpdate) SetNillableAttempt(v *int) *SpecUpdate {
	if v != nil {
		_u.SetAttempt(*v)
	}
	return _u
}

// AddAttempt adds value to the "attempt" field.
func (_u *SpecUpdate) AddAttempt(v int) *SpecUpdate {
	_u.mutation.AddAttempt(v)
	return _u
}

// SetMaxAttempts sets the "max_attempts" field.
func (_u *SpecUpdate) SetMaxAttempts(v int) *SpecUpdate {
	_u.mutation.ResetMaxAttempts()
	_u.mutation.SetMaxAttempts(v)
	return _u
}

// SetNillableMaxAttempts sets the "max_attempts" field if the given value is not nil.
func (_u *SpecUpdate) SetNillableMaxAttempts(v *int) *SpecUpdate {
	if v != nil {
		_u.SetMaxAttempts(*v)
	}
	return _u
}

// AddMaxAttempts adds value to the "max_attempts" field.
func (_u *SpecUpdate) AddMaxAttempts(v int) *SpecUpdate {
	_u.mutation.AddMaxAttempts(v)
	return _u
}

// SetParentSpecID sets the "parent_spec_id" field.
func (_u *SpecUpdate) SetParentSpecID(v string) *SpecUpdate {
	_u.mutation.SetParentSpecID(v)
	return _u
}

// SetNillableParentSpecID sets the "parent_spec_id" field if the given value is not nil.
func (_u *SpecUpdate) SetNillableParentSpecID(v *string) *SpecUpdate {
	if v != nil {
		_u.SetParentSpecID(*v)
	}
	return _u
}

// ClearParentSpecID clears the value of the "parent_spec_id" field.
func (_u *SpecUpdate) ClearParentSpecID() *SpecUpdate {
	_u.mutation.ClearParentSpecID()
	return _u
}

// SetFailureContext sets the "failure_context" field.
func (_u *SpecUpdate) SetFailureContext(v map[string]interface{}) *SpecUpdate {
	_u.mutation.SetFailureContext(v)
	return _u
}

// ClearFailureContext clears the value of the "failure_context" field.
func (_u *SpecUpdate) ClearFailureContext() *SpecUpdate {
	_u.mutation.ClearFailureContext()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *SpecUpdate) SetCreatedAt(v time.Time) *SpecUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *SpecUpdate) SetNillableCreatedAt(v *time.Time) *SpecUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SpecUpdate) SetUpdatedAt(v time.Time) *SpecUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddRunIDs adds the "runs" edge to the Run entity by IDs.
func (_u *SpecUpdate) AddRunIDs(ids ...string) *SpecUpdate {
	_u.mutation.AddRunIDs(ids...)
	return _u
}

// AddRuns adds the "runs" edges to the Run entity.
func (_u *SpecUpdate) AddRuns(v ...*Run) *SpecUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRunIDs(ids...)
}

// AddClarificationIDs adds the "clarifications" edge to the Clarification entity by IDs.
func (_u *SpecUpdate) AddClarificationIDs(ids ...string) *SpecUpdate {
	_u.mutation.AddClarificationIDs(ids...)
	return _u
}

// AddClarifications adds the "clarifications" edges to the Clarification entity.
func (_u *SpecUpdate) AddClarifications(v ...*Clarification) *SpecUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddClarificationIDs(ids...)
}

// Mutation returns the SpecMutation object of the builder.
func (_u *SpecUpdate) Mutation() *SpecMutation {
	return _u.mutation
}

// ClearRuns clears all "runs" edges to the Run entity.
func (_u *SpecUpdate) ClearRuns() *SpecUpdate {
	_u.mutation.ClearRuns()
	return _u
}

// RemoveRunIDs removes the "runs" edge to Run entities by IDs.
func (_u *SpecUpdate) RemoveRunIDs(ids ...string) *SpecUpdate {
	_u.mutation.RemoveRunIDs(ids...)
	return _u
}

// RemoveRuns removes "runs" edges to Run entities.
func (_u *SpecUpdate) RemoveRuns(v ...*Run) *SpecUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRunIDs(ids...)
}

// ClearClarifications clears all "clarifications" edges to the Clarification entity.
func (_u *SpecUpdate) ClearClarifications() *SpecUpdate {
	_u.mutation.ClearClarifications()
	return _u
}

// RemoveClarificationIDs removes the "clarifications" edge to Clarification entities by IDs.
func (_u *SpecUpdate) RemoveClarificationIDs(ids ...string) *SpecUpdate {
	_u.mutation.RemoveClarificationIDs(ids...)
	return _u
}

// RemoveClarifications removes "clarifications" edges to Clarification entities.
func (_u *SpecUpdate) RemoveClarifications(v ...*Clarification) *SpecUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveClarificationIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SpecUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SpecUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SpecUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SpecUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SpecUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := spec.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SpecUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := spec.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Spec.status": %w`, err)}
		}
	}
	if _u.mutation.RecordingCleared() && len(_u.mutation.RecordingIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Spec.recording"`)
	}
	return nil
}

func (_u *SpecUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(spec.Table, spec.Columns, sqlgraph.NewFieldSpec(spec.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Code(); ok {
		_spec.SetField(spec.FieldCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(spec.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(spec.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(spec.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Attempt(); ok {
		_spec.SetField(spec.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempt(); ok {
		_spec.AddField(spec.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxAttempts(); ok {
		_spec.SetField(spec.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxAttempts(); ok {
		_spec.AddField(spec.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ParentSpecID(); ok {
		_spec.SetField(spec.FieldParentSpecID, field.TypeString, value)
	}
	if _u.mutation.ParentSpecIDCleared() {
		_spec.ClearField(spec.FieldParentSpecID, field.TypeString)
	}
	if value, ok := _u.mutation.FailureContext(); ok {
		_spec.SetField(spec.FieldFailureContext, field.TypeJSON, value)
	}
	if _u.mutation.FailureContextCleared() {
		_spec.ClearField(spec.FieldFailureContext, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(spec.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(spec.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.RunsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRunsIDs(); len(nodes) > 0 && !_u.mutation.RunsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RunsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ClarificationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedClarificationsIDs(); len(nodes) > 0 && !_u.mutation.ClarificationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClarificationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{spec.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SpecUpdateOne is the builder for updating a single Spec entity.
type SpecUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SpecMutation
}

// SetCode sets the "code" field.
func (_u *SpecUpdateOne) SetCode(v string) *SpecUpdateOne {
	_u.mutation.SetCode(v)
	return _u
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_u *SpecUpdateOne) SetNillableCode(v *string) *SpecUpdateOne {
	if v != nil {
		_u.SetCode(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *SpecUpdateOne) SetStatus(v spec.Status) *SpecUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SpecUpdateOne) SetNillableStatus(v *spec.Status) *SpecUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *SpecUpdateOne) SetVersion(v int) *SpecUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *SpecUpdateOne) SetNillableVersion(v *int) *SpecUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *SpecUpdateOne) AddVersion(v int) *SpecUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetAttempt sets the "attempt" field.
func (_u *SpecUpdateOne) SetAttempt(v int) *SpecUpdateOne {
	_u.mutation.ResetAttempt()
	_u.mutation.SetAttempt(v)
	return _u
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_u *SpecUpdateOne) SetNillableAttempt(v *int) *SpecUpdateOne {
	if v != nil {
		_u.SetAttempt(*v)
	}
	return _u
}

// AddAttempt adds value to the "attempt" field.
func (_u *SpecUpdateOne) AddAttempt(v int) *SpecUpdateOne {
	_u.mutation.AddAttempt(v)
	return _u
}

// SetMaxAttempts sets the "max_attempts" field.
func (_u *SpecUpdateOne) SetMaxAttempts(v int) *SpecUpdateOne {
	_u.mutation.ResetMaxAttempts()
	_u.mutation.SetMaxAttempts(v)
	return _u
}

// SetNillableMaxAttempts sets the "max_attempts" field if the given value is not nil.
func (_u *SpecUpdateOne) SetNillableMaxAttempts(v *int) *SpecUpdateOne {
	if v != nil {
		_u.SetMaxAttempts(*v)
	}
	return _u
}

// AddMaxAttempts adds value to the "max_attempts" field.
func (_u *SpecUpdateOne) AddMaxAttempts(v int) *SpecUpdateOne {
	_u.mutation.AddMaxAttempts(v)
	return _u
}

// SetParentSpecID sets the "parent_spec_id" field.
func (_u *SpecUpdateOne) SetParentSpecID(v string) *SpecUpdateOne {
	_u.mutation.SetParentSpecID(v)
	return _u
}

// SetNillableParentSpecID sets the "parent_spec_id" field if the given value is not nil.
func (_u *SpecUpdateOne) SetNillableParentSpecID(v *string) *SpecUpdateOne {
	if v != nil {
		_u.SetParentSpecID(*v)
	}
	return _u
}

// ClearParentSpecID clears the value of the "parent_spec_id" field.
func (_u *SpecUpdateOne) ClearParentSpecID() *SpecUpdateOne {
	_u.mutation.ClearParentSpecID()
	return _u
}

// SetFailureContext sets the "failure_context" field.
func (_u *SpecUpdateOne) SetFailureContext(v map[string]interface{}) *SpecUpdateOne {
	_u.mutation.SetFailureContext(v)
	return _u
}

// ClearFailureContext clears the value of the "failure_context" field.
func (_u *SpecUpdateOne) ClearFailureContext() *SpecUpdateOne {
	_u.mutation.ClearFailureContext()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *SpecUpdateOne) SetCreatedAt(v time.Time) *SpecUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *SpecUpdateOne) SetNillableCreatedAt(v *time.Time) *SpecUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SpecUpdateOne) SetUpdatedAt(v time.Time) *SpecUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddRunIDs adds the "runs" edge to the Run entity by IDs.
func (_u *SpecUpdateOne) AddRunIDs(ids ...string) *SpecUpdateOne {
	_u.mutation.AddRunIDs(ids...)
	return _u
}

// AddRuns adds the "runs" edges to the Run entity.
func (_u *SpecUpdateOne) AddRuns(v ...*Run) *SpecUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRunIDs(ids...)
}

// AddClarificationIDs adds the "clarifications" edge to the Clarification entity by IDs.
func (_u *SpecUpdateOne) AddClarificationIDs(ids ...string) *SpecUpdateOne {
	_u.mutation.AddClarificationIDs(ids...)
	return _u
}

// AddClarifications adds the "clarifications" edges to the Clarification entity.
func (_u *SpecUpdateOne) AddClarifications(v ...*Clarification) *SpecUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddClarificationIDs(ids...)
}

// Mutation returns the SpecMutation object of the builder.
func (_u *SpecUpdateOne) Mutation() *SpecMutation {
	return _u.mutation
}

// ClearRuns clears all "runs" edges to the Run entity.
func (_u *SpecUpdateOne) ClearRuns() *SpecUpdateOne {
	_u.mutation.ClearRuns()
	return _u
}

// RemoveRunIDs removes the "runs" edge to Run entities by IDs.
func (_u *SpecUpdateOne) RemoveRunIDs(ids ...string) *SpecUpdateOne {
	_u.mutation.RemoveRunIDs(ids...)
	return _u
}

// RemoveRuns removes "runs" edges to Run entities.
func (_u *SpecUpdateOne) RemoveRuns(v ...*Run) *SpecUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRunIDs(ids...)
}

// ClearClarifications clears all "clarifications" edges to the Clarification entity.
func (_u *SpecUpdateOne) ClearClarifications() *SpecUpdateOne {
	_u.mutation.ClearClarifications()
	return _u
}

// RemoveClarificationIDs removes the "clarifications" edge to Clarification entities by IDs.
func (_u *SpecUpdateOne) RemoveClarificationIDs(ids ...string) *SpecUpdateOne {
	_u.mutation.RemoveClarificationIDs(ids...)
	return _u
}

// RemoveClarifications removes "clarifications" edges to Clarification entities.
func (_u *SpecUpdateOne) RemoveClarifications(v ...*Clarification) *SpecUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveClarificationIDs(ids...)
}

// Where appends a list predicates to the SpecUpdate builder.
func (_u *SpecUpdateOne) Where(ps ...predicate.Spec) *SpecUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SpecUpdateOne) Select(field string, fields ...string) *SpecUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Spec entity.
func (_u *SpecUpdateOne) Save(ctx context.Context) (*Spec, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SpecUpdateOne) SaveX(ctx context.Context) *Spec {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SpecUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SpecUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SpecUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := spec.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SpecUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := spec.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Spec.status": %w`, err)}
		}
	}
	if _u.mutation.RecordingCleared() && len(_u.mutation.RecordingIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Spec.recording"`)
	}
	return nil
}

func (_u *SpecUpdateOne) sqlSave(ctx context.Context) (_node *Spec, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(spec.Table, spec.Columns, sqlgraph.NewFieldSpec(spec.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Spec.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, spec.FieldID)
		for _, f := range fields {
			if !spec.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != spec.FieldID {
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
	if value, ok := _u.mutation.Code(); ok {
		_spec.SetField(spec.FieldCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(spec.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(spec.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(spec.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Attempt(); ok {
		_spec.SetField(spec.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempt(); ok {
		_spec.AddField(spec.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxAttempts(); ok {
		_spec.SetField(spec.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxAttempts(); ok {
		_spec.AddField(spec.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ParentSpecID(); ok {
		_spec.SetField(spec.FieldParentSpecID, field.TypeString, value)
	}
	if _u.mutation.ParentSpecIDCleared() {
		_spec.ClearField(spec.FieldParentSpecID, field.TypeString)
	}
	if value, ok := _u.mutation.FailureContext(); ok {
		_spec.SetField(spec.FieldFailureContext, field.TypeJSON, value)
	}
	if _u.mutation.FailureContextCleared() {
		_spec.ClearField(spec.FieldFailureContext, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(spec.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(spec.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.RunsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRunsIDs(); len(nodes) > 0 && !_u.mutation.RunsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RunsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ClarificationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedClarificationsIDs(); len(nodes) > 0 && !_u.mutation.ClarificationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClarificationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Spec{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{spec.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
