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
	"github.com/dappsmith/conductor/ent/project"
	"github.com/dappsmith/conductor/ent/recording"
	"github.com/dappsmith/conductor/ent/suiterun"
)

// ProjectUpdate is the builder for updating Project entities.
type ProjectUpdate struct {
	config
	hooks    []Hook
	mutation *ProjectMutation
}

// Where appends a list predicates to the ProjectUpdate builder.
func (_u *ProjectUpdate) Where(ps ...predicate.Project) *ProjectUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *ProjectUpdate) SetName(v string) *ProjectUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableName(v *string) *ProjectUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDappURL sets the "dapp_url" field.
func (_u *ProjectUpdate) SetDappURL(v string) *ProjectUpdate {
	_u.mutation.SetDappURL(v)
	return _u
}

// SetNillableDappURL sets the "dapp_url" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableDappURL(v *string) *ProjectUpdate {
	if v != nil {
		_u.SetDappURL(*v)
	}
	return _u
}

// SetWalletAddress sets the "wallet_address" field.
func (_u *ProjectUpdate) SetWalletAddress(v string) *ProjectUpdate {
	_u.mutation.SetWalletAddress(v)
	return _u
}

// SetNillableWalletAddress sets the "wallet_address" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableWalletAddress(v *string) *ProjectUpdate {
	if v != nil {
		_u.SetWalletAddress(*v)
	}
	return _u
}

// SetConnectionSpecID sets the "connection_spec_id" field.
func (_u *ProjectUpdate) SetConnectionSpecID(v string) *ProjectUpdate {
	_u.mutation.SetConnectionSpecID(v)
	return _u
}

// SetNillableConnectionSpecID sets the "connection_spec_id" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableConnectionSpecID(v *string) *ProjectUpdate {
	if v != nil {
		_u.SetConnectionSpecID(*v)
	}
	return _u
}

// ClearConnectionSpecID clears the value of the "connection_spec_id" field.
func (_u *ProjectUpdate) ClearConnectionSpecID() *ProjectUpdate {
	_u.mutation.ClearConnectionSpecID()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ProjectUpdate) SetCreatedAt(v time.Time) *ProjectUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableCreatedAt(v *time.Time) *ProjectUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProjectUpdate) SetUpdatedAt(v time.Time) *ProjectUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *ProjectUpdate) SetDeletedAt(v time.Time) *ProjectUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableDeletedAt(v *time.Time) *ProjectUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *ProjectUpdate) ClearDeletedAt() *ProjectUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// AddRecordingIDs adds the "recordings" edge to the Recording entity by IDs.
func (_u *ProjectUpdate) AddRecordingIDs(ids ...string) *ProjectUpdate {
	_u.mutation.AddRecordingIDs(ids...)
	return _u
}

// AddRecordings adds the "recordings" edges to the Recording entity.
func (_u *ProjectUpdate) AddRecordings(v ...*Recording) *ProjectUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRecordingIDs(ids...)
}

// AddSuiteRunIDs adds the "suite_runs" edge to the SuiteRun entity by IDs.
func (_u *ProjectUpdate) AddSuiteRunIDs(ids ...string) *ProjectUpdate {
	_u.mutation.AddSuiteRunIDs(ids...)
	return _u
}

// AddSuiteRuns adds the "suite_runs" edges to the SuiteRun entity.
func (_u *ProjectUpdate) AddSuiteRuns(v ...*SuiteRun) *ProjectUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSuiteRunIDs(ids...)
}

// Mutation returns the ProjectMutation object of the builder.
func (_u *ProjectUpdate) Mutation() *ProjectMutation {
	return _u.mutation
}

// ClearRecordings clears all "recordings" edges to the Recording entity.
func (_u *ProjectUpdate) ClearRecordings() *ProjectUpdate {
	_u.mutation.ClearRecordings()
	return _u
}

// RemoveRecordingIDs removes the "recordings" edge to Recording entities by IDs.
func (_u *ProjectUpdate) RemoveRecordingIDs(ids ...string) *ProjectUpdate {
	_u.mutation.RemoveRecordingIDs(ids...)
	return _u
}

// RemoveRecordings removes "recordings" edges to Recording entities.
func (_u *ProjectUpdate) RemoveRecordings(v ...*Recording) *ProjectUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRecordingIDs(ids...)
}

// ClearSuiteRuns clears all "suite_runs" edges to the SuiteRun entity.
func (_u *ProjectUpdate) ClearSuiteRuns() *ProjectUpdate {
	_u.mutation.ClearSuiteRuns()
	return _u
}

// RemoveSuiteRunIDs removes the "suite_runs" edge to SuiteRun entities by IDs.
func (_u *ProjectUpdate) RemoveSuiteRunIDs(ids ...string) *ProjectUpdate {
	_u.mutation.RemoveSuiteRunIDs(ids...)
	return _u
}

// RemoveSuiteRuns removes "suite_runs" edges to SuiteRun entities.
func (_u *ProjectUpdate) RemoveSuiteRuns(v ...*SuiteRun) *ProjectUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSuiteRunIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProjectUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProjectUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProjectUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProjectUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProjectUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := project.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ProjectUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(project.Table, project.Columns, sqlgraph.NewFieldSpec(project.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(project.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.DappURL(); ok {
		_spec.SetField(project.FieldDappURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.WalletAddress(); ok {
		_spec.SetField(project.FieldWalletAddress, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConnectionSpecID(); ok {
		_spec.SetField(project.FieldConnectionSpecID, field.TypeString, value)
	}
	if _u.mutation.ConnectionSpecIDCleared() {
		_spec.ClearField(project.FieldConnectionSpecID, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(project.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(project.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(project.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(project.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.RecordingsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.RecordingsTable,
			Columns: []string{project.RecordingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(recording.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRecordingsIDs(); len(nodes) > 0 && !_u.mutation.RecordingsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.RecordingsTable,
			Columns: []string{project.RecordingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(recording.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RecordingsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.RecordingsTable,
			Columns: []string{project.RecordingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(recording.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SuiteRunsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.SuiteRunsTable,
			Columns: []string{project.SuiteRunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(suiterun.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSuiteRunsIDs(); len(nodes) > 0 && !_u.mutation.SuiteRunsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.SuiteRunsTable,
			Columns: []string{project.SuiteRunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(suiterun.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SuiteRunsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.SuiteRunsTable,
			Columns: []string{project.SuiteRunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(suiterun.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{project.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProjectUpdateOne is the builder for updating a single Project entity.
type ProjectUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProjectMutation
}

// SetName sets the "name" field.
func (_u *ProjectUpdateOne) SetName(v string) *ProjectUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableName(v *string) *ProjectUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDappURL sets the "dapp_url" field.
func (_u *ProjectUpdateOne) SetDappURL(v string) *ProjectUpdateOne {
	_u.mutation.SetDappURL(v)
	return _u
}

// SetNillableDappURL sets the "dapp_url" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableDappURL(v *string) *ProjectUpdateOne {
	if v != nil {
		_u.SetDappURL(*v)
	}
	return _u
}

// SetWalletAddress sets the "wallet_address" field.
func (_u *ProjectUpdateOne) SetWalletAddress(v string) *ProjectUpdateOne {
	_u.mutation.SetWalletAddress(v)
	return _u
}

// SetNillableWalletAddress sets the "wallet_address" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableWalletAddress(v *string) *ProjectUpdateOne {
	if v != nil {
		_u.SetWalletAddress(*v)
	}
	return _u
}

// SetConnectionSpecID sets the "connection_spec_id" field.
func (_u *ProjectUpdateOne) SetConnectionSpecID(v string) *ProjectUpdateOne {
	_u.mutation.SetConnectionSpecID(v)
	return _u
}

// SetNillableConnectionSpecID sets the "connection_spec_id" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableConnectionSpecID(v *string) *ProjectUpdateOne {
	if v != nil {
		_u.SetConnectionSpecID(*v)
	}
	return _u
}

// ClearConnectionSpecID clears the value of the "connection_spec_id" field.
func (_u *ProjectUpdateOne) ClearConnectionSpecID() *ProjectUpdateOne {
	_u.mutation.ClearConnectionSpecID()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ProjectUpdateOne) SetCreatedAt(v time.Time) *ProjectUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableCreatedAt(v *time.Time) *ProjectUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProjectUpdateOne) SetUpdatedAt(v time.Time) *ProjectUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *ProjectUpdateOne) SetDeletedAt(v time.Time) *ProjectUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableDeletedAt(v *time.Time) *ProjectUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *ProjectUpdateOne) ClearDeletedAt() *ProjectUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// AddRecordingIDs adds the "recordings" edge to the Recording entity by IDs.
func (_u *ProjectUpdateOne) AddRecordingIDs(ids ...string) *ProjectUpdateOne {
	_u.mutation.AddRecordingIDs(ids...)
	return _u
}

// AddRecordings adds the "recordings" edges to the Recording entity.
func (_u *ProjectUpdateOne) AddRecordings(v ...*Recording) *ProjectUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRecordingIDs(ids...)
}

// AddSuiteRunIDs adds the "suite_runs" edge to the SuiteRun entity by IDs.
func (_u *ProjectUpdateOne) AddSuiteRunIDs(ids ...string) *ProjectUpdateOne {
	_u.mutation.AddSuiteRunIDs(ids...)
	return _u
}

// AddSuiteRuns adds the "suite_runs" edges to the SuiteRun entity.
func (_u *ProjectUpdateOne) AddSuiteRuns(v ...*SuiteRun) *ProjectUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSuiteRunIDs(ids...)
}

// Mutation returns the ProjectMutation object of the builder.
func (_u *ProjectUpdateOne) Mutation() *ProjectMutation {
	return _u.mutation
}

// ClearRecordings clears all "recordings" edges to the Recording entity.
func (_u *ProjectUpdateOne) ClearRecordings() *ProjectUpdateOne {
	_u.mutation.ClearRecordings()
	return _u
}

// RemoveRecordingIDs removes the "recordings" edge to Recording entities by IDs.
func (_u *ProjectUpdateOne) RemoveRecordingIDs(ids ...string) *ProjectUpdateOne {
	_u.mutation.RemoveRecordingIDs(ids...)
	return _u
}

// RemoveRecordings removes "recordings" edges to Recording entities.
func (_u *ProjectUpdateOne) RemoveRecordings(v ...*Recording) *ProjectUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRecordingIDs(ids...)
}

// ClearSuiteRuns clears all "suite_runs" edges to the SuiteRun entity.
func (_u *ProjectUpdateOne) ClearSuiteRuns() *ProjectUpdateOne {
	_u.mutation.ClearSuiteRuns()
	return _u
}

// RemoveSuiteRunIDs removes the "suite_runs" edge to SuiteRun entities by IDs.
func (_u *ProjectUpdateOne) RemoveSuiteRunIDs(ids ...string) *ProjectUpdateOne {
	_u.mutation.RemoveSuiteRunIDs(ids...)
	return _u
}

// RemoveSuiteRuns removes "suite_runs" edges to SuiteRun entities.
func (_u *ProjectUpdateOne) RemoveSuiteRuns(v ...*SuiteRun) *ProjectUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSuiteRunIDs(ids...)
}

// Where appends a list predicates to the ProjectUpdate builder.
func (_u *ProjectUpdateOne) Where(ps ...predicate.Project) *ProjectUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProjectUpdateOne) Select(field string, fields ...string) *ProjectUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Project entity.
func (_u *ProjectUpdateOne) Save(ctx context.Context) (*Project, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProjectUpdateOne) SaveX(ctx context.Context) *Project {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProjectUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProjectUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProjectUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := project.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ProjectUpdateOne) sqlSave(ctx context.Context) (_node *Project, err error) {
	_spec := sqlgraph.NewUpdateSpec(project.Table, project.Columns, sqlgraph.NewFieldSpec(project.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Project.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, project.FieldID)
		for _, f := range fields {
			if !project.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != project.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(project.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.DappURL(); ok {
		_spec.SetField(project.FieldDappURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.WalletAddress(); ok {
		_spec.SetField(project.FieldWalletAddress, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConnectionSpecID(); ok {
		_spec.SetField(project.FieldConnectionSpecID, field.TypeString, value)
	}
	if _u.mutation.ConnectionSpecIDCleared() {
		_spec.ClearField(project.FieldConnectionSpecID, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(project.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(project.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(project.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(project.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.RecordingsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.RecordingsTable,
			Columns: []string{project.RecordingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(recording.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRecordingsIDs(); len(nodes) > 0 && !_u.mutation.RecordingsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.RecordingsTable,
			Columns: []string{project.RecordingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(recording.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RecordingsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.RecordingsTable,
			Columns: []string{project.RecordingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(recording.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SuiteRunsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.SuiteRunsTable,
			Columns: []string{project.SuiteRunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(suiterun.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSuiteRunsIDs(); len(nodes) > 0 && !_u.mutation.SuiteRunsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.SuiteRunsTable,
			Columns: []string{project.SuiteRunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(suiterun.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SuiteRunsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.SuiteRunsTable,
			Columns: []string{project.SuiteRunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(suiterun.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Project{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{project.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
