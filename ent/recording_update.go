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
	"github.com/dappsmith/conductor/ent/recording"
	"github.com/dappsmith/conductor/ent/spec"
)

// RecordingUpdate is the builder for updating Recording entities.
type RecordingUpdate struct {
	config
	hooks    []Hook
	mutation *RecordingMutation
}

// Where appends a list predicates to the RecordingUpdate builder.
func (_u *RecordingUpdate) Where(ps ...predicate.Recording) *RecordingUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *RecordingUpdate) SetName(v string) *RecordingUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *RecordingUpdate) SetNillableName(v *string) *RecordingUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetRecordingType sets the "recording_type" field.
func (_u *RecordingUpdate) SetRecordingType(v recording.RecordingType) *RecordingUpdate {
	_u.mutation.SetRecordingType(v)
	return _u
}

// SetNillableRecordingType sets the "recording_type" field if the given value is not nil.
func (_u *RecordingUpdate) SetNillableRecordingType(v *recording.RecordingType) *RecordingUpdate {
	if v != nil {
		_u.SetRecordingType(*v)
	}
	return _u
}

// SetURL sets the "url" field.
func (_u *RecordingUpdate) SetURL(v string) *RecordingUpdate {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *RecordingUpdate) SetNillableURL(v *string) *RecordingUpdate {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// ClearURL clears the value of the "url" field.
func (_u *RecordingUpdate) ClearURL() *RecordingUpdate {
	_u.mutation.ClearURL()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *RecordingUpdate) SetCreatedAt(v time.Time) *RecordingUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *RecordingUpdate) SetNillableCreatedAt(v *time.Time) *RecordingUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// AddSpecIDs adds the "specs" edge to the Spec entity by IDs.
func (_u *RecordingUpdate) AddSpecIDs(ids ...string) *RecordingUpdate {
	_u.mutation.AddSpecIDs(ids...)
	return _u
}

// AddSpecs adds the "specs" edges to the Spec entity.
func (_u *RecordingUpdate) AddSpecs(v ...*Spec) *RecordingUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSpecIDs(ids...)
}

// Mutation returns the RecordingMutation object of the builder.
func (_u *RecordingUpdate) Mutation() *RecordingMutation {
	return _u.mutation
}

// ClearSpecs clears all "specs" edges to the Spec entity.
func (_u *RecordingUpdate) ClearSpecs() *RecordingUpdate {
	_u.mutation.ClearSpecs()
	return _u
}

// RemoveSpecIDs removes the "specs" edge to Spec entities by IDs.
func (_u *RecordingUpdate) RemoveSpecIDs(ids ...string) *RecordingUpdate {
	_u.mutation.RemoveSpecIDs(ids...)
	return _u
}

// RemoveSpecs removes "specs" edges to Spec entities.
func (_u *RecordingUpdate) RemoveSpecs(v ...*Spec) *RecordingUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSpecIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RecordingUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RecordingUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RecordingUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RecordingUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RecordingUpdate) check() error {
	if v, ok := _u.mutation.RecordingType(); ok {
		if err := recording.RecordingTypeValidator(v); err != nil {
			return &ValidationError{Name: "recording_type", err: fmt.Errorf(`ent: validator failed for field "Recording.recording_type": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Recording.project"`)
	}
	return nil
}

func (_u *RecordingUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(recording.Table, recording.Columns, sqlgraph.NewFieldSpec(recording.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(recording.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.RecordingType(); ok {
		_spec.SetField(recording.FieldRecordingType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(recording.FieldURL, field.TypeString, value)
	}
	if _u.mutation.URLCleared() {
		_spec.ClearField(recording.FieldURL, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(recording.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.SpecsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   recording.SpecsTable,
			Columns: []string{recording.SpecsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(spec.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSpecsIDs(); len(nodes) > 0 && !_u.mutation.SpecsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   recording.SpecsTable,
			Columns: []string{recording.SpecsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(spec.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SpecsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   recording.SpecsTable,
			Columns: []string{recording.SpecsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(spec.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{recording.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RecordingUpdateOne is the builder for updating a single Recording entity.
type RecordingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RecordingMutation
}

// SetName sets the "name" field.
func (_u *RecordingUpdateOne) SetName(v string) *RecordingUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *RecordingUpdateOne) SetNillableName(v *string) *RecordingUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetRecordingType sets the "recording_type" field.
func (_u *RecordingUpdateOne) SetRecordingType(v recording.RecordingType) *RecordingUpdateOne {
	_u.mutation.SetRecordingType(v)
	return _u
}

// SetNillableRecordingType sets the "recording_type" field if the given value is not nil.
func (_u *RecordingUpdateOne) SetNillableRecordingType(v *recording.RecordingType) *RecordingUpdateOne {
	if v != nil {
		_u.SetRecordingType(*v)
	}
	return _u
}

// SetURL sets the "url" field.
func (_u *RecordingUpdateOne) SetURL(v string) *RecordingUpdateOne {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *RecordingUpdateOne) SetNillableURL(v *string) *RecordingUpdateOne {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// ClearURL clears the value of the "url" field.
func (_u *RecordingUpdateOne) ClearURL() *RecordingUpdateOne {
	_u.mutation.ClearURL()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *RecordingUpdateOne) SetCreatedAt(v time.Time) *RecordingUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *RecordingUpdateOne) SetNillableCreatedAt(v *time.Time) *RecordingUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// AddSpecIDs adds the "specs" edge to the Spec entity by IDs.
func (_u *RecordingUpdateOne) AddSpecIDs(ids ...string) *RecordingUpdateOne {
	_u.mutation.AddSpecIDs(ids...)
	return _u
}

// AddSpecs adds the "specs" edges to the Spec entity.
func (_u *RecordingUpdateOne) AddSpecs(v ...*Spec) *RecordingUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSpecIDs(ids...)
}

// Mutation returns the RecordingMutation object of the builder.
func (_u *RecordingUpdateOne) Mutation() *RecordingMutation {
	return _u.mutation
}

// ClearSpecs clears all "specs" edges to the Spec entity.
func (_u *RecordingUpdateOne) ClearSpecs() *RecordingUpdateOne {
	_u.mutation.ClearSpecs()
	return _u
}

// RemoveSpecIDs removes the "specs" edge to Spec entities by IDs.
func (_u *RecordingUpdateOne) RemoveSpecIDs(ids ...string) *RecordingUpdateOne {
	_u.mutation.RemoveSpecIDs(ids...)
	return _u
}

// RemoveSpecs removes "specs" edges to Spec entities.
func (_u *RecordingUpdateOne) RemoveSpecs(v ...*Spec) *RecordingUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSpecIDs(ids...)
}

// Where appends a list predicates to the RecordingUpdate builder.
func (_u *RecordingUpdateOne) Where(ps ...predicate.Recording) *RecordingUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RecordingUpdateOne) Select(field string, fields ...string) *RecordingUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Recording entity.
func (_u *RecordingUpdateOne) Save(ctx context.Context) (*Recording, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RecordingUpdateOne) SaveX(ctx context.Context) *Recording {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RecordingUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RecordingUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RecordingUpdateOne) check() error {
	if v, ok := _u.mutation.RecordingType(); ok {
		if err := recording.RecordingTypeValidator(v); err != nil {
			return &ValidationError{Name: "recording_type", err: fmt.Errorf(`ent: validator failed for field "Recording.recording_type": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Recording.project"`)
	}
	return nil
}

func (_u *RecordingUpdateOne) sqlSave(ctx context.Context) (_node *Recording, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(recording.Table, recording.Columns, sqlgraph.NewFieldSpec(recording.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Recording.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, recording.FieldID)
		for _, f := range fields {
			if !recording.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != recording.FieldID {
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
		_spec.SetField(recording.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.RecordingType(); ok {
		_spec.SetField(recording.FieldRecordingType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(recording.FieldURL, field.TypeString, value)
	}
	if _u.mutation.URLCleared() {
		_spec.ClearField(recording.FieldURL, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(recording.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.SpecsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   recording.SpecsTable,
			Columns: []string{recording.SpecsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(spec.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSpecsIDs(); len(nodes) > 0 && !_u.mutation.SpecsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   recording.SpecsTable,
			Columns: []string{recording.SpecsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(spec.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SpecsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   recording.SpecsTable,
			Columns: []string{recording.SpecsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(spec.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Recording{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{recording.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
