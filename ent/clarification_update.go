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
)

// ClarificationUpdate is the builder for updating Clarification entities.
type ClarificationUpdate struct {
	config
	hooks    []Hook
	mutation *ClarificationMutation
}

// Where appends a list predicates to the ClarificationUpdate builder.
func (_u *ClarificationUpdate) Where(ps ...predicate.Clarification) *ClarificationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetQuestion sets the "question" field.
func (_u *ClarificationUpdate) SetQuestion(v string) *ClarificationUpdate {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *ClarificationUpdate) SetNillableQuestion(v *string) *ClarificationUpdate {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *ClarificationUpdate) SetAnswer(v string) *ClarificationUpdate {
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *ClarificationUpdate) SetNillableAnswer(v *string) *ClarificationUpdate {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// ClearAnswer clears the value of the "answer" field.
func (_u *ClarificationUpdate) ClearAnswer() *ClarificationUpdate {
	_u.mutation.ClearAnswer()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ClarificationUpdate) SetStatus(v clarification.Status) *ClarificationUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ClarificationUpdate) SetNillableStatus(v *clarification.Status) *ClarificationUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ClarificationUpdate) SetCreatedAt(v time.Time) *ClarificationUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ClarificationUpdate) SetNillableCreatedAt(v *time.Time) *ClarificationUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *ClarificationUpdate) SetResolvedAt(v time.Time) *ClarificationUpdate {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *ClarificationUpdate) SetNillableResolvedAt(v *time.Time) *ClarificationUpdate {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *ClarificationUpdate) ClearResolvedAt() *ClarificationUpdate {
	_u.mutation.ClearResolvedAt()
	return _u
}

// Mutation returns the ClarificationMutation object of the builder.
func (_u *ClarificationUpdate) Mutation() *ClarificationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ClarificationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClarificationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ClarificationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClarificationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ClarificationUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := clarification.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Clarification.status": %w`, err)}
		}
	}
	if _u.mutation.SpecCleared() && len(_u.mutation.SpecIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Clarification.spec"`)
	}
	return nil
}

func (_u *ClarificationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(clarification.Table, clarification.Columns, sqlgraph.NewFieldSpec(clarification.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(clarification.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(clarification.FieldAnswer, field.TypeString, value)
	}
	if _u.mutation.AnswerCleared() {
		_spec.ClearField(clarification.FieldAnswer, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(clarification.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(clarification.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(clarification.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(clarification.FieldResolvedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{clarification.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ClarificationUpdateOne is the builder for updating a single Clarification entity.
type ClarificationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ClarificationMutation
}

// SetQuestion sets the "question" field.
func (_u *ClarificationUpdateOne) SetQuestion(v string) *ClarificationUpdateOne {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *ClarificationUpdateOne) SetNillableQuestion(v *string) *ClarificationUpdateOne {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *ClarificationUpdateOne) SetAnswer(v string) *ClarificationUpdateOne {
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *ClarificationUpdateOne) SetNillableAnswer(v *string) *ClarificationUpdateOne {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// ClearAnswer clears the value of the "answer" field.
func (_u *ClarificationUpdateOne) ClearAnswer() *ClarificationUpdateOne {
	_u.mutation.ClearAnswer()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ClarificationUpdateOne) SetStatus(v clarification.Status) *ClarificationUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ClarificationUpdateOne) SetNillableStatus(v *clarification.Status) *ClarificationUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ClarificationUpdateOne) SetCreatedAt(v time.Time) *ClarificationUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ClarificationUpdateOne) SetNillableCreatedAt(v *time.Time) *ClarificationUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *ClarificationUpdateOne) SetResolvedAt(v time.Time) *ClarificationUpdateOne {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *ClarificationUpdateOne) SetNillableResolvedAt(v *time.Time) *ClarificationUpdateOne {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *ClarificationUpdateOne) ClearResolvedAt() *ClarificationUpdateOne {
	_u.mutation.ClearResolvedAt()
	return _u
}

// Mutation returns the ClarificationMutation object of the builder.
func (_u *ClarificationUpdateOne) Mutation() *ClarificationMutation {
	return _u.mutation
}

// Where appends a list predicates to the ClarificationUpdate builder.
func (_u *ClarificationUpdateOne) Where(ps ...predicate.Clarification) *ClarificationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ClarificationUpdateOne) Select(field string, fields ...string) *ClarificationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Clarification entity.
func (_u *ClarificationUpdateOne) Save(ctx context.Context) (*Clarification, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClarificationUpdateOne) SaveX(ctx context.Context) *Clarification {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ClarificationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClarificationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ClarificationUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := clarification.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Clarification.status": %w`, err)}
		}
	}
	if _u.mutation.SpecCleared() && len(_u.mutation.SpecIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Clarification.spec"`)
	}
	return nil
}

func (_u *ClarificationUpdateOne) sqlSave(ctx context.Context) (_node *Clarification, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(clarification.Table, clarification.Columns, sqlgraph.NewFieldSpec(clarification.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Clarification.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, clarification.FieldID)
		for _, f := range fields {
			if !clarification.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != clarification.FieldID {
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
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(clarification.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(clarification.FieldAnswer, field.TypeString, value)
	}
	if _u.mutation.AnswerCleared() {
		_spec.ClearField(clarification.FieldAnswer, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(clarification.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(clarification.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(clarification.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(clarification.FieldResolvedAt, field.TypeTime)
	}
	_node = &Clarification{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{clarification.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
