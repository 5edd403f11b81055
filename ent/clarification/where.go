// Code generated by ent, DO NOT EDIT.

package clarification

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/dappsmith/conductor/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Clarification {
	return predicate.Clarification(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Clarification {
	return predicate.Clarification(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Clarification {
	return predicate.Clarification(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Clarification {
	return predicate.Clarification(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Clarification {
	return predicate.Clarification(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Clarification {
	return predicate.Clarification(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Clarification {
	return predicate.Clarification(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Clarification {
	return predicate.Clarification(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Clarification {
	return predicate.Clarification(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Clarification {
	return predicate.Clarification(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Clarification {
	return predicate.Clarification(sql.FieldContainsFold(FieldID, id))
}

// SpecID applies equality check predicate on the "spec_id" field. It's identical to SpecIDEQ.
func SpecID(v string) predicate.Clarification {
	return predicate.Clarification(sql.FieldEQ(FieldSpecID, v))
}

// Question applies equality check predicate on the "question" field. It's identical to QuestionEQ.
func Question(v string) predicate.Clarification {
	return predicate.Clarification(sql.FieldEQ(FieldQuestion, v))
}

// Answer applies equality check predicate on the "answer" field. It's identical to AnswerEQ.
func Answer(v string) predicate.Clarification {
	return predicate.Clarification(sql.FieldEQ(FieldAnswer, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Clarification {
	return predicate.Clarification(sql.FieldEQ(FieldCreatedAt, v))
}

// ResolvedAt applies equality check predicate on the "resolved_at" field. It's identical to ResolvedAtEQ.
func ResolvedAt(v time.Time) predicate.Clarification {
	return predicate.Clarification(sql.FieldEQ(FieldResolvedAt, v))
}

// SpecIDEQ applies the EQ predicate on the "spec_id" field.
func SpecIDEQ(v string) predicate.Clarification {
	return predicate.Clarification(sql.FieldEQ(FieldSpecID, v))
}

// SpecIDNEQ applies the NEQ predicate on the "spec_id" field.
func SpecIDNEQ(v string) predicate.Clarification {
	return predicate.Clarification(sql.FieldNEQ(FieldSpecID, v))
}

// SpecIDIn applies the In predicate on the "spec_id" field.
func SpecIDIn(vs ...string) predicate.Clarification {
	return predicate.Clarification(sql.FieldIn(FieldSpecID, vs...))
}

// SpecIDNotIn applies the NotIn predicate on the "spec_id" field.
func SpecIDNotIn(vs ...string) predicate.Clarification {
	return predicate.Clarification(sql.FieldNotIn(FieldSpecID, vs...))
}

// SpecIDGT applies the GT predicate on the "spec_id" field.
func SpecIDGT(v string) predicate.Clarification {
	return predicate.Clarification(sql.FieldGT(FieldSpecID, v))
}

// SpecIDGTE applies the GTE predicate on the "spec_id" field.
func SpecIDGTE(v string) predicate.Clarification {
	return predicate.Clarification(sql.FieldGTE(FieldSpecID, v))
}

// SpecIDLT applies the LT predicate on the "spec_id" field.
func SpecIDLT(v string) predicate.Clarification {
	return predicate.Clarification(sql.FieldLT(FieldSpecID, v))
}

// SpecIDLTE applies the LTE predicate on the "spec_id" field.
func SpecIDLTE(v string) predicate.Clarification {
	return predicate.Clarification(sql.FieldLTE(FieldSpecID, v))
}

// SpecIDContains applies the Contains predicate on the "spec_id" field.
func SpecIDContains(v string) predicate.Clarification {
	return predicate.Clarification(sql.FieldContains(FieldSpecID, v))
}

// SpecIDHasPrefix applies the HasPrefix predicate on the "spec_id" field.
func SpecIDHasPrefix(v string) predicate.Clarification {
	return predicate.Clarification(sql.FieldHasPrefix(FieldSpecID, v))
}

// SpecIDHasSuffix applies the HasSuffix predicate on the "spec_id" field.
func SpecIDHasSuffix(v string) predicate.Clarification {
	return predicate.Clarification(sql.FieldHasSuffix(FieldSpecID, v))
}

// SpecIDEqualFold applies the EqualFold predicate on the "spec_id" field.
func SpecIDEqualFold(v string) predicate.Clarification {
	return predicate.Clarification(sql.FieldEqualFold(FieldSpecID, v))
}

// SpecIDContainsFold applies the ContainsFold predicate on the "spec_id" field.
func SpecIDContainsFold(v string) predicate.Clarification {
	return predicate.Clarification(sql.FieldContainsFold(FieldSpecID, v))
}

// QuestionEQ applies the EQ predicate on the "question" field.
func QuestionEQ(v string) predicate.Clarification {
	return predicate.Clarification(sql.FieldEQ(FieldQuestion, v))
}

// QuestionNEQ applies the NEQ predicate on the "question" field.
func QuestionNEQ(v string) predicate.Clarification {
	return predicate.Clarification(sql.FieldNEQ(FieldQuestion, v))
}

// QuestionIn applies the In predicate on the "question" field.
func QuestionIn(vs ...string) predicate.Clarification {
	return predicate.Clarification(sql.FieldIn(FieldQuestion, vs...))
}

// QuestionNotIn applies the NotIn predicate on the "question" field.
func QuestionNotIn(vs ...string) predicate.Clarification {
	return predicate.Clarification(sql.FieldNotIn(FieldQuestion, vs...))
}

// QuestionGT applies the GT predicate on the "question" field.
func QuestionGT(v string) predicate.Clarification {
	return predicate.Clarification(sql.FieldGT(FieldQuestion, v))
}

// QuestionGTE applies the GTE predicate on the "question" field.
func QuestionGTE(v string) predicate.Clarification {
	return predicate.Clarification(sql.FieldGTE(FieldQuestion, v))
}

// QuestionLT applies the LT predicate on the "question" field.
func QuestionLT(v string) predicate.Clarification {
	return predicate.Clarification(sql.FieldLT(FieldQuestion, v))
}

// QuestionLTE applies the LTE predicate on the "question" field.
func QuestionLTE(v string) predicate.Clarification {
	return predicate.Clarification(sql.FieldLTE(FieldQuestion, v))
}

// QuestionContains applies the Contains predicate on the "question" field.
func QuestionContains(v string) predicate.Clarification {
	return predicate.Clarification(sql.FieldContains(FieldQuestion, v))
}

// QuestionHasPrefix applies the HasPrefix predicate on the "question" field.
func QuestionHasPrefix(v string) predicate.Clarification {
	return predicate.Clarification(sql.FieldHasPrefix(FieldQuestion, v))
}

// QuestionHasSuffix applies the HasSuffix predicate on the "question" field.
func QuestionHasSuffix(v string) predicate.Clarification {
	return predicate.Clarification(sql.FieldHasSuffix(FieldQuestion, v))
}

// QuestionEqualFold applies the EqualFold predicate on the "question" field.
func QuestionEqualFold(v string) predicate.Clarification {
	return predicate.Clarification(sql.FieldEqualFold(FieldQuestion, v))
}

// QuestionContainsFold applies the ContainsFold predicate on the "question" field.
func QuestionContainsFold(v string) predicate.Clarification {
	return predicate.Clarification(sql.FieldContainsFold(FieldQuestion, v))
}

// AnswerEQ applies the EQ predicate on the "answer" field.
func AnswerEQ(v string) predicate.Clarification {
	return predicate.Clarification(sql.FieldEQ(FieldAnswer, v))
}

// AnswerNEQ applies the NEQ predicate on the "answer" field.
func AnswerNEQ(v string) predicate.Clarification {
	return predicate.Clarification(sql.FieldNEQ(FieldAnswer, v))
}

// AnswerIn applies the In predicate on the "answer" field.
func AnswerIn(vs ...string) predicate.Clarification {
	return predicate.Clarification(sql.FieldIn(FieldAnswer, vs...))
}

// AnswerNotIn applies the NotIn predicate on the "answer" field.
func AnswerNotIn(vs ...string) predicate.Clarification {
	return predicate.Clarification(sql.FieldNotIn(FieldAnswer, vs...))
}

// AnswerGT applies the GT predicate on the "answer" field.
func AnswerGT(v string) predicate.Clarification {
	return predicate.Clarification(sql.FieldGT(FieldAnswer, v))
}

// AnswerGTE applies the GTE predicate on the "answer" field.
func AnswerGTE(v string) predicate.Clarification {
	return predicate.Clarification(sql.FieldGTE(FieldAnswer, v))
}

// AnswerLT applies the LT predicate on the "answer" field.
func AnswerLT(v string) predicate.Clarification {
	return predicate.Clarification(sql.FieldLT(FieldAnswer, v))
}

// AnswerLTE applies the LTE predicate on the "answer" field.
func AnswerLTE(v string) predicate.Clarification {
	return predicate.Clarification(sql.FieldLTE(FieldAnswer, v))
}

// AnswerContains applies the Contains predicate on the "answer" field.
func AnswerContains(v string) predicate.Clarification {
	return predicate.Clarification(sql.FieldContains(FieldAnswer, v))
}

// AnswerHasPrefix applies the HasPrefix predicate on the "answer" field.
func AnswerHasPrefix(v string) predicate.Clarification {
	return predicate.Clarification(sql.FieldHasPrefix(FieldAnswer, v))
}

// AnswerHasSuffix applies the HasSuffix predicate on the "answer" field.
func AnswerHasSuffix(v string) predicate.Clarification {
	return predicate.Clarification(sql.FieldHasSuffix(FieldAnswer, v))
}

// AnswerIsNil applies the IsNil predicate on the "answer" field.
func AnswerIsNil() predicate.Clarification {
	return predicate.Clarification(sql.FieldIsNull(FieldAnswer))
}

// AnswerNotNil applies the NotNil predicate on the "answer" field.
func AnswerNotNil() predicate.Clarification {
	return predicate.Clarification(sql.FieldNotNull(FieldAnswer))
}

// AnswerEqualFold applies the EqualFold predicate on the "answer" field.
func AnswerEqualFold(v string) predicate.Clarification {
	return predicate.Clarification(sql.FieldEqualFold(FieldAnswer, v))
}

// AnswerContainsFold applies the ContainsFold predicate on the "answer" field.
func AnswerContainsFold(v string) predicate.Clarification {
	return predicate.Clarification(sql.FieldContainsFold(FieldAnswer, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Clarification {
	return predicate.Clarification(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Clarification {
	return predicate.Clarification(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Clarification {
	return predicate.Clarification(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Clarification {
	return predicate.Clarification(sql.FieldNotIn(FieldStatus, vs...))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Clarification {
	return predicate.Clarification(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Clarification {
	return predicate.Clarification(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Clarification {
	return predicate.Clarification(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Clarification {
	return predicate.Clarification(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Clarification {
	return predicate.Clarification(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Clarification {
	return predicate.Clarification(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Clarification {
	return predicate.Clarification(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Clarification {
	return predicate.Clarification(sql.FieldLTE(FieldCreatedAt, v))
}

// ResolvedAtEQ applies the EQ predicate on the "resolved_at" field.
func ResolvedAtEQ(v time.Time) predicate.Clarification {
	return predicate.Clarification(sql.FieldEQ(FieldResolvedAt, v))
}

// ResolvedAtNEQ applies the NEQ predicate on the "resolved_at" field.
func ResolvedAtNEQ(v time.Time) predicate.Clarification {
	return predicate.Clarification(sql.FieldNEQ(FieldResolvedAt, v))
}

// ResolvedAtIn applies the In predicate on the "resolved_at" field.
func ResolvedAtIn(vs ...time.Time) predicate.Clarification {
	return predicate.Clarification(sql.FieldIn(FieldResolvedAt, vs...))
}

// ResolvedAtNotIn applies the NotIn predicate on the "resolved_at" field.
func ResolvedAtNotIn(vs ...time.Time) predicate.Clarification {
	return predicate.Clarification(sql.FieldNotIn(FieldResolvedAt, vs...))
}

// ResolvedAtGT applies the GT predicate on the "resolved_at" field.
func ResolvedAtGT(v time.Time) predicate.Clarification {
	return predicate.Clarification(sql.FieldGT(FieldResolvedAt, v))
}

// ResolvedAtGTE applies the GTE predicate on the "resolved_at" field.
func ResolvedAtGTE(v time.Time) predicate.Clarification {
	return predicate.Clarification(sql.FieldGTE(FieldResolvedAt, v))
}

// ResolvedAtLT applies the LT predicate on the "resolved_at" field.
func ResolvedAtLT(v time.Time) predicate.Clarification {
	return predicate.Clarification(sql.FieldLT(FieldResolvedAt, v))
}

// ResolvedAtLTE applies the LTE predicate on the "resolved_at" field.
func ResolvedAtLTE(v time.Time) predicate.Clarification {
	return predicate.Clarification(sql.FieldLTE(FieldResolvedAt, v))
}

// ResolvedAtIsNil applies the IsNil predicate on the "resolved_at" field.
func ResolvedAtIsNil() predicate.Clarification {
	return predicate.Clarification(sql.FieldIsNull(FieldResolvedAt))
}

// ResolvedAtNotNil applies the NotNil predicate on the "resolved_at" field.
func ResolvedAtNotNil() predicate.Clarification {
	return predicate.Clarification(sql.FieldNotNull(FieldResolvedAt))
}

// HasSpec applies the HasEdge predicate on the "spec" edge.
func HasSpec() predicate.Clarification {
	return predicate.Clarification(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SpecTable, SpecColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSpecWith applies the HasEdge predicate on the "spec" edge with a given conditions (other predicates).
func HasSpecWith(preds ...predicate.Spec) predicate.Clarification {
	return predicate.Clarification(func(s *sql.Selector) {
		step := newSpecStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Clarification) predicate.Clarification {
	return predicate.Clarification(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Clarification) predicate.Clarification {
	return predicate.Clarification(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Clarification) predicate.Clarification {
	return predicate.Clarification(sql.NotPredicates(p))
}
