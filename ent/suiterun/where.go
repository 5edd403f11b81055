// Code generated by ent, DO NOT EDIT.

package suiterun

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/dappsmith/conductor/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.SuiteRun {
	return predicate.SuiteRun(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.SuiteRun {
	return predicate.SuiteRun(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.SuiteRun {
	return predicate.SuiteRun(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.SuiteRun {
	return predicate.SuiteRun(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.SuiteRun {
	return predicate.SuiteRun(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.SuiteRun {
	return predicate.SuiteRun(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.SuiteRun {
	return predicate.SuiteRun(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.SuiteRun {
	return predicate.SuiteRun(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.SuiteRun {
	return predicate.SuiteRun(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.SuiteRun {
	return predicate.SuiteRun(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.SuiteRun {
	return predicate.SuiteRun(sql.FieldContainsFold(FieldID, id))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v string) predicate.SuiteRun {
	return predicate.SuiteRun(sql.FieldEQ(FieldProjectID, v))
}

// TotalTests applies equality check predicate on the "total_tests" field. It's identical to TotalTestsEQ.
func TotalTests(v int) predicate.SuiteRun {
	return predicate.SuiteRun(sql.FieldEQ(FieldTotalTests, v))
}

// PassedTests applies equality check predicate on the "passed_tests" field. It's identical to PassedTestsEQ.
func PassedTests(v int) predicate.SuiteRun {
	return predicate.SuiteRun(sql.FieldEQ(FieldPassedTests, v))
}

// FailedTests applies equality check predicate on the "failed_tests" field. It's identical to FailedTestsEQ.
func FailedTests(v int) predicate.SuiteRun {
	return predicate.SuiteRun(sql.FieldEQ(FieldFailedTests, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.SuiteRun {
	return predicate.SuiteRun(sql.FieldEQ(FieldErrorMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SuiteRun {
	return predicate.SuiteRun(sql.FieldEQ(FieldCreatedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.SuiteRun {
	return predicate.SuiteRun(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.SuiteRun {
	return predicate.SuiteRun(sql.FieldEQ(FieldCompletedAt, v))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v string) predicate.SuiteRun {
	return predicate.SuiteRun(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v string) predicate.SuiteRun {
	return predicate.SuiteRun(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...string) predicate.SuiteRun {
	return predicate.SuiteRun(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...string) predicate.SuiteRun {
	return predicate.SuiteRun(sql.FieldNotIn(FieldProjectID, vs...))
}

// ProjectIDGT applies the GT predicate on the "project_id" field.
func ProjectIDGT(v string) predicate.SuiteRun {
	return predicate.SuiteRun(sql.FieldGT(FieldProjectID, v))
}

// ProjectIDGTE applies the GTE predicate on the "project_id" field.
func ProjectIDGTE(v string) predicate.SuiteRun {
	return predicate.SuiteRun(sql.FieldGTE(FieldProjectID, v))
}

// ProjectIDLT applies the LT predicate on the "project_id" field.
func ProjectIDLT(v string) predicate.SuiteRun {
	return predicate.SuiteRun(sql.FieldLT(FieldProjectID, v))
}

// ProjectIDLTE applies the LTE predicate on the "project_id" field.
func ProjectIDLTE(v string) predicate.SuiteRun {
	return predicate.SuiteRun(sql.FieldLTE(FieldProjectID, v))
}

// ProjectIDContains applies the Contains predicate on the "project_id" field.
func ProjectIDContains(v string) predicate.SuiteRun {
	return predicate.SuiteRun(sql.FieldContains(FieldProjectID, v))
}

// ProjectIDHasPrefix applies the HasPrefix predicate on the "project_id" field.
func ProjectIDHasPrefix(v string) predicate.SuiteRun {
	return predicate.SuiteRun(sql.FieldHasPrefix(FieldProjectID, v))
}

// ProjectIDHasSuffix applies the HasSuffix predicate on the "project_id" field.
func ProjectIDHasSuffix(v string) predicate.SuiteRun {
	return predicate.SuiteRun(sql.FieldHasSuffix(FieldProjectID, v))
}

// ProjectIDEqualFold applies the EqualFold predicate on the "project_id" field.
func ProjectIDEqualFold(v string) predicate.SuiteRun {
	return predicate.SuiteRun(sql.FieldEqualFold(FieldProjectID, v))
}

// ProjectIDContainsFold applies the ContainsFold predicate on the "project_id" field.
func ProjectIDContainsFold(v string) predicate.SuiteRun {
	return predicate.SuiteRun(sql.FieldContainsFold(FieldProjectID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.SuiteRun {
	return predicate.SuiteRun(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.SuiteRun {
	return predicate.SuiteRun(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.SuiteRun {
	return predicate.SuiteRun(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.SuiteRun {
	return predicate.SuiteRun(sql.FieldNotIn(FieldStatus, vs...))
}

// TotalTestsEQ applies the EQ predicate on the "total_tests" field.
func TotalTestsEQ(v int) predicate.SuiteRun {
	return predicate.SuiteRun(sql.FieldEQ(FieldTotalTests, v))
}

// TotalTestsNEQ applies the NEQ predicate on the "total_tests" field.
func TotalTestsNEQ(v int) predicate.SuiteRun {
	return predicate.SuiteRun(sql.FieldNEQ(FieldTotalTests, v))
}

// TotalTestsIn applies the In predicate on the "total_tests" field.
func TotalTestsIn(vs ...int) predicate.SuiteRun {
	return predicate.SuiteRun(sql.FieldIn(FieldTotalTests, vs...))
}

// TotalTestsNotIn applies the NotIn predicate on the "total_tests" field.
func TotalTestsNotIn(vs ...int) predicate.SuiteRun {
	return predicate.SuiteRun(sql.FieldNotIn(FieldTotalTests, vs...))
}

// TotalTestsGT applies the GT predicate on the "total_tests" field.
func TotalTestsGT(v int) predicate.SuiteRun {
	return predicate.SuiteRun(sql.FieldGT(FieldTotalTests, v))
}

// TotalTestsGTE applies the GTE predicate on the "total_tests" field.
func TotalTestsGTE(v int) predicate.SuiteRun {
	return predicate.SuiteRun(sql.FieldGTE(FieldTotalTests, v))
}

// TotalTestsLT applies the LT predicate on the "total_tests" field.
func TotalTestsLT(v int) predicate.SuiteRun {
	return predicate.SuiteRun(sql.FieldLT(FieldTotalTests, v))
}

// TotalTestsLTE applies the LTE predicate on the "total_tests" field.
func TotalTestsLTE(v int) predicate.SuiteRun {
	return predicate.SuiteRun(sql.FieldLTE(FieldTotalTests, v))
}

// PassedTestsEQ applies the EQ predicate on the "passed_tests" field.
func PassedTestsEQ(v int) predicate.SuiteRun {
	return predicate.SuiteRun(sql.FieldEQ(FieldPassedTests, v))
}

// PassedTestsNEQ applies the NEQ predicate on the "passed_tests" field.
func PassedTestsNEQ(v int) predicate.SuiteRun {
	return predicate.SuiteRun(sql.FieldNEQ(FieldPassedTests, v))
}

// PassedTestsIn applies the In predicate on the "passed_tests" field.
func PassedTestsIn(vs ...int) predicate.SuiteRun {
	return predicate.SuiteRun(sql.FieldIn(FieldPassedTests, vs...))
}

// PassedTestsNotIn applies the NotIn predicate on the "passed_tests" field.
func PassedTestsNotIn(vs ...int) predicate.SuiteRun {
	return predicate.SuiteRun(sql.FieldNotIn(FieldPassedTests, vs...))
}

// PassedTestsGT applies the GT predicate on the "passed_tests" field.
func PassedTestsGT(v int) predicate.SuiteRun {
	return predicate.SuiteRun(sql.FieldGT(FieldPassedTests, v))
}

// PassedTestsGTE applies the GTE predicate on the "passed_tests" field.
func PassedTestsGTE(v int) predicate.SuiteRun {
	return predicate.SuiteRun(sql.FieldGTE(FieldPassedTests, v))
}

// PassedTestsLT applies the LT predicate on the "passed_tests" field.
func PassedTestsLT(v int) predicate.SuiteRun {
	return predicate.SuiteRun(sql.FieldLT(FieldPassedTests, v))
}

// PassedTestsLTE applies the LTE predicate on the "passed_tests" field.
func PassedTestsLTE(v int) predicate.SuiteRun {
	return predicate.SuiteRun(sql.FieldLTE(FieldPassedTests, v))
}

// FailedTestsEQ applies the EQ predicate on the "failed_tests" field.
func FailedTestsEQ(v int) predicate.SuiteRun {
	return predicate.SuiteRun(sql.FieldEQ(FieldFailedTests, v))
}

// FailedTestsNEQ applies the NEQ predicate on the "failed_tests" field.
func FailedTestsNEQ(v int) predicate.SuiteRun {
	return predicate.SuiteRun(sql.FieldNEQ(FieldFailedTests, v))
}

// FailedTestsIn applies the In predicate on the "failed_tests" field.
func FailedTestsIn(vs ...int) predicate.SuiteRun {
	return predicate.SuiteRun(sql.FieldIn(FieldFailedTests, vs...))
}

// FailedTestsNotIn applies the NotIn predicate on the "failed_tests" field.
func FailedTestsNotIn(vs ...int) predicate.SuiteRun {
	return predicate.SuiteRun(sql.FieldNotIn(FieldFailedTests, vs...))
}

// FailedTestsGT applies the GT predicate on the "failed_tests" field.
func FailedTestsGT(v int) predicate.SuiteRun {
	return predicate.SuiteRun(sql.FieldGT(FieldFailedTests, v))
}

// FailedTestsGTE applies the GTE predicate on the "failed_tests" field.
func FailedTestsGTE(v int) predicate.SuiteRun {
	return predicate.SuiteRun(sql.FieldGTE(FieldFailedTests, v))
}

// FailedTestsLT applies the LT predicate on the "failed_tests" field.
func FailedTestsLT(v int) predicate.SuiteRun {
	return predicate.SuiteRun(sql.FieldLT(FieldFailedTests, v))
}

// FailedTestsLTE applies the LTE predicate on the "failed_tests" field.
func FailedTestsLTE(v int) predicate.SuiteRun {
	return predicate.SuiteRun(sql.FieldLTE(FieldFailedTests, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.SuiteRun {
	return predicate.SuiteRun(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.SuiteRun {
	return predicate.SuiteRun(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.SuiteRun {
	return predicate.SuiteRun(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.SuiteRun {
	return predicate.SuiteRun(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.SuiteRun {
	return predicate.SuiteRun(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.SuiteRun {
	return predicate.SuiteRun(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.SuiteRun {
	return predicate.SuiteRun(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.SuiteRun {
	return predicate.SuiteRun(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.SuiteRun {
	return predicate.SuiteRun(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.SuiteRun {
	return predicate.SuiteRun(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.SuiteRun {
	return predicate.SuiteRun(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.SuiteRun {
	return predicate.SuiteRun(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.SuiteRun {
	return predicate.SuiteRun(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.SuiteRun {
	return predicate.SuiteRun(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.SuiteRun {
	return predicate.SuiteRun(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SuiteRun {
	return predicate.SuiteRun(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SuiteRun {
	return predicate.SuiteRun(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SuiteRun {
	return predicate.SuiteRun(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SuiteRun {
	return predicate.SuiteRun(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SuiteRun {
	return predicate.SuiteRun(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SuiteRun {
	return predicate.SuiteRun(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SuiteRun {
	return predicate.SuiteRun(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SuiteRun {
	return predicate.SuiteRun(sql.FieldLTE(FieldCreatedAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.SuiteRun {
	return predicate.SuiteRun(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.SuiteRun {
	return predicate.SuiteRun(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.SuiteRun {
	return predicate.SuiteRun(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.SuiteRun {
	return predicate.SuiteRun(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.SuiteRun {
	return predicate.SuiteRun(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.SuiteRun {
	return predicate.SuiteRun(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.SuiteRun {
	return predicate.SuiteRun(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.SuiteRun {
	return predicate.SuiteRun(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.SuiteRun {
	return predicate.SuiteRun(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.SuiteRun {
	return predicate.SuiteRun(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.SuiteRun {
	return predicate.SuiteRun(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.SuiteRun {
	return predicate.SuiteRun(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.SuiteRun {
	return predicate.SuiteRun(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.SuiteRun {
	return predicate.SuiteRun(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.SuiteRun {
	return predicate.SuiteRun(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.SuiteRun {
	return predicate.SuiteRun(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.SuiteRun {
	return predicate.SuiteRun(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.SuiteRun {
	return predicate.SuiteRun(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.SuiteRun {
	return predicate.SuiteRun(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.SuiteRun {
	return predicate.SuiteRun(sql.FieldNotNull(FieldCompletedAt))
}

// HasProject applies the HasEdge predicate on the "project" edge.
func HasProject() predicate.SuiteRun {
	return predicate.SuiteRun(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProjectWith applies the HasEdge predicate on the "project" edge with a given conditions (other predicates).
func HasProjectWith(preds ...predicate.Project) predicate.SuiteRun {
	return predicate.SuiteRun(func(s *sql.Selector) {
		step := newProjectStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasRuns applies the HasEdge predicate on the "runs" edge.
func HasRuns() predicate.SuiteRun {
	return predicate.SuiteRun(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, RunsTable, RunsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRunsWith applies the HasEdge predicate on the "runs" edge with a given conditions (other predicates).
func HasRunsWith(preds ...predicate.Run) predicate.SuiteRun {
	return predicate.SuiteRun(func(s *sql.Selector) {
		step := newRunsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SuiteRun) predicate.SuiteRun {
	return predicate.SuiteRun(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SuiteRun) predicate.SuiteRun {
	return predicate.SuiteRun(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SuiteRun) predicate.SuiteRun {
	return predicate.SuiteRun(sql.NotPredicates(p))
}
