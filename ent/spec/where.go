// Code generated by ent, DO NOT EDIT.

package spec

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/dappsmith/conductor/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Spec {
	return predicate.Spec(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Spec {
	return predicate.Spec(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Spec {
	return predicate.Spec(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Spec {
	return predicate.Spec(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Spec {
	return predicate.Spec(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Spec {
	return predicate.Spec(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Spec {
	return predicate.Spec(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Spec {
	return predicate.Spec(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Spec {
	return predicate.Spec(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Spec {
	return predicate.Spec(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Spec {
	return predicate.Spec(sql.FieldContainsFold(FieldID, id))
}

// RecordingID applies equality check predicate on the "recording_id" field. It's identical to RecordingIDEQ.
func RecordingID(v string) predicate.Spec {
	return predicate.Spec(sql.FieldEQ(FieldRecordingID, v))
}

// Code applies equality check predicate on the "code" field. It's identical to CodeEQ.
func Code(v string) predicate.Spec {
	return predicate.Spec(sql.FieldEQ(FieldCode, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int) predicate.Spec {
	return predicate.Spec(sql.FieldEQ(FieldVersion, v))
}

// Attempt applies equality check predicate on the "attempt" field. It's identical to AttemptEQ.
func Attempt(v int) predicate.Spec {
	return predicate.Spec(sql.FieldEQ(FieldAttempt, v))
}

// MaxAttempts applies equality check predicate on the "max_attempts" field. It's identical to MaxAttemptsEQ.
func MaxAttempts(v int) predicate.Spec {
	return predicate.Spec(sql.FieldEQ(FieldMaxAttempts, v))
}

// ParentSpecID applies equality check predicate on the "parent_spec_id" field. It's identical to ParentSpecIDEQ.
func ParentSpecID(v string) predicate.Spec {
	return predicate.Spec(sql.FieldEQ(FieldParentSpecID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Spec {
	return predicate.Spec(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Spec {
	return predicate.Spec(sql.FieldEQ(FieldUpdatedAt, v))
}

// RecordingIDEQ applies the EQ predicate on the "recording_id" field.
func RecordingIDEQ(v string) predicate.Spec {
	return predicate.Spec(sql.FieldEQ(FieldRecordingID, v))
}

// RecordingIDNEQ applies the NEQ predicate on the "recording_id" field.
func RecordingIDNEQ(v string) predicate.Spec {
	return predicate.Spec(sql.FieldNEQ(FieldRecordingID, v))
}

// RecordingIDIn applies the In predicate on the "recording_id" field.
func RecordingIDIn(vs ...string) predicate.Spec {
	return predicate.Spec(sql.FieldIn(FieldRecordingID, vs...))
}

// RecordingIDNotIn applies the NotIn predicate on the "recording_id" field.
func RecordingIDNotIn(vs ...string) predicate.Spec {
	return predicate.Spec(sql.FieldNotIn(FieldRecordingID, vs...))
}

// RecordingIDGT applies the GT predicate on the "recording_id" field.
func RecordingIDGT(v string) predicate.Spec {
	return predicate.Spec(sql.FieldGT(FieldRecordingID, v))
}

// RecordingIDGTE applies the GTE predicate on the "recording_id" field.
func RecordingIDGTE(v string) predicate.Spec {
	return predicate.Spec(sql.FieldGTE(FieldRecordingID, v))
}

// RecordingIDLT applies the LT predicate on the "recording_id" field.
func RecordingIDLT(v string) predicate.Spec {
	return predicate.Spec(sql.FieldLT(FieldRecordingID, v))
}

// RecordingIDLTE applies the LTE predicate on the "recording_id" field.
func RecordingIDLTE(v string) predicate.Spec {
	return predicate.Spec(sql.FieldLTE(FieldRecordingID, v))
}

// RecordingIDContains applies the Contains predicate on the "recording_id" field.
func RecordingIDContains(v string) predicate.Spec {
	return predicate.Spec(sql.FieldContains(FieldRecordingID, v))
}

// RecordingIDHasPrefix applies the HasPrefix predicate on the "recording_id" field.
func RecordingIDHasPrefix(v string) predicate.Spec {
	return predicate.Spec(sql.FieldHasPrefix(FieldRecordingID, v))
}

// RecordingIDHasSuffix applies the HasSuffix predicate on the "recording_id" field.
func RecordingIDHasSuffix(v string) predicate.Spec {
	return predicate.Spec(sql.FieldHasSuffix(FieldRecordingID, v))
}

// RecordingIDEqualFold applies the EqualFold predicate on the "recording_id" field.
func RecordingIDEqualFold(v string) predicate.Spec {
	return predicate.Spec(sql.FieldEqualFold(FieldRecordingID, v))
}

// RecordingIDContainsFold applies the ContainsFold predicate on the "recording_id" field.
func RecordingIDContainsFold(v string) predicate.Spec {
	return predicate.Spec(sql.FieldContainsFold(FieldRecordingID, v))
}

// CodeEQ applies the EQ predicate on the "code" field.
func CodeEQ(v string) predicate.Spec {
	return predicate.Spec(sql.FieldEQ(FieldCode, v))
}

// CodeNEQ applies the NEQ predicate on the "code" field.
func CodeNEQ(v string) predicate.Spec {
	return predicate.Spec(sql.FieldNEQ(FieldCode, v))
}

// CodeIn applies the In predicate on the "code" field.
func CodeIn(vs ...string) predicate.Spec {
	return predicate.Spec(sql.FieldIn(FieldCode, vs...))
}

// CodeNotIn applies the NotIn predicate on the "code" field.
func CodeNotIn(vs ...string) predicate.Spec {
	return predicate.Spec(sql.FieldNotIn(FieldCode, vs...))
}

// CodeGT applies the GT predicate on the "code" field.
func CodeGT(v string) predicate.Spec {
	return predicate.Spec(sql.FieldGT(FieldCode, v))
}

// CodeGTE applies the GTE predicate on the "code" field.
func CodeGTE(v string) predicate.Spec {
	return predicate.Spec(sql.FieldGTE(FieldCode, v))
}

// CodeLT applies the LT predicate on the "code" field.
func CodeLT(v string) predicate.Spec {
	return predicate.Spec(sql.FieldLT(FieldCode, v))
}

// CodeLTE applies the LTE predicate on the "code" field.
func CodeLTE(v string) predicate.Spec {
	return predicate.Spec(sql.FieldLTE(FieldCode, v))
}

// CodeContains applies the Contains predicate on the "code" field.
func CodeContains(v string) predicate.Spec {
	return predicate.Spec(sql.FieldContains(FieldCode, v))
}

// CodeHasPrefix applies the HasPrefix predicate on the "code" field.
func CodeHasPrefix(v string) predicate.Spec {
	return predicate.Spec(sql.FieldHasPrefix(FieldCode, v))
}

// CodeHasSuffix applies the HasSuffix predicate on the "code" field.
func CodeHasSuffix(v string) predicate.Spec {
	return predicate.Spec(sql.FieldHasSuffix(FieldCode, v))
}

// CodeEqualFold applies the EqualFold predicate on the "code" field.
func CodeEqualFold(v string) predicate.Spec {
	return predicate.Spec(sql.FieldEqualFold(FieldCode, v))
}

// CodeContainsFold applies the ContainsFold predicate on the "code" field.
func CodeContainsFold(v string) predicate.Spec {
	return predicate.Spec(sql.FieldContainsFold(FieldCode, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Spec {
	return predicate.Spec(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Spec {
	return predicate.Spec(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Spec {
	return predicate.Spec(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Spec {
	return predicate.Spec(sql.FieldNotIn(FieldStatus, vs...))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int) predicate.Spec {
	return predicate.Spec(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int) predicate.Spec {
	return predicate.Spec(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int) predicate.Spec {
	return predicate.Spec(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int) predicate.Spec {
	return predicate.Spec(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int) predicate.Spec {
	return predicate.Spec(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int) predicate.Spec {
	return predicate.Spec(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int) predicate.Spec {
	return predicate.Spec(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int) predicate.Spec {
	return predicate.Spec(sql.FieldLTE(FieldVersion, v))
}

// AttemptEQ applies the EQ predicate on the "attempt" field.
func AttemptEQ(v int) predicate.Spec {
	return predicate.Spec(sql.FieldEQ(FieldAttempt, v))
}

// AttemptNEQ applies the NEQ predicate on the "attempt" field.
func AttemptNEQ(v int) predicate.Spec {
	return predicate.Spec(sql.FieldNEQ(FieldAttempt, v))
}

// AttemptIn applies the In predicate on the "attempt" field.
func AttemptIn(vs ...int) predicate.Spec {
	return predicate.Spec(sql.FieldIn(FieldAttempt, vs...))
}

// AttemptNotIn applies the NotIn predicate on the "attempt" field.
func AttemptNotIn(vs ...int) predicate.Spec {
	return predicate.Spec(sql.FieldNotIn(FieldAttempt, vs...))
}

// AttemptGT applies the GT predicate on the "attempt" field.
func AttemptGT(v int) predicate.Spec {
	return predicate.Spec(sql.FieldGT(FieldAttempt, v))
}

// AttemptGTE applies the GTE predicate on the "attempt" field.
func AttemptGTE(v int) predicate.Spec {
	return predicate.Spec(sql.FieldGTE(FieldAttempt, v))
}

// AttemptLT applies the LT predicate on the "attempt" field.
func AttemptLT(v int) predicate.Spec {
	return predicate.Spec(sql.FieldLT(FieldAttempt, v))
}

// AttemptLTE applies the LTE predicate on the "attempt" field.
func AttemptLTE(v int) predicate.Spec {
	return predicate.Spec(sql.FieldLTE(FieldAttempt, v))
}

// MaxAttemptsEQ applies the EQ predicate on the "max_attempts" field.
func MaxAttemptsEQ(v int) predicate.Spec {
	return predicate.Spec(sql.FieldEQ(FieldMaxAttempts, v))
}

// MaxAttemptsNEQ applies the NEQ predicate on the "max_attempts" field.
func MaxAttemptsNEQ(v int) predicate.Spec {
	return predicate.Spec(sql.FieldNEQ(FieldMaxAttempts, v))
}

// MaxAttemptsIn applies the In predicate on the "max_attempts" field.
func MaxAttemptsIn(vs ...int) predicate.Spec {
	return predicate.Spec(sql.FieldIn(FieldMaxAttempts, vs...))
}

// MaxAttemptsNotIn applies the NotIn predicate on the "max_attempts" field.
func MaxAttemptsNotIn(vs ...int) predicate.Spec {
	return predicate.Spec(sql.FieldNotIn(FieldMaxAttempts, vs...))
}

// MaxAttemptsGT applies the GT predicate on the "max_attempts" field.
func MaxAttemptsGT(v int) predicate.Spec {
	return predicate.Spec(sql.FieldGT(FieldMaxAttempts, v))
}

// MaxAttemptsGTE applies the GTE predicate on the "max_attempts" field.
func MaxAttemptsGTE(v int) predicate.Spec {
	return predicate.Spec(sql.FieldGTE(FieldMaxAttempts, v))
}

// MaxAttemptsLT applies the LT predicate on the "max_attempts" field.
func MaxAttemptsLT(v int) predicate.Spec {
	return predicate.Spec(sql.FieldLT(FieldMaxAttempts, v))
}

// MaxAttemptsLTE applies the LTE predicate on the "max_attempts" field.
func MaxAttemptsLTE(v int) predicate.Spec {
	return predicate.Spec(sql.FieldLTE(FieldMaxAttempts, v))
}

// ParentSpecIDEQ applies the EQ predicate on the "parent_spec_id" field.
func ParentSpecIDEQ(v string) predicate.Spec {
	return predicate.Spec(sql.FieldEQ(FieldParentSpecID, v))
}

// ParentSpecIDNEQ applies the NEQ predicate on the "parent_spec_id" field.
func ParentSpecIDNEQ(v string) predicate.Spec {
	return predicate.Spec(sql.FieldNEQ(FieldParentSpecID, v))
}

// ParentSpecIDIn applies the In predicate on the "parent_spec_id" field.
func ParentSpecIDIn(vs ...string) predicate.Spec {
	return predicate.Spec(sql.FieldIn(FieldParentSpecID, vs...))
}

// ParentSpecIDNotIn applies the NotIn predicate on the "parent_spec_id" field.
func ParentSpecIDNotIn(vs ...string) predicate.Spec {
	return predicate.Spec(sql.FieldNotIn(FieldParentSpecID, vs...))
}

// ParentSpecIDGT applies the GT predicate on the "parent_spec_id" field.
func ParentSpecIDGT(v string) predicate.Spec {
	return predicate.Spec(sql.FieldGT(FieldParentSpecID, v))
}

// ParentSpecIDGTE applies the GTE predicate on the "parent_spec_id" field.
func ParentSpecIDGTE(v string) predicate.Spec {
	return predicate.Spec(sql.FieldGTE(FieldParentSpecID, v))
}

// ParentSpecIDLT applies the LT predicate on the "parent_spec_id" field.
func ParentSpecIDLT(v string) predicate.Spec {
	return predicate.Spec(sql.FieldLT(FieldParentSpecID, v))
}

// ParentSpecIDLTE applies the LTE predicate on the "parent_spec_id" field.
func ParentSpecIDLTE(v string) predicate.Spec {
	return predicate.Spec(sql.FieldLTE(FieldParentSpecID, v))
}

// ParentSpecIDContains applies the Contains predicate on the "parent_spec_id" field.
func ParentSpecIDContains(v string) predicate.Spec {
	return predicate.Spec(sql.FieldContains(FieldParentSpecID, v))
}

// ParentSpecIDHasPrefix applies the HasPrefix predicate on the "parent_spec_id" field.
func ParentSpecIDHasPrefix(v string) predicate.Spec {
	return predicate.Spec(sql.FieldHasPrefix(FieldParentSpecID, v))
}

// ParentSpecIDHasSuffix applies the HasSuffix predicate on the "parent_spec_id" field.
func ParentSpecIDHasSuffix(v string) predicate.Spec {
	return predicate.Spec(sql.FieldHasSuffix(FieldParentSpecID, v))
}

// ParentSpecIDIsNil applies the IsNil predicate on the "parent_spec_id" field.
func ParentSpecIDIsNil() predicate.Spec {
	return predicate.Spec(sql.FieldIsNull(FieldParentSpecID))
}

// ParentSpecIDNotNil applies the NotNil predicate on the "parent_spec_id" field.
func ParentSpecIDNotNil() predicate.Spec {
	return predicate.Spec(sql.FieldNotNull(FieldParentSpecID))
}

// ParentSpecIDEqualFold applies the EqualFold predicate on the "parent_spec_id" field.
func ParentSpecIDEqualFold(v string) predicate.Spec {
	return predicate.Spec(sql.FieldEqualFold(FieldParentSpecID, v))
}

// ParentSpecIDContainsFold applies the ContainsFold predicate on the "parent_spec_id" field.
func ParentSpecIDContainsFold(v string) predicate.Spec {
	return predicate.Spec(sql.FieldContainsFold(FieldParentSpecID, v))
}

// FailureContextIsNil applies the IsNil predicate on the "failure_context" field.
func FailureContextIsNil() predicate.Spec {
	return predicate.Spec(sql.FieldIsNull(FieldFailureContext))
}

// FailureContextNotNil applies the NotNil predicate on the "failure_context" field.
func FailureContextNotNil() predicate.Spec {
	return predicate.Spec(sql.FieldNotNull(FieldFailureContext))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Spec {
	return predicate.Spec(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Spec {
	return predicate.Spec(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Spec {
	return predicate.Spec(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Spec {
	return predicate.Spec(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Spec {
	return predicate.Spec(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Spec {
	return predicate.Spec(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Spec {
	return predicate.Spec(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Spec {
	return predicate.Spec(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Spec {
	return predicate.Spec(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Spec {
	return predicate.Spec(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Spec {
	return predicate.Spec(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Spec {
	return predicate.Spec(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Spec {
	return predicate.Spec(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Spec {
	return predicate.Spec(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Spec {
	return predicate.Spec(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Spec {
	return predicate.Spec(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasRecording applies the HasEdge predicate on the "recording" edge.
func HasRecording() predicate.Spec {
	return predicate.Spec(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RecordingTable, RecordingColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRecordingWith applies the HasEdge predicate on the "recording" edge with a given conditions (other predicates).
func HasRecordingWith(preds ...predicate.Recording) predicate.Spec {
	return predicate.Spec(func(s *sql.Selector) {
		step := newRecordingStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasRuns applies the HasEdge predicate on the "runs" edge.
func HasRuns() predicate.Spec {
	return predicate.Spec(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, RunsTable, RunsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRunsWith applies the HasEdge predicate on the "runs" edge with a given conditions (other predicates).
func HasRunsWith(preds ...predicate.Run) predicate.Spec {
	return predicate.Spec(func(s *sql.Selector) {
		step := newRunsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasClarifications applies the HasEdge predicate on the "clarifications" edge.
func HasClarifications() predicate.Spec {
	return predicate.Spec(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ClarificationsTable, ClarificationsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasClarificationsWith applies the HasEdge predicate on the "clarifications" edge with a given conditions (other predicates).
func HasClarificationsWith(preds ...predicate.Clarification) predicate.Spec {
	return predicate.Spec(func(s *sql.Selector) {
		step := newClarificationsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Spec) predicate.Spec {
	return predicate.Spec(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Spec) predicate.Spec {
	return predicate.Spec(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Spec) predicate.Spec {
	return predicate.Spec(sql.NotPredicates(p))
}
