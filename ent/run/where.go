// Code generated by ent, DO NOT EDIT.

package run

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/dappsmith/conductor/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Run {
	return predicate.Run(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Run {
	return predicate.Run(sql.FieldContainsFold(FieldID, id))
}

// SpecID applies equality check predicate on the "spec_id" field. It's identical to SpecIDEQ.
func SpecID(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldSpecID, v))
}

// SuiteRunID applies equality check predicate on the "suite_run_id" field. It's identical to SuiteRunIDEQ.
func SuiteRunID(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldSuiteRunID, v))
}

// SuiteIndex applies equality check predicate on the "suite_index" field. It's identical to SuiteIndexEQ.
func SuiteIndex(v int) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldSuiteIndex, v))
}

// IsAutoRetry applies equality check predicate on the "is_auto_retry" field. It's identical to IsAutoRetryEQ.
func IsAutoRetry(v bool) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldIsAutoRetry, v))
}

// Progress applies equality check predicate on the "progress" field. It's identical to ProgressEQ.
func Progress(v int) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldProgress, v))
}

// CancelRequested applies equality check predicate on the "cancel_requested" field. It's identical to CancelRequestedEQ.
func CancelRequested(v bool) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldCancelRequested, v))
}

// Logs applies equality check predicate on the "logs" field. It's identical to LogsEQ.
func Logs(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldLogs, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldErrorMessage, v))
}

// ContainerID applies equality check predicate on the "container_id" field. It's identical to ContainerIDEQ.
func ContainerID(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldContainerID, v))
}

// DurationMs applies equality check predicate on the "duration_ms" field. It's identical to DurationMsEQ.
func DurationMs(v int) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldDurationMs, v))
}

// PodID applies equality check predicate on the "pod_id" field. It's identical to PodIDEQ.
func PodID(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldPodID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldCreatedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldCompletedAt, v))
}

// SpecIDEQ applies the EQ predicate on the "spec_id" field.
func SpecIDEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldSpecID, v))
}

// SpecIDNEQ applies the NEQ predicate on the "spec_id" field.
func SpecIDNEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldSpecID, v))
}

// SpecIDIn applies the In predicate on the "spec_id" field.
func SpecIDIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldSpecID, vs...))
}

// SpecIDNotIn applies the NotIn predicate on the "spec_id" field.
func SpecIDNotIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldSpecID, vs...))
}

// SpecIDGT applies the GT predicate on the "spec_id" field.
func SpecIDGT(v string) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldSpecID, v))
}

// SpecIDGTE applies the GTE predicate on the "spec_id" field.
func SpecIDGTE(v string) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldSpecID, v))
}

// SpecIDLT applies the LT predicate on the "spec_id" field.
func SpecIDLT(v string) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldSpecID, v))
}

// SpecIDLTE applies the LTE predicate on the "spec_id" field.
func SpecIDLTE(v string) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldSpecID, v))
}

// SpecIDContains applies the Contains predicate on the "spec_id" field.
func SpecIDContains(v string) predicate.Run {
	return predicate.Run(sql.FieldContains(FieldSpecID, v))
}

// SpecIDHasPrefix applies the HasPrefix predicate on the "spec_id" field.
func SpecIDHasPrefix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasPrefix(FieldSpecID, v))
}

// SpecIDHasSuffix applies the HasSuffix predicate on the "spec_id" field.
func SpecIDHasSuffix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasSuffix(FieldSpecID, v))
}

// SpecIDEqualFold applies the EqualFold predicate on the "spec_id" field.
func SpecIDEqualFold(v string) predicate.Run {
	return predicate.Run(sql.FieldEqualFold(FieldSpecID, v))
}

// SpecIDContainsFold applies the ContainsFold predicate on the "spec_id" field.
func SpecIDContainsFold(v string) predicate.Run {
	return predicate.Run(sql.FieldContainsFold(FieldSpecID, v))
}

// SuiteRunIDEQ applies the EQ predicate on the "suite_run_id" field.
func SuiteRunIDEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldSuiteRunID, v))
}

// SuiteRunIDNEQ applies the NEQ predicate on the "suite_run_id" field.
func SuiteRunIDNEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldSuiteRunID, v))
}

// SuiteRunIDIn applies the In predicate on the "suite_run_id" field.
func SuiteRunIDIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldSuiteRunID, vs...))
}

// SuiteRunIDNotIn applies the NotIn predicate on the "suite_run_id" field.
func SuiteRunIDNotIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldSuiteRunID, vs...))
}

// SuiteRunIDGT applies the GT predicate on the "suite_run_id" field.
func SuiteRunIDGT(v string) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldSuiteRunID, v))
}

// SuiteRunIDGTE applies the GTE predicate on the "suite_run_id" field.
func SuiteRunIDGTE(v string) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldSuiteRunID, v))
}

// SuiteRunIDLT applies the LT predicate on the "suite_run_id" field.
func SuiteRunIDLT(v string) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldSuiteRunID, v))
}

// SuiteRunIDLTE applies the LTE predicate on the "suite_run_id" field.
func SuiteRunIDLTE(v string) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldSuiteRunID, v))
}

// SuiteRunIDContains applies the Contains predicate on the "suite_run_id" field.
func SuiteRunIDContains(v string) predicate.Run {
	return predicate.Run(sql.FieldContains(FieldSuiteRunID, v))
}

// SuiteRunIDHasPrefix applies the HasPrefix predicate on the "suite_run_id" field.
func SuiteRunIDHasPrefix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasPrefix(FieldSuiteRunID, v))
}

// SuiteRunIDHasSuffix applies the HasSuffix predicate on the "suite_run_id" field.
func SuiteRunIDHasSuffix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasSuffix(FieldSuiteRunID, v))
}

// SuiteRunIDIsNil applies the IsNil predicate on the "suite_run_id" field.
func SuiteRunIDIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldSuiteRunID))
}

// SuiteRunIDNotNil applies the NotNil predicate on the "suite_run_id" field.
func SuiteRunIDNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldSuiteRunID))
}

// SuiteRunIDEqualFold applies the EqualFold predicate on the "suite_run_id" field.
func SuiteRunIDEqualFold(v string) predicate.Run {
	return predicate.Run(sql.FieldEqualFold(FieldSuiteRunID, v))
}

// SuiteRunIDContainsFold applies the ContainsFold predicate on the "suite_run_id" field.
func SuiteRunIDContainsFold(v string) predicate.Run {
	return predicate.Run(sql.FieldContainsFold(FieldSuiteRunID, v))
}

// SuiteIndexEQ applies the EQ predicate on the "suite_index" field.
func SuiteIndexEQ(v int) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldSuiteIndex, v))
}

// SuiteIndexNEQ applies the NEQ predicate on the "suite_index" field.
func SuiteIndexNEQ(v int) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldSuiteIndex, v))
}

// SuiteIndexIn applies the In predicate on the "suite_index" field.
func SuiteIndexIn(vs ...int) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldSuiteIndex, vs...))
}

// SuiteIndexNotIn applies the NotIn predicate on the "suite_index" field.
func SuiteIndexNotIn(vs ...int) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldSuiteIndex, vs...))
}

// SuiteIndexGT applies the GT predicate on the "suite_index" field.
func SuiteIndexGT(v int) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldSuiteIndex, v))
}

// SuiteIndexGTE applies the GTE predicate on the "suite_index" field.
func SuiteIndexGTE(v int) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldSuiteIndex, v))
}

// SuiteIndexLT applies the LT predicate on the "suite_index" field.
func SuiteIndexLT(v int) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldSuiteIndex, v))
}

// SuiteIndexLTE applies the LTE predicate on the "suite_index" field.
func SuiteIndexLTE(v int) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldSuiteIndex, v))
}

// SuiteIndexIsNil applies the IsNil predicate on the "suite_index" field.
func SuiteIndexIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldSuiteIndex))
}

// SuiteIndexNotNil applies the NotNil predicate on the "suite_index" field.
func SuiteIndexNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldSuiteIndex))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldStatus, vs...))
}

// ExecutionModeEQ applies the EQ predicate on the "execution_mode" field.
func ExecutionModeEQ(v ExecutionMode) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldExecutionMode, v))
}

// ExecutionModeNEQ applies the NEQ predicate on the "execution_mode" field.
func ExecutionModeNEQ(v ExecutionMode) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldExecutionMode, v))
}

// ExecutionModeIn applies the In predicate on the "execution_mode" field.
func ExecutionModeIn(vs ...ExecutionMode) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldExecutionMode, vs...))
}

// ExecutionModeNotIn applies the NotIn predicate on the "execution_mode" field.
func ExecutionModeNotIn(vs ...ExecutionMode) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldExecutionMode, vs...))
}

// StreamingModeEQ applies the EQ predicate on the "streaming_mode" field.
func StreamingModeEQ(v StreamingMode) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldStreamingMode, v))
}

// StreamingModeNEQ applies the NEQ predicate on the "streaming_mode" field.
func StreamingModeNEQ(v StreamingMode) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldStreamingMode, v))
}

// StreamingModeIn applies the In predicate on the "streaming_mode" field.
func StreamingModeIn(vs ...StreamingMode) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldStreamingMode, vs...))
}

// StreamingModeNotIn applies the NotIn predicate on the "streaming_mode" field.
func StreamingModeNotIn(vs ...StreamingMode) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldStreamingMode, vs...))
}

// IsAutoRetryEQ applies the EQ predicate on the "is_auto_retry" field.
func IsAutoRetryEQ(v bool) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldIsAutoRetry, v))
}

// IsAutoRetryNEQ applies the NEQ predicate on the "is_auto_retry" field.
func IsAutoRetryNEQ(v bool) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldIsAutoRetry, v))
}

// ProgressEQ applies the EQ predicate on the "progress" field.
func ProgressEQ(v int) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldProgress, v))
}

// ProgressNEQ applies the NEQ predicate on the "progress" field.
func ProgressNEQ(v int) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldProgress, v))
}

// ProgressIn applies the In predicate on the "progress" field.
func ProgressIn(vs ...int) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldProgress, vs...))
}

// ProgressNotIn applies the NotIn predicate on the "progress" field.
func ProgressNotIn(vs ...int) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldProgress, vs...))
}

// ProgressGT applies the GT predicate on the "progress" field.
func ProgressGT(v int) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldProgress, v))
}

// ProgressGTE applies the GTE predicate on the "progress" field.
func ProgressGTE(v int) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldProgress, v))
}

// ProgressLT applies the LT predicate on the "progress" field.
func ProgressLT(v int) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldProgress, v))
}

// ProgressLTE applies the LTE predicate on the "progress" field.
func ProgressLTE(v int) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldProgress, v))
}

// CancelRequestedEQ applies the EQ predicate on the "cancel_requested" field.
func CancelRequestedEQ(v bool) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldCancelRequested, v))
}

// CancelRequestedNEQ applies the NEQ predicate on the "cancel_requested" field.
func CancelRequestedNEQ(v bool) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldCancelRequested, v))
}

// AgentDataIsNil applies the IsNil predicate on the "agent_data" field.
func AgentDataIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldAgentData))
}

// AgentDataNotNil applies the NotNil predicate on the "agent_data" field.
func AgentDataNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldAgentData))
}

// StreamStateIsNil applies the IsNil predicate on the "stream_state" field.
func StreamStateIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldStreamState))
}

// StreamStateNotNil applies the NotNil predicate on the "stream_state" field.
func StreamStateNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldStreamState))
}

// LogsEQ applies the EQ predicate on the "logs" field.
func LogsEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldLogs, v))
}

// LogsNEQ applies the NEQ predicate on the "logs" field.
func LogsNEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldLogs, v))
}

// LogsIn applies the In predicate on the "logs" field.
func LogsIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldLogs, vs...))
}

// LogsNotIn applies the NotIn predicate on the "logs" field.
func LogsNotIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldLogs, vs...))
}

// LogsGT applies the GT predicate on the "logs" field.
func LogsGT(v string) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldLogs, v))
}

// LogsGTE applies the GTE predicate on the "logs" field.
func LogsGTE(v string) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldLogs, v))
}

// LogsLT applies the LT predicate on the "logs" field.
func LogsLT(v string) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldLogs, v))
}

// LogsLTE applies the LTE predicate on the "logs" field.
func LogsLTE(v string) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldLogs, v))
}

// LogsContains applies the Contains predicate on the "logs" field.
func LogsContains(v string) predicate.Run {
	return predicate.Run(sql.FieldContains(FieldLogs, v))
}

// LogsHasPrefix applies the HasPrefix predicate on the "logs" field.
func LogsHasPrefix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasPrefix(FieldLogs, v))
}

// LogsHasSuffix applies the HasSuffix predicate on the "logs" field.
func LogsHasSuffix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasSuffix(FieldLogs, v))
}

// LogsIsNil applies the IsNil predicate on the "logs" field.
func LogsIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldLogs))
}

// LogsNotNil applies the NotNil predicate on the "logs" field.
func LogsNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldLogs))
}

// LogsEqualFold applies the EqualFold predicate on the "logs" field.
func LogsEqualFold(v string) predicate.Run {
	return predicate.Run(sql.FieldEqualFold(FieldLogs, v))
}

// LogsContainsFold applies the ContainsFold predicate on the "logs" field.
func LogsContainsFold(v string) predicate.Run {
	return predicate.Run(sql.FieldContainsFold(FieldLogs, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.Run {
	return predicate.Run(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.Run {
	return predicate.Run(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.Run {
	return predicate.Run(sql.FieldContainsFold(FieldErrorMessage, v))
}

// ContainerIDEQ applies the EQ predicate on the "container_id" field.
func ContainerIDEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldContainerID, v))
}

// ContainerIDNEQ applies the NEQ predicate on the "container_id" field.
func ContainerIDNEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldContainerID, v))
}

// ContainerIDIn applies the In predicate on the "container_id" field.
func ContainerIDIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldContainerID, vs...))
}

// ContainerIDNotIn applies the NotIn predicate on the "container_id" field.
func ContainerIDNotIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldContainerID, vs...))
}

// ContainerIDGT applies the GT predicate on the "container_id" field.
func ContainerIDGT(v string) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldContainerID, v))
}

// ContainerIDGTE applies the GTE predicate on the "container_id" field.
func ContainerIDGTE(v string) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldContainerID, v))
}

// ContainerIDLT applies the LT predicate on the "container_id" field.
func ContainerIDLT(v string) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldContainerID, v))
}

// ContainerIDLTE applies the LTE predicate on the "container_id" field.
func ContainerIDLTE(v string) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldContainerID, v))
}

// ContainerIDContains applies the Contains predicate on the "container_id" field.
func ContainerIDContains(v string) predicate.Run {
	return predicate.Run(sql.FieldContains(FieldContainerID, v))
}

// ContainerIDHasPrefix applies the HasPrefix predicate on the "container_id" field.
func ContainerIDHasPrefix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasPrefix(FieldContainerID, v))
}

// ContainerIDHasSuffix applies the HasSuffix predicate on the "container_id" field.
func ContainerIDHasSuffix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasSuffix(FieldContainerID, v))
}

// ContainerIDIsNil applies the IsNil predicate on the "container_id" field.
func ContainerIDIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldContainerID))
}

// ContainerIDNotNil applies the NotNil predicate on the "container_id" field.
func ContainerIDNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldContainerID))
}

// ContainerIDEqualFold applies the EqualFold predicate on the "container_id" field.
func ContainerIDEqualFold(v string) predicate.Run {
	return predicate.Run(sql.FieldEqualFold(FieldContainerID, v))
}

// ContainerIDContainsFold applies the ContainsFold predicate on the "container_id" field.
func ContainerIDContainsFold(v string) predicate.Run {
	return predicate.Run(sql.FieldContainsFold(FieldContainerID, v))
}

// DurationMsEQ applies the EQ predicate on the "duration_ms" field.
func DurationMsEQ(v int) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldDurationMs, v))
}

// DurationMsNEQ applies the NEQ predicate on the "duration_ms" field.
func DurationMsNEQ(v int) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldDurationMs, v))
}

// DurationMsIn applies the In predicate on the "duration_ms" field.
func DurationMsIn(vs ...int) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldDurationMs, vs...))
}

// DurationMsNotIn applies the NotIn predicate on the "duration_ms" field.
func DurationMsNotIn(vs ...int) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldDurationMs, vs...))
}

// DurationMsGT applies the GT predicate on the "duration_ms" field.
func DurationMsGT(v int) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldDurationMs, v))
}

// DurationMsGTE applies the GTE predicate on the "duration_ms" field.
func DurationMsGTE(v int) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldDurationMs, v))
}

// DurationMsLT applies the LT predicate on the "duration_ms" field.
func DurationMsLT(v int) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldDurationMs, v))
}

// DurationMsLTE applies the LTE predicate on the "duration_ms" field.
func DurationMsLTE(v int) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldDurationMs, v))
}

// DurationMsIsNil applies the IsNil predicate on the "duration_ms" field.
func DurationMsIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldDurationMs))
}

// DurationMsNotNil applies the NotNil predicate on the "duration_ms" field.
func DurationMsNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldDurationMs))
}

// PodIDEQ applies the EQ predicate on the "pod_id" field.
func PodIDEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldPodID, v))
}

// PodIDNEQ applies the NEQ predicate on the "pod_id" field.
func PodIDNEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldPodID, v))
}

// PodIDIn applies the In predicate on the "pod_id" field.
func PodIDIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldPodID, vs...))
}

// PodIDNotIn applies the NotIn predicate on the "pod_id" field.
func PodIDNotIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldPodID, vs...))
}

// PodIDGT applies the GT predicate on the "pod_id" field.
func PodIDGT(v string) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldPodID, v))
}

// PodIDGTE applies the GTE predicate on the "pod_id" field.
func PodIDGTE(v string) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldPodID, v))
}

// PodIDLT applies the LT predicate on the "pod_id" field.
func PodIDLT(v string) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldPodID, v))
}

// PodIDLTE applies the LTE predicate on the "pod_id" field.
func PodIDLTE(v string) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldPodID, v))
}

// PodIDContains applies the Contains predicate on the "pod_id" field.
func PodIDContains(v string) predicate.Run {
	return predicate.Run(sql.FieldContains(FieldPodID, v))
}

// PodIDHasPrefix applies the HasPrefix predicate on the "pod_id" field.
func PodIDHasPrefix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasPrefix(FieldPodID, v))
}

// PodIDHasSuffix applies the HasSuffix predicate on the "pod_id" field.
func PodIDHasSuffix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasSuffix(FieldPodID, v))
}

// PodIDIsNil applies the IsNil predicate on the "pod_id" field.
func PodIDIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldPodID))
}

// PodIDNotNil applies the NotNil predicate on the "pod_id" field.
func PodIDNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldPodID))
}

// PodIDEqualFold applies the EqualFold predicate on the "pod_id" field.
func PodIDEqualFold(v string) predicate.Run {
	return predicate.Run(sql.FieldEqualFold(FieldPodID, v))
}

// PodIDContainsFold applies the ContainsFold predicate on the "pod_id" field.
func PodIDContainsFold(v string) predicate.Run {
	return predicate.Run(sql.FieldContainsFold(FieldPodID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldCreatedAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldCompletedAt))
}

// HasSpec applies the HasEdge predicate on the "spec" edge.
func HasSpec() predicate.Run {
	return predicate.Run(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SpecTable, SpecColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSpecWith applies the HasEdge predicate on the "spec" edge with a given conditions (other predicates).
func HasSpecWith(preds ...predicate.Spec) predicate.Run {
	return predicate.Run(func(s *sql.Selector) {
		step := newSpecStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSuiteRun applies the HasEdge predicate on the "suite_run" edge.
func HasSuiteRun() predicate.Run {
	return predicate.Run(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SuiteRunTable, SuiteRunColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSuiteRunWith applies the HasEdge predicate on the "suite_run" edge with a given conditions (other predicates).
func HasSuiteRunWith(preds ...predicate.SuiteRun) predicate.Run {
	return predicate.Run(func(s *sql.Selector) {
		step := newSuiteRunStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasArtifacts applies the HasEdge predicate on the "artifacts" edge.
func HasArtifacts() predicate.Run {
	return predicate.Run(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ArtifactsTable, ArtifactsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasArtifactsWith applies the HasEdge predicate on the "artifacts" edge with a given conditions (other predicates).
func HasArtifactsWith(preds ...predicate.Artifact) predicate.Run {
	return predicate.Run(func(s *sql.Selector) {
		step := newArtifactsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Run) predicate.Run {
	return predicate.Run(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Run) predicate.Run {
	return predicate.Run(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Run) predicate.Run {
	return predicate.Run(sql.NotPredicates(p))
}
