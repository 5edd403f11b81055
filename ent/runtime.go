// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/dappsmith/conductor/ent/artifact"
	"github.com/dappsmith/conductor/ent/clarification"
	"github.com/dappsmith/conductor/ent/event"
	"github.com/dappsmith/conductor/ent/job"
	"github.com/dappsmith/conductor/ent/project"
	"github.com/dappsmith/conductor/ent/recording"
	"github.com/dappsmith/conductor/ent/run"
	"github.com/dappsmith/conductor/ent/schema"
	"github.com/dappsmith/conductor/ent/spec"
	"github.com/dappsmith/conductor/ent/suiterun"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	artifactFields := schema.Artifact{}.Fields()
	_ = artifactFields
	// artifactDescCreatedAt is the schema descriptor for created_at field.
	artifactDescCreatedAt := artifactFields[7].Descriptor()
	// artifact.DefaultCreatedAt holds the default value on creation for the created_at field.
	artifact.DefaultCreatedAt = artifactDescCreatedAt.Default.(func() time.Time)
	clarificationFields := schema.Clarification{}.Fields()
	_ = clarificationFields
	// clarificationDescCreatedAt is the schema descriptor for created_at field.
	clarificationDescCreatedAt := clarificationFields[5].Descriptor()
	// clarification.DefaultCreatedAt holds the default value on creation for the created_at field.
	clarification.DefaultCreatedAt = clarificationDescCreatedAt.Default.(func() time.Time)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[3].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	jobFields := schema.Job{}.Fields()
	_ = jobFields
	// jobDescAttempt is the schema descriptor for attempt field.
	jobDescAttempt := jobFields[4].Descriptor()
	// job.DefaultAttempt holds the default value on creation for the attempt field.
	job.DefaultAttempt = jobDescAttempt.Default.(int)
	// jobDescMaxAttempts is the schema descriptor for max_attempts field.
	jobDescMaxAttempts := jobFields[5].Descriptor()
	// job.DefaultMaxAttempts holds the default value on creation for the max_attempts field.
	job.DefaultMaxAttempts = jobDescMaxAttempts.Default.(int)
	// jobDescNextAttemptAt is the schema descriptor for next_attempt_at field.
	jobDescNextAttemptAt := jobFields[6].Descriptor()
	// job.DefaultNextAttemptAt holds the default value on creation for the next_attempt_at field.
	job.DefaultNextAttemptAt = jobDescNextAttemptAt.Default.(func() time.Time)
	// jobDescProgress is the schema descriptor for progress field.
	jobDescProgress := jobFields[10].Descriptor()
	// job.DefaultProgress holds the default value on creation for the progress field.
	job.DefaultProgress = jobDescProgress.Default.(int)
	// jobDescCancelRequested is the schema descriptor for cancel_requested field.
	jobDescCancelRequested := jobFields[11].Descriptor()
	// job.DefaultCancelRequested holds the default value on creation for the cancel_requested field.
	job.DefaultCancelRequested = jobDescCancelRequested.Default.(bool)
	// jobDescCreatedAt is the schema descriptor for created_at field.
	jobDescCreatedAt := jobFields[14].Descriptor()
	// job.DefaultCreatedAt holds the default value on creation for the created_at field.
	job.DefaultCreatedAt = jobDescCreatedAt.Default.(func() time.Time)
	projectFields := schema.Project{}.Fields()
	_ = projectFields
	// projectDescCreatedAt is the schema descriptor for created_at field.
	projectDescCreatedAt := projectFields[6].Descriptor()
	// project.DefaultCreatedAt holds the default value on creation for the created_at field.
	project.DefaultCreatedAt = projectDescCreatedAt.Default.(func() time.Time)
	// projectDescUpdatedAt is the schema descriptor for updated_at field.
	projectDescUpdatedAt := projectFields[7].Descriptor()
	// project.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	project.DefaultUpdatedAt = projectDescUpdatedAt.Default.(func() time.Time)
	// project.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	project.UpdateDefaultUpdatedAt = projectDescUpdatedAt.UpdateDefault.(func() time.Time)
	recordingFields := schema.Recording{}.Fields()
	_ = recordingFields
	// recordingDescCreatedAt is the schema descriptor for created_at field.
	recordingDescCreatedAt := recordingFields[6].Descriptor()
	// recording.DefaultCreatedAt holds the default value on creation for the created_at field.
	recording.DefaultCreatedAt = recordingDescCreatedAt.Default.(func() time.Time)
	runFields := schema.Run{}.Fields()
	_ = runFields
	// runDescIsAutoRetry is the schema descriptor for is_auto_retry field.
	runDescIsAutoRetry := runFields[7].Descriptor()
	// run.DefaultIsAutoRetry holds the default value on creation for the is_auto_retry field.
	run.DefaultIsAutoRetry = runDescIsAutoRetry.Default.(bool)
	// runDescProgress is the schema descriptor for progress field.
	runDescProgress := runFields[8].Descriptor()
	// run.DefaultProgress holds the default value on creation for the progress field.
	run.DefaultProgress = runDescProgress.Default.(int)
	// runDescCancelRequested is the schema descriptor for cancel_requested field.
	runDescCancelRequested := runFields[9].Descriptor()
	// run.DefaultCancelRequested holds the default value on creation for the cancel_requested field.
	run.DefaultCancelRequested = runDescCancelRequested.Default.(bool)
	// runDescCreatedAt is the schema descriptor for created_at field.
	runDescCreatedAt := runFields[17].Descriptor()
	// run.DefaultCreatedAt holds the default value on creation for the created_at field.
	run.DefaultCreatedAt = runDescCreatedAt.Default.(func() time.Time)
	specFields := schema.Spec{}.Fields()
	_ = specFields
	// specDescVersion is the schema descriptor for version field.
	specDescVersion := specFields[4].Descriptor()
	// spec.DefaultVersion holds the default value on creation for the version field.
	spec.DefaultVersion = specDescVersion.Default.(int)
	// specDescAttempt is the schema descriptor for attempt field.
	specDescAttempt := specFields[5].Descriptor()
	// spec.DefaultAttempt holds the default value on creation for the attempt field.
	spec.DefaultAttempt = specDescAttempt.Default.(int)
	// specDescMaxAttempts is the schema descriptor for max_attempts field.
	specDescMaxAttempts := specFields[6].Descriptor()
	// spec.DefaultMaxAttempts holds the default value on creation for the max_attempts field.
	spec.DefaultMaxAttempts = specDescMaxAttempts.Default.(int)
	// specDescCreatedAt is the schema descriptor for created_at field.
	specDescCreatedAt := specFields[9].Descriptor()
	// spec.DefaultCreatedAt holds the default value on creation for the created_at field.
	spec.DefaultCreatedAt = specDescCreatedAt.Default.(func() time.Time)
	// specDescUpdatedAt is the schema descriptor for updated_at field.
	specDescUpdatedAt := specFields[10].Descriptor()
	// spec.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	spec.DefaultUpdatedAt = specDescUpdatedAt.Default.(func() time.Time)
	// spec.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	spec.UpdateDefaultUpdatedAt = specDescUpdatedAt.UpdateDefault.(func() time.Time)
	suiterunFields := schema.SuiteRun{}.Fields()
	_ = suiterunFields
	// suiterunDescTotalTests is the schema descriptor for total_tests field.
	suiterunDescTotalTests := suiterunFields[4].Descriptor()
	// suiterun.DefaultTotalTests holds the default value on creation for the total_tests field.
	suiterun.DefaultTotalTests = suiterunDescTotalTests.Default.(int)
	// suiterunDescPassedTests is the schema descriptor for passed_tests field.
	suiterunDescPassedTests := suiterunFields[5].Descriptor()
	// suiterun.DefaultPassedTests holds the default value on creation for the passed_tests field.
	suiterun.DefaultPassedTests = suiterunDescPassedTests.Default.(int)
	// suiterunDescFailedTests is the schema descriptor for failed_tests field.
	suiterunDescFailedTests := suiterunFields[6].Descriptor()
	// suiterun.DefaultFailedTests holds the default value on creation for the failed_tests field.
	suiterun.DefaultFailedTests = suiterunDescFailedTests.Default.(int)
	// suiterunDescCreatedAt is the schema descriptor for created_at field.
	suiterunDescCreatedAt := suiterunFields[8].Descriptor()
	// suiterun.DefaultCreatedAt holds the default value on creation for the created_at field.
	suiterun.DefaultCreatedAt = suiterunDescCreatedAt.Default.(func() time.Time)
}
