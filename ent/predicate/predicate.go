// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Artifact is the predicate function for artifact builders.
type Artifact func(*sql.Selector)

// Clarification is the predicate function for clarification builders.
type Clarification func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// Job is the predicate function for job builders.
type Job func(*sql.Selector)

// Project is the predicate function for project builders.
type Project func(*sql.Selector)

// Recording is the predicate function for recording builders.
type Recording func(*sql.Selector)

// Run is the predicate function for run builders.
type Run func(*sql.Selector)

// Spec is the predicate function for spec builders.
type Spec func(*sql.Selector)

// SuiteRun is the predicate function for suiterun builders.
type SuiteRun func(*sql.Selector)
