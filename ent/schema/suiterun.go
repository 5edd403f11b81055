package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SuiteRun holds the schema definition for the SuiteRun entity.
// An ordered set of runs sharing one sandbox. Once terminal,
// passed_tests + failed_tests equals the number of child runs.
type SuiteRun struct {
	ent.Schema
}

// Fields of the SuiteRun.
func (SuiteRun) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("suite_run_id").
			Unique().
			Immutable(),
		field.String("project_id").
			Immutable(),
		field.JSON("spec_ids", []string{}).
			Immutable().
			Comment("Execution order; duplicates allowed"),
		field.Enum("status").
			Values("pending", "running", "passed", "failed", "cancelled", "timed_out").
			Default("pending"),
		field.Int("total_tests").
			Default(0),
		field.Int("passed_tests").
			Default(0),
		field.Int("failed_tests").
			Default(0),
		field.Text("error_message").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the SuiteRun.
func (SuiteRun) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("suite_runs").
			Field("project_id").
			Unique().
			Required().
			Immutable(),
		edge.To("runs", Run.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the SuiteRun.
func (SuiteRun) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id", "created_at"),
		index.Fields("status"),
	}
}
