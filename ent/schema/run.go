package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Run holds the schema definition for the Run entity.
// One execution of a spec. Status machine:
// pending -> running -> (passed | failed | cancelled | timed_out).
// Terminal states are final; completed_at is set iff terminal.
type Run struct {
	ent.Schema
}

// Fields of the Run.
func (Run) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("run_id").
			Unique().
			Immutable(),
		field.String("spec_id").
			Immutable(),
		field.String("suite_run_id").
			Optional().
			Nillable().
			Immutable(),
		field.Int("suite_index").
			Optional().
			Nillable().
			Comment("Position within the suite, 0-based"),
		field.Enum("status").
			Values("pending", "running", "passed", "failed", "cancelled", "timed_out").
			Default("pending"),
		field.Enum("execution_mode").
			Values("spec", "agent", "hybrid").
			Default("spec"),
		field.Enum("streaming_mode").
			Values("none", "vnc", "video").
			Default("none"),
		field.Bool("is_auto_retry").
			Default(false).
			Comment("Set on runs enqueued by self-heal"),
		field.Int("progress").
			Default(0).
			Comment("0-100, reported at phase boundaries"),
		field.Bool("cancel_requested").
			Default(false).
			Comment("Cooperative cancel flag polled by the handler"),
		field.JSON("agent_data", map[string]interface{}{}).
			Optional().
			Comment("Step timeline and planner cost summary"),
		field.JSON("stream_state", map[string]interface{}{}).
			Optional().
			Comment("Tab/streaming state persisted at phase boundaries for restart recovery"),
		field.Text("logs").
			Optional().
			Nillable(),
		field.Text("error_message").
			Optional().
			Nillable(),
		field.String("container_id").
			Optional().
			Nillable().
			Comment("Sandbox identifier for diagnostics"),
		field.Int("duration_ms").
			Optional().
			Nillable(),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("For multi-replica coordination"),
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

// Edges of the Run.
func (Run) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("spec", Spec.Type).
			Ref("runs").
			Field("spec_id").
			Unique().
			Required().
			Immutable(),
		edge.From("suite_run", SuiteRun.Type).
			Ref("runs").
			Field("suite_run_id").
			Unique().
			Immutable(),
		edge.To("artifacts", Artifact.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Run.
func (Run) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("spec_id", "created_at"),
		index.Fields("status", "created_at"),
		index.Fields("suite_run_id", "suite_index"),
	}
}
