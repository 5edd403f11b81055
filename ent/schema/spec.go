package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Spec holds the schema definition for the Spec entity.
// A spec is one generated, executable test program for a recording.
// Versions form a lineage: hybrid patches bump version in place,
// self-heal creates a child spec linked by parent_spec_id.
type Spec struct {
	ent.Schema
}

// Fields of the Spec.
func (Spec) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("spec_id").
			Unique().
			Immutable(),
		field.String("recording_id").
			Immutable(),
		field.Text("code").
			Comment("Test program source"),
		field.Enum("status").
			Values("draft", "needs_review", "ready", "tested").
			Default("draft").
			Comment("Only non-draft specs are eligible to run"),
		field.Int("version").
			Default(1).
			Comment("Monotonic per lineage; bumped by patches and regeneration"),
		field.Int("attempt").
			Default(1).
			Comment("Self-heal generation counter, 1 for originals"),
		field.Int("max_attempts").
			Default(3),
		field.String("parent_spec_id").
			Optional().
			Nillable().
			Comment("Self-heal ancestor; one-way reference"),
		field.JSON("failure_context", map[string]interface{}{}).
			Optional().
			Comment("Failure snapshot the regeneration was based on"),
		field.Time("created_at").
			Default(time.Now),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Spec.
func (Spec) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("recording", Recording.Type).
			Ref("specs").
			Field("recording_id").
			Unique().
			Required().
			Immutable(),
		edge.To("runs", Run.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("clarifications", Clarification.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Spec.
func (Spec) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("recording_id", "version"),
		index.Fields("status"),
		index.Fields("parent_spec_id"),
	}
}
