package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Clarification holds the schema definition for the Clarification entity.
// A question the generator raised about a recording. A spec advances
// from draft to ready once none of its clarifications are pending.
type Clarification struct {
	ent.Schema
}

// Fields of the Clarification.
func (Clarification) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("clarification_id").
			Unique().
			Immutable(),
		field.String("spec_id").
			Immutable(),
		field.Text("question"),
		field.Text("answer").
			Optional().
			Nillable(),
		field.Enum("status").
			Values("pending", "answered", "skipped").
			Default("pending"),
		field.Time("created_at").
			Default(time.Now),
		field.Time("resolved_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Clarification.
func (Clarification) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("spec", Spec.Type).
			Ref("clarifications").
			Field("spec_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Clarification.
func (Clarification) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("spec_id", "status"),
	}
}
