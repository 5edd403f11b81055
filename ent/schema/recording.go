package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Recording holds the schema definition for the Recording entity.
// A recording is the immutable JSON action document produced by the
// browser recorder; specs are generated from it.
type Recording struct {
	ent.Schema
}

// Fields of the Recording.
func (Recording) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("recording_id").
			Unique().
			Immutable(),
		field.String("project_id").
			Immutable(),
		field.String("name"),
		field.Enum("recording_type").
			Values("connection", "flow").
			Comment("connection recordings produce wallet-login preludes"),
		field.JSON("actions", []map[string]interface{}{}).
			Immutable().
			Comment("Ordered click/input/navigation/wallet actions; immutable after creation"),
		field.String("url").
			Optional().
			Comment("Entry URL captured at record time"),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Edges of the Recording.
func (Recording) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("recordings").
			Field("project_id").
			Unique().
			Required().
			Immutable(),
		edge.To("specs", Spec.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Recording.
func (Recording) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id", "recording_type"),
	}
}
