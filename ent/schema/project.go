package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Project holds the schema definition for the Project entity.
// A project owns one wallet identity and groups recordings and specs
// that run against the same dApp.
type Project struct {
	ent.Schema
}

// Fields of the Project.
func (Project) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("project_id").
			Unique().
			Immutable(),
		field.String("name"),
		field.String("dapp_url").
			Comment("Base URL of the application under test"),
		field.String("wallet_address").
			Comment("Derived address; the only wallet material exposed after creation"),
		field.Text("wallet_seed_cipher").
			Immutable().
			Sensitive().
			Comment("AES-GCM sealed seed phrase, write-once at creation"),
		field.String("connection_spec_id").
			Optional().
			Nillable().
			Comment("One-way reference to the latest passing connection spec; nulled when stale"),
		field.Time("created_at").
			Default(time.Now),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Time("deleted_at").
			Optional().
			Nillable().
			Comment("Soft delete for retention policy"),
	}
}

// Edges of the Project.
func (Project) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("recordings", Recording.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("suite_runs", SuiteRun.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Project.
func (Project) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name"),
		index.Fields("deleted_at").
			Annotations(entsql.IndexWhere("deleted_at IS NOT NULL")),
	}
}
