package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Artifact holds the schema definition for the Artifact entity.
// Write-once; addressed by (run_id, artifact_type, name). The row is
// committed only after the blob exists at storage_path.
type Artifact struct {
	ent.Schema
}

// Fields of the Artifact.
func (Artifact) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("artifact_id").
			Unique().
			Immutable(),
		field.String("run_id").
			Immutable(),
		field.Enum("artifact_type").
			Values("screenshot", "video", "trace", "log"),
		field.String("name").
			Immutable(),
		field.String("storage_path").
			Comment("Blob store key: runs/{runId}/{type}/{name}"),
		field.String("mime_type"),
		field.Int64("size_bytes").
			Optional(),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Edges of the Artifact.
func (Artifact) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", Run.Type).
			Ref("artifacts").
			Field("run_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Artifact.
func (Artifact) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id", "artifact_type", "name").
			Unique(),
	}
}
