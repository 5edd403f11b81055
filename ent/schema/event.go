package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Event holds the schema definition for the Event entity: the durable
// feed behind the websocket catchup protocol. Rows are written by the
// event publisher inside the same transaction as the NOTIFY, keyed by
// channel, and trimmed by the retention sweeper.
type Event struct {
	ent.Schema
}

// Fields of the Event.
// The id column is ent's default auto-increment key; the publisher
// relies on RETURNING id for catchup bookkeeping.
func (Event) Fields() []ent.Field {
	return []ent.Field{
		field.String("run_id").
			Optional().
			Comment("Source run, empty for global events"),
		field.String("channel"),
		field.Text("payload").
			Comment("JSON event body"),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Indexes of the Event.
func (Event) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("channel", "id"),
		index.Fields("created_at"),
	}
}
