package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Job holds the schema definition for the Job entity, the durable
// queue record. Workers claim pending jobs with FOR UPDATE SKIP LOCKED,
// renew the lock while running, and the orphan detector requeues jobs
// whose lock expired.
type Job struct {
	ent.Schema
}

// Fields of the Job.
func (Job) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("job_id").
			Unique().
			Immutable().
			Comment("ULID; claim order follows creation order"),
		field.Enum("kind").
			NamedValues(
				"Execute", "execute",
				"ExecuteHybrid", "execute-hybrid",
				"ExecuteAgent", "execute-agent",
				"ExecuteSuite", "execute-suite",
				"SelfHeal", "self-heal",
			),
		field.JSON("payload", map[string]interface{}{}).
			Comment("Kind-specific parameters; carries run_id or suite_run_id"),
		field.Enum("status").
			Values("pending", "running", "completed", "failed", "cancelled").
			Default("pending"),
		field.Int("attempt").
			Default(0).
			Comment("Claims consumed so far"),
		field.Int("max_attempts").
			Default(3),
		field.Time("next_attempt_at").
			Default(time.Now).
			Comment("Earliest claim time; carries enqueue delay and retry backoff"),
		field.String("locked_by").
			Optional().
			Nillable().
			Comment("Pod id of the claiming worker"),
		field.Time("lock_expires_at").
			Optional().
			Nillable().
			Comment("Visibility timeout; expired locks are requeued"),
		field.Time("last_heartbeat_at").
			Optional().
			Nillable(),
		field.Int("progress").
			Default(0),
		field.Bool("cancel_requested").
			Default(false),
		field.String("run_id").
			Optional().
			Nillable().
			Comment("Denormalized for cancel lookups"),
		field.Text("last_error").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the Job.
func (Job) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "next_attempt_at"),
		index.Fields("kind", "status"),
		index.Fields("run_id"),
		index.Fields("kind", "status", "completed_at"),
		// Partial index backing the orphan sweep
		index.Fields("lock_expires_at").
			Annotations(entsql.IndexWhere("status = 'running'")),
	}
}
