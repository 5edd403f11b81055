// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ArtifactsColumns holds the columns for the "artifacts" table.
	ArtifactsColumns = []*schema.Column{
		{Name: "artifact_id", Type: field.TypeString, Unique: true},
		{Name: "artifact_type", Type: field.TypeEnum, Enums: []string{"screenshot", "video", "trace", "log"}},
		{Name: "name", Type: field.TypeString},
		{Name: "storage_path", Type: field.TypeString},
		{Name: "mime_type", Type: field.TypeString},
		{Name: "size_bytes", Type: field.TypeInt64, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "run_id", Type: field.TypeString},
	}
	// ArtifactsTable holds the schema information for the "artifacts" table.
	ArtifactsTable = &schema.Table{
		Name:       "artifacts",
		Columns:    ArtifactsColumns,
		PrimaryKey: []*schema.Column{ArtifactsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "artifacts_runs_artifacts",
				Columns:    []*schema.Column{ArtifactsColumns[7]},
				RefColumns: []*schema.Column{RunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "artifact_run_id_artifact_type_name",
				Unique:  true,
				Columns: []*schema.Column{ArtifactsColumns[7], ArtifactsColumns[1], ArtifactsColumns[2]},
			},
		},
	}
	// ClarificationsColumns holds the columns for the "clarifications" table.
	ClarificationsColumns = []*schema.Column{
		{Name: "clarification_id", Type: field.TypeString, Unique: true},
		{Name: "question", Type: field.TypeString, Size: 2147483647},
		{Name: "answer", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "answered", "skipped"}, Default: "pending"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "resolved_at", Type: field.TypeTime, Nullable: true},
		{Name: "spec_id", Type: field.TypeString},
	}
	// ClarificationsTable holds the schema information for the "clarifications" table.
	ClarificationsTable = &schema.Table{
		Name:       "clarifications",
		Columns:    ClarificationsColumns,
		PrimaryKey: []*schema.Column{ClarificationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "clarifications_specs_clarifications",
				Columns:    []*schema.Column{ClarificationsColumns[6]},
				RefColumns: []*schema.Column{SpecsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "clarification_spec_id_status",
				Unique:  false,
				Columns: []*schema.Column{ClarificationsColumns[6], ClarificationsColumns[3]},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "run_id", Type: field.TypeString, Nullable: true},
		{Name: "channel", Type: field.TypeString},
		{Name: "payload", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "event_channel_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[2], EventsColumns[0]},
			},
			{
				Name:    "event_created_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[4]},
			},
		},
	}
	// JobsColumns holds the columns for the "jobs" table.
	JobsColumns = []*schema.Column{
		{Name: "job_id", Type: field.TypeString, Unique: true},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"execute", "execute-hybrid", "execute-agent", "execute-suite", "self-heal"}},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "completed", "failed", "cancelled"}, Default: "pending"},
		{Name: "attempt", Type: field.TypeInt, Default: 0},
		{Name: "max_attempts", Type: field.TypeInt, Default: 3},
		{Name: "next_attempt_at", Type: field.TypeTime},
		{Name: "locked_by", Type: field.TypeString, Nullable: true},
		{Name: "lock_expires_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_heartbeat_at", Type: field.TypeTime, Nullable: true},
		{Name: "progress", Type: field.TypeInt, Default: 0},
		{Name: "cancel_requested", Type: field.TypeBool, Default: false},
		{Name: "run_id", Type: field.TypeString, Nullable: true},
		{Name: "last_error", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// JobsTable holds the schema information for the "jobs" table.
	JobsTable = &schema.Table{
		Name:       "jobs",
		Columns:    JobsColumns,
		PrimaryKey: []*schema.Column{JobsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "job_status_next_attempt_at",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[3], JobsColumns[6]},
			},
			{
				Name:    "job_kind_status",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[1], JobsColumns[3]},
			},
			{
				Name:    "job_run_id",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[12]},
			},
			{
				Name:    "job_kind_status_completed_at",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[1], JobsColumns[3], JobsColumns[15]},
			},
			{
				Name:    "job_lock_expires_at",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[8]},
				Annotation: &entsql.IndexAnnotation{
					Where: "status = 'running'",
				},
			},
		},
	}
	// ProjectsColumns holds the columns for the "projects" table.
	ProjectsColumns = []*schema.Column{
		{Name: "project_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "dapp_url", Type: field.TypeString},
		{Name: "wallet_address", Type: field.TypeString},
		{Name: "wallet_seed_cipher", Type: field.TypeString, Size: 2147483647},
		{Name: "connection_spec_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
	}
	// ProjectsTable holds the schema information for the "projects" table.
	ProjectsTable = &schema.Table{
		Name:       "projects",
		Columns:    ProjectsColumns,
		PrimaryKey: []*schema.Column{ProjectsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "project_name",
				Unique:  false,
				Columns: []*schema.Column{ProjectsColumns[1]},
			},
			{
				Name:    "project_deleted_at",
				Unique:  false,
				Columns: []*schema.Column{ProjectsColumns[8]},
				Annotation: &entsql.IndexAnnotation{
					Where: "deleted_at IS NOT NULL",
				},
			},
		},
	}
	// RecordingsColumns holds the columns for the "recordings" table.
	RecordingsColumns = []*schema.Column{
		{Name: "recording_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "recording_type", Type: field.TypeEnum, Enums: []string{"connection", "flow"}},
		{Name: "actions", Type: field.TypeJSON},
		{Name: "url", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "project_id", Type: field.TypeString},
	}
	// RecordingsTable holds the schema information for the "recordings" table.
	RecordingsTable = &schema.Table{
		Name:       "recordings",
		Columns:    RecordingsColumns,
		PrimaryKey: []*schema.Column{RecordingsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "recordings_projects_recordings",
				Columns:    []*schema.Column{RecordingsColumns[6]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "recording_project_id_recording_type",
				Unique:  false,
				Columns: []*schema.Column{RecordingsColumns[6], RecordingsColumns[2]},
			},
		},
	}
	// RunsColumns holds the columns for the "runs" table.
	RunsColumns = []*schema.Column{
		{Name: "run_id", Type: field.TypeString, Unique: true},
		{Name: "suite_index", Type: field.TypeInt, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "passed", "failed", "cancelled", "timed_out"}, Default: "pending"},
		{Name: "execution_mode", Type: field.TypeEnum, Enums: []string{"spec", "agent", "hybrid"}, Default: "spec"},
		{Name: "streaming_mode", Type: field.TypeEnum, Enums: []string{"none", "vnc", "video"}, Default: "none"},
		{Name: "is_auto_retry", Type: field.TypeBool, Default: false},
		{Name: "progress", Type: field.TypeInt, Default: 0},
		{Name: "cancel_requested", Type: field.TypeBool, Default: false},
		{Name: "agent_data", Type: field.TypeJSON, Nullable: true},
		{Name: "stream_state", Type: field.TypeJSON, Nullable: true},
		{Name: "logs", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "error_message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "container_id", Type: field.TypeString, Nullable: true},
		{Name: "duration_ms", Type: field.TypeInt, Nullable: true},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "spec_id", Type: field.TypeString},
		{Name: "suite_run_id", Type: field.TypeString, Nullable: true},
	}
	// RunsTable holds the schema information for the "runs" table.
	RunsTable = &schema.Table{
		Name:       "runs",
		Columns:    RunsColumns,
		PrimaryKey: []*schema.Column{RunsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "runs_specs_runs",
				Columns:    []*schema.Column{RunsColumns[18]},
				RefColumns: []*schema.Column{SpecsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "runs_suite_runs_runs",
				Columns:    []*schema.Column{RunsColumns[19]},
				RefColumns: []*schema.Column{SuiteRunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "run_status",
				Unique:  false,
				Columns: []*schema.Column{RunsColumns[2]},
			},
			{
				Name:    "run_spec_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{RunsColumns[18], RunsColumns[15]},
			},
			{
				Name:    "run_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{RunsColumns[2], RunsColumns[15]},
			},
			{
				Name:    "run_suite_run_id_suite_index",
				Unique:  false,
				Columns: []*schema.Column{RunsColumns[19], RunsColumns[1]},
			},
		},
	}
	// SpecsColumns holds the columns for the "specs" table.
	SpecsColumns = []*schema.Column{
		{Name: "spec_id", Type: field.TypeString, Unique: true},
		{Name: "code", Type: field.TypeString, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"draft", "needs_review", "ready", "tested"}, Default: "draft"},
		{Name: "version", Type: field.TypeInt, Default: 1},
		{Name: "attempt", Type: field.TypeInt, Default: 1},
		{Name: "max_attempts", Type: field.TypeInt, Default: 3},
		{Name: "parent_spec_id", Type: field.TypeString, Nullable: true},
		{Name: "failure_context", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "recording_id", Type: field.TypeString},
	}
	// SpecsTable holds the schema information for the "specs" table.
	SpecsTable = &schema.Table{
		Name:       "specs",
		Columns:    SpecsColumns,
		PrimaryKey: []*schema.Column{SpecsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "specs_recordings_specs",
				Columns:    []*schema.Column{SpecsColumns[10]},
				RefColumns: []*schema.Column{RecordingsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "spec_recording_id_version",
				Unique:  false,
				Columns: []*schema.Column{SpecsColumns[10], SpecsColumns[3]},
			},
			{
				Name:    "spec_status",
				Unique:  false,
				Columns: []*schema.Column{SpecsColumns[2]},
			},
			{
				Name:    "spec_parent_spec_id",
				Unique:  false,
				Columns: []*schema.Column{SpecsColumns[6]},
			},
		},
	}
	// SuiteRunsColumns holds the columns for the "suite_runs" table.
	SuiteRunsColumns = []*schema.Column{
		{Name: "suite_run_id", Type: field.TypeString, Unique: true},
		{Name: "spec_ids", Type: field.TypeJSON},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "passed", "failed", "cancelled", "timed_out"}, Default: "pending"},
		{Name: "total_tests", Type: field.TypeInt, Default: 0},
		{Name: "passed_tests", Type: field.TypeInt, Default: 0},
		{Name: "failed_tests", Type: field.TypeInt, Default: 0},
		{Name: "error_message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "project_id", Type: field.TypeString},
	}
	// SuiteRunsTable holds the schema information for the "suite_runs" table.
	SuiteRunsTable = &schema.Table{
		Name:       "suite_runs",
		Columns:    SuiteRunsColumns,
		PrimaryKey: []*schema.Column{SuiteRunsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "suite_runs_projects_suite_runs",
				Columns:    []*schema.Column{SuiteRunsColumns[10]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "suiterun_project_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{SuiteRunsColumns[10], SuiteRunsColumns[7]},
			},
			{
				Name:    "suiterun_status",
				Unique:  false,
				Columns: []*schema.Column{SuiteRunsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ArtifactsTable,
		ClarificationsTable,
		EventsTable,
		JobsTable,
		ProjectsTable,
		RecordingsTable,
		RunsTable,
		SpecsTable,
		SuiteRunsTable,
	}
)

func init() {
	ArtifactsTable.ForeignKeys[0].RefTable = RunsTable
	ClarificationsTable.ForeignKeys[0].RefTable = SpecsTable
	RecordingsTable.ForeignKeys[0].RefTable = ProjectsTable
	RunsTable.ForeignKeys[0].RefTable = SpecsTable
	RunsTable.ForeignKeys[1].RefTable = SuiteRunsTable
	SpecsTable.ForeignKeys[0].RefTable = RecordingsTable
	SuiteRunsTable.ForeignKeys[0].RefTable = ProjectsTable
}
