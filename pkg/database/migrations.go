package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreatePartialIndexes creates PostgreSQL partial indexes backing the
// queue hot paths. They are declared as IndexWhere annotations in the
// Ent schema, but tests that migrate with Schema.Create call this
// helper to guarantee they exist. Must match 000001_init.up.sql.
func CreatePartialIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// Orphan sweep scans only running jobs by lock expiry.
	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS job_lock_expires_at_running
		ON jobs (lock_expires_at)
		WHERE status = 'running'`)
	if err != nil {
		return fmt.Errorf("failed to create job lock expiry index: %w", err)
	}

	// Project listings exclude soft-deleted rows; the retention sweep
	// scans only the deleted ones.
	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS project_deleted_at_set
		ON projects (deleted_at)
		WHERE deleted_at IS NOT NULL`)
	if err != nil {
		return fmt.Errorf("failed to create project deleted_at index: %w", err)
	}

	return nil
}
