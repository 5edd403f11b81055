package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"
)

// EventPublisher publishes events for WebSocket delivery.
// Persistent events are stored in the events table then broadcast via NOTIFY.
// Transient events (log lines) are broadcast via NOTIFY only.
//
// Each public method accepts a specific typed payload struct — see payloads.go.
// Internally, payloads are marshaled to JSON and routed to the appropriate
// channel (derived from the run or suite id) via persistAndNotify or notifyOnly.
type EventPublisher struct {
	db *sql.DB
}

// NewEventPublisher creates a new EventPublisher.
// The db parameter should be the *sql.DB from database.Client.DB().
func NewEventPublisher(db *sql.DB) *EventPublisher {
	return &EventPublisher{db: db}
}

// --- Typed public methods ---

// PublishRunStatus persists a run status event to the run channel and
// broadcasts a transient copy to the global runs channel.
// Both publishes are best-effort: if the persistent one fails, the transient
// one is still attempted. Returns the first error encountered (if any).
func (p *EventPublisher) PublishRunStatus(ctx context.Context, runID string, payload RunStatusPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal RunStatusPayload: %w", err)
	}

	var firstErr error
	if err := p.persistAndNotify(ctx, runID, RunChannel(runID), payloadJSON); err != nil {
		slog.Warn("Failed to publish run status to run channel",
			"run_id", runID, "status", payload.Status, "error", err)
		firstErr = err
	}

	// Also broadcast to global runs channel (transient — for the run list page)
	if err := p.notifyOnly(ctx, GlobalRunsChannel, payloadJSON); err != nil {
		slog.Warn("Failed to publish run status to global channel",
			"run_id", runID, "status", payload.Status, "error", err)
		if firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}

// PublishRunProgress persists and broadcasts a run.progress event.
// Progress is written at phase boundaries, so the volume is low enough
// to keep these in the catchup feed.
func (p *EventPublisher) PublishRunProgress(ctx context.Context, runID string, payload RunProgressPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal RunProgressPayload: %w", err)
	}
	return p.persistAndNotify(ctx, runID, RunChannel(runID), payloadJSON)
}

// PublishRunStep persists and broadcasts a run.step event.
// Fired after each step the executor completes.
func (p *EventPublisher) PublishRunStep(ctx context.Context, runID string, payload RunStepPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal RunStepPayload: %w", err)
	}
	return p.persistAndNotify(ctx, runID, RunChannel(runID), payloadJSON)
}

// PublishRunArtifact persists and broadcasts a run.artifact event.
// Fired once the artifact row is committed.
func (p *EventPublisher) PublishRunArtifact(ctx context.Context, runID string, payload RunArtifactPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal RunArtifactPayload: %w", err)
	}
	return p.persistAndNotify(ctx, runID, RunChannel(runID), payloadJSON)
}

// PublishRunLog broadcasts a run.log transient event (no DB persistence).
// Used for live output lines — ephemeral, lost on disconnect. Full logs
// are persisted to the blob store at run completion.
func (p *EventPublisher) PublishRunLog(ctx context.Context, runID string, payload RunLogPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal RunLogPayload: %w", err)
	}
	return p.notifyOnly(ctx, RunChannel(runID), payloadJSON)
}

// PublishSuiteStatus persists a suite status event to the suite channel and
// broadcasts a transient copy to the global runs channel.
func (p *EventPublisher) PublishSuiteStatus(ctx context.Context, suiteRunID string, payload SuiteStatusPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal SuiteStatusPayload: %w", err)
	}

	var firstErr error
	if err := p.persistAndNotify(ctx, suiteRunID, SuiteChannel(suiteRunID), payloadJSON); err != nil {
		slog.Warn("Failed to publish suite status to suite channel",
			"suite_run_id", suiteRunID, "status", payload.Status, "error", err)
		firstErr = err
	}

	if err := p.notifyOnly(ctx, GlobalRunsChannel, payloadJSON); err != nil {
		slog.Warn("Failed to publish suite status to global channel",
			"suite_run_id", suiteRunID, "status", payload.Status, "error", err)
		if firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}

// --- Internal core methods ---

// persistAndNotify persists a pre-marshaled event to the database and broadcasts
// via NOTIFY in a single transaction (pg_notify is transactional — held until COMMIT).
// ownerID is the run or suite run the event belongs to; retention sweeps key on it.
func (p *EventPublisher) persistAndNotify(ctx context.Context, ownerID, channel string, payloadJSON []byte) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// 1. Persist to events table (within transaction)
	var eventID int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO events (run_id, channel, payload, created_at) VALUES ($1, $2, $3, $4) RETURNING id`,
		ownerID, channel, payloadJSON, time.Now(),
	).Scan(&eventID)
	if err != nil {
		return fmt.Errorf("failed to persist event: %w", err)
	}

	// Build NOTIFY payload with db_event_id for catchup tracking.
	notifyPayload, err := injectDBEventIDAndTruncate(payloadJSON, eventID)
	if err != nil {
		return err
	}

	// 2. pg_notify within same transaction — held until COMMIT
	_, err = tx.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload)
	if err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}

	// 3. Commit — INSERT is persisted and NOTIFY fires atomically
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit event transaction: %w", err)
	}

	return nil
}

// notifyOnly broadcasts a pre-marshaled event via NOTIFY without persisting to DB.
func (p *EventPublisher) notifyOnly(ctx context.Context, channel string, payloadJSON []byte) error {
	notifyPayload, err := truncateIfNeeded(string(payloadJSON))
	if err != nil {
		return err
	}
	_, err = p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload)
	if err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	return nil
}

// --- Internal helpers ---

// injectDBEventIDAndTruncate adds db_event_id to the JSON payload for NOTIFY
// delivery and applies truncation if the result exceeds PostgreSQL's limit.
func injectDBEventIDAndTruncate(payloadJSON []byte, dbEventID int64) (string, error) {
	var m map[string]any
	if err := json.Unmarshal(payloadJSON, &m); err != nil {
		return "", fmt.Errorf("failed to unmarshal payload for db_event_id injection: %w", err)
	}
	m["db_event_id"] = dbEventID

	enrichedBytes, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("failed to marshal enriched NOTIFY payload: %w", err)
	}

	return truncateIfNeeded(string(enrichedBytes))
}

// truncateIfNeeded returns the payload string as-is if it fits within
// PostgreSQL's 8000-byte NOTIFY limit, otherwise returns a minimal
// truncation envelope with only routing fields.
func truncateIfNeeded(payloadStr string) (string, error) {
	if len(payloadStr) <= 7900 {
		return payloadStr, nil
	}
	return buildTruncatedPayload([]byte(payloadStr))
}

// buildTruncatedPayload creates a minimal truncation envelope from the full
// JSON payload bytes, extracting only the routing fields the client needs
// to fetch the complete event from the database.
func buildTruncatedPayload(payloadBytes []byte) (string, error) {
	var routing struct {
		Type       string `json:"type"`
		RunID      string `json:"run_id"`
		SuiteRunID string `json:"suite_run_id"`
		DBEventID  *int64 `json:"db_event_id,omitempty"`
	}
	if err := json.Unmarshal(payloadBytes, &routing); err != nil {
		return "", fmt.Errorf("failed to extract routing fields for truncation: %w", err)
	}

	truncated := map[string]any{
		"type":      routing.Type,
		"run_id":    routing.RunID,
		"truncated": true,
	}
	if routing.SuiteRunID != "" {
		truncated["suite_run_id"] = routing.SuiteRunID
	}
	if routing.DBEventID != nil {
		truncated["db_event_id"] = *routing.DBEventID
	}

	truncBytes, err := json.Marshal(truncated)
	if err != nil {
		return "", fmt.Errorf("failed to marshal truncated payload: %w", err)
	}
	return string(truncBytes), nil
}
