package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dappsmith/conductor/ent"
	"github.com/dappsmith/conductor/ent/run"
	"github.com/dappsmith/conductor/ent/spec"
	"github.com/dappsmith/conductor/pkg/blob"
	"github.com/dappsmith/conductor/pkg/config"
	"github.com/dappsmith/conductor/pkg/models"
)

// runActive matches the two non-terminal states. Every status write
// goes through a guarded UPDATE against this set so a terminal state is
// never overwritten, regardless of worker races or retries.
var runActive = []run.Status{run.StatusPending, run.StatusRunning}

// RunService manages run lifecycle: creation, the status machine,
// cooperative cancellation, and progress.
type RunService struct {
	client   *ent.Client
	store    blob.Store
	defaults *config.Defaults
}

// NewRunService creates a new RunService.
func NewRunService(client *ent.Client, store blob.Store, defaults *config.Defaults) *RunService {
	if defaults == nil {
		defaults = config.DefaultDefaults()
	}
	return &RunService{client: client, store: store, defaults: defaults}
}

// CreateRun creates a pending run for a runnable spec. Execution and
// streaming modes fall back to the configured defaults when omitted.
func (s *RunService) CreateRun(httpCtx context.Context, req models.CreateRunRequest) (*ent.Run, error) {
	if req.SpecID == "" {
		return nil, NewValidationError("spec_id", "required")
	}

	mode := req.ExecutionMode
	if mode == "" {
		mode = s.defaults.ExecutionMode
	}
	modeEnum, ok := models.ModeToEnum(mode)
	if !ok {
		return nil, NewValidationError("execution_mode", fmt.Sprintf("unknown mode %q", mode))
	}
	streaming := req.StreamingMode
	if streaming == "" {
		streaming = s.defaults.StreamingMode
	}
	streamingEnum, ok := models.StreamingToEnum(streaming)
	if !ok {
		return nil, NewValidationError("streaming_mode", fmt.Sprintf("unknown mode %q", streaming))
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	sp, err := s.client.Spec.Get(ctx, req.SpecID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to resolve spec: %w", err)
	}
	if sp.Status == spec.StatusDraft {
		return nil, ErrNotRunnable
	}

	builder := s.client.Run.Create().
		SetID(newID(prefixRun)).
		SetSpecID(sp.ID).
		SetStatus(run.StatusPending).
		SetExecutionMode(modeEnum).
		SetStreamingMode(streamingEnum).
		SetIsAutoRetry(req.IsAutoRetry)
	if req.SuiteRunID != "" {
		builder = builder.SetSuiteRunID(req.SuiteRunID)
		if req.SuiteIndex != nil {
			builder = builder.SetSuiteIndex(*req.SuiteIndex)
		}
	}

	r, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrNotFound // dangling suite reference
		}
		return nil, fmt.Errorf("failed to create run: %w", err)
	}
	return r, nil
}

// GetRun retrieves a run by ID, optionally with its artifacts.
func (s *RunService) GetRun(ctx context.Context, runID string, withArtifacts bool) (*ent.Run, error) {
	query := s.client.Run.Query().Where(run.IDEQ(runID))
	if withArtifacts {
		query = query.WithArtifacts()
	}
	r, err := query.Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return r, nil
}

// ListRuns lists runs with filtering and pagination, newest first.
func (s *RunService) ListRuns(ctx context.Context, filters models.RunListFilters) ([]*ent.Run, int, error) {
	query := s.client.Run.Query()
	if filters.SpecID != "" {
		query = query.Where(run.SpecIDEQ(filters.SpecID))
	}
	if filters.SuiteRunID != "" {
		query = query.Where(run.SuiteRunIDEQ(filters.SuiteRunID))
	}
	if filters.Status != "" {
		status, ok := models.RunStatusFromAPI(filters.Status)
		if !ok {
			return nil, 0, NewValidationError("status", fmt.Sprintf("unknown status %q", filters.Status))
		}
		query = query.Where(run.StatusEQ(status))
	}
	if filters.Mode != "" {
		mode, ok := models.ModeToEnum(filters.Mode)
		if !ok {
			return nil, 0, NewValidationError("mode", fmt.Sprintf("unknown mode %q", filters.Mode))
		}
		query = query.Where(run.ExecutionModeEQ(mode))
	}

	total, err := query.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count runs: %w", err)
	}

	pageSize := filters.PageSize
	if pageSize <= 0 {
		pageSize = 20
	}
	page := filters.Page
	if page < 1 {
		page = 1
	}

	runs, err := query.
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Order(ent.Desc(run.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list runs: %w", err)
	}
	return runs, total, nil
}

// MarkRunning transitions a run to RUNNING when a worker picks it up.
// Restarted claims (job retry after a crash) pass through; terminal
// runs do not, and false is returned so the caller skips execution.
func (s *RunService) MarkRunning(ctx context.Context, runID, podID, containerID string) (bool, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.Run.Update().
		Where(run.IDEQ(runID), run.StatusIn(runActive...)).
		SetStatus(run.StatusRunning)
	if podID != "" {
		update = update.SetPodID(podID)
	}
	if containerID != "" {
		update = update.SetContainerID(containerID)
	}
	count, err := update.Save(writeCtx)
	if err != nil {
		return false, fmt.Errorf("failed to mark run running: %w", err)
	}
	if count == 0 {
		return false, nil
	}

	// started_at is set once, on the first claim only
	_, err = s.client.Run.Update().
		Where(run.IDEQ(runID), run.StartedAtIsNil()).
		SetStartedAt(time.Now()).
		Save(writeCtx)
	if err != nil {
		return false, fmt.Errorf("failed to set run start time: %w", err)
	}
	return true, nil
}

// CompleteRunFields carries the terminal write payload.
type CompleteRunFields struct {
	ErrorMessage string
	Logs         string
	DurationMs   int
	AgentData    map[string]interface{}
	StreamState  map[string]interface{}
}

// CompleteRunTx writes a terminal status inside the caller's
// transaction, with progress forced to 100 and completed_at stamped.
// Returns false when the run was already terminal (the write is
// skipped, preserving the earlier outcome).
func (s *RunService) CompleteRunTx(ctx context.Context, tx *ent.Tx, runID string, status run.Status, f CompleteRunFields) (bool, error) {
	switch status {
	case run.StatusPassed, run.StatusFailed, run.StatusCancelled, run.StatusTimedOut:
	default:
		return false, NewValidationError("status", fmt.Sprintf("%q is not terminal", status))
	}

	update := tx.Run.Update().
		Where(run.IDEQ(runID), run.StatusIn(runActive...)).
		SetStatus(status).
		SetProgress(100).
		SetCompletedAt(time.Now())
	if f.ErrorMessage != "" {
		update = update.SetErrorMessage(f.ErrorMessage)
	}
	if f.Logs != "" {
		update = update.SetLogs(f.Logs)
	}
	if f.DurationMs > 0 {
		update = update.SetDurationMs(f.DurationMs)
	}
	if f.AgentData != nil {
		update = update.SetAgentData(f.AgentData)
	}
	if f.StreamState != nil {
		update = update.SetStreamState(f.StreamState)
	}

	count, err := update.Save(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to complete run: %w", err)
	}
	return count > 0, nil
}

// CompleteRun is CompleteRunTx in its own transaction.
func (s *RunService) CompleteRun(ctx context.Context, runID string, status run.Status, f CompleteRunFields) (bool, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return false, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	applied, err := s.CompleteRunTx(writeCtx, tx, runID, status, f)
	if err != nil {
		return false, err
	}
	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit terminal status: %w", err)
	}
	return applied, nil
}

// RequestCancel flags a run for cooperative cancellation. Terminal runs
// are a no-op; the current row is returned either way.
func (s *RunService) RequestCancel(ctx context.Context, runID string) (*ent.Run, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := s.client.Run.Update().
		Where(run.IDEQ(runID), run.StatusIn(runActive...)).
		SetCancelRequested(true).
		Save(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to request cancel: %w", err)
	}
	return s.GetRun(ctx, runID, false)
}

// CancelPending finalizes a pending run straight to CANCELLED. Used
// when cancel arrives before any worker claims the job.
func (s *RunService) CancelPending(ctx context.Context, runID string) (bool, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := s.client.Run.Update().
		Where(run.IDEQ(runID), run.StatusEQ(run.StatusPending)).
		SetStatus(run.StatusCancelled).
		SetProgress(100).
		SetCompletedAt(time.Now()).
		Save(writeCtx)
	if err != nil {
		return false, fmt.Errorf("failed to cancel pending run: %w", err)
	}
	return count > 0, nil
}

// IsCancelRequested reports the cooperative cancel flag. The executor
// polls this every few seconds while a handler runs.
func (s *RunService) IsCancelRequested(ctx context.Context, runID string) (bool, error) {
	r, err := s.client.Run.Query().
		Where(run.IDEQ(runID)).
		Select(run.FieldCancelRequested).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return false, ErrNotFound
		}
		return false, fmt.Errorf("failed to read cancel flag: %w", err)
	}
	return r.CancelRequested, nil
}

// SetProgress reports a phase boundary. Terminal runs are left alone;
// their progress is already 100.
func (s *RunService) SetProgress(ctx context.Context, runID string, progress int) error {
	if progress < 0 || progress > 100 {
		return NewValidationError("progress", "must be 0-100")
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := s.client.Run.Update().
		Where(run.IDEQ(runID), run.StatusIn(runActive...)).
		SetProgress(progress).
		Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to set progress: %w", err)
	}
	return nil
}

// SaveStreamState persists tab/streaming state at a phase boundary so a
// restarted worker can recover the viewer session.
func (s *RunService) SaveStreamState(ctx context.Context, runID string, state map[string]interface{}) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := s.client.Run.Update().
		Where(run.IDEQ(runID), run.StatusIn(runActive...)).
		SetStreamState(state).
		Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to save stream state: %w", err)
	}
	return nil
}

// PurgeOldRuns deletes terminal runs whose completion predates the
// retention window, blobs included. Returns the number of runs purged.
// Active runs are never touched regardless of age.
func (s *RunService) PurgeOldRuns(ctx context.Context, retentionDays int) (int, error) {
	cutoff := time.Now().AddDate(0, 0, -retentionDays)

	queryCtx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	runIDs, err := s.client.Run.Query().
		Where(run.StatusNotIn(runActive...), run.CompletedAtLT(cutoff)).
		IDs(queryCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to find purgeable runs: %w", err)
	}

	purged := 0
	for _, runID := range runIDs {
		if err := s.DeleteRun(queryCtx, runID); err != nil && err != ErrNotFound {
			return purged, err
		}
		purged++
	}
	return purged, nil
}

// DeleteRun removes a run row and everything it owns: artifact rows by
// cascade, blobs by prefix.
func (s *RunService) DeleteRun(ctx context.Context, runID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if s.store != nil {
		if err := s.store.DeletePrefix(writeCtx, blob.RunPrefix(runID)); err != nil {
			return fmt.Errorf("failed to delete blobs for run %s: %w", runID, err)
		}
	}
	err := s.client.Run.DeleteOneID(runID).Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete run: %w", err)
	}
	return nil
}
