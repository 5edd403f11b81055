package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dappsmith/conductor/ent"
	"github.com/dappsmith/conductor/ent/recording"
	"github.com/dappsmith/conductor/ent/run"
	"github.com/dappsmith/conductor/ent/spec"
	"github.com/dappsmith/conductor/ent/suiterun"
	"github.com/dappsmith/conductor/pkg/models"
)

var suiteActive = []suiterun.Status{suiterun.StatusPending, suiterun.StatusRunning}

// SuiteRunService manages suite runs: ordered sets of specs executed
// serially in one shared sandbox.
type SuiteRunService struct {
	client *ent.Client
}

// NewSuiteRunService creates a new SuiteRunService.
func NewSuiteRunService(client *ent.Client) *SuiteRunService {
	return &SuiteRunService{client: client}
}

// CreateSuiteRun validates that every spec belongs to the project and
// is runnable, then creates the pending suite. Duplicate spec ids are
// allowed; order is preserved.
func (s *SuiteRunService) CreateSuiteRun(httpCtx context.Context, req models.CreateSuiteRunRequest) (*ent.SuiteRun, error) {
	if req.ProjectID == "" {
		return nil, NewValidationError("project_id", "required")
	}
	if len(req.SpecIDs) == 0 {
		return nil, NewValidationError("spec_ids", "required")
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	unique := make(map[string]struct{}, len(req.SpecIDs))
	for _, id := range req.SpecIDs {
		unique[id] = struct{}{}
	}
	ids := make([]string, 0, len(unique))
	for id := range unique {
		ids = append(ids, id)
	}

	specs, err := s.client.Spec.Query().
		Where(spec.IDIn(ids...), spec.HasRecordingWith(recording.ProjectIDEQ(req.ProjectID))).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve suite specs: %w", err)
	}
	if len(specs) != len(unique) {
		return nil, NewValidationError("spec_ids", "one or more specs not found in project")
	}
	for _, sp := range specs {
		if sp.Status == spec.StatusDraft {
			return nil, ErrNotRunnable
		}
	}

	sr, err := s.client.SuiteRun.Create().
		SetID(newID(prefixSuiteRun)).
		SetProjectID(req.ProjectID).
		SetSpecIds(req.SpecIDs).
		SetStatus(suiterun.StatusPending).
		SetTotalTests(len(req.SpecIDs)).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to create suite run: %w", err)
	}
	return sr, nil
}

// GetSuiteRun retrieves a suite run, optionally with its child runs in
// submission order.
func (s *SuiteRunService) GetSuiteRun(ctx context.Context, suiteRunID string, withRuns bool) (*ent.SuiteRun, error) {
	query := s.client.SuiteRun.Query().Where(suiterun.IDEQ(suiteRunID))
	if withRuns {
		query = query.WithRuns(func(q *ent.RunQuery) {
			q.Order(ent.Asc(run.FieldSuiteIndex))
		})
	}
	sr, err := query.Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get suite run: %w", err)
	}
	return sr, nil
}

// ListSuiteRuns lists a project's suite runs, newest first.
func (s *SuiteRunService) ListSuiteRuns(ctx context.Context, projectID string, limit int) ([]*ent.SuiteRun, error) {
	if limit <= 0 {
		limit = 20
	}
	suites, err := s.client.SuiteRun.Query().
		Where(suiterun.ProjectIDEQ(projectID)).
		Order(ent.Desc(suiterun.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list suite runs: %w", err)
	}
	return suites, nil
}

// MarkRunning transitions a suite to RUNNING when its worker claims it.
func (s *SuiteRunService) MarkRunning(ctx context.Context, suiteRunID string) (bool, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := s.client.SuiteRun.Update().
		Where(suiterun.IDEQ(suiteRunID), suiterun.StatusIn(suiteActive...)).
		SetStatus(suiterun.StatusRunning).
		Save(writeCtx)
	if err != nil {
		return false, fmt.Errorf("failed to mark suite running: %w", err)
	}
	if count == 0 {
		return false, nil
	}
	_, err = s.client.SuiteRun.Update().
		Where(suiterun.IDEQ(suiteRunID), suiterun.StartedAtIsNil()).
		SetStartedAt(time.Now()).
		Save(writeCtx)
	if err != nil {
		return false, fmt.Errorf("failed to set suite start time: %w", err)
	}
	return true, nil
}

// RecordChildResult bumps the pass/fail counters after a child run
// finishes. Cancelled and timed-out children count as failures so the
// counters always sum to the number of children.
func (s *SuiteRunService) RecordChildResult(ctx context.Context, suiteRunID string, passed bool) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.SuiteRun.Update().
		Where(suiterun.IDEQ(suiteRunID))
	if passed {
		update = update.AddPassedTests(1)
	} else {
		update = update.AddFailedTests(1)
	}
	if _, err := update.Save(writeCtx); err != nil {
		return fmt.Errorf("failed to record suite child result: %w", err)
	}
	return nil
}

// CompleteSuiteRun writes the suite's terminal status. Already-terminal
// suites are left untouched and false is returned.
func (s *SuiteRunService) CompleteSuiteRun(ctx context.Context, suiteRunID string, status suiterun.Status, errorMessage string) (bool, error) {
	switch status {
	case suiterun.StatusPassed, suiterun.StatusFailed, suiterun.StatusCancelled, suiterun.StatusTimedOut:
	default:
		return false, NewValidationError("status", fmt.Sprintf("%q is not terminal", status))
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.SuiteRun.Update().
		Where(suiterun.IDEQ(suiteRunID), suiterun.StatusIn(suiteActive...)).
		SetStatus(status).
		SetCompletedAt(time.Now())
	if errorMessage != "" {
		update = update.SetErrorMessage(errorMessage)
	}
	count, err := update.Save(writeCtx)
	if err != nil {
		return false, fmt.Errorf("failed to complete suite run: %w", err)
	}
	return count > 0, nil
}
