package services

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/dappsmith/conductor/ent"
	"github.com/dappsmith/conductor/ent/clarification"
	"github.com/dappsmith/conductor/ent/project"
	"github.com/dappsmith/conductor/ent/recording"
	"github.com/dappsmith/conductor/ent/run"
	"github.com/dappsmith/conductor/ent/spec"
	"github.com/dappsmith/conductor/pkg/blob"
	"github.com/dappsmith/conductor/pkg/hybrid"
	"github.com/dappsmith/conductor/pkg/models"
)

// SpecService manages spec lifecycle: creation, review transitions,
// hybrid patch application, and the self-heal lineage.
type SpecService struct {
	client *ent.Client
	store  blob.Store
}

// NewSpecService creates a new SpecService.
func NewSpecService(client *ent.Client, store blob.Store) *SpecService {
	return &SpecService{client: client, store: store}
}

// CreateSpec stores a new spec. Status defaults to draft; version,
// attempt, and max_attempts default to 1/1/3.
func (s *SpecService) CreateSpec(httpCtx context.Context, req models.CreateSpecRequest) (*ent.Spec, error) {
	if req.RecordingID == "" {
		return nil, NewValidationError("recording_id", "required")
	}
	if req.Code == "" {
		return nil, NewValidationError("code", "required")
	}
	status := spec.StatusDraft
	if req.Status != "" {
		status = spec.Status(req.Status)
		if err := spec.StatusValidator(status); err != nil {
			return nil, NewValidationError("status", err.Error())
		}
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	builder := s.client.Spec.Create().
		SetID(newID(prefixSpec)).
		SetRecordingID(req.RecordingID).
		SetCode(req.Code).
		SetStatus(status)
	if req.Version > 0 {
		builder = builder.SetVersion(req.Version)
	}
	if req.Attempt > 0 {
		builder = builder.SetAttempt(req.Attempt)
	}
	if req.MaxAttempts > 0 {
		builder = builder.SetMaxAttempts(req.MaxAttempts)
	}
	if req.ParentSpecID != "" {
		builder = builder.SetParentSpecID(req.ParentSpecID)
	}
	if req.FailureContext != nil {
		builder = builder.SetFailureContext(req.FailureContext)
	}

	sp, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrNotFound // dangling recording reference
		}
		return nil, fmt.Errorf("failed to create spec: %w", err)
	}
	return sp, nil
}

// GetSpec retrieves a spec by ID.
func (s *SpecService) GetSpec(ctx context.Context, specID string) (*ent.Spec, error) {
	sp, err := s.client.Spec.Get(ctx, specID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get spec: %w", err)
	}
	return sp, nil
}

// ListSpecs lists specs for a recording, newest version first.
func (s *SpecService) ListSpecs(ctx context.Context, recordingID string) ([]*ent.Spec, error) {
	specs, err := s.client.Spec.Query().
		Where(spec.RecordingIDEQ(recordingID)).
		Order(ent.Desc(spec.FieldVersion), ent.Desc(spec.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list specs: %w", err)
	}
	return specs, nil
}

// ResolveForRun loads a spec and enforces eligibility: drafts cannot
// run.
func (s *SpecService) ResolveForRun(ctx context.Context, specID string) (*ent.Spec, error) {
	sp, err := s.GetSpec(ctx, specID)
	if err != nil {
		return nil, err
	}
	if sp.Status == spec.StatusDraft {
		return nil, ErrNotRunnable
	}
	return sp, nil
}

// UpdateSpecCode replaces the program text after a manual edit and
// bumps the version so the lineage stays monotonic.
func (s *SpecService) UpdateSpecCode(ctx context.Context, specID, code string) (*ent.Spec, error) {
	if code == "" {
		return nil, NewValidationError("code", "required")
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sp, err := s.client.Spec.UpdateOneID(specID).
		SetCode(code).
		AddVersion(1).
		Save(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update spec code: %w", err)
	}
	return sp, nil
}

// SetSpecStatus applies a review transition. Advancing a draft to ready
// requires that none of its clarifications are still pending.
func (s *SpecService) SetSpecStatus(ctx context.Context, specID string, status spec.Status) (*ent.Spec, error) {
	if err := spec.StatusValidator(status); err != nil {
		return nil, NewValidationError("status", err.Error())
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if status == spec.StatusReady {
		pending, err := s.client.Clarification.Query().
			Where(
				clarification.SpecIDEQ(specID),
				clarification.StatusEQ(clarification.StatusPending),
			).
			Count(writeCtx)
		if err != nil {
			return nil, fmt.Errorf("failed to count pending clarifications: %w", err)
		}
		if pending > 0 {
			return nil, NewValidationError("status", fmt.Sprintf("%d clarifications still pending", pending))
		}
	}

	sp, err := s.client.Spec.UpdateOneID(specID).
		SetStatus(status).
		Save(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update spec status: %w", err)
	}
	return sp, nil
}

// MarkTested promotes a spec to tested after a passing run. Drafts are
// left alone; a spec that ran was not a draft to begin with.
func (s *SpecService) MarkTested(ctx context.Context, specID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := s.client.Spec.Update().
		Where(spec.IDEQ(specID), spec.StatusNEQ(spec.StatusDraft)).
		SetStatus(spec.StatusTested).
		Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to mark spec tested: %w", err)
	}
	return nil
}

// ApplyPatches substitutes patched step bodies into the stored spec and
// increments version, atomically. baseVersion is the version the
// patches were computed against; if the row has moved on the patches
// are stale and ErrConcurrentModification is returned.
func (s *SpecService) ApplyPatches(ctx context.Context, specID string, baseVersion int, patches []models.SpecPatch) (*ent.Spec, error) {
	if len(patches) == 0 {
		return nil, NewValidationError("patches", "required")
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	sp, err := tx.Spec.Query().
		Where(spec.IDEQ(specID)).
		ForUpdate(sql.WithLockAction(sql.NoWait)).
		Only(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock spec: %w", err)
	}
	if sp.Version != baseVersion {
		return nil, ErrConcurrentModification
	}

	patched, err := hybrid.ApplyPatches(sp.Code, patches)
	if err != nil {
		return nil, fmt.Errorf("failed to apply patches: %w", err)
	}

	sp, err = tx.Spec.UpdateOneID(specID).
		SetCode(patched).
		AddVersion(1).
		Save(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to save patched spec: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit patch: %w", err)
	}
	return sp, nil
}

// CreateHealedSpec records the regenerated child of a failed spec. The
// child is immediately runnable and carries the failure snapshot it was
// generated from.
func (s *SpecService) CreateHealedSpec(ctx context.Context, parent *ent.Spec, code string, failureCtx models.FailureContext) (*ent.Spec, error) {
	if code == "" {
		return nil, NewValidationError("code", "required")
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	child, err := s.client.Spec.Create().
		SetID(newID(prefixSpec)).
		SetRecordingID(parent.RecordingID).
		SetCode(code).
		SetStatus(spec.StatusReady).
		SetVersion(parent.Version + 1).
		SetAttempt(parent.Attempt + 1).
		SetMaxAttempts(parent.MaxAttempts).
		SetParentSpecID(parent.ID).
		SetFailureContext(failureCtx.ToMap()).
		Save(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to create healed spec: %w", err)
	}
	return child, nil
}

// ProjectForSpec walks spec -> recording -> project.
func (s *SpecService) ProjectForSpec(ctx context.Context, specID string) (*ent.Project, error) {
	proj, err := s.client.Project.Query().
		Where(project.HasRecordingsWith(recording.HasSpecsWith(spec.IDEQ(specID)))).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to resolve project for spec: %w", err)
	}
	return proj, nil
}

// DeleteSpec removes a spec and its runs. A project connection pointer
// referencing the spec is nulled first; run blobs are deleted so the
// store holds nothing for cascaded rows.
func (s *SpecService) DeleteSpec(ctx context.Context, specID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	proj, err := s.ProjectForSpec(writeCtx, specID)
	if err != nil && err != ErrNotFound {
		return err
	}
	if proj != nil && proj.ConnectionSpecID != nil && *proj.ConnectionSpecID == specID {
		if _, err := s.client.Project.Update().
			Where(project.IDEQ(proj.ID), project.ConnectionSpecIDEQ(specID)).
			ClearConnectionSpecID().
			Save(writeCtx); err != nil {
			return fmt.Errorf("failed to clear connection pointer: %w", err)
		}
	}

	runIDs, err := s.client.Run.Query().
		Where(run.SpecIDEQ(specID)).
		IDs(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to list runs for spec %s: %w", specID, err)
	}
	if s.store != nil {
		for _, runID := range runIDs {
			if err := s.store.DeletePrefix(writeCtx, blob.RunPrefix(runID)); err != nil {
				return fmt.Errorf("failed to delete blobs for run %s: %w", runID, err)
			}
		}
	}

	err = s.client.Spec.DeleteOneID(specID).Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete spec: %w", err)
	}
	return nil
}
