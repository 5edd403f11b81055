package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dappsmith/conductor/ent"
	"github.com/dappsmith/conductor/ent/project"
	"github.com/dappsmith/conductor/ent/recording"
	"github.com/dappsmith/conductor/ent/run"
	"github.com/dappsmith/conductor/ent/spec"
	"github.com/dappsmith/conductor/pkg/blob"
	"github.com/dappsmith/conductor/pkg/models"
)

// ProjectService manages project lifecycle and the wallet identity each
// project owns. Seed phrases are sealed at creation and never leave the
// service in plaintext again except through UnsealSeed, which exists for
// sandbox bootstrap only.
type ProjectService struct {
	client *ent.Client
	cipher *SeedCipher
	store  blob.Store
}

// NewProjectService creates a new ProjectService.
func NewProjectService(client *ent.Client, cipher *SeedCipher, store blob.Store) *ProjectService {
	return &ProjectService{client: client, cipher: cipher, store: store}
}

// CreateProject creates a project with a wallet identity. When the
// request carries no seed phrase a fresh one is generated. The response
// is the only time the plaintext phrase is returned.
func (s *ProjectService) CreateProject(httpCtx context.Context, req models.CreateProjectRequest) (*models.ProjectCreatedResponse, error) {
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	if req.DappURL == "" {
		return nil, NewValidationError("dapp_url", "required")
	}

	seed := req.SeedPhrase
	if seed == "" {
		generated, err := GenerateSeedPhrase()
		if err != nil {
			return nil, fmt.Errorf("failed to generate wallet identity: %w", err)
		}
		seed = generated
	}
	sealed, err := s.cipher.Seal(seed)
	if err != nil {
		return nil, fmt.Errorf("failed to seal seed phrase: %w", err)
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	proj, err := s.client.Project.Create().
		SetID(newID(prefixProject)).
		SetName(req.Name).
		SetDappURL(req.DappURL).
		SetWalletAddress(DeriveAddress(seed)).
		SetWalletSeedCipher(sealed).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return &models.ProjectCreatedResponse{Project: proj, SeedPhrase: seed}, nil
}

// GetProject retrieves a project by ID. Soft-deleted projects are not
// visible.
func (s *ProjectService) GetProject(ctx context.Context, projectID string) (*ent.Project, error) {
	proj, err := s.client.Project.Query().
		Where(project.IDEQ(projectID), project.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return proj, nil
}

// ListProjects lists projects newest first.
func (s *ProjectService) ListProjects(ctx context.Context) ([]*ent.Project, error) {
	projects, err := s.client.Project.Query().
		Where(project.DeletedAtIsNil()).
		Order(ent.Desc(project.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// UpdateProject updates the mutable project fields. Wallet material is
// immutable and cannot be changed here.
func (s *ProjectService) UpdateProject(ctx context.Context, projectID string, name, dappURL string) (*ent.Project, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.Project.UpdateOneID(projectID)
	if name != "" {
		update = update.SetName(name)
	}
	if dappURL != "" {
		update = update.SetDappURL(dappURL)
	}
	proj, err := update.Save(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	return proj, nil
}

// DeleteProject soft deletes a project. Rows and blobs are reclaimed
// later by the retention sweeper.
func (s *ProjectService) DeleteProject(ctx context.Context, projectID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.Project.UpdateOneID(projectID).
		SetDeletedAt(time.Now()).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}

// PurgeDeletedProjects hard-deletes projects soft-deleted longer than
// olderThan ago, removing their run blobs first. Returns the number of
// projects purged.
func (s *ProjectService) PurgeDeletedProjects(ctx context.Context, olderThan time.Duration) (int, error) {
	cutoff := time.Now().Add(-olderThan)

	writeCtx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	stale, err := s.client.Project.Query().
		Where(project.DeletedAtNotNil(), project.DeletedAtLT(cutoff)).
		All(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to find purgeable projects: %w", err)
	}

	purged := 0
	for _, proj := range stale {
		runIDs, err := s.client.Run.Query().
			Where(run.HasSpecWith(spec.HasRecordingWith(recording.ProjectIDEQ(proj.ID)))).
			IDs(writeCtx)
		if err != nil {
			return purged, fmt.Errorf("failed to list runs for project %s: %w", proj.ID, err)
		}
		if s.store != nil {
			for _, runID := range runIDs {
				// Best effort: a missing prefix is not an error
				if err := s.store.DeletePrefix(writeCtx, blob.RunPrefix(runID)); err != nil {
					return purged, fmt.Errorf("failed to delete blobs for run %s: %w", runID, err)
				}
			}
		}
		if err := s.client.Project.DeleteOneID(proj.ID).Exec(writeCtx); err != nil && !ent.IsNotFound(err) {
			return purged, fmt.Errorf("failed to purge project %s: %w", proj.ID, err)
		}
		purged++
	}
	return purged, nil
}

// UnsealSeed returns the plaintext seed phrase for sandbox bootstrap.
// Callers must never persist or log the result.
func (s *ProjectService) UnsealSeed(ctx context.Context, projectID string) (string, error) {
	proj, err := s.GetProject(ctx, projectID)
	if err != nil {
		return "", err
	}
	seed, err := s.cipher.Open(proj.WalletSeedCipher)
	if err != nil {
		return "", fmt.Errorf("failed to unseal seed for project %s: %w", projectID, err)
	}
	return seed, nil
}

// MaybeSetConnectionSpec records specID as the project's connection
// prelude iff none is set. Returns true when the pointer was written.
func (s *ProjectService) MaybeSetConnectionSpec(ctx context.Context, projectID, specID string) (bool, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := s.client.Project.Update().
		Where(project.IDEQ(projectID), project.ConnectionSpecIDIsNil()).
		SetConnectionSpecID(specID).
		Save(writeCtx)
	if err != nil {
		return false, fmt.Errorf("failed to set connection spec: %w", err)
	}
	return count > 0, nil
}

// ClearConnectionSpecIf nulls the connection pointer when it references
// specID. Used when the referenced spec is deleted or found stale.
func (s *ProjectService) ClearConnectionSpecIf(ctx context.Context, projectID, specID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := s.client.Project.Update().
		Where(project.IDEQ(projectID), project.ConnectionSpecIDEQ(specID)).
		ClearConnectionSpecID().
		Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to clear connection spec: %w", err)
	}
	return nil
}

// ResolveConnectionSpec loads the spec behind the project's connection
// pointer. A stale pointer (spec gone) is cleared and (nil, nil) is
// returned so the caller runs the flow standalone.
func (s *ProjectService) ResolveConnectionSpec(ctx context.Context, proj *ent.Project) (*ent.Spec, error) {
	if proj.ConnectionSpecID == nil || *proj.ConnectionSpecID == "" {
		return nil, nil
	}
	sp, err := s.client.Spec.Query().
		Where(spec.IDEQ(*proj.ConnectionSpecID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			if clearErr := s.ClearConnectionSpecIf(ctx, proj.ID, *proj.ConnectionSpecID); clearErr != nil {
				return nil, clearErr
			}
			return nil, nil
		}
		return nil, fmt.Errorf("failed to resolve connection spec: %w", err)
	}
	return sp, nil
}
