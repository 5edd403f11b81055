package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/dappsmith/conductor/ent"
	"github.com/dappsmith/conductor/ent/artifact"
	"github.com/dappsmith/conductor/pkg/blob"
	"github.com/dappsmith/conductor/pkg/models"
)

// ArtifactService manages artifact records. Artifacts are write-once
// and addressed by (run_id, type, name); the row is committed only
// after the blob exists, so a row always points at real bytes.
type ArtifactService struct {
	client *ent.Client
	store  blob.Store
}

// NewArtifactService creates a new ArtifactService.
func NewArtifactService(client *ent.Client, store blob.Store) *ArtifactService {
	return &ArtifactService{client: client, store: store}
}

// SaveArtifact uploads the blob and records the row, in that order.
// A duplicate (run, type, name) returns ErrAlreadyExists; the original
// bytes win.
func (s *ArtifactService) SaveArtifact(ctx context.Context, runID, artifactType, name string, r io.Reader, size int64) (*ent.Artifact, error) {
	if err := validateArtifactType(artifactType); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, NewValidationError("name", "required")
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	key := blob.RunKey(runID, artifactType, name)
	mime := blob.MimeFor(name)
	if err := s.store.Put(writeCtx, key, r, mime, size); err != nil {
		return nil, fmt.Errorf("failed to store artifact blob: %w", err)
	}

	return s.RecordArtifact(writeCtx, models.CreateArtifactRequest{
		RunID:       runID,
		Type:        artifactType,
		Name:        name,
		StoragePath: key,
		MimeType:    mime,
		SizeBytes:   size,
	})
}

// SaveArtifactBytes is SaveArtifact for in-memory payloads.
func (s *ArtifactService) SaveArtifactBytes(ctx context.Context, runID, artifactType, name string, data []byte) (*ent.Artifact, error) {
	return s.SaveArtifact(ctx, runID, artifactType, name, bytes.NewReader(data), int64(len(data)))
}

// RecordArtifact inserts the artifact row. The blob at StoragePath must
// already exist.
func (s *ArtifactService) RecordArtifact(ctx context.Context, req models.CreateArtifactRequest) (*ent.Artifact, error) {
	if req.RunID == "" {
		return nil, NewValidationError("run_id", "required")
	}
	if err := validateArtifactType(req.Type); err != nil {
		return nil, err
	}
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	if req.StoragePath == "" {
		return nil, NewValidationError("storage_path", "required")
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	builder := s.client.Artifact.Create().
		SetID(newID(prefixArtifact)).
		SetRunID(req.RunID).
		SetArtifactType(artifact.ArtifactType(req.Type)).
		SetName(req.Name).
		SetStoragePath(req.StoragePath).
		SetMimeType(req.MimeType)
	if req.SizeBytes > 0 {
		builder = builder.SetSizeBytes(req.SizeBytes)
	}

	art, err := builder.Save(writeCtx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to record artifact: %w", err)
	}
	return art, nil
}

// GetArtifact retrieves an artifact row by ID.
func (s *ArtifactService) GetArtifact(ctx context.Context, artifactID string) (*ent.Artifact, error) {
	art, err := s.client.Artifact.Get(ctx, artifactID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get artifact: %w", err)
	}
	return art, nil
}

// ListArtifacts lists a run's artifacts, optionally filtered by type,
// in creation order.
func (s *ArtifactService) ListArtifacts(ctx context.Context, runID, artifactType string) ([]*ent.Artifact, error) {
	query := s.client.Artifact.Query().
		Where(artifact.RunIDEQ(runID))
	if artifactType != "" {
		if err := validateArtifactType(artifactType); err != nil {
			return nil, err
		}
		query = query.Where(artifact.ArtifactTypeEQ(artifact.ArtifactType(artifactType)))
	}
	artifacts, err := query.Order(ent.Asc(artifact.FieldCreatedAt)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list artifacts: %w", err)
	}
	return artifacts, nil
}

// OpenArtifact streams the blob behind an artifact row.
func (s *ArtifactService) OpenArtifact(ctx context.Context, artifactID string) (*ent.Artifact, io.ReadCloser, error) {
	art, err := s.GetArtifact(ctx, artifactID)
	if err != nil {
		return nil, nil, err
	}
	rc, err := s.store.Get(ctx, art.StoragePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open artifact blob: %w", err)
	}
	return art, rc, nil
}

func validateArtifactType(t string) error {
	switch artifact.ArtifactType(t) {
	case artifact.ArtifactTypeScreenshot, artifact.ArtifactTypeVideo, artifact.ArtifactTypeTrace, artifact.ArtifactTypeLog:
		return nil
	default:
		return NewValidationError("type", fmt.Sprintf("unknown artifact type %q", t))
	}
}
