package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dappsmith/conductor/ent"
	"github.com/dappsmith/conductor/ent/recording"
	"github.com/dappsmith/conductor/ent/run"
	"github.com/dappsmith/conductor/ent/spec"
	"github.com/dappsmith/conductor/pkg/blob"
	"github.com/dappsmith/conductor/pkg/models"
)

// RecordingService manages recordings: the immutable action documents
// captured by the browser recorder that specs are generated from.
type RecordingService struct {
	client *ent.Client
	store  blob.Store
}

// NewRecordingService creates a new RecordingService.
func NewRecordingService(client *ent.Client, store blob.Store) *RecordingService {
	return &RecordingService{client: client, store: store}
}

// CreateRecording stores a new recording. Actions are immutable after
// this point.
func (s *RecordingService) CreateRecording(httpCtx context.Context, req models.CreateRecordingRequest) (*ent.Recording, error) {
	if req.ProjectID == "" {
		return nil, NewValidationError("project_id", "required")
	}
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	if len(req.Actions) == 0 {
		return nil, NewValidationError("actions", "required")
	}
	switch req.RecordingType {
	case string(recording.RecordingTypeConnection), string(recording.RecordingTypeFlow):
	default:
		return nil, NewValidationError("recording_type", "must be 'connection' or 'flow'")
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	builder := s.client.Recording.Create().
		SetID(newID(prefixRecording)).
		SetProjectID(req.ProjectID).
		SetName(req.Name).
		SetRecordingType(recording.RecordingType(req.RecordingType)).
		SetActions(req.Actions)
	if req.URL != "" {
		builder = builder.SetURL(req.URL)
	}

	rec, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrNotFound // dangling project reference
		}
		return nil, fmt.Errorf("failed to create recording: %w", err)
	}
	return rec, nil
}

// GetRecording retrieves a recording by ID.
func (s *RecordingService) GetRecording(ctx context.Context, recordingID string) (*ent.Recording, error) {
	rec, err := s.client.Recording.Get(ctx, recordingID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get recording: %w", err)
	}
	return rec, nil
}

// ListRecordings lists a project's recordings, optionally filtered by
// type, newest first.
func (s *RecordingService) ListRecordings(ctx context.Context, projectID, recordingType string) ([]*ent.Recording, error) {
	query := s.client.Recording.Query().
		Where(recording.ProjectIDEQ(projectID))
	if recordingType != "" {
		query = query.Where(recording.RecordingTypeEQ(recording.RecordingType(recordingType)))
	}
	recs, err := query.Order(ent.Desc(recording.FieldCreatedAt)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list recordings: %w", err)
	}
	return recs, nil
}

// DeleteRecording removes a recording and, through cascades, its specs
// and runs. Run blobs are deleted first so nothing is orphaned in the
// store.
func (s *RecordingService) DeleteRecording(ctx context.Context, recordingID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	runIDs, err := s.client.Run.Query().
		Where(run.HasSpecWith(spec.RecordingIDEQ(recordingID))).
		IDs(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to list runs for recording %s: %w", recordingID, err)
	}
	if s.store != nil {
		for _, runID := range runIDs {
			if err := s.store.DeletePrefix(writeCtx, blob.RunPrefix(runID)); err != nil {
				return fmt.Errorf("failed to delete blobs for run %s: %w", runID, err)
			}
		}
	}

	err = s.client.Recording.DeleteOneID(recordingID).Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete recording: %w", err)
	}
	return nil
}
