package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dappsmith/conductor/ent"
	"github.com/dappsmith/conductor/ent/clarification"
	"github.com/dappsmith/conductor/ent/spec"
	"github.com/dappsmith/conductor/pkg/models"
)

// ClarificationService manages generator questions. Resolving the last
// pending clarification advances the owning draft spec to ready.
type ClarificationService struct {
	client *ent.Client
}

// NewClarificationService creates a new ClarificationService.
func NewClarificationService(client *ent.Client) *ClarificationService {
	return &ClarificationService{client: client}
}

// CreateClarification records a pending question against a spec.
func (s *ClarificationService) CreateClarification(httpCtx context.Context, req models.CreateClarificationRequest) (*ent.Clarification, error) {
	if req.SpecID == "" {
		return nil, NewValidationError("spec_id", "required")
	}
	if req.Question == "" {
		return nil, NewValidationError("question", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cl, err := s.client.Clarification.Create().
		SetID(newID(prefixClarification)).
		SetSpecID(req.SpecID).
		SetQuestion(req.Question).
		SetStatus(clarification.StatusPending).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrNotFound // dangling spec reference
		}
		return nil, fmt.Errorf("failed to create clarification: %w", err)
	}
	return cl, nil
}

// ListClarifications lists a spec's clarifications, oldest first,
// optionally filtered by status.
func (s *ClarificationService) ListClarifications(ctx context.Context, specID, status string) ([]*ent.Clarification, error) {
	query := s.client.Clarification.Query().
		Where(clarification.SpecIDEQ(specID))
	if status != "" {
		st := clarification.Status(status)
		if err := clarification.StatusValidator(st); err != nil {
			return nil, NewValidationError("status", err.Error())
		}
		query = query.Where(clarification.StatusEQ(st))
	}
	clarifications, err := query.Order(ent.Asc(clarification.FieldCreatedAt)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list clarifications: %w", err)
	}
	return clarifications, nil
}

// AnswerClarification resolves a pending question with an answer.
func (s *ClarificationService) AnswerClarification(ctx context.Context, clarificationID, answer string) (*ent.Clarification, error) {
	if answer == "" {
		return nil, NewValidationError("answer", "required")
	}
	return s.resolve(ctx, clarificationID, clarification.StatusAnswered, answer)
}

// SkipClarification resolves a pending question without an answer.
func (s *ClarificationService) SkipClarification(ctx context.Context, clarificationID string) (*ent.Clarification, error) {
	return s.resolve(ctx, clarificationID, clarification.StatusSkipped, "")
}

func (s *ClarificationService) resolve(ctx context.Context, clarificationID string, status clarification.Status, answer string) (*ent.Clarification, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	update := tx.Clarification.UpdateOneID(clarificationID).
		Where(clarification.StatusEQ(clarification.StatusPending)).
		SetStatus(status).
		SetResolvedAt(time.Now())
	if answer != "" {
		update = update.SetAnswer(answer)
	}
	cl, err := update.Save(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to resolve clarification: %w", err)
	}

	// Last pending question resolved: the draft becomes ready
	pending, err := tx.Clarification.Query().
		Where(
			clarification.SpecIDEQ(cl.SpecID),
			clarification.StatusEQ(clarification.StatusPending),
		).
		Count(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to count pending clarifications: %w", err)
	}
	if pending == 0 {
		_, err = tx.Spec.Update().
			Where(spec.IDEQ(cl.SpecID), spec.StatusEQ(spec.StatusDraft)).
			SetStatus(spec.StatusReady).
			Save(writeCtx)
		if err != nil {
			return nil, fmt.Errorf("failed to advance spec: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit resolution: %w", err)
	}
	return cl, nil
}
