package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dappsmith/conductor/ent"
	"github.com/dappsmith/conductor/ent/event"
)

// EventService reads and trims the durable event feed behind the
// websocket catchup protocol. Writes happen in the event publisher,
// inside the same transaction as the NOTIFY.
type EventService struct {
	client *ent.Client
}

// NewEventService creates a new EventService.
func NewEventService(client *ent.Client) *EventService {
	return &EventService{client: client}
}

// GetEventsSince retrieves up to limit events on a channel with id
// greater than sinceID, in id order.
func (s *EventService) GetEventsSince(ctx context.Context, channel string, sinceID int, limit int) ([]*ent.Event, error) {
	query := s.client.Event.Query().
		Where(
			event.ChannelEQ(channel),
			event.IDGT(sinceID),
		).
		Order(ent.Asc(event.FieldID))
	if limit > 0 {
		query = query.Limit(limit)
	}
	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}
	return events, nil
}

// CleanupRunEvents removes all events for a run.
func (s *EventService) CleanupRunEvents(ctx context.Context, runID string) (int, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := s.client.Event.Delete().
		Where(event.RunIDEQ(runID)).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup run events: %w", err)
	}
	return count, nil
}

// CleanupOldEvents removes events older than maxAge.
func (s *EventService) CleanupOldEvents(ctx context.Context, maxAge time.Duration) (int, error) {
	cutoff := time.Now().Add(-maxAge)

	writeCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.Event.Delete().
		Where(event.CreatedAtLT(cutoff)).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup old events: %w", err)
	}
	return count, nil
}
