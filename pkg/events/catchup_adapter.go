package events

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/dappsmith/conductor/ent"
)

// eventQuerier is the slice of services.EventService the adapter needs.
type eventQuerier interface {
	GetEventsSince(ctx context.Context, channel string, sinceID int, limit int) ([]*ent.Event, error)
}

// EventServiceAdapter wraps services.EventService to implement CatchupQuerier.
type EventServiceAdapter struct {
	eventService eventQuerier
}

// NewEventServiceAdapter creates a CatchupQuerier from an EventService.
func NewEventServiceAdapter(es eventQuerier) *EventServiceAdapter {
	return &EventServiceAdapter{eventService: es}
}

// GetCatchupEvents queries events since sinceID up to limit for the catchup
// mechanism. Stored payloads are JSON text; rows that fail to decode are
// skipped rather than poisoning the whole catchup response.
func (a *EventServiceAdapter) GetCatchupEvents(ctx context.Context, channel string, sinceID, limit int) ([]CatchupEvent, error) {
	events, err := a.eventService.GetEventsSince(ctx, channel, sinceID, limit)
	if err != nil {
		return nil, err
	}

	result := make([]CatchupEvent, 0, len(events))
	for _, evt := range events {
		var payload map[string]any
		if err := json.Unmarshal([]byte(evt.Payload), &payload); err != nil {
			slog.Warn("Skipping undecodable event during catchup",
				"event_id", evt.ID, "channel", channel, "error", err)
			continue
		}
		result = append(result, CatchupEvent{
			ID:      evt.ID,
			Payload: payload,
		})
	}
	return result, nil
}
