package events

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dappsmith/conductor/ent"
)

// mockEventQuerier implements eventQuerier for testing the adapter.
type mockEventQuerier struct {
	events []*ent.Event
	err    error
}

func (m *mockEventQuerier) GetEventsSince(_ context.Context, _ string, _ int, limit int) ([]*ent.Event, error) {
	if m.err != nil {
		return nil, m.err
	}
	if limit > 0 && len(m.events) > limit {
		return m.events[:limit], nil
	}
	return m.events, nil
}

func TestEventServiceAdapter_GetCatchupEvents(t *testing.T) {
	// The adapter maps ent.Event rows to CatchupEvents, decoding the
	// stored JSON payload text.
	querier := &mockEventQuerier{
		events: []*ent.Event{
			{ID: 10, Payload: `{"type":"run.status","seq":1}`},
			{ID: 20, Payload: `{"type":"run.step","seq":2}`},
		},
	}

	adapter := NewEventServiceAdapter(querier)
	events, err := adapter.GetCatchupEvents(context.Background(), "run:test", 0, 10)
	require.NoError(t, err)
	require.Len(t, events, 2)

	// Verify ID mapping
	assert.Equal(t, 10, events[0].ID)
	assert.Equal(t, 20, events[1].ID)

	// Verify Payload decoding
	assert.Equal(t, EventTypeRunStatus, events[0].Payload["type"])
	assert.Equal(t, float64(1), events[0].Payload["seq"])
	assert.Equal(t, EventTypeRunStep, events[1].Payload["type"])
}

func TestEventServiceAdapter_SkipsUndecodableRows(t *testing.T) {
	querier := &mockEventQuerier{
		events: []*ent.Event{
			{ID: 1, Payload: `{"type":"run.status"}`},
			{ID: 2, Payload: `{corrupted`},
			{ID: 3, Payload: `{"type":"run.step"}`},
		},
	}

	adapter := NewEventServiceAdapter(querier)
	events, err := adapter.GetCatchupEvents(context.Background(), "run:test", 0, 10)
	require.NoError(t, err)
	require.Len(t, events, 2, "corrupted row is skipped, not fatal")
	assert.Equal(t, 1, events[0].ID)
	assert.Equal(t, 3, events[1].ID)
}

func TestEventServiceAdapter_PropagatesError(t *testing.T) {
	querier := &mockEventQuerier{err: fmt.Errorf("connection refused")}

	adapter := NewEventServiceAdapter(querier)
	events, err := adapter.GetCatchupEvents(context.Background(), "run:test", 0, 10)
	assert.Error(t, err)
	assert.Nil(t, events)
}

func TestEventServiceAdapter_EmptyResult(t *testing.T) {
	adapter := NewEventServiceAdapter(&mockEventQuerier{})
	events, err := adapter.GetCatchupEvents(context.Background(), "run:empty", 0, 10)
	require.NoError(t, err)
	assert.Empty(t, events)
}
