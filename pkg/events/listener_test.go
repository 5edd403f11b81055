package events

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNotifyListener(t *testing.T) {
	manager := NewConnectionManager(nil, 5*time.Second)
	listener := NewNotifyListener("host=localhost dbname=test", manager)

	require.NotNil(t, listener)
	assert.Equal(t, "host=localhost dbname=test", listener.connString)
	assert.NotNil(t, listener.channels)
	assert.Empty(t, listener.channels)
	assert.Equal(t, manager, listener.manager)
}

func TestNotifyListener_ChannelTrackingWithoutConnection(t *testing.T) {
	// Without Start, the listener has no pgx connection; Subscribe must
	// fail loudly while Unsubscribe of an untracked channel is a no-op.
	manager := NewConnectionManager(nil, 5*time.Second)
	listener := NewNotifyListener("host=localhost dbname=test", manager)

	t.Run("subscribe without connection returns error", func(t *testing.T) {
		err := listener.Subscribe(context.Background(), RunChannel("run_abc"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not established")
		assert.False(t, listener.isListening(RunChannel("run_abc")))
	})

	t.Run("unsubscribe without connection is a no-op", func(t *testing.T) {
		err := listener.Unsubscribe(context.Background(), RunChannel("run_abc"))
		assert.NoError(t, err)
	})
}
