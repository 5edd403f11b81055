package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dappsmith/conductor/pkg/config"
)

func TestService_NilReceiver(t *testing.T) {
	var s *Service

	// Should not panic.
	s.NotifyRunFinished(context.Background(), RunFinishedInput{
		RunID:  "run-1",
		Status: "failed",
	})
}

func TestNewService(t *testing.T) {
	t.Run("returns nil when config nil", func(t *testing.T) {
		assert.Nil(t, NewService(nil, "https://example.com"))
	})

	t.Run("returns nil when disabled", func(t *testing.T) {
		cfg := config.DefaultNotificationsConfig()
		assert.Nil(t, NewService(cfg, "https://example.com"))
	})

	t.Run("returns nil when webhook env unset", func(t *testing.T) {
		cfg := config.DefaultNotificationsConfig()
		cfg.Slack.Enabled = true
		cfg.Slack.WebhookURLEnv = "CONDUCTOR_TEST_WEBHOOK_UNSET"
		assert.Nil(t, NewService(cfg, "https://example.com"))
	})

	t.Run("returns service when configured", func(t *testing.T) {
		t.Setenv("CONDUCTOR_TEST_WEBHOOK", "https://hooks.slack.com/services/T/B/X")
		cfg := config.DefaultNotificationsConfig()
		cfg.Slack.Enabled = true
		cfg.Slack.WebhookURLEnv = "CONDUCTOR_TEST_WEBHOOK"
		cfg.Slack.Channel = "#dapp-tests"
		assert.NotNil(t, NewService(cfg, "https://example.com"))
	})
}

func TestNotifyRunFinished_PostsWebhook(t *testing.T) {
	var received map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	svc := NewServiceWithWebhook(srv.URL, "#dapp-tests", "https://conductor.example.com")
	svc.NotifyRunFinished(context.Background(), RunFinishedInput{
		RunID:        "run-1",
		SpecID:       "spec-1",
		Status:       "failed",
		ErrorMessage: "selector not found",
	})

	require.NotNil(t, received, "webhook should have been called")
	assert.Equal(t, "#dapp-tests", received["channel"])
	assert.Contains(t, received["text"], "Run Failed")
}

func TestNotifyRunFinished_SkipsNonFailures(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	svc := NewServiceWithWebhook(srv.URL, "", "https://conductor.example.com")
	svc.NotifyRunFinished(context.Background(), RunFinishedInput{RunID: "run-1", Status: "passed"})
	svc.NotifyRunFinished(context.Background(), RunFinishedInput{RunID: "run-2", Status: "cancelled"})

	assert.False(t, called, "passed and cancelled runs should not notify")
}

func TestNotifyRunFinished_FailOpen(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	svc := NewServiceWithWebhook(srv.URL, "", "https://conductor.example.com")

	// Must not panic or propagate the delivery error.
	svc.NotifyRunFinished(context.Background(), RunFinishedInput{RunID: "run-1", Status: "failed"})
}
