// Package notify delivers Slack webhook notifications for runs that
// end badly. Delivery is best-effort: a lost notification never fails
// a run.
package notify

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	goslack "github.com/slack-go/slack"

	"github.com/dappsmith/conductor/pkg/config"
)

// RunFinishedInput contains data for a terminal run notification.
type RunFinishedInput struct {
	RunID        string
	SpecID       string
	Status       string // passed, failed, timed_out, cancelled
	ErrorMessage string
	IsAutoRetry  bool
}

// Service posts run notifications to a Slack incoming webhook.
// Nil-safe: all methods are no-ops when service is nil.
type Service struct {
	webhookURL   string
	channel      string
	dashboardURL string
	httpClient   *http.Client
	logger       *slog.Logger
}

// NewService creates the notification service from config. Returns nil
// when notifications are disabled or the webhook env var is unset, so
// callers can hold a nil service without guarding every call.
func NewService(cfg *config.NotificationsConfig, dashboardURL string) *Service {
	if cfg == nil || cfg.Slack == nil || !cfg.Slack.Enabled {
		return nil
	}
	webhookURL := os.Getenv(cfg.Slack.WebhookURLEnv)
	if webhookURL == "" {
		return nil
	}
	return NewServiceWithWebhook(webhookURL, cfg.Slack.Channel, dashboardURL)
}

// NewServiceWithWebhook creates a Service against an explicit webhook
// URL. Useful for testing with a local HTTP server.
func NewServiceWithWebhook(webhookURL, channel, dashboardURL string) *Service {
	return &Service{
		webhookURL:   webhookURL,
		channel:      channel,
		dashboardURL: dashboardURL,
		httpClient:   &http.Client{Timeout: 10 * time.Second},
		logger:       slog.Default().With("component", "notify-service"),
	}
}

// NotifyRunFinished announces a terminal run. Only failures and
// timeouts are worth a ping; passed and cancelled runs are skipped.
// Fail-open: errors are logged, never returned.
func (s *Service) NotifyRunFinished(ctx context.Context, input RunFinishedInput) {
	if s == nil {
		return
	}
	if input.Status != "failed" && input.Status != "timed_out" {
		return
	}

	msg := BuildRunFinishedMessage(input, s.channel, s.dashboardURL)

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := goslack.PostWebhookCustomHTTPContext(ctx, s.webhookURL, s.httpClient, msg); err != nil {
		s.logger.Error("Failed to send run notification",
			"run_id", input.RunID,
			"status", input.Status,
			"error", err)
	}
}
