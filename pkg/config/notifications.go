package config

// NotificationsConfig controls failure notifications.
type NotificationsConfig struct {
	Slack *SlackConfig `yaml:"slack,omitempty"`
}

// SlackConfig holds Slack webhook notification settings.
type SlackConfig struct {
	Enabled       bool   `yaml:"enabled"`
	WebhookURLEnv string `yaml:"webhook_url_env,omitempty"`
	Channel       string `yaml:"channel,omitempty"`
}

// DefaultNotificationsConfig returns notifications disabled.
func DefaultNotificationsConfig() *NotificationsConfig {
	return &NotificationsConfig{
		Slack: &SlackConfig{
			Enabled:       false,
			WebhookURLEnv: "SLACK_WEBHOOK_URL",
		},
	}
}
