package notify

import (
	"fmt"

	goslack "github.com/slack-go/slack"
)

const maxBlockTextLength = 2900

var statusEmoji = map[string]string{
	"passed":    ":white_check_mark:",
	"failed":    ":x:",
	"timed_out": ":hourglass:",
	"cancelled": ":no_entry_sign:",
}

var statusLabel = map[string]string{
	"passed":    "Run Passed",
	"failed":    "Run Failed",
	"timed_out": "Run Timed Out",
	"cancelled": "Run Cancelled",
}

func runURL(runID, dashboardURL string) string {
	return fmt.Sprintf("%s/runs/%s", dashboardURL, runID)
}

// BuildRunFinishedMessage creates the webhook payload for a terminal
// run notification.
func BuildRunFinishedMessage(input RunFinishedInput, channel, dashboardURL string) *goslack.WebhookMessage {
	emoji := statusEmoji[input.Status]
	if emoji == "" {
		emoji = ":question:"
	}
	label := statusLabel[input.Status]
	if label == "" {
		label = "Run " + input.Status
	}
	if input.IsAutoRetry {
		label += " (auto-retry)"
	}

	headerText := fmt.Sprintf("%s *%s* — spec `%s`", emoji, label, input.SpecID)
	if input.ErrorMessage != "" {
		headerText += fmt.Sprintf("\n\n*Error:*\n%s", truncateForSlack(input.ErrorMessage))
	}

	blocks := []goslack.Block{
		goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, headerText, false, false),
			nil, nil,
		),
	}

	btn := goslack.NewButtonBlockElement("", "", goslack.NewTextBlockObject(goslack.PlainTextType, "View Run", false, false))
	btn.URL = runURL(input.RunID, dashboardURL)
	blocks = append(blocks, goslack.NewActionBlock("", btn))

	return &goslack.WebhookMessage{
		Channel: channel,
		Text:    fmt.Sprintf("%s %s", emoji, label),
		Blocks:  &goslack.Blocks{BlockSet: blocks},
	}
}

func truncateForSlack(text string) string {
	runes := []rune(text)
	if len(runes) <= maxBlockTextLength {
		return text
	}
	return string(runes[:maxBlockTextLength]) + "\n\n_... (truncated — view the full error in the dashboard)_"
}
