package notify

import (
	"strings"
	"testing"
	"unicode/utf8"

	goslack "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRunFinishedMessage_Failed(t *testing.T) {
	msg := BuildRunFinishedMessage(RunFinishedInput{
		RunID:        "run-1",
		SpecID:       "spec-1",
		Status:       "failed",
		ErrorMessage: "Timeout exceeded waiting for selector '#swap-button'",
	}, "#dapp-tests", "https://conductor.example.com")

	assert.Equal(t, "#dapp-tests", msg.Channel)
	assert.Contains(t, msg.Text, ":x:")
	assert.Contains(t, msg.Text, "Run Failed")

	require.Len(t, msg.Blocks.BlockSet, 2)

	header, ok := msg.Blocks.BlockSet[0].(*goslack.SectionBlock)
	require.True(t, ok)
	assert.Contains(t, header.Text.Text, ":x:")
	assert.Contains(t, header.Text.Text, "Run Failed")
	assert.Contains(t, header.Text.Text, "spec-1")
	assert.Contains(t, header.Text.Text, "Timeout exceeded waiting for selector")

	action, ok := msg.Blocks.BlockSet[1].(*goslack.ActionBlock)
	require.True(t, ok)
	require.Len(t, action.Elements.ElementSet, 1)
	btn, ok := action.Elements.ElementSet[0].(*goslack.ButtonBlockElement)
	require.True(t, ok)
	assert.Equal(t, "View Run", btn.Text.Text)
	assert.Equal(t, "https://conductor.example.com/runs/run-1", btn.URL)
}

func TestBuildRunFinishedMessage_TimedOut(t *testing.T) {
	msg := BuildRunFinishedMessage(RunFinishedInput{
		RunID:  "run-2",
		SpecID: "spec-2",
		Status: "timed_out",
	}, "", "https://conductor.example.com")

	header := msg.Blocks.BlockSet[0].(*goslack.SectionBlock)
	assert.Contains(t, header.Text.Text, ":hourglass:")
	assert.Contains(t, header.Text.Text, "Run Timed Out")
	assert.NotContains(t, header.Text.Text, "*Error:*")
}

func TestBuildRunFinishedMessage_AutoRetry(t *testing.T) {
	msg := BuildRunFinishedMessage(RunFinishedInput{
		RunID:       "run-3",
		SpecID:      "spec-3",
		Status:      "failed",
		IsAutoRetry: true,
	}, "", "https://conductor.example.com")

	header := msg.Blocks.BlockSet[0].(*goslack.SectionBlock)
	assert.Contains(t, header.Text.Text, "(auto-retry)")
}

func TestBuildRunFinishedMessage_UnknownStatus(t *testing.T) {
	msg := BuildRunFinishedMessage(RunFinishedInput{
		RunID:  "run-4",
		SpecID: "spec-4",
		Status: "exploded",
	}, "", "https://conductor.example.com")

	header := msg.Blocks.BlockSet[0].(*goslack.SectionBlock)
	assert.Contains(t, header.Text.Text, ":question:")
	assert.Contains(t, header.Text.Text, "Run exploded")
}

func TestTruncateForSlack(t *testing.T) {
	t.Run("short text unchanged", func(t *testing.T) {
		assert.Equal(t, "hello", truncateForSlack("hello"))
	})

	t.Run("exact limit unchanged", func(t *testing.T) {
		text := strings.Repeat("a", maxBlockTextLength)
		assert.Equal(t, text, truncateForSlack(text))
	})

	t.Run("over limit truncated", func(t *testing.T) {
		text := strings.Repeat("a", maxBlockTextLength+100)
		result := truncateForSlack(text)
		assert.True(t, len(result) < len(text))
		assert.Contains(t, result, "truncated")
	})

	t.Run("multi-byte runes not split", func(t *testing.T) {
		text := strings.Repeat("🔥", maxBlockTextLength+10)
		result := truncateForSlack(text)
		assert.True(t, utf8.ValidString(result))
		prefix := strings.Split(result, "\n\n_...")[0]
		assert.Equal(t, maxBlockTextLength, utf8.RuneCountInString(prefix))
	})
}
