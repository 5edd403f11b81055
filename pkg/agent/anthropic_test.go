package agent

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dappsmith/conductor/pkg/config"
)

type stubMessages struct {
	resp *sdk.Message
	err  error
	got  *sdk.MessageNewParams
}

func (s *stubMessages) New(_ context.Context, params sdk.MessageNewParams, _ ...option.RequestOption) (*sdk.Message, error) {
	s.got = &params
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

func sdkAPIError(status int) *sdk.Error {
	return &sdk.Error{
		StatusCode: status,
		Request:    httptest.NewRequest(http.MethodPost, "https://api.anthropic.com/v1/messages", nil),
	}
}

func plannerRequest() *PlannerRequest {
	return &PlannerRequest{
		System: "You test dApps.",
		Tools: []ToolDefinition{{
			Name:        "browser_click",
			Description: "Click an element.",
			InputSchema: objSchema(map[string]interface{}{"ref": prop("string", "ref")}, "ref"),
		}},
		Messages: []Message{TextMessage(RoleUser, "Step 1: connect the wallet")},
	}
}

func TestAnthropicPlanner_TranslatesResponse(t *testing.T) {
	stub := &stubMessages{resp: &sdk.Message{
		Model:      "claude-sonnet-4-5",
		StopReason: sdk.StopReasonToolUse,
		Content: []sdk.ContentBlockUnion{
			{Type: "text", Text: "I will click the connect button."},
			{Type: "tool_use", ID: "tu_1", Name: "browser_click", Input: json.RawMessage(`{"ref":"e2"}`)},
		},
		Usage: sdk.Usage{
			InputTokens:              900,
			OutputTokens:             45,
			CacheReadInputTokens:     800,
			CacheCreationInputTokens: 100,
		},
	}}
	planner := NewAnthropicPlannerFromClient(stub, "claude-sonnet-4-5", 4096)

	resp, err := planner.Complete(context.Background(), plannerRequest())
	require.NoError(t, err)

	assert.Equal(t, "I will click the connect button.", resp.Text)
	require.Len(t, resp.ToolCalls, 1)
	call := resp.ToolCalls[0]
	assert.Equal(t, "tu_1", call.ID)
	assert.Equal(t, "browser_click", call.Name)
	assert.Equal(t, "e2", call.StringArg("ref"))
	assert.Equal(t, StopToolUse, resp.StopReason)
	assert.Equal(t, "claude-sonnet-4-5", resp.Model)
	assert.Equal(t, 900, resp.Usage.InputTokens)
	assert.Equal(t, 45, resp.Usage.OutputTokens)
	assert.Equal(t, 800, resp.Usage.CacheReadTokens)
	assert.Equal(t, 100, resp.Usage.CacheCreationTokens)
}

func TestAnthropicPlanner_EncodesRequest(t *testing.T) {
	stub := &stubMessages{resp: &sdk.Message{StopReason: sdk.StopReasonEndTurn}}
	planner := NewAnthropicPlannerFromClient(stub, "claude-sonnet-4-5", 4096)

	req := plannerRequest()
	req.Messages = []Message{
		TextMessage(RoleUser, "Step 1: connect"),
		{Role: RoleAssistant, Blocks: []Block{
			{Kind: BlockText, Text: "Clicking."},
			{Kind: BlockToolUse, ToolID: "tu_1", ToolName: "browser_click", ToolInput: map[string]interface{}{"ref": "e2"}},
		}},
		{Role: RoleUser, Blocks: []Block{ToolResultBlock("tu_1", "clicked", false)}},
	}

	_, err := planner.Complete(context.Background(), req)
	require.NoError(t, err)

	got := stub.got
	require.NotNil(t, got)
	assert.Equal(t, sdk.Model("claude-sonnet-4-5"), got.Model)
	assert.Equal(t, int64(4096), got.MaxTokens)
	require.Len(t, got.System, 1)
	assert.Equal(t, "You test dApps.", got.System[0].Text)
	require.Len(t, got.Tools, 1)
	require.Len(t, got.Messages, 3)
	assert.Equal(t, sdk.MessageParamRoleUser, got.Messages[0].Role)
	assert.Equal(t, sdk.MessageParamRoleAssistant, got.Messages[1].Role)
	assert.Equal(t, sdk.MessageParamRoleUser, got.Messages[2].Role)
}

func TestAnthropicPlanner_RateLimitedWrapped(t *testing.T) {
	for _, status := range []int{http.StatusTooManyRequests, 529} {
		stub := &stubMessages{err: sdkAPIError(status)}
		planner := NewAnthropicPlannerFromClient(stub, "claude-sonnet-4-5", 4096)

		_, err := planner.Complete(context.Background(), plannerRequest())
		assert.ErrorIs(t, err, ErrRateLimited, "status %d", status)
	}
}

func TestAnthropicPlanner_OtherAPIErrorsNotRateLimited(t *testing.T) {
	stub := &stubMessages{err: sdkAPIError(http.StatusInternalServerError)}
	planner := NewAnthropicPlannerFromClient(stub, "claude-sonnet-4-5", 4096)

	_, err := planner.Complete(context.Background(), plannerRequest())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrRateLimited)
}

func TestAnthropicPlanner_RequiresMessages(t *testing.T) {
	planner := NewAnthropicPlannerFromClient(&stubMessages{}, "claude-sonnet-4-5", 4096)

	_, err := planner.Complete(context.Background(), &PlannerRequest{System: "x"})
	assert.Error(t, err)
}

func TestEncodeTools_RequiresDescription(t *testing.T) {
	_, err := encodeTools([]ToolDefinition{{Name: "browser_click"}})
	assert.Error(t, err)
}

func TestNewAnthropicPlanner_KeyFromEnv(t *testing.T) {
	t.Setenv("CONDUCTOR_TEST_PLANNER_KEY", "sk-test")

	planner, err := NewAnthropicPlanner(&config.ProviderConfig{
		Model:     "claude-sonnet-4-5",
		APIKeyEnv: "CONDUCTOR_TEST_PLANNER_KEY",
		MaxTokens: 2048,
	})
	require.NoError(t, err)
	assert.NotNil(t, planner)

	_, err = NewAnthropicPlanner(&config.ProviderConfig{
		Model:     "claude-sonnet-4-5",
		APIKeyEnv: "CONDUCTOR_TEST_PLANNER_KEY_ABSENT",
	})
	assert.Error(t, err)
}

func TestTranslateMessage_ModelFallback(t *testing.T) {
	resp := translateMessage(&sdk.Message{StopReason: sdk.StopReasonEndTurn}, "claude-haiku-4-5")
	assert.Equal(t, "claude-haiku-4-5", resp.Model)
	assert.Empty(t, resp.ToolCalls)
}
