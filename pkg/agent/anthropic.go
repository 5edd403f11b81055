package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/dappsmith/conductor/pkg/config"
	"github.com/dappsmith/conductor/pkg/models"
)

// MessagesClient captures the subset of the Anthropic SDK used by the
// adapter. *sdk.MessageService satisfies it; tests pass a mock.
type MessagesClient interface {
	New(ctx context.Context, params sdk.MessageNewParams, opts ...option.RequestOption) (*sdk.Message, error)
}

// AnthropicPlanner implements Planner on the Claude Messages API.
type AnthropicPlanner struct {
	msg       MessagesClient
	model     string
	maxTokens int64
}

// NewAnthropicPlanner builds a planner from a provider entry, reading
// the API key from the configured environment variable.
func NewAnthropicPlanner(provider *config.ProviderConfig) (*AnthropicPlanner, error) {
	if provider == nil || provider.Model == "" {
		return nil, errors.New("planner provider requires a model id")
	}
	keyEnv := provider.APIKeyEnv
	if keyEnv == "" {
		keyEnv = "ANTHROPIC_API_KEY"
	}
	key := os.Getenv(keyEnv)
	if key == "" {
		return nil, fmt.Errorf("planner API key env %s is empty", keyEnv)
	}
	opts := []option.RequestOption{option.WithAPIKey(key)}
	if provider.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(provider.BaseURL))
	}
	client := sdk.NewClient(opts...)
	return NewAnthropicPlannerFromClient(&client.Messages, provider.Model, provider.MaxTokens), nil
}

// NewAnthropicPlannerFromClient wires an existing Messages client.
// Used by tests and callers with custom transports.
func NewAnthropicPlannerFromClient(msg MessagesClient, model string, maxTokens int) *AnthropicPlanner {
	if maxTokens <= 0 {
		maxTokens = 8192
	}
	return &AnthropicPlanner{msg: msg, model: model, maxTokens: int64(maxTokens)}
}

// Complete issues one Messages.New call and translates the result.
// Rate-limit and overload responses are wrapped in ErrRateLimited so
// the loop retries without consuming budget.
func (p *AnthropicPlanner) Complete(ctx context.Context, req *PlannerRequest) (*PlannerResponse, error) {
	params, err := p.encodeRequest(req)
	if err != nil {
		return nil, err
	}
	msg, err := p.msg.New(ctx, *params)
	if err != nil {
		if isOverloaded(err) {
			return nil, fmt.Errorf("%w: %v", ErrRateLimited, err)
		}
		return nil, fmt.Errorf("planner request failed: %w", err)
	}
	return translateMessage(msg, p.model), nil
}

func (p *AnthropicPlanner) encodeRequest(req *PlannerRequest) (*sdk.MessageNewParams, error) {
	if len(req.Messages) == 0 {
		return nil, errors.New("planner request requires at least one message")
	}
	params := &sdk.MessageNewParams{
		Model:     sdk.Model(p.model),
		MaxTokens: p.maxTokens,
		Messages:  make([]sdk.MessageParam, 0, len(req.Messages)),
	}
	if req.System != "" {
		// The system prompt is identical across every call of a run;
		// mark it cacheable so repeat turns bill at cache-read rates.
		params.System = []sdk.TextBlockParam{{
			Text:         req.System,
			CacheControl: sdk.NewCacheControlEphemeralParam(),
		}}
	}
	if len(req.Tools) > 0 {
		tools, err := encodeTools(req.Tools)
		if err != nil {
			return nil, err
		}
		params.Tools = tools
	}
	for _, m := range req.Messages {
		enc, err := encodeMessage(m)
		if err != nil {
			return nil, err
		}
		params.Messages = append(params.Messages, enc)
	}
	return params, nil
}

func encodeMessage(m Message) (sdk.MessageParam, error) {
	blocks := make([]sdk.ContentBlockParamUnion, 0, len(m.Blocks))
	for _, b := range m.Blocks {
		switch b.Kind {
		case BlockText:
			if b.Text != "" {
				blocks = append(blocks, sdk.NewTextBlock(b.Text))
			}
		case BlockToolUse:
			input := b.ToolInput
			if input == nil {
				input = map[string]interface{}{}
			}
			blocks = append(blocks, sdk.NewToolUseBlock(b.ToolID, input, b.ToolName))
		case BlockToolResult:
			blocks = append(blocks, sdk.NewToolResultBlock(b.ToolUseID, b.Content, b.IsError))
		default:
			return sdk.MessageParam{}, fmt.Errorf("unsupported block kind %q", b.Kind)
		}
	}
	switch m.Role {
	case RoleUser:
		return sdk.NewUserMessage(blocks...), nil
	case RoleAssistant:
		return sdk.NewAssistantMessage(blocks...), nil
	default:
		return sdk.MessageParam{}, fmt.Errorf("unsupported message role %q", m.Role)
	}
}

func encodeTools(defs []ToolDefinition) ([]sdk.ToolUnionParam, error) {
	tools := make([]sdk.ToolUnionParam, 0, len(defs))
	for _, def := range defs {
		if def.Name == "" || def.Description == "" {
			return nil, fmt.Errorf("tool %q requires a name and description", def.Name)
		}
		schema := sdk.ToolInputSchemaParam{}
		if def.InputSchema != nil {
			schema.ExtraFields = def.InputSchema
		}
		u := sdk.ToolUnionParamOfTool(schema, def.Name)
		if u.OfTool != nil {
			u.OfTool.Description = sdk.String(def.Description)
		}
		tools = append(tools, u)
	}
	return tools, nil
}

func translateMessage(msg *sdk.Message, fallbackModel string) *PlannerResponse {
	resp := &PlannerResponse{
		StopReason: string(msg.StopReason),
		Model:      string(msg.Model),
	}
	if resp.Model == "" {
		resp.Model = fallbackModel
	}
	var text strings.Builder
	for _, block := range msg.Content {
		switch block.Type {
		case "text":
			if block.Text == "" {
				continue
			}
			if text.Len() > 0 {
				text.WriteByte('\n')
			}
			text.WriteString(block.Text)
		case "tool_use":
			call := ToolCall{ID: block.ID, Name: block.Name}
			if len(block.Input) > 0 {
				if err := json.Unmarshal(block.Input, &call.Input); err != nil {
					slog.Warn("Discarding undecodable tool input", "tool", block.Name, "error", err)
				}
			}
			resp.ToolCalls = append(resp.ToolCalls, call)
		}
	}
	resp.Text = text.String()
	resp.Usage = models.TokenUsage{
		InputTokens:         int(msg.Usage.InputTokens),
		OutputTokens:        int(msg.Usage.OutputTokens),
		CacheReadTokens:     int(msg.Usage.CacheReadInputTokens),
		CacheCreationTokens: int(msg.Usage.CacheCreationInputTokens),
	}
	return resp
}

// isOverloaded reports whether the provider asked us to back off:
// HTTP 429, or Anthropic's 529 overloaded status.
func isOverloaded(err error) bool {
	var apiErr *sdk.Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusTooManyRequests || apiErr.StatusCode == 529
	}
	return false
}
