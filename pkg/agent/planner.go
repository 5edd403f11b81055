// Package agent implements the planner-driven browser agent: a remote
// model receives the conversation so far and returns structured tool
// calls, which the loop executes against a live sandbox under per-step
// and per-run call budgets.
package agent

import (
	"context"
	"errors"

	"github.com/dappsmith/conductor/pkg/models"
)

// ErrRateLimited wraps planner failures caused by rate limiting or
// provider overload. The loop sleeps briefly and retries without
// consuming a budget slot.
var ErrRateLimited = errors.New("planner rate limited")

// Budget exhaustion sentinels. The run cap aborts the run with all
// remaining steps failed; the step cap fails that step only.
var (
	ErrRunBudgetExhausted  = errors.New("run planner-call budget exhausted")
	ErrStepBudgetExhausted = errors.New("step planner-call budget exhausted")
)

// Planner is the remote model behind the agent loop. Implementations
// translate one conversation turn into a provider call and report tool
// calls, text, and token usage back.
type Planner interface {
	Complete(ctx context.Context, req *PlannerRequest) (*PlannerResponse, error)
}

// Role of a conversation message.
type Role string

// Conversation roles. The system prompt travels outside the message
// list so providers can cache it.
const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Block kinds within a message.
const (
	BlockText       = "text"
	BlockToolUse    = "tool_use"
	BlockToolResult = "tool_result"
)

// Block is one content element of a message. Kind selects which fields
// are meaningful.
type Block struct {
	Kind string

	// text
	Text string

	// tool_use
	ToolID    string
	ToolName  string
	ToolInput map[string]interface{}

	// tool_result
	ToolUseID string
	Content   string
	IsError   bool
}

// Message is one turn of the planner conversation.
type Message struct {
	Role   Role
	Blocks []Block
}

// TextMessage builds a single-text message.
func TextMessage(role Role, text string) Message {
	return Message{Role: role, Blocks: []Block{{Kind: BlockText, Text: text}}}
}

// ToolResultBlock builds one tool_result block for reporting an
// executed call back to the planner.
func ToolResultBlock(toolUseID, content string, isError bool) Block {
	return Block{Kind: BlockToolResult, ToolUseID: toolUseID, Content: content, IsError: isError}
}

// ToolDefinition describes one tool advertised to the planner. The
// input schema is plain JSON Schema properties/required, with the
// top-level object type implied.
type ToolDefinition struct {
	Name        string
	Description string
	InputSchema map[string]interface{}
}

// ToolCall is one structured call returned by the planner.
type ToolCall struct {
	ID    string
	Name  string
	Input map[string]interface{}
}

// StringArg returns the named input field as a string, or "".
func (c ToolCall) StringArg(key string) string {
	v, _ := c.Input[key].(string)
	return v
}

// IntArg returns the named input field as an int. Decoded JSON numbers
// arrive as float64.
func (c ToolCall) IntArg(key string) int {
	switch v := c.Input[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return 0
}

// BoolArg returns the named input field as a bool, or false.
func (c ToolCall) BoolArg(key string) bool {
	v, _ := c.Input[key].(bool)
	return v
}

// PlannerRequest is the provider-independent request shape: a cacheable
// system prompt, the tool catalog, and the conversation so far.
type PlannerRequest struct {
	System   string
	Tools    []ToolDefinition
	Messages []Message
}

// Planner stop reasons the loop acts on.
const (
	StopEndTurn   = "end_turn"
	StopToolUse   = "tool_use"
	StopMaxTokens = "max_tokens"
)

// PlannerResponse is one planner turn: optional text, zero or more
// tool calls, and the usage sample for cost accounting.
type PlannerResponse struct {
	Text       string
	ToolCalls  []ToolCall
	StopReason string
	Model      string
	Usage      models.TokenUsage
}
