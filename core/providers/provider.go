// Package providers abstracts the generative backend behind a single
// invocation capability so the orchestrator never depends on a concrete
// SDK and tests can substitute a deterministic stub.
package providers

import (
	"context"
	"encoding/json"
	"fmt"
)

// Invoker is the one capability the orchestrator needs: a single,
// non-streaming completion with optional forced tool output.
type Invoker interface {
	Invoke(ctx context.Context, req *Request) (*Response, error)
}

// Request is one backend invocation.
type Request struct {
	SystemPrompt  string    `json:"system_prompt,omitempty"`
	Messages      []Message `json:"messages"`
	Model         string    `json:"model,omitempty"`
	MaxTokens     int       `json:"max_tokens,omitempty"`
	Temperature   *float64  `json:"temperature,omitempty"`
	Tools         []Tool    `json:"tools,omitempty"`
	ForcedTool    string    `json:"forced_tool,omitempty"`
	StopSequences []string  `json:"stop_sequences,omitempty"`
}

type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Tool struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"`
}

type ToolCall struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"`
}

type Response struct {
	Content    string     `json:"content"`
	Model      string     `json:"model"`
	StopReason StopReason `json:"stop_reason"`
	Usage      Usage      `json:"usage"`
	ToolCalls  []ToolCall `json:"tool_calls,omitempty"`
}

type StopReason string

const (
	StopReasonEndTurn      StopReason = "end_turn"
	StopReasonMaxTokens    StopReason = "max_tokens"
	StopReasonStopSequence StopReason = "stop_sequence"
	StopReasonToolUse      StopReason = "tool_use"
)

type Usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
	TotalTokens  int `json:"total_tokens"`
}

// TransportError wraps a failed backend call. StatusCode is the backend's
// reported HTTP status, or zero when the failure never reached the API
// (timeout, connection refused).
type TransportError struct {
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("backend call failed with status %d: %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("backend call failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Float64 returns a pointer to v, for optional request fields.
func Float64(v float64) *float64 { return &v }
