package providers

import (
	"context"
	"sync"
)

// MockInvoker is a deterministic Invoker stub for tests. It records every
// request so state-machine behavior (single invocation, forced tool,
// fail-fast) can be asserted without a live backend.
type MockInvoker struct {
	mu       sync.Mutex
	Response *Response
	Err      error
	Calls    []*Request
}

// NewMockInvoker creates an empty mock.
func NewMockInvoker() *MockInvoker {
	return &MockInvoker{Calls: make([]*Request, 0)}
}

// Invoke records the call and returns the configured response or error.
func (m *MockInvoker) Invoke(ctx context.Context, req *Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Response, nil
}

// SetToolResponse configures the mock to reply with a single tool call.
func (m *MockInvoker) SetToolResponse(model, toolName string, arguments []byte, usage Usage) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Response = &Response{
		Model:      model,
		StopReason: StopReasonToolUse,
		Usage:      usage,
		ToolCalls: []ToolCall{
			{ID: "toolu_mock_01", Name: toolName, Arguments: arguments},
		},
	}
}

// SetTextResponse configures the mock to reply with free text and no tool
// call, simulating a backend that ignored the forced contract.
func (m *MockInvoker) SetTextResponse(model, content string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Response = &Response{
		Model:      model,
		Content:    content,
		StopReason: StopReasonEndTurn,
	}
}

// SetError configures the mock to fail.
func (m *MockInvoker) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Err = err
}

// CallCount returns the number of invocations made.
func (m *MockInvoker) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// LastCall returns the most recent request, or nil.
func (m *MockInvoker) LastCall() *Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Calls) == 0 {
		return nil
	}
	return m.Calls[len(m.Calls)-1]
}

// Reset clears recorded calls and configured replies.
func (m *MockInvoker) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = m.Calls[:0]
	m.Response = nil
	m.Err = nil
}
