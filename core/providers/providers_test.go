package providers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnthropicConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  AnthropicConfig
		wantErr bool
	}{
		{
			name:    "valid",
			config:  AnthropicConfig{APIKey: "sk-test", Model: "claude-sonnet-4-20250514", MaxTokens: 8192},
			wantErr: false,
		},
		{
			name:    "missing api key",
			config:  AnthropicConfig{Model: "claude-sonnet-4-20250514", MaxTokens: 8192},
			wantErr: true,
		},
		{
			name:    "missing model",
			config:  AnthropicConfig{APIKey: "sk-test", MaxTokens: 8192},
			wantErr: true,
		},
		{
			name:    "zero max tokens",
			config:  AnthropicConfig{APIKey: "sk-test", Model: "claude-sonnet-4-20250514"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAnthropicConfig_MissingKeyIsSentinel(t *testing.T) {
	err := AnthropicConfig{Model: "m", MaxTokens: 1}.Validate()
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestNewAnthropicProvider_AppliesDefaults(t *testing.T) {
	p, err := NewAnthropicProvider(AnthropicConfig{APIKey: "sk-test"})
	require.NoError(t, err)

	defaults := DefaultAnthropicConfig()
	assert.Equal(t, defaults.Model, p.config.Model)
	assert.Equal(t, defaults.MaxTokens, p.config.MaxTokens)
	assert.Equal(t, "anthropic", p.Name())
}

func TestNewAnthropicProvider_RejectsMissingKey(t *testing.T) {
	_, err := NewAnthropicProvider(AnthropicConfig{})
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestExtractRequiredFields(t *testing.T) {
	tests := []struct {
		name   string
		params map[string]any
		want   []string
	}{
		{
			name:   "string slice",
			params: map[string]any{"required": []string{"summary", "analyses"}},
			want:   []string{"summary", "analyses"},
		},
		{
			name:   "any slice from decoded json",
			params: map[string]any{"required": []any{"summary", "warnings"}},
			want:   []string{"summary", "warnings"},
		},
		{
			name:   "non-string entries skipped",
			params: map[string]any{"required": []any{"summary", 7}},
			want:   []string{"summary"},
		},
		{
			name:   "absent",
			params: map[string]any{},
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractRequiredFields(tt.params))
		})
	}
}

func TestTransportError_Message(t *testing.T) {
	inner := errors.New("overloaded")

	withStatus := &TransportError{StatusCode: 429, Err: inner}
	assert.Contains(t, withStatus.Error(), "429")
	assert.ErrorIs(t, withStatus, inner)

	noStatus := &TransportError{Err: inner}
	assert.NotContains(t, noStatus.Error(), "status")
}

func TestMockInvoker_ToolResponse(t *testing.T) {
	mock := NewMockInvoker()
	mock.SetToolResponse("claude-sonnet-4-20250514", "submit_analysis", []byte(`{"ok":true}`), Usage{InputTokens: 10, OutputTokens: 5})

	resp, err := mock.Invoke(context.Background(), &Request{Model: "claude-sonnet-4-20250514"})
	require.NoError(t, err)
	require.Len(t, resp.ToolCalls, 1)

	assert.Equal(t, StopReasonToolUse, resp.StopReason)
	assert.Equal(t, "submit_analysis", resp.ToolCalls[0].Name)
	assert.JSONEq(t, `{"ok":true}`, string(resp.ToolCalls[0].Arguments))
	assert.Equal(t, 10, resp.Usage.InputTokens)
}

func TestMockInvoker_RecordsCalls(t *testing.T) {
	mock := NewMockInvoker()
	mock.SetTextResponse("m", "hello")

	assert.Equal(t, 0, mock.CallCount())
	assert.Nil(t, mock.LastCall())

	req := &Request{ForcedTool: "submit_analysis"}
	_, err := mock.Invoke(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 1, mock.CallCount())
	assert.Equal(t, req, mock.LastCall())
}

func TestMockInvoker_Error(t *testing.T) {
	mock := NewMockInvoker()
	sentinel := &TransportError{StatusCode: 529, Err: errors.New("overloaded")}
	mock.SetError(sentinel)

	_, err := mock.Invoke(context.Background(), &Request{})
	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, 1, mock.CallCount())
}

func TestMockInvoker_Reset(t *testing.T) {
	mock := NewMockInvoker()
	mock.SetTextResponse("m", "hello")
	_, _ = mock.Invoke(context.Background(), &Request{})

	mock.Reset()
	assert.Equal(t, 0, mock.CallCount())
	assert.Nil(t, mock.Response)
	assert.NoError(t, mock.Err)
}
