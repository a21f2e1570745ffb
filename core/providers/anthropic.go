package providers

import (
	"context"
	"errors"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// AnthropicProvider implements Invoker on Anthropic's Messages API.
type AnthropicProvider struct {
	client *anthropic.Client
	config AnthropicConfig
}

// NewAnthropicProvider creates a provider with the given configuration.
func NewAnthropicProvider(config AnthropicConfig) (*AnthropicProvider, error) {
	if config.Model == "" {
		config.Model = DefaultAnthropicConfig().Model
	}
	if config.MaxTokens == 0 {
		config.MaxTokens = DefaultAnthropicConfig().MaxTokens
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	opts := []option.RequestOption{
		option.WithAPIKey(config.APIKey),
	}
	if config.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(config.BaseURL))
	}

	client := anthropic.NewClient(opts...)

	return &AnthropicProvider{
		client: &client,
		config: config,
	}, nil
}

// Name returns the provider identifier.
func (p *AnthropicProvider) Name() string {
	return "anthropic"
}

// Invoke performs a single non-streaming completion. API failures are
// wrapped in TransportError carrying the reported status code.
func (p *AnthropicProvider) Invoke(ctx context.Context, req *Request) (*Response, error) {
	params := p.buildParams(req)

	msg, err := p.client.Messages.New(ctx, params)
	if err != nil {
		status := 0
		var apierr *anthropic.Error
		if errors.As(err, &apierr) {
			status = apierr.StatusCode
		}
		return nil, &TransportError{StatusCode: status, Err: err}
	}

	return p.convertResponse(msg), nil
}

// buildParams constructs Anthropic API parameters from a Request.
func (p *AnthropicProvider) buildParams(req *Request) anthropic.MessageNewParams {
	model := req.Model
	if model == "" {
		model = p.config.Model
	}

	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = p.config.MaxTokens
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(model),
		MaxTokens: int64(maxTokens),
		System: []anthropic.TextBlockParam{
			{Text: req.SystemPrompt},
		},
		Messages: p.convertMessages(req.Messages),
		Tools:    p.convertTools(req.Tools),
	}

	if req.Temperature != nil {
		params.Temperature = anthropic.Float(*req.Temperature)
	}

	if req.ForcedTool != "" {
		params.ToolChoice = anthropic.ToolChoiceUnionParam{
			OfTool: &anthropic.ToolChoiceToolParam{Name: req.ForcedTool},
		}
	}

	if len(req.StopSequences) > 0 {
		params.StopSequences = req.StopSequences
	}

	return params
}

// convertMessages converts generic messages to Anthropic format.
func (p *AnthropicProvider) convertMessages(messages []Message) []anthropic.MessageParam {
	result := make([]anthropic.MessageParam, 0, len(messages))

	for _, msg := range messages {
		switch msg.Role {
		case RoleUser:
			result = append(result, anthropic.NewUserMessage(
				anthropic.NewTextBlock(msg.Content),
			))
		case RoleAssistant:
			result = append(result, anthropic.NewAssistantMessage(
				anthropic.NewTextBlock(msg.Content),
			))
		}
	}

	return result
}

// convertTools converts generic tools to Anthropic format.
func (p *AnthropicProvider) convertTools(tools []Tool) []anthropic.ToolUnionParam {
	result := make([]anthropic.ToolUnionParam, len(tools))
	for i, tool := range tools {
		result[i] = anthropic.ToolUnionParam{
			OfTool: &anthropic.ToolParam{
				Name:        tool.Name,
				Description: anthropic.String(tool.Description),
				InputSchema: buildAnthropicSchema(tool.Parameters),
			},
		}
	}
	return result
}

func buildAnthropicSchema(params map[string]any) anthropic.ToolInputSchemaParam {
	return anthropic.ToolInputSchemaParam{
		Type:       "object",
		Properties: params["properties"],
		Required:   extractRequiredFields(params),
	}
}

func extractRequiredFields(params map[string]any) []string {
	switch req := params["required"].(type) {
	case []string:
		return req
	case []any:
		result := make([]string, 0, len(req))
		for _, r := range req {
			if s, ok := r.(string); ok {
				result = append(result, s)
			}
		}
		return result
	default:
		return nil
	}
}

// convertResponse converts an Anthropic response to generic format.
func (p *AnthropicProvider) convertResponse(msg *anthropic.Message) *Response {
	var content string
	var toolCalls []ToolCall

	for _, block := range msg.Content {
		switch b := block.AsAny().(type) {
		case anthropic.TextBlock:
			content += b.Text
		case anthropic.ToolUseBlock:
			args, _ := b.Input.MarshalJSON()
			toolCalls = append(toolCalls, ToolCall{
				ID:        b.ID,
				Name:      b.Name,
				Arguments: args,
			})
		}
	}

	return &Response{
		Content:    content,
		Model:      string(msg.Model),
		StopReason: p.convertStopReason(msg.StopReason),
		Usage: Usage{
			InputTokens:  int(msg.Usage.InputTokens),
			OutputTokens: int(msg.Usage.OutputTokens),
			TotalTokens:  int(msg.Usage.InputTokens + msg.Usage.OutputTokens),
		},
		ToolCalls: toolCalls,
	}
}

// convertStopReason converts Anthropic stop reason to generic format.
func (p *AnthropicProvider) convertStopReason(reason anthropic.StopReason) StopReason {
	switch reason {
	case anthropic.StopReasonMaxTokens:
		return StopReasonMaxTokens
	case anthropic.StopReasonStopSequence:
		return StopReasonStopSequence
	case anthropic.StopReasonToolUse:
		return StopReasonToolUse
	default:
		return StopReasonEndTurn
	}
}
