// Package analyzer orchestrates one strike-for-cause analysis: validate
// the request, render the prompt, invoke the backend exactly once with
// forced structured output, re-validate the assembled envelope, and
// return it or a typed failure. No state is retried; a single request
// yields a single backend invocation and a single terminal outcome.
package analyzer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/adalundhe/strikegate/core/contract"
	"github.com/adalundhe/strikegate/core/prompt"
	"github.com/adalundhe/strikegate/core/providers"
	"github.com/adalundhe/strikegate/core/schema"
	"github.com/adalundhe/strikegate/core/voirdire"
)

// Analyzer runs the analysis state machine. Stateless across requests;
// safe for concurrent use.
type Analyzer struct {
	invoker   providers.Invoker
	assembler *prompt.Assembler
	logger    *slog.Logger
}

// New wires an analyzer. A nil invoker or assembler is a configuration
// defect, not a caller mistake, and is reported as such.
func New(invoker providers.Invoker, assembler *prompt.Assembler, logger *slog.Logger) (*Analyzer, error) {
	if invoker == nil {
		return nil, &ConfigurationError{Asset: "backend provider", Err: errors.New("invoker is nil")}
	}
	if assembler == nil {
		return nil, &ConfigurationError{Asset: "system prompt", Err: errors.New("assembler is nil")}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Analyzer{
		invoker:   invoker,
		assembler: assembler,
		logger:    logger,
	}, nil
}

// Analyze consumes one raw request body and produces one validated
// response envelope. Failure kinds: *RequestValidationError before the
// backend is ever called, *BackendTransportError when the call fails,
// *BackendContractError when the backend's output violates the contract.
func (a *Analyzer) Analyze(ctx context.Context, raw []byte, requestID string) (*voirdire.Response, error) {
	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, &RequestValidationError{
			Errors: []string{fmt.Sprintf("/ body is not valid JSON: %v", err)},
		}
	}

	if result := schema.ValidateRequest(decoded); !result.Valid {
		return nil, &RequestValidationError{Errors: result.Errors}
	}

	var req voirdire.Request
	if err := json.Unmarshal(raw, &req); err != nil {
		return nil, &RequestValidationError{
			Errors: []string{fmt.Sprintf("/ %v", err)},
		}
	}

	userText := a.assembler.RenderUser(&req)

	invocation := &providers.Request{
		SystemPrompt: a.assembler.System(),
		Messages: []providers.Message{
			{Role: providers.RoleUser, Content: userText},
		},
		// Deterministic decoding: the output feeds a legal record, so
		// reproducibility matters more than creative variance.
		Temperature: providers.Float64(0),
		Tools: []providers.Tool{
			{
				Name:        contract.ToolName,
				Description: contract.ToolDescription,
				Parameters:  contract.InputSchema(),
			},
		},
		ForcedTool: contract.ToolName,
	}

	start := time.Now()
	backendResp, err := a.invoker.Invoke(ctx, invocation)
	latency := time.Since(start)
	if err != nil {
		var transportErr *providers.TransportError
		if errors.As(err, &transportErr) {
			return nil, &BackendTransportError{StatusCode: transportErr.StatusCode, Err: err}
		}
		return nil, &BackendTransportError{Err: err}
	}

	toolCall := findToolCall(backendResp, contract.ToolName)
	if toolCall == nil {
		a.logger.Error("backend returned no structured result",
			"request_id", requestID,
			"stop_reason", backendResp.StopReason,
		)
		return nil, &BackendContractError{Reason: "model did not return a structured tool result"}
	}

	var payload voirdire.AnalysisPayload
	if err := json.Unmarshal(toolCall.Arguments, &payload); err != nil {
		a.logger.Error("structured result is not decodable",
			"request_id", requestID,
			"error", err,
		)
		return nil, &BackendContractError{
			Reason:  "structured tool result could not be decoded",
			Details: []string{err.Error()},
		}
	}

	response := &voirdire.Response{
		RequestID:       requestID,
		Model:           backendResp.Model,
		Version:         voirdire.ProtocolVersion,
		Jurisdiction:    req.Jurisdiction.State,
		AnalysisPayload: payload,
		Audit: &voirdire.Audit{
			InputTokens:  backendResp.Usage.InputTokens,
			OutputTokens: backendResp.Usage.OutputTokens,
			LatencyMS:    latency.Milliseconds(),
			ModelVersion: backendResp.Model,
		},
	}

	// Re-validate the fully assembled envelope, not just the raw payload.
	// The forced contract is the backend's promise; this check is ours.
	if result := schema.ValidateResponse(response); !result.Valid {
		a.logger.Error("assembled response failed schema validation",
			"request_id", requestID,
			"violations", result.Errors,
		)
		return nil, &BackendContractError{
			Reason:  "model output did not pass schema validation",
			Details: result.Errors,
		}
	}

	if unknown := voirdire.UnknownTurnRefs(req.Transcript, &payload); len(unknown) > 0 {
		a.logger.Warn("analysis cites turn ids absent from the request transcript",
			"request_id", requestID,
			"unknown_turn_ids", unknown,
		)
	}

	return response, nil
}

func findToolCall(resp *providers.Response, name string) *providers.ToolCall {
	for i := range resp.ToolCalls {
		if resp.ToolCalls[i].Name == name && len(resp.ToolCalls[i].Arguments) > 0 {
			return &resp.ToolCalls[i]
		}
	}
	return nil
}
