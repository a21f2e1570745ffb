package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/adalundhe/strikegate/core/analyzer"
)

func (s *Server) handleAnalyze(c *gin.Context) {
	requestID := uuid.NewString()

	raw, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":      "Unable to read request body",
			"request_id": requestID,
		})
		return
	}

	// Malformed JSON never reaches the core.
	if !json.Valid(raw) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":      "Invalid JSON body",
			"request_id": requestID,
		})
		return
	}

	s.logger.Info("analyze request",
		"request_id", requestID,
		"stage", probeField(raw, "stage"),
		"juror_ref", probeJurorRef(raw),
	)

	ctx := c.Request.Context()
	if s.config.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.RequestTimeout)
		defer cancel()
	}

	result, err := s.analyzer.Analyze(ctx, raw, requestID)
	if err != nil {
		s.writeFailure(c, requestID, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// writeFailure maps the typed failure kinds one-to-one onto status codes.
// Contract-violation detail stays in the logs; callers get a generic
// message because the detail describes our contract with the backend,
// not a caller mistake.
func (s *Server) writeFailure(c *gin.Context, requestID string, err error) {
	var validationErr *analyzer.RequestValidationError
	if errors.As(err, &validationErr) {
		s.logger.Warn("request validation failed",
			"request_id", requestID,
			"violations", len(validationErr.Errors),
		)
		c.JSON(http.StatusBadRequest, gin.H{
			"error":      "Invalid request",
			"details":    validationErr.Errors,
			"request_id": requestID,
		})
		return
	}

	var contractErr *analyzer.BackendContractError
	if errors.As(err, &contractErr) {
		s.logger.Error("backend contract violation",
			"request_id", requestID,
			"reason", contractErr.Reason,
			"details", contractErr.Details,
		)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":      "Analysis failed. The model returned an invalid response. Please try again.",
			"request_id": requestID,
		})
		return
	}

	var transportErr *analyzer.BackendTransportError
	if errors.As(err, &transportErr) {
		s.logger.Error("backend transport failure",
			"request_id", requestID,
			"status", transportErr.StatusCode,
		)
		c.JSON(http.StatusBadGateway, gin.H{
			"error":      "AI service error. Please try again later.",
			"request_id": requestID,
		})
		return
	}

	var configErr *analyzer.ConfigurationError
	if errors.As(err, &configErr) {
		s.logger.Error("configuration error",
			"request_id", requestID,
			"asset", configErr.Asset,
		)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":      "Service misconfigured: " + configErr.Asset + " unavailable. Contact the operator.",
			"request_id": requestID,
		})
		return
	}

	s.logger.Error("unexpected error", "request_id", requestID, "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{
		"error":      "An unexpected error occurred",
		"request_id": requestID,
	})
}

// probeField pulls a single top-level string field for metadata logging
// without decoding the full body into domain types.
func probeField(raw []byte, field string) string {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil {
		return "unknown"
	}
	var value string
	if err := json.Unmarshal(probe[field], &value); err != nil || value == "" {
		return "unknown"
	}
	return value
}

func probeJurorRef(raw []byte) string {
	var probe struct {
		TargetJuror struct {
			JurorRef string `json:"juror_ref"`
		} `json:"target_juror"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil || probe.TargetJuror.JurorRef == "" {
		return "unknown"
	}
	return probe.TargetJuror.JurorRef
}
