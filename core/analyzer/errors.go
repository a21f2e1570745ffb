package analyzer

import "fmt"

// The four failure kinds are mutually exclusive and matched with
// errors.As at the transport boundary, never by message text.

// RequestValidationError means the input never matched the documented
// shape. Caller-fixable. Always carries the full violation list and is
// raised before any backend call is made.
type RequestValidationError struct {
	Errors []string
}

func (e *RequestValidationError) Error() string {
	return fmt.Sprintf("request validation failed with %d violation(s)", len(e.Errors))
}

// ConfigurationError means a required static asset (prompt text,
// credential) is missing. Operator-fixable, not retryable by the caller.
type ConfigurationError struct {
	Asset string
	Err   error
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("configuration error (%s): %v", e.Asset, e.Err)
	}
	return fmt.Sprintf("configuration error (%s)", e.Asset)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// BackendContractError means the backend failed to honor the forced-output
// contract: no structured result, or an assembled response that fails the
// response schema. Details are for internal logging only; the Error text
// stays generic so it can be surfaced to callers without leaking the
// backend's schema-violation specifics.
type BackendContractError struct {
	Reason  string
	Details []string
}

func (e *BackendContractError) Error() string {
	return "backend contract violation: " + e.Reason
}

// BackendTransportError means the backend call itself failed (timeout,
// auth, rate limit). StatusCode is the backend's reported status, zero if
// the call never completed.
type BackendTransportError struct {
	StatusCode int
	Err        error
}

func (e *BackendTransportError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("backend transport failure (status %d): %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("backend transport failure: %v", e.Err)
}

func (e *BackendTransportError) Unwrap() error { return e.Err }
