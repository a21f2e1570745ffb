// Package schema compiles the request and response JSON Schemas once at
// process startup and validates untrusted values against them. Validation
// is pure: the same (schema, value) pair always yields the same verdict.
package schema

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed strike_for_cause_request.schema.json
var requestSchemaJSON string

//go:embed strike_for_cause_response.schema.json
var responseSchemaJSON string

// Compiled at init so no request pays first-use compilation latency.
var (
	requestSchema  = jsonschema.MustCompileString("strike_for_cause_request.schema.json", requestSchemaJSON)
	responseSchema = jsonschema.MustCompileString("strike_for_cause_response.schema.json", responseSchemaJSON)
)

// Result is the verdict for one validation pass. Errors holds one
// "<json-pointer> <message>" entry per violation, never just the first.
type Result struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// Request returns the compiled request schema.
func Request() *jsonschema.Schema { return requestSchema }

// Response returns the compiled response schema.
func Response() *jsonschema.Schema { return responseSchema }

// ValidateRequest checks a decoded JSON value against the request schema.
func ValidateRequest(value any) Result {
	return Validate(requestSchema, value)
}

// ValidateResponse checks a value against the response schema. Go structs
// are accepted; they are normalized through their JSON encoding first.
func ValidateResponse(value any) Result {
	return Validate(responseSchema, value)
}

// Validate checks value against sch. It never panics: a non-object, nil,
// or string input simply fails validation with at least one error.
func Validate(sch *jsonschema.Schema, value any) Result {
	err := sch.Validate(value)
	if err == nil {
		return Result{Valid: true, Errors: []string{}}
	}

	// Values that are not decoded JSON (structs, custom types) are
	// normalized through a marshal round trip and re-checked.
	var typeErr jsonschema.InvalidJSONTypeError
	if errors.As(err, &typeErr) {
		if decoded, ok := normalize(value); ok {
			return Validate(sch, decoded)
		}
	}

	var validationErr *jsonschema.ValidationError
	if errors.As(err, &validationErr) {
		return Result{Valid: false, Errors: flatten(validationErr)}
	}

	return Result{Valid: false, Errors: []string{err.Error()}}
}

func normalize(value any) (any, bool) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, false
	}
	var decoded any
	if err := json.Unmarshal(data, &decoded); err != nil {
		return nil, false
	}
	return decoded, true
}

// flatten walks the cause tree and emits one error string per leaf
// violation. Missing-required-property leaves are expanded so a value
// missing N required fields yields at least N errors.
func flatten(err *jsonschema.ValidationError) []string {
	var out []string
	var walk func(e *jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 {
			out = append(out, leafErrors(e)...)
			return
		}
		for _, cause := range e.Causes {
			walk(cause)
		}
	}
	walk(err)

	if len(out) == 0 {
		out = append(out, fmt.Sprintf("%s %s", pointer(err.InstanceLocation), err.Message))
	}
	return out
}

const missingPropsPrefix = "missing properties: "

func leafErrors(e *jsonschema.ValidationError) []string {
	loc := pointer(e.InstanceLocation)

	if rest, ok := strings.CutPrefix(e.Message, missingPropsPrefix); ok {
		props := strings.Split(rest, ",")
		errs := make([]string, 0, len(props))
		for _, prop := range props {
			prop = strings.Trim(strings.TrimSpace(prop), "'\"")
			if prop == "" {
				continue
			}
			errs = append(errs, fmt.Sprintf("%s missing required property '%s'", loc, prop))
		}
		if len(errs) > 0 {
			return errs
		}
	}

	return []string{fmt.Sprintf("%s %s", loc, e.Message)}
}

func pointer(instanceLocation string) string {
	if instanceLocation == "" {
		return "/"
	}
	return instanceLocation
}
