package api

import (
	"encoding/json"
	"fmt"
	"strings"
)

// FieldError is one field-addressable validation failure
type FieldError struct {
	Attr   string `json:"attr"`
	Code   string `json:"code"`
	Detail string `json:"detail"`
}

// ValidationError is the structured error body returned by mutation
// endpoints, surfaced inline next to the offending form fields
type ValidationError struct {
	Type   string       `json:"type"`
	Errors []FieldError `json:"errors"`
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Attr, fe.Detail))
	}

	return "validation failed: " + strings.Join(parts, "; ")
}

// For returns the first error for the given field attribute
func (e *ValidationError) For(attr string) (FieldError, bool) {
	for _, fe := range e.Errors {
		if fe.Attr == attr {
			return fe, true
		}
	}

	return FieldError{}, false
}

// First returns the first field error, used to decide which form field
// receives focus after a failed submission
func (e *ValidationError) First() (FieldError, bool) {
	if len(e.Errors) == 0 {
		return FieldError{}, false
	}

	return e.Errors[0], true
}

// parseValidationError decodes a structured error body, falling back to
// a single detail-only error when the body is not field-addressable
func parseValidationError(body []byte) *ValidationError {
	var ve ValidationError
	if err := json.Unmarshal(body, &ve); err == nil && len(ve.Errors) > 0 {
		return &ve
	}

	detail := strings.TrimSpace(string(body))
	if detail == "" {
		detail = "the server rejected the request"
	}

	return &ValidationError{
		Type:   "validation_error",
		Errors: []FieldError{{Attr: "non_field_errors", Code: "invalid", Detail: detail}},
	}
}

// conflictError builds the synthetic validation error used when the
// backend answers 409, so the generic field-error renderer can show it
func conflictError(attr, detail string) *ValidationError {
	return &ValidationError{
		Type:   "validation_error",
		Errors: []FieldError{{Attr: attr, Code: "conflict", Detail: detail}},
	}
}
