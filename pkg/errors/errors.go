// Package errors defines the coded error taxonomy shared by services.
// Only the HTTP layer turns a Code into a status code.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Code classifies a failure
type Code string

const (
	CodeValidation  Code = "validation"
	CodeNotFound    Code = "not_found"
	CodeConflict    Code = "conflict"
	CodePersistence Code = "persistence"
)

// Error is the canonical domain error
type Error struct {
	Code    Code
	Op      string
	Field   string
	Message string
	// Details carries structured context for the caller, e.g. unmet requirements.
	Details interface{}
	Cause   error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	op := strings.TrimSpace(e.Op)
	msg := strings.TrimSpace(e.Message)
	switch {
	case op != "" && msg != "":
		return fmt.Sprintf("%s: %s (%s)", op, msg, e.Code)
	case op != "":
		return fmt.Sprintf("%s (%s)", op, e.Code)
	case msg != "":
		return fmt.Sprintf("%s (%s)", msg, e.Code)
	default:
		return string(e.Code)
	}
}

func (e *Error) Unwrap() error { return e.Cause }

// Validation reports malformed or missing input; field names the offending input
func Validation(op, field, message string) error {
	return &Error{Code: CodeValidation, Op: op, Field: field, Message: message}
}

// ValidationWithDetails is Validation plus structured details
func ValidationWithDetails(op, message string, details interface{}) error {
	return &Error{Code: CodeValidation, Op: op, Message: message, Details: details}
}

// NotFound reports an unknown id
func NotFound(op, entity, id string) error {
	return &Error{Code: CodeNotFound, Op: op, Message: fmt.Sprintf("%s %q not found", entity, id)}
}

// Conflict reports a write rejected by an existing state
func Conflict(op, message string, cause error) error {
	return &Error{Code: CodeConflict, Op: op, Message: message, Cause: cause}
}

// Persistence wraps a backing-store failure
func Persistence(op string, cause error) error {
	if cause == nil {
		return nil
	}
	return &Error{Code: CodePersistence, Op: op, Message: "persistence failure", Cause: cause}
}

// IsCode reports whether err (or a wrapped err) carries code
func IsCode(err error, code Code) bool {
	return CodeOf(err) == code
}

// CodeOf extracts the code, or "" for foreign errors
func CodeOf(err error) Code {
	var e *Error
	if !errors.As(err, &e) {
		return ""
	}
	return e.Code
}

// As is a typed shortcut around errors.As
func As(err error) (*Error, bool) {
	var e *Error
	if !errors.As(err, &e) {
		return nil, false
	}
	return e, true
}
