package generation

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode standardizes pipeline failure semantics across generation kinds.
type ErrorCode string

const (
	// CodeConfiguration: credential missing or rejected, before/at the provider boundary.
	CodeConfiguration ErrorCode = "configuration"
	// CodeProvider: the completion call itself failed.
	CodeProvider ErrorCode = "provider"
	// CodeExtraction: no parseable structured payload located in the response text.
	CodeExtraction ErrorCode = "extraction"
	// CodeValidation: payload parsed but failed mandatory-field/shape checks,
	// or the surviving collection came out empty.
	CodeValidation ErrorCode = "validation"
	// CodePersistence: datastore write rejected.
	CodePersistence ErrorCode = "persistence"
	// CodeInvalidArgument: caller-supplied parameters failed validation before
	// the pipeline ran. Distinct from CodeValidation, which covers the model's
	// output failing shape checks.
	CodeInvalidArgument ErrorCode = "invalid_argument"
	// CodeNotFound: requested entity does not exist (read paths).
	CodeNotFound ErrorCode = "not_found"
	// CodeInternal: anything that escaped the closed set above.
	CodeInternal ErrorCode = "internal"
)

// Error is the canonical pipeline error wrapper.
type Error struct {
	Code    ErrorCode
	Op      string
	Message string
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

// NewError builds a pipeline error with explicit code + operation.
func NewError(code ErrorCode, op, message string, cause error) error {
	return &Error{
		Code:    code,
		Op:      strings.TrimSpace(op),
		Message: strings.TrimSpace(message),
		Cause:   cause,
	}
}

// Wrap annotates an existing error with pipeline error semantics. Errors that
// already carry a code pass through unchanged so stage errors reach the job
// wrapper and the boundary exactly as raised.
func Wrap(code ErrorCode, op string, err error) error {
	if err == nil {
		return nil
	}
	var pipeErr *Error
	if errors.As(err, &pipeErr) {
		return err
	}
	return NewError(code, op, err.Error(), err)
}

// IsCode checks whether err (or a wrapped err) carries the given code.
func IsCode(err error, code ErrorCode) bool {
	var pipeErr *Error
	if !errors.As(err, &pipeErr) {
		return false
	}
	return pipeErr.Code == code
}

// CodeOf extracts the pipeline error code when available.
func CodeOf(err error) ErrorCode {
	var pipeErr *Error
	if !errors.As(err, &pipeErr) {
		return ""
	}
	return pipeErr.Code
}

// MessageOf extracts the stored message, falling back to err.Error().
func MessageOf(err error) string {
	if err == nil {
		return ""
	}
	var pipeErr *Error
	if errors.As(err, &pipeErr) && strings.TrimSpace(pipeErr.Message) != "" {
		return pipeErr.Message
	}
	return err.Error()
}
