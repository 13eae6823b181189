package schema

import (
	"errors"
	"fmt"
)

// Code is the stable, machine readable identifier attached to every
// ParseError.
type Code string

const (
	CodeEmptyInput          Code = "EMPTY_INPUT"
	CodeInvalidJSON         Code = "INVALID_JSON"
	CodeInvalidStructure    Code = "INVALID_STRUCTURE"
	CodeInvalidFieldName    Code = "INVALID_FIELD_NAME"
	CodeInvalidFieldType    Code = "INVALID_FIELD_TYPE"
	CodeDuplicateFieldNames Code = "DUPLICATE_FIELD_NAMES"
	CodeUnknown             Code = "UNKNOWN_ERROR"
)

// Sentinel errors matched by ParseError.Is, one per Code.
var (
	ErrEmptyInput          = errors.New("empty input")
	ErrInvalidJSON         = errors.New("invalid json")
	ErrInvalidStructure    = errors.New("invalid structure")
	ErrInvalidFieldName    = errors.New("invalid field name")
	ErrInvalidFieldType    = errors.New("invalid field type")
	ErrDuplicateFieldNames = errors.New("duplicate field names")
	ErrUnknown             = errors.New("unknown error")
)

var sentinels = map[Code]error{
	CodeEmptyInput:          ErrEmptyInput,
	CodeInvalidJSON:         ErrInvalidJSON,
	CodeInvalidStructure:    ErrInvalidStructure,
	CodeInvalidFieldName:    ErrInvalidFieldName,
	CodeInvalidFieldType:    ErrInvalidFieldType,
	CodeDuplicateFieldNames: ErrDuplicateFieldNames,
	CodeUnknown:             ErrUnknown,
}

// ParseError is the only error type returned by Parse. Message is meant to be
// shown to users verbatim.
type ParseError struct {
	Code    Code     `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
	// Cause is the underlying failure, if any.
	Cause error `json:"-"`
}

func newError(code Code, format string, args ...any) *ParseError {
	return &ParseError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Error returns the human readable message.
func (e *ParseError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is the sentinel for this error's code.
func (e *ParseError) Is(target error) bool {
	sentinel, ok := sentinels[e.Code]
	return ok && target == sentinel
}

// CodeOf extracts the Code from err, or "" when err is not a ParseError.
func CodeOf(err error) Code {
	var perr *ParseError
	if errors.As(err, &perr) {
		return perr.Code
	}
	return ""
}
