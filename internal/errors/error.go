package errors

import (
	stderrors "errors"
	"fmt"
)

// Category represents the type of error.
type Category string

const (
	CategoryRender    Category = "render"
	CategoryConfig    Category = "config"
	CategoryTransport Category = "transport"
	CategoryCLI       Category = "cli"
)

// VminiError is a structured error with a code, an explanation and a hint.
type VminiError struct {
	// Code is a unique error identifier (e.g., "E101").
	Code string

	// Category is the error type (render, config, etc.).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of this occurrence.
	Detail string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *VminiError) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	if e.Wrapped != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Wrapped)
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *VminiError) Unwrap() error {
	return e.Wrapped
}

// WithSuggestion adds a fix suggestion to the error.
func (e *VminiError) WithSuggestion(s string) *VminiError {
	e.Suggestion = s
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *VminiError) WithDetail(d string) *VminiError {
	e.Detail = d
	return e
}

// WithDetailf adds a formatted explanation to the error.
func (e *VminiError) WithDetailf(format string, args ...any) *VminiError {
	e.Detail = fmt.Sprintf(format, args...)
	return e
}

// Wrap wraps another error.
func (e *VminiError) Wrap(err error) *VminiError {
	e.Wrapped = err
	return e
}

// New creates a VminiError from a registered error code.
func New(code string) *VminiError {
	template, ok := registry[code]
	if !ok {
		return &VminiError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &VminiError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
	}
}

// Newf creates a new VminiError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *VminiError {
	return &VminiError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a VminiError.
// Errors that already are (or wrap) a VminiError are returned as found.
func FromError(err error, code string) *VminiError {
	if err == nil {
		return nil
	}
	var ve *VminiError
	if stderrors.As(err, &ve) {
		return ve
	}
	return New(code).Wrap(err)
}

// Code returns the code of the first VminiError in err's chain, or "".
func Code(err error) string {
	var ve *VminiError
	if stderrors.As(err, &ve) {
		return ve.Code
	}
	return ""
}
