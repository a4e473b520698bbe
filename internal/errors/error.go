package errors

import "fmt"

// Category represents the type of error.
type Category string

const (
	CategoryConfig Category = "config"
	CategoryRender Category = "render"
	CategoryIO     Category = "io"
	CategoryCLI    Category = "cli"
)

// Error is a structured error with a stable code and a suggestion.
type Error struct {
	// Code is a unique error identifier (e.g., "H001").
	Code string

	// Category is the error type (config, render, io, cli).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Wrapped
}

// New creates an error from a registered code. Unknown codes produce a
// generic error carrying the code so mistakes stay visible.
func New(code string) *Error {
	if tmpl, ok := registry[code]; ok {
		return &Error{
			Code:       code,
			Category:   tmpl.Category,
			Message:    tmpl.Message,
			Detail:     tmpl.Detail,
			Suggestion: tmpl.Suggestion,
		}
	}
	return &Error{Code: code, Message: "unknown error"}
}

// Newf creates an error from a registered code with a formatted message
// replacing the template message.
func Newf(code string, format string, args ...any) *Error {
	e := New(code)
	e.Message = fmt.Sprintf(format, args...)
	return e
}

// Wrap creates an error from a registered code wrapping an underlying error.
func Wrap(code string, err error) *Error {
	e := New(code)
	e.Wrapped = err
	return e
}

// WithDetail returns the error with its detail replaced.
func (e *Error) WithDetail(format string, args ...any) *Error {
	e.Detail = fmt.Sprintf(format, args...)
	return e
}
