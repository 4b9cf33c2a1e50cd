package errors

import "fmt"

// Category represents the type of error.
type Category string

const (
	CategoryConfig  Category = "config"
	CategoryCLI     Category = "cli"
	CategoryPublish Category = "publish"
	CategoryServe   Category = "serve"
)

// HewError is a structured error with a stable code, a fix suggestion,
// and documentation pointers, shown by the CLI.
type HewError struct {
	// Code is a unique error identifier (e.g., "E001").
	Code string

	// Category is the error type (config, cli, etc.).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// DocURL is a link to documentation about this error.
	DocURL string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *HewError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *HewError) Unwrap() error {
	return e.Wrapped
}

// WithSuggestion adds a fix suggestion to the error.
func (e *HewError) WithSuggestion(s string) *HewError {
	e.Suggestion = s
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *HewError) WithDetail(d string) *HewError {
	e.Detail = d
	return e
}

// Wrap wraps another error.
func (e *HewError) Wrap(err error) *HewError {
	e.Wrapped = err
	return e
}

// New creates a HewError from a registered error code.
func New(code string) *HewError {
	template, ok := registry[code]
	if !ok {
		return &HewError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &HewError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
		DocURL:   template.DocURL,
	}
}

// Newf creates a new HewError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *HewError {
	return &HewError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a HewError.
func FromError(err error, code string) *HewError {
	if err == nil {
		return nil
	}
	if he, ok := err.(*HewError); ok {
		return he
	}
	return New(code).Wrap(err)
}
