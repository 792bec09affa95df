package errors

import (
	"fmt"
)

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures invalid input such as an unknown theme or a negative page count.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// DecodeError reports content that could not be decoded: corrupt images,
// unsupported data URIs, malformed scrapbook JSON.
type DecodeError struct {
	Source string
	Err    error
}

// NewDecodeError constructs a DecodeError. Long data URIs are shortened in the source label.
func NewDecodeError(source string, err error) error {
	return &DecodeError{Source: shorten(source), Err: err}
}

func (e *DecodeError) Error() string {
	if e == nil {
		return ""
	}
	if e.Source != "" {
		return fmt.Sprintf("decode error: %s: %v", e.Source, e.Err)
	}
	return fmt.Sprintf("decode error: %v", e.Err)
}

// Unwrap exposes the root error.
func (e *DecodeError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IOError wraps filesystem failures with the attempted operation and path.
type IOError struct {
	Op   string
	Path string
	Err  error
}

// NewIOError constructs an IOError for the given operation.
func NewIOError(op, path string, err error) error {
	return &IOError{Op: op, Path: path, Err: err}
}

func (e *IOError) Error() string {
	if e == nil {
		return ""
	}
	if e.Path != "" {
		return fmt.Sprintf("io error: %s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("io error: %s: %v", e.Op, e.Err)
}

// Unwrap exposes the underlying error.
func (e *IOError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

const maxSourceLabel = 48

func shorten(source string) string {
	if len(source) <= maxSourceLabel {
		return source
	}
	return source[:maxSourceLabel] + "..."
}
