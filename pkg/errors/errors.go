package errors

import (
	"errors"
	"fmt"
)

// ErrMissingName marks a source record without a usable service name.
var ErrMissingName = errors.New("service name is empty")

// ErrDuplicateTitle marks a source record whose name collides with an
// earlier record. The first occurrence wins; later ones are rejected.
var ErrDuplicateTitle = errors.New("duplicate service title")

// ParseError represents a failure reading or decoding the source export.
type ParseError struct {
	Path    string
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
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

// ValidationError captures configuration validation issues.
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

// TransformError reports a per-record mapping failure. Recoverable: the
// record is skipped, counted as failed, and the batch continues.
type TransformError struct {
	Index int
	Title string
	Err   error
}

// NewTransformError constructs a TransformError for the record at index.
func NewTransformError(index int, title string, err error) error {
	return &TransformError{Index: index, Title: title, Err: err}
}

func (e *TransformError) Error() string {
	if e == nil {
		return ""
	}
	if e.Title != "" {
		return fmt.Sprintf("transform error: service %q (record %d): %v", e.Title, e.Index, e.Err)
	}
	return fmt.Sprintf("transform error: record %d: %v", e.Index, e.Err)
}

// Unwrap exposes the underlying error.
func (e *TransformError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// RejectionError reports that the target gateway accepted the request but
// declined the definition. Recoverable: the unit fails, the batch continues.
type RejectionError struct {
	Title      string
	StatusCode int
	Body       string
}

// NewRejectionError constructs a RejectionError carrying the response body
// for diagnostics.
func NewRejectionError(title string, statusCode int, body string) error {
	return &RejectionError{Title: title, StatusCode: statusCode, Body: body}
}

func (e *RejectionError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("gateway rejected %q (status %d): %s", e.Title, e.StatusCode, e.Body)
}

// StatusError reports an indeterminate response from the target gateway
// during an existence query. The check cannot distinguish "not found" from
// "query failed", so proceeding would risk duplicate creation; callers must
// treat this as batch-fatal.
type StatusError struct {
	Operation  string
	StatusCode int
}

// NewStatusError constructs a StatusError.
func NewStatusError(operation string, statusCode int) error {
	return &StatusError{Operation: operation, StatusCode: statusCode}
}

func (e *StatusError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("gateway %s returned unexpected status %d", e.Operation, e.StatusCode)
}

// TransportError reports that a request to the target gateway could not be
// completed (connection refused, timeout). Batch-fatal: the target is
// unreachable rather than a particular unit being invalid.
type TransportError struct {
	Operation string
	Err       error
}

// NewTransportError constructs a TransportError.
func NewTransportError(operation string, err error) error {
	return &TransportError{Operation: operation, Err: err}
}

func (e *TransportError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("gateway unreachable during %s: %v", e.Operation, e.Err)
}

// Unwrap exposes the underlying error.
func (e *TransportError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsFatal reports whether err must abort the whole batch rather than fail a
// single unit.
func IsFatal(err error) bool {
	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		return true
	}
	var statusErr *StatusError
	return errors.As(err, &statusErr)
}
