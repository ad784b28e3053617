package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an application error. The set is closed: every error the
// stores or services return carries exactly one of these kinds, and handlers
// switch over them to pick the transport response.
type Kind string

const (
	KindValidation         Kind = "VALIDATION"
	KindNotFound           Kind = "NOT_FOUND"
	KindAlreadyExists      Kind = "ALREADY_EXISTS"
	KindEmpty              Kind = "EMPTY"
	KindInvalidEdge        Kind = "INVALID_EDGE"
	KindInvalidTags        Kind = "INVALID_TAGS"
	KindUnauthorized       Kind = "UNAUTHORIZED"
	KindInvalidCredentials Kind = "INVALID_CREDENTIALS"
	KindInternal           Kind = "INTERNAL"
)

// FieldError describes a single invalid request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// AppError is the application error type. It carries the kind, a
// human-readable message, the HTTP status the transport layer should use,
// and, for validation failures, the per-field breakdown.
type AppError struct {
	Kind       Kind
	Message    string
	Fields     []FieldError
	Cause      error
	HTTPStatus int
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithCause wraps an underlying error.
func (e *AppError) WithCause(err error) *AppError {
	e.Cause = err
	return e
}

// NewValidation creates a validation error from per-field messages.
func NewValidation(fields []FieldError) *AppError {
	return &AppError{
		Kind:       KindValidation,
		Message:    "Validation failed.",
		Fields:     fields,
		HTTPStatus: http.StatusBadRequest,
	}
}

// NewNotFound creates a not found error for the named resource.
func NewNotFound(resource string) *AppError {
	return &AppError{
		Kind:       KindNotFound,
		Message:    fmt.Sprintf("%s not found.", resource),
		HTTPStatus: http.StatusNotFound,
	}
}

// NewAlreadyExists creates a conflict error.
func NewAlreadyExists(message string) *AppError {
	return &AppError{
		Kind:       KindAlreadyExists,
		Message:    message,
		HTTPStatus: http.StatusConflict,
	}
}

// NewEmpty creates an error for an empty result set. Stores never return
// this; the use-case layer raises it when an empty list is meaningful to
// the caller.
func NewEmpty(message string) *AppError {
	return &AppError{
		Kind:       KindEmpty,
		Message:    message,
		HTTPStatus: http.StatusNotFound,
	}
}

// NewInvalidEdge creates an error for an edge that violates graph
// invariants (missing endpoint or self-loop).
func NewInvalidEdge(message string) *AppError {
	return &AppError{
		Kind:       KindInvalidEdge,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

// NewInvalidTags creates an error for a tag reference that does not resolve
// to a tag owned by the caller.
func NewInvalidTags(message string) *AppError {
	return &AppError{
		Kind:       KindInvalidTags,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

// NewUnauthorized creates an unauthorized error.
func NewUnauthorized(message string) *AppError {
	if message == "" {
		message = "unauthorized"
	}
	return &AppError{
		Kind:       KindUnauthorized,
		Message:    message,
		HTTPStatus: http.StatusUnauthorized,
	}
}

// NewInvalidCredentials creates the login-failure error. Unknown email and
// wrong password are deliberately indistinguishable.
func NewInvalidCredentials() *AppError {
	return &AppError{
		Kind:       KindInvalidCredentials,
		Message:    "Invalid credentials",
		HTTPStatus: http.StatusUnauthorized,
	}
}

// NewInternal creates an internal error.
func NewInternal(message string) *AppError {
	return &AppError{
		Kind:       KindInternal,
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
	}
}

// GetAppError extracts an AppError from an error chain.
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// IsKind checks whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Kind == kind
}

func IsNotFound(err error) bool           { return IsKind(err, KindNotFound) }
func IsAlreadyExists(err error) bool      { return IsKind(err, KindAlreadyExists) }
func IsEmpty(err error) bool              { return IsKind(err, KindEmpty) }
func IsInvalidEdge(err error) bool        { return IsKind(err, KindInvalidEdge) }
func IsInvalidTags(err error) bool        { return IsKind(err, KindInvalidTags) }
func IsUnauthorized(err error) bool       { return IsKind(err, KindUnauthorized) }
func IsInvalidCredentials(err error) bool { return IsKind(err, KindInvalidCredentials) }
func IsValidation(err error) bool         { return IsKind(err, KindValidation) }
