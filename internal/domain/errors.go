package domain

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Sentinel errors. Use errors.Is to test for them; concrete errors carry more detail.
var (
	// ErrValidationFailed indicates input rejected by a client-side rule or an upstream 400.
	ErrValidationFailed = errors.New("validation failed")

	// ErrNotFound indicates the referenced entity or the route criteria yield nothing.
	ErrNotFound = errors.New("not found")

	// ErrTransportFailure indicates a network failure or an unexpected upstream status.
	ErrTransportFailure = errors.New("transport failure")

	// ErrSuperseded indicates a search was replaced by a newer one before it completed.
	ErrSuperseded = errors.New("superseded by a newer search")

	// ErrMalformedRoute indicates a route that breaks the documented route shape.
	ErrMalformedRoute = errors.New("malformed route")
)

// ErrorKind classifies a failure of an interaction.
type ErrorKind int

// Error kinds.
const (
	KindUnknown ErrorKind = iota
	KindValidation
	KindNotFound
	KindTransport
	KindCanceled
)

// String implements fmt.Stringer.
func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation_failed"
	case KindNotFound:
		return "not_found"
	case KindTransport:
		return "transport_failure"
	case KindCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// sentinel returns the sentinel error matching the kind, or nil.
func (k ErrorKind) sentinel() error {
	switch k {
	case KindValidation:
		return ErrValidationFailed
	case KindNotFound:
		return ErrNotFound
	case KindTransport:
		return ErrTransportFailure
	case KindCanceled:
		return context.Canceled
	default:
		return nil
	}
}

// KindForStatus maps an upstream HTTP status to an error kind.
// 2xx statuses map to KindUnknown since they are not failures. Every client
// rejection other than 404 is a validation failure; 408 and 429 report an
// unavailable upstream and are transport failures like 5xx.
func KindForStatus(status int) ErrorKind {
	switch {
	case status >= 200 && status < 300:
		return KindUnknown
	case status == http.StatusNotFound:
		return KindNotFound
	case status == http.StatusRequestTimeout, status == http.StatusTooManyRequests:
		return KindTransport
	case status >= 400 && status < 500:
		return KindValidation
	default:
		return KindTransport
	}
}

// APIError is the single error shape returned by the upstream client.
type APIError struct {
	// Kind is the classification of the failure
	Kind ErrorKind

	// Status is the upstream HTTP status; 0 for transport-level failures
	Status int

	// Method and Path identify the failed call
	Method string
	Path   string

	// Message is the upstream error message, when one was returned
	Message string

	// Fields holds field-level validation messages reported upstream
	Fields map[string]string

	// Err is the underlying cause, if any
	Err error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	var b strings.Builder
	b.WriteString("upstream ")
	b.WriteString(e.Method)
	b.WriteString(" ")
	b.WriteString(e.Path)
	b.WriteString(": ")
	b.WriteString(e.Kind.String())
	if e.Status != 0 {
		fmt.Fprintf(&b, " (status %d)", e.Status)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap returns the underlying cause.
func (e *APIError) Unwrap() error {
	return e.Err
}

// Is matches the sentinel error of the error's kind.
func (e *APIError) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}

// KindOf classifies any error returned by the core.
func KindOf(err error) ErrorKind {
	if err == nil {
		return KindUnknown
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}

	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, ErrSuperseded):
		return KindCanceled
	case errors.Is(err, ErrValidationFailed):
		return KindValidation
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrTransportFailure), errors.Is(err, context.DeadlineExceeded):
		return KindTransport
	default:
		return KindUnknown
	}
}

// FieldErrors returns the field-level messages carried by err, if any.
// It understands both client-side ValidationErrors and upstream APIErrors.
func FieldErrors(err error) map[string]string {
	var verrs *ValidationErrors
	if errors.As(err, &verrs) {
		return verrs.ToMap()
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) && len(apiErr.Fields) > 0 {
		return apiErr.Fields
	}
	return nil
}

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// Error implements the error interface.
func (v *ValidationError) Error() string {
	return v.Field + ": " + v.Message
}

// Is matches ErrValidationFailed.
func (v *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

// ValidationErrors holds field-scoped validation errors in the order they were found.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Error()
}

// Is matches ErrValidationFailed.
func (v *ValidationErrors) Is(target error) bool {
	return target == ErrValidationFailed
}

// Add adds a validation error. Only the first message per field is kept.
func (v *ValidationErrors) Add(field, message string) {
	if _, exists := v.Field(field); exists {
		return
	}
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// Field returns the message attached to the given field.
func (v *ValidationErrors) Field(field string) (string, bool) {
	for _, e := range v.Errors {
		if e.Field == field {
			return e.Message, true
		}
	}
	return "", false
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a field to message map.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// OrNil returns v as an error when it holds errors, nil otherwise.
func (v *ValidationErrors) OrNil() error {
	if v == nil || !v.HasErrors() {
		return nil
	}
	return v
}
