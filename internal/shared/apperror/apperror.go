// Package apperror defines the error taxonomy shared by all features.
//
// Validation failures are reported as *Error sentinels whose Kind decides the
// HTTP status. Field-level failures (profile) are collected in FieldErrors.
package apperror

import (
	"errors"
	"net/http"
	"sort"
	"strings"
)

// Kind classifies a failure.
type Kind int

const (
	// KindInternal is an unexpected failure (parse errors, signing errors).
	KindInternal Kind = iota
	// KindMissingField means a required input was empty.
	KindMissingField
	// KindInvalidFormat means an input had the wrong shape or length.
	KindInvalidFormat
	// KindRuleViolation covers business rules such as mismatch or reuse.
	KindRuleViolation
	// KindUnauthorized means the caller could not be authenticated.
	KindUnauthorized
)

// InternalMessage is the only message ever shown for KindInternal.
const InternalMessage = "Internal server error"

// Status maps a Kind to its HTTP status code.
func (k Kind) Status() int {
	switch k {
	case KindMissingField, KindInvalidFormat, KindRuleViolation:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func (k Kind) String() string {
	switch k {
	case KindMissingField:
		return "missing_field"
	case KindInvalidFormat:
		return "invalid_format"
	case KindRuleViolation:
		return "rule_violation"
	case KindUnauthorized:
		return "unauthorized"
	default:
		return "internal"
	}
}

// Error is a client-facing failure with a fixed message.
type Error struct {
	Kind    Kind
	Message string
}

// New creates an Error.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func (e *Error) Error() string {
	return e.Message
}

// Status returns the HTTP status for the error's kind.
func (e *Error) Status() int {
	return e.Kind.Status()
}

// As extracts the *Error from err. Anything that is not an *Error is reported
// as an internal failure with the generic message.
func As(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return &Error{Kind: KindInternal, Message: InternalMessage}
}

// FieldErrors maps a field name to its violation message.
type FieldErrors map[string]string

// Add records msg for field unless the field already has a message.
func (f FieldErrors) Add(field, msg string) {
	if _, ok := f[field]; ok {
		return
	}
	f[field] = msg
}

// Empty reports whether no field failed.
func (f FieldErrors) Empty() bool {
	return len(f) == 0
}

// Error lists the failing fields in a stable order.
func (f FieldErrors) Error() string {
	fields := make([]string, 0, len(f))
	for field := range f {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return "validation failed: " + strings.Join(fields, ", ")
}
