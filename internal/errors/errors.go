// Package errors defines the typed error taxonomy shared by the CLI and the
// API server. Callers match on Type rather than on message text.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Type identifies the category of a domain error.
type Type string

const (
	// TypeInvalidInput covers unknown environments or regions, malformed
	// names, and cross-field constraint violations.
	TypeInvalidInput Type = "INVALID_INPUT"

	// TypeUnknownTier marks a node or database tier missing from the
	// pricing table. Estimation degrades; it never aborts.
	TypeUnknownTier Type = "UNKNOWN_TIER"

	// TypeNameCollision marks a derived resource name already taken by
	// another account, detected at bootstrap time.
	TypeNameCollision Type = "NAME_COLLISION"

	TypeNotFound Type = "NOT_FOUND"
	TypePricing  Type = "PRICING_ERROR"
	TypeStorage  Type = "STORAGE_ERROR"
	TypeInternal Type = "INTERNAL_ERROR"
)

// Error is a domain error with an optional cause and context values.
type Error struct {
	Type    Type           `json:"type"`
	Message string         `json:"message"`
	Cause   error          `json:"-"`
	Context map[string]any `json:"context,omitempty"`
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithContext attaches a key/value pair for structured reporting.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// New creates an error of the given type.
func New(errType Type, message string) *Error {
	return &Error{Type: errType, Message: message}
}

// Newf creates an error with a formatted message.
func Newf(errType Type, format string, args ...any) *Error {
	return &Error{Type: errType, Message: fmt.Sprintf(format, args...)}
}

// Wrap wraps a cause under the given type.
func Wrap(errType Type, message string, cause error) *Error {
	return &Error{Type: errType, Message: message, Cause: cause}
}

// Wrapf wraps a cause with a formatted message.
func Wrapf(errType Type, cause error, format string, args ...any) *Error {
	return &Error{Type: errType, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// IsType reports whether any error in err's tree carries the given type.
// It sees through errors.Join and fmt.Errorf %w wrapping.
func IsType(err error, t Type) bool {
	for _, e := range allTyped(err) {
		if e.Type == t {
			return true
		}
	}
	return false
}

// TypeOf returns the type of the first typed error in err's tree, or
// TypeInternal when none is present.
func TypeOf(err error) Type {
	if typed := allTyped(err); len(typed) > 0 {
		return typed[0].Type
	}
	return TypeInternal
}

func allTyped(err error) []*Error {
	var out []*Error
	var walk func(error)
	walk = func(err error) {
		if err == nil {
			return
		}
		if e, ok := err.(*Error); ok {
			out = append(out, e)
		}
		switch x := err.(type) {
		case interface{ Unwrap() error }:
			walk(x.Unwrap())
		case interface{ Unwrap() []error }:
			for _, inner := range x.Unwrap() {
				walk(inner)
			}
		}
	}
	walk(err)
	return out
}

// InvalidInput creates a validation error naming the offending field and
// the value that was rejected.
func InvalidInput(field string, value any, reason string) *Error {
	return Newf(TypeInvalidInput, "invalid %s %q: %s", field, fmt.Sprint(value), reason).
		WithContext("field", field).
		WithContext("value", value)
}

// UnknownTier creates a warning-grade error for a tier absent from the
// pricing table.
func UnknownTier(kind, tier string) *Error {
	return Newf(TypeUnknownTier, "unknown %s tier %q: priced at 0", kind, tier).
		WithContext("tier", tier)
}

// NameCollision creates an error for a globally scoped name owned by a
// different account.
func NameCollision(resource, name string) *Error {
	return Newf(TypeNameCollision, "%s name %q is already taken", resource, name).
		WithContext("name", name)
}

// NotFound creates a not found error.
func NotFound(resource, identifier string) *Error {
	return Newf(TypeNotFound, "%s not found: %s", resource, identifier)
}

// Internal wraps an unexpected failure.
func Internal(message string, cause error) *Error {
	return Wrap(TypeInternal, message, cause)
}

// As is a convenience wrapper around the standard errors.As for *Error.
func As(err error) (*Error, bool) {
	var e *Error
	ok := stderrors.As(err, &e)
	return e, ok
}
