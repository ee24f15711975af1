// Package apperror classifies failures into the small set of kinds callers
// are expected to branch on.
package apperror

import (
	"errors"

	"github.com/cmlabs-hris/payroll-core-go/internal/pkg/validator"
)

type Kind string

const (
	KindNotFound          Kind = "NOT_FOUND"
	KindInvalidArgument   Kind = "INVALID_ARGUMENT"
	KindInvalidTransition Kind = "INVALID_TRANSITION"
	KindConflict          Kind = "CONFLICT"
	KindUpstream          Kind = "UPSTREAM"
)

// Error is a classified error. Domain packages declare their sentinels with
// the constructors below and compare them with errors.Is.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap attaches a kind to an underlying error.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func NotFound(message string) *Error          { return New(KindNotFound, message) }
func InvalidArgument(message string) *Error   { return New(KindInvalidArgument, message) }
func InvalidTransition(message string) *Error { return New(KindInvalidTransition, message) }
func Conflict(message string) *Error          { return New(KindConflict, message) }
func Upstream(message string) *Error          { return New(KindUpstream, message) }

// KindOf reports the kind of err. Field validation failures are
// InvalidArgument; anything unclassified is treated as an upstream failure.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return KindInvalidArgument
	}

	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}

	return KindUpstream
}

// Is reports whether err is classified as kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// Message returns the classified message of err, falling back to err.Error().
func Message(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
