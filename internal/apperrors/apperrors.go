// Package apperrors defines the error taxonomy shared by every
// operation. Services construct these at the point of the failed check;
// handlers translate them into HTTP responses.
package apperrors

import (
	"errors"
	"net/http"
)

type Kind string

const (
	KindValidation         Kind = "validation"
	KindNotFound           Kind = "not_found"
	KindUnauthorized       Kind = "unauthorized"
	KindSession            Kind = "session"
	KindConflict           Kind = "conflict"
	KindInsufficientCredit Kind = "insufficient_credit"
	KindInternal           Kind = "internal"
)

type Error struct {
	Kind    Kind
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

// Validation reports malformed or missing input.
func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Status: http.StatusBadRequest, Message: msg}
}

// NotFound reports an absent or soft-deleted entity, or an empty result.
func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Status: http.StatusNotFound, Message: msg}
}

// Unauthorized reports an acting identity that does not match the
// claimed or owning identity.
func Unauthorized(msg string) *Error {
	return &Error{Kind: KindUnauthorized, Status: http.StatusUnauthorized, Message: msg}
}

// Session reports a missing, expired or invalid session token.
func Session(msg string) *Error {
	return &Error{Kind: KindSession, Status: http.StatusForbidden, Message: msg}
}

// Conflict reports a uniqueness violation on email or phone.
func Conflict(msg string) *Error {
	return &Error{Kind: KindConflict, Status: http.StatusBadRequest, Message: msg}
}

// InsufficientCredit reports a credit score at or below zero at
// question-creation time.
func InsufficientCredit(msg string) *Error {
	return &Error{Kind: KindInsufficientCredit, Status: http.StatusBadRequest, Message: msg}
}

// Internal reports an unexpected failure.
func Internal(msg string) *Error {
	return &Error{Kind: KindInternal, Status: http.StatusInternalServerError, Message: msg}
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
