package domain

import (
	"errors"
	"net/http"
)

// ErrorKind tags a domain error with its failure category.
type ErrorKind string

const (
	KindValidation         ErrorKind = "validation"
	KindInvalidCredentials ErrorKind = "invalid_credentials"
	KindDuplicate          ErrorKind = "duplicate"
	KindUnauthenticated    ErrorKind = "unauthenticated"
	KindForbidden          ErrorKind = "forbidden"
	KindNotFound           ErrorKind = "not_found"
	KindTooManyRequests    ErrorKind = "too_many_requests"
	KindUpstream           ErrorKind = "upstream"
)

// Error is the single error type crossing the service boundary. Every
// failure the API can answer with carries its kind, HTTP status and a
// client-safe message; anything else renders as a generic 500.
type Error struct {
	Kind    ErrorKind
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

// IsKind reports whether err is a domain *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var de *Error
	return errors.As(err, &de) && de.Kind == kind
}

// Validation reports missing or malformed input.
func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Status: http.StatusBadRequest, Message: msg}
}

// InvalidCredentials is deliberately uniform: wrong email, wrong password
// and wrong role must be indistinguishable to the caller.
func InvalidCredentials() *Error {
	return &Error{Kind: KindInvalidCredentials, Status: http.StatusBadRequest, Message: "Incorrect email, password or role."}
}

// Duplicate reports a uniqueness violation detected by a pre-check.
func Duplicate(msg string) *Error {
	return &Error{Kind: KindDuplicate, Status: http.StatusBadRequest, Message: msg}
}

// DuplicateConflict reports a uniqueness violation raised by the store
// itself, i.e. the create lost a check-then-act race.
func DuplicateConflict(msg string) *Error {
	return &Error{Kind: KindDuplicate, Status: http.StatusConflict, Message: msg}
}

// Unauthenticated reports a missing, invalid or expired session token.
func Unauthenticated(msg string) *Error {
	return &Error{Kind: KindUnauthenticated, Status: http.StatusUnauthorized, Message: msg}
}

// Forbidden reports an authenticated but unauthorized request.
func Forbidden(msg string) *Error {
	return &Error{Kind: KindForbidden, Status: http.StatusForbidden, Message: msg}
}

func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Status: http.StatusNotFound, Message: msg}
}

func TooManyRequests(msg string) *Error {
	return &Error{Kind: KindTooManyRequests, Status: http.StatusTooManyRequests, Message: msg}
}

// Upstream reports a failure of an external dependency (media host).
func Upstream(msg string) *Error {
	return &Error{Kind: KindUpstream, Status: http.StatusBadGateway, Message: msg}
}
