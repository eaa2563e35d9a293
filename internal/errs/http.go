package errs

import (
	"errors"
	"net/http"
)

// Sentinels for errors.Is. They only carry a Kind, so they match any Error
// of that kind regardless of entity or operation.
var (
	ErrNotFound     = &Error{Kind: KindNotFound}
	ErrConstraint   = &Error{Kind: KindConstraint}
	ErrInvalidInput = &Error{Kind: KindInvalidInput}
	ErrUnauthorized = &Error{Kind: KindUnauthorized}
	ErrUnavailable  = &Error{Kind: KindUnavailable}
)

// NewNotFoundError creates a not-found Error for entity.
func NewNotFoundError(entity, op string) *Error {
	return &Error{
		Kind:    KindNotFound,
		Code:    MakeUpperCaseWithUnderscores(entity + " Not Found"),
		Message: "Resource not found",
		Entity:  entity,
		Op:      op,
	}
}

// NewInvalidInputError creates an invalid-input Error.
//
// fieldErrors is optional; pass nil when the problem is not tied to a field.
func NewInvalidInputError(message string, fieldErrors []FieldError) *Error {
	return &Error{
		Kind:    KindInvalidInput,
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(http.StatusBadRequest)),
		Message: message,
		Errors:  fieldErrors,
	}
}

// NewConstraintError creates a constraint-violation Error.
//
// code is the machine code (e.g. "USER_ALREADY_EXISTS"), constraint the
// database constraint name when the driver reported one.
func NewConstraintError(code, message, constraint string, fieldErrors []FieldError, cause error) *Error {
	return &Error{
		Kind:       KindConstraint,
		Code:       code,
		Message:    message,
		Constraint: constraint,
		Errors:     fieldErrors,
		Err:        cause,
	}
}

// NewUnauthorizedError creates an unauthorized Error.
func NewUnauthorizedError(message string) *Error {
	return &Error{
		Kind:    KindUnauthorized,
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(http.StatusUnauthorized)),
		Message: message,
	}
}

// NewUnavailableError wraps a cause that prevented the store from executing.
func NewUnavailableError(cause error) *Error {
	return &Error{
		Kind:    KindUnavailable,
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(http.StatusServiceUnavailable)),
		Message: "The data store is unavailable",
		Err:     cause,
	}
}

// NewInternalError wraps an unexpected cause.
//
// Message is the generic status text, not the real internal error message;
// the cause stays reachable through Unwrap for logging.
func NewInternalError(cause error) *Error {
	return &Error{
		Kind:    KindInternal,
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(http.StatusInternalServerError)),
		Message: http.StatusText(http.StatusInternalServerError),
		Err:     cause,
	}
}

// Status maps the Kind onto the HTTP status a transport layer should use.
func (e *Error) Status() int {
	switch e.Kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindConstraint:
		return http.StatusConflict
	case KindInvalidInput:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// KindOf reports the Kind of the first *Error in err's chain, or
// KindInternal when there is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
