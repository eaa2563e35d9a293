package errs

import (
	"fmt"
	"strings"
)

// Kind classifies an Error. Callers switch on it (or use errors.Is with the
// sentinels below) to decide how to surface the failure.
type Kind string

const (
	// KindNotFound reports a primary-key or unique-key lookup that matched nothing.
	KindNotFound Kind = "not_found"

	// KindConstraint reports a write rejected by a unique, foreign-key,
	// not-null or check constraint.
	KindConstraint Kind = "constraint_violation"

	// KindInvalidInput reports a malformed page, filter or payload reaching the layer.
	KindInvalidInput Kind = "invalid_input"

	// KindUnauthorized reports failed credential checks.
	KindUnauthorized Kind = "unauthorized"

	// KindUnavailable reports that the store could not execute the statement
	// (connection lost, resources exhausted, shutting down).
	KindUnavailable Kind = "store_unavailable"

	// KindInternal covers everything else. It usually means a bug.
	KindInternal Kind = "internal"
)

// FieldError represents a field-level validation error.
// Example:
//
//	{ "field": "email", "error": "is required" }
type FieldError struct {
	// Field is the field name/key the error relates to (e.g. "email").
	Field string `json:"field"`

	// Error is the human-readable error message.
	Error string `json:"error"`
}

// Error is the structured error returned by repositories and the query composer.
//
// Fields:
//   - Kind: category used for errors.Is matching and status mapping.
//   - Code: machine-friendly code (e.g. "STUDENT_ALREADY_EXISTS").
//   - Message: human-friendly message, safe to show to clients.
//   - Entity/Op: where it happened (e.g. "student", "create").
//   - Constraint: the database constraint name, for constraint violations.
//   - Errors: per-field errors for invalid input.
//   - Err: the underlying cause, reachable through errors.Unwrap.
type Error struct {
	Kind       Kind         `json:"kind"`
	Code       string       `json:"code"`
	Message    string       `json:"message"`
	Entity     string       `json:"entity,omitempty"`
	Op         string       `json:"op,omitempty"`
	Constraint string       `json:"constraint,omitempty"`
	Errors     []FieldError `json:"errors,omitempty"`
	Err        error        `json:"-"`
}

// Error makes *Error satisfy the built-in `error` interface.
//
// The entity and operation prefix the message when they are known:
//
//	student create: A Student with this Email already exists
func (e *Error) Error() string {
	var b strings.Builder
	if e.Entity != "" {
		b.WriteString(e.Entity)
		if e.Op != "" {
			b.WriteString(" ")
			b.WriteString(e.Op)
		}
		b.WriteString(": ")
	}

	msg := e.Message
	if msg == "" {
		msg = string(e.Kind)
	}
	b.WriteString(msg)

	if e.Err != nil && e.Kind == KindInternal {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

// Unwrap exposes the driver error (or other cause) to errors.Is / errors.As.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is customizes how errors.Is(...) treats Error.
//
// A target *Error matches when its non-empty fields agree with e: a bare
// sentinel such as ErrNotFound only compares Kind, while a target with an
// Entity set also requires the same entity.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind != "" && t.Kind != e.Kind {
		return false
	}
	if t.Entity != "" && t.Entity != e.Entity {
		return false
	}
	if t.Code != "" && t.Code != e.Code {
		return false
	}
	return true
}

// WithOp returns a *copy* of this Error scoped to entity and op.
//
// Fields already set on e win, so wrapping twice keeps the innermost origin.
func (e *Error) WithOp(entity, op string) *Error {
	cp := *e
	if cp.Entity == "" {
		cp.Entity = entity
	}
	if cp.Op == "" {
		cp.Op = op
	}
	return &cp
}

// MakeUpperCaseWithUnderscores converts a string into an UPPER_CASE_WITH_UNDERSCORES format.
//
// Example:
//
//	"Not Found" -> "NOT_FOUND"
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
