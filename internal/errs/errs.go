// Package errs defines the error types returned by the persistence layer.
//
// Every failure leaving a repository is an *Error carrying a Kind
// (not found, constraint violation, invalid input, ...) together with the
// entity and operation it came from, so the caller can pick a response
// without parsing messages.
package errs
