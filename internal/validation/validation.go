// Package validation contains the logic for validating
// data entering the persistence layer.
//
// It uses the `validator` library to enforce structural rules (required
// fields, allowed enum values) defined in struct tags and extracts
// validation errors into field errors the caller can show.
package validation
