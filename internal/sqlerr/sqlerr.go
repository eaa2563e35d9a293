// Package sqlerr specifically handles database driver errors.
//
// It parses cryptic error codes from the database driver and
// converts them into the structured errors of package errs (e.g.,
// converting a "unique violation" into a ConstraintViolation carrying
// the constraint name and a STUDENT_ALREADY_EXISTS code).
package sqlerr

import "strings"

// Code is the normalized category of a PostgreSQL error.
type Code string

const (
	Other                 Code = "other"
	UniqueViolation       Code = "unique_violation"
	ForeignKeyViolation   Code = "foreign_key_violation"
	NotNullViolation      Code = "not_null_violation"
	CheckViolation        Code = "check_violation"
	DataException         Code = "data_exception"
	ConnectionException   Code = "connection_exception"
	InsufficientResources Code = "insufficient_resources"
	OperatorIntervention  Code = "operator_intervention"
)

// Severity is the normalized PostgreSQL message severity.
type Severity string

const (
	SeverityError   Severity = "ERROR"
	SeverityFatal   Severity = "FATAL"
	SeverityPanic   Severity = "PANIC"
	SeverityWarning Severity = "WARNING"
	SeverityNotice  Severity = "NOTICE"
	SeverityDebug   Severity = "DEBUG"
	SeverityInfo    Severity = "INFO"
	SeverityLog     Severity = "LOG"
)

// Error is the structured form of a driver error.
//
// It keeps the original SQLSTATE and the table/column/constraint metadata
// so messages and codes can be derived from them.
type Error struct {
	Code           Code
	Severity       Severity
	DatabaseCode   string
	Message        string
	SchemaName     string
	TableName      string
	ColumnName     string
	DataTypeName   string
	ConstraintName string
	driverErr      error
}

func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the original driver error.
func (e *Error) Unwrap() error {
	return e.driverErr
}

// MapCode maps a SQLSTATE onto a Code.
//
// Exact codes are checked first, then the two-character class.
func MapCode(sqlstate string) Code {
	switch sqlstate {
	case "23505":
		return UniqueViolation
	case "23503":
		return ForeignKeyViolation
	case "23502":
		return NotNullViolation
	case "23514":
		return CheckViolation
	case "57P01", "57P02", "57P03":
		return OperatorIntervention
	}

	if len(sqlstate) < 2 {
		return Other
	}
	switch sqlstate[:2] {
	case "08":
		return ConnectionException
	case "22":
		return DataException
	case "53":
		return InsufficientResources
	}
	return Other
}

// MapSeverity normalizes the severity string reported by the server.
func MapSeverity(severity string) Severity {
	switch s := Severity(strings.ToUpper(severity)); s {
	case SeverityError, SeverityFatal, SeverityPanic, SeverityWarning,
		SeverityNotice, SeverityDebug, SeverityInfo, SeverityLog:
		return s
	}
	return SeverityError
}
