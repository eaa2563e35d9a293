package sqlerr

import (
	"context"
	"errors"
	"fmt"
	"net"
	"regexp"
	"strings"

	"github.com/Nishaantmazarallo/Mini-project/internal/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrCode reports the mapped sqlerr.Code for a given error.
//
// Behavior:
//   - If err unwraps into *sqlerr.Error, return its Code.
//   - If err unwraps into *pgconn.PgError, map its SQLSTATE.
//   - Otherwise return sqlerr.Other.
func ErrCode(err error) Code {
	var sqlErr *Error
	if errors.As(err, &sqlErr) {
		return sqlErr.Code
	}
	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		return MapCode(pgerr.Code)
	}
	return Other
}

// ConvertPgError converts a pgconn.PgError (raw Postgres error) into our custom sqlerr.Error.
func ConvertPgError(src *pgconn.PgError) *Error {
	return &Error{
		Code:           MapCode(src.Code),
		Severity:       MapSeverity(src.Severity),
		DatabaseCode:   src.Code,
		Message:        src.Message,
		SchemaName:     src.SchemaName,
		TableName:      src.TableName,
		ColumnName:     src.ColumnName,
		DataTypeName:   src.DataTypeName,
		ConstraintName: src.ConstraintName,
		driverErr:      src,
	}
}

// generateErrorCode creates consistent application error codes from DB errors.
//
// Output format:
//
//	<DOMAIN>_<ACTION>
//
// Example:
//
//	users + UniqueViolation => USER_ALREADY_EXISTS
func generateErrorCode(tableName string, errType Code) string {
	if tableName == "" {
		tableName = "RECORD"
	}

	domain := strings.ToUpper(tableName)

	domain = singular(domain)

	action := "ERROR"
	switch errType {
	case ForeignKeyViolation:
		action = "NOT_FOUND"
	case UniqueViolation:
		action = "ALREADY_EXISTS"
	case NotNullViolation:
		action = "REQUIRED"
	case CheckViolation, DataException:
		action = "INVALID"
	}

	return fmt.Sprintf("%s_%s", domain, action)
}

// formatUserFriendlyMessage produces an end-user-facing error message.
func formatUserFriendlyMessage(sqlErr *Error) string {
	entityName := getEntityName(sqlErr.TableName, sqlErr.ColumnName)

	switch sqlErr.Code {
	case ForeignKeyViolation:
		return fmt.Sprintf("The referenced %s does not exist", entityName)

	case UniqueViolation:
		// "identifier" is replaced later if the column can be inferred.
		return fmt.Sprintf("A %s with this identifier already exists", entityName)

	case NotNullViolation:
		fieldName := humanizeText(sqlErr.ColumnName)
		if fieldName == "" {
			fieldName = "field"
		}
		return fmt.Sprintf("The %s is required", fieldName)

	case CheckViolation:
		fieldName := humanizeText(extractColumnForCheckViolation(sqlErr.ConstraintName))
		if fieldName != "" {
			return fmt.Sprintf("The %s value does not meet required conditions", fieldName)
		}
		return "One or more values do not meet required conditions"

	case DataException:
		return "One or more values have an invalid format"

	default:
		return "An error occurred while processing your request"
	}
}

// getEntityName tries to infer an entity name from table/column data.
//
// Priority rules:
//  1. If column ends with "_id", use that base name. (Best for FK relations)
//     e.g. "user_id" -> "User"
//  2. Otherwise use table name, singularized if it ends with "s".
//  3. Otherwise fallback to "record".
func getEntityName(tableName, columnName string) string {
	if columnName != "" && strings.HasSuffix(strings.ToLower(columnName), "_id") {
		entity := strings.TrimSuffix(strings.ToLower(columnName), "_id")
		return humanizeText(entity)
	}

	if tableName != "" {
		return humanizeText(singular(tableName))
	}

	return "record"
}

// singular is a naive singularization of table names:
//
//	USERS -> USER, gallery_images -> gallery_image, contact_inquiries -> contact_inquiry
func singular(name string) string {
	lower := strings.ToLower(name)
	switch {
	case strings.HasSuffix(lower, "ies") && len(name) > 3:
		y := "y"
		if name[len(name)-1] == 'S' {
			y = "Y"
		}
		return name[:len(name)-3] + y
	case strings.HasSuffix(lower, "s") && len(name) > 1:
		return name[:len(name)-1]
	}
	return name
}

// humanizeText converts snake_case into Title Case.
//
//	"first_name" -> "First Name"
func humanizeText(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}

var uniqueKeyPattern = regexp.MustCompile(`_([^_]+)_(?:key|ukey)$`)

// extractColumnForUniqueViolation tries to infer the column name from a unique constraint name.
//
// It supports two conventions:
//
//  1. "unique_<table>_<column>"
//     Example: unique_users_email -> "email"
//
//  2. "<table>_<column>_(key|ukey)"
//     Example: users_email_key -> "email"
func extractColumnForUniqueViolation(constraintName string) string {
	if constraintName == "" {
		return ""
	}

	if strings.HasPrefix(constraintName, "unique_") {
		parts := strings.Split(constraintName, "_")
		if len(parts) >= 3 {
			return parts[len(parts)-1]
		}
	}

	matches := uniqueKeyPattern.FindStringSubmatch(constraintName)
	if len(matches) > 1 {
		return matches[1]
	}

	return ""
}

var checkPattern = regexp.MustCompile(`^[a-z]+(?:_[a-z]+)*?_([a-z]+)_check$`)

// extractColumnForCheckViolation infers the column from PostgreSQL's default
// check constraint naming, "<table>_<column>_check".
//
//	students_age_check -> "age"
func extractColumnForCheckViolation(constraintName string) string {
	matches := checkPattern.FindStringSubmatch(constraintName)
	if len(matches) > 1 {
		return matches[1]
	}
	return ""
}

// isUnavailable reports errors that mean the statement never reached or
// never finished on the server.
func isUnavailable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	if pgconn.Timeout(err) {
		return true
	}
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return true
	}
	if errors.Is(err, net.ErrClosed) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

// HandleError converts a low-level database error into an *errs.Error
// scoped to entity and op.
//
// Output:
//   - nil stays nil
//   - *errs.Error: returned with entity/op filled in if missing
//   - pgconn.PgError: constraint violations, invalid data, unavailability
//   - ErrNoRows: not found
//   - connection/timeout errors: unavailable
//   - otherwise: internal
func HandleError(err error, entity, op string) error {
	if err == nil {
		return nil
	}

	var appErr *errs.Error
	if errors.As(err, &appErr) {
		return appErr.WithOp(entity, op)
	}

	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		sqlErr := ConvertPgError(pgerr)
		tableName := sqlErr.TableName
		if tableName == "" {
			tableName = strings.ReplaceAll(entity, " ", "_")
		}
		errorCode := generateErrorCode(tableName, sqlErr.Code)
		userMessage := formatUserFriendlyMessage(sqlErr)

		switch sqlErr.Code {
		case ForeignKeyViolation, CheckViolation:
			return errs.NewConstraintError(errorCode, userMessage, sqlErr.ConstraintName, nil, sqlErr).WithOp(entity, op)

		case UniqueViolation:
			columnName := extractColumnForUniqueViolation(sqlErr.ConstraintName)
			var fieldErrors []errs.FieldError
			if columnName != "" {
				userMessage = strings.ReplaceAll(userMessage, "identifier", humanizeText(columnName))
				fieldErrors = []errs.FieldError{{Field: columnName, Error: "already exists"}}
			}
			return errs.NewConstraintError(errorCode, userMessage, sqlErr.ConstraintName, fieldErrors, sqlErr).WithOp(entity, op)

		case NotNullViolation:
			fieldErrors := []errs.FieldError{
				{
					Field: strings.ToLower(sqlErr.ColumnName),
					Error: "is required",
				},
			}
			return errs.NewConstraintError(errorCode, userMessage, sqlErr.ConstraintName, fieldErrors, sqlErr).WithOp(entity, op)

		case DataException:
			invalid := errs.NewInvalidInputError(userMessage, nil)
			invalid.Code = errorCode
			invalid.Err = sqlErr
			return invalid.WithOp(entity, op)

		case ConnectionException, InsufficientResources, OperatorIntervention:
			return errs.NewUnavailableError(sqlErr).WithOp(entity, op)

		default:
			return errs.NewInternalError(sqlErr).WithOp(entity, op)
		}
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return errs.NewNotFoundError(entity, op)
	}

	if isUnavailable(err) {
		return errs.NewUnavailableError(err).WithOp(entity, op)
	}

	return errs.NewInternalError(err).WithOp(entity, op)
}
