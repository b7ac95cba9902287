package errors

import (
	"net/http"

	"roster/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
	parent    *BaseError
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy carrying detailed error information. The copy
// unwraps to the original so errors.Is still matches the predefined value.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
		parent:    e,
	}
}

// Unwrap exposes the predefined error a detailed copy was derived from.
func (e *BaseError) Unwrap() error {
	if e.parent == nil {
		return nil
	}
	return e.parent
}

// Predefined error types
var (
	// Input validation errors
	ErrInvalidInput = NewBaseError(
		http.StatusBadRequest,
		"INVALID_INPUT",
		"Missing or malformed request fields",
		"",
	)

	// Uniqueness conflicts on registration
	ErrUsernameTaken = NewBaseError(
		http.StatusConflict,
		"USERNAME_TAKEN",
		"This username is already registered",
		"",
	)

	ErrEmailTaken = NewBaseError(
		http.StatusConflict,
		"EMAIL_TAKEN",
		"This email is already registered",
		"",
	)

	ErrPublicIDTaken = NewBaseError(
		http.StatusConflict,
		"PUBLIC_ID_TAKEN",
		"Generated identifier collided, retry the request",
		"",
	)

	// ErrAccountConflict reports a uniqueness conflict whose colliding field
	// could not be identified. It never names a field it cannot prove.
	ErrAccountConflict = NewBaseError(
		http.StatusConflict,
		"ACCOUNT_CONFLICT",
		"Account conflicts with an existing account",
		"",
	)

	// Lookup errors
	ErrAccountNotFound = NewBaseError(
		http.StatusNotFound,
		"ACCOUNT_NOT_FOUND",
		"No account matches the given identifier",
		"",
	)

	// Authentication errors. Unknown username and wrong password share one
	// error so responses never reveal which usernames exist.
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Username or password is incorrect",
		"",
	)

	ErrTokenExpired = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_EXPIRED",
		"Token has expired",
		"",
	)

	ErrTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_INVALID",
		"Token signature or payload is invalid",
		"",
	)

	// State-transition no-ops. The requested transition already holds; callers
	// see this explicitly instead of a silent success.
	ErrAlreadyAdmin = NewBaseError(
		http.StatusConflict,
		"ALREADY_ADMIN",
		"Account already has admin status",
		"",
	)

	ErrNotAdmin = NewBaseError(
		http.StatusConflict,
		"NOT_ADMIN",
		"Account is not an admin",
		"",
	)

	ErrAlreadyActive = NewBaseError(
		http.StatusConflict,
		"ALREADY_ACTIVE",
		"Account is already active",
		"",
	)

	ErrAlreadyInactive = NewBaseError(
		http.StatusConflict,
		"ALREADY_INACTIVE",
		"Account is already inactive",
		"",
	)

	// Infrastructure errors
	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Failed to process password",
		"",
	)

	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
