// Package errors defines the application error taxonomy. Every failure that
// can cross the handler boundary is an AppError carrying both an HTTP status
// and a stable business error code.
package errors

import (
	"net/http"

	"gamestore/internal/errors"
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

// WithDetails returns a copy of the error carrying detailed information.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Account-related errors
	ErrEmailAlreadyRegistered = NewBaseError(
		http.StatusConflict,
		"EMAIL_ALREADY_REGISTERED",
		"this email is already registered",
		"",
	)

	ErrUsernameAlreadyTaken = NewBaseError(
		http.StatusConflict,
		"USERNAME_ALREADY_TAKEN",
		"this username is already taken",
		"",
	)

	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"user not found",
		"",
	)

	ErrCompanyNotFound = NewBaseError(
		http.StatusNotFound,
		"COMPANY_NOT_FOUND",
		"company not found",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"invalid email or password",
		"",
	)

	ErrTemporaryPasswordExpired = NewBaseError(
		http.StatusUnauthorized,
		"TEMPORARY_PASSWORD_EXPIRED",
		"temporary credential has expired, request a new password reset",
		"",
	)

	ErrPasswordConfirmationMismatch = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_CONFIRMATION_MISMATCH",
		"new password and confirmation do not match",
		"",
	)

	ErrResetTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"RESET_TOKEN_INVALID",
		"invalid or expired reset token",
		"",
	)

	// Catalog-related errors
	ErrGameNotFound = NewBaseError(
		http.StatusNotFound,
		"GAME_NOT_FOUND",
		"game not found",
		"",
	)

	ErrGameNameTaken = NewBaseError(
		http.StatusConflict,
		"GAME_NAME_TAKEN",
		"a game with this name already exists",
		"",
	)

	ErrNotGameOwner = NewBaseError(
		http.StatusForbidden,
		"NOT_GAME_OWNER",
		"only the owning company may modify this game",
		"",
	)

	// Rating-related errors
	ErrInvalidRating = NewBaseError(
		http.StatusBadRequest,
		"INVALID_RATING",
		"rating must be between 1 and 5",
		"",
	)

	ErrDuplicateComment = NewBaseError(
		http.StatusConflict,
		"DUPLICATE_COMMENT",
		"you have already commented on this game",
		"",
	)

	ErrCommentNotFound = NewBaseError(
		http.StatusNotFound,
		"COMMENT_NOT_FOUND",
		"comment not found or not owned by you",
		"",
	)

	// Commerce-related errors
	ErrAlreadyOwned = NewBaseError(
		http.StatusConflict,
		"ALREADY_OWNED",
		"game is already in your library",
		"",
	)

	ErrMissingPaymentInfo = NewBaseError(
		http.StatusBadRequest,
		"MISSING_PAYMENT_INFO",
		"payment information is required",
		"",
	)

	ErrInvalidCardFormat = NewBaseError(
		http.StatusBadRequest,
		"INVALID_CARD_FORMAT",
		"payment card details are malformed",
		"",
	)

	ErrAlreadyWishlisted = NewBaseError(
		http.StatusConflict,
		"ALREADY_WISHLISTED",
		"game is already in your wishlist",
		"",
	)

	ErrNotInWishlist = NewBaseError(
		http.StatusNotFound,
		"NOT_IN_WISHLIST",
		"game is not in your wishlist",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	// External collaborators
	ErrMailDeliveryFailed = NewBaseError(
		http.StatusBadGateway,
		"MAIL_DELIVERY_FAILED",
		"failed to deliver email",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"resource not found",
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
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
