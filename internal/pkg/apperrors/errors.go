package apperrors

import "errors"

// Common errors
var (
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	ErrMethodNotAllowed = errors.New("method not allowed")

	// Authentication errors (admin back office)
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrPermissionDenied   = errors.New("permission denied")
)

// Entity errors. Each wraps the category sentinel that decides its HTTP
// status, so errors.Is works against both the entity and the category.
var (
	ErrMonthNotFound     = NewCustomError(ErrResourceNotFound, "month not found")
	ErrMonthNameExists   = NewCustomError(ErrConflict, "month with this name already exists").WithField("name")
	ErrDirectionNotFound = NewCustomError(ErrResourceNotFound, "direction not found")
	ErrMentorNotFound    = NewCustomError(ErrResourceNotFound, "mentor not found")
	ErrNewsNotFound      = NewCustomError(ErrResourceNotFound, "news not found")
	ErrHeroNotFound      = NewCustomError(ErrResourceNotFound, "month hero not found")
	ErrHeroAlreadyExists = NewCustomError(ErrConflict, "this user already holds this hero type for the month")
	ErrUserNotFound      = NewCustomError(ErrResourceNotFound, "user not found").WithField("user")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Field   string
	Details map[string]interface{}
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with an underlying sentinel error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithField attaches the offending field name
func (e *CustomError) WithField(field string) *CustomError {
	e.Field = field
	return e
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// NewValidationError creates a field-level validation error
func NewValidationError(field, message string) *CustomError {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
		Field:   field,
	}
}

// NewConflictError creates a uniqueness-violation error for a field
func NewConflictError(field, message string) *CustomError {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
		Field:   field,
	}
}

// NewResourceNotFoundError creates a not-found error with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}
