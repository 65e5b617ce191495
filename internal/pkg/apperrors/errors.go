package apperrors

import "errors"

// Category errors. Every error returned by services wraps exactly one of these.
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Authentication errors
	ErrUnauthorized       = errors.New("authentication required")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
)

// Domain errors
var (
	ErrUserNotFound        = NewResourceNotFoundError("user not found")
	ErrCourseNotFound      = NewResourceNotFoundError("course not found")
	ErrJobOfferNotFound    = NewResourceNotFoundError("job offer not found")
	ErrEnrollmentNotFound  = NewResourceNotFoundError("enrollment not found")
	ErrApplicationNotFound = NewResourceNotFoundError("application not found")

	ErrDuplicateUsername = NewConflictError("username already exists")
	ErrDuplicateEmail    = NewConflictError("email already exists")
	ErrAlreadyEnrolled   = NewConflictError("already enrolled in this course")
	ErrAlreadyApplied    = NewConflictError("already applied to this job offer")

	ErrPasswordMismatch = NewValidationError("passwords do not match")
	ErrUnknownAccount   = NewCustomError(ErrUnauthorized, "user not found")

	ErrAdminSignupForbidden = NewForbiddenError("only an administrator can create admin accounts")
)

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) *CustomError {
	return NewCustomError(ErrResourceNotFound, message)
}

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) *CustomError {
	return NewCustomError(ErrConflict, message)
}

// NewForbiddenError creates a new custom error for permission denied with a message
func NewForbiddenError(message string) *CustomError {
	return NewCustomError(ErrPermissionDenied, message)
}

// NewValidationError creates a new custom error for invalid input with a message
func NewValidationError(message string) *CustomError {
	return NewCustomError(ErrValidationFailed, message)
}

// Is returns whether err matches target or any of errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails returns a copy of the error carrying context details.
// Package-level domain errors are shared, so they are never mutated.
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	return &CustomError{Err: e, Message: e.Message, Details: details}
}

// Message returns the client-facing message of the outermost CustomError in the chain
func Message(err error) (string, bool) {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce.Error(), true
	}
	return "", false
}
