package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrInvalidFormat      = errors.New("invalid token format")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Identity errors
var (
	ErrEmailAlreadyExists  = errors.New("email already exists")
	ErrRollNoAlreadyExists = errors.New("roll number already exists")
	ErrStudentNotFound     = errors.New("student not found")
	ErrTeacherNotFound     = errors.New("teacher not found")
	ErrAdminNotFound       = errors.New("admin not found")
)

// Teacher approval errors. Login is refused with a status-specific
// reason, a deliberate relaxation of the uniform invalid-credentials
// signal.
var (
	ErrTeacherPending  = errors.New("teacher account is pending admin approval")
	ErrTeacherRejected = errors.New("teacher account has been rejected by admin")
)

// Project errors
var (
	ErrProjectNotFound     = errors.New("project not found")
	ErrProjectFileMissing  = errors.New("project file is required")
	ErrProjectFileNotFound = errors.New("project file not found")
	ErrFileTypeNotAllowed  = errors.New("file type not allowed")
	ErrFileTooLarge        = errors.New("file too large")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
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

// NewNotFoundError creates a resource-not-found error with a message
func NewNotFoundError(message string) error {
	return &CustomError{Err: ErrResourceNotFound, Message: message}
}

// NewConflictError creates a conflict error with a message
func NewConflictError(message string) error {
	return &CustomError{Err: ErrConflict, Message: message}
}

// NewForbiddenError creates a permission-denied error with a message
func NewForbiddenError(message string) error {
	return &CustomError{Err: ErrPermissionDenied, Message: message}
}

// NewBadRequestError creates a bad-request error with a message
func NewBadRequestError(message string) error {
	return &CustomError{Err: ErrBadRequest, Message: message}
}
