// Package apperrors defines the sentinel errors services and repositories
// return. The HTTP layer maps them to status codes in one place.
package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenNotFound      = errors.New("token not found")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// User errors
var (
	ErrUserNotFound              = errors.New("user not found")
	ErrEmailAlreadyExists        = errors.New("email already registered")
	ErrCollegeEmailAlreadyExists = errors.New("college email already registered")
	ErrRegNoAlreadyExists        = errors.New("registration number already exists")
)

// Drive errors
var (
	ErrDriveNotFound = errors.New("drive not found")
	// ErrDeadlinePassed rejects student status writes once the drive deadline
	// has been reached. Admin edits are never gated by it.
	ErrDeadlinePassed = errors.New("this drive has ended, status can no longer be updated")
)
