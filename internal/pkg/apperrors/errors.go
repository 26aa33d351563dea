package apperrors

import (
	"errors"
	"fmt"
)

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
	ErrTokenNotFound      = errors.New("token not found")
	ErrTokenRevoked       = errors.New("token revoked")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// User errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// Domain errors
var (
	ErrChildNotFound        = errors.New("child not found")
	ErrTrainingNotFound     = errors.New("training not found")
	ErrBranchNotFound       = errors.New("branch not found")
	ErrBranchInUse          = errors.New("branch is referenced by users, children, or trainings")
	ErrSubscriptionNotFound = errors.New("subscription not found")
	ErrDisciplineNotFound   = errors.New("discipline not found")
	ErrProgressNotFound     = errors.New("progress record not found")

	// ErrNoActiveSubscription is the business-rule failure of the attendance
	// ledger: a present-transition found no consumable subscription. It always
	// aborts and rolls back the whole batch.
	ErrNoActiveSubscription = errors.New("no active subscription")
)

// NoActiveSubscriptionError carries the offending child so the caller can
// correct the batch and resubmit.
type NoActiveSubscriptionError struct {
	ChildID int64
}

// Error implements the error interface
func (e *NoActiveSubscriptionError) Error() string {
	return fmt.Sprintf("no active subscription for child %d", e.ChildID)
}

// Unwrap makes the error match ErrNoActiveSubscription under errors.Is
func (e *NoActiveSubscriptionError) Unwrap() error {
	return ErrNoActiveSubscription
}

// NewNoActiveSubscriptionError creates the ledger's business-rule error for a child
func NewNoActiveSubscriptionError(childID int64) error {
	return &NoActiveSubscriptionError{ChildID: childID}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
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

// NewResourceNotFoundError creates a not-found error with a message
func NewResourceNotFoundError(message string) error {
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

// NewValidationError creates a validation error with a message
func NewValidationError(message string) error {
	return &CustomError{Err: ErrValidationFailed, Message: message}
}
