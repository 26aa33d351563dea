package dto

import "time"

// ErrorCode defines machine-readable error codes
type ErrorCode string

// Error code constants
const (
	// Authentication errors
	ErrorCodeInvalidCredentials ErrorCode = "AUTH_001"
	ErrorCodeTokenExpired       ErrorCode = "AUTH_002"
	ErrorCodeInvalidToken       ErrorCode = "AUTH_003"
	ErrorCodeUnauthorized       ErrorCode = "AUTH_004"

	// Authorization errors
	ErrorCodeForbidden ErrorCode = "AUTHZ_001"

	// Validation errors
	ErrorCodeValidationFailed ErrorCode = "VAL_001"

	// Resource errors
	ErrorCodeResourceNotFound ErrorCode = "RES_001"
	ErrorCodeConflict         ErrorCode = "RES_002"
	ErrorCodeResourceInUse    ErrorCode = "RES_003"

	// Business-rule errors
	ErrorCodeNoActiveSubscription ErrorCode = "SUB_001"

	// Server errors
	ErrorCodeInternalError ErrorCode = "SRV_001"
)

// ErrorDetail carries a single error with its code and optional field details
type ErrorDetail struct {
	Code    ErrorCode         `json:"code" example:"VAL_001"`
	Message string            `json:"message" example:"Validation failed"`
	Details map[string]string `json:"details,omitempty"`
}

// NewErrorDetail creates an error detail
func NewErrorDetail(code ErrorCode, message string) ErrorDetail {
	return ErrorDetail{Code: code, Message: message}
}

// WithDetails attaches per-field details to the error
func (e ErrorDetail) WithDetails(details map[string]string) ErrorDetail {
	e.Details = details
	return e
}

// ErrorResponse is the envelope for error responses
type ErrorResponse struct {
	Error     ErrorDetail `json:"error"`
	Timestamp time.Time   `json:"timestamp"`
}

// NewErrorResponse wraps an error detail in the response envelope
func NewErrorResponse(detail ErrorDetail) ErrorResponse {
	return ErrorResponse{
		Error:     detail,
		Timestamp: time.Now(),
	}
}
