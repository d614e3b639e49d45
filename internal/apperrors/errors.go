// Package apperrors provides the coded error taxonomy shared by all handlers.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode identifies a failure class in API responses.
type ErrorCode string

const (
	ErrCodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	ErrCodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	ErrCodeValidationFailed   ErrorCode = "VALIDATION_FAILED"
	ErrCodeExtractionFailed   ErrorCode = "EXTRACTION_FAILED"
	ErrCodeUpstreamFailed     ErrorCode = "UPSTREAM_FAILED"
	ErrCodeRenderFailed       ErrorCode = "RENDER_FAILED"
	ErrCodeInternal           ErrorCode = "INTERNAL"
)

// AppError is a structured application error carrying a stable code.
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
	Err     error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error { return e.Err }

// HTTPStatus maps the error code to a response status.
func (e *AppError) HTTPStatus() int {
	switch e.Code {
	case ErrCodeInvalidCredentials, ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case ErrCodeValidationFailed:
		return http.StatusBadRequest
	case ErrCodeUpstreamFailed, ErrCodeExtractionFailed:
		return http.StatusBadGateway
	case ErrCodeRenderFailed:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

func Wrap(code ErrorCode, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewInvalidCredentials reports a failed login attempt.
func NewInvalidCredentials() *AppError {
	return &AppError{Code: ErrCodeInvalidCredentials, Message: "Invalid password"}
}

// NewUnauthorized reports a missing, malformed, or expired token.
func NewUnauthorized() *AppError {
	return &AppError{Code: ErrCodeUnauthorized, Message: "Unauthorized"}
}

// NewValidation reports a request that failed input validation.
func NewValidation(details string) *AppError {
	return &AppError{Code: ErrCodeValidationFailed, Message: "Invalid request", Details: details}
}

// NewExtraction reports a completion response that could not be parsed.
// raw carries the model output for diagnostics.
func NewExtraction(raw string, err error) *AppError {
	return &AppError{Code: ErrCodeExtractionFailed, Message: "Could not parse analysis response", Details: raw, Err: err}
}

// NewUpstream reports a failed call to an external collaborator.
func NewUpstream(service string, err error) *AppError {
	return &AppError{Code: ErrCodeUpstreamFailed, Message: service + " request failed", Err: err}
}

// NewRender reports a failed document conversion.
func NewRender(err error) *AppError {
	return &AppError{Code: ErrCodeRenderFailed, Message: "PDF generation failed", Err: err}
}

// CodeOf extracts the error code, defaulting to INTERNAL for plain errors.
func CodeOf(err error) ErrorCode {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Code
	}
	return ErrCodeInternal
}

// AsAppError converts any error into an AppError, wrapping plain errors
// as INTERNAL.
func AsAppError(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return &AppError{Code: ErrCodeInternal, Message: "Internal error", Err: err}
}
