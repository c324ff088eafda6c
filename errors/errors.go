package errors

import (
	"errors"
	"fmt"
)

// ErrorCode classifies application errors
type ErrorCode string

const (
	// Refresh errors
	ErrCodeFetchFailed       ErrorCode = "FETCH_FAILED"
	ErrCodeRefreshSuperseded ErrorCode = "REFRESH_SUPERSEDED"

	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeInvalidDate   ErrorCode = "INVALID_DATE"
	ErrCodeInvalidStatus ErrorCode = "INVALID_STATUS"
	ErrCodeInvalidSource ErrorCode = "INVALID_SOURCE"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"

	// Cache errors
	ErrCodeCacheError ErrorCode = "CACHE_ERROR"
)

// AppError carries a code alongside the message so handlers can map errors to
// responses without string matching.
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsAppError reports whether err is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts the AppError from err, or nil
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

var (
	// Refresh errors
	ErrRefreshSuperseded = errors.New("refresh superseded by a newer request")
	ErrFetchFailed       = errors.New("failed to fetch financial data")
	ErrEmptySnapshot     = errors.New("no snapshot available")

	// Validation errors
	ErrInvalidDateRange = errors.New("invalid date range")
	ErrInvalidInput     = errors.New("invalid input")
	ErrInvalidFormat    = errors.New("invalid format")
)
