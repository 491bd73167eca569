package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode is a stable machine-readable error identifier surfaced to API
// callers inside the error envelope.
type ErrorCode string

const (
	CodeValidationError ErrorCode = "VALIDATION_ERROR"
	CodeInternalError   ErrorCode = "INTERNAL_ERROR"

	CodePDFURLInvalid       ErrorCode = "PDF_URL_INVALID"
	CodePDFDownloadFailed   ErrorCode = "PDF_DOWNLOAD_FAILED"
	CodePDFDownloadTimeout  ErrorCode = "PDF_DOWNLOAD_TIMEOUT"
	CodePDFInvalidFormat    ErrorCode = "PDF_INVALID_FORMAT"
	CodePDFTooLarge         ErrorCode = "PDF_TOO_LARGE"
	CodePDFExtractionFailed ErrorCode = "PDF_EXTRACTION_FAILED"
	CodePDFInvalidPageRange ErrorCode = "PDF_INVALID_PAGE_RANGE"

	CodeAgentInitFailed       ErrorCode = "AGENT_INITIALIZATION_FAILED"
	CodeAgentProcessingFailed ErrorCode = "AGENT_PROCESSING_FAILED"
	CodeProviderAPIError      ErrorCode = "PROVIDER_API_ERROR"
	CodeRateLimitExceeded     ErrorCode = "RATE_LIMIT_EXCEEDED"
	CodeTimeout               ErrorCode = "TIMEOUT_ERROR"
)

// AppError represents a structured application error
type AppError struct {
	Code       ErrorCode              `json:"code"`
	Message    string                 `json:"message"`
	Details    map[string]interface{} `json:"details,omitempty"`
	StatusCode int                    `json:"-"`
	Cause      error                  `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithDetail attaches a key/value pair to the error details
func (e *AppError) WithDetail(key string, value interface{}) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// NewValidationError creates a new validation error
func NewValidationError(message string) *AppError {
	return &AppError{
		Code:       CodeValidationError,
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}

// NewPDFURLInvalidError creates an error for a URL that does not reference a PDF
func NewPDFURLInvalidError(message string, url string) *AppError {
	return &AppError{
		Code:       CodePDFURLInvalid,
		Message:    message,
		Details:    map[string]interface{}{"url": url},
		StatusCode: http.StatusBadRequest,
	}
}

// NewPDFDownloadError creates an error for a failed PDF download
func NewPDFDownloadError(message string, url string, cause error) *AppError {
	return &AppError{
		Code:       CodePDFDownloadFailed,
		Message:    message,
		Details:    map[string]interface{}{"url": url},
		StatusCode: http.StatusBadRequest,
		Cause:      cause,
	}
}

// NewPDFDownloadTimeoutError creates an error for a timed-out PDF download
func NewPDFDownloadTimeoutError(url string, cause error) *AppError {
	return &AppError{
		Code:       CodePDFDownloadTimeout,
		Message:    "Timeout downloading PDF from URL",
		Details:    map[string]interface{}{"url": url},
		StatusCode: http.StatusBadRequest,
		Cause:      cause,
	}
}

// NewPDFInvalidFormatError creates an error for a file that is not a valid PDF
func NewPDFInvalidFormatError(message string, cause error) *AppError {
	return &AppError{
		Code:       CodePDFInvalidFormat,
		Message:    message,
		StatusCode: http.StatusBadRequest,
		Cause:      cause,
	}
}

// NewPDFTooLargeError creates an error for a PDF exceeding the size limit
func NewPDFTooLargeError(maxSizeBytes int64) *AppError {
	return &AppError{
		Code:       CodePDFTooLarge,
		Message:    "PDF file is too large",
		Details:    map[string]interface{}{"max_size_bytes": maxSizeBytes},
		StatusCode: http.StatusBadRequest,
	}
}

// NewPDFExtractionError creates an error for failed text extraction
func NewPDFExtractionError(message string, cause error) *AppError {
	return &AppError{
		Code:       CodePDFExtractionFailed,
		Message:    message,
		StatusCode: http.StatusBadRequest,
		Cause:      cause,
	}
}

// NewPDFInvalidPageRangeError creates an error for an invalid page range
func NewPDFInvalidPageRangeError(minPage, maxPage int) *AppError {
	return &AppError{
		Code:       CodePDFInvalidPageRange,
		Message:    "Minimum page cannot be greater than maximum page",
		Details:    map[string]interface{}{"min_page": minPage, "max_page": maxPage},
		StatusCode: http.StatusBadRequest,
	}
}

// NewAgentInitError creates an error for failed agent initialization
func NewAgentInitError(message string, cause error) *AppError {
	return &AppError{
		Code:       CodeAgentInitFailed,
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// NewAgentProcessingError creates an error for a failed agent run
func NewAgentProcessingError(message string, agentName string, cause error) *AppError {
	err := &AppError{
		Code:       CodeAgentProcessingFailed,
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
	if agentName != "" {
		err.WithDetail("agent_name", agentName)
	}
	return err
}

// NewProviderAPIError creates an error for a provider-side API failure
func NewProviderAPIError(message string, cause error) *AppError {
	return &AppError{
		Code:       CodeProviderAPIError,
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// NewRateLimitError creates an error for an exceeded provider rate limit
func NewRateLimitError(message string, cause error) *AppError {
	return &AppError{
		Code:       CodeRateLimitExceeded,
		Message:    message,
		StatusCode: http.StatusTooManyRequests,
		Cause:      cause,
	}
}

// NewTimeoutError creates an error for a timed-out agent invocation
func NewTimeoutError(message string, cause error) *AppError {
	return &AppError{
		Code:       CodeTimeout,
		Message:    message,
		StatusCode: http.StatusServiceUnavailable,
		Cause:      cause,
	}
}

// NewInternalError creates a new internal server error
func NewInternalError(message string, cause error) *AppError {
	return &AppError{
		Code:       CodeInternalError,
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// As extracts an *AppError from an error chain
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsCode checks if the error carries a specific error code
func IsCode(err error, code ErrorCode) bool {
	if appErr, ok := As(err); ok {
		return appErr.Code == code
	}
	return false
}

// GetStatusCode returns the HTTP status code for an error
func GetStatusCode(err error) int {
	if appErr, ok := As(err); ok {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}
