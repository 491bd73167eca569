package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
)

func TestAppErrorError(t *testing.T) {
	err := NewValidationError("Action is required")
	if got := err.Error(); got != "VALIDATION_ERROR: Action is required" {
		t.Errorf("Error() = %q", got)
	}

	cause := errors.New("connection refused")
	wrapped := NewPDFDownloadError("Failed to download PDF", "http://example.com/doc.pdf", cause)
	if got := wrapped.Error(); !strings.Contains(got, "connection refused") {
		t.Errorf("Error() = %q, want cause included", got)
	}
}

func TestAppErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := NewInternalError("An unexpected error occurred", cause)
	if !errors.Is(err, cause) {
		t.Error("errors.Is() did not find the wrapped cause")
	}

	bare := NewValidationError("missing field")
	if bare.Unwrap() != nil {
		t.Error("Unwrap() returned non-nil for an error without a cause")
	}
}

func TestWithDetail(t *testing.T) {
	err := NewValidationError("Invalid page range").
		WithDetail("min_page", 5).
		WithDetail("max_page", 3)

	if err.Details["min_page"] != 5 || err.Details["max_page"] != 3 {
		t.Errorf("WithDetail() details = %v", err.Details)
	}
}

func TestStatusCodes(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		code ErrorCode
		want int
	}{
		{"validation", NewValidationError("m"), CodeValidationError, http.StatusBadRequest},
		{"url invalid", NewPDFURLInvalidError("m", "u"), CodePDFURLInvalid, http.StatusBadRequest},
		{"download", NewPDFDownloadError("m", "u", nil), CodePDFDownloadFailed, http.StatusBadRequest},
		{"download timeout", NewPDFDownloadTimeoutError("u", nil), CodePDFDownloadTimeout, http.StatusBadRequest},
		{"invalid format", NewPDFInvalidFormatError("m", nil), CodePDFInvalidFormat, http.StatusBadRequest},
		{"too large", NewPDFTooLargeError(1024), CodePDFTooLarge, http.StatusBadRequest},
		{"extraction", NewPDFExtractionError("m", nil), CodePDFExtractionFailed, http.StatusBadRequest},
		{"page range", NewPDFInvalidPageRangeError(5, 3), CodePDFInvalidPageRange, http.StatusBadRequest},
		{"agent init", NewAgentInitError("m", nil), CodeAgentInitFailed, http.StatusInternalServerError},
		{"agent processing", NewAgentProcessingError("m", "a", nil), CodeAgentProcessingFailed, http.StatusInternalServerError},
		{"provider", NewProviderAPIError("m", nil), CodeProviderAPIError, http.StatusInternalServerError},
		{"rate limit", NewRateLimitError("m", nil), CodeRateLimitExceeded, http.StatusTooManyRequests},
		{"timeout", NewTimeoutError("m", nil), CodeTimeout, http.StatusServiceUnavailable},
		{"internal", NewInternalError("m", nil), CodeInternalError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.code {
				t.Errorf("code = %s, want %s", tt.err.Code, tt.code)
			}
			if tt.err.StatusCode != tt.want {
				t.Errorf("status = %d, want %d", tt.err.StatusCode, tt.want)
			}
		})
	}
}

func TestAs(t *testing.T) {
	appErr := NewRateLimitError("API rate limit exceeded", nil)
	wrapped := fmt.Errorf("running agent: %w", appErr)

	got, ok := As(wrapped)
	if !ok {
		t.Fatal("As() failed to extract AppError from wrapped chain")
	}
	if got.Code != CodeRateLimitExceeded {
		t.Errorf("As() code = %s", got.Code)
	}

	if _, ok := As(errors.New("plain")); ok {
		t.Error("As() extracted AppError from a plain error")
	}
}

func TestIsCode(t *testing.T) {
	err := NewPDFTooLargeError(1024)
	if !IsCode(err, CodePDFTooLarge) {
		t.Error("IsCode() = false for matching code")
	}
	if IsCode(err, CodePDFInvalidFormat) {
		t.Error("IsCode() = true for different code")
	}
	if IsCode(nil, CodePDFTooLarge) {
		t.Error("IsCode() = true for nil error")
	}
	if IsCode(errors.New("plain"), CodePDFTooLarge) {
		t.Error("IsCode() = true for plain error")
	}
}

func TestGetStatusCode(t *testing.T) {
	if got := GetStatusCode(NewRateLimitError("m", nil)); got != http.StatusTooManyRequests {
		t.Errorf("GetStatusCode() = %d", got)
	}
	if got := GetStatusCode(errors.New("plain")); got != http.StatusInternalServerError {
		t.Errorf("GetStatusCode() = %d for plain error", got)
	}
}

func TestAgentProcessingErrorDetail(t *testing.T) {
	err := NewAgentProcessingError("Agent processing failed", "Summarizer", nil)
	if err.Details["agent_name"] != "Summarizer" {
		t.Errorf("details = %v", err.Details)
	}

	anonymous := NewAgentProcessingError("Agent processing failed", "", nil)
	if _, ok := anonymous.Details["agent_name"]; ok {
		t.Error("empty agent name recorded in details")
	}
}
