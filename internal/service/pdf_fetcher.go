package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"pdf-chat-api/internal/domain"
	apperrors "pdf-chat-api/pkg/errors"

	"github.com/google/uuid"
)

const downloadChunkSize = 8192

// HTTPPDFFetcher downloads PDF documents over HTTP(S) into local storage.
// Transient failures (connection errors, timeouts, 5xx) are retried with
// exponential backoff; 4xx responses and format/size violations are permanent.
type HTTPPDFFetcher struct {
	config domain.Config
	logger domain.Logger
	client *http.Client
	sleep  func(time.Duration)
}

// NewPDFFetcher creates a new PDF fetcher
func NewPDFFetcher(config domain.Config, logger domain.Logger) *HTTPPDFFetcher {
	if err := os.MkdirAll(config.GetStoragePath(), 0o755); err != nil {
		logger.Warn("Failed to create PDF storage directory", "path", config.GetStoragePath(), "error", err)
	}
	return &HTTPPDFFetcher{
		config: config,
		logger: logger,
		client: &http.Client{},
		sleep:  time.Sleep,
	}
}

// fetchError carries whether a failed attempt is worth retrying.
type fetchError struct {
	err       error
	retryable bool
}

// Fetch downloads the document at rawURL and returns the local file path.
func (f *HTTPPDFFetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return "", apperrors.NewPDFURLInvalidError("Invalid document URL", rawURL)
	}

	f.logger.Info("Downloading PDF", "url", rawURL)

	maxAttempts := f.config.GetDownloadMaxAttempts()
	delay := f.config.GetDownloadRetryDelay()
	backoff := f.config.GetDownloadRetryBackoff()

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		path, fErr := f.attempt(ctx, parsed, rawURL)
		if fErr == nil {
			f.logger.Info("PDF downloaded successfully", "url", rawURL, "path", path, "attempt", attempt)
			return path, nil
		}
		lastErr = fErr.err

		if !fErr.retryable || attempt == maxAttempts {
			break
		}
		if ctx.Err() != nil {
			break
		}

		f.logger.Warn("PDF download failed, retrying",
			"url", rawURL,
			"attempt", attempt,
			"max_attempts", maxAttempts,
			"delay", delay,
			"error", fErr.err,
		)
		f.sleep(delay)
		delay = time.Duration(float64(delay) * backoff)
	}

	f.logger.Error("PDF download failed", lastErr, "url", rawURL)
	return "", lastErr
}

// attempt performs one download try and classifies any failure.
func (f *HTTPPDFFetcher) attempt(ctx context.Context, parsed *url.URL, rawURL string) (string, *fetchError) {
	reqCtx, cancel := context.WithTimeout(ctx, f.config.GetDownloadTimeout())
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", &fetchError{err: apperrors.NewPDFDownloadError("Failed to build download request", rawURL, err)}
	}

	resp, err := f.client.Do(req)
	if err != nil {
		if isTimeoutError(err) {
			return "", &fetchError{err: apperrors.NewPDFDownloadTimeoutError(rawURL, err), retryable: true}
		}
		return "", &fetchError{err: apperrors.NewPDFDownloadError("Failed to download PDF", rawURL, err), retryable: true}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		return "", &fetchError{
			err:       apperrors.NewPDFDownloadError(fmt.Sprintf("Failed to download PDF: HTTP %d", resp.StatusCode), rawURL, nil),
			retryable: true,
		}
	}
	if resp.StatusCode >= 400 {
		return "", &fetchError{
			err: apperrors.NewPDFDownloadError(fmt.Sprintf("Failed to download PDF: HTTP %d", resp.StatusCode), rawURL, nil),
		}
	}

	contentType := strings.ToLower(resp.Header.Get("Content-Type"))
	if !strings.Contains(contentType, "pdf") && !strings.HasSuffix(strings.ToLower(parsed.Path), ".pdf") {
		return "", &fetchError{err: apperrors.NewPDFInvalidFormatError("URL does not point to a PDF file", nil)}
	}

	maxSize := f.config.GetMaxFileSize()
	if resp.ContentLength > 0 && resp.ContentLength > maxSize {
		return "", &fetchError{err: apperrors.NewPDFTooLargeError(maxSize)}
	}

	path := filepath.Join(f.config.GetStoragePath(), uniqueFilename())
	file, err := os.Create(path)
	if err != nil {
		return "", &fetchError{err: apperrors.NewPDFDownloadError("Failed to save PDF file", rawURL, err)}
	}

	// Stream the body in fixed-size chunks, capped at maxSize+1 so an
	// undeclared oversized body is still rejected.
	buf := make([]byte, downloadChunkSize)
	written, err := io.CopyBuffer(file, io.LimitReader(resp.Body, maxSize+1), buf)
	closeErr := file.Close()

	if err != nil {
		f.removeFile(path)
		if isTimeoutError(err) {
			return "", &fetchError{err: apperrors.NewPDFDownloadTimeoutError(rawURL, err), retryable: true}
		}
		return "", &fetchError{err: apperrors.NewPDFDownloadError("Failed to download PDF", rawURL, err), retryable: true}
	}
	if closeErr != nil {
		f.removeFile(path)
		return "", &fetchError{err: apperrors.NewPDFDownloadError("Failed to save PDF file", rawURL, closeErr)}
	}
	if written > maxSize {
		f.removeFile(path)
		return "", &fetchError{err: apperrors.NewPDFTooLargeError(maxSize)}
	}

	return path, nil
}

func (f *HTTPPDFFetcher) removeFile(path string) {
	if err := os.Remove(path); err != nil {
		f.logger.Warn("Failed to remove partial download", "path", path, "error", err)
	}
}

// uniqueFilename builds a collision-free name so concurrent requests never
// share a file.
func uniqueFilename() string {
	return fmt.Sprintf("pdf_%d_%s.pdf", time.Now().UnixNano(), uuid.NewString()[:8])
}

func isTimeoutError(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
