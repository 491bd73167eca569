package domain

import (
	"context"
	"time"
)

// PDFFetcher downloads a remote PDF to local storage and returns its path.
type PDFFetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// TextExtractor pulls text from a local PDF file for a bounded page range.
// Nil page bounds fall back to configured defaults.
type TextExtractor interface {
	Extract(path string, minPage, maxPage *int) (*ExtractedDocument, error)
}

// ConversationService exposes the three conversation operations. Each one
// runs the same pipeline: fetch, extract, build prompt, invoke agent.
type ConversationService interface {
	AnswerQuestion(ctx context.Context, req ConversationRequest) (*ConversationResponse, error)
	SummarizeDocument(ctx context.Context, req ConversationRequest) (*ConversationResponse, error)
	GenerateQuestions(ctx context.Context, req ConversationRequest) (*ConversationResponse, error)
}

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// Config defines the interface for configuration management
type Config interface {
	GetServerPort() string
	GetStoragePath() string
	GetMaxFileSize() int64
	GetLogLevel() string
	GetLogFormat() string

	GetGroqAPIKey() string
	GetGroqModelID() string
	GetGroqBaseURL() string
	GetAgentTimeout() time.Duration

	GetDownloadTimeout() time.Duration
	GetDownloadMaxAttempts() int
	GetDownloadRetryDelay() time.Duration
	GetDownloadRetryBackoff() float64

	GetDefaultMinPage() int
	GetDefaultMaxPage() int
	GetSummaryMinWords() int
	GetQuestionsCount() int

	GetSupabaseURL() string
	GetSupabaseKey() string

	IsDebug() bool

	// Validate reports a startup error when required settings are missing.
	Validate() error
}
