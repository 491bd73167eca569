package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"pdf-chat-api/internal/domain"
)

// AppConfig implements the domain.Config interface
type AppConfig struct {
	ServerPort  string
	StoragePath string
	MaxFileSize int64
	LogLevel    string
	LogFormat   string

	GroqAPIKey   string
	GroqModelID  string
	GroqBaseURL  string
	AgentTimeout time.Duration

	DownloadTimeout      time.Duration
	DownloadMaxAttempts  int
	DownloadRetryDelay   time.Duration
	DownloadRetryBackoff float64

	DefaultMinPage  int
	DefaultMaxPage  int
	SummaryMinWords int
	QuestionsCount  int

	SupabaseURL string
	SupabaseKey string

	Debug bool
}

// NewConfig creates a new configuration instance with default values
func NewConfig() domain.Config {
	return &AppConfig{
		// Cloud Run (and many PaaS) provide the listening port via PORT.
		// Keep SERVER_PORT for local/dev compatibility.
		ServerPort:  getEnvOrDefault("PORT", getEnvOrDefault("SERVER_PORT", "8080")),
		StoragePath: getEnvOrDefault("PDF_STORAGE_PATH", "media/pdfs"),
		MaxFileSize: getEnvInt64OrDefault("MAX_FILE_SIZE", 50*1024*1024), // 50MB default
		LogLevel:    getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:   getEnvOrDefault("LOG_FORMAT", "text"),

		GroqAPIKey:   getEnvOrDefault("GROQ_API_KEY", ""),
		GroqModelID:  getEnvOrDefault("GROQ_MODEL_ID", "llama-3.3-70b-versatile"),
		GroqBaseURL:  getEnvOrDefault("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
		AgentTimeout: getEnvSecondsOrDefault("AGENT_TIMEOUT", 120*time.Second),

		DownloadTimeout:      getEnvSecondsOrDefault("PDF_DOWNLOAD_TIMEOUT", 30*time.Second),
		DownloadMaxAttempts:  getEnvIntOrDefault("DOWNLOAD_MAX_ATTEMPTS", 3),
		DownloadRetryDelay:   getEnvSecondsOrDefault("DOWNLOAD_RETRY_DELAY", 2*time.Second),
		DownloadRetryBackoff: getEnvFloatOrDefault("DOWNLOAD_RETRY_BACKOFF", 2),

		DefaultMinPage:  getEnvIntOrDefault("PDF_DEFAULT_MIN_PAGE", 1),
		DefaultMaxPage:  getEnvIntOrDefault("PDF_DEFAULT_MAX_PAGE", 5),
		SummaryMinWords: getEnvIntOrDefault("SUMMARY_MIN_WORDS", 8000),
		QuestionsCount:  getEnvIntOrDefault("QUESTIONS_COUNT", 20),

		SupabaseURL: getEnvOrDefault("SUPABASE_URL", ""),
		SupabaseKey: getEnvOrDefault("SUPABASE_ANON_KEY", ""),

		Debug: getEnvBoolOrDefault("DEBUG", false),
	}
}

// Validate reports a startup error when required settings are missing
func (c *AppConfig) Validate() error {
	if c.GroqAPIKey == "" {
		return fmt.Errorf("required environment variable GROQ_API_KEY is not set")
	}
	if c.DownloadMaxAttempts < 1 {
		return fmt.Errorf("DOWNLOAD_MAX_ATTEMPTS must be at least 1")
	}
	return nil
}

// GetServerPort returns the server port
func (c *AppConfig) GetServerPort() string {
	return c.ServerPort
}

// GetStoragePath returns the directory downloaded PDFs are written to
func (c *AppConfig) GetStoragePath() string {
	return c.StoragePath
}

// GetMaxFileSize returns the maximum allowed PDF size in bytes
func (c *AppConfig) GetMaxFileSize() int64 {
	return c.MaxFileSize
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

// GetLogFormat returns the log output format (text or json)
func (c *AppConfig) GetLogFormat() string {
	return c.LogFormat
}

// GetGroqAPIKey returns the Groq API key
func (c *AppConfig) GetGroqAPIKey() string {
	return c.GroqAPIKey
}

// GetGroqModelID returns the model id used for agent invocations
func (c *AppConfig) GetGroqModelID() string {
	return c.GroqModelID
}

// GetGroqBaseURL returns the OpenAI-compatible Groq endpoint
func (c *AppConfig) GetGroqBaseURL() string {
	return c.GroqBaseURL
}

// GetAgentTimeout returns the client-side bound on one agent invocation
func (c *AppConfig) GetAgentTimeout() time.Duration {
	return c.AgentTimeout
}

// GetDownloadTimeout returns the per-attempt PDF download timeout
func (c *AppConfig) GetDownloadTimeout() time.Duration {
	return c.DownloadTimeout
}

// GetDownloadMaxAttempts returns the maximum number of download attempts
func (c *AppConfig) GetDownloadMaxAttempts() int {
	return c.DownloadMaxAttempts
}

// GetDownloadRetryDelay returns the initial delay between download retries
func (c *AppConfig) GetDownloadRetryDelay() time.Duration {
	return c.DownloadRetryDelay
}

// GetDownloadRetryBackoff returns the delay multiplier between retries
func (c *AppConfig) GetDownloadRetryBackoff() float64 {
	return c.DownloadRetryBackoff
}

// GetDefaultMinPage returns the default first page for extraction
func (c *AppConfig) GetDefaultMinPage() int {
	return c.DefaultMinPage
}

// GetDefaultMaxPage returns the default last page for extraction
func (c *AppConfig) GetDefaultMaxPage() int {
	return c.DefaultMaxPage
}

// GetSummaryMinWords returns the minimum word count requested from summaries
func (c *AppConfig) GetSummaryMinWords() int {
	return c.SummaryMinWords
}

// GetQuestionsCount returns how many questions the generator is asked for
func (c *AppConfig) GetQuestionsCount() int {
	return c.QuestionsCount
}

// GetSupabaseURL returns the Supabase URL
func (c *AppConfig) GetSupabaseURL() string {
	return c.SupabaseURL
}

// GetSupabaseKey returns the Supabase anon key
func (c *AppConfig) GetSupabaseKey() string {
	return c.SupabaseKey
}

// IsDebug reports whether verbose diagnostics are enabled
func (c *AppConfig) IsDebug() bool {
	return c.Debug
}

// Helper functions for environment variable handling
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvSecondsOrDefault reads a duration expressed as whole seconds.
func getEnvSecondsOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil && intValue > 0 {
			return time.Duration(intValue) * time.Second
		}
	}
	return defaultValue
}
