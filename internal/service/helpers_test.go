package service

import (
	"bytes"
	"fmt"
	"time"

	"pdf-chat-api/internal/domain"
)

// Mock logger shared by service package tests.
type mockLogger struct{}

func (l *mockLogger) Info(msg string, fields ...interface{})             {}
func (l *mockLogger) Error(msg string, err error, fields ...interface{}) {}
func (l *mockLogger) Debug(msg string, fields ...interface{})            {}
func (l *mockLogger) Warn(msg string, fields ...interface{})             {}

// testConfig implements domain.Config with per-test values.
type testConfig struct {
	storagePath          string
	maxFileSize          int64
	groqAPIKey           string
	groqModelID          string
	groqBaseURL          string
	agentTimeout         time.Duration
	downloadTimeout      time.Duration
	downloadMaxAttempts  int
	downloadRetryDelay   time.Duration
	downloadRetryBackoff float64
	defaultMinPage       int
	defaultMaxPage       int
	summaryMinWords      int
	questionsCount       int
}

func newTestConfig(storagePath string) *testConfig {
	return &testConfig{
		storagePath:          storagePath,
		maxFileSize:          50 * 1024 * 1024,
		groqAPIKey:           "test-key",
		groqModelID:          "llama-3.3-70b-versatile",
		groqBaseURL:          "https://api.groq.com/openai/v1",
		agentTimeout:         5 * time.Second,
		downloadTimeout:      5 * time.Second,
		downloadMaxAttempts:  3,
		downloadRetryDelay:   10 * time.Millisecond,
		downloadRetryBackoff: 2,
		defaultMinPage:       1,
		defaultMaxPage:       5,
		summaryMinWords:      8000,
		questionsCount:       20,
	}
}

func (c *testConfig) GetServerPort() string                 { return "8080" }
func (c *testConfig) GetStoragePath() string                { return c.storagePath }
func (c *testConfig) GetMaxFileSize() int64                 { return c.maxFileSize }
func (c *testConfig) GetLogLevel() string                   { return "error" }
func (c *testConfig) GetLogFormat() string                  { return "text" }
func (c *testConfig) GetGroqAPIKey() string                 { return c.groqAPIKey }
func (c *testConfig) GetGroqModelID() string                { return c.groqModelID }
func (c *testConfig) GetGroqBaseURL() string                { return c.groqBaseURL }
func (c *testConfig) GetAgentTimeout() time.Duration        { return c.agentTimeout }
func (c *testConfig) GetDownloadTimeout() time.Duration     { return c.downloadTimeout }
func (c *testConfig) GetDownloadMaxAttempts() int           { return c.downloadMaxAttempts }
func (c *testConfig) GetDownloadRetryDelay() time.Duration  { return c.downloadRetryDelay }
func (c *testConfig) GetDownloadRetryBackoff() float64      { return c.downloadRetryBackoff }
func (c *testConfig) GetDefaultMinPage() int                { return c.defaultMinPage }
func (c *testConfig) GetDefaultMaxPage() int                { return c.defaultMaxPage }
func (c *testConfig) GetSummaryMinWords() int               { return c.summaryMinWords }
func (c *testConfig) GetQuestionsCount() int                { return c.questionsCount }
func (c *testConfig) GetSupabaseURL() string                { return "" }
func (c *testConfig) GetSupabaseKey() string                { return "" }
func (c *testConfig) IsDebug() bool                         { return false }
func (c *testConfig) Validate() error                       { return nil }

var _ domain.Config = (*testConfig)(nil)

// makePDF builds a minimal but valid PDF with one page per entry in pages.
// An empty string produces a page without text.
func makePDF(pages []string) []byte {
	type object struct {
		num  int
		body string
	}

	numPages := len(pages)
	var objects []object

	kids := ""
	for i := 0; i < numPages; i++ {
		kids += fmt.Sprintf("%d 0 R ", 4+2*i)
	}

	objects = append(objects,
		object{1, "<< /Type /Catalog /Pages 2 0 R >>"},
		object{2, fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", kids, numPages)},
		object{3, "<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>"},
	)

	var streams []string
	for i, text := range pages {
		pageNum := 4 + 2*i
		contentNum := pageNum + 1
		objects = append(objects, object{pageNum, fmt.Sprintf(
			"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>",
			contentNum,
		)})

		stream := ""
		if text != "" {
			stream = fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", text)
		}
		objects = append(objects, object{contentNum, fmt.Sprintf("<< /Length %d >>", len(stream))})
		streams = append(streams, stream)
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	offsets := make(map[int]int)
	streamIdx := 0
	for _, obj := range objects {
		offsets[obj.num] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\n", obj.num, obj.body)
		// Content objects carry their stream right after the dictionary.
		if obj.num >= 4 && obj.num%2 == 1 {
			fmt.Fprintf(&buf, "stream\n%s\nendstream\n", streams[streamIdx])
			streamIdx++
		}
		buf.WriteString("endobj\n")
	}

	size := len(objects) + 1
	xrefStart := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", size)
	buf.WriteString("0000000000 65535 f \n")
	for num := 1; num < size; num++ {
		fmt.Fprintf(&buf, "%010d 00000 n \n", offsets[num])
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", size, xrefStart)

	return buf.Bytes()
}

func intPtr(v int) *int {
	return &v
}
