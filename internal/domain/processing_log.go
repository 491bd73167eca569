package domain

import "context"

// Processing statuses recorded for conversation requests.
const (
	ProcessingStatusSuccess = "success"
	ProcessingStatusFailed  = "failed"
)

// ProcessingLog records the outcome of one conversation pipeline run.
type ProcessingLog struct {
	ActionType   string `json:"action_type"`
	DocumentURL  string `json:"document_url"`
	Status       string `json:"status"`
	ErrorCode    string `json:"error_code,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`
	DurationMS   int64  `json:"processing_time_ms"`
}

// ProcessingLogRepository persists processing logs. Implementations are
// best-effort: the pipeline never fails because a log insert failed.
type ProcessingLogRepository interface {
	Record(ctx context.Context, entry *ProcessingLog) error
}
